// File: services/client/client_test.go
package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
)

type fakeClientRepo struct {
	profiles map[string]*models.ClientProfile
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.ClientProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeClientRepo) GetByUserID(_ context.Context, userID string) (*models.ClientProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeClientRepo) GetByIDs(_ context.Context, ids []string) ([]models.ClientProfile, error) {
	return nil, nil
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *models.ClientProfile) error {
	if _, ok := r.profiles[c.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientRepo) SetFCMToken(_ context.Context, id, token string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.FCMToken = token
	return nil
}

func (r *fakeClientRepo) SetPhotoURL(_ context.Context, id, url string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.PhotoURL = url
	return nil
}

type fakeRelationRepo struct {
	relations []models.Relation
	interests []models.Interest
}

func (r *fakeRelationRepo) GetActiveByEstablishment(_ context.Context, establishmentID string) ([]models.Relation, error) {
	return r.relations, nil
}

func (r *fakeRelationRepo) GetByPair(_ context.Context, establishmentID, clientID string) (*models.Relation, error) {
	for _, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.ClientID == clientID {
			cp := rel
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeRelationRepo) Create(_ context.Context, rel *models.Relation) error {
	r.relations = append(r.relations, *rel)
	return nil
}

func (r *fakeRelationRepo) Delete(_ context.Context, establishmentID, clientID string) error {
	return nil
}

func (r *fakeRelationRepo) CreateInterest(_ context.Context, interest *models.Interest) error {
	r.interests = append(r.interests, *interest)
	return nil
}

func (r *fakeRelationRepo) GetInterestsByEstablishment(_ context.Context, establishmentID string) ([]models.Interest, error) {
	return r.interests, nil
}

func newClientService() (*DefaultClientService, *fakeRelationRepo) {
	relRepo := &fakeRelationRepo{}
	svc := &DefaultClientService{
		Repo: &fakeClientRepo{profiles: map[string]*models.ClientProfile{
			"cli-1": {ID: "cli-1", UserID: "user-1", Name: "Ana Souza"},
		}},
		RelRepo: relRepo,
	}
	return svc, relRepo
}

func TestRequestLinkRecordsInterest(t *testing.T) {
	svc, relRepo := newClientService()

	err := svc.RequestLink(context.Background(), "cli-1", "est-1", "Gostaria de agendar com vocês")
	require.NoError(t, err)
	require.Len(t, relRepo.interests, 1)
	assert.Equal(t, "cli-1", relRepo.interests[0].ClientID)
	assert.Equal(t, "est-1", relRepo.interests[0].EstablishmentID)
}

func TestRequestLinkRejectsLinkedClient(t *testing.T) {
	svc, relRepo := newClientService()
	relRepo.relations = []models.Relation{
		{EstablishmentID: "est-1", ClientID: "cli-1", Status: models.RelationActive},
	}

	err := svc.RequestLink(context.Background(), "cli-1", "est-1", "")
	assert.Error(t, err)
	assert.Empty(t, relRepo.interests)
}

func TestRegisterFCMToken(t *testing.T) {
	svc, _ := newClientService()
	ctx := context.Background()

	require.NoError(t, svc.RegisterFCMToken(ctx, "cli-1", "device-token"))

	profile, err := svc.GetProfile(ctx, "cli-1")
	require.NoError(t, err)
	assert.Equal(t, "device-token", profile.FCMToken)

	assert.Error(t, svc.RegisterFCMToken(ctx, "cli-1", ""))
}

func TestUpdateProfileValidation(t *testing.T) {
	svc, _ := newClientService()
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, &models.ClientProfile{ID: "cli-1"})
	assert.Error(t, err, "name required")

	updated, err := svc.UpdateProfile(ctx, &models.ClientProfile{ID: "cli-1", Name: "Ana S. Lima", Phone: "11 98888-0002"})
	require.NoError(t, err)
	assert.Equal(t, "Ana S. Lima", updated.Name)
}
