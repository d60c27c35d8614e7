// File: services/establishment/service_test.go
package establishment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
	"agendly/services/scheduling"
)

type fakeEstRepo struct {
	profiles map[string]*models.EstablishmentProfile
}

func (r *fakeEstRepo) GetByID(_ context.Context, id string) (*models.EstablishmentProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeEstRepo) GetByUserID(_ context.Context, userID string) (*models.EstablishmentProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEstRepo) Create(_ context.Context, est *models.EstablishmentProfile) error {
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstRepo) Update(_ context.Context, est *models.EstablishmentProfile) error {
	if _, ok := r.profiles[est.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstRepo) UpdateWorkingHours(_ context.Context, id string, wh scheduling.WorkingHours) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.WorkingHours = wh
	return nil
}

func (r *fakeEstRepo) AddBlockedDate(_ context.Context, id string, blocked scheduling.BlockedDate) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.BlockedDates = append(p.BlockedDates, blocked)
	return nil
}

func (r *fakeEstRepo) SetPhotoURL(_ context.Context, id, url string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.PhotoURL = url
	return nil
}

type fakeCliRepo struct {
	profiles map[string]*models.ClientProfile
}

func (r *fakeCliRepo) GetByID(_ context.Context, id string) (*models.ClientProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeCliRepo) GetByUserID(_ context.Context, userID string) (*models.ClientProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeCliRepo) GetByIDs(_ context.Context, ids []string) ([]models.ClientProfile, error) {
	var out []models.ClientProfile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeCliRepo) Create(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeCliRepo) Update(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeCliRepo) SetFCMToken(_ context.Context, id, token string) error {
	return nil
}

func (r *fakeCliRepo) SetPhotoURL(_ context.Context, id, url string) error {
	return nil
}

type fakeRelRepo struct {
	relations []models.Relation
	interests []models.Interest
}

func (r *fakeRelRepo) GetActiveByEstablishment(_ context.Context, establishmentID string) ([]models.Relation, error) {
	var out []models.Relation
	for _, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.Status == models.RelationActive {
			out = append(out, rel)
		}
	}
	return out, nil
}

func (r *fakeRelRepo) GetByPair(_ context.Context, establishmentID, clientID string) (*models.Relation, error) {
	for _, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.ClientID == clientID {
			cp := rel
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeRelRepo) Create(_ context.Context, rel *models.Relation) error {
	r.relations = append(r.relations, *rel)
	return nil
}

func (r *fakeRelRepo) Delete(_ context.Context, establishmentID, clientID string) error {
	for i, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.ClientID == clientID {
			r.relations = append(r.relations[:i], r.relations[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeRelRepo) CreateInterest(_ context.Context, interest *models.Interest) error {
	r.interests = append(r.interests, *interest)
	return nil
}

func (r *fakeRelRepo) GetInterestsByEstablishment(_ context.Context, establishmentID string) ([]models.Interest, error) {
	return r.interests, nil
}

type fakeNotifier struct {
	sent    []models.Notification
	failFor map[string]bool
}

func (n *fakeNotifier) Notify(_ context.Context, notif *models.Notification) error {
	if n.failFor[notif.ClientID] {
		return assert.AnError
	}
	n.sent = append(n.sent, *notif)
	return nil
}

func (n *fakeNotifier) ListForClient(_ context.Context, clientID string) ([]models.Notification, error) {
	return n.sent, nil
}

func (n *fakeNotifier) MarkRead(_ context.Context, id string) error {
	return nil
}

func newService() (*DefaultEstablishmentService, *fakeNotifier) {
	notifier := &fakeNotifier{failFor: map[string]bool{}}
	svc := &DefaultEstablishmentService{
		Repo: &fakeEstRepo{profiles: map[string]*models.EstablishmentProfile{
			"est-1": {ID: "est-1", Name: "Clínica Bela Vista"},
		}},
		ClientRepo: &fakeCliRepo{profiles: map[string]*models.ClientProfile{
			"cli-1": {ID: "cli-1", Name: "Ana Souza", Phone: "11 99999-0001"},
			"cli-2": {ID: "cli-2", Name: "Bruno Lima"},
		}},
		RelRepo: &fakeRelRepo{relations: []models.Relation{
			{ID: "rel-1", EstablishmentID: "est-1", ClientID: "cli-1", Status: models.RelationActive, CreatedAt: time.Now()},
			{ID: "rel-2", EstablishmentID: "est-1", ClientID: "cli-2", Status: models.RelationActive, CreatedAt: time.Now()},
		}},
		Notifier: notifier,
	}
	return svc, notifier
}

func TestSetWorkingHoursValidation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	err := svc.SetWorkingHours(ctx, "est-1", scheduling.WorkingHours{
		StartTime: "08:00", EndTime: "18:00",
	})
	assert.Error(t, err, "no working days selected")

	err = svc.SetWorkingHours(ctx, "est-1", scheduling.WorkingHours{
		DaysOfWeek: []time.Weekday{time.Monday},
		StartTime:  "18:00", EndTime: "08:00",
	})
	assert.Error(t, err, "end before start")

	err = svc.SetWorkingHours(ctx, "est-1", scheduling.WorkingHours{
		DaysOfWeek: []time.Weekday{time.Monday},
		StartTime:  "8h", EndTime: "18:00",
	})
	assert.Error(t, err, "malformed start time")

	err = svc.SetWorkingHours(ctx, "est-1", scheduling.WorkingHours{
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday},
		StartTime:  "08:00", EndTime: "18:00",
	})
	require.NoError(t, err)

	est, err := svc.GetProfile(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, "08:00", est.WorkingHours.StartTime)
}

func TestBlockDateDefaultsReasonAndRejectsDuplicates(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	require.NoError(t, svc.BlockDate(ctx, "est-1", "2026-09-15", ""))

	est, err := svc.GetProfile(ctx, "est-1")
	require.NoError(t, err)
	require.Len(t, est.BlockedDates, 1)
	assert.Equal(t, DefaultBlockReason, est.BlockedDates[0].Reason)

	err = svc.BlockDate(ctx, "est-1", "2026-09-15", "Feriado")
	assert.Error(t, err, "duplicate date")

	err = svc.BlockDate(ctx, "est-1", "15/09/2026", "")
	assert.Error(t, err, "malformed date")
}

func TestRosterListsLinkedClients(t *testing.T) {
	svc, _ := newService()

	entries, err := svc.Roster(context.Background(), "est-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Client.Name, entries[1].Client.Name}
	assert.Contains(t, names, "Ana Souza")
	assert.Contains(t, names, "Bruno Lima")
}

func TestEndRelationNotifiesClient(t *testing.T) {
	svc, notifier := newService()
	ctx := context.Background()

	require.NoError(t, svc.EndRelation(ctx, "est-1", "cli-1"))

	entries, err := svc.Roster(ctx, "est-1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.NotificationTermination, notifier.sent[0].Type)
	assert.Equal(t, "cli-1", notifier.sent[0].ClientID)
}

func TestSendPromotionRequiresActiveRelation(t *testing.T) {
	svc, notifier := newService()
	ctx := context.Background()

	require.NoError(t, svc.SendPromotion(ctx, "est-1", "cli-1", "20% de desconto esta semana"))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.NotificationPromotion, notifier.sent[0].Type)

	err := svc.SendPromotion(ctx, "est-1", "cli-9", "20% de desconto esta semana")
	assert.Error(t, err, "unlinked client")

	err = svc.SendPromotion(ctx, "est-1", "cli-1", "")
	assert.Error(t, err, "empty message")
}

func TestSendPromotionToAllSkipsFailures(t *testing.T) {
	svc, notifier := newService()
	notifier.failFor["cli-1"] = true

	sent, err := svc.SendPromotionToAll(context.Background(), "est-1", "Novidade na agenda")
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "cli-2", notifier.sent[0].ClientID)
}

func TestAcceptInterestCreatesRelation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	err := svc.AcceptInterest(ctx, "est-1", "cli-1")
	assert.Error(t, err, "already linked")

	require.NoError(t, svc.AcceptInterest(ctx, "est-1", "cli-9"))
	rels, err := svc.RelRepo.GetActiveByEstablishment(ctx, "est-1")
	require.NoError(t, err)
	assert.Len(t, rels, 3)
}
