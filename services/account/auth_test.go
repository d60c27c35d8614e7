// File: services/account/auth_test.go
package account

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"agendly/config"
	"agendly/models"
	"agendly/services/scheduling"
	"agendly/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateTokenHash(_ context.Context, id, tokenHash string) error {
	u, ok := r.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.TokenHash = tokenHash
	return nil
}

type fakeClientProfileRepo struct {
	profiles map[string]*models.ClientProfile
}

func (r *fakeClientProfileRepo) GetByID(_ context.Context, id string) (*models.ClientProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeClientProfileRepo) GetByUserID(_ context.Context, userID string) (*models.ClientProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeClientProfileRepo) GetByIDs(_ context.Context, ids []string) ([]models.ClientProfile, error) {
	return nil, nil
}

func (r *fakeClientProfileRepo) Create(_ context.Context, c *models.ClientProfile) error {
	if c.ID == "" {
		c.ID = "cli-" + c.UserID
	}
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientProfileRepo) Update(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientProfileRepo) SetFCMToken(_ context.Context, id, token string) error { return nil }
func (r *fakeClientProfileRepo) SetPhotoURL(_ context.Context, id, url string) error  { return nil }

type fakeEstProfileRepo struct {
	profiles map[string]*models.EstablishmentProfile
}

func (r *fakeEstProfileRepo) GetByID(_ context.Context, id string) (*models.EstablishmentProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeEstProfileRepo) GetByUserID(_ context.Context, userID string) (*models.EstablishmentProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEstProfileRepo) Create(_ context.Context, est *models.EstablishmentProfile) error {
	if est.ID == "" {
		est.ID = "est-" + est.UserID
	}
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstProfileRepo) Update(_ context.Context, est *models.EstablishmentProfile) error {
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstProfileRepo) UpdateWorkingHours(_ context.Context, id string, wh scheduling.WorkingHours) error {
	return nil
}

func (r *fakeEstProfileRepo) AddBlockedDate(_ context.Context, id string, blocked scheduling.BlockedDate) error {
	return nil
}

func (r *fakeEstProfileRepo) SetPhotoURL(_ context.Context, id, url string) error { return nil }

func newAccountService(t *testing.T) *DefaultAccountService {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return &DefaultAccountService{
		Repo:       &fakeUserRepo{users: map[string]*models.User{}},
		ClientRepo: &fakeClientProfileRepo{profiles: map[string]*models.ClientProfile{}},
		EstRepo:    &fakeEstProfileRepo{profiles: map[string]*models.EstablishmentProfile{}},
	}
}

func TestRegisterCreatesRoleProfile(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Email:    "ana@example.com",
		Password: "segredo1",
		Role:     models.RoleClient,
		Name:     "Ana Souza",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ProfileID)
	assert.Equal(t, models.RoleClient, resp.Role)

	profile, err := svc.ClientRepo.GetByUserID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", profile.Name)

	// Stored password is hashed, never the plain text.
	user, err := svc.Repo.GetByID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "segredo1", user.PasswordHash)
	assert.Equal(t, utils.HashToken(resp.Token), user.TokenHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Email:    "ana@example.com",
		Password: "segredo1",
		Role:     models.RoleEstablishment,
		Name:     "Clínica Bela Vista",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
}

func TestLoginRotatesTokenHash(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterRequest{
		Email:    "ana@example.com",
		Password: "segredo1",
		Role:     models.RoleClient,
		Name:     "Ana Souza",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ana@example.com", "errada")
	assert.Error(t, err)

	second, err := svc.Login(ctx, "ana@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.ProfileID, second.ProfileID)

	user, err := svc.Repo.GetByID(ctx, second.UserID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(second.Token), user.TokenHash)
}

func TestLogoutClearsTokenHash(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Email:    "ana@example.com",
		Password: "segredo1",
		Role:     models.RoleClient,
		Name:     "Ana Souza",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.UserID))

	user, err := svc.Repo.GetByID(ctx, resp.UserID)
	require.NoError(t, err)
	assert.Empty(t, user.TokenHash)
}
