// File: database/repository/client/interface.go
package clientRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"agendly/database"
	"agendly/models"
	"agendly/utils"
)

// ClientRepository defines methods for client profile access.
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*models.ClientProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.ClientProfile, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.ClientProfile, error)
	Create(ctx context.Context, client *models.ClientProfile) error
	Update(ctx context.Context, client *models.ClientProfile) error
	SetFCMToken(ctx context.Context, id, token string) error
	SetPhotoURL(ctx context.Context, id, url string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	repo := &mongoClientRepo{
		coll: database.DB().Collection("clients"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Client index creation failed", zap.Error(err))
	}
	return repo
}
