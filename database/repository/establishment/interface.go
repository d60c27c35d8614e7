// File: database/repository/establishment/interface.go
package establishmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"agendly/database"
	"agendly/models"
	"agendly/services/scheduling"
	"agendly/utils"
)

// EstablishmentRepository defines methods for establishment profile access.
type EstablishmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.EstablishmentProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.EstablishmentProfile, error)
	Create(ctx context.Context, est *models.EstablishmentProfile) error
	Update(ctx context.Context, est *models.EstablishmentProfile) error
	UpdateWorkingHours(ctx context.Context, id string, wh scheduling.WorkingHours) error
	AddBlockedDate(ctx context.Context, id string, blocked scheduling.BlockedDate) error
	SetPhotoURL(ctx context.Context, id, url string) error
}

type mongoEstablishmentRepo struct {
	coll *mongo.Collection
}

// NewMongoEstablishmentRepo constructs a new MongoDB EstablishmentRepository.
func NewMongoEstablishmentRepo() EstablishmentRepository {
	repo := &mongoEstablishmentRepo{
		coll: database.DB().Collection("establishments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Establishment index creation failed", zap.Error(err))
	}
	return repo
}
