// File: database/repository/relation/interface.go
package relationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"agendly/database"
	"agendly/models"
	"agendly/utils"
)

// RelationRepository defines methods for the client-establishment link and
// for interest requests. Relations gate the roster and who an establishment
// may book; interests are the inbox of clients asking to be linked.
type RelationRepository interface {
	GetActiveByEstablishment(ctx context.Context, establishmentID string) ([]models.Relation, error)
	GetByPair(ctx context.Context, establishmentID, clientID string) (*models.Relation, error)
	Create(ctx context.Context, rel *models.Relation) error
	Delete(ctx context.Context, establishmentID, clientID string) error
	CreateInterest(ctx context.Context, interest *models.Interest) error
	GetInterestsByEstablishment(ctx context.Context, establishmentID string) ([]models.Interest, error)
}

type mongoRelationRepo struct {
	coll      *mongo.Collection
	interests *mongo.Collection
}

// NewMongoRelationRepo constructs a new MongoDB RelationRepository.
func NewMongoRelationRepo() RelationRepository {
	repo := &mongoRelationRepo{
		coll:      database.DB().Collection("relations"),
		interests: database.DB().Collection("interests"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Relation index creation failed", zap.Error(err))
	}
	return repo
}
