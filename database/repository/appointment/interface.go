// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"agendly/database"
	"agendly/models"
	"agendly/utils"
)

// AppointmentRepository defines methods for appointment data access. The
// denormalized client/professional/establishment refs on the document give
// queries include semantics without a second round trip.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	GetByEstablishment(ctx context.Context, establishmentID string) ([]models.Appointment, error)
	GetAll(ctx context.Context, limit int64) ([]models.Appointment, error)
	CountOccupiedInRange(ctx context.Context, establishmentID string, from, to time.Time) (int64, error)
	Create(ctx context.Context, a *models.Appointment) error
	Delete(ctx context.Context, id string) error
	// DeleteDirect is the fallback write path: a raw filtered delete used for
	// one retry after Delete fails.
	DeleteDirect(ctx context.Context, id string) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Appointment index creation failed", zap.Error(err))
	}
	return repo
}
