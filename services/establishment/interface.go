// File: services/establishment/interface.go
package establishment

import (
	"context"

	clientRepo "agendly/database/repository/client"
	establishmentRepo "agendly/database/repository/establishment"
	relationRepo "agendly/database/repository/relation"
	"agendly/models"
	"agendly/services/notification"
	"agendly/services/scheduling"
	"agendly/services/storage"
)

// RosterEntry is one linked client with the contact data the roster page
// shows.
type RosterEntry struct {
	Client   models.ClientProfile `json:"client"`
	LinkedAt string               `json:"linkedAt"`
}

// EstablishmentService manages the establishment profile, its schedule
// configuration and its client roster.
type EstablishmentService interface {
	GetProfile(ctx context.Context, id string) (*models.EstablishmentProfile, error)
	GetProfileByUserID(ctx context.Context, userID string) (*models.EstablishmentProfile, error)
	UpdateProfile(ctx context.Context, est *models.EstablishmentProfile) (*models.EstablishmentProfile, error)
	UploadPhoto(ctx context.Context, id, localFilePath string) (string, error)

	SetWorkingHours(ctx context.Context, id string, wh scheduling.WorkingHours) error
	BlockDate(ctx context.Context, id, date, reason string) error

	Roster(ctx context.Context, establishmentID string) ([]RosterEntry, error)
	Interests(ctx context.Context, establishmentID string) ([]models.Interest, error)
	AcceptInterest(ctx context.Context, establishmentID, clientID string) error
	EndRelation(ctx context.Context, establishmentID, clientID string) error
	SendPromotion(ctx context.Context, establishmentID, clientID, message string) error
	SendPromotionToAll(ctx context.Context, establishmentID, message string) (int, error)
}

// DefaultEstablishmentService is the production implementation.
type DefaultEstablishmentService struct {
	Repo       establishmentRepo.EstablishmentRepository
	ClientRepo clientRepo.ClientRepository
	RelRepo    relationRepo.RelationRepository
	Notifier   notification.NotificationService
	Storage    storage.StorageService
}
