// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"agendly/database"
	"agendly/models"
	"agendly/utils"
)

// NotificationRepository defines methods for persisted notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByClient(ctx context.Context, clientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	repo := &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Notification index creation failed", zap.Error(err))
	}
	return repo
}
