// File: services/notification/interface.go
package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	clientRepo "agendly/database/repository/client"
	notificationRepo "agendly/database/repository/notification"
	"agendly/models"
	"agendly/utils"
)

// NotificationService persists notifications and mirrors them to FCM when the
// client has a registered device token.
type NotificationService interface {
	Notify(ctx context.Context, n *models.Notification) error
	ListForClient(ctx context.Context, clientID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo       notificationRepo.NotificationRepository
	ClientRepo clientRepo.ClientRepository
}

// Notify stores the notification and attempts the push. The stored record is
// the source of truth: push failures are logged, not returned, so a client
// without a token still sees the message in their list.
func (s *DefaultNotificationService) Notify(ctx context.Context, n *models.Notification) error {
	if n.ClientID == "" {
		return fmt.Errorf("notify: clientId is required")
	}
	if n.Message == "" {
		return fmt.Errorf("notify: message is required")
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := s.push(ctx, n); err != nil {
		utils.GetLogger().Warn("Push delivery failed",
			zap.String("clientId", n.ClientID),
			zap.String("type", n.Type),
			zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) push(ctx context.Context, n *models.Notification) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}
	client, err := s.ClientRepo.GetByID(ctx, n.ClientID)
	if err != nil {
		return fmt.Errorf("could not find client %s: %w", n.ClientID, err)
	}
	if client.FCMToken == "" {
		return fmt.Errorf("client %s has no FCM token", n.ClientID)
	}

	msg := &messaging.Message{
		Token: client.FCMToken,
		Notification: &messaging.Notification{
			Title: pushTitle(n.Type),
			Body:  n.Message,
		},
		Data: map[string]string{
			"notificationId":    n.ID,
			"type":              n.Type,
			"fromEstablishment": n.FromEstablishment,
		},
	}
	_, err = utils.FCMClient.Send(ctx, msg)
	return err
}

func pushTitle(typ string) string {
	switch typ {
	case models.NotificationPromotion:
		return "Promoção"
	case models.NotificationTermination:
		return "Vínculo encerrado"
	case models.NotificationReminder:
		return "Lembrete de consulta"
	default:
		return "Notificação"
	}
}

func (s *DefaultNotificationService) ListForClient(ctx context.Context, clientID string) ([]models.Notification, error) {
	return s.Repo.GetByClient(ctx, clientID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id string) error {
	return s.Repo.MarkRead(ctx, id)
}
