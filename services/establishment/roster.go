// File: services/establishment/roster.go
package establishment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agendly/models"
	"agendly/utils"
)

// Roster lists the establishment's actively linked clients with their
// contact data.
func (s *DefaultEstablishmentService) Roster(ctx context.Context, establishmentID string) ([]RosterEntry, error) {
	relations, err := s.RelRepo.GetActiveByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load relations: %w", err)
	}
	ids := make([]string, 0, len(relations))
	linkedAt := make(map[string]time.Time, len(relations))
	for _, rel := range relations {
		ids = append(ids, rel.ClientID)
		linkedAt[rel.ClientID] = rel.CreatedAt
	}

	clients, err := s.ClientRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load client profiles: %w", err)
	}
	entries := make([]RosterEntry, 0, len(clients))
	for _, c := range clients {
		entries = append(entries, RosterEntry{
			Client:   c,
			LinkedAt: linkedAt[c.ID].Format(time.RFC3339),
		})
	}
	return entries, nil
}

// Interests lists pending link requests from clients.
func (s *DefaultEstablishmentService) Interests(ctx context.Context, establishmentID string) ([]models.Interest, error) {
	return s.RelRepo.GetInterestsByEstablishment(ctx, establishmentID)
}

// AcceptInterest turns a link request into an active relation.
func (s *DefaultEstablishmentService) AcceptInterest(ctx context.Context, establishmentID, clientID string) error {
	if rel, err := s.RelRepo.GetByPair(ctx, establishmentID, clientID); err == nil && rel != nil {
		return fmt.Errorf("client %s is already linked", clientID)
	}
	rel := &models.Relation{
		EstablishmentID: establishmentID,
		ClientID:        clientID,
		Status:          models.RelationActive,
	}
	if err := s.RelRepo.Create(ctx, rel); err != nil {
		return fmt.Errorf("failed to create relation: %w", err)
	}
	return nil
}

// EndRelation removes the link and tells the client about it.
func (s *DefaultEstablishmentService) EndRelation(ctx context.Context, establishmentID, clientID string) error {
	est, err := s.Repo.GetByID(ctx, establishmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch establishment %s: %w", establishmentID, err)
	}
	if err := s.RelRepo.Delete(ctx, establishmentID, clientID); err != nil {
		return fmt.Errorf("failed to end relation: %w", err)
	}

	n := &models.Notification{
		ClientID:          clientID,
		FromEstablishment: est.Name,
		Message:           fmt.Sprintf("%s encerrou o vínculo com você.", est.Name),
		Type:              models.NotificationTermination,
	}
	if err := s.Notifier.Notify(ctx, n); err != nil {
		utils.GetLogger().Warn("Termination notice failed",
			zap.String("clientId", clientID),
			zap.Error(err))
	}
	return nil
}

// SendPromotion delivers a promotional message to one linked client.
func (s *DefaultEstablishmentService) SendPromotion(ctx context.Context, establishmentID, clientID, message string) error {
	if message == "" {
		return fmt.Errorf("digite a mensagem da promoção")
	}
	est, err := s.Repo.GetByID(ctx, establishmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch establishment %s: %w", establishmentID, err)
	}
	rel, err := s.RelRepo.GetByPair(ctx, establishmentID, clientID)
	if err != nil || rel.Status != models.RelationActive {
		return fmt.Errorf("client %s is not linked to establishment %s", clientID, establishmentID)
	}
	return s.Notifier.Notify(ctx, &models.Notification{
		ClientID:          clientID,
		FromEstablishment: est.Name,
		Message:           message,
		Type:              models.NotificationPromotion,
	})
}

// SendPromotionToAll delivers a promotional message to every actively linked
// client and reports how many were reached. One failed client does not stop
// the rest.
func (s *DefaultEstablishmentService) SendPromotionToAll(ctx context.Context, establishmentID, message string) (int, error) {
	if message == "" {
		return 0, fmt.Errorf("digite a mensagem da promoção")
	}
	est, err := s.Repo.GetByID(ctx, establishmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch establishment %s: %w", establishmentID, err)
	}
	relations, err := s.RelRepo.GetActiveByEstablishment(ctx, establishmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to load relations: %w", err)
	}

	sent := 0
	for _, rel := range relations {
		n := &models.Notification{
			ClientID:          rel.ClientID,
			FromEstablishment: est.Name,
			Message:           message,
			Type:              models.NotificationPromotion,
		}
		if err := s.Notifier.Notify(ctx, n); err != nil {
			utils.GetLogger().Warn("Promotion delivery failed",
				zap.String("clientId", rel.ClientID),
				zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}
