// File: services/appointment/views.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/services/agenda"
)

// ClientAgenda returns the client's own appointments as display events.
func (s *DefaultAppointmentService) ClientAgenda(ctx context.Context, clientID string) ([]agenda.DisplayEvent, error) {
	appts, err := s.Repo.GetByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client agenda: %w", err)
	}
	return toDisplayEvents(appts), nil
}

// EstablishmentAgenda returns the establishment's appointments with client
// names, the owner's management view.
func (s *DefaultAppointmentService) EstablishmentAgenda(ctx context.Context, establishmentID string) ([]agenda.DisplayEvent, error) {
	appts, err := s.Repo.GetByEstablishment(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load establishment agenda: %w", err)
	}
	return toDisplayEvents(appts), nil
}

// PublicAgenda returns the establishment's appointments for the view a
// visiting client sees, capped at PublicAgendaLimit.
func (s *DefaultAppointmentService) PublicAgenda(ctx context.Context, establishmentID string) ([]agenda.DisplayEvent, error) {
	appts, err := s.Repo.GetAll(ctx, PublicAgendaLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load public agenda: %w", err)
	}
	filtered := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Establishment != nil && a.Establishment.ID == establishmentID {
			filtered = append(filtered, a)
		}
	}
	return toDisplayEvents(filtered), nil
}

// OccupiedWeekLoad counts the booked slots in the seven days starting now,
// shown in the header of the establishment's agenda page.
func (s *DefaultAppointmentService) OccupiedWeekLoad(ctx context.Context, establishmentID string) (int64, error) {
	now := time.Now()
	count, err := s.Repo.CountOccupiedInRange(ctx, establishmentID, now, now.AddDate(0, 0, 7))
	if err != nil {
		return 0, fmt.Errorf("failed to count booked slots: %w", err)
	}
	return count, nil
}

func toDisplayEvents(appts []models.Appointment) []agenda.DisplayEvent {
	events := make([]agenda.DisplayEvent, 0, len(appts))
	for _, a := range appts {
		events = append(events, agenda.ToDisplayEvent(a))
	}
	return events
}
