// File: services/appointment/create.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agendly/models"
	"agendly/services/scheduling"
	"agendly/utils"
)

// CreateForClient books a consultation slot on behalf of the establishment.
// The client must hold an active relation with the establishment and the
// slot must pass the feasibility pipeline.
func (s *DefaultAppointmentService) CreateForClient(ctx context.Context, establishmentID, clientID string, start time.Time) (*models.Appointment, error) {
	est, err := s.EstRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment %s: %w", establishmentID, err)
	}
	client, err := s.ClientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", clientID, err)
	}
	rel, err := s.RelRepo.GetByPair(ctx, establishmentID, clientID)
	if err != nil || rel.Status != models.RelationActive {
		return nil, fmt.Errorf("client %s is not linked to establishment %s", clientID, establishmentID)
	}

	proposed := scheduling.Interval{Start: start, End: start.Add(EstablishmentSlotLength)}
	if err := s.checkSlot(ctx, est, proposed); err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		Establishment: &models.ProfileRef{ID: est.ID, Name: est.Name},
		Client:        &models.ProfileRef{ID: client.ID, Name: client.Name},
		Date:          proposed.Start,
		EndDate:       proposed.End,
		Status:        models.StatusScheduled,
		CreatedBy:     models.CreatedByEstablishment,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.scheduleReminder(appt)
	return appt, nil
}

// scheduleReminder enqueues the pre-appointment push. Enqueue failures do
// not fail the booking.
func (s *DefaultAppointmentService) scheduleReminder(appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(appt); err != nil {
		utils.GetLogger().Warn("Reminder scheduling failed",
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}
