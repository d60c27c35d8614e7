// File: services/appointment/booking.go
package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agendly/models"
	"agendly/services/scheduling"
	"agendly/utils"
)

func holdKey(holdID string) string {
	return "bookingHold:" + holdID
}

// ProposeBooking validates the requested slot and reserves it in the cache.
// The hold expires after HoldTTL if never confirmed; feasibility runs again
// at confirm time, so an expired or raced hold cannot double-book.
func (s *DefaultAppointmentService) ProposeBooking(ctx context.Context, clientID, establishmentID string, start time.Time) (*models.BookingHold, error) {
	est, err := s.EstRepo.GetByID(ctx, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment %s: %w", establishmentID, err)
	}
	client, err := s.ClientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", clientID, err)
	}

	proposed := scheduling.Interval{Start: start, End: start.Add(ClientSlotLength)}
	if err := s.checkSlot(ctx, est, proposed); err != nil {
		return nil, err
	}

	hold := &models.BookingHold{
		HoldID:            uuid.New().String(),
		ClientID:          client.ID,
		ClientName:        client.Name,
		EstablishmentID:   est.ID,
		EstablishmentName: est.Name,
		Start:             proposed.Start,
		End:               proposed.End,
		CreatedAt:         time.Now(),
	}
	data, err := json.Marshal(hold)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking hold: %w", err)
	}
	cacheClient := utils.GetCacheClient()
	if err := cacheClient.Set(ctx, holdKey(hold.HoldID), data, HoldTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store booking hold: %w", err)
	}
	return hold, nil
}

// ConfirmBooking finalizes a held slot: the hold is fetched from the cache,
// feasibility is re-checked against current agenda state, and the record is
// written as an occupied slot.
func (s *DefaultAppointmentService) ConfirmBooking(ctx context.Context, holdID string) (*models.Appointment, error) {
	cacheClient := utils.GetCacheClient()
	data, err := cacheClient.Get(ctx, holdKey(holdID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking hold not found or expired: %w", err)
	}
	var hold models.BookingHold
	if err := json.Unmarshal([]byte(data), &hold); err != nil {
		return nil, fmt.Errorf("failed to parse booking hold: %w", err)
	}

	est, err := s.EstRepo.GetByID(ctx, hold.EstablishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch establishment %s: %w", hold.EstablishmentID, err)
	}
	proposed := scheduling.Interval{Start: hold.Start, End: hold.End}
	if err := s.checkSlot(ctx, est, proposed); err != nil {
		cacheClient.Del(ctx, holdKey(holdID))
		return nil, err
	}

	appt := &models.Appointment{
		Establishment: &models.ProfileRef{ID: hold.EstablishmentID, Name: hold.EstablishmentName},
		Client:        &models.ProfileRef{ID: hold.ClientID, Name: hold.ClientName},
		Date:          hold.Start,
		EndDate:       hold.End,
		Status:        models.StatusOccupied,
		CreatedBy:     models.CreatedByClient,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	cacheClient.Del(ctx, holdKey(holdID))

	s.scheduleReminder(appt)
	return appt, nil
}
