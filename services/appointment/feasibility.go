// File: services/appointment/feasibility.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"agendly/models"
	"agendly/services/scheduling"
)

// checkSlot runs the feasibility pipeline for a proposed interval on the
// establishment's agenda. Every existing appointment occupies its interval;
// cancellation removes the record, so there is nothing to filter out.
func (s *DefaultAppointmentService) checkSlot(ctx context.Context, est *models.EstablishmentProfile, proposed scheduling.Interval) error {
	appts, err := s.Repo.GetByEstablishment(ctx, est.ID)
	if err != nil {
		return fmt.Errorf("failed to load existing appointments: %w", err)
	}
	existing := make([]scheduling.Interval, 0, len(appts))
	for _, a := range appts {
		end := a.EndDate
		if end.IsZero() {
			end = a.Date.Add(ClientSlotLength)
		}
		existing = append(existing, scheduling.Interval{Start: a.Date, End: end})
	}
	return scheduling.CheckFeasibility(proposed, time.Now(), est.WorkingHours, est.BlockedDates, existing)
}
