// File: services/establishment/hours.go
package establishment

import (
	"context"
	"fmt"
	"time"

	"agendly/services/scheduling"
)

// DefaultBlockReason is recorded when a date is blocked without a reason.
const DefaultBlockReason = "Bloqueio manual"

// SetWorkingHours validates and stores the weekly schedule: at least one
// working day, well-formed HH:MM bounds, end after start.
func (s *DefaultEstablishmentService) SetWorkingHours(ctx context.Context, id string, wh scheduling.WorkingHours) error {
	if len(wh.DaysOfWeek) == 0 {
		return fmt.Errorf("selecione pelo menos um dia de funcionamento")
	}
	start, err := parseClock(wh.StartTime)
	if err != nil {
		return fmt.Errorf("horário inicial inválido: %w", err)
	}
	end, err := parseClock(wh.EndTime)
	if err != nil {
		return fmt.Errorf("horário final inválido: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("o horário final deve ser depois do inicial")
	}
	return s.Repo.UpdateWorkingHours(ctx, id, wh)
}

func parseClock(hhmm string) (time.Time, error) {
	return time.Parse("15:04", hhmm)
}

// BlockDate adds a full-day exclusion. Blocking an already blocked date is
// rejected; an empty reason falls back to DefaultBlockReason.
func (s *DefaultEstablishmentService) BlockDate(ctx context.Context, id, date, reason string) error {
	if _, err := time.Parse(scheduling.DateLayout, date); err != nil {
		return fmt.Errorf("data inválida: %w", err)
	}
	est, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch establishment %s: %w", id, err)
	}
	if scheduling.IsDateBlocked(date, est.BlockedDates) {
		return fmt.Errorf("essa data já está bloqueada")
	}
	if reason == "" {
		reason = DefaultBlockReason
	}
	return s.Repo.AddBlockedDate(ctx, id, scheduling.BlockedDate{Date: date, Reason: reason})
}
