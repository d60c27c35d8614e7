// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	clientRepo "agendly/database/repository/client"
	establishmentRepo "agendly/database/repository/establishment"
	relationRepo "agendly/database/repository/relation"
	"agendly/models"
	"agendly/services/agenda"
	"agendly/services/tasks"
)

// Slot lengths applied when the caller does not supply an end time. The
// establishment books short consultation slots; a client booking an open
// slot takes the full hour.
const (
	EstablishmentSlotLength = 30 * time.Minute
	ClientSlotLength        = time.Hour
)

// PublicAgendaLimit caps the query behind the establishment's public view.
const PublicAgendaLimit = 1000

// HoldTTL is how long a proposed booking stays reserved in the cache before
// the client must confirm it.
const HoldTTL = 10 * time.Minute

// AppointmentService manages agendas for the three page views and the
// booking flows behind them.
type AppointmentService interface {
	// Agenda views, already adapted for display.
	ClientAgenda(ctx context.Context, clientID string) ([]agenda.DisplayEvent, error)
	EstablishmentAgenda(ctx context.Context, establishmentID string) ([]agenda.DisplayEvent, error)
	PublicAgenda(ctx context.Context, establishmentID string) ([]agenda.DisplayEvent, error)
	OccupiedWeekLoad(ctx context.Context, establishmentID string) (int64, error)

	// Establishment-side booking for a linked client.
	CreateForClient(ctx context.Context, establishmentID, clientID string, start time.Time) (*models.Appointment, error)

	// Client-side two-step booking.
	ProposeBooking(ctx context.Context, clientID, establishmentID string, start time.Time) (*models.BookingHold, error)
	ConfirmBooking(ctx context.Context, holdID string) (*models.Appointment, error)

	Cancel(ctx context.Context, appointmentID, actorRole, actorProfileID string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	EstRepo    establishmentRepo.EstablishmentRepository
	ClientRepo clientRepo.ClientRepository
	RelRepo    relationRepo.RelationRepository
	Reminders  tasks.ReminderScheduler
}
