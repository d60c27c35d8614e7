// Package agenda normalizes heterogeneous appointment records into uniform
// display events and offers the calendar handle every agenda page consumes.
package agenda

import (
	"time"

	"agendly/models"
	"agendly/services/scheduling"
)

// Event colors, keyed by appointment status.
const (
	ColorScheduled = "#3498db"
	ColorFree      = "#2ecc71"
	ColorOccupied  = "#27ae60"
)

// DefaultAppointmentLength fills in a missing end date on older records.
const DefaultAppointmentLength = time.Hour

// EventProps carries the status-derived details shown in the details modal.
type EventProps struct {
	Status            string `json:"status,omitempty"`
	ClientID          string `json:"clientId,omitempty"`
	ClientName        string `json:"clientName,omitempty"`
	ProfessionalName  string `json:"professionalName,omitempty"`
	EstablishmentName string `json:"establishmentName,omitempty"`
}

// DisplayEvent is the uniform calendar event rendered by the widget.
type DisplayEvent struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Color string     `json:"color"`
	Props EventProps `json:"extendedProps"`
}

// Interval returns the slot occupied by the event.
func (e DisplayEvent) Interval() scheduling.Interval {
	return scheduling.Interval{Start: e.Start, End: e.End}
}

// ToDisplayEvent maps an appointment record to its display event. Color and
// title derive from the status; records without an end date get the default
// appointment length.
func ToDisplayEvent(a models.Appointment) DisplayEvent {
	end := a.EndDate
	if end.IsZero() {
		end = a.Date.Add(DefaultAppointmentLength)
	}

	ev := DisplayEvent{
		ID:    a.ID,
		Start: a.Date,
		End:   end,
		Props: EventProps{Status: a.Status},
	}
	if a.Client != nil {
		ev.Props.ClientID = a.Client.ID
		ev.Props.ClientName = a.Client.Name
	}
	if a.Professional != nil {
		ev.Props.ProfessionalName = a.Professional.Name
	}
	if a.Establishment != nil {
		ev.Props.EstablishmentName = a.Establishment.Name
	}

	switch a.Status {
	case models.StatusScheduled:
		ev.Color = ColorScheduled
		ev.Title = scheduledTitle(a)
	case models.StatusFree:
		ev.Color = ColorFree
		ev.Title = "Disponível"
	case models.StatusOccupied:
		ev.Color = ColorOccupied
		if a.Client != nil && a.Client.Name != "" {
			ev.Title = "Consulta: " + a.Client.Name
		} else {
			ev.Title = "Ocupado"
		}
	default:
		ev.Color = ColorScheduled
		ev.Title = scheduledTitle(a)
	}
	return ev
}

// scheduledTitle falls back through professional name, establishment name and
// finally the generic label.
func scheduledTitle(a models.Appointment) string {
	if a.Professional != nil && a.Professional.Name != "" {
		return "Consulta - " + a.Professional.Name
	}
	if a.Establishment != nil && a.Establishment.Name != "" {
		return "Consulta - " + a.Establishment.Name
	}
	return "Consulta"
}

// BlockedCells is the day-cell decoration hook: it returns the dates inside
// [from, to] that are members of the blocked set, for the widget to flag.
func BlockedCells(from, to time.Time, blocked []scheduling.BlockedDate) []string {
	var cells []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(scheduling.DateLayout)
		if scheduling.IsDateBlocked(date, blocked) {
			cells = append(cells, date)
		}
	}
	return cells
}
