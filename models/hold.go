package models

import "time"

// BookingHold is the transient state of a two-step client booking. It lives
// in the Redis cache between propose and confirm and expires on its own if
// the client never confirms.
type BookingHold struct {
	HoldID            string    `json:"holdId"`
	ClientID          string    `json:"clientId"`
	ClientName        string    `json:"clientName"`
	EstablishmentID   string    `json:"establishmentId"`
	EstablishmentName string    `json:"establishmentName"`
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	CreatedAt         time.Time `json:"createdAt"`
}
