package models

import (
	"time"

	"agendly/services/scheduling"
)

// EstablishmentProfile is a business entity offering appointment slots.
// WorkingHours and BlockedDates belong to exactly one establishment and are
// embedded on the profile document, the same shape the agenda pages read.
type EstablishmentProfile struct {
	ID           string                   `bson:"id" json:"id"`
	UserID       string                   `bson:"userId" json:"userId"`
	Name         string                   `bson:"name" json:"name"`
	Description  string                   `bson:"description,omitempty" json:"description,omitempty"`
	Address      string                   `bson:"address,omitempty" json:"address,omitempty"`
	PhotoURL     string                   `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	WorkingHours scheduling.WorkingHours  `bson:"workingHours" json:"workingHours"`
	BlockedDates []scheduling.BlockedDate `bson:"blockedDates" json:"blockedDates"`
	CreatedAt    time.Time                `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time                `bson:"updatedAt" json:"updatedAt"`
}
