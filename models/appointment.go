package models

import "time"

// Appointment statuses as stored on the record.
const (
	StatusScheduled = "agendada" // booked by the establishment for a linked client
	StatusOccupied  = "ocupado"  // booked by a client on an open slot
	StatusFree      = "livre"    // open slot placeholder published by an establishment
)

// Appointment creators.
const (
	CreatedByClient        = "client"
	CreatedByEstablishment = "establishment"
)

// ProfileRef is a denormalized pointer to a client, professional or
// establishment profile. Nil means the reference is absent.
type ProfileRef struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Appointment represents one booked (or published) slot on an agenda.
type Appointment struct {
	ID            string      `bson:"id" json:"id"`
	Establishment *ProfileRef `bson:"establishment,omitempty" json:"establishment,omitempty"`
	Client        *ProfileRef `bson:"client,omitempty" json:"client,omitempty"`
	Professional  *ProfileRef `bson:"professional,omitempty" json:"professional,omitempty"`
	Date          time.Time   `bson:"date" json:"date"`
	EndDate       time.Time   `bson:"endDate" json:"endDate,omitzero"`
	Status        string      `bson:"status" json:"status"`
	CreatedBy     string      `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
}
