package models

import "time"

// Relation statuses.
const (
	RelationActive = "ativo"
)

// Relation links a client to an establishment. Only clients with an active
// relation appear on the establishment's roster and can be booked by it.
type Relation struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// Interest is a client's request to be linked to an establishment, sent from
// the establishment's public agenda page when no relation exists yet.
type Interest struct {
	ID              string    `bson:"id" json:"id"`
	ClientID        string    `bson:"clientId" json:"clientId"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Message         string    `bson:"message" json:"message"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
