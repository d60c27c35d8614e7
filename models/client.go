package models

import "time"

// ClientProfile is an end user booking appointments.
type ClientProfile struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	ContactEmail string    `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	PhotoURL     string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProfessionalProfile is a service provider affiliated with an establishment.
type ProfessionalProfile struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Name            string    `bson:"name" json:"name"`
	Specialty       string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
