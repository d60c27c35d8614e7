package models

import "time"

// Notification types.
const (
	NotificationPromotion   = "promocao"
	NotificationTermination = "encerramento"
	NotificationReminder    = "lembrete"
)

// Notification statuses.
const (
	NotificationNew  = "nova"
	NotificationRead = "lida"
)

// Notification is a message from an establishment to a client. A copy is
// persisted and, when the client has a registered FCM token, a push is sent.
type Notification struct {
	ID                string    `bson:"id" json:"id"`
	ClientID          string    `bson:"clientId" json:"clientId"`
	FromEstablishment string    `bson:"fromEstablishment" json:"fromEstablishment"`
	Message           string    `bson:"message" json:"message"`
	Type              string    `bson:"type" json:"type"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
