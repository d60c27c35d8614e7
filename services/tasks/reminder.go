// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"agendly/config"
	"agendly/models"
)

const TypeSendReminder = "reminder:send"

// ReminderLeadTime is how long before the appointment the reminder fires.
const ReminderLeadTime = time.Hour

// NewReminderTask builds the asynq task carrying the reminder payload,
// scheduled for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// AsynqReminderScheduler enqueues to the reminder queue over Redis.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler builds a scheduler on the configured reminder
// queue database.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a push for one hour before the appointment. An
// appointment starting sooner than the lead time gets no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	if appt.Client == nil {
		return nil
	}
	fireAt := appt.Date.Add(-ReminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	body := fmt.Sprintf("Você tem uma consulta às %s", appt.Date.Format("15:04"))
	if appt.Establishment != nil && appt.Establishment.Name != "" {
		body = fmt.Sprintf("Você tem uma consulta em %s às %s",
			appt.Establishment.Name, appt.Date.Format("15:04"))
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ClientID:      appt.Client.ID,
		Title:         "Lembrete de consulta",
		Body:          body,
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
