package domain

import "time"

// Reminder statuses.
const (
	ReminderPending = "pending"
	ReminderSent    = "sent"
)

// Reminder is a scheduled SMS nudge at a fixed offset before a project's
// notice due date.
type Reminder struct {
	ReminderID string     `json:"id" dynamodbav:"reminder_id"`
	ProjectID  string     `json:"project_id" dynamodbav:"project_id"`
	UserID     string     `json:"user_id" dynamodbav:"user_id"`
	Phone      string     `json:"phone" dynamodbav:"phone"`
	OffsetDays int        `json:"offset_days" dynamodbav:"offset_days"`
	RemindAt   time.Time  `json:"remind_at" dynamodbav:"remind_at"`
	Message    string     `json:"message" dynamodbav:"message"`
	Status     string     `json:"status" dynamodbav:"status"`
	SentAt     *time.Time `json:"sent_at,omitempty" dynamodbav:"sent_at"`
	CreatedAt  time.Time  `json:"created" dynamodbav:"created_at"`
}

type ScheduleRemindersRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}
