package domain

import "time"

// Recurrence values. A recurrence is a descriptive label on the reminder;
// the resolver never expands it into future occurrences.
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

type Reminder struct {
	ReminderID              string    `json:"id" dynamodbav:"reminder_id"`
	Title                   string    `json:"title" dynamodbav:"title"`
	Message                 string    `json:"message" dynamodbav:"message"`
	Date                    string    `json:"date" dynamodbav:"date"` // YYYY-MM-DD, civil date
	Time                    string    `json:"time" dynamodbav:"time"` // HH:MM, 24-hour
	Recurrence              string    `json:"recurrence" dynamodbav:"recurrence"`
	CompletionAlerts        bool      `json:"completion_alerts" dynamodbav:"completion_alerts"`
	CustomNotificationEmail *string   `json:"custom_notification_email" dynamodbav:"custom_notification_email"`
	CreatedAt               time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateReminderRequest struct {
	Title                   string  `json:"title" validate:"required,max=40"`
	Message                 string  `json:"message" validate:"required,max=120"`
	Date                    string  `json:"date" validate:"required,len=10,datetime=2006-01-02"`
	Time                    string  `json:"time" validate:"required,len=5,datetime=15:04"`
	Recurrence              string  `json:"recurrence" validate:"required,oneof=none daily weekly monthly"`
	CompletionAlerts        bool    `json:"completion_alerts"`
	CustomNotificationEmail *string `json:"custom_notification_email" validate:"omitempty,email"`
}

// DueKey is the lexicographic sort key for due ordering. Date and time are
// fixed-width zero-padded ISO fragments, so plain string comparison of the
// concatenation orders reminders chronologically.
func (r *Reminder) DueKey() string {
	return r.Date + " " + r.Time
}
