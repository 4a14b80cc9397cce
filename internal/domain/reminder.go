package domain

import (
	"context"
	"time"
)

// ReminderLogRepository is the processed ledger for reminder dedup: one row
// per (event, user) pair already notified.
type ReminderLogRepository interface {
	WasSent(ctx context.Context, eventID, userID string) (bool, error)
	RecordSent(ctx context.Context, eventID, userID string, sentAt time.Time) error
}

// ReminderRunReport summarizes one sweep invocation.
type ReminderRunReport struct {
	EventsFound int `json:"events_found"`
	Sent        int `json:"sent"`
	Failed      int `json:"failed"`
	Skipped     int `json:"skipped"`
}

// ReminderService runs the reminder sweep: find events starting within the
// lookahead window and notify each attendee's user once per invocation.
type ReminderService interface {
	Run(ctx context.Context) (*ReminderRunReport, error)
}
