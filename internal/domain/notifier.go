package domain

import "context"

// Notifier delivers a single reminder to one user for one event.
type Notifier interface {
	NotifyEventReminder(ctx context.Context, event *Event, user *User) error
}
