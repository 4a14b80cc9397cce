package domain

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyRegistered is returned by AttendeeRepository.Create when a row for
// the same (event, user) pair already exists.
var ErrAlreadyRegistered = errors.New("user already registered for event")

// Attendee is a join record linking a user to an event they will attend.
// Attendees are created on registration and deleted on withdrawal, never
// updated in place.
// swagger:model Attendee
type Attendee struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// User is attached only when requested via an Include.
	User *User `json:"user,omitempty"`
}

// NewAttendee creates a new Attendee. ID is typically set by the repository on create.
func NewAttendee(eventID, userID string, createdAt time.Time) *Attendee {
	return &Attendee{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// AttendeeRepository defines storage operations for attendee records.
type AttendeeRepository interface {
	Create(ctx context.Context, attendee *Attendee) error
	GetByID(ctx context.Context, id string, include Include) (*Attendee, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Attendee, error)
	ListByEventID(ctx context.Context, eventID string, include Include, params PaginationParams) ([]*Attendee, int, error)
	Delete(ctx context.Context, id string) error
}

// AttendeeService defines attendee-facing operations scoped to a parent event.
type AttendeeService interface {
	ListAttendees(ctx context.Context, eventID string, include Include, params PaginationParams) ([]*Attendee, int, error)
	GetAttendee(ctx context.Context, eventID, attendeeID string, include Include) (*Attendee, error)
	// Register registers the user for the event. Returns (attendee, created,
	// err): created is false when the user was already registered, in which
	// case the existing record is returned.
	Register(ctx context.Context, eventID, userID string) (*Attendee, bool, error)
	Remove(ctx context.Context, eventID, attendeeID string) error
}
