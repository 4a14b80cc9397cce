package domain

import (
	"context"
	"time"
)

// Event represents a scheduled occurrence with a time window, owned by a user.
// Invariant: EndTime is strictly after StartTime.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	OwnerID     string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations, attached only when requested via an Include.
	Owner     *User       `json:"user,omitempty"`
	Attendees []*Attendee `json:"attendees,omitempty"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name string, description *string, startTime, endTime time.Time, ownerID string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventPatch holds the optional fields of a partial event update.
// A nil field is left unchanged.
type EventPatch struct {
	Name        *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string, include Include) (*Event, error)
	// List returns a page of events ordered by creation time, most recent
	// first, plus the total number of events.
	List(ctx context.Context, include Include, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
	// ListStartingBetween returns events whose start_time falls within the
	// closed interval [from, to], with attendees and their users loaded.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*Event, error)
}

// EventService defines the business logic for event CRUD.
type EventService interface {
	ListEvents(ctx context.Context, actorID string, include Include, params PaginationParams) ([]*Event, int, error)
	CreateEvent(ctx context.Context, event *Event, include Include) (*Event, error)
	GetEvent(ctx context.Context, eventID string, include Include) (*Event, error)
	UpdateEvent(ctx context.Context, eventID, actorID string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, actorID string) error
}
