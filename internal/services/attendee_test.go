package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventup/internal/domain"
)

func existingEventRepo(t *testing.T) *mockEventRepo {
	t.Helper()
	return &mockEventRepo{
		getByIDFn: func(ctx context.Context, id string, include domain.Include) (*domain.Event, error) {
			if id != "e1" {
				return nil, domain.ErrNotFound
			}
			return &domain.Event{ID: "e1", Name: "Go Meetup", OwnerID: "u1"}, nil
		},
	}
}

func TestAttendeeService_Register(t *testing.T) {
	t.Run("first registration", func(t *testing.T) {
		attendeeRepo := &mockAttendeeRepo{
			getByEventAndUserFn: func(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
				return nil, domain.ErrNotFound
			},
			createFn: func(ctx context.Context, attendee *domain.Attendee) error {
				attendee.ID = "a1"
				return nil
			},
		}
		svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

		attendee, created, err := svc.Register(context.Background(), "e1", "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected created=true")
		}
		if attendee.ID != "a1" || attendee.EventID != "e1" || attendee.UserID != "u2" {
			t.Errorf("unexpected attendee: %+v", attendee)
		}
	})

	t.Run("repeat registration returns existing", func(t *testing.T) {
		existing := &domain.Attendee{ID: "a1", EventID: "e1", UserID: "u2", CreatedAt: time.Now()}
		attendeeRepo := &mockAttendeeRepo{
			getByEventAndUserFn: func(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
				return existing, nil
			},
			createFn: func(ctx context.Context, attendee *domain.Attendee) error {
				return nil
			},
		}
		svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

		attendee, created, err := svc.Register(context.Background(), "e1", "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Error("expected created=false")
		}
		if attendee.ID != "a1" {
			t.Errorf("expected existing attendee, got %+v", attendee)
		}
		if attendeeRepo.createCalls != 0 {
			t.Errorf("create called %d times for an existing registration", attendeeRepo.createCalls)
		}
	})

	t.Run("lost insert race returns existing", func(t *testing.T) {
		// A concurrent registration lands between the lookup and the
		// insert: the lookup misses, the insert hits the unique
		// constraint, and the winner's row must come back with
		// created=false.
		winner := &domain.Attendee{ID: "a1", EventID: "e1", UserID: "u2", CreatedAt: time.Now()}
		lookups := 0
		attendeeRepo := &mockAttendeeRepo{
			getByEventAndUserFn: func(ctx context.Context, eventID, userID string) (*domain.Attendee, error) {
				lookups++
				if lookups == 1 {
					return nil, domain.ErrNotFound
				}
				return winner, nil
			},
			createFn: func(ctx context.Context, attendee *domain.Attendee) error {
				return domain.ErrAlreadyRegistered
			},
		}
		svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

		attendee, created, err := svc.Register(context.Background(), "e1", "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Error("expected created=false")
		}
		if attendee.ID != "a1" {
			t.Errorf("expected winner's attendee, got %+v", attendee)
		}
		if lookups != 2 {
			t.Errorf("expected a re-fetch after the failed insert, got %d lookups", lookups)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewAttendeeService(existingEventRepo(t), &mockAttendeeRepo{})

		_, _, err := svc.Register(context.Background(), "missing", "u2")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAttendeeService_GetAttendee(t *testing.T) {
	attendeeRepo := &mockAttendeeRepo{
		getByIDFn: func(ctx context.Context, id string, include domain.Include) (*domain.Attendee, error) {
			if id != "a1" {
				return nil, domain.ErrNotFound
			}
			return &domain.Attendee{ID: "a1", EventID: "e1", UserID: "u2"}, nil
		},
	}
	svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

	t.Run("found", func(t *testing.T) {
		attendee, err := svc.GetAttendee(context.Background(), "e1", "a1", domain.Include{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attendee.ID != "a1" {
			t.Errorf("unexpected attendee: %+v", attendee)
		}
	})

	t.Run("wrong parent event", func(t *testing.T) {
		_, err := svc.GetAttendee(context.Background(), "e2", "a1", domain.Include{})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAttendeeService_Remove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deleted := ""
		attendeeRepo := &mockAttendeeRepo{
			getByIDFn: func(ctx context.Context, id string, include domain.Include) (*domain.Attendee, error) {
				return &domain.Attendee{ID: "a1", EventID: "e1", UserID: "u2"}, nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

		if err := svc.Remove(context.Background(), "e1", "a1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "a1" {
			t.Errorf("expected delete of a1, got %q", deleted)
		}
	})

	t.Run("wrong parent event", func(t *testing.T) {
		attendeeRepo := &mockAttendeeRepo{
			getByIDFn: func(ctx context.Context, id string, include domain.Include) (*domain.Attendee, error) {
				return &domain.Attendee{ID: "a1", EventID: "e1", UserID: "u2"}, nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				t.Fatal("delete should not be called")
				return nil
			},
		}
		svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

		if err := svc.Remove(context.Background(), "e2", "a1"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAttendeeService_ListAttendees(t *testing.T) {
	attendees := []*domain.Attendee{
		{ID: "a1", EventID: "e1", UserID: "u2"},
		{ID: "a2", EventID: "e1", UserID: "u3"},
	}
	attendeeRepo := &mockAttendeeRepo{
		listByEventIDFn: func(ctx context.Context, eventID string, include domain.Include, params domain.PaginationParams) ([]*domain.Attendee, int, error) {
			return attendees, 2, nil
		},
	}
	svc := NewAttendeeService(existingEventRepo(t), attendeeRepo)

	got, total, err := svc.ListAttendees(context.Background(), "e1", domain.Include{}, domain.PaginationParams{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Errorf("expected 2 attendees, got %d (total %d)", len(got), total)
	}

	t.Run("unknown event", func(t *testing.T) {
		_, _, err := svc.ListAttendees(context.Background(), "missing", domain.Include{}, domain.PaginationParams{Page: 1, PageSize: 20})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
