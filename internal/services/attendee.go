package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventup/internal/domain"
)

type attendeeService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(eventRepo domain.EventRepository, attendeeRepo domain.AttendeeRepository) domain.AttendeeService {
	return &attendeeService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
	}
}

func (s *attendeeService) ListAttendees(ctx context.Context, eventID string, include domain.Include, params domain.PaginationParams) ([]*domain.Attendee, int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID, domain.Include{}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrNotFound
		}
		return nil, 0, fmt.Errorf("get event: %w", err)
	}
	attendees, total, err := s.attendeeRepo.ListByEventID(ctx, eventID, include, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, total, nil
}

func (s *attendeeService) GetAttendee(ctx context.Context, eventID, attendeeID string, include domain.Include) (*domain.Attendee, error) {
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID, include)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get attendee: %w", err)
	}
	// Scoped to the parent event: an attendee of another event is invisible here.
	if attendee.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	return attendee, nil
}

func (s *attendeeService) Register(ctx context.Context, eventID, userID string) (*domain.Attendee, bool, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID, domain.Include{}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	// Registration is idempotent: a second attempt returns the existing record.
	if existing, err := s.attendeeRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get attendee: %w", err)
	}

	attendee := domain.NewAttendee(eventID, userID, time.Now())
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		// A concurrent registration can win between the lookup above and
		// this insert; treat losing that race as the repeat case.
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			existing, getErr := s.attendeeRepo.GetByEventAndUser(ctx, eventID, userID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get attendee: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create attendee: %w", err)
	}
	return attendee, true, nil
}

func (s *attendeeService) Remove(ctx context.Context, eventID, attendeeID string) error {
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID, domain.Include{})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get attendee: %w", err)
	}
	if attendee.EventID != eventID {
		return domain.ErrNotFound
	}
	if err := s.attendeeRepo.Delete(ctx, attendeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete attendee: %w", err)
	}
	return nil
}
