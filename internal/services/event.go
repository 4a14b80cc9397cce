package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventup/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	authz          domain.Authorizer
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, authz domain.Authorizer, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		authz:          authz,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, actorID string, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// The gate runs before any query so a denial leaks no partial results.
	if err := s.authz.Authorize(ctx, domain.ActionViewAny, actorID, nil); err != nil {
		return nil, 0, err
	}
	events, total, err := s.eventRepo.List(ctx, include, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, include domain.Include) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.OwnerID == "" {
		return nil, fmt.Errorf("event owner is required")
	}
	if !event.EndTime.After(event.StartTime) {
		return nil, domain.ErrInvalidInput
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	if !include.Any() {
		return event, nil
	}
	created, err := s.eventRepo.GetByID(ctx, event.ID, include)
	if err != nil {
		return nil, fmt.Errorf("reload created event: %w", err)
	}
	return created, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string, include domain.Include) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID, include)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, actorID string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID, domain.Include{})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := s.authz.Authorize(ctx, domain.ActionUpdate, actorID, event); err != nil {
		return nil, err
	}

	// The end time must stay strictly after the resulting start time,
	// whichever of the two the patch supplies.
	newStart := event.StartTime
	if patch.StartTime != nil {
		newStart = *patch.StartTime
	}
	newEnd := event.EndTime
	if patch.EndTime != nil {
		newEnd = *patch.EndTime
	}
	if !newEnd.After(newStart) {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.eventRepo.Update(ctx, eventID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, actorID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.authz.Authorize(ctx, domain.ActionDelete, actorID, nil); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
