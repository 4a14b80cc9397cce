package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventup/internal/domain"
	"eventup/internal/metric"
)

type reminderService struct {
	eventRepo domain.EventRepository
	ledger    domain.ReminderLogRepository
	notifier  domain.Notifier
	logger    *slog.Logger
	lookahead time.Duration
	dedup     bool

	now func() time.Time
}

// NewReminderService creates the reminder sweep. It scans for events starting
// within the lookahead window and notifies every attendee. With dedup enabled
// each (event, user) pair is notified at most once across runs, tracked in the
// reminder ledger.
func NewReminderService(
	eventRepo domain.EventRepository,
	ledger domain.ReminderLogRepository,
	notifier domain.Notifier,
	logger *slog.Logger,
	lookahead time.Duration,
	dedup bool,
) domain.ReminderService {
	return &reminderService{
		eventRepo: eventRepo,
		ledger:    ledger,
		notifier:  notifier,
		logger:    logger,
		lookahead: lookahead,
		dedup:     dedup,
		now:       time.Now,
	}
}

func (s *reminderService) Run(ctx context.Context) (*domain.ReminderRunReport, error) {
	metric.ReminderRuns.Inc()

	from := s.now()
	to := from.Add(s.lookahead)

	events, err := s.eventRepo.ListStartingBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	report := &domain.ReminderRunReport{EventsFound: len(events)}
	s.logger.Info("reminder sweep started",
		"events", len(events),
		"from", from,
		"to", to,
	)

	for _, event := range events {
		for _, attendee := range event.Attendees {
			if attendee.User == nil {
				s.logger.Warn("attendee has no user record, skipping",
					"event_id", event.ID,
					"attendee_id", attendee.ID,
				)
				continue
			}
			if s.dedup {
				sent, err := s.ledger.WasSent(ctx, event.ID, attendee.UserID)
				if err != nil {
					return nil, fmt.Errorf("check reminder ledger: %w", err)
				}
				if sent {
					report.Skipped++
					metric.RemindersSkipped.Inc()
					continue
				}
			}
			if err := s.notifier.NotifyEventReminder(ctx, event, attendee.User); err != nil {
				report.Failed++
				metric.RemindersFailed.Inc()
				s.logger.Error("failed to send reminder",
					"event_id", event.ID,
					"user_id", attendee.UserID,
					"error", err,
				)
				continue
			}
			report.Sent++
			metric.RemindersSent.Inc()
			if s.dedup {
				if err := s.ledger.RecordSent(ctx, event.ID, attendee.UserID, s.now()); err != nil {
					return nil, fmt.Errorf("record reminder: %w", err)
				}
			}
		}
	}

	s.logger.Info("reminder sweep finished",
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
	return report, nil
}
