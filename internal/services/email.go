package services

import (
	"context"
	"fmt"

	"eventup/internal/domain"
)

const eventReminderTemplate = "event_reminder"

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{
		mailer:   mailer,
		renderer: renderer,
	}
}

func (s *emailService) SendEventReminder(ctx context.Context, data *domain.EventReminderEmailData) error {
	subject, html, text, err := s.renderer.Render(eventReminderTemplate, data)
	if err != nil {
		return fmt.Errorf("render reminder email: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, html, text); err != nil {
		return fmt.Errorf("send reminder email: %w", err)
	}
	return nil
}

type emailNotifier struct {
	emails domain.EmailService
}

// NewEmailNotifier adapts the email service to the Notifier interface used by
// the reminder sweep.
func NewEmailNotifier(emails domain.EmailService) domain.Notifier {
	return &emailNotifier{emails: emails}
}

func (n *emailNotifier) NotifyEventReminder(ctx context.Context, event *domain.Event, user *domain.User) error {
	return n.emails.SendEventReminder(ctx, &domain.EventReminderEmailData{
		Email:     user.Email,
		Name:      user.Name,
		EventName: event.Name,
		StartTime: event.StartTime,
	})
}
