package main

import (
	"context"
	"database/sql"
	"os"

	_ "github.com/lib/pq"

	"eventup/config"
	"eventup/internal/adapters/email"
	"eventup/internal/repository/postgres"
	"eventup/internal/services"
)

// send-reminders sweeps for events starting within the lookahead window and
// emails every attendee. Meant to run from cron; exits non-zero when the sweep
// itself fails (individual delivery failures are logged and counted instead).
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to configure mailer", "err", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	reminders := services.NewReminderService(
		postgres.NewEventRepository(db),
		postgres.NewReminderLogRepository(db),
		services.NewEmailNotifier(emailService),
		logger,
		cfg.ReminderLookahead,
		cfg.ReminderDedup,
	)

	report, err := reminders.Run(context.Background())
	if err != nil {
		logger.Error("reminder sweep failed", "err", err)
		os.Exit(1)
	}
	logger.Info("reminder sweep report",
		"events_found", report.EventsFound,
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped,
	)
}
