package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventup/internal/domain"
)

type reminderLogRepository struct {
	DB *sql.DB
}

func NewReminderLogRepository(db *sql.DB) domain.ReminderLogRepository {
	return &reminderLogRepository{
		DB: db,
	}
}

func (r *reminderLogRepository) WasSent(ctx context.Context, eventID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reminder_log WHERE event_id = $1 AND user_id = $2
		)
	`
	var sent bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&sent); err != nil {
		return false, err
	}
	return sent, nil
}

func (r *reminderLogRepository) RecordSent(ctx context.Context, eventID, userID string, sentAt time.Time) error {
	query := `
		INSERT INTO reminder_log (event_id, user_id, sent_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, userID, sentAt)
	return err
}
