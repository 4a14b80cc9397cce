package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventup/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = "id, name, description, start_time, end_time, owner_id, created_at, updated_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull sql.NullString
	err := row.Scan(&e.ID, &e.Name, &descNull, &e.StartTime, &e.EndTime, &e.OwnerID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, description, start_time, end_time, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Description, e.StartTime, e.EndTime, e.OwnerID, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string, include domain.Include) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadRelations(ctx, []*domain.Event{e}, include); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, include domain.Include, params domain.PaginationParams) ([]*domain.Event, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadRelations(ctx, events, include); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if patch.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *patch.Name)
		n++
	}
	if patch.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, *patch.Description)
		n++
	}
	if patch.StartTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_time = $%d", n))
		args = append(args, *patch.StartTime)
		n++
	}
	if patch.EndTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("end_time = $%d", n))
		args = append(args, *patch.EndTime)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id, domain.Include{})
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING `+eventColumns+`
	`, strings.Join(setClauses, ", "), n)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_time BETWEEN $1 AND $2
		ORDER BY start_time
	`
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadRelations(ctx, events, domain.Include{Attendees: true, AttendeeUsers: true}); err != nil {
		return nil, err
	}
	return events, nil
}

// loadRelations attaches the requested relations to the given events with
// one batched query per relation.
func (r *eventRepository) loadRelations(ctx context.Context, events []*domain.Event, include domain.Include) error {
	if len(events) == 0 || !include.Any() {
		return nil
	}
	byID := make(map[string]*domain.Event, len(events))
	ids := make([]string, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	if include.User {
		ownerIDs := make([]string, 0, len(events))
		seen := make(map[string]struct{}, len(events))
		for _, e := range events {
			if _, ok := seen[e.OwnerID]; ok {
				continue
			}
			seen[e.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, e.OwnerID)
		}
		owners, err := r.loadUsers(ctx, ownerIDs)
		if err != nil {
			return fmt.Errorf("load owners: %w", err)
		}
		for _, e := range events {
			e.Owner = owners[e.OwnerID]
		}
	}

	if include.Attendees {
		for _, e := range events {
			e.Attendees = []*domain.Attendee{}
		}
		query := `
			SELECT id, event_id, user_id, created_at
			FROM attendees
			WHERE event_id = ANY($1)
			ORDER BY created_at
		`
		rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
		if err != nil {
			return fmt.Errorf("load attendees: %w", err)
		}
		defer rows.Close()
		var attendees []*domain.Attendee
		for rows.Next() {
			a := &domain.Attendee{}
			if err := rows.Scan(&a.ID, &a.EventID, &a.UserID, &a.CreatedAt); err != nil {
				return fmt.Errorf("load attendees: %w", err)
			}
			attendees = append(attendees, a)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("load attendees: %w", err)
		}

		if include.AttendeeUsers && len(attendees) > 0 {
			userIDs := make([]string, 0, len(attendees))
			seen := make(map[string]struct{}, len(attendees))
			for _, a := range attendees {
				if _, ok := seen[a.UserID]; ok {
					continue
				}
				seen[a.UserID] = struct{}{}
				userIDs = append(userIDs, a.UserID)
			}
			users, err := r.loadUsers(ctx, userIDs)
			if err != nil {
				return fmt.Errorf("load attendee users: %w", err)
			}
			for _, a := range attendees {
				a.User = users[a.UserID]
			}
		}

		for _, a := range attendees {
			if e, ok := byID[a.EventID]; ok {
				e.Attendees = append(e.Attendees, a)
			}
		}
	}

	return nil
}

func (r *eventRepository) loadUsers(ctx context.Context, ids []string) (map[string]*domain.User, error) {
	query := `
		SELECT id, email, name, created_at, updated_at
		FROM users
		WHERE id = ANY($1)
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make(map[string]*domain.User, len(ids))
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users[u.ID] = u
	}
	return users, rows.Err()
}
