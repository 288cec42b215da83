package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
)

type eventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

// Create implements attendance.EventRepository. Events are append-only;
// there is no update or delete path.
func (r *eventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (id, user_id, event_type, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.UserID,
		string(event.Type),
		event.Timestamp,
	).Scan(&event.ID)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ListByUser implements attendance.EventRepository. Timestamps come back as
// raw text so the normalizer owns parsing; a corrupt row degrades to a
// data-quality warning instead of failing the query scan.
func (r *eventRepository) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.RawEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, event_type,
			   to_char(timestamp AT TIME ZONE 'UTC', 'YYYY-MM-DD"T"HH24:MI:SS"Z"')
		FROM attendance_events
		WHERE user_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.RawEvent
	for rows.Next() {
		var ev attendance.RawEvent
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.EventType, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

// ListActiveUsers implements attendance.EventRepository.
func (r *eventRepository) ListActiveUsers(ctx context.Context, since time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT user_id
		FROM attendance_events
		WHERE timestamp >= $1
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active users: %w", err)
	}

	return userIDs, nil
}
