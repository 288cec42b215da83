package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
)

type adherenceRepository struct {
	db *database.DB
}

func NewAdherenceRepository(db *database.DB) attendance.AdherenceRepository {
	return &adherenceRepository{db: db}
}

// GetMark implements attendance.AdherenceRepository.
func (r *adherenceRepository) GetMark(ctx context.Context, userID, date string) (*attendance.AdherenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, to_char(date, 'YYYY-MM-DD'), status, marked_by
		FROM adherence_marks
		WHERE user_id = $1
		  AND date = $2
	`

	var record attendance.AdherenceRecord
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&record.UserID, &record.Date, &record.Status, &record.MarkedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAdherenceMarkNotFound
		}
		return nil, fmt.Errorf("failed to get absence mark: %w", err)
	}

	return &record, nil
}

// ListMarks implements attendance.AdherenceRepository.
func (r *adherenceRepository) ListMarks(ctx context.Context, userID, fromDate, toDate string) ([]attendance.AdherenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, to_char(date, 'YYYY-MM-DD'), status, marked_by
		FROM adherence_marks
		WHERE user_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence marks: %w", err)
	}
	defer rows.Close()

	var records []attendance.AdherenceRecord
	for rows.Next() {
		var record attendance.AdherenceRecord
		if err := rows.Scan(&record.UserID, &record.Date, &record.Status, &record.MarkedBy); err != nil {
			return nil, fmt.Errorf("failed to scan absence mark: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absence marks: %w", err)
	}

	return records, nil
}

// SaveMark implements attendance.AdherenceRepository. The conflict clause
// makes re-marking a no-op, which keeps the action idempotent.
func (r *adherenceRepository) SaveMark(ctx context.Context, record attendance.AdherenceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adherence_marks (user_id, date, status, marked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	_, err := q.Exec(ctx, query, record.UserID, record.Date, string(record.Status), record.MarkedBy)
	if err != nil {
		return fmt.Errorf("failed to save absence mark: %w", err)
	}

	return nil
}

// DeleteMark implements attendance.AdherenceRepository.
func (r *adherenceRepository) DeleteMark(ctx context.Context, userID, date string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM adherence_marks
		WHERE user_id = $1
		  AND date = $2
	`

	tag, err := q.Exec(ctx, query, userID, date)
	if err != nil {
		return fmt.Errorf("failed to delete absence mark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAdherenceMarkNotFound
	}

	return nil
}
