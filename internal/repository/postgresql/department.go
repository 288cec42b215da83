package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name,
			   shift_start_time, shift_end_time, grace_period_minutes,
			   created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.CompanyID, &d.Name,
		&d.Shift.StartTime, &d.Shift.EndTime, &d.Shift.GracePeriodMinutes,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// GetShiftByUserID implements department.DepartmentRepository.
func (r *departmentRepository) GetShiftByUserID(ctx context.Context, userID string) (department.ShiftConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.shift_start_time, d.shift_end_time, d.grace_period_minutes
		FROM departments d
		JOIN users u ON u.department_id = d.id
		WHERE u.id = $1
	`

	var shift department.ShiftConfig
	err := q.QueryRow(ctx, query, userID).Scan(
		&shift.StartTime, &shift.EndTime, &shift.GracePeriodMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ShiftConfig{}, department.ErrDepartmentNotFound
		}
		return department.ShiftConfig{}, fmt.Errorf("failed to get shift config by user id: %w", err)
	}

	return shift, nil
}

// ListUserIDs implements department.DepartmentRepository.
func (r *departmentRepository) ListUserIDs(ctx context.Context, departmentID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id
		FROM users
		WHERE department_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list department users: %w", err)
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
		return nil, fmt.Errorf("failed to iterate department users: %w", err)
	}

	return userIDs, nil
}
