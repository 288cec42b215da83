package department

import (
	"context"
)

// DepartmentRepository resolves the shift configuration an employee is
// classified against. Callers fall back to DefaultShiftConfig when no
// department row exists.
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)

	// GetShiftByUserID returns the shift config of the department the user
	// belongs to.
	GetShiftByUserID(ctx context.Context, userID string) (ShiftConfig, error)

	// ListUserIDs returns the IDs of the department's members.
	ListUserIDs(ctx context.Context, departmentID string) ([]string, error)
}
