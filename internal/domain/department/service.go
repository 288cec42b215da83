package department

import (
	"context"
)

// DepartmentService exposes the read surface for shift configuration.
// Shift windows are managed out of band; this backend only consumes them.
type DepartmentService interface {
	// Get returns one department with its shift configuration.
	Get(ctx context.Context, id string) (Department, error)
}
