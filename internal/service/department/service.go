package department

import (
	"context"
	"fmt"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departments department.DepartmentRepository
}

func NewDepartmentService(departments department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departments: departments}
}

// Get implements department.DepartmentService.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}
