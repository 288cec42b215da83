package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
	"github.com/punchpoint/punchpoint-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{
		departmentService: departmentService,
	}
}

// Get handles GET /departments/{departmentID}
// Returns the department with its shift window and grace period.
func (h *departmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	result, err := h.departmentService.Get(r.Context(), departmentID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
