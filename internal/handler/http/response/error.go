package response

import (
	"errors"
	"net/http"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/auth"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/company"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidEventType):
		BadRequest(w, "Invalid event type", nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrNotEligibleForAbsence):
		Conflict(w, "Day is not eligible to be marked absent")
	case errors.Is(err, attendance.ErrAdherenceMarkNotFound):
		NotFound(w, "No absence mark exists for this day")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Unauthorized to access this attendance record")

	// Org configuration errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
