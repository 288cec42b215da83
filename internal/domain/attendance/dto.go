package attendance

import (
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ScanRequest is one QR punch. Timestamp is optional; when omitted the
// server instant is used. Admins may supply it to backfill forgotten punches.
type ScanRequest struct {
	UserID    string  `json:"user_id"`
	EventType string  `json:"event_type"`
	Timestamp *string `json:"timestamp,omitempty"` // RFC3339, UTC
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !EventType(r.EventType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "event_type",
			Message: "event_type must be one of: signin, signout, break_start, break_end",
		})
	}

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, valid := validator.IsValidDateTime(*r.Timestamp); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid RFC3339 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportFilter selects the date range for aggregated reports. Dates are
// org-local calendar days, inclusive.
type ReportFilter struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkAbsentRequest marks one employee-day absent. AdminID comes from the
// caller's JWT claims, never from the request body.
type MarkAbsentRequest struct {
	UserID  string `json:"user_id"`
	Date    string `json:"date"` // YYYY-MM-DD
	AdminID string `json:"-"`
}

func (r *MarkAbsentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DaySummary is one calendar day of aggregated totals plus its adherence
// classification, ready to render.
type DaySummary struct {
	Date             string          `json:"date"`
	WorkTimeSeconds  int64           `json:"work_time_seconds"`
	BreakTimeSeconds int64           `json:"break_time_seconds"`
	OvertimeSeconds  int64           `json:"overtime_seconds"`
	WasCapped        bool            `json:"was_capped"`
	Status           AdherenceStatus `json:"status"`
}

// WeekSummary keys weeks by their Sunday start date.
type WeekSummary struct {
	WeekStart        string `json:"week_start"` // Sunday, YYYY-MM-DD
	WorkTimeSeconds  int64  `json:"work_time_seconds"`
	BreakTimeSeconds int64  `json:"break_time_seconds"`
	OvertimeSeconds  int64  `json:"overtime_seconds"`
}

// MonthSummary keys months as YYYY-MM.
type MonthSummary struct {
	Month            string `json:"month"`
	WorkTimeSeconds  int64  `json:"work_time_seconds"`
	BreakTimeSeconds int64  `json:"break_time_seconds"`
	OvertimeSeconds  int64  `json:"overtime_seconds"`
}

// ReportResponse is the rolled-up view for one employee over a date range.
type ReportResponse struct {
	UserID   string         `json:"user_id"`
	Timezone string         `json:"timezone"`
	Days     []DaySummary   `json:"days"`
	Weeks    []WeekSummary  `json:"weeks"`
	Months   []MonthSummary `json:"months"`
	Warnings []Issue        `json:"warnings,omitempty"`
}

// DepartmentReportResponse bundles every member's report for one department.
type DepartmentReportResponse struct {
	DepartmentID   string           `json:"department_id"`
	DepartmentName string           `json:"department_name"`
	Reports        []ReportResponse `json:"reports"`
}
