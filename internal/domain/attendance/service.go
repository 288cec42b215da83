package attendance

import (
	"context"
)

// AttendanceService is the single entry point every dashboard, report and
// admin action goes through. No caller re-derives periods itself.
type AttendanceService interface {
	// RecordScan appends one QR punch to the event stream.
	RecordScan(ctx context.Context, req ScanRequest) (Event, error)

	// GetMetrics recomputes live metrics (today's totals, current status)
	// for one employee.
	GetMetrics(ctx context.Context, userID string) (Metrics, error)

	// GetReport returns day/week/month rollups over a date range.
	GetReport(ctx context.Context, userID string, filter ReportFilter) (ReportResponse, error)

	// GetDepartmentReport returns the rollups for every member of a
	// department over a date range.
	GetDepartmentReport(ctx context.Context, departmentID string, filter ReportFilter) (DepartmentReportResponse, error)

	// GetAdherence classifies one employee-day, honoring a stored absence
	// mark if present.
	GetAdherence(ctx context.Context, userID, date string) (AdherenceRecord, error)

	// MarkAbsent persists an absence mark; fails with
	// ErrNotEligibleForAbsence unless the eligibility predicate holds.
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (AdherenceRecord, error)

	// RevertAbsence removes a mark so the day falls back to its computed
	// classification.
	RevertAbsence(ctx context.Context, userID, date string) (AdherenceRecord, error)
}
