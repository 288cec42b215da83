package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	GetMyMetrics(w http.ResponseWriter, r *http.Request)
	GetMetrics(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
	GetDepartmentReport(w http.ResponseWriter, r *http.Request)
	GetAdherence(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	RevertAbsence(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// getUserIDFromContext extracts user_id from JWT context
func getUserIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	userID, ok := claims["user_id"].(string)
	return userID, ok
}

// Scan handles POST /attendance/scan
// One QR punch: signin, signout, break_start or break_end.
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.ScanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.RecordScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Scan recorded", result)
}

// GetMyMetrics handles GET /attendance/metrics
// Live metrics for the authenticated employee.
func (h *attendanceHandlerImpl) GetMyMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.attendanceService.GetMetrics(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMetrics handles GET /attendance/{userID}/metrics (admin only)
func (h *attendanceHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.attendanceService.GetMetrics(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetReport handles GET /attendance/{userID}/report
// Query params:
//   - start_date: YYYY-MM-DD
//   - end_date: YYYY-MM-DD
func (h *attendanceHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	filter := attendance.ReportFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetReport(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentReport handles GET /attendance/departments/{departmentID}/report
// Same query params as GetReport; returns one report per department member.
func (h *attendanceHandlerImpl) GetDepartmentReport(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")

	filter := attendance.ReportFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetDepartmentReport(r.Context(), departmentID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdherence handles GET /attendance/{userID}/adherence/{date}
func (h *attendanceHandlerImpl) GetAdherence(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.GetAdherence(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MarkAbsent handles POST /attendance/absences (admin only)
func (h *attendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	adminID, ok := getUserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req attendance.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = adminID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.MarkAbsent(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Day marked absent", result)
}

// RevertAbsence handles DELETE /attendance/absences/{userID}/{date} (admin only)
func (h *attendanceHandlerImpl) RevertAbsence(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.RevertAbsence(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence mark reverted", result)
}
