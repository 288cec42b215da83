package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/orgcache"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	engine      *Engine
	tx          attendance.TxManager
	events      attendance.EventRepository
	marks       attendance.AdherenceRepository
	departments department.DepartmentRepository
	orgs        *orgcache.Cache
	hub         *sse.Hub
}

func NewAttendanceService(
	tx attendance.TxManager,
	events attendance.EventRepository,
	marks attendance.AdherenceRepository,
	departments department.DepartmentRepository,
	orgs *orgcache.Cache,
	hub *sse.Hub,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		engine:      NewEngine(),
		tx:          tx,
		events:      events,
		marks:       marks,
		departments: departments,
		orgs:        orgs,
		hub:         hub,
	}
}

// localMidnight returns 00:00 of the instant's calendar day in loc.
func localMidnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// RecordScan implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RecordScan(ctx context.Context, req attendance.ScanRequest) (attendance.Event, error) {
	if err := req.Validate(); err != nil {
		return attendance.Event{}, err
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil && *req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err != nil {
			return attendance.Event{}, fmt.Errorf("failed to parse scan timestamp: %w", err)
		}
		timestamp = parsed.UTC()
	}

	event := attendance.Event{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      attendance.EventType(req.EventType),
		Timestamp: timestamp,
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	s.hub.Publish(sse.Notification{UserID: created.UserID, Kind: sse.KindScan})

	return created, nil
}

// GetMetrics implements attendance.AttendanceService. The fetch window spans
// yesterday and today in the org timezone so an overnight session that
// opened before midnight still drives the live status.
func (s *AttendanceServiceImpl) GetMetrics(ctx context.Context, userID string) (attendance.Metrics, error) {
	cfg, err := s.orgs.Get(ctx, userID)
	if err != nil {
		return attendance.Metrics{}, fmt.Errorf("failed to resolve org config: %w", err)
	}

	now := time.Now().UTC()
	from := localMidnight(now, cfg.Location).AddDate(0, 0, -1)
	to := localMidnight(now, cfg.Location).AddDate(0, 0, 1)

	raw, err := s.events.ListByUser(ctx, userID, from.UTC(), to.UTC())
	if err != nil {
		return attendance.Metrics{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	return s.engine.ComputeMetrics(userID, raw, cfg.Location, now), nil
}

// GetReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetReport(ctx context.Context, userID string, filter attendance.ReportFilter) (attendance.ReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ReportResponse{}, err
	}

	cfg, err := s.orgs.Get(ctx, userID)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to resolve org config: %w", err)
	}

	from, err := time.ParseInLocation("2006-01-02", filter.StartDate, cfg.Location)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	to, err := time.ParseInLocation("2006-01-02", filter.EndDate, cfg.Location)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	raw, err := s.events.ListByUser(ctx, userID, from.UTC(), to.AddDate(0, 0, 1).UTC())
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	stored, err := s.marks.ListMarks(ctx, userID, filter.StartDate, filter.EndDate)
	if err != nil {
		return attendance.ReportResponse{}, fmt.Errorf("failed to list absence marks: %w", err)
	}
	marks := make(map[string]attendance.AdherenceRecord, len(stored))
	for _, m := range stored {
		marks[m.Date] = m
	}

	now := time.Now().UTC()
	return s.engine.ComputeReport(userID, raw, cfg.Shift, cfg.Location, cfg.Timezone, now, marks, from, to), nil
}

// GetDepartmentReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDepartmentReport(ctx context.Context, departmentID string, filter attendance.ReportFilter) (attendance.DepartmentReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DepartmentReportResponse{}, err
	}

	dept, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return attendance.DepartmentReportResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	userIDs, err := s.departments.ListUserIDs(ctx, departmentID)
	if err != nil {
		return attendance.DepartmentReportResponse{}, fmt.Errorf("failed to list department users: %w", err)
	}

	response := attendance.DepartmentReportResponse{
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
	}
	for _, userID := range userIDs {
		report, err := s.GetReport(ctx, userID, filter)
		if err != nil {
			return attendance.DepartmentReportResponse{}, err
		}
		response.Reports = append(response.Reports, report)
	}

	return response, nil
}

// GetAdherence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAdherence(ctx context.Context, userID, date string) (attendance.AdherenceRecord, error) {
	cfg, err := s.orgs.Get(ctx, userID)
	if err != nil {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to resolve org config: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, cfg.Location)
	if err != nil {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}

	raw, err := s.events.ListByUser(ctx, userID, day.UTC(), day.AddDate(0, 0, 1).UTC())
	if err != nil {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	marked, err := s.marks.GetMark(ctx, userID, date)
	if err != nil && !errors.Is(err, attendance.ErrAdherenceMarkNotFound) {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to get absence mark: %w", err)
	}

	now := time.Now().UTC()
	return s.engine.ComputeAdherence(userID, raw, day, cfg.Shift, cfg.Location, now, marked), nil
}

// MarkAbsent implements attendance.AttendanceService. Marking is gated by
// the eligibility predicate and idempotent: re-marking an already absent day
// returns the stored record. The check-then-save sequence runs inside one
// transaction so a scan landing between them cannot slip past the
// eligibility gate.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, req attendance.MarkAbsentRequest) (attendance.AdherenceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AdherenceRecord{}, err
	}

	cfg, err := s.orgs.Get(ctx, req.UserID)
	if err != nil {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to resolve org config: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, cfg.Location)
	if err != nil {
		return attendance.AdherenceRecord{}, fmt.Errorf("failed to parse date: %w", err)
	}

	var record attendance.AdherenceRecord
	var created bool
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.marks.GetMark(txCtx, req.UserID, req.Date)
		if err != nil && !errors.Is(err, attendance.ErrAdherenceMarkNotFound) {
			return fmt.Errorf("failed to get absence mark: %w", err)
		}
		if existing != nil {
			// A mark only ever exists for a day that passed the eligibility
			// gate; storage does not persist the flag, so restore it here.
			existing.EligibleForAbsent = true
			record = *existing
			return nil
		}

		raw, err := s.events.ListByUser(txCtx, req.UserID, day.UTC(), day.AddDate(0, 0, 1).UTC())
		if err != nil {
			return fmt.Errorf("failed to list attendance events: %w", err)
		}

		events, _ := Normalize(raw)
		now := time.Now().UTC()
		if !AbsenceEligible(day, events, cfg.Shift, cfg.Location, now) {
			return attendance.ErrNotEligibleForAbsence
		}

		record = attendance.AdherenceRecord{
			UserID:            req.UserID,
			Date:              req.Date,
			Status:            attendance.StatusAbsent,
			MarkedBy:          &req.AdminID,
			EligibleForAbsent: true,
		}
		created = true

		if err := s.marks.SaveMark(txCtx, record); err != nil {
			return fmt.Errorf("failed to save absence mark: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AdherenceRecord{}, err
	}

	if created {
		s.hub.Publish(sse.Notification{UserID: req.UserID, Kind: sse.KindRefresh})
	}

	return record, nil
}

// RevertAbsence implements attendance.AttendanceService. Removing the mark
// reclassifies the day back to its computed status.
func (s *AttendanceServiceImpl) RevertAbsence(ctx context.Context, userID, date string) (attendance.AdherenceRecord, error) {
	if err := s.marks.DeleteMark(ctx, userID, date); err != nil {
		if !errors.Is(err, attendance.ErrAdherenceMarkNotFound) {
			return attendance.AdherenceRecord{}, fmt.Errorf("failed to delete absence mark: %w", err)
		}
	}

	s.hub.Publish(sse.Notification{UserID: userID, Kind: sse.KindRefresh})

	return s.GetAdherence(ctx, userID, date)
}
