package attendance

import (
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

// StandardDayDuration is the default threshold a day's work time is compared
// against for overtime.
const StandardDayDuration = 8 * time.Hour

// Engine is the single reconciliation and metrics entry point. It is pure:
// no I/O, no clock reads, no internal state beyond the two thresholds, so it
// is safe to share across goroutines and every call with identical inputs
// yields identical output.
type Engine struct {
	MaxShift    time.Duration
	StandardDay time.Duration
}

func NewEngine() *Engine {
	return &Engine{
		MaxShift:    MaxShiftDuration,
		StandardDay: StandardDayDuration,
	}
}

// ComputeMetrics derives current status and capped totals from a raw event
// stream. Status flags come from the whole stream; the second totals are the
// bucket of the calendar day of now, so an overnight period that began
// yesterday counts toward yesterday (day attribution follows period start)
// while the employee still shows as active.
func (e *Engine) ComputeMetrics(userID string, raw []attendance.RawEvent, loc *time.Location, now time.Time) attendance.Metrics {
	events, issues := Normalize(raw)
	rec := Reconcile(events, now)
	agg := Aggregate(rec.Periods, loc, e.MaxShift, e.StandardDay)

	metrics := attendance.Metrics{
		UserID:       userID,
		IsActive:     rec.IsActive,
		IsOnBreak:    rec.IsOnBreak,
		WasCapped:    agg.WasCapped,
		LastActivity: rec.LastActivity,
		Warnings:     append(issues, rec.Issues...),
	}

	today := now.In(loc).Format("2006-01-02")
	if day, ok := agg.Day(today); ok {
		metrics.WorkTimeSeconds = int64(day.Work.Seconds())
		metrics.BreakTimeSeconds = int64(day.Break.Seconds())
		metrics.OvertimeSeconds = int64(day.Overtime.Seconds())
	}

	return metrics
}

// ComputeAdherence classifies one employee-day from its raw events, honoring
// a stored absence mark if present.
func (e *Engine) ComputeAdherence(userID string, raw []attendance.RawEvent, day time.Time, shift department.ShiftConfig, loc *time.Location, now time.Time, marked *attendance.AdherenceRecord) attendance.AdherenceRecord {
	events, _ := Normalize(raw)
	record := Classify(day, events, shift, loc, now, marked)
	record.UserID = userID
	return record
}

// ComputeReport builds the day/week/month rollups for [from, to] inclusive.
// Every day in the range appears in the output even when it has no periods,
// so absent and pending days render alongside worked ones. marks is keyed by
// YYYY-MM-DD.
func (e *Engine) ComputeReport(userID string, raw []attendance.RawEvent, shift department.ShiftConfig, loc *time.Location, timezone string, now time.Time, marks map[string]attendance.AdherenceRecord, from, to time.Time) attendance.ReportResponse {
	events, issues := Normalize(raw)
	rec := Reconcile(events, now)
	agg := Aggregate(rec.Periods, loc, e.MaxShift, e.StandardDay)

	report := attendance.ReportResponse{
		UserID:   userID,
		Timezone: timezone,
		Warnings: append(issues, rec.Issues...),
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")

		summary := attendance.DaySummary{Date: date}
		if bucket, ok := agg.Day(date); ok {
			summary.WorkTimeSeconds = int64(bucket.Work.Seconds())
			summary.BreakTimeSeconds = int64(bucket.Break.Seconds())
			summary.OvertimeSeconds = int64(bucket.Overtime.Seconds())
			summary.WasCapped = bucket.WasCapped
		}

		var marked *attendance.AdherenceRecord
		if m, ok := marks[date]; ok {
			marked = &m
		}
		summary.Status = Classify(day, events, shift, loc, now, marked).Status

		report.Days = append(report.Days, summary)
	}

	for _, w := range agg.Weeks {
		report.Weeks = append(report.Weeks, attendance.WeekSummary{
			WeekStart:        w.WeekStart,
			WorkTimeSeconds:  int64(w.Work.Seconds()),
			BreakTimeSeconds: int64(w.Break.Seconds()),
			OvertimeSeconds:  int64(w.Overtime.Seconds()),
		})
	}
	for _, m := range agg.Months {
		report.Months = append(report.Months, attendance.MonthSummary{
			Month:            m.Month,
			WorkTimeSeconds:  int64(m.Work.Seconds()),
			BreakTimeSeconds: int64(m.Break.Seconds()),
			OvertimeSeconds:  int64(m.Overtime.Seconds()),
		})
	}

	return report
}
