package attendance

import (
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/domain/department"
)

// firstSignIn returns the first signin event falling on the given org-local
// calendar day, or nil.
func firstSignIn(events []attendance.Event, date string, loc *time.Location) *attendance.Event {
	for i := range events {
		ev := events[i]
		if ev.Type != attendance.EventSignIn {
			continue
		}
		if ev.Timestamp.In(loc).Format("2006-01-02") == date {
			return &ev
		}
	}
	return nil
}

// AbsenceEligible is the predicate gating the explicit "mark absent" action.
// It holds only when the date is not in the future, no signin exists for the
// date, and the grace period has elapsed: immediately for a fully past day,
// relative to now when the date is today.
func AbsenceEligible(day time.Time, events []attendance.Event, shift department.ShiftConfig, loc *time.Location, now time.Time) bool {
	nowLocal := now.In(loc)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)

	if day.After(today) {
		return false
	}

	if firstSignIn(events, day.Format("2006-01-02"), loc) != nil {
		return false
	}

	if day.Equal(today) {
		return nowLocal.After(shift.GraceDeadlineOn(day, loc))
	}
	return true
}

// Classify produces the adherence record for one employee-day.
//
// An explicit absence mark overrides everything and is idempotent. Otherwise
// the first signin of the day is compared against the shift window: at or
// before shift start is early, within the grace period is on_time, past it
// is late. A day with no signin stays pending until an administrator marks
// it absent; the record carries the eligibility flag so callers can gate
// that action without re-deriving the predicate.
func Classify(day time.Time, events []attendance.Event, shift department.ShiftConfig, loc *time.Location, now time.Time, marked *attendance.AdherenceRecord) attendance.AdherenceRecord {
	date := day.Format("2006-01-02")
	eligible := AbsenceEligible(day, events, shift, loc, now)

	if marked != nil && marked.Status == attendance.StatusAbsent {
		return attendance.AdherenceRecord{
			UserID:            marked.UserID,
			Date:              date,
			Status:            attendance.StatusAbsent,
			MarkedBy:          marked.MarkedBy,
			EligibleForAbsent: eligible,
		}
	}

	record := attendance.AdherenceRecord{
		Date:              date,
		EligibleForAbsent: eligible,
	}

	signin := firstSignIn(events, date, loc)
	if signin == nil {
		record.Status = attendance.StatusPending
		return record
	}

	record.UserID = signin.UserID
	arrived := signin.Timestamp.In(loc)

	switch {
	case !arrived.After(shift.StartOn(day, loc)):
		record.Status = attendance.StatusEarly
	case !arrived.After(shift.GraceDeadlineOn(day, loc)):
		record.Status = attendance.StatusOnTime
	default:
		record.Status = attendance.StatusLate
	}

	return record
}
