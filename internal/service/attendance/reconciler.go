package attendance

import (
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

type reconcilerState int

const (
	stateSignedOut reconcilerState = iota
	stateSignedIn
	stateOnBreak
)

// Reconciliation is the result of walking one user's normalized event
// stream: non-overlapping work and break periods plus the current status.
type Reconciliation struct {
	Periods      []attendance.Period
	IsActive     bool
	IsOnBreak    bool
	LastActivity *attendance.Event
	Issues       []attendance.Issue
}

// Reconcile folds the sorted event stream through a three-state machine
// (signed out, signed in, on break) and pairs events into periods.
//
// A signin while already signed in or on break is treated as an implicit
// signout+signin: the open period is closed at the stray signin's time and a
// fresh work period opened, which preserves the recorded time instead of
// discarding the duplicate. Closing events with no matching open period are
// captured as orphans and excluded from duration math.
//
// Crossing midnight never closes a period; overnight shifts stay one period
// and day attribution happens in the aggregator. A period still open at end
// of stream is closed at the caller-supplied now and flagged Open so it is
// usable for display without being mistaken for a completed period.
func Reconcile(events []attendance.Event, now time.Time) Reconciliation {
	var rec Reconciliation

	state := stateSignedOut
	var openWorkStart, openBreakStart time.Time

	closeWork := func(end time.Time, open bool) {
		if end.Before(openWorkStart) {
			end = openWorkStart
		}
		rec.Periods = append(rec.Periods, attendance.Period{
			Start: openWorkStart,
			End:   end,
			Kind:  attendance.PeriodWork,
			Open:  open,
		})
	}
	closeBreak := func(end time.Time, open bool) {
		if end.Before(openBreakStart) {
			end = openBreakStart
		}
		rec.Periods = append(rec.Periods, attendance.Period{
			Start: openBreakStart,
			End:   end,
			Kind:  attendance.PeriodBreak,
			Open:  open,
		})
	}
	orphan := func(ev attendance.Event, reason string) {
		rec.Issues = append(rec.Issues, attendance.Issue{
			EventID: ev.ID,
			Kind:    attendance.IssueOrphanedEvent,
			Reason:  reason,
		})
	}

	for i := range events {
		ev := events[i]

		switch state {
		case stateSignedOut:
			switch ev.Type {
			case attendance.EventSignIn:
				openWorkStart = ev.Timestamp
				state = stateSignedIn
			default:
				orphan(ev, string(ev.Type)+" while signed out")
			}

		case stateSignedIn:
			switch ev.Type {
			case attendance.EventSignOut:
				closeWork(ev.Timestamp, false)
				state = stateSignedOut
			case attendance.EventBreakStart:
				closeWork(ev.Timestamp, false)
				openBreakStart = ev.Timestamp
				state = stateOnBreak
			case attendance.EventSignIn:
				// Implicit signout+signin.
				closeWork(ev.Timestamp, false)
				openWorkStart = ev.Timestamp
			case attendance.EventBreakEnd:
				orphan(ev, "break_end without break_start")
			}

		case stateOnBreak:
			switch ev.Type {
			case attendance.EventBreakEnd:
				closeBreak(ev.Timestamp, false)
				openWorkStart = ev.Timestamp
				state = stateSignedIn
			case attendance.EventSignOut:
				closeBreak(ev.Timestamp, false)
				state = stateSignedOut
			case attendance.EventSignIn:
				// Implicit signout+signin.
				closeBreak(ev.Timestamp, false)
				openWorkStart = ev.Timestamp
				state = stateSignedIn
			case attendance.EventBreakStart:
				orphan(ev, "break_start while already on break")
			}
		}
	}

	switch state {
	case stateSignedIn:
		closeWork(now, true)
		rec.IsActive = true
	case stateOnBreak:
		closeBreak(now, true)
		rec.IsOnBreak = true
	}

	if len(events) > 0 {
		last := events[len(events)-1]
		rec.LastActivity = &last
	}

	return rec
}
