package attendance

import (
	"sort"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/validator"
)

// Normalize parses and chronologically sorts a raw event slice. Records with
// a missing or unparseable timestamp, or an unknown event type, are dropped
// and reported as data-quality issues; attendance data is inherently messy
// and a bad row must never fail the whole computation.
//
// The sort is stable: equal timestamps keep their original order, which
// keeps the reconciler deterministic.
func Normalize(raw []attendance.RawEvent) ([]attendance.Event, []attendance.Issue) {
	events := make([]attendance.Event, 0, len(raw))
	var issues []attendance.Issue

	for _, r := range raw {
		if r.Timestamp == "" {
			issues = append(issues, attendance.Issue{
				EventID: r.ID,
				Kind:    attendance.IssueMalformedEvent,
				Reason:  "missing timestamp",
			})
			continue
		}

		ts, ok := validator.IsValidDateTime(r.Timestamp)
		if !ok {
			issues = append(issues, attendance.Issue{
				EventID: r.ID,
				Kind:    attendance.IssueMalformedEvent,
				Reason:  "unparseable timestamp: " + r.Timestamp,
			})
			continue
		}

		eventType := attendance.EventType(r.EventType)
		if !eventType.IsValid() {
			issues = append(issues, attendance.Issue{
				EventID: r.ID,
				Kind:    attendance.IssueMalformedEvent,
				Reason:  "unknown event type: " + r.EventType,
			})
			continue
		}

		events = append(events, attendance.Event{
			ID:        r.ID,
			UserID:    r.UserID,
			Type:      eventType,
			Timestamp: ts.UTC(),
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	return events, issues
}
