package attendance

import (
	"time"
)

// EventType is the kind of punch an employee emitted via a QR scan.
type EventType string

const (
	EventSignIn     EventType = "signin"
	EventSignOut    EventType = "signout"
	EventBreakStart EventType = "break_start"
	EventBreakEnd   EventType = "break_end"
)

// IsValid reports whether t is one of the four known event types.
func (t EventType) IsValid() bool {
	switch t {
	case EventSignIn, EventSignOut, EventBreakStart, EventBreakEnd:
		return true
	}
	return false
}

// RawEvent is the persistence-shaped record as it arrives from storage or
// ingestion. Timestamp is an ISO-8601 UTC string; parsing happens in the
// normalizer so that a bad row degrades to a warning instead of an error.
type RawEvent struct {
	ID        string
	UserID    string
	EventType string
	Timestamp string
}

// Event is a normalized, immutable attendance event. Timestamp is UTC.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      EventType `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// PeriodKind distinguishes reconciled work intervals from break intervals.
type PeriodKind string

const (
	PeriodWork  PeriodKind = "work"
	PeriodBreak PeriodKind = "break"
)

// Period is a reconciled, contiguous work or break interval. Periods are
// derived and ephemeral; they are recomputed on every call and never stored.
// Open means the closing event is missing and End was filled in with the
// caller-supplied "now" for display/aggregation only.
type Period struct {
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
	Kind  PeriodKind `json:"kind"`
	Open  bool       `json:"open"`
}

// Duration returns the raw, uncapped length of the period.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Metrics is the derived per-employee output consumed by dashboards and
// reports. Totals are in seconds and never negative.
type Metrics struct {
	UserID           string  `json:"user_id"`
	WorkTimeSeconds  int64   `json:"work_time_seconds"`
	BreakTimeSeconds int64   `json:"break_time_seconds"`
	OvertimeSeconds  int64   `json:"overtime_seconds"`
	IsActive         bool    `json:"is_active"`
	IsOnBreak        bool    `json:"is_on_break"`
	WasCapped        bool    `json:"was_capped"`
	LastActivity     *Event  `json:"last_activity,omitempty"`
	Warnings         []Issue `json:"warnings,omitempty"`
}

// AdherenceStatus classifies a day's punctuality.
type AdherenceStatus string

const (
	StatusEarly   AdherenceStatus = "early"
	StatusOnTime  AdherenceStatus = "on_time"
	StatusLate    AdherenceStatus = "late"
	StatusAbsent  AdherenceStatus = "absent"
	StatusPending AdherenceStatus = "pending"
)

// AdherenceRecord is the computed (or explicitly marked) classification of
// one employee-day. Date is a calendar day in the organization's timezone.
type AdherenceRecord struct {
	UserID            string          `json:"user_id"`
	Date              string          `json:"date"` // YYYY-MM-DD, org-local
	Status            AdherenceStatus `json:"status"`
	MarkedBy          *string         `json:"marked_by,omitempty"`
	EligibleForAbsent bool            `json:"eligible_for_absent"`
}

// Issue is a non-fatal data-quality finding surfaced alongside derived
// output: a dropped malformed event or an orphaned closing event.
type Issue struct {
	EventID string `json:"event_id,omitempty"`
	Kind    string `json:"kind"` // malformed_event or orphaned_event
	Reason  string `json:"reason"`
}

const (
	IssueMalformedEvent = "malformed_event"
	IssueOrphanedEvent  = "orphaned_event"
)
