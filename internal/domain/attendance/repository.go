package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access for the append-only attendance event
// stream. Events are never updated or deleted; derived output is always
// recomputed from the stream.
type EventRepository interface {
	// Create appends one event. The returned event carries the stored ID.
	Create(ctx context.Context, event Event) (Event, error)

	// ListByUser returns the raw (unnormalized) events for one user whose
	// timestamps fall in [from, to). Order is not guaranteed.
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]RawEvent, error)

	// ListActiveUsers returns the IDs of users with at least one event since
	// the given instant. Used by the fallback refresh job.
	ListActiveUsers(ctx context.Context, since time.Time) ([]string, error)
}

// TxManager runs a function inside a storage transaction. Repository calls
// made with the context passed to fn join the transaction.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdherenceRepository stores explicit absence marks. Computed statuses are
// never written; only an administrator's mark is persisted.
type AdherenceRepository interface {
	// GetMark returns the stored mark for a user-day, or nil if none exists.
	GetMark(ctx context.Context, userID, date string) (*AdherenceRecord, error)

	// ListMarks returns stored marks for a user over an inclusive date range.
	ListMarks(ctx context.Context, userID, fromDate, toDate string) ([]AdherenceRecord, error)

	// SaveMark persists an absence mark. Re-marking the same day is a no-op.
	SaveMark(ctx context.Context, record AdherenceRecord) error

	// DeleteMark removes a mark so the day falls back to its computed status.
	DeleteMark(ctx context.Context, userID, date string) error
}
