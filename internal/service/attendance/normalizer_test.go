package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

func TestNormalizeSortsChronologically(t *testing.T) {
	raw := []attendance.RawEvent{
		{ID: "3", UserID: "u1", EventType: "signout", Timestamp: "2026-01-05T17:00:00Z"},
		{ID: "1", UserID: "u1", EventType: "signin", Timestamp: "2026-01-05T09:00:00Z"},
		{ID: "2", UserID: "u1", EventType: "break_start", Timestamp: "2026-01-05T12:00:00Z"},
	}

	events, issues := Normalize(raw)

	require.Len(t, events, 3)
	assert.Empty(t, issues)
	assert.Equal(t, "1", events[0].ID)
	assert.Equal(t, "2", events[1].ID)
	assert.Equal(t, "3", events[2].ID)
}

func TestNormalizeStableOnEqualTimestamps(t *testing.T) {
	raw := []attendance.RawEvent{
		{ID: "a", UserID: "u1", EventType: "signin", Timestamp: "2026-01-05T09:00:00Z"},
		{ID: "b", UserID: "u1", EventType: "signout", Timestamp: "2026-01-05T09:00:00Z"},
	}

	events, _ := Normalize(raw)

	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
}

func TestNormalizeDropsMalformedAsIssues(t *testing.T) {
	raw := []attendance.RawEvent{
		{ID: "ok", UserID: "u1", EventType: "signin", Timestamp: "2026-01-05T09:00:00Z"},
		{ID: "no-ts", UserID: "u1", EventType: "signout", Timestamp: ""},
		{ID: "bad-ts", UserID: "u1", EventType: "signout", Timestamp: "yesterday"},
		{ID: "bad-type", UserID: "u1", EventType: "lunch", Timestamp: "2026-01-05T12:00:00Z"},
	}

	events, issues := Normalize(raw)

	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ID)

	require.Len(t, issues, 3)
	for _, issue := range issues {
		assert.Equal(t, attendance.IssueMalformedEvent, issue.Kind)
	}
	assert.Equal(t, "no-ts", issues[0].EventID)
	assert.Equal(t, "bad-ts", issues[1].EventID)
	assert.Equal(t, "bad-type", issues[2].EventID)
}

func TestNormalizeNormalizesToUTC(t *testing.T) {
	raw := []attendance.RawEvent{
		{ID: "1", UserID: "u1", EventType: "signin", Timestamp: "2026-01-05T09:00:00+07:00"},
	}

	events, issues := Normalize(raw)

	require.Len(t, events, 1)
	assert.Empty(t, issues)
	assert.Equal(t, "2026-01-05T02:00:00Z", events[0].Timestamp.Format("2006-01-02T15:04:05Z07:00"))
}
