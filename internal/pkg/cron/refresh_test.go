package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/sse"
)

type staticEventRepo struct {
	active []string
}

func (r *staticEventRepo) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	return event, nil
}

func (r *staticEventRepo) ListByUser(ctx context.Context, userID string, from, to time.Time) ([]attendance.RawEvent, error) {
	return nil, nil
}

func (r *staticEventRepo) ListActiveUsers(ctx context.Context, since time.Time) ([]string, error) {
	return r.active, nil
}

func TestPublishRefreshReachesSubscribedUsers(t *testing.T) {
	hub := sse.NewHub()
	jobs := NewRefreshJobs(hub, &staticEventRepo{})

	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	require.NoError(t, jobs.PublishRefresh(context.Background()))

	select {
	case n := <-ch:
		assert.Equal(t, sse.KindRefresh, n.Kind)
	default:
		t.Fatal("expected a refresh notification")
	}
}

func TestPublishRefreshIncludesRecentlyActiveUsers(t *testing.T) {
	hub := sse.NewHub()
	jobs := NewRefreshJobs(hub, &staticEventRepo{active: []string{"u2"}})

	// u2 has no live session yet; subscribing afterwards simulates a
	// reconnect between activity and the tick.
	ch, cleanup := hub.Subscribe("u2")
	defer cleanup()

	require.NoError(t, jobs.PublishRefresh(context.Background()))

	select {
	case n := <-ch:
		assert.Equal(t, "u2", n.UserID)
	default:
		t.Fatal("expected a refresh notification for the active user")
	}
}

func TestSchedulerRunOnceExecutesRegisteredJobs(t *testing.T) {
	hub := sse.NewHub()
	jobs := NewRefreshJobs(hub, &staticEventRepo{})

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	scheduler.RunOnce(context.Background())

	assert.Len(t, ch, 1)
}
