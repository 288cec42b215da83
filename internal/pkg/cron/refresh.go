package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/sse"
)

// RefreshJobs drives the polling fallback: dashboards normally recompute on
// scan notifications, and this job re-notifies on an interval so a missed
// notification only delays freshness by one tick. Recompute is idempotent,
// so overlapping triggers merely recompute redundantly.
type RefreshJobs struct {
	hub    *sse.Hub
	events attendance.EventRepository
}

func NewRefreshJobs(hub *sse.Hub, events attendance.EventRepository) *RefreshJobs {
	return &RefreshJobs{
		hub:    hub,
		events: events,
	}
}

func (j *RefreshJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("dashboard_fallback_refresh", 2*time.Minute, j.PublishRefresh)
}

// PublishRefresh fans a refresh notification out to every user with a live
// dashboard session or recent event activity. Publishing to a user with no
// subscribers is a no-op, so the union costs nothing.
func (j *RefreshJobs) PublishRefresh(ctx context.Context) error {
	users := make(map[string]struct{})

	for _, userID := range j.hub.SubscribedUsers() {
		users[userID] = struct{}{}
	}

	active, err := j.events.ListActiveUsers(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to list recently active users: %w", err)
	}
	for _, userID := range active {
		users[userID] = struct{}{}
	}

	for userID := range users {
		j.hub.Publish(sse.Notification{UserID: userID, Kind: sse.KindRefresh})
	}

	slog.Debug("Cron: published fallback refresh", "user_count", len(users))
	return nil
}
