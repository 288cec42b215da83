package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
)

type stubAttendanceService struct {
	attendance.AttendanceService
	metrics func(ctx context.Context, userID string) (attendance.Metrics, error)
}

func (s *stubAttendanceService) GetMetrics(ctx context.Context, userID string) (attendance.Metrics, error) {
	return s.metrics(ctx, userID)
}

func TestPushMetricsSurvivesTriggeringSessionDisconnect(t *testing.T) {
	svc := &stubAttendanceService{
		metrics: func(ctx context.Context, userID string) (attendance.Metrics, error) {
			require.NoError(t, ctx.Err())
			return attendance.Metrics{UserID: userID}, nil
		},
	}
	h := &liveHandlerImpl{attendanceService: svc}

	// The triggering session's context is already gone; the coalesced
	// recompute serves the other sessions and must not inherit the cancel.
	req := httptest.NewRequest("GET", "/attendance/live", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.pushMetrics(rec, rec, req, "u1", "refresh")

	assert.Contains(t, rec.Body.String(), "event: metrics")
	assert.Contains(t, rec.Body.String(), `"kind":"refresh"`)
}
