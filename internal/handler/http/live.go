package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/punchpoint/punchpoint-backend-go/internal/domain/attendance"
	"github.com/punchpoint/punchpoint-backend-go/internal/handler/http/response"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/jwt"
	"github.com/punchpoint/punchpoint-backend-go/internal/pkg/sse"
)

type LiveHandler interface {
	// GetStreamToken mints a short-lived token for the SSE connection
	GetStreamToken(w http.ResponseWriter, r *http.Request)
	// Stream handles the SSE connection for live dashboard metrics
	Stream(w http.ResponseWriter, r *http.Request)
}

type liveHandlerImpl struct {
	attendanceService attendance.AttendanceService
	jwtService        jwt.Service
	hub               *sse.Hub

	// Collapses concurrent recomputes across a user's sessions: when several
	// dashboards react to the same notification, one GetMetrics runs and all
	// of them share the result.
	recompute singleflight.Group
}

func NewLiveHandler(attendanceService attendance.AttendanceService, jwtService jwt.Service, hub *sse.Hub) LiveHandler {
	return &liveHandlerImpl{
		attendanceService: attendanceService,
		jwtService:        jwtService,
		hub:               hub,
	}
}

type streamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// GetStreamToken handles GET /attendance/live/token
// EventSource cannot send an Authorization header, so the dashboard first
// trades its access token for a short-lived stream token passed as a query
// parameter.
func (h *liveHandlerImpl) GetStreamToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	token, expiresIn, err := h.jwtService.GenerateStreamToken(userID)
	if err != nil {
		response.InternalServerError(w, "Failed to generate stream token")
		return
	}

	response.Success(w, streamTokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles GET /attendance/live
// Pushes a full metrics snapshot on connect and again whenever a scan or
// fallback refresh lands for the user.
func (h *liveHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	userID, err := h.jwtService.ValidateStreamToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	notifications, cleanup := h.hub.Subscribe(userID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"user_id\":%q}\n\n", userID)
	flusher.Flush()

	// Initial snapshot so the dashboard renders without waiting for a scan
	h.pushMetrics(w, flusher, r, userID, "snapshot")

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case n, ok := <-notifications:
			if !ok {
				return
			}
			h.pushMetrics(w, flusher, r, userID, n.Kind)

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// pushMetrics recomputes and writes one metrics event. Recomputation is
// idempotent, so coalesced or redundant notifications are harmless.
func (h *liveHandlerImpl) pushMetrics(w http.ResponseWriter, flusher http.Flusher, r *http.Request, userID, kind string) {
	// The coalesced call is shared across sessions, so it must not die with
	// the session that happened to trigger it.
	ctx := context.WithoutCancel(r.Context())
	v, err, _ := h.recompute.Do(userID, func() (interface{}, error) {
		return h.attendanceService.GetMetrics(ctx, userID)
	})
	if err != nil {
		slog.Error("Failed to compute live metrics", "user_id", userID, "error", err)
		return
	}
	metrics := v.(attendance.Metrics)

	data, err := json.Marshal(metrics)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "event: metrics\ndata: {\"kind\":%q,\"metrics\":%s}\n\n", kind, data)
	flusher.Flush()
}
