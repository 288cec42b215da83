package sse

import (
	"sync"
)

// Notification kinds pushed to dashboard sessions. A scan is a raw event
// insert; a refresh is the periodic fallback that masks missed scans. Both
// carry no payload: subscribers recompute metrics on receipt, which is
// idempotent and cheap, so a redundant notification is harmless.
const (
	KindScan    = "scan"
	KindRefresh = "refresh"
)

// Notification tells a subscribed dashboard session that a user's derived
// metrics may be stale.
type Notification struct {
	UserID string
	Kind   string
}

// Hub fans attendance change notifications out to per-user subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Notification]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Notification]struct{}),
	}
}

// Subscribe registers a dashboard session for one user's notifications and
// returns the channel plus a cleanup function.
func (h *Hub) Subscribe(userID string) (chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Notification, 10)

	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan Notification]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[userID], ch)
		close(ch)
		if len(h.subscribers[userID]) == 0 {
			delete(h.subscribers, userID)
		}
	}

	return ch, cleanup
}

// Publish notifies all of a user's subscribers. Sends never block: a slow
// session misses one notification and catches up on the next refresh tick.
func (h *Hub) Publish(n Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[n.UserID]; ok {
		for ch := range subs {
			select {
			case ch <- n:
			default:
			}
		}
	}
}

// SubscribedUsers returns the IDs of users with at least one live session.
// The refresh job only fans out to these.
func (h *Hub) SubscribedUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	users := make([]string, 0, len(h.subscribers))
	for userID := range h.subscribers {
		users = append(users, userID)
	}
	return users
}

// SubscriberCount returns the number of active sessions for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[userID]; ok {
		return len(subs)
	}
	return 0
}
