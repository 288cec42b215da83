package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	hub.Publish(Notification{UserID: "u1", Kind: KindScan})

	select {
	case n := <-ch:
		assert.Equal(t, "u1", n.UserID)
		assert.Equal(t, KindScan, n.Kind)
	default:
		t.Fatal("expected a notification")
	}
}

func TestPublishIgnoresOtherUsers(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	hub.Publish(Notification{UserID: "u2", Kind: KindScan})

	select {
	case <-ch:
		t.Fatal("notification leaked across users")
	default:
	}
}

func TestPublishFansOutToAllSessions(t *testing.T) {
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("u1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("u1")
	defer cleanup2()

	hub.Publish(Notification{UserID: "u1", Kind: KindRefresh})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("u1")
	defer cleanup()

	// Channel buffer is 10; publishing more must drop, not block.
	for i := 0; i < 50; i++ {
		hub.Publish(Notification{UserID: "u1", Kind: KindScan})
	}
}

func TestCleanupRemovesSubscription(t *testing.T) {
	hub := NewHub()
	_, cleanup := hub.Subscribe("u1")

	require.Equal(t, 1, hub.SubscriberCount("u1"))
	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("u1"))
	assert.Empty(t, hub.SubscribedUsers())
}

func TestSubscribedUsers(t *testing.T) {
	hub := NewHub()
	_, cleanup1 := hub.Subscribe("u1")
	defer cleanup1()
	_, cleanup2 := hub.Subscribe("u2")
	defer cleanup2()

	users := hub.SubscribedUsers()
	assert.ElementsMatch(t, []string{"u1", "u2"}, users)
}
