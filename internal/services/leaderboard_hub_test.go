package services

import (
	"testing"

	"github.com/gorilla/websocket"
)

func TestHubSubscriberBookkeeping(t *testing.T) {
	hub := NewLeaderboardHub()

	a, b := &websocket.Conn{}, &websocket.Conn{}
	hub.Subscribe("wheres-waldo", a, nil)
	hub.Subscribe("wheres-waldo", b, nil)
	hub.Subscribe("other", a, nil)

	if got := hub.SubscriberCount("wheres-waldo"); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}
	if got := hub.SubscriberCount("other"); got != 1 {
		t.Fatalf("expected 1 subscriber, got %d", got)
	}

	hub.Unsubscribe("wheres-waldo", a)
	if got := hub.SubscriberCount("wheres-waldo"); got != 1 {
		t.Fatalf("expected 1 subscriber after unsubscribe, got %d", got)
	}

	hub.Unsubscribe("wheres-waldo", b)
	if got := hub.SubscriberCount("wheres-waldo"); got != 0 {
		t.Fatalf("expected 0 subscribers, got %d", got)
	}

	// Unsubscribing a connection that was never registered is a no-op.
	hub.Unsubscribe("wheres-waldo", a)
	hub.Unsubscribe("never-seen", a)
}
