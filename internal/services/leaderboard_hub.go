package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"photo-hunt-backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// StreamMessage is one message on the leaderboard WebSocket stream.
type StreamMessage struct {
	Type  string                   `json:"type"`
	Photo string                   `json:"photo,omitempty"`
	Entry *models.LeaderboardEntry `json:"entry,omitempty"`
}

// LeaderboardHub fans newly submitted leaderboard entries out to the
// WebSocket connections watching each photo's leaderboard.
type LeaderboardHub struct {
	mu   sync.RWMutex
	subs map[string]map[*websocket.Conn]struct{}
}

// NewLeaderboardHub creates a new leaderboard hub
func NewLeaderboardHub() *LeaderboardHub {
	return &LeaderboardHub{
		subs: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Subscribe writes the current standings to the connection and then
// registers it for one photo's leaderboard stream. Both happen under
// the hub lock: every write to a registered connection goes through
// the hub, and gorilla/websocket forbids concurrent writers, so a
// Broadcast can never interleave with the snapshot. The connection is
// not registered when the snapshot write fails.
func (h *LeaderboardHub) Subscribe(photoName string, conn *websocket.Conn, snapshot []models.LeaderboardEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range snapshot {
		msg := StreamMessage{
			Type:  "leaderboard_entry",
			Photo: photoName,
			Entry: &snapshot[i],
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal leaderboard snapshot: %w", err)
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return fmt.Errorf("failed to send leaderboard snapshot: %w", err)
		}
	}

	if h.subs[photoName] == nil {
		h.subs[photoName] = make(map[*websocket.Conn]struct{})
	}
	h.subs[photoName][conn] = struct{}{}

	log.Info().Str("photo", photoName).Msg("Leaderboard subscriber registered")
	return nil
}

// Unsubscribe removes a connection from a photo's stream.
func (h *LeaderboardHub) Unsubscribe(photoName string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.subs[photoName]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.subs, photoName)
		}
		log.Info().Str("photo", photoName).Msg("Leaderboard subscriber unregistered")
	}
}

// Broadcast sends a new leaderboard entry to every subscriber of the
// photo. Connections that fail to write are dropped.
func (h *LeaderboardHub) Broadcast(photoName string, entry models.LeaderboardEntry) {
	msg := StreamMessage{
		Type:  "leaderboard_entry",
		Photo: photoName,
		Entry: &entry,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal leaderboard message")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.subs[photoName] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Error().
				Err(err).
				Str("photo", photoName).
				Msg("Failed to send leaderboard entry, dropping subscriber")
			conn.Close()
			delete(h.subs[photoName], conn)
		}
	}

	log.Info().
		Str("photo", photoName).
		Str("name", entry.Name).
		Int64("time_ms", entry.TimeMillis).
		Msg("Leaderboard entry broadcast")
}

// SubscriberCount reports how many connections watch a photo's stream.
func (h *LeaderboardHub) SubscriberCount(photoName string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[photoName])
}
