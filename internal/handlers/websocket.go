package handlers

import (
	"net/http"

	"photo-hunt-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler streams new leaderboard entries for one photo.
type WebSocketHandler struct {
	hub          *services.LeaderboardHub
	photoService *services.PhotoService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.LeaderboardHub, photoService *services.PhotoService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		photoService: photoService,
	}
}

// HandleLeaderboardStream handles GET /ws/leaderboard?photo={name}
func (h *WebSocketHandler) HandleLeaderboardStream(w http.ResponseWriter, r *http.Request) {
	photoName := r.URL.Query().Get("photo")
	if photoName == "" {
		respondError(w, http.StatusBadRequest, "photo query parameter is required", nil)
		return
	}

	// Validate the photo before upgrading; an unknown photo is a plain
	// 404 rather than a doomed socket.
	snapshot, err := h.photoService.Leaderboard(r.Context(), photoName)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	// The hub writes the current standings and registers the
	// connection in one step, so broadcasts never interleave with the
	// snapshot on the same socket.
	if err := h.hub.Subscribe(photoName, conn, snapshot); err != nil {
		log.Error().Err(err).Str("photo", photoName).Msg("Failed to send leaderboard snapshot")
		return
	}
	defer h.hub.Unsubscribe(photoName, conn)

	log.Info().Str("photo", photoName).Msg("Leaderboard stream established")

	// The stream is one-way; drain the connection until the client
	// goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error().Err(err).Str("photo", photoName).Msg("Leaderboard stream error")
			}
			return
		}
	}
}
