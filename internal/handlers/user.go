package handlers

import (
	"encoding/json"
	"net/http"

	"photo-hunt-backend/internal/models"
	"photo-hunt-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles session-related HTTP requests. The routes keep
// the /user prefix the browser client expects.
type UserHandler struct {
	sessionService *services.SessionService
	hub            *services.LeaderboardHub
}

// NewUserHandler creates a new user handler
func NewUserHandler(sessionService *services.SessionService, hub *services.LeaderboardHub) *UserHandler {
	return &UserHandler{
		sessionService: sessionService,
		hub:            hub,
	}
}

// SubmitNameRequest is the body of a leaderboard submission
type SubmitNameRequest struct {
	Name string `json:"name"`
}

// MessageResponse is a simple acknowledgment body
type MessageResponse struct {
	Message string `json:"message"`
}

// TimeResponse carries a computed or recorded elapsed time in
// milliseconds
type TimeResponse struct {
	Message string `json:"message,omitempty"`
	Time    int64  `json:"time"`
}

// CreateSession handles POST /user?photoid={photo}
func (h *UserHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	photoID := r.URL.Query().Get("photoid")

	session, err := h.sessionService.Create(r.Context(), photoID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("session_id", session.ID).
		Str("photo", session.PhotoName).
		Msg("Session created")

	respondJSON(w, http.StatusOK, session)
}

// GetSession handles GET /user/{user_id}
func (h *UserHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	session, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// GetTime handles GET /user/{user_id}/time. The value is computed at
// call time and never persisted.
func (h *UserHandler) GetTime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	elapsed, err := h.sessionService.Elapsed(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, TimeResponse{Time: elapsed})
}

// RecordTime handles POST /user/{user_id}/time
func (h *UserHandler) RecordTime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	elapsed, err := h.sessionService.RecordCompletion(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("session_id", id).
		Int64("time_ms", elapsed).
		Msg("Completion time recorded")

	respondJSON(w, http.StatusOK, TimeResponse{
		Message: "Time saved to leaderboard",
		Time:    elapsed,
	})
}

// SubmitName handles POST /user/{user_id} with body {name}
func (h *UserHandler) SubmitName(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	// An absent or unreadable body is the same as an absent name;
	// validation reports it as a field error like any other bad name.
	var req SubmitNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.Name = ""
	}

	session, err := h.sessionService.SubmitName(r.Context(), id, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("session_id", session.ID).
		Str("photo", session.PhotoName).
		Str("name", session.Name).
		Msg("Session registered to leaderboard")

	if session.TimeMillis != nil {
		h.hub.Broadcast(session.PhotoName, models.LeaderboardEntry{
			Name:       session.Name,
			TimeMillis: *session.TimeMillis,
		})
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Saved to leaderboard!"})
}
