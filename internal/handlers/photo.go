package handlers

import (
	"errors"
	"io"
	"net/http"

	"photo-hunt-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PhotoHandler handles photo-related HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// GetPhotos handles GET /photo
func (h *PhotoHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	photos, err := h.photoService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list photos")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, photos)
}

// GetPhoto handles GET /photo/{photo_name}
func (h *PhotoHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "photo_name")

	photo, err := h.photoService.Get(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, photo)
}

// GetMainImage handles GET /photo/{photo_name}/main
func (h *PhotoHandler) GetMainImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "photo_name")

	rc, contentType, err := h.photoService.OpenMain(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.streamImage(w, rc, contentType, name)
}

// GetPreviewImage handles GET /photo/{photo_name}/preview
func (h *PhotoHandler) GetPreviewImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "photo_name")

	rc, contentType, err := h.photoService.OpenPreview(r.Context(), name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.streamImage(w, rc, contentType, name)
}

// GetTargetIcon handles GET /photo/{photo_name}/targets/{target_name}
func (h *PhotoHandler) GetTargetIcon(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "photo_name")
	targetName := chi.URLParam(r, "target_name")

	rc, contentType, err := h.photoService.OpenTargetIcon(r.Context(), name, targetName)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	h.streamImage(w, rc, contentType, name)
}

// GetLeaderboard handles GET /photo/{photo_name}/leaderboard
func (h *PhotoHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "photo_name")

	entries, err := h.photoService.Leaderboard(r.Context(), name)
	if err != nil {
		if !errors.Is(err, services.ErrPhotoNotFound) {
			log.Error().Err(err).Str("photo", name).Msg("Failed to query leaderboard")
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *PhotoHandler) streamImage(w http.ResponseWriter, rc io.ReadCloser, contentType, photoName string) {
	defer rc.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		log.Error().Err(err).Str("photo", photoName).Msg("Failed to stream image")
	}
}
