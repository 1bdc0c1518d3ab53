package handlers

import (
	"github.com/go-chi/chi/v5"
)

// NewRouter wires the REST surface. Middleware is attached by the
// caller.
func NewRouter(photo *PhotoHandler, user *UserHandler, ws *WebSocketHandler) chi.Router {
	r := chi.NewRouter()

	r.Route("/photo", func(r chi.Router) {
		r.Get("/", photo.GetPhotos)
		r.Get("/{photo_name}", photo.GetPhoto)
		r.Get("/{photo_name}/main", photo.GetMainImage)
		r.Get("/{photo_name}/preview", photo.GetPreviewImage)
		r.Get("/{photo_name}/targets/{target_name}", photo.GetTargetIcon)
		r.Get("/{photo_name}/leaderboard", photo.GetLeaderboard)
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/", user.CreateSession)
		r.Get("/{user_id}", user.GetSession)
		r.Post("/{user_id}", user.SubmitName)
		r.Get("/{user_id}/time", user.GetTime)
		r.Post("/{user_id}/time", user.RecordTime)
	})

	r.Get("/ws/leaderboard", ws.HandleLeaderboardStream)

	r.NotFound(NotFound)

	return r
}
