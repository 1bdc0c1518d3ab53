package services

import (
	"errors"
	"fmt"
)

// Sentinel errors returned at the service boundary. Handlers map them
// to response status codes with errors.Is / errors.As instead of
// inspecting messages.
var (
	// ErrPhotoNotFound means the referenced photo does not exist.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrSessionNotFound means the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTargetNotFound means the photo has no target with that name.
	ErrTargetNotFound = errors.New("target not found")

	// ErrAlreadyRegistered means the session was already submitted to
	// the leaderboard. Registration is single-shot.
	ErrAlreadyRegistered = errors.New("this session is already registered to the leaderboard")
)

// FieldError describes one failed validation rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of validation failures for a
// request. The request is rejected without any mutation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", v[0].Message)
}
