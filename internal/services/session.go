package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"photo-hunt-backend/internal/models"
	"photo-hunt-backend/internal/repository"

	"github.com/google/uuid"
)

const (
	nameMinLength = 1
	nameMaxLength = 32
)

// SessionService handles the game-session lifecycle: anonymous
// creation, elapsed-time reads, completion recording and the
// single-shot leaderboard registration.
type SessionService struct {
	sessions SessionStore
	photos   PhotoStore
	clock    func() time.Time
	newID    func() string
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionStore, photos PhotoStore) *SessionService {
	return &SessionService{
		sessions: sessions,
		photos:   photos,
		clock:    time.Now,
		newID:    uuid.NewString,
	}
}

// Create starts a new anonymous session against an existing photo.
func (s *SessionService) Create(ctx context.Context, photoName string) (*models.Session, error) {
	exists, err := s.photos.Exists(ctx, photoName)
	if err != nil {
		return nil, fmt.Errorf("failed to check photo: %w", err)
	}
	if !exists {
		return nil, ErrPhotoNotFound
	}

	now := s.clock()
	session := &models.Session{
		ID:          s.newID(),
		IsAnonymous: true,
		StartTime:   now,
		PhotoName:   photoName,
		CreatedAt:   now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Elapsed computes the session's current elapsed time in milliseconds.
// It is a pure read and is never persisted; the client-side display
// timer uses the same now-minus-startTime formula.
func (s *SessionService) Elapsed(ctx context.Context, id string) (int64, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.elapsedMillis(session), nil
}

// RecordCompletion stamps the session's completion time. While the
// session is anonymous every call overwrites the time with a freshly
// computed value; once the session is named the stored time is frozen
// and returned as-is.
func (s *SessionService) RecordCompletion(ctx context.Context, id string) (int64, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if !session.IsAnonymous {
		return frozenTime(session), nil
	}

	elapsed := s.elapsedMillis(session)
	err = s.sessions.RecordTime(ctx, id, elapsed)
	if errors.Is(err, repository.ErrAlreadyRegistered) {
		// Registration won a race with this call; the stored time
		// is authoritative now.
		session, err = s.Get(ctx, id)
		if err != nil {
			return 0, err
		}
		return frozenTime(session), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to record completion: %w", err)
	}

	return elapsed, nil
}

// SubmitName registers a session on the leaderboard. The order of
// checks is fixed: missing session, already registered, then name
// validation. On success the session is named, loses its anonymous
// flag, and keeps its recorded time; a session that never recorded a
// completion gets its time stamped at the submission instant.
func (s *SessionService) SubmitName(ctx context.Context, id, name string) (*models.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !session.IsAnonymous {
		return nil, ErrAlreadyRegistered
	}

	if verr := validateName(name); verr != nil {
		return nil, verr
	}

	fallback := s.elapsedMillis(session)
	err = s.sessions.Promote(ctx, id, name, fallback)
	if errors.Is(err, repository.ErrAlreadyRegistered) {
		return nil, ErrAlreadyRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("failed to submit name: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *SessionService) elapsedMillis(session *models.Session) int64 {
	elapsed := s.clock().Sub(session.StartTime).Milliseconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func frozenTime(session *models.Session) int64 {
	if session.TimeMillis == nil {
		return 0
	}
	return *session.TimeMillis
}

// validateName checks leaderboard name constraints: 1-32 characters,
// alphanumeric only. Returning the full list of failures lets the
// client report every problem at once.
func validateName(name string) ValidationErrors {
	var errs ValidationErrors

	if len(name) < nameMinLength || len(name) > nameMaxLength {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "Name should be between 1-32 characters.",
		})
	}

	for _, r := range name {
		if !isAlphanumeric(r) {
			errs = append(errs, FieldError{
				Field:   "name",
				Message: "Name should not contain any special characters.",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
