package repository

import (
	"context"
	"errors"
	"fmt"

	"photo-hunt-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyRegistered is returned by Promote when the session has
// already been submitted to the leaderboard.
var ErrAlreadyRegistered = errors.New("session already registered")

// SessionRepository handles database operations for game sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, photo_name, is_anonymous, name, start_time, time_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		session.ID, session.PhotoName, session.IsAnonymous, session.Name,
		session.StartTime, session.TimeMillis, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, photo_name, is_anonymous, name, start_time, time_ms, created_at
		FROM sessions
		WHERE id = $1
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&session.ID, &session.PhotoName, &session.IsAnonymous, &session.Name,
		&session.StartTime, &session.TimeMillis, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// RecordTime persists a completion time for a still-anonymous session.
// A named session's time is frozen, so the update is conditional on
// is_anonymous.
func (r *SessionRepository) RecordTime(ctx context.Context, id string, timeMillis int64) error {
	query := `UPDATE sessions SET time_ms = $1 WHERE id = $2 AND is_anonymous = TRUE`
	result, err := r.db.Exec(ctx, query, timeMillis, id)
	if err != nil {
		return fmt.Errorf("failed to record session time: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAlreadyRegistered
	}
	return nil
}

// Promote names a session and drops its anonymous flag in a single
// conditional update, so a session can be registered at most once. The
// fallback time is stamped only when no completion was recorded before.
func (r *SessionRepository) Promote(ctx context.Context, id, name string, fallbackTimeMillis int64) error {
	query := `
		UPDATE sessions
		SET name = $1, is_anonymous = FALSE, time_ms = COALESCE(time_ms, $2)
		WHERE id = $3 AND is_anonymous = TRUE
	`
	result, err := r.db.Exec(ctx, query, name, fallbackTimeMillis, id)
	if err != nil {
		return fmt.Errorf("failed to promote session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAlreadyRegistered
	}
	return nil
}

// Leaderboard retrieves every named session for a photo, fastest first.
// created_at breaks ties in insertion order.
func (r *SessionRepository) Leaderboard(ctx context.Context, photoName string) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT name, time_ms
		FROM sessions
		WHERE photo_name = $1 AND is_anonymous = FALSE
		ORDER BY time_ms ASC, created_at ASC
	`
	rows, err := r.db.Query(ctx, query, photoName)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.Name, &entry.TimeMillis); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}

	return entries, nil
}
