package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the photos and sessions tables if they do not
// exist yet. Both the server and the seed subcommand run it at startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS photos (
			name TEXT PRIMARY KEY,
			user_friendly_name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			targets JSONB NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			photo_name TEXT NOT NULL,
			is_anonymous BOOLEAN NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			start_time TIMESTAMPTZ NOT NULL,
			time_ms BIGINT,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_leaderboard
			ON sessions (photo_name, time_ms) WHERE is_anonymous = FALSE`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
