package services

import (
	"context"

	"photo-hunt-backend/internal/models"
)

// PhotoStore is the persistence contract the photo catalog needs.
// Missing records are reported as repository.ErrNotFound.
type PhotoStore interface {
	GetByName(ctx context.Context, name string) (*models.Photo, error)
	List(ctx context.Context) ([]*models.Photo, error)
	Exists(ctx context.Context, name string) (bool, error)
}

// SessionStore is the persistence contract the session lifecycle needs.
// Missing records are reported as repository.ErrNotFound; conditional
// updates against an already-named session as
// repository.ErrAlreadyRegistered.
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	RecordTime(ctx context.Context, id string, timeMillis int64) error
	Promote(ctx context.Context, id, name string, fallbackTimeMillis int64) error
	Leaderboard(ctx context.Context, photoName string) ([]models.LeaderboardEntry, error)
}
