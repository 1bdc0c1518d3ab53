package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"photo-hunt-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// PhotoRepository handles database operations for photos
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create inserts a photo record. Used by the seed subcommand only; the
// running service never writes photos.
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	targets, err := json.Marshal(photo.Targets)
	if err != nil {
		return fmt.Errorf("failed to encode targets: %w", err)
	}

	query := `
		INSERT INTO photos (name, user_friendly_name, width, height, targets)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.Exec(ctx, query,
		photo.Name, photo.UserFriendlyName, photo.Width, photo.Height, targets,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// GetByName retrieves a photo by its slug
func (r *PhotoRepository) GetByName(ctx context.Context, name string) (*models.Photo, error) {
	query := `
		SELECT name, user_friendly_name, width, height, targets
		FROM photos
		WHERE name = $1
	`
	var photo models.Photo
	var targets []byte
	err := r.db.QueryRow(ctx, query, name).Scan(
		&photo.Name, &photo.UserFriendlyName, &photo.Width, &photo.Height, &targets,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	if err := json.Unmarshal(targets, &photo.Targets); err != nil {
		return nil, fmt.Errorf("failed to decode targets: %w", err)
	}
	return &photo, nil
}

// List retrieves all photos
func (r *PhotoRepository) List(ctx context.Context) ([]*models.Photo, error) {
	query := `
		SELECT name, user_friendly_name, width, height, targets
		FROM photos
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []*models.Photo
	for rows.Next() {
		var photo models.Photo
		var targets []byte
		err := rows.Scan(
			&photo.Name, &photo.UserFriendlyName, &photo.Width, &photo.Height, &targets,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		if err := json.Unmarshal(targets, &photo.Targets); err != nil {
			return nil, fmt.Errorf("failed to decode targets: %w", err)
		}
		photos = append(photos, &photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photos: %w", err)
	}

	return photos, nil
}

// Exists checks whether a photo with the given name exists
func (r *PhotoRepository) Exists(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM photos WHERE name = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check photo existence: %w", err)
	}
	return exists, nil
}
