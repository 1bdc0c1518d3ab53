package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"photo-hunt-backend/internal/imagestore"
	"photo-hunt-backend/internal/models"
	"photo-hunt-backend/internal/repository"
)

// PhotoService handles the read-only photo catalog, image file access
// and per-photo leaderboard queries.
type PhotoService struct {
	photos   PhotoStore
	sessions SessionStore
	images   imagestore.Store
}

// NewPhotoService creates a new photo service
func NewPhotoService(photos PhotoStore, sessions SessionStore, images imagestore.Store) *PhotoService {
	return &PhotoService{
		photos:   photos,
		sessions: sessions,
		images:   images,
	}
}

// List returns every photo in the catalog.
func (s *PhotoService) List(ctx context.Context) ([]*models.Photo, error) {
	photos, err := s.photos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	if photos == nil {
		photos = []*models.Photo{}
	}
	return photos, nil
}

// Get returns one photo by its slug.
func (s *PhotoService) Get(ctx context.Context, name string) (*models.Photo, error) {
	photo, err := s.photos.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}
	return photo, nil
}

// Leaderboard returns the named sessions for a photo, fastest first. An
// empty leaderboard is an empty slice, not an error.
func (s *PhotoService) Leaderboard(ctx context.Context, photoName string) ([]models.LeaderboardEntry, error) {
	exists, err := s.photos.Exists(ctx, photoName)
	if err != nil {
		return nil, fmt.Errorf("failed to check photo: %w", err)
	}
	if !exists {
		return nil, ErrPhotoNotFound
	}

	entries, err := s.sessions.Leaderboard(ctx, photoName)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

// OpenMain opens a photo's full-size image.
func (s *PhotoService) OpenMain(ctx context.Context, photoName string) (io.ReadCloser, string, error) {
	return s.openImage(ctx, photoName, imagestore.MainFile)
}

// OpenPreview opens a photo's preview image.
func (s *PhotoService) OpenPreview(ctx context.Context, photoName string) (io.ReadCloser, string, error) {
	return s.openImage(ctx, photoName, imagestore.PreviewFile)
}

// OpenTargetIcon opens the icon for one of a photo's targets. The
// target must appear in the photo's target list.
func (s *PhotoService) OpenTargetIcon(ctx context.Context, photoName, targetName string) (io.ReadCloser, string, error) {
	photo, err := s.Get(ctx, photoName)
	if err != nil {
		return nil, "", err
	}
	if photo.Target(targetName) == nil {
		return nil, "", ErrTargetNotFound
	}

	file := imagestore.TargetFile(targetName)
	rc, err := s.images.Open(ctx, photoName, file)
	if err != nil {
		if errors.Is(err, imagestore.ErrNotFound) {
			return nil, "", ErrTargetNotFound
		}
		return nil, "", fmt.Errorf("failed to open target icon: %w", err)
	}
	return rc, imagestore.ContentType(file), nil
}

func (s *PhotoService) openImage(ctx context.Context, photoName, file string) (io.ReadCloser, string, error) {
	// The photo record is checked first so a missing record and a
	// missing file both surface as the same not-found.
	if _, err := s.Get(ctx, photoName); err != nil {
		return nil, "", err
	}

	rc, err := s.images.Open(ctx, photoName, file)
	if err != nil {
		if errors.Is(err, imagestore.ErrNotFound) {
			return nil, "", ErrPhotoNotFound
		}
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	return rc, imagestore.ContentType(file), nil
}
