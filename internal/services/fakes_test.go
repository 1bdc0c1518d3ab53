package services

import (
	"context"
	"io"
	"sort"
	"strings"

	"photo-hunt-backend/internal/imagestore"
	"photo-hunt-backend/internal/models"
	"photo-hunt-backend/internal/repository"
)

type fakePhotoStore struct {
	photos map[string]*models.Photo
}

func newFakePhotoStore(photos ...*models.Photo) *fakePhotoStore {
	s := &fakePhotoStore{photos: make(map[string]*models.Photo)}
	for _, p := range photos {
		s.photos[p.Name] = p
	}
	return s
}

func (s *fakePhotoStore) GetByName(ctx context.Context, name string) (*models.Photo, error) {
	photo, ok := s.photos[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return photo, nil
}

func (s *fakePhotoStore) List(ctx context.Context) ([]*models.Photo, error) {
	var photos []*models.Photo
	for _, p := range s.photos {
		photos = append(photos, p)
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].Name < photos[j].Name })
	return photos, nil
}

func (s *fakePhotoStore) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := s.photos[name]
	return ok, nil
}

type fakeSessionStore struct {
	sessions map[string]*models.Session
	order    []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (s *fakeSessionStore) Create(ctx context.Context, session *models.Session) error {
	copied := *session
	s.sessions[session.ID] = &copied
	s.order = append(s.order, session.ID)
	return nil
}

func (s *fakeSessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *fakeSessionStore) RecordTime(ctx context.Context, id string, timeMillis int64) error {
	session, ok := s.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !session.IsAnonymous {
		return repository.ErrAlreadyRegistered
	}
	session.TimeMillis = &timeMillis
	return nil
}

func (s *fakeSessionStore) Promote(ctx context.Context, id, name string, fallbackTimeMillis int64) error {
	session, ok := s.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	if !session.IsAnonymous {
		return repository.ErrAlreadyRegistered
	}
	session.Name = name
	session.IsAnonymous = false
	if session.TimeMillis == nil {
		session.TimeMillis = &fallbackTimeMillis
	}
	return nil
}

func (s *fakeSessionStore) Leaderboard(ctx context.Context, photoName string) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	for _, id := range s.order {
		session := s.sessions[id]
		if session.PhotoName != photoName || session.IsAnonymous || session.TimeMillis == nil {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			Name:       session.Name,
			TimeMillis: *session.TimeMillis,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TimeMillis < entries[j].TimeMillis
	})
	return entries, nil
}

type fakeImageStore struct {
	files map[string]string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{files: make(map[string]string)}
}

func (s *fakeImageStore) add(photoName, file, content string) {
	s.files[photoName+"/"+file] = content
}

func (s *fakeImageStore) Open(ctx context.Context, photoName, file string) (io.ReadCloser, error) {
	content, ok := s.files[photoName+"/"+file]
	if !ok {
		return nil, imagestore.ErrNotFound
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
