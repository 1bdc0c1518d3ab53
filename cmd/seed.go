package cmd

import (
	"context"
	"fmt"
	"os"

	"photo-hunt-backend/internal/config"
	"photo-hunt-backend/internal/models"
	"photo-hunt-backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape of a photo seed file.
type seedFile struct {
	Photos []seedPhoto `yaml:"photos"`
}

type seedPhoto struct {
	Name             string       `yaml:"name"`
	UserFriendlyName string       `yaml:"userFriendlyName"`
	Width            int          `yaml:"width"`
	Height           int          `yaml:"height"`
	Targets          []seedTarget `yaml:"targets"`
}

type seedTarget struct {
	Name     string       `yaml:"name"`
	Position seedPosition `yaml:"position"`
}

type seedPosition struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Seed inserts photo records from a YAML file. Photos that already
// exist are left untouched; the running service never writes photos,
// so this runs before the server starts.
func Seed(configPath, seedPath string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Log.Level)

	photos, err := loadSeedFile(seedPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", seedPath).Msg("Failed to load seed file")
	}

	db, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}

	photoRepo := repository.NewPhotoRepository(db)
	ctx := context.Background()

	for _, photo := range photos {
		exists, err := photoRepo.Exists(ctx, photo.Name)
		if err != nil {
			log.Fatal().Err(err).Str("photo", photo.Name).Msg("Failed to check photo")
		}
		if exists {
			log.Info().Str("photo", photo.Name).Msg("Photo already seeded, skipping")
			continue
		}

		if err := photoRepo.Create(ctx, photo); err != nil {
			log.Fatal().Err(err).Str("photo", photo.Name).Msg("Failed to seed photo")
		}
		log.Info().
			Str("photo", photo.Name).
			Int("targets", len(photo.Targets)).
			Msg("Photo seeded")
	}
}

// loadSeedFile parses and validates a seed file.
func loadSeedFile(path string) ([]*models.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	var photos []*models.Photo
	for _, p := range file.Photos {
		if p.Name == "" {
			return nil, fmt.Errorf("photo with empty name in seed file")
		}
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("photo %q has invalid dimensions", p.Name)
		}

		seen := make(map[string]bool, len(p.Targets))
		targets := make([]models.Target, 0, len(p.Targets))
		for _, t := range p.Targets {
			if t.Name == "" {
				return nil, fmt.Errorf("photo %q has a target with empty name", p.Name)
			}
			if seen[t.Name] {
				return nil, fmt.Errorf("photo %q has duplicate target %q", p.Name, t.Name)
			}
			seen[t.Name] = true
			targets = append(targets, models.Target{
				Name:     t.Name,
				Position: models.Position{X: t.Position.X, Y: t.Position.Y},
			})
		}

		photos = append(photos, &models.Photo{
			Name:             p.Name,
			UserFriendlyName: p.UserFriendlyName,
			Width:            p.Width,
			Height:           p.Height,
			Targets:          targets,
		})
	}

	return photos, nil
}
