package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 3000
  allowed_origins:
    - http://localhost:5173
database:
  host: db.internal
  port: 5432
  user: hunt
  password: secret
  dbname: photohunt
  sslmode: require
storage:
  backend: s3
  s3:
    region: eu-west-1
    bucket: hunt-images
log:
  level: debug
environment: development
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Server.Port != 3000 || cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("unexpected server config %+v", cfg.Server)
	}
	if len(cfg.Server.AllowedOrigins) != 1 {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Storage.Backend != "s3" || cfg.Storage.S3.Bucket != "hunt-images" {
		t.Fatalf("unexpected storage config %+v", cfg.Storage)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Log.Level)
	}
	if cfg.IsProduction() {
		t.Fatal("development config reported as production")
	}

	want := "host=db.internal port=5432 user=hunt password=secret dbname=photohunt sslmode=require"
	if got := cfg.Database.DSN(); got != want {
		t.Fatalf("unexpected DSN %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 3000
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Backend != "local" {
		t.Fatalf("expected local storage default, got %q", cfg.Storage.Backend)
	}
	if !cfg.IsProduction() {
		t.Fatal("expected production default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}
