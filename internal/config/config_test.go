package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"shelf/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if path == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.TMDB.BaseURL == "" || cfg.GoogleBooks.BaseURL == "" {
		t.Fatal("expected provider defaults populated")
	}
	if len(cfg.Placeholder.Services) == 0 {
		t.Fatal("expected placeholder services default")
	}
}

func TestLoadParsesAndExpands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"

[tmdb]
api_key = "from-file"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s exists=%v", path, resolved, exists)
	}
	if cfg.TMDB.APIKey != "from-file" {
		t.Fatalf("unexpected tmdb key %q", cfg.TMDB.APIKey)
	}
	if !filepath.IsAbs(cfg.Paths.DataDir) {
		t.Fatalf("expected absolute data dir, got %q", cfg.Paths.DataDir)
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Paths.DataDir, "shelf.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestEnvironmentKeyFallback(t *testing.T) {
	t.Setenv("RAWG_API_KEY", "env-key")
	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RAWG.APIKey != "env-key" {
		t.Fatalf("expected env fallback, got %q", cfg.RAWG.APIKey)
	}
}

func TestValidateRejectsBadLogging(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected logging format error")
	}
	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected logging level error")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected sample content")
	}
}
