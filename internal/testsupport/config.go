// Package testsupport provides shared helpers for tests: temp-dir
// configs, stores, and seeded entries.
package testsupport

import (
	"path/filepath"
	"testing"

	"shelf/internal/config"
)

// NewConfig returns a Config rooted in a per-test temp directory.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
