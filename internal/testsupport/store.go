package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"shelf/internal/config"
	"shelf/internal/entry"
	"shelf/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedEntry inserts a minimal entry and returns it.
func SeedEntry(t testing.TB, st *store.Store, title string, mt entry.MediaType, status entry.Status) *entry.Entry {
	t.Helper()

	now := time.Now().UTC()
	e := &entry.Entry{
		ID:        uuid.NewString(),
		Title:     title,
		MediaType: mt,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := st.Insert(context.Background(), e); err != nil {
		t.Fatalf("store.Insert: %v", err)
	}
	return e
}
