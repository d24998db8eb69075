package store

import (
	"context"
	"fmt"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS entries (
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    media_type    TEXT NOT NULL,
    start_date    TEXT,
    finish_date   TEXT,
    rating        TEXT,
    hype_rating   INTEGER NOT NULL DEFAULT 0,
    status        TEXT NOT NULL DEFAULT '',
    tags_json     TEXT NOT NULL DEFAULT '[]',
    cover_url     TEXT NOT NULL DEFAULT '',
    metadata_json TEXT NOT NULL DEFAULT '',
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL
)`

var entryIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_entries_status ON entries (status)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_media_type ON entries (media_type)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries (created_at)`,
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createEntriesTable); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	for _, stmt := range entryIndexes {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
