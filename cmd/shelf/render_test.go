package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"shelf/internal/entry"
	"shelf/internal/metadata"
)

func TestLabels(t *testing.T) {
	if got := typeLabel(entry.TypeVideogame); got != "Videogame" {
		t.Fatalf("typeLabel = %q", got)
	}
	if got := statusLabel(entry.StatusInProgressNoDates); got != "In Progress No Dates" {
		t.Fatalf("statusLabel = %q", got)
	}
}

func TestEntryTableRows(t *testing.T) {
	start, _ := entry.ParseDate("2026-01-02")
	rating, _ := entry.ParseRating("8")
	rows := entryTableRows([]*entry.Entry{{
		ID:        "0123456789abcdef",
		Title:     "Dune",
		MediaType: entry.TypeBook,
		Status:    entry.StatusInProgress,
		Rating:    rating,
		StartDate: start,
	}})
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	row := rows[0]
	if row[0] != "01234567" {
		t.Fatalf("id column = %q", row[0])
	}
	if row[3] != "In Progress" || row[4] != "8" || row[5] != "2026-01-02" || row[6] != "" {
		t.Fatalf("unexpected row %v", row)
	}
}

func TestEntryTableIncludesHeadersAndRows(t *testing.T) {
	start, _ := entry.ParseDate("2026-01-02")
	finish, _ := entry.ParseDate("2026-02-10")
	rating, _ := entry.ParseRating("9")
	rendered := entryTable([]*entry.Entry{{
		ID:         "0123456789abcdef",
		Title:      "Dune",
		MediaType:  entry.TypeBook,
		Status:     entry.StatusCompleted,
		Rating:     rating,
		StartDate:  start,
		FinishDate: finish,
	}})
	for _, want := range []string{"TITLE", "RATING", "01234567", "Dune", "Completed", "2026-02-10"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered table missing %q:\n%s", want, rendered)
		}
	}
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, map[string]string{"id": "id-1"}); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	if got := buf.String(); got != "{\n  \"id\": \"id-1\"\n}\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestToEntryJSON(t *testing.T) {
	env := metadata.DefaultEnvelope()
	env.CoverURL = "https://covers.example.com/dune.jpg"
	env.Source = metadata.SourceGoogleBooks
	encoded, err := env.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	rating, _ := entry.ParseRating("0")
	out := toEntryJSON(&entry.Entry{
		ID:           "id-1",
		Title:        "Dune",
		MediaType:    entry.TypeBook,
		Status:       entry.StatusCompletedNoDates,
		Rating:       rating,
		MetadataJSON: encoded,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if out.Rating != "n/a" {
		t.Fatalf("marker rating rendered as %q", out.Rating)
	}
	if out.Metadata == nil || out.Metadata.Source != metadata.SourceGoogleBooks {
		t.Fatalf("metadata envelope missing: %#v", out.Metadata)
	}
	if out.CreatedAt != "2026-08-01T10:00:00Z" {
		t.Fatalf("createdAt = %q", out.CreatedAt)
	}
}

func TestMergeTags(t *testing.T) {
	got := mergeTags([]string{"sci-fi", "classic"}, []string{"reread", "sci-fi"}, []string{"classic"})
	if len(got) != 2 || got[0] != "sci-fi" || got[1] != "reread" {
		t.Fatalf("mergeTags = %v", got)
	}
	if got := mergeTags(nil, nil, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %v", got)
	}
}
