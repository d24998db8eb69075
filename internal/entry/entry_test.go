package entry_test

import (
	"testing"

	"shelf/internal/entry"
)

func TestCloneIsADeepCopy(t *testing.T) {
	start, _ := entry.ParseDate("2026-01-02")
	finish, _ := entry.ParseDate("2026-02-10")
	original := &entry.Entry{
		ID:         "id-1",
		Title:      "Dune",
		MediaType:  entry.TypeBook,
		StartDate:  start,
		FinishDate: finish,
		Status:     entry.StatusCompleted,
		Tags:       []string{"sci-fi", "classic"},
	}

	cp := original.Clone()
	cp.Status = entry.StatusInProgress
	*cp.StartDate = cp.StartDate.AddDate(1, 0, 0)
	cp.Tags[0] = "fantasy"

	if original.Status != entry.StatusCompleted {
		t.Fatalf("status leaked into original: %s", original.Status)
	}
	if got := entry.FormatDate(original.StartDate); got != "2026-01-02" {
		t.Fatalf("start date leaked into original: %s", got)
	}
	if original.Tags[0] != "sci-fi" {
		t.Fatalf("tags leaked into original: %v", original.Tags)
	}
}

func TestCloneNilReceiver(t *testing.T) {
	var e *entry.Entry
	if e.Clone() != nil {
		t.Fatal("nil entry must clone to nil")
	}
}
