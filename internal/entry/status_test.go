package entry_test

import (
	"testing"
	"time"

	"shelf/internal/entry"
)

func date(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := entry.ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", value, err)
	}
	return parsed
}

func TestComputeStatusDecisionTable(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		finish   string
		rating   string
		finished bool
		expected entry.Status
	}{
		{"no dates with rating", "", "", "8", false, entry.StatusCompletedNoDates},
		{"no dates with finished flag", "", "", "", true, entry.StatusCompletedNoDates},
		{"no dates no rating", "", "", "", false, entry.StatusInProgressNoDates},
		{"no dates marker rating", "", "", "n/a", false, entry.StatusInProgressNoDates},
		{"no dates zero rating", "", "", "0", false, entry.StatusInProgressNoDates},
		{"finish only", "", "2024-02-01", "", false, entry.StatusCompleted},
		{"start only", "2024-01-01", "", "", false, entry.StatusInProgress},
		{"start only with rating", "2024-01-01", "", "9", false, entry.StatusInProgress},
		{"both dates", "2024-01-01", "2024-02-01", "", false, entry.StatusCompleted},
		{"both dates with rating", "2024-01-01", "2024-02-01", "9", false, entry.StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rating, err := entry.ParseRating(tc.rating)
			if err != nil {
				t.Fatalf("ParseRating(%q): %v", tc.rating, err)
			}
			var start, finish *time.Time
			if tc.start != "" {
				start = date(t, tc.start)
			}
			if tc.finish != "" {
				finish = date(t, tc.finish)
			}
			got := entry.ComputeStatus(start, finish, rating, tc.finished)
			if got != tc.expected {
				t.Fatalf("ComputeStatus: expected %s, got %s", tc.expected, got)
			}
			again := entry.ComputeStatus(start, finish, rating, tc.finished)
			if again != got {
				t.Fatalf("ComputeStatus not idempotent: %s then %s", got, again)
			}
		})
	}
}

func TestInferStatusRespectsStoredStatus(t *testing.T) {
	start := date(t, "2024-01-01")
	finish := date(t, "2024-02-01")
	rating := entry.RatingOf(9)

	// A pending entry must never be reclassified on read, even when its
	// date and rating fields would infer something else.
	if got := entry.InferStatus(entry.StatusPending, start, finish, rating); got != entry.StatusPending {
		t.Fatalf("expected stored pending to win, got %s", got)
	}
	if got := entry.InferStatus(entry.StatusUnknownDates, nil, nil, rating); got != entry.StatusUnknownDates {
		t.Fatalf("expected stored unknown-dates to win, got %s", got)
	}
	if got := entry.InferStatus("", start, finish, rating); got != entry.StatusCompleted {
		t.Fatalf("expected blank status to infer completed, got %s", got)
	}
}

func TestParseStatus(t *testing.T) {
	if status, ok := entry.ParseStatus(" Pending "); !ok || status != entry.StatusPending {
		t.Fatalf("ParseStatus pending: got %q ok=%v", status, ok)
	}
	if _, ok := entry.ParseStatus("finished"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
	if _, ok := entry.ParseStatus(""); ok {
		t.Fatal("expected empty status to be rejected")
	}
}
