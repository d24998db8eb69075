package tracker_test

import (
	"context"
	"testing"

	"shelf/internal/entry"
	"shelf/internal/metadata"
	"shelf/internal/services"
	"shelf/internal/tracker"
)

func TestRequestNewCoverUsesAlternativePath(t *testing.T) {
	tr, resolver, _ := newTestTracker(t)
	created, err := tr.Create(context.Background(), tracker.CreateRequest{
		Title:     "Dune",
		MediaType: "book",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	refreshed, err := tr.RequestNewCover(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("RequestNewCover: %v", err)
	}
	if refreshed.CoverURL != "https://covers.example.com/alternative.jpg" {
		t.Fatalf("cover = %q", refreshed.CoverURL)
	}
	if len(resolver.alternative) != 1 || resolver.alternative[0] != "Dune" {
		t.Fatalf("alternative calls = %v", resolver.alternative)
	}
	env, err := metadata.DecodeEnvelope(refreshed.MetadataJSON)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Source != metadata.SourceOpenLibrary {
		t.Fatalf("envelope source = %q", env.Source)
	}
}

func TestCoverRefreshFreezesEveryOtherField(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	created, err := tr.CreatePending(context.Background(), tracker.PendingRequest{
		Title:      "Disco Elysium",
		MediaType:  "game",
		HypeRating: 8,
		Tags:       []string{"rpg"},
	})
	if err != nil {
		t.Fatalf("CreatePending: %v", err)
	}

	refreshed, err := tr.RequestNewCover(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("RequestNewCover: %v", err)
	}
	if refreshed.Status != entry.StatusPending {
		t.Fatalf("status mutated to %s", refreshed.Status)
	}
	if refreshed.HypeRating != 8 {
		t.Fatalf("hype rating mutated to %d", refreshed.HypeRating)
	}
	if refreshed.Rating.IsSet() != created.Rating.IsSet() {
		t.Fatal("rating mutated")
	}
	if refreshed.StartDate != nil || refreshed.FinishDate != nil {
		t.Fatal("dates appeared during a cover refresh")
	}
	if len(refreshed.Tags) != 1 || refreshed.Tags[0] != "rpg" {
		t.Fatalf("tags mutated: %v", refreshed.Tags)
	}
	if refreshed.CoverURL == created.CoverURL {
		t.Fatal("cover did not change")
	}
}

func TestRequestNewCoverMissingEntry(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	if _, err := tr.RequestNewCover(context.Background(), "no-such-id"); !services.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestFallbackToPlaceholder(t *testing.T) {
	tr, resolver, _ := newTestTracker(t)
	created, err := tr.Create(context.Background(), tracker.CreateRequest{
		Title:     "Dune",
		MediaType: "book",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	replaced, err := tr.FallbackToPlaceholder(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FallbackToPlaceholder: %v", err)
	}
	env, err := metadata.DecodeEnvelope(replaced.MetadataJSON)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Source != metadata.SourcePlaceholder {
		t.Fatalf("envelope source = %q", env.Source)
	}
	if len(resolver.alternative) != 0 {
		t.Fatal("placeholder fallback must not run the alternative path")
	}
}

func TestRepairCoversBatch(t *testing.T) {
	tr, resolver, _ := newTestTracker(t)
	resolver.resolveEnv = func(title string, mediaType entry.MediaType) metadata.Envelope {
		switch title {
		case "Unresolvable":
			return metadata.DefaultEnvelope()
		default:
			return coverEnv("https://covers.example.com/"+string(mediaType)+".jpg", metadata.SourceGoogleBooks)
		}
	}

	good, err := tr.Create(context.Background(), tracker.CreateRequest{Title: "Good Cover", MediaType: "book"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// These two start with an empty cover.
	perTitleEnv := resolver.resolveEnv
	resolver.resolveEnv = func(string, entry.MediaType) metadata.Envelope { return metadata.DefaultEnvelope() }
	broken, err := tr.Create(context.Background(), tracker.CreateRequest{Title: "Broken Cover", MediaType: "film"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	unresolvable, err := tr.Create(context.Background(), tracker.CreateRequest{Title: "Unresolvable", MediaType: "film"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	resolver.resolveEnv = perTitleEnv

	report, err := tr.RepairCovers(context.Background())
	if err != nil {
		t.Fatalf("RepairCovers: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	repaired, skipped, failed := report.Counts()
	if repaired != 1 || skipped != 1 || failed != 1 {
		t.Fatalf("counts = %d/%d/%d (%+v)", repaired, skipped, failed, report.Results)
	}

	outcomes := map[string]string{}
	for _, result := range report.Results {
		outcomes[result.ID] = result.Outcome
	}
	if outcomes[good.ID] != tracker.RepairOutcomeSkipped {
		t.Fatalf("good entry outcome = %s", outcomes[good.ID])
	}
	if outcomes[broken.ID] != tracker.RepairOutcomeRepaired {
		t.Fatalf("broken entry outcome = %s", outcomes[broken.ID])
	}
	if outcomes[unresolvable.ID] != tracker.RepairOutcomeFailed {
		t.Fatalf("unresolvable entry outcome = %s", outcomes[unresolvable.ID])
	}

	fixed, err := tr.Get(context.Background(), broken.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fixed.CoverURL != "https://covers.example.com/film.jpg" {
		t.Fatalf("repaired cover = %q", fixed.CoverURL)
	}
}
