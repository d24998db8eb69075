package entry_test

import (
	"testing"

	"shelf/internal/entry"
)

func TestParseRatingNormalizesZeroToMarker(t *testing.T) {
	for _, raw := range []string{"0", " 0 ", "n/a", "NA", "-"} {
		rating, err := entry.ParseRating(raw)
		if err != nil {
			t.Fatalf("ParseRating(%q): %v", raw, err)
		}
		if !rating.IsNotApplicable() {
			t.Fatalf("ParseRating(%q): expected not-applicable marker", raw)
		}
		if rating.IsScored() {
			t.Fatalf("ParseRating(%q): marker must not count as scored", raw)
		}
		if rating.String() != entry.NotApplicableMarker {
			t.Fatalf("ParseRating(%q): round trip yielded %q", raw, rating.String())
		}
	}
}

func TestParseRatingDistinguishesMarkerFromAbsent(t *testing.T) {
	absent, err := entry.ParseRating("")
	if err != nil {
		t.Fatalf("ParseRating empty: %v", err)
	}
	if absent.IsSet() {
		t.Fatal("empty rating must stay unset")
	}
	if absent.String() != "" {
		t.Fatalf("unset rating persisted as %q", absent.String())
	}

	marker := entry.RatingNotApplicable()
	if !marker.IsSet() || marker.String() == "" {
		t.Fatal("marker must persist as the marker, not blank")
	}
}

func TestParseRatingBounds(t *testing.T) {
	for _, raw := range []string{"11", "-3", "ten", "7.5"} {
		if _, err := entry.ParseRating(raw); err == nil {
			t.Fatalf("ParseRating(%q): expected error", raw)
		}
	}
	rating, err := entry.ParseRating("7")
	if err != nil {
		t.Fatalf("ParseRating(7): %v", err)
	}
	value, ok := rating.Value()
	if !ok || value != 7 {
		t.Fatalf("expected scored 7, got %d ok=%v", value, ok)
	}
}

func TestRatingOfZero(t *testing.T) {
	if !entry.RatingOf(0).IsNotApplicable() {
		t.Fatal("RatingOf(0) must normalize to the marker")
	}
}
