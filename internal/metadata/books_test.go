package metadata

import (
	"strings"
	"testing"

	"shelf/internal/metadata/googlebooks"
)

func volume(title string, info googlebooks.VolumeInfo) googlebooks.Volume {
	info.Title = title
	return googlebooks.Volume{ID: "vol-" + strings.ToLower(title), VolumeInfo: info}
}

func TestScoreVolumeTitleSimilarity(t *testing.T) {
	exact := volume("Dune", googlebooks.VolumeInfo{})
	contained := volume("Dune Messiah", googlebooks.VolumeInfo{})
	shared := volume("The Dune Encyclopedia Annotated", googlebooks.VolumeInfo{})
	unrelated := volume("Foundation", googlebooks.VolumeInfo{})

	if got := scoreVolume("Dune", exact); got != scoreExactTitle {
		t.Fatalf("exact score = %d", got)
	}
	if got := scoreVolume("Dune", contained); got != scoreContainedTitle {
		t.Fatalf("containment score = %d", got)
	}
	if got := scoreVolume("Dune", shared); got != scorePerSharedWord {
		t.Fatalf("shared-word score = %d", got)
	}
	if got := scoreVolume("Dune", unrelated); got != 0 {
		t.Fatalf("unrelated score = %d", got)
	}
}

func TestScoreVolumeBonuses(t *testing.T) {
	rich := volume("Dune", googlebooks.VolumeInfo{
		Authors:       []string{"Frank Herbert"},
		Publisher:     "Ace",
		PublishedDate: "1965",
		ImageLinks:    googlebooks.ImageLinks{Thumbnail: "https://example.com/t.jpg"},
	})
	want := scoreExactTitle + bonusHasImage + bonusHasAuthors + bonusHasPublisher + bonusHasPublishDate
	if got := scoreVolume("Dune", rich); got != want {
		t.Fatalf("score = %d, want %d", got, want)
	}
}

func TestSelectBestVolumeTiesKeepFirstSeen(t *testing.T) {
	first := volume("Dune", googlebooks.VolumeInfo{})
	second := volume("Dune", googlebooks.VolumeInfo{})
	second.ID = "vol-duplicate"
	best, ok := selectBestVolume("Dune", []googlebooks.Volume{first, second})
	if !ok {
		t.Fatal("expected a selection")
	}
	if best.ID != first.ID {
		t.Fatalf("tie broken toward %s", best.ID)
	}
}

func TestSelectBestVolumeEmptyInput(t *testing.T) {
	if _, ok := selectBestVolume("Dune", nil); ok {
		t.Fatal("expected no selection from empty candidates")
	}
}

func TestEnhanceCoverURL(t *testing.T) {
	raw := "http://books.google.com/books/content?id=x&printsec=frontcover&zoom=5&edge=curl"
	enhanced := enhanceCoverURL(raw)
	if !strings.HasPrefix(enhanced, "https://") {
		t.Fatalf("scheme not upgraded: %q", enhanced)
	}
	if !strings.Contains(enhanced, "zoom=2") || strings.Contains(enhanced, "zoom=5") {
		t.Fatalf("zoom not normalized: %q", enhanced)
	}
	if !strings.Contains(enhanced, "fife=w800") {
		t.Fatalf("width hint missing: %q", enhanced)
	}
	if strings.Contains(enhanced, "edge=curl") || !strings.Contains(enhanced, "edge=none") {
		t.Fatalf("edge styling not flattened: %q", enhanced)
	}
	if strings.Count(enhanced, "edge=") != 1 {
		t.Fatalf("duplicate edge params: %q", enhanced)
	}
}

func TestEnhanceCoverURLWithoutQuery(t *testing.T) {
	enhanced := enhanceCoverURL("https://example.com/cover.jpg")
	if enhanced != "https://example.com/cover.jpg?fife=w800&edge=none" {
		t.Fatalf("unexpected enhancement %q", enhanced)
	}
	if enhanceCoverURL("") != "" {
		t.Fatal("empty input must stay empty")
	}
}

func TestEnhanceCoverURLAppendsEdgeStyling(t *testing.T) {
	enhanced := enhanceCoverURL("https://books.google.com/books/content?id=x&fife=w400")
	if !strings.HasSuffix(enhanced, "&edge=none") {
		t.Fatalf("edge styling not appended: %q", enhanced)
	}
	kept := enhanceCoverURL("https://books.google.com/books/content?id=x&edge=shadow")
	if !strings.Contains(kept, "edge=shadow") || strings.Contains(kept, "edge=none") {
		t.Fatalf("explicit edge styling overridden: %q", kept)
	}
}

func TestBestCoverFromVolumePrefersLargestAcceptable(t *testing.T) {
	v := volume("Dune", googlebooks.VolumeInfo{
		ImageLinks: googlebooks.ImageLinks{
			ExtraLarge: "https://books.google.com/books/content?id=x&printsec=frontcover&w=90",
			Large:      "https://covers.example.com/large.jpg",
			Thumbnail:  "https://covers.example.com/thumb.jpg",
		},
	})
	cover, ok := bestCoverFromVolume(v)
	if !ok {
		t.Fatal("expected a cover")
	}
	if !strings.HasPrefix(cover, "https://covers.example.com/large.jpg") {
		t.Fatalf("unexpected cover %q", cover)
	}
}

func TestBestCoverFromVolumeRetriesLargestLink(t *testing.T) {
	// Every link fails the predicate, but the largest has no explicit
	// width below the retry floor, so it is accepted on the retry.
	v := volume("Dune", googlebooks.VolumeInfo{
		ImageLinks: googlebooks.ImageLinks{
			Large: "https://books.google.com/books/content?id=x&printsec=frontcover&w=100",
		},
	})
	cover, ok := bestCoverFromVolume(v)
	if !ok {
		t.Fatal("expected the retry to accept the largest link")
	}
	if !strings.Contains(cover, "w=100") {
		t.Fatalf("unexpected cover %q", cover)
	}
}

func TestBestCoverFromVolumeRejectsTinyRetry(t *testing.T) {
	v := volume("Dune", googlebooks.VolumeInfo{
		ImageLinks: googlebooks.ImageLinks{
			Thumbnail: "https://books.google.com/books/content?id=x&printsec=frontcover&w=80",
		},
	})
	if cover, ok := bestCoverFromVolume(v); ok {
		t.Fatalf("expected rejection, got %q", cover)
	}
}

func TestBestCoverFromVolumeNoLinks(t *testing.T) {
	if cover, ok := bestCoverFromVolume(volume("Dune", googlebooks.VolumeInfo{})); ok {
		t.Fatalf("expected no cover, got %q", cover)
	}
}

func TestBookEnvelopeCarriesDescriptiveFields(t *testing.T) {
	v := volume("Dune", googlebooks.VolumeInfo{
		Authors:       []string{"Frank Herbert"},
		Publisher:     "Ace",
		PublishedDate: "1965",
		PageCount:     412,
		Categories:    []string{"Fiction"},
	})
	env := bookEnvelope(v, "https://covers.example.com/dune.jpg")
	if env.Source != SourceGoogleBooks {
		t.Fatalf("source = %q", env.Source)
	}
	if env.CoverURL != "https://covers.example.com/dune.jpg" {
		t.Fatalf("cover = %q", env.CoverURL)
	}
	if env.AdditionalInfo["authors"] != "Frank Herbert" || env.AdditionalInfo["pageCount"] != "412" {
		t.Fatalf("info = %v", env.AdditionalInfo)
	}
}
