package metadata

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shelf/internal/entry"
)

// Per-type background colors so placeholder covers are visually
// distinguishable in list views.
var placeholderPalette = map[entry.MediaType]string{
	entry.TypeBook:      "2e7d32",
	entry.TypeFilm:      "1565c0",
	entry.TypeSeries:    "6a1b9a",
	entry.TypeVideogame: "c62828",
	entry.TypePaper:     "546e7a",
}

const placeholderFallbackColor = "37474f"

const (
	placeholderWidth  = 300
	placeholderHeight = 450
)

// PlaceholderSynth builds deterministic placeholder cover URLs from a
// configured image service. Synthesis never performs network I/O, so
// it can serve as the terminal tier of every fallback chain.
type PlaceholderSynth struct {
	baseURL string
	caser   cases.Caser
}

// NewPlaceholderSynth creates a synthesizer backed by the first
// configured placeholder service.
func NewPlaceholderSynth(services []string) *PlaceholderSynth {
	baseURL := ""
	for _, service := range services {
		if trimmed := strings.TrimSpace(service); trimmed != "" {
			baseURL = strings.TrimRight(trimmed, "/")
			break
		}
	}
	return &PlaceholderSynth{
		baseURL: baseURL,
		caser:   cases.Title(language.English),
	}
}

// URL renders the placeholder cover URL for a title and media type.
// Returns "" when no placeholder service is configured.
func (p *PlaceholderSynth) URL(title string, mediaType entry.MediaType) string {
	if p.baseURL == "" {
		return ""
	}
	color, ok := placeholderPalette[mediaType]
	if !ok {
		color = placeholderFallbackColor
	}
	label := p.caser.String(strings.ToLower(strings.TrimSpace(title)))
	if label == "" {
		label = "Untitled"
	}
	return fmt.Sprintf("%s/%dx%d/%s/ffffff.png?text=%s",
		p.baseURL, placeholderWidth, placeholderHeight, color, url.QueryEscape(label))
}

// Envelope wraps the synthesized URL in a provenance-tagged envelope.
func (p *PlaceholderSynth) Envelope(title string, mediaType entry.MediaType) Envelope {
	env := DefaultEnvelope()
	env.CoverURL = p.URL(title, mediaType)
	env.Source = SourcePlaceholder
	return env
}
