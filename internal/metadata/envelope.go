package metadata

import (
	"encoding/json"
	"fmt"
	"time"
)

// Provenance source tags.
const (
	SourceGoogleBooks = "Google Books"
	SourceTMDB        = "TMDB"
	SourceRAWG        = "RAWG"
	SourceOpenAlex    = "OpenAlex"
	SourceOpenLibrary = "Open Library"
	SourcePlaceholder = "Placeholder"
	SourceManualEntry = "Manual Entry"
)

// Envelope is the provenance-tagged metadata bag attached to an entry.
// It is opaque to status inference and consumed only by presentation.
type Envelope struct {
	CoverURL       string            `json:"coverUrl"`
	AdditionalInfo map[string]string `json:"additionalInfo"`
	Source         string            `json:"source"`
	FetchedAt      time.Time         `json:"fetchedAt"`
}

// DefaultEnvelope is the bottom of every fallback chain: no cover, no
// info, tagged as a manual entry.
func DefaultEnvelope() Envelope {
	return Envelope{
		AdditionalInfo: map[string]string{},
		Source:         SourceManualEntry,
		FetchedAt:      time.Now().UTC(),
	}
}

// HasCover reports whether the envelope carries a cover URL.
func (e Envelope) HasCover() bool {
	return e.CoverURL != ""
}

// HasInfo reports whether the envelope carries any descriptive fields.
func (e Envelope) HasInfo() bool {
	return len(e.AdditionalInfo) > 0
}

// EncodeJSON renders the envelope for persistence.
func (e Envelope) EncodeJSON() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(raw), nil
}

// DecodeEnvelope parses a persisted envelope. Blank input yields the
// default envelope rather than an error.
func DecodeEnvelope(raw string) (Envelope, error) {
	if raw == "" {
		return DefaultEnvelope(), nil
	}
	var e Envelope
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if e.AdditionalInfo == nil {
		e.AdditionalInfo = map[string]string{}
	}
	return e, nil
}
