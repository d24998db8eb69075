package metadata

import (
	"testing"
	"time"
)

func TestDefaultEnvelope(t *testing.T) {
	env := DefaultEnvelope()
	if env.HasCover() || env.HasInfo() {
		t.Fatalf("default envelope must be empty: %#v", env)
	}
	if env.Source != SourceManualEntry {
		t.Fatalf("source = %q", env.Source)
	}
	if env.FetchedAt.IsZero() {
		t.Fatal("fetchedAt must be set")
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	env := Envelope{
		CoverURL:       "https://covers.example.com/dune.jpg",
		AdditionalInfo: map[string]string{"authors": "Frank Herbert"},
		Source:         SourceGoogleBooks,
		FetchedAt:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := env.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	decoded, err := DecodeEnvelope(raw)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if decoded.CoverURL != env.CoverURL || decoded.Source != env.Source {
		t.Fatalf("round trip mismatch: %#v", decoded)
	}
	if decoded.AdditionalInfo["authors"] != "Frank Herbert" {
		t.Fatalf("info lost: %v", decoded.AdditionalInfo)
	}
}

func TestDecodeEnvelopeBlank(t *testing.T) {
	env, err := DecodeEnvelope("")
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if env.Source != SourceManualEntry {
		t.Fatalf("blank input must decode to the default envelope, got %#v", env)
	}
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
	if _, err := DecodeEnvelope("{nope"); err == nil {
		t.Fatal("expected decode error")
	}
}
