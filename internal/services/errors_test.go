package services_test

import (
	"errors"
	"testing"

	"shelf/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("row missing")
	err := services.Wrap(services.ErrNotFound, "tracker", "get", "entry abc", cause)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause preserved, got %v", err)
	}
	if !services.IsNotFound(err) {
		t.Fatal("IsNotFound should report true")
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "tracker", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestWrapDetailComposition(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "tracker", "create", "bad input", nil)
	expected := "validation error: tracker: create: bad input"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}
