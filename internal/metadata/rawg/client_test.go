package rawg_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelf/internal/metadata/rawg"
)

func TestSearchDecodesGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "key" {
			t.Fatalf("unexpected key %q", got)
		}
		if got := r.URL.Query().Get("search"); got != "Hades" {
			t.Fatalf("unexpected search %q", got)
		}
		w.Write([]byte(`{
			"count": 1,
			"results": [{
				"id": 274755,
				"slug": "hades",
				"name": "Hades",
				"released": "2020-09-17",
				"rating": 4.46,
				"metacritic": 93,
				"background_image": "https://media.rawg.io/media/games/hades.jpg"
			}]
		}`))
	}))
	defer server.Close()

	client, err := rawg.New("key", server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	games, err := client.Search(context.Background(), "Hades")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].Name != "Hades" || games[0].ReleaseYear() != "2020" {
		t.Fatalf("unexpected game %#v", games[0])
	}
	if games[0].BackgroundImage == "" {
		t.Fatal("expected background image")
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := rawg.New("", "https://example.com"); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestSearchSurfacesHTTPErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := rawg.New("key", server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Search(context.Background(), "Hades"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
