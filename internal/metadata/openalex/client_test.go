package openalex_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shelf/internal/metadata/openalex"
)

func TestSearchWorks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/works" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("search"); got != "Attention Is All You Need" {
			t.Fatalf("unexpected search %q", got)
		}
		if got := r.URL.Query().Get("mailto"); got != "dev@example.com" {
			t.Fatalf("unexpected mailto %q", got)
		}
		w.Write([]byte(`{
			"results": [{
				"id": "https://openalex.org/W2963403868",
				"display_name": "Attention Is All You Need",
				"publication_year": 2017,
				"doi": "https://doi.org/10.48550/arxiv.1706.03762",
				"cited_by_count": 100000,
				"authorships": [
					{"author": {"display_name": "Ashish Vaswani"}},
					{"author": {"display_name": "Noam Shazeer"}}
				]
			}]
		}`))
	}))
	defer server.Close()

	client, err := openalex.New(server.URL, "dev@example.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	works, err := client.SearchWorks(context.Background(), "Attention Is All You Need")
	if err != nil {
		t.Fatalf("SearchWorks: %v", err)
	}
	if len(works) != 1 {
		t.Fatalf("expected 1 work, got %d", len(works))
	}
	work := works[0]
	if work.DisplayName != "Attention Is All You Need" || work.PublicationYear != 2017 {
		t.Fatalf("unexpected work %#v", work)
	}
	authors := work.AuthorNames()
	if len(authors) != 2 || authors[0] != "Ashish Vaswani" {
		t.Fatalf("unexpected authors %v", authors)
	}
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := openalex.New("", ""); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
