package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Doc represents a single Open Library search result document.
type Doc struct {
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int64    `json:"cover_i"`
	ISBN             []string `json:"isbn"`
}

// Response models the search.json payload.
type Response struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// Client provides access to Open Library search and covers.
type Client struct {
	baseURL       string
	coversBaseURL string
	httpClient    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates an Open Library client.
func New(baseURL, coversBaseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("openlibrary base url required")
	}
	coversBaseURL = strings.TrimSpace(coversBaseURL)
	if coversBaseURL == "" {
		return nil, errors.New("openlibrary covers base url required")
	}
	client := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		coversBaseURL: strings.TrimRight(coversBaseURL, "/"),
		httpClient:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchByTitle queries the search endpoint for a book title.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]Doc, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/search.json")
	if err != nil {
		return nil, fmt.Errorf("parse openlibrary url: %w", err)
	}
	params := url.Values{}
	params.Set("title", title)
	params.Set("limit", "5")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode openlibrary response: %w", err)
	}
	return payload.Docs, nil
}

// CoverURLForID builds the deterministic large-cover URL for a cover id.
func (c *Client) CoverURLForID(coverID int64) string {
	if coverID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-L.jpg", c.coversBaseURL, coverID)
}

// CoverURLForISBN builds the deterministic large-cover URL for an ISBN.
func (c *Client) CoverURLForISBN(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return ""
	}
	return fmt.Sprintf("%s/b/isbn/%s-L.jpg", c.coversBaseURL, url.PathEscape(isbn))
}

// CoverURL resolves the best deterministic cover URL a doc offers:
// cover id first, then the first ISBN.
func (c *Client) CoverURL(doc Doc) string {
	if u := c.CoverURLForID(doc.CoverID); u != "" {
		return u
	}
	for _, isbn := range doc.ISBN {
		if u := c.CoverURLForISBN(isbn); u != "" {
			return u
		}
	}
	return ""
}
