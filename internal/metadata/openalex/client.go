package openalex

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

// Authorship names one author of a work.
type Authorship struct {
	Author struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
}

// Work represents a single OpenAlex search match.
type Work struct {
	ID              string       `json:"id"`
	DisplayName     string       `json:"display_name"`
	PublicationYear int          `json:"publication_year"`
	DOI             string       `json:"doi"`
	CitedByCount    int64        `json:"cited_by_count"`
	Authorships     []Authorship `json:"authorships"`
}

// Response models the works search payload.
type Response struct {
	Results []Work `json:"results"`
}

// Client provides access to the OpenAlex API for work searches.
type Client struct {
	baseURL    string
	mailTo     string
	httpClient *http.Client
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

// New creates an OpenAlex client. No API key is needed; mailTo is
// optional and joins the polite pool when set.
func New(baseURL, mailTo string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("openalex base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		mailTo:     strings.TrimSpace(mailTo),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchWorks queries OpenAlex for works matching the supplied title.
func (c *Client) SearchWorks(ctx context.Context, query string) ([]Work, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/works")
	if err != nil {
		return nil, fmt.Errorf("parse openalex url: %w", err)
	}
	params := url.Values{}
	params.Set("search", query)
	params.Set("per-page", "5")
	if c.mailTo != "" {
		params.Set("mailto", c.mailTo)
	}
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
		return nil, fmt.Errorf("openalex search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode openalex response: %w", err)
	}
	return payload.Results, nil
}

// AuthorNames flattens the authorship list into display names.
func (w Work) AuthorNames() []string {
	names := make([]string, 0, len(w.Authorships))
	for _, authorship := range w.Authorships {
		if name := strings.TrimSpace(authorship.Author.DisplayName); name != "" {
			names = append(names, name)
		}
	}
	return names
}
