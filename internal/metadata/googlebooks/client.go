package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ImageLinks carries the cover image URLs a volume exposes, by size.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
	Small          string `json:"small"`
	Medium         string `json:"medium"`
	Large          string `json:"large"`
	ExtraLarge     string `json:"extraLarge"`
}

// VolumeInfo is the descriptive part of a volume record.
type VolumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Publisher     string     `json:"publisher"`
	PublishedDate string     `json:"publishedDate"`
	PageCount     int        `json:"pageCount"`
	Categories    []string   `json:"categories"`
	ImageLinks    ImageLinks `json:"imageLinks"`
}

// Volume is a single search match.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// Response models the volumes search payload.
type Response struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Client provides access to the Google Books API.
type Client struct {
	apiKey     string
	baseURL    string
	maxResults int
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

// New creates a Google Books client. The API works without a key for
// modest request volumes, so only the base URL is required.
func New(baseURL, apiKey string, maxResults int, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("google books base url required")
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries the volumes endpoint with the supplied query string.
// The query is passed through verbatim so callers can use operators
// such as intitle:"...".
func (c *Client) Search(ctx context.Context, query string) ([]Volume, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL + "/volumes")
	if err != nil {
		return nil, fmt.Errorf("parse google books url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
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
		return nil, fmt.Errorf("google books search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode google books response: %w", err)
	}
	return payload.Items, nil
}

// LinksBySize returns the volume's image links ordered from the largest
// preferred size down to the smallest.
func (v Volume) LinksBySize() []string {
	links := v.VolumeInfo.ImageLinks
	ordered := []string{
		links.ExtraLarge,
		links.Large,
		links.Medium,
		links.Thumbnail,
		links.SmallThumbnail,
	}
	out := make([]string, 0, len(ordered))
	for _, link := range ordered {
		if strings.TrimSpace(link) != "" {
			out = append(out, link)
		}
	}
	return out
}

// HasImage reports whether the volume exposes any cover image link.
func (v Volume) HasImage() bool {
	return len(v.LinksBySize()) > 0
}
