package kinopoisk

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

var (
	// ErrNotFound reports that the API has no record for the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrUnauthorized reports that the API rejected the configured key.
	ErrUnauthorized = errors.New("api key rejected")
)

// Catalog defines the API operations kinonote consumes.
type Catalog interface {
	SearchByName(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)
	GetByID(ctx context.Context, id int64) (*Movie, error)
}

// SearchOptions selects the result window for a title search.
type SearchOptions struct {
	Limit int
	Page  int
}

// Client provides access to the kinopoisk.dev API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

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

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a kinopoisk.dev client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("kinopoisk api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("kinopoisk base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// SearchByName searches the catalog for the supplied title.
func (c *Client) SearchByName(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}
	if opts.Limit <= 0 {
		opts.Limit = 10
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	endpoint, err := url.Parse(c.baseURL + "/v1.4/movie/search")
	if err != nil {
		return nil, fmt.Errorf("parse kinopoisk url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(opts.Page))
	params.Set("limit", strconv.Itoa(opts.Limit))
	endpoint.RawQuery = params.Encode()

	req, err := c.newRequest(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("kinopoisk search returned %d (latency=%v): %w", resp.StatusCode, latency, ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kinopoisk search returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode kinopoisk response: %w", err)
	}
	return &payload, nil
}

// GetByID fetches the full record for one catalog id.
func (c *Client) GetByID(ctx context.Context, id int64) (*Movie, error) {
	if id <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	endpoint, err := url.Parse(fmt.Sprintf("%s/v1.4/movie/%d", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("parse kinopoisk url: %w", err)
	}

	req, err := c.newRequest(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("kinopoisk movie %d (latency=%v): %w", id, latency, ErrNotFound)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("kinopoisk movie fetch returned %d (latency=%v): %w", resp.StatusCode, latency, ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kinopoisk movie fetch returned %d (latency=%v)", resp.StatusCode, latency)
	}

	var payload Movie
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode kinopoisk movie: %w", err)
	}
	return &payload, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
