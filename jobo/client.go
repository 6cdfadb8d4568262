package jobo

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://jobs-api.jobo.world"
	defaultTimeout = 30 * time.Second

	defaultUserAgent = "jobo-go/" + Version

	// Version is the client library version sent in the User-Agent header.
	Version = "2.0.0"
)

// Client is the entry point for the Jobo Enterprise Jobs API. Endpoints are
// grouped into services:
//
//   - Search: full-text job search with page-based pagination
//   - Feed: bulk job feed and expired IDs with cursor-based pagination
//   - Locations: geocoding
//   - AutoApply: application form automation sessions
//
// A Client is safe for sequential reuse. Concurrent use across goroutines is
// the caller's responsibility; iterators obtained from the same Client are
// independent and keep their own pagination state.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	ownsHTTP   bool
	logger     zerolog.Logger

	Search    *SearchService
	Feed      *FeedService
	Locations *LocationsService
	AutoApply *AutoApplyService
}

// NewClient creates a new Jobo API client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("jobo: API key is required")
	}

	options := clientOptions{
		baseURL:   defaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("jobo: base URL is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  options.userAgent,
		httpClient: options.httpClient,
		logger:     options.logger,
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: options.timeout}
		client.ownsHTTP = true
	}

	client.Search = &SearchService{client: client}
	client.Feed = &FeedService{client: client}
	client.Locations = &LocationsService{client: client}
	client.AutoApply = &AutoApplyService{client: client}

	return client, nil
}

// Close releases the underlying connection pool. Safe to call on any exit
// path, including after a failed or cancelled request. It is a no-op when
// the http.Client was injected via WithHTTPClient.
func (c *Client) Close() {
	if !c.ownsHTTP {
		return
	}
	c.httpClient.CloseIdleConnections()
}
