package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/sgtransitlab/sgmcp/pkg/cache"
)

const (
	// BaseURL is the OneMap API endpoint
	BaseURL = "https://www.onemap.gov.sg"

	// UserAgent identifies this client to OneMap
	UserAgent = "sgmcp/0.1.0"
)

// Client is an authenticated OneMap API client with rate limiting and
// response caching.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
	token       string
	baseURL     string
	searchCache *cache.TTLCache[string, *SearchResponse]
	routeCache  *cache.TTLCache[string, *RouteResponse]
}

// NewClient creates a OneMap client. The token may be empty; search and
// reverse geocoding work unauthenticated, routing requires a token.
func NewClient(token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		// OneMap allows 250 calls/min per token
		limiter:     rate.NewLimiter(rate.Every(250*time.Millisecond), 4),
		logger:      logger,
		token:       token,
		baseURL:     BaseURL,
		searchCache: cache.NewTTLCache[string, *SearchResponse](10 * time.Minute),
		routeCache:  cache.NewTTLCache[string, *RouteResponse](5 * time.Minute),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// get performs a rate-limited GET against the OneMap API and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	reqURL.Path = path
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("onemap request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onemap returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode onemap response: %w", err)
	}
	return nil
}

// Search geocodes a free-text query against OneMap's search index.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	if cached, ok := c.searchCache.Get(query); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("searchVal", query)
	q.Set("returnGeom", "Y")
	q.Set("getAddrDetails", "Y")
	q.Set("pageNum", "1")

	var result SearchResponse
	if err := c.get(ctx, "/api/common/elastic/search", q, &result); err != nil {
		c.logger.Error("search failed", "query", query, "error", err)
		return nil, err
	}

	c.searchCache.Set(query, &result)
	return &result, nil
}

// ReverseGeocode finds the building or road nearest to a coordinate.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (*ReverseGeocodeResponse, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	q.Set("buffer", "100")
	q.Set("addressType", "All")

	var result ReverseGeocodeResponse
	if err := c.get(ctx, "/api/public/revgeocode", q, &result); err != nil {
		c.logger.Error("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return nil, err
	}
	return &result, nil
}
