// Package datamall provides a client for the LTA DataMall APIs covering
// live bus arrivals, train service alerts and taxi availability.
package datamall

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
	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

const (
	// BaseURL is the LTA DataMall OData endpoint
	BaseURL = "https://datamall2.mytransport.sg/ltaodataservice"
)

// BusArrivalResponse holds live arrival estimates for one bus stop.
type BusArrivalResponse struct {
	BusStopCode string       `json:"BusStopCode"`
	Services    []BusService `json:"Services"`
}

// BusService carries the next three arriving buses for one service.
type BusService struct {
	ServiceNo string  `json:"ServiceNo"`
	Operator  string  `json:"Operator"`
	NextBus   NextBus `json:"NextBus"`
	NextBus2  NextBus `json:"NextBus2"`
	NextBus3  NextBus `json:"NextBus3"`
}

// NextBus describes one arriving bus.
type NextBus struct {
	EstimatedArrival string `json:"EstimatedArrival"` // RFC3339, empty when unknown
	Latitude         string `json:"Latitude"`
	Longitude        string `json:"Longitude"`
	Load             string `json:"Load"`    // SEA, SDA, LSD
	Feature          string `json:"Feature"` // WAB when wheelchair accessible
	Type             string `json:"Type"`    // SD, DD, BD
}

// TrainAlertsResponse wraps the train service alerts payload.
type TrainAlertsResponse struct {
	Value TrainAlerts `json:"value"`
}

// TrainAlerts reports network status and any disrupted segments.
type TrainAlerts struct {
	Status           int               `json:"Status"` // 1 normal, 2 disrupted
	AffectedSegments []AffectedSegment `json:"AffectedSegments"`
	Message          []AlertMessage    `json:"Message"`
}

// AffectedSegment describes one disrupted stretch of a line.
type AffectedSegment struct {
	Line             string `json:"Line"`
	Direction        string `json:"Direction"`
	Stations         string `json:"Stations"`
	FreePublicBus    string `json:"FreePublicBus"`
	FreeMRTShuttle   string `json:"FreeMRTShuttle"`
	ShuttleDirection string `json:"MRTShuttleDirection"`
}

// AlertMessage is one operator advisory.
type AlertMessage struct {
	Content     string `json:"Content"`
	CreatedDate string `json:"CreatedDate"`
}

// TaxiAvailabilityResponse lists coordinates of available taxis.
type TaxiAvailabilityResponse struct {
	Value []TaxiPosition `json:"value"`
}

// TaxiPosition is the location of one available taxi.
type TaxiPosition struct {
	Latitude  float64 `json:"Latitude"`
	Longitude float64 `json:"Longitude"`
}

// Location converts the position to a geo.Location.
func (tp TaxiPosition) Location() geo.Location {
	return geo.Location{Latitude: tp.Latitude, Longitude: tp.Longitude}
}

// Client is an authenticated DataMall client with rate limiting and
// per-dataset response caching.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	accountKey string
	baseURL    string

	busCache   *cache.TTLCache[string, *BusArrivalResponse]
	trainCache *cache.TTLCache[string, *TrainAlerts]
	taxiCache  *cache.TTLCache[string, []TaxiPosition]
}

// NewClient creates a DataMall client authenticated with the given account key.
func NewClient(accountKey string, logger *slog.Logger) *Client {
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
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 5),
		logger:     logger,
		accountKey: accountKey,
		baseURL:    BaseURL,
		busCache:   cache.NewTTLCache[string, *BusArrivalResponse](30 * time.Second),
		trainCache: cache.NewTTLCache[string, *TrainAlerts](2 * time.Minute),
		taxiCache:  cache.NewTTLCache[string, []TaxiPosition](time.Minute),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("AccountKey", c.accountKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("datamall request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("datamall returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode datamall response: %w", err)
	}
	return nil
}

// BusArrival fetches live arrival estimates for a bus stop. serviceNo may be
// empty to return all services calling at the stop.
func (c *Client) BusArrival(ctx context.Context, busStopCode, serviceNo string) (*BusArrivalResponse, error) {
	key := busStopCode + "|" + serviceNo
	if cached, ok := c.busCache.Get(key); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("BusStopCode", busStopCode)
	if serviceNo != "" {
		q.Set("ServiceNo", serviceNo)
	}

	var result BusArrivalResponse
	if err := c.get(ctx, "/BusArrivalv2", q, &result); err != nil {
		c.logger.Error("bus arrival lookup failed", "stop", busStopCode, "error", err)
		return nil, err
	}

	c.busCache.Set(key, &result)
	return &result, nil
}

// TrainServiceAlerts fetches the current MRT/LRT service status.
func (c *Client) TrainServiceAlerts(ctx context.Context) (*TrainAlerts, error) {
	if cached, ok := c.trainCache.Get("alerts"); ok {
		return cached, nil
	}

	var result TrainAlertsResponse
	if err := c.get(ctx, "/TrainServiceAlerts", nil, &result); err != nil {
		c.logger.Error("train alerts lookup failed", "error", err)
		return nil, err
	}

	c.trainCache.Set("alerts", &result.Value)
	return &result.Value, nil
}

// TaxiAvailability fetches current positions of available taxis.
func (c *Client) TaxiAvailability(ctx context.Context) ([]TaxiPosition, error) {
	if cached, ok := c.taxiCache.Get("taxis"); ok {
		return cached, nil
	}

	var result TaxiAvailabilityResponse
	if err := c.get(ctx, "/Taxi-Availability", nil, &result); err != nil {
		c.logger.Error("taxi availability lookup failed", "error", err)
		return nil, err
	}

	c.taxiCache.Set("taxis", result.Value)
	return result.Value, nil
}
