// Package nea provides a client for the NEA realtime weather APIs
// published on data.gov.sg.
package nea

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/sgtransitlab/sgmcp/pkg/cache"
	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

const (
	// BaseURL is the data.gov.sg realtime API endpoint
	BaseURL = "https://api.data.gov.sg/v1/environment"
)

// ForecastResponse is the 2-hour weather forecast payload.
type ForecastResponse struct {
	AreaMetadata []AreaMetadata `json:"area_metadata"`
	Items        []ForecastItem `json:"items"`
}

// AreaMetadata names a forecast area and its label coordinate.
type AreaMetadata struct {
	Name          string        `json:"name"`
	LabelLocation LabelLocation `json:"label_location"`
}

// LabelLocation is the representative point of a forecast area.
type LabelLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ForecastItem is one forecast issue with per-area conditions.
type ForecastItem struct {
	UpdateTimestamp string         `json:"update_timestamp"`
	ValidPeriod     ValidPeriod    `json:"valid_period"`
	Forecasts       []AreaForecast `json:"forecasts"`
}

// ValidPeriod bounds the window a forecast item covers.
type ValidPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AreaForecast is the forecast string for one named area.
type AreaForecast struct {
	Area     string `json:"area"`
	Forecast string `json:"forecast"`
}

// Client fetches NEA weather data with rate limiting and caching.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	baseURL    string
	cache      *cache.TTLCache[string, *ForecastResponse]
}

// NewClient creates a NEA client. The data.gov.sg realtime APIs need no key.
func NewClient(logger *slog.Logger) *Client {
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
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		logger:  logger,
		baseURL: BaseURL,
		cache:   cache.NewTTLCache[string, *ForecastResponse](10 * time.Minute),
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// TwoHourForecast fetches the islandwide 2-hour forecast.
func (c *Client) TwoHourForecast(ctx context.Context) (*ForecastResponse, error) {
	if cached, ok := c.cache.Get("2h"); ok {
		return cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/2-hour-weather-forecast", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nea request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nea returned status %d", resp.StatusCode)
	}

	var result ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode nea response: %w", err)
	}

	c.cache.Set("2h", &result)
	return &result, nil
}

// ForecastNear returns the forecast for the area nearest to loc, or empty
// strings when the response carries no usable area.
func (fr *ForecastResponse) ForecastNear(loc geo.Location) (area, forecast string) {
	if fr == nil || len(fr.AreaMetadata) == 0 || len(fr.Items) == 0 {
		return "", ""
	}

	best := -1
	bestDist := 0.0
	for i, am := range fr.AreaMetadata {
		d := geo.HaversineDistance(loc.Latitude, loc.Longitude,
			am.LabelLocation.Latitude, am.LabelLocation.Longitude)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	area = fr.AreaMetadata[best].Name
	for _, f := range fr.Items[len(fr.Items)-1].Forecasts {
		if f.Area == area {
			return area, f.Forecast
		}
	}
	return area, ""
}
