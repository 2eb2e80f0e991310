package nea

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
	"github.com/sgtransitlab/sgmcp/pkg/testutil"
)

const forecastBody = `{
	"area_metadata": [
		{"name": "Bugis", "label_location": {"latitude": 1.3009, "longitude": 103.8559}},
		{"name": "Jurong East", "label_location": {"latitude": 1.3329, "longitude": 103.7436}}
	],
	"items": [{
		"update_timestamp": "2025-01-06T12:05:00+08:00",
		"valid_period": {"start": "2025-01-06T12:00:00+08:00", "end": "2025-01-06T14:00:00+08:00"},
		"forecasts": [
			{"area": "Bugis", "forecast": "Partly Cloudy (Day)"},
			{"area": "Jurong East", "forecast": "Showers"}
		]
	}]
}`

func TestTwoHourForecast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/2-hour-weather-forecast" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := NewClient(testutil.DiscardLogger())
	c.SetBaseURL(srv.URL)

	fr, err := c.TwoHourForecast(context.Background())
	if err != nil {
		t.Fatalf("TwoHourForecast() error = %v", err)
	}
	if len(fr.AreaMetadata) != 2 || len(fr.Items) != 1 {
		t.Fatalf("unexpected response: %+v", fr)
	}

	if _, err := c.TwoHourForecast(context.Background()); err != nil {
		t.Fatalf("cached TwoHourForecast() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}
}

func TestForecastNear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastBody))
	}))
	defer srv.Close()

	c := NewClient(testutil.DiscardLogger())
	c.SetBaseURL(srv.URL)

	fr, err := c.TwoHourForecast(context.Background())
	if err != nil {
		t.Fatalf("TwoHourForecast() error = %v", err)
	}

	area, forecast := fr.ForecastNear(geo.Location{Latitude: 1.3330, Longitude: 103.7430})
	if area != "Jurong East" {
		t.Errorf("area = %q, want Jurong East", area)
	}
	if forecast != "Showers" {
		t.Errorf("forecast = %q, want Showers", forecast)
	}

	area, forecast = fr.ForecastNear(geo.Location{Latitude: 1.3009, Longitude: 103.8560})
	if area != "Bugis" || forecast != "Partly Cloudy (Day)" {
		t.Errorf("got (%q, %q), want Bugis / Partly Cloudy (Day)", area, forecast)
	}
}

func TestForecastNearEmpty(t *testing.T) {
	var fr *ForecastResponse
	if area, forecast := fr.ForecastNear(geo.Location{}); area != "" || forecast != "" {
		t.Errorf("nil response should yield empty results, got (%q, %q)", area, forecast)
	}

	empty := &ForecastResponse{}
	if area, _ := empty.ForecastNear(geo.Location{}); area != "" {
		t.Errorf("empty response should yield empty area, got %q", area)
	}
}
