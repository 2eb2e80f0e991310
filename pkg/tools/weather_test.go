package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleWeatherForecast(t *testing.T) {
	r := testRegistry(t, nil, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(forecastRouteBody))
		},
	)

	// Punggol is the nearest area to this point.
	req := newToolRequest("weather_forecast", map[string]any{
		"latitude":  1.4000,
		"longitude": 103.9000,
	})

	result, err := r.handleWeatherForecast(context.Background(), req)
	require.NoError(t, err)

	var out struct {
		Area      string `json:"area"`
		Forecast  string `json:"forecast"`
		ValidFrom string `json:"validFrom"`
		AreaCount int    `json:"areaCount"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))

	assert.Equal(t, "Punggol", out.Area)
	assert.Equal(t, "Showers", out.Forecast)
	assert.Equal(t, "2024-03-11T14:00:00+08:00", out.ValidFrom)
	assert.Equal(t, 2, out.AreaCount)
}

func TestHandleWeatherForecastInvalidCoords(t *testing.T) {
	r := testRegistry(t, nil, nil, nil)

	result, err := r.handleWeatherForecast(context.Background(),
		newToolRequest("weather_forecast", map[string]any{
			"latitude":  35.68,
			"longitude": 139.76,
		}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Invalid coordinates")
}

func TestHandleWeatherForecastUpstreamFailure(t *testing.T) {
	r := testRegistry(t, nil, nil, nil)

	result, err := r.handleWeatherForecast(context.Background(),
		newToolRequest("weather_forecast", map[string]any{
			"latitude":  1.3521,
			"longitude": 103.8198,
		}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Failed to fetch weather forecast")
}

func TestHandleWeatherForecastEmptyAreas(t *testing.T) {
	r := testRegistry(t, nil, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(`{"area_metadata": [], "items": []}`))
		},
	)

	result, err := r.handleWeatherForecast(context.Background(),
		newToolRequest("weather_forecast", map[string]any{
			"latitude":  1.3521,
			"longitude": 103.8198,
		}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "no areas")
}
