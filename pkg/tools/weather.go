package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

// WeatherForecastTool returns a tool definition for the 2-hour forecast
func WeatherForecastTool() mcp.Tool {
	return mcp.NewTool("weather_forecast",
		mcp.WithDescription("Get the NEA 2-hour weather forecast for the area around a location"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
		),
	)
}

// handleWeatherForecast implements forecast lookups against the NEA
// 2-hour forecast, resolved to the nearest named forecast area.
func (r *Registry) handleWeatherForecast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "weather_forecast")

	lat := mcp.ParseFloat64(req, "latitude", 0)
	lon := mcp.ParseFloat64(req, "longitude", 0)
	if err := geo.ValidateSearchAnchor(lat, lon); err != nil {
		return ErrorResponse(fmt.Sprintf("Invalid coordinates: %v", err)), nil
	}

	resp, err := r.clients.NEA.TwoHourForecast(ctx)
	if err != nil {
		logger.Error("forecast lookup failed", "error", err)
		return ErrorWithGuidance(NewAPIError("NEA", 0, "Failed to fetch weather forecast", GuidanceNEAGeneral)), nil
	}

	area, forecast := resp.ForecastNear(geo.Location{Latitude: lat, Longitude: lon})
	if area == "" {
		return ErrorWithGuidance(NewAPIError("NEA", 0, "Forecast response carried no areas", GuidanceDataError)), nil
	}

	output := struct {
		Area      string  `json:"area"`
		Forecast  string  `json:"forecast"`
		ValidFrom string  `json:"validFrom,omitempty"`
		ValidTo   string  `json:"validTo,omitempty"`
		UpdatedAt string  `json:"updatedAt,omitempty"`
		AreaCount int     `json:"areaCount"`
		QueryLat  float64 `json:"queryLatitude"`
		QueryLon  float64 `json:"queryLongitude"`
	}{
		Area:      area,
		Forecast:  forecast,
		AreaCount: len(resp.AreaMetadata),
		QueryLat:  lat,
		QueryLon:  lon,
	}
	if len(resp.Items) > 0 {
		item := resp.Items[len(resp.Items)-1]
		output.ValidFrom = item.ValidPeriod.Start
		output.ValidTo = item.ValidPeriod.End
		output.UpdatedAt = item.UpdateTimestamp
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
