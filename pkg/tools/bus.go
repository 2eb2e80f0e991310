package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sgtransitlab/sgmcp/pkg/datamall"
)

var busStopCodePattern = regexp.MustCompile(`^\d{5}$`)

// BusArrivalsTool returns a tool definition for live bus arrival timings
func BusArrivalsTool() mcp.Tool {
	return mcp.NewTool("bus_arrivals",
		mcp.WithDescription("Get live bus arrival timings for a bus stop"),
		mcp.WithString("bus_stop_code",
			mcp.Required(),
			mcp.Description("5-digit bus stop code, printed on the bus stop pole"),
		),
		mcp.WithString("service_no",
			mcp.Description("Optional bus service number to filter by, e.g. 36 or 174e"),
		),
	)
}

// busArrival is one arriving bus in the tool output.
type busArrival struct {
	MinutesToArrival int    `json:"minutesToArrival"`
	Arriving         bool   `json:"arriving"` // due within a minute
	Load             string `json:"load,omitempty"`
	WheelchairAccess bool   `json:"wheelchairAccess"`
	BusType          string `json:"busType,omitempty"`
}

// busServiceArrivals groups arrivals for one service.
type busServiceArrivals struct {
	ServiceNo string       `json:"serviceNo"`
	Operator  string       `json:"operator,omitempty"`
	Arrivals  []busArrival `json:"arrivals"`
}

// handleBusArrivals implements live arrival lookups against DataMall.
func (r *Registry) handleBusArrivals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "bus_arrivals")

	stopCode := mcp.ParseString(req, "bus_stop_code", "")
	if !busStopCodePattern.MatchString(stopCode) {
		return ErrorWithGuidance(NewAPIError("DataMall", 400,
			fmt.Sprintf("Invalid bus stop code %q", stopCode), GuidanceDataMallStopCode)), nil
	}
	serviceNo := mcp.ParseString(req, "service_no", "")

	resp, err := r.clients.DataMall.BusArrival(ctx, stopCode, serviceNo)
	if err != nil {
		logger.Error("bus arrival lookup failed", "stop", stopCode, "error", err)
		return ErrorWithGuidance(NewAPIError("DataMall", 0, "Failed to fetch bus arrivals", GuidanceDataMallGeneral)), nil
	}

	now := time.Now()
	services := make([]busServiceArrivals, 0, len(resp.Services))
	for _, svc := range resp.Services {
		entry := busServiceArrivals{
			ServiceNo: svc.ServiceNo,
			Operator:  svc.Operator,
			Arrivals:  make([]busArrival, 0, 3),
		}
		for _, nb := range []datamall.NextBus{svc.NextBus, svc.NextBus2, svc.NextBus3} {
			arr, ok := arrivalFromNextBus(nb, now)
			if !ok {
				continue
			}
			entry.Arrivals = append(entry.Arrivals, arr)
		}
		services = append(services, entry)
	}

	output := struct {
		BusStopCode string               `json:"busStopCode"`
		Services    []busServiceArrivals `json:"services"`
	}{
		BusStopCode: resp.BusStopCode,
		Services:    services,
	}
	if output.BusStopCode == "" {
		output.BusStopCode = stopCode
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}

// arrivalFromNextBus converts a raw arrival record to minutes from now.
// Records with no estimate, or estimates already in the past, are dropped.
func arrivalFromNextBus(nb datamall.NextBus, now time.Time) (busArrival, bool) {
	if nb.EstimatedArrival == "" {
		return busArrival{}, false
	}
	eta, err := time.Parse(time.RFC3339, nb.EstimatedArrival)
	if err != nil {
		return busArrival{}, false
	}
	mins := int(eta.Sub(now).Minutes())
	if mins < 0 {
		return busArrival{}, false
	}
	return busArrival{
		MinutesToArrival: mins,
		Arriving:         mins < 1,
		Load:             nb.Load,
		WheelchairAccess: nb.Feature == "WAB",
		BusType:          nb.Type,
	}, true
}
