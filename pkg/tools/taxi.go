package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

const (
	defaultTaxiRadius = 1000
	maxTaxiRadius     = 5000
	defaultTaxiLimit  = 10
)

// FindNearbyTaxisTool returns a tool definition for locating available taxis
func FindNearbyTaxisTool() mcp.Tool {
	return mcp.NewTool("find_nearby_taxis",
		mcp.WithDescription("Find available taxis near a location"),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the search center"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the search center"),
		),
		mcp.WithNumber("radius",
			mcp.Description(fmt.Sprintf("Search radius in meters (max %d)", maxTaxiRadius)),
			mcp.DefaultNumber(defaultTaxiRadius),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of taxis to return"),
			mcp.DefaultNumber(defaultTaxiLimit),
		),
	)
}

// nearbyTaxi is one available taxi in the tool output.
type nearbyTaxi struct {
	Location geo.Location `json:"location"`
	Distance float64      `json:"distanceMeters"`
}

// handleFindNearbyTaxis filters the island-wide taxi availability feed down
// to taxis within the requested radius, nearest first.
func (r *Registry) handleFindNearbyTaxis(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "find_nearby_taxis")

	lat := mcp.ParseFloat64(req, "latitude", 0)
	lon := mcp.ParseFloat64(req, "longitude", 0)
	if err := geo.ValidateSearchAnchor(lat, lon); err != nil {
		return ErrorResponse(fmt.Sprintf("Invalid coordinates: %v", err)), nil
	}

	radius := mcp.ParseFloat64(req, "radius", defaultTaxiRadius)
	if radius <= 0 {
		radius = defaultTaxiRadius
	}
	if radius > maxTaxiRadius {
		radius = maxTaxiRadius
	}
	limit := int(mcp.ParseFloat64(req, "limit", defaultTaxiLimit))
	if limit < 1 {
		limit = 1
	}

	positions, err := r.clients.DataMall.TaxiAvailability(ctx)
	if err != nil {
		logger.Error("taxi availability lookup failed", "error", err)
		return ErrorWithGuidance(NewAPIError("DataMall", 0, "Failed to fetch taxi availability", GuidanceDataMallGeneral)), nil
	}

	center := geo.Location{Latitude: lat, Longitude: lon}
	taxis := make([]nearbyTaxi, 0, limit)
	for _, pos := range positions {
		loc := pos.Location()
		d := geo.Distance(center, loc)
		if d > radius {
			continue
		}
		taxis = append(taxis, nearbyTaxi{Location: loc, Distance: d})
	}
	sort.Slice(taxis, func(i, j int) bool { return taxis[i].Distance < taxis[j].Distance })
	if len(taxis) > limit {
		taxis = taxis[:limit]
	}

	output := struct {
		Center       geo.Location `json:"center"`
		RadiusMeters float64      `json:"radiusMeters"`
		Count        int          `json:"count"`
		Taxis        []nearbyTaxi `json:"taxis"`
	}{
		Center:       center,
		RadiusMeters: radius,
		Count:        len(taxis),
		Taxis:        taxis,
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
