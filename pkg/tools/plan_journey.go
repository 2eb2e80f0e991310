package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
	"github.com/sgtransitlab/sgmcp/pkg/journey"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// defaultMaxWalkDistance caps walking segments of public transport journeys.
const defaultMaxWalkDistance = 1000

// PlanJourneyTool returns a tool definition for journey planning
func PlanJourneyTool() mcp.Tool {
	return mcp.NewTool("plan_journey",
		mcp.WithDescription("Plan a journey between two points in Singapore by public transport, walking or driving"),
		mcp.WithNumber("start_lat",
			mcp.Required(),
			mcp.Description("Starting point latitude"),
		),
		mcp.WithNumber("start_lon",
			mcp.Required(),
			mcp.Description("Starting point longitude"),
		),
		mcp.WithNumber("end_lat",
			mcp.Required(),
			mcp.Description("Ending point latitude"),
		),
		mcp.WithNumber("end_lon",
			mcp.Required(),
			mcp.Description("Ending point longitude"),
		),
		mcp.WithString("mode",
			mcp.Description("Travel mode: PUBLIC_TRANSPORT, WALK or DRIVE"),
			mcp.DefaultString("PUBLIC_TRANSPORT"),
		),
		mcp.WithNumber("max_walk_distance",
			mcp.Description("Maximum walking distance in meters for public transport journeys"),
			mcp.DefaultNumber(defaultMaxWalkDistance),
		),
		mcp.WithString("format",
			mcp.Description("Instruction format: detailed, simple or navigation"),
			mcp.DefaultString("detailed"),
		),
	)
}

// planJourneyOutput is the tool payload: the full journey result plus a live
// weather advisory when the forecast was available.
type planJourneyOutput struct {
	*journey.Result
	WeatherAdvisory string `json:"weatherAdvisory,omitempty"`
}

// handlePlanJourney implements journey planning over the OneMap routing
// provider with a concurrent NEA forecast lookup.
func (r *Registry) handlePlanJourney(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "plan_journey")

	startLat := mcp.ParseFloat64(req, "start_lat", 0)
	startLon := mcp.ParseFloat64(req, "start_lon", 0)
	endLat := mcp.ParseFloat64(req, "end_lat", 0)
	endLon := mcp.ParseFloat64(req, "end_lon", 0)
	mode := strings.ToUpper(mcp.ParseString(req, "mode", "PUBLIC_TRANSPORT"))
	maxWalk := int(mcp.ParseFloat64(req, "max_walk_distance", defaultMaxWalkDistance))
	style := journey.ParseFormatStyle(mcp.ParseString(req, "format", "detailed"))

	if err := geo.ValidateSearchAnchor(startLat, startLon); err != nil {
		return ErrorResponse(fmt.Sprintf("Invalid start point: %v", err)), nil
	}
	if err := geo.ValidateSearchAnchor(endLat, endLon); err != nil {
		return ErrorResponse(fmt.Sprintf("Invalid end point: %v", err)), nil
	}

	var routeMode onemap.RouteMode
	switch mode {
	case "WALK":
		routeMode = onemap.ModeWalk
	case "DRIVE":
		routeMode = onemap.ModeDrive
	case "PUBLIC_TRANSPORT":
		routeMode = onemap.ModePublicTransport
	default:
		return ErrorResponse(fmt.Sprintf("Unknown mode %q: use PUBLIC_TRANSPORT, WALK or DRIVE", mode)), nil
	}

	from := geo.Location{Latitude: startLat, Longitude: startLon}
	to := geo.Location{Latitude: endLat, Longitude: endLon}

	// Routing and weather are independent upstream facts; fetch them in
	// parallel. A failed forecast never fails the journey.
	var (
		raw      *onemap.RouteResponse
		advisory string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := r.clients.OneMap.PlanRoute(gctx, from, to, onemap.RouteOptions{
			Mode:            routeMode,
			MaxWalkDistance: maxWalk,
		})
		if err != nil {
			return err
		}
		raw = resp
		return nil
	})
	g.Go(func() error {
		forecast, err := r.clients.NEA.TwoHourForecast(gctx)
		if err != nil {
			logger.Warn("forecast unavailable, continuing without weather advisory", "error", err)
			return nil
		}
		if area, fc := forecast.ForecastNear(from); fc != "" {
			advisory = fmt.Sprintf("%s: %s", area, fc)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("route planning failed", "error", err)
		return ErrorWithGuidance(NewAPIError("OneMap", 0, "Failed to plan route", GuidanceOneMapNoRoute)), nil
	}

	result := journey.BuildResult(raw, style, nil)
	if result.Summary.ResponseType == "ERROR" {
		logger.Info("no route found",
			"start", from, "end", to, "mode", mode)
	}

	out := planJourneyOutput{Result: result, WeatherAdvisory: advisory}
	resultBytes, err := json.Marshal(out)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}
