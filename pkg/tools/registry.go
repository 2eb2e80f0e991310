// Package tools provides the Singapore transport MCP tools implementations.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sgtransitlab/sgmcp/pkg/datamall"
	"github.com/sgtransitlab/sgmcp/pkg/nea"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// Clients bundles the upstream API clients the tool handlers depend on.
// It is assembled once at startup and passed down immutably.
type Clients struct {
	OneMap   *onemap.Client
	DataMall *datamall.Client
	NEA      *nea.Client
}

// Registry holds all MCP tool registrations for the Singapore transport service.
type Registry struct {
	logger  *slog.Logger
	clients Clients
}

// NewRegistry creates a new MCP tool registry.
func NewRegistry(logger *slog.Logger, clients Clients) *Registry {
	return &Registry{
		logger:  logger,
		clients: clients,
	}
}

// ToolDefinition represents a Singapore transport MCP tool definition.
type ToolDefinition struct {
	Name        string
	Description string
	Tool        mcp.Tool
	Handler     func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// GetToolDefinitions returns all Singapore transport MCP tool definitions.
func (r *Registry) GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		// Journey Planning Tools
		{
			Name:        "plan_journey",
			Description: "Plan a journey between two points in Singapore by public transport, walking or driving",
			Tool:        PlanJourneyTool(),
			Handler:     r.handlePlanJourney,
		},

		// Geocoding Tools
		{
			Name:        "geocode_location",
			Description: "Convert a Singapore address, building or place name to geographic coordinates",
			Tool:        GeocodeLocationTool(),
			Handler:     r.handleGeocodeLocation,
		},
		{
			Name:        "reverse_geocode",
			Description: "Convert geographic coordinates to the nearest Singapore building or road",
			Tool:        ReverseGeocodeTool(),
			Handler:     r.handleReverseGeocode,
		},
		{
			Name:        "search_location",
			Description: "Fuzzy-search Singapore locations with abbreviation expansion (Blk, Rd, Stn, ...)",
			Tool:        SearchLocationTool(),
			Handler:     r.handleSearchLocation,
		},

		// Bus Tools
		{
			Name:        "bus_arrivals",
			Description: "Get live bus arrival timings for a bus stop",
			Tool:        BusArrivalsTool(),
			Handler:     r.handleBusArrivals,
		},

		// Train Tools
		{
			Name:        "train_alerts",
			Description: "Get current MRT/LRT service status and disruption alerts",
			Tool:        TrainAlertsTool(),
			Handler:     r.handleTrainAlerts,
		},

		// Taxi Tools
		{
			Name:        "find_nearby_taxis",
			Description: "Find available taxis near a location",
			Tool:        FindNearbyTaxisTool(),
			Handler:     r.handleFindNearbyTaxis,
		},

		// Weather Tools
		{
			Name:        "weather_forecast",
			Description: "Get the NEA 2-hour weather forecast for the area around a location",
			Tool:        WeatherForecastTool(),
			Handler:     r.handleWeatherForecast,
		},
	}
}

// RegisterTools registers all tools with the MCP server.
func (r *Registry) RegisterTools(mcpServer *server.MCPServer) {
	for _, def := range r.GetToolDefinitions() {
		r.logger.Info("registering tool", "name", def.Name)
		mcpServer.AddTool(def.Tool, def.Handler)
	}
}
