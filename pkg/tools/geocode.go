package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
	"github.com/sgtransitlab/sgmcp/pkg/search"
)

// GeocodeLocationTool returns a tool definition for geocoding addresses
func GeocodeLocationTool() mcp.Tool {
	return mcp.NewTool("geocode_location",
		mcp.WithDescription("Convert a Singapore address, building or place name to geographic coordinates"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Address, building name, place name or postal code to geocode"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(5),
		),
	)
}

// ReverseGeocodeTool returns a tool definition for reverse geocoding
func ReverseGeocodeTool() mcp.Tool {
	return mcp.NewTool("reverse_geocode",
		mcp.WithDescription("Convert geographic coordinates to the nearest Singapore building or road"),
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

// SearchLocationTool returns a tool definition for fuzzy location search
func SearchLocationTool() mcp.Tool {
	return mcp.NewTool("search_location",
		mcp.WithDescription("Fuzzy-search Singapore locations with abbreviation expansion (Blk, Rd, Stn, ...)"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-form location query, local abbreviations allowed"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return"),
			mcp.DefaultNumber(5),
		),
	)
}

// handleGeocodeLocation implements forward geocoding via OneMap search.
func (r *Registry) handleGeocodeLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "geocode_location")

	query := strings.TrimSpace(mcp.ParseString(req, "query", ""))
	if query == "" {
		return ErrorResponse("Query must not be empty"), nil
	}
	limit := int(mcp.ParseFloat64(req, "limit", 5))
	if limit < 1 {
		limit = 1
	}

	resp, err := r.clients.OneMap.Search(ctx, query)
	if err != nil {
		logger.Error("search failed", "query", query, "error", err)
		return ErrorWithGuidance(NewAPIError("OneMap", 0, "Failed to search locations", GuidanceOneMapGeneral)), nil
	}
	if len(resp.Results) == 0 {
		return ErrorWithGuidance(NewAPIError("OneMap", 404,
			fmt.Sprintf("No locations found for %q", query), GuidanceOneMapNoResults)), nil
	}

	places := placesFromSearch(resp.Results, limit)

	output := struct {
		Query  string  `json:"query"`
		Found  int     `json:"found"`
		Places []Place `json:"places"`
	}{
		Query:  query,
		Found:  resp.Found,
		Places: places,
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}

// handleReverseGeocode implements coordinate-to-address lookup.
func (r *Registry) handleReverseGeocode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "reverse_geocode")

	lat := mcp.ParseFloat64(req, "latitude", 0)
	lon := mcp.ParseFloat64(req, "longitude", 0)
	if err := geo.ValidateSearchAnchor(lat, lon); err != nil {
		return ErrorResponse(fmt.Sprintf("Invalid coordinates: %v", err)), nil
	}

	resp, err := r.clients.OneMap.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		logger.Error("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return ErrorWithGuidance(NewAPIError("OneMap", 0, "Failed to reverse geocode", GuidanceOneMapGeneral)), nil
	}
	if len(resp.GeocodeInfo) == 0 {
		return ErrorWithGuidance(NewAPIError("OneMap", 404,
			"No buildings or roads found near this point", GuidanceOneMapNoResults)), nil
	}

	places := make([]Place, 0, len(resp.GeocodeInfo))
	for _, info := range resp.GeocodeInfo {
		p := Place{
			Name:   info.BuildingName,
			Block:  info.Block,
			Road:   info.Road,
			Postal: info.PostalCode,
			Location: geo.Location{
				Latitude:  parseCoord(info.Latitude),
				Longitude: parseCoord(info.Longitude),
			},
		}
		if p.Name == "" {
			p.Name = info.Road
		}
		places = append(places, p)
	}

	output := struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Places    []Place `json:"places"`
	}{
		Latitude:  lat,
		Longitude: lon,
		Places:    places,
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}

// handleSearchLocation implements fuzzy search: the query is normalized with
// local abbreviation expansion before hitting OneMap, then candidates are
// re-ranked by token overlap against the expanded query.
func (r *Registry) handleSearchLocation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger := r.logger.With("tool", "search_location")

	query := strings.TrimSpace(mcp.ParseString(req, "query", ""))
	if query == "" {
		return ErrorResponse("Query must not be empty"), nil
	}
	limit := int(mcp.ParseFloat64(req, "limit", 5))
	if limit < 1 {
		limit = 1
	}

	expanded := search.ExpandAbbreviations(query)
	resp, err := r.clients.OneMap.Search(ctx, expanded)
	if err != nil {
		logger.Error("search failed", "query", expanded, "error", err)
		return ErrorWithGuidance(NewAPIError("OneMap", 0, "Failed to search locations", GuidanceOneMapGeneral)), nil
	}
	if len(resp.Results) == 0 {
		return ErrorWithGuidance(NewAPIError("OneMap", 404,
			fmt.Sprintf("No locations found for %q", query), GuidanceOneMapNoResults)), nil
	}

	byName := make(map[string]onemap.SearchResult, len(resp.Results))
	names := make([]string, 0, len(resp.Results))
	for _, res := range resp.Results {
		if _, seen := byName[res.SearchVal]; seen {
			continue
		}
		byName[res.SearchVal] = res
		names = append(names, res.SearchVal)
	}

	places := make([]Place, 0, limit)
	for _, m := range search.Rank(expanded, names) {
		if len(places) >= limit {
			break
		}
		res := byName[m.Value]
		p := placeFromSearchResult(res)
		p.Score = m.Score
		places = append(places, p)
	}
	// Ranking can reject every candidate for very terse queries; fall back
	// to OneMap's own ordering rather than returning nothing.
	if len(places) == 0 {
		places = placesFromSearch(resp.Results, limit)
	}

	output := struct {
		Query    string  `json:"query"`
		Expanded string  `json:"expandedQuery,omitempty"`
		Places   []Place `json:"places"`
	}{
		Query:  query,
		Places: places,
	}
	if expanded != strings.ToLower(query) {
		output.Expanded = expanded
	}

	resultBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal result", "error", err)
		return ErrorResponse("Failed to generate result"), nil
	}

	return mcp.NewToolResultText(string(resultBytes)), nil
}

func placesFromSearch(results []onemap.SearchResult, limit int) []Place {
	places := make([]Place, 0, limit)
	for _, res := range results {
		if len(places) >= limit {
			break
		}
		places = append(places, placeFromSearchResult(res))
	}
	return places
}

func placeFromSearchResult(res onemap.SearchResult) Place {
	return Place{
		Name:    res.SearchVal,
		Address: res.Address,
		Block:   res.BlkNo,
		Road:    res.RoadName,
		Postal:  res.Postal,
		Location: geo.Location{
			Latitude:  parseCoord(res.Latitude),
			Longitude: parseCoord(res.Longitude),
		},
	}
}

// parseCoord parses a decimal-degree string, returning zero on failure.
// OneMap coordinates are strings throughout.
func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
