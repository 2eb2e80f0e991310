// Package prompts registers MCP prompts that teach clients how to use the
// Singapore transport tools effectively.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterJourneyPrompts registers all journey-planning prompts with the MCP server
func RegisterJourneyPrompts(s *server.MCPServer) {
	s.AddPrompt(mcp.NewPrompt("journey_planning",
		mcp.WithPromptDescription("Instructions for properly using journey planning tools"),
	), JourneyPlanningPromptHandler)

	s.AddPrompt(mcp.NewPrompt("plan_journey_examples",
		mcp.WithPromptDescription("Examples of properly formatted journey planning queries"),
	), PlanJourneyExamplesHandler)

	s.AddPrompt(mcp.NewPrompt("location_search_examples",
		mcp.WithPromptDescription("Examples of Singapore location search queries and abbreviations"),
	), LocationSearchExamplesHandler)
}

// JourneyPlanningPromptHandler returns the main prompt for journey planning tools
func JourneyPlanningPromptHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	systemPrompt := `You have access to Singapore transport tools for planning journeys, checking live arrivals and looking up locations.
When using these tools:

1. Resolve place names to coordinates first using geocode_location or search_location, then pass the coordinates to plan_journey
2. plan_journey supports three modes: PUBLIC_TRANSPORT (default), WALK and DRIVE
3. All coordinates must be within Singapore (roughly latitude 1.0-1.5, longitude 103.0-104.5); anything else is rejected
4. The response includes step-by-step instructions, a journey summary with fare, and a weather advisory for the starting area when available
5. Use bus_arrivals with the 5-digit stop code for live timings before recommending a specific bus
6. Check train_alerts before recommending MRT during reported disruptions`

	return mcp.NewGetPromptResult(
		"Journey Planning Tool Usage Guidelines",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(systemPrompt),
			),
		},
	), nil
}

// PlanJourneyExamplesHandler returns examples for plan_journey
func PlanJourneyExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE PLAN_JOURNEY USAGE:

User: "How do I get from Bugis to Chinatown by MRT?"
1. Call geocode_location with query "Bugis MRT Station" to get the start coordinates
2. Call geocode_location with query "Chinatown MRT Station" to get the end coordinates
3. Call plan_journey with start_lat/start_lon/end_lat/end_lon and mode "PUBLIC_TRANSPORT"
4. Relay the formatted instructions and fare from the summary

User: "Is it walkable from Raffles Place to Marina Bay Sands?"
1. Geocode both places
2. Call plan_journey with mode "WALK"
3. Report the total distance and time from the summary

User: "Should I take a taxi from Orchard to the airport right now?"
1. Geocode both places
2. Call plan_journey with mode "DRIVE" for the travel time
3. Call find_nearby_taxis around the start point to check availability`

	return mcp.NewGetPromptResult(
		"Plan Journey Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}

// LocationSearchExamplesHandler returns examples for search_location
func LocationSearchExamplesHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	examplesPrompt := `EXAMPLES OF EFFECTIVE SEARCH_LOCATION USAGE:

Singapore addresses use many local abbreviations. search_location expands them
automatically, so queries can be passed through as users write them:

User: "Blk 123 Tampines St 11" -> searched as "block 123 tampines street 11"
User: "Bt Timah Rd" -> searched as "bukit timah road"
User: "Serangoon Stn" -> searched as "serangoon station"
User: "Lor 4 Toa Payoh" -> searched as "lorong 4 toa payoh"

Results come back ranked by how well they match the expanded query, best
first, each with coordinates ready for plan_journey. Prefer search_location
over geocode_location when the query looks like a colloquial or abbreviated
address; use geocode_location for exact building names and postal codes.`

	return mcp.NewGetPromptResult(
		"Location Search Examples",
		[]mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(examplesPrompt),
			),
		},
	), nil
}
