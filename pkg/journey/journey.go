package journey

import (
	"log/slog"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// BuildResult runs the full pipeline over a raw routing response: classify,
// normalize, enrich, decode geometries, summarize, format and visualize.
// It is the single entry point tool handlers call after obtaining a raw
// response from the routing provider.
//
// A nil raw response produces an ERROR summary with empty instructions, not
// a failure. Malformed polylines are dropped and the rest of the journey is
// still processed. enricher may be nil, in which case the wall clock is used.
func BuildResult(raw *onemap.RouteResponse, style FormatStyle, enricher *Enricher) *Result {
	rt := Classify(raw)
	instructions := Normalize(raw, rt)

	if enricher == nil {
		enricher = &Enricher{}
	}
	enricher.Enrich(instructions)

	polylines := decodePolylines(raw, rt)
	summary := BuildSummary(raw, rt, instructions, len(polylines))

	return &Result{
		Summary:               summary,
		Instructions:          instructions,
		FormattedInstructions: FormatInstructions(instructions, style),
		Polylines:             polylines,
		Visualization:         BuildVisualization(instructions, polylines),
	}
}

// decodePolylines extracts every encoded geometry the response carries:
// one per transit leg with geometry, or the single route geometry of a
// direct response. Geometries that fail to decode are skipped.
func decodePolylines(raw *onemap.RouteResponse, rt ResponseType) []*geo.DecodedPolyline {
	polylines := make([]*geo.DecodedPolyline, 0, 4)

	switch rt {
	case ResponseTransit:
		for _, leg := range raw.Plan.Itineraries[0].Legs {
			if leg.LegGeometry == nil || leg.LegGeometry.Points == "" {
				continue
			}
			dp, err := geo.DecodeRouteGeometry(leg.LegGeometry.Points)
			if err != nil {
				slog.Debug("skipping malformed leg geometry", "mode", leg.Mode, "error", err)
				continue
			}
			polylines = append(polylines, dp)
		}

	case ResponseDirect:
		if raw.RouteGeometry != "" {
			dp, err := geo.DecodeRouteGeometry(raw.RouteGeometry)
			if err != nil {
				slog.Debug("skipping malformed route geometry", "error", err)
			} else {
				polylines = append(polylines, dp)
			}
		}
	}

	return polylines
}
