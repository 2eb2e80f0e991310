package journey

import (
	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// Classify tags a raw routing response as transit, direct or invalid before
// any shape-specific field access. Transit takes precedence over direct when
// a response somehow carries both, so the result is deterministic.
//
// A nil response and a response with neither itineraries nor instructions are
// both ResponseInvalid: downstream treats that as "no route found," never as
// a fault.
func Classify(raw *onemap.RouteResponse) ResponseType {
	if raw == nil {
		return ResponseInvalid
	}
	if raw.Plan != nil && len(raw.Plan.Itineraries) > 0 {
		return ResponseTransit
	}
	if len(raw.RouteInstructions) > 0 {
		return ResponseDirect
	}
	return ResponseInvalid
}
