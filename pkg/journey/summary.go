package journey

import (
	"github.com/spf13/cast"

	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

// BuildSummary computes aggregate journey statistics from the raw response
// metadata and the normalized instructions. Fare strings that do not parse
// as numbers ("", "N/A") yield a total cost of zero, never an error.
func BuildSummary(raw *onemap.RouteResponse, rt ResponseType, instructions []ParsedInstruction, polylineCount int) Summary {
	s := Summary{
		ResponseType:     rt.String(),
		InstructionCount: len(instructions),
		PolylineCount:    polylineCount,
	}

	switch rt {
	case ResponseTransit:
		it := raw.Plan.Itineraries[0]
		s.TotalTime = it.Duration
		s.WalkDistance = it.WalkDistance
		s.Transfers = it.Transfers
		s.Fare = it.Fare
		s.TotalCost = cast.ToFloat64(it.Fare)

	case ResponseDirect:
		if raw.RouteSummary != nil {
			s.TotalTime = raw.RouteSummary.TotalTime
			s.TotalDistance = raw.RouteSummary.TotalDistance
		}
		// No fare concept for walk/drive routes
		s.TotalCost = 0
	}

	return s
}
