package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

func TestBuildSummaryTransit(t *testing.T) {
	raw := transitResponse(onemap.Itinerary{
		Duration:     1800,
		WalkDistance: 350,
		Transfers:    1,
		Fare:         "1.67",
		Legs:         []onemap.Leg{{Mode: "BUS", Route: "21"}},
	})
	instructions := Normalize(raw, ResponseTransit)

	s := BuildSummary(raw, ResponseTransit, instructions, 2)

	assert.Equal(t, "PUBLIC_TRANSPORT", s.ResponseType)
	assert.Equal(t, 1800.0, s.TotalTime)
	assert.Equal(t, 350.0, s.WalkDistance)
	assert.Equal(t, 1, s.Transfers)
	assert.Equal(t, "1.67", s.Fare)
	assert.Equal(t, 1.67, s.TotalCost)
	assert.Equal(t, 1, s.InstructionCount)
	assert.Equal(t, 2, s.PolylineCount)
}

func TestBuildSummaryFareParsing(t *testing.T) {
	tests := []struct {
		fare string
		want float64
	}{
		{"2.50", 2.5},
		{"", 0},
		{"N/A", 0},
	}

	for _, tc := range tests {
		t.Run("fare "+tc.fare, func(t *testing.T) {
			raw := transitResponse(onemap.Itinerary{Fare: tc.fare})
			assert.NotPanics(t, func() {
				s := BuildSummary(raw, ResponseTransit, nil, 0)
				assert.Equal(t, tc.want, s.TotalCost)
			})
		})
	}
}

func TestBuildSummaryDirect(t *testing.T) {
	raw := &onemap.RouteResponse{
		RouteInstructions: []onemap.RouteInstruction{{Direction: "Left", Text: "Turn left"}},
		RouteSummary: &onemap.RouteSummary{
			TotalTime:     600,
			TotalDistance: 4200,
		},
	}
	instructions := Normalize(raw, ResponseDirect)

	s := BuildSummary(raw, ResponseDirect, instructions, 1)

	assert.Equal(t, "DIRECT_ROUTING", s.ResponseType)
	assert.Equal(t, 600.0, s.TotalTime)
	assert.Equal(t, 4200.0, s.TotalDistance)
	assert.Zero(t, s.TotalCost)
	assert.Equal(t, 1, s.InstructionCount)
	assert.Equal(t, 1, s.PolylineCount)
}

func TestBuildSummaryDirectWithoutSummaryBlock(t *testing.T) {
	raw := &onemap.RouteResponse{
		RouteInstructions: []onemap.RouteInstruction{{Direction: "Left", Text: "Turn left"}},
	}

	assert.NotPanics(t, func() {
		s := BuildSummary(raw, ResponseDirect, nil, 0)
		assert.Zero(t, s.TotalTime)
		assert.Zero(t, s.TotalDistance)
	})
}

func TestBuildSummaryError(t *testing.T) {
	s := BuildSummary(nil, ResponseInvalid, []ParsedInstruction{}, 0)

	assert.Equal(t, "ERROR", s.ResponseType)
	assert.Zero(t, s.TotalCost)
	assert.Zero(t, s.InstructionCount)
	assert.Zero(t, s.PolylineCount)
}
