package journey

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sgtransitlab/sgmcp/pkg/onemap"
)

func TestClassify(t *testing.T) {
	t.Run("nil response is invalid", func(t *testing.T) {
		assert.Equal(t, ResponseInvalid, Classify(nil))
	})

	t.Run("empty response is invalid", func(t *testing.T) {
		assert.Equal(t, ResponseInvalid, Classify(&onemap.RouteResponse{}))
	})

	t.Run("plan with no itineraries is invalid", func(t *testing.T) {
		raw := &onemap.RouteResponse{Plan: &onemap.Plan{}}
		assert.Equal(t, ResponseInvalid, Classify(raw))
	})

	t.Run("itineraries classify as transit", func(t *testing.T) {
		raw := &onemap.RouteResponse{Plan: &onemap.Plan{
			Itineraries: []onemap.Itinerary{{Duration: 1200}},
		}}
		assert.Equal(t, ResponseTransit, Classify(raw))
	})

	t.Run("instruction tuples classify as direct", func(t *testing.T) {
		raw := &onemap.RouteResponse{
			RouteInstructions: []onemap.RouteInstruction{{Direction: "Left"}},
		}
		assert.Equal(t, ResponseDirect, Classify(raw))
	})

	t.Run("transit takes precedence when both shapes present", func(t *testing.T) {
		raw := &onemap.RouteResponse{
			Plan:              &onemap.Plan{Itineraries: []onemap.Itinerary{{}}},
			RouteInstructions: []onemap.RouteInstruction{{Direction: "Left"}},
		}
		assert.Equal(t, ResponseTransit, Classify(raw))
	})
}

func TestResponseTypeString(t *testing.T) {
	assert.Equal(t, "PUBLIC_TRANSPORT", ResponseTransit.String())
	assert.Equal(t, "DIRECT_ROUTING", ResponseDirect.String())
	assert.Equal(t, "ERROR", ResponseInvalid.String())
}
