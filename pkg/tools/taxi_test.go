package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Taxis around Raffles Place (1.2840, 103.8510) plus one far away in Jurong.
const taxiBody = `{
	"value": [
		{"Latitude": 1.2841, "Longitude": 103.8511},
		{"Latitude": 1.2880, "Longitude": 103.8550},
		{"Latitude": 1.2900, "Longitude": 103.8600},
		{"Latitude": 1.3400, "Longitude": 103.7200}
	]
}`

func TestHandleFindNearbyTaxis(t *testing.T) {
	r := testRegistry(t, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(taxiBody))
		},
		nil,
	)

	req := newToolRequest("find_nearby_taxis", map[string]any{
		"latitude":  1.2840,
		"longitude": 103.8510,
		"radius":    2000,
	})

	result, err := r.handleFindNearbyTaxis(context.Background(), req)
	require.NoError(t, err)

	var out struct {
		Count int          `json:"count"`
		Taxis []nearbyTaxi `json:"taxis"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))

	// The Jurong taxi is well outside 2km.
	assert.Equal(t, 3, out.Count)
	require.Len(t, out.Taxis, 3)
	for i := 1; i < len(out.Taxis); i++ {
		assert.LessOrEqual(t, out.Taxis[i-1].Distance, out.Taxis[i].Distance)
	}
	assert.Less(t, out.Taxis[0].Distance, 50.0)
}

func TestHandleFindNearbyTaxisLimit(t *testing.T) {
	r := testRegistry(t, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(taxiBody))
		},
		nil,
	)

	req := newToolRequest("find_nearby_taxis", map[string]any{
		"latitude":  1.2840,
		"longitude": 103.8510,
		"radius":    2000,
		"limit":     1,
	})

	result, err := r.handleFindNearbyTaxis(context.Background(), req)
	require.NoError(t, err)

	var out struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, 1, out.Count)
}

func TestHandleFindNearbyTaxisRadiusClamped(t *testing.T) {
	r := testRegistry(t, nil,
		func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(taxiBody))
		},
		nil,
	)

	req := newToolRequest("find_nearby_taxis", map[string]any{
		"latitude":  1.2840,
		"longitude": 103.8510,
		"radius":    50000,
	})

	result, err := r.handleFindNearbyTaxis(context.Background(), req)
	require.NoError(t, err)

	var out struct {
		RadiusMeters float64 `json:"radiusMeters"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, float64(maxTaxiRadius), out.RadiusMeters)
}

func TestHandleFindNearbyTaxisInvalidCoords(t *testing.T) {
	r := testRegistry(t, nil, nil, nil)

	result, err := r.handleFindNearbyTaxis(context.Background(),
		newToolRequest("find_nearby_taxis", map[string]any{
			"latitude":  0.0,
			"longitude": 0.0,
		}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "Invalid coordinates")
}
