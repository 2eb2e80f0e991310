package journey

import (
	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

// StepMarker is one map marker for an instruction with a known position.
// Coordinates use [lng, lat] ordering for GeoJSON interchange.
type StepMarker struct {
	Step        int       `json:"step"`
	Coordinates []float64 `json:"coordinates"`
	Instruction string    `json:"instruction"`
}

// Visualization bundles the geometry needed to render a journey on a map.
type Visualization struct {
	StepMarkers   []StepMarker     `json:"stepMarkers"`
	Bounds        *geo.BoundingBox `json:"bounds"`
	RouteGeometry []geo.LineString `json:"routeGeometry"`
}

// BuildVisualization produces step markers for every instruction with known
// coordinates, one LineString per decoded polyline in order, and the bounds
// of the first polyline (nil when the journey has no geometry).
func BuildVisualization(instructions []ParsedInstruction, polylines []*geo.DecodedPolyline) Visualization {
	markers := make([]StepMarker, 0, len(instructions))
	for _, ins := range instructions {
		if ins.Coordinates == nil {
			continue
		}
		markers = append(markers, StepMarker{
			Step:        ins.Step,
			Coordinates: []float64{ins.Coordinates.Longitude, ins.Coordinates.Latitude},
			Instruction: ins.Instruction,
		})
	}

	vis := Visualization{
		StepMarkers:   markers,
		RouteGeometry: make([]geo.LineString, 0, len(polylines)),
	}

	for _, pl := range polylines {
		vis.RouteGeometry = append(vis.RouteGeometry, pl.ToLineGeometry())
	}
	if len(polylines) > 0 {
		vis.Bounds = polylines[0].Bounds
	}

	return vis
}
