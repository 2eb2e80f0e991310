// Package onemap provides a client for the Singapore OneMap API,
// covering geocoding, reverse geocoding and route planning.
package onemap

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// SearchResponse is the OneMap elastic search response envelope.
type SearchResponse struct {
	Found         int            `json:"found"`
	TotalNumPages int            `json:"totalNumPages"`
	PageNum       int            `json:"pageNum"`
	Results       []SearchResult `json:"results"`
}

// SearchResult is one geocoding candidate from OneMap search.
// Coordinates are returned as decimal-degree strings.
type SearchResult struct {
	SearchVal string `json:"SEARCHVAL"`
	BlkNo     string `json:"BLK_NO"`
	RoadName  string `json:"ROAD_NAME"`
	Building  string `json:"BUILDING"`
	Address   string `json:"ADDRESS"`
	Postal    string `json:"POSTAL"`
	Latitude  string `json:"LATITUDE"`
	Longitude string `json:"LONGITUDE"`
}

// ReverseGeocodeResponse is the OneMap reverse geocoding envelope.
type ReverseGeocodeResponse struct {
	GeocodeInfo []GeocodeInfo `json:"GeocodeInfo"`
}

// GeocodeInfo describes the building or road nearest to a coordinate.
type GeocodeInfo struct {
	BuildingName string `json:"BUILDINGNAME"`
	Block        string `json:"BLOCK"`
	Road         string `json:"ROAD"`
	PostalCode   string `json:"POSTALCODE"`
	Latitude     string `json:"LATITUDE"`
	Longitude    string `json:"LONGITUDE"`
}

// RouteResponse is the raw routing payload from OneMap. It is a union of two
// shapes: public-transit responses carry Plan.Itineraries, walk/drive
// responses carry RouteInstructions plus RouteSummary and RouteGeometry.
// Consumers must classify the shape before reading either side.
type RouteResponse struct {
	// Public transport shape
	Plan *Plan `json:"plan,omitempty"`

	// Direct routing (walk/drive) shape
	StatusMessage     string             `json:"status_message,omitempty"`
	RouteGeometry     string             `json:"route_geometry,omitempty"`
	RouteInstructions []RouteInstruction `json:"route_instructions,omitempty"`
	RouteSummary      *RouteSummary      `json:"route_summary,omitempty"`
}

// Plan holds the transit itineraries for a public-transport route request.
type Plan struct {
	Date        int64       `json:"date,omitempty"`
	Itineraries []Itinerary `json:"itineraries"`
}

// Itinerary is one candidate public-transport journey.
type Itinerary struct {
	Duration     float64 `json:"duration"` // seconds
	StartTime    int64   `json:"startTime,omitempty"`
	EndTime      int64   `json:"endTime,omitempty"`
	WalkTime     float64 `json:"walkTime,omitempty"`
	TransitTime  float64 `json:"transitTime,omitempty"`
	WaitingTime  float64 `json:"waitingTime,omitempty"`
	WalkDistance float64 `json:"walkDistance,omitempty"` // meters
	Transfers    int     `json:"transfers,omitempty"`
	Fare         string  `json:"fare,omitempty"`
	Legs         []Leg   `json:"legs"`
}

// Leg is one mode-homogeneous segment of a transit itinerary.
type Leg struct {
	Mode              string       `json:"mode"`
	Route             string       `json:"route,omitempty"`
	RouteShortName    string       `json:"routeShortName,omitempty"`
	AgencyName        string       `json:"agencyName,omitempty"`
	Distance          float64      `json:"distance,omitempty"` // meters
	Duration          float64      `json:"duration,omitempty"` // seconds
	From              *StopPoint   `json:"from,omitempty"`
	To                *StopPoint   `json:"to,omitempty"`
	LegGeometry       *LegGeometry `json:"legGeometry,omitempty"`
	IntermediateStops []StopPoint  `json:"intermediateStops,omitempty"`
	Steps             []WalkStep   `json:"steps,omitempty"`
}

// StopPoint describes a stop, station or waypoint on a leg.
type StopPoint struct {
	Name     string  `json:"name"`
	StopCode string  `json:"stopCode,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
}

// LegGeometry carries the encoded polyline for one leg.
type LegGeometry struct {
	Points string `json:"points"`
	Length int    `json:"length,omitempty"`
}

// WalkStep is one turn of a walking leg.
type WalkStep struct {
	Distance          float64 `json:"distance,omitempty"`
	RelativeDirection string  `json:"relativeDirection,omitempty"`
	AbsoluteDirection string  `json:"absoluteDirection,omitempty"`
	StreetName        string  `json:"streetName,omitempty"`
	Lat               float64 `json:"lat,omitempty"`
	Lon               float64 `json:"lon,omitempty"`
}

// RouteSummary aggregates a walk/drive route.
type RouteSummary struct {
	StartPoint    string  `json:"start_point"`
	EndPoint      string  `json:"end_point"`
	TotalTime     float64 `json:"total_time"`     // seconds
	TotalDistance float64 `json:"total_distance"` // meters
}

// RouteInstruction is one turn of a walk/drive route. OneMap serializes it as
// a positional 10-element array mixing strings and numbers:
//
//	[direction, street, distance, "lat,lng", duration, formatted distance,
//	 from bearing, to bearing, mode, instruction text]
type RouteInstruction struct {
	Direction         string
	StreetName        string
	Distance          float64 // meters
	Coordinate        string  // "lat,lng"
	Duration          float64 // seconds
	FormattedDistance string
	FromBearing       string
	ToBearing         string
	Mode              string
	Text              string
}

// UnmarshalJSON decodes the positional tuple form. Elements are coerced
// individually so a numeric distance and a string distance both parse;
// missing or unparseable elements default to zero values rather than failing
// the whole response.
func (ri *RouteInstruction) UnmarshalJSON(data []byte) error {
	var tuple []any
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	at := func(i int) any {
		if i < len(tuple) {
			return tuple[i]
		}
		return nil
	}

	ri.Direction = cast.ToString(at(0))
	ri.StreetName = cast.ToString(at(1))
	ri.Distance = cast.ToFloat64(at(2))
	ri.Coordinate = cast.ToString(at(3))
	ri.Duration = cast.ToFloat64(at(4))
	ri.FormattedDistance = cast.ToString(at(5))
	ri.FromBearing = cast.ToString(at(6))
	ri.ToBearing = cast.ToString(at(7))
	ri.Mode = cast.ToString(at(8))
	ri.Text = cast.ToString(at(9))
	return nil
}

// MarshalJSON re-emits the positional tuple form.
func (ri RouteInstruction) MarshalJSON() ([]byte, error) {
	tuple := []any{
		ri.Direction, ri.StreetName, ri.Distance, ri.Coordinate, ri.Duration,
		ri.FormattedDistance, ri.FromBearing, ri.ToBearing, ri.Mode, ri.Text,
	}
	return json.Marshal(tuple)
}
