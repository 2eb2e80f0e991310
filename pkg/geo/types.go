// Package geo provides common geographic types and calculations.
// It centralizes location-based data structures and algorithms to ensure
// consistency across the codebase.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadius is the mean radius of Earth according to WGS-84 in meters
const EarthRadius = 6371000.0

// Singapore search bounding box. Coordinates used as search anchors must fall
// inside it; coordinates coming back from upstream providers are passed
// through unchecked.
const (
	SingaporeMinLat = 1.0
	SingaporeMaxLat = 1.5
	SingaporeMinLon = 103.0
	SingaporeMaxLon = 104.5
)

// ErrEmptyInput is returned when an operation requires at least one point.
var ErrEmptyInput = errors.New("geo: empty input")

// Location represents a geographic coordinate (latitude and longitude)
// with standardized JSON field names.
//
// Example:
//
//	loc := geo.Location{Latitude: 1.3521, Longitude: 103.8198}
//	dist := geo.HaversineDistance(loc.Latitude, loc.Longitude, 1.2839, 103.8607)
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// InSingapore reports whether the location falls inside the Singapore
// search bounding box.
func (l Location) InSingapore() bool {
	return l.Latitude >= SingaporeMinLat && l.Latitude <= SingaporeMaxLat &&
		l.Longitude >= SingaporeMinLon && l.Longitude <= SingaporeMaxLon
}

// ValidateSearchAnchor checks that a coordinate is usable as a search anchor
// for Singapore data sets.
func ValidateSearchAnchor(lat, lon float64) error {
	if lat < SingaporeMinLat || lat > SingaporeMaxLat {
		return fmt.Errorf("latitude %f outside Singapore range [%.1f, %.1f]",
			lat, SingaporeMinLat, SingaporeMaxLat)
	}
	if lon < SingaporeMinLon || lon > SingaporeMaxLon {
		return fmt.Errorf("longitude %f outside Singapore range [%.1f, %.1f]",
			lon, SingaporeMinLon, SingaporeMaxLon)
	}
	return nil
}

// BoundingBox represents a geographic bounding box with southwest and northeast corners
type BoundingBox struct {
	MinLat float64 `json:"south"` // Southern edge (minimum latitude)
	MinLon float64 `json:"west"`  // Western edge (minimum longitude)
	MaxLat float64 `json:"north"` // Northern edge (maximum latitude)
	MaxLon float64 `json:"east"`  // Eastern edge (maximum longitude)
}

// NewBoundingBox creates a new empty bounding box
func NewBoundingBox() *BoundingBox {
	return &BoundingBox{
		MinLat: 90.0, // Start with inverted min/max so any point extends correctly
		MinLon: 180.0,
		MaxLat: -90.0,
		MaxLon: -180.0,
	}
}

// BoundsOf computes the bounding box of a set of points.
// It returns ErrEmptyInput when points is empty.
func BoundsOf(points []Location) (*BoundingBox, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	bb := NewBoundingBox()
	for _, p := range points {
		bb.ExtendWithPoint(p.Latitude, p.Longitude)
	}
	return bb, nil
}

// ExtendWithPoint extends the bounding box to include the specified point
func (bb *BoundingBox) ExtendWithPoint(lat, lon float64) {
	if lat < bb.MinLat {
		bb.MinLat = lat
	}
	if lat > bb.MaxLat {
		bb.MaxLat = lat
	}
	if lon < bb.MinLon {
		bb.MinLon = lon
	}
	if lon > bb.MaxLon {
		bb.MaxLon = lon
	}
}

// Contains reports whether the point lies inside the bounding box, edges included.
func (bb *BoundingBox) Contains(lat, lon float64) bool {
	return lat >= bb.MinLat && lat <= bb.MaxLat &&
		lon >= bb.MinLon && lon <= bb.MaxLon
}

// String returns a string representation of the bounding box
func (bb *BoundingBox) String() string {
	return fmt.Sprintf("(%f,%f,%f,%f)", bb.MinLat, bb.MinLon, bb.MaxLat, bb.MaxLon)
}

// HaversineDistance calculates the great-circle distance between two points
// on the Earth's surface given their latitude and longitude in degrees.
// The result is returned in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	// Haversine formula
	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	// Calculate distance in meters
	return EarthRadius * c
}

// Distance is a convenience wrapper over HaversineDistance for Location values.
func Distance(a, b Location) float64 {
	return HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}
