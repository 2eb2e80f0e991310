package geo

import (
	"errors"
	"math"
)

// ErrMalformedPolyline is returned when an encoded polyline string is
// truncated or contains bytes outside the valid encoding range.
var ErrMalformedPolyline = errors.New("geo: malformed polyline")

// DecodedPolyline holds a decoded route geometry. Coordinates use
// [longitude, latitude] ordering for GeoJSON interchange.
type DecodedPolyline struct {
	Coordinates [][]float64  `json:"coordinates"`
	Bounds      *BoundingBox `json:"bounds"`
}

// LineString is a GeoJSON LineString geometry.
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// ToLineGeometry wraps decoded coordinates as a GeoJSON LineString.
func (dp *DecodedPolyline) ToLineGeometry() LineString {
	return LineString{Type: "LineString", Coordinates: dp.Coordinates}
}

// DecodePolyline decodes an encoded polyline string to a slice of locations.
// This implements Google's Polyline Algorithm Format (Polyline5), which OneMap
// uses for its route geometries. The algorithm uses 5 decimal places of
// precision (1e-5) for coordinates.
// See https://developers.google.com/maps/documentation/utilities/polylinealgorithm
//
// It returns ErrMalformedPolyline when the string ends in the middle of a
// varint chunk or contains an out-of-range byte; the caller decides whether
// to drop the geometry or fail the request.
func DecodePolyline(encoded string) ([]Location, error) {
	if len(encoded) == 0 {
		return []Location{}, nil
	}

	// Rough capacity estimate; short deltas encode in ~2 bytes per axis.
	count := len(encoded) / 4
	if count <= 0 {
		count = 1
	}
	points := make([]Location, 0, count)

	index := 0
	lat := 0
	lng := 0
	strLen := len(encoded)

	decodeValue := func() (int, error) {
		result := 0
		shift := 0
		for {
			if index >= strLen {
				return 0, ErrMalformedPolyline
			}
			b := int(encoded[index]) - 63
			if b < 0 {
				return 0, ErrMalformedPolyline
			}
			index++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		// Undo zigzag sign encoding
		return (result >> 1) ^ (-(result & 1)), nil
	}

	for index < strLen {
		deltaLat, err := decodeValue()
		if err != nil {
			return nil, err
		}
		lat += deltaLat

		deltaLng, err := decodeValue()
		if err != nil {
			return nil, err
		}
		lng += deltaLng

		points = append(points, Location{
			Latitude:  float64(lat) * 1e-5,
			Longitude: float64(lng) * 1e-5,
		})
	}

	return points, nil
}

// DecodeRouteGeometry decodes an encoded polyline into a DecodedPolyline with
// [lng, lat] coordinate pairs and the bounding box of the geometry attached.
func DecodeRouteGeometry(encoded string) (*DecodedPolyline, error) {
	points, err := DecodePolyline(encoded)
	if err != nil {
		return nil, err
	}
	bounds, err := BoundsOf(points)
	if err != nil {
		return nil, ErrMalformedPolyline
	}

	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Longitude, p.Latitude})
	}

	return &DecodedPolyline{Coordinates: coords, Bounds: bounds}, nil
}

// EncodePolyline encodes a slice of locations into a polyline string using
// the Polyline5 format described above.
func EncodePolyline(points []Location) string {
	if len(points) == 0 {
		return ""
	}

	// Estimate result size (6 bytes per point is common)
	result := make([]byte, 0, len(points)*6)

	prevLat := 0
	prevLng := 0

	for _, point := range points {
		// Convert to integers with 5 decimal precision
		lat := int(math.Round(point.Latitude * 1e5))
		lng := int(math.Round(point.Longitude * 1e5))

		// Encode differences from previous values
		result = append(result, encodeSigned(lat-prevLat)...)
		result = append(result, encodeSigned(lng-prevLng)...)

		prevLat = lat
		prevLng = lng
	}

	return string(result)
}

// encodeSigned encodes a signed value using the Google Polyline Algorithm.
func encodeSigned(value int) []byte {
	// Convert to zigzag encoding
	s := value << 1
	if value < 0 {
		s = ^s
	}

	var buf []byte
	for s >= 0x20 {
		buf = append(buf, byte((0x20|(s&0x1f))+63))
		s >>= 5
	}
	buf = append(buf, byte(s+63))
	return buf
}
