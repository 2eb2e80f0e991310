package geo

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Test cases with known distances
	tests := []struct {
		lat1      float64
		lon1      float64
		lat2      float64
		lon2      float64
		expected  float64
		name      string
		tolerance float64 // Relative tolerance (e.g., 0.001 for 0.1%)
	}{
		{
			name:      "Same point",
			lat1:      1.3521,
			lon1:      103.8198,
			lat2:      1.3521,
			lon2:      103.8198,
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name:      "Short distance - City Hall to Raffles Place",
			lat1:      1.2931,
			lon1:      103.8520,
			lat2:      1.2840,
			lon2:      103.8515,
			expected:  1013.4,
			tolerance: 0.002,
		},
		{
			name:      "Medium distance - Jurong East to Changi Airport",
			lat1:      1.3329,
			lon1:      103.7436,
			lat2:      1.3644,
			lon2:      103.9915,
			expected:  27779.0,
			tolerance: 0.005,
		},
		{
			name:      "Long distance - Singapore to Kuala Lumpur",
			lat1:      1.3521,
			lon1:      103.8198,
			lat2:      3.1390,
			lon2:      101.6869,
			expected:  309250.0,
			tolerance: 0.005,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := HaversineDistance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)

			// Use relative tolerance for non-zero distances
			var difference float64
			if tc.expected == 0 {
				difference = math.Abs(result)
			} else {
				difference = math.Abs(result-tc.expected) / tc.expected
			}

			if difference > tc.tolerance {
				t.Errorf("HaversineDistance(%f, %f, %f, %f) = %f, expected %f ± %.1f%%",
					tc.lat1, tc.lon1, tc.lat2, tc.lon2, result, tc.expected, tc.tolerance*100)
			}
		})
	}
}

func TestHaversineDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{1.3521, 103.8198, 1.2839, 103.8607},
		{1.3048, 103.8318, 1.3329, 103.7436},
		{1.4043, 103.9021, 1.2815, 103.8454},
	}

	for _, p := range pairs {
		ab := HaversineDistance(p[0], p[1], p[2], p[3])
		ba := HaversineDistance(p[2], p[3], p[0], p[1])
		if diff := math.Abs(ab-ba) / ab; diff > 1e-6 {
			t.Errorf("distance not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		if _, err := BoundsOf(nil); err != ErrEmptyInput {
			t.Errorf("BoundsOf(nil) error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("single point", func(t *testing.T) {
		bb, err := BoundsOf([]Location{{Latitude: 1.30, Longitude: 103.85}})
		if err != nil {
			t.Fatalf("BoundsOf() error = %v", err)
		}
		if bb.MinLat != 1.30 || bb.MaxLat != 1.30 || bb.MinLon != 103.85 || bb.MaxLon != 103.85 {
			t.Errorf("unexpected bounds: %s", bb)
		}
	})

	t.Run("multiple points", func(t *testing.T) {
		bb, err := BoundsOf([]Location{
			{Latitude: 1.30, Longitude: 103.85},
			{Latitude: 1.40, Longitude: 103.70},
			{Latitude: 1.35, Longitude: 103.95},
		})
		if err != nil {
			t.Fatalf("BoundsOf() error = %v", err)
		}
		if bb.MinLat != 1.30 || bb.MaxLat != 1.40 {
			t.Errorf("latitude bounds = [%f, %f], want [1.30, 1.40]", bb.MinLat, bb.MaxLat)
		}
		if bb.MinLon != 103.70 || bb.MaxLon != 103.95 {
			t.Errorf("longitude bounds = [%f, %f], want [103.70, 103.95]", bb.MinLon, bb.MaxLon)
		}
		if !bb.Contains(1.35, 103.85) {
			t.Error("Contains() = false for interior point")
		}
		if bb.Contains(1.45, 103.85) {
			t.Error("Contains() = true for exterior point")
		}
	})
}

func TestValidateSearchAnchor(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"central Singapore", 1.3521, 103.8198, false},
		{"boundary south-west", 1.0, 103.0, false},
		{"boundary north-east", 1.5, 104.5, false},
		{"latitude too far north", 1.6, 103.8, true},
		{"latitude too far south", 0.9, 103.8, true},
		{"longitude out west", 1.35, 102.9, true},
		{"longitude out east", 1.35, 104.6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSearchAnchor(tc.lat, tc.lon)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateSearchAnchor(%f, %f) error = %v, wantErr %v",
					tc.lat, tc.lon, err, tc.wantErr)
			}
		})
	}
}
