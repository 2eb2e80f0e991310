package main

import (
	"fmt"
	"os"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug_polyline <encoded_polyline>")
		os.Exit(1)
	}
	encoded := os.Args[1]

	points, err := geo.DecodePolyline(encoded)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		os.Exit(1)
	}
	for i, pt := range points {
		fmt.Printf("Decoded Point %d: Latitude: %.8f, Longitude: %.8f\n", i, pt.Latitude, pt.Longitude)
	}

	reencoded := geo.EncodePolyline(points)
	fmt.Printf("\nRe-encoded: %s\n", reencoded)
	if reencoded != encoded {
		fmt.Println("Note: re-encoded string differs from input (precision loss or non-canonical input)")
	}

	if dp, err := geo.DecodeRouteGeometry(encoded); err == nil && dp.Bounds != nil {
		fmt.Printf("Bounds: %s\n", dp.Bounds)
	}
}
