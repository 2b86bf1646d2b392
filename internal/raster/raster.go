// Package raster converts integer outlines into pixel sets.
//
// Every algorithm in this package writes into a PointSet instead of a
// surface. The caller resolves the set to pixel writes and resets it before
// the next primitive. Nothing here allocates per pixel once the scratch
// buffers have grown to the working size.
package raster

import "math"

// Point is an integer pixel coordinate.
// Equality is exact, so Point is used directly as a map key.
type Point struct {
	X, Y int
}

// Round converts a device coordinate to the nearest pixel index.
// Halves round up, so 0.5 maps to 1 and -0.5 maps to 0.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1 for negative values and 1 otherwise.
func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
