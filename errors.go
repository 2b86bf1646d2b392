package softpaint

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for softpaint.
var (
	// ErrInvalidGeometry is returned when a coordinate list has an odd
	// length, too few points or a NaN or infinite value. Nothing is drawn.
	ErrInvalidGeometry = errors.New("softpaint: invalid geometry")

	// ErrUnsupportedMode is returned when a drawing mode makes no sense for
	// the requested primitive, such as ModeCorners for a circle.
	ErrUnsupportedMode = errors.New("softpaint: unsupported mode")

	// ErrInvalidDimensions is returned when a surface width or height is
	// not positive.
	ErrInvalidDimensions = errors.New("softpaint: invalid dimensions")

	// ErrInvalidChannels is returned when a surface channel count is not
	// 1, 2, 3 or 4.
	ErrInvalidChannels = errors.New("softpaint: invalid channel count")

	// ErrNoGlyphSource is returned by text operations on a context whose
	// glyph source was explicitly disabled.
	ErrNoGlyphSource = errors.New("softpaint: no glyph source")
)

// GeometryError describes a rejected coordinate list.
// It unwraps to ErrInvalidGeometry.
type GeometryError struct {
	Op       string // primitive that rejected the input
	Len      int    // number of coordinates received
	MinPairs int    // minimum number of (x, y) pairs required
	Index    int    // position of a NaN or infinite coordinate, or -1
}

func (e *GeometryError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("softpaint: %s: coordinate %d is not finite", e.Op, e.Index)
	}
	if e.Len%2 != 0 {
		return fmt.Sprintf("softpaint: %s: odd coordinate count %d", e.Op, e.Len)
	}
	return fmt.Sprintf("softpaint: %s: %d points, need at least %d", e.Op, e.Len/2, e.MinPairs)
}

func (e *GeometryError) Unwrap() error {
	return ErrInvalidGeometry
}

// checkCoords validates a flat coordinate list before anything is drawn.
func checkCoords(op string, coords []float64, minPairs int) error {
	if len(coords)%2 != 0 || len(coords) < 2*minPairs {
		Logger().Debug("softpaint: geometry rejected", "op", op, "len", len(coords))
		return &GeometryError{Op: op, Len: len(coords), MinPairs: minPairs, Index: -1}
	}
	for i, v := range coords {
		if !finite(v) {
			Logger().Debug("softpaint: geometry rejected", "op", op, "index", i, "value", v)
			return &GeometryError{Op: op, Len: len(coords), MinPairs: minPairs, Index: i}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
