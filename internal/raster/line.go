package raster

// Overlap selects the extra pixels a line emits where Bresenham takes a
// diagonal step. Consecutive segments of a polyline share one flag so that
// corners are neither doubled nor left open.
type Overlap uint8

const (
	// OverlapNone emits only the Bresenham pixels.
	OverlapNone Overlap = 0
	// OverlapMajor adds the pixel reached by the major-axis step before the
	// minor-axis step is taken.
	OverlapMajor Overlap = 1
	// OverlapMinor adds the pixel reached by the minor-axis step at the
	// previous major-axis coordinate.
	OverlapMinor Overlap = 2
	// OverlapBoth combines OverlapMajor and OverlapMinor.
	OverlapBoth = OverlapMajor | OverlapMinor
)

// String returns the flag name.
func (o Overlap) String() string {
	switch o {
	case OverlapNone:
		return "None"
	case OverlapMajor:
		return "Major"
	case OverlapMinor:
		return "Minor"
	case OverlapBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// Line adds every pixel of the segment (x1, y1)-(x2, y2) drawn with the
// given thickness and square caps. Thickness below 1 is treated as 1.
//
// The endpoints are put in canonical order first, so Line(a, b) and
// Line(b, a) produce the same set.
//
// Thicker lines are built from parallel copies of the centre line, shifted
// along the perpendicular by a second Bresenham walk. thickness/2 copies go
// to one side and the rest to the other; both walks start at the centre, so
// the set for thickness n always contains the set for n-1.
func Line(dst *PointSet, x1, y1, x2, y2, thickness int, overlap Overlap) {
	if y2 < y1 || (y2 == y1 && x2 < x1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	lineOverlap(dst, x1, y1, x2, y2, overlap)
	if thickness <= 1 {
		return
	}

	// Perpendicular of (dx, dy) is (dy, -dx).
	px, py := y2-y1, -(x2 - x1)
	if px == 0 && py == 0 {
		return
	}

	before := thickness / 2
	after := thickness - 1 - before
	parallelLines(dst, x1, y1, x2, y2, -px, -py, before)
	parallelLines(dst, x1, y1, x2, y2, px, py, after)
}

// Polyline adds the segments joining consecutive points. When closed is
// set, the last point is joined back to the first. All segments share the
// same thickness and overlap flag.
func Polyline(dst *PointSet, pts []Point, closed bool, thickness int, overlap Overlap) {
	switch len(pts) {
	case 0:
		return
	case 1:
		Line(dst, pts[0].X, pts[0].Y, pts[0].X, pts[0].Y, thickness, overlap)
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		Line(dst, a.X, a.Y, b.X, b.Y, thickness, overlap)
	}
	if closed && len(pts) > 2 {
		a, b := pts[len(pts)-1], pts[0]
		Line(dst, a.X, a.Y, b.X, b.Y, thickness, overlap)
	}
}

// parallelLines walks n steps from the origin along (px, py) with Bresenham
// and redraws the segment at each offset. A diagonal offset step leaves
// gaps between neighbouring copies, which OverlapBoth fills.
func parallelLines(dst *PointSet, x1, y1, x2, y2, px, py, n int) {
	if n <= 0 {
		return
	}
	dx, dy := abs(px), abs(py)
	sx, sy := sign(px), sign(py)
	ox, oy := 0, 0

	if dx >= dy {
		err := 2*dy - dx
		for i := 0; i < n; i++ {
			ox += sx
			ov := OverlapNone
			if err >= 0 {
				oy += sy
				err -= 2 * dx
				ov = OverlapBoth
			}
			err += 2 * dy
			lineOverlap(dst, x1+ox, y1+oy, x2+ox, y2+oy, ov)
		}
		return
	}

	err := 2*dx - dy
	for i := 0; i < n; i++ {
		oy += sy
		ov := OverlapNone
		if err >= 0 {
			ox += sx
			err -= 2 * dy
			ov = OverlapBoth
		}
		err += 2 * dx
		lineOverlap(dst, x1+ox, y1+oy, x2+ox, y2+oy, ov)
	}
}

// lineOverlap is a one pixel wide Bresenham line with overlap correction.
func lineOverlap(dst *PointSet, x1, y1, x2, y2 int, overlap Overlap) {
	if x1 == x2 || y1 == y2 {
		straightLine(dst, x1, y1, x2, y2)
		return
	}

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	x, y := x1, y1
	dst.Add(x, y)

	if dx > dy {
		err := 2*dy - dx
		for x != x2 {
			x += sx
			if err >= 0 {
				if overlap&OverlapMajor != 0 {
					dst.Add(x, y)
				}
				y += sy
				if overlap&OverlapMinor != 0 {
					dst.Add(x-sx, y)
				}
				err -= 2 * dx
			}
			err += 2 * dy
			dst.Add(x, y)
		}
		return
	}

	err := 2*dx - dy
	for y != y2 {
		y += sy
		if err >= 0 {
			if overlap&OverlapMajor != 0 {
				dst.Add(x, y)
			}
			x += sx
			if overlap&OverlapMinor != 0 {
				dst.Add(x, y-sy)
			}
			err -= 2 * dy
		}
		err += 2 * dx
		dst.Add(x, y)
	}
}

// straightLine handles horizontal, vertical and zero-length segments.
func straightLine(dst *PointSet, x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			dst.Add(x, y)
		}
	}
}
