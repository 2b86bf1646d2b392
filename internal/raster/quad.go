package raster

// QuadSampler maps destination pixels inside a quadrilateral back to source
// coordinates.
//
// The quad's local X axis runs from the top-left to the top-right corner
// and its Y axis from the top-left to the bottom-left corner. The axes need
// not be orthogonal or axis-aligned, so rotated and sheared quads sample
// correctly. A pixel is projected onto each axis independently:
//
//	tx = dot(p - topLeft, xAxis) / |xAxis|²
//	ty = dot(p - topLeft, yAxis) / |yAxis|²
//
// and mapped linearly into the source rectangle [U1, U2] x [V1, V2].
type QuadSampler struct {
	ox, oy     float64
	xAxisX     float64
	xAxisY     float64
	yAxisX     float64
	yAxisY     float64
	invX, invY float64
	u1, v1     float64
	du, dv     float64
	degenerate bool
}

// NewQuadSampler builds a sampler for the quad with the given top-left,
// top-right and bottom-left corners and the inclusive source rectangle
// (u1, v1)-(u2, v2).
//
// A zero-length axis uses a divisor of 1 instead of failing; every pixel
// then projects to the start of that axis. Degenerate reports this case.
func NewQuadSampler(tlx, tly, trx, try, blx, bly, u1, v1, u2, v2 float64) QuadSampler {
	q := QuadSampler{
		ox: tlx, oy: tly,
		xAxisX: trx - tlx, xAxisY: try - tly,
		yAxisX: blx - tlx, yAxisY: bly - tly,
		u1: u1, v1: v1,
		du: u2 - u1, dv: v2 - v1,
	}
	lx := q.xAxisX*q.xAxisX + q.xAxisY*q.xAxisY
	ly := q.yAxisX*q.yAxisX + q.yAxisY*q.yAxisY
	if lx == 0 {
		lx = 1
		q.degenerate = true
	}
	if ly == 0 {
		ly = 1
		q.degenerate = true
	}
	q.invX = 1 / lx
	q.invY = 1 / ly
	return q
}

// Degenerate reports whether either axis had zero length.
func (q QuadSampler) Degenerate() bool {
	return q.degenerate
}

// Project returns the normalized axis coordinates of pixel (x, y).
// Inside the quad both lie in [0, 1].
func (q QuadSampler) Project(x, y int) (tx, ty float64) {
	dx := float64(x) - q.ox
	dy := float64(y) - q.oy
	tx = (dx*q.xAxisX + dy*q.xAxisY) * q.invX
	ty = (dx*q.yAxisX + dy*q.yAxisY) * q.invY
	return tx, ty
}

// Sample returns the source pixel for destination pixel (x, y), rounded to
// the nearest integer. The result is not clamped.
func (q QuadSampler) Sample(x, y int) (u, v int) {
	tx, ty := q.Project(x, y)
	return Round(q.u1 + tx*q.du), Round(q.v1 + ty*q.dv)
}

// Clamp limits v to [0, n-1].
func Clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// QuadOutline appends the four corners of a quad to dst in drawing order
// (top-left, top-right, bottom-right, bottom-left), rounded to pixels.
func QuadOutline(dst []Point, tlx, tly, trx, try, brx, bry, blx, bly float64) []Point {
	return append(dst,
		Point{X: Round(tlx), Y: Round(tly)},
		Point{X: Round(trx), Y: Round(try)},
		Point{X: Round(brx), Y: Round(bry)},
		Point{X: Round(blx), Y: Round(bly)},
	)
}
