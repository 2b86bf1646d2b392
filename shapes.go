package softpaint

import (
	"fmt"
	"math"
)

// minCurveSegments is the fewest segments a full ellipse is drawn with.
const minCurveSegments = 16

// Triangle fills and strokes the triangle through three points.
func (c *Context) Triangle(x1, y1, x2, y2, x3, y3 float64) {
	c.user = append(c.user[:0], x1, y1, x2, y2, x3, y3)
	_ = c.shape(c.device(c.user), true)
}

// Quad fills and strokes the quadrilateral through four points.
func (c *Context) Quad(x1, y1, x2, y2, x3, y3, x4, y4 float64) {
	c.user = append(c.user[:0], x1, y1, x2, y2, x3, y3, x4, y4)
	_ = c.shape(c.device(c.user), true)
}

// Rect fills and strokes a rectangle. Its arguments are read according to
// the rect mode. In ModeCorner a rectangle covers the pixels x <= px < x+w
// and y <= py < y+h. Negative sizes extend left or up; a zero size draws
// nothing.
func (c *Context) Rect(x, y, w, h float64) error {
	x, y, w, h, err := shapeBounds("rect", c.state.RectMode, x, y, w, h)
	if err != nil || w == 0 || h == 0 {
		return err
	}
	x1 := math.Max(x, x+w-1)
	y1 := math.Max(y, y+h-1)
	c.user = append(c.user[:0], x, y, x1, y, x1, y1, x, y1)
	return c.shape(c.device(c.user), true)
}

// Square draws a rectangle with equal sides.
func (c *Context) Square(x, y, size float64) error {
	return c.Rect(x, y, size, size)
}

// Ellipse fills and strokes an ellipse. Its arguments are read according
// to the ellipse mode, ModeCenter by default. The outline is a polygon
// with at least 16 sides, more for large radii.
func (c *Context) Ellipse(x, y, w, h float64) error {
	x, y, w, h, err := shapeBounds("ellipse", c.state.EllipseMode, x, y, w, h)
	if err != nil || w == 0 || h == 0 {
		return err
	}
	cx, cy, rx, ry := x+w/2, y+h/2, w/2, h/2
	n := c.curveSegments(rx, ry)
	c.user = c.user[:0]
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		c.user = append(c.user, cx+rx*cos, cy+ry*sin)
	}
	return c.shape(c.device(c.user), true)
}

// Circle draws an ellipse with equal axes. In ModeCorners a circle is
// ambiguous, so Circle returns an error wrapping ErrUnsupportedMode.
func (c *Context) Circle(x, y, d float64) error {
	if c.state.EllipseMode == ModeCorners {
		Logger().Debug("softpaint: circle in corners mode")
		return fmt.Errorf("%w: circle in %v mode", ErrUnsupportedMode, c.state.EllipseMode)
	}
	return c.Ellipse(x, y, d, d)
}

// Arc draws part of an ellipse from angle start to stop, in radians,
// clockwise on screen. The ellipse is read like Ellipse. A span above 2π
// is clamped to a full turn; stop < start draws nothing.
//
// mode selects how the arc is closed:
//   - ArcDefault fills a pie slice and strokes only the curve
//   - ArcOpen fills the region cut off by the chord and strokes the curve
//   - ArcChord fills and strokes the region closed by the chord
//   - ArcPie fills and strokes a pie slice through the centre
func (c *Context) Arc(x, y, w, h, start, stop float64, mode ArcMode) error {
	if mode > ArcPie {
		return fmt.Errorf("%w: arc mode %v", ErrUnsupportedMode, mode)
	}
	x, y, w, h, err := shapeBounds("arc", c.state.EllipseMode, x, y, w, h)
	if err != nil || w == 0 || h == 0 || stop <= start {
		return err
	}

	span := math.Min(stop-start, 2*math.Pi)
	cx, cy, rx, ry := x+w/2, y+h/2, w/2, h/2
	n := c.curveSegments(rx, ry)
	segments := max(2, int(math.Ceil(float64(n)*span/(2*math.Pi))))

	c.user = c.user[:0]
	for i := 0; i <= segments; i++ {
		sin, cos := math.Sincos(start + span*float64(i)/float64(segments))
		c.user = append(c.user, cx+rx*cos, cy+ry*sin)
	}
	curve := len(c.user)
	c.user = append(c.user, cx, cy)
	withCentre := c.user

	if c.state.FillEnabled {
		pts := withCentre[:curve]
		if mode == ArcDefault || mode == ArcPie {
			pts = withCentre
		}
		if err := c.backend.FillPolygon(c.surface, c.device(pts), c.state.fillPaint()); err != nil {
			return err
		}
	}
	if !c.state.StrokeEnabled {
		return nil
	}
	switch mode {
	case ArcChord:
		return c.backend.DrawPolygon(c.surface, c.device(withCentre[:curve]), c.state.strokePaint())
	case ArcPie:
		return c.backend.DrawPolygon(c.surface, c.device(withCentre), c.state.strokePaint())
	default:
		return c.backend.DrawPolyline(c.surface, c.device(withCentre[:curve]), c.state.strokePaint())
	}
}

// RegularPolygon draws a regular polygon with n sides inscribed in the
// circle of radius r around (x, y). rotation is in radians.
func (c *Context) RegularPolygon(n int, x, y, r, rotation float64) error {
	if n < 3 {
		return &GeometryError{Op: "RegularPolygon", Len: 2 * max(n, 0), MinPairs: 3, Index: -1}
	}
	angle := 2.0 * math.Pi / float64(n)
	c.user = c.user[:0]
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		c.user = append(c.user, x+r*math.Cos(a), y+r*math.Sin(a))
	}
	return c.shape(c.device(c.user), true)
}

// curveSegments picks the polygon size for an ellipse with radii measured
// in device pixels.
func (c *Context) curveSegments(rx, ry float64) int {
	r := math.Max(math.Abs(rx), math.Abs(ry)) * c.state.Transform.ScaleFactor()
	return max(minCurveSegments, int(r/2))
}

// shapeBounds converts mode-dependent arguments to a top-left corner and a
// non-negative size.
func shapeBounds(op string, mode ShapeMode, a, b, cc, d float64) (x, y, w, h float64, err error) {
	switch mode {
	case ModeCorner:
		x, y, w, h = a, b, cc, d
	case ModeCorners:
		x, y, w, h = a, b, cc-a, d-b
	case ModeCenter:
		x, y, w, h = a-cc/2, b-d/2, cc, d
	case ModeRadius:
		x, y, w, h = a-cc, b-d, 2*cc, 2*d
	default:
		return 0, 0, 0, 0, fmt.Errorf("%w: %s in %v mode", ErrUnsupportedMode, op, mode)
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h, nil
}
