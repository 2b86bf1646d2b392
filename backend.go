package softpaint

// Quad is a quadrilateral in device space. The corners need not form a
// rectangle; the quad's axes run from TopLeft to TopRight and from TopLeft
// to BottomLeft.
type Quad struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// RectQuad returns the axis-aligned quad whose corner pixels are (x0, y0)
// and (x1, y1), both inclusive.
func RectQuad(x0, y0, x1, y1 float64) Quad {
	return Quad{
		TopLeft:     Pt(x0, y0),
		TopRight:    Pt(x1, y0),
		BottomLeft:  Pt(x0, y1),
		BottomRight: Pt(x1, y1),
	}
}

// Transform returns the quad with every corner mapped through m.
func (q Quad) Transform(m Matrix) Quad {
	return Quad{
		TopLeft:     m.TransformPoint(q.TopLeft),
		TopRight:    m.TransformPoint(q.TopRight),
		BottomLeft:  m.TransformPoint(q.BottomLeft),
		BottomRight: m.TransformPoint(q.BottomRight),
	}
}

// SourceRect is an inclusive rectangle of texture pixels:
// (U1, V1) maps to the quad's top-left and (U2, V2) to its bottom-right.
type SourceRect struct {
	U1, V1 float64
	U2, V2 float64
}

// Backend turns device-space primitives into surface writes.
//
// Coordinates are flat (x, y) lists already mapped through the view
// transform. Implementations own their scratch buffers, so a Backend must
// not be shared between goroutines.
type Backend interface {
	// DrawPoint draws a square of side p.Weight centred on (x, y).
	DrawPoint(s Surface, x, y float64, p Paint)

	// DrawLine draws a segment with thickness p.Weight and square caps.
	DrawLine(s Surface, x1, y1, x2, y2 float64, p Paint)

	// DrawPolygon strokes the closed outline of at least three points.
	DrawPolygon(s Surface, coords []float64, p Paint) error

	// DrawPolyline strokes an open chain of at least two points.
	DrawPolyline(s Surface, coords []float64, p Paint) error

	// FillPolygon fills the outline and interior of at least three points.
	FillPolygon(s Surface, coords []float64, p Paint) error

	// DrawTexturedQuad maps the src rectangle of tex onto q.
	DrawTexturedQuad(s Surface, q Quad, tex Texture, src SourceRect, p Paint)

	// DrawGlyphQuad maps the src rectangle of a coverage atlas onto q,
	// using the red channel as the intensity of p.Color.
	DrawGlyphQuad(s Surface, q Quad, atlas Texture, src SourceRect, p Paint)
}
