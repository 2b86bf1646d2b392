package softpaint

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Context is the immediate-mode drawing entry point.
// It owns a surface, a backend and a stack of drawing states. Each call
// maps its coordinates through the current transform and hands them to the
// backend, which writes the pixels before the call returns.
//
// A Context is not safe for concurrent use. Separate contexts on separate
// surfaces may be used from separate goroutines.
type Context struct {
	width   int
	height  int
	surface Surface
	backend Backend

	glyphs    GlyphSource
	glyphsSet bool

	// Current state and the Push/Pop stack
	state State
	stack []State

	// Scratch: user-space shape points, device-space coordinates, glyph quads
	user   []float64
	coords []float64
	quads  []float64
}

// NewContext creates a drawing context with the given dimensions.
// Optional ContextOption arguments select the surface, backend and glyph
// source:
//
//	// 4-channel pixmap, software backend
//	dc, err := softpaint.NewContext(800, 600)
//
//	// Grayscale target
//	dc, err := softpaint.NewContext(800, 600, softpaint.WithChannels(1))
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil {
		pm, err := NewPixmap(width, height, options.channels)
		if err != nil {
			return nil, err
		}
		surface = pm
	}

	backend := options.backend
	if backend == nil {
		backend = NewSoftwareBackend()
	}

	return &Context{
		width:     surface.Width(),
		height:    surface.Height(),
		surface:   surface,
		backend:   backend,
		glyphs:    options.glyphs,
		glyphsSet: options.glyphsSet,
		state:     DefaultState(),
		stack:     make([]State, 0, 8),
		coords:    make([]float64, 0, 64),
	}, nil
}

// Width returns the width of the surface.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the surface.
func (c *Context) Height() int {
	return c.height
}

// Surface returns the render target.
func (c *Context) Surface() Surface {
	return c.surface
}

// Backend returns the rasterizer backend.
func (c *Context) Backend() Backend {
	return c.backend
}

// Image returns the surface as an image.Image.
func (c *Context) Image() image.Image {
	return AsImage(c.surface)
}

// EncodePNG writes the surface as PNG.
func (c *Context) EncodePNG(w io.Writer) error {
	if pm, ok := c.surface.(*Pixmap); ok {
		return pm.EncodePNG(w)
	}
	return png.Encode(w, AsImage(c.surface))
}

// SavePNG saves the surface to a PNG file.
func (c *Context) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Background sets every pixel of the surface to col, ignoring blending.
func (c *Context) Background(col color.Color) {
	c.surface.Clear(toNRGBA(col))
}

// Clear sets every pixel of the surface to transparent black.
func (c *Context) Clear() {
	c.surface.Clear(Transparent)
}

// State returns a copy of the current drawing state.
func (c *Context) State() State {
	return c.state
}

// SetState replaces the current drawing state.
func (c *Context) SetState(s State) {
	if s.Weight < 1 {
		s.Weight = 1
	}
	c.state = s
}

// SetFill sets the fill color and enables filling.
func (c *Context) SetFill(col color.Color) {
	c.state.Fill = toNRGBA(col)
	c.state.FillEnabled = true
}

// NoFill disables filling.
func (c *Context) NoFill() {
	c.state.FillEnabled = false
}

// SetStroke sets the stroke color and enables stroking.
func (c *Context) SetStroke(col color.Color) {
	c.state.Stroke = toNRGBA(col)
	c.state.StrokeEnabled = true
}

// NoStroke disables stroking.
func (c *Context) NoStroke() {
	c.state.StrokeEnabled = false
}

// SetWeight sets the stroke thickness in device pixels. Values below 1
// are clamped to 1.
func (c *Context) SetWeight(w int) {
	c.state.Weight = max(w, 1)
}

// SetRectMode sets how Rect reads its arguments.
func (c *Context) SetRectMode(m ShapeMode) {
	c.state.RectMode = m
}

// SetEllipseMode sets how Ellipse, Circle and Arc read their arguments.
func (c *Context) SetEllipseMode(m ShapeMode) {
	c.state.EllipseMode = m
}

// SetTextSize sets the text size in pixels.
func (c *Context) SetTextSize(size float64) {
	if size > 0 {
		c.state.TextSize = size
	}
}

// SetTextAlign sets the text anchor.
func (c *Context) SetTextAlign(x AlignX, y AlignY) {
	c.state.TextAlignX = x
	c.state.TextAlignY = y
}

// SetBlend enables or disables blending. Disabled blending overwrites
// pixels with the drawing color, alpha included.
func (c *Context) SetBlend(enabled bool) {
	c.state.Blend = enabled
}

// SetBlendMode sets the blend mode and enables blending.
func (c *Context) SetBlendMode(m BlendMode) {
	c.state.BlendMode = m
	c.state.Blend = true
}

// SetOverlap sets the diagonal-step correction for lines.
func (c *Context) SetOverlap(o LineOverlap) {
	c.state.Overlap = o
}

// Push saves the current drawing state onto the stack.
func (c *Context) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the drawing state saved by the matching Push.
// Pop on an empty stack does nothing.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		Logger().Debug("softpaint: Pop on empty state stack")
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// BeginFrame resets the drawing state to the defaults and empties the
// state stack. Surface contents are kept.
func (c *Context) BeginFrame() {
	if len(c.stack) > 0 {
		Logger().Debug("softpaint: unbalanced Push at frame start", "depth", len(c.stack))
	}
	c.state = DefaultState()
	c.stack = c.stack[:0]
}

// Identity resets the transform to identity.
func (c *Context) Identity() {
	c.state.Transform = Identity()
}

// Translate moves the origin by (x, y).
func (c *Context) Translate(x, y float64) {
	c.state.Transform = c.state.Transform.Multiply(Translate(x, y))
}

// Scale scales the coordinate system.
func (c *Context) Scale(x, y float64) {
	c.state.Transform = c.state.Transform.Multiply(Scale(x, y))
}

// Rotate rotates the coordinate system by angle radians.
func (c *Context) Rotate(angle float64) {
	c.state.Transform = c.state.Transform.Multiply(Rotate(angle))
}

// RotateAbout rotates by angle radians around (x, y).
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear shears the coordinate system.
func (c *Context) Shear(x, y float64) {
	c.state.Transform = c.state.Transform.Multiply(Shear(x, y))
}

// Transform multiplies the current transform by m. m is applied first.
func (c *Context) Transform(m Matrix) {
	c.state.Transform = c.state.Transform.Multiply(m)
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(m Matrix) {
	c.state.Transform = m
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state.Transform
}

// TransformPoint maps a user-space point to device space.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	p := c.state.Transform.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// SetPixel writes col at device pixel (x, y), honouring the blend state
// but not the transform.
func (c *Context) SetPixel(x, y int, col color.Color) {
	src := toNRGBA(col)
	if c.state.Blend {
		src = Blend(src, c.surface.Pixel(x, y), c.state.BlendMode)
	}
	c.surface.SetPixel(x, y, src)
}

// Point draws a square of side weight in the stroke color.
func (c *Context) Point(x, y float64) {
	if !c.state.StrokeEnabled {
		return
	}
	x, y = c.TransformPoint(x, y)
	c.backend.DrawPoint(c.surface, x, y, c.state.strokePaint())
}

// Line draws a segment in the stroke color and weight.
func (c *Context) Line(x1, y1, x2, y2 float64) {
	if !c.state.StrokeEnabled {
		return
	}
	x1, y1 = c.TransformPoint(x1, y1)
	x2, y2 = c.TransformPoint(x2, y2)
	c.backend.DrawLine(c.surface, x1, y1, x2, y2, c.state.strokePaint())
}

// Polygon fills and then strokes the closed shape through the given
// (x, y) pairs. It needs at least three pairs; otherwise it returns an
// error wrapping ErrInvalidGeometry and draws nothing.
func (c *Context) Polygon(coords ...float64) error {
	if err := checkCoords("Polygon", coords, 3); err != nil {
		return err
	}
	return c.shape(c.device(coords), true)
}

// Polyline strokes the open chain through the given (x, y) pairs. It needs
// at least two pairs.
func (c *Context) Polyline(coords ...float64) error {
	if err := checkCoords("Polyline", coords, 2); err != nil {
		return err
	}
	if !c.state.StrokeEnabled {
		return nil
	}
	return c.backend.DrawPolyline(c.surface, c.device(coords), c.state.strokePaint())
}

// shape fills then strokes device-space coordinates. Open shapes are only
// stroked along the given points but filled as if closed.
func (c *Context) shape(dev []float64, closed bool) error {
	if c.state.FillEnabled {
		if err := c.backend.FillPolygon(c.surface, dev, c.state.fillPaint()); err != nil {
			return err
		}
	}
	if !c.state.StrokeEnabled {
		return nil
	}
	if closed {
		return c.backend.DrawPolygon(c.surface, dev, c.state.strokePaint())
	}
	return c.backend.DrawPolyline(c.surface, dev, c.state.strokePaint())
}

// device maps user coordinates into the context's scratch buffer.
// The result is valid until the next call.
func (c *Context) device(coords []float64) []float64 {
	c.coords = c.coords[:0]
	m := c.state.Transform
	for i := 0; i+1 < len(coords); i += 2 {
		p := m.TransformPoint(Pt(coords[i], coords[i+1]))
		c.coords = append(c.coords, p.X, p.Y)
	}
	return c.coords
}
