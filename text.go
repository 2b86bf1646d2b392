package softpaint

import (
	"image"
	"strings"

	"github.com/gogpu/softpaint/text"
)

// GlyphSource lays text out as quads into a coverage atlas.
// *text.Atlas implements it.
type GlyphSource interface {
	// Layout appends eight numbers per visible glyph to dst:
	// x, y, w, h of the destination box relative to the pen on the first
	// baseline, then u, v, uw, vh of the source box in atlas pixels.
	Layout(dst []float64, s string, size float64) []float64

	// Advance returns the width of the widest line of s.
	Advance(s string, size float64) float64

	// Metrics returns the font metrics at size.
	Metrics(size float64) text.Metrics

	// Atlas returns the coverage image. Intensity is read from the red
	// channel. The image may change after Layout.
	Atlas() image.Image
}

var _ GlyphSource = (*text.Atlas)(nil)

// glyphSource returns the configured glyph source, creating the built-in
// bitmap atlas on first use.
func (c *Context) glyphSource() (GlyphSource, error) {
	if c.glyphs != nil {
		return c.glyphs, nil
	}
	if c.glyphsSet {
		return nil, ErrNoGlyphSource
	}
	c.glyphs = text.NewBasicAtlas()
	return c.glyphs, nil
}

// Text draws s in the fill color with its anchor at (x, y), aligned by the
// text alignment. Lines are separated by '\n'. Glyph boxes are mapped
// through the current transform.
func (c *Context) Text(s string, x, y float64) error {
	g, err := c.glyphSource()
	if err != nil {
		return err
	}
	if s == "" || !c.state.FillEnabled {
		return nil
	}

	size := c.state.TextSize
	m := g.Metrics(size)
	lines := strings.Split(s, "\n")
	lineHeight := m.LineHeight()

	switch c.state.TextAlignY {
	case AlignTop:
		y += m.Ascent
	case AlignMiddle:
		y += (m.Ascent-m.Descent)/2 - float64(len(lines)-1)*lineHeight/2
	case AlignBottom:
		y -= m.Descent + float64(len(lines)-1)*lineHeight
	}

	p := Paint{Color: c.state.Fill, Blend: true, Mode: c.state.BlendMode}
	if !c.state.Blend {
		p.Mode = BlendSourceOver
	}
	for i, line := range lines {
		lx := x
		switch c.state.TextAlignX {
		case AlignCenter:
			lx -= g.Advance(line, size) / 2
		case AlignRight:
			lx -= g.Advance(line, size)
		}

		c.quads = g.Layout(c.quads[:0], line, size)
		atlas := ImageTexture(g.Atlas())
		ly := y + float64(i)*lineHeight
		for j := 0; j+8 <= len(c.quads); j += 8 {
			q := c.quads[j : j+8]
			gx, gy := lx+q[0], ly+q[1]
			dst := RectQuad(gx, gy, gx+max(q[2]-1, 0), gy+max(q[3]-1, 0)).Transform(c.state.Transform)
			src := SourceRect{U1: q[4], V1: q[5], U2: q[4] + max(q[6]-1, 0), V2: q[5] + max(q[7]-1, 0)}
			c.backend.DrawGlyphQuad(c.surface, dst, atlas, src, p)
		}
	}
	return nil
}

// TextWidth returns the width of the widest line of s at the current text
// size, in user units.
func (c *Context) TextWidth(s string) float64 {
	g, err := c.glyphSource()
	if err != nil {
		return 0
	}
	return g.Advance(s, c.state.TextSize)
}

// TextAscent returns the font ascent at the current text size.
func (c *Context) TextAscent() float64 {
	g, err := c.glyphSource()
	if err != nil {
		return 0
	}
	return g.Metrics(c.state.TextSize).Ascent
}

// TextDescent returns the font descent at the current text size.
func (c *Context) TextDescent() float64 {
	g, err := c.glyphSource()
	if err != nil {
		return 0
	}
	return g.Metrics(c.state.TextSize).Descent
}
