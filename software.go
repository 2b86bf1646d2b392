package softpaint

import (
	"image/color"

	"github.com/gogpu/softpaint/internal/blend"
	"github.com/gogpu/softpaint/internal/raster"
)

// SoftwareBackend rasterizes primitives on the CPU with integer Bresenham
// lines, span-reconstructed fills and inverse-affine quad sampling.
//
// Every operation collects its pixels in a deduplicating point set, writes
// each pixel exactly once, then clears the set for reuse. A pixel is
// therefore never blended twice by the same primitive.
type SoftwareBackend struct {
	points  *raster.PointSet
	filler  raster.Filler
	corners []raster.Point
}

var _ Backend = (*SoftwareBackend)(nil)

// NewSoftwareBackend creates a software backend with empty scratch buffers.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{
		points:  raster.NewPointSet(256),
		corners: make([]raster.Point, 0, 16),
	}
}

// DrawPoint draws a square of side p.Weight centred on (x, y).
func (b *SoftwareBackend) DrawPoint(s Surface, x, y float64, p Paint) {
	if !finite(x) || !finite(y) {
		Logger().Debug("softpaint: non-finite point", "x", x, "y", y)
		return
	}
	xi, yi := raster.Round(x), raster.Round(y)
	w := p.weight()
	if w == 1 {
		b.points.Add(xi, yi)
	} else {
		x0 := xi - w/2
		raster.Line(b.points, x0, yi, x0+w-1, yi, w, raster.OverlapNone)
	}
	b.resolve(s, p)
}

// DrawLine draws a segment with thickness p.Weight.
func (b *SoftwareBackend) DrawLine(s Surface, x1, y1, x2, y2 float64, p Paint) {
	if !finite(x1) || !finite(y1) || !finite(x2) || !finite(y2) {
		Logger().Debug("softpaint: non-finite line", "x1", x1, "y1", y1, "x2", x2, "y2", y2)
		return
	}
	raster.Line(b.points,
		raster.Round(x1), raster.Round(y1), raster.Round(x2), raster.Round(y2),
		p.weight(), p.Overlap)
	b.resolve(s, p)
}

// DrawPolygon strokes a closed outline.
func (b *SoftwareBackend) DrawPolygon(s Surface, coords []float64, p Paint) error {
	if err := checkCoords("DrawPolygon", coords, 3); err != nil {
		return err
	}
	raster.Polyline(b.points, b.toPoints(coords), true, p.weight(), p.Overlap)
	b.resolve(s, p)
	return nil
}

// DrawPolyline strokes an open chain.
func (b *SoftwareBackend) DrawPolyline(s Surface, coords []float64, p Paint) error {
	if err := checkCoords("DrawPolyline", coords, 2); err != nil {
		return err
	}
	raster.Polyline(b.points, b.toPoints(coords), false, p.weight(), p.Overlap)
	b.resolve(s, p)
	return nil
}

// FillPolygon draws the outline and then reconstructs the interior from it.
// Interior pixels are clipped to the surface.
func (b *SoftwareBackend) FillPolygon(s Surface, coords []float64, p Paint) error {
	if err := checkCoords("FillPolygon", coords, 3); err != nil {
		return err
	}
	raster.Polyline(b.points, b.toPoints(coords), true, p.weight(), p.Overlap)
	b.filler.Fill(b.points, s.Width(), s.Height())
	b.resolve(s, p)
	return nil
}

// DrawTexturedQuad copies texels into q. With p.Blend set the texels are
// composited with p.Mode, otherwise they replace the surface pixels.
func (b *SoftwareBackend) DrawTexturedQuad(s Surface, q Quad, tex Texture, src SourceRect, p Paint) {
	sampler, ok := b.rasterQuad(s, q, tex, src, "DrawTexturedQuad")
	if !ok {
		return
	}
	fn := blend.Get(p.Mode)
	tw, th := tex.Width(), tex.Height()
	w, h := s.Width(), s.Height()
	for _, pt := range b.points.Points() {
		if pt.X < 0 || pt.Y < 0 || pt.X >= w || pt.Y >= h {
			continue
		}
		u, v := sampler.Sample(pt.X, pt.Y)
		c := tex.Pixel(raster.Clamp(u, tw), raster.Clamp(v, th))
		if p.Blend {
			c = fn(c, s.Pixel(pt.X, pt.Y))
		}
		s.SetPixel(pt.X, pt.Y, c)
	}
	b.points.Reset()
}

// DrawGlyphQuad tints q with p.Color, scaling its alpha by the atlas red
// channel. Glyphs always composite with p.Mode so their edges blend into
// the background.
func (b *SoftwareBackend) DrawGlyphQuad(s Surface, q Quad, atlas Texture, src SourceRect, p Paint) {
	sampler, ok := b.rasterQuad(s, q, atlas, src, "DrawGlyphQuad")
	if !ok {
		return
	}
	fn := blend.Get(p.Mode)
	tw, th := atlas.Width(), atlas.Height()
	w, h := s.Width(), s.Height()
	for _, pt := range b.points.Points() {
		if pt.X < 0 || pt.Y < 0 || pt.X >= w || pt.Y >= h {
			continue
		}
		u, v := sampler.Sample(pt.X, pt.Y)
		coverage := atlas.Pixel(raster.Clamp(u, tw), raster.Clamp(v, th)).R
		a := uint8((int(p.Color.A)*int(coverage) + 127) / 255)
		if a == 0 {
			continue
		}
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: a}
		s.SetPixel(pt.X, pt.Y, fn(c, s.Pixel(pt.X, pt.Y)))
	}
	b.points.Reset()
}

// rasterQuad collects the pixels covered by q and returns the sampler that
// maps them into src. It reports false when tex has no pixels or a corner
// of q is not finite.
func (b *SoftwareBackend) rasterQuad(s Surface, q Quad, tex Texture, src SourceRect, op string) (raster.QuadSampler, bool) {
	if tex == nil || tex.Width() <= 0 || tex.Height() <= 0 {
		Logger().Warn("softpaint: empty texture", "op", op)
		return raster.QuadSampler{}, false
	}
	for _, c := range [...]Point{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight} {
		if !finite(c.X) || !finite(c.Y) {
			Logger().Debug("softpaint: non-finite quad", "op", op, "corner", c)
			return raster.QuadSampler{}, false
		}
	}

	b.corners = raster.QuadOutline(b.corners[:0],
		q.TopLeft.X, q.TopLeft.Y,
		q.TopRight.X, q.TopRight.Y,
		q.BottomRight.X, q.BottomRight.Y,
		q.BottomLeft.X, q.BottomLeft.Y)
	raster.Polyline(b.points, b.corners, true, 1, raster.OverlapNone)
	b.filler.Fill(b.points, s.Width(), s.Height())

	sampler := raster.NewQuadSampler(
		q.TopLeft.X, q.TopLeft.Y,
		q.TopRight.X, q.TopRight.Y,
		q.BottomLeft.X, q.BottomLeft.Y,
		src.U1, src.V1, src.U2, src.V2)
	if sampler.Degenerate() {
		Logger().Debug("softpaint: degenerate quad", "op", op,
			"tl", q.TopLeft, "tr", q.TopRight, "bl", q.BottomLeft)
	}
	return sampler, true
}

// resolve writes every collected pixel inside the surface, then clears the
// point set.
func (b *SoftwareBackend) resolve(s Surface, p Paint) {
	w, h := s.Width(), s.Height()
	if p.Blend {
		fn := blend.Get(p.Mode)
		for _, pt := range b.points.Points() {
			if pt.X < 0 || pt.Y < 0 || pt.X >= w || pt.Y >= h {
				continue
			}
			s.SetPixel(pt.X, pt.Y, fn(p.Color, s.Pixel(pt.X, pt.Y)))
		}
	} else {
		for _, pt := range b.points.Points() {
			if pt.X < 0 || pt.Y < 0 || pt.X >= w || pt.Y >= h {
				continue
			}
			s.SetPixel(pt.X, pt.Y, p.Color)
		}
	}
	b.points.Reset()
}

// toPoints rounds a flat coordinate list into the corner scratch buffer.
func (b *SoftwareBackend) toPoints(coords []float64) []raster.Point {
	b.corners = b.corners[:0]
	for i := 0; i+1 < len(coords); i += 2 {
		b.corners = append(b.corners, raster.Point{X: raster.Round(coords[i]), Y: raster.Round(coords[i+1])})
	}
	return b.corners
}
