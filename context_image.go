package softpaint

// DrawImage draws the whole texture into the rectangle (x, y, w, h), mapped
// through the current transform. A zero w or h uses the texture size.
// With an identity transform and the texture's own size the pixels are
// copied exactly.
func (c *Context) DrawImage(tex Texture, x, y, w, h float64) {
	if tex == nil {
		Logger().Warn("softpaint: DrawImage with nil texture")
		return
	}
	tw, th := float64(tex.Width()), float64(tex.Height())
	c.DrawImageRect(tex, x, y, w, h, 0, 0, tw, th)
}

// DrawImageRect draws the source rectangle (sx, sy, sw, sh) of tex into the
// rectangle (x, y, w, h). A zero w or h uses the source size.
//
// The destination covers pixels x <= px < x+w like Rect does; the source
// rectangle is sampled with nearest-neighbour lookups.
func (c *Context) DrawImageRect(tex Texture, x, y, w, h, sx, sy, sw, sh float64) {
	if tex == nil {
		Logger().Warn("softpaint: DrawImageRect with nil texture")
		return
	}
	if w == 0 {
		w = sw
	}
	if h == 0 {
		h = sh
	}
	if w <= 0 || h <= 0 || sw <= 0 || sh <= 0 {
		return
	}
	q := RectQuad(x, y, x+max(w-1, 0), y+max(h-1, 0)).Transform(c.state.Transform)
	src := SourceRect{U1: sx, V1: sy, U2: sx + max(sw-1, 0), V2: sy + max(sh-1, 0)}
	p := Paint{Blend: c.state.Blend, Mode: c.state.BlendMode}
	c.backend.DrawTexturedQuad(c.surface, q, tex, src, p)
}
