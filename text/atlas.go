package text

import (
	"image"
	"strings"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// defaultAtlasSize is the initial width and height of the atlas image.
const defaultAtlasSize = 256

// glyphPadding keeps neighbouring glyphs from bleeding into each other
// when a quad samples its edge pixels.
const glyphPadding = 1

// glyphEntry locates one rasterized glyph.
type glyphEntry struct {
	rect    image.Rectangle // atlas pixels; empty for blank glyphs
	offset  image.Point     // top-left relative to the pen on the baseline
	advance fixed.Int26_6
	ok      bool
}

// Atlas is a glyph source backed by a font.Face.
//
// Glyphs are rasterized lazily into a grayscale image with a shelf packer.
// When the image fills up its height is doubled and existing glyphs keep
// their coordinates. Atlas is safe for concurrent use.
type Atlas struct {
	mu      sync.Mutex
	face    font.Face
	size    float64
	metrics Metrics
	img     *image.Gray
	glyphs  map[rune]glyphEntry

	// shelf packer cursor
	penX, penY int
	shelfH     int
}

// NewAtlas creates an atlas for face. size is the pixel size the face was
// built for; Layout scales quads relative to it.
func NewAtlas(face font.Face, size float64) *Atlas {
	return newAtlas(face, size, defaultAtlasSize)
}

func newAtlas(face font.Face, size float64, dim int) *Atlas {
	if size <= 0 {
		size = fixedToFloat(face.Metrics().Height)
	}
	return &Atlas{
		face:    face,
		size:    size,
		metrics: metricsFromFace(face.Metrics()),
		img:     image.NewGray(image.Rect(0, 0, dim, dim)),
		glyphs:  make(map[rune]glyphEntry),
	}
}

// NewBasicAtlas returns an atlas for the built-in 7x13 bitmap face.
// It needs no font files and never fails.
func NewBasicAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13, 13)
}

// ParseOpenType parses TrueType or OpenType data and builds an atlas that
// rasterizes it at size pixels.
func ParseOpenType(data []byte, size float64) (*Atlas, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return NewAtlas(face, size), nil
}

// NewGoRegularAtlas returns an atlas for the Go Regular font at size pixels.
func NewGoRegularAtlas(size float64) (*Atlas, error) {
	return ParseOpenType(goregular.TTF, size)
}

// Size returns the pixel size the glyphs are rasterized at.
func (a *Atlas) Size() float64 {
	return a.size
}

// Atlas returns the glyph image. The returned image may be replaced by a
// larger one after later Layout calls; fetch it again after each Layout.
func (a *Atlas) Atlas() image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.img
}

// Metrics returns the face metrics scaled to size.
func (a *Atlas) Metrics(size float64) Metrics {
	return a.metrics.Scale(a.scale(size))
}

// Preload rasterizes every glyph of s. It reports the first rune the face
// cannot render.
func (a *Atlas) Preload(s string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range norm.NFC.String(s) {
		if r == '\n' {
			continue
		}
		if g := a.glyph(r); !g.ok {
			return &MissingGlyphError{Rune: r}
		}
	}
	return nil
}

// Advance returns the width of the widest line of s at size pixels,
// kerning included.
func (a *Atlas) Advance(s string, size float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	scale := a.scale(size)
	var widest fixed.Int26_6
	for _, line := range strings.Split(norm.NFC.String(s), "\n") {
		var pen fixed.Int26_6
		prev := rune(-1)
		for _, r := range line {
			if prev >= 0 {
				pen += a.face.Kern(prev, r)
			}
			pen += a.glyph(r).advance
			prev = r
		}
		widest = max(widest, pen)
	}
	return fixedToFloat(widest) * scale
}

// Layout appends one quad per visible glyph of s to dst and returns the
// extended slice. The pen starts at (0, 0) on the first baseline; each
// newline moves it down one line height and back to x = 0.
func (a *Atlas) Layout(dst []float64, s string, size float64) []float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	scale := a.scale(size)
	lineHeight := a.metrics.LineHeight() * scale
	var pen fixed.Int26_6
	var baseline float64
	prev := rune(-1)

	for _, r := range norm.NFC.String(s) {
		if r == '\n' {
			pen = 0
			baseline += lineHeight
			prev = -1
			continue
		}
		if prev >= 0 {
			pen += a.face.Kern(prev, r)
		}
		prev = r

		g := a.glyph(r)
		if !g.rect.Empty() {
			w, h := g.rect.Dx(), g.rect.Dy()
			dst = append(dst,
				fixedToFloat(pen)*scale+float64(g.offset.X)*scale,
				baseline+float64(g.offset.Y)*scale,
				float64(w)*scale,
				float64(h)*scale,
				float64(g.rect.Min.X),
				float64(g.rect.Min.Y),
				float64(w),
				float64(h),
			)
		}
		pen += g.advance
	}
	return dst
}

func (a *Atlas) scale(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size / a.size
}

// glyph returns the cached entry for r, rasterizing it on first use.
// Runes the face does not cover keep ok false but still get the face's
// replacement mask, if it returns one. a.mu must be held.
func (a *Atlas) glyph(r rune) glyphEntry {
	if g, ok := a.glyphs[r]; ok {
		return g
	}

	dr, mask, maskp, advance, ok := a.face.Glyph(fixed.Point26_6{}, r)
	g := glyphEntry{advance: advance, ok: ok}
	if !dr.Empty() && mask != nil {
		g.offset = dr.Min
		g.rect = a.place(dr.Dx(), dr.Dy())
		xdraw.DrawMask(a.img, g.rect, image.White, image.Point{}, mask, maskp, xdraw.Src)
	}
	a.glyphs[r] = g
	return g
}

// place reserves a w x h cell and returns its rectangle.
func (a *Atlas) place(w, h int) image.Rectangle {
	bounds := a.img.Bounds()
	if a.penX+w+glyphPadding > bounds.Dx() {
		a.penX = 0
		a.penY += a.shelfH + glyphPadding
		a.shelfH = 0
	}
	if w+glyphPadding > bounds.Dx() || a.penY+h+glyphPadding > bounds.Dy() {
		a.grow(w+glyphPadding, a.penY+h+glyphPadding)
	}

	r := image.Rect(a.penX, a.penY, a.penX+w, a.penY+h)
	a.penX += w + glyphPadding
	a.shelfH = max(a.shelfH, h)
	return r
}

// grow enlarges the atlas to at least minW x minH, copying existing glyphs
// to the same coordinates.
func (a *Atlas) grow(minW, minH int) {
	old := a.img.Bounds()
	w, h := old.Dx(), old.Dy()
	for w < minW {
		w *= 2
	}
	for h < minH {
		h *= 2
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.Copy(img, image.Point{}, a.img, old, xdraw.Src, nil)
	a.img = img
}
