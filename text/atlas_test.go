package text

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func quads(t *testing.T, q []float64) int {
	t.Helper()
	if len(q)%8 != 0 {
		t.Fatalf("layout length %d is not a multiple of 8", len(q))
	}
	return len(q) / 8
}

func TestBasicAtlasMetrics(t *testing.T) {
	a := NewBasicAtlas()
	m := a.Metrics(13)
	if m.Ascent != 11 || m.Descent != 2 || m.LineGap != 0 {
		t.Errorf("Metrics(13) = %+v, want ascent 11, descent 2, gap 0", m)
	}
	if got := m.LineHeight(); got != 13 {
		t.Errorf("LineHeight() = %v, want 13", got)
	}

	m = a.Metrics(26)
	if m.Ascent != 22 || m.Descent != 4 {
		t.Errorf("Metrics(26) = %+v, want doubled", m)
	}
}

func TestBasicAtlasLayout(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "Hi", 13)
	if n := quads(t, q); n != 2 {
		t.Fatalf("got %d quads, want 2", n)
	}

	// First glyph starts at the pen, top at -ascent.
	if q[0] != 0 || q[1] != -11 {
		t.Errorf("first quad origin = (%v, %v), want (0, -11)", q[0], q[1])
	}
	if q[3] != 13 {
		t.Errorf("glyph height = %v, want 13", q[3])
	}
	if q[2] <= 0 || q[2] > 7 {
		t.Errorf("glyph width = %v, want in (0, 7]", q[2])
	}
	// Destination and source boxes match at the native size.
	if q[2] != q[6] || q[3] != q[7] {
		t.Errorf("dest size %vx%v != source size %vx%v", q[2], q[3], q[6], q[7])
	}
	// Second glyph follows one advance later.
	if q[8] != 7 {
		t.Errorf("second quad x = %v, want 7", q[8])
	}
	// Distinct glyphs occupy distinct atlas cells.
	if q[4] == q[12] && q[5] == q[13] {
		t.Error("both glyphs share one atlas cell")
	}
}

func TestLayoutScales(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "A", 26)
	if n := quads(t, q); n != 1 {
		t.Fatalf("got %d quads, want 1", n)
	}
	if q[1] != -22 || q[3] != 26 {
		t.Errorf("scaled quad y=%v h=%v, want -22 and 26", q[1], q[3])
	}
	if q[7] != 13 {
		t.Errorf("source height = %v, want 13 (unscaled)", q[7])
	}
}

func TestLayoutNewline(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "A\nB", 13)
	if n := quads(t, q); n != 2 {
		t.Fatalf("got %d quads, want 2", n)
	}
	if q[8] != 0 {
		t.Errorf("second line x = %v, want 0", q[8])
	}
	if q[9]-q[1] != 13 {
		t.Errorf("line spacing = %v, want 13", q[9]-q[1])
	}
}

func TestLayoutReusesGlyphs(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "AA", 13)
	if q[4] != q[12] || q[5] != q[13] {
		t.Error("repeated glyph was rasterized twice")
	}
}

func TestLayoutAppends(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "A", 13)
	q = a.Layout(q, "B", 13)
	if n := quads(t, q); n != 2 {
		t.Errorf("got %d quads after two calls, want 2", n)
	}
}

func TestLayoutNormalizes(t *testing.T) {
	a, err := NewGoRegularAtlas(16)
	if err != nil {
		t.Fatal(err)
	}
	// "e" followed by a combining acute accent composes to U+00E9.
	decomposed := a.Layout(nil, "e\u0301", 16)
	composed := a.Layout(nil, "\u00e9", 16)
	if n := quads(t, decomposed); n != 1 {
		t.Fatalf("got %d quads, want 1", n)
	}
	if len(decomposed) != len(composed) {
		t.Fatalf("decomposed layout has %d values, composed %d", len(decomposed), len(composed))
	}
	for i := range composed {
		if decomposed[i] != composed[i] {
			t.Errorf("value %d = %v, want %v", i, decomposed[i], composed[i])
		}
	}
}

func TestLayoutFallbackGlyph(t *testing.T) {
	a := NewBasicAtlas()
	for _, s := range []string{"\u00e9", "e\u0301"} {
		if n := quads(t, a.Layout(nil, s, 13)); n != 1 {
			t.Errorf("Layout(%q) gave %d quads, want the replacement glyph", s, n)
		}
	}

	err := a.Preload("caf\u00e9")
	var missing *MissingGlyphError
	if !errors.As(err, &missing) {
		t.Fatalf("Preload() error = %v, want MissingGlyphError", err)
	}
	if missing.Rune != '\u00e9' {
		t.Errorf("missing rune = %q, want %q", missing.Rune, '\u00e9')
	}
}

func TestAdvance(t *testing.T) {
	a := NewBasicAtlas()
	tests := []struct {
		name string
		s    string
		size float64
		want float64
	}{
		{"empty", "", 13, 0},
		{"two", "Hi", 13, 14},
		{"scaled", "Hi", 26, 28},
		{"widest line", "a\nabc\nab", 13, 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Advance(tt.s, tt.size); got != tt.want {
				t.Errorf("Advance(%q, %v) = %v, want %v", tt.s, tt.size, got, tt.want)
			}
		})
	}
}

func TestAtlasCoverage(t *testing.T) {
	a := NewBasicAtlas()
	q := a.Layout(nil, "H", 13)
	img, ok := a.Atlas().(*image.Gray)
	if !ok {
		t.Fatalf("Atlas() is %T, want *image.Gray", a.Atlas())
	}
	u, v, w, h := int(q[4]), int(q[5]), int(q[6]), int(q[7])
	lit := 0
	for y := v; y < v+h; y++ {
		for x := u; x < u+w; x++ {
			if img.GrayAt(x, y).Y > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("glyph cell is blank")
	}
}

func TestAtlasGrows(t *testing.T) {
	a := newAtlas(basicfont.Face7x13, 13, 16)
	first := a.Layout(nil, "A", 13)
	before := a.Atlas().Bounds()

	a.Layout(nil, "BCDEFGHIJKLMNOP", 13)
	after := a.Atlas().Bounds()
	if after.Dx() < before.Dx() || after.Dy() <= before.Dy() {
		t.Fatalf("atlas did not grow: %v -> %v", before, after)
	}

	// Existing glyphs keep their cell.
	again := a.Layout(nil, "A", 13)
	if first[4] != again[4] || first[5] != again[5] {
		t.Errorf("glyph moved from (%v, %v) to (%v, %v)", first[4], first[5], again[4], again[5])
	}
}

func TestPreload(t *testing.T) {
	a := NewBasicAtlas()
	if err := a.Preload("Hello\nWorld"); err != nil {
		t.Errorf("Preload() error = %v", err)
	}
}

func TestParseOpenTypeEmpty(t *testing.T) {
	_, err := ParseOpenType(nil, 12)
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseOpenType(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestParseOpenTypeInvalid(t *testing.T) {
	if _, err := ParseOpenType([]byte("not a font"), 12); err == nil {
		t.Error("ParseOpenType(garbage) succeeded")
	}
}

func TestGoRegularAtlas(t *testing.T) {
	a, err := NewGoRegularAtlas(24)
	if err != nil {
		t.Fatalf("NewGoRegularAtlas() error = %v", err)
	}
	m := a.Metrics(24)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("Metrics() = %+v, want positive ascent and descent", m)
	}
	q := a.Layout(nil, "Go go", 24)
	if n := quads(t, q); n < 4 || n > 5 {
		t.Errorf("got %d quads, want 4 or 5", n)
	}
	if w := a.Advance("Go", 24); w <= 0 {
		t.Errorf("Advance() = %v, want > 0", w)
	}
}

func TestMissingGlyphError(t *testing.T) {
	err := error(&MissingGlyphError{Rune: 'x'})
	if !errors.Is(err, ErrNoGlyph) {
		t.Error("MissingGlyphError does not unwrap to ErrNoGlyph")
	}
	if err.Error() != `text: no glyph for 'x' (U+0078)` {
		t.Errorf("Error() = %q", err.Error())
	}
}
