package softpaint

import (
	"errors"
	"testing"

	"github.com/gogpu/softpaint/text"
)

// textBounds returns the bounding box of all drawn pixels.
func textBounds(t *testing.T, s Surface) (x0, y0, x1, y1 int) {
	t.Helper()
	lit := litPixels(s)
	if len(lit) == 0 {
		t.Fatal("no text pixels drawn")
	}
	x0, y0 = s.Width(), s.Height()
	x1, y1 = -1, -1
	for p := range lit {
		x0, y0 = min(x0, p[0]), min(y0, p[1])
		x1, y1 = max(x1, p[0]), max(y1, p[1])
	}
	return x0, y0, x1, y1
}

func TestTextBaseline(t *testing.T) {
	dc := newTestContext(t, 20, 20)
	dc.SetFill(Black)
	dc.SetTextSize(13)
	if err := dc.Text("H", 2, 12); err != nil {
		t.Fatal(err)
	}
	x0, y0, x1, y1 := textBounds(t, dc.Surface())
	// The 7x13 cell spans 11 pixels above the baseline and 2 below.
	if x0 < 2 || x1 > 8 || y0 < 1 || y1 > 13 {
		t.Errorf("glyph bounds (%d, %d)-(%d, %d) outside its cell", x0, y0, x1, y1)
	}
	if y1 >= 12 {
		t.Errorf("'H' reaches below the baseline: y1 = %d", y1)
	}
}

func TestTextAlign(t *testing.T) {
	tests := []struct {
		name   string
		ax     AlignX
		ay     AlignY
		check  func(x0, y0, x1, y1 int) bool
		expect string
	}{
		{"right", AlignRight, AlignBaseline, func(_, _, x1, _ int) bool { return x1 < 20 }, "ends left of x=20"},
		{"center", AlignCenter, AlignBaseline, func(x0, _, x1, _ int) bool { return x0 < 20 && x1 > 20 }, "straddles x=20"},
		{"top", AlignLeft, AlignTop, func(_, y0, _, _ int) bool { return y0 >= 10 }, "starts below y=10"},
		{"bottom", AlignLeft, AlignBottom, func(_, _, _, y1 int) bool { return y1 < 10 }, "ends above y=10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := newTestContext(t, 40, 30)
			dc.SetFill(Black)
			dc.SetTextSize(13)
			dc.SetTextAlign(tt.ax, tt.ay)
			if err := dc.Text("HH", 20, 10); err != nil {
				t.Fatal(err)
			}
			x0, y0, x1, y1 := textBounds(t, dc.Surface())
			if !tt.check(x0, y0, x1, y1) {
				t.Errorf("bounds (%d, %d)-(%d, %d): want text that %s", x0, y0, x1, y1, tt.expect)
			}
		})
	}
}

func TestTextMultiline(t *testing.T) {
	dc := newTestContext(t, 20, 40)
	dc.SetFill(Black)
	dc.SetTextSize(13)
	if err := dc.Text("H\nH", 0, 11); err != nil {
		t.Fatal(err)
	}
	_, y0, _, y1 := textBounds(t, dc.Surface())
	if y1-y0 < 13 {
		t.Errorf("two lines span only %d rows", y1-y0+1)
	}
}

func TestTextNoFill(t *testing.T) {
	dc := newTestContext(t, 20, 20)
	dc.NoFill()
	if err := dc.Text("H", 2, 12); err != nil {
		t.Fatal(err)
	}
	if n := len(litPixels(dc.Surface())); n != 0 {
		t.Errorf("text with fill disabled drew %d pixels", n)
	}
}

func TestTextDisabledGlyphSource(t *testing.T) {
	dc := newTestContext(t, 20, 20, WithGlyphSource(nil))
	if err := dc.Text("H", 2, 12); !errors.Is(err, ErrNoGlyphSource) {
		t.Errorf("Text() error = %v, want ErrNoGlyphSource", err)
	}
	if w := dc.TextWidth("H"); w != 0 {
		t.Errorf("TextWidth() = %v, want 0", w)
	}
}

func TestTextMetrics(t *testing.T) {
	dc := newTestContext(t, 4, 4)
	dc.SetTextSize(13)
	if got := dc.TextWidth("Hi"); got != 14 {
		t.Errorf("TextWidth(Hi) = %v, want 14", got)
	}
	if got := dc.TextAscent(); got != 11 {
		t.Errorf("TextAscent() = %v, want 11", got)
	}
	if got := dc.TextDescent(); got != 2 {
		t.Errorf("TextDescent() = %v, want 2", got)
	}
	dc.SetTextSize(26)
	if got := dc.TextWidth("Hi"); got != 28 {
		t.Errorf("TextWidth(Hi) at 26 = %v, want 28", got)
	}
}

func TestTextCustomGlyphSource(t *testing.T) {
	atlas, err := text.NewGoRegularAtlas(16)
	if err != nil {
		t.Fatal(err)
	}
	dc := newTestContext(t, 80, 30, WithGlyphSource(atlas))
	dc.SetFill(Black)
	dc.SetTextSize(16)
	if err := dc.Text("Go", 4, 20); err != nil {
		t.Fatal(err)
	}
	x0, _, x1, y1 := textBounds(t, dc.Surface())
	if x0 < 3 || x1 > 4+int(dc.TextWidth("Go"))+1 || y1 > 25 {
		t.Errorf("text bounds out of place: x %d..%d, bottom %d", x0, x1, y1)
	}
}
