package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/softpaint"
)

func renderScene(t *testing.T, src, dir string) (*softpaint.Context, error) {
	t.Helper()
	s, err := ParseScene(strings.NewReader(src), dir)
	if err != nil {
		t.Fatalf("ParseScene() error = %v", err)
	}
	dc, err := softpaint.NewContext(s.Width, s.Height)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return dc, s.Render(dc)
}

func TestDefaultSceneRenders(t *testing.T) {
	s, err := ParseScene(bytes.NewReader(defaultScene), "")
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 320 || s.Height != 240 {
		t.Errorf("default scene size = %dx%d, want 320x240", s.Width, s.Height)
	}
	dc, err := softpaint.NewContext(s.Width, s.Height)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Render(dc); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestSceneRect(t *testing.T) {
	dc, err := renderScene(t, `
width: 8
height: 8
background: black
commands:
  - op: fill
    color: red
  - op: nostroke
  - op: rect
    args: [2, 2, 4, 4]
`, "")
	if err != nil {
		t.Fatal(err)
	}
	red := color.NRGBA{R: 255, A: 255}
	black := color.NRGBA{A: 255}
	if got := dc.Surface().Pixel(3, 3); got != red {
		t.Errorf("Pixel(3, 3) = %v, want %v", got, red)
	}
	if got := dc.Surface().Pixel(6, 6); got != black {
		t.Errorf("Pixel(6, 6) = %v, want %v", got, black)
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  string
		want string
	}{
		{"unknown op", "op: spiral", `unknown op "spiral"`},
		{"short args", "op: line\n    args: [1, 2]", "need 4 args"},
		{"bad color", "op: fill\n    color: chartreuse", "invalid color"},
		{"bad blend", "op: blend\n    mode: Overlay", "unknown blend mode"},
		{"bad arc mode", "op: arc\n    args: [5, 5, 4, 4, 0, 90]\n    mode: wedge", "unknown arc mode"},
		{"bad align", "op: textalign\n    mode: up", "invalid horizontal alignment"},
		{"short polygon", "op: polygon\n    args: [1, 2, 3, 4]", "need at least 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderScene(t, "width: 10\nheight: 10\ncommands:\n  - "+tt.cmd+"\n", "")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Render() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseSceneUnknownField(t *testing.T) {
	if _, err := ParseScene(strings.NewReader("width: 4\ncolour: red\n"), ""); err == nil {
		t.Error("ParseScene() accepted an unknown field")
	}
	if _, err := ParseScene(strings.NewReader(""), ""); err == nil {
		t.Error("ParseScene() accepted an empty document")
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in    string
		wantX softpaint.AlignX
		wantY softpaint.AlignY
	}{
		{"left", softpaint.AlignLeft, softpaint.AlignBaseline},
		{"center middle", softpaint.AlignCenter, softpaint.AlignMiddle},
		{"Right Top", softpaint.AlignRight, softpaint.AlignTop},
		{"left bottom", softpaint.AlignLeft, softpaint.AlignBottom},
	}
	for _, tt := range tests {
		x, y, err := parseAlign(tt.in)
		if err != nil {
			t.Errorf("parseAlign(%q) error = %v", tt.in, err)
			continue
		}
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("parseAlign(%q) = %v, %v; want %v, %v", tt.in, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestSceneImageRelativePath(t *testing.T) {
	dir := t.TempDir()
	tex, err := softpaint.NewPixmap(2, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	blue := color.NRGBA{B: 255, A: 255}
	tex.Clear(blue)
	if err := tex.SavePNG(filepath.Join(dir, "tex.png")); err != nil {
		t.Fatal(err)
	}

	dc, err := renderScene(t, `
width: 6
height: 6
commands:
  - op: image
    args: [1, 1]
    path: tex.png
`, dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := dc.Surface().Pixel(p[0], p[1]); got != blue {
			t.Errorf("Pixel%v = %v, want %v", p, got, blue)
		}
	}
	if got := dc.Surface().Pixel(3, 3); got.A != 0 {
		t.Errorf("Pixel(3, 3) = %v, want transparent", got)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scene := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(scene, []byte("width: 4\nheight: 4\nbackground: white\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stderr bytes.Buffer
	if code := run([]string{"--scene", scene, "--output", out, "--channels", "1"}, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	pm, err := softpaint.LoadTexture(out)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != 4 || pm.Height() != 4 {
		t.Errorf("output size = %dx%d, want 4x4", pm.Width(), pm.Height())
	}
	if got := pm.Pixel(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Pixel(0, 0) = %v, want white", got)
	}

	if code := run([]string{"--channels", "7", "--output", out}, &stderr); code != 1 {
		t.Errorf("run() with 7 channels = %d, want 1", code)
	}
}
