package main

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/softpaint"
)

//go:embed default_scene.yaml
var defaultScene []byte

// Scene is a drawing described as a list of context commands.
type Scene struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	Channels   int       `yaml:"channels"`
	Background string    `yaml:"background"`
	Commands   []Command `yaml:"commands"`

	// dir resolves relative image paths.
	dir string
}

// Command is one drawing call. Op names the call; the other fields are
// read according to Op.
type Command struct {
	Op    string    `yaml:"op"`
	Args  []float64 `yaml:"args"`
	Color string    `yaml:"color"`
	Mode  string    `yaml:"mode"`
	Text  string    `yaml:"text"`
	Path  string    `yaml:"path"`
}

// ParseScene decodes a YAML scene. Relative image paths are resolved
// against dir.
func ParseScene(r io.Reader, dir string) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("scene: empty document")
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	s.dir = dir
	return &s, nil
}

// Render draws every command of s onto dc, stopping at the first failure.
func (s *Scene) Render(dc *softpaint.Context) error {
	if s.Background != "" {
		col, err := parseColor(s.Background)
		if err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
		dc.Background(col)
	}
	for i, cmd := range s.Commands {
		if err := s.run(dc, cmd); err != nil {
			return fmt.Errorf("scene: command %d (%s): %w", i, cmd.Op, err)
		}
	}
	return nil
}

func (s *Scene) run(dc *softpaint.Context, cmd Command) error {
	a := cmd.Args
	switch strings.ToLower(cmd.Op) {
	case "fill":
		col, err := parseColor(cmd.Color)
		if err != nil {
			return err
		}
		dc.SetFill(col)
	case "nofill":
		dc.NoFill()
	case "stroke":
		col, err := parseColor(cmd.Color)
		if err != nil {
			return err
		}
		dc.SetStroke(col)
	case "nostroke":
		dc.NoStroke()
	case "weight":
		if err := need(a, 1); err != nil {
			return err
		}
		dc.SetWeight(int(a[0]))
	case "blend":
		if cmd.Mode == "" {
			dc.SetBlend(true)
			return nil
		}
		m, ok := softpaint.ParseBlendMode(cmd.Mode)
		if !ok {
			return fmt.Errorf("unknown blend mode %q", cmd.Mode)
		}
		dc.SetBlendMode(m)
	case "noblend":
		dc.SetBlend(false)
	case "overlap":
		o, err := parseOverlap(cmd.Mode)
		if err != nil {
			return err
		}
		dc.SetOverlap(o)
	case "rectmode", "ellipsemode":
		m, err := parseShapeMode(cmd.Mode)
		if err != nil {
			return err
		}
		if strings.EqualFold(cmd.Op, "rectmode") {
			dc.SetRectMode(m)
		} else {
			dc.SetEllipseMode(m)
		}
	case "textsize":
		if err := need(a, 1); err != nil {
			return err
		}
		dc.SetTextSize(a[0])
	case "textalign":
		x, y, err := parseAlign(cmd.Mode)
		if err != nil {
			return err
		}
		dc.SetTextAlign(x, y)
	case "push":
		dc.Push()
	case "pop":
		dc.Pop()
	case "identity":
		dc.Identity()
	case "translate":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.Translate(a[0], a[1])
	case "scale":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.Scale(a[0], a[1])
	case "rotate":
		// Angles are written in degrees.
		if err := need(a, 1); err != nil {
			return err
		}
		dc.Rotate(a[0] * math.Pi / 180)
	case "shear":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.Shear(a[0], a[1])
	case "point":
		if err := need(a, 2); err != nil {
			return err
		}
		dc.Point(a[0], a[1])
	case "line":
		if err := need(a, 4); err != nil {
			return err
		}
		dc.Line(a[0], a[1], a[2], a[3])
	case "triangle":
		if err := need(a, 6); err != nil {
			return err
		}
		dc.Triangle(a[0], a[1], a[2], a[3], a[4], a[5])
	case "quad":
		if err := need(a, 8); err != nil {
			return err
		}
		dc.Quad(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
	case "rect":
		if err := need(a, 4); err != nil {
			return err
		}
		return dc.Rect(a[0], a[1], a[2], a[3])
	case "square":
		if err := need(a, 3); err != nil {
			return err
		}
		return dc.Square(a[0], a[1], a[2])
	case "ellipse":
		if err := need(a, 4); err != nil {
			return err
		}
		return dc.Ellipse(a[0], a[1], a[2], a[3])
	case "circle":
		if err := need(a, 3); err != nil {
			return err
		}
		return dc.Circle(a[0], a[1], a[2])
	case "arc":
		if err := need(a, 6); err != nil {
			return err
		}
		m, err := parseArcMode(cmd.Mode)
		if err != nil {
			return err
		}
		return dc.Arc(a[0], a[1], a[2], a[3], a[4]*math.Pi/180, a[5]*math.Pi/180, m)
	case "regular":
		if err := need(a, 4); err != nil {
			return err
		}
		var rot float64
		if len(a) > 4 {
			rot = a[4] * math.Pi / 180
		}
		return dc.RegularPolygon(int(a[0]), a[1], a[2], a[3], rot)
	case "polygon":
		return dc.Polygon(a...)
	case "polyline":
		return dc.Polyline(a...)
	case "text":
		if err := need(a, 2); err != nil {
			return err
		}
		return dc.Text(cmd.Text, a[0], a[1])
	case "image":
		if err := need(a, 2); err != nil {
			return err
		}
		tex, err := softpaint.LoadTexture(s.resolve(cmd.Path))
		if err != nil {
			return err
		}
		var w, h float64
		if len(a) >= 4 {
			w, h = a[2], a[3]
		}
		dc.DrawImage(tex, a[0], a[1], w, h)
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
	return nil
}

func (s *Scene) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

func need(args []float64, n int) error {
	if len(args) < n {
		return fmt.Errorf("need %d args, got %d", n, len(args))
	}
	return nil
}

var namedColors = map[string]string{
	"black":       "000000",
	"white":       "ffffff",
	"red":         "ff0000",
	"green":       "00ff00",
	"blue":        "0000ff",
	"transparent": "00000000",
}

func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		s = hex
	}
	col, ok := softpaint.Hex(s)
	if !ok {
		return col, fmt.Errorf("invalid color %q", s)
	}
	return col, nil
}

func parseShapeMode(s string) (softpaint.ShapeMode, error) {
	for _, m := range []softpaint.ShapeMode{softpaint.ModeCorner, softpaint.ModeCorners, softpaint.ModeCenter, softpaint.ModeRadius} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown shape mode %q", s)
}

func parseArcMode(s string) (softpaint.ArcMode, error) {
	if s == "" {
		return softpaint.ArcDefault, nil
	}
	for _, m := range []softpaint.ArcMode{softpaint.ArcDefault, softpaint.ArcOpen, softpaint.ArcChord, softpaint.ArcPie} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown arc mode %q", s)
}

func parseOverlap(s string) (softpaint.LineOverlap, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return softpaint.OverlapNone, nil
	case "major":
		return softpaint.OverlapMajor, nil
	case "minor":
		return softpaint.OverlapMinor, nil
	case "both":
		return softpaint.OverlapBoth, nil
	}
	return 0, fmt.Errorf("unknown overlap %q", s)
}

// parseAlign reads "<x> <y>", e.g. "center middle". A missing y keeps the
// baseline.
func parseAlign(s string) (softpaint.AlignX, softpaint.AlignY, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, fmt.Errorf("invalid text alignment %q", s)
	}
	var x softpaint.AlignX
	switch fields[0] {
	case "left":
		x = softpaint.AlignLeft
	case "center":
		x = softpaint.AlignCenter
	case "right":
		x = softpaint.AlignRight
	default:
		return 0, 0, fmt.Errorf("invalid horizontal alignment %q", fields[0])
	}
	y := softpaint.AlignBaseline
	if len(fields) == 2 {
		switch fields[1] {
		case "baseline":
		case "top":
			y = softpaint.AlignTop
		case "middle":
			y = softpaint.AlignMiddle
		case "bottom":
			y = softpaint.AlignBottom
		default:
			return 0, 0, fmt.Errorf("invalid vertical alignment %q", fields[1])
		}
	}
	return x, y, nil
}
