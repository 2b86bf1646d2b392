package softpaint

import "image/color"

// ShapeMode selects how the four numbers given to Rect and Ellipse are read.
type ShapeMode uint8

const (
	// ModeCorner reads (x, y) as the top-left corner and (w, h) as the size.
	ModeCorner ShapeMode = iota
	// ModeCorners reads (x, y) and (w, h) as two opposite corners.
	ModeCorners
	// ModeCenter reads (x, y) as the centre and (w, h) as the size.
	ModeCenter
	// ModeRadius reads (x, y) as the centre and (w, h) as half the size.
	ModeRadius
)

// String returns the mode name.
func (m ShapeMode) String() string {
	switch m {
	case ModeCorner:
		return "Corner"
	case ModeCorners:
		return "Corners"
	case ModeCenter:
		return "Center"
	case ModeRadius:
		return "Radius"
	default:
		return "Unknown"
	}
}

// ArcMode selects how an arc is closed.
type ArcMode uint8

const (
	// ArcDefault fills a pie slice and strokes only the curve.
	ArcDefault ArcMode = iota
	// ArcOpen fills the chord region and strokes only the curve.
	ArcOpen
	// ArcChord fills and strokes the region closed by a chord.
	ArcChord
	// ArcPie fills and strokes a pie slice through the centre.
	ArcPie
)

// String returns the mode name.
func (m ArcMode) String() string {
	switch m {
	case ArcDefault:
		return "Default"
	case ArcOpen:
		return "Open"
	case ArcChord:
		return "Chord"
	case ArcPie:
		return "Pie"
	default:
		return "Unknown"
	}
}

// AlignX is the horizontal text anchor.
type AlignX uint8

const (
	AlignLeft AlignX = iota
	AlignCenter
	AlignRight
)

// AlignY is the vertical text anchor.
type AlignY uint8

const (
	AlignBaseline AlignY = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// State is one entry of the drawing-state stack. Push copies it, Pop
// restores it.
type State struct {
	Fill          color.NRGBA
	FillEnabled   bool
	Stroke        color.NRGBA
	StrokeEnabled bool
	Weight        int

	RectMode    ShapeMode
	EllipseMode ShapeMode

	TextSize   float64
	TextAlignX AlignX
	TextAlignY AlignY

	Blend     bool
	BlendMode BlendMode
	Overlap   LineOverlap

	// Transform maps user coordinates to device pixels.
	Transform Matrix
}

// DefaultState returns the state a new Context starts with: white fill,
// black one-pixel stroke, corner rectangles, centred ellipses, 12 px text
// and source-over blending.
func DefaultState() State {
	return State{
		Fill:          White,
		FillEnabled:   true,
		Stroke:        Black,
		StrokeEnabled: true,
		Weight:        1,
		RectMode:      ModeCorner,
		EllipseMode:   ModeCenter,
		TextSize:      12,
		TextAlignX:    AlignLeft,
		TextAlignY:    AlignBaseline,
		Blend:         true,
		BlendMode:     BlendSourceOver,
		Overlap:       OverlapNone,
		Transform:     Identity(),
	}
}

func (s *State) strokePaint() Paint {
	return Paint{Color: s.Stroke, Weight: s.Weight, Blend: s.Blend, Mode: s.BlendMode, Overlap: s.Overlap}
}

// fillPaint draws the fill outline one pixel wide so interior spans match
// the shape's geometric extent regardless of stroke weight.
func (s *State) fillPaint() Paint {
	return Paint{Color: s.Fill, Weight: 1, Blend: s.Blend, Mode: s.BlendMode, Overlap: s.Overlap}
}
