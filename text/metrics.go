package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font metrics at a specific size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Scale returns the metrics multiplied by s.
func (m Metrics) Scale(s float64) Metrics {
	return Metrics{Ascent: m.Ascent * s, Descent: m.Descent * s, LineGap: m.LineGap * s}
}

func metricsFromFace(fm font.Metrics) Metrics {
	m := Metrics{
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: fixedToFloat(fm.Descent),
	}
	if gap := fixedToFloat(fm.Height) - m.Ascent - m.Descent; gap > 0 {
		m.LineGap = gap
	}
	return m
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
