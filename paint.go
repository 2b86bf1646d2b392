package softpaint

import (
	"image/color"

	"github.com/gogpu/softpaint/internal/raster"
)

// LineOverlap selects the extra pixels a thin line emits on diagonal
// steps. Thicker lines always fill the gaps between their parallel copies.
type LineOverlap = raster.Overlap

// Line overlap flags.
const (
	// OverlapNone emits the plain Bresenham pixels.
	OverlapNone = raster.OverlapNone

	// OverlapMajor adds the pixel after the major-axis step.
	OverlapMajor = raster.OverlapMajor

	// OverlapMinor adds the pixel after the minor-axis step.
	OverlapMinor = raster.OverlapMinor

	// OverlapBoth adds both, giving 4-connected lines.
	OverlapBoth = raster.OverlapBoth
)

// Paint is the per-primitive styling a Backend receives. Coordinates given
// alongside it are already in device space.
type Paint struct {
	// Color is the stroke or fill color. Glyph quads use it as the text
	// color.
	Color color.NRGBA

	// Weight is the stroke thickness in pixels. Values below 1 act as 1.
	Weight int

	// Blend composites with Mode when set; otherwise pixels are overwritten.
	Blend bool

	// Mode is the blend mode used when Blend is set.
	Mode BlendMode

	// Overlap is the diagonal-step correction for lines.
	Overlap LineOverlap
}

func (p Paint) weight() int {
	if p.Weight < 1 {
		return 1
	}
	return p.Weight
}
