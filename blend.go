package softpaint

import (
	"image/color"

	"github.com/gogpu/softpaint/internal/blend"
)

// BlendMode selects how a source color is composited onto the surface.
type BlendMode = blend.Mode

// Blend modes.
const (
	// BlendSourceOver is standard alpha compositing and the default.
	BlendSourceOver = blend.SourceOver

	// BlendSource replaces the destination, alpha included.
	BlendSource = blend.Source

	// BlendClear writes transparent black.
	BlendClear = blend.Clear

	// BlendDestination keeps the destination unchanged.
	BlendDestination = blend.Destination

	// BlendDestinationOver draws the source behind the destination.
	BlendDestinationOver = blend.DestinationOver

	// BlendSourceIn keeps the source where the destination is opaque.
	BlendSourceIn = blend.SourceIn

	// BlendDestinationIn keeps the destination where the source is opaque.
	BlendDestinationIn = blend.DestinationIn

	// BlendSourceOut keeps the source where the destination is transparent.
	BlendSourceOut = blend.SourceOut

	// BlendDestinationOut erases the destination where the source is opaque.
	BlendDestinationOut = blend.DestinationOut

	// BlendSourceAtop draws the source only over existing destination.
	BlendSourceAtop = blend.SourceAtop

	// BlendDestinationAtop keeps the destination only over the source.
	BlendDestinationAtop = blend.DestinationAtop

	// BlendXor keeps the non-overlapping parts of source and destination.
	BlendXor = blend.Xor

	// BlendPlus adds source and destination, clamped.
	BlendPlus = blend.Plus

	// BlendMultiply multiplies colors. Result is always darker or equal.
	BlendMultiply = blend.Multiply

	// BlendScreen is inverse multiply. Result is always lighter or equal.
	BlendScreen = blend.Screen

	// BlendDarken keeps the darker channel.
	BlendDarken = blend.Darken

	// BlendLighten keeps the lighter channel.
	BlendLighten = blend.Lighten

	// BlendDifference is the absolute channel difference.
	BlendDifference = blend.Difference
)

// ParseBlendMode looks up a mode by its String name, such as "SourceOver"
// or "Multiply".
func ParseBlendMode(name string) (BlendMode, bool) {
	return blend.ParseMode(name)
}

// Blend composites src over dst with mode.
func Blend(src, dst color.NRGBA, mode BlendMode) color.NRGBA {
	return blend.Blend(src, dst, mode)
}
