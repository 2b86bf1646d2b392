package softpaint

import (
	"image/color"
	"math"
)

// Common colors.
var (
	Black       = color.NRGBA{A: 255}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.NRGBA{R: 255, A: 255}
	Green       = color.NRGBA{G: 255, A: 255}
	Blue        = color.NRGBA{B: 255, A: 255}
	Transparent = color.NRGBA{}
)

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) color.NRGBA {
	return RGBA(r, g, b, 1)
}

// RGBA creates a color from straight-alpha components in [0, 1].
func RGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: unit8(a)}
}

// Gray creates an opaque gray level from v in [0, 255].
func Gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. Malformed input yields opaque black and ok == false.
func Hex(hex string) (c color.NRGBA, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok = true

	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) &&
			parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) &&
			parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black, false
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// toNRGBA converts any color.Color to straight-alpha 8-bit.
func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func unit8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// luma returns the Rec. 601 luminance of c.
func luma(c color.NRGBA) uint8 {
	return uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114 + 500) / 1000)
}
