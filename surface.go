package softpaint

import (
	"image"
	"image/color"
)

// Texture is a read-only pixel source for textured quads and glyph atlases.
type Texture interface {
	Width() int
	Height() int

	// Pixel returns the color at (x, y), or transparent black outside the
	// texture.
	Pixel(x, y int) color.NRGBA
}

// Surface is a pixel-addressable render target.
//
// Implementations must bounds-check: SetPixel outside the surface is a
// no-op and Pixel returns transparent black. Surfaces are never resized in
// place; create a new one when the dimensions change.
type Surface interface {
	Texture

	// Channels returns the stored channel count: 1 (gray), 2 (gray and
	// alpha), 3 (RGB) or 4 (RGBA).
	Channels() int

	SetPixel(x, y int, c color.NRGBA)

	// Clear sets every pixel to c.
	Clear(c color.NRGBA)
}

// ImageTexture adapts any image.Image as a Texture. Pixel (0, 0) is the
// top-left corner of the image bounds.
func ImageTexture(img image.Image) Texture {
	switch t := img.(type) {
	case *Pixmap:
		return t
	case nil:
		return emptyTexture{}
	}
	return imageTexture{img: img, bounds: img.Bounds()}
}

type imageTexture struct {
	img    image.Image
	bounds image.Rectangle
}

func (t imageTexture) Width() int  { return t.bounds.Dx() }
func (t imageTexture) Height() int { return t.bounds.Dy() }

func (t imageTexture) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= t.bounds.Dx() || y >= t.bounds.Dy() {
		return Transparent
	}
	x += t.bounds.Min.X
	y += t.bounds.Min.Y
	switch img := t.img.(type) {
	case *image.Gray:
		return Gray(img.GrayAt(x, y).Y)
	case *image.Alpha:
		a := img.AlphaAt(x, y).A
		return color.NRGBA{R: a, G: a, B: a, A: 255}
	case *image.NRGBA:
		return img.NRGBAAt(x, y)
	}
	return toNRGBA(t.img.At(x, y))
}

type emptyTexture struct{}

func (emptyTexture) Width() int                 { return 0 }
func (emptyTexture) Height() int                { return 0 }
func (emptyTexture) Pixel(_, _ int) color.NRGBA { return Transparent }

// surfaceImage presents a Surface as an image.Image for encoders.
type surfaceImage struct {
	s Surface
}

func (si surfaceImage) ColorModel() color.Model { return color.NRGBAModel }

func (si surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, si.s.Width(), si.s.Height())
}

func (si surfaceImage) At(x, y int) color.Color {
	return si.s.Pixel(x, y)
}

// AsImage returns s as an image.Image. A *Pixmap is returned unchanged.
func AsImage(s Surface) image.Image {
	if img, ok := s.(image.Image); ok {
		return img
	}
	return surfaceImage{s: s}
}
