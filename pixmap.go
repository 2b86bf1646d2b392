package softpaint

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap is the stock Surface: a contiguous buffer of width*height*channels
// bytes, rows top to bottom.
//
// Channel layouts:
//   - 1: gray (luma); alpha reads as 255
//   - 2: gray, alpha
//   - 3: R, G, B; alpha reads as 255
//   - 4: R, G, B, A (straight alpha)
type Pixmap struct {
	width    int
	height   int
	channels int
	data     []uint8
}

// NewPixmap creates a zeroed pixmap.
func NewPixmap(width, height, channels int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	return &Pixmap{
		width:    width,
		height:   height,
		channels: channels,
		data:     make([]uint8, width*height*channels),
	}, nil
}

// PixmapFromImage copies img into a new 4-channel pixmap.
func PixmapFromImage(img image.Image) (*Pixmap, error) {
	b := img.Bounds()
	pm, err := NewPixmap(b.Dx(), b.Dy(), 4)
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{Pix: pm.data, Stride: pm.width * 4, Rect: image.Rect(0, 0, pm.width, pm.height)}
	xdraw.Draw(dst, dst.Rect, img, b.Min, xdraw.Src)
	return pm, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Channels returns the number of bytes stored per pixel.
func (p *Pixmap) Channels() int {
	return p.channels
}

// Data returns the raw pixel bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

func (p *Pixmap) offset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * p.channels
}

// Pixel returns the color at (x, y), or transparent black out of bounds.
func (p *Pixmap) Pixel(x, y int) color.NRGBA {
	i := p.offset(x, y)
	if i < 0 {
		return Transparent
	}
	d := p.data[i : i+p.channels]
	switch p.channels {
	case 1:
		return color.NRGBA{R: d[0], G: d[0], B: d[0], A: 255}
	case 2:
		return color.NRGBA{R: d[0], G: d[0], B: d[0], A: d[1]}
	case 3:
		return color.NRGBA{R: d[0], G: d[1], B: d[2], A: 255}
	default:
		return color.NRGBA{R: d[0], G: d[1], B: d[2], A: d[3]}
	}
}

// SetPixel stores c at (x, y). Out-of-bounds writes are ignored.
// Channels the layout does not store are dropped.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	i := p.offset(x, y)
	if i < 0 {
		return
	}
	p.put(p.data[i:i+p.channels], c)
}

func (p *Pixmap) put(d []uint8, c color.NRGBA) {
	switch p.channels {
	case 1:
		d[0] = luma(c)
	case 2:
		d[0], d[1] = luma(c), c.A
	case 3:
		d[0], d[1], d[2] = c.R, c.G, c.B
	default:
		d[0], d[1], d[2], d[3] = c.R, c.G, c.B, c.A
	}
}

// Clear fills the entire pixmap with c.
func (p *Pixmap) Clear(c color.NRGBA) {
	if len(p.data) == 0 {
		return
	}
	p.put(p.data[:p.channels], c)
	for n := p.channels; n < len(p.data); n *= 2 {
		copy(p.data[n:], p.data[:n])
	}
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	return p.Pixel(x, y)
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the pixmap to an *image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	if p.channels == 4 {
		copy(img.Pix, p.data)
		return img
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			img.SetNRGBA(x, y, p.Pixel(x, y))
		}
	}
	return img
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
