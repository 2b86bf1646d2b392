package softpaint

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders for LoadTexture and DecodeTexture.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeTexture decodes a PNG, JPEG, GIF, BMP or WebP image into a
// 4-channel pixmap.
func DecodeTexture(r io.Reader) (*Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("softpaint: decode texture: %w", err)
	}
	pm, err := PixmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("softpaint: %s texture: %w", format, err)
	}
	return pm, nil
}

// LoadTexture reads an image file into a 4-channel pixmap.
func LoadTexture(path string) (*Pixmap, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodeTexture(f)
}
