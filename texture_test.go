package softpaint

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func patternImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 90), B: 30, A: 255})
		}
	}
	return img
}

func TestDecodeTexture(t *testing.T) {
	src := patternImage()
	encoders := map[string]func(*bytes.Buffer) error{
		"png": func(b *bytes.Buffer) error { return png.Encode(b, src) },
		"bmp": func(b *bytes.Buffer) error { return bmp.Encode(b, src) },
	}
	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := encode(&buf); err != nil {
				t.Fatal(err)
			}
			tex, err := DecodeTexture(&buf)
			if err != nil {
				t.Fatalf("DecodeTexture() error = %v", err)
			}
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					if got, want := tex.Pixel(x, y), src.NRGBAAt(x, y); got != want {
						t.Errorf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestDecodeTextureInvalid(t *testing.T) {
	if _, err := DecodeTexture(bytes.NewReader([]byte("nope"))); err == nil {
		t.Error("DecodeTexture(garbage) succeeded")
	}
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, patternImage()); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture() error = %v", err)
	}
	if tex.Width() != 4 || tex.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", tex.Width(), tex.Height())
	}

	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadTexture(missing) succeeded")
	}
}
