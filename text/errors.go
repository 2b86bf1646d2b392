package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoGlyph is returned when a face has no glyph for a rune and no
	// replacement glyph either.
	ErrNoGlyph = errors.New("text: no glyph")
)

// MissingGlyphError names the rune a face could not render.
// It unwraps to ErrNoGlyph.
type MissingGlyphError struct {
	Rune rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("text: no glyph for %q (U+%04X)", e.Rune, e.Rune)
}

func (e *MissingGlyphError) Unwrap() error {
	return ErrNoGlyph
}
