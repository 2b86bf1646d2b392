// Package text provides glyph atlases for softpaint.
//
// An Atlas rasterizes the glyphs of a golang.org/x/image/font.Face into a
// single grayscale image on first use and lays strings out as quads that
// point into it. The gray level of each atlas pixel is the glyph coverage.
//
// # Example usage
//
//	atlas, err := text.NewGoRegularAtlas(24)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc, _ := softpaint.NewContext(320, 80, softpaint.WithGlyphSource(atlas))
//	dc.SetTextSize(24)
//	_ = dc.Text("Hello", 10, 40)
//
// Layout produces eight numbers per visible glyph:
//
//	x, y, w, h     destination box relative to the pen origin on the baseline
//	u, v, uw, vh   source box in atlas pixels
//
// Faces other than the bundled ones can be loaded with ParseOpenType or
// wrapped directly with NewAtlas.
package text
