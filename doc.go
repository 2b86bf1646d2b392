// Package softpaint is a pixel-exact software rasterizer for immediate-mode
// 2D drawing.
//
// # Overview
//
// softpaint turns points, thick lines, polygons, ellipses, arcs, textured
// quads and text into individual pixel writes on a CPU surface. There is no
// anti-aliasing: every primitive covers a whole set of pixels, and every
// pixel of that set is written exactly once. Output is deterministic across
// platforms.
//
// # Quick Start
//
//	import "github.com/gogpu/softpaint"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc, err := softpaint.NewContext(256, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dc.Background(softpaint.White)
//	dc.SetFill(softpaint.Red)
//	dc.SetStroke(softpaint.Black)
//	dc.SetWeight(3)
//	_ = dc.Rect(20, 20, 100, 60)
//	_ = dc.Polygon(150, 30, 230, 90, 150, 90)
//
//	// Save to PNG
//	_ = dc.SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, State, Matrix, Pixmap, Surface, Texture
//   - Backend: the interface between the Context and the pixels, with
//     SoftwareBackend as the stock implementation
//   - Internal: raster (lines, fills, quad sampling), blend (compositing)
//   - text: glyph atlases for Text
//
// A Context maps coordinates through its view transform, then calls one
// Backend operation. The software backend collects covered pixels in a
// deduplicating point set, adds polygon interiors reconstructed from the
// outline, and resolves the set into surface writes.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
//
// Device coordinates are rounded to the nearest pixel centre.
package softpaint
