package softpaint

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default: 4-channel pixmap, software backend
//	dc, err := softpaint.NewContext(800, 600)
//
//	// Draw into an existing surface with a custom backend
//	dc, err := softpaint.NewContext(0, 0,
//	    softpaint.WithSurface(target),
//	    softpaint.WithBackend(myBackend))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	backend   Backend
	surface   Surface
	channels  int
	glyphs    GlyphSource
	glyphsSet bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		backend:  nil, // Will be set to SoftwareBackend if nil
		surface:  nil, // Will be created if nil
		channels: 4,
	}
}

// WithBackend sets the rasterizer backend for the Context.
// The backend must not be shared with another Context.
func WithBackend(b Backend) ContextOption {
	return func(o *contextOptions) {
		o.backend = b
	}
}

// WithSurface makes the Context draw into s. The width and height passed
// to NewContext are ignored; the surface dimensions are used instead.
func WithSurface(s Surface) ContextOption {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithChannels sets the channel count of the Pixmap created by NewContext:
// 1 (gray), 2 (gray and alpha), 3 (RGB) or 4 (RGBA, the default).
// It has no effect together with WithSurface.
func WithChannels(n int) ContextOption {
	return func(o *contextOptions) {
		o.channels = n
	}
}

// WithGlyphSource sets the glyph provider used by Text.
// By default a 7x13 bitmap font atlas is created on first use.
// Passing nil disables text: Text then returns ErrNoGlyphSource.
func WithGlyphSource(g GlyphSource) ContextOption {
	return func(o *contextOptions) {
		o.glyphs = g
		o.glyphsSet = true
	}
}
