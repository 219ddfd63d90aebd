package ngfx

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Draw into the whole framebuffer
//	ctx, err := ngfx.NewContext(fb)
//
//	// Draw into a 100×40 region at (10, 20); (0, 0) maps to (10, 20)
//	ctx, err := ngfx.NewContext(fb, ngfx.WithOffset(ngfx.R(10, 20, 100, 40)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	offset    *Rect
	caps      bool
	antialias bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		caps:      true,
		antialias: true,
	}
}

// WithOffset sets the drawing region. Its origin translates every
// coordinate and its extent, intersected with the framebuffer, clips all
// drawing. The layer system positions nested drawing regions this way.
func WithOffset(r Rect) ContextOption {
	return func(o *contextOptions) {
		o.offset = &r
	}
}

// WithStrokeCaps sets the initial stroke cap style: round when true, flat
// when false.
func WithStrokeCaps(round bool) ContextOption {
	return func(o *contextOptions) {
		o.caps = round
	}
}

// WithAntialias sets the initial antialias flag. The flag is kept for API
// compatibility; no rasterizer reads it.
func WithAntialias(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.antialias = enabled
	}
}
