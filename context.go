package ngfx

import (
	"github.com/gogpu/ngfx/internal/raster"
)

// Context is the drawing state for one drawing session.
// It borrows a framebuffer and holds the current colors, stroke settings
// and drawing region; it owns no pixel memory.
//
// A Context is not safe for concurrent use. The compositor that hands out
// framebuffers guarantees a single writer for the duration of a pass.
type Context struct {
	fb *Framebuffer

	// Current state
	state

	// Saved states for Push/Pop
	stack []state
}

// state is the part of a Context that Push and Pop save and restore.
type state struct {
	strokeColor Color
	fillColor   Color
	textColor   Color
	strokeWidth uint16
	strokeCaps  bool
	antialias   bool
	offset      Rect
}

// NewContext creates a drawing context for fb with the default state:
// black stroke, white fill, black text, stroke width 1, round caps.
func NewContext(fb *Framebuffer, opts ...ContextOption) (*Context, error) {
	if fb == nil || fb.pix == nil {
		return nil, ErrNilFramebuffer
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{fb: fb}
	c.reset(o)
	return c, nil
}

func (c *Context) reset(o contextOptions) {
	c.state = state{
		strokeColor: ColorBlack,
		fillColor:   ColorWhite,
		textColor:   ColorBlack,
		strokeWidth: 1,
		strokeCaps:  o.caps,
		antialias:   o.antialias,
		offset:      c.fb.Bounds(),
	}
	if o.offset != nil {
		c.offset = o.offset.Standardize()
	}
	c.stack = c.stack[:0]
}

// Reset restores the default state and drops saved states, keeping the
// framebuffer. Use it when a context is reused for a new session.
func (c *Context) Reset() {
	c.reset(defaultOptions())
}

// Framebuffer returns the borrowed framebuffer.
func (c *Context) Framebuffer() *Framebuffer { return c.fb }

// Mono reports whether drawing targets a 1-bit framebuffer.
func (c *Context) Mono() bool { return c.fb.format == Format1Bit }

// SetStrokeColor sets the color used to draw strokes.
func (c *Context) SetStrokeColor(col Color) { c.strokeColor = col }

// SetFillColor sets the color used to fill primitives.
func (c *Context) SetFillColor(col Color) { c.fillColor = col }

// SetTextColor sets the color used to draw text.
func (c *Context) SetTextColor(col Color) { c.textColor = col }

// SetStrokeWidth sets the stroke width. Widths are coerced to the next odd
// number (2 becomes 3) so strokes stay centered on their path; 0 is
// ignored.
func (c *Context) SetStrokeWidth(width uint16) {
	if width == 0 {
		return
	}
	c.strokeWidth = ((width + 2) &^ 1) - 1
}

// SetStrokeCaps selects round (true) or flat (false) caps for thick lines.
func (c *Context) SetStrokeCaps(round bool) { c.strokeCaps = round }

// SetAntialiased sets the antialias flag. It has no effect on output.
func (c *Context) SetAntialiased(enabled bool) { c.antialias = enabled }

// SetOffset sets the drawing region; see WithOffset.
func (c *Context) SetOffset(r Rect) { c.offset = r.Standardize() }

// StrokeColor returns the current stroke color.
func (c *Context) StrokeColor() Color { return c.strokeColor }

// FillColor returns the current fill color.
func (c *Context) FillColor() Color { return c.fillColor }

// TextColor returns the current text color.
func (c *Context) TextColor() Color { return c.textColor }

// StrokeWidth returns the current (odd) stroke width.
func (c *Context) StrokeWidth() uint16 { return c.strokeWidth }

// StrokeCaps reports whether thick lines get round caps.
func (c *Context) StrokeCaps() bool { return c.strokeCaps }

// Antialiased returns the antialias flag.
func (c *Context) Antialiased() bool { return c.antialias }

// Offset returns the drawing region.
func (c *Context) Offset() Rect { return c.offset }

// Push saves the current state on a stack.
func (c *Context) Push() {
	c.stack = append(c.stack, c.state)
}

// Pop restores the last saved state. Pop on an empty stack is a no-op.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Bounds returns the clip box in framebuffer coordinates: the drawing
// region intersected with the framebuffer.
func (c *Context) Bounds() Rect {
	return c.offset.Intersect(c.fb.Bounds())
}

func (c *Context) bounds() raster.Bounds {
	b := c.Bounds()
	return raster.Bounds{
		MinX: int(b.Origin.X),
		MaxX: b.MaxX(),
		MinY: int(b.Origin.Y),
		MaxY: b.MaxY(),
	}
}

func (c *Context) surface() raster.Surface {
	return c.fb.surface()
}

// translate maps a drawing-region point to framebuffer coordinates.
func (c *Context) translate(p Point) (int, int) {
	return int(p.X) + int(c.offset.Origin.X), int(p.Y) + int(c.offset.Origin.Y)
}

// fillByte converts a color to the byte the span writers store.
func (c *Context) fillByte(col Color) byte {
	if c.Mono() {
		return col.Mono()
	}
	return byte(col)
}
