package ngfx

import (
	"math"
	"strings"
	"testing"
)

// newTestContext returns a context over a freshly allocated framebuffer
// cleared to white.
func newTestContext(t *testing.T, w, h int, format Format, opts ...ContextOption) *Context {
	t.Helper()
	fb, err := AllocFramebuffer(w, h, format)
	if err != nil {
		t.Fatalf("AllocFramebuffer: %v", err)
	}
	fb.Clear(ColorWhite)
	c, err := NewContext(fb, opts...)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

// painted returns the set of pixels that differ from white.
func painted(fb *Framebuffer) map[Point]bool {
	out := make(map[Point]bool)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.At(x, y) != ColorWhite {
				out[Pt(x, y)] = true
			}
		}
	}
	return out
}

// dump renders the framebuffer as text for failure messages: '#' for
// painted pixels and '.' for white ones.
func dump(fb *Framebuffer) string {
	var sb strings.Builder
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.At(x, y) != ColorWhite {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func dist(p Point, cx, cy int) float64 {
	return math.Hypot(float64(int(p.X)-cx), float64(int(p.Y)-cy))
}
