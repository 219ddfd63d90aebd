package text

import (
	"testing"

	"github.com/gogpu/ngfx"
)

// Monospace test font metrics.
const (
	testAdvance    = 6
	testLineHeight = 10
)

// blockGlyph is a solid w×h glyph drawn one row below the line top.
func blockGlyph(w, h uint8, advance int8) *Glyph {
	g := NewGlyph(w, h, 0, 1, advance)
	for y := 0; y < int(h); y++ {
		for x := 0; x < int(w); x++ {
			g.SetBit(x, y, true)
		}
	}
	return g
}

// monoBuilder returns a builder holding printable ASCII as 5×7 blocks
// with a 6 pixel advance. Space is empty.
func monoBuilder() *Builder {
	b := NewBuilder(testLineHeight)
	b.WildcardCodepoint = '?'
	for cp := rune(0x21); cp < 0x7F; cp++ {
		b.Add(cp, blockGlyph(5, 7, testAdvance))
	}
	b.Add(' ', NewGlyph(0, 0, 0, 0, testAdvance))
	tofu := NewGlyph(4, 6, 0, 1, testAdvance)
	for x := 0; x < 4; x++ {
		tofu.SetBit(x, 0, true)
		tofu.SetBit(x, 5, true)
	}
	b.SetTofu(tofu)
	return b
}

func mustBuild(t *testing.T, b *Builder) []byte {
	t.Helper()
	blob, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	return blob
}

func mustFont(t *testing.T, b *Builder, opts ...FontOption) *Font {
	t.Helper()
	f, err := NewFontFromBytes(mustBuild(t, b), opts...)
	if err != nil {
		t.Fatalf("NewFontFromBytes: %v", err)
	}
	return f
}

func monoFont(t *testing.T) *Font {
	t.Helper()
	return mustFont(t, monoBuilder())
}

func newContext(t *testing.T, w, h int) (*ngfx.Context, *ngfx.Framebuffer) {
	t.Helper()
	fb, err := ngfx.AllocFramebuffer(w, h, ngfx.Format8Bit)
	if err != nil {
		t.Fatal(err)
	}
	fb.Clear(ngfx.ColorWhite)
	ctx, err := ngfx.NewContext(fb)
	if err != nil {
		t.Fatal(err)
	}
	return ctx, fb
}

// lineTexts returns the text and hyphen flag of every laid-out line.
func lineTexts(l *Layout) []string {
	out := make([]string, len(l.Lines))
	for i, ln := range l.Lines {
		out[i] = l.LineText(i)
		if ln.Hyphen {
			out[i] += "-"
		}
	}
	return out
}
