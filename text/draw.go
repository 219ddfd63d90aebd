package text

import "github.com/gogpu/ngfx"

// DrawGlyph draws g with its pen position at pen, using the context's text
// color. Pixels outside the drawing region are clipped.
func DrawGlyph(ctx *ngfx.Context, g *Glyph, pen ngfx.Point) {
	if g == nil {
		return
	}
	drawGlyph(ctx, g, pen, g.Bounds(pen))
}

// DrawGlyphBounded is DrawGlyph with an additional clip rectangle, given
// in drawing-region coordinates.
func DrawGlyphBounded(ctx *ngfx.Context, g *Glyph, pen ngfx.Point, bounds ngfx.Rect) {
	if g == nil {
		return
	}
	drawGlyph(ctx, g, pen, g.Bounds(pen).Intersect(bounds))
}

func drawGlyph(ctx *ngfx.Context, g *Glyph, pen ngfx.Point, clip ngfx.Rect) {
	col := ctx.TextColor()
	if !col.Opaque() || clip.Size.Empty() {
		return
	}
	ox := int(pen.X) + int(g.Left)
	oy := int(pen.Y) + int(g.Top)
	for y := int(clip.Origin.Y); y < clip.MaxY(); y++ {
		for x := int(clip.Origin.X); x < clip.MaxX(); x++ {
			if g.Bit(x-ox, y-oy) {
				ctx.SetPixel(ngfx.Pt(x, y), col)
			}
		}
	}
}
