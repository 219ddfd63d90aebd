package drawcmd

import (
	"github.com/gogpu/ngfx"
)

// Draw renders one command translated by offset. Hidden commands and
// unknown types draw nothing. The context state is restored afterwards.
//
// Paths are filled, then stroked; circles are filled and stroked once per
// point. On 1-bit contexts a command with the fallback flag uses its
// black/white/gray colors instead of the stored ones. A stroke width of 0
// disables stroking.
func Draw(ctx *ngfx.Context, cmd Command, offset ngfx.Point) {
	if cmd.Hidden() {
		return
	}
	t := cmd.Type()
	if t == TypeInvalid || t > TypePreciseCircle {
		ngfx.Logger().Warn("drawcmd: skipping unknown command type", "type", t)
		return
	}

	ctx.Push()
	defer ctx.Pop()

	if ctx.Mono() && cmd.UseBW() {
		ctx.SetStrokeColor(cmd.BWStroke().Color())
		ctx.SetFillColor(cmd.BWFill().Color())
	} else {
		ctx.SetStrokeColor(cmd.StrokeColor())
		ctx.SetFillColor(cmd.FillColor())
	}
	stroke := cmd.StrokeWidth() > 0
	if stroke {
		ctx.SetStrokeWidth(uint16(cmd.StrokeWidth()))
	}

	pts := cmd.Points()
	for i := range pts {
		pts[i] = pts[i].Add(offset)
	}

	switch t {
	case TypePath, TypePrecisePath:
		ctx.FillPolygon(pts)
		if stroke {
			ctx.DrawPolyline(pts, cmd.PathOpen())
		}
	case TypeCircle, TypePreciseCircle:
		r := cmd.Radius()
		for _, p := range pts {
			ctx.FillCircle(p, r)
			if stroke {
				ctx.DrawCircle(p, r)
			}
		}
	}
}

// DrawList renders every command of l in order with one shared offset.
func DrawList(ctx *ngfx.Context, l List, offset ngfx.Point) {
	l.Iterate(func(_ int, cmd Command) bool {
		Draw(ctx, cmd, offset)
		return true
	})
}

// DrawImage renders an image with its view box origin at offset.
func DrawImage(ctx *ngfx.Context, img *Image, offset ngfx.Point) {
	DrawList(ctx, img.List(), offset)
}

// DrawFrame renders one frame of a sequence.
func DrawFrame(ctx *ngfx.Context, f Frame, offset ngfx.Point) {
	DrawList(ctx, f.List(), offset)
}
