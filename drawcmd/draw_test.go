package drawcmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/ngfx"
)

func TestDrawPathFillThenStroke(t *testing.T) {
	ctx := newContext(t, 20, 20, ngfx.Format8Bit)
	img := mustImage(t, Shape{
		Type: TypePath, StrokeColor: ngfx.ColorBlack, StrokeWidth: 1, FillColor: ngfx.ColorRed,
		Points: square(0, 0, 6),
	})
	DrawImage(ctx, img, ngfx.Pt(3, 4))

	fb := ctx.Framebuffer()
	if fb.At(6, 7) != ngfx.ColorRed {
		t.Errorf("interior = %08b, want red", uint8(fb.At(6, 7)))
	}
	for _, p := range [][2]int{{3, 4}, {9, 4}, {9, 10}, {3, 10}, {6, 4}} {
		if fb.At(p[0], p[1]) != ngfx.ColorBlack {
			t.Errorf("outline pixel %v = %08b", p, uint8(fb.At(p[0], p[1])))
		}
	}
	if fb.At(2, 4) != ngfx.ColorWhite || fb.At(10, 10) != ngfx.ColorWhite {
		t.Error("offset not applied")
	}
}

func TestDrawRestoresContext(t *testing.T) {
	ctx := newContext(t, 10, 10, ngfx.Format8Bit)
	ctx.SetStrokeColor(ngfx.ColorGreen)
	ctx.SetStrokeWidth(5)
	img := mustImage(t, Shape{Type: TypeCircle, StrokeColor: ngfx.ColorRed, StrokeWidth: 3, Radius: 2, Points: []ngfx.Point{ngfx.Pt(5, 5)}})
	DrawImage(ctx, img, ngfx.Point{})
	if ctx.StrokeColor() != ngfx.ColorGreen || ctx.StrokeWidth() != 5 {
		t.Error("Draw leaked its colors into the context")
	}
}

func TestDrawSkips(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"hidden", Shape{Type: TypePath, Hidden: true, StrokeColor: ngfx.ColorBlack, StrokeWidth: 1, FillColor: ngfx.ColorBlack, Points: square(1, 1, 5)}},
		{"unknown type", Shape{Type: Type(9), StrokeColor: ngfx.ColorBlack, StrokeWidth: 1, Points: square(1, 1, 5)}},
		{"invalid type", Shape{Type: TypeInvalid, StrokeColor: ngfx.ColorBlack, StrokeWidth: 1, Points: square(1, 1, 5)}},
		{"zero width clear fill", Shape{Type: TypePath, StrokeColor: ngfx.ColorBlack, FillColor: ngfx.ColorClear, Points: square(1, 1, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newContext(t, 10, 10, ngfx.Format8Bit)
			DrawImage(ctx, mustImage(t, tt.shape), ngfx.Point{})
			fb := ctx.Framebuffer()
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					if fb.At(x, y) != ngfx.ColorWhite {
						t.Fatalf("pixel (%d,%d) painted", x, y)
					}
				}
			}
		})
	}
}

func TestDrawZeroWidthFillsOnly(t *testing.T) {
	ctx := newContext(t, 10, 10, ngfx.Format8Bit)
	DrawImage(ctx, mustImage(t, Shape{
		Type: TypePath, StrokeColor: ngfx.ColorBlack, FillColor: ngfx.ColorRed, Points: square(1, 1, 6),
	}), ngfx.Point{})
	fb := ctx.Framebuffer()
	if fb.At(1, 1) != ngfx.ColorWhite {
		t.Error("width 0 must not stroke")
	}
	if fb.At(4, 4) != ngfx.ColorRed {
		t.Error("fill missing")
	}
}

func TestDrawCirclePerPoint(t *testing.T) {
	ctx := newContext(t, 30, 10, ngfx.Format8Bit)
	DrawImage(ctx, mustImage(t, Shape{
		Type: TypeCircle, StrokeColor: ngfx.ColorBlack, StrokeWidth: 1, FillColor: ngfx.ColorRed, Radius: 3,
		Points: []ngfx.Point{ngfx.Pt(5, 5), ngfx.Pt(20, 5)},
	}), ngfx.Point{})
	fb := ctx.Framebuffer()
	for _, cx := range []int{5, 20} {
		if fb.At(cx, 5) != ngfx.ColorRed {
			t.Errorf("circle at %d not filled", cx)
		}
		if fb.At(cx+3, 5) != ngfx.ColorBlack {
			t.Errorf("circle at %d not stroked", cx)
		}
	}
	if fb.At(12, 5) != ngfx.ColorWhite {
		t.Error("circles should be separate")
	}
}

func TestDrawPreciseCircle(t *testing.T) {
	ctx := newContext(t, 20, 20, ngfx.Format8Bit)
	DrawImage(ctx, mustImage(t, Shape{
		Type: TypePreciseCircle, FillColor: ngfx.ColorBlack, Radius: 2,
		Points: []ngfx.Point{ngfx.Pt(79, 84)},
	}), ngfx.Point{})
	fb := ctx.Framebuffer()
	// (79+4)>>3 = 10, (84+4)>>3 = 11; the radius stays in whole pixels.
	if fb.At(10, 11) != ngfx.ColorBlack || fb.At(12, 11) != ngfx.ColorBlack {
		t.Error("precise circle not centered on the rounded point")
	}
	if fb.At(13, 11) != ngfx.ColorWhite {
		t.Error("radius should not be scaled")
	}
}

func TestDrawMonoFallbackColors(t *testing.T) {
	shape := Shape{
		Type: TypePath, StrokeColor: ngfx.ColorWhite, StrokeWidth: 1, FillColor: ngfx.ColorWhite,
		UseBW: true, BWStroke: BWClear, BWFill: BWBlack,
		Points: square(1, 1, 6),
	}

	mono := newContext(t, 16, 10, ngfx.Format1Bit)
	DrawImage(mono, mustImage(t, shape), ngfx.Point{})
	fb := mono.Framebuffer()
	if fb.At(4, 4) != ngfx.ColorBlack {
		t.Error("1-bit context should use the fallback fill")
	}
	if fb.At(1, 1) != ngfx.ColorWhite {
		t.Error("clear fallback stroke should draw nothing")
	}

	// Color contexts ignore the fallback.
	color := newContext(t, 16, 10, ngfx.Format8Bit)
	color.Framebuffer().Clear(ngfx.ColorRed)
	DrawImage(color, mustImage(t, shape), ngfx.Point{})
	if color.Framebuffer().At(4, 4) != ngfx.ColorWhite {
		t.Error("8-bit context should use the stored fill")
	}
}

func TestBWColor(t *testing.T) {
	want := map[BWColor]ngfx.Color{
		BWClear: ngfx.ColorClear,
		BWGray:  ngfx.ColorLightGray,
		BWBlack: ngfx.ColorBlack,
		BWWhite: ngfx.ColorWhite,
	}
	for bw, c := range want {
		if bw.Color() != c {
			t.Errorf("BWColor(%d).Color() = %08b", bw, uint8(bw.Color()))
		}
	}
}

func TestListIterateStops(t *testing.T) {
	img := mustImage(t,
		Shape{Type: TypeCircle}, Shape{Type: TypeCircle}, Shape{Type: TypeCircle})
	var seen []int
	img.List().Iterate(func(i int, _ Command) bool {
		seen = append(seen, i)
		return i < 1
	})
	if len(seen) != 2 {
		t.Errorf("visited %v, want the first two", seen)
	}
}

func TestDrawLogsUnknownType(t *testing.T) {
	orig := ngfx.Logger()
	t.Cleanup(func() { ngfx.SetLogger(orig) })
	var buf bytes.Buffer
	ngfx.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := newContext(t, 10, 10, ngfx.Format8Bit)
	DrawImage(ctx, mustImage(t, Shape{Type: Type(7), Points: square(0, 0, 2)}), ngfx.Point{})
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "type=Type(7)") {
		t.Errorf("log = %q, want a warning naming the type", out)
	}
}
