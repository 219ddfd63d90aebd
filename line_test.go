package ngfx

import (
	"math"
	"testing"
)

func TestDrawLineAxisAligned(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		want     int
	}{
		{"horizontal", Pt(2, 3), Pt(8, 3), 7},
		{"horizontal reversed", Pt(8, 3), Pt(2, 3), 7},
		{"vertical", Pt(4, 1), Pt(4, 9), 9},
		{"single point", Pt(5, 5), Pt(5, 5), 1},
		{"clipped", Pt(-10, 5), Pt(30, 5), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, 20, 20, Format8Bit)
			c.DrawLine(tt.from, tt.to)
			if n := len(painted(c.Framebuffer())); n != tt.want {
				t.Errorf("painted %d pixels, want %d\n%s", n, tt.want, dump(c.Framebuffer()))
			}
		})
	}
}

func TestDrawLineOnePixelPerMajorStep(t *testing.T) {
	ends := [][2]Point{
		{Pt(0, 0), Pt(6, 3)},
		{Pt(1, 14), Pt(18, 2)},
		{Pt(3, 0), Pt(7, 19)},
		{Pt(0, 0), Pt(5, 5)},
	}
	for _, e := range ends {
		forward := newTestContext(t, 20, 20, Format8Bit)
		forward.DrawLine(e[0], e[1])
		backward := newTestContext(t, 20, 20, Format8Bit)
		backward.DrawLine(e[1], e[0])

		got := painted(forward.Framebuffer())
		if back := painted(backward.Framebuffer()); len(back) != len(got) {
			t.Errorf("%v: direction changes the pixels", e)
		}

		dx := int(e[1].X) - int(e[0].X)
		dy := int(e[1].Y) - int(e[0].Y)
		major := max(abs(dx), abs(dy)) + 1
		if len(got) != major {
			t.Errorf("%v: painted %d pixels, want %d", e, len(got), major)
		}
		for p := range got {
			// Distance from the ideal line along the minor axis.
			var off float64
			if abs(dx) >= abs(dy) {
				ideal := float64(e[0].Y) + float64(dy)*float64(int(p.X)-int(e[0].X))/float64(dx)
				off = math.Abs(float64(p.Y) - ideal)
			} else {
				ideal := float64(e[0].X) + float64(dx)*float64(int(p.Y)-int(e[0].Y))/float64(dy)
				off = math.Abs(float64(p.X) - ideal)
			}
			if off > 0.5 {
				t.Errorf("%v: pixel %v is %.2f off the line", e, p, off)
			}
		}
	}
}

func TestDrawLineOutsideBounds(t *testing.T) {
	c := newTestContext(t, 20, 20, Format8Bit)
	c.DrawLine(Pt(30, 0), Pt(40, 5))
	c.DrawLine(Pt(0, -20), Pt(3, -2))
	c.DrawLine(Pt(-5, -5), Pt(-1, 30))
	if n := len(painted(c.Framebuffer())); n != 0 {
		t.Errorf("painted %d pixels for off-screen lines", n)
	}
}

func TestThickLineFlatCaps(t *testing.T) {
	c := newTestContext(t, 20, 12, Format8Bit, WithStrokeCaps(false))
	c.SetStrokeWidth(3)
	c.DrawLine(Pt(2, 5), Pt(10, 5))

	got := painted(c.Framebuffer())
	if len(got) != 27 {
		t.Errorf("painted %d pixels, want 27\n%s", len(got), dump(c.Framebuffer()))
	}
	for p := range got {
		if p.X < 2 || p.X > 10 || p.Y < 4 || p.Y > 6 {
			t.Errorf("pixel %v outside the 3px band", p)
		}
	}
}

func TestThickLineRoundCaps(t *testing.T) {
	c := newTestContext(t, 20, 12, Format8Bit)
	c.SetStrokeWidth(3)
	c.DrawLine(Pt(2, 5), Pt(10, 5))

	got := painted(c.Framebuffer())
	if len(got) != 29 {
		t.Errorf("painted %d pixels, want 29\n%s", len(got), dump(c.Framebuffer()))
	}
	if !got[Pt(1, 5)] || !got[Pt(11, 5)] {
		t.Error("round caps should extend past both ends")
	}
}

func TestThickLineVertical(t *testing.T) {
	c := newTestContext(t, 20, 20, Format8Bit, WithStrokeCaps(false))
	c.SetStrokeWidth(5)
	c.DrawLine(Pt(10, 2), Pt(10, 15))
	for y := 2; y <= 15; y++ {
		for x := 8; x <= 12; x++ {
			if c.Framebuffer().At(x, y) != ColorBlack {
				t.Fatalf("(%d,%d) not painted\n%s", x, y, dump(c.Framebuffer()))
			}
		}
	}
}

func TestThickLineDiagonalStaysNearSegment(t *testing.T) {
	for _, caps := range []bool{false, true} {
		c := newTestContext(t, 40, 40, Format8Bit, WithStrokeCaps(caps))
		c.SetStrokeWidth(7)
		from, to := Pt(5, 8), Pt(33, 30)
		c.DrawLine(from, to)

		got := painted(c.Framebuffer())
		if !got[Pt(19, 19)] {
			t.Errorf("caps=%v: centerline not painted", caps)
		}
		for p := range got {
			if d := segmentDist(p, from, to); d > 3+1.5 {
				t.Errorf("caps=%v: pixel %v is %.2f from the segment", caps, p, d)
			}
		}
	}
}

func TestISqrt(t *testing.T) {
	for n := 0; n < 2000; n++ {
		got := isqrt(n)
		want := int(math.Sqrt(float64(n)))
		if abs(got-want) > 1 {
			t.Errorf("isqrt(%d) = %d, want about %d", n, got, want)
		}
	}
}

func segmentDist(p, a, b Point) float64 {
	px, py := float64(p.X), float64(p.Y)
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dx, dy := bx-ax, by-ay
	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
