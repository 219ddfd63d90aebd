package ngfx

import (
	"errors"
	"testing"
)

func TestNewContextDefaults(t *testing.T) {
	c := newTestContext(t, 10, 10, Format8Bit)
	if c.StrokeColor() != ColorBlack || c.FillColor() != ColorWhite || c.TextColor() != ColorBlack {
		t.Error("unexpected default colors")
	}
	if c.StrokeWidth() != 1 || !c.StrokeCaps() || !c.Antialiased() {
		t.Error("unexpected default stroke state")
	}
	if c.Offset() != R(0, 0, 10, 10) {
		t.Errorf("Offset = %v", c.Offset())
	}
	if c.Mono() {
		t.Error("8-bit context reports mono")
	}
}

func TestNewContextNil(t *testing.T) {
	if _, err := NewContext(nil); !errors.Is(err, ErrNilFramebuffer) {
		t.Errorf("error = %v, want ErrNilFramebuffer", err)
	}
}

func TestNewContextOptions(t *testing.T) {
	c := newTestContext(t, 20, 20, Format1Bit,
		WithOffset(R(5, 5, -3, 4)), WithStrokeCaps(false), WithAntialias(false))
	if c.Offset() != R(1, 5, 5, 4) {
		t.Errorf("Offset = %v, want standardized", c.Offset())
	}
	if c.StrokeCaps() || c.Antialiased() {
		t.Error("options not applied")
	}
	if !c.Mono() {
		t.Error("1-bit context should report mono")
	}
}

func TestSetStrokeWidth(t *testing.T) {
	tests := []struct {
		in, want uint16
	}{
		{1, 1},
		{2, 3},
		{3, 3},
		{4, 5},
		{10, 11},
	}
	for _, tt := range tests {
		c := newTestContext(t, 4, 4, Format8Bit)
		c.SetStrokeWidth(tt.in)
		if got := c.StrokeWidth(); got != tt.want {
			t.Errorf("SetStrokeWidth(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}

	c := newTestContext(t, 4, 4, Format8Bit)
	c.SetStrokeWidth(5)
	c.SetStrokeWidth(0)
	if c.StrokeWidth() != 5 {
		t.Errorf("width 0 should be ignored, got %d", c.StrokeWidth())
	}
}

func TestPushPop(t *testing.T) {
	c := newTestContext(t, 10, 10, Format8Bit)
	c.SetFillColor(ColorRed)
	c.Push()
	c.SetFillColor(ColorBlue)
	c.SetStrokeWidth(7)
	c.SetOffset(R(2, 2, 3, 3))
	c.Pop()
	if c.FillColor() != ColorRed || c.StrokeWidth() != 1 || c.Offset() != R(0, 0, 10, 10) {
		t.Error("Pop did not restore state")
	}
	// Pop on an empty stack keeps the state
	c.Pop()
	if c.FillColor() != ColorRed {
		t.Error("Pop on empty stack changed state")
	}
}

func TestReset(t *testing.T) {
	c := newTestContext(t, 10, 10, Format8Bit, WithStrokeCaps(false))
	c.SetStrokeColor(ColorRed)
	c.Push()
	c.Reset()
	if c.StrokeColor() != ColorBlack || !c.StrokeCaps() {
		t.Error("Reset did not restore defaults")
	}
}

func TestOffsetTranslatesAndClips(t *testing.T) {
	c := newTestContext(t, 20, 20, Format8Bit)
	c.SetOffset(R(10, 10, 5, 5))
	c.SetFillColor(ColorBlack)
	c.FillRect(R(0, 0, 100, 100), 0, CornerNone)

	got := painted(c.Framebuffer())
	if len(got) != 25 {
		t.Fatalf("painted %d pixels, want 25\n%s", len(got), dump(c.Framebuffer()))
	}
	for p := range got {
		if p.X < 10 || p.X > 14 || p.Y < 10 || p.Y > 14 {
			t.Errorf("pixel %v outside drawing region", p)
		}
	}
}

func TestOffsetBeyondFramebuffer(t *testing.T) {
	c := newTestContext(t, 10, 10, Format8Bit)
	c.SetOffset(R(8, 8, 20, 20))
	if c.Bounds() != R(8, 8, 2, 2) {
		t.Errorf("Bounds = %v", c.Bounds())
	}
	c.SetFillColor(ColorBlack)
	c.FillRect(R(0, 0, 20, 20), 0, CornerNone)
	if n := len(painted(c.Framebuffer())); n != 4 {
		t.Errorf("painted %d pixels, want 4", n)
	}
}

func TestTransparentColorsDrawNothing(t *testing.T) {
	c := newTestContext(t, 20, 20, Format8Bit)
	c.SetStrokeColor(ColorClear)
	c.SetFillColor(0b10_000000)
	c.DrawLine(Pt(0, 0), Pt(19, 19))
	c.DrawCircle(Pt(10, 10), 5)
	c.FillCircle(Pt(10, 10), 5)
	c.DrawRect(R(1, 1, 10, 10), 3, CornersAll)
	c.FillRect(R(1, 1, 10, 10), 0, CornerNone)
	c.FillPolygon([]Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)})
	c.SetPixel(Pt(3, 3), ColorClear)
	if n := len(painted(c.Framebuffer())); n != 0 {
		t.Errorf("painted %d pixels with transparent colors", n)
	}
}
