package drawcmd

import (
	"testing"

	"github.com/gogpu/ngfx"
)

func testSequence(t *testing.T, durations ...uint16) *Sequence {
	t.Helper()
	frames := make([]FrameShapes, len(durations))
	for i, d := range durations {
		frames[i] = FrameShapes{
			Duration: d,
			Shapes:   []Shape{{Type: TypeCircle, Radius: uint16(i + 1), Points: []ngfx.Point{ngfx.Pt(5, 5)}}},
		}
	}
	blob, err := EncodeSequence(ngfx.Sz(10, 10), 3, frames)
	if err != nil {
		t.Fatalf("EncodeSequence: %v", err)
	}
	s, err := ParseSequence(blob)
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	return s
}

// frameIndex identifies a frame by the radius its single circle carries.
func frameIndex(f Frame) int {
	return int(f.List().Command(0).Radius()) - 1
}

func TestFrameAtElapsed(t *testing.T) {
	s := testSequence(t, 100, 200, 300)
	tests := []struct {
		ms   uint32
		want int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{299, 1},
		{300, 2},
		{599, 2},
		{600, 2},
		{100000, 2},
	}
	for _, tt := range tests {
		f, ok := s.FrameAtElapsed(tt.ms)
		if !ok {
			t.Fatalf("FrameAtElapsed(%d) found nothing", tt.ms)
		}
		if got := frameIndex(f); got != tt.want {
			t.Errorf("FrameAtElapsed(%d) = frame %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestSequenceAccessors(t *testing.T) {
	s := testSequence(t, 100, 200, 300)
	if s.NumFrames() != 3 || s.PlayCount() != 3 || s.ViewBox() != ngfx.Sz(10, 10) || s.Version() != MaxVersion {
		t.Error("header fields wrong")
	}
	if s.TotalDuration() != 600 {
		t.Errorf("TotalDuration = %d", s.TotalDuration())
	}
	f, ok := s.Frame(1)
	if !ok || f.Duration() != 200 || frameIndex(f) != 1 {
		t.Error("Frame(1) wrong")
	}
	if _, ok := s.Frame(3); ok {
		t.Error("Frame(3) should not exist")
	}

	f.SetDuration(50)
	s.SetPlayCount(0)
	if s.TotalDuration() != 450 || s.PlayCount() != 0 {
		t.Error("setters did not write through")
	}
}

func TestEmptySequence(t *testing.T) {
	s := testSequence(t)
	if _, ok := s.FrameAtElapsed(0); ok {
		t.Error("empty sequence returned a frame")
	}
	if s.TotalDuration() != 0 {
		t.Error("empty sequence has a duration")
	}
}

func TestSingleFrameSaturates(t *testing.T) {
	s := testSequence(t, 0)
	if f, ok := s.FrameAtElapsed(5000); !ok || frameIndex(f) != 0 {
		t.Error("single frame should always be returned")
	}
}

func TestDrawFrame(t *testing.T) {
	s := testSequence(t, 10, 10)
	ctx := newContext(t, 12, 12, ngfx.Format8Bit)
	f, _ := s.Frame(1)
	f.List().Command(0).SetFillColor(ngfx.ColorBlack)
	DrawFrame(ctx, f, ngfx.Point{})
	if ctx.Framebuffer().At(5, 5) != ngfx.ColorBlack {
		t.Error("frame not drawn")
	}
}
