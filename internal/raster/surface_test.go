package raster

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		lo, v, hi, want int
	}{
		{0, -5, 10, 0},
		{0, 5, 10, 5},
		{0, 15, 10, 10},
		{3, 3, 3, 3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.lo, tt.v, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.lo, tt.v, tt.hi, got, tt.want)
		}
	}
}

func TestDitherBitCheckerboard(t *testing.T) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 16; x++ {
			want := byte(0)
			if (x+y)%2 == 0 {
				want = 1
			}
			if got := DitherBit(0x55, x, y); got != want {
				t.Errorf("DitherBit(0x55, %d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	// Solid masks ignore position
	for _, fill := range []byte{0x00, 0xFF} {
		if got := DitherBit(fill, 3, 1); got != fill&1 {
			t.Errorf("DitherBit(%#x) = %d", fill, got)
		}
	}
}

func newSurface(w, h int, mono bool) (Surface, Bounds) {
	stride := w
	if mono {
		stride = (w + 7) / 8
	}
	return Surface{Pix: make([]byte, stride*h), Stride: stride, Mono: mono}, Bounds{MaxX: w, MaxY: h}
}

func TestRowClampsToBounds(t *testing.T) {
	s, _ := newSurface(10, 3, false)
	b := Bounds{MinX: 2, MaxX: 6, MinY: 0, MaxY: 3}

	s.Row(1, -10, 100, b, 7)
	for x := 0; x < 10; x++ {
		want := byte(0)
		if x >= 2 && x < 6 {
			want = 7
		}
		if got := s.At(x, 1); got != want {
			t.Errorf("x=%d: got %d, want %d", x, got, want)
		}
	}

	// Rows outside the bounds and reversed spans are ignored
	s.Row(5, 0, 9, b, 9)
	s.Row(0, 5, 3, b, 9)
	for x := 0; x < 10; x++ {
		if s.At(x, 0) != 0 {
			t.Fatalf("row 0 should be untouched, x=%d is %d", x, s.At(x, 0))
		}
	}
}

func TestMonoRowMatchesSetPixel(t *testing.T) {
	// Spans crossing byte boundaries must store the same bits as writing
	// every pixel individually.
	spans := [][2]int{{0, 0}, {3, 5}, {0, 7}, {5, 20}, {8, 15}, {1, 30}}
	for _, fill := range []byte{0x00, 0xFF, 0x55} {
		for _, sp := range spans {
			for y := 0; y < 2; y++ {
				a, b := newSurface(32, 2, true)
				p, _ := newSurface(32, 2, true)
				if fill == 0 {
					for i := range a.Pix {
						a.Pix[i], p.Pix[i] = 0xFF, 0xFF
					}
				}
				a.Row(y, sp[0], sp[1], b, fill)
				for x := sp[0]; x <= sp[1]; x++ {
					p.SetPixel(x, y, b, fill)
				}
				for i := range a.Pix {
					if a.Pix[i] != p.Pix[i] {
						t.Fatalf("fill %#x span %v row %d: byte %d = %08b, want %08b",
							fill, sp, y, i, a.Pix[i], p.Pix[i])
					}
				}
			}
		}
	}
}

func TestMonoColMatchesSetPixel(t *testing.T) {
	a, b := newSurface(16, 9, true)
	p, _ := newSurface(16, 9, true)
	a.Col(5, 1, 7, b, 0x55)
	for y := 1; y <= 7; y++ {
		p.SetPixel(5, y, b, 0x55)
	}
	for i := range a.Pix {
		if a.Pix[i] != p.Pix[i] {
			t.Fatalf("byte %d = %08b, want %08b", i, a.Pix[i], p.Pix[i])
		}
	}
}

func TestMonoBitOrder(t *testing.T) {
	s, b := newSurface(16, 1, true)
	s.SetPixel(0, 0, b, 0xFF)
	s.SetPixel(9, 0, b, 0xFF)
	if s.Pix[0] != 0b00000001 || s.Pix[1] != 0b00000010 {
		t.Errorf("got %08b %08b, want LSB-first bits", s.Pix[0], s.Pix[1])
	}
}

func TestColOutsideIgnored(t *testing.T) {
	s, b := newSurface(4, 4, false)
	s.Col(4, 0, 3, b, 1)
	s.Col(-1, 0, 3, b, 1)
	s.Col(1, 3, 0, b, 1)
	for i, v := range s.Pix {
		if v != 0 {
			t.Fatalf("pixel %d written", i)
		}
	}
}
