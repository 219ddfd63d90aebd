package ngfx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/ngfx/internal/raster"
)

// Format is the pixel layout of a framebuffer.
type Format uint8

const (
	// Format8Bit stores one packed Color per byte.
	Format8Bit Format = iota

	// Format1Bit stores one pixel per bit, least significant bit first,
	// with a set bit meaning white.
	Format1Bit
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Format8Bit:
		return "8bit"
	case Format1Bit:
		return "1bit"
	default:
		return "unknown"
	}
}

// minStride returns the smallest row length in bytes for width pixels.
func (f Format) minStride(width int) int {
	if f == Format1Bit {
		return (width + 7) / 8
	}
	return width
}

// Framebuffer is a borrowed pixel buffer. The package never allocates or
// resizes the memory it wraps.
type Framebuffer struct {
	pix    []byte
	width  int
	height int
	stride int
	format Format
}

// NewFramebuffer wraps pix as a width×height framebuffer. A stride of 0
// selects the tightest row length for the format; panels with padded rows
// (a 144 pixel wide 1-bit panel stored in 20-byte rows, for example) pass
// their stride explicitly.
func NewFramebuffer(pix []byte, width, height, stride int, format Format) (*Framebuffer, error) {
	if format != Format8Bit && format != Format1Bit {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if pix == nil {
		return nil, ErrNilFramebuffer
	}
	if width <= 0 || height <= 0 || width > 1<<15 || height > 1<<15 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFramebufferSize, width, height)
	}
	if stride == 0 {
		stride = format.minStride(width)
	}
	if stride < format.minStride(width) {
		return nil, fmt.Errorf("%w: stride %d too small for width %d", ErrFramebufferSize, stride, width)
	}
	if need := stride * height; len(pix) < need {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrFramebufferSize, need, len(pix))
	}
	return &Framebuffer{pix: pix, width: width, height: height, stride: stride, format: format}, nil
}

// AllocFramebuffer allocates a zeroed framebuffer. It is meant for tools
// and tests; on the device the display driver owns the memory.
func AllocFramebuffer(width, height int, format Format) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFramebufferSize, width, height)
	}
	return NewFramebuffer(make([]byte, format.minStride(width)*height), width, height, 0, format)
}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Stride returns the row length in bytes.
func (fb *Framebuffer) Stride() int { return fb.stride }

// Format returns the pixel layout.
func (fb *Framebuffer) Format() Format { return fb.format }

// Pix returns the underlying pixel memory.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// Bounds returns the framebuffer rect with its origin at (0, 0).
func (fb *Framebuffer) Bounds() Rect { return R(0, 0, fb.width, fb.height) }

func (fb *Framebuffer) surface() raster.Surface {
	return raster.Surface{Pix: fb.pix, Stride: fb.stride, Mono: fb.format == Format1Bit}
}

func (fb *Framebuffer) rasterBounds() raster.Bounds {
	return raster.Bounds{MaxX: fb.width, MaxY: fb.height}
}

// Clear fills the whole framebuffer with c. Transparent colors leave the
// framebuffer untouched.
func (fb *Framebuffer) Clear(c Color) {
	if !c.Opaque() {
		return
	}
	fill := byte(c)
	if fb.format == Format1Bit {
		fill = c.Mono()
	}
	s, b := fb.surface(), fb.rasterBounds()
	for y := 0; y < fb.height; y++ {
		s.Row(y, 0, fb.width-1, b, fill)
	}
}

// At returns the color stored at (x, y). On 1-bit framebuffers the result
// is ColorWhite or ColorBlack. Coordinates outside the framebuffer return
// ColorClear.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return ColorClear
	}
	v := fb.surface().At(x, y)
	if fb.format == Format1Bit {
		if v != 0 {
			return ColorWhite
		}
		return ColorBlack
	}
	return Color(v)
}

// Image converts the framebuffer into an image.Image for export. 8-bit
// framebuffers become NRGBA images, 1-bit framebuffers grayscale images.
func (fb *Framebuffer) Image() image.Image {
	r := image.Rect(0, 0, fb.width, fb.height)
	if fb.format == Format1Bit {
		img := image.NewGray(r)
		for y := 0; y < fb.height; y++ {
			for x := 0; x < fb.width; x++ {
				if fb.surface().At(x, y) != 0 {
					img.SetGray(x, y, color.Gray{Y: 0xFF})
				}
			}
		}
		return img
	}
	img := image.NewNRGBA(r)
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.Set(x, y, Color(fb.pix[y*fb.stride+x]))
		}
	}
	return img
}
