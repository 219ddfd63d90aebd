package ngfx

import (
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the framebuffer to w as a PNG image.
func (fb *Framebuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, fb.Image())
}

// SavePNG saves the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := fb.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
