package ngfx

// SetPixel paints a single pixel with col. Transparent colors and points
// outside the clip box are ignored. On 1-bit targets gray colors follow
// the same checkerboard as filled spans.
func (c *Context) SetPixel(p Point, col Color) {
	if !col.Opaque() {
		return
	}
	x, y := c.translate(p)
	c.surface().SetPixel(x, y, c.bounds(), c.fillByte(col))
}

// DrawPixel paints a single pixel with the stroke color.
func (c *Context) DrawPixel(p Point) {
	c.SetPixel(p, c.strokeColor)
}
