// Package ngfx is a small 2D rasterizer for 1-bit and 8-bit watch-sized
// framebuffers.
//
// # Overview
//
// Drawing happens through a Context that borrows a caller-owned
// Framebuffer and carries the current colors, stroke width, cap style and
// drawing region. Everything is integer arithmetic: lines, circles,
// rounded rectangles and polygons are rasterized directly into the pixel
// buffer, with no anti-aliasing and no alpha blending.
//
// # Quick Start
//
//	fb, _ := ngfx.AllocFramebuffer(144, 168, ngfx.Format8Bit)
//	fb.Clear(ngfx.ColorWhite)
//	ctx, _ := ngfx.NewContext(fb)
//
//	ctx.SetFillColor(ngfx.ColorRed)
//	ctx.FillCircle(ngfx.Pt(72, 84), 40)
//
//	ctx.SetStrokeWidth(3)
//	ctx.DrawLine(ngfx.Pt(10, 10), ngfx.Pt(130, 150))
//
//	fb.SavePNG("output.png")
//
// # Colors
//
// A Color packs two bits each of alpha, red, green and blue. Alpha is
// binary: only opaque colors paint. On 1-bit framebuffers colors map to
// black, white or a checkerboard gray.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Framebuffer, Color, Point, Rect, Path
//   - drawcmd: binary draw-command images and animated sequences
//   - text: bitmap fonts and word-wrapped text layout
//   - Internal: raster (row/column spans), cache (LRU), fontconv (TTF to
//     bitmap font)
//
// # Logging
//
// ngfx logs through log/slog and is silent by default. See SetLogger.
package ngfx
