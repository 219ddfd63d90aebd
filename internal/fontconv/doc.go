// Package fontconv rasterizes scalable fonts into ngfx bitmap font blobs.
//
// Glyphs are drawn with golang.org/x/image at a fixed pixel size and
// thresholded to one bit per pixel. Codepoint coverage of TrueType input
// is read from the font's cmap with go-text/typesetting, so only glyphs
// the font actually defines are converted.
package fontconv
