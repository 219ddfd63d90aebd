// Package text renders bitmap-font text into an ngfx framebuffer.
//
// Fonts are versioned binary blobs holding a codepoint hash table, per-bucket
// offset tables and packed 1-bit glyph bitmaps. A [Font] reads them through
// an [io.ReaderAt], so the same lookup serves an in-memory blob and a font
// file opened from disk. Missing codepoints resolve to the font's tofu glyph.
//
// # Layout
//
// [NewLayout] breaks UTF-8 text into lines with a greedy word wrapper:
// breaks prefer the last space, then the last position where a hyphen may
// be inserted, then a hard break at the overflowing glyph. Layout stops
// once the next line would not fit in the box.
//
//	font, err := text.NewFont(bytes.NewReader(blob), int64(len(blob)))
//	if err != nil {
//		return err
//	}
//	text.DrawText(ctx, "Hello, world", font, ngfx.R(0, 0, 144, 40),
//		text.WithAlignment(text.AlignCenter))
//
// # Building fonts
//
// [Builder] writes version 3 blobs. The ngfx developer tool uses it to
// convert TrueType fonts; tests use it to build fonts with known glyphs.
package text
