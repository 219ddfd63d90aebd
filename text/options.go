package text

import "golang.org/x/text/unicode/norm"

// DefaultGlyphCacheSize is the glyph cache capacity of a Font created
// without WithGlyphCacheSize or WithGlyphCache.
const DefaultGlyphCacheSize = 64

// FontOption configures a Font during creation.
//
// Example:
//
//	// Private cache of 128 glyphs
//	f, err := text.NewFont(r, size, text.WithGlyphCacheSize(128))
//
//	// One cache shared by several fonts
//	gc := text.NewGlyphCache(256)
//	small, err := text.NewFont(r1, n1, text.WithGlyphCache(gc))
//	large, err := text.NewFont(r2, n2, text.WithGlyphCache(gc))
type FontOption func(*fontConfig)

type fontConfig struct {
	cache     *GlyphCache
	cacheSize int
}

func defaultFontConfig() fontConfig {
	return fontConfig{cacheSize: DefaultGlyphCacheSize}
}

// WithGlyphCacheSize gives the font a private glyph cache holding at most
// n glyphs. Zero or a negative n disables caching; every lookup then reads
// the font source.
func WithGlyphCacheSize(n int) FontOption {
	return func(c *fontConfig) {
		c.cacheSize = n
		c.cache = nil
	}
}

// WithGlyphCache makes the font use a cache shared with other fonts.
// Entries are keyed by font and codepoint.
func WithGlyphCache(gc *GlyphCache) FontOption {
	return func(c *fontConfig) {
		c.cache = gc
	}
}

// OverflowMode selects what happens to text that does not fit the box.
type OverflowMode uint8

const (
	// OverflowWordWrap wraps lines and drops lines below the box.
	OverflowWordWrap OverflowMode = iota
	// OverflowTrailingEllipsis is accepted and currently lays out like
	// OverflowWordWrap.
	OverflowTrailingEllipsis
	// OverflowFill is accepted and currently lays out like
	// OverflowWordWrap.
	OverflowFill
)

// String returns the string representation of the overflow mode.
func (m OverflowMode) String() string {
	switch m {
	case OverflowWordWrap:
		return "WordWrap"
	case OverflowTrailingEllipsis:
		return "TrailingEllipsis"
	case OverflowFill:
		return "Fill"
	default:
		return unknownStr
	}
}

// Alignment specifies text horizontal alignment within the box.
type Alignment uint8

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers each line horizontally.
	AlignCenter
	// AlignRight aligns each line to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// LayoutOption configures NewLayout, DrawText and ContentSize.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	overflow  OverflowMode
	alignment Alignment
	form      *norm.Form
}

// WithOverflow sets the overflow mode.
func WithOverflow(m OverflowMode) LayoutOption {
	return func(c *layoutConfig) {
		c.overflow = m
	}
}

// WithAlignment sets the horizontal alignment of every line.
func WithAlignment(a Alignment) LayoutOption {
	return func(c *layoutConfig) {
		c.alignment = a
	}
}

// WithNormalization normalizes the text to form before layout. Fonts
// converted from TrueType usually carry precomposed glyphs only, so
// norm.NFC turns "e" + U+0301 into a single "é" glyph instead of two.
func WithNormalization(form norm.Form) LayoutOption {
	return func(c *layoutConfig) {
		c.form = &form
	}
}
