package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrTruncated is returned when a font blob ends before a table or
	// glyph it declares.
	ErrTruncated = errors.New("text: truncated font data")

	// ErrUnsupportedFeature is returned for fonts using a feature this
	// package cannot decode (RLE4 compressed bitmaps).
	ErrUnsupportedFeature = errors.New("text: unsupported font feature")

	// ErrInvalidHeader is returned when header fields are inconsistent,
	// for example a zero hash table size.
	ErrInvalidHeader = errors.New("text: invalid font header")
)

// VersionError is returned for a font whose version byte is zero.
type VersionError struct {
	Version uint8
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("text: unsupported font version %d", e.Version)
}

// BuildError is returned by Builder when the glyph set cannot be encoded
// with the requested parameters.
type BuildError struct {
	Codepoint rune
	Reason    string
}

func (e *BuildError) Error() string {
	if e.Codepoint < 0 {
		return "text: build font: " + e.Reason
	}
	return fmt.Sprintf("text: build font: U+%04X: %s", e.Codepoint, e.Reason)
}
