package drawcmd

import (
	"errors"
	"fmt"
)

// Sentinel errors for drawcmd package.
var (
	// ErrTruncated is returned when a blob ends before the structure it
	// declares.
	ErrTruncated = errors.New("drawcmd: truncated data")

	// ErrBadMagic is returned when a resource file does not start with the
	// expected magic word.
	ErrBadMagic = errors.New("drawcmd: bad magic")

	// ErrUnsupportedVersion is returned for image or sequence versions newer
	// than MaxVersion.
	ErrUnsupportedVersion = errors.New("drawcmd: unsupported version")
)

// FormatError reports where in a blob parsing failed.
type FormatError struct {
	Offset int
	What   string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("drawcmd: %s at offset %d: %v", e.What, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
