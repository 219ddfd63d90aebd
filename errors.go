package ngfx

import "errors"

// Sentinel errors for caller-contract violations. Geometry that falls
// outside the framebuffer is never an error; it is clipped.
var (
	// ErrNilFramebuffer is returned when a context is created without a
	// framebuffer or a framebuffer without pixel memory.
	ErrNilFramebuffer = errors.New("ngfx: nil framebuffer")

	// ErrFramebufferSize is returned when dimensions, stride and buffer
	// length do not describe a valid framebuffer.
	ErrFramebufferSize = errors.New("ngfx: invalid framebuffer size")

	// ErrUnknownFormat is returned for an unsupported pixel format.
	ErrUnknownFormat = errors.New("ngfx: unknown pixel format")
)
