// Package cache provides a generic LRU cache.
//
// The text package uses it to keep recently drawn glyphs decoded, keyed by
// font and codepoint:
//
//	glyphs := cache.New[glyphKey, *Glyph](32)
//	g, ok := glyphs.Get(key)
//	if !ok {
//		g = load(key)
//		glyphs.Add(key, g)
//	}
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
