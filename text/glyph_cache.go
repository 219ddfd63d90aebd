package text

import (
	"github.com/gogpu/ngfx"
	"github.com/gogpu/ngfx/internal/cache"
)

// GlyphCache is an LRU of decoded glyphs keyed by font and codepoint.
// One cache may be shared by several fonts. It is safe for concurrent use.
type GlyphCache struct {
	c *cache.Cache[glyphKey, cachedGlyph]
}

type glyphKey struct {
	font *Font
	cp   rune
}

// cachedGlyph remembers misses too, so absent codepoints skip the table
// scan on later lookups.
type cachedGlyph struct {
	glyph *Glyph
	found bool
}

// CacheStats contains glyph cache statistics.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// NewGlyphCache creates a cache holding at most capacity glyphs.
// A capacity of 0 means unlimited.
func NewGlyphCache(capacity int) *GlyphCache {
	return &GlyphCache{c: cache.New[glyphKey, cachedGlyph](capacity)}
}

func (gc *GlyphCache) get(f *Font, cp rune) (cachedGlyph, bool) {
	return gc.c.Get(glyphKey{font: f, cp: cp})
}

func (gc *GlyphCache) put(f *Font, cp rune, e cachedGlyph) {
	if old, ok := gc.c.Add(glyphKey{font: f, cp: cp}, e); ok {
		ngfx.Logger().Debug("text: glyph cache eviction", "codepoint", old.cp)
	}
}

// forget drops every glyph cached for f.
func (gc *GlyphCache) forget(f *Font) int {
	return gc.c.DeleteFunc(func(k glyphKey) bool { return k.font == f })
}

// Len returns the number of cached glyphs.
func (gc *GlyphCache) Len() int { return gc.c.Len() }

// Clear drops all cached glyphs.
func (gc *GlyphCache) Clear() { gc.c.Clear() }

// Stats returns cache statistics.
func (gc *GlyphCache) Stats() CacheStats {
	s := gc.c.Stats()
	return CacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate,
	}
}

// Cache returns the glyph cache used by f, nil when caching is disabled.
func (f *Font) Cache() *GlyphCache { return f.cache }
