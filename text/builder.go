package text

import (
	"encoding/binary"
	"math"
	"slices"
)

// Builder assembles a font blob from individual glyphs.
//
// The zero values of the exported fields select defaults: version 3, a
// 255-bucket hash table, 2-byte codepoints when every codepoint fits in
// 16 bits, and 2-byte glyph offsets when the glyph data is small enough.
type Builder struct {
	Version           uint8
	LineHeight        uint8
	WildcardCodepoint uint16
	HashTableSize     uint8
	CodepointBytes    uint8
	// LongOffsets forces 4-byte glyph offsets in version 3 fonts.
	LongOffsets bool

	tofu   *Glyph
	glyphs map[rune]*Glyph
}

// NewBuilder returns a version 3 builder with an empty tofu glyph.
func NewBuilder(lineHeight uint8) *Builder {
	return &Builder{
		LineHeight: lineHeight,
		tofu:       NewGlyph(0, 0, 0, 0, 0),
		glyphs:     make(map[rune]*Glyph),
	}
}

// SetTofu sets the glyph drawn for missing codepoints.
func (b *Builder) SetTofu(g *Glyph) {
	b.tofu = g
}

// Add adds or replaces the glyph for cp.
func (b *Builder) Add(cp rune, g *Glyph) {
	if b.glyphs == nil {
		b.glyphs = make(map[rune]*Glyph)
	}
	b.glyphs[cp] = g
}

// Len returns the number of glyphs added, not counting tofu.
func (b *Builder) Len() int {
	return len(b.glyphs)
}

// Bytes encodes the font.
func (b *Builder) Bytes() ([]byte, error) {
	version := b.Version
	if version == 0 {
		version = 3
	}
	if len(b.glyphs) > math.MaxUint16 {
		return nil, &BuildError{Codepoint: -1, Reason: "too many glyphs"}
	}

	cps := make([]rune, 0, len(b.glyphs))
	for cp := range b.glyphs {
		if cp < 0 {
			return nil, &BuildError{Codepoint: cp, Reason: "negative codepoint"}
		}
		cps = append(cps, cp)
	}
	slices.Sort(cps)

	hts := b.HashTableSize
	cpBytes := b.CodepointBytes
	if version < 2 {
		hts, cpBytes = defaultHashTableSize, defaultCodepointBytes
	}
	if hts == 0 {
		hts = defaultHashTableSize
	}
	if cpBytes == 0 {
		cpBytes = 2
		if len(cps) > 0 && cps[len(cps)-1] > math.MaxUint16 {
			cpBytes = 4
		}
	}
	if cpBytes > 4 {
		return nil, &BuildError{Codepoint: -1, Reason: "codepoint width above 4 bytes"}
	}

	// Glyph data: reserved word, tofu, then glyphs in codepoint order.
	tofu := b.tofu
	if tofu == nil {
		tofu = NewGlyph(0, 0, 0, 0, 0)
	}
	data := make([]byte, tofuOffset)
	data = appendGlyph(data, tofu)
	offsets := make(map[rune]uint32, len(cps))
	for _, cp := range cps {
		offsets[cp] = uint32(len(data))
		data = appendGlyph(data, b.glyphs[cp])
	}

	var features Features
	if version >= 3 && !b.LongOffsets && len(data) <= math.MaxUint16 {
		features |= FeatureShortOffsets
	}
	info := Info{
		Version:           version,
		LineHeight:        b.LineHeight,
		GlyphCount:        uint16(len(cps)),
		WildcardCodepoint: b.WildcardCodepoint,
		HashTableSize:     hts,
		CodepointBytes:    cpBytes,
		Features:          features,
	}
	switch version {
	case 1:
		info.HeaderSize = headerSizeV1
	case 2:
		info.HeaderSize = headerSizeV2
	default:
		info.HeaderSize = headerSizeV3
	}

	buckets := make([][]rune, hts)
	for _, cp := range cps {
		if cpBytes < 4 && uint64(cp) >= 1<<(8*uint(cpBytes)) {
			return nil, &BuildError{Codepoint: cp, Reason: "does not fit the codepoint width"}
		}
		i := uint32(cp) % uint32(hts)
		buckets[i] = append(buckets[i], cp)
	}

	out := appendHeader(nil, info)
	elen := info.entryLen()
	var tables []byte
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			// No bucket index equals 0xFF, so lookups fall through to tofu.
			out = append(out, 0xFF, 0, 0, 0)
			continue
		}
		if len(bucket) > math.MaxUint8 {
			return nil, &BuildError{Codepoint: bucket[0], Reason: "hash bucket overflow, use a larger hash table"}
		}
		if len(tables) > math.MaxUint16 {
			return nil, &BuildError{Codepoint: bucket[0], Reason: "offset tables too large"}
		}
		out = append(out, byte(i), byte(len(bucket)))
		out = binary.LittleEndian.AppendUint16(out, uint16(len(tables)))
		for _, cp := range bucket {
			entry := make([]byte, elen)
			putUint(entry[:cpBytes], uint32(cp))
			putUint(entry[cpBytes:], offsets[cp])
			tables = append(tables, entry...)
		}
	}
	out = append(out, tables...)
	return append(out, data...), nil
}

func appendHeader(b []byte, in Info) []byte {
	b = append(b, in.Version, in.LineHeight)
	b = binary.LittleEndian.AppendUint16(b, in.GlyphCount)
	b = binary.LittleEndian.AppendUint16(b, in.WildcardCodepoint)
	if in.Version >= 2 {
		b = append(b, in.HashTableSize, in.CodepointBytes)
	}
	if in.Version >= 3 {
		b = append(b, in.HeaderSize, byte(in.Features))
	}
	return b
}

// putUint encodes v little-endian into all of b.
func putUint(b []byte, v uint32) {
	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}
