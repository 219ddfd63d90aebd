package text

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/ngfx"
)

// Header lengths of the fixed-layout font versions. Version 3 and later
// store their header length in the HeaderSize field.
const (
	headerSizeV1 = 6
	headerSizeV2 = 8
	headerSizeV3 = 10
)

// Defaults for fields missing from older headers.
const (
	defaultHashTableSize  = 255
	defaultCodepointBytes = 4
)

// hashEntrySize is the size of one hash table entry.
const hashEntrySize = 4

// tofuOffset is the glyph-data offset of the missing-glyph record.
const tofuOffset = 4

// Features is the font feature bit set.
type Features uint8

const (
	// FeatureShortOffsets stores glyph offsets as 2 bytes instead of 4.
	FeatureShortOffsets Features = 1 << iota
	// FeatureRLE4 marks RLE4-compressed bitmaps. Fonts using it are
	// rejected.
	FeatureRLE4
)

// Has reports whether all bits of f2 are set.
func (f Features) Has(f2 Features) bool {
	return f&f2 == f2
}

// Info is a decoded font header.
type Info struct {
	Version           uint8
	LineHeight        uint8
	GlyphCount        uint16
	WildcardCodepoint uint16
	HashTableSize     uint8
	CodepointBytes    uint8
	HeaderSize        uint8
	Features          Features
}

func (in Info) offsetBytes() int {
	if in.Features.Has(FeatureShortOffsets) {
		return 2
	}
	return 4
}

// entryLen is the size of one offset table entry.
func (in Info) entryLen() int {
	return int(in.CodepointBytes) + in.offsetBytes()
}

// Font is a bitmap font read through an io.ReaderAt.
//
// Lookups only read the font source; Font is safe for concurrent use as
// long as the source is. The glyph cache is mutex-guarded.
type Font struct {
	src    io.ReaderAt
	size   int64
	closer io.Closer

	info      Info
	tablesEnd int64
	glyphBase int64

	tofu  *Glyph
	cache *GlyphCache
}

// NewFont parses the font header of the size-byte blob in src and loads
// its tofu glyph. Glyphs are read from src on demand, so src must stay
// readable for the lifetime of the Font.
func NewFont(src io.ReaderAt, size int64, opts ...FontOption) (*Font, error) {
	if src == nil || size <= 0 {
		return nil, ErrEmptyFontData
	}
	cfg := defaultFontConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Font{src: src, size: size, cache: cfg.cache}
	if f.cache == nil && cfg.cacheSize > 0 {
		f.cache = NewGlyphCache(cfg.cacheSize)
	}
	if err := f.readHeader(); err != nil {
		return nil, err
	}
	tofu, err := f.readGlyph(tofuOffset)
	if err != nil {
		return nil, fmt.Errorf("text: read tofu glyph: %w", err)
	}
	f.tofu = tofu
	return f, nil
}

// NewFontFromBytes is NewFont over an in-memory blob. The slice is not
// copied and must not be modified while the Font is in use.
func NewFontFromBytes(data []byte, opts ...FontOption) (*Font, error) {
	return NewFont(bytes.NewReader(data), int64(len(data)), opts...)
}

// OpenFont opens a font file and reads glyphs from it on demand.
// The caller must Close the returned Font.
func OpenFont(name string, opts ...FontOption) (*Font, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("text: open font: %w", err)
	}
	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("text: open font: %w", err)
	}
	f, err := NewFont(file, st.Size(), opts...)
	if err != nil {
		file.Close()
		return nil, err
	}
	f.closer = file
	return f, nil
}

// Close drops the font's glyphs from its cache and releases the file of a
// Font created by OpenFont.
func (f *Font) Close() error {
	if f.cache != nil {
		f.cache.forget(f)
	}
	if f.closer == nil {
		return nil
	}
	err := f.closer.Close()
	f.closer = nil
	return err
}

func (f *Font) readHeader() error {
	var hdr [headerSizeV3]byte
	n, err := f.src.ReadAt(hdr[:], 0)
	if n < 1 {
		if err == nil || errors.Is(err, io.EOF) {
			return ErrEmptyFontData
		}
		return fmt.Errorf("text: read font header: %w", err)
	}

	in := Info{Version: hdr[0]}
	switch {
	case in.Version == 0:
		return &VersionError{Version: in.Version}
	case in.Version == 1:
		in.HeaderSize = headerSizeV1
	case in.Version == 2:
		in.HeaderSize = headerSizeV2
	default:
		if n < headerSizeV3 {
			return ErrTruncated
		}
		in.HeaderSize = hdr[8]
		if in.HeaderSize < headerSizeV3 {
			return fmt.Errorf("%w: header size %d", ErrInvalidHeader, in.HeaderSize)
		}
	}
	if n < int(min(in.HeaderSize, headerSizeV3)) || int64(in.HeaderSize) > f.size {
		return ErrTruncated
	}

	in.LineHeight = hdr[1]
	in.GlyphCount = binary.LittleEndian.Uint16(hdr[2:])
	in.WildcardCodepoint = binary.LittleEndian.Uint16(hdr[4:])
	in.HashTableSize = defaultHashTableSize
	in.CodepointBytes = defaultCodepointBytes
	if in.Version >= 2 {
		in.HashTableSize = hdr[6]
		in.CodepointBytes = hdr[7]
	}
	if in.Version >= 3 {
		in.Features = Features(hdr[9])
	}

	if in.HashTableSize == 0 {
		return fmt.Errorf("%w: zero hash table size", ErrInvalidHeader)
	}
	if in.CodepointBytes == 0 || in.CodepointBytes > 4 {
		return fmt.Errorf("%w: codepoint width %d", ErrInvalidHeader, in.CodepointBytes)
	}
	if in.Features.Has(FeatureRLE4) {
		return fmt.Errorf("%w: RLE4 bitmaps", ErrUnsupportedFeature)
	}

	f.info = in
	f.tablesEnd = int64(in.HeaderSize) + int64(in.HashTableSize)*hashEntrySize
	f.glyphBase = f.tablesEnd + int64(in.entryLen())*int64(in.GlyphCount)
	if f.glyphBase > f.size {
		return ErrTruncated
	}
	return nil
}

// Info returns the decoded font header.
func (f *Font) Info() Info { return f.info }

// Version returns the font format version.
func (f *Font) Version() uint8 { return f.info.Version }

// LineHeight returns the distance between consecutive lines in pixels.
func (f *Font) LineHeight() int { return int(f.info.LineHeight) }

// GlyphCount returns the number of glyphs in the offset tables, not
// counting the tofu glyph.
func (f *Font) GlyphCount() int { return int(f.info.GlyphCount) }

// WildcardCodepoint returns the codepoint the font designates as a
// replacement character.
func (f *Font) WildcardCodepoint() rune { return rune(f.info.WildcardCodepoint) }

// Tofu returns the glyph drawn for codepoints the font lacks.
func (f *Font) Tofu() *Glyph { return f.tofu }

// Lookup resolves cp to its glyph. found is false when the font has no
// glyph for cp; the tofu glyph is returned then. An error is returned
// only when the font source cannot be read or is malformed.
func (f *Font) Lookup(cp rune) (g *Glyph, found bool, err error) {
	if f.cache != nil {
		if e, ok := f.cache.get(f, cp); ok {
			return e.glyph, e.found, nil
		}
	}
	g, found, err = f.lookup(cp)
	if err != nil {
		return nil, false, err
	}
	if f.cache != nil {
		f.cache.put(f, cp, cachedGlyph{glyph: g, found: found})
	}
	return g, found, nil
}

func (f *Font) lookup(cp rune) (*Glyph, bool, error) {
	if cp < 0 {
		return f.tofu, false, nil
	}
	hts := uint32(f.info.HashTableSize)
	bucket := uint32(cp) % hts

	var entry [hashEntrySize]byte
	if err := f.readFull(entry[:], int64(f.info.HeaderSize)+int64(bucket)*hashEntrySize); err != nil {
		return nil, false, err
	}
	if uint32(entry[0]) != bucket {
		return f.tofu, false, nil
	}
	count := int(entry[1])
	tableOff := int64(binary.LittleEndian.Uint16(entry[2:]))

	elen := f.info.entryLen()
	table := make([]byte, count*elen)
	if err := f.readFull(table, f.tablesEnd+tableOff); err != nil {
		return nil, false, err
	}
	cpBytes := int(f.info.CodepointBytes)
	for i := 0; i < count; i++ {
		e := table[i*elen : (i+1)*elen]
		if uint32(cp) != readUint(e[:cpBytes]) {
			continue
		}
		g, err := f.readGlyph(int64(readUint(e[cpBytes:])))
		if err != nil {
			return nil, false, err
		}
		return g, true, nil
	}
	return f.tofu, false, nil
}

// Glyph returns the glyph for cp, the tofu glyph when the font lacks it.
// Read errors are logged and also yield the tofu glyph.
func (f *Font) Glyph(cp rune) *Glyph {
	g, _, err := f.Lookup(cp)
	if err != nil {
		ngfx.Logger().Warn("text: glyph read failed, using tofu",
			"codepoint", cp, "err", err)
		return f.tofu
	}
	return g
}

// Advance returns the advance of the glyph drawn for cp.
func (f *Font) Advance(cp rune) int {
	return int(f.Glyph(cp).Advance)
}

// readGlyph reads the glyph stored at offset off of the glyph data.
func (f *Font) readGlyph(off int64) (*Glyph, error) {
	pos := f.glyphBase + off
	var hdr [glyphHeaderSize]byte
	if err := f.readFull(hdr[:], pos); err != nil {
		return nil, err
	}
	g := decodeGlyphHeader(hdr[:])
	g.Bitmap = make([]byte, bitmapLen(g.Width, g.Height))
	if err := f.readFull(g.Bitmap, pos+glyphHeaderSize); err != nil {
		return nil, err
	}
	return g, nil
}

func (f *Font) readFull(b []byte, off int64) error {
	if off < 0 || off+int64(len(b)) > f.size {
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTruncated, len(b), off)
	}
	n, err := f.src.ReadAt(b, off)
	if n == len(b) {
		return nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		err = ErrTruncated
	}
	return fmt.Errorf("text: read %d bytes at offset %d: %w", len(b), off, err)
}

// readUint decodes a little-endian unsigned integer of 1 to 4 bytes.
func readUint(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}
	return v
}
