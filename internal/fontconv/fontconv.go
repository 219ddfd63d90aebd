package fontconv

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"math"
	"slices"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ngfx"
	"github.com/gogpu/ngfx/text"
)

// Range is an inclusive codepoint range.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether r lies in the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// DefaultRanges covers printable ASCII, Latin-1 and Latin Extended-A.
var DefaultRanges = []Range{
	{0x20, 0x7E},
	{0xA0, 0x17F},
}

// ErrNoGlyphs is returned when no requested codepoint has a glyph.
var ErrNoGlyphs = errors.New("fontconv: no glyphs in the requested ranges")

// Options configures a conversion.
type Options struct {
	// Size is the font size in pixels per em. Ignored by FromFace.
	Size float64
	// LineHeight overrides the line height taken from the face metrics.
	LineHeight int
	// Threshold is the minimum coverage, 1 to 255, of an inked pixel.
	// Zero selects 128.
	Threshold uint8
	// Ranges selects the codepoints to convert. Nil selects DefaultRanges.
	Ranges []Range
	// Wildcard is stored as the font's wildcard codepoint.
	Wildcard rune
	// HashTableSize overrides the default hash table size.
	HashTableSize uint8
}

func (o Options) threshold() uint32 {
	if o.Threshold == 0 {
		return 128 * 0x101
	}
	return uint32(o.Threshold) * 0x101
}

func (o Options) ranges() []Range {
	if o.Ranges == nil {
		return DefaultRanges
	}
	return o.Ranges
}

func (o Options) wanted(r rune) bool {
	for _, rg := range o.ranges() {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

// Result is a converted font.
type Result struct {
	// Font is the encoded font blob.
	Font []byte
	// Glyphs is the number of converted glyphs.
	Glyphs int
	// Skipped lists codepoints whose glyphs did not fit the bitmap font
	// limits.
	Skipped []rune
}

// Coverage returns the codepoints mapped by the cmap of a TrueType or
// OpenType font, in ascending order.
func Coverage(ttf []byte) ([]rune, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("fontconv: parse font: %w", err)
	}
	var runes []rune
	it := face.Cmap.Iter()
	for it.Next() {
		r, _ := it.Char()
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return slices.Compact(runes), nil
}

// FromTTF converts a TrueType or OpenType font at opts.Size pixels per em.
func FromTTF(ttf []byte, opts Options) (*Result, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("fontconv: invalid size %v", opts.Size)
	}
	covered, err := Coverage(ttf)
	if err != nil {
		return nil, err
	}
	runes := covered[:0:0]
	for _, r := range covered {
		if opts.wanted(r) {
			runes = append(runes, r)
		}
	}

	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("fontconv: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fontconv: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()
	return convert(face, runes, opts)
}

// FromFace converts every codepoint of opts.Ranges that face can draw.
func FromFace(face font.Face, opts Options) (*Result, error) {
	var runes []rune
	for _, rg := range opts.ranges() {
		for r := rg.Lo; r <= rg.Hi; r++ {
			if _, ok := face.GlyphAdvance(r); ok {
				runes = append(runes, r)
			}
		}
	}
	return convert(face, runes, opts)
}

func convert(face font.Face, runes []rune, opts Options) (*Result, error) {
	m := face.Metrics()
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = m.Height.Ceil()
	}
	if lineHeight > math.MaxUint8 {
		return nil, fmt.Errorf("fontconv: line height %d above 255", lineHeight)
	}
	ascent := m.Ascent.Ceil()

	b := text.NewBuilder(uint8(lineHeight))
	b.WildcardCodepoint = uint16(opts.Wildcard)
	b.HashTableSize = opts.HashTableSize

	res := &Result{}
	for _, r := range runes {
		g, ok := rasterize(face, r, ascent, opts.threshold())
		if !ok {
			res.Skipped = append(res.Skipped, r)
			continue
		}
		b.Add(r, g)
	}
	if b.Len() == 0 {
		return nil, ErrNoGlyphs
	}
	b.SetTofu(tofu(face, ascent))
	res.Glyphs = b.Len()
	if len(res.Skipped) > 0 {
		ngfx.Logger().Debug("fontconv: skipped glyphs", "count", len(res.Skipped))
	}

	blob, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("fontconv: %w", err)
	}
	res.Font = blob
	return res, nil
}

// rasterize draws r with its baseline ascent pixels below the line top.
// It reports false when the glyph is missing or exceeds the field widths
// of the bitmap format.
func rasterize(face font.Face, r rune, ascent int, threshold uint32) (*text.Glyph, bool) {
	dr, mask, mp, adv, ok := face.Glyph(fixed.P(0, ascent), r)
	if !ok {
		return nil, false
	}
	advance := adv.Round()
	if !fitsInt8(advance) || !fitsInt8(dr.Min.X) || !fitsInt8(dr.Min.Y) ||
		dr.Dx() > math.MaxUint8 || dr.Dy() > math.MaxUint8 {
		return nil, false
	}

	g := text.NewGlyph(uint8(dr.Dx()), uint8(dr.Dy()), int8(dr.Min.X), int8(dr.Min.Y), int8(advance))
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			_, _, _, a := mask.At(mp.X+x, mp.Y+y).RGBA()
			if a >= threshold {
				g.SetBit(x, y, true)
			}
		}
	}
	return trim(g), true
}

// trim drops empty rows and columns around the inked pixels, adjusting
// the bearings. A blank glyph keeps only its advance.
func trim(g *text.Glyph) *text.Glyph {
	ink := image.Rectangle{}
	for y := 0; y < int(g.Height); y++ {
		for x := 0; x < int(g.Width); x++ {
			if g.Bit(x, y) {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if ink.Dx() == int(g.Width) && ink.Dy() == int(g.Height) {
		return g
	}
	if ink.Empty() {
		return text.NewGlyph(0, 0, 0, 0, g.Advance)
	}
	t := text.NewGlyph(uint8(ink.Dx()), uint8(ink.Dy()),
		g.Left+int8(ink.Min.X), g.Top+int8(ink.Min.Y), g.Advance)
	for y := ink.Min.Y; y < ink.Max.Y; y++ {
		for x := ink.Min.X; x < ink.Max.X; x++ {
			t.SetBit(x-ink.Min.X, y-ink.Min.Y, g.Bit(x, y))
		}
	}
	return t
}

// tofu returns a hollow box as wide as the face's digit zero and as tall
// as its ascent.
func tofu(face font.Face, ascent int) *text.Glyph {
	adv, ok := face.GlyphAdvance('0')
	w := adv.Round() - 2
	if !ok || w < 3 {
		w = max(3, ascent/2)
	}
	h := max(3, ascent)
	w, h = min(w, math.MaxInt8-1), min(h, math.MaxInt8)
	g := text.NewGlyph(uint8(w), uint8(h), 1, int8(max(0, ascent-h)), int8(w+2))
	for x := 0; x < w; x++ {
		g.SetBit(x, 0, true)
		g.SetBit(x, h-1, true)
	}
	for y := 0; y < h; y++ {
		g.SetBit(0, y, true)
		g.SetBit(w-1, y, true)
	}
	return g
}

func fitsInt8(v int) bool {
	return v >= math.MinInt8 && v <= math.MaxInt8
}
