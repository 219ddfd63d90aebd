package text

import "github.com/gogpu/ngfx"

// Line is one laid-out line of a Layout.
type Line struct {
	// Start and End delimit the line's bytes in Layout.Text. A line that
	// ends at a forced break excludes the newline.
	Start, End int
	// Hyphen reports whether a hyphen is drawn after the line.
	Hyphen bool
	// X and Y position the line's pen origin relative to the box origin.
	X, Y int
	// Width is the advance of the line's glyphs and hyphen, leaving out
	// trailing spaces.
	Width int
}

// Layout is text broken into lines that fit a box.
type Layout struct {
	// Text is the laid-out text, after normalization.
	Text  string
	Lines []Line
	// Truncated reports whether text was dropped because the box ran out
	// of lines.
	Truncated bool

	font *Font
	box  ngfx.Rect
	cfg  layoutConfig
}

// NewLayout breaks s into lines that fit box.
//
// Lines are filled greedily. When a glyph overflows the box width, the
// line is broken after the last space on it, else after the last glyph
// that allows a hyphenated break, else before the overflowing glyph; the
// last two get a hyphen. Every line holds at least one glyph, so a box
// narrower than a glyph yields one glyph per line. A line may overhang
// the box by less than the width of a space. A newline forces a break
// unless a hyphen after the preceding glyph would overflow, in which case
// it is laid out as an ordinary glyph.
//
// Layout stops once another line would extend below the box; the first
// line is always laid out.
func NewLayout(s string, f *Font, box ngfx.Rect, opts ...LayoutOption) *Layout {
	var cfg layoutConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.form != nil {
		s = cfg.form.String(s)
	}
	l := &Layout{Text: s, font: f, box: box.Standardize(), cfg: cfg}
	if cfg.overflow != OverflowWordWrap {
		ngfx.Logger().Debug("text: overflow mode laid out as word wrap", "mode", cfg.overflow)
	}
	l.wrap()
	l.align()
	return l
}

// wrapper holds the per-line state of Layout.wrap.
type wrapper struct {
	start       int
	x           int
	lastGood    int
	lastAllowed int
	prev        rune
}

func (w *wrapper) reset(start int) {
	*w = wrapper{start: start, lastGood: -1, lastAllowed: -1}
}

func (l *Layout) wrap() {
	f, s := l.font, l.Text
	if f == nil {
		return
	}
	width := int(l.box.Size.W)
	height := int(l.box.Size.H)
	lineHeight := f.LineHeight()
	lenience := f.Advance(' ')
	hyphen := f.Advance('-')
	hyphenAfter := func(r rune) int {
		if needsHyphen(r) {
			return hyphen
		}
		return 0
	}

	y := 0
	var w wrapper
	w.reset(0)

	// emit closes the line at end and starts the next one at next. It
	// reports false when the next line does not fit the box.
	emit := func(end, next int, hy bool) bool {
		l.Lines = append(l.Lines, Line{Start: w.start, End: end, Hyphen: hy, Y: y})
		y += lineHeight
		w.reset(next)
		if y+lineHeight > height {
			l.Truncated = next < len(s)
			return false
		}
		return true
	}

	i := 0
	for i < len(s) {
		r, n := decodeRune(s, i)
		if r == '\n' && w.x+hyphenAfter(w.prev) <= width {
			if !emit(i, i+1, false) {
				return
			}
			i++
			continue
		}

		adv := f.Advance(r)
		if i > w.start && w.x+adv+hyphenAfter(r)-lenience > width {
			var end int
			var hy bool
			switch {
			case w.lastGood > w.start:
				end = w.lastGood
			case w.lastAllowed > w.start:
				end, hy = w.lastAllowed, true
			default:
				end, hy = i, true
			}
			if !emit(end, end, hy) {
				return
			}
			i = end
			continue
		}

		w.x += adv
		w.prev = r
		i += n
		if allowPrebreak(r) && w.x+hyphenAfter(r) <= width {
			w.lastAllowed = i
		}
		if goodPostbreak(r) && w.x-adv <= width {
			w.lastGood = i
		}
	}
	if w.start < len(s) {
		l.Lines = append(l.Lines, Line{Start: w.start, End: len(s), Y: y})
	}
}

// align measures each line and positions it within the box.
func (l *Layout) align() {
	boxW := int(l.box.Size.W)
	for i := range l.Lines {
		ln := &l.Lines[i]
		ln.Width = l.measure(ln.Start, ln.End)
		if ln.Hyphen {
			ln.Width += l.font.Advance('-')
		}
		switch l.cfg.alignment {
		case AlignCenter:
			ln.X = (boxW - ln.Width) / 2
		case AlignRight:
			ln.X = boxW - ln.Width
		}
	}
}

// measure returns the advance of s[start:end] without trailing spaces.
func (l *Layout) measure(start, end int) int {
	total, trailing := 0, 0
	for i := start; i < end; {
		r, n := decodeRune(l.Text, i)
		i += n
		if r == '\n' {
			continue
		}
		adv := l.font.Advance(r)
		total += adv
		if ignoredAtLineEnd(r) {
			trailing += adv
		} else {
			trailing = 0
		}
	}
	return total - trailing
}

// Box returns the standardized layout box.
func (l *Layout) Box() ngfx.Rect { return l.box }

// Size returns the size of the laid-out text: the widest line by the
// number of lines times the line height.
func (l *Layout) Size() ngfx.Size {
	if l.font == nil {
		return ngfx.Size{}
	}
	w := 0
	for _, ln := range l.Lines {
		w = max(w, ln.Width)
	}
	return ngfx.Sz(w, len(l.Lines)*l.font.LineHeight())
}

// LineText returns the text of line i.
func (l *Layout) LineText(i int) string {
	ln := l.Lines[i]
	return l.Text[ln.Start:ln.End]
}

// Draw renders the layout with the context's text color.
func (l *Layout) Draw(ctx *ngfx.Context) {
	if l.font == nil {
		return
	}
	for _, ln := range l.Lines {
		pen := ngfx.Pt(int(l.box.Origin.X)+ln.X, int(l.box.Origin.Y)+ln.Y)
		for i := ln.Start; i < ln.End; {
			r, n := decodeRune(l.Text, i)
			i += n
			g := l.font.Glyph(r)
			DrawGlyph(ctx, g, pen)
			pen.X += int16(g.Advance)
		}
		if ln.Hyphen {
			DrawGlyph(ctx, l.font.Glyph('-'), pen)
		}
	}
}

// DrawText lays out s in box and draws it.
func DrawText(ctx *ngfx.Context, s string, f *Font, box ngfx.Rect, opts ...LayoutOption) {
	NewLayout(s, f, box, opts...).Draw(ctx)
}

// ContentSize returns the size s occupies when laid out in box.
func ContentSize(s string, f *Font, box ngfx.Rect, opts ...LayoutOption) ngfx.Size {
	return NewLayout(s, f, box, opts...).Size()
}
