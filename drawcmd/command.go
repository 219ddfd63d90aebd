package drawcmd

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/ngfx"
)

// Type is the kind of shape a command draws.
type Type uint8

// Command types.
const (
	TypeInvalid Type = iota
	TypePath
	TypeCircle
	TypePrecisePath
	TypePreciseCircle
)

// String returns the string representation of the command type.
func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "invalid"
	case TypePath:
		return "path"
	case TypeCircle:
		return "circle"
	case TypePrecisePath:
		return "precise-path"
	case TypePreciseCircle:
		return "precise-circle"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Precise reports whether the command's points are in 1/8 pixel units.
func (t Type) Precise() bool {
	return t == TypePrecisePath || t == TypePreciseCircle
}

// BWColor is a 2-bit fallback color used on 1-bit displays.
type BWColor uint8

// Fallback colors, in the order of their 2-bit encoding.
const (
	BWClear BWColor = iota
	BWGray
	BWBlack
	BWWhite
)

var bwLookup = [4]ngfx.Color{ngfx.ColorClear, ngfx.ColorLightGray, ngfx.ColorBlack, ngfx.ColorWhite}

// Color returns the packed color the fallback stands for.
func (c BWColor) Color() ngfx.Color {
	return bwLookup[c&0b11]
}

// Command layout: type, flags, stroke color, stroke width, fill color,
// u16 path flags or circle radius, u16 point count, then the points.
const (
	offType        = 0
	offFlags       = 1
	offStrokeColor = 2
	offStrokeWidth = 3
	offFillColor   = 4
	offParam       = 5
	offNumPoints   = 7
	commandHeader  = 9
	pointSize      = 4
)

// Flag bits.
const (
	flagHidden = 1 << 0
	flagUseBW  = 1 << 1
)

// Command is a single path or circle. It is a view over the blob it was
// parsed from; setters modify that blob.
type Command struct {
	data []byte
}

// Type returns the command type.
func (c Command) Type() Type { return Type(c.data[offType]) }

// Hidden reports whether the command is skipped when drawing.
func (c Command) Hidden() bool { return c.data[offFlags]&flagHidden != 0 }

// SetHidden sets the hidden flag.
func (c Command) SetHidden(hidden bool) {
	if hidden {
		c.data[offFlags] |= flagHidden
	} else {
		c.data[offFlags] &^= flagHidden
	}
}

// UseBW reports whether 1-bit targets should use the fallback colors.
func (c Command) UseBW() bool { return c.data[offFlags]&flagUseBW != 0 }

// BWStroke returns the fallback stroke color.
func (c Command) BWStroke() BWColor { return BWColor(c.data[offFlags] >> 2 & 0b11) }

// BWFill returns the fallback fill color.
func (c Command) BWFill() BWColor { return BWColor(c.data[offFlags] >> 4 & 0b11) }

// StrokeColor returns the stroke color.
func (c Command) StrokeColor() ngfx.Color { return ngfx.Color(c.data[offStrokeColor]) }

// SetStrokeColor sets the stroke color.
func (c Command) SetStrokeColor(col ngfx.Color) { c.data[offStrokeColor] = byte(col) }

// StrokeWidth returns the stroke width. Zero means the shape is not
// stroked.
func (c Command) StrokeWidth() uint8 { return c.data[offStrokeWidth] }

// SetStrokeWidth sets the stroke width.
func (c Command) SetStrokeWidth(w uint8) { c.data[offStrokeWidth] = w }

// FillColor returns the fill color.
func (c Command) FillColor() ngfx.Color { return ngfx.Color(c.data[offFillColor]) }

// SetFillColor sets the fill color.
func (c Command) SetFillColor(col ngfx.Color) { c.data[offFillColor] = byte(col) }

func (c Command) param() uint16 { return binary.LittleEndian.Uint16(c.data[offParam:]) }

func (c Command) setParam(v uint16) { binary.LittleEndian.PutUint16(c.data[offParam:], v) }

// PathOpen reports whether a path is left open. Only meaningful for path
// commands.
func (c Command) PathOpen() bool { return c.param()&1 != 0 }

// SetPathOpen sets the open flag of a path command.
func (c Command) SetPathOpen(open bool) {
	v := c.param() &^ 1
	if open {
		v |= 1
	}
	c.setParam(v)
}

// Radius returns the circle radius in pixels. Only meaningful for circle
// commands; precise circles keep whole-pixel radii too.
func (c Command) Radius() uint16 { return c.param() }

// SetRadius sets the circle radius.
func (c Command) SetRadius(r uint16) { c.setParam(r) }

// NumPoints returns the number of points.
func (c Command) NumPoints() int {
	return int(binary.LittleEndian.Uint16(c.data[offNumPoints:]))
}

// Point returns the i-th point as stored, in 1/8 pixel units for precise
// commands.
func (c Command) Point(i int) ngfx.Point {
	p := c.data[commandHeader+i*pointSize:]
	return ngfx.Point{
		X: int16(binary.LittleEndian.Uint16(p)),
		Y: int16(binary.LittleEndian.Uint16(p[2:])),
	}
}

// SetPoint replaces the i-th point.
func (c Command) SetPoint(i int, pt ngfx.Point) {
	p := c.data[commandHeader+i*pointSize:]
	binary.LittleEndian.PutUint16(p, uint16(pt.X))
	binary.LittleEndian.PutUint16(p[2:], uint16(pt.Y))
}

// Points returns the points converted to whole pixels.
func (c Command) Points() []ngfx.Point {
	pts := make([]ngfx.Point, c.NumPoints())
	precise := c.Type().Precise()
	for i := range pts {
		p := c.Point(i)
		if precise {
			p = ngfx.PrecisePoint(p).Point()
		}
		pts[i] = p
	}
	return pts
}

// Size returns the encoded length of the command in bytes.
func (c Command) Size() int { return len(c.data) }

func parseCommand(cur *cursor) (Command, error) {
	start := cur.off
	if err := cur.skip(offNumPoints, "command header"); err != nil {
		return Command{}, err
	}
	n, err := cur.u16("command point count")
	if err != nil {
		return Command{}, err
	}
	if err := cur.skip(int(n)*pointSize, "command points"); err != nil {
		return Command{}, err
	}
	return Command{data: cur.buf[start:cur.off:cur.off]}, nil
}

// List is an ordered sequence of commands.
type List struct {
	cmds []Command
	size int
}

func parseList(cur *cursor) (List, error) {
	start := cur.off
	n, err := cur.u16("command count")
	if err != nil {
		return List{}, err
	}
	l := List{cmds: make([]Command, 0, n)}
	for i := 0; i < int(n); i++ {
		cmd, err := parseCommand(cur)
		if err != nil {
			return List{}, fmt.Errorf("command %d: %w", i, err)
		}
		l.cmds = append(l.cmds, cmd)
	}
	l.size = cur.off - start
	return l, nil
}

// NumCommands returns the number of commands.
func (l List) NumCommands() int { return len(l.cmds) }

// Command returns the i-th command.
func (l List) Command(i int) Command { return l.cmds[i] }

// Iterate calls fn for every command in order until fn returns false.
func (l List) Iterate(fn func(i int, cmd Command) bool) {
	for i, cmd := range l.cmds {
		if !fn(i, cmd) {
			return
		}
	}
}

// Size returns the encoded length of the list in bytes.
func (l List) Size() int { return l.size }
