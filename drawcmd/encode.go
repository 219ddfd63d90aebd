package drawcmd

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/ngfx"
)

// Shape describes one command to encode.
type Shape struct {
	Type        Type
	Hidden      bool
	StrokeColor ngfx.Color
	StrokeWidth uint8
	FillColor   ngfx.Color

	// UseBW selects BWStroke and BWFill on 1-bit displays.
	UseBW    bool
	BWStroke BWColor
	BWFill   BWColor

	// Open applies to paths, Radius to circles.
	Open   bool
	Radius uint16

	// Points are in 1/8 pixel units for precise types.
	Points []ngfx.Point
}

// FrameShapes is the content of one sequence frame.
type FrameShapes struct {
	Duration uint16
	Shapes   []Shape
}

// AppendCommand appends the encoding of s to b.
func AppendCommand(b []byte, s Shape) ([]byte, error) {
	if len(s.Points) > math.MaxUint16 {
		return b, fmt.Errorf("drawcmd: %d points exceed the format limit", len(s.Points))
	}
	flags := byte(s.BWStroke&0b11)<<2 | byte(s.BWFill&0b11)<<4
	if s.Hidden {
		flags |= flagHidden
	}
	if s.UseBW {
		flags |= flagUseBW
	}
	param := s.Radius
	if s.Type == TypePath || s.Type == TypePrecisePath {
		param = 0
		if s.Open {
			param = 1
		}
	}
	b = append(b, byte(s.Type), flags, byte(s.StrokeColor), s.StrokeWidth, byte(s.FillColor))
	b = binary.LittleEndian.AppendUint16(b, param)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(s.Points)))
	for _, p := range s.Points {
		b = binary.LittleEndian.AppendUint16(b, uint16(p.X))
		b = binary.LittleEndian.AppendUint16(b, uint16(p.Y))
	}
	return b, nil
}

// AppendList appends a command list holding shapes to b.
func AppendList(b []byte, shapes []Shape) ([]byte, error) {
	if len(shapes) > math.MaxUint16 {
		return b, fmt.Errorf("drawcmd: %d commands exceed the format limit", len(shapes))
	}
	b = binary.LittleEndian.AppendUint16(b, uint16(len(shapes)))
	var err error
	for i, s := range shapes {
		if b, err = AppendCommand(b, s); err != nil {
			return b, fmt.Errorf("command %d: %w", i, err)
		}
	}
	return b, nil
}

// EncodeImage returns an image blob at MaxVersion.
func EncodeImage(viewBox ngfx.Size, shapes []Shape) ([]byte, error) {
	b := []byte{MaxVersion, 0}
	b = binary.LittleEndian.AppendUint16(b, uint16(viewBox.W))
	b = binary.LittleEndian.AppendUint16(b, uint16(viewBox.H))
	return AppendList(b, shapes)
}

// EncodeSequence returns a sequence blob at MaxVersion.
func EncodeSequence(viewBox ngfx.Size, playCount uint16, frames []FrameShapes) ([]byte, error) {
	if len(frames) > math.MaxUint16 {
		return nil, fmt.Errorf("drawcmd: %d frames exceed the format limit", len(frames))
	}
	b := []byte{MaxVersion, 0}
	b = binary.LittleEndian.AppendUint16(b, uint16(viewBox.W))
	b = binary.LittleEndian.AppendUint16(b, uint16(viewBox.H))
	b = binary.LittleEndian.AppendUint16(b, playCount)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(frames)))
	var err error
	for i, f := range frames {
		b = binary.LittleEndian.AppendUint16(b, f.Duration)
		if b, err = AppendList(b, f.Shapes); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return b, nil
}

// WrapFile prefixes a blob with a resource header: magic (MagicImage or
// MagicSequence) and the payload size.
func WrapFile(magic string, payload []byte) []byte {
	b := make([]byte, 0, fileHeader+len(payload))
	b = append(b, magic[:4]...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(payload)))
	return append(b, payload...)
}
