package drawcmd

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/ngfx"
)

// Frame is one step of a sequence: a duration and a command list.
type Frame struct {
	data []byte
	list List
}

// Duration returns how long the frame is shown, in milliseconds.
func (f Frame) Duration() uint16 { return binary.LittleEndian.Uint16(f.data) }

// SetDuration sets the frame duration in milliseconds.
func (f Frame) SetDuration(ms uint16) { binary.LittleEndian.PutUint16(f.data, ms) }

// List returns the frame's commands.
func (f Frame) List() List { return f.list }

// Sequence is an animation: frames shown one after another, repeated
// PlayCount times.
type Sequence struct {
	data   []byte
	frames []Frame
}

// Sequence header: version, reserved, view box, play count, frame count.
const (
	seqOffViewBox   = 2
	seqOffPlayCount = 6
	seqHeader       = 10
)

// ParseSequence parses a sequence blob.
func ParseSequence(data []byte) (*Sequence, error) {
	cur := &cursor{buf: data}
	if err := parseVersion(cur); err != nil {
		return nil, err
	}
	if err := cur.skip(seqHeader-3, "sequence header"); err != nil {
		return nil, err
	}
	n, err := cur.u16("frame count")
	if err != nil {
		return nil, err
	}
	s := &Sequence{data: data, frames: make([]Frame, 0, n)}
	for i := 0; i < int(n); i++ {
		start := cur.off
		if _, err := cur.u16("frame duration"); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		list, err := parseList(cur)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		s.frames = append(s.frames, Frame{data: data[start:cur.off:cur.off], list: list})
	}
	return s, nil
}

// ParseSequenceFile parses a sequence resource file with its "PDCS"
// header.
func ParseSequenceFile(data []byte) (*Sequence, error) {
	payload, err := unwrapFile(data, MagicSequence)
	if err != nil {
		return nil, err
	}
	return ParseSequence(payload)
}

// Version returns the format version.
func (s *Sequence) Version() uint8 { return s.data[0] }

// ViewBox returns the sequence bounds size.
func (s *Sequence) ViewBox() ngfx.Size { return readSize(s.data[seqOffViewBox:]) }

// SetViewBox sets the sequence bounds size.
func (s *Sequence) SetViewBox(size ngfx.Size) { writeSize(s.data[seqOffViewBox:], size) }

// PlayCount returns how many times the sequence is meant to play.
// Looping is up to the caller.
func (s *Sequence) PlayCount() uint16 {
	return binary.LittleEndian.Uint16(s.data[seqOffPlayCount:])
}

// SetPlayCount sets the play count.
func (s *Sequence) SetPlayCount(n uint16) {
	binary.LittleEndian.PutUint16(s.data[seqOffPlayCount:], n)
}

// NumFrames returns the number of frames.
func (s *Sequence) NumFrames() int { return len(s.frames) }

// Frame returns the frame at index.
func (s *Sequence) Frame(index int) (Frame, bool) {
	if index < 0 || index >= len(s.frames) {
		return Frame{}, false
	}
	return s.frames[index], true
}

// FrameAtElapsed returns the frame showing ms milliseconds into one play
// of the sequence: the first frame whose cumulative end time exceeds ms.
// Past the end it stays on the last frame. It reports false only for a
// sequence without frames.
func (s *Sequence) FrameAtElapsed(ms uint32) (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	var elapsed uint32
	for _, f := range s.frames[:len(s.frames)-1] {
		elapsed += uint32(f.Duration())
		if elapsed > ms {
			return f, true
		}
	}
	return s.frames[len(s.frames)-1], true
}

// TotalDuration returns the sum of all frame durations in milliseconds.
func (s *Sequence) TotalDuration() uint32 {
	var total uint32
	for _, f := range s.frames {
		total += uint32(f.Duration())
	}
	return total
}
