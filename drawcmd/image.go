package drawcmd

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/ngfx"
)

// MaxVersion is the newest image and sequence format version understood.
// Version 2 adds the 1-bit fallback colors and multi-point circles; it
// reads every valid version 1 blob.
const MaxVersion = 2

// Resource file magic words.
const (
	MagicImage    = "PDCI"
	MagicSequence = "PDCS"
)

const fileHeader = 8

// Image is a single command list with a view box.
type Image struct {
	data []byte
	list List
}

// ParseImage parses an image blob: version u8, reserved u8, view box
// (i16 w, i16 h), command list.
func ParseImage(data []byte) (*Image, error) {
	cur := &cursor{buf: data}
	if err := parseVersion(cur); err != nil {
		return nil, err
	}
	if err := cur.skip(5, "image header"); err != nil {
		return nil, err
	}
	list, err := parseList(cur)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return &Image{data: data, list: list}, nil
}

// ParseImageFile parses an image resource file with its "PDCI" header.
func ParseImageFile(data []byte) (*Image, error) {
	payload, err := unwrapFile(data, MagicImage)
	if err != nil {
		return nil, err
	}
	return ParseImage(payload)
}

// Version returns the format version.
func (img *Image) Version() uint8 { return img.data[0] }

// ViewBox returns the image bounds size.
func (img *Image) ViewBox() ngfx.Size { return readSize(img.data[2:]) }

// SetViewBox sets the image bounds size.
func (img *Image) SetViewBox(s ngfx.Size) { writeSize(img.data[2:], s) }

// List returns the image's commands.
func (img *Image) List() List { return img.list }

func parseVersion(cur *cursor) error {
	v, err := cur.u8("version")
	if err != nil {
		return err
	}
	if v > MaxVersion {
		return &FormatError{Offset: 0, What: fmt.Sprintf("version %d", v), Err: ErrUnsupportedVersion}
	}
	return nil
}

// unwrapFile checks the resource header and returns the payload it sizes.
func unwrapFile(data []byte, magic string) ([]byte, error) {
	cur := &cursor{buf: data}
	if err := cur.need(fileHeader, "file header"); err != nil {
		return nil, err
	}
	if string(data[:4]) != magic {
		return nil, &FormatError{Offset: 0, What: fmt.Sprintf("magic %q, want %q", data[:4], magic), Err: ErrBadMagic}
	}
	cur.off = 4
	size, _ := cur.u32("file size")
	if err := cur.need(int(size), "file payload"); err != nil {
		return nil, err
	}
	return data[fileHeader : fileHeader+int(size)], nil
}

func readSize(b []byte) ngfx.Size {
	return ngfx.Size{
		W: int16(binary.LittleEndian.Uint16(b)),
		H: int16(binary.LittleEndian.Uint16(b[2:])),
	}
}

func writeSize(b []byte, s ngfx.Size) {
	binary.LittleEndian.PutUint16(b, uint16(s.W))
	binary.LittleEndian.PutUint16(b[2:], uint16(s.H))
}
