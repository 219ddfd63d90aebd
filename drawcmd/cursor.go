package drawcmd

import "encoding/binary"

// cursor reads little-endian fields from a blob, failing with a
// FormatError instead of reading past the end.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) need(n int, what string) error {
	if n < 0 || len(c.buf)-c.off < n {
		return &FormatError{Offset: c.off, What: what, Err: ErrTruncated}
	}
	return nil
}

func (c *cursor) u8(what string) (uint8, error) {
	if err := c.need(1, what); err != nil {
		return 0, err
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u16(what string) (uint16, error) {
	if err := c.need(2, what); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v, nil
}

func (c *cursor) u32(what string) (uint32, error) {
	if err := c.need(4, what); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v, nil
}

func (c *cursor) skip(n int, what string) error {
	if err := c.need(n, what); err != nil {
		return err
	}
	c.off += n
	return nil
}

// rest returns the unread part of the blob.
func (c *cursor) rest() []byte {
	return c.buf[c.off:]
}
