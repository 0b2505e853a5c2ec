// Package parser implements the FIT container decoder's component
// parsers: the file header, the record-header classifier, definition
// records, data records, and the stream driver that sequences them.
package parser

import (
	"encoding/binary"
	"math"

	"github.com/vililahtevanoja/fit-parser/internal/fit/model"
)

// Cursor is a read-only view over an in-memory byte buffer with an
// advancing read position. The decoder is a pure function from buffer to
// decoded output, so unlike a streaming reader a Cursor never blocks and
// every offset it reports is exact — which DecodeError needs to attribute
// a failure to the byte that caused it.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for reading from offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the n bytes starting at the cursor without advancing it.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, model.WrapAt(c.pos, model.ErrTruncated)
	}
	return c.buf[c.pos : c.pos+n], nil
}

// ReadBytes consumes and returns n raw bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return nil, err
	}
	c.pos += n
	return b, nil
}

// ReadU8 consumes one byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16LE consumes two bytes as a little-endian uint16.
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE consumes four bytes as a little-endian uint32.
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint consumes n bytes (n in {1,2,4,8}) as an unsigned integer in the
// given endianness, zero-extended to 64 bits. Used for the base-type-
// generic reads a definition's declared field width requires.
func (c *Cursor) ReadUint(n int, big bool) (uint64, error) {
	b, err := c.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	var v uint64
	if big {
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
	} else {
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
	}
	return v, nil
}

// ReadFloat32 consumes four bytes as an IEEE-754 float in the given
// endianness.
func (c *Cursor) ReadFloat32(big bool) (float32, error) {
	v, err := c.ReadUint(4, big)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64 consumes eight bytes as an IEEE-754 double in the given
// endianness.
func (c *Cursor) ReadFloat64(big bool) (float64, error) {
	v, err := c.ReadUint(8, big)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
