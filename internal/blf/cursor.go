package blf

import (
	"encoding/binary"
	"math"
)

// cursor is a bounds-checked little-endian reader over a byte slice. Every
// accessor reports ErrUnexpectedEOF instead of panicking on short data; the
// first error sticks so callers can read a run of fields and check once.
type cursor struct {
	data []byte
	pos  int
	err  error
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || c.remaining() < n {
		c.err = ErrUnexpectedEOF
		return nil
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *cursor) skip(n int) {
	c.take(n)
}

func (c *cursor) u8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *cursor) i8() int8 { return int8(c.u8()) }

func (c *cursor) u16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (c *cursor) i16() int16 { return int16(c.u16()) }

func (c *cursor) u32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) i32() int32 { return int32(c.u32()) }

func (c *cursor) u64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (c *cursor) f64() float64 {
	return math.Float64frombits(c.u64())
}

// bytes copies n bytes out of the stream.
func (c *cursor) bytes(n int) []byte {
	b := c.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// fill reads len(dst) bytes into dst.
func (c *cursor) fill(dst []byte) {
	b := c.take(len(dst))
	if b != nil {
		copy(dst, b)
	}
}

// rest copies everything left in the stream.
func (c *cursor) rest() []byte {
	return c.bytes(c.remaining())
}

// align4 rounds n up to the next multiple of 4. Object starts are 4-byte
// aligned relative to their own stream, both at top level and inside
// decompressed containers.
func align4(n uint32) uint32 {
	return (n + 3) &^ 3
}
