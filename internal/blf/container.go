package blf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// Container compression methods.
const (
	CompressionNone uint16 = 0
	CompressionZlib uint16 = 2
)

// logContainerFixedSize is the size of the container fields before the
// payload.
const logContainerFixedSize = 16

// LogContainer is the carrier object most BLF writers wrap their payload
// objects in (object type 10). Its payload is itself a stream of "LOBJ"
// objects, optionally zlib-compressed.
type LogContainer struct {
	ObjectHeader
	CompressionMethod uint16
	UncompressedSize  uint32
	// Data is the container payload after decompression. Offsets inside it
	// are container-relative: the payload is its own 4-byte aligned stream.
	Data []byte
}

func decodeLogContainer(c *cursor, h ObjectHeader) (*LogContainer, error) {
	lc := &LogContainer{ObjectHeader: h}
	lc.CompressionMethod = c.u16()
	c.skip(2) // reserved
	c.skip(4) // reserved
	lc.UncompressedSize = c.u32()
	c.skip(4) // reserved
	if c.err != nil {
		return lc, c.err
	}

	dataSize := h.BodySize() - logContainerFixedSize
	if dataSize < 0 {
		return lc, ErrUnexpectedEOF
	}
	raw := c.take(dataSize)
	if c.err != nil {
		return lc, c.err
	}

	switch lc.CompressionMethod {
	case CompressionNone:
		lc.Data = append([]byte(nil), raw...)
	case CompressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return lc, fmt.Errorf("open zlib container: %w", err)
		}
		defer zr.Close()
		out := make([]byte, 0, lc.UncompressedSize)
		buf := bytes.NewBuffer(out)
		if _, err := io.Copy(buf, zr); err != nil {
			return lc, fmt.Errorf("inflate container: %w", err)
		}
		lc.Data = buf.Bytes()
	default:
		return lc, &UnsupportedCompressionError{Method: lc.CompressionMethod}
	}
	return lc, nil
}
