// Package blftest builds BLF byte streams for tests. Encoders here mirror
// the on-disk layout field by field so decoder tests can round-trip through
// real bytes instead of canned hex dumps.
package blftest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
)

// Writer appends little-endian values to a buffer.
type Writer struct {
	buf []byte
}

func (w *Writer) U8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) U16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }
func (w *Writer) U32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }
func (w *Writer) U64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }

func (w *Writer) Bytes(b []byte) { w.buf = append(w.buf, b...) }

// Zero appends n zero bytes, the encoding of every reserved field.
func (w *Writer) Zero(n int) { w.buf = append(w.buf, make([]byte, n)...) }

func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) Out() []byte { return w.buf }

// statisticsSize is what current Vector tooling writes: the 80 fixed bytes
// plus a 64-byte reserved tail.
const statisticsSize = 144

// FileHeaderSpec sets the non-zero fields of a generated file header.
type FileHeaderSpec struct {
	AppID       uint8
	ObjectCount uint32
	FileSize    uint64
}

// FileHeader encodes a "LOGG" FileStatistics block.
func FileHeader(spec FileHeaderSpec) []byte {
	var w Writer
	w.Bytes([]byte("LOGG"))
	w.U32(statisticsSize)
	w.U32(3080400) // api number 3.80.4.0
	w.U8(spec.AppID)
	w.U8(6) // compression level
	w.U8(17)
	w.U8(0)
	w.U64(spec.FileSize)
	w.U64(spec.FileSize)
	w.U32(spec.ObjectCount)
	w.U32(0)  // application build
	w.Zero(16) // measurement start time
	w.Zero(16) // last object time
	w.U64(0)  // restore points offset
	w.Zero(statisticsSize - w.Len())
	return w.Out()
}

// ObjectSpec sets the header fields of a generated object.
type ObjectSpec struct {
	Type          uint32
	HeaderVersion uint16 // defaults to 1
	Flags         uint32
	TimestampNS   uint64
	Body          []byte
}

// Object encodes a "LOBJ" object with a version 1 or 2 header around Body.
// The result is not padded; callers append objects with Pad4 or let the
// container builder do it.
func Object(spec ObjectSpec) []byte {
	version := spec.HeaderVersion
	if version == 0 {
		version = 1
	}
	headerSize := uint16(32)
	if version == 2 {
		headerSize = 40
	}

	var w Writer
	w.Bytes([]byte("LOBJ"))
	w.U16(headerSize)
	w.U16(version)
	w.U32(uint32(headerSize) + uint32(len(spec.Body)))
	w.U32(spec.Type)
	switch version {
	case 1:
		w.U32(spec.Flags)
		w.U16(0) // client index
		w.U16(0) // object version
		w.U64(spec.TimestampNS)
	case 2:
		w.U32(spec.Flags)
		w.U8(0) // timestamp status
		w.U8(0) // reserved
		w.U16(0)
		w.U64(spec.TimestampNS)
		w.U64(spec.TimestampNS) // original timestamp
	default:
		// Deliberately writable: header-version failure tests need it.
		w.U32(spec.Flags)
		w.U16(0)
		w.U16(0)
		w.U64(spec.TimestampNS)
	}
	w.Bytes(spec.Body)
	return w.Out()
}

// Pad4 pads b with zeros to the next 4-byte boundary.
func Pad4(b []byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// Stream concatenates objects with alignment padding between them, the way
// both the top-level file and container payloads lay objects out.
func Stream(objects ...[]byte) []byte {
	var out []byte
	for _, o := range objects {
		out = Pad4(out)
		out = append(out, o...)
	}
	return out
}

// Compression methods accepted by Container.
const (
	CompressionNone uint16 = 0
	CompressionZlib uint16 = 2
)

// Container wraps an already laid out object stream in a LogContainer
// object, compressing the payload when method is CompressionZlib.
func Container(method uint16, payload []byte) []byte {
	stored := payload
	if method == CompressionZlib {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		zw.Write(payload)
		zw.Close()
		stored = buf.Bytes()
	}

	var w Writer
	w.U16(method)
	w.Zero(2) // reserved
	w.Zero(4) // reserved
	w.U32(uint32(len(payload)))
	w.Zero(4) // reserved
	w.Bytes(stored)
	return Object(ObjectSpec{Type: 10, Body: w.Out()})
}

// File prepends a file header to an object stream.
func File(spec FileHeaderSpec, objects ...[]byte) []byte {
	stream := Stream(objects...)
	if spec.FileSize == 0 {
		spec.FileSize = uint64(statisticsSize + len(stream))
	}
	return append(FileHeader(spec), stream...)
}

// CanMessageBody encodes the body of a classic CAN frame object.
func CanMessageBody(channel uint16, flags, dlc uint8, id uint32, data [8]byte) []byte {
	var w Writer
	w.U16(channel)
	w.U8(flags)
	w.U8(dlc)
	w.U32(id)
	w.Bytes(data[:])
	return w.Out()
}

// CanFdMessage64Body encodes the body of an extended-layout CAN FD frame.
// shifted prepends the 16-byte padding block some writers emit; ext appends
// the bit timing extension block and is reflected in ExtDataOffset.
type CanFdMessage64Body struct {
	Shifted    bool
	Channel    uint8
	DLC        uint8
	ID         uint32
	Flags      uint32
	Data       []byte
	ExtBtrArb  uint32
	ExtBtrData uint32
	WithExt    bool
	HeaderSize uint16 // header size of the enclosing object, for ExtDataOffset
}

func (s CanFdMessage64Body) Encode() []byte {
	var w Writer
	if s.Shifted {
		w.Zero(16)
	}
	w.U8(s.Channel)
	w.U8(s.DLC)
	w.U8(uint8(len(s.Data)))
	w.U8(0) // tx count
	w.U32(s.ID)
	w.U32(0) // frame length
	w.U32(s.Flags)
	w.U32(0) // btr cfg arb
	w.U32(0) // btr cfg data
	w.U32(0) // time offset brs
	w.U32(0) // time offset crc
	w.U16(0) // bit count
	w.U8(0)  // dir
	extOffset := uint8(0)
	if s.WithExt {
		headerSize := s.HeaderSize
		if headerSize == 0 {
			headerSize = 32
		}
		extOffset = uint8(int(headerSize) + w.Len() + 1 + 4 + len(s.Data))
	}
	w.U8(extOffset)
	w.U32(0) // crc
	w.Bytes(s.Data)
	if s.WithExt {
		w.U32(s.ExtBtrArb)
		w.U32(s.ExtBtrData)
	}
	return w.Out()
}
