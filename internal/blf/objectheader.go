package blf

// Object signature "LOBJ" as a little-endian u32.
const objectMagic = 0x4A424F4C

// objectHeaderBaseSize is the fixed prefix shared by both header versions:
// signature, header size, header version, object size, object type.
const objectHeaderBaseSize = 16

// ObjectHeader is the common header carried by every BLF object, in both the
// version 1 (32 byte) and version 2 (40 byte) layouts. ObjectSize counts
// header and body together and is the sole authority for how far the cursor
// advances past the object.
type ObjectHeader struct {
	HeaderSize    uint16
	HeaderVersion uint16
	ObjectSize    uint32
	Type          ObjectType

	Flags         uint32
	ClientIndex   uint16 // version 1 only
	ObjectVersion uint16

	// TimestampNS is the object timestamp in nanoseconds since measurement
	// start (flag bit 1 set; 10-microsecond ticks otherwise).
	TimestampNS uint64

	// Version 2 additions.
	OriginalTimestampNS uint64
	TimestampStatus     uint8
}

// Header returns the header itself; embedding ObjectHeader therefore makes
// any object struct a LogObject.
func (h ObjectHeader) Header() ObjectHeader { return h }

func (ObjectHeader) logObject() {}

// BodySize returns the number of body bytes declared by the header.
func (h ObjectHeader) BodySize() int {
	if uint32(h.HeaderSize) > h.ObjectSize {
		return 0
	}
	return int(h.ObjectSize) - int(h.HeaderSize)
}

// readObjectHeader decodes a version 1 or 2 object header. It fails with
// ErrInvalidContainerMagic when the signature is not "LOBJ" and with
// UnknownHeaderVersionError for any other header version; both are
// structural and abort the surrounding parse.
func readObjectHeader(c *cursor) (ObjectHeader, error) {
	var h ObjectHeader
	sig := c.u32()
	h.HeaderSize = c.u16()
	h.HeaderVersion = c.u16()
	h.ObjectSize = c.u32()
	h.Type = ObjectType(c.u32())
	if c.err != nil {
		return h, c.err
	}
	if sig != objectMagic {
		return h, ErrInvalidContainerMagic
	}

	switch h.HeaderVersion {
	case 1:
		h.Flags = c.u32()
		h.ClientIndex = c.u16()
		h.ObjectVersion = c.u16()
		h.TimestampNS = c.u64()
	case 2:
		h.Flags = c.u32()
		h.TimestampStatus = c.u8()
		c.skip(1) // reserved
		h.ObjectVersion = c.u16()
		h.TimestampNS = c.u64()
		h.OriginalTimestampNS = c.u64()
	default:
		return h, &UnknownHeaderVersionError{Version: h.HeaderVersion}
	}
	if c.err != nil {
		return h, c.err
	}
	return h, nil
}
