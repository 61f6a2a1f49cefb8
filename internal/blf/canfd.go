package blf

// CAN FD flag bits as they appear in CanFdMessage.CanFdFlags.
const (
	canFdFlagEDL = 0x01
	canFdFlagBRS = 0x02
	canFdFlagESI = 0x04
)

// CAN FD flag bits as they appear in CanFdMessage64.Flags.
const (
	canFd64FlagEDL = 0x1000
	canFd64FlagBRS = 0x2000
	canFd64FlagESI = 0x4000
)

// CanFdMessage is a CAN FD frame in the legacy layout (object type 100). The
// data block is always 64 bytes on the wire; ValidDataBytes says how many
// carry payload.
type CanFdMessage struct {
	ObjectHeader
	Channel        uint16
	Flags          uint8
	DLC            uint8
	ID             uint32
	FrameLength    uint32
	ArbBitCount    uint8
	CanFdFlags     uint8
	ValidDataBytes uint8
	Data           [64]byte
}

// EDL reports whether the frame used the extended data length format.
func (m *CanFdMessage) EDL() bool { return m.CanFdFlags&canFdFlagEDL != 0 }

// BRS reports whether the bit rate was switched for the data phase.
func (m *CanFdMessage) BRS() bool { return m.CanFdFlags&canFdFlagBRS != 0 }

// ESI reports the error state indicator.
func (m *CanFdMessage) ESI() bool { return m.CanFdFlags&canFdFlagESI != 0 }

// Payload returns the valid prefix of Data.
func (m *CanFdMessage) Payload() []byte {
	n := int(m.ValidDataBytes)
	if n > len(m.Data) {
		n = len(m.Data)
	}
	return m.Data[:n]
}

func decodeCanFdMessage(c *cursor, h ObjectHeader) (*CanFdMessage, error) {
	m := &CanFdMessage{ObjectHeader: h}
	m.Channel = c.u16()
	m.Flags = c.u8()
	m.DLC = c.u8()
	m.ID = c.u32()
	m.FrameLength = c.u32()
	m.ArbBitCount = c.u8()
	m.CanFdFlags = c.u8()
	m.ValidDataBytes = c.u8()
	c.skip(1) // reserved
	c.skip(4) // reserved
	c.fill(m.Data[:])
	c.skip(4) // reserved
	return m, c.err
}

// CanFd64Layout classifies how a CanFdMessage64 body is laid out. Some
// writers emit the fixed fields immediately after the object header, others
// insert 16 bytes of padding first; the two cannot be told apart by any
// declared field, only by sniffing which interpretation yields a plausible
// frame.
type CanFd64Layout int

const (
	// CanFd64Standard means the fixed fields start at body offset 0.
	CanFd64Standard CanFd64Layout = iota
	// CanFd64ShiftedBy16 means 16 padding bytes precede the fixed fields.
	CanFd64ShiftedBy16
)

func (l CanFd64Layout) String() string {
	if l == CanFd64ShiftedBy16 {
		return "shifted-by-16"
	}
	return "standard"
}

// classifyCanFd64 decides the layout of a CanFdMessage64 body. The shifted
// layout is chosen only when offset 0 reads as an implausible frame and
// offset 16 reads as a plausible one; ties keep the standard layout.
func classifyCanFd64(body []byte) CanFd64Layout {
	// Both candidate prefixes must be fully readable before sniffing.
	if len(body) < 32 {
		return CanFd64Standard
	}
	at0 := newCursor(body)
	ch0 := at0.u8()
	dlc0 := at0.u8()
	at0.skip(2)
	id0 := at0.u32()

	at16 := newCursor(body[16:])
	ch16 := at16.u8()
	dlc16 := at16.u8()
	at16.skip(2)
	id16 := at16.u32()
	if at16.err != nil {
		return CanFd64Standard
	}

	implausible0 := (ch0 == 0 && dlc0 == 0 && id0 == 0) ||
		(dlc0 == 0 && id0 == 0 && ch0 <= 1)
	plausible16 := (ch16 > 0 || dlc16 > 0 || id16 > 0) && dlc16 <= 15
	if implausible0 && plausible16 {
		return CanFd64ShiftedBy16
	}
	return CanFd64Standard
}

// canFd64FixedSize is the size of the fixed fields before the data block.
const canFd64FixedSize = 40

// CanFdMessage64 is a CAN FD frame in the extended layout (object type 101).
// The data block is variable length and an optional extension block with bit
// timing registers can follow it.
type CanFdMessage64 struct {
	ObjectHeader
	Layout          CanFd64Layout
	Channel         uint8
	DLC             uint8
	ValidDataBytes  uint8
	TXCount         uint8
	ID              uint32
	FrameLength     uint32
	Flags           uint32
	BtrCfgArb       uint32
	BtrCfgData      uint32
	TimeOffsetBrsNS uint32
	TimeOffsetCrcNS uint32
	BitCount        uint16
	Dir             uint8
	ExtDataOffset   uint8
	CRC             uint32
	Data            []byte
	HasExtFrameData bool
	BtrExtArb       uint32
	BtrExtData      uint32
}

func (m *CanFdMessage64) EDL() bool { return m.Flags&canFd64FlagEDL != 0 }
func (m *CanFdMessage64) BRS() bool { return m.Flags&canFd64FlagBRS != 0 }
func (m *CanFdMessage64) ESI() bool { return m.Flags&canFd64FlagESI != 0 }

func decodeCanFdMessage64(c *cursor, h ObjectHeader) (*CanFdMessage64, error) {
	m := &CanFdMessage64{ObjectHeader: h}
	m.Layout = classifyCanFd64(c.data[c.pos:])
	if m.Layout == CanFd64ShiftedBy16 {
		c.skip(16)
	}
	m.Channel = c.u8()
	m.DLC = c.u8()
	m.ValidDataBytes = c.u8()
	m.TXCount = c.u8()
	m.ID = c.u32()
	m.FrameLength = c.u32()
	m.Flags = c.u32()
	m.BtrCfgArb = c.u32()
	m.BtrCfgData = c.u32()
	m.TimeOffsetBrsNS = c.u32()
	m.TimeOffsetCrcNS = c.u32()
	m.BitCount = c.u16()
	m.Dir = c.u8()
	m.ExtDataOffset = c.u8()
	m.CRC = c.u32()
	m.Data = c.bytes(int(m.ValidDataBytes))
	if c.err != nil {
		return m, c.err
	}

	// The extension block sits at ExtDataOffset from the start of the
	// object; it is present only when the declared object size actually
	// covers it.
	if m.ExtDataOffset != 0 && uint64(h.ObjectSize) >= uint64(m.ExtDataOffset)+8 {
		m.HasExtFrameData = true
		m.BtrExtArb = c.u32()
		m.BtrExtData = c.u32()
	}
	return m, c.err
}
