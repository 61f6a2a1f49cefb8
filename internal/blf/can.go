package blf

// CAN message flag bits (CanMessage.Flags, CanMessage2.Flags).
const (
	CanMsgFlagTX       = 0x01
	CanMsgFlagNERR     = 0x04
	CanMsgFlagWakeup   = 0x08
	CanMsgFlagRemote   = 0x10
	CanMsgFlagReserved = 0x20
)

// CAN identifier extended-frame bit. Set for 29-bit identifiers.
const CanIDExtended = 0x80000000

// CanMessage is a classic CAN frame (object type 1). Data is always 8 bytes
// on the wire; DLC says how many are meaningful.
type CanMessage struct {
	ObjectHeader
	Channel uint16
	Flags   uint8
	DLC     uint8
	ID      uint32
	Data    [8]byte
}

// IsTX reports whether the frame was transmitted by the logging node.
func (m *CanMessage) IsTX() bool { return m.Flags&CanMsgFlagTX != 0 }

// IsRemote reports a remote transmission request.
func (m *CanMessage) IsRemote() bool { return m.Flags&CanMsgFlagRemote != 0 }

func decodeCanMessage(c *cursor, h ObjectHeader) (*CanMessage, error) {
	m := &CanMessage{ObjectHeader: h}
	m.Channel = c.u16()
	m.Flags = c.u8()
	m.DLC = c.u8()
	m.ID = c.u32()
	c.fill(m.Data[:])
	return m, c.err
}

// CanMessage2 is a classic CAN frame with timing detail (object type 86).
// Unlike CanMessage its data block is variable length: the body carries
// 16 bytes of fixed fields around it, so len(Data) = body size − 16.
type CanMessage2 struct {
	ObjectHeader
	Channel     uint16
	Flags       uint8
	DLC         uint8
	ID          uint32
	Data        []byte
	FrameLength uint32 // transmission time in nanoseconds
	BitCount    uint8
}

func (m *CanMessage2) IsTX() bool     { return m.Flags&CanMsgFlagTX != 0 }
func (m *CanMessage2) IsRemote() bool { return m.Flags&CanMsgFlagRemote != 0 }

func decodeCanMessage2(c *cursor, h ObjectHeader) (*CanMessage2, error) {
	m := &CanMessage2{ObjectHeader: h}
	m.Channel = c.u16()
	m.Flags = c.u8()
	m.DLC = c.u8()
	m.ID = c.u32()
	n := h.BodySize() - 16
	if n < 0 {
		n = 0
	}
	m.Data = c.bytes(n)
	m.FrameLength = c.u32()
	m.BitCount = c.u8()
	c.skip(1) // reserved
	c.skip(2) // reserved
	return m, c.err
}

// CanError is a CAN bus error frame (object type 2). Older writers omit the
// error code entirely; Length is zero in that case and Code stays zero.
type CanError struct {
	ObjectHeader
	Channel uint16
	Length  uint16
	Code    uint32
}

func decodeCanError(c *cursor, h ObjectHeader) (*CanError, error) {
	e := &CanError{ObjectHeader: h}
	e.Channel = c.u16()
	e.Length = c.u16()
	if e.Length > 0 {
		e.Code = c.u32()
	}
	return e, c.err
}

// CanOverload is a CAN overload frame (object type 3).
type CanOverload struct {
	ObjectHeader
	Channel uint16
}

func decodeCanOverload(c *cursor, h ObjectHeader) (*CanOverload, error) {
	o := &CanOverload{ObjectHeader: h}
	o.Channel = c.u16()
	c.skip(2) // reserved
	c.skip(4) // reserved
	return o, c.err
}

// CanStatistic is a periodic per-channel bus statistics record (object
// type 4). BusLoad is in 1/100 percent.
type CanStatistic struct {
	ObjectHeader
	Channel        uint16
	BusLoad        uint16
	StandardData   uint32
	ExtendedData   uint32
	StandardRemote uint32
	ExtendedRemote uint32
	ErrorFrames    uint32
	OverloadFrames uint32
}

func decodeCanStatistic(c *cursor, h ObjectHeader) (*CanStatistic, error) {
	s := &CanStatistic{ObjectHeader: h}
	s.Channel = c.u16()
	s.BusLoad = c.u16()
	s.StandardData = c.u32()
	s.ExtendedData = c.u32()
	s.StandardRemote = c.u32()
	s.ExtendedRemote = c.u32()
	s.ErrorFrames = c.u32()
	s.OverloadFrames = c.u32()
	c.skip(4) // reserved
	return s, c.err
}

// CanDriverError is a CAN controller driver error (object type 31).
type CanDriverError struct {
	ObjectHeader
	Channel      uint16
	TXErrorCount uint8
	RXErrorCount uint8
	Code         uint32
}

func decodeCanDriverError(c *cursor, h ObjectHeader) (*CanDriverError, error) {
	e := &CanDriverError{ObjectHeader: h}
	e.Channel = c.u16()
	e.TXErrorCount = c.u8()
	e.RXErrorCount = c.u8()
	e.Code = c.u32()
	return e, c.err
}
