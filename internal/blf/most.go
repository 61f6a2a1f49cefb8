package blf

// MostSpy is a MOST control channel message captured in spy mode (object
// type 22).
type MostSpy struct {
	ObjectHeader
	Channel   uint16
	Dir       uint8
	SourceAdr uint32
	DestAdr   uint32
	Msg       [17]byte
	RTyp      uint16
	RTypAdr   uint8
	State     uint8
	AckNack   uint8
	CRC       uint32
}

func decodeMostSpy(c *cursor, h ObjectHeader) (*MostSpy, error) {
	m := &MostSpy{ObjectHeader: h}
	m.Channel = c.u16()
	m.Dir = c.u8()
	c.skip(1) // reserved
	m.SourceAdr = c.u32()
	m.DestAdr = c.u32()
	c.fill(m.Msg[:])
	c.skip(1) // reserved
	m.RTyp = c.u16()
	m.RTypAdr = c.u8()
	m.State = c.u8()
	c.skip(1) // reserved
	m.AckNack = c.u8()
	m.CRC = c.u32()
	return m, c.err
}

// MostCtrl is a MOST control channel message captured in node mode (object
// type 23). Same layout as MostSpy minus the CRC.
type MostCtrl struct {
	ObjectHeader
	Channel   uint16
	Dir       uint8
	SourceAdr uint32
	DestAdr   uint32
	Msg       [17]byte
	RTyp      uint16
	RTypAdr   uint8
	State     uint8
	AckNack   uint8
}

func decodeMostCtrl(c *cursor, h ObjectHeader) (*MostCtrl, error) {
	m := &MostCtrl{ObjectHeader: h}
	m.Channel = c.u16()
	m.Dir = c.u8()
	c.skip(1) // reserved
	m.SourceAdr = c.u32()
	m.DestAdr = c.u32()
	c.fill(m.Msg[:])
	c.skip(1) // reserved
	m.RTyp = c.u16()
	m.RTypAdr = c.u8()
	m.State = c.u8()
	c.skip(1) // reserved
	m.AckNack = c.u8()
	return m, c.err
}

// MostPkt2 is a MOST packet data channel message (object type 33). The
// packet data length is declared in the body, not derived from the object
// size.
type MostPkt2 struct {
	ObjectHeader
	Channel       uint16
	Dir           uint8
	SourceAdr     uint32
	DestAdr       uint32
	Arbitration   uint8
	QuadsToFollow uint8
	CRC           uint16
	Priority      uint8
	TransferType  uint8
	State         uint8
	PktData       []byte
}

func decodeMostPkt2(c *cursor, h ObjectHeader) (*MostPkt2, error) {
	m := &MostPkt2{ObjectHeader: h}
	m.Channel = c.u16()
	m.Dir = c.u8()
	c.skip(1) // reserved
	m.SourceAdr = c.u32()
	m.DestAdr = c.u32()
	m.Arbitration = c.u8()
	c.skip(1) // time resolution
	m.QuadsToFollow = c.u8()
	c.skip(1) // reserved
	m.CRC = c.u16()
	m.Priority = c.u8()
	m.TransferType = c.u8()
	m.State = c.u8()
	c.skip(1) // reserved
	c.skip(2) // reserved
	n := c.u32()
	c.skip(4) // reserved
	m.PktData = c.bytes(int(n))
	return m, c.err
}

// MostLightLock is a MOST ring signal state transition (object type 24).
type MostLightLock struct {
	ObjectHeader
	Channel uint16
	State   int16
}

func decodeMostLightLock(c *cursor, h ObjectHeader) (*MostLightLock, error) {
	m := &MostLightLock{ObjectHeader: h}
	m.Channel = c.u16()
	m.State = c.i16()
	c.skip(4) // reserved
	return m, c.err
}

// MostStatistic is a periodic MOST network statistics record (object
// type 25).
type MostStatistic struct {
	ObjectHeader
	Channel     uint16
	PktCount    uint16
	FrmCount    int32
	LightCount  int32
	BufferLevel int32
}

func decodeMostStatistic(c *cursor, h ObjectHeader) (*MostStatistic, error) {
	m := &MostStatistic{ObjectHeader: h}
	m.Channel = c.u16()
	m.PktCount = c.u16()
	m.FrmCount = c.i32()
	m.LightCount = c.i32()
	m.BufferLevel = c.i32()
	return m, c.err
}

// MostHwMode is a MOST hardware mode change (object type 34).
type MostHwMode struct {
	ObjectHeader
	Channel    uint16
	HwMode     uint16
	HwModeMask uint16
}

func decodeMostHwMode(c *cursor, h ObjectHeader) (*MostHwMode, error) {
	m := &MostHwMode{ObjectHeader: h}
	m.Channel = c.u16()
	c.skip(2) // reserved
	m.HwMode = c.u16()
	m.HwModeMask = c.u16()
	return m, c.err
}

// MostReg is a MOST chip register access (object type 35). RegDataLen says
// how many bytes of RegData are valid.
type MostReg struct {
	ObjectHeader
	Channel    uint16
	SubType    uint8
	Handle     uint32
	Offset     uint32
	Chip       uint16
	RegDataLen uint16
	RegData    [16]byte
}

func decodeMostReg(c *cursor, h ObjectHeader) (*MostReg, error) {
	m := &MostReg{ObjectHeader: h}
	m.Channel = c.u16()
	m.SubType = c.u8()
	c.skip(1) // reserved
	m.Handle = c.u32()
	m.Offset = c.u32()
	m.Chip = c.u16()
	m.RegDataLen = c.u16()
	c.fill(m.RegData[:])
	return m, c.err
}

// MostGenReg is a MOST general register access (object type 36).
type MostGenReg struct {
	ObjectHeader
	Channel  uint16
	SubType  uint8
	Handle   uint32
	RegID    uint16
	RegValue uint64
}

func decodeMostGenReg(c *cursor, h ObjectHeader) (*MostGenReg, error) {
	m := &MostGenReg{ObjectHeader: h}
	m.Channel = c.u16()
	m.SubType = c.u8()
	c.skip(1) // reserved
	m.Handle = c.u32()
	m.RegID = c.u16()
	c.skip(2) // reserved
	c.skip(4) // reserved
	m.RegValue = c.u64()
	return m, c.err
}

// MostNetState is a MOST network state transition (object type 37).
type MostNetState struct {
	ObjectHeader
	Channel  uint16
	StateNew uint16
	StateOld uint16
}

func decodeMostNetState(c *cursor, h ObjectHeader) (*MostNetState, error) {
	m := &MostNetState{ObjectHeader: h}
	m.Channel = c.u16()
	m.StateNew = c.u16()
	m.StateOld = c.u16()
	c.skip(2) // reserved
	return m, c.err
}

// MostDataLost marks a gap where the MOST interface dropped messages (object
// type 38).
type MostDataLost struct {
	ObjectHeader
	Channel             uint16
	Info                uint32
	LostMsgsCtrl        uint32
	LostMsgsAsync       uint32
	LastGoodTimestampNS uint64
	NextGoodTimestampNS uint64
}

func decodeMostDataLost(c *cursor, h ObjectHeader) (*MostDataLost, error) {
	m := &MostDataLost{ObjectHeader: h}
	m.Channel = c.u16()
	c.skip(2) // reserved
	m.Info = c.u32()
	m.LostMsgsCtrl = c.u32()
	m.LostMsgsAsync = c.u32()
	m.LastGoodTimestampNS = c.u64()
	m.NextGoodTimestampNS = c.u64()
	return m, c.err
}

// MostTrigger is a MOST hardware trigger event (object type 39).
type MostTrigger struct {
	ObjectHeader
	Channel              uint16
	Mode                 uint16
	Hw                   uint16
	PreviousTriggerValue uint32
	CurrentTriggerValue  uint32
}

func decodeMostTrigger(c *cursor, h ObjectHeader) (*MostTrigger, error) {
	m := &MostTrigger{ObjectHeader: h}
	m.Channel = c.u16()
	c.skip(2) // reserved
	m.Mode = c.u16()
	m.Hw = c.u16()
	m.PreviousTriggerValue = c.u32()
	m.CurrentTriggerValue = c.u32()
	return m, c.err
}
