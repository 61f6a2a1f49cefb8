package blf

// FlexRayData is a FlexRay frame in the oldest layout (object type 29).
type FlexRayData struct {
	ObjectHeader
	Channel   uint16
	MUX       uint8
	Len       uint8
	MessageID uint16
	CRC       uint16
	Dir       uint8
	Data      [12]byte
}

func decodeFlexRayData(c *cursor, h ObjectHeader) (*FlexRayData, error) {
	f := &FlexRayData{ObjectHeader: h}
	f.Channel = c.u16()
	f.MUX = c.u8()
	f.Len = c.u8()
	f.MessageID = c.u16()
	f.CRC = c.u16()
	f.Dir = c.u8()
	c.skip(3) // reserved
	c.fill(f.Data[:])
	return f, c.err
}

// FlexRaySync is a FlexRay sync frame in the oldest layout (object type 30).
type FlexRaySync struct {
	ObjectHeader
	Channel   uint16
	MUX       uint8
	Len       uint8
	MessageID uint16
	CRC       uint16
	Dir       uint8
	Data      [11]byte
	Cycle     uint8
}

func decodeFlexRaySync(c *cursor, h ObjectHeader) (*FlexRaySync, error) {
	f := &FlexRaySync{ObjectHeader: h}
	f.Channel = c.u16()
	f.MUX = c.u8()
	f.Len = c.u8()
	f.MessageID = c.u16()
	f.CRC = c.u16()
	f.Dir = c.u8()
	c.skip(3) // reserved
	c.fill(f.Data[:])
	f.Cycle = c.u8()
	return f, c.err
}

// FlexRayV6StartCycleEvent is a version 6 cycle start event (object type 40).
type FlexRayV6StartCycleEvent struct {
	ObjectHeader
	Channel     uint16
	Dir         uint8
	ClusterTime uint32
	Data        [2]byte
}

func decodeFlexRayV6StartCycleEvent(c *cursor, h ObjectHeader) (*FlexRayV6StartCycleEvent, error) {
	f := &FlexRayV6StartCycleEvent{ObjectHeader: h}
	f.Channel = c.u16()
	f.Dir = c.u8()
	c.skip(1) // low time
	c.skip(4) // fpga tick
	c.skip(4) // fpga tick overflow
	c.skip(4) // client index
	f.ClusterTime = c.u32()
	c.fill(f.Data[:])
	c.skip(2) // reserved
	return f, c.err
}

// FlexRayMessage is a version 6 FlexRay frame (object type 41). The data
// block is always 64 bytes on the wire; Length says how many are meaningful.
type FlexRayMessage struct {
	ObjectHeader
	Channel uint16
	Dir     uint8
	FrameID uint16
	Length  uint8
	Cycle   uint8
	Data    [64]byte
}

func decodeFlexRayMessage(c *cursor, h ObjectHeader) (*FlexRayMessage, error) {
	f := &FlexRayMessage{ObjectHeader: h}
	f.Channel = c.u16()
	f.Dir = c.u8()
	c.skip(1) // low time
	c.skip(4) // fpga tick
	c.skip(4) // fpga tick overflow
	c.skip(4) // client index
	c.skip(4) // cluster time
	f.FrameID = c.u16()
	c.skip(2) // header crc
	c.skip(2) // frame state
	f.Length = c.u8()
	f.Cycle = c.u8()
	c.skip(1) // header bit mask
	c.skip(1) // reserved
	c.skip(2) // reserved
	c.fill(f.Data[:])
	return f, c.err
}

// FlexRayStatusEvent is a FlexRay bus status change (object type 45).
type FlexRayStatusEvent struct {
	ObjectHeader
	Channel    uint16
	Version    uint16
	StatusType uint16
	InfoMask1  uint16
	InfoMask2  uint16
	InfoMask3  uint16
}

func decodeFlexRayStatusEvent(c *cursor, h ObjectHeader) (*FlexRayStatusEvent, error) {
	f := &FlexRayStatusEvent{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.StatusType = c.u16()
	f.InfoMask1 = c.u16()
	f.InfoMask2 = c.u16()
	f.InfoMask3 = c.u16()
	c.skip(36) // reserved
	return f, c.err
}

// FlexRayVFrError is a FlexRay CC error event (object type 47).
type FlexRayVFrError struct {
	ObjectHeader
	Channel     uint16
	Version     uint16
	ChannelMask uint16
	Cycle       uint8
	ClientIndex uint32
	ClusterNo   uint32
	Tag         uint32
	Data        [4]uint32
}

func decodeFlexRayVFrError(c *cursor, h ObjectHeader) (*FlexRayVFrError, error) {
	f := &FlexRayVFrError{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.ChannelMask = c.u16()
	f.Cycle = c.u8()
	c.skip(1) // reserved
	f.ClientIndex = c.u32()
	f.ClusterNo = c.u32()
	f.Tag = c.u32()
	for i := range f.Data {
		f.Data[i] = c.u32()
	}
	c.skip(4) // reserved
	return f, c.err
}

// FlexRayVFrStatus is a FlexRay CC status event (object type 48).
type FlexRayVFrStatus struct {
	ObjectHeader
	Channel     uint16
	Version     uint16
	ChannelMask uint16
	Cycle       uint8
	ClientIndex uint32
	ClusterNo   uint32
	WUS         uint32
	CCSyncState uint32
	Tag         uint32
	Data        [2]uint32
}

func decodeFlexRayVFrStatus(c *cursor, h ObjectHeader) (*FlexRayVFrStatus, error) {
	f := &FlexRayVFrStatus{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.ChannelMask = c.u16()
	f.Cycle = c.u8()
	c.skip(1) // reserved
	f.ClientIndex = c.u32()
	f.ClusterNo = c.u32()
	f.WUS = c.u32()
	f.CCSyncState = c.u32()
	f.Tag = c.u32()
	for i := range f.Data {
		f.Data[i] = c.u32()
	}
	c.skip(36) // reserved
	return f, c.err
}

// FlexRayVFrStartCycle is a FlexRay cycle start event (object type 49).
type FlexRayVFrStartCycle struct {
	ObjectHeader
	Channel     uint16
	Version     uint16
	ChannelMask uint16
	Cycle       uint8
	ClientIndex uint32
	ClusterNo   uint32
	NMSize      uint16
	DataBytes   [12]byte
	Tag         uint32
	Data        [5]uint32
}

func decodeFlexRayVFrStartCycle(c *cursor, h ObjectHeader) (*FlexRayVFrStartCycle, error) {
	f := &FlexRayVFrStartCycle{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.ChannelMask = c.u16()
	f.Cycle = c.u8()
	c.skip(1) // reserved
	f.ClientIndex = c.u32()
	f.ClusterNo = c.u32()
	f.NMSize = c.u16()
	c.fill(f.DataBytes[:])
	c.skip(2) // reserved
	f.Tag = c.u32()
	for i := range f.Data {
		f.Data[i] = c.u32()
	}
	c.skip(8) // reserved
	return f, c.err
}

// FlexRayVFrReceiveMsg is a received FlexRay frame (object type 50). The
// data block is always 254 bytes on the wire; ByteCount says how many carry
// payload.
type FlexRayVFrReceiveMsg struct {
	ObjectHeader
	Channel      uint16
	Version      uint16
	ChannelMask  uint8
	Dir          uint8
	ClientIndex  uint32
	ClusterNo    uint32
	FrameID      uint16
	HeaderCRC1   uint16
	HeaderCRC2   uint16
	ByteCount    uint16
	DataCount    uint16
	Cycle        uint8
	Tag          uint32
	Data         uint32
	FrameFlags   uint32
	AppParameter uint32
	DataBytes    [254]byte
}

func decodeFlexRayVFrReceiveMsg(c *cursor, h ObjectHeader) (*FlexRayVFrReceiveMsg, error) {
	f := &FlexRayVFrReceiveMsg{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.ChannelMask = c.u8()
	f.Dir = c.u8()
	c.skip(2) // reserved
	f.ClientIndex = c.u32()
	f.ClusterNo = c.u32()
	f.FrameID = c.u16()
	f.HeaderCRC1 = c.u16()
	f.HeaderCRC2 = c.u16()
	f.ByteCount = c.u16()
	f.DataCount = c.u16()
	f.Cycle = c.u8()
	c.skip(1) // reserved
	f.Tag = c.u32()
	f.Data = c.u32()
	f.FrameFlags = c.u32()
	f.AppParameter = c.u32()
	c.fill(f.DataBytes[:])
	c.skip(6) // reserved
	return f, c.err
}

// vfrReceiveMsgExFixedSize is the size of the fixed fields of
// FlexRayVFrReceiveMsgEx, including its reserved block.
const vfrReceiveMsgExFixedSize = 84

// FlexRayVFrReceiveMsgEx is a received FlexRay frame in the extended layout
// (object type 66). Unlike VFrReceiveMsg its data block is variable length.
type FlexRayVFrReceiveMsgEx struct {
	ObjectHeader
	Channel       uint16
	Version       uint16
	ChannelMask   uint16
	Dir           uint16
	ClientIndex   uint32
	ClusterNo     uint32
	FrameID       uint16
	HeaderCRC1    uint16
	HeaderCRC2    uint16
	ByteCount     uint16
	DataCount     uint16
	Cycle         uint16
	Tag           uint32
	Data          uint32
	FrameFlags    uint32
	AppParameter  uint32
	FrameCRC      uint32
	FrameLengthNS uint32
	FrameID1      uint16
	PDUOffset     uint16
	BlfLogMask    uint16
	DataBytes     []byte
}

func decodeFlexRayVFrReceiveMsgEx(c *cursor, h ObjectHeader) (*FlexRayVFrReceiveMsgEx, error) {
	f := &FlexRayVFrReceiveMsgEx{ObjectHeader: h}
	f.Channel = c.u16()
	f.Version = c.u16()
	f.ChannelMask = c.u16()
	f.Dir = c.u16()
	f.ClientIndex = c.u32()
	f.ClusterNo = c.u32()
	f.FrameID = c.u16()
	f.HeaderCRC1 = c.u16()
	f.HeaderCRC2 = c.u16()
	f.ByteCount = c.u16()
	f.DataCount = c.u16()
	f.Cycle = c.u16()
	f.Tag = c.u32()
	f.Data = c.u32()
	f.FrameFlags = c.u32()
	f.AppParameter = c.u32()
	f.FrameCRC = c.u32()
	f.FrameLengthNS = c.u32()
	f.FrameID1 = c.u16()
	f.PDUOffset = c.u16()
	f.BlfLogMask = c.u16()
	c.skip(26) // reserved
	f.DataBytes = c.bytes(int(f.DataCount))
	if c.err != nil {
		return f, c.err
	}
	if pad := h.BodySize() - vfrReceiveMsgExFixedSize - int(f.DataCount); pad > 0 {
		c.skip(pad)
	}
	return f, c.err
}
