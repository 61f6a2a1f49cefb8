package blf

// LinMessage is a LIN frame in the legacy layout (object type 11).
type LinMessage struct {
	ObjectHeader
	Channel    uint16
	ID         uint8
	DLC        uint8
	Data       [8]byte
	FsmID      uint16
	FsmState   uint16
	HeaderTime uint32
	FullTime   uint32
	CRC        uint8
	Dir        uint8
}

func decodeLinMessage(c *cursor, h ObjectHeader) (*LinMessage, error) {
	m := &LinMessage{ObjectHeader: h}
	m.Channel = c.u16()
	m.ID = c.u8()
	m.DLC = c.u8()
	c.fill(m.Data[:])
	m.FsmID = c.u16()
	m.FsmState = c.u16()
	m.HeaderTime = c.u32()
	m.FullTime = c.u32()
	m.CRC = c.u8()
	m.Dir = c.u8()
	c.skip(6) // reserved
	return m, c.err
}

// linMessage2TrailerBase is the byte position of the first optional trailing
// field relative to the start of the LinMessage2 body, counting the data
// block and the fixed fields after it.
const linMessage2TrailerBase = 23

// LinMessage2 is a LIN frame in the extended layout (object type 57). The
// trailing baud rate fields were added across format revisions, so short
// bodies legitimately omit them; the Has* flags record what was present.
type LinMessage2 struct {
	ObjectHeader
	Data      [8]byte
	CRC       uint16
	Dir       uint8
	Simulated uint8
	IsETF     uint8

	HasRespBaudrate bool
	RespBaudrate    uint32

	HasExactHeaderBaudrate bool
	ExactHeaderBaudrate    float64
}

func decodeLinMessage2(c *cursor, h ObjectHeader) (*LinMessage2, error) {
	m := &LinMessage2{ObjectHeader: h}
	c.fill(m.Data[:])
	m.CRC = c.u16()
	m.Dir = c.u8()
	m.Simulated = c.u8()
	m.IsETF = c.u8()
	c.skip(10) // reserved
	if c.err != nil {
		return m, c.err
	}

	remaining := h.BodySize() - linMessage2TrailerBase
	if remaining >= 4 {
		m.HasRespBaudrate = true
		m.RespBaudrate = c.u32()
	}
	if remaining >= 12 {
		m.HasExactHeaderBaudrate = true
		m.ExactHeaderBaudrate = c.f64()
	}
	return m, c.err
}

// LinCrcError is a LIN checksum error (object type 12).
type LinCrcError struct {
	ObjectHeader
	Channel uint16
	ID      uint8
	DLC     uint8
	Data    [8]byte
	CRC     uint16
	Dir     uint8
}

func decodeLinCrcError(c *cursor, h ObjectHeader) (*LinCrcError, error) {
	e := &LinCrcError{ObjectHeader: h}
	e.Channel = c.u16()
	e.ID = c.u8()
	e.DLC = c.u8()
	c.fill(e.Data[:])
	c.skip(4) // fsm id, fsm state
	e.CRC = c.u16()
	e.Dir = c.u8()
	return e, c.err
}

// LinReceiveError is a LIN frame reception error (object type 14).
type LinReceiveError struct {
	ObjectHeader
	Channel          uint16
	ID               uint8
	DLC              uint8
	StateReason      uint8
	OffendingByte    uint8
	ShortError       uint8
	TimeoutDuringDLC uint8
}

func decodeLinReceiveError(c *cursor, h ObjectHeader) (*LinReceiveError, error) {
	e := &LinReceiveError{ObjectHeader: h}
	e.Channel = c.u16()
	e.ID = c.u8()
	e.DLC = c.u8()
	c.skip(4) // fsm id, fsm state
	e.StateReason = c.u8()
	e.OffendingByte = c.u8()
	e.ShortError = c.u8()
	e.TimeoutDuringDLC = c.u8()
	c.skip(4) // reserved
	return e, c.err
}

// LinSendError is a LIN header without a slave response (object type 15).
type LinSendError struct {
	ObjectHeader
	Channel uint16
	ID      uint8
	DLC     uint8
}

func decodeLinSendError(c *cursor, h ObjectHeader) (*LinSendError, error) {
	e := &LinSendError{ObjectHeader: h}
	e.Channel = c.u16()
	e.ID = c.u8()
	e.DLC = c.u8()
	c.skip(4) // fsm id, fsm state
	return e, c.err
}

// LinSlaveTimeout is a LIN slave response timeout (object type 16).
type LinSlaveTimeout struct {
	ObjectHeader
	Channel       uint16
	SlaveID       uint8
	StateID       uint8
	FollowStateID uint32
}

func decodeLinSlaveTimeout(c *cursor, h ObjectHeader) (*LinSlaveTimeout, error) {
	e := &LinSlaveTimeout{ObjectHeader: h}
	e.Channel = c.u16()
	e.SlaveID = c.u8()
	e.StateID = c.u8()
	e.FollowStateID = c.u32()
	return e, c.err
}

// LinSyncError is a LIN synchronisation error (object type 18). TimeDiff
// holds the measured inter-edge times of the sync field in microseconds.
type LinSyncError struct {
	ObjectHeader
	Channel  uint16
	TimeDiff [4]uint16
}

func decodeLinSyncError(c *cursor, h ObjectHeader) (*LinSyncError, error) {
	e := &LinSyncError{ObjectHeader: h}
	e.Channel = c.u16()
	c.skip(2) // reserved
	for i := range e.TimeDiff {
		e.TimeDiff[i] = c.u16()
	}
	c.skip(4) // reserved
	return e, c.err
}

// LIN lifecycle events (object types 13, 17, 19, 20, 21). Writers emit these
// with header fields only; the body, when present, carries nothing decodable.

// LinDlcInfo signals a DLC change on a LIN frame slot.
type LinDlcInfo struct{ ObjectHeader }

// LinSchedulerModeChange signals a schedule table switch.
type LinSchedulerModeChange struct{ ObjectHeader }

// LinBaudrateEvent signals a measured baudrate change.
type LinBaudrateEvent struct{ ObjectHeader }

// LinSleepModeEvent signals a bus sleep transition.
type LinSleepModeEvent struct{ ObjectHeader }

// LinWakeupEvent signals a bus wakeup.
type LinWakeupEvent struct{ ObjectHeader }
