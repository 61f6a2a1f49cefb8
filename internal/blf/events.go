package blf

// AppTrigger is an application-defined trigger event (object type 5).
type AppTrigger struct {
	ObjectHeader
	PreTriggerTime  uint64
	PostTriggerTime uint64
	Channel         uint16
	Flags           uint16
}

func decodeAppTrigger(c *cursor, h ObjectHeader) (*AppTrigger, error) {
	t := &AppTrigger{ObjectHeader: h}
	t.PreTriggerTime = c.u64()
	t.PostTriggerTime = c.u64()
	t.Channel = c.u16()
	t.Flags = c.u16()
	return t, c.err
}

// EventComment is a free-text comment attached to another event (object
// type 92).
type EventComment struct {
	ObjectHeader
	CommentedEventType uint32
	Text               string
}

func decodeEventComment(c *cursor, h ObjectHeader) (*EventComment, error) {
	e := &EventComment{ObjectHeader: h}
	e.CommentedEventType = c.u32()
	n := c.u32()
	c.skip(8) // reserved
	e.Text = string(c.bytes(int(n)))
	return e, c.err
}

// GlobalMarker is a named marker placed on the measurement timeline (object
// type 96).
type GlobalMarker struct {
	ObjectHeader
	CommentedEventType uint32
	ForegroundColor    uint32
	BackgroundColor    uint32
	IsRelocatable      uint8
	GroupName          string
	MarkerName         string
	Description        string
}

func decodeGlobalMarker(c *cursor, h ObjectHeader) (*GlobalMarker, error) {
	m := &GlobalMarker{ObjectHeader: h}
	m.CommentedEventType = c.u32()
	m.ForegroundColor = c.u32()
	m.BackgroundColor = c.u32()
	m.IsRelocatable = c.u8()
	c.skip(1) // reserved
	c.skip(2) // reserved
	groupLen := c.u32()
	markerLen := c.u32()
	descLen := c.u32()
	c.skip(4) // reserved
	c.skip(8) // reserved
	m.GroupName = string(c.bytes(int(groupLen)))
	m.MarkerName = string(c.bytes(int(markerLen)))
	m.Description = string(c.bytes(int(descLen)))
	return m, c.err
}

// DataLostBegin marks the start of a span where the logger dropped objects
// (object type 124).
type DataLostBegin struct {
	ObjectHeader
	QueueIdentifier uint32
}

func decodeDataLostBegin(c *cursor, h ObjectHeader) (*DataLostBegin, error) {
	d := &DataLostBegin{ObjectHeader: h}
	d.QueueIdentifier = c.u32()
	return d, c.err
}

// DataLostEnd closes a span opened by DataLostBegin and says how much was
// lost (object type 125).
type DataLostEnd struct {
	ObjectHeader
	QueueIdentifier          uint32
	FirstObjectLostTimestamp uint64
	NumberOfLostEvents       uint32
}

func decodeDataLostEnd(c *cursor, h ObjectHeader) (*DataLostEnd, error) {
	d := &DataLostEnd{ObjectHeader: h}
	d.QueueIdentifier = c.u32()
	d.FirstObjectLostTimestamp = c.u64()
	d.NumberOfLostEvents = c.u32()
	c.skip(4) // reserved
	return d, c.err
}
