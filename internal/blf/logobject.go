package blf

// LogObject is the decoded form of any object in a BLF stream. Every concrete
// object type embeds ObjectHeader, which provides both methods; the unexported
// method keeps the set of implementations closed to this package.
type LogObject interface {
	Header() ObjectHeader
	logObject()
}

// Unhandled carries the raw body of an object whose type this package does
// not decode. The stream stays intact: the surrounding parse advances past it
// normally and later objects are unaffected.
type Unhandled struct {
	ObjectHeader
	Data []byte
}

func decodeUnhandled(c *cursor, h ObjectHeader) (*Unhandled, error) {
	o := &Unhandled{ObjectHeader: h}
	o.Data = c.rest()
	return o, c.err
}
