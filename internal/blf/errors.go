package blf

import (
	"errors"
	"fmt"
)

// Sentinel errors for structural faults. Any of these aborts the current
// file or container parse: once the cursor desynchronises from the declared
// object sizes, every later record would be garbage.
var (
	// ErrInvalidFileMagic reports a file that does not start with "LOGG".
	ErrInvalidFileMagic = errors.New("invalid BLF file magic (want \"LOGG\")")

	// ErrInvalidContainerMagic reports an object that does not start with "LOBJ".
	ErrInvalidContainerMagic = errors.New("invalid object magic (want \"LOBJ\")")

	// ErrUnexpectedEOF reports data that ended mid-structure.
	ErrUnexpectedEOF = errors.New("unexpected end of data")
)

// UnsupportedCompressionError reports a LogContainer compression method other
// than 0 (none) or 2 (zlib).
type UnsupportedCompressionError struct {
	Method uint16
}

func (e *UnsupportedCompressionError) Error() string {
	return fmt.Sprintf("unsupported container compression method %d", e.Method)
}

// UnknownHeaderVersionError reports an object header version other than 1 or 2.
type UnknownHeaderVersionError struct {
	Version uint16
}

func (e *UnknownHeaderVersionError) Error() string {
	return fmt.Sprintf("unknown object header version %d", e.Version)
}

// ParseError wraps a structural error with the byte offset at which it
// occurred. Offset is relative to the start of the byte stream being parsed:
// the file for top-level objects, the decompressed payload for objects inside
// a LogContainer (Container reports which).
type ParseError struct {
	Offset    int64
	Container bool
	Err       error
}

func (e *ParseError) Error() string {
	where := "offset"
	if e.Container {
		where = "container offset"
	}
	return fmt.Sprintf("blf: %s %d: %v", where, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// parseErrAt tags err with a stream offset unless it is already tagged.
func parseErrAt(off int64, container bool, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &ParseError{Offset: off, Container: container, Err: err}
}
