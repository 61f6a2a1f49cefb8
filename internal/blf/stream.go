package blf

import (
	"fmt"
	"io"
)

// streamChunkSize is how much the streaming reader pulls from the underlying
// reader at a time.
const streamChunkSize = 1 << 20

// StreamingReader iterates over a BLF stream with bounded memory: it keeps
// one read chunk plus any partial object that straddled a chunk boundary,
// never the whole file. Contents of each LogContainer are still decompressed
// as a unit, so peak memory is one chunk plus one container.
type StreamingReader struct {
	r      io.Reader
	parser Parser
	stats  *FileStatistics

	buf    []byte // unconsumed top-level bytes
	offset int64  // file offset of buf[0]
	eof    bool

	queue []LogObject // container contents pending delivery
	err   error       // sticky terminal error
}

// NewStreamingReader reads the file header from r and returns a reader
// positioned at the first object.
func NewStreamingReader(r io.Reader) (*StreamingReader, error) {
	sr := &StreamingReader{r: r}
	if ok, err := sr.ensure(int(fileStatisticsFixedSize)); err != nil {
		return nil, err
	} else if !ok {
		return nil, parseErrAt(0, false, ErrUnexpectedEOF)
	}
	c := newCursor(sr.buf)
	// The fixed fields carry the full statistics size; pull the reserved
	// tail in before decoding so the cursor can consume it.
	peek := newCursor(sr.buf)
	peek.skip(4)
	statSize := peek.u32()
	if peek.err == nil && statSize > fileStatisticsFixedSize {
		if ok, err := sr.ensure(int(statSize)); err != nil {
			return nil, err
		} else if !ok {
			return nil, parseErrAt(0, false, ErrUnexpectedEOF)
		}
		c = newCursor(sr.buf)
	}
	stats, err := readFileStatistics(c)
	if err != nil {
		return nil, parseErrAt(0, false, err)
	}
	sr.stats = stats
	sr.consume(c.pos)
	return sr, nil
}

// Statistics returns the file header block.
func (sr *StreamingReader) Statistics() *FileStatistics { return sr.stats }

// Offset returns the file offset of the next top-level byte to parse.
// Against the known file size this doubles as a progress indicator.
func (sr *StreamingReader) Offset() int64 { return sr.offset }

// Progress reports how far through the file the reader is, in [0, 1], based
// on the header's declared file size. Files that declare no size report 0
// until exhaustion.
func (sr *StreamingReader) Progress() float64 {
	if sr.EOF() {
		return 1
	}
	if sr.stats == nil || sr.stats.FileSize == 0 {
		return 0
	}
	p := float64(sr.offset) / float64(sr.stats.FileSize)
	if p > 1 {
		p = 1
	}
	return p
}

// EOF reports whether the stream is exhausted: no buffered bytes, no pending
// container contents, and nothing left to read.
func (sr *StreamingReader) EOF() bool {
	if sr.err == io.EOF {
		return true
	}
	return sr.eof && len(sr.buf) < objectHeaderBaseSize && len(sr.queue) == 0
}

// SeekTo repositions the reader at an absolute file offset, which must be the
// start of a top-level object. The underlying reader must support seeking.
// Any sticky error except a genuine read failure is cleared.
func (sr *StreamingReader) SeekTo(offset int64) error {
	s, ok := sr.r.(io.Seeker)
	if !ok {
		return fmt.Errorf("seek to %d: underlying reader is not seekable", offset)
	}
	if _, err := s.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to %d: %w", offset, err)
	}
	sr.buf = nil
	sr.queue = nil
	sr.offset = offset
	sr.eof = false
	sr.err = nil
	return nil
}

// NextBatch returns up to max objects (all remaining if max <= 0). When the
// stream ends or fails inside a batch, the objects read so far are returned
// together with the error, io.EOF included.
func (sr *StreamingReader) NextBatch(max int) ([]LogObject, error) {
	var batch []LogObject
	for max <= 0 || len(batch) < max {
		obj, err := sr.Next()
		if err != nil {
			return batch, err
		}
		batch = append(batch, obj)
	}
	return batch, nil
}

// Next returns the next object in stream order, expanding containers in
// place. It returns io.EOF after the last object.
func (sr *StreamingReader) Next() (LogObject, error) {
	if sr.err != nil {
		return nil, sr.err
	}
	for {
		if len(sr.queue) > 0 {
			o := sr.queue[0]
			sr.queue = sr.queue[1:]
			return o, nil
		}

		ok, err := sr.ensure(objectHeaderBaseSize)
		if err != nil {
			return nil, sr.fail(err)
		}
		if !ok {
			// Trailing bytes too short for a header are padding.
			return nil, sr.fail(io.EOF)
		}

		peek := newCursor(sr.buf)
		peek.skip(4) // signature, validated by readObjectHeader
		peek.skip(2)
		peek.skip(2)
		objSize := peek.u32()
		// Align in int arithmetic: a declared size near the uint32 limit
		// must surface as a short read, not wrap to a small value.
		need := int(objSize)
		if rem := need % 4; rem != 0 {
			need += 4 - rem
		}
		if need < objectHeaderBaseSize {
			need = objectHeaderBaseSize
		}
		ok, err = sr.ensure(need)
		if err != nil {
			return nil, sr.fail(err)
		}
		if !ok {
			// The final object's alignment padding may be absent, but
			// the object itself must be complete.
			if len(sr.buf) < int(objSize) {
				return nil, sr.fail(parseErrAt(sr.offset, false, ErrUnexpectedEOF))
			}
			need = len(sr.buf)
		}

		c := newCursor(sr.buf)
		h, err := readObjectHeader(c)
		if err != nil {
			return nil, sr.fail(parseErrAt(sr.offset, false, err))
		}
		if h.ObjectSize < uint32(h.HeaderSize) || h.HeaderSize < objectHeaderBaseSize {
			return nil, sr.fail(parseErrAt(sr.offset, false,
				fmt.Errorf("object size %d inconsistent with header size %d", h.ObjectSize, h.HeaderSize)))
		}
		body := sr.buf[int(h.HeaderSize):int(h.ObjectSize)]
		obj, err := decodeObject(h, body)
		if err != nil {
			return nil, sr.fail(parseErrAt(sr.offset, false, err))
		}
		sr.consume(need)

		if lc, ok := obj.(*LogContainer); ok {
			contents, err := sr.parser.Parse(lc.Data)
			if err != nil {
				return nil, sr.fail(err)
			}
			sr.queue = contents
			if sr.parser.EmitContainers {
				return lc, nil
			}
			continue
		}
		return obj, nil
	}
}

// ensure grows buf to at least n bytes. ok is false when the stream ended
// first; err reports only genuine read failures.
func (sr *StreamingReader) ensure(n int) (bool, error) {
	for len(sr.buf) < n && !sr.eof {
		chunk := make([]byte, streamChunkSize)
		read, err := io.ReadFull(sr.r, chunk)
		sr.buf = append(sr.buf, chunk[:read]...)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			sr.eof = true
		} else if err != nil {
			return false, err
		}
	}
	return len(sr.buf) >= n, nil
}

func (sr *StreamingReader) consume(n int) {
	sr.buf = sr.buf[n:]
	sr.offset += int64(n)
}

func (sr *StreamingReader) fail(err error) error {
	sr.err = err
	return err
}
