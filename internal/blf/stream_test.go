package blf

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func drain(t *testing.T, sr *StreamingReader) []LogObject {
	t.Helper()
	var objs []LogObject
	for {
		o, err := sr.Next()
		if err == io.EOF {
			return objs
		}
		require.NoError(t, err)
		objs = append(objs, o)
	}
}

func TestStreamingReaderMatchesRead(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{ObjectCount: 4},
		canObject(1, 1),
		blftest.Container(blftest.CompressionZlib, blftest.Stream(
			canObject(1, 2),
			canObject(1, 3),
		)),
		canObject(1, 4),
	)

	whole, err := Read(data)
	require.NoError(t, err)

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)
	streamed := drain(t, sr)

	assert.Equal(t, messageIDs(whole.Objects), messageIDs(streamed))
	assert.Equal(t, whole.Statistics, sr.Statistics())
}

func TestStreamingReaderChunkBoundary(t *testing.T) {
	// Enough objects to cross several read chunks, so objects straddle
	// chunk boundaries and the leftover bytes must carry over.
	const n = 30000 // ~1.4 MB of top-level objects
	objs := make([][]byte, n)
	for i := range objs {
		objs[i] = canObject(uint16(i%4+1), uint32(i))
	}
	data := blftest.File(blftest.FileHeaderSpec{ObjectCount: n}, objs...)
	require.Greater(t, len(data), streamChunkSize)

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)

	count := 0
	for {
		o, err := sr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		m := o.(*CanMessage)
		require.Equal(t, uint32(count), m.ID)
		count++
	}
	assert.Equal(t, n, count)
	assert.Equal(t, int64(len(data)), sr.Offset())
}

func TestStreamingReaderOffsetProgress(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{}, canObject(1, 1), canObject(1, 2))

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)

	start := sr.Offset()
	assert.Greater(t, start, int64(0)) // statistics block consumed

	_, err = sr.Next()
	require.NoError(t, err)
	assert.Greater(t, sr.Offset(), start)
}

func TestStreamingReaderEOFIsSticky(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{}, canObject(1, 1))

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)
	drain(t, sr)

	_, err = sr.Next()
	assert.Equal(t, io.EOF, err)
	_, err = sr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStreamingReaderTruncatedObject(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{}, canObject(1, 1))
	truncated := data[:len(data)-8]

	sr, err := NewStreamingReader(bytes.NewReader(truncated))
	require.NoError(t, err)

	_, err = sr.Next()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestStreamingReaderHugeObjectSize(t *testing.T) {
	// A declared object size near the uint32 limit must surface as a typed
	// error, not wrap during alignment and slice past the buffer.
	var w blftest.Writer
	w.Bytes([]byte("LOBJ"))
	w.U16(32)         // header size
	w.U16(1)          // header version
	w.U32(0xFFFFFFFE) // object size
	w.U32(uint32(TypeCanMessage))
	w.U32(0) // flags
	w.U16(0) // client index
	w.U16(0) // object version
	w.U64(0) // timestamp
	w.Bytes(blftest.CanMessageBody(1, 0, 8, 1, [8]byte{}))

	data := append(blftest.FileHeader(blftest.FileHeaderSpec{}), w.Out()...)
	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)

	_, err = sr.Next()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestStreamingReaderShortHeader(t *testing.T) {
	_, err := NewStreamingReader(bytes.NewReader([]byte("LOGG")))
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestStreamingReaderProgressAndEOF(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{}, canObject(1, 1), canObject(1, 2))

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)

	assert.False(t, sr.EOF())
	p := sr.Progress()
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)

	drain(t, sr)
	assert.True(t, sr.EOF())
	assert.Equal(t, 1.0, sr.Progress())
}

func TestStreamingReaderNextBatch(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{},
		canObject(1, 1), canObject(1, 2), canObject(1, 3),
	)

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)

	batch, err := sr.NextBatch(2)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, messageIDs(batch))

	batch, err = sr.NextBatch(2)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []uint32{3}, messageIDs(batch))
}

func TestStreamingReaderSeekTo(t *testing.T) {
	first := canObject(1, 1)
	data := blftest.File(blftest.FileHeaderSpec{}, first, canObject(1, 2))

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)
	start := sr.Offset()
	drain(t, sr)

	// Rewind to the second object.
	require.NoError(t, sr.SeekTo(start+int64(len(first))))
	o, err := sr.Next()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), o.(*CanMessage).ID)

	_, err = sr.Next()
	assert.Equal(t, io.EOF, err)
}

func TestStreamingReaderEmitContainers(t *testing.T) {
	data := blftest.File(blftest.FileHeaderSpec{},
		blftest.Container(blftest.CompressionNone, blftest.Stream(canObject(1, 9))),
	)

	sr, err := NewStreamingReader(bytes.NewReader(data))
	require.NoError(t, err)
	sr.parser.EmitContainers = true

	objs := drain(t, sr)
	require.Len(t, objs, 2)
	assert.IsType(t, &LogContainer{}, objs[0])
	assert.IsType(t, &CanMessage{}, objs[1])
}
