package blf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/bustrace/internal/blf/blftest"
)

func TestSystemTimeConversion(t *testing.T) {
	st := SystemTime{
		Year: 2024, Month: 3, Day: 15,
		Hour: 14, Minute: 30, Second: 45, Milliseconds: 250,
	}

	want := time.Date(2024, time.March, 15, 14, 30, 45, 250*int(time.Millisecond), time.UTC)
	assert.Equal(t, want, st.Time())
	assert.Equal(t, "2024-03-15 14:30:45.250", st.String())
}

func TestSystemTimeZero(t *testing.T) {
	var st SystemTime
	assert.True(t, st.IsZero())
	assert.True(t, st.Time().IsZero())
	assert.Equal(t, "unset", st.String())
}

func TestObjectTime(t *testing.T) {
	s := &FileStatistics{
		MeasurementStart: SystemTime{Year: 2024, Month: 3, Day: 15, Hour: 14},
	}

	got := s.ObjectTime(2_500_000_000) // 2.5s into the measurement
	want := time.Date(2024, time.March, 15, 14, 0, 2, 500_000_000, time.UTC)
	assert.Equal(t, want, got)

	var unset FileStatistics
	assert.True(t, unset.ObjectTime(1000).IsZero())
}

func TestFileStatisticsOversizedBlock(t *testing.T) {
	// A 208-byte statistics block: the reserved tail past the fixed layout is
	// skipped, and the declared object count is reported without requiring
	// matching objects in the stream.
	var w blftest.Writer
	w.Bytes([]byte("LOGG"))
	w.U32(208)
	w.U32(3080400)
	w.U8(2)   // application id
	w.U8(0)   // compression level
	w.U8(196) // application major
	w.U8(103) // application minor
	w.U64(208)
	w.U64(208)
	w.U32(166751)
	w.U32(0)         // application build
	w.Zero(32)       // measurement start + last object time
	w.U64(0)         // restore points offset
	w.Zero(208 - 80) // reserved tail

	f, err := Read(w.Out())
	require.NoError(t, err)
	assert.Empty(t, f.Objects)
	assert.Equal(t, uint32(166751), f.Statistics.ObjectCount)
	assert.Equal(t, uint8(196), f.Statistics.AppMajor)
	assert.Equal(t, uint8(103), f.Statistics.AppMinor)
}

func TestFileStatisticsTooSmall(t *testing.T) {
	// A statistics size below the fixed layout cannot be honoured.
	data := make([]byte, 128)
	copy(data, "LOGG")
	data[4] = 16 // statistics size

	_, err := Read(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}
