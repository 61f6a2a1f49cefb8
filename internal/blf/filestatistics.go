package blf

import (
	"fmt"
	"time"
)

// File signature "LOGG" as a little-endian u32.
const fileMagic = 0x47474F4C

// fileStatisticsFixedSize is the number of bytes the fixed fields occupy
// before the reserved tail begins.
const fileStatisticsFixedSize = 80

// Application IDs recorded in FileStatistics.AppID.
const (
	AppUnknown     uint8 = 0
	AppCANalyzer   uint8 = 1
	AppCANoe       uint8 = 2
	AppCANstress   uint8 = 3
	AppCANlog      uint8 = 4
	AppCANape      uint8 = 5
	AppCANcaseXLog uint8 = 6
)

// SystemTime is the 16-byte Windows SYSTEMTIME structure used by the file
// header for wall-clock timestamps.
type SystemTime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// IsZero reports whether every field is zero, which recorders emit when the
// wall-clock time was not captured.
func (t SystemTime) IsZero() bool {
	return t == SystemTime{}
}

// Time converts to a time.Time in UTC. The zero SystemTime converts to the
// zero time.Time.
func (t SystemTime) Time() time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second),
		int(t.Milliseconds)*int(time.Millisecond), time.UTC)
}

func (t SystemTime) String() string {
	if t.IsZero() {
		return "unset"
	}
	return t.Time().Format("2006-01-02 15:04:05.000")
}

func readSystemTime(c *cursor) SystemTime {
	return SystemTime{
		Year:         c.u16(),
		Month:        c.u16(),
		DayOfWeek:    c.u16(),
		Day:          c.u16(),
		Hour:         c.u16(),
		Minute:       c.u16(),
		Second:       c.u16(),
		Milliseconds: c.u16(),
	}
}

// FileStatistics is the header block at the start of every BLF file. The
// recorder writes it up front and patches the size and count fields when the
// capture closes, so on truncated captures they can disagree with the actual
// stream; parsing never depends on them.
type FileStatistics struct {
	StatisticsSize       uint32
	APINumber            uint32
	AppID                uint8
	CompressionLevel     uint8
	AppMajor             uint8
	AppMinor             uint8
	FileSize             uint64
	UncompressedFileSize uint64
	ObjectCount          uint32
	ApplicationBuild     uint32
	MeasurementStart     SystemTime
	LastObjectTime       SystemTime
	RestorePointsOffset  uint64
}

// APIVersion renders APINumber as the dotted version string it encodes
// (major*1000000 + minor*1000 + build*100 + patch).
func (s *FileStatistics) APIVersion() string {
	n := s.APINumber
	return fmt.Sprintf("%d.%d.%d.%d", n/1000000, n%1000000/1000, n%1000/100, n%100)
}

// ObjectTime composes an object's nanosecond timestamp offset with the
// measurement start time. The zero time is returned when the file carries no
// measurement start.
func (s *FileStatistics) ObjectTime(offsetNS uint64) time.Time {
	if s.MeasurementStart.IsZero() {
		return time.Time{}
	}
	return s.MeasurementStart.Time().Add(time.Duration(offsetNS))
}

// readFileStatistics decodes the header block and leaves the cursor at the
// first object, consuming exactly StatisticsSize bytes including the reserved
// tail.
func readFileStatistics(c *cursor) (*FileStatistics, error) {
	start := c.pos
	sig := c.u32()
	if c.err != nil {
		return nil, c.err
	}
	if sig != fileMagic {
		return nil, ErrInvalidFileMagic
	}

	s := &FileStatistics{}
	s.StatisticsSize = c.u32()
	s.APINumber = c.u32()
	s.AppID = c.u8()
	s.CompressionLevel = c.u8()
	s.AppMajor = c.u8()
	s.AppMinor = c.u8()
	s.FileSize = c.u64()
	s.UncompressedFileSize = c.u64()
	s.ObjectCount = c.u32()
	s.ApplicationBuild = c.u32()
	s.MeasurementStart = readSystemTime(c)
	s.LastObjectTime = readSystemTime(c)
	s.RestorePointsOffset = c.u64()
	if c.err != nil {
		return nil, c.err
	}
	if s.StatisticsSize < fileStatisticsFixedSize {
		return nil, fmt.Errorf("file statistics size %d below fixed layout size %d: %w",
			s.StatisticsSize, fileStatisticsFixedSize, ErrUnexpectedEOF)
	}
	c.skip(int(s.StatisticsSize) - (c.pos - start))
	if c.err != nil {
		return nil, c.err
	}
	return s, nil
}
