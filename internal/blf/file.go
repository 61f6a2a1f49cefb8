package blf

import (
	"fmt"
	"os"
)

// File is a fully parsed BLF file.
type File struct {
	Statistics *FileStatistics
	Objects    []LogObject
}

// Read parses a complete BLF file held in memory. Container contents are
// spliced into Objects in stream order; the containers themselves are not
// kept.
func Read(data []byte) (*File, error) {
	return readWith(&Parser{}, data)
}

func readWith(p *Parser, data []byte) (*File, error) {
	c := newCursor(data)
	stats, err := readFileStatistics(c)
	if err != nil {
		return nil, parseErrAt(0, false, err)
	}

	f := &File{Statistics: stats}
	err = p.forEach(data[c.pos:], int64(c.pos), false, func(o LogObject) error {
		f.Objects = append(f.Objects, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadFile parses the BLF file at path.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}
