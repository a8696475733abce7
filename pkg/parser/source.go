package parser

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// DefaultMaxLineSize is the longest line a FileSource accepts unless told otherwise.
const DefaultMaxLineSize = 1024 * 1024

// FileSource implements LineSource on top of a bufio.Scanner.
type FileSource struct {
	name    string
	closer  io.Closer
	scanner *bufio.Scanner
	lineNum int
}

// OpenFile opens path and returns a LineSource over its lines.
// The caller must Close the returned source.
func OpenFile(path string, maxLineSize int) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	src := NewFileSource(f, path, maxLineSize)
	src.closer = f
	return src, nil
}

// NewFileSource creates a LineSource reading from r. Closing the source does
// not close r.
func NewFileSource(r io.Reader, name string, maxLineSize int) *FileSource {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineSize)), maxLineSize)
	scanner.Split(scanLines)

	return &FileSource{
		name:    name,
		scanner: scanner,
	}
}

// Next returns the next line. Returns io.EOF when the input is exhausted.
func (s *FileSource) Next(ctx context.Context) (Line, error) {
	select {
	case <-ctx.Done():
		return Line{}, ctx.Err()
	default:
	}

	if s.scanner == nil {
		return Line{}, io.EOF
	}

	if s.scanner.Scan() {
		s.lineNum++
		return Line{Text: s.scanner.Text(), Num: s.lineNum}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return Line{}, fmt.Errorf("reading %s after line %d: %w", s.name, s.lineNum, err)
	}
	return Line{}, io.EOF
}

// Name returns the name the source was created with.
func (s *FileSource) Name() string {
	return s.name
}

// Close releases the underlying file, if the source owns one.
func (s *FileSource) Close() error {
	s.scanner = nil
	if s.closer != nil {
		err := s.closer.Close()
		s.closer = nil
		return err
	}
	return nil
}

// scanLines is a bufio.SplitFunc that accepts \n, \r\n and a lone \r as
// line terminators. A terminator at the very end of input does not produce
// an extra empty line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// \r: need one more byte to tell \r\n from a lone \r.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
