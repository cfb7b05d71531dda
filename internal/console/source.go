package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned by the readers once the line source is exhausted.
var ErrEndOfInput = fmt.Errorf("end of input: %w", io.EOF)

// LineSource yields input one line at a time. ReadLine returns io.EOF when no
// more lines are available.
type LineSource interface {
	ReadLine() (string, error)
}

// ReaderSource reads lines of any length from an io.Reader such as os.Stdin.
type ReaderSource struct {
	reader *bufio.Reader
}

// NewReaderSource wraps r in a buffered line reader.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line without its "\n" or "\r\n" terminator. A
// final line with no trailing newline is still returned; io.EOF follows it.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
