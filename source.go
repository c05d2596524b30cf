package diffy

import (
	"fmt"
	"io"
	"os"
)

// LineSource supplies the lines of one side of a diff.
type LineSource interface {
	ReadLines() ([]Line, error)
}

// Text is a LineSource for text that is already in memory.
type Text string

// ReadLines splits t into lines. It never fails.
func (t Text) ReadLines() ([]Line, error) {
	return SplitLines(string(t)), nil
}

// File returns a LineSource that reads the file at path.
func File(path string) LineSource {
	return fileSource(path)
}

type fileSource string

func (f fileSource) ReadLines() ([]Line, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// Reader returns a LineSource that reads r to the end.
func Reader(r io.Reader) LineSource {
	return readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) ReadLines() ([]Line, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return SplitLines(string(data)), nil
}
