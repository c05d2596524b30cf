package diffy

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Format selects how a Diff is rendered.
type Format int

const (
	// FormatText prefixes every line with " ", "-" or "+".
	FormatText Format = iota
	// FormatColor is FormatText with removed lines in red and added lines
	// in green, using ANSI escapes.
	FormatColor
	// FormatHTML renders an HTML list and highlights the changed words of
	// lines that replace each other.
	FormatHTML
	// FormatHTMLSimple renders the same HTML list without word highlighting.
	FormatHTMLSimple
	// FormatRaw hands every canonical line to a caller supplied function.
	FormatRaw
)

// ErrUnknownFormat is returned when a format name or value is not one of
// the supported formats.
var ErrUnknownFormat = errors.New("unknown format")

var formatNames = [...]string{
	FormatText:       "text",
	FormatColor:      "color",
	FormatHTML:       "html",
	FormatHTMLSimple: "html_simple",
	FormatRaw:        "raw",
}

// String returns the name ParseFormat accepts for f.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formatNames)
}

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// defaultFormat is the process-wide format used when a render call does not
// ask for one. The zero value is FormatText.
var defaultFormat atomic.Int32

// SetDefaultFormat changes the process-wide default format. Output that was
// already rendered is not affected.
func SetDefaultFormat(f Format) error {
	if !f.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	defaultFormat.Store(int32(f))
	return nil
}

// DefaultFormat returns the process-wide default format.
func DefaultFormat() Format {
	return Format(defaultFormat.Load())
}
