package diffy

import "strings"

// Tag classifies a line of an edit script.
type Tag int

const (
	// Context lines are present in both texts.
	Context Tag = iota
	// Removed lines are only present in the old text.
	Removed
	// Added lines are only present in the new text.
	Added
)

// String returns the lower-case name of the tag.
func (t Tag) String() string {
	switch t {
	case Context:
		return "context"
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Prefix returns the single character that introduces a line of this kind
// in unified diff output.
func (t Tag) Prefix() string {
	switch t {
	case Removed:
		return "-"
	case Added:
		return "+"
	default:
		return " "
	}
}

// EOL is a line terminator.
type EOL string

// Line terminators recognized by SplitLines.
const (
	LF    EOL = "\n"
	CRLF  EOL = "\r\n"
	NoEOL EOL = ""
)

// Line is one line of text, tagged once it is part of an edit script.
//
// Text never includes the terminator. EOL is the terminator as it appeared
// on the side the line was taken from; for context lines that is the old
// text. Because lines are matched by Text alone, a context line may end
// differently in the new text, so NewEOL records that terminator. It is
// unset for removed and added lines.
type Line struct {
	Tag    Tag
	Text   string
	EOL    EOL
	NewEOL EOL
}

// String returns the canonical form of l: its prefix, text and terminator.
func (l Line) String() string {
	return l.Tag.Prefix() + l.Text + string(l.EOL)
}

// oldString is l as it appears in the old text.
func (l Line) oldString() string {
	return l.Text + string(l.EOL)
}

// newString is l as it appears in the new text.
func (l Line) newString() string {
	if l.Tag == Context {
		return l.Text + string(l.NewEOL)
	}
	return l.Text + string(l.EOL)
}

// SplitLines splits text into lines. Each line keeps the terminator it had:
// "\n", "\r\n", or none for a final line that is not terminated. An empty
// text has no lines.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}
	lines := make([]Line, 0, strings.Count(text, "\n")+1)
	for text != "" {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			lines = append(lines, Line{Text: text, EOL: NoEOL})
			break
		}
		content := text[:idx]
		eol := LF
		if strings.HasSuffix(content, "\r") {
			content = content[:len(content)-1]
			eol = CRLF
		}
		lines = append(lines, Line{Text: content, EOL: eol})
		text = text[idx+1:]
	}
	return lines
}

// joinLines is the inverse of SplitLines.
func joinLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.oldString())
	}
	return b.String()
}
