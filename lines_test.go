package diffy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Line
	}{
		{"empty", "", nil},
		{"no terminator", "foo", []Line{{Text: "foo", EOL: NoEOL}}},
		{"single line", "foo\n", []Line{{Text: "foo", EOL: LF}}},
		{"crlf", "a\r\nb\n", []Line{{Text: "a", EOL: CRLF}, {Text: "b", EOL: LF}}},
		{"blank lines", "\n\n", []Line{{Text: "", EOL: LF}, {Text: "", EOL: LF}}},
		{"lone carriage return", "a\rb\n", []Line{{Text: "a\rb", EOL: LF}}},
		{"trailing carriage return", "a\r", []Line{{Text: "a\r", EOL: NoEOL}}},
		{"mixed", "x\ny\r\nz", []Line{{Text: "x", EOL: LF}, {Text: "y", EOL: CRLF}, {Text: "z", EOL: NoEOL}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
			if joined := joinLines(got); joined != tt.text {
				t.Errorf("joinLines(SplitLines(%q)) = %q", tt.text, joined)
			}
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		tag    Tag
		name   string
		prefix string
	}{
		{Context, "context", " "},
		{Removed, "removed", "-"},
		{Added, "added", "+"},
		{Tag(9), "unknown", " "},
	}

	for _, tt := range tests {
		if got := tt.tag.String(); got != tt.name {
			t.Errorf("Tag(%d).String() = %q, want %q", int(tt.tag), got, tt.name)
		}
		if got := tt.tag.Prefix(); got != tt.prefix {
			t.Errorf("Tag(%d).Prefix() = %q, want %q", int(tt.tag), got, tt.prefix)
		}
	}
}

func TestLine_String(t *testing.T) {
	tests := []struct {
		line Line
		want string
	}{
		{Line{Tag: Context, Text: "foo", EOL: LF}, " foo\n"},
		{Line{Tag: Removed, Text: "bar", EOL: CRLF}, "-bar\r\n"},
		{Line{Tag: Added, Text: "baz", EOL: NoEOL}, "+baz"},
		{Line{Tag: Context, Text: "x", EOL: LF, NewEOL: CRLF}, " x\n"},
	}

	for _, tt := range tests {
		if got := tt.line.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLine_SideStrings(t *testing.T) {
	l := Line{Tag: Context, Text: "x", EOL: CRLF, NewEOL: NoEOL}
	if got := l.oldString(); got != "x\r\n" {
		t.Errorf("oldString() = %q", got)
	}
	if got := l.newString(); got != "x" {
		t.Errorf("newString() = %q", got)
	}

	added := Line{Tag: Added, Text: "y", EOL: LF}
	if got := added.newString(); got != "y\n" {
		t.Errorf("newString() of added line = %q", got)
	}
}
