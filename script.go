package diffy

import (
	"fmt"
	"strings"
)

// diffLines computes the edit script that turns a into b. Removed and added
// lines carry the terminator of their own side; context lines carry both.
func diffLines(a, b []Line, opts ...Option) []Line {
	ops := CompareElements(lineElements(a), lineElements(b), opts...)

	script := make([]Line, 0, max(len(a), len(b)))
	for _, op := range ops {
		switch op.Type {
		case Equal:
			for i := range op.AEnd - op.AStart {
				ol, nl := a[op.AStart+i], b[op.BStart+i]
				script = append(script, Line{Tag: Context, Text: ol.Text, EOL: ol.EOL, NewEOL: nl.EOL})
			}
		case Delete:
			for _, l := range a[op.AStart:op.AEnd] {
				script = append(script, Line{Tag: Removed, Text: l.Text, EOL: l.EOL})
			}
		case Insert:
			for _, l := range b[op.BStart:op.BEnd] {
				script = append(script, Line{Tag: Added, Text: l.Text, EOL: l.EOL})
			}
		}
	}

	if err := checkScript(script, a, b); err != nil {
		panic(fmt.Errorf("diffy: line diff produced an invalid edit script: %w", err))
	}
	return script
}

// checkScript verifies the reconstruction invariant: context and removed
// lines reproduce a, context and added lines reproduce b.
func checkScript(script, a, b []Line) error {
	i, j := 0, 0
	for k, l := range script {
		switch l.Tag {
		case Context:
			if i >= len(a) || j >= len(b) {
				return fmt.Errorf("line %d: context line past end of input", k)
			}
			if l.oldString() != a[i].oldString() {
				return fmt.Errorf("line %d: context %q does not match old line %d %q", k, l.Text, i, a[i].Text)
			}
			if l.newString() != b[j].oldString() {
				return fmt.Errorf("line %d: context %q does not match new line %d %q", k, l.Text, j, b[j].Text)
			}
			i++
			j++
		case Removed:
			if i >= len(a) || l.oldString() != a[i].oldString() {
				return fmt.Errorf("line %d: removed %q does not match old text", k, l.Text)
			}
			i++
		case Added:
			if j >= len(b) || l.newString() != b[j].oldString() {
				return fmt.Errorf("line %d: added %q does not match new text", k, l.Text)
			}
			j++
		default:
			return fmt.Errorf("line %d: unknown tag %d", k, l.Tag)
		}
	}
	if i != len(a) || j != len(b) {
		return fmt.Errorf("script consumed %d/%d old and %d/%d new lines", i, len(a), j, len(b))
	}
	return nil
}

// oldText reassembles the old text from an edit script.
func oldText(script []Line) string {
	var b strings.Builder
	for _, l := range script {
		if l.Tag != Added {
			b.WriteString(l.oldString())
		}
	}
	return b.String()
}

// newText reassembles the new text from an edit script.
func newText(script []Line) string {
	var b strings.Builder
	for _, l := range script {
		if l.Tag != Removed {
			b.WriteString(l.newString())
		}
	}
	return b.String()
}
