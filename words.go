package diffy

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
)

// Segment is a span of a highlighted line. Concatenating the Text of all
// segments of a line gives back the line.
type Segment struct {
	Text    string
	Changed bool
}

// DiffWords compares two lines word by word and returns the segments of
// each, marking exactly the spans that differ. Adjacent segments never share
// the same Changed value.
//
// Lines are split into tokens made of a word and the separators in front of
// it (trailing separators become a token of their own), using Unicode word
// boundaries. Tokens are diffed with the same minimal algorithm as lines.
// Where a deleted run is replaced by an inserted run, the characters both
// runs start and end with are reported as unchanged, so "an arrow" against
// "a banana" highlights "n arrow" and " banana".
func DiffWords(a, b string) (oldSegs, newSegs []Segment) {
	ta, tb := tokenize(a), tokenize(b)
	ops := Compare(ta, tb)

	var sa, sb segmentBuilder
	for i := 0; i < len(ops); i++ {
		op := ops[i]
		switch op.Type {
		case Equal:
			text := strings.Join(ta[op.AStart:op.AEnd], "")
			sa.add(text, false)
			sb.add(text, false)
		case Delete:
			del := strings.Join(ta[op.AStart:op.AEnd], "")
			ins := ""
			if i+1 < len(ops) && ops[i+1].Type == Insert {
				next := ops[i+1]
				ins = strings.Join(tb[next.BStart:next.BEnd], "")
				i++
			}
			addReplacement(&sa, &sb, del, ins)
		case Insert:
			sb.add(strings.Join(tb[op.BStart:op.BEnd], ""), true)
		}
	}

	oldSegs, newSegs = sa.segs, sb.segs
	if err := checkSegments(oldSegs, a); err != nil {
		panic(fmt.Errorf("diffy: word diff of old line: %w", err))
	}
	if err := checkSegments(newSegs, b); err != nil {
		panic(fmt.Errorf("diffy: word diff of new line: %w", err))
	}
	return oldSegs, newSegs
}

// addReplacement records del being replaced by ins, moving their common
// prefix and suffix into unchanged segments.
func addReplacement(sa, sb *segmentBuilder, del, ins string) {
	p := commonPrefix(del, ins)
	s := commonSuffix(del[p:], ins[p:])

	sa.add(del[:p], false)
	sa.add(del[p:len(del)-s], true)
	sa.add(del[len(del)-s:], false)

	sb.add(ins[:p], false)
	sb.add(ins[p:len(ins)-s], true)
	sb.add(ins[len(ins)-s:], false)
}

// commonPrefix returns the length in bytes of the longest common prefix of
// a and b that ends on a rune boundary.
func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		_, sa := utf8.DecodeRuneInString(a[n:])
		_, sb := utf8.DecodeRuneInString(b[n:])
		// Invalid bytes all decode to RuneError, so compare the bytes.
		if a[n:n+sa] != b[n:n+sb] {
			break
		}
		n += sa
	}
	return n
}

// commonSuffix returns the length in bytes of the longest common suffix of
// a and b that starts on a rune boundary.
func commonSuffix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) {
		_, sa := utf8.DecodeLastRuneInString(a[:len(a)-n])
		_, sb := utf8.DecodeLastRuneInString(b[:len(b)-n])
		if a[len(a)-n-sa:len(a)-n] != b[len(b)-n-sb:len(b)-n] {
			break
		}
		n += sa
	}
	return n
}

// tokenize splits s into tokens that each hold one word and the separators
// before it. Separators after the last word form a final token. Joining the
// tokens gives back s.
func tokenize(s string) []string {
	var tokens []string
	start := 0
	end := 0
	segs := words.FromString(s)
	for segs.Next() {
		seg := segs.Value()
		end += len(seg)
		if isWord(seg) {
			tokens = append(tokens, s[start:end])
			start = end
		}
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// isWord reports whether a word-boundary segment is a word rather than
// whitespace or punctuation.
func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' {
			return true
		}
	}
	return false
}

// segmentBuilder accumulates segments, merging neighbors with the same status.
type segmentBuilder struct {
	segs []Segment
}

func (sb *segmentBuilder) add(text string, changed bool) {
	if text == "" {
		return
	}
	if n := len(sb.segs); n > 0 && sb.segs[n-1].Changed == changed {
		sb.segs[n-1].Text += text
		return
	}
	sb.segs = append(sb.segs, Segment{Text: text, Changed: changed})
}

// checkSegments verifies that segs reconstruct line and are coalesced.
func checkSegments(segs []Segment, line string) error {
	var b strings.Builder
	for i, seg := range segs {
		if seg.Text == "" {
			return fmt.Errorf("segment %d is empty", i)
		}
		if i > 0 && segs[i-1].Changed == seg.Changed {
			return fmt.Errorf("segments %d and %d are not coalesced", i-1, i)
		}
		b.WriteString(seg.Text)
	}
	if b.String() != line {
		return fmt.Errorf("segments join to %q, want %q", b.String(), line)
	}
	return nil
}
