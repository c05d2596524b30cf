package diffy

import (
	"fmt"
	"strconv"
)

// Hunk is a window of an edit script: a group of changes with up to a fixed
// number of context lines around them.
//
// OldStart and NewStart are 1-based line numbers of the first line of the
// hunk in each text. When a side has no lines in the hunk, its start is the
// number of the line after which the change happens, as in unified diffs.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []Line
}

// Header returns the unified diff hunk header, without a line terminator.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", unifiedRange(h.OldStart, h.OldLines), unifiedRange(h.NewStart, h.NewLines))
}

func unifiedRange(start, count int) string {
	if count == 1 {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "," + strconv.Itoa(count)
}

// buildHunks groups the changes of script into hunks with context lines of
// context around each change. Changes whose context windows touch or overlap
// share a hunk. A script without changes has no hunks.
func buildHunks(script []Line, context int) []Hunk {
	context = max(context, 0)

	// Mark the window around each change in a difference array, then sweep.
	marks := make([]int, len(script)+1)
	for i, l := range script {
		if l.Tag == Context {
			continue
		}
		marks[max(0, i-context)]++
		marks[min(len(script), i+context+1)]--
	}

	var hunks []Hunk
	oldNo, newNo := 0, 0
	depth := 0
	var cur *Hunk
	start := 0
	for i, l := range script {
		depth += marks[i]
		if depth > 0 && cur == nil {
			cur = &Hunk{OldStart: oldNo, NewStart: newNo}
			start = i
		}
		if depth == 0 && cur != nil {
			hunks = append(hunks, finishHunk(cur, script[start:i:i]))
			cur = nil
		}
		if l.Tag != Added {
			oldNo++
		}
		if l.Tag != Removed {
			newNo++
		}
		if cur != nil {
			if l.Tag != Added {
				cur.OldLines++
			}
			if l.Tag != Removed {
				cur.NewLines++
			}
		}
	}
	if cur != nil {
		hunks = append(hunks, finishHunk(cur, script[start:]))
	}
	return hunks
}

func finishHunk(h *Hunk, lines []Line) Hunk {
	h.Lines = lines
	if h.OldLines > 0 {
		h.OldStart++
	}
	if h.NewLines > 0 {
		h.NewStart++
	}
	return *h
}
