package diffy

import (
	"slices"
	"strings"
)

// Boundary shifting preferences (higher = more preferred)
const (
	// blankLineBonus is the score bonus for keeping a blank line as a separator
	blankLineBonus = 10
	// startOfLineBonus is added when a change starts at the beginning of content
	startOfLineBonus = 3
	// endOfLineBonus is added when a change ends at the end of content
	endOfLineBonus = 3
	// punctuationBonus is added when boundary is at punctuation
	punctuationBonus = 2
)

// shiftBoundaries adjusts diff boundaries for better readability.
// A pure deletion or insertion sandwiched between two equal runs can often
// slide up or down along repeated elements without changing the edit
// distance. Each such run is moved to the best scoring position, preferring
// to keep blank lines as separators.
//
// A run never slides far enough to empty a neighboring equal run, so the
// order of operations (and the deletions-before-insertions rule) is kept.
func shiftBoundaries(ops []DiffOp, a, b []Element) []DiffOp {
	if len(ops) < 3 {
		return ops
	}

	result := slices.Clone(ops)
	for i := 1; i+1 < len(result); i++ {
		prev, cur, next := &result[i-1], &result[i], &result[i+1]
		if prev.Type != Equal || next.Type != Equal {
			continue
		}
		switch cur.Type {
		case Delete:
			shift := bestShift(a, cur.AStart, cur.AEnd, prev.AEnd-prev.AStart, next.AEnd-next.AStart)
			applyShift(prev, cur, next, shift)
		case Insert:
			shift := bestShift(b, cur.BStart, cur.BEnd, prev.BEnd-prev.BStart, next.BEnd-next.BStart)
			applyShift(prev, cur, next, shift)
		}
	}

	return result
}

// bestShift returns how far the change elems[start:end] should move. Moving
// forward by one is possible when elems[start] equals elems[end]; backward
// when elems[end-1] equals elems[start-1]. Room limits how far a move may go
// without emptying the surrounding equal runs.
func bestShift(elems []Element, start, end, roomBefore, roomAfter int) int {
	// Calculate how far we can shift in each direction
	maxShiftForward := 0
	for i := 0; i < roomAfter-1 && end+i < len(elems); i++ {
		if !elems[start+i].Equal(elems[end+i]) {
			break
		}
		maxShiftForward = i + 1
	}

	maxShiftBackward := 0
	for i := 0; i < roomBefore-1 && start-i-1 >= 0; i++ {
		if !elems[end-i-1].Equal(elems[start-i-1]) {
			break
		}
		maxShiftBackward = i + 1
	}

	if maxShiftForward == 0 && maxShiftBackward == 0 {
		return 0
	}

	// Score each possible position
	best := 0
	bestScore := scoreBoundary(start, end, elems)

	for shift := 1; shift <= maxShiftForward; shift++ {
		score := scoreBoundary(start+shift, end+shift, elems)
		if score > bestScore {
			bestScore = score
			best = shift
		}
	}

	for shift := 1; shift <= maxShiftBackward; shift++ {
		score := scoreBoundary(start-shift, end-shift, elems)
		if score > bestScore {
			bestScore = score
			best = -shift
		}
	}

	return best
}

// applyShift moves cur by shift positions and resizes the equal runs around
// it to match.
func applyShift(prev, cur, next *DiffOp, shift int) {
	if shift == 0 {
		return
	}
	prev.AEnd += shift
	prev.BEnd += shift
	next.AStart += shift
	next.BStart += shift
	switch cur.Type {
	case Delete:
		cur.AStart += shift
		cur.AEnd += shift
		cur.BStart = prev.BEnd
		cur.BEnd = prev.BEnd
	case Insert:
		cur.BStart += shift
		cur.BEnd += shift
		cur.AStart = prev.AEnd
		cur.AEnd = prev.AEnd
	}
}

// scoreBoundary scores a boundary position based on readability heuristics.
// Higher scores indicate better boundary positions.
func scoreBoundary(start, end int, elems []Element) int {
	score := 0

	// Bonus for blank line before the change region
	if start > 0 && isBlank(elems[start-1]) {
		score += blankLineBonus
	}

	// Bonus for blank line after the change region
	if end < len(elems) && isBlank(elems[end]) {
		score += blankLineBonus
	}

	// Bonus for starting at beginning of sequence
	if start == 0 {
		score += startOfLineBonus
	}

	// Bonus for ending at end of sequence
	if end == len(elems) {
		score += endOfLineBonus
	}

	// Check for punctuation boundaries
	if start > 0 && endsWithPunctuation(elems[start-1]) {
		score += punctuationBonus
	}
	if end < len(elems) && startsWithPunctuation(elems[end]) {
		score += punctuationBonus
	}

	return score
}

// elementText returns the text behind the element types of this package.
func elementText(e Element) (string, bool) {
	switch v := e.(type) {
	case StringElement:
		return string(v), true
	case lineElement:
		return v.key, true
	default:
		return "", false
	}
}

// isBlank checks if an element represents blank/whitespace content.
func isBlank(e Element) bool {
	s, ok := elementText(e)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) == ""
}

// endsWithPunctuation checks if an element ends with sentence punctuation.
func endsWithPunctuation(e Element) bool {
	s, ok := elementText(e)
	if !ok {
		return false
	}
	str := strings.TrimSpace(s)
	if len(str) == 0 {
		return false
	}
	last := str[len(str)-1]
	return last == '.' || last == '!' || last == '?' || last == ':' || last == ';' || last == '}'
}

// startsWithPunctuation checks if an element starts with punctuation.
func startsWithPunctuation(e Element) bool {
	s, ok := elementText(e)
	if !ok {
		return false
	}
	str := strings.TrimSpace(s)
	if len(str) == 0 {
		return false
	}
	first := str[0]
	// Common sentence starters after punctuation
	return first == '-' || first == '*' || first == '#' || first == '>'
}
