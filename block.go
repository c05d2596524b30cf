package diffy

// ChangeBlock is a maximal run of removed lines together with the run of
// added lines that immediately follows it. Either side may be empty when a
// run has no counterpart.
type ChangeBlock struct {
	Removed []Line
	Added   []Line
}

// Pair associates a removed line with the added line that replaced it.
type Pair struct {
	Removed Line
	Added   Line
}

// Pairs zips the first min(len(Removed), len(Added)) lines of both sides,
// in order.
func (cb ChangeBlock) Pairs() []Pair {
	n := min(len(cb.Removed), len(cb.Added))
	if n == 0 {
		return nil
	}
	pairs := make([]Pair, n)
	for i := range n {
		pairs[i] = Pair{Removed: cb.Removed[i], Added: cb.Added[i]}
	}
	return pairs
}

// Unpaired returns the lines of the longer side that have no counterpart.
func (cb ChangeBlock) Unpaired() []Line {
	n := min(len(cb.Removed), len(cb.Added))
	if len(cb.Removed) > n {
		return cb.Removed[n:]
	}
	if len(cb.Added) > n {
		return cb.Added[n:]
	}
	return nil
}

// blockAt collects the change block that starts at script[i], which must be
// a removed or added line. It returns the block and the index just past it.
func blockAt(script []Line, i int) (ChangeBlock, int) {
	var cb ChangeBlock
	start := i
	for i < len(script) && script[i].Tag == Removed {
		i++
	}
	cb.Removed = span(script, start, i)
	start = i
	for i < len(script) && script[i].Tag == Added {
		i++
	}
	cb.Added = span(script, start, i)
	return cb, i
}

// findChangeBlocks returns every change block of script, in order.
func findChangeBlocks(script []Line) []ChangeBlock {
	var blocks []ChangeBlock
	for i := 0; i < len(script); {
		if script[i].Tag == Context {
			i++
			continue
		}
		var cb ChangeBlock
		cb, i = blockAt(script, i)
		blocks = append(blocks, cb)
	}
	return blocks
}

// span returns script[start:end] with its capacity clipped, or nil when the
// range is empty.
func span(script []Line, start, end int) []Line {
	if start == end {
		return nil
	}
	return script[start:end:end]
}
