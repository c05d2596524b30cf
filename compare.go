package diffy

// compareSeq is the divide-and-conquer core of the Myers diff algorithm.
// It compares xvec[xoff:xlim] with yvec[yoff:ylim] and marks changes
// in xchanges and ychanges.
//
// Every sub-problem is split at an exact middle snake and solved to the end;
// there is no cost limit and no fallback split, so the marks always describe
// a minimal edit script.
func (ctx *diffContext) compareSeq(xoff, xlim, yoff, ylim int) {
	// 1. Trim matching elements from the start
	for xoff < xlim && yoff < ylim && ctx.equal(xoff, yoff) {
		xoff++
		yoff++
	}

	// 2. Trim matching elements from the end
	for xoff < xlim && yoff < ylim && ctx.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	// 3. Base cases: one sequence is empty
	if xoff == xlim {
		ctx.markInserted(yoff, ylim)
		return
	}
	if yoff == ylim {
		ctx.markDeleted(xoff, xlim)
		return
	}

	// 4. Find the middle snake. When there is none, the two ranges have no
	// element in common and everything is changed.
	part, ok := ctx.findMiddleSnake(xoff, xlim, yoff, ylim)
	if !ok {
		ctx.markDeleted(xoff, xlim)
		ctx.markInserted(yoff, ylim)
		return
	}

	// 5. Recurse on both halves
	ctx.compareSeq(xoff, part.xmid, yoff, part.ymid)
	ctx.compareSeq(part.xmid, xlim, part.ymid, ylim)
}

// buildOps turns the change marks into ops. Each gap between unchanged
// runs yields at most one Delete followed by at most one Insert.
func (ctx *diffContext) buildOps() []DiffOp {
	var ops []DiffOp
	n, m := len(ctx.xvec), len(ctx.yvec)
	i, j := 0, 0
	for i < n || j < m {
		k := 0
		for i+k < n && j+k < m && !ctx.xchanges[i+k] && !ctx.ychanges[j+k] {
			k++
		}
		if k > 0 {
			ops = append(ops, DiffOp{Type: Equal, AStart: i, AEnd: i + k, BStart: j, BEnd: j + k})
			i, j = i+k, j+k
		}
		if d := markedRun(ctx.xchanges, i); d > 0 {
			ops = append(ops, DiffOp{Type: Delete, AStart: i, AEnd: i + d, BStart: j, BEnd: j})
			i += d
		}
		if a := markedRun(ctx.ychanges, j); a > 0 {
			ops = append(ops, DiffOp{Type: Insert, AStart: i, AEnd: i, BStart: j, BEnd: j + a})
			j += a
		}
	}
	return ops
}

// markedRun returns the number of consecutive marked entries from start.
func markedRun(marks []bool, start int) int {
	k := start
	for k < len(marks) && marks[k] {
		k++
	}
	return k - start
}
