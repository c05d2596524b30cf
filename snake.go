package diffy

// findMiddleSnake implements the bidirectional search from Myers 1986,
// "An O(ND) Difference Algorithm and Its Variations", section 4b. It runs a
// forward search from (xoff, yoff) and a backward search from (xlim, ylim)
// and returns the point where the two furthest-reaching paths overlap.
// Splitting there and solving both halves yields a minimal edit script in
// linear space.
//
// The search is always exact: there is no cost limit and no heuristic cut
// off. The second return value is false only when the two ranges share no
// element at all, in which case the caller should treat everything as
// changed.
//
// Diagonal k is stored at index k + offset in fdiag and bdiag. The forward
// array holds the furthest x reached on each diagonal; the backward array
// holds how far the reverse search got, measured from the end.
func (ctx *diffContext) findMiddleSnake(xoff, xlim, yoff, ylim int) (partition, bool) {
	n := xlim - xoff
	m := ylim - yoff

	maxD := (n + m + 1) / 2
	offset := maxD
	size := 2*maxD + 2

	fdiag := ctx.fdiag[:size]
	bdiag := ctx.bdiag[:size]
	for i := range fdiag {
		fdiag[i] = -1
		bdiag[i] = -1
	}
	fdiag[offset+1] = 0
	bdiag[offset+1] = 0

	delta := n - m
	// With an odd delta the paths can only meet during a forward step.
	front := delta%2 != 0

	// Diagonals that ran off the edit graph are skipped in later rounds.
	fkStart, fkEnd, bkStart, bkEnd := 0, 0, 0, 0

	for d := 0; d < maxD; d++ {
		// Forward search
		for k := -d + fkStart; k <= d-fkEnd; k += 2 {
			kIdx := offset + k
			var x int
			if k == -d || (k != d && fdiag[kIdx-1] < fdiag[kIdx+1]) {
				x = fdiag[kIdx+1] // from k+1, moving down
			} else {
				x = fdiag[kIdx-1] + 1 // from k-1, moving right
			}
			y := x - k

			// Follow diagonal (matching elements)
			for x < n && y < m && ctx.equal(xoff+x, yoff+y) {
				x++
				y++
			}
			fdiag[kIdx] = x

			switch {
			case x > n:
				fkEnd += 2
			case y > m:
				fkStart += 2
			case front:
				bIdx := offset + delta - k
				if bIdx >= 0 && bIdx < size && bdiag[bIdx] != -1 {
					if x >= n-bdiag[bIdx] {
						return partition{xmid: xoff + x, ymid: yoff + y}, true
					}
				}
			}
		}

		// Backward search
		for k := -d + bkStart; k <= d-bkEnd; k += 2 {
			kIdx := offset + k
			var x int
			if k == -d || (k != d && bdiag[kIdx-1] < bdiag[kIdx+1]) {
				x = bdiag[kIdx+1]
			} else {
				x = bdiag[kIdx-1] + 1
			}
			y := x - k

			// Follow diagonal backward
			for x < n && y < m && ctx.equal(xlim-x-1, ylim-y-1) {
				x++
				y++
			}
			bdiag[kIdx] = x

			switch {
			case x > n:
				bkEnd += 2
			case y > m:
				bkStart += 2
			case !front:
				fIdx := offset + delta - k
				if fIdx >= 0 && fIdx < size && fdiag[fIdx] != -1 {
					fx := fdiag[fIdx]
					fy := fx - (fIdx - offset)
					if fx >= n-x {
						return partition{xmid: xoff + fx, ymid: yoff + fy}, true
					}
				}
			}
		}
	}

	return partition{}, false
}
