package diffy

// partition holds the result from findMiddleSnake().
// It represents the midpoint where the edit path can be split.
type partition struct {
	xmid, ymid int // midpoint coordinates in the edit graph
}

// diffContext holds algorithm state during comparison.
type diffContext struct {
	xvec, yvec   []Element // sequences being compared
	xhash, yhash []uint64  // element hashes, compared before Equal
	fdiag, bdiag []int     // forward/backward diagonal arrays
	xchanges     []bool    // marks changed elements in xvec
	ychanges     []bool    // marks changed elements in yvec
}

// newDiffContext creates a new context for comparing two sequences.
func newDiffContext(a, b []Element) *diffContext {
	n := len(a)
	m := len(b)

	// Sub-problems never need more than 2*ceil((n+m)/2)+2 diagonals.
	diagSize := n + m + 3

	ctx := &diffContext{
		xvec:     a,
		yvec:     b,
		xhash:    make([]uint64, n),
		yhash:    make([]uint64, m),
		fdiag:    make([]int, diagSize),
		bdiag:    make([]int, diagSize),
		xchanges: make([]bool, n),
		ychanges: make([]bool, m),
	}
	for i, e := range a {
		ctx.xhash[i] = e.Hash()
	}
	for i, e := range b {
		ctx.yhash[i] = e.Hash()
	}

	return ctx
}

// markDeleted marks elements in xvec[xoff:xlim] as deleted.
func (ctx *diffContext) markDeleted(xoff, xlim int) {
	for i := xoff; i < xlim; i++ {
		ctx.xchanges[i] = true
	}
}

// markInserted marks elements in yvec[yoff:ylim] as inserted.
func (ctx *diffContext) markInserted(yoff, ylim int) {
	for i := yoff; i < ylim; i++ {
		ctx.ychanges[i] = true
	}
}

// equal reports whether xvec[i] equals yvec[j].
func (ctx *diffContext) equal(i, j int) bool {
	return ctx.xhash[i] == ctx.yhash[j] && ctx.xvec[i].Equal(ctx.yvec[j])
}
