package diffy

import "fmt"

// OpType identifies the type of edit operation.
type OpType int

const (
	// Equal means the elements are unchanged.
	Equal OpType = iota
	// Insert means elements were added to B that are not in A.
	Insert
	// Delete means elements were removed from A that are not in B.
	Delete
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// DiffOp represents a single edit operation with index ranges.
type DiffOp struct {
	Type   OpType
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// options holds configuration for the diff algorithm.
type options struct {
	boundaryShift bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *options {
	return &options{
		boundaryShift: false,
	}
}

// Option configures diff behavior.
type Option func(*options)

// WithBoundaryShift slides pure insertions and deletions along runs of
// repeated elements so that blank lines end up outside of the change. The
// number of edits is never affected.
// Default: false.
func WithBoundaryShift(enabled bool) Option {
	return func(o *options) {
		o.boundaryShift = enabled
	}
}

// Compare compares two string slices and returns a minimal list of edit
// operations. Within each run of changes all deletions precede all
// insertions.
func Compare(a, b []string, opts ...Option) []DiffOp {
	return CompareElements(toElements(a), toElements(b), opts...)
}

// CompareElements compares arbitrary Element slices.
func CompareElements(a, b []Element, opts ...Option) []DiffOp {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Handle trivial cases
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	if len(a) == 0 {
		return []DiffOp{{
			Type:   Insert,
			AStart: 0,
			AEnd:   0,
			BStart: 0,
			BEnd:   len(b),
		}}
	}
	if len(b) == 0 {
		return []DiffOp{{
			Type:   Delete,
			AStart: 0,
			AEnd:   len(a),
			BStart: 0,
			BEnd:   0,
		}}
	}

	ctx := newDiffContext(a, b)
	ctx.compareSeq(0, len(a), 0, len(b))
	ops := ctx.buildOps()

	if o.boundaryShift {
		ops = shiftBoundaries(ops, a, b)
	}

	if err := checkOps(ops, len(a), len(b)); err != nil {
		panic(fmt.Errorf("diffy: invalid edit script: %w", err))
	}
	return ops
}

// checkOps verifies that ops cover both sequences contiguously and in order.
func checkOps(ops []DiffOp, n, m int) error {
	i, j := 0, 0
	for k, op := range ops {
		if op.AStart != i || op.BStart != j {
			return fmt.Errorf("op %d (%v) starts at (%d,%d), want (%d,%d)", k, op.Type, op.AStart, op.BStart, i, j)
		}
		switch op.Type {
		case Equal:
			if op.AEnd-op.AStart != op.BEnd-op.BStart || op.AEnd == op.AStart {
				return fmt.Errorf("op %d: malformed equal range %+v", k, op)
			}
		case Delete:
			if op.BEnd != op.BStart || op.AEnd <= op.AStart {
				return fmt.Errorf("op %d: malformed delete range %+v", k, op)
			}
		case Insert:
			if op.AEnd != op.AStart || op.BEnd <= op.BStart {
				return fmt.Errorf("op %d: malformed insert range %+v", k, op)
			}
		default:
			return fmt.Errorf("op %d: unknown type %d", k, op.Type)
		}
		i, j = op.AEnd, op.BEnd
	}
	if i != n || j != m {
		return fmt.Errorf("ops end at (%d,%d), want (%d,%d)", i, j, n, m)
	}
	return nil
}
