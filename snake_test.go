package diffy

import "testing"

func TestFindMiddleSnake_AllDifferent(t *testing.T) {
	a := toElements([]string{"a", "b", "c"})
	b := toElements([]string{"x", "y", "z"})

	ctx := newDiffContext(a, b)

	if part, ok := ctx.findMiddleSnake(0, 3, 0, 3); ok {
		t.Errorf("expected no middle snake for disjoint sequences, got %+v", part)
	}
}

func TestFindMiddleSnake_SingleDifference(t *testing.T) {
	a := toElements([]string{"a"})
	b := toElements([]string{"b"})

	ctx := newDiffContext(a, b)

	if part, ok := ctx.findMiddleSnake(0, 1, 0, 1); ok {
		t.Errorf("expected no middle snake, got %+v", part)
	}
}

func TestFindMiddleSnake_SplitsInside(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
	}{
		{"shared middle", []string{"a", "m", "b"}, []string{"c", "m", "d"}},
		{"uneven", []string{"a", "m", "n", "b"}, []string{"m", "n"}},
		{"myers paper", []string{"A", "B", "C", "A", "B", "B", "A"}, []string{"C", "B", "A", "B", "A", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := toElements(tt.a), toElements(tt.b)
			ctx := newDiffContext(a, b)

			part, ok := ctx.findMiddleSnake(0, len(a), 0, len(b))
			if !ok {
				t.Fatal("expected a middle snake")
			}
			if part.xmid < 0 || part.xmid > len(a) || part.ymid < 0 || part.ymid > len(b) {
				t.Fatalf("partition out of range: %+v", part)
			}
			if (part.xmid == 0 && part.ymid == 0) || (part.xmid == len(a) && part.ymid == len(b)) {
				t.Errorf("partition does not split the problem: %+v", part)
			}
		})
	}
}

func TestFindMiddleSnake_SubRange(t *testing.T) {
	// Offsets must be honored: only the middle of each sequence is searched.
	a := toElements([]string{"p", "a", "m", "b", "q"})
	b := toElements([]string{"p", "c", "m", "d", "q"})

	ctx := newDiffContext(a, b)

	part, ok := ctx.findMiddleSnake(1, 4, 1, 4)
	if !ok {
		t.Fatal("expected a middle snake")
	}
	if part.xmid < 1 || part.xmid > 4 || part.ymid < 1 || part.ymid > 4 {
		t.Errorf("partition outside of sub-range: %+v", part)
	}
}

// Benchmark snake finding
func BenchmarkFindMiddleSnake_Large(b *testing.B) {
	n := 500
	a := make([]Element, n)
	bSeq := make([]Element, n)

	for i := 0; i < n; i++ {
		a[i] = StringElement(string(rune('a' + (i % 26))))
		bSeq[i] = StringElement(string(rune('a' + ((i + 1) % 26))))
	}

	ctx := newDiffContext(a, bSeq)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.findMiddleSnake(0, n, 0, n)
	}
}
