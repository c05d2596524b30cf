package diffy

import (
	"slices"
	"testing"
)

func TestMapFilterFold(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4, 5})

	doubled := slices.Collect(Map(seq, func(v int) int { return v * 2 }))
	if !slices.Equal(doubled, []int{2, 4, 6, 8, 10}) {
		t.Errorf("Map() = %v", doubled)
	}

	odd := slices.Collect(Filter(seq, func(v int) bool { return v%2 == 1 }))
	if !slices.Equal(odd, []int{1, 3, 5}) {
		t.Errorf("Filter() = %v", odd)
	}

	sum := Fold(seq, 0, func(acc, v int) int { return acc + v })
	if sum != 15 {
		t.Errorf("Fold() = %d, want 15", sum)
	}
}

func TestMapFilter_StopEarly(t *testing.T) {
	seq := Filter(Map(slices.Values([]int{1, 2, 3, 4}), func(v int) int { return v * 10 }),
		func(v int) bool { return v > 10 })

	var got []int
	for v := range seq {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{20, 30}) {
		t.Errorf("got %v, want [20 30]", got)
	}
}
