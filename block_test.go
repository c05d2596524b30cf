package diffy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindChangeBlocks(t *testing.T) {
	script := diffLines(
		SplitLines("hahaha\ntime flies like an arrow\nfoo bar\nbang baz\n"),
		SplitLines("hahaha\nfruit flies like a banana\nbang baz\nend\n"),
	)
	blocks := findChangeBlocks(script)

	want := []ChangeBlock{
		{
			Removed: []Line{
				{Tag: Removed, Text: "time flies like an arrow", EOL: LF},
				{Tag: Removed, Text: "foo bar", EOL: LF},
			},
			Added: []Line{
				{Tag: Added, Text: "fruit flies like a banana", EOL: LF},
			},
		},
		{
			Added: []Line{{Tag: Added, Text: "end", EOL: LF}},
		},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("findChangeBlocks mismatch (-want +got):\n%s", diff)
	}
}

func TestChangeBlock_Pairs(t *testing.T) {
	r := func(s string) Line { return Line{Tag: Removed, Text: s, EOL: LF} }
	a := func(s string) Line { return Line{Tag: Added, Text: s, EOL: LF} }

	tests := []struct {
		name     string
		block    ChangeBlock
		pairs    []Pair
		unpaired []Line
	}{
		{
			name:     "only removed",
			block:    ChangeBlock{Removed: []Line{r("x")}},
			unpaired: []Line{r("x")},
		},
		{
			name:  "balanced",
			block: ChangeBlock{Removed: []Line{r("x"), r("y")}, Added: []Line{a("1"), a("2")}},
			pairs: []Pair{{r("x"), a("1")}, {r("y"), a("2")}},
		},
		{
			name:     "more added",
			block:    ChangeBlock{Removed: []Line{r("x")}, Added: []Line{a("1"), a("2"), a("3")}},
			pairs:    []Pair{{r("x"), a("1")}},
			unpaired: []Line{a("2"), a("3")},
		},
		{
			name:     "more removed",
			block:    ChangeBlock{Removed: []Line{r("x"), r("y")}, Added: []Line{a("1")}},
			pairs:    []Pair{{r("x"), a("1")}},
			unpaired: []Line{r("y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.pairs, tt.block.Pairs()); diff != "" {
				t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.unpaired, tt.block.Unpaired()); diff != "" {
				t.Errorf("Unpaired() mismatch (-want +got):\n%s", diff)
			}
			if got, want := len(tt.block.Pairs()), min(len(tt.block.Removed), len(tt.block.Added)); got != want {
				t.Errorf("len(Pairs()) = %d, want %d", got, want)
			}
		})
	}
}
