package diffy

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sergi/go-diff/diffmatchpatch"
	znkrdiff "znkr.io/diff"
)

func TestDiffLines(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Line
	}{
		{
			name: "identical",
			a:    "foo\nbar\n",
			b:    "foo\nbar\n",
			want: []Line{
				{Tag: Context, Text: "foo", EOL: LF, NewEOL: LF},
				{Tag: Context, Text: "bar", EOL: LF, NewEOL: LF},
			},
		},
		{
			name: "one removed",
			a:    "foo\nbar\nbang\n",
			b:    "foo\nbang\n",
			want: []Line{
				{Tag: Context, Text: "foo", EOL: LF, NewEOL: LF},
				{Tag: Removed, Text: "bar", EOL: LF},
				{Tag: Context, Text: "bang", EOL: LF, NewEOL: LF},
			},
		},
		{
			name: "changed line",
			a:    "foo\nbar\nbang\n",
			b:    "foo\nbong\nbang\n",
			want: []Line{
				{Tag: Context, Text: "foo", EOL: LF, NewEOL: LF},
				{Tag: Removed, Text: "bar", EOL: LF},
				{Tag: Added, Text: "bong", EOL: LF},
				{Tag: Context, Text: "bang", EOL: LF, NewEOL: LF},
			},
		},
		{
			name: "terminators differ",
			a:    "x\r\ny\n",
			b:    "x\ny",
			want: []Line{
				{Tag: Context, Text: "x", EOL: CRLF, NewEOL: LF},
				{Tag: Context, Text: "y", EOL: LF, NewEOL: NoEOL},
			},
		},
		{
			name: "old empty",
			a:    "",
			b:    "a\n",
			want: []Line{{Tag: Added, Text: "a", EOL: LF}},
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffLines(SplitLines(tt.a), SplitLines(tt.b))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("diffLines mismatch (-want +got):\n%s", diff)
			}
			if got := oldText(got); got != tt.a {
				t.Errorf("oldText() = %q, want %q", got, tt.a)
			}
			if got := newText(got); got != tt.b {
				t.Errorf("newText() = %q, want %q", got, tt.b)
			}
		})
	}
}

func TestCheckScript(t *testing.T) {
	a := SplitLines("foo\nbar\n")
	b := SplitLines("foo\nbaz\n")

	tests := []struct {
		name   string
		script []Line
	}{
		{"missing line", []Line{{Tag: Context, Text: "foo", EOL: LF, NewEOL: LF}}},
		{"wrong text", []Line{
			{Tag: Context, Text: "foo", EOL: LF, NewEOL: LF},
			{Tag: Removed, Text: "baz", EOL: LF},
			{Tag: Added, Text: "baz", EOL: LF},
		}},
		{"bad tag", []Line{{Tag: Tag(7), Text: "foo", EOL: LF}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := checkScript(tt.script, a, b); err == nil {
				t.Error("checkScript() = nil, want error")
			}
		})
	}
}

// TestDiffLines_MatchesGoDiff checks the number of changed lines against
// the line mode of go-diff, which is minimal when no timeout is set.
func TestDiffLines_MatchesGoDiff(t *testing.T) {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	rng := rand.New(rand.NewSource(7))
	vocab := []string{"alpha", "beta", "gamma", "delta", "", "}"}
	randomText := func() string {
		var b strings.Builder
		for range rng.Intn(30) {
			b.WriteString(vocab[rng.Intn(len(vocab))] + "\n")
		}
		return b.String()
	}

	for round := range 200 {
		a, b := randomText(), randomText()

		changed := 0
		for _, l := range diffLines(SplitLines(a), SplitLines(b)) {
			if l.Tag != Context {
				changed++
			}
		}

		r1, r2, _ := dmp.DiffLinesToRunes(a, b)
		want := 0
		for _, d := range dmp.DiffMainRunes(r1, r2, false) {
			if d.Type != diffmatchpatch.DiffEqual {
				want += utf8.RuneCountInString(d.Text)
			}
		}

		if changed != want {
			t.Fatalf("round %d: %d changed lines, go-diff has %d\na=%q\nb=%q", round, changed, want, a, b)
		}
	}
}

// TestDiffLines_NoLongerThanZnkr checks that no other Myers implementation
// finds a shorter edit script.
func TestDiffLines_NoLongerThanZnkr(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	vocab := []string{"x", "y", "z", "", "{", "}"}
	randomLines := func() []string {
		lines := make([]string, rng.Intn(40))
		for i := range lines {
			lines[i] = vocab[rng.Intn(len(vocab))]
		}
		return lines
	}
	toLines := func(texts []string) []Line {
		lines := make([]Line, len(texts))
		for i, s := range texts {
			lines[i] = Line{Text: s, EOL: LF}
		}
		return lines
	}

	for round := range 200 {
		a, b := randomLines(), randomLines()

		changed := 0
		for _, l := range diffLines(toLines(a), toLines(b)) {
			if l.Tag != Context {
				changed++
			}
		}

		other := 0
		for _, e := range znkrdiff.Edits(a, b, znkrdiff.Minimal()) {
			if e.Op != znkrdiff.Match {
				other++
			}
		}

		if changed > other {
			t.Fatalf("round %d: %d changed lines, znkr.io/diff needs only %d\na=%q\nb=%q", round, changed, other, a, b)
		}
	}
}
