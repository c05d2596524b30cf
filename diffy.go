// Package diffy computes line diffs between two texts and renders them as
// unified-style text, ANSI colored text, or HTML with the changed words of
// replaced lines highlighted.
//
// The line diff is a minimal edit script computed with the Myers O(ND)
// algorithm in linear space. Between two unchanged lines, removed lines are
// always listed before added ones. Line terminators ("\n", "\r\n" or none)
// are kept exactly, so both inputs can be reassembled from the script.
//
// A Diff computes its edit script once, on first use, and is safe for
// concurrent use afterwards:
//
//	d := diffy.New("foo\nbar\n", "foo\nbaz\n")
//	fmt.Print(d)                       // default format
//	out, err := d.Render(diffy.WithFormat(diffy.FormatHTML))
//
// Lines and chunks are also available as iterators that can be ranged over
// any number of times.
package diffy

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Diff is the difference between two texts.
type Diff struct {
	old, new []Line
	opts     []Option

	once   sync.Once
	script []Line
}

// New returns the diff between the texts a and b.
func New(a, b string, opts ...Option) *Diff {
	return NewFromLines(SplitLines(a), SplitLines(b), opts...)
}

// NewFromLines returns the diff between two line sequences, for example as
// produced by SplitLines. Tags of the given lines are ignored.
func NewFromLines(a, b []Line, opts ...Option) *Diff {
	return &Diff{
		old:  untag(a),
		new:  untag(b),
		opts: opts,
	}
}

// NewFromSources reads both sides and returns their diff. A failing source
// is reported as an error and no Diff is returned.
func NewFromSources(a, b LineSource, opts ...Option) (*Diff, error) {
	oldLines, err := a.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("reading old text: %w", err)
	}
	newLines, err := b.ReadLines()
	if err != nil {
		return nil, fmt.Errorf("reading new text: %w", err)
	}
	return NewFromLines(oldLines, newLines, opts...), nil
}

// NewFromFiles returns the diff between the files at pathA and pathB.
func NewFromFiles(pathA, pathB string, opts ...Option) (*Diff, error) {
	return NewFromSources(File(pathA), File(pathB), opts...)
}

func untag(lines []Line) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Text: l.Text, EOL: l.EOL}
	}
	return out
}

// edits returns the memoized edit script.
func (d *Diff) edits() []Line {
	d.once.Do(func() {
		d.script = diffLines(d.old, d.new, d.opts...)
	})
	return d.script
}

// Script returns a copy of the edit script.
func (d *Diff) Script() []Line {
	return slices.Clone(d.edits())
}

// Lines returns the lines of the edit script, in order.
func (d *Diff) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, l := range d.edits() {
			if !yield(l) {
				return
			}
		}
	}
}

// Each returns the canonical form of every line of the edit script: its
// prefix, text and terminator. This is the sequence FormatText writes and
// the one FormatRaw transforms.
func (d *Diff) Each() iter.Seq[string] {
	return Map(d.Lines(), Line.String)
}

// Chunks returns the maximal runs of lines that share a tag.
func (d *Diff) Chunks() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for _, c := range buildChunks(d.edits()) {
			if !yield(c) {
				return
			}
		}
	}
}

// EachChunk returns the canonical form of every chunk.
func (d *Diff) EachChunk() iter.Seq[string] {
	return Map(d.Chunks(), Chunk.String)
}

// ChangeBlocks returns the change blocks of the edit script.
func (d *Diff) ChangeBlocks() []ChangeBlock {
	return findChangeBlocks(d.edits())
}

// Hunks groups the changes into hunks with up to context unchanged lines
// around them.
func (d *Diff) Hunks(context int) []Hunk {
	return buildHunks(d.edits(), context)
}

// Changed reports whether the two texts differ in any line.
func (d *Diff) Changed() bool {
	return slices.ContainsFunc(d.edits(), func(l Line) bool {
		return l.Tag != Context
	})
}

// OldText reassembles the old text from the edit script.
func (d *Diff) OldText() string {
	return oldText(d.edits())
}

// NewText reassembles the new text from the edit script.
func (d *Diff) NewText() string {
	return newText(d.edits())
}

// Render renders the diff. Without WithFormat, the process-wide
// DefaultFormat is used.
func (d *Diff) Render(opts ...RenderOption) (string, error) {
	o := &renderOptions{context: -1}
	for _, opt := range opts {
		opt(o)
	}
	if !o.formatSet {
		o.format = DefaultFormat()
	}
	return render(d.edits(), o)
}

// String renders the diff in the process-wide DefaultFormat.
func (d *Diff) String() string {
	// SetDefaultFormat only stores valid formats, so this cannot fail.
	s, _ := d.Render()
	return s
}
