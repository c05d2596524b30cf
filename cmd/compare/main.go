// Comparison tool for validating diffy's line diffs against go-diff's line
// mode and znkr.io/diff
package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dacharyc/diffy"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
	znkrdiff "znkr.io/diff"
)

type testCase struct {
	name string
	a, b string
}

func main() {
	testCases := []testCase{
		{
			name: "One line changed",
			a:    "foo\nbar\nbang\n",
			b:    "foo\nbong\nbang\n",
		},
		{
			name: "Shared middle",
			a:    "foo\nbar\nbang\nwoot\n",
			b:    "one\ntwo\nthree\nbar\nbang\nbaz\n",
		},
		{
			name: "Code with braces",
			a:    "func a() {\n\treturn 1\n}\n\nfunc b() {\n\treturn 2\n}\n",
			b:    "func a() {\n\treturn 1\n}\n\nfunc c() {\n\treturn 3\n}\n\nfunc b() {\n\treturn 2\n}\n",
		},
	}

	// Files given on the command line replace the built-in cases.
	if len(os.Args) == 3 {
		a, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		b, err := os.ReadFile(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		testCases = []testCase{{name: os.Args[1] + " vs " + os.Args[2], a: string(a), b: string(b)}}
	} else {
		testCases = append(testCases, testCase{
			name: "Large file (500 lines, scattered changes)",
			a:    generateLargeText(500, 0),
			b:    generateLargeText(500, 42),
		})
	}

	mismatches := 0
	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)

		start := time.Now()
		d := diffy.New(tc.a, tc.b)
		script := d.Script()
		diffyTime := time.Since(start)

		// go-diff has no line type, so each line is mapped to a rune first.
		// With no timeout its bisection is minimal as well.
		dmp := godiff.New()
		dmp.DiffTimeout = 0
		start = time.Now()
		r1, r2, _ := dmp.DiffLinesToRunes(tc.a, tc.b)
		goDiffs := dmp.DiffMainRunes(r1, r2, false)
		goDiffTime := time.Since(start)

		start = time.Now()
		znkrEdits := znkrdiff.Edits(texts(tc.a), texts(tc.b), znkrdiff.Minimal())
		znkrTime := time.Since(start)

		diffyStats := analyzeDiffy(script)
		goDiffStats := analyzeGoDiff(goDiffs)
		znkrStats := analyzeZnkr(znkrEdits)

		fmt.Printf("\ndiffy:   %v\n", diffyTime)
		fmt.Printf("  Lines: %d (Context: %d, Removed: %d, Added: %d)\n",
			diffyStats.total, diffyStats.equal, diffyStats.delete, diffyStats.insert)
		fmt.Printf("  Change regions: %d\n", diffyStats.changeRegions)

		fmt.Printf("\ngo-diff: %v\n", goDiffTime)
		fmt.Printf("  Lines: %d (Context: %d, Removed: %d, Added: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		fmt.Printf("  Change regions: %d\n", goDiffStats.changeRegions)

		fmt.Printf("\nznkr.io/diff: %v\n", znkrTime)
		fmt.Printf("  Lines: %d (Context: %d, Removed: %d, Added: %d)\n",
			znkrStats.total, znkrStats.equal, znkrStats.delete, znkrStats.insert)
		fmt.Printf("  Change regions: %d\n", znkrStats.changeRegions)

		edits := diffyStats.delete + diffyStats.insert
		if edits != goDiffStats.delete+goDiffStats.insert || edits > znkrStats.delete+znkrStats.insert {
			fmt.Println("\n  MISMATCH: edit counts differ")
			mismatches++
		}

		// Show detailed output for small cases
		if len(script) <= 20 {
			fmt.Println("\ndiffy output:")
			for line := range d.Each() {
				fmt.Printf("  %s", line)
				if !strings.HasSuffix(line, "\n") {
					fmt.Println()
				}
			}
		}
	}

	if mismatches > 0 {
		os.Exit(1)
	}
}

type diffStats struct {
	total, equal, delete, insert int
	changeRegions                int
}

func analyzeDiffy(script []diffy.Line) diffStats {
	var s diffStats
	s.total = len(script)
	inChange := false
	for _, l := range script {
		switch l.Tag {
		case diffy.Context:
			s.equal++
			inChange = false
		case diffy.Removed:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case diffy.Added:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	inChange := false
	for _, d := range diffs {
		// Every rune stands for one line.
		n := utf8.RuneCountInString(d.Text)
		s.total += n
		switch d.Type {
		case godiff.DiffEqual:
			s.equal += n
			inChange = false
		case godiff.DiffDelete:
			s.delete += n
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert += n
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

func analyzeZnkr(edits []znkrdiff.Edit[string]) diffStats {
	var s diffStats
	s.total = len(edits)
	inChange := false
	for _, e := range edits {
		switch e.Op {
		case znkrdiff.Match:
			s.equal++
			inChange = false
		case znkrdiff.Delete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case znkrdiff.Insert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

// texts returns the lines of s without their terminators.
func texts(s string) []string {
	lines := diffy.SplitLines(s)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func generateLargeText(lines int, seed int) string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		// Generate a line with some words
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	// Introduce some changes based on seed
	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return strings.Join(result, "\n") + "\n"
}
