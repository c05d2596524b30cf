package diffy

import (
	"fmt"
	"html"
	"strings"
)

// ANSI escapes used by FormatColor.
const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// renderOptions holds configuration for a single render call.
type renderOptions struct {
	format    Format
	formatSet bool
	context   int // negative means the whole script
	plusMinus bool
	lineFunc  func(Line) string
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

// WithFormat selects the output format.
// Default: the process-wide DefaultFormat.
func WithFormat(f Format) RenderOption {
	return func(o *renderOptions) {
		o.format = f
		o.formatSet = true
	}
}

// WithContext limits the output to changes and n unchanged lines around
// each of them. Text, color and raw output then separate hunks with unified
// "@@ -a,b +c,d @@" headers; HTML output just leaves out the hidden lines.
// A negative n shows every line.
// Default: every line.
func WithContext(n int) RenderOption {
	return func(o *renderOptions) {
		o.context = n
	}
}

// WithPlusMinus adds the line prefix, in a span of class "symbol", to
// every HTML list item.
// Default: false.
func WithPlusMinus() RenderOption {
	return func(o *renderOptions) {
		o.plusMinus = true
	}
}

// WithLineFunc sets the transformation FormatRaw applies to every line. The
// results are concatenated as they are. Without it, FormatRaw output is the
// canonical text output.
func WithLineFunc(fn func(Line) string) RenderOption {
	return func(o *renderOptions) {
		o.lineFunc = fn
	}
}

// render writes script in the format selected by o. It is the only place
// that dispatches on Format.
func render(script []Line, o *renderOptions) (string, error) {
	var hunks []Hunk
	if o.context < 0 {
		if len(script) > 0 {
			hunks = []Hunk{{Lines: script}}
		}
	} else {
		hunks = buildHunks(script, o.context)
	}
	headers := o.context >= 0

	var b strings.Builder
	switch o.format {
	case FormatText:
		for _, h := range hunks {
			if headers {
				b.WriteString(h.Header() + "\n")
			}
			for _, l := range h.Lines {
				b.WriteString(l.String())
			}
		}
	case FormatColor:
		for _, h := range hunks {
			if headers {
				b.WriteString(ansiCyan + h.Header() + ansiReset + "\n")
			}
			for _, l := range h.Lines {
				writeColorLine(&b, l)
			}
		}
	case FormatRaw:
		fn := o.lineFunc
		if fn == nil {
			fn = Line.String
		}
		for _, h := range hunks {
			if headers {
				b.WriteString(h.Header() + "\n")
			}
			for _, l := range h.Lines {
				b.WriteString(fn(l))
			}
		}
	case FormatHTML, FormatHTMLSimple:
		var items []string
		for _, h := range hunks {
			if o.format == FormatHTML {
				items = appendHighlightedItems(items, h.Lines, o.plusMinus)
			} else {
				items = appendSimpleItems(items, h.Lines, o.plusMinus)
			}
		}
		writeHTML(&b, items)
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownFormat, o.format)
	}
	return b.String(), nil
}

// writeColorLine wraps removed and added lines in red and green. The
// terminator stays outside the escape so the reset is on the same line.
func writeColorLine(b *strings.Builder, l Line) {
	switch l.Tag {
	case Removed:
		b.WriteString(ansiRed + l.Tag.Prefix() + l.Text + ansiReset + string(l.EOL))
	case Added:
		b.WriteString(ansiGreen + l.Tag.Prefix() + l.Text + ansiReset + string(l.EOL))
	default:
		b.WriteString(l.String())
	}
}

// writeHTML wraps list items in the diff container.
func writeHTML(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString(`<div class="diff"></div>` + "\n")
		return
	}
	b.WriteString(`<div class="diff">` + "\n")
	b.WriteString("  <ul>\n")
	for _, item := range items {
		b.WriteString("    " + item + "\n")
	}
	b.WriteString("  </ul>\n")
	b.WriteString("</div>\n")
}

// htmlItem builds one list item. body must already be escaped.
func htmlItem(tag Tag, body string, plusMinus bool) string {
	if plusMinus {
		body = `<span class="symbol">` + tag.Prefix() + `</span>` + body
	}
	switch tag {
	case Removed:
		return `<li class="del"><del>` + body + `</del></li>`
	case Added:
		return `<li class="ins"><ins>` + body + `</ins></li>`
	default:
		return `<li class="unchanged"><span>` + body + `</span></li>`
	}
}

func appendSimpleItems(items []string, lines []Line, plusMinus bool) []string {
	for _, l := range lines {
		items = append(items, htmlItem(l.Tag, html.EscapeString(l.Text), plusMinus))
	}
	return items
}

// appendHighlightedItems renders lines with word highlighting. In a change
// block with lines on both sides, paired lines show their changed segments
// in <strong> and unpaired lines are highlighted as a whole. Runs without a
// counterpart are not highlighted.
func appendHighlightedItems(items []string, lines []Line, plusMinus bool) []string {
	for i := 0; i < len(lines); {
		if lines[i].Tag == Context {
			items = append(items, htmlItem(Context, html.EscapeString(lines[i].Text), plusMinus))
			i++
			continue
		}

		var cb ChangeBlock
		cb, i = blockAt(lines, i)
		if len(cb.Removed) == 0 || len(cb.Added) == 0 {
			items = appendSimpleItems(items, cb.Removed, plusMinus)
			items = appendSimpleItems(items, cb.Added, plusMinus)
			continue
		}

		pairs := cb.Pairs()
		added := make([]string, 0, len(cb.Added))
		for _, p := range pairs {
			oldSegs, newSegs := DiffWords(p.Removed.Text, p.Added.Text)
			items = append(items, htmlItem(Removed, highlight(oldSegs), plusMinus))
			added = append(added, htmlItem(Added, highlight(newSegs), plusMinus))
		}
		for _, l := range cb.Removed[len(pairs):] {
			items = append(items, htmlItem(Removed, strong(html.EscapeString(l.Text)), plusMinus))
		}
		for _, l := range cb.Added[len(pairs):] {
			added = append(added, htmlItem(Added, strong(html.EscapeString(l.Text)), plusMinus))
		}
		items = append(items, added...)
	}
	return items
}

// highlight escapes every segment and wraps the changed ones in <strong>.
func highlight(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		text := html.EscapeString(seg.Text)
		if seg.Changed {
			text = strong(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func strong(escaped string) string {
	if escaped == "" {
		return ""
	}
	return "<strong>" + escaped + "</strong>"
}
