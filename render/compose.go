// Package render composes annotated, highlighted paragraphs into runs for display.
package render

import (
	"sort"

	"github.com/burntcarrot/lexmark/annotate"
	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/highlight"
)

// Segment is a piece of a run sharing one emphasis state.
type Segment struct {
	Text     string
	Emphasis bool
}

// Run is a stretch of a paragraph that is either plain (Color == highlight.None) or
// covered by one highlight. Segments split the run by emphasis and concatenate to Text.
type Run struct {
	Text     string
	Color    highlight.Color
	Segments []Segment
}

// Highlighted reports whether the run belongs to a highlight.
func (r Run) Highlighted() bool {
	return r.Color != highlight.None
}

// Paragraph is the rendered form of one paragraph.
type Paragraph struct {
	Index int
	Runs  []Run
}

// localRange is a highlight translated into paragraph coordinates.
type localRange struct {
	start int
	end   int
	color highlight.Color
}

// Compose turns one paragraph and the highlights queried for its range into runs.
//
// Highlight offsets are translated to paragraph-local rune offsets and clamped to the
// paragraph. Runs alternate between plain and highlighted stretches in offset order.
// Emphasis spans from the annotator are applied inside each run as a second layer,
// so both layers index the same raw text.
//
// Highlights that overlap an earlier one are only rendered past the end of the
// earlier one; text is never repeated or dropped.
func Compose(p article.Paragraph, highlights []highlight.Highlight) []Run {
	text := []rune(p.Text)
	n := len(text)

	var local []localRange
	for _, h := range highlights {
		start := max(0, h.StartOffset-p.StartOffset)
		end := min(n, h.EndOffset-p.StartOffset)
		if start >= end {
			continue
		}
		local = append(local, localRange{start: start, end: end, color: h.Color})
	}

	emphasis := annotate.Annotate(p.Text)

	if len(local) == 0 {
		return []Run{newRun(text, emphasis, 0, n, highlight.None)}
	}

	sort.SliceStable(local, func(i, j int) bool {
		return local[i].start < local[j].start
	})

	var runs []Run
	cursor := 0

	for _, l := range local {
		start := max(l.start, cursor)
		if start >= l.end {
			continue
		}

		if start > cursor {
			runs = append(runs, newRun(text, emphasis, cursor, start, highlight.None))
		}
		runs = append(runs, newRun(text, emphasis, start, l.end, l.color))
		cursor = l.end
	}

	if cursor < n {
		runs = append(runs, newRun(text, emphasis, cursor, n, highlight.None))
	}

	return runs
}

// newRun builds the run for text[start:end], split at emphasis boundaries.
func newRun(text []rune, emphasis []annotate.Span, start, end int, color highlight.Color) Run {
	run := Run{Text: string(text[start:end]), Color: color}

	pos := start
	for _, sp := range emphasis {
		a := max(sp.Start, start)
		b := min(sp.End, end)
		if a >= b {
			continue
		}

		if a > pos {
			run.Segments = append(run.Segments, Segment{Text: string(text[pos:a])})
		}
		run.Segments = append(run.Segments, Segment{Text: string(text[a:b]), Emphasis: true})
		pos = b
	}

	if pos < end {
		run.Segments = append(run.Segments, Segment{Text: string(text[pos:end])})
	}

	return run
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
