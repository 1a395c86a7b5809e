// Package annotate finds the legal-citation tokens that are rendered with emphasis.
//
// Annotation never rewrites text. It reports spans in rune offsets of the paragraph it
// was given, so emphasis can be layered over any other styling without shifting offsets.
package annotate

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

// Span is an emphasized rune range [Start, End) within one paragraph.
type Span struct {
	Start int
	End   int
}

// Annotator detects emphasis tokens in paragraph text.
type Annotator struct {
	// "Art. 5", "Art. 5º", "Art. 5-A", "Art.. 12"
	articlePattern *regexp.Regexp
	// "Parágrafo Único"
	soleParagraphPattern *regexp.Regexp
}

// NewAnnotator creates an Annotator with the default patterns.
func NewAnnotator() *Annotator {
	return &Annotator{
		articlePattern:       regexp.MustCompile(`Art\.\.?[\s\x{00A0}]+\d+[°º]?(?:-[A-Z])?`),
		soleParagraphPattern: regexp.MustCompile(`Parágrafo Único`),
	}
}

var std = NewAnnotator()

// Annotate returns the emphasis spans of text using the default patterns.
func Annotate(text string) []Span {
	return std.Annotate(text)
}

// Annotate returns the emphasis spans of text ordered by start offset.
// Spans never overlap; should two matches collide, the earlier one is kept.
func (a *Annotator) Annotate(text string) []Span {
	var spans []Span
	spans = a.collect(spans, text, a.articlePattern)
	spans = a.collect(spans, text, a.soleParagraphPattern)

	if len(spans) == 0 {
		return nil
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	kept := spans[:1]
	for _, sp := range spans[1:] {
		if sp.Start < kept[len(kept)-1].End {
			continue
		}
		kept = append(kept, sp)
	}

	return kept
}

func (a *Annotator) collect(spans []Span, text string, re *regexp.Regexp) []Span {
	for _, m := range re.FindAllStringIndex(text, -1) {
		start := utf8.RuneCountInString(text[:m[0]])
		spans = append(spans, Span{
			Start: start,
			End:   start + utf8.RuneCountInString(text[m[0]:m[1]]),
		})
	}
	return spans
}
