package article

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = "Art. 1 Primeira frase.\nSegunda frase aqui."

func TestSegment(t *testing.T) {
	tests := []struct {
		description string
		content     string
		expected    []Paragraph
	}{
		{description: "empty content", content: "",
			expected: []Paragraph{{Index: 0, Text: "", StartOffset: 0, EndOffset: 0}}},
		{description: "single paragraph", content: "foo",
			expected: []Paragraph{{Index: 0, Text: "foo", StartOffset: 0, EndOffset: 3}}},
		{description: "two paragraphs", content: sample,
			expected: []Paragraph{
				{Index: 0, Text: "Art. 1 Primeira frase.", StartOffset: 0, EndOffset: 22},
				{Index: 1, Text: "Segunda frase aqui.", StartOffset: 23, EndOffset: 42},
			}},
		{description: "leading delimiter", content: "\nfoo",
			expected: []Paragraph{
				{Index: 0, Text: "", StartOffset: 0, EndOffset: 0},
				{Index: 1, Text: "foo", StartOffset: 1, EndOffset: 4},
			}},
		{description: "trailing delimiter", content: "foo\n",
			expected: []Paragraph{
				{Index: 0, Text: "foo", StartOffset: 0, EndOffset: 3},
				{Index: 1, Text: "", StartOffset: 4, EndOffset: 4},
			}},
		{description: "consecutive delimiters", content: "a\n\nb",
			expected: []Paragraph{
				{Index: 0, Text: "a", StartOffset: 0, EndOffset: 1},
				{Index: 1, Text: "", StartOffset: 2, EndOffset: 2},
				{Index: 2, Text: "b", StartOffset: 3, EndOffset: 4},
			}},
		{description: "multibyte runes count once", content: "Art. 5º\nParágrafo Único",
			expected: []Paragraph{
				{Index: 0, Text: "Art. 5º", StartOffset: 0, EndOffset: 7},
				{Index: 1, Text: "Parágrafo Único", StartOffset: 8, EndOffset: 23},
			}},
	}

	for _, tc := range tests {
		got := Segment(tc.content)
		if !cmp.Equal(got, tc.expected) {
			t.Errorf("(%s) got != expected, diff: %v\n", tc.description, cmp.Diff(got, tc.expected))
		}
	}
}

// TestSegmentCoversContent checks that paragraph lengths plus consumed delimiters add up to the document.
func TestSegmentCoversContent(t *testing.T) {
	contents := []string{"", "\n", "\n\n\n", sample, "Parágrafo Único\n\nArt. 2º-A texto\n", "sem quebra"}

	for _, content := range contents {
		doc := Document{Content: content}
		paragraphs := Segment(content)

		total := 0
		for i, p := range paragraphs {
			total += p.Length()
			if i < len(paragraphs)-1 {
				total++
				if p.EndOffset+1 != paragraphs[i+1].StartOffset {
					t.Errorf("(%q) paragraph %d ends at %d, next starts at %d", content, i, p.EndOffset, paragraphs[i+1].StartOffset)
				}
			}
		}

		if total != doc.Length() {
			t.Errorf("(%q) got != expected; got = %v, expected = %v\n", content, total, doc.Length())
		}

		if last := paragraphs[len(paragraphs)-1]; last.EndOffset != doc.Length() {
			t.Errorf("(%q) last paragraph ends at %d, expected %d", content, last.EndOffset, doc.Length())
		}
	}
}

func TestLocate(t *testing.T) {
	paragraphs := Segment("foo\nbar\n\nbaz")

	tests := []struct {
		description string
		offset      int
		expected    int
	}{
		{description: "start of document", offset: 0, expected: 0},
		{description: "on first delimiter", offset: 3, expected: 0},
		{description: "start of second paragraph", offset: 4, expected: 1},
		{description: "empty paragraph", offset: 8, expected: 2},
		{description: "end of document", offset: 12, expected: 3},
		{description: "past the end", offset: 100, expected: 3},
		{description: "negative", offset: -1, expected: 0},
	}

	for _, tc := range tests {
		got := Locate(paragraphs, tc.offset)
		if got != tc.expected {
			t.Errorf("(%s) got != expected; got = %v, expected = %v\n", tc.description, got, tc.expected)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		description   string
		content       string
		selection     string
		expectedStart int
		expectedEnd   int
		expectedErr   error
	}{
		{description: "earliest occurrence wins", content: sample, selection: "frase",
			expectedStart: 16, expectedEnd: 21},
		{description: "second paragraph", content: sample, selection: "Segunda",
			expectedStart: 23, expectedEnd: 30},
		{description: "spans the delimiter", content: sample, selection: "frase.\nSegunda",
			expectedStart: 16, expectedEnd: 30},
		{description: "rune offsets after accents", content: "Parágrafo Único. O réu",
			selection: "réu", expectedStart: 19, expectedEnd: 22},
		{description: "case sensitive", content: sample, selection: "segunda",
			expectedErr: ErrSelectionNotFound},
		{description: "literal, not a pattern", content: sample, selection: "Art.*",
			expectedErr: ErrSelectionNotFound},
		{description: "markup is not in the canonical text", content: sample, selection: "<strong>Art. 1</strong>",
			expectedErr: ErrSelectionNotFound},
		{description: "empty selection", content: sample, selection: "",
			expectedErr: ErrEmptySelection},
	}

	for _, tc := range tests {
		start, end, err := Resolve(tc.content, tc.selection)
		if !errors.Is(err, tc.expectedErr) {
			t.Errorf("(%s) unexpected error: got = %v, expected = %v\n", tc.description, err, tc.expectedErr)
			continue
		}
		if err != nil {
			continue
		}

		got := []int{start, end}
		expected := []int{tc.expectedStart, tc.expectedEnd}

		if !cmp.Equal(got, expected) {
			t.Errorf("(%s) got != expected, diff: %v\n", tc.description, cmp.Diff(got, expected))
		}
	}
}

// TestResolveEverySubstring resolves every substring of a document and compares with a brute-force scan.
func TestResolveEverySubstring(t *testing.T) {
	content := "Art. 5º aa\naaá Parágrafo Único aa"
	runes := []rune(content)

	for i := 0; i < len(runes); i++ {
		for j := i + 1; j <= len(runes); j++ {
			selection := string(runes[i:j])

			start, end, err := Resolve(content, selection)
			if err != nil {
				t.Fatalf("(%q) unexpected error: %v", selection, err)
			}

			expected := firstOccurrence(runes, runes[i:j])
			if start != expected || end != expected+(j-i) {
				t.Errorf("(%q) got [%d, %d), expected [%d, %d)", selection, start, end, expected, expected+(j-i))
			}
			if string(runes[start:end]) != selection {
				t.Errorf("(%q) resolved range holds %q", selection, string(runes[start:end]))
			}
		}
	}
}

func firstOccurrence(haystack, needle []rune) int {
	for o := 0; o+len(needle) <= len(haystack); o++ {
		if string(haystack[o:o+len(needle)]) == string(needle) {
			return o
		}
	}
	return -1
}

func TestSlice(t *testing.T) {
	doc := Document{ArticleNumber: "Art. 1", Content: sample}

	got, err := doc.Slice(16, 21)
	if err != nil {
		t.Fatalf("error: %v\n", err)
	}
	if got != "frase" {
		t.Errorf("got != expected; got = %v, expected = %v\n", got, "frase")
	}

	for _, bounds := range [][2]int{{-1, 2}, {5, 4}, {0, 43}} {
		if _, err := doc.Slice(bounds[0], bounds[1]); !errors.Is(err, ErrPositionOutOfBounds) {
			t.Errorf("(%v) expected ErrPositionOutOfBounds, got %v", bounds, err)
		}
	}
}

func TestExportText(t *testing.T) {
	doc := Document{ArticleNumber: "Art. 1", Content: sample, LawTitle: "Lei 1"}

	got := doc.ExportText()
	expected := "Art. 1\n\n" + sample

	if got != expected {
		t.Errorf("got != expected, diff: %v\n", cmp.Diff(got, expected))
	}
}
