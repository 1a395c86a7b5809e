package article

// Delimiter separates paragraphs in canonical content.
const Delimiter = '\n'

// Paragraph is a derived view over one delimited run of content.
// StartOffset and EndOffset are rune offsets into the whole document, half-open.
type Paragraph struct {
	Index       int
	Text        string
	StartOffset int
	EndOffset   int
}

// Length returns the paragraph's length in runes.
func (p Paragraph) Length() int {
	return p.EndOffset - p.StartOffset
}

// Segment splits content into paragraphs. Every delimiter but the last paragraph's
// consumes one offset, so p[i].EndOffset+1 == p[i+1].StartOffset and the final
// paragraph ends at the content's length. Empty content yields one empty paragraph.
func Segment(content string) []Paragraph {
	var paragraphs []Paragraph

	offset := 0
	start, byteStart := 0, 0

	for i, r := range content {
		if r == Delimiter {
			paragraphs = append(paragraphs, Paragraph{
				Index:       len(paragraphs),
				Text:        content[byteStart:i],
				StartOffset: start,
				EndOffset:   offset,
			})
			start = offset + 1
			byteStart = i + 1
		}
		offset++
	}

	return append(paragraphs, Paragraph{
		Index:       len(paragraphs),
		Text:        content[byteStart:],
		StartOffset: start,
		EndOffset:   offset,
	})
}

// Locate returns the index of the paragraph holding offset. An offset sitting on a
// delimiter belongs to the paragraph the delimiter ends. Offsets past the end map to the
// last paragraph, negative offsets to the first.
func Locate(paragraphs []Paragraph, offset int) int {
	for i, p := range paragraphs {
		if offset <= p.EndOffset {
			return i
		}
	}

	return len(paragraphs) - 1
}
