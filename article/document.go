package article

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Document is the canonical text of one article, as handed out by the article provider.
// Offsets used anywhere in lexmark are rune indices into Content.
type Document struct {
	ArticleNumber string `json:"articleNumber"`

	// Content is the canonical plain text, with '\n' separating paragraphs.
	Content string `json:"content"`

	// LawTitle is display-only.
	LawTitle string `json:"lawTitle"`
}

var (
	ErrPositionOutOfBounds = errors.New("position out of bounds")
	ErrEmptySelection      = errors.New("empty selection")
	ErrSelectionNotFound   = errors.New("selection not found")
)

// Length returns the length of the document in runes.
func (doc *Document) Length() int {
	return utf8.RuneCountInString(doc.Content)
}

// Slice returns the content between the rune offsets [start, end).
func (doc *Document) Slice(start, end int) (string, error) {
	if start < 0 || end < start || end > doc.Length() {
		return "", ErrPositionOutOfBounds
	}

	runes := []rune(doc.Content)
	return string(runes[start:end]), nil
}

// Paragraphs segments the document's content.
func (doc *Document) Paragraphs() []Paragraph {
	return Segment(doc.Content)
}

// Resolve finds the first occurrence of selection in the document's content.
func (doc *Document) Resolve(selection string) (int, int, error) {
	return Resolve(doc.Content, selection)
}

// ExportText returns the text handed to clipboard and export collaborators.
// Highlights and emphasis never appear in it.
func (doc *Document) ExportText() string {
	var b strings.Builder
	b.WriteString(doc.ArticleNumber)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	return b.String()
}
