// Package view ties one open article to its highlights and renders it.
package view

import (
	"strings"

	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/highlight"
	"github.com/burntcarrot/lexmark/render"
)

// View is one open article. It owns its highlight store; highlights live as long as
// the view does. A View is not safe for concurrent use.
type View struct {
	doc        article.Document
	paragraphs []article.Paragraph
	store      *highlight.Store
}

// New opens a view over doc with no highlights.
func New(doc article.Document) *View {
	return &View{
		doc:        doc,
		paragraphs: doc.Paragraphs(),
		store:      highlight.NewStore(doc.Length()),
	}
}

func (v *View) Document() article.Document {
	return v.doc
}

func (v *View) Paragraphs() []article.Paragraph {
	return v.paragraphs
}

func (v *View) Highlights() []highlight.Highlight {
	return v.store.All()
}

// HighlightCount returns the number of highlights without copying them.
func (v *View) HighlightCount() int {
	return v.store.Len()
}

// Select trims the reader's selection and resolves it against the canonical content.
func (v *View) Select(selection string) (int, int, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return 0, 0, article.ErrEmptySelection
	}

	return v.doc.Resolve(selection)
}

// Highlight resolves selection and stores a highlight over its first occurrence.
// On any error the store is left as it was.
func (v *View) Highlight(selection string, color highlight.Color) (highlight.Highlight, error) {
	start, end, err := v.Select(selection)
	if err != nil {
		return highlight.Highlight{}, err
	}

	return v.store.Add(strings.TrimSpace(selection), color, start, end)
}

// Clear removes every highlight of the view.
func (v *View) Clear() {
	v.store.Clear()
}

// Render composes every paragraph against the current highlights.
func (v *View) Render() []render.Paragraph {
	rendered := make([]render.Paragraph, 0, len(v.paragraphs))

	for _, p := range v.paragraphs {
		rendered = append(rendered, render.Paragraph{
			Index: p.Index,
			Runs:  render.Compose(p, v.store.Query(p.StartOffset, p.EndOffset)),
		})
	}

	return rendered
}

// ExportText returns the canonical text for copying and export.
func (v *View) ExportText() string {
	return v.doc.ExportText()
}
