package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/highlight"
	"github.com/burntcarrot/lexmark/render"
	"github.com/burntcarrot/lexmark/view"
)

// printArticle writes doc to w with every mark highlighted in c. Marks that cannot be
// highlighted are reported and skipped.
func printArticle(w io.Writer, doc article.Document, marks []string, c highlight.Color) error {
	v := view.New(doc)

	for _, mark := range marks {
		if _, err := v.Highlight(mark, c); err != nil {
			logger.Warnf("mark %q skipped: %v", mark, err)
			fmt.Fprintf(w, "%s\n", color.YellowString("warning: %q: %v", mark, err))
		}
	}

	header := color.New(color.FgCyan, color.Bold).Sprintf("%s | %s", doc.LawTitle, doc.ArticleNumber)
	if _, err := fmt.Fprintf(w, "%s\n\n", header); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, render.ANSI(v.Render()))
	return err
}
