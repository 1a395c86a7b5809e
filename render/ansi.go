package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/burntcarrot/lexmark/highlight"
)

var (
	plainStyle = lipgloss.NewStyle()

	highlightStyles = map[highlight.Color]lipgloss.Style{
		highlight.Purple: lipgloss.NewStyle().Background(lipgloss.Color("#6b21a8")).Foreground(lipgloss.Color("#ffffff")),
		highlight.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("#eab308")).Foreground(lipgloss.Color("#000000")),
		highlight.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("#1d4ed8")).Foreground(lipgloss.Color("#ffffff")),
		highlight.Green:  lipgloss.NewStyle().Background(lipgloss.Color("#15803d")).Foreground(lipgloss.Color("#ffffff")),
		highlight.Pink:   lipgloss.NewStyle().Background(lipgloss.Color("#db2777")).Foreground(lipgloss.Color("#ffffff")),
	}
)

// StyleFor returns the lipgloss style of a segment inside a run of the given color.
func StyleFor(color highlight.Color, emphasis bool) lipgloss.Style {
	style, ok := highlightStyles[color]
	if !ok {
		style = plainStyle
	}

	// lipgloss styles share their rule map, copy before changing one.
	style = style.Copy()
	if emphasis {
		style = style.Bold(true)
	}
	return style
}

// ANSI renders paragraphs for a terminal, one line per paragraph.
func ANSI(paragraphs []Paragraph) string {
	var b strings.Builder

	for i, p := range paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, run := range p.Runs {
			for _, seg := range run.Segments {
				b.WriteString(StyleFor(run.Color, seg.Emphasis).Render(seg.Text))
			}
		}
	}

	return b.String()
}
