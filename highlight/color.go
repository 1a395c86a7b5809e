package highlight

import (
	"fmt"
	"strings"
)

// Color is the tag a reader picks for a highlight.
type Color string

// Highlights come in a fixed set of colors. None marks an unhighlighted run.
const (
	None   Color = ""
	Purple Color = "purple"
	Yellow Color = "yellow"
	Blue   Color = "blue"
	Green  Color = "green"
	Pink   Color = "pink"
)

// DefaultColor is preselected when an article view opens.
const DefaultColor = Yellow

// Colors returns the selectable colors in picker order.
func Colors() []Color {
	return []Color{Purple, Yellow, Blue, Green, Pink}
}

// Valid reports whether c is one of the selectable colors.
func (c Color) Valid() bool {
	for _, color := range Colors() {
		if c == color {
			return true
		}
	}
	return false
}

// ParseColor parses a color name, ignoring case and surrounding whitespace.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return None, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}
