package article

import (
	"strings"
	"unicode/utf8"
)

// Resolve maps a selection back to the rune range [start, end) of its first verbatim
// occurrence in content. The search is literal and case-sensitive; when the selection
// occurs more than once the lowest offset wins, wherever the reader actually selected.
//
// Callers are expected to trim the selection. Resolve performs no normalization, so a
// selection copied from decorated output may legitimately not be found.
func Resolve(content, selection string) (int, int, error) {
	if selection == "" {
		return 0, 0, ErrEmptySelection
	}

	i := strings.Index(content, selection)
	if i < 0 {
		return 0, 0, ErrSelectionNotFound
	}

	start := utf8.RuneCountInString(content[:i])
	return start, start + utf8.RuneCountInString(selection), nil
}
