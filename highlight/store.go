package highlight

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Highlight is a reader-created colored range over one document.
// Offsets are rune offsets into the canonical content, half-open.
type Highlight struct {
	ID string `json:"id"`

	// Text is the originally selected substring. It is kept for display and is not
	// checked against the offsets again.
	Text string `json:"text"`

	Color       Color     `json:"color"`
	StartOffset int       `json:"startOffset"`
	EndOffset   int       `json:"endOffset"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Overlaps reports whether h shares at least one offset with [start, end).
func (h Highlight) Overlaps(start, end int) bool {
	return h.StartOffset < end && start < h.EndOffset
}

var (
	ErrInvalidRange = errors.New("invalid highlight range")
	ErrOverlap      = errors.New("highlight overlaps an existing highlight")
	ErrUnknownColor = errors.New("unknown highlight color")
)

// Store keeps the highlights of one open document in insertion order.
// It is owned by a single view; each view gets its own store.
type Store struct {
	highlights []Highlight
	length     int
}

// NewStore returns an empty store for a document of length runes.
func NewStore(length int) *Store {
	return &Store{length: length}
}

// Add appends a highlight over [start, end). Inverted, empty or out of bounds ranges,
// unknown colors and ranges overlapping an existing highlight are rejected and leave
// the store untouched.
func (s *Store) Add(text string, color Color, start, end int) (Highlight, error) {
	if !color.Valid() {
		return Highlight{}, fmt.Errorf("%w: %q", ErrUnknownColor, color)
	}

	if start < 0 || start >= end || end > s.length {
		return Highlight{}, fmt.Errorf("%w: [%d, %d) in document of length %d", ErrInvalidRange, start, end, s.length)
	}

	for _, h := range s.highlights {
		if h.Overlaps(start, end) {
			return Highlight{}, fmt.Errorf("%w: [%d, %d) intersects %s [%d, %d)", ErrOverlap, start, end, h.ID, h.StartOffset, h.EndOffset)
		}
	}

	h := Highlight{
		ID:          uuid.New().String(),
		Text:        text,
		Color:       color,
		StartOffset: start,
		EndOffset:   end,
		CreatedAt:   time.Now(),
	}
	s.highlights = append(s.highlights, h)

	return h, nil
}

// Clear removes every highlight.
func (s *Store) Clear() {
	s.highlights = nil
}

// Len returns the number of highlights.
func (s *Store) Len() int {
	return len(s.highlights)
}

// All returns a copy of the highlights in insertion order.
func (s *Store) All() []Highlight {
	return append([]Highlight(nil), s.highlights...)
}

// Query returns, in insertion order, every highlight that starts inside
// [start, end), ends inside (start, end], or covers [start, end] entirely.
// Partial overlaps at the range edges are included.
func (s *Store) Query(start, end int) []Highlight {
	var matched []Highlight

	for _, h := range s.highlights {
		startsInside := h.StartOffset >= start && h.StartOffset < end
		endsInside := h.EndOffset > start && h.EndOffset <= end
		covers := h.StartOffset <= start && h.EndOffset >= end

		if startsInside || endsInside || covers {
			matched = append(matched, h)
		}
	}

	return matched
}
