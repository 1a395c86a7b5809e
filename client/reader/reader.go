package reader

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/highlight"
	"github.com/burntcarrot/lexmark/render"
)

// Style is the display state of one rune.
type Style struct {
	Emphasis bool
	Color    highlight.Color
}

// Reader is a read-only, scrollable view of an article's text with a cursor and an
// optional selection between Mark and Cursor.
type Reader struct {
	Text   []rune
	Styles []Style
	Cursor int

	// Mark anchors a selection; -1 when no selection is being made.
	Mark int

	Width  int
	Height int

	// RowOff and ColOff are the first visible line and column.
	RowOff int
	ColOff int

	// Info is shown on the status bar when there is no status message.
	Info string

	StatusMsg string
	msgUntil  time.Time

	paragraphs []article.Paragraph
}

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 5 * time.Second

func NewReader() *Reader {
	return &Reader{Mark: -1}
}

// SetText replaces the text with unstyled content.
func (r *Reader) SetText(text string) {
	r.Text = []rune(text)
	r.Styles = make([]Style, len(r.Text))
	r.paragraphs = article.Segment(text)
	r.clamp()
}

// SetContent replaces the text with the content of doc, styled by its rendered paragraphs.
func (r *Reader) SetContent(doc article.Document, rendered []render.Paragraph) {
	r.SetText(doc.Content)

	for i, p := range rendered {
		if i >= len(r.paragraphs) {
			break
		}

		pos := r.paragraphs[i].StartOffset
		for _, run := range p.Runs {
			for _, seg := range run.Segments {
				for range seg.Text {
					if pos < len(r.Styles) {
						r.Styles[pos] = Style{Emphasis: seg.Emphasis, Color: run.Color}
					}
					pos++
				}
			}
		}
	}
}

func (r *Reader) SetSize(w, h int) {
	r.Width = w
	r.Height = h
	r.scroll()
}

// ToggleMark starts a selection at the cursor, or drops the current one.
func (r *Reader) ToggleMark() {
	if r.Mark >= 0 {
		r.Mark = -1
		return
	}
	r.Mark = r.Cursor
}

// Selection returns the selected range [start, end). ok is false when nothing is selected.
func (r *Reader) Selection() (start, end int, ok bool) {
	if r.Mark < 0 || r.Mark == r.Cursor {
		return 0, 0, false
	}

	start, end = r.Mark, r.Cursor
	if start > end {
		start, end = end, start
	}
	if end > len(r.Text) {
		end = len(r.Text)
	}
	return start, end, start < end
}

// SetStatus shows msg on the status bar for StatusDuration.
func (r *Reader) SetStatus(msg string) {
	r.StatusMsg = msg
	r.msgUntil = time.Now().Add(StatusDuration)
}

func (r *Reader) showingStatus() bool {
	return r.StatusMsg != "" && time.Now().Before(r.msgUntil)
}

// MoveCursor moves the cursor x runes horizontally, or y lines vertically while
// keeping the column where the target line allows it.
func (r *Reader) MoveCursor(x, y int) {
	if len(r.Text) == 0 {
		return
	}

	newCursor := r.Cursor + x
	if y != 0 {
		newCursor = r.lineMove(y)
	}

	r.Cursor = newCursor
	r.clamp()
	r.scroll()
}

// PageSize is the number of text lines that fit above the status bar.
func (r *Reader) PageSize() int {
	if r.Height <= 1 {
		return 1
	}
	return r.Height - 1
}

// lineMove calculates the cursor after moving dy lines. Moving above the first line
// lands at the start of the text, moving below the last line at its end.
func (r *Reader) lineMove(dy int) int {
	line := article.Locate(r.paragraphs, r.Cursor)
	col := r.Cursor - r.paragraphs[line].StartOffset

	target := line + dy
	if target < 0 {
		return 0
	}
	if target >= len(r.paragraphs) {
		return len(r.Text)
	}

	p := r.paragraphs[target]
	if col > p.Length() {
		col = p.Length()
	}
	return p.StartOffset + col
}

func (r *Reader) clamp() {
	if r.Cursor > len(r.Text) {
		r.Cursor = len(r.Text)
	}
	if r.Cursor < 0 {
		r.Cursor = 0
	}
	if r.Mark > len(r.Text) {
		r.Mark = len(r.Text)
	}
}

// scroll adjusts RowOff and ColOff so the cursor stays on screen.
func (r *Reader) scroll() {
	x, y := r.calcXY(r.Cursor)
	row, col := y-1, x-1

	if row < r.RowOff {
		r.RowOff = row
	}
	if row >= r.RowOff+r.PageSize() {
		r.RowOff = row - r.PageSize() + 1
	}

	if r.Width <= 0 {
		return
	}
	if col < r.ColOff {
		r.ColOff = col
	}
	if col >= r.ColOff+r.Width {
		r.ColOff = col - r.Width + 1
	}
}

// calcXY calculates the 1-based screen column and line of index, before scrolling.
func (r *Reader) calcXY(index int) (int, int) {
	x := 1
	y := 1

	if index < 0 {
		return x, y
	}

	if index > len(r.Text) {
		index = len(r.Text)
	}

	for i := 0; i < index; i++ {
		if r.Text[i] == article.Delimiter {
			x = 1
			y++
		} else {
			x = x + runewidth.RuneWidth(r.Text[i])
		}
	}
	return x, y
}

// attributes maps a rune's style and selection state to termbox attributes.
func attributes(s Style, selected bool) (termbox.Attribute, termbox.Attribute) {
	fg, bg := termbox.ColorDefault, termbox.ColorDefault

	switch s.Color {
	case highlight.Purple:
		fg, bg = termbox.ColorWhite, termbox.ColorMagenta
	case highlight.Yellow:
		fg, bg = termbox.ColorBlack, termbox.ColorYellow
	case highlight.Blue:
		fg, bg = termbox.ColorWhite, termbox.ColorBlue
	case highlight.Green:
		fg, bg = termbox.ColorBlack, termbox.ColorGreen
	case highlight.Pink:
		fg, bg = termbox.ColorBlack, termbox.ColorLightMagenta
	}

	if s.Emphasis {
		fg |= termbox.AttrBold
	}
	if selected {
		fg |= termbox.AttrReverse
	}
	return fg, bg
}

// Draw updates the UI by setting cells with the reader's content.
func (r *Reader) Draw() {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	cx, cy := r.calcXY(r.Cursor)
	termbox.SetCursor(cx-1-r.ColOff, cy-1-r.RowOff)

	selStart, selEnd, selecting := r.Selection()

	x, y := 0, 0
	for i := 0; i < len(r.Text); i++ {
		if r.Text[i] == article.Delimiter {
			x = 0
			y++
			continue
		}

		row, col := y-r.RowOff, x-r.ColOff
		if row >= 0 && row < r.PageSize() && col >= 0 && col < r.Width {
			var s Style
			if i < len(r.Styles) {
				s = r.Styles[i]
			}
			fg, bg := attributes(s, selecting && i >= selStart && i < selEnd)

			// Set cell content.
			termbox.SetCell(col, row, r.Text[i], fg, bg)
		}

		// Update x by rune's width.
		x = x + runewidth.RuneWidth(r.Text[i])
	}

	r.drawStatusBar()

	// Flush back buffer!
	termbox.Flush()
}

// drawStatusBar shows the status message, or the reader's info and position.
func (r *Reader) drawStatusBar() {
	str := r.StatusMsg
	if !r.showingStatus() {
		x, y := r.calcXY(r.Cursor)
		str = fmt.Sprintf("%s  line=%d col=%d offset=%d/%d", r.Info, y, x, r.Cursor, len(r.Text))
		if r.Mark >= 0 {
			str += "  [selecting]"
		}
	}

	col := 0
	for _, ch := range str {
		if col >= r.Width {
			break
		}
		termbox.SetCell(col, r.Height-1, ch, termbox.ColorDefault|termbox.AttrReverse, termbox.ColorDefault)
		col += runewidth.RuneWidth(ch)
	}
}
