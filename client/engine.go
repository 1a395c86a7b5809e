package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/client/reader"
	"github.com/burntcarrot/lexmark/commons"
	"github.com/burntcarrot/lexmark/highlight"
	"github.com/burntcarrot/lexmark/view"
	"github.com/gorilla/websocket"
	"github.com/nsf/termbox-go"
)

type ConnReader interface {
	ReadJSON(v interface{}) error
}

type ConnWriter interface {
	WriteJSON(v interface{}) error
}

// errExit is returned by the event handler when the reader asks to quit.
var errExit = errors.New("lexmark: exiting")

// session is the client's single open article: the reader widget, the view that owns
// the article's highlights, and the color new highlights get.
type session struct {
	conn   ConnWriter
	reader *reader.Reader
	view   *view.View
	color  highlight.Color

	// law is the law of the open article, or the one requested before it arrives.
	law string

	// copyText is where the copy action sends the article text.
	copyText func(string) error
}

func newSession(conn ConnWriter, color highlight.Color) *session {
	return &session{
		conn:     conn,
		reader:   reader.NewReader(),
		color:    color,
		copyText: clipboard.WriteAll,
	}
}

// requestArticle asks the server for an article.
func (s *session) requestArticle(law, number string) error {
	logger.Infof("DOCREQ law=%q article=%q", law, number)

	s.law = law
	msg := commons.Message{Type: commons.DocReqMessage, Law: law, ArticleNumber: number}
	return s.conn.WriteJSON(&msg)
}

// requestLaws asks the server for its law titles.
func (s *session) requestLaws() {
	logger.Infof("LAWSREQ")

	msg := commons.Message{Type: commons.LawsReqMessage}
	if err := s.conn.WriteJSON(&msg); err != nil {
		logger.Errorf("failed to request laws: %v", err)
		s.reader.SetStatus("Failed to request the laws")
	}
}

// requestArticles asks the server for the article numbers of the current law.
func (s *session) requestArticles() {
	logger.Infof("ARTICLESREQ law=%q", s.law)

	msg := commons.Message{Type: commons.ArticlesReqMessage, Law: s.law}
	if err := s.conn.WriteJSON(&msg); err != nil {
		logger.Errorf("failed to request articles: %v", err)
		s.reader.SetStatus("Failed to request the articles")
	}
}

// open replaces the current view with a fresh one over doc. Highlights of the previous
// article are discarded.
func (s *session) open(doc article.Document) {
	s.view = view.New(doc)
	s.law = doc.LawTitle
	s.reader.Cursor = 0
	s.reader.Mark = -1
	s.reader.RowOff, s.reader.ColOff = 0, 0
	s.refresh()
}

// refresh runs the whole render pipeline again and hands the result to the reader.
func (s *session) refresh() {
	if s.view == nil {
		return
	}

	rendered := s.view.Render()
	printRender(rendered)

	doc := s.view.Document()
	s.reader.SetContent(doc, rendered)
	s.reader.Info = fmt.Sprintf("%s | %s | color: %s | highlights: %d",
		doc.LawTitle, doc.ArticleNumber, s.color, s.view.HighlightCount())
}

// handleTermboxEvent handles key input by moving the cursor, selecting text or changing highlights.
func (s *session) handleTermboxEvent(ev termbox.Event) error {
	switch ev.Type {
	case termbox.EventResize:
		s.reader.SetSize(ev.Width, ev.Height)
		return nil
	case termbox.EventError:
		return ev.Err
	case termbox.EventKey:
	default:
		return nil
	}

	// Printable keys carry a rune and no key code; 1 to 5 pick the highlight color.
	if ev.Ch != 0 {
		s.pickColor(ev.Ch)
		return nil
	}

	switch ev.Key {

	// Esc drops an active selection first; otherwise Esc and Ctrl+C quit.
	case termbox.KeyEsc:
		if s.reader.Mark >= 0 {
			s.reader.ToggleMark()
			return nil
		}
		return errExit
	case termbox.KeyCtrlC:
		return errExit

	// The default keys for moving left are the left arrow key, and Ctrl+B (move backward).
	case termbox.KeyArrowLeft, termbox.KeyCtrlB:
		s.reader.MoveCursor(-1, 0)

	// The default keys for moving right are the right arrow key, and Ctrl+F (move forward).
	case termbox.KeyArrowRight, termbox.KeyCtrlF:
		s.reader.MoveCursor(1, 0)

	// The default keys for moving up are the up arrow key, and Ctrl+P (move to previous line).
	case termbox.KeyArrowUp, termbox.KeyCtrlP:
		s.reader.MoveCursor(0, -1)

	// The default keys for moving down are the down arrow key, and Ctrl+N (move to next line).
	case termbox.KeyArrowDown, termbox.KeyCtrlN:
		s.reader.MoveCursor(0, 1)

	case termbox.KeyPgup:
		s.reader.MoveCursor(0, -s.reader.PageSize())
	case termbox.KeyPgdn:
		s.reader.MoveCursor(0, s.reader.PageSize())

	// Home and End jump to the start and end of the article.
	case termbox.KeyHome:
		s.reader.MoveCursor(-s.reader.Cursor, 0)
	case termbox.KeyEnd:
		s.reader.MoveCursor(len(s.reader.Text)-s.reader.Cursor, 0)

	// Ctrl+Space starts or drops a selection at the cursor.
	case termbox.KeyCtrlSpace:
		s.reader.ToggleMark()

	// Enter highlights the selection with the current color.
	case termbox.KeyEnter:
		s.applyHighlight()

	// Ctrl+X removes every highlight of the article.
	case termbox.KeyCtrlX:
		s.clearHighlights()

	// Ctrl+Y copies the article, without highlights, to the clipboard.
	case termbox.KeyCtrlY:
		s.copyArticle()

	// Ctrl+L lists the laws, Ctrl+A the articles of the current law.
	case termbox.KeyCtrlL:
		s.requestLaws()
	case termbox.KeyCtrlA:
		s.requestArticles()
	}

	return nil
}

func (s *session) pickColor(ch rune) {
	colors := highlight.Colors()

	i := int(ch - '1')
	if i < 0 || i >= len(colors) {
		return
	}

	s.color = colors[i]
	s.reader.SetStatus("Highlight color: " + string(s.color))
	s.refresh()
}

// applyHighlight resolves the selected text against the article and stores a highlight.
func (s *session) applyHighlight() {
	if s.view == nil {
		return
	}

	start, end, ok := s.reader.Selection()
	if !ok {
		s.reader.SetStatus("Nothing selected (Ctrl+Space to start a selection)")
		return
	}

	doc := s.view.Document()
	selection, err := doc.Slice(start, end)
	if err != nil {
		s.reader.SetStatus("The selection is outside the article")
		logger.Errorf("selection [%d, %d) out of bounds: %v", start, end, err)
		return
	}

	h, err := s.view.Highlight(selection, s.color)

	switch {
	case errors.Is(err, article.ErrEmptySelection):
		s.reader.SetStatus("The selection is blank")
		return
	case errors.Is(err, article.ErrSelectionNotFound):
		s.reader.SetStatus("Selection not found in the article")
		logger.Warnf("selection %q not found in %q", selection, doc.ArticleNumber)
		return
	case errors.Is(err, highlight.ErrOverlap):
		s.reader.SetStatus("The selection overlaps an existing highlight")
		return
	case err != nil:
		s.reader.SetStatus("Could not highlight: " + err.Error())
		logger.Errorf("highlight failed: %v", err)
		return
	}

	logger.Infof("HIGHLIGHT %s %q [%d, %d) %s", h.ID, h.Text, h.StartOffset, h.EndOffset, h.Color)

	leading := len([]rune(selection)) - len([]rune(strings.TrimLeftFunc(selection, unicode.IsSpace)))
	if h.StartOffset < start+leading {
		s.reader.SetStatus("Highlighted the first occurrence of the selection")
	} else {
		s.reader.SetStatus(fmt.Sprintf("Highlighted %q", h.Text))
	}

	s.reader.Mark = -1
	s.refresh()
}

func (s *session) clearHighlights() {
	if s.view == nil {
		return
	}

	s.view.Clear()
	logger.Infof("CLEAR highlights of %q", s.view.Document().ArticleNumber)
	s.reader.SetStatus("Removed all highlights")
	s.refresh()
}

func (s *session) copyArticle() {
	if s.view == nil {
		return
	}

	if err := s.copyText(s.view.ExportText()); err != nil {
		logger.Errorf("failed to copy article: %v", err)
		s.reader.SetStatus("Failed to copy the article")
		return
	}
	s.reader.SetStatus("Article copied!")
}

// handleMsg updates the session with the contents of a server message.
func (s *session) handleMsg(msg commons.Message) {
	switch msg.Type {
	case commons.DocSyncMessage:
		logger.Infof("DOCSYNC RECEIVED %q (%s)", msg.Document.ArticleNumber, msg.Document.LawTitle)
		s.open(msg.Document)

	case commons.NotFoundMessage:
		logger.Warnf("article not found: %s", msg.Text)
		s.reader.SetStatus("Not found: " + msg.Text)

	case commons.LawsMessage:
		s.reader.SetStatus("Laws: " + strings.Join(msg.Laws, ", "))

	case commons.ArticlesMessage:
		s.reader.SetStatus(fmt.Sprintf("Articles in %s: %s", msg.Law, strings.Join(msg.Articles, ", ")))

	case commons.ErrorMessage:
		logger.Errorf("server error: %s", msg.Text)
		s.reader.SetStatus("Server error: " + msg.Text)

	default:
		logger.Warnf("unexpected message type %q", msg.Type)
	}
}

// getTermboxChan returns a channel of termbox Events repeatedly waiting on user input.
func getTermboxChan() chan termbox.Event {
	termboxChan := make(chan termbox.Event)

	go func() {
		for {
			termboxChan <- termbox.PollEvent()
		}
	}()

	return termboxChan
}

// getMsgChan returns a message channel that repeatedly reads from a websocket connection.
// The channel is closed once the connection fails.
func getMsgChan(conn ConnReader) chan commons.Message {
	messageChan := make(chan commons.Message)
	go func() {
		defer close(messageChan)
		for {
			var msg commons.Message

			// Read message.
			err := conn.ReadJSON(&msg)
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logger.Errorf("websocket error: %v", err)
				}
				return
			}

			logger.Infof("message received: %s", msg.Type)

			// send message through channel
			messageChan <- msg
		}
	}()
	return messageChan
}
