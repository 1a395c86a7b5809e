package main

import (
	"errors"

	"github.com/gorilla/websocket"
	"github.com/nsf/termbox-go"
)

// errServerClosed is returned by the main loop once the server connection is gone.
var errServerClosed = errors.New("lexmark: server closed the connection")

// UI starts the reader and runs the main loop.
func UI(s *session, conn *websocket.Conn) error {
	err := termbox.Init()
	if err != nil {
		return err
	}
	defer termbox.Close()

	s.reader.SetSize(termbox.Size())
	s.reader.SetStatus("Ctrl+Space select | Enter highlight | 1-5 color | Ctrl+X clear | Ctrl+Y copy | Ctrl+L laws | Ctrl+A articles | Esc quit")
	s.reader.Draw()

	return mainLoop(s, conn)
}

// mainLoop is the main update loop for the UI.
func mainLoop(s *session, conn ConnReader) error {
	termboxChan := getTermboxChan()
	msgChan := getMsgChan(conn)

	// event select
	for {
		select {
		case termboxEvent := <-termboxChan:
			err := s.handleTermboxEvent(termboxEvent)
			if err != nil {
				return err
			}
		case msg, ok := <-msgChan:
			if !ok {
				return errServerClosed
			}
			s.handleMsg(msg)
		}

		s.reader.Draw()
	}
}
