package main

import (
	"fmt"

	"github.com/burntcarrot/lexmark/article"
	"github.com/burntcarrot/lexmark/commons"
)

// Conn reads and writes JSON messages.
type Conn interface {
	ConnReader
	ConnWriter
}

// roundTrip sends req and waits for the server's answer. notFound and error replies
// are turned into errors.
func roundTrip(conn Conn, req commons.Message) (commons.Message, error) {
	if err := conn.WriteJSON(&req); err != nil {
		return commons.Message{}, fmt.Errorf("failed to send %s: %w", req.Type, err)
	}

	var msg commons.Message
	if err := conn.ReadJSON(&msg); err != nil {
		return commons.Message{}, fmt.Errorf("failed to read reply: %w", err)
	}

	switch msg.Type {
	case commons.NotFoundMessage:
		return msg, fmt.Errorf("not found: %s", msg.Text)
	case commons.ErrorMessage:
		return msg, fmt.Errorf("server error: %s", msg.Text)
	}
	return msg, nil
}

// fetchArticle requests an article and waits for the server's answer.
func fetchArticle(conn Conn, law, number string) (article.Document, error) {
	msg, err := roundTrip(conn, commons.Message{Type: commons.DocReqMessage, Law: law, ArticleNumber: number})
	if err != nil {
		return article.Document{}, err
	}
	if msg.Type != commons.DocSyncMessage {
		return article.Document{}, fmt.Errorf("unexpected reply %q", msg.Type)
	}
	return msg.Document, nil
}

// fetchLaws returns the titles of every law the server holds.
func fetchLaws(conn Conn) ([]string, error) {
	msg, err := roundTrip(conn, commons.Message{Type: commons.LawsReqMessage})
	if err != nil {
		return nil, err
	}
	if msg.Type != commons.LawsMessage {
		return nil, fmt.Errorf("unexpected reply %q", msg.Type)
	}
	return msg.Laws, nil
}

// fetchArticleList returns the stored title of law and its article numbers.
func fetchArticleList(conn Conn, law string) (string, []string, error) {
	msg, err := roundTrip(conn, commons.Message{Type: commons.ArticlesReqMessage, Law: law})
	if err != nil {
		return "", nil, err
	}
	if msg.Type != commons.ArticlesMessage {
		return "", nil, fmt.Errorf("unexpected reply %q", msg.Type)
	}
	return msg.Law, msg.Articles, nil
}
