package main

import (
	"errors"
	"fmt"

	"github.com/burntcarrot/lexmark/commons"
	"github.com/burntcarrot/lexmark/library"
)

// handleMsg builds the reply for one client request.
func (s *server) handleMsg(msg commons.Message) commons.Message {
	reply := commons.Message{ID: msg.ID}

	switch msg.Type {
	case commons.DocReqMessage:
		doc, err := s.lib.Article(msg.Law, msg.ArticleNumber)
		switch {
		case errors.Is(err, library.ErrLawNotFound), errors.Is(err, library.ErrArticleNotFound):
			reply.Type = commons.NotFoundMessage
			reply.Law = msg.Law
			reply.ArticleNumber = msg.ArticleNumber
			reply.Text = err.Error()
		case err != nil:
			reply.Type = commons.ErrorMessage
			reply.Text = err.Error()
		default:
			reply.Type = commons.DocSyncMessage
			reply.Law = doc.LawTitle
			reply.ArticleNumber = doc.ArticleNumber
			reply.Document = doc
		}

	case commons.LawsReqMessage:
		reply.Type = commons.LawsMessage
		reply.Laws = s.lib.Laws()

	case commons.ArticlesReqMessage:
		title, numbers, err := s.lib.Articles(msg.Law)
		if err != nil {
			reply.Type = commons.NotFoundMessage
			reply.Law = msg.Law
			reply.Text = err.Error()
			break
		}
		reply.Type = commons.ArticlesMessage
		reply.Law = title
		reply.Articles = numbers

	default:
		reply.Type = commons.ErrorMessage
		reply.Text = fmt.Sprintf("unsupported message type %q", msg.Type)
	}

	return reply
}
