package commons

import (
	"github.com/burntcarrot/lexmark/article"
	"github.com/google/uuid"
)

// Message represents the message sent over the wire.
type Message struct {
	// Type represents the message type.
	Type MessageType `json:"type"`

	// ID represents the client's UUID. The server sets it on every request it receives.
	ID uuid.UUID `json:"ID"`

	// Law and ArticleNumber identify the requested article.
	Law           string `json:"law,omitempty"`
	ArticleNumber string `json:"articleNumber,omitempty"`

	// Text carries a human-readable reason for notFound and error messages.
	Text string `json:"text,omitempty"`

	// Laws lists the law titles the server knows about.
	Laws []string `json:"laws,omitempty"`

	// Articles lists the article numbers of Law.
	Articles []string `json:"articles,omitempty"`

	// Document is the article sent back for a docReq.
	Document article.Document `json:"document"`
}

// MessageType represents the type of the message.
type MessageType string

// Currently, lexmark supports 8 message types:
// - docReq (for requesting an article)
// - docSync (for sending an article)
// - notFound (when the requested article or law does not exist)
// - lawsReq (for requesting the list of laws)
// - laws (for sending the list of laws)
// - articlesReq (for requesting the article numbers of a law)
// - articles (for sending the article numbers of a law)
// - error (for malformed requests)

const (
	DocReqMessage      MessageType = "docReq"
	DocSyncMessage     MessageType = "docSync"
	NotFoundMessage    MessageType = "notFound"
	LawsReqMessage     MessageType = "lawsReq"
	LawsMessage        MessageType = "laws"
	ArticlesReqMessage MessageType = "articlesReq"
	ArticlesMessage    MessageType = "articles"
	ErrorMessage       MessageType = "error"
)
