// Package library provides articles from a JSON library file.
package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/burntcarrot/lexmark/article"
)

// Law is a titled list of articles.
type Law struct {
	Title    string  `json:"title"`
	Articles []Entry `json:"articles"`
}

// Entry is one article as stored in the library file.
type Entry struct {
	Number  string `json:"number"`
	Content string `json:"content"`
}

// Library holds every law loaded from a library file, in file order.
type Library struct {
	laws []Law
}

var (
	ErrLawNotFound     = errors.New("law not found")
	ErrArticleNotFound = errors.New("article not found")
)

// Load reads a library file.
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a library of the form {"laws": [{"title": ..., "articles": [{"number": ..., "content": ...}]}]}.
// Titles, numbers and contents are normalized to NFC, and CRLF line breaks become '\n',
// so offsets and the annotator's patterns see one canonical spelling.
func Parse(r io.Reader) (*Library, error) {
	var file struct {
		Laws []Law `json:"laws"`
	}

	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding library: %w", err)
	}

	for i := range file.Laws {
		law := &file.Laws[i]
		law.Title = canonical(law.Title)
		for j := range law.Articles {
			law.Articles[j].Number = canonical(law.Articles[j].Number)
			law.Articles[j].Content = canonical(law.Articles[j].Content)
		}
	}

	return &Library{laws: file.Laws}, nil
}

func canonical(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// Laws returns the law titles in file order.
func (l *Library) Laws() []string {
	titles := make([]string, 0, len(l.laws))
	for _, law := range l.laws {
		titles = append(titles, law.Title)
	}
	return titles
}

// Law looks a law up by title, ignoring case. An empty title selects the first law.
func (l *Library) Law(title string) (Law, error) {
	title = norm.NFC.String(strings.TrimSpace(title))

	for _, law := range l.laws {
		if title == "" || strings.EqualFold(law.Title, title) {
			return law, nil
		}
	}

	return Law{}, fmt.Errorf("%w: %q", ErrLawNotFound, title)
}

// Articles returns the article numbers of a law in file order, with the law's stored title.
func (l *Library) Articles(law string) (string, []string, error) {
	found, err := l.Law(law)
	if err != nil {
		return "", nil, err
	}

	numbers := make([]string, 0, len(found.Articles))
	for _, entry := range found.Articles {
		numbers = append(numbers, entry.Number)
	}
	return found.Title, numbers, nil
}

// Article returns the document for an article of a law.
func (l *Library) Article(law, number string) (article.Document, error) {
	found, err := l.Law(law)
	if err != nil {
		return article.Document{}, err
	}

	number = norm.NFC.String(strings.TrimSpace(number))
	for _, entry := range found.Articles {
		if entry.Number == number {
			return article.Document{
				ArticleNumber: entry.Number,
				Content:       entry.Content,
				LawTitle:      found.Title,
			}, nil
		}
	}

	return article.Document{}, fmt.Errorf("%w: %q in %q", ErrArticleNotFound, number, found.Title)
}
