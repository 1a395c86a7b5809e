package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/burntcarrot/lexmark/highlight"
)

var (
	// logger is the client's logger. Output goes to log files under ~/.lexmark.
	logger = logrus.New()

	// flags holds the parsed command-line flags.
	flags Flags
)

func main() {
	// Parse flags.
	var err error
	flags, err = parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	// Set up the logger.
	logFile, debugLogFile, err := setupLogger(logger)
	if err != nil {
		fmt.Printf("Failed to set up logger, exiting: %s\n", err)
		os.Exit(1)
	}
	defer closeLogFiles(logFile, debugLogFile)

	hc, err := highlight.ParseColor(flags.Color)
	if err != nil {
		color.Red("Invalid color %q, expected one of %v\n", flags.Color, highlight.Colors())
		return
	}

	if flags.Print && flags.Article == "" {
		color.Red("-print requires -article\n")
		return
	}

	// Get WebSocket connection.
	conn, _, err := createConn(flags)
	if err != nil {
		color.Red("Connection error, exiting: %s\n", err)
		return
	}
	defer conn.Close()

	// Ask for the article when none was given on the command line.
	if flags.Article == "" {
		law, laws, articles := browse(conn, flags.Law)

		number, err := promptArticle(law, laws, articles)
		if err != nil {
			fmt.Printf("Prompt error: %s\n", err)
			return
		}
		if number == "" {
			return
		}
		flags.Article = number
	}

	if flags.Print {
		doc, err := fetchArticle(conn, flags.Law, flags.Article)
		if err != nil {
			color.Red("%s\n", err)
			return
		}
		if err := printArticle(os.Stdout, doc, flags.Marks, hc); err != nil {
			color.Red("%s\n", err)
		}
		return
	}

	s := newSession(conn, hc)
	if err := s.requestArticle(flags.Law, flags.Article); err != nil {
		color.Red("Failed to request article: %s\n", err)
		return
	}

	// Start the reader.
	err = UI(s, conn)
	if err != nil {
		// If error has the prefix "lexmark", then it was an expected exit.
		if strings.HasPrefix(err.Error(), "lexmark") {
			fmt.Println("exiting session.")
			return
		}

		// This is an unexpected error.
		fmt.Printf("TUI error, exiting: %s\n", err)
		logger.Errorf("TUI error: %v", err)
	}
}

// browse fetches the law titles and the article numbers of law for the prompt.
// Failures are logged and leave the lists empty.
func browse(conn Conn, law string) (string, []string, []string) {
	laws, err := fetchLaws(conn)
	if err != nil {
		logger.Warnf("failed to list laws: %v", err)
	}

	title, articles, err := fetchArticleList(conn, law)
	if err != nil {
		logger.Warnf("failed to list articles of %q: %v", law, err)
		return law, laws, nil
	}

	return title, laws, articles
}
