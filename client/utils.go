package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/burntcarrot/lexmark/highlight"
	"github.com/burntcarrot/lexmark/render"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// Flags represents the command-line flags that are passed to lexmark's client.
type Flags struct {
	Server  string
	Secure  bool
	Debug   bool
	Law     string
	Article string
	Color   string
	Print   bool
	Marks   markList
}

// markList collects repeated -mark flags.
type markList []string

func (m *markList) String() string {
	return strings.Join(*m, ", ")
}

func (m *markList) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// parseFlags parses command-line flags from args into fs.
func parseFlags(fs *flag.FlagSet, args []string) (Flags, error) {
	var marks markList

	serverAddr := fs.String("server", "localhost:8080", "The network address of the server")
	useSecureConn := fs.Bool("secure", false, "Enable a secure WebSocket connection (wss://)")
	enableDebug := fs.Bool("debug", false, "Enable debugging mode to show more verbose logs")
	law := fs.String("law", "", "The law to read from (defaults to the server's first law)")
	articleNumber := fs.String("article", "", "The article number to open, e.g. \"Art. 5º\"")
	highlightColor := fs.String("color", string(highlight.DefaultColor), "Initial highlight color (purple, yellow, blue, green, pink)")
	printMode := fs.Bool("print", false, "Print the article to stdout instead of opening the reader")
	fs.Var(&marks, "mark", "Text to highlight in -print mode (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}

	return Flags{
		Server:  *serverAddr,
		Secure:  *useSecureConn,
		Debug:   *enableDebug,
		Law:     *law,
		Article: *articleNumber,
		Color:   *highlightColor,
		Print:   *printMode,
		Marks:   marks,
	}, nil
}

// createConn creates a WebSocket connection.
func createConn(flags Flags) (*websocket.Conn, *http.Response, error) {
	var u url.URL
	if flags.Secure {
		u = url.URL{Scheme: "wss", Host: flags.Server, Path: "/"}
	} else {
		u = url.URL{Scheme: "ws", Host: flags.Server, Path: "/"}
	}

	// Get WebSocket connection.
	dialer := websocket.Dialer{
		HandshakeTimeout: 2 * time.Minute,
	}

	return dialer.Dial(u.String(), nil)
}

// ensureDirExists ensures that a directory exists, and if it isn't present, it tries to create a new one.
func ensureDirExists(path string) (bool, error) {
	// Check if the directory exists
	if _, err := os.Stat(path); err == nil {
		return true, nil
	}

	// Create the directory
	err := os.Mkdir(path, 0700)
	if err != nil {
		return false, err
	}

	return true, nil
}

// setupLogger initializes the client's logger (logrus).
func setupLogger(logger *logrus.Logger) (*os.File, *os.File, error) {
	// define log file paths, based on the home directory.
	logPath := "lexmark.log"
	debugLogPath := "lexmark-debug.log"

	// Get the home directory.
	homeDirExists := true
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDirExists = false
	}

	lexmarkDir := filepath.Join(homeDir, ".lexmark")

	dirExists, err := ensureDirExists(lexmarkDir)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", lexmarkDir, err)
	}

	// Get log paths based on the home directory.
	if dirExists && homeDirExists {
		logPath = filepath.Join(lexmarkDir, "lexmark.log")
		debugLogPath = filepath.Join(lexmarkDir, "lexmark-debug.log")
	}

	// Open the log file and create if it does not exist.
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // skipcq: GSC-G302
	if err != nil {
		return nil, nil, fmt.Errorf("opening lexmark log: %w", err)
	}

	// Create a separate log file for verbose logs.
	debugLogFile, err := os.OpenFile(debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) // skipcq: GSC-G302
	if err != nil {
		logFile.Close()
		return nil, nil, fmt.Errorf("opening lexmark debug log: %w", err)
	}

	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(&writer.Hook{
		Writer: logFile,
		LogLevels: []logrus.Level{
			logrus.WarnLevel,
			logrus.ErrorLevel,
			logrus.FatalLevel,
			logrus.PanicLevel,
		},
	})
	logger.AddHook(&writer.Hook{
		Writer: debugLogFile,
		LogLevels: []logrus.Level{
			logrus.TraceLevel,
			logrus.DebugLevel,
			logrus.InfoLevel,
		},
	})

	return logFile, debugLogFile, nil
}

// closeLogFiles closes the log files created by setupLogger. Both files are closed
// even if the first one fails.
func closeLogFiles(logFile, debugLogFile *os.File) {
	if err := logFile.Close(); err != nil {
		fmt.Printf("Failed to close %s: %s\n", logFile.Name(), err)
	}

	if err := debugLogFile.Close(); err != nil {
		fmt.Printf("Failed to close %s: %s\n", debugLogFile.Name(), err)
	}
}

// printRender "prints" the rendered article to the logs.
func printRender(rendered []render.Paragraph) {
	if flags.Debug {
		logger.Infof("---RENDER STATE---")
		for _, p := range rendered {
			for i, run := range p.Runs {
				logger.Infof("paragraph: %v  run: %v  color: %q  segments: %v  text: %q", p.Index, i, run.Color, len(run.Segments), run.Text)
			}
		}
	}
}
