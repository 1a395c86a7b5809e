package main

import (
	"flag"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/burntcarrot/lexmark/commons"
	"github.com/burntcarrot/lexmark/library"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Upgrader instance to upgrade all HTTP connections to a WebSocket.
var upgrader = websocket.Upgrader{}

// server answers article requests from reader clients.
type server struct {
	lib *library.Library

	// mu guards activeClients, since every connection runs in its own goroutine.
	mu            sync.Mutex
	activeClients map[*websocket.Conn]uuid.UUID
}

func main() {
	// Parse flags.
	addr := flag.String("addr", ":8080", "Server's network address")
	libraryPath := flag.String("library", "library.json", "Path to the JSON article library")
	flag.Parse()

	lib, err := library.Load(*libraryPath)
	if err != nil {
		log.Fatalf("Error loading library %s, exiting: %v", *libraryPath, err)
	}
	log.Printf("Loaded %d laws from %s", len(lib.Laws()), *libraryPath)

	s := &server{lib: lib, activeClients: make(map[*websocket.Conn]uuid.UUID)}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleConn)

	// Start the server.
	log.Printf("Starting server on %s", *addr)
	err = http.ListenAndServe(*addr, mux)
	if err != nil {
		log.Fatal("Error starting server, exiting.", err)
	}
}

// handleConn upgrades an HTTP connection, registers the client and answers its requests until it disconnects.
func (s *server) handleConn(w http.ResponseWriter, r *http.Request) {
	// Upgrade incoming HTTP connections to WebSocket connections
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection to websocket: %v", err)
		return
	}
	defer conn.Close()

	// Generate a UUID for the client.
	id := s.register(conn)
	defer s.unregister(conn)

	for {
		var msg commons.Message

		// Read message from the connection.
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading from client %v: %v", id, err)
			}
			log.Printf("Closing connection with ID: %v", id)
			return
		}

		// Set message ID
		msg.ID = id

		reply := s.handleMsg(msg)
		logExchange(msg, reply)

		err = conn.WriteJSON(reply)
		if err != nil {
			log.Printf("Error sending message to client: %v", err)
			return
		}
	}
}

func (s *server) register(conn *websocket.Conn) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.activeClients[conn] = id
	log.Printf("Client %v connected (%d active)", id, len(s.activeClients))
	return id
}

func (s *server) unregister(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.activeClients, conn)
}

// logExchange logs each request and its outcome to stdout.
func logExchange(msg, reply commons.Message) {
	t := time.Now().Format(time.ANSIC)

	switch reply.Type {
	case commons.DocSyncMessage:
		color.Green("%s >> %v %s %q (%s)\n", t, msg.ID, msg.Type, msg.ArticleNumber, reply.Document.LawTitle)
	case commons.LawsMessage:
		color.Green("%s >> %v %s (%d laws)\n", t, msg.ID, msg.Type, len(reply.Laws))
	case commons.ArticlesMessage:
		color.Green("%s >> %v %s %q (%d articles)\n", t, msg.ID, msg.Type, reply.Law, len(reply.Articles))
	default:
		color.Yellow("%s >> %v %s: %s\n", t, msg.ID, msg.Type, reply.Text)
	}
}
