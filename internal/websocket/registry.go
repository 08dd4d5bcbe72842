package websocket

import (
	"PowerManager/internal/pkg/logger"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var (
	// Registry singleton
	registry *Registry
	once     sync.Once
)

// Registry holds the WebSocket handler of the CPU feed
type Registry struct {
	mu         sync.RWMutex
	cpuHandler *Handler
}

// GetRegistry returns the WebSocket registry singleton
func GetRegistry() *Registry {
	once.Do(func() {
		registry = &Registry{}
	})
	return registry
}

// Handler manages WebSocket connections
type Handler struct {
	clients  map[*Client]bool
	mu       sync.Mutex
	upgrader websocket.Upgrader
}

// Client represents a WebSocket client connection
type Client struct {
	conn *websocket.Conn
}

// NewHandler creates a new WebSocket handler
func NewHandler() *Handler {
	return &Handler{
		clients: make(map[*Client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // the feed listens on loopback by default
			},
		},
	}
}

// ServeHTTP upgrades the connection, sends greeting when it is not nil,
// and keeps the client registered until it disconnects.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request, greeting interface{}) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade to WebSocket connection", logger.Err(err))
		return
	}

	client := &Client{conn: conn}

	if greeting != nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(greeting); err != nil {
			logger.Warn("Failed to send initial snapshot", logger.Err(err))
			conn.Close()
			return
		}
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, client)
		h.mu.Unlock()
		conn.Close()
	}()

	// Incoming messages are ignored; reading only detects the disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends a message to all clients of this handler, dropping clients that fail
func (h *Handler) Broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("Dropping WebSocket client", logger.Err(err))
			client.conn.Close()
			delete(h.clients, client)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Handler) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// GetCPUHandler returns the CPU feed handler
func (r *Registry) GetCPUHandler() *Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cpuHandler
}

// RegisterCPUHandler sets the CPU feed handler
func (r *Registry) RegisterCPUHandler(handler *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cpuHandler = handler
}
