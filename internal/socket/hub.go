// server/internal/socket/hub.go
package socket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks all connected console sessions, keyed by user email.
type Hub struct {
	clients map[string]*websocket.Conn
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = conn
	log.Printf("WebSocket client registered: %s", userID)
}

func (h *Hub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[userID]; ok {
		delete(h.clients, userID)
		log.Printf("WebSocket client unregistered: %s", userID)
	}
}

// Send delivers a message to one client. An offline client is not an error.
func (h *Hub) Send(userID string, message []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conn, ok := h.clients[userID]
	if !ok {
		log.Printf("WebSocket client not found, could not send message: %s", userID)
		return nil
	}

	return conn.WriteMessage(websocket.TextMessage, message)
}

// RefreshEvent tells open consoles that an entity collection changed and
// should be re-fetched. Compliance results are never pushed, the clients
// re-fetch and the server recomputes them.
type RefreshEvent struct {
	Event  string `json:"event"`
	Entity string `json:"entity"`
}

// Broadcast sends a refresh event to every connected client. Write failures
// are logged and skipped, the read loop will clean up dead connections.
func (h *Hub) Broadcast(event RefreshEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal broadcast event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Failed to broadcast to %s: %v", userID, err)
		}
	}
}
