package websocket

import (
	"encoding/json"
	"sync"

	"github.com/mrcow/mrcow-backend/internal/notifier"
	"github.com/mrcow/mrcow-backend/pkg/logger"
)

// Hub fans cart update events out to every connected browser session.
// There is a single broadcast stream; clients only listen.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan []byte, 1024),
	}
}

// Run owns the client set. Call it once from the composition root.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("WebSocket client registered", map[string]interface{}{
				"client_id":     client.ID,
				"total_clients": total,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			logger.Info("WebSocket client unregistered", map[string]interface{}{
				"client_id":     client.ID,
				"total_clients": total,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Send buffer full, drop the session asynchronously
					go h.Unregister(client)
					logger.Warn("Client send buffer full, disconnecting", map[string]interface{}{
						"client_id": client.ID,
					})
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast marshals the payload and queues it for every client. A full
// broadcast queue drops the message; updates are refreshed on the next
// cart change anyway.
func (h *Hub) Broadcast(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal broadcast payload", err, nil)
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	default:
		logger.Warn("Broadcast channel full, message dropped", nil)
		return nil
	}
}

// AttachNotifier bridges cart change events onto the broadcast stream.
// The returned function detaches the bridge.
func (h *Hub) AttachNotifier(n *notifier.Notifier) func() {
	return n.Subscribe(func(event notifier.Event) {
		h.Broadcast(event)
	})
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount reports the number of connected sessions.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
