package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"gamedex/pkg/logger"
)

// Client is one live-feed subscriber.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Event is what the hub pushes to subscribers: feed refreshes and
// shake-triggered surprise picks.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub fans events out to all connected clients. Subscribers that cannot keep
// up are dropped rather than blocking the broadcast loop.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is done.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ID] = client
				h.mutex.Unlock()
				logger.Info("Feed client connected: %s", client.ID)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Info("Feed client disconnected: %s", client.ID)

			case message := <-h.broadcast:
				h.mutex.Lock()
				for id, client := range h.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(h.clients, id)
					}
				}
				h.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// BroadcastEvent serializes the event and queues it for every subscriber.
func (h *Hub) BroadcastEvent(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal feed event: %v", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		logger.Warn("Feed broadcast queue full, dropping %s event", event.Type)
	}
}

// ClientCount reports connected subscribers.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// ReadPump drains (and discards) client messages until the connection closes,
// then unregisters the client. The feed is one-way.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Feed read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
