package board

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// Event is a real-time board update pushed to clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventDealCreated   = "deal_created"
	EventDealMoved     = "deal_moved"
	EventLeadConverted = "lead_converted"
)

// connection represents a single WebSocket client.
type connection struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans pipeline board events out to every connected client. Clients
// are read-only; inbound frames beyond ping keep-alives are ignored.
type Hub struct {
	mu          sync.RWMutex
	connections map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*connection]struct{}),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.connections[c]; ok {
		delete(h.connections, c)
		close(c.send)
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(eventType string, payload any) {
	data, err := json.Marshal(&Event{Type: eventType, Payload: payload})
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.connections {
		select {
		case c.send <- data:
		default:
			// Client too slow, skip
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// ServeWS registers a new connection and starts the read/write loops.
// Blocks until the client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID string) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}

	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
