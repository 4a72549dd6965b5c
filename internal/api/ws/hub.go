package ws

import (
	"encoding/json"
	"sync"
	"time"

	"arenahub-backend/internal/domain"
	"arenahub-backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Clients never send payloads; anything beyond a ping is noise.
	maxMessageSize = 512
)

// Hub tracks live connections per user and fans notifications out to all of
// a user's open tabs.
type Hub struct {
	mu      sync.RWMutex
	clients map[int32][]*client
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	// done is closed by unregister. send itself is never closed, so a Push
	// holding a stale snapshot of the client list cannot hit a closed channel.
	done   chan struct{}
	userID int32
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int32][]*client)}
}

type pushEvent struct {
	Type         string               `json:"type"`
	Notification *domain.Notification `json:"notification"`
}

// Push delivers a notification to every live connection the user has. It
// reports whether at least one connection accepted the frame.
func (h *Hub) Push(userID int32, n *domain.Notification) bool {
	payload, err := json.Marshal(pushEvent{Type: "notification", Notification: n})
	if err != nil {
		logger.Error("failed to encode push event", "error", err)
		return false
	}

	h.mu.RLock()
	clients := h.clients[userID]
	h.mu.RUnlock()

	delivered := false
	for _, c := range clients {
		select {
		case <-c.done:
			// Disconnected while we held the snapshot.
		case c.send <- payload:
			delivered = true
		default:
			// Slow consumer, drop the frame rather than block the emitter.
		}
	}
	return delivered
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c.userID] = append(h.clients[c.userID], c)
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[c.userID]
	for i, other := range clients {
		if other == c {
			h.clients[c.userID] = append(clients[:i], clients[i+1:]...)
			close(c.done)
			break
		}
	}
	if len(h.clients[c.userID]) == 0 {
		delete(h.clients, c.userID)
	}
}

// Connected reports whether the user has at least one live connection.
func (h *Hub) Connected(userID int32) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("websocket closed unexpectedly", "user_id", c.userID, "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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
