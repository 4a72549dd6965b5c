package ws

import (
	"net/http"

	api "arenahub-backend/internal/api/http"
	"arenahub-backend/internal/logger"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Tightened per deployment; token auth already gates the upgrade.
		return true
	},
}

// Handler upgrades an authenticated request to a websocket and registers the
// connection with the hub.
func Handler(hub *Hub) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "user_id", userID, "error", err)
			return
		}

		c := &client{
			hub:    hub,
			conn:   conn,
			send:   make(chan []byte, 16),
			done:   make(chan struct{}),
			userID: userID,
		}
		hub.register(c)

		go c.writePump()
		go c.readPump()
	})
}
