package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Colile1/alx-final-project/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks connected websocket clients per identity and delivers the
// store's notifications to them. It implements store.Events.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

// Notify sends a notification to every connection owned by the identity.
// Connections whose write fails are closed and evicted from the hub.
func (h *Hub) Notify(identityID string, n models.Notification) {
	msg, err := json.Marshal(n)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, owner := range h.clients {
		if owner != identityID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// HandleWebSocket upgrades the connection and registers it under the
// authenticated identity until the client disconnects.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	userID, ok := identity(c)
	if !ok {
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.Hub.mu.Lock()
	h.Hub.clients[conn] = userID
	h.Hub.mu.Unlock()

	defer func() {
		h.Hub.mu.Lock()
		delete(h.Hub.clients, conn)
		h.Hub.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
