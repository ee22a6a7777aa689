package services

import (
	"encoding/json"
	"sync"

	"backend/models"

	"github.com/gorilla/websocket"
)

// AdvisoryEvent is the wire shape pushed to connected clients whenever the
// finance engine emits an advisory.
type AdvisoryEvent struct {
	Kind     string           `json:"kind"`
	Advisory *models.Advisory `json:"advisory"`
}

type AdvisoryClient struct {
	userID uint
	conn   *websocket.Conn
}

// RealtimeHub fans advisory events out to each user's connected websocket
// clients.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*AdvisoryClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*AdvisoryClient]struct{})}
}

// Subscribe attaches a connection to a user's advisory stream and returns
// the handle used to detach it.
func (h *RealtimeHub) Subscribe(userID uint, conn *websocket.Conn) *AdvisoryClient {
	c := &AdvisoryClient{userID: userID, conn: conn}
	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*AdvisoryClient]struct{})
	}
	h.clients[userID][c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *RealtimeHub) Unsubscribe(c *AdvisoryClient) {
	h.mu.Lock()
	if set := h.clients[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
	h.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Connections reports how many clients a user currently has attached.
func (h *RealtimeHub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *RealtimeHub) BroadcastAdvisory(userID uint, event AdvisoryEvent) {
	msg, _ := json.Marshal(event)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
	}
}
