package notify

import (
	"sync"
	"time"

	"bostonsuites/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub fans booking lifecycle events out to every connected dashboard.
type Hub struct {
	mu     sync.RWMutex
	nextID int64
	conns  map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.conns[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[id]; ok && conn != nil {
		_ = conn.Close()
		delete(h.conns, id)
	}
}

type Event struct {
	Type    string          `json:"type"`
	At      time.Time       `json:"at"`
	Booking *domain.Booking `json:"booking,omitempty"`
}

// Publish sends the event to every open connection, dropping any that fail
// to write. Satisfies the booking module's EventPublisher.
func (h *Hub) Publish(event string, b *domain.Booking) {
	msg := Event{Type: event, At: time.Now().UTC(), Booking: b}

	h.mu.RLock()
	targets := make(map[int64]*websocket.Conn, len(h.conns))
	for id, conn := range h.conns {
		targets[id] = conn
	}
	h.mu.RUnlock()

	for id, conn := range targets {
		if err := conn.WriteJSON(msg); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.conns, id)
	}
}
