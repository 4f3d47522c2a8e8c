package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// liveMessage is pushed to browsers on /live.
type liveMessage struct {
	Type string `json:"type"`
}

// Hub fans reload notifications out to connected browsers.
type Hub struct {
	mu      sync.Mutex
	clients map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan struct{}]struct{})}
}

// subscribe registers a client. The returned func unregisters it.
func (h *Hub) subscribe() (chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch, func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
	}
}

// Clients reports the number of connected browsers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast tells every client to reload. Clients that already have a
// pending reload are skipped.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ServeHTTP upgrades to WebSocket and forwards reload notifications until
// the browser goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		zap.L().Warn("live: websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	// CloseRead discards client frames and cancels ctx once the peer closes.
	ctx := conn.CloseRead(r.Context())
	ch, unsubscribe := h.subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			if err := h.send(ctx, conn); err != nil {
				zap.L().Debug("live: send failed", zap.Error(err))
				return
			}
		}
	}
}

func (h *Hub) send(ctx context.Context, conn *websocket.Conn) error {
	return wsjson.Write(ctx, conn, liveMessage{Type: "reload"})
}
