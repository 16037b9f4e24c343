// Package realtime broadcasts entity-change hints to connected browser tabs
// over websockets. Delivery is fire-and-forget: at most once, no ordering
// guarantee, no replay for late subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeWait bounds how long a single client write may block the broadcast loop.
const writeWait = 5 * time.Second

// Event tells clients that an entity collection changed and they may refetch.
type Event struct {
	Entity  string `json:"entity"`
	Action  string `json:"action"` // "created" | "updated" | "deleted"
	Payload any    `json:"payload,omitempty"`
}

// Notifier is the write-side interface handlers use after admin mutations.
type Notifier interface {
	EntityChanged(entity, action string, payload any)
}

// Hub maintains the set of connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

var _ Notifier = (*Hub)(nil)

// HandleWS handles GET /ws. The connection is write-only from the server's
// perspective; it stays registered until the client goes away.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Browser tabs connect from the SPA origin; CORS policy is already
		// enforced on the API, so origin checking is relaxed here.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	slog.Debug("websocket client connected", "total", total)

	// CloseRead discards inbound frames and returns a context that ends when
	// the connection dies.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()

	h.remove(conn)
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// EntityChanged pushes the event to every connected client. It returns
// immediately; writes happen on a background goroutine and a failed write to
// one client never affects the others.
func (h *Hub) EntityChanged(entity, action string, payload any) {
	data, err := json.Marshal(Event{Entity: entity, Action: action, Payload: payload})
	if err != nil {
		slog.Error("entity change marshal failed", "entity", entity, "error", err)
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	go func() {
		for _, conn := range conns {
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := conn.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				h.remove(conn)
				_ = conn.Close(websocket.StatusPolicyViolation, "write failed")
			}
		}
	}()
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
