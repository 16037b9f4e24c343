package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	conn, _, err := websocket.Dial(ctx, "ws"+srv.URL[len("http"):], nil)
	if err != nil {
		cancel()
		srv.Close()
		t.Fatalf("dial: %v", err)
	}
	return conn, func() {
		_ = conn.Close(websocket.StatusNormalClosure, "")
		cancel()
		srv.Close()
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", want, hub.ClientCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_BroadcastsEntityChange(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForClients(t, hub, 1)

	hub.EntityChanged("skill", "created", map[string]int{"id": 3})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.MessageText {
		t.Errorf("expected text message, got %v", typ)
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if ev.Entity != "skill" || ev.Action != "created" {
		t.Errorf("unexpected event %+v", ev)
	}
	payload, ok := ev.Payload.(map[string]any)
	if !ok || payload["id"] != float64(3) {
		t.Errorf("unexpected payload %+v", ev.Payload)
	}
}

func TestHub_RemovesDisconnectedClient(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()
	waitForClients(t, hub, 1)

	_ = conn.Close(websocket.StatusNormalClosure, "")
	waitForClients(t, hub, 0)
}

func TestHub_EntityChangedWithoutClients(t *testing.T) {
	hub := NewHub()
	// Must not block or panic with an empty client set.
	hub.EntityChanged("project", "deleted", map[string]int{"id": 1})
	if hub.ClientCount() != 0 {
		t.Errorf("expected no clients, got %d", hub.ClientCount())
	}
}
