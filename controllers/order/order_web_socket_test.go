package orderControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/arjunmenon-dev/storefront-api/models"
)

func TestBroadcast_DropsDeadConnections(t *testing.T) {
	captured := make(chan *websocket.Conn, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		captured <- conn
	}))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	dial := func() *websocket.Conn {
		c, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("dial failed: %v", err)
		}
		return c
	}

	healthyClient := dial()
	defer healthyClient.Close()
	healthy := <-captured

	deadClient := dial()
	defer deadClient.Close()
	dead := <-captured

	wsMu.Lock()
	wsClients[healthy] = true
	wsClients[dead] = true
	wsMu.Unlock()
	t.Cleanup(func() {
		wsMu.Lock()
		delete(wsClients, healthy)
		delete(wsClients, dead)
		wsMu.Unlock()
	})

	// Kill the server side of one connection so its next write fails
	dead.Close()

	broadcastNewOrder(models.Order{ID: 7, Status: models.OrderStatusPlaced})

	wsMu.Lock()
	_, healthyKept := wsClients[healthy]
	_, deadKept := wsClients[dead]
	wsMu.Unlock()
	if !healthyKept {
		t.Error("healthy connection was dropped")
	}
	if deadKept {
		t.Error("dead connection still registered after failed write")
	}

	_, msg, err := healthyClient.ReadMessage()
	if err != nil {
		t.Fatalf("healthy client did not receive broadcast: %v", err)
	}
	var got models.Order
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("broadcast payload not an order: %v", err)
	}
	if got.ID != 7 || got.Status != models.OrderStatusPlaced {
		t.Errorf("unexpected broadcast payload: %+v", got)
	}
}
