// Package live pushes reservation activity to connected staff over websockets.
package live

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/events"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
	sendBuffer = 64
)

// TypeSubscribed is sent once the connection is registered with the hub.
const TypeSubscribed = "subscribed"

// Message is the frame written to subscribers.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type client struct {
	userID          int64
	establishmentID int64
	conn            *websocket.Conn
	send            chan []byte
}

// Hub tracks subscribers per establishment. It implements events.Publisher so
// it can sit next to the broker publisher in an events.Fanout.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Subscribers reports how many connections follow an establishment.
func (h *Hub) Subscribers(establishmentID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.clients {
		if c.establishmentID == establishmentID {
			n++
		}
	}
	return n
}

// Publish relays reservation events to the subscribers of their
// establishment. Other payloads are ignored.
func (h *Hub) Publish(_ context.Context, routingKey string, payload any) error {
	evt, ok := payload.(events.ReservationEvent)
	if !ok {
		return nil
	}
	h.Broadcast(evt.EstablishmentID, Message{Type: routingKey, Payload: evt})
	return nil
}

// Broadcast never blocks: a subscriber with a full buffer misses the message.
func (h *Hub) Broadcast(establishmentID int64, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.establishmentID != establishmentID {
			continue
		}
		select {
		case c.send <- data:
		default:
		}
	}
}

// Serve registers the connection and blocks until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn, userID, establishmentID int64) {
	c := &client{
		userID:          userID,
		establishmentID: establishmentID,
		conn:            conn,
		send:            make(chan []byte, sendBuffer),
	}
	h.register(c)

	if data, err := json.Marshal(Message{Type: TypeSubscribed, Payload: map[string]int64{"establishment_id": establishmentID}}); err == nil {
		select {
		case c.send <- data:
		default:
		}
	}

	go h.writePump(c)
	h.readPump(c)
}

// readPump only drains control frames; subscribers have nothing to say.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
