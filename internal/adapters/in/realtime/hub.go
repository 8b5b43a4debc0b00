// Package realtime pushes order lifecycle events to websocket clients.
//
// Every client joins the broadcast room on connect. Order and courier rooms are
// joined with join_pedido and join_motorizado after the subscription policy
// accepts the caller.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fooddelivery/internal/adapters/in/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	// DefaultSendBuffer is the per-client queue length. Events beyond it are dropped.
	DefaultSendBuffer = 32
)

// TokenVerifier turns a bearer token into an actor.
type TokenVerifier interface {
	Verify(raw string) (kernel.Actor, error)
}

// Authorizer decides which topic a join event maps to.
type Authorizer interface {
	AuthorizeOrder(ctx context.Context, actor kernel.Actor, orderID kernel.UUID) (string, error)
	AuthorizeCourier(actor kernel.Actor, courierID kernel.UUID) (string, error)
}

// Envelope is the shape of every frame in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

var _ ports.TopicPublisher = (*Hub)(nil)

// Hub tracks connected clients and the rooms they joined.
type Hub struct {
	verifier   TokenVerifier
	authorizer Authorizer
	logger     *slog.Logger
	upgrader   websocket.Upgrader
	sendBuffer int

	mu      sync.RWMutex
	rooms   map[string]map[*client]struct{}
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates a Hub. A sendBuffer below 1 selects DefaultSendBuffer.
func NewHub(verifier TokenVerifier, authorizer Authorizer, logger *slog.Logger, sendBuffer int) *Hub {
	if sendBuffer < 1 {
		sendBuffer = DefaultSendBuffer
	}
	return &Hub{
		verifier:   verifier,
		authorizer: authorizer,
		logger:     logger.With("component", "realtime"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		sendBuffer: sendBuffer,
		rooms:      make(map[string]map[*client]struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// Publish queues the event for every client in topic. A client whose queue is
// full misses the event.
func (h *Hub) Publish(_ context.Context, topic, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[topic] {
		select {
		case c.send <- frame:
		default:
			h.logger.Warn("client queue full, event dropped",
				"actor", c.actor.String(), "topic", topic, "event", event)
		}
	}
	return nil
}

// Subscribers reports how many clients are in topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[topic])
}

// ServeHTTP authenticates the caller with the bearer header or the token query
// parameter and upgrades the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := auth.BearerToken(r.Header.Get("Authorization"))
	if raw == "" {
		raw = r.URL.Query().Get("token")
	}
	actor, err := h.verifier.Verify(raw)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		hub:   h,
		conn:  conn,
		actor: actor,
		send:  make(chan []byte, h.sendBuffer),
		rooms: make(map[string]struct{}),
	}
	if !h.register(c) {
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump(context.WithoutCancel(r.Context()))
}

// Close disconnects every client. Later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.joinLocked(c, ports.BroadcastTopic)
	return true
}

func (h *Hub) join(c *client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	h.joinLocked(c, topic)
}

func (h *Hub) joinLocked(c *client, topic string) {
	room, ok := h.rooms[topic]
	if !ok {
		room = make(map[*client]struct{})
		h.rooms[topic] = room
	}
	room[c] = struct{}{}
	c.rooms[topic] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for topic := range c.rooms {
		delete(h.rooms[topic], c)
		if len(h.rooms[topic]) == 0 {
			delete(h.rooms, topic)
		}
	}
	close(c.send)
}
