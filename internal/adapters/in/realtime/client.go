package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/gorilla/websocket"
)

// Client events.
const (
	EventJoinOrder   = "join_pedido"
	EventJoinCourier = "join_motorizado"
	EventError       = "error"
)

type joinOrderRequest struct {
	Token   string `json:"token"`
	OrderID string `json:"pedidoId"`
}

type joinCourierRequest struct {
	Token     string `json:"token"`
	CourierID string `json:"motorizadoId"`
}

// ErrorMessage is the data of an error event.
type ErrorMessage struct {
	Event   string `json:"event,omitempty"`
	Message string `json:"message"`
}

type client struct {
	hub   *Hub
	conn  *websocket.Conn
	actor kernel.Actor
	send  chan []byte

	// guarded by hub.mu
	rooms map[string]struct{}
}

func (c *client) readPump(ctx context.Context) {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Envelope
		if err := c.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				c.reply("", "malformed message")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("websocket closed", "actor", c.actor.String(), "error", err)
			}
			return
		}
		c.handle(ctx, msg)
	}
}

func (c *client) handle(ctx context.Context, msg Envelope) {
	switch msg.Event {
	case EventJoinOrder:
		var req joinOrderRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.reply(msg.Event, "malformed data")
			return
		}
		actor, err := c.actorFor(req.Token)
		if err != nil {
			c.reply(msg.Event, "invalid token")
			return
		}
		orderID, err := kernel.UUIDFromString(strings.TrimSpace(req.OrderID))
		if err != nil {
			c.reply(msg.Event, "pedidoId is invalid")
			return
		}
		topic, err := c.hub.authorizer.AuthorizeOrder(ctx, actor, orderID)
		if err != nil {
			c.reply(msg.Event, joinFailure(err))
			return
		}
		c.hub.join(c, topic)

	case EventJoinCourier:
		var req joinCourierRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.reply(msg.Event, "malformed data")
			return
		}
		actor, err := c.actorFor(req.Token)
		if err != nil {
			c.reply(msg.Event, "invalid token")
			return
		}
		courierID, err := kernel.UUIDFromString(strings.TrimSpace(req.CourierID))
		if err != nil {
			c.reply(msg.Event, "motorizadoId is invalid")
			return
		}
		topic, err := c.hub.authorizer.AuthorizeCourier(actor, courierID)
		if err != nil {
			c.reply(msg.Event, joinFailure(err))
			return
		}
		c.hub.join(c, topic)

	default:
		c.reply(msg.Event, "unknown event")
	}
}

// actorFor verifies the token carried by a join event. Without one the
// connection's actor applies.
func (c *client) actorFor(token string) (kernel.Actor, error) {
	if strings.TrimSpace(token) == "" {
		return c.actor, nil
	}
	return c.hub.verifier.Verify(token)
}

func joinFailure(err error) string {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return "not allowed"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not found"
	default:
		return "subscription failed"
	}
}

// reply queues an error event for this client only.
func (c *client) reply(event, message string) {
	data, _ := json.Marshal(ErrorMessage{Event: event, Message: message})
	frame, _ := json.Marshal(Envelope{Event: EventError, Data: data})

	c.hub.mu.RLock()
	defer c.hub.mu.RUnlock()
	if _, ok := c.hub.clients[c]; !ok {
		return
	}
	select {
	case c.send <- frame:
	default:
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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
