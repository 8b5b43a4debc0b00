package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fooddelivery/internal/adapters/in/auth"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) AuthorizeOrder(ctx context.Context, actor kernel.Actor, orderID kernel.UUID) (string, error) {
	args := m.Called(ctx, actor, orderID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthorizer) AuthorizeCourier(actor kernel.Actor, courierID kernel.UUID) (string, error) {
	args := m.Called(actor, courierID)
	return args.String(0), args.Error(1)
}

type hubFixture struct {
	hub        *Hub
	server     *httptest.Server
	verifier   *auth.JWTVerifier
	authorizer *MockAuthorizer
}

func newHubFixture(t *testing.T) *hubFixture {
	t.Helper()

	verifier, err := auth.NewJWTVerifier("ws-secret")
	require.NoError(t, err)

	authorizer := &MockAuthorizer{}
	hub := NewHub(verifier, authorizer, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	server := httptest.NewServer(hub)

	t.Cleanup(func() {
		hub.Close()
		server.Close()
		authorizer.AssertExpectations(t)
	})

	return &hubFixture{hub: hub, server: server, verifier: verifier, authorizer: authorizer}
}

func (f *hubFixture) token(t *testing.T, actor kernel.Actor) string {
	t.Helper()
	token, err := f.verifier.Issue(actor, time.Hour)
	require.NoError(t, err)
	return token
}

func (f *hubFixture) dial(t *testing.T, header http.Header, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws" + query
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env Envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestHub_RejectsUnauthenticatedConnection(t *testing.T) {
	f := newHubFixture(t)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	f := newHubFixture(t)

	customer := f.dial(t, bearer(f.token(t, newActor(t, kernel.RoleCustomer))), "")
	courier := f.dial(t, nil, "?token="+f.token(t, newActor(t, kernel.RoleCourier)))

	require.Eventually(t, func() bool { return f.hub.Subscribers(ports.BroadcastTopic) == 2 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, f.hub.Publish(t.Context(), ports.BroadcastTopic, "pedido:asignado",
		map[string]string{"pedidoId": "o-1"}))

	for _, conn := range []*websocket.Conn{customer, courier} {
		env := readEnvelope(t, conn)
		assert.Equal(t, "pedido:asignado", env.Event)
		assert.JSONEq(t, `{"pedidoId":"o-1"}`, string(env.Data))
	}
}

func TestHub_JoinOrderRoom(t *testing.T) {
	f := newHubFixture(t)
	customer := newActor(t, kernel.RoleCustomer)
	orderID := kernel.NewUUID()
	topic := "order:" + orderID.String()

	f.authorizer.
		On("AuthorizeOrder", mock.Anything, mock.MatchedBy(func(a kernel.Actor) bool {
			return a.UserID().IsEqual(customer.UserID())
		}), orderID).
		Return(topic, nil).
		Once()

	token := f.token(t, customer)
	conn := f.dial(t, bearer(token), "")

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": EventJoinOrder,
		"data":  map[string]string{"token": token, "pedidoId": orderID.String()},
	}))
	require.Eventually(t, func() bool { return f.hub.Subscribers(topic) == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, f.hub.Publish(t.Context(), topic, "pedido:estado_actualizado",
		map[string]string{"pedidoId": orderID.String(), "estado": "delivered"}))

	env := readEnvelope(t, conn)
	assert.Equal(t, "pedido:estado_actualizado", env.Event)
	assert.Contains(t, string(env.Data), `"estado":"delivered"`)
}

func TestHub_JoinOrderForbidden(t *testing.T) {
	f := newHubFixture(t)
	stranger := newActor(t, kernel.RoleCustomer)
	orderID := kernel.NewUUID()

	f.authorizer.
		On("AuthorizeOrder", mock.Anything, mock.Anything, orderID).
		Return("", errs.NewForbiddenError(stranger.String(), "subscribe")).
		Once()

	conn := f.dial(t, bearer(f.token(t, stranger)), "")
	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": EventJoinOrder,
		"data":  map[string]string{"pedidoId": orderID.String()},
	}))

	env := readEnvelope(t, conn)
	require.Equal(t, EventError, env.Event)

	var msg ErrorMessage
	require.NoError(t, json.Unmarshal(env.Data, &msg))
	assert.Equal(t, EventJoinOrder, msg.Event)
	assert.Equal(t, "not allowed", msg.Message)
	assert.Zero(t, f.hub.Subscribers("order:"+orderID.String()))
}

func TestHub_JoinCourierRoom(t *testing.T) {
	f := newHubFixture(t)
	courier := newActor(t, kernel.RoleCourier)
	topic := "courier:" + courier.UserID().String()

	f.authorizer.
		On("AuthorizeCourier", mock.Anything, courier.UserID()).
		Return(topic, nil).
		Once()

	conn := f.dial(t, nil, "?token="+f.token(t, courier))
	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": EventJoinCourier,
		"data":  map[string]string{"motorizadoId": courier.UserID().String()},
	}))

	require.Eventually(t, func() bool { return f.hub.Subscribers(topic) == 1 },
		time.Second, 10*time.Millisecond)
}

func TestHub_JoinEventErrors(t *testing.T) {
	f := newHubFixture(t)
	conn := f.dial(t, bearer(f.token(t, newActor(t, kernel.RoleAdmin))), "")

	tests := []struct {
		name    string
		message map[string]any
		want    string
	}{
		{
			name:    "unknown event",
			message: map[string]any{"event": "leave_everything"},
			want:    "unknown event",
		},
		{
			name: "invalid order id",
			message: map[string]any{
				"event": EventJoinOrder,
				"data":  map[string]string{"pedidoId": "nope"},
			},
			want: "pedidoId is invalid",
		},
		{
			name: "invalid token",
			message: map[string]any{
				"event": EventJoinCourier,
				"data":  map[string]string{"token": "garbage", "motorizadoId": kernel.NewUUID().String()},
			},
			want: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteJSON(tt.message))

			env := readEnvelope(t, conn)
			require.Equal(t, EventError, env.Event)

			var msg ErrorMessage
			require.NoError(t, json.Unmarshal(env.Data, &msg))
			assert.Equal(t, tt.want, msg.Message)
		})
	}
}

func TestHub_Publish_DropsWhenQueueIsFull(t *testing.T) {
	hub := NewHub(nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), 1)
	c := &client{hub: hub, send: make(chan []byte, 1), rooms: make(map[string]struct{})}
	require.True(t, hub.register(c))

	require.NoError(t, hub.Publish(t.Context(), ports.BroadcastTopic, "a", nil))
	require.NoError(t, hub.Publish(t.Context(), ports.BroadcastTopic, "b", nil))

	require.Len(t, c.send, 1)
	var env Envelope
	require.NoError(t, json.Unmarshal(<-c.send, &env))
	assert.Equal(t, "a", env.Event)

	hub.unregister(c)
	assert.Zero(t, hub.Subscribers(ports.BroadcastTopic))
	_, open := <-c.send
	assert.False(t, open)
}

func TestHub_Publish_UnknownTopicIsNoop(t *testing.T) {
	hub := NewHub(nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	assert.NoError(t, hub.Publish(t.Context(), "order:nobody", "pedido:asignado", nil))
}
