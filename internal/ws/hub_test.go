package ws

import (
	"encoding/json"
	"errors"
	"testing"

	"jobboard/internal/config"
	"jobboard/internal/domain/notification"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTokens struct {
	claims jwt.Claims
	err    error
}

func (f fakeTokens) ValidateAccessToken(string) (jwt.Claims, error) {
	return f.claims, f.err
}

func newTestHub(tokens TokenValidator) *Hub {
	return NewHub(NewRegistry(), tokens, config.RealtimeConfig{SendBuffer: 2}, zap.NewNop(), nil)
}

func readFrame(t *testing.T, c *Client) map[string]any {
	t.Helper()
	select {
	case b := <-c.send:
		var out map[string]any
		require.NoError(t, json.Unmarshal(b, &out))
		return out
	default:
		t.Fatal("expected a queued frame")
		return nil
	}
}

func TestClient_PushQueuesEvent(t *testing.T) {
	h := newTestHub(nil)
	c := NewClient(h, nil, 2)

	require.NoError(t, c.Push(notification.Event{Message: "hello", Link: "/candidacies", Type: notification.TypeCandidacyStatusChanged}))

	frame := readFrame(t, c)
	require.Equal(t, "hello", frame["message"])
	require.Equal(t, "/candidacies", frame["link"])
}

func TestClient_PushFullBufferIsStale(t *testing.T) {
	h := newTestHub(nil)
	c := NewClient(h, nil, 1)

	require.NoError(t, c.Push(notification.Event{Message: "a"}))
	require.ErrorIs(t, c.Push(notification.Event{Message: "b"}), ErrConnectionStale)
}

func TestClient_PushAfterCloseIsStale(t *testing.T) {
	h := newTestHub(nil)
	c := NewClient(h, nil, 1)
	c.close()
	c.close()

	require.ErrorIs(t, c.Push(notification.Event{Message: "a"}), ErrConnectionStale)
}

func TestHub_RegisterFrameBindsUser(t *testing.T) {
	userID := uuid.New()
	h := newTestHub(fakeTokens{claims: jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeAccess}})
	c := NewClient(h, nil, 4)
	h.OnConnectionOpened(c)

	h.handleFrame(c, []byte(`{"type":"register","token":"t"}`))

	frame := readFrame(t, c)
	require.Equal(t, "registered", frame["type"])
	require.Equal(t, userID.String(), frame["user_id"])

	conn, ok := h.Lookup(userID)
	require.True(t, ok)
	require.Same(t, c, conn)
}

func TestHub_RegisterFrameRejectsBadToken(t *testing.T) {
	h := newTestHub(fakeTokens{err: errors.New("bad")})
	c := NewClient(h, nil, 4)

	h.handleFrame(c, []byte(`{"type":"register","token":"t"}`))

	frame := readFrame(t, c)
	require.Equal(t, "error", frame["type"])
	require.Equal(t, 0, h.registry.Len())
}

func TestHub_RegisterFrameRejectsRefreshToken(t *testing.T) {
	h := newTestHub(fakeTokens{err: jwt.ErrWrongTokenType})
	c := NewClient(h, nil, 4)

	h.handleFrame(c, []byte(`{"type":"register","token":"t"}`))

	require.Equal(t, "error", readFrame(t, c)["type"])
	require.Equal(t, 0, h.registry.Len())
}

func TestHub_UnknownAndMalformedFrames(t *testing.T) {
	h := newTestHub(nil)
	c := NewClient(h, nil, 4)

	h.handleFrame(c, []byte(`not json`))
	require.Equal(t, "error", readFrame(t, c)["type"])

	h.handleFrame(c, []byte(`{"type":"dance"}`))
	require.Equal(t, "error", readFrame(t, c)["type"])

	h.handleFrame(c, []byte(`{"type":"ping"}`))
	require.Equal(t, "pong", readFrame(t, c)["type"])
}

func TestHub_CloseUnregistersOnlyThatConnection(t *testing.T) {
	h := newTestHub(nil)
	u := uuid.New()
	older := NewClient(h, nil, 1)
	newer := NewClient(h, nil, 1)
	h.OnConnectionOpened(older)
	h.OnConnectionOpened(newer)

	h.OnClientRegistered(u, older)
	h.OnClientRegistered(u, newer)
	h.OnConnectionClosed(older)
	h.OnConnectionClosed(older)

	conn, ok := h.Lookup(u)
	require.True(t, ok)
	require.Same(t, newer, conn)
	require.Equal(t, 1, h.ClientCount())

	h.OnConnectionClosed(newer)
	_, ok = h.Lookup(u)
	require.False(t, ok)
	require.Equal(t, 0, h.ClientCount())
}

func TestHub_NotifyJobPostedDropsSlowClients(t *testing.T) {
	h := newTestHub(nil)
	fast := NewClient(h, nil, 4)
	slow := NewClient(h, nil, 1)
	h.OnConnectionOpened(fast)
	h.OnConnectionOpened(slow)
	require.NoError(t, slow.enqueue([]byte(`{}`)))

	jobID := uuid.New()
	h.NotifyJobPosted(jobID, " Backend Engineer ", "Acme")

	frame := readFrame(t, fast)
	require.Equal(t, "job_posted", frame["type"])
	require.Equal(t, jobID.String(), frame["job_id"])
	require.Equal(t, "Backend Engineer", frame["title"])
	require.Equal(t, 1, h.ClientCount())
}
