package ws

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/domain/notification"
	"jobboard/internal/metrics"
	"jobboard/internal/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (jwt.Claims, error)
}

// Hub owns the open connections and the presence registry. The transport
// calls the OnConnection* hooks; the notification dispatcher calls Lookup.
type Hub struct {
	registry *Registry
	tokens   TokenValidator
	cfg      config.RealtimeConfig
	logger   *zap.Logger
	metrics  *metrics.Metrics

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub(registry *Registry, tokens TokenValidator, cfg config.RealtimeConfig, logger *zap.Logger, m *metrics.Metrics) *Hub {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 16
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	return &Hub{
		registry: registry,
		tokens:   tokens,
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		clients:  make(map[*Client]struct{}),
	}
}

func (h *Hub) OnConnectionOpened(c *Client) {
	if h == nil || c == nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()

	h.metrics.SetRealtimeConnections(total)
	h.logger.Debug("ws connected", zap.Int("total_clients", total))
}

func (h *Hub) OnClientRegistered(userID uuid.UUID, c *Client) {
	if h == nil || c == nil || userID == uuid.Nil {
		return
	}
	h.registry.Register(userID, c)
	h.metrics.SetRegisteredUsers(h.registry.Len())
	h.logger.Debug("ws client registered", zap.String("user_id", userID.String()))
}

// OnConnectionClosed is safe to call more than once for the same client.
func (h *Hub) OnConnectionClosed(c *Client) {
	if h == nil || c == nil {
		return
	}
	h.mu.Lock()
	_, known := h.clients[c]
	delete(h.clients, c)
	total := len(h.clients)
	h.mu.Unlock()

	removed := h.registry.Unregister(c)
	c.close()

	if !known && removed == 0 {
		return
	}
	h.metrics.SetRealtimeConnections(total)
	h.metrics.SetRegisteredUsers(h.registry.Len())
	h.logger.Debug("ws disconnected", zap.Int("total_clients", total), zap.Int("unregistered", removed))
}

func (h *Hub) Lookup(userID uuid.UUID) (notification.Connection, bool) {
	if h == nil {
		return nil, false
	}
	return h.registry.Lookup(userID)
}

// Broadcast queues message on every open connection. Clients whose buffer
// is full are dropped.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	dropped := 0
	for _, c := range snapshot {
		if err := c.enqueue(message); err != nil {
			h.OnConnectionClosed(c)
			dropped++
		}
	}
	h.logger.Debug("ws broadcast", zap.Int("clients", len(snapshot)), zap.Int("dropped", dropped))
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

type inboundFrame struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

type controlFrame struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

func (h *Hub) handleFrame(c *Client, data []byte) {
	var in inboundFrame
	if err := json.Unmarshal(data, &in); err != nil {
		_ = c.enqueueJSON(controlFrame{Type: "error", Message: "malformed frame"})
		return
	}

	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case "register":
		h.register(c, in.Token)
	case "ping":
		_ = c.enqueueJSON(controlFrame{Type: "pong"})
	default:
		_ = c.enqueueJSON(controlFrame{Type: "error", Message: "unsupported frame"})
	}
}

func (h *Hub) register(c *Client, token string) {
	token = strings.TrimSpace(token)
	if h.tokens == nil || token == "" {
		_ = c.enqueueJSON(controlFrame{Type: "error", Message: "unauthorized"})
		return
	}

	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil || claims.UserID == uuid.Nil {
		_ = c.enqueueJSON(controlFrame{Type: "error", Message: "unauthorized"})
		return
	}

	h.OnClientRegistered(claims.UserID, c)
	_ = c.enqueueJSON(controlFrame{Type: "registered", UserID: claims.UserID.String()})
}
