// Package realtime implements the refresh notification channel: a WebSocket
// hub that tells connected clients which entity kind changed so they can
// re-fetch. Delivery is best-effort; a slow or dead client is dropped, never
// waited on.
package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/pkg/worker"
)

const (
	writeTimeout = 5 * time.Second
	pongTimeout  = 60 * time.Second
	pingInterval = 45 * time.Second
)

// RefreshMessage is the wire format pushed to clients.
type RefreshMessage struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
}

// client wraps one WebSocket connection. Writes are serialized through the
// client's own mutex since gorilla allows only one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(msg interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(msg)
}

func (c *client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

// Hub tracks connected clients and fans out refresh messages. Broadcasts run
// on the broadcast worker pool so a commit path never blocks on socket I/O.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	pools   *worker.Pools
}

// NewHub creates a new Hub.
func NewHub(pools *worker.Pools) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		pools:   pools,
	}
}

// Add registers a connection and starts its keepalive loop. The reader loop
// only consumes control frames; clients never send application messages.
func (h *Hub) Add(conn *websocket.Conn) {
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Debug("WebSocket client connected", zap.Int("clients", n))

	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	if err := h.pools.SubmitDetached("general", func(ctx context.Context) {
		h.readLoop(ctx, c)
	}); err != nil {
		logger.Warn("Failed to start WebSocket read loop", zap.Error(err))
		h.remove(c)
		return
	}
	if err := h.pools.SubmitDetached("general", func(ctx context.Context) {
		h.pingLoop(ctx, c)
	}); err != nil {
		logger.Warn("Failed to start WebSocket ping loop", zap.Error(err))
		h.remove(c)
	}
}

// EntityChanged schedules a refresh broadcast for one entity kind. It never
// blocks the caller; if the broadcast pool rejects the task the notification
// is dropped.
func (h *Hub) EntityChanged(kind string) {
	err := h.pools.SubmitDetached("broadcast", func(ctx context.Context) {
		h.broadcast(RefreshMessage{Type: "refresh", Entity: kind})
	})
	if err != nil {
		logger.Warn("Refresh broadcast dropped",
			zap.String("entity", kind),
			zap.Error(err),
		)
	}
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

func (h *Hub) broadcast(msg RefreshMessage) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(msg); err != nil {
			h.remove(c)
		}
	}
}

func (h *Hub) readLoop(ctx context.Context, c *client) {
	defer h.remove(c)
	for {
		if ctx.Err() != nil {
			return
		}
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) pingLoop(ctx context.Context, c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				h.remove(c)
				return
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		_ = c.conn.Close()
	}
	n := len(h.clients)
	h.mu.Unlock()
	logger.Debug("WebSocket client disconnected", zap.Int("clients", n))
}
