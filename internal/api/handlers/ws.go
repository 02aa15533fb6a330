package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"tracklite.io/tracklite/internal/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS middleware in front of the router;
	// the session middleware already authenticated this request.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocket handles GET /ws: upgrades the connection and hands it to the
// refresh hub.
func (s *Server) WebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	s.hub.Add(conn)
}
