package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/internal/audit"
)

// ListChangeLog handles GET /changelog with optional entity_type, entity_id,
// user_id, request_id and limit query filters. Rows come back newest first.
func (s *Server) ListChangeLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	rows, err := audit.History(c.Request.Context(), s.client, audit.HistoryFilter{
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		UserID:     c.Query("user_id"),
		RequestID:  c.Query("request_id"),
		Limit:      limit,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toChangeLogResponses(rows))
}
