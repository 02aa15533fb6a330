package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/usecase"
)

type checklistUpdateRequest struct {
	Items []usecase.ChecklistItemUpdate `json:"items" binding:"required"`
}

// GetChecklist handles GET /subcomponents/:id/checklist. The checklist is
// reconciled against the solution's enabled phases before it is returned.
func (s *Server) GetChecklist(c *gin.Context) {
	rows, err := s.checklistUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toChecklistResponses(rows))
}

// UpdateChecklist handles PUT /subcomponents/:id/checklist. The batch either
// applies completely or not at all.
func (s *Server) UpdateChecklist(c *gin.Context) {
	var req checklistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	rows, err := s.checklistUC.BulkUpdate(c.Request.Context(), usecase.ChecklistUpdateInput{
		SubcomponentID: c.Param("id"),
		UserID:         actor(c),
		RequestID:      requestID(c),
		Items:          req.Items,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toChecklistResponses(rows))
}
