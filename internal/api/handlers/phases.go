package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/usecase"
)

type selectPhasesRequest struct {
	Phases []usecase.PhaseSelection `json:"phases" binding:"required"`
}

// ListPhaseCatalog handles GET /phases.
func (s *Server) ListPhaseCatalog(c *gin.Context) {
	phases, err := s.phaseSvc.ListCatalog(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toPhaseResponses(phases))
}

// ListSolutionPhases handles GET /solutions/:id/phases. Rows come back in
// effective order.
func (s *Server) ListSolutionPhases(c *gin.Context) {
	if _, err := s.solutionUC.Get(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	sps, err := s.phaseSvc.ListSolutionPhases(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionPhaseResponses(sps))
}

// SelectPhases handles PUT /solutions/:id/phases. The batch is atomic; one
// unknown phase id rejects the whole request.
func (s *Server) SelectPhases(c *gin.Context) {
	var req selectPhasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	sps, err := s.selectPhasesUC.Execute(c.Request.Context(), usecase.SelectPhasesInput{
		SolutionID: c.Param("id"),
		UserID:     actor(c),
		RequestID:  requestID(c),
		Items:      req.Phases,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionPhaseResponses(sps))
}

// EnableAllPhases handles POST /solutions/:id/phases/enable-all.
func (s *Server) EnableAllPhases(c *gin.Context) {
	sps, err := s.selectPhasesUC.EnableAll(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionPhaseResponses(sps))
}
