package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/ent/subcomponent"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/usecase"
)

type createSubcomponentRequest struct {
	SolutionID   string     `json:"solution_id" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Status       *string    `json:"status"`
	Priority     *int       `json:"priority"`
	DueDate      *time.Time `json:"due_date"`
	SubPhase     *string    `json:"sub_phase"`
	Description  string     `json:"description"`
	Notes        string     `json:"notes"`
	Category     string     `json:"category"`
	Dependencies string     `json:"dependencies"`
	WorkEstimate *float64   `json:"work_estimate"`
	Owner        string     `json:"owner"`
	Assignee     string     `json:"assignee"`
	Approver     string     `json:"approver"`
}

type updateSubcomponentRequest struct {
	Name          *string    `json:"name"`
	Status        *string    `json:"status"`
	Priority      *int       `json:"priority"`
	DueDate       *time.Time `json:"due_date"`
	ClearDueDate  bool       `json:"clear_due_date"`
	SubPhase      *string    `json:"sub_phase"`
	ClearSubPhase bool       `json:"clear_sub_phase"`
	Description   *string    `json:"description"`
	Notes         *string    `json:"notes"`
	Category      *string    `json:"category"`
	Dependencies  *string    `json:"dependencies"`
	WorkEstimate  *float64   `json:"work_estimate"`
	Owner         *string    `json:"owner"`
	Assignee      *string    `json:"assignee"`
	Approver      *string    `json:"approver"`
}

// ListSubcomponents handles GET /subcomponents?solution_id=.
func (s *Server) ListSubcomponents(c *gin.Context) {
	subs, err := s.subcomponentUC.List(c.Request.Context(), c.Query("solution_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSubcomponentResponses(subs))
}

// CreateSubcomponent handles POST /subcomponents.
func (s *Server) CreateSubcomponent(c *gin.Context) {
	var req createSubcomponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseSubcomponentStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := s.subcomponentUC.Create(c.Request.Context(), usecase.CreateSubcomponentInput{
		SolutionID:   req.SolutionID,
		Name:         req.Name,
		Status:       status,
		Priority:     req.Priority,
		DueDate:      req.DueDate,
		SubPhase:     req.SubPhase,
		Description:  req.Description,
		Notes:        req.Notes,
		Category:     req.Category,
		Dependencies: req.Dependencies,
		WorkEstimate: req.WorkEstimate,
		Owner:        req.Owner,
		Assignee:     req.Assignee,
		Approver:     req.Approver,
		UserID:       actor(c),
		RequestID:    requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toSubcomponentResponse(created))
}

// GetSubcomponent handles GET /subcomponents/:id.
func (s *Server) GetSubcomponent(c *gin.Context) {
	sub, err := s.subcomponentUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSubcomponentResponse(sub))
}

// UpdateSubcomponent handles PATCH /subcomponents/:id.
func (s *Server) UpdateSubcomponent(c *gin.Context) {
	var req updateSubcomponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseSubcomponentStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := s.subcomponentUC.Update(c.Request.Context(), usecase.UpdateSubcomponentInput{
		SubcomponentID: c.Param("id"),
		Name:           req.Name,
		Status:         status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
		ClearDueDate:   req.ClearDueDate,
		SubPhase:       req.SubPhase,
		ClearSubPhase:  req.ClearSubPhase,
		Description:    req.Description,
		Notes:          req.Notes,
		Category:       req.Category,
		Dependencies:   req.Dependencies,
		WorkEstimate:   req.WorkEstimate,
		Owner:          req.Owner,
		Assignee:       req.Assignee,
		Approver:       req.Approver,
		UserID:         actor(c),
		RequestID:      requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSubcomponentResponse(updated))
}

// DeleteSubcomponent handles DELETE /subcomponents/:id (soft delete).
func (s *Server) DeleteSubcomponent(c *gin.Context) {
	if err := s.subcomponentUC.Delete(c.Request.Context(), c.Param("id"), actor(c), requestID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreSubcomponent handles POST /subcomponents/:id/restore.
func (s *Server) RestoreSubcomponent(c *gin.Context) {
	restored, err := s.subcomponentUC.Restore(c.Request.Context(), c.Param("id"), actor(c), requestID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSubcomponentResponse(restored))
}

func parseSubcomponentStatus(v *string) (*subcomponent.Status, error) {
	if v == nil {
		return nil, nil
	}
	st := subcomponent.Status(*v)
	if err := subcomponent.StatusValidator(st); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid status: "+*v)
	}
	return &st, nil
}
