package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/ent/solution"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
	"tracklite.io/tracklite/internal/usecase"
)

type createSolutionRequest struct {
	ProjectID       string     `json:"project_id" binding:"required"`
	Name            string     `json:"name" binding:"required"`
	Version         string     `json:"version" binding:"required"`
	Status          *string    `json:"status"`
	Priority        *int       `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	Description     string     `json:"description"`
	SuccessCriteria string     `json:"success_criteria"`
	Owner           string     `json:"owner"`
	Assignee        string     `json:"assignee"`
	Approver        string     `json:"approver"`
	KeyStakeholder  string     `json:"key_stakeholder"`
	Blockers        string     `json:"blockers"`
	Risks           string     `json:"risks"`
}

// updateSolutionRequest is a partial update. Absent fields stay untouched;
// the nillable due_date and current_phase fields use explicit clear flags.
// Supplying RAG fields drives the manual/auto transition.
type updateSolutionRequest struct {
	Name              *string    `json:"name"`
	Version           *string    `json:"version"`
	Status            *string    `json:"status"`
	Priority          *int       `json:"priority"`
	DueDate           *time.Time `json:"due_date"`
	ClearDueDate      bool       `json:"clear_due_date"`
	CurrentPhase      *string    `json:"current_phase"`
	ClearCurrentPhase bool       `json:"clear_current_phase"`
	RagSource         *string    `json:"rag_source"`
	RagStatus         *string    `json:"rag_status"`
	RagReason         *string    `json:"rag_reason"`
	Description       *string    `json:"description"`
	SuccessCriteria   *string    `json:"success_criteria"`
	Owner             *string    `json:"owner"`
	Assignee          *string    `json:"assignee"`
	Approver          *string    `json:"approver"`
	KeyStakeholder    *string    `json:"key_stakeholder"`
	Blockers          *string    `json:"blockers"`
	Risks             *string    `json:"risks"`
}

// ListSolutions handles GET /solutions?project_id=.
func (s *Server) ListSolutions(c *gin.Context) {
	sols, err := s.solutionUC.List(c.Request.Context(), c.Query("project_id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionResponses(sols))
}

// CreateSolution handles POST /solutions.
func (s *Server) CreateSolution(c *gin.Context) {
	var req createSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseSolutionStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := s.solutionUC.Create(c.Request.Context(), usecase.CreateSolutionInput{
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		Version:         req.Version,
		Status:          status,
		Priority:        req.Priority,
		DueDate:         req.DueDate,
		Description:     req.Description,
		SuccessCriteria: req.SuccessCriteria,
		Owner:           req.Owner,
		Assignee:        req.Assignee,
		Approver:        req.Approver,
		KeyStakeholder:  req.KeyStakeholder,
		Blockers:        req.Blockers,
		Risks:           req.Risks,
		UserID:          actor(c),
		RequestID:       requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toSolutionResponse(created))
}

// GetSolution handles GET /solutions/:id.
func (s *Server) GetSolution(c *gin.Context) {
	sol, err := s.solutionUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionResponse(sol))
}

// UpdateSolution handles PATCH /solutions/:id.
func (s *Server) UpdateSolution(c *gin.Context) {
	var req updateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseSolutionStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	rag, err := parseRagFields(req.RagSource, req.RagStatus, req.RagReason)
	if err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := s.solutionUC.Update(c.Request.Context(), usecase.UpdateSolutionInput{
		SolutionID:        c.Param("id"),
		Name:              req.Name,
		Version:           req.Version,
		Status:            status,
		Priority:          req.Priority,
		DueDate:           req.DueDate,
		ClearDueDate:      req.ClearDueDate,
		CurrentPhase:      req.CurrentPhase,
		ClearCurrentPhase: req.ClearCurrentPhase,
		Rag:               rag,
		Description:       req.Description,
		SuccessCriteria:   req.SuccessCriteria,
		Owner:             req.Owner,
		Assignee:          req.Assignee,
		Approver:          req.Approver,
		KeyStakeholder:    req.KeyStakeholder,
		Blockers:          req.Blockers,
		Risks:             req.Risks,
		UserID:            actor(c),
		RequestID:         requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionResponse(updated))
}

// DeleteSolution handles DELETE /solutions/:id (soft delete).
func (s *Server) DeleteSolution(c *gin.Context) {
	if err := s.solutionUC.Delete(c.Request.Context(), c.Param("id"), actor(c), requestID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreSolution handles POST /solutions/:id/restore.
func (s *Server) RestoreSolution(c *gin.Context) {
	restored, err := s.solutionUC.Restore(c.Request.Context(), c.Param("id"), actor(c), requestID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toSolutionResponse(restored))
}

func parseSolutionStatus(v *string) (*solution.Status, error) {
	if v == nil {
		return nil, nil
	}
	st := solution.Status(*v)
	if err := solution.StatusValidator(st); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid status: "+*v)
	}
	return &st, nil
}

func parseRagFields(source, status, reason *string) (service.RagFields, error) {
	var f service.RagFields
	if source != nil {
		src := solution.RagSource(*source)
		if err := solution.RagSourceValidator(src); err != nil {
			return f, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid rag_source: "+*source)
		}
		f.Source = &src
	}
	if status != nil {
		st := solution.RagStatus(*status)
		if err := solution.RagStatusValidator(st); err != nil {
			return f, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid rag_status: "+*status)
		}
		f.Status = &st
	}
	f.Reason = reason
	return f, nil
}
