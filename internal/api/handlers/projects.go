package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/ent/project"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/usecase"
)

type createProjectRequest struct {
	Name             string  `json:"name" binding:"required"`
	NameAbbreviation string  `json:"name_abbreviation" binding:"required"`
	Status           *string `json:"status"`
	Description      string  `json:"description"`
	SuccessCriteria  string  `json:"success_criteria"`
	Sponsor          string  `json:"sponsor"`
}

type updateProjectRequest struct {
	Name             *string `json:"name"`
	NameAbbreviation *string `json:"name_abbreviation"`
	Status           *string `json:"status"`
	Description      *string `json:"description"`
	SuccessCriteria  *string `json:"success_criteria"`
	Sponsor          *string `json:"sponsor"`
}

// ListProjects handles GET /projects.
func (s *Server) ListProjects(c *gin.Context) {
	projects, err := s.projectUC.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// CreateProject handles POST /projects.
func (s *Server) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseProjectStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created, err := s.projectUC.Create(c.Request.Context(), usecase.CreateProjectInput{
		Name:             req.Name,
		NameAbbreviation: req.NameAbbreviation,
		Status:           status,
		Description:      req.Description,
		SuccessCriteria:  req.SuccessCriteria,
		Sponsor:          req.Sponsor,
		UserID:           actor(c),
		RequestID:        requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(created))
}

// GetProject handles GET /projects/:id.
func (s *Server) GetProject(c *gin.Context) {
	p, err := s.projectUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(p))
}

// UpdateProject handles PATCH /projects/:id.
func (s *Server) UpdateProject(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}
	status, err := parseProjectStatus(req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	updated, err := s.projectUC.Update(c.Request.Context(), usecase.UpdateProjectInput{
		ProjectID:        c.Param("id"),
		Name:             req.Name,
		NameAbbreviation: req.NameAbbreviation,
		Status:           status,
		Description:      req.Description,
		SuccessCriteria:  req.SuccessCriteria,
		Sponsor:          req.Sponsor,
		UserID:           actor(c),
		RequestID:        requestID(c),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(updated))
}

// DeleteProject handles DELETE /projects/:id (soft delete).
func (s *Server) DeleteProject(c *gin.Context) {
	if err := s.projectUC.Delete(c.Request.Context(), c.Param("id"), actor(c), requestID(c)); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreProject handles POST /projects/:id/restore.
func (s *Server) RestoreProject(c *gin.Context) {
	restored, err := s.projectUC.Restore(c.Request.Context(), c.Param("id"), actor(c), requestID(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(restored))
}

func parseProjectStatus(v *string) (*project.Status, error) {
	if v == nil {
		return nil, nil
	}
	st := project.Status(*v)
	if err := project.StatusValidator(st); err != nil {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField, "invalid status: "+*v)
	}
	return &st, nil
}
