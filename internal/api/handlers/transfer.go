package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportSolutions handles GET /projects/:id/solutions/export.
func (s *Server) ExportSolutions(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="solutions.csv"`)
	if err := s.transferSvc.ExportSolutions(c.Request.Context(), c.Writer, c.Param("id")); err != nil {
		_ = c.Error(err)
	}
}

// ImportSolutions handles POST /projects/:id/solutions/import. The body is
// either a multipart "file" field or raw CSV.
func (s *Server) ImportSolutions(c *gin.Context) {
	body, err := csvBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer body.close()

	report, err := s.transferSvc.ImportSolutions(c.Request.Context(), body.reader, c.Param("id"), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// ExportSubcomponents handles GET /solutions/:id/subcomponents/export.
func (s *Server) ExportSubcomponents(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="subcomponents.csv"`)
	if err := s.transferSvc.ExportSubcomponents(c.Request.Context(), c.Writer, c.Param("id")); err != nil {
		_ = c.Error(err)
	}
}

// ImportSubcomponents handles POST /projects/:id/subcomponents/import.
func (s *Server) ImportSubcomponents(c *gin.Context) {
	body, err := csvBody(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer body.close()

	report, err := s.transferSvc.ImportSubcomponents(c.Request.Context(), body.reader, c.Param("id"), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}
