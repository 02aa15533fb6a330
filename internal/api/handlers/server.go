// Package handlers implements the REST surface of Tracklite.
//
// Handlers bind and validate requests, delegate to use cases, and push
// domain errors into the Gin error chain; the ErrorHandler middleware
// translates them into JSON responses.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/internal/api/middleware"
	"tracklite.io/tracklite/internal/auth"
	"tracklite.io/tracklite/internal/config"
	"tracklite.io/tracklite/internal/realtime"
	"tracklite.io/tracklite/internal/service"
	"tracklite.io/tracklite/internal/transfer"
	"tracklite.io/tracklite/internal/usecase"
)

// Server holds all API handlers.
type Server struct {
	client         *ent.Client
	sessionCfg     config.SessionConfig
	authSvc        *auth.Service
	phaseSvc       *service.PhaseService
	projectUC      *usecase.ProjectUseCase
	solutionUC     *usecase.SolutionUseCase
	subcomponentUC *usecase.SubcomponentUseCase
	selectPhasesUC *usecase.SelectPhasesUseCase
	checklistUC    *usecase.ChecklistUseCase
	transferSvc    *transfer.Service
	hub            *realtime.Hub
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient      *ent.Client
	SessionCfg     config.SessionConfig
	AuthSvc        *auth.Service
	PhaseSvc       *service.PhaseService
	ProjectUC      *usecase.ProjectUseCase
	SolutionUC     *usecase.SolutionUseCase
	SubcomponentUC *usecase.SubcomponentUseCase
	SelectPhasesUC *usecase.SelectPhasesUseCase
	ChecklistUC    *usecase.ChecklistUseCase
	TransferSvc    *transfer.Service
	Hub            *realtime.Hub
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:         deps.EntClient,
		sessionCfg:     deps.SessionCfg,
		authSvc:        deps.AuthSvc,
		phaseSvc:       deps.PhaseSvc,
		projectUC:      deps.ProjectUC,
		solutionUC:     deps.SolutionUC,
		subcomponentUC: deps.SubcomponentUC,
		selectPhasesUC: deps.SelectPhasesUC,
		checklistUC:    deps.ChecklistUC,
		transferSvc:    deps.TransferSvc,
		hub:            deps.Hub,
	}
}

// RegisterRoutes wires all API routes. The session middleware guards
// everything except login and the health probe.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Health)

	api := r.Group("/api/v1")
	api.POST("/auth/login", s.Login)

	authed := api.Group("")
	authed.Use(middleware.SessionAuth(s.authSvc, s.sessionCfg.Cookie))
	{
		authed.POST("/auth/logout", s.Logout)
		authed.GET("/auth/me", s.Me)

		authed.GET("/projects", s.ListProjects)
		authed.POST("/projects", s.CreateProject)
		authed.GET("/projects/:id", s.GetProject)
		authed.PATCH("/projects/:id", s.UpdateProject)
		authed.DELETE("/projects/:id", s.DeleteProject)
		authed.POST("/projects/:id/restore", s.RestoreProject)

		authed.GET("/solutions", s.ListSolutions)
		authed.POST("/solutions", s.CreateSolution)
		authed.GET("/solutions/:id", s.GetSolution)
		authed.PATCH("/solutions/:id", s.UpdateSolution)
		authed.DELETE("/solutions/:id", s.DeleteSolution)
		authed.POST("/solutions/:id/restore", s.RestoreSolution)

		authed.GET("/phases", s.ListPhaseCatalog)
		authed.GET("/solutions/:id/phases", s.ListSolutionPhases)
		authed.PUT("/solutions/:id/phases", s.SelectPhases)
		authed.POST("/solutions/:id/phases/enable-all", s.EnableAllPhases)

		authed.GET("/subcomponents", s.ListSubcomponents)
		authed.POST("/subcomponents", s.CreateSubcomponent)
		authed.GET("/subcomponents/:id", s.GetSubcomponent)
		authed.PATCH("/subcomponents/:id", s.UpdateSubcomponent)
		authed.DELETE("/subcomponents/:id", s.DeleteSubcomponent)
		authed.POST("/subcomponents/:id/restore", s.RestoreSubcomponent)

		authed.GET("/subcomponents/:id/checklist", s.GetChecklist)
		authed.PUT("/subcomponents/:id/checklist", s.UpdateChecklist)

		authed.GET("/changelog", s.ListChangeLog)

		authed.GET("/projects/:id/solutions/export", s.ExportSolutions)
		authed.POST("/projects/:id/solutions/import", s.ImportSolutions)
		authed.GET("/solutions/:id/subcomponents/export", s.ExportSubcomponents)
		authed.POST("/projects/:id/subcomponents/import", s.ImportSubcomponents)

		authed.GET("/ws", s.WebSocket)
	}
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
}

// actor extracts the authenticated user ID for audit attribution.
func actor(c *gin.Context) string {
	if uid := c.GetString("user_id"); uid != "" {
		return uid
	}
	return "anonymous"
}

// requestID pulls the tracing id injected by the RequestID middleware.
func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c.Request.Context())
}
