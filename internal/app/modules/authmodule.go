package modules

import (
	"context"

	"github.com/riverqueue/river"

	"tracklite.io/tracklite/internal/api/handlers"
	"tracklite.io/tracklite/internal/auth"
	"tracklite.io/tracklite/internal/jobs"
)

// AuthModule wires session authentication and its cleanup worker.
type AuthModule struct {
	infra   *Infrastructure
	authSvc *auth.Service
}

// NewAuthModule creates the auth module.
func NewAuthModule(infra *Infrastructure) *AuthModule {
	return &AuthModule{
		infra: infra,
		authSvc: auth.NewService(
			infra.EntClient,
			infra.Config.Session,
			infra.Config.Security.SessionSecret,
		),
	}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.AuthSvc = m.authSvc
	deps.SessionCfg = m.infra.Config.Session
}

func (m *AuthModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewSessionCleanupWorker(m.authSvc, jobs.DefaultSessionRetention))
}

func (m *AuthModule) Shutdown(context.Context) error { return nil }

// AuthService exposes the session service for router middleware wiring.
func (m *AuthModule) AuthService() *auth.Service { return m.authSvc }
