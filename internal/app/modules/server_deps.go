package modules

import (
	"tracklite.io/tracklite/internal/api/handlers"
	"tracklite.io/tracklite/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute
// explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient:  infra.EntClient,
		SessionCfg: cfg.Session,
		Hub:        infra.Hub,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
