// Package app is the composition root; bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"tracklite.io/tracklite/internal/api/handlers"
	"tracklite.io/tracklite/internal/app/modules"
	"tracklite.io/tracklite/internal/config"
	"tracklite.io/tracklite/internal/infrastructure"
	"tracklite.io/tracklite/internal/jobs"
	"tracklite.io/tracklite/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	authModule := modules.NewAuthModule(infra)
	trackerModule := modules.NewTrackerModule(infra)
	allModules := []modules.Module{authModule, trackerModule}

	workers := river.NewWorkers()
	for _, mod := range allModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Session retention cleanup: run daily and once on startup so stale
	// session rows never pile up.
	if infra.RiverClient != nil {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(24*time.Hour),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.SessionCleanupArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	// The phase catalog is a fixed seed list; idempotent on restart.
	if err := trackerModule.SeedPhaseCatalog(ctx); err != nil {
		infra.Close()
		return nil, fmt.Errorf("seed phase catalog: %w", err)
	}

	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
