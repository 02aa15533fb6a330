package modules

import (
	"context"

	"github.com/riverqueue/river"

	"tracklite.io/tracklite/internal/api/handlers"
	"tracklite.io/tracklite/internal/service"
	"tracklite.io/tracklite/internal/transfer"
	"tracklite.io/tracklite/internal/usecase"
)

// TrackerModule wires the project tracking domain: entity use cases, phase
// selection, checklist synchronization and CSV transfer.
type TrackerModule struct {
	infra          *Infrastructure
	phaseSvc       *service.PhaseService
	projectUC      *usecase.ProjectUseCase
	solutionUC     *usecase.SolutionUseCase
	subcomponentUC *usecase.SubcomponentUseCase
	selectPhasesUC *usecase.SelectPhasesUseCase
	checklistUC    *usecase.ChecklistUseCase
	transferSvc    *transfer.Service
}

// NewTrackerModule creates the tracker module with explicit constructor wiring.
func NewTrackerModule(infra *Infrastructure) *TrackerModule {
	phaseSvc := service.NewPhaseService(infra.EntClient)
	projectUC := usecase.NewProjectUseCase(infra.EntClient, infra.Recorder).
		WithNotifier(infra.Hub)
	solutionUC := usecase.NewSolutionUseCase(infra.EntClient, phaseSvc, infra.Recorder).
		WithNotifier(infra.Hub)
	subcomponentUC := usecase.NewSubcomponentUseCase(infra.EntClient, phaseSvc, infra.Recorder).
		WithNotifier(infra.Hub)
	selectPhasesUC := usecase.NewSelectPhasesUseCase(infra.EntClient, phaseSvc, infra.Recorder).
		WithNotifier(infra.Hub)
	checklistUC := usecase.NewChecklistUseCase(infra.EntClient, phaseSvc, infra.Recorder).
		WithNotifier(infra.Hub)

	return &TrackerModule{
		infra:          infra,
		phaseSvc:       phaseSvc,
		projectUC:      projectUC,
		solutionUC:     solutionUC,
		subcomponentUC: subcomponentUC,
		selectPhasesUC: selectPhasesUC,
		checklistUC:    checklistUC,
		transferSvc:    transfer.NewService(solutionUC, subcomponentUC),
	}
}

func (m *TrackerModule) Name() string { return "tracker" }

func (m *TrackerModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.PhaseSvc = m.phaseSvc
	deps.ProjectUC = m.projectUC
	deps.SolutionUC = m.solutionUC
	deps.SubcomponentUC = m.subcomponentUC
	deps.SelectPhasesUC = m.selectPhasesUC
	deps.ChecklistUC = m.checklistUC
	deps.TransferSvc = m.transferSvc
}

func (m *TrackerModule) RegisterWorkers(*river.Workers) {}

func (m *TrackerModule) Shutdown(context.Context) error { return nil }

// SeedPhaseCatalog seeds the global phase catalog. Called once at startup.
func (m *TrackerModule) SeedPhaseCatalog(ctx context.Context) error {
	return service.SeedPhases(ctx, m.infra.EntClient)
}
