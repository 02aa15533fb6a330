package usecase

import (
	"context"
	"testing"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/internal/audit"
	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/service"
	"tracklite.io/tracklite/internal/testutil"
)

func init() {
	_ = logger.Init("error", "json")
}

// testEnv bundles a schema-isolated Ent client with the use cases under test.
type testEnv struct {
	client         *ent.Client
	phaseSvc       *service.PhaseService
	projectUC      *ProjectUseCase
	solutionUC     *SolutionUseCase
	subcomponentUC *SubcomponentUseCase
	selectPhasesUC *SelectPhasesUseCase
	checklistUC    *ChecklistUseCase
}

func newTestEnv(t *testing.T, prefix string) *testEnv {
	t.Helper()

	client := testutil.OpenEntPostgres(t, prefix)
	if err := service.SeedPhases(context.Background(), client); err != nil {
		t.Fatalf("seed phases: %v", err)
	}

	phaseSvc := service.NewPhaseService(client)
	recorder := audit.NewRecorder()
	return &testEnv{
		client:         client,
		phaseSvc:       phaseSvc,
		projectUC:      NewProjectUseCase(client, recorder),
		solutionUC:     NewSolutionUseCase(client, phaseSvc, recorder),
		subcomponentUC: NewSubcomponentUseCase(client, phaseSvc, recorder),
		selectPhasesUC: NewSelectPhasesUseCase(client, phaseSvc, recorder),
		checklistUC:    NewChecklistUseCase(client, phaseSvc, recorder),
	}
}

func (e *testEnv) mustCreateProject(t *testing.T, name string) *ent.Project {
	t.Helper()
	p, err := e.projectUC.Create(context.Background(), CreateProjectInput{
		Name:             name,
		NameAbbreviation: "TEST",
		UserID:           "user-1",
		RequestID:        "req-setup",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func (e *testEnv) mustCreateSolution(t *testing.T, projectID, name string) *ent.Solution {
	t.Helper()
	s, err := e.solutionUC.Create(context.Background(), CreateSolutionInput{
		ProjectID: projectID,
		Name:      name,
		Version:   "1.0",
		UserID:    "user-1",
		RequestID: "req-setup",
	})
	if err != nil {
		t.Fatalf("create solution: %v", err)
	}
	return s
}

func (e *testEnv) mustCreateSubcomponent(t *testing.T, solutionID, name string) *ent.Subcomponent {
	t.Helper()
	sub, err := e.subcomponentUC.Create(context.Background(), CreateSubcomponentInput{
		SolutionID: solutionID,
		Name:       name,
		UserID:     "user-1",
		RequestID:  "req-setup",
	})
	if err != nil {
		t.Fatalf("create subcomponent: %v", err)
	}
	return sub
}
