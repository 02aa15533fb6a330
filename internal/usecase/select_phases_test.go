package usecase

import (
	"context"
	"testing"

	"tracklite.io/tracklite/ent/solution"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
)

func TestSelectPhases_UnknownPhaseRejectsWholeBatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "select_phases_atomic")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Atomic Batch")
	sol := env.mustCreateSolution(t, p.ID, "Payments")

	before, err := env.phaseSvc.ListSolutionPhases(ctx, sol.ID)
	if err != nil {
		t.Fatalf("list phases: %v", err)
	}

	_, err = env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-1",
		Items: []PhaseSelection{
			{PhaseID: "backlog", IsEnabled: false},
			{PhaseID: "no_such_phase", IsEnabled: true},
		},
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodePhaseUnknown {
		t.Fatalf("expected %s, got %v", apperrors.CodePhaseUnknown, err)
	}

	// The valid entry before the bad one must not have been applied.
	after, err := env.phaseSvc.ListSolutionPhases(ctx, sol.ID)
	if err != nil {
		t.Fatalf("list phases after rejected batch: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("row count changed: %d -> %d", len(before), len(after))
	}
	for i, sp := range after {
		if sp.IsEnabled != before[i].IsEnabled {
			t.Fatalf("phase %s enabled state changed by rejected batch", sp.PhaseID)
		}
	}
}

func TestSelectPhases_DisablingCurrentPhaseClearsIt(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "select_phases_current")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Current Phase")
	sol := env.mustCreateSolution(t, p.ID, "Reporting")

	designID := "design"
	if _, err := env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID:   sol.ID,
		CurrentPhase: &designID,
		UserID:       "user-1",
		RequestID:    "req-1",
	}); err != nil {
		t.Fatalf("set current phase: %v", err)
	}

	if _, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-2",
		Items:      []PhaseSelection{{PhaseID: designID, IsEnabled: false}},
	}); err != nil {
		t.Fatalf("disable current phase: %v", err)
	}

	got, err := env.solutionUC.Get(ctx, sol.ID)
	if err != nil {
		t.Fatalf("reload solution: %v", err)
	}
	if got.CurrentPhase != nil {
		t.Fatalf("current_phase = %q, want cleared", *got.CurrentPhase)
	}
}

func TestSelectPhases_SequenceOverrideReorders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "select_phases_order")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Ordering")
	sol := env.mustCreateSolution(t, p.ID, "Ingest")

	override := 0
	rows, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-1",
		Items:      []PhaseSelection{{PhaseID: "go_live", IsEnabled: true, SequenceOverride: &override}},
	})
	if err != nil {
		t.Fatalf("set override: %v", err)
	}
	if rows[0].PhaseID != "go_live" {
		t.Fatalf("first phase = %s, want go_live", rows[0].PhaseID)
	}

	// Omitting the override in a later batch clears it.
	rows, err = env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-2",
		Items:      []PhaseSelection{{PhaseID: "go_live", IsEnabled: true}},
	})
	if err != nil {
		t.Fatalf("clear override: %v", err)
	}
	if rows[0].PhaseID != "backlog" {
		t.Fatalf("first phase after clearing override = %s, want backlog", rows[0].PhaseID)
	}
	for _, sp := range rows {
		if sp.PhaseID == "go_live" && sp.SequenceOverride != nil {
			t.Fatalf("go_live override not cleared: %d", *sp.SequenceOverride)
		}
	}
}

func TestEnableAll_Converges(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "enable_all")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Enable All")
	sol := env.mustCreateSolution(t, p.ID, "Search")

	override := 3
	if _, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-1",
		Items: []PhaseSelection{
			{PhaseID: "backlog", IsEnabled: false},
			{PhaseID: "design", IsEnabled: true, SequenceOverride: &override},
		},
	}); err != nil {
		t.Fatalf("customize phases: %v", err)
	}

	for i := 0; i < 2; i++ {
		rows, err := env.selectPhasesUC.EnableAll(ctx, sol.ID, "user-1")
		if err != nil {
			t.Fatalf("enable all (round %d): %v", i+1, err)
		}
		if len(rows) != len(service.PhaseCatalog) {
			t.Fatalf("row count = %d, want %d", len(rows), len(service.PhaseCatalog))
		}
		for _, sp := range rows {
			if !sp.IsEnabled {
				t.Fatalf("phase %s not enabled after EnableAll", sp.PhaseID)
			}
			if sp.SequenceOverride != nil {
				t.Fatalf("phase %s kept override %d after EnableAll", sp.PhaseID, *sp.SequenceOverride)
			}
		}
	}
}

func TestSolutionCreate_EnablesFullCatalog(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_create_phases")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Fresh Solution")
	sol := env.mustCreateSolution(t, p.ID, "Billing")

	rows, err := env.phaseSvc.ListSolutionPhases(ctx, sol.ID)
	if err != nil {
		t.Fatalf("list phases: %v", err)
	}
	if len(rows) != len(service.PhaseCatalog) {
		t.Fatalf("new solution has %d phase rows, want %d", len(rows), len(service.PhaseCatalog))
	}
	for i, sp := range rows {
		if sp.PhaseID != service.PhaseCatalog[i].ID {
			t.Fatalf("row %d phase = %s, want %s", i, sp.PhaseID, service.PhaseCatalog[i].ID)
		}
	}
	if sol.RagSource != solution.RagSourceAuto {
		t.Fatalf("rag_source = %s, want auto", sol.RagSource)
	}
}
