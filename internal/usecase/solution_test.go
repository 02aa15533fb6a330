package usecase

import (
	"context"
	"testing"
	"time"

	"tracklite.io/tracklite/ent/solution"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
)

func strPtr(s string) *string { return &s }

func TestSolutionCreate_DuplicateNameVersionConflicts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_duplicate")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Duplicates")
	env.mustCreateSolution(t, p.ID, "Payments")

	_, err := env.solutionUC.Create(ctx, CreateSolutionInput{
		ProjectID: p.ID,
		Name:      "Payments",
		Version:   "1.0",
		UserID:    "user-1",
		RequestID: "req-1",
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeSolutionExists {
		t.Fatalf("expected %s, got %v", apperrors.CodeSolutionExists, err)
	}

	// Same name with a different version is allowed.
	if _, err := env.solutionUC.Create(ctx, CreateSolutionInput{
		ProjectID: p.ID,
		Name:      "Payments",
		Version:   "2.0",
		UserID:    "user-1",
		RequestID: "req-2",
	}); err != nil {
		t.Fatalf("create second version: %v", err)
	}
}

func TestSolutionUpdate_AutoRagTracksDueDate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_rag_auto")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Auto RAG")
	sol := env.mustCreateSolution(t, p.ID, "Importer")

	if sol.RagStatus != solution.RagStatusAmber {
		t.Fatalf("initial rag_status = %s, want amber", sol.RagStatus)
	}

	// An overdue due date flips auto RAG to red on the next update.
	past := time.Now().UTC().AddDate(0, 0, -3)
	updated, err := env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		DueDate:    &past,
		UserID:     "user-1",
		RequestID:  "req-1",
	})
	if err != nil {
		t.Fatalf("set overdue due date: %v", err)
	}
	if updated.RagStatus != solution.RagStatusRed {
		t.Fatalf("rag_status = %s, want red", updated.RagStatus)
	}

	// Completing the solution turns it green regardless of due date.
	complete := solution.StatusComplete
	updated, err = env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		Status:     &complete,
		UserID:     "user-1",
		RequestID:  "req-2",
	})
	if err != nil {
		t.Fatalf("complete solution: %v", err)
	}
	if updated.RagStatus != solution.RagStatusGreen {
		t.Fatalf("rag_status = %s, want green", updated.RagStatus)
	}
	if updated.CompletedAt == nil {
		t.Fatal("completed_at not stamped on completion")
	}

	// Leaving complete clears completed_at.
	inProgress := solution.StatusActive
	updated, err = env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		Status:     &inProgress,
		UserID:     "user-1",
		RequestID:  "req-3",
	})
	if err != nil {
		t.Fatalf("reopen solution: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatal("completed_at not cleared on reopen")
	}
}

func TestSolutionUpdate_ManualRagPersistsUntilReset(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_rag_manual")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Manual RAG")
	sol := env.mustCreateSolution(t, p.ID, "Exporter")

	manual := solution.RagSourceManual
	red := solution.RagStatusRed
	updated, err := env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		Rag: service.RagFields{
			Source: &manual,
			Status: &red,
			Reason: strPtr("vendor dependency slipped"),
		},
		UserID:    "user-1",
		RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("set manual rag: %v", err)
	}
	if updated.RagSource != solution.RagSourceManual || updated.RagStatus != solution.RagStatusRed {
		t.Fatalf("manual rag not applied: source=%s status=%s", updated.RagSource, updated.RagStatus)
	}

	// An unrelated edit that would derive green must not disturb the manual
	// assertion.
	complete := solution.StatusComplete
	updated, err = env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		Status:     &complete,
		UserID:     "user-1",
		RequestID:  "req-2",
	})
	if err != nil {
		t.Fatalf("complete solution: %v", err)
	}
	if updated.RagSource != solution.RagSourceManual || updated.RagStatus != solution.RagStatusRed {
		t.Fatalf("manual rag lost on unrelated edit: source=%s status=%s", updated.RagSource, updated.RagStatus)
	}

	// Explicit reset returns to auto and re-derives from current state.
	auto := solution.RagSourceAuto
	updated, err = env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID: sol.ID,
		Rag:        service.RagFields{Source: &auto},
		UserID:     "user-1",
		RequestID:  "req-3",
	})
	if err != nil {
		t.Fatalf("reset rag to auto: %v", err)
	}
	if updated.RagSource != solution.RagSourceAuto || updated.RagStatus != solution.RagStatusGreen {
		t.Fatalf("auto reset mismatch: source=%s status=%s", updated.RagSource, updated.RagStatus)
	}
	if updated.RagReason != nil {
		t.Fatalf("rag_reason not cleared on reset: %q", *updated.RagReason)
	}
}

func TestSolutionUpdate_CurrentPhaseMustBeEnabled(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_current_phase")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Phase Guard")
	sol := env.mustCreateSolution(t, p.ID, "Notifier")

	if _, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-1",
		Items:      []PhaseSelection{{PhaseID: "go_live", IsEnabled: false}},
	}); err != nil {
		t.Fatalf("disable go_live: %v", err)
	}

	_, err := env.solutionUC.Update(ctx, UpdateSolutionInput{
		SolutionID:   sol.ID,
		CurrentPhase: strPtr("go_live"),
		UserID:       "user-1",
		RequestID:    "req-2",
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodePhaseNotEnabled {
		t.Fatalf("expected %s, got %v", apperrors.CodePhaseNotEnabled, err)
	}
}

func TestSolutionDeleteRestore(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "solution_delete_restore")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Lifecycle")
	sol := env.mustCreateSolution(t, p.ID, "Archiver")

	if err := env.solutionUC.Delete(ctx, sol.ID, "user-1", "req-1"); err != nil {
		t.Fatalf("delete solution: %v", err)
	}
	if _, err := env.solutionUC.Get(ctx, sol.ID); err == nil {
		t.Fatal("deleted solution still readable")
	}

	restored, err := env.solutionUC.Restore(ctx, sol.ID, "user-1", "req-2")
	if err != nil {
		t.Fatalf("restore solution: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Fatal("restored solution still has deleted_at")
	}
	if _, err := env.solutionUC.Get(ctx, sol.ID); err != nil {
		t.Fatalf("restored solution not readable: %v", err)
	}
}
