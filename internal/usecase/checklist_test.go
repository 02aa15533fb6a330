package usecase

import (
	"context"
	"testing"
	"time"

	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
)

func TestChecklist_ConvergesToEnabledPhases(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "checklist_converge")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Checklist")
	sol := env.mustCreateSolution(t, p.ID, "Pipeline")
	sub := env.mustCreateSubcomponent(t, sol.ID, "Extractor")

	rows, err := env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist: %v", err)
	}
	if len(rows) != len(service.PhaseCatalog) {
		t.Fatalf("checklist rows = %d, want %d", len(rows), len(service.PhaseCatalog))
	}
	for _, row := range rows {
		if row.IsComplete {
			t.Fatalf("new checklist row %s is complete", row.PhaseID)
		}
	}

	// Mark backlog complete, then disable it; the row must disappear.
	if _, err := env.checklistUC.BulkUpdate(ctx, ChecklistUpdateInput{
		SubcomponentID: sub.ID,
		UserID:         "user-1",
		RequestID:      "req-1",
		Items:          []ChecklistItemUpdate{{SolutionPhaseID: rows[0].SolutionPhaseID, IsComplete: true}},
	}); err != nil {
		t.Fatalf("complete backlog row: %v", err)
	}

	if _, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-2",
		Items:      []PhaseSelection{{PhaseID: "backlog", IsEnabled: false}},
	}); err != nil {
		t.Fatalf("disable backlog: %v", err)
	}

	rows, err = env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist after disable: %v", err)
	}
	if len(rows) != len(service.PhaseCatalog)-1 {
		t.Fatalf("checklist rows = %d, want %d", len(rows), len(service.PhaseCatalog)-1)
	}
	for _, row := range rows {
		if row.PhaseID == "backlog" {
			t.Fatal("disabled phase still present in checklist")
		}
	}

	// Re-enabling restarts the phase incomplete; prior completion is discarded.
	if _, err := env.selectPhasesUC.Execute(ctx, SelectPhasesInput{
		SolutionID: sol.ID,
		UserID:     "user-1",
		RequestID:  "req-3",
		Items:      []PhaseSelection{{PhaseID: "backlog", IsEnabled: true}},
	}); err != nil {
		t.Fatalf("re-enable backlog: %v", err)
	}

	rows, err = env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist after re-enable: %v", err)
	}
	if len(rows) != len(service.PhaseCatalog) {
		t.Fatalf("checklist rows = %d, want %d", len(rows), len(service.PhaseCatalog))
	}
	if rows[0].PhaseID != "backlog" {
		t.Fatalf("first row = %s, want backlog", rows[0].PhaseID)
	}
	if rows[0].IsComplete || rows[0].CompletedAt != nil {
		t.Fatal("re-enabled phase kept its old completion state")
	}
}

func TestChecklistBulkUpdate_UnknownRowRejectsWholeBatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "checklist_membership")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Membership")
	sol := env.mustCreateSolution(t, p.ID, "Gateway")
	sub := env.mustCreateSubcomponent(t, sol.ID, "Router")

	rows, err := env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist: %v", err)
	}

	_, err = env.checklistUC.BulkUpdate(ctx, ChecklistUpdateInput{
		SubcomponentID: sub.ID,
		UserID:         "user-1",
		RequestID:      "req-1",
		Items: []ChecklistItemUpdate{
			{SolutionPhaseID: rows[0].SolutionPhaseID, IsComplete: true},
			{SolutionPhaseID: "not-a-row", IsComplete: true},
		},
	})
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodeChecklistRowUnknown {
		t.Fatalf("expected %s, got %v", apperrors.CodeChecklistRowUnknown, err)
	}

	// The valid entry must not have been applied.
	rows, err = env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist after rejected batch: %v", err)
	}
	if rows[0].IsComplete {
		t.Fatal("rejected batch partially applied")
	}
}

func TestChecklistBulkUpdate_CompletedAtLifecycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "checklist_completed_at")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Timestamps")
	sol := env.mustCreateSolution(t, p.ID, "Ledger")
	sub := env.mustCreateSubcomponent(t, sol.ID, "Poster")

	rows, err := env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("get checklist: %v", err)
	}
	target := rows[0].SolutionPhaseID

	complete := func(reqID string) *time.Time {
		t.Helper()
		updated, err := env.checklistUC.BulkUpdate(ctx, ChecklistUpdateInput{
			SubcomponentID: sub.ID,
			UserID:         "user-1",
			RequestID:      reqID,
			Items:          []ChecklistItemUpdate{{SolutionPhaseID: target, IsComplete: true}},
		})
		if err != nil {
			t.Fatalf("bulk update: %v", err)
		}
		if !updated[0].IsComplete || updated[0].CompletedAt == nil {
			t.Fatal("row not marked complete with timestamp")
		}
		return updated[0].CompletedAt
	}

	first := complete("req-1")
	time.Sleep(10 * time.Millisecond)
	second := complete("req-2")
	if !second.After(*first) {
		t.Fatalf("completed_at not refreshed: first=%v second=%v", first, second)
	}

	// Marking incomplete clears the timestamp.
	updated, err := env.checklistUC.BulkUpdate(ctx, ChecklistUpdateInput{
		SubcomponentID: sub.ID,
		UserID:         "user-1",
		RequestID:      "req-3",
		Items:          []ChecklistItemUpdate{{SolutionPhaseID: target, IsComplete: false}},
	})
	if err != nil {
		t.Fatalf("mark incomplete: %v", err)
	}
	if updated[0].IsComplete || updated[0].CompletedAt != nil {
		t.Fatal("completed_at not cleared on incomplete")
	}
}

func TestChecklist_GetIsIdempotent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "checklist_idempotent")
	ctx := context.Background()
	p := env.mustCreateProject(t, "Idempotent")
	sol := env.mustCreateSolution(t, p.ID, "Sync")
	sub := env.mustCreateSubcomponent(t, sol.ID, "Worker")

	first, err := env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := env.checklistUC.Get(ctx, sub.ID)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("row %d identity changed between reads: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}
