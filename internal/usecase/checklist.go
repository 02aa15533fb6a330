package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
	"tracklite.io/tracklite/internal/audit"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
)

// ChecklistItemUpdate marks one checklist row complete or incomplete.
type ChecklistItemUpdate struct {
	SolutionPhaseID string `json:"solution_phase_id"`
	IsComplete      bool   `json:"is_complete"`
}

// ChecklistUpdateInput represents a bulk checklist update for one subcomponent.
type ChecklistUpdateInput struct {
	SubcomponentID string
	UserID         string
	RequestID      string
	Items          []ChecklistItemUpdate
}

// ChecklistUseCase maintains the per-subcomponent completion checklist as a
// lazily refreshed materialization of the parent solution's enabled phases.
// Reconciliation runs at the top of every read and update path; it is
// idempotent and safe under concurrent callers, with the
// (subcomponent_id, solution_phase_id) unique index resolving create races.
type ChecklistUseCase struct {
	entClient *ent.Client
	phaseSvc  *service.PhaseService
	recorder  *audit.Recorder
	notifier  Notifier
}

// NewChecklistUseCase creates a new ChecklistUseCase.
func NewChecklistUseCase(entClient *ent.Client, phaseSvc *service.PhaseService, recorder *audit.Recorder) *ChecklistUseCase {
	return &ChecklistUseCase{entClient: entClient, phaseSvc: phaseSvc, recorder: recorder}
}

// WithNotifier sets the refresh notifier (optional dependency).
func (uc *ChecklistUseCase) WithNotifier(n Notifier) *ChecklistUseCase {
	uc.notifier = n
	return uc
}

// Get reconciles and returns the subcomponent's checklist in effective phase
// order.
func (uc *ChecklistUseCase) Get(ctx context.Context, subcomponentID string) ([]*ent.SubcomponentPhaseStatus, error) {
	sub, err := uc.loadSubcomponent(ctx, subcomponentID)
	if err != nil {
		return nil, err
	}

	var rows []*ent.SubcomponentPhaseStatus
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		rows, err = reconcileChecklist(ctx, tx, sub)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return uc.ordered(ctx, sub.SolutionID, rows)
}

// BulkUpdate reconciles the checklist, then applies completion flags. Every
// referenced solution_phase_id must be a member of the reconciled checklist;
// an unknown or disabled reference fails the whole batch with no partial
// application. Marking complete stamps completed_at with the current time on
// every call; marking incomplete clears it.
func (uc *ChecklistUseCase) BulkUpdate(ctx context.Context, input ChecklistUpdateInput) ([]*ent.SubcomponentPhaseStatus, error) {
	sub, err := uc.loadSubcomponent(ctx, input.SubcomponentID)
	if err != nil {
		return nil, err
	}

	var rows []*ent.SubcomponentPhaseStatus
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		reconciled, err := reconcileChecklist(ctx, tx, sub)
		if err != nil {
			return err
		}
		bySolutionPhase := make(map[string]*ent.SubcomponentPhaseStatus, len(reconciled))
		for _, row := range reconciled {
			bySolutionPhase[row.SolutionPhaseID] = row
		}

		// Whole-batch membership validation before any write.
		for _, item := range input.Items {
			if _, ok := bySolutionPhase[item.SolutionPhaseID]; !ok {
				return apperrors.BadRequest(apperrors.CodeChecklistRowUnknown,
					"solution phase "+item.SolutionPhaseID+" is not part of this subcomponent's checklist").
					WithParams(map[string]interface{}{"solution_phase_id": item.SolutionPhaseID})
			}
		}

		now := time.Now().UTC()
		for _, item := range input.Items {
			prev := bySolutionPhase[item.SolutionPhaseID]
			upd := tx.SubcomponentPhaseStatus.UpdateOneID(prev.ID).
				SetIsComplete(item.IsComplete)
			if item.IsComplete {
				upd.SetCompletedAt(now)
			} else {
				upd.ClearCompletedAt()
			}
			next, err := upd.Save(ctx)
			if err != nil {
				return fmt.Errorf("update checklist row %s: %w", prev.ID, err)
			}
			uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
				EntityType: "subcomponent_phase_status",
				EntityID:   prev.ID,
				UserID:     input.UserID,
				Action:     "update",
				RequestID:  input.RequestID,
				Changes: audit.Changes{
					"is_complete":  {Old: prev.IsComplete, New: next.IsComplete},
					"completed_at": {Old: prev.CompletedAt, New: next.CompletedAt},
				},
			})
			bySolutionPhase[item.SolutionPhaseID] = next
		}

		rows = make([]*ent.SubcomponentPhaseStatus, 0, len(reconciled))
		for _, row := range reconciled {
			rows = append(rows, bySolutionPhase[row.SolutionPhaseID])
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.notifier != nil {
		uc.notifier.EntityChanged(KindSubcomponent)
	}
	return uc.ordered(ctx, sub.SolutionID, rows)
}

func (uc *ChecklistUseCase) loadSubcomponent(ctx context.Context, id string) (*ent.Subcomponent, error) {
	sub, err := uc.entClient.Subcomponent.Query().
		Where(subcomponent.IDEQ(id), subcomponent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSubcomponentNotFound(id)
		}
		return nil, fmt.Errorf("load subcomponent: %w", err)
	}
	return sub, nil
}

// ordered sorts checklist rows by the effective order of their solution
// phases.
func (uc *ChecklistUseCase) ordered(ctx context.Context, solutionID string, rows []*ent.SubcomponentPhaseStatus) ([]*ent.SubcomponentPhaseStatus, error) {
	sps, err := uc.phaseSvc.ListSolutionPhases(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, len(sps))
	for i, sp := range sps {
		pos[sp.ID] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return pos[rows[i].SolutionPhaseID] < pos[rows[j].SolutionPhaseID]
	})
	return rows, nil
}

// reconcileChecklist converges the checklist row set onto the currently
// enabled solution phases: missing rows are created incomplete, rows for
// phases no longer enabled are deleted. Completion state of a disabled phase
// is discarded, so re-enabling a phase restarts it incomplete. Duplicate-key
// failures from a concurrent reconciler are treated as already-done.
func reconcileChecklist(ctx context.Context, tx *ent.Tx, sub *ent.Subcomponent) ([]*ent.SubcomponentPhaseStatus, error) {
	enabled, err := tx.SolutionPhase.Query().
		Where(
			solutionphase.SolutionIDEQ(sub.SolutionID),
			solutionphase.IsEnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load enabled phases: %w", err)
	}
	enabledByID := make(map[string]*ent.SolutionPhase, len(enabled))
	for _, sp := range enabled {
		enabledByID[sp.ID] = sp
	}

	existing, err := tx.SubcomponentPhaseStatus.Query().
		Where(subcomponentphasestatus.SubcomponentIDEQ(sub.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load checklist: %w", err)
	}

	rows := make([]*ent.SubcomponentPhaseStatus, 0, len(enabled))
	present := make(map[string]bool, len(existing))
	for _, row := range existing {
		if _, ok := enabledByID[row.SolutionPhaseID]; !ok {
			if err := tx.SubcomponentPhaseStatus.DeleteOneID(row.ID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
				return nil, fmt.Errorf("delete stale checklist row %s: %w", row.ID, err)
			}
			continue
		}
		present[row.SolutionPhaseID] = true
		rows = append(rows, row)
	}

	for _, sp := range enabled {
		if present[sp.ID] {
			continue
		}
		created, err := tx.SubcomponentPhaseStatus.Create().
			SetID(generateID()).
			SetSubcomponentID(sub.ID).
			SetSolutionPhaseID(sp.ID).
			SetPhaseID(sp.PhaseID).
			SetIsComplete(false).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Lost the race to a concurrent reconciler; reuse its row.
				created, err = tx.SubcomponentPhaseStatus.Query().
					Where(
						subcomponentphasestatus.SubcomponentIDEQ(sub.ID),
						subcomponentphasestatus.SolutionPhaseIDEQ(sp.ID),
					).
					Only(ctx)
				if err != nil {
					return nil, fmt.Errorf("reload checklist row for phase %s: %w", sp.PhaseID, err)
				}
			} else {
				return nil, fmt.Errorf("create checklist row for phase %s: %w", sp.PhaseID, err)
			}
		}
		rows = append(rows, created)
	}
	return rows, nil
}
