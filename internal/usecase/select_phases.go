package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/internal/audit"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/service"
)

// PhaseSelection is one entry of a phase-set request. A missing
// SequenceOverride clears any previous override.
type PhaseSelection struct {
	PhaseID          string `json:"phase_id"`
	IsEnabled        bool   `json:"is_enabled"`
	SequenceOverride *int   `json:"sequence_override"`
}

// SelectPhasesInput represents a batch phase-set request for one solution.
type SelectPhasesInput struct {
	SolutionID string
	UserID     string
	RequestID  string
	Items      []PhaseSelection
}

// SelectPhasesUseCase upserts the enabled/ordering projection of the phase
// catalog onto one solution. The batch is atomic: every entry is validated
// against the catalog before any write, and all upserts commit together.
type SelectPhasesUseCase struct {
	entClient *ent.Client
	phaseSvc  *service.PhaseService
	recorder  *audit.Recorder
	notifier  Notifier
}

// NewSelectPhasesUseCase creates a new SelectPhasesUseCase.
func NewSelectPhasesUseCase(entClient *ent.Client, phaseSvc *service.PhaseService, recorder *audit.Recorder) *SelectPhasesUseCase {
	return &SelectPhasesUseCase{entClient: entClient, phaseSvc: phaseSvc, recorder: recorder}
}

// WithNotifier sets the refresh notifier (optional dependency).
func (uc *SelectPhasesUseCase) WithNotifier(n Notifier) *SelectPhasesUseCase {
	uc.notifier = n
	return uc
}

// Execute applies a phase-set batch and returns the solution's phase rows in
// effective order. Disabling the solution's current phase clears
// current_phase back to null.
func (uc *SelectPhasesUseCase) Execute(ctx context.Context, input SelectPhasesInput) ([]*ent.SolutionPhase, error) {
	sol, err := uc.entClient.Solution.Query().
		Where(solution.IDEQ(input.SolutionID), solution.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSolutionNotFound(input.SolutionID)
		}
		return nil, fmt.Errorf("load solution: %w", err)
	}

	catalogSeq, err := uc.phaseSvc.CatalogSequences(ctx)
	if err != nil {
		return nil, err
	}
	// Whole-batch validation before any write.
	for _, item := range input.Items {
		if _, ok := catalogSeq[item.PhaseID]; !ok {
			return nil, apperrors.ErrPhaseUnknown(item.PhaseID)
		}
	}

	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		existing, err := tx.SolutionPhase.Query().
			Where(solutionphase.SolutionIDEQ(input.SolutionID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load solution phases: %w", err)
		}
		byPhase := make(map[string]*ent.SolutionPhase, len(existing))
		for _, sp := range existing {
			byPhase[sp.PhaseID] = sp
		}

		for _, item := range input.Items {
			if prev, ok := byPhase[item.PhaseID]; ok {
				upd := tx.SolutionPhase.UpdateOneID(prev.ID).
					SetIsEnabled(item.IsEnabled)
				if item.SequenceOverride != nil {
					upd.SetSequenceOverride(*item.SequenceOverride)
				} else {
					upd.ClearSequenceOverride()
				}
				next, err := upd.Save(ctx)
				if err != nil {
					return fmt.Errorf("update solution phase %s: %w", item.PhaseID, err)
				}
				uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
					EntityType: "solution_phase",
					EntityID:   prev.ID,
					UserID:     input.UserID,
					Action:     "update",
					RequestID:  input.RequestID,
					Changes: audit.Changes{
						"is_enabled":        {Old: prev.IsEnabled, New: next.IsEnabled},
						"sequence_override": {Old: prev.SequenceOverride, New: next.SequenceOverride},
					},
				})
				byPhase[item.PhaseID] = next
				continue
			}

			create := tx.SolutionPhase.Create().
				SetID(generateID()).
				SetSolutionID(input.SolutionID).
				SetPhaseID(item.PhaseID).
				SetIsEnabled(item.IsEnabled)
			if item.SequenceOverride != nil {
				create.SetSequenceOverride(*item.SequenceOverride)
			}
			created, err := create.Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return apperrors.ErrWriteConflict("solution_phase")
				}
				return fmt.Errorf("create solution phase %s: %w", item.PhaseID, err)
			}
			uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
				EntityType: "solution_phase",
				EntityID:   created.ID,
				UserID:     input.UserID,
				Action:     "create",
				RequestID:  input.RequestID,
			})
			byPhase[item.PhaseID] = created
		}

		// Re-validate "current_phase is an enabled phase id, or null".
		if sol.CurrentPhase != nil {
			if sp, ok := byPhase[*sol.CurrentPhase]; !ok || !sp.IsEnabled {
				if err := tx.Solution.UpdateOneID(sol.ID).ClearCurrentPhase().Exec(ctx); err != nil {
					return fmt.Errorf("clear current phase: %w", err)
				}
				uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
					EntityType: "solution",
					EntityID:   sol.ID,
					UserID:     input.UserID,
					Action:     "update",
					RequestID:  input.RequestID,
					Changes: audit.Changes{
						"current_phase": {Old: sol.CurrentPhase, New: nil},
					},
				})
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.notifier != nil {
		uc.notifier.EntityChanged(KindPhase)
	}
	logger.Info("Phase set updated",
		zap.String("solution_id", input.SolutionID),
		zap.Int("entries", len(input.Items)),
		zap.String("user_id", input.UserID),
	)

	return uc.phaseSvc.ListSolutionPhases(ctx, input.SolutionID)
}

// EnableAll enables every catalog phase for a solution with no overrides.
// Used at solution-creation time; calling it repeatedly converges to one
// enabled row per catalog phase without duplicating rows.
func (uc *SelectPhasesUseCase) EnableAll(ctx context.Context, solutionID, userID string) ([]*ent.SolutionPhase, error) {
	exists, err := uc.entClient.Solution.Query().
		Where(solution.IDEQ(solutionID), solution.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check solution: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrSolutionNotFound(solutionID)
	}

	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		return enableAllPhases(ctx, tx, solutionID)
	})
	if txErr != nil {
		return nil, txErr
	}

	if uc.notifier != nil {
		uc.notifier.EntityChanged(KindPhase)
	}
	return uc.phaseSvc.ListSolutionPhases(ctx, solutionID)
}

// enableAllPhases upserts one enabled, override-free SolutionPhase row per
// catalog phase. Shared with solution creation, which runs it inside the same
// transaction that creates the solution row.
func enableAllPhases(ctx context.Context, tx *ent.Tx, solutionID string) error {
	phases, err := tx.Phase.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("load phase catalog: %w", err)
	}
	existing, err := tx.SolutionPhase.Query().
		Where(solutionphase.SolutionIDEQ(solutionID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("load solution phases: %w", err)
	}
	byPhase := make(map[string]*ent.SolutionPhase, len(existing))
	for _, sp := range existing {
		byPhase[sp.PhaseID] = sp
	}

	for _, p := range phases {
		if prev, ok := byPhase[p.ID]; ok {
			if prev.IsEnabled && prev.SequenceOverride == nil {
				continue
			}
			if err := tx.SolutionPhase.UpdateOneID(prev.ID).
				SetIsEnabled(true).
				ClearSequenceOverride().
				Exec(ctx); err != nil {
				return fmt.Errorf("re-enable phase %s: %w", p.ID, err)
			}
			continue
		}
		if err := tx.SolutionPhase.Create().
			SetID(generateID()).
			SetSolutionID(solutionID).
			SetPhaseID(p.ID).
			SetIsEnabled(true).
			Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("solution_phase")
			}
			return fmt.Errorf("enable phase %s: %w", p.ID, err)
		}
	}
	return nil
}
