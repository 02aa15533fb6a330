package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/internal/audit"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/pkg/logger"
	"tracklite.io/tracklite/internal/service"
)

// CreateSolutionInput represents the input for creating a solution.
type CreateSolutionInput struct {
	ProjectID       string
	Name            string
	Version         string
	Status          *solution.Status
	Priority        *int
	DueDate         *time.Time
	Description     string
	SuccessCriteria string
	Owner           string
	Assignee        string
	Approver        string
	KeyStakeholder  string
	Blockers        string
	Risks           string
	UserID          string
	RequestID       string
}

// UpdateSolutionInput represents a partial solution update. Nil pointers mean
// "field not supplied"; the Clear flags null out nillable fields.
type UpdateSolutionInput struct {
	SolutionID        string
	Name              *string
	Version           *string
	Status            *solution.Status
	Priority          *int
	DueDate           *time.Time
	ClearDueDate      bool
	CurrentPhase      *string
	ClearCurrentPhase bool
	Rag               service.RagFields
	Description       *string
	SuccessCriteria   *string
	Owner             *string
	Assignee          *string
	Approver          *string
	KeyStakeholder    *string
	Blockers          *string
	Risks             *string
	UserID            string
	RequestID         string
}

// SolutionUseCase orchestrates solution lifecycle operations: creation with
// all phases enabled, partial updates with RAG derivation, soft delete and
// restore. All mutations are audited within the same transaction.
type SolutionUseCase struct {
	entClient *ent.Client
	phaseSvc  *service.PhaseService
	recorder  *audit.Recorder
	notifier  Notifier
}

// NewSolutionUseCase creates a new SolutionUseCase.
func NewSolutionUseCase(entClient *ent.Client, phaseSvc *service.PhaseService, recorder *audit.Recorder) *SolutionUseCase {
	return &SolutionUseCase{entClient: entClient, phaseSvc: phaseSvc, recorder: recorder}
}

// WithNotifier sets the refresh notifier (optional dependency).
func (uc *SolutionUseCase) WithNotifier(n Notifier) *SolutionUseCase {
	uc.notifier = n
	return uc
}

// Create creates a solution with every catalog phase enabled and an
// auto-derived RAG status.
func (uc *SolutionUseCase) Create(ctx context.Context, input CreateSolutionInput) (*ent.Solution, error) {
	exists, err := uc.entClient.Project.Query().
		Where(project.IDEQ(input.ProjectID), project.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
	}

	dup, err := uc.entClient.Solution.Query().
		Where(
			solution.ProjectIDEQ(input.ProjectID),
			solution.NameEQ(input.Name),
			solution.VersionEQ(input.Version),
			solution.DeletedAtIsNil(),
		).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check duplicate solution: %w", err)
	}
	if dup {
		return nil, apperrors.Conflict(apperrors.CodeSolutionExists,
			"a solution with this name and version already exists in the project")
	}

	status := solution.StatusNotStarted
	if input.Status != nil {
		status = *input.Status
	}
	ragStatus := service.DeriveRagStatus(status, input.DueDate, time.Now())

	var created *ent.Solution
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		c := tx.Solution.Create().
			SetID(generateID()).
			SetProjectID(input.ProjectID).
			SetName(input.Name).
			SetVersion(input.Version).
			SetStatus(status).
			SetNillableDueDate(input.DueDate).
			SetRagStatus(ragStatus).
			SetRagSource(solution.RagSourceAuto).
			SetDescription(input.Description).
			SetSuccessCriteria(input.SuccessCriteria).
			SetOwner(input.Owner).
			SetAssignee(input.Assignee).
			SetApprover(input.Approver).
			SetKeyStakeholder(input.KeyStakeholder).
			SetBlockers(input.Blockers).
			SetRisks(input.Risks).
			SetCreatedBy(input.UserID)
		if input.Priority != nil {
			c.SetPriority(*input.Priority)
		}
		if status == solution.StatusComplete {
			c.SetCompletedAt(time.Now().UTC())
		}

		var err error
		created, err = c.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("solution")
			}
			return fmt.Errorf("create solution: %w", err)
		}

		if err := enableAllPhases(ctx, tx, created.ID); err != nil {
			return err
		}

		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "solution",
			EntityID:   created.ID,
			UserID:     input.UserID,
			Action:     "create",
			RequestID:  input.RequestID,
		})
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notify(KindSolution)
	logger.Info("Solution created",
		zap.String("solution_id", created.ID),
		zap.String("project_id", input.ProjectID),
		zap.String("name", input.Name),
	)
	return created, nil
}

// Update applies a partial update. RAG fields follow the inferred transition:
// a manual assertion persists verbatim until an explicit reset, while in auto
// mode rag_status is recomputed from the updated status and due date.
func (uc *SolutionUseCase) Update(ctx context.Context, input UpdateSolutionInput) (*ent.Solution, error) {
	sol, err := uc.getActive(ctx, input.SolutionID)
	if err != nil {
		return nil, err
	}

	transition, err := service.InferRagTransition(input.Rag)
	if err != nil {
		return nil, err
	}

	name := sol.Name
	if input.Name != nil {
		name = *input.Name
	}
	version := sol.Version
	if input.Version != nil {
		version = *input.Version
	}
	if name != sol.Name || version != sol.Version {
		dup, err := uc.entClient.Solution.Query().
			Where(
				solution.ProjectIDEQ(sol.ProjectID),
				solution.NameEQ(name),
				solution.VersionEQ(version),
				solution.IDNEQ(sol.ID),
				solution.DeletedAtIsNil(),
			).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check duplicate solution: %w", err)
		}
		if dup {
			return nil, apperrors.Conflict(apperrors.CodeSolutionExists,
				"a solution with this name and version already exists in the project")
		}
	}

	if input.CurrentPhase != nil {
		enabled, err := uc.phaseSvc.EnabledSolutionPhases(ctx, sol.ID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, sp := range enabled {
			if sp.PhaseID == *input.CurrentPhase {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.BadRequest(apperrors.CodePhaseNotEnabled,
				"phase "+*input.CurrentPhase+" is not enabled for this solution")
		}
	}

	var updated *ent.Solution
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		upd := tx.Solution.UpdateOneID(sol.ID)
		changes := audit.Changes{}

		if input.Name != nil {
			upd.SetName(*input.Name)
			changes["name"] = audit.Change{Old: sol.Name, New: *input.Name}
		}
		if input.Version != nil {
			upd.SetVersion(*input.Version)
			changes["version"] = audit.Change{Old: sol.Version, New: *input.Version}
		}

		newStatus := sol.Status
		if input.Status != nil {
			newStatus = *input.Status
			upd.SetStatus(newStatus)
			changes["status"] = audit.Change{Old: sol.Status, New: newStatus}
			if newStatus == solution.StatusComplete && sol.Status != solution.StatusComplete {
				now := time.Now().UTC()
				upd.SetCompletedAt(now)
				changes["completed_at"] = audit.Change{Old: sol.CompletedAt, New: now}
			}
			if newStatus != solution.StatusComplete && sol.Status == solution.StatusComplete {
				upd.ClearCompletedAt()
				changes["completed_at"] = audit.Change{Old: sol.CompletedAt, New: nil}
			}
		}
		if input.Priority != nil {
			upd.SetPriority(*input.Priority)
			changes["priority"] = audit.Change{Old: sol.Priority, New: *input.Priority}
		}

		newDueDate := sol.DueDate
		switch {
		case input.ClearDueDate:
			newDueDate = nil
			upd.ClearDueDate()
			changes["due_date"] = audit.Change{Old: sol.DueDate, New: nil}
		case input.DueDate != nil:
			newDueDate = input.DueDate
			upd.SetDueDate(*input.DueDate)
			changes["due_date"] = audit.Change{Old: sol.DueDate, New: *input.DueDate}
		}

		switch {
		case input.ClearCurrentPhase:
			upd.ClearCurrentPhase()
			changes["current_phase"] = audit.Change{Old: sol.CurrentPhase, New: nil}
		case input.CurrentPhase != nil:
			upd.SetCurrentPhase(*input.CurrentPhase)
			changes["current_phase"] = audit.Change{Old: sol.CurrentPhase, New: *input.CurrentPhase}
		}

		switch tr := transition.(type) {
		case service.SetManual:
			upd.SetRagSource(solution.RagSourceManual)
			upd.SetRagStatus(tr.Status)
			upd.SetRagReason(tr.Reason)
			changes["rag_source"] = audit.Change{Old: sol.RagSource, New: solution.RagSourceManual}
			changes["rag_status"] = audit.Change{Old: sol.RagStatus, New: tr.Status}
			changes["rag_reason"] = audit.Change{Old: sol.RagReason, New: tr.Reason}
		case service.ResetAuto:
			derived := service.DeriveRagStatus(newStatus, newDueDate, time.Now())
			upd.SetRagSource(solution.RagSourceAuto)
			upd.SetRagStatus(derived)
			upd.ClearRagReason()
			changes["rag_source"] = audit.Change{Old: sol.RagSource, New: solution.RagSourceAuto}
			changes["rag_status"] = audit.Change{Old: sol.RagStatus, New: derived}
			changes["rag_reason"] = audit.Change{Old: sol.RagReason, New: nil}
		case service.NoRagChange:
			// Auto mode tracks status and due date; a manual assertion
			// persists across unrelated edits.
			if sol.RagSource == solution.RagSourceAuto {
				derived := service.DeriveRagStatus(newStatus, newDueDate, time.Now())
				if derived != sol.RagStatus {
					upd.SetRagStatus(derived)
					changes["rag_status"] = audit.Change{Old: sol.RagStatus, New: derived}
				}
			}
		}

		setString := func(field string, val *string, old string, set func(string) *ent.SolutionUpdateOne) {
			if val == nil {
				return
			}
			set(*val)
			changes[field] = audit.Change{Old: old, New: *val}
		}
		setString("description", input.Description, sol.Description, upd.SetDescription)
		setString("success_criteria", input.SuccessCriteria, sol.SuccessCriteria, upd.SetSuccessCriteria)
		setString("owner", input.Owner, sol.Owner, upd.SetOwner)
		setString("assignee", input.Assignee, sol.Assignee, upd.SetAssignee)
		setString("approver", input.Approver, sol.Approver, upd.SetApprover)
		setString("key_stakeholder", input.KeyStakeholder, sol.KeyStakeholder, upd.SetKeyStakeholder)
		setString("blockers", input.Blockers, sol.Blockers, upd.SetBlockers)
		setString("risks", input.Risks, sol.Risks, upd.SetRisks)

		var err error
		updated, err = upd.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("solution")
			}
			return fmt.Errorf("update solution: %w", err)
		}

		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "solution",
			EntityID:   sol.ID,
			UserID:     input.UserID,
			Action:     "update",
			RequestID:  input.RequestID,
			Changes:    changes,
		})
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notify(KindSolution)
	return updated, nil
}

// Delete soft-deletes a solution.
func (uc *SolutionUseCase) Delete(ctx context.Context, solutionID, userID, requestID string) error {
	sol, err := uc.getActive(ctx, solutionID)
	if err != nil {
		return err
	}

	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if err := tx.Solution.UpdateOneID(sol.ID).
			SetDeletedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete solution: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "solution",
			EntityID:   sol.ID,
			UserID:     userID,
			Action:     "delete",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.notify(KindSolution)
	return nil
}

// Restore un-deletes a soft-deleted solution.
func (uc *SolutionUseCase) Restore(ctx context.Context, solutionID, userID, requestID string) (*ent.Solution, error) {
	sol, err := uc.entClient.Solution.Query().
		Where(solution.IDEQ(solutionID), solution.DeletedAtNotNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSolutionNotFound(solutionID)
		}
		return nil, fmt.Errorf("load solution: %w", err)
	}

	var restored *ent.Solution
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		var err error
		restored, err = tx.Solution.UpdateOneID(sol.ID).
			ClearDeletedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("restore solution: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "solution",
			EntityID:   sol.ID,
			UserID:     userID,
			Action:     "restore",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notify(KindSolution)
	return restored, nil
}

// Get returns an active (non-deleted) solution.
func (uc *SolutionUseCase) Get(ctx context.Context, solutionID string) (*ent.Solution, error) {
	return uc.getActive(ctx, solutionID)
}

// List returns active solutions, optionally filtered to one project.
func (uc *SolutionUseCase) List(ctx context.Context, projectID string) ([]*ent.Solution, error) {
	q := uc.entClient.Solution.Query().
		Where(solution.DeletedAtIsNil()).
		Order(ent.Asc(solution.FieldName), ent.Asc(solution.FieldVersion))
	if projectID != "" {
		q.Where(solution.ProjectIDEQ(projectID))
	}
	sols, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	return sols, nil
}

func (uc *SolutionUseCase) getActive(ctx context.Context, solutionID string) (*ent.Solution, error) {
	sol, err := uc.entClient.Solution.Query().
		Where(solution.IDEQ(solutionID), solution.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSolutionNotFound(solutionID)
		}
		return nil, fmt.Errorf("load solution: %w", err)
	}
	return sol, nil
}

func (uc *SolutionUseCase) notify(kind string) {
	if uc.notifier != nil {
		uc.notifier.EntityChanged(kind)
	}
}
