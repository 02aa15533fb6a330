package usecase

import (
	"context"
	"fmt"
	"time"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/internal/audit"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/service"
)

// CreateSubcomponentInput represents the input for creating a subcomponent.
type CreateSubcomponentInput struct {
	SolutionID   string
	Name         string
	Status       *subcomponent.Status
	Priority     *int
	DueDate      *time.Time
	SubPhase     *string
	Description  string
	Notes        string
	Category     string
	Dependencies string
	WorkEstimate *float64
	Owner        string
	Assignee     string
	Approver     string
	UserID       string
	RequestID    string
}

// UpdateSubcomponentInput represents a partial subcomponent update.
type UpdateSubcomponentInput struct {
	SubcomponentID string
	Name           *string
	Status         *subcomponent.Status
	Priority       *int
	DueDate        *time.Time
	ClearDueDate   bool
	SubPhase       *string
	ClearSubPhase  bool
	Description    *string
	Notes          *string
	Category       *string
	Dependencies   *string
	WorkEstimate   *float64
	Owner          *string
	Assignee       *string
	Approver       *string
	UserID         string
	RequestID      string
}

// SubcomponentUseCase orchestrates subcomponent lifecycle operations. A
// subcomponent's sub_phase must always name an enabled phase of its parent
// solution.
type SubcomponentUseCase struct {
	entClient *ent.Client
	phaseSvc  *service.PhaseService
	recorder  *audit.Recorder
	notifier  Notifier
}

// NewSubcomponentUseCase creates a new SubcomponentUseCase.
func NewSubcomponentUseCase(entClient *ent.Client, phaseSvc *service.PhaseService, recorder *audit.Recorder) *SubcomponentUseCase {
	return &SubcomponentUseCase{entClient: entClient, phaseSvc: phaseSvc, recorder: recorder}
}

// WithNotifier sets the refresh notifier (optional dependency).
func (uc *SubcomponentUseCase) WithNotifier(n Notifier) *SubcomponentUseCase {
	uc.notifier = n
	return uc
}

// Create creates a subcomponent under a solution. The project id is inherited
// from the parent solution.
func (uc *SubcomponentUseCase) Create(ctx context.Context, input CreateSubcomponentInput) (*ent.Subcomponent, error) {
	sol, err := uc.entClient.Solution.Query().
		Where(solution.IDEQ(input.SolutionID), solution.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSolutionNotFound(input.SolutionID)
		}
		return nil, fmt.Errorf("load solution: %w", err)
	}

	dup, err := uc.entClient.Subcomponent.Query().
		Where(
			subcomponent.SolutionIDEQ(input.SolutionID),
			subcomponent.NameEQ(input.Name),
			subcomponent.DeletedAtIsNil(),
		).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check duplicate subcomponent: %w", err)
	}
	if dup {
		return nil, apperrors.Conflict(apperrors.CodeSubcomponentExists,
			"a subcomponent with this name already exists in the solution")
	}

	if input.SubPhase != nil {
		if err := uc.requireEnabledPhase(ctx, sol.ID, *input.SubPhase); err != nil {
			return nil, err
		}
	}

	status := subcomponent.StatusToDo
	if input.Status != nil {
		status = *input.Status
	}

	var created *ent.Subcomponent
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		c := tx.Subcomponent.Create().
			SetID(generateID()).
			SetProjectID(sol.ProjectID).
			SetSolutionID(sol.ID).
			SetName(input.Name).
			SetStatus(status).
			SetNillableDueDate(input.DueDate).
			SetNillableSubPhase(input.SubPhase).
			SetDescription(input.Description).
			SetNotes(input.Notes).
			SetCategory(input.Category).
			SetDependencies(input.Dependencies).
			SetOwner(input.Owner).
			SetAssignee(input.Assignee).
			SetApprover(input.Approver).
			SetCreatedBy(input.UserID)
		if input.Priority != nil {
			c.SetPriority(*input.Priority)
		}
		if input.WorkEstimate != nil {
			c.SetWorkEstimate(*input.WorkEstimate)
		}
		if status == subcomponent.StatusComplete {
			c.SetCompletedAt(time.Now().UTC())
		}

		var err error
		created, err = c.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("subcomponent")
			}
			return fmt.Errorf("create subcomponent: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "subcomponent",
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

	uc.notify(KindSubcomponent)
	return created, nil
}

// Update applies a partial subcomponent update.
func (uc *SubcomponentUseCase) Update(ctx context.Context, input UpdateSubcomponentInput) (*ent.Subcomponent, error) {
	sub, err := uc.getActive(ctx, input.SubcomponentID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != sub.Name {
		dup, err := uc.entClient.Subcomponent.Query().
			Where(
				subcomponent.SolutionIDEQ(sub.SolutionID),
				subcomponent.NameEQ(*input.Name),
				subcomponent.IDNEQ(sub.ID),
				subcomponent.DeletedAtIsNil(),
			).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check duplicate subcomponent: %w", err)
		}
		if dup {
			return nil, apperrors.Conflict(apperrors.CodeSubcomponentExists,
				"a subcomponent with this name already exists in the solution")
		}
	}

	if input.SubPhase != nil {
		if err := uc.requireEnabledPhase(ctx, sub.SolutionID, *input.SubPhase); err != nil {
			return nil, err
		}
	}

	var updated *ent.Subcomponent
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		upd := tx.Subcomponent.UpdateOneID(sub.ID)
		changes := audit.Changes{}

		if input.Name != nil {
			upd.SetName(*input.Name)
			changes["name"] = audit.Change{Old: sub.Name, New: *input.Name}
		}
		if input.Status != nil {
			upd.SetStatus(*input.Status)
			changes["status"] = audit.Change{Old: sub.Status, New: *input.Status}
			if *input.Status == subcomponent.StatusComplete && sub.Status != subcomponent.StatusComplete {
				now := time.Now().UTC()
				upd.SetCompletedAt(now)
				changes["completed_at"] = audit.Change{Old: sub.CompletedAt, New: now}
			}
			if *input.Status != subcomponent.StatusComplete && sub.Status == subcomponent.StatusComplete {
				upd.ClearCompletedAt()
				changes["completed_at"] = audit.Change{Old: sub.CompletedAt, New: nil}
			}
		}
		if input.Priority != nil {
			upd.SetPriority(*input.Priority)
			changes["priority"] = audit.Change{Old: sub.Priority, New: *input.Priority}
		}
		switch {
		case input.ClearDueDate:
			upd.ClearDueDate()
			changes["due_date"] = audit.Change{Old: sub.DueDate, New: nil}
		case input.DueDate != nil:
			upd.SetDueDate(*input.DueDate)
			changes["due_date"] = audit.Change{Old: sub.DueDate, New: *input.DueDate}
		}
		switch {
		case input.ClearSubPhase:
			upd.ClearSubPhase()
			changes["sub_phase"] = audit.Change{Old: sub.SubPhase, New: nil}
		case input.SubPhase != nil:
			upd.SetSubPhase(*input.SubPhase)
			changes["sub_phase"] = audit.Change{Old: sub.SubPhase, New: *input.SubPhase}
		}
		if input.WorkEstimate != nil {
			upd.SetWorkEstimate(*input.WorkEstimate)
			changes["work_estimate"] = audit.Change{Old: sub.WorkEstimate, New: *input.WorkEstimate}
		}

		setString := func(field string, val *string, old string, set func(string) *ent.SubcomponentUpdateOne) {
			if val == nil {
				return
			}
			set(*val)
			changes[field] = audit.Change{Old: old, New: *val}
		}
		setString("description", input.Description, sub.Description, upd.SetDescription)
		setString("notes", input.Notes, sub.Notes, upd.SetNotes)
		setString("category", input.Category, sub.Category, upd.SetCategory)
		setString("dependencies", input.Dependencies, sub.Dependencies, upd.SetDependencies)
		setString("owner", input.Owner, sub.Owner, upd.SetOwner)
		setString("assignee", input.Assignee, sub.Assignee, upd.SetAssignee)
		setString("approver", input.Approver, sub.Approver, upd.SetApprover)

		var err error
		updated, err = upd.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("subcomponent")
			}
			return fmt.Errorf("update subcomponent: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "subcomponent",
			EntityID:   sub.ID,
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

	uc.notify(KindSubcomponent)
	return updated, nil
}

// Delete soft-deletes a subcomponent.
func (uc *SubcomponentUseCase) Delete(ctx context.Context, subcomponentID, userID, requestID string) error {
	sub, err := uc.getActive(ctx, subcomponentID)
	if err != nil {
		return err
	}

	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if err := tx.Subcomponent.UpdateOneID(sub.ID).
			SetDeletedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete subcomponent: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "subcomponent",
			EntityID:   sub.ID,
			UserID:     userID,
			Action:     "delete",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.notify(KindSubcomponent)
	return nil
}

// Restore un-deletes a soft-deleted subcomponent.
func (uc *SubcomponentUseCase) Restore(ctx context.Context, subcomponentID, userID, requestID string) (*ent.Subcomponent, error) {
	sub, err := uc.entClient.Subcomponent.Query().
		Where(subcomponent.IDEQ(subcomponentID), subcomponent.DeletedAtNotNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSubcomponentNotFound(subcomponentID)
		}
		return nil, fmt.Errorf("load subcomponent: %w", err)
	}

	var restored *ent.Subcomponent
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		var err error
		restored, err = tx.Subcomponent.UpdateOneID(sub.ID).
			ClearDeletedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("restore subcomponent: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "subcomponent",
			EntityID:   sub.ID,
			UserID:     userID,
			Action:     "restore",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notify(KindSubcomponent)
	return restored, nil
}

// Get returns an active (non-deleted) subcomponent.
func (uc *SubcomponentUseCase) Get(ctx context.Context, subcomponentID string) (*ent.Subcomponent, error) {
	return uc.getActive(ctx, subcomponentID)
}

// List returns active subcomponents, optionally filtered to one solution.
func (uc *SubcomponentUseCase) List(ctx context.Context, solutionID string) ([]*ent.Subcomponent, error) {
	q := uc.entClient.Subcomponent.Query().
		Where(subcomponent.DeletedAtIsNil()).
		Order(ent.Asc(subcomponent.FieldName))
	if solutionID != "" {
		q.Where(subcomponent.SolutionIDEQ(solutionID))
	}
	subs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subcomponents: %w", err)
	}
	return subs, nil
}

func (uc *SubcomponentUseCase) getActive(ctx context.Context, id string) (*ent.Subcomponent, error) {
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

// requireEnabledPhase validates that phaseID is an enabled phase of the
// solution.
func (uc *SubcomponentUseCase) requireEnabledPhase(ctx context.Context, solutionID, phaseID string) error {
	enabled, err := uc.phaseSvc.EnabledSolutionPhases(ctx, solutionID)
	if err != nil {
		return err
	}
	for _, sp := range enabled {
		if sp.PhaseID == phaseID {
			return nil
		}
	}
	return apperrors.BadRequest(apperrors.CodePhaseNotEnabled,
		"phase "+phaseID+" is not enabled for this solution")
}

func (uc *SubcomponentUseCase) notify(kind string) {
	if uc.notifier != nil {
		uc.notifier.EntityChanged(kind)
	}
}
