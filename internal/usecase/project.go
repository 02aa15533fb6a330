package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tracklite.io/tracklite/ent"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/internal/audit"
	apperrors "tracklite.io/tracklite/internal/pkg/errors"
	"tracklite.io/tracklite/internal/pkg/logger"
)

// CreateProjectInput represents the input for creating a project.
type CreateProjectInput struct {
	Name             string
	NameAbbreviation string
	Status           *project.Status
	Description      string
	SuccessCriteria  string
	Sponsor          string
	UserID           string
	RequestID        string
}

// UpdateProjectInput represents a partial project update.
type UpdateProjectInput struct {
	ProjectID        string
	Name             *string
	NameAbbreviation *string
	Status           *project.Status
	Description      *string
	SuccessCriteria  *string
	Sponsor          *string
	UserID           string
	RequestID        string
}

// ProjectUseCase orchestrates project lifecycle operations.
type ProjectUseCase struct {
	entClient *ent.Client
	recorder  *audit.Recorder
	notifier  Notifier
}

// NewProjectUseCase creates a new ProjectUseCase.
func NewProjectUseCase(entClient *ent.Client, recorder *audit.Recorder) *ProjectUseCase {
	return &ProjectUseCase{entClient: entClient, recorder: recorder}
}

// WithNotifier sets the refresh notifier (optional dependency).
func (uc *ProjectUseCase) WithNotifier(n Notifier) *ProjectUseCase {
	uc.notifier = n
	return uc
}

// Create creates a project.
func (uc *ProjectUseCase) Create(ctx context.Context, input CreateProjectInput) (*ent.Project, error) {
	if len(input.NameAbbreviation) != 4 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"name_abbreviation must be exactly 4 characters")
	}

	dup, err := uc.entClient.Project.Query().
		Where(project.NameEQ(input.Name), project.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check duplicate project: %w", err)
	}
	if dup {
		return nil, apperrors.Conflict(apperrors.CodeProjectExists,
			"a project with this name already exists")
	}

	status := project.StatusNotStarted
	if input.Status != nil {
		status = *input.Status
	}

	var created *ent.Project
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		var err error
		created, err = tx.Project.Create().
			SetID(generateID()).
			SetName(input.Name).
			SetNameAbbreviation(input.NameAbbreviation).
			SetStatus(status).
			SetDescription(input.Description).
			SetSuccessCriteria(input.SuccessCriteria).
			SetSponsor(input.Sponsor).
			SetCreatedBy(input.UserID).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("project")
			}
			return fmt.Errorf("create project: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "project",
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

	uc.notify(KindProject)
	logger.Info("Project created",
		zap.String("project_id", created.ID),
		zap.String("name", input.Name),
	)
	return created, nil
}

// Update applies a partial project update.
func (uc *ProjectUseCase) Update(ctx context.Context, input UpdateProjectInput) (*ent.Project, error) {
	proj, err := uc.getActive(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	if input.NameAbbreviation != nil && len(*input.NameAbbreviation) != 4 {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"name_abbreviation must be exactly 4 characters")
	}
	if input.Name != nil && *input.Name != proj.Name {
		dup, err := uc.entClient.Project.Query().
			Where(
				project.NameEQ(*input.Name),
				project.IDNEQ(proj.ID),
				project.DeletedAtIsNil(),
			).Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("check duplicate project: %w", err)
		}
		if dup {
			return nil, apperrors.Conflict(apperrors.CodeProjectExists,
				"a project with this name already exists")
		}
	}

	var updated *ent.Project
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		upd := tx.Project.UpdateOneID(proj.ID)
		changes := audit.Changes{}

		if input.Name != nil {
			upd.SetName(*input.Name)
			changes["name"] = audit.Change{Old: proj.Name, New: *input.Name}
		}
		if input.NameAbbreviation != nil {
			upd.SetNameAbbreviation(*input.NameAbbreviation)
			changes["name_abbreviation"] = audit.Change{Old: proj.NameAbbreviation, New: *input.NameAbbreviation}
		}
		if input.Status != nil {
			upd.SetStatus(*input.Status)
			changes["status"] = audit.Change{Old: proj.Status, New: *input.Status}
		}
		if input.Description != nil {
			upd.SetDescription(*input.Description)
			changes["description"] = audit.Change{Old: proj.Description, New: *input.Description}
		}
		if input.SuccessCriteria != nil {
			upd.SetSuccessCriteria(*input.SuccessCriteria)
			changes["success_criteria"] = audit.Change{Old: proj.SuccessCriteria, New: *input.SuccessCriteria}
		}
		if input.Sponsor != nil {
			upd.SetSponsor(*input.Sponsor)
			changes["sponsor"] = audit.Change{Old: proj.Sponsor, New: *input.Sponsor}
		}

		var err error
		updated, err = upd.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.ErrWriteConflict("project")
			}
			return fmt.Errorf("update project: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "project",
			EntityID:   proj.ID,
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

	uc.notify(KindProject)
	return updated, nil
}

// Delete soft-deletes a project.
func (uc *ProjectUseCase) Delete(ctx context.Context, projectID, userID, requestID string) error {
	proj, err := uc.getActive(ctx, projectID)
	if err != nil {
		return err
	}

	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		if err := tx.Project.UpdateOneID(proj.ID).
			SetDeletedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "project",
			EntityID:   proj.ID,
			UserID:     userID,
			Action:     "delete",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return txErr
	}

	uc.notify(KindProject)
	return nil
}

// Restore un-deletes a soft-deleted project.
func (uc *ProjectUseCase) Restore(ctx context.Context, projectID, userID, requestID string) (*ent.Project, error) {
	proj, err := uc.entClient.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtNotNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	var restored *ent.Project
	txErr := withTx(ctx, uc.entClient, func(tx *ent.Tx) error {
		var err error
		restored, err = tx.Project.UpdateOneID(proj.ID).
			ClearDeletedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("restore project: %w", err)
		}
		uc.recorder.Record(ctx, tx.ChangeLog, audit.Entry{
			EntityType: "project",
			EntityID:   proj.ID,
			UserID:     userID,
			Action:     "restore",
			RequestID:  requestID,
		})
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.notify(KindProject)
	return restored, nil
}

// Get returns an active (non-deleted) project.
func (uc *ProjectUseCase) Get(ctx context.Context, projectID string) (*ent.Project, error) {
	return uc.getActive(ctx, projectID)
}

// List returns all active projects ordered by name.
func (uc *ProjectUseCase) List(ctx context.Context) ([]*ent.Project, error) {
	projs, err := uc.entClient.Project.Query().
		Where(project.DeletedAtIsNil()).
		Order(ent.Asc(project.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projs, nil
}

func (uc *ProjectUseCase) getActive(ctx context.Context, projectID string) (*ent.Project, error) {
	proj, err := uc.entClient.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeProjectNotFound, "project not found")
		}
		return nil, fmt.Errorf("load project: %w", err)
	}
	return proj, nil
}

func (uc *ProjectUseCase) notify(kind string) {
	if uc.notifier != nil {
		uc.notifier.EntityChanged(kind)
	}
}
