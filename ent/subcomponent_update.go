// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/predicate"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentUpdate is the builder for updating Subcomponent entities.
type SubcomponentUpdate struct {
	config
	hooks    []Hook
	mutation *SubcomponentMutation
}

// Where appends a list predicates to the SubcomponentUpdate builder.
func (_u *SubcomponentUpdate) Where(ps ...predicate.Subcomponent) *SubcomponentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubcomponentUpdate) SetUpdatedAt(v time.Time) *SubcomponentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SubcomponentUpdate) SetDeletedAt(v time.Time) *SubcomponentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableDeletedAt(v *time.Time) *SubcomponentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SubcomponentUpdate) ClearDeletedAt() *SubcomponentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SubcomponentUpdate) SetName(v string) *SubcomponentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableName(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubcomponentUpdate) SetStatus(v subcomponent.Status) *SubcomponentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableStatus(v *subcomponent.Status) *SubcomponentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubcomponentUpdate) SetPriority(v int) *SubcomponentUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillablePriority(v *int) *SubcomponentUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SubcomponentUpdate) AddPriority(v int) *SubcomponentUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *SubcomponentUpdate) SetDueDate(v time.Time) *SubcomponentUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableDueDate(v *time.Time) *SubcomponentUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *SubcomponentUpdate) ClearDueDate() *SubcomponentUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSubPhase sets the "sub_phase" field.
func (_u *SubcomponentUpdate) SetSubPhase(v string) *SubcomponentUpdate {
	_u.mutation.SetSubPhase(v)
	return _u
}

// SetNillableSubPhase sets the "sub_phase" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableSubPhase(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetSubPhase(*v)
	}
	return _u
}

// ClearSubPhase clears the value of the "sub_phase" field.
func (_u *SubcomponentUpdate) ClearSubPhase() *SubcomponentUpdate {
	_u.mutation.ClearSubPhase()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubcomponentUpdate) SetDescription(v string) *SubcomponentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableDescription(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubcomponentUpdate) ClearDescription() *SubcomponentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SubcomponentUpdate) SetNotes(v string) *SubcomponentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableNotes(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SubcomponentUpdate) ClearNotes() *SubcomponentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCategory sets the "category" field.
func (_u *SubcomponentUpdate) SetCategory(v string) *SubcomponentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableCategory(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *SubcomponentUpdate) ClearCategory() *SubcomponentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SubcomponentUpdate) SetDependencies(v string) *SubcomponentUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// SetNillableDependencies sets the "dependencies" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableDependencies(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetDependencies(*v)
	}
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SubcomponentUpdate) ClearDependencies() *SubcomponentUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetWorkEstimate sets the "work_estimate" field.
func (_u *SubcomponentUpdate) SetWorkEstimate(v float64) *SubcomponentUpdate {
	_u.mutation.ResetWorkEstimate()
	_u.mutation.SetWorkEstimate(v)
	return _u
}

// SetNillableWorkEstimate sets the "work_estimate" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableWorkEstimate(v *float64) *SubcomponentUpdate {
	if v != nil {
		_u.SetWorkEstimate(*v)
	}
	return _u
}

// AddWorkEstimate adds value to the "work_estimate" field.
func (_u *SubcomponentUpdate) AddWorkEstimate(v float64) *SubcomponentUpdate {
	_u.mutation.AddWorkEstimate(v)
	return _u
}

// ClearWorkEstimate clears the value of the "work_estimate" field.
func (_u *SubcomponentUpdate) ClearWorkEstimate() *SubcomponentUpdate {
	_u.mutation.ClearWorkEstimate()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SubcomponentUpdate) SetOwner(v string) *SubcomponentUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableOwner(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *SubcomponentUpdate) SetAssignee(v string) *SubcomponentUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableAssignee(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// SetApprover sets the "approver" field.
func (_u *SubcomponentUpdate) SetApprover(v string) *SubcomponentUpdate {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableApprover(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *SubcomponentUpdate) ClearApprover() *SubcomponentUpdate {
	_u.mutation.ClearApprover()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubcomponentUpdate) SetCompletedAt(v time.Time) *SubcomponentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableCompletedAt(v *time.Time) *SubcomponentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubcomponentUpdate) ClearCompletedAt() *SubcomponentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SubcomponentUpdate) SetCreatedBy(v string) *SubcomponentUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SubcomponentUpdate) SetNillableCreatedBy(v *string) *SubcomponentUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SubcomponentUpdate) ClearCreatedBy() *SubcomponentUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_u *SubcomponentUpdate) AddPhaseStatusIDs(ids ...string) *SubcomponentUpdate {
	_u.mutation.AddPhaseStatusIDs(ids...)
	return _u
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SubcomponentUpdate) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SubcomponentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SubcomponentMutation object of the builder.
func (_u *SubcomponentUpdate) Mutation() *SubcomponentMutation {
	return _u.mutation
}

// ClearPhaseStatuses clears all "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SubcomponentUpdate) ClearPhaseStatuses() *SubcomponentUpdate {
	_u.mutation.ClearPhaseStatuses()
	return _u
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to SubcomponentPhaseStatus entities by IDs.
func (_u *SubcomponentUpdate) RemovePhaseStatusIDs(ids ...string) *SubcomponentUpdate {
	_u.mutation.RemovePhaseStatusIDs(ids...)
	return _u
}

// RemovePhaseStatuses removes "phase_statuses" edges to SubcomponentPhaseStatus entities.
func (_u *SubcomponentUpdate) RemovePhaseStatuses(v ...*SubcomponentPhaseStatus) *SubcomponentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseStatusIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubcomponentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubcomponentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubcomponentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubcomponentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubcomponentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subcomponent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubcomponentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subcomponent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subcomponent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subcomponent.project"`)
	}
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subcomponent.solution"`)
	}
	return nil
}

func (_u *SubcomponentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subcomponent.Table, subcomponent.Columns, sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subcomponent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(subcomponent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(subcomponent.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subcomponent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subcomponent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subcomponent.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(subcomponent.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(subcomponent.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(subcomponent.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SubPhase(); ok {
		_spec.SetField(subcomponent.FieldSubPhase, field.TypeString, value)
	}
	if _u.mutation.SubPhaseCleared() {
		_spec.ClearField(subcomponent.FieldSubPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subcomponent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subcomponent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(subcomponent.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(subcomponent.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(subcomponent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(subcomponent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(subcomponent.FieldDependencies, field.TypeString, value)
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(subcomponent.FieldDependencies, field.TypeString)
	}
	if value, ok := _u.mutation.WorkEstimate(); ok {
		_spec.SetField(subcomponent.FieldWorkEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkEstimate(); ok {
		_spec.AddField(subcomponent.FieldWorkEstimate, field.TypeFloat64, value)
	}
	if _u.mutation.WorkEstimateCleared() {
		_spec.ClearField(subcomponent.FieldWorkEstimate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(subcomponent.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(subcomponent.FieldAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(subcomponent.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(subcomponent.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subcomponent.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(subcomponent.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(subcomponent.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhaseStatusesIDs(); len(nodes) > 0 && !_u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhaseStatusesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subcomponent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubcomponentUpdateOne is the builder for updating a single Subcomponent entity.
type SubcomponentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubcomponentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubcomponentUpdateOne) SetUpdatedAt(v time.Time) *SubcomponentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SubcomponentUpdateOne) SetDeletedAt(v time.Time) *SubcomponentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableDeletedAt(v *time.Time) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SubcomponentUpdateOne) ClearDeletedAt() *SubcomponentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SubcomponentUpdateOne) SetName(v string) *SubcomponentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableName(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubcomponentUpdateOne) SetStatus(v subcomponent.Status) *SubcomponentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableStatus(v *subcomponent.Status) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubcomponentUpdateOne) SetPriority(v int) *SubcomponentUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillablePriority(v *int) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SubcomponentUpdateOne) AddPriority(v int) *SubcomponentUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *SubcomponentUpdateOne) SetDueDate(v time.Time) *SubcomponentUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableDueDate(v *time.Time) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *SubcomponentUpdateOne) ClearDueDate() *SubcomponentUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetSubPhase sets the "sub_phase" field.
func (_u *SubcomponentUpdateOne) SetSubPhase(v string) *SubcomponentUpdateOne {
	_u.mutation.SetSubPhase(v)
	return _u
}

// SetNillableSubPhase sets the "sub_phase" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableSubPhase(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetSubPhase(*v)
	}
	return _u
}

// ClearSubPhase clears the value of the "sub_phase" field.
func (_u *SubcomponentUpdateOne) ClearSubPhase() *SubcomponentUpdateOne {
	_u.mutation.ClearSubPhase()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubcomponentUpdateOne) SetDescription(v string) *SubcomponentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableDescription(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubcomponentUpdateOne) ClearDescription() *SubcomponentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *SubcomponentUpdateOne) SetNotes(v string) *SubcomponentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableNotes(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *SubcomponentUpdateOne) ClearNotes() *SubcomponentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCategory sets the "category" field.
func (_u *SubcomponentUpdateOne) SetCategory(v string) *SubcomponentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableCategory(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *SubcomponentUpdateOne) ClearCategory() *SubcomponentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *SubcomponentUpdateOne) SetDependencies(v string) *SubcomponentUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// SetNillableDependencies sets the "dependencies" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableDependencies(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetDependencies(*v)
	}
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *SubcomponentUpdateOne) ClearDependencies() *SubcomponentUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetWorkEstimate sets the "work_estimate" field.
func (_u *SubcomponentUpdateOne) SetWorkEstimate(v float64) *SubcomponentUpdateOne {
	_u.mutation.ResetWorkEstimate()
	_u.mutation.SetWorkEstimate(v)
	return _u
}

// SetNillableWorkEstimate sets the "work_estimate" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableWorkEstimate(v *float64) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetWorkEstimate(*v)
	}
	return _u
}

// AddWorkEstimate adds value to the "work_estimate" field.
func (_u *SubcomponentUpdateOne) AddWorkEstimate(v float64) *SubcomponentUpdateOne {
	_u.mutation.AddWorkEstimate(v)
	return _u
}

// ClearWorkEstimate clears the value of the "work_estimate" field.
func (_u *SubcomponentUpdateOne) ClearWorkEstimate() *SubcomponentUpdateOne {
	_u.mutation.ClearWorkEstimate()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SubcomponentUpdateOne) SetOwner(v string) *SubcomponentUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableOwner(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *SubcomponentUpdateOne) SetAssignee(v string) *SubcomponentUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableAssignee(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// SetApprover sets the "approver" field.
func (_u *SubcomponentUpdateOne) SetApprover(v string) *SubcomponentUpdateOne {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableApprover(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *SubcomponentUpdateOne) ClearApprover() *SubcomponentUpdateOne {
	_u.mutation.ClearApprover()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubcomponentUpdateOne) SetCompletedAt(v time.Time) *SubcomponentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableCompletedAt(v *time.Time) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubcomponentUpdateOne) ClearCompletedAt() *SubcomponentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SubcomponentUpdateOne) SetCreatedBy(v string) *SubcomponentUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SubcomponentUpdateOne) SetNillableCreatedBy(v *string) *SubcomponentUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SubcomponentUpdateOne) ClearCreatedBy() *SubcomponentUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_u *SubcomponentUpdateOne) AddPhaseStatusIDs(ids ...string) *SubcomponentUpdateOne {
	_u.mutation.AddPhaseStatusIDs(ids...)
	return _u
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SubcomponentUpdateOne) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SubcomponentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SubcomponentMutation object of the builder.
func (_u *SubcomponentUpdateOne) Mutation() *SubcomponentMutation {
	return _u.mutation
}

// ClearPhaseStatuses clears all "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SubcomponentUpdateOne) ClearPhaseStatuses() *SubcomponentUpdateOne {
	_u.mutation.ClearPhaseStatuses()
	return _u
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to SubcomponentPhaseStatus entities by IDs.
func (_u *SubcomponentUpdateOne) RemovePhaseStatusIDs(ids ...string) *SubcomponentUpdateOne {
	_u.mutation.RemovePhaseStatusIDs(ids...)
	return _u
}

// RemovePhaseStatuses removes "phase_statuses" edges to SubcomponentPhaseStatus entities.
func (_u *SubcomponentUpdateOne) RemovePhaseStatuses(v ...*SubcomponentPhaseStatus) *SubcomponentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseStatusIDs(ids...)
}

// Where appends a list predicates to the SubcomponentUpdate builder.
func (_u *SubcomponentUpdateOne) Where(ps ...predicate.Subcomponent) *SubcomponentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubcomponentUpdateOne) Select(field string, fields ...string) *SubcomponentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subcomponent entity.
func (_u *SubcomponentUpdateOne) Save(ctx context.Context) (*Subcomponent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubcomponentUpdateOne) SaveX(ctx context.Context) *Subcomponent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubcomponentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubcomponentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubcomponentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subcomponent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubcomponentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subcomponent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subcomponent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subcomponent.project"`)
	}
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subcomponent.solution"`)
	}
	return nil
}

func (_u *SubcomponentUpdateOne) sqlSave(ctx context.Context) (_node *Subcomponent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subcomponent.Table, subcomponent.Columns, sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subcomponent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subcomponent.FieldID)
		for _, f := range fields {
			if !subcomponent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subcomponent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subcomponent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(subcomponent.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(subcomponent.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subcomponent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subcomponent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subcomponent.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(subcomponent.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(subcomponent.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(subcomponent.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.SubPhase(); ok {
		_spec.SetField(subcomponent.FieldSubPhase, field.TypeString, value)
	}
	if _u.mutation.SubPhaseCleared() {
		_spec.ClearField(subcomponent.FieldSubPhase, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subcomponent.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subcomponent.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(subcomponent.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(subcomponent.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(subcomponent.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(subcomponent.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(subcomponent.FieldDependencies, field.TypeString, value)
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(subcomponent.FieldDependencies, field.TypeString)
	}
	if value, ok := _u.mutation.WorkEstimate(); ok {
		_spec.SetField(subcomponent.FieldWorkEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkEstimate(); ok {
		_spec.AddField(subcomponent.FieldWorkEstimate, field.TypeFloat64, value)
	}
	if _u.mutation.WorkEstimateCleared() {
		_spec.ClearField(subcomponent.FieldWorkEstimate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(subcomponent.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(subcomponent.FieldAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(subcomponent.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(subcomponent.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponent.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subcomponent.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(subcomponent.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(subcomponent.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhaseStatusesIDs(); len(nodes) > 0 && !_u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhaseStatusesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subcomponent.PhaseStatusesTable,
			Columns: []string{subcomponent.PhaseStatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subcomponent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subcomponent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
