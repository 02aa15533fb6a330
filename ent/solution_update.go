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
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
)

// SolutionUpdate is the builder for updating Solution entities.
type SolutionUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionMutation
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdate) Where(ps ...predicate.Solution) *SolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SolutionUpdate) SetUpdatedAt(v time.Time) *SolutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SolutionUpdate) SetDeletedAt(v time.Time) *SolutionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableDeletedAt(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SolutionUpdate) ClearDeletedAt() *SolutionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SolutionUpdate) SetName(v string) *SolutionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableName(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SolutionUpdate) SetVersion(v string) *SolutionUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableVersion(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SolutionUpdate) SetStatus(v solution.Status) *SolutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableStatus(v *solution.Status) *SolutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SolutionUpdate) SetPriority(v int) *SolutionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillablePriority(v *int) *SolutionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SolutionUpdate) AddPriority(v int) *SolutionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *SolutionUpdate) SetDueDate(v time.Time) *SolutionUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableDueDate(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *SolutionUpdate) ClearDueDate() *SolutionUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *SolutionUpdate) SetCurrentPhase(v string) *SolutionUpdate {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableCurrentPhase(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *SolutionUpdate) ClearCurrentPhase() *SolutionUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetRagStatus sets the "rag_status" field.
func (_u *SolutionUpdate) SetRagStatus(v solution.RagStatus) *SolutionUpdate {
	_u.mutation.SetRagStatus(v)
	return _u
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableRagStatus(v *solution.RagStatus) *SolutionUpdate {
	if v != nil {
		_u.SetRagStatus(*v)
	}
	return _u
}

// SetRagSource sets the "rag_source" field.
func (_u *SolutionUpdate) SetRagSource(v solution.RagSource) *SolutionUpdate {
	_u.mutation.SetRagSource(v)
	return _u
}

// SetNillableRagSource sets the "rag_source" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableRagSource(v *solution.RagSource) *SolutionUpdate {
	if v != nil {
		_u.SetRagSource(*v)
	}
	return _u
}

// SetRagReason sets the "rag_reason" field.
func (_u *SolutionUpdate) SetRagReason(v string) *SolutionUpdate {
	_u.mutation.SetRagReason(v)
	return _u
}

// SetNillableRagReason sets the "rag_reason" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableRagReason(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetRagReason(*v)
	}
	return _u
}

// ClearRagReason clears the value of the "rag_reason" field.
func (_u *SolutionUpdate) ClearRagReason() *SolutionUpdate {
	_u.mutation.ClearRagReason()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SolutionUpdate) SetDescription(v string) *SolutionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableDescription(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SolutionUpdate) ClearDescription() *SolutionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *SolutionUpdate) SetSuccessCriteria(v string) *SolutionUpdate {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableSuccessCriteria(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *SolutionUpdate) ClearSuccessCriteria() *SolutionUpdate {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SolutionUpdate) SetOwner(v string) *SolutionUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableOwner(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *SolutionUpdate) SetAssignee(v string) *SolutionUpdate {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableAssignee(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// SetApprover sets the "approver" field.
func (_u *SolutionUpdate) SetApprover(v string) *SolutionUpdate {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableApprover(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *SolutionUpdate) ClearApprover() *SolutionUpdate {
	_u.mutation.ClearApprover()
	return _u
}

// SetKeyStakeholder sets the "key_stakeholder" field.
func (_u *SolutionUpdate) SetKeyStakeholder(v string) *SolutionUpdate {
	_u.mutation.SetKeyStakeholder(v)
	return _u
}

// SetNillableKeyStakeholder sets the "key_stakeholder" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableKeyStakeholder(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetKeyStakeholder(*v)
	}
	return _u
}

// ClearKeyStakeholder clears the value of the "key_stakeholder" field.
func (_u *SolutionUpdate) ClearKeyStakeholder() *SolutionUpdate {
	_u.mutation.ClearKeyStakeholder()
	return _u
}

// SetBlockers sets the "blockers" field.
func (_u *SolutionUpdate) SetBlockers(v string) *SolutionUpdate {
	_u.mutation.SetBlockers(v)
	return _u
}

// SetNillableBlockers sets the "blockers" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableBlockers(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetBlockers(*v)
	}
	return _u
}

// ClearBlockers clears the value of the "blockers" field.
func (_u *SolutionUpdate) ClearBlockers() *SolutionUpdate {
	_u.mutation.ClearBlockers()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *SolutionUpdate) SetRisks(v string) *SolutionUpdate {
	_u.mutation.SetRisks(v)
	return _u
}

// SetNillableRisks sets the "risks" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableRisks(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetRisks(*v)
	}
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *SolutionUpdate) ClearRisks() *SolutionUpdate {
	_u.mutation.ClearRisks()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SolutionUpdate) SetCompletedAt(v time.Time) *SolutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableCompletedAt(v *time.Time) *SolutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SolutionUpdate) ClearCompletedAt() *SolutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SolutionUpdate) SetCreatedBy(v string) *SolutionUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SolutionUpdate) SetNillableCreatedBy(v *string) *SolutionUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SolutionUpdate) ClearCreatedBy() *SolutionUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddSolutionPhaseIDs adds the "solution_phases" edge to the SolutionPhase entity by IDs.
func (_u *SolutionUpdate) AddSolutionPhaseIDs(ids ...string) *SolutionUpdate {
	_u.mutation.AddSolutionPhaseIDs(ids...)
	return _u
}

// AddSolutionPhases adds the "solution_phases" edges to the SolutionPhase entity.
func (_u *SolutionUpdate) AddSolutionPhases(v ...*SolutionPhase) *SolutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionPhaseIDs(ids...)
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by IDs.
func (_u *SolutionUpdate) AddSubcomponentIDs(ids ...string) *SolutionUpdate {
	_u.mutation.AddSubcomponentIDs(ids...)
	return _u
}

// AddSubcomponents adds the "subcomponents" edges to the Subcomponent entity.
func (_u *SolutionUpdate) AddSubcomponents(v ...*Subcomponent) *SolutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubcomponentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdate) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearSolutionPhases clears all "solution_phases" edges to the SolutionPhase entity.
func (_u *SolutionUpdate) ClearSolutionPhases() *SolutionUpdate {
	_u.mutation.ClearSolutionPhases()
	return _u
}

// RemoveSolutionPhaseIDs removes the "solution_phases" edge to SolutionPhase entities by IDs.
func (_u *SolutionUpdate) RemoveSolutionPhaseIDs(ids ...string) *SolutionUpdate {
	_u.mutation.RemoveSolutionPhaseIDs(ids...)
	return _u
}

// RemoveSolutionPhases removes "solution_phases" edges to SolutionPhase entities.
func (_u *SolutionUpdate) RemoveSolutionPhases(v ...*SolutionPhase) *SolutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionPhaseIDs(ids...)
}

// ClearSubcomponents clears all "subcomponents" edges to the Subcomponent entity.
func (_u *SolutionUpdate) ClearSubcomponents() *SolutionUpdate {
	_u.mutation.ClearSubcomponents()
	return _u
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to Subcomponent entities by IDs.
func (_u *SolutionUpdate) RemoveSubcomponentIDs(ids ...string) *SolutionUpdate {
	_u.mutation.RemoveSubcomponentIDs(ids...)
	return _u
}

// RemoveSubcomponents removes "subcomponents" edges to Subcomponent entities.
func (_u *SolutionUpdate) RemoveSubcomponents(v ...*Subcomponent) *SolutionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubcomponentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SolutionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := solution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := solution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Solution.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := solution.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Solution.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagStatus(); ok {
		if err := solution.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagSource(); ok {
		if err := solution.RagSourceValidator(v); err != nil {
			return &ValidationError{Name: "rag_source", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_source": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.project"`)
	}
	return nil
}

func (_u *SolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(solution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(solution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(solution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(solution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(solution.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(solution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(solution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(solution.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(solution.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(solution.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(solution.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.RagStatus(); ok {
		_spec.SetField(solution.FieldRagStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RagSource(); ok {
		_spec.SetField(solution.FieldRagSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RagReason(); ok {
		_spec.SetField(solution.FieldRagReason, field.TypeString, value)
	}
	if _u.mutation.RagReasonCleared() {
		_spec.ClearField(solution.FieldRagReason, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(solution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(solution.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(solution.FieldSuccessCriteria, field.TypeString, value)
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(solution.FieldSuccessCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(solution.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(solution.FieldAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(solution.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(solution.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.KeyStakeholder(); ok {
		_spec.SetField(solution.FieldKeyStakeholder, field.TypeString, value)
	}
	if _u.mutation.KeyStakeholderCleared() {
		_spec.ClearField(solution.FieldKeyStakeholder, field.TypeString)
	}
	if value, ok := _u.mutation.Blockers(); ok {
		_spec.SetField(solution.FieldBlockers, field.TypeString, value)
	}
	if _u.mutation.BlockersCleared() {
		_spec.ClearField(solution.FieldBlockers, field.TypeString)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(solution.FieldRisks, field.TypeString, value)
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(solution.FieldRisks, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(solution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(solution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(solution.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(solution.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.SolutionPhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionPhasesIDs(); len(nodes) > 0 && !_u.mutation.SolutionPhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionPhasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubcomponentsIDs(); len(nodes) > 0 && !_u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcomponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionUpdateOne is the builder for updating a single Solution entity.
type SolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SolutionUpdateOne) SetUpdatedAt(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *SolutionUpdateOne) SetDeletedAt(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableDeletedAt(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *SolutionUpdateOne) ClearDeletedAt() *SolutionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *SolutionUpdateOne) SetName(v string) *SolutionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableName(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *SolutionUpdateOne) SetVersion(v string) *SolutionUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableVersion(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SolutionUpdateOne) SetStatus(v solution.Status) *SolutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableStatus(v *solution.Status) *SolutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SolutionUpdateOne) SetPriority(v int) *SolutionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillablePriority(v *int) *SolutionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *SolutionUpdateOne) AddPriority(v int) *SolutionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *SolutionUpdateOne) SetDueDate(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableDueDate(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *SolutionUpdateOne) ClearDueDate() *SolutionUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *SolutionUpdateOne) SetCurrentPhase(v string) *SolutionUpdateOne {
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableCurrentPhase(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *SolutionUpdateOne) ClearCurrentPhase() *SolutionUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetRagStatus sets the "rag_status" field.
func (_u *SolutionUpdateOne) SetRagStatus(v solution.RagStatus) *SolutionUpdateOne {
	_u.mutation.SetRagStatus(v)
	return _u
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableRagStatus(v *solution.RagStatus) *SolutionUpdateOne {
	if v != nil {
		_u.SetRagStatus(*v)
	}
	return _u
}

// SetRagSource sets the "rag_source" field.
func (_u *SolutionUpdateOne) SetRagSource(v solution.RagSource) *SolutionUpdateOne {
	_u.mutation.SetRagSource(v)
	return _u
}

// SetNillableRagSource sets the "rag_source" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableRagSource(v *solution.RagSource) *SolutionUpdateOne {
	if v != nil {
		_u.SetRagSource(*v)
	}
	return _u
}

// SetRagReason sets the "rag_reason" field.
func (_u *SolutionUpdateOne) SetRagReason(v string) *SolutionUpdateOne {
	_u.mutation.SetRagReason(v)
	return _u
}

// SetNillableRagReason sets the "rag_reason" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableRagReason(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetRagReason(*v)
	}
	return _u
}

// ClearRagReason clears the value of the "rag_reason" field.
func (_u *SolutionUpdateOne) ClearRagReason() *SolutionUpdateOne {
	_u.mutation.ClearRagReason()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SolutionUpdateOne) SetDescription(v string) *SolutionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableDescription(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SolutionUpdateOne) ClearDescription() *SolutionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *SolutionUpdateOne) SetSuccessCriteria(v string) *SolutionUpdateOne {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableSuccessCriteria(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *SolutionUpdateOne) ClearSuccessCriteria() *SolutionUpdateOne {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetOwner sets the "owner" field.
func (_u *SolutionUpdateOne) SetOwner(v string) *SolutionUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableOwner(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// SetAssignee sets the "assignee" field.
func (_u *SolutionUpdateOne) SetAssignee(v string) *SolutionUpdateOne {
	_u.mutation.SetAssignee(v)
	return _u
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableAssignee(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetAssignee(*v)
	}
	return _u
}

// SetApprover sets the "approver" field.
func (_u *SolutionUpdateOne) SetApprover(v string) *SolutionUpdateOne {
	_u.mutation.SetApprover(v)
	return _u
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableApprover(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetApprover(*v)
	}
	return _u
}

// ClearApprover clears the value of the "approver" field.
func (_u *SolutionUpdateOne) ClearApprover() *SolutionUpdateOne {
	_u.mutation.ClearApprover()
	return _u
}

// SetKeyStakeholder sets the "key_stakeholder" field.
func (_u *SolutionUpdateOne) SetKeyStakeholder(v string) *SolutionUpdateOne {
	_u.mutation.SetKeyStakeholder(v)
	return _u
}

// SetNillableKeyStakeholder sets the "key_stakeholder" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableKeyStakeholder(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetKeyStakeholder(*v)
	}
	return _u
}

// ClearKeyStakeholder clears the value of the "key_stakeholder" field.
func (_u *SolutionUpdateOne) ClearKeyStakeholder() *SolutionUpdateOne {
	_u.mutation.ClearKeyStakeholder()
	return _u
}

// SetBlockers sets the "blockers" field.
func (_u *SolutionUpdateOne) SetBlockers(v string) *SolutionUpdateOne {
	_u.mutation.SetBlockers(v)
	return _u
}

// SetNillableBlockers sets the "blockers" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableBlockers(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetBlockers(*v)
	}
	return _u
}

// ClearBlockers clears the value of the "blockers" field.
func (_u *SolutionUpdateOne) ClearBlockers() *SolutionUpdateOne {
	_u.mutation.ClearBlockers()
	return _u
}

// SetRisks sets the "risks" field.
func (_u *SolutionUpdateOne) SetRisks(v string) *SolutionUpdateOne {
	_u.mutation.SetRisks(v)
	return _u
}

// SetNillableRisks sets the "risks" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableRisks(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetRisks(*v)
	}
	return _u
}

// ClearRisks clears the value of the "risks" field.
func (_u *SolutionUpdateOne) ClearRisks() *SolutionUpdateOne {
	_u.mutation.ClearRisks()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SolutionUpdateOne) SetCompletedAt(v time.Time) *SolutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableCompletedAt(v *time.Time) *SolutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SolutionUpdateOne) ClearCompletedAt() *SolutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *SolutionUpdateOne) SetCreatedBy(v string) *SolutionUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *SolutionUpdateOne) SetNillableCreatedBy(v *string) *SolutionUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *SolutionUpdateOne) ClearCreatedBy() *SolutionUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddSolutionPhaseIDs adds the "solution_phases" edge to the SolutionPhase entity by IDs.
func (_u *SolutionUpdateOne) AddSolutionPhaseIDs(ids ...string) *SolutionUpdateOne {
	_u.mutation.AddSolutionPhaseIDs(ids...)
	return _u
}

// AddSolutionPhases adds the "solution_phases" edges to the SolutionPhase entity.
func (_u *SolutionUpdateOne) AddSolutionPhases(v ...*SolutionPhase) *SolutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionPhaseIDs(ids...)
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by IDs.
func (_u *SolutionUpdateOne) AddSubcomponentIDs(ids ...string) *SolutionUpdateOne {
	_u.mutation.AddSubcomponentIDs(ids...)
	return _u
}

// AddSubcomponents adds the "subcomponents" edges to the Subcomponent entity.
func (_u *SolutionUpdateOne) AddSubcomponents(v ...*Subcomponent) *SolutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubcomponentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_u *SolutionUpdateOne) Mutation() *SolutionMutation {
	return _u.mutation
}

// ClearSolutionPhases clears all "solution_phases" edges to the SolutionPhase entity.
func (_u *SolutionUpdateOne) ClearSolutionPhases() *SolutionUpdateOne {
	_u.mutation.ClearSolutionPhases()
	return _u
}

// RemoveSolutionPhaseIDs removes the "solution_phases" edge to SolutionPhase entities by IDs.
func (_u *SolutionUpdateOne) RemoveSolutionPhaseIDs(ids ...string) *SolutionUpdateOne {
	_u.mutation.RemoveSolutionPhaseIDs(ids...)
	return _u
}

// RemoveSolutionPhases removes "solution_phases" edges to SolutionPhase entities.
func (_u *SolutionUpdateOne) RemoveSolutionPhases(v ...*SolutionPhase) *SolutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionPhaseIDs(ids...)
}

// ClearSubcomponents clears all "subcomponents" edges to the Subcomponent entity.
func (_u *SolutionUpdateOne) ClearSubcomponents() *SolutionUpdateOne {
	_u.mutation.ClearSubcomponents()
	return _u
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to Subcomponent entities by IDs.
func (_u *SolutionUpdateOne) RemoveSubcomponentIDs(ids ...string) *SolutionUpdateOne {
	_u.mutation.RemoveSubcomponentIDs(ids...)
	return _u
}

// RemoveSubcomponents removes "subcomponents" edges to Subcomponent entities.
func (_u *SolutionUpdateOne) RemoveSubcomponents(v ...*Subcomponent) *SolutionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubcomponentIDs(ids...)
}

// Where appends a list predicates to the SolutionUpdate builder.
func (_u *SolutionUpdateOne) Where(ps ...predicate.Solution) *SolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionUpdateOne) Select(field string, fields ...string) *SolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Solution entity.
func (_u *SolutionUpdateOne) Save(ctx context.Context) (*Solution, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionUpdateOne) SaveX(ctx context.Context) *Solution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SolutionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := solution.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := solution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Solution.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := solution.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Solution.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagStatus(); ok {
		if err := solution.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RagSource(); ok {
		if err := solution.RagSourceValidator(v); err != nil {
			return &ValidationError{Name: "rag_source", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_source": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Solution.project"`)
	}
	return nil
}

func (_u *SolutionUpdateOne) sqlSave(ctx context.Context) (_node *Solution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solution.Table, solution.Columns, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Solution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solution.FieldID)
		for _, f := range fields {
			if !solution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solution.FieldID {
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
		_spec.SetField(solution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(solution.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(solution.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(solution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(solution.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(solution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(solution.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(solution.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(solution.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(solution.FieldCurrentPhase, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(solution.FieldCurrentPhase, field.TypeString)
	}
	if value, ok := _u.mutation.RagStatus(); ok {
		_spec.SetField(solution.FieldRagStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RagSource(); ok {
		_spec.SetField(solution.FieldRagSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RagReason(); ok {
		_spec.SetField(solution.FieldRagReason, field.TypeString, value)
	}
	if _u.mutation.RagReasonCleared() {
		_spec.ClearField(solution.FieldRagReason, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(solution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(solution.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(solution.FieldSuccessCriteria, field.TypeString, value)
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(solution.FieldSuccessCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(solution.FieldOwner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Assignee(); ok {
		_spec.SetField(solution.FieldAssignee, field.TypeString, value)
	}
	if value, ok := _u.mutation.Approver(); ok {
		_spec.SetField(solution.FieldApprover, field.TypeString, value)
	}
	if _u.mutation.ApproverCleared() {
		_spec.ClearField(solution.FieldApprover, field.TypeString)
	}
	if value, ok := _u.mutation.KeyStakeholder(); ok {
		_spec.SetField(solution.FieldKeyStakeholder, field.TypeString, value)
	}
	if _u.mutation.KeyStakeholderCleared() {
		_spec.ClearField(solution.FieldKeyStakeholder, field.TypeString)
	}
	if value, ok := _u.mutation.Blockers(); ok {
		_spec.SetField(solution.FieldBlockers, field.TypeString, value)
	}
	if _u.mutation.BlockersCleared() {
		_spec.ClearField(solution.FieldBlockers, field.TypeString)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(solution.FieldRisks, field.TypeString, value)
	}
	if _u.mutation.RisksCleared() {
		_spec.ClearField(solution.FieldRisks, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(solution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(solution.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(solution.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(solution.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.SolutionPhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionPhasesIDs(); len(nodes) > 0 && !_u.mutation.SolutionPhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionPhasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SolutionPhasesTable,
			Columns: []string{solution.SolutionPhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubcomponentsIDs(); len(nodes) > 0 && !_u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcomponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solution.SubcomponentsTable,
			Columns: []string{solution.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Solution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
