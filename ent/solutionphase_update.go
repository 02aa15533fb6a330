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
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SolutionPhaseUpdate is the builder for updating SolutionPhase entities.
type SolutionPhaseUpdate struct {
	config
	hooks    []Hook
	mutation *SolutionPhaseMutation
}

// Where appends a list predicates to the SolutionPhaseUpdate builder.
func (_u *SolutionPhaseUpdate) Where(ps ...predicate.SolutionPhase) *SolutionPhaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SolutionPhaseUpdate) SetUpdatedAt(v time.Time) *SolutionPhaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *SolutionPhaseUpdate) SetIsEnabled(v bool) *SolutionPhaseUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *SolutionPhaseUpdate) SetNillableIsEnabled(v *bool) *SolutionPhaseUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSequenceOverride sets the "sequence_override" field.
func (_u *SolutionPhaseUpdate) SetSequenceOverride(v int) *SolutionPhaseUpdate {
	_u.mutation.ResetSequenceOverride()
	_u.mutation.SetSequenceOverride(v)
	return _u
}

// SetNillableSequenceOverride sets the "sequence_override" field if the given value is not nil.
func (_u *SolutionPhaseUpdate) SetNillableSequenceOverride(v *int) *SolutionPhaseUpdate {
	if v != nil {
		_u.SetSequenceOverride(*v)
	}
	return _u
}

// AddSequenceOverride adds value to the "sequence_override" field.
func (_u *SolutionPhaseUpdate) AddSequenceOverride(v int) *SolutionPhaseUpdate {
	_u.mutation.AddSequenceOverride(v)
	return _u
}

// ClearSequenceOverride clears the value of the "sequence_override" field.
func (_u *SolutionPhaseUpdate) ClearSequenceOverride() *SolutionPhaseUpdate {
	_u.mutation.ClearSequenceOverride()
	return _u
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_u *SolutionPhaseUpdate) AddPhaseStatusIDs(ids ...string) *SolutionPhaseUpdate {
	_u.mutation.AddPhaseStatusIDs(ids...)
	return _u
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SolutionPhaseUpdate) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SolutionPhaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SolutionPhaseMutation object of the builder.
func (_u *SolutionPhaseUpdate) Mutation() *SolutionPhaseMutation {
	return _u.mutation
}

// ClearPhaseStatuses clears all "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SolutionPhaseUpdate) ClearPhaseStatuses() *SolutionPhaseUpdate {
	_u.mutation.ClearPhaseStatuses()
	return _u
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to SubcomponentPhaseStatus entities by IDs.
func (_u *SolutionPhaseUpdate) RemovePhaseStatusIDs(ids ...string) *SolutionPhaseUpdate {
	_u.mutation.RemovePhaseStatusIDs(ids...)
	return _u
}

// RemovePhaseStatuses removes "phase_statuses" edges to SubcomponentPhaseStatus entities.
func (_u *SolutionPhaseUpdate) RemovePhaseStatuses(v ...*SubcomponentPhaseStatus) *SolutionPhaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseStatusIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SolutionPhaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionPhaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SolutionPhaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionPhaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SolutionPhaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := solutionphase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionPhaseUpdate) check() error {
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SolutionPhase.solution"`)
	}
	return nil
}

func (_u *SolutionPhaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionphase.Table, solutionphase.Columns, sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(solutionphase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(solutionphase.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SequenceOverride(); ok {
		_spec.SetField(solutionphase.FieldSequenceOverride, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOverride(); ok {
		_spec.AddField(solutionphase.FieldSequenceOverride, field.TypeInt, value)
	}
	if _u.mutation.SequenceOverrideCleared() {
		_spec.ClearField(solutionphase.FieldSequenceOverride, field.TypeInt)
	}
	if _u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
			err = &NotFoundError{solutionphase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SolutionPhaseUpdateOne is the builder for updating a single SolutionPhase entity.
type SolutionPhaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SolutionPhaseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SolutionPhaseUpdateOne) SetUpdatedAt(v time.Time) *SolutionPhaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *SolutionPhaseUpdateOne) SetIsEnabled(v bool) *SolutionPhaseUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *SolutionPhaseUpdateOne) SetNillableIsEnabled(v *bool) *SolutionPhaseUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetSequenceOverride sets the "sequence_override" field.
func (_u *SolutionPhaseUpdateOne) SetSequenceOverride(v int) *SolutionPhaseUpdateOne {
	_u.mutation.ResetSequenceOverride()
	_u.mutation.SetSequenceOverride(v)
	return _u
}

// SetNillableSequenceOverride sets the "sequence_override" field if the given value is not nil.
func (_u *SolutionPhaseUpdateOne) SetNillableSequenceOverride(v *int) *SolutionPhaseUpdateOne {
	if v != nil {
		_u.SetSequenceOverride(*v)
	}
	return _u
}

// AddSequenceOverride adds value to the "sequence_override" field.
func (_u *SolutionPhaseUpdateOne) AddSequenceOverride(v int) *SolutionPhaseUpdateOne {
	_u.mutation.AddSequenceOverride(v)
	return _u
}

// ClearSequenceOverride clears the value of the "sequence_override" field.
func (_u *SolutionPhaseUpdateOne) ClearSequenceOverride() *SolutionPhaseUpdateOne {
	_u.mutation.ClearSequenceOverride()
	return _u
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_u *SolutionPhaseUpdateOne) AddPhaseStatusIDs(ids ...string) *SolutionPhaseUpdateOne {
	_u.mutation.AddPhaseStatusIDs(ids...)
	return _u
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SolutionPhaseUpdateOne) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SolutionPhaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SolutionPhaseMutation object of the builder.
func (_u *SolutionPhaseUpdateOne) Mutation() *SolutionPhaseMutation {
	return _u.mutation
}

// ClearPhaseStatuses clears all "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_u *SolutionPhaseUpdateOne) ClearPhaseStatuses() *SolutionPhaseUpdateOne {
	_u.mutation.ClearPhaseStatuses()
	return _u
}

// RemovePhaseStatusIDs removes the "phase_statuses" edge to SubcomponentPhaseStatus entities by IDs.
func (_u *SolutionPhaseUpdateOne) RemovePhaseStatusIDs(ids ...string) *SolutionPhaseUpdateOne {
	_u.mutation.RemovePhaseStatusIDs(ids...)
	return _u
}

// RemovePhaseStatuses removes "phase_statuses" edges to SubcomponentPhaseStatus entities.
func (_u *SolutionPhaseUpdateOne) RemovePhaseStatuses(v ...*SubcomponentPhaseStatus) *SolutionPhaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseStatusIDs(ids...)
}

// Where appends a list predicates to the SolutionPhaseUpdate builder.
func (_u *SolutionPhaseUpdateOne) Where(ps ...predicate.SolutionPhase) *SolutionPhaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SolutionPhaseUpdateOne) Select(field string, fields ...string) *SolutionPhaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SolutionPhase entity.
func (_u *SolutionPhaseUpdateOne) Save(ctx context.Context) (*SolutionPhase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SolutionPhaseUpdateOne) SaveX(ctx context.Context) *SolutionPhase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SolutionPhaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SolutionPhaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SolutionPhaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := solutionphase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SolutionPhaseUpdateOne) check() error {
	if _u.mutation.SolutionCleared() && len(_u.mutation.SolutionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SolutionPhase.solution"`)
	}
	return nil
}

func (_u *SolutionPhaseUpdateOne) sqlSave(ctx context.Context) (_node *SolutionPhase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(solutionphase.Table, solutionphase.Columns, sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SolutionPhase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solutionphase.FieldID)
		for _, f := range fields {
			if !solutionphase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != solutionphase.FieldID {
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
		_spec.SetField(solutionphase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(solutionphase.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SequenceOverride(); ok {
		_spec.SetField(solutionphase.FieldSequenceOverride, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceOverride(); ok {
		_spec.AddField(solutionphase.FieldSequenceOverride, field.TypeInt, value)
	}
	if _u.mutation.SequenceOverrideCleared() {
		_spec.ClearField(solutionphase.FieldSequenceOverride, field.TypeInt)
	}
	if _u.mutation.PhaseStatusesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
			Table:   solutionphase.PhaseStatusesTable,
			Columns: []string{solutionphase.PhaseStatusesColumn},
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
	_node = &SolutionPhase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{solutionphase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
