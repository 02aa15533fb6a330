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
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/ent/predicate"
)

// PhaseUpdate is the builder for updating Phase entities.
type PhaseUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseMutation
}

// Where appends a list predicates to the PhaseUpdate builder.
func (_u *PhaseUpdate) Where(ps ...predicate.Phase) *PhaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhaseUpdate) SetUpdatedAt(v time.Time) *PhaseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPhaseGroup sets the "phase_group" field.
func (_u *PhaseUpdate) SetPhaseGroup(v string) *PhaseUpdate {
	_u.mutation.SetPhaseGroup(v)
	return _u
}

// SetNillablePhaseGroup sets the "phase_group" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillablePhaseGroup(v *string) *PhaseUpdate {
	if v != nil {
		_u.SetPhaseGroup(*v)
	}
	return _u
}

// SetPhaseName sets the "phase_name" field.
func (_u *PhaseUpdate) SetPhaseName(v string) *PhaseUpdate {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillablePhaseName(v *string) *PhaseUpdate {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PhaseUpdate) SetSequence(v int) *PhaseUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PhaseUpdate) SetNillableSequence(v *int) *PhaseUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PhaseUpdate) AddSequence(v int) *PhaseUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the PhaseMutation object of the builder.
func (_u *PhaseUpdate) Mutation() *PhaseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhaseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := phase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseUpdate) check() error {
	if v, ok := _u.mutation.PhaseGroup(); ok {
		if err := phase.PhaseGroupValidator(v); err != nil {
			return &ValidationError{Name: "phase_group", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhaseName(); ok {
		if err := phase.PhaseNameValidator(v); err != nil {
			return &ValidationError{Name: "phase_name", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sequence(); ok {
		if err := phase.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Phase.sequence": %w`, err)}
		}
	}
	return nil
}

func (_u *PhaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phase.Table, phase.Columns, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(phase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PhaseGroup(); ok {
		_spec.SetField(phase.FieldPhaseGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(phase.FieldPhaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(phase.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(phase.FieldSequence, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseUpdateOne is the builder for updating a single Phase entity.
type PhaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhaseUpdateOne) SetUpdatedAt(v time.Time) *PhaseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPhaseGroup sets the "phase_group" field.
func (_u *PhaseUpdateOne) SetPhaseGroup(v string) *PhaseUpdateOne {
	_u.mutation.SetPhaseGroup(v)
	return _u
}

// SetNillablePhaseGroup sets the "phase_group" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillablePhaseGroup(v *string) *PhaseUpdateOne {
	if v != nil {
		_u.SetPhaseGroup(*v)
	}
	return _u
}

// SetPhaseName sets the "phase_name" field.
func (_u *PhaseUpdateOne) SetPhaseName(v string) *PhaseUpdateOne {
	_u.mutation.SetPhaseName(v)
	return _u
}

// SetNillablePhaseName sets the "phase_name" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillablePhaseName(v *string) *PhaseUpdateOne {
	if v != nil {
		_u.SetPhaseName(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PhaseUpdateOne) SetSequence(v int) *PhaseUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PhaseUpdateOne) SetNillableSequence(v *int) *PhaseUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PhaseUpdateOne) AddSequence(v int) *PhaseUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// Mutation returns the PhaseMutation object of the builder.
func (_u *PhaseUpdateOne) Mutation() *PhaseMutation {
	return _u.mutation
}

// Where appends a list predicates to the PhaseUpdate builder.
func (_u *PhaseUpdateOne) Where(ps ...predicate.Phase) *PhaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseUpdateOne) Select(field string, fields ...string) *PhaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Phase entity.
func (_u *PhaseUpdateOne) Save(ctx context.Context) (*Phase, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseUpdateOne) SaveX(ctx context.Context) *Phase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhaseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := phase.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseUpdateOne) check() error {
	if v, ok := _u.mutation.PhaseGroup(); ok {
		if err := phase.PhaseGroupValidator(v); err != nil {
			return &ValidationError{Name: "phase_group", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_group": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhaseName(); ok {
		if err := phase.PhaseNameValidator(v); err != nil {
			return &ValidationError{Name: "phase_name", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sequence(); ok {
		if err := phase.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Phase.sequence": %w`, err)}
		}
	}
	return nil
}

func (_u *PhaseUpdateOne) sqlSave(ctx context.Context) (_node *Phase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phase.Table, phase.Columns, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Phase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phase.FieldID)
		for _, f := range fields {
			if !phase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phase.FieldID {
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
		_spec.SetField(phase.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PhaseGroup(); ok {
		_spec.SetField(phase.FieldPhaseGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhaseName(); ok {
		_spec.SetField(phase.FieldPhaseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(phase.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(phase.FieldSequence, field.TypeInt, value)
	}
	_node = &Phase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
