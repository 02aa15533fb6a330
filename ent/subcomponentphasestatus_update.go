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
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentPhaseStatusUpdate is the builder for updating SubcomponentPhaseStatus entities.
type SubcomponentPhaseStatusUpdate struct {
	config
	hooks    []Hook
	mutation *SubcomponentPhaseStatusMutation
}

// Where appends a list predicates to the SubcomponentPhaseStatusUpdate builder.
func (_u *SubcomponentPhaseStatusUpdate) Where(ps ...predicate.SubcomponentPhaseStatus) *SubcomponentPhaseStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubcomponentPhaseStatusUpdate) SetUpdatedAt(v time.Time) *SubcomponentPhaseStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *SubcomponentPhaseStatusUpdate) SetIsComplete(v bool) *SubcomponentPhaseStatusUpdate {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *SubcomponentPhaseStatusUpdate) SetNillableIsComplete(v *bool) *SubcomponentPhaseStatusUpdate {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubcomponentPhaseStatusUpdate) SetCompletedAt(v time.Time) *SubcomponentPhaseStatusUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubcomponentPhaseStatusUpdate) SetNillableCompletedAt(v *time.Time) *SubcomponentPhaseStatusUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubcomponentPhaseStatusUpdate) ClearCompletedAt() *SubcomponentPhaseStatusUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SubcomponentPhaseStatusMutation object of the builder.
func (_u *SubcomponentPhaseStatusUpdate) Mutation() *SubcomponentPhaseStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubcomponentPhaseStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubcomponentPhaseStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubcomponentPhaseStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubcomponentPhaseStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubcomponentPhaseStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subcomponentphasestatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubcomponentPhaseStatusUpdate) check() error {
	if _u.mutation.SubcomponentCleared() && len(_u.mutation.SubcomponentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubcomponentPhaseStatus.subcomponent"`)
	}
	if _u.mutation.SolutionPhaseCleared() && len(_u.mutation.SolutionPhaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubcomponentPhaseStatus.solution_phase"`)
	}
	return nil
}

func (_u *SubcomponentPhaseStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subcomponentphasestatus.Table, subcomponentphasestatus.Columns, sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(subcomponentphasestatus.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subcomponentphasestatus.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subcomponentphasestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubcomponentPhaseStatusUpdateOne is the builder for updating a single SubcomponentPhaseStatus entity.
type SubcomponentPhaseStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubcomponentPhaseStatusMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubcomponentPhaseStatusUpdateOne) SetUpdatedAt(v time.Time) *SubcomponentPhaseStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetIsComplete sets the "is_complete" field.
func (_u *SubcomponentPhaseStatusUpdateOne) SetIsComplete(v bool) *SubcomponentPhaseStatusUpdateOne {
	_u.mutation.SetIsComplete(v)
	return _u
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_u *SubcomponentPhaseStatusUpdateOne) SetNillableIsComplete(v *bool) *SubcomponentPhaseStatusUpdateOne {
	if v != nil {
		_u.SetIsComplete(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SubcomponentPhaseStatusUpdateOne) SetCompletedAt(v time.Time) *SubcomponentPhaseStatusUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SubcomponentPhaseStatusUpdateOne) SetNillableCompletedAt(v *time.Time) *SubcomponentPhaseStatusUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SubcomponentPhaseStatusUpdateOne) ClearCompletedAt() *SubcomponentPhaseStatusUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the SubcomponentPhaseStatusMutation object of the builder.
func (_u *SubcomponentPhaseStatusUpdateOne) Mutation() *SubcomponentPhaseStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubcomponentPhaseStatusUpdate builder.
func (_u *SubcomponentPhaseStatusUpdateOne) Where(ps ...predicate.SubcomponentPhaseStatus) *SubcomponentPhaseStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubcomponentPhaseStatusUpdateOne) Select(field string, fields ...string) *SubcomponentPhaseStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubcomponentPhaseStatus entity.
func (_u *SubcomponentPhaseStatusUpdateOne) Save(ctx context.Context) (*SubcomponentPhaseStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubcomponentPhaseStatusUpdateOne) SaveX(ctx context.Context) *SubcomponentPhaseStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubcomponentPhaseStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubcomponentPhaseStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubcomponentPhaseStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subcomponentphasestatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubcomponentPhaseStatusUpdateOne) check() error {
	if _u.mutation.SubcomponentCleared() && len(_u.mutation.SubcomponentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubcomponentPhaseStatus.subcomponent"`)
	}
	if _u.mutation.SolutionPhaseCleared() && len(_u.mutation.SolutionPhaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubcomponentPhaseStatus.solution_phase"`)
	}
	return nil
}

func (_u *SubcomponentPhaseStatusUpdateOne) sqlSave(ctx context.Context) (_node *SubcomponentPhaseStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subcomponentphasestatus.Table, subcomponentphasestatus.Columns, sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubcomponentPhaseStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subcomponentphasestatus.FieldID)
		for _, f := range fields {
			if !subcomponentphasestatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subcomponentphasestatus.FieldID {
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
		_spec.SetField(subcomponentphasestatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IsComplete(); ok {
		_spec.SetField(subcomponentphasestatus.FieldIsComplete, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(subcomponentphasestatus.FieldCompletedAt, field.TypeTime)
	}
	_node = &SubcomponentPhaseStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subcomponentphasestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
