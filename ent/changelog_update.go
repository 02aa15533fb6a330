// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/ent/predicate"
)

// ChangeLogUpdate is the builder for updating ChangeLog entities.
type ChangeLogUpdate struct {
	config
	hooks    []Hook
	mutation *ChangeLogMutation
}

// Where appends a list predicates to the ChangeLogUpdate builder.
func (_u *ChangeLogUpdate) Where(ps ...predicate.ChangeLog) *ChangeLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ChangeLogMutation object of the builder.
func (_u *ChangeLogUpdate) Mutation() *ChangeLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangeLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangeLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(changelog.Table, changelog.Columns, sqlgraph.NewFieldSpec(changelog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FieldFieldCleared() {
		_spec.ClearField(changelog.FieldField, field.TypeString)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(changelog.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(changelog.FieldNewValue, field.TypeString)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(changelog.FieldRequestID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangeLogUpdateOne is the builder for updating a single ChangeLog entity.
type ChangeLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangeLogMutation
}

// Mutation returns the ChangeLogMutation object of the builder.
func (_u *ChangeLogUpdateOne) Mutation() *ChangeLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChangeLogUpdate builder.
func (_u *ChangeLogUpdateOne) Where(ps ...predicate.ChangeLog) *ChangeLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangeLogUpdateOne) Select(field string, fields ...string) *ChangeLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChangeLog entity.
func (_u *ChangeLogUpdateOne) Save(ctx context.Context) (*ChangeLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangeLogUpdateOne) SaveX(ctx context.Context) *ChangeLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangeLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangeLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChangeLogUpdateOne) sqlSave(ctx context.Context) (_node *ChangeLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(changelog.Table, changelog.Columns, sqlgraph.NewFieldSpec(changelog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChangeLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changelog.FieldID)
		for _, f := range fields {
			if !changelog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changelog.FieldID {
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
	if _u.mutation.FieldFieldCleared() {
		_spec.ClearField(changelog.FieldField, field.TypeString)
	}
	if _u.mutation.OldValueCleared() {
		_spec.ClearField(changelog.FieldOldValue, field.TypeString)
	}
	if _u.mutation.NewValueCleared() {
		_spec.ClearField(changelog.FieldNewValue, field.TypeString)
	}
	if _u.mutation.RequestIDCleared() {
		_spec.ClearField(changelog.FieldRequestID, field.TypeString)
	}
	_node = &ChangeLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changelog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
