// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/changelog"
)

// ChangeLogCreate is the builder for creating a ChangeLog entity.
type ChangeLogCreate struct {
	config
	mutation *ChangeLogMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChangeLogCreate) SetCreatedAt(v time.Time) *ChangeLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChangeLogCreate) SetNillableCreatedAt(v *time.Time) *ChangeLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *ChangeLogCreate) SetEntityType(v string) *ChangeLogCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *ChangeLogCreate) SetEntityID(v string) *ChangeLogCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ChangeLogCreate) SetAction(v changelog.Action) *ChangeLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetField sets the "field" field.
func (_c *ChangeLogCreate) SetField(v string) *ChangeLogCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetNillableField sets the "field" field if the given value is not nil.
func (_c *ChangeLogCreate) SetNillableField(v *string) *ChangeLogCreate {
	if v != nil {
		_c.SetField(*v)
	}
	return _c
}

// SetOldValue sets the "old_value" field.
func (_c *ChangeLogCreate) SetOldValue(v string) *ChangeLogCreate {
	_c.mutation.SetOldValue(v)
	return _c
}

// SetNillableOldValue sets the "old_value" field if the given value is not nil.
func (_c *ChangeLogCreate) SetNillableOldValue(v *string) *ChangeLogCreate {
	if v != nil {
		_c.SetOldValue(*v)
	}
	return _c
}

// SetNewValue sets the "new_value" field.
func (_c *ChangeLogCreate) SetNewValue(v string) *ChangeLogCreate {
	_c.mutation.SetNewValue(v)
	return _c
}

// SetNillableNewValue sets the "new_value" field if the given value is not nil.
func (_c *ChangeLogCreate) SetNillableNewValue(v *string) *ChangeLogCreate {
	if v != nil {
		_c.SetNewValue(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ChangeLogCreate) SetUserID(v string) *ChangeLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ChangeLogCreate) SetRequestID(v string) *ChangeLogCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_c *ChangeLogCreate) SetNillableRequestID(v *string) *ChangeLogCreate {
	if v != nil {
		_c.SetRequestID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangeLogCreate) SetID(v string) *ChangeLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChangeLogMutation object of the builder.
func (_c *ChangeLogCreate) Mutation() *ChangeLogMutation {
	return _c.mutation
}

// Save creates the ChangeLog in the database.
func (_c *ChangeLogCreate) Save(ctx context.Context) (*ChangeLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangeLogCreate) SaveX(ctx context.Context) *ChangeLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangeLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := changelog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangeLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChangeLog.created_at"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "ChangeLog.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := changelog.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "ChangeLog.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "ChangeLog.entity_id"`)}
	}
	if v, ok := _c.mutation.EntityID(); ok {
		if err := changelog.EntityIDValidator(v); err != nil {
			return &ValidationError{Name: "entity_id", err: fmt.Errorf(`ent: validator failed for field "ChangeLog.entity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ChangeLog.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := changelog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ChangeLog.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ChangeLog.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := changelog.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ChangeLog.user_id": %w`, err)}
		}
	}
	return nil
}

func (_c *ChangeLogCreate) sqlSave(ctx context.Context) (*ChangeLog, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ChangeLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangeLogCreate) createSpec() (*ChangeLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ChangeLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changelog.Table, sqlgraph.NewFieldSpec(changelog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(changelog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(changelog.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(changelog.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(changelog.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(changelog.FieldField, field.TypeString, value)
		_node.Field = &value
	}
	if value, ok := _c.mutation.OldValue(); ok {
		_spec.SetField(changelog.FieldOldValue, field.TypeString, value)
		_node.OldValue = &value
	}
	if value, ok := _c.mutation.NewValue(); ok {
		_spec.SetField(changelog.FieldNewValue, field.TypeString, value)
		_node.NewValue = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(changelog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RequestID(); ok {
		_spec.SetField(changelog.FieldRequestID, field.TypeString, value)
		_node.RequestID = &value
	}
	return _node, _spec
}

// ChangeLogCreateBulk is the builder for creating many ChangeLog entities in bulk.
type ChangeLogCreateBulk struct {
	config
	err      error
	builders []*ChangeLogCreate
}

// Save creates the ChangeLog entities in the database.
func (_c *ChangeLogCreateBulk) Save(ctx context.Context) ([]*ChangeLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChangeLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangeLogMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChangeLogCreateBulk) SaveX(ctx context.Context) []*ChangeLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangeLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangeLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
