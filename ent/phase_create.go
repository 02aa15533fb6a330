// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/phase"
)

// PhaseCreate is the builder for creating a Phase entity.
type PhaseCreate struct {
	config
	mutation *PhaseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhaseCreate) SetCreatedAt(v time.Time) *PhaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhaseCreate) SetNillableCreatedAt(v *time.Time) *PhaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PhaseCreate) SetUpdatedAt(v time.Time) *PhaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PhaseCreate) SetNillableUpdatedAt(v *time.Time) *PhaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPhaseGroup sets the "phase_group" field.
func (_c *PhaseCreate) SetPhaseGroup(v string) *PhaseCreate {
	_c.mutation.SetPhaseGroup(v)
	return _c
}

// SetPhaseName sets the "phase_name" field.
func (_c *PhaseCreate) SetPhaseName(v string) *PhaseCreate {
	_c.mutation.SetPhaseName(v)
	return _c
}

// SetSequence sets the "sequence" field.
func (_c *PhaseCreate) SetSequence(v int) *PhaseCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PhaseCreate) SetID(v string) *PhaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PhaseMutation object of the builder.
func (_c *PhaseCreate) Mutation() *PhaseMutation {
	return _c.mutation
}

// Save creates the Phase in the database.
func (_c *PhaseCreate) Save(ctx context.Context) (*Phase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseCreate) SaveX(ctx context.Context) *Phase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := phase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := phase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Phase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Phase.updated_at"`)}
	}
	if _, ok := _c.mutation.PhaseGroup(); !ok {
		return &ValidationError{Name: "phase_group", err: errors.New(`ent: missing required field "Phase.phase_group"`)}
	}
	if v, ok := _c.mutation.PhaseGroup(); ok {
		if err := phase.PhaseGroupValidator(v); err != nil {
			return &ValidationError{Name: "phase_group", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_group": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhaseName(); !ok {
		return &ValidationError{Name: "phase_name", err: errors.New(`ent: missing required field "Phase.phase_name"`)}
	}
	if v, ok := _c.mutation.PhaseName(); ok {
		if err := phase.PhaseNameValidator(v); err != nil {
			return &ValidationError{Name: "phase_name", err: fmt.Errorf(`ent: validator failed for field "Phase.phase_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Phase.sequence"`)}
	}
	if v, ok := _c.mutation.Sequence(); ok {
		if err := phase.SequenceValidator(v); err != nil {
			return &ValidationError{Name: "sequence", err: fmt.Errorf(`ent: validator failed for field "Phase.sequence": %w`, err)}
		}
	}
	return nil
}

func (_c *PhaseCreate) sqlSave(ctx context.Context) (*Phase, error) {
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
			return nil, fmt.Errorf("unexpected Phase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseCreate) createSpec() (*Phase, *sqlgraph.CreateSpec) {
	var (
		_node = &Phase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phase.Table, sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(phase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(phase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PhaseGroup(); ok {
		_spec.SetField(phase.FieldPhaseGroup, field.TypeString, value)
		_node.PhaseGroup = value
	}
	if value, ok := _c.mutation.PhaseName(); ok {
		_spec.SetField(phase.FieldPhaseName, field.TypeString, value)
		_node.PhaseName = value
	}
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(phase.FieldSequence, field.TypeInt, value)
		_node.Sequence = value
	}
	return _node, _spec
}

// PhaseCreateBulk is the builder for creating many Phase entities in bulk.
type PhaseCreateBulk struct {
	config
	err      error
	builders []*PhaseCreate
}

// Save creates the Phase entities in the database.
func (_c *PhaseCreateBulk) Save(ctx context.Context) ([]*Phase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Phase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseMutation)
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
func (_c *PhaseCreateBulk) SaveX(ctx context.Context) []*Phase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
