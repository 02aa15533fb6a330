// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentPhaseStatusCreate is the builder for creating a SubcomponentPhaseStatus entity.
type SubcomponentPhaseStatusCreate struct {
	config
	mutation *SubcomponentPhaseStatusMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubcomponentPhaseStatusCreate) SetCreatedAt(v time.Time) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubcomponentPhaseStatusCreate) SetNillableCreatedAt(v *time.Time) *SubcomponentPhaseStatusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubcomponentPhaseStatusCreate) SetUpdatedAt(v time.Time) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubcomponentPhaseStatusCreate) SetNillableUpdatedAt(v *time.Time) *SubcomponentPhaseStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSubcomponentID sets the "subcomponent_id" field.
func (_c *SubcomponentPhaseStatusCreate) SetSubcomponentID(v string) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetSubcomponentID(v)
	return _c
}

// SetSolutionPhaseID sets the "solution_phase_id" field.
func (_c *SubcomponentPhaseStatusCreate) SetSolutionPhaseID(v string) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetSolutionPhaseID(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *SubcomponentPhaseStatusCreate) SetPhaseID(v string) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetIsComplete sets the "is_complete" field.
func (_c *SubcomponentPhaseStatusCreate) SetIsComplete(v bool) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetIsComplete(v)
	return _c
}

// SetNillableIsComplete sets the "is_complete" field if the given value is not nil.
func (_c *SubcomponentPhaseStatusCreate) SetNillableIsComplete(v *bool) *SubcomponentPhaseStatusCreate {
	if v != nil {
		_c.SetIsComplete(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubcomponentPhaseStatusCreate) SetCompletedAt(v time.Time) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubcomponentPhaseStatusCreate) SetNillableCompletedAt(v *time.Time) *SubcomponentPhaseStatusCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubcomponentPhaseStatusCreate) SetID(v string) *SubcomponentPhaseStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSubcomponent sets the "subcomponent" edge to the Subcomponent entity.
func (_c *SubcomponentPhaseStatusCreate) SetSubcomponent(v *Subcomponent) *SubcomponentPhaseStatusCreate {
	return _c.SetSubcomponentID(v.ID)
}

// SetSolutionPhase sets the "solution_phase" edge to the SolutionPhase entity.
func (_c *SubcomponentPhaseStatusCreate) SetSolutionPhase(v *SolutionPhase) *SubcomponentPhaseStatusCreate {
	return _c.SetSolutionPhaseID(v.ID)
}

// Mutation returns the SubcomponentPhaseStatusMutation object of the builder.
func (_c *SubcomponentPhaseStatusCreate) Mutation() *SubcomponentPhaseStatusMutation {
	return _c.mutation
}

// Save creates the SubcomponentPhaseStatus in the database.
func (_c *SubcomponentPhaseStatusCreate) Save(ctx context.Context) (*SubcomponentPhaseStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubcomponentPhaseStatusCreate) SaveX(ctx context.Context) *SubcomponentPhaseStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubcomponentPhaseStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubcomponentPhaseStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubcomponentPhaseStatusCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subcomponentphasestatus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subcomponentphasestatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		v := subcomponentphasestatus.DefaultIsComplete
		_c.mutation.SetIsComplete(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubcomponentPhaseStatusCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.updated_at"`)}
	}
	if _, ok := _c.mutation.SubcomponentID(); !ok {
		return &ValidationError{Name: "subcomponent_id", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.subcomponent_id"`)}
	}
	if v, ok := _c.mutation.SubcomponentID(); ok {
		if err := subcomponentphasestatus.SubcomponentIDValidator(v); err != nil {
			return &ValidationError{Name: "subcomponent_id", err: fmt.Errorf(`ent: validator failed for field "SubcomponentPhaseStatus.subcomponent_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SolutionPhaseID(); !ok {
		return &ValidationError{Name: "solution_phase_id", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.solution_phase_id"`)}
	}
	if v, ok := _c.mutation.SolutionPhaseID(); ok {
		if err := subcomponentphasestatus.SolutionPhaseIDValidator(v); err != nil {
			return &ValidationError{Name: "solution_phase_id", err: fmt.Errorf(`ent: validator failed for field "SubcomponentPhaseStatus.solution_phase_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.phase_id"`)}
	}
	if v, ok := _c.mutation.PhaseID(); ok {
		if err := subcomponentphasestatus.PhaseIDValidator(v); err != nil {
			return &ValidationError{Name: "phase_id", err: fmt.Errorf(`ent: validator failed for field "SubcomponentPhaseStatus.phase_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsComplete(); !ok {
		return &ValidationError{Name: "is_complete", err: errors.New(`ent: missing required field "SubcomponentPhaseStatus.is_complete"`)}
	}
	if len(_c.mutation.SubcomponentIDs()) == 0 {
		return &ValidationError{Name: "subcomponent", err: errors.New(`ent: missing required edge "SubcomponentPhaseStatus.subcomponent"`)}
	}
	if len(_c.mutation.SolutionPhaseIDs()) == 0 {
		return &ValidationError{Name: "solution_phase", err: errors.New(`ent: missing required edge "SubcomponentPhaseStatus.solution_phase"`)}
	}
	return nil
}

func (_c *SubcomponentPhaseStatusCreate) sqlSave(ctx context.Context) (*SubcomponentPhaseStatus, error) {
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
			return nil, fmt.Errorf("unexpected SubcomponentPhaseStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubcomponentPhaseStatusCreate) createSpec() (*SubcomponentPhaseStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &SubcomponentPhaseStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subcomponentphasestatus.Table, sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(subcomponentphasestatus.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.IsComplete(); ok {
		_spec.SetField(subcomponentphasestatus.FieldIsComplete, field.TypeBool, value)
		_node.IsComplete = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponentphasestatus.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SubcomponentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subcomponentphasestatus.SubcomponentTable,
			Columns: []string{subcomponentphasestatus.SubcomponentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubcomponentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SolutionPhaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subcomponentphasestatus.SolutionPhaseTable,
			Columns: []string{subcomponentphasestatus.SolutionPhaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SolutionPhaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubcomponentPhaseStatusCreateBulk is the builder for creating many SubcomponentPhaseStatus entities in bulk.
type SubcomponentPhaseStatusCreateBulk struct {
	config
	err      error
	builders []*SubcomponentPhaseStatusCreate
}

// Save creates the SubcomponentPhaseStatus entities in the database.
func (_c *SubcomponentPhaseStatusCreateBulk) Save(ctx context.Context) ([]*SubcomponentPhaseStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubcomponentPhaseStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubcomponentPhaseStatusMutation)
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
func (_c *SubcomponentPhaseStatusCreateBulk) SaveX(ctx context.Context) []*SubcomponentPhaseStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubcomponentPhaseStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubcomponentPhaseStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
