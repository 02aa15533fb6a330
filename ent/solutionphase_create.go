// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SolutionPhaseCreate is the builder for creating a SolutionPhase entity.
type SolutionPhaseCreate struct {
	config
	mutation *SolutionPhaseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SolutionPhaseCreate) SetCreatedAt(v time.Time) *SolutionPhaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SolutionPhaseCreate) SetNillableCreatedAt(v *time.Time) *SolutionPhaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SolutionPhaseCreate) SetUpdatedAt(v time.Time) *SolutionPhaseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SolutionPhaseCreate) SetNillableUpdatedAt(v *time.Time) *SolutionPhaseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSolutionID sets the "solution_id" field.
func (_c *SolutionPhaseCreate) SetSolutionID(v string) *SolutionPhaseCreate {
	_c.mutation.SetSolutionID(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *SolutionPhaseCreate) SetPhaseID(v string) *SolutionPhaseCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *SolutionPhaseCreate) SetIsEnabled(v bool) *SolutionPhaseCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *SolutionPhaseCreate) SetNillableIsEnabled(v *bool) *SolutionPhaseCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetSequenceOverride sets the "sequence_override" field.
func (_c *SolutionPhaseCreate) SetSequenceOverride(v int) *SolutionPhaseCreate {
	_c.mutation.SetSequenceOverride(v)
	return _c
}

// SetNillableSequenceOverride sets the "sequence_override" field if the given value is not nil.
func (_c *SolutionPhaseCreate) SetNillableSequenceOverride(v *int) *SolutionPhaseCreate {
	if v != nil {
		_c.SetSequenceOverride(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SolutionPhaseCreate) SetID(v string) *SolutionPhaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_c *SolutionPhaseCreate) SetSolution(v *Solution) *SolutionPhaseCreate {
	return _c.SetSolutionID(v.ID)
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_c *SolutionPhaseCreate) AddPhaseStatusIDs(ids ...string) *SolutionPhaseCreate {
	_c.mutation.AddPhaseStatusIDs(ids...)
	return _c
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_c *SolutionPhaseCreate) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SolutionPhaseCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SolutionPhaseMutation object of the builder.
func (_c *SolutionPhaseCreate) Mutation() *SolutionPhaseMutation {
	return _c.mutation
}

// Save creates the SolutionPhase in the database.
func (_c *SolutionPhaseCreate) Save(ctx context.Context) (*SolutionPhase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolutionPhaseCreate) SaveX(ctx context.Context) *SolutionPhase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionPhaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionPhaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolutionPhaseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := solutionphase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := solutionphase.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := solutionphase.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolutionPhaseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SolutionPhase.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SolutionPhase.updated_at"`)}
	}
	if _, ok := _c.mutation.SolutionID(); !ok {
		return &ValidationError{Name: "solution_id", err: errors.New(`ent: missing required field "SolutionPhase.solution_id"`)}
	}
	if v, ok := _c.mutation.SolutionID(); ok {
		if err := solutionphase.SolutionIDValidator(v); err != nil {
			return &ValidationError{Name: "solution_id", err: fmt.Errorf(`ent: validator failed for field "SolutionPhase.solution_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "SolutionPhase.phase_id"`)}
	}
	if v, ok := _c.mutation.PhaseID(); ok {
		if err := solutionphase.PhaseIDValidator(v); err != nil {
			return &ValidationError{Name: "phase_id", err: fmt.Errorf(`ent: validator failed for field "SolutionPhase.phase_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "SolutionPhase.is_enabled"`)}
	}
	if len(_c.mutation.SolutionIDs()) == 0 {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required edge "SolutionPhase.solution"`)}
	}
	return nil
}

func (_c *SolutionPhaseCreate) sqlSave(ctx context.Context) (*SolutionPhase, error) {
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
			return nil, fmt.Errorf("unexpected SolutionPhase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SolutionPhaseCreate) createSpec() (*SolutionPhase, *sqlgraph.CreateSpec) {
	var (
		_node = &SolutionPhase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solutionphase.Table, sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(solutionphase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(solutionphase.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(solutionphase.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(solutionphase.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.SequenceOverride(); ok {
		_spec.SetField(solutionphase.FieldSequenceOverride, field.TypeInt, value)
		_node.SequenceOverride = &value
	}
	if nodes := _c.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solutionphase.SolutionTable,
			Columns: []string{solutionphase.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SolutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PhaseStatusesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SolutionPhaseCreateBulk is the builder for creating many SolutionPhase entities in bulk.
type SolutionPhaseCreateBulk struct {
	config
	err      error
	builders []*SolutionPhaseCreate
}

// Save creates the SolutionPhase entities in the database.
func (_c *SolutionPhaseCreateBulk) Save(ctx context.Context) ([]*SolutionPhase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolutionPhase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolutionPhaseMutation)
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
func (_c *SolutionPhaseCreateBulk) SaveX(ctx context.Context) []*SolutionPhase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionPhaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionPhaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
