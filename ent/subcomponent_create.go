// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentCreate is the builder for creating a Subcomponent entity.
type SubcomponentCreate struct {
	config
	mutation *SubcomponentMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubcomponentCreate) SetCreatedAt(v time.Time) *SubcomponentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableCreatedAt(v *time.Time) *SubcomponentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubcomponentCreate) SetUpdatedAt(v time.Time) *SubcomponentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableUpdatedAt(v *time.Time) *SubcomponentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SubcomponentCreate) SetDeletedAt(v time.Time) *SubcomponentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableDeletedAt(v *time.Time) *SubcomponentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SubcomponentCreate) SetProjectID(v string) *SubcomponentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSolutionID sets the "solution_id" field.
func (_c *SubcomponentCreate) SetSolutionID(v string) *SubcomponentCreate {
	_c.mutation.SetSolutionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SubcomponentCreate) SetName(v string) *SubcomponentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubcomponentCreate) SetStatus(v subcomponent.Status) *SubcomponentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableStatus(v *subcomponent.Status) *SubcomponentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SubcomponentCreate) SetPriority(v int) *SubcomponentCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillablePriority(v *int) *SubcomponentCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *SubcomponentCreate) SetDueDate(v time.Time) *SubcomponentCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableDueDate(v *time.Time) *SubcomponentCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetSubPhase sets the "sub_phase" field.
func (_c *SubcomponentCreate) SetSubPhase(v string) *SubcomponentCreate {
	_c.mutation.SetSubPhase(v)
	return _c
}

// SetNillableSubPhase sets the "sub_phase" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableSubPhase(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetSubPhase(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubcomponentCreate) SetDescription(v string) *SubcomponentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableDescription(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SubcomponentCreate) SetNotes(v string) *SubcomponentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableNotes(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *SubcomponentCreate) SetCategory(v string) *SubcomponentCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableCategory(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *SubcomponentCreate) SetDependencies(v string) *SubcomponentCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetNillableDependencies sets the "dependencies" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableDependencies(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetDependencies(*v)
	}
	return _c
}

// SetWorkEstimate sets the "work_estimate" field.
func (_c *SubcomponentCreate) SetWorkEstimate(v float64) *SubcomponentCreate {
	_c.mutation.SetWorkEstimate(v)
	return _c
}

// SetNillableWorkEstimate sets the "work_estimate" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableWorkEstimate(v *float64) *SubcomponentCreate {
	if v != nil {
		_c.SetWorkEstimate(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *SubcomponentCreate) SetOwner(v string) *SubcomponentCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableOwner(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *SubcomponentCreate) SetAssignee(v string) *SubcomponentCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableAssignee(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetApprover sets the "approver" field.
func (_c *SubcomponentCreate) SetApprover(v string) *SubcomponentCreate {
	_c.mutation.SetApprover(v)
	return _c
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableApprover(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetApprover(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubcomponentCreate) SetCompletedAt(v time.Time) *SubcomponentCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableCompletedAt(v *time.Time) *SubcomponentCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SubcomponentCreate) SetCreatedBy(v string) *SubcomponentCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *SubcomponentCreate) SetNillableCreatedBy(v *string) *SubcomponentCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubcomponentCreate) SetID(v string) *SubcomponentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SubcomponentCreate) SetProject(v *Project) *SubcomponentCreate {
	return _c.SetProjectID(v.ID)
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_c *SubcomponentCreate) SetSolution(v *Solution) *SubcomponentCreate {
	return _c.SetSolutionID(v.ID)
}

// AddPhaseStatusIDs adds the "phase_statuses" edge to the SubcomponentPhaseStatus entity by IDs.
func (_c *SubcomponentCreate) AddPhaseStatusIDs(ids ...string) *SubcomponentCreate {
	_c.mutation.AddPhaseStatusIDs(ids...)
	return _c
}

// AddPhaseStatuses adds the "phase_statuses" edges to the SubcomponentPhaseStatus entity.
func (_c *SubcomponentCreate) AddPhaseStatuses(v ...*SubcomponentPhaseStatus) *SubcomponentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhaseStatusIDs(ids...)
}

// Mutation returns the SubcomponentMutation object of the builder.
func (_c *SubcomponentCreate) Mutation() *SubcomponentMutation {
	return _c.mutation
}

// Save creates the Subcomponent in the database.
func (_c *SubcomponentCreate) Save(ctx context.Context) (*Subcomponent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubcomponentCreate) SaveX(ctx context.Context) *Subcomponent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubcomponentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubcomponentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubcomponentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subcomponent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := subcomponent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := subcomponent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := subcomponent.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Owner(); !ok {
		v := subcomponent.DefaultOwner
		_c.mutation.SetOwner(v)
	}
	if _, ok := _c.mutation.Assignee(); !ok {
		v := subcomponent.DefaultAssignee
		_c.mutation.SetAssignee(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubcomponentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subcomponent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subcomponent.updated_at"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Subcomponent.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := subcomponent.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SolutionID(); !ok {
		return &ValidationError{Name: "solution_id", err: errors.New(`ent: missing required field "Subcomponent.solution_id"`)}
	}
	if v, ok := _c.mutation.SolutionID(); ok {
		if err := subcomponent.SolutionIDValidator(v); err != nil {
			return &ValidationError{Name: "solution_id", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.solution_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subcomponent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subcomponent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Subcomponent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subcomponent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subcomponent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Subcomponent.priority"`)}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "Subcomponent.owner"`)}
	}
	if _, ok := _c.mutation.Assignee(); !ok {
		return &ValidationError{Name: "assignee", err: errors.New(`ent: missing required field "Subcomponent.assignee"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Subcomponent.project"`)}
	}
	if len(_c.mutation.SolutionIDs()) == 0 {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required edge "Subcomponent.solution"`)}
	}
	return nil
}

func (_c *SubcomponentCreate) sqlSave(ctx context.Context) (*Subcomponent, error) {
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
			return nil, fmt.Errorf("unexpected Subcomponent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubcomponentCreate) createSpec() (*Subcomponent, *sqlgraph.CreateSpec) {
	var (
		_node = &Subcomponent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subcomponent.Table, sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subcomponent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(subcomponent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(subcomponent.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subcomponent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subcomponent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(subcomponent.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(subcomponent.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.SubPhase(); ok {
		_spec.SetField(subcomponent.FieldSubPhase, field.TypeString, value)
		_node.SubPhase = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(subcomponent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(subcomponent.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(subcomponent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(subcomponent.FieldDependencies, field.TypeString, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.WorkEstimate(); ok {
		_spec.SetField(subcomponent.FieldWorkEstimate, field.TypeFloat64, value)
		_node.WorkEstimate = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(subcomponent.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(subcomponent.FieldAssignee, field.TypeString, value)
		_node.Assignee = value
	}
	if value, ok := _c.mutation.Approver(); ok {
		_spec.SetField(subcomponent.FieldApprover, field.TypeString, value)
		_node.Approver = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subcomponent.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(subcomponent.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subcomponent.ProjectTable,
			Columns: []string{subcomponent.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subcomponent.SolutionTable,
			Columns: []string{subcomponent.SolutionColumn},
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubcomponentCreateBulk is the builder for creating many Subcomponent entities in bulk.
type SubcomponentCreateBulk struct {
	config
	err      error
	builders []*SubcomponentCreate
}

// Save creates the Subcomponent entities in the database.
func (_c *SubcomponentCreateBulk) Save(ctx context.Context) ([]*Subcomponent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subcomponent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubcomponentMutation)
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
func (_c *SubcomponentCreateBulk) SaveX(ctx context.Context) []*Subcomponent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubcomponentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubcomponentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
