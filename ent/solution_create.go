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
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
)

// SolutionCreate is the builder for creating a Solution entity.
type SolutionCreate struct {
	config
	mutation *SolutionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SolutionCreate) SetCreatedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCreatedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SolutionCreate) SetUpdatedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableUpdatedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *SolutionCreate) SetDeletedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableDeletedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *SolutionCreate) SetProjectID(v string) *SolutionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SolutionCreate) SetName(v string) *SolutionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SolutionCreate) SetVersion(v string) *SolutionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SolutionCreate) SetStatus(v solution.Status) *SolutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableStatus(v *solution.Status) *SolutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *SolutionCreate) SetPriority(v int) *SolutionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *SolutionCreate) SetNillablePriority(v *int) *SolutionCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *SolutionCreate) SetDueDate(v time.Time) *SolutionCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableDueDate(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *SolutionCreate) SetCurrentPhase(v string) *SolutionCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCurrentPhase(v *string) *SolutionCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetRagStatus sets the "rag_status" field.
func (_c *SolutionCreate) SetRagStatus(v solution.RagStatus) *SolutionCreate {
	_c.mutation.SetRagStatus(v)
	return _c
}

// SetNillableRagStatus sets the "rag_status" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableRagStatus(v *solution.RagStatus) *SolutionCreate {
	if v != nil {
		_c.SetRagStatus(*v)
	}
	return _c
}

// SetRagSource sets the "rag_source" field.
func (_c *SolutionCreate) SetRagSource(v solution.RagSource) *SolutionCreate {
	_c.mutation.SetRagSource(v)
	return _c
}

// SetNillableRagSource sets the "rag_source" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableRagSource(v *solution.RagSource) *SolutionCreate {
	if v != nil {
		_c.SetRagSource(*v)
	}
	return _c
}

// SetRagReason sets the "rag_reason" field.
func (_c *SolutionCreate) SetRagReason(v string) *SolutionCreate {
	_c.mutation.SetRagReason(v)
	return _c
}

// SetNillableRagReason sets the "rag_reason" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableRagReason(v *string) *SolutionCreate {
	if v != nil {
		_c.SetRagReason(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SolutionCreate) SetDescription(v string) *SolutionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableDescription(v *string) *SolutionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_c *SolutionCreate) SetSuccessCriteria(v string) *SolutionCreate {
	_c.mutation.SetSuccessCriteria(v)
	return _c
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableSuccessCriteria(v *string) *SolutionCreate {
	if v != nil {
		_c.SetSuccessCriteria(*v)
	}
	return _c
}

// SetOwner sets the "owner" field.
func (_c *SolutionCreate) SetOwner(v string) *SolutionCreate {
	_c.mutation.SetOwner(v)
	return _c
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableOwner(v *string) *SolutionCreate {
	if v != nil {
		_c.SetOwner(*v)
	}
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *SolutionCreate) SetAssignee(v string) *SolutionCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableAssignee(v *string) *SolutionCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetApprover sets the "approver" field.
func (_c *SolutionCreate) SetApprover(v string) *SolutionCreate {
	_c.mutation.SetApprover(v)
	return _c
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableApprover(v *string) *SolutionCreate {
	if v != nil {
		_c.SetApprover(*v)
	}
	return _c
}

// SetKeyStakeholder sets the "key_stakeholder" field.
func (_c *SolutionCreate) SetKeyStakeholder(v string) *SolutionCreate {
	_c.mutation.SetKeyStakeholder(v)
	return _c
}

// SetNillableKeyStakeholder sets the "key_stakeholder" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableKeyStakeholder(v *string) *SolutionCreate {
	if v != nil {
		_c.SetKeyStakeholder(*v)
	}
	return _c
}

// SetBlockers sets the "blockers" field.
func (_c *SolutionCreate) SetBlockers(v string) *SolutionCreate {
	_c.mutation.SetBlockers(v)
	return _c
}

// SetNillableBlockers sets the "blockers" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableBlockers(v *string) *SolutionCreate {
	if v != nil {
		_c.SetBlockers(*v)
	}
	return _c
}

// SetRisks sets the "risks" field.
func (_c *SolutionCreate) SetRisks(v string) *SolutionCreate {
	_c.mutation.SetRisks(v)
	return _c
}

// SetNillableRisks sets the "risks" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableRisks(v *string) *SolutionCreate {
	if v != nil {
		_c.SetRisks(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SolutionCreate) SetCompletedAt(v time.Time) *SolutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCompletedAt(v *time.Time) *SolutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *SolutionCreate) SetCreatedBy(v string) *SolutionCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *SolutionCreate) SetNillableCreatedBy(v *string) *SolutionCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SolutionCreate) SetID(v string) *SolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SolutionCreate) SetProject(v *Project) *SolutionCreate {
	return _c.SetProjectID(v.ID)
}

// AddSolutionPhaseIDs adds the "solution_phases" edge to the SolutionPhase entity by IDs.
func (_c *SolutionCreate) AddSolutionPhaseIDs(ids ...string) *SolutionCreate {
	_c.mutation.AddSolutionPhaseIDs(ids...)
	return _c
}

// AddSolutionPhases adds the "solution_phases" edges to the SolutionPhase entity.
func (_c *SolutionCreate) AddSolutionPhases(v ...*SolutionPhase) *SolutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSolutionPhaseIDs(ids...)
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by IDs.
func (_c *SolutionCreate) AddSubcomponentIDs(ids ...string) *SolutionCreate {
	_c.mutation.AddSubcomponentIDs(ids...)
	return _c
}

// AddSubcomponents adds the "subcomponents" edges to the Subcomponent entity.
func (_c *SolutionCreate) AddSubcomponents(v ...*Subcomponent) *SolutionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubcomponentIDs(ids...)
}

// Mutation returns the SolutionMutation object of the builder.
func (_c *SolutionCreate) Mutation() *SolutionMutation {
	return _c.mutation
}

// Save creates the Solution in the database.
func (_c *SolutionCreate) Save(ctx context.Context) (*Solution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolutionCreate) SaveX(ctx context.Context) *Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolutionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := solution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := solution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := solution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := solution.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.RagStatus(); !ok {
		v := solution.DefaultRagStatus
		_c.mutation.SetRagStatus(v)
	}
	if _, ok := _c.mutation.RagSource(); !ok {
		v := solution.DefaultRagSource
		_c.mutation.SetRagSource(v)
	}
	if _, ok := _c.mutation.Owner(); !ok {
		v := solution.DefaultOwner
		_c.mutation.SetOwner(v)
	}
	if _, ok := _c.mutation.Assignee(); !ok {
		v := solution.DefaultAssignee
		_c.mutation.SetAssignee(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolutionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Solution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Solution.updated_at"`)}
	}
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Solution.project_id"`)}
	}
	if v, ok := _c.mutation.ProjectID(); ok {
		if err := solution.ProjectIDValidator(v); err != nil {
			return &ValidationError{Name: "project_id", err: fmt.Errorf(`ent: validator failed for field "Solution.project_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Solution.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := solution.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Solution.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Solution.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := solution.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Solution.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Solution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := solution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Solution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Solution.priority"`)}
	}
	if _, ok := _c.mutation.RagStatus(); !ok {
		return &ValidationError{Name: "rag_status", err: errors.New(`ent: missing required field "Solution.rag_status"`)}
	}
	if v, ok := _c.mutation.RagStatus(); ok {
		if err := solution.RagStatusValidator(v); err != nil {
			return &ValidationError{Name: "rag_status", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RagSource(); !ok {
		return &ValidationError{Name: "rag_source", err: errors.New(`ent: missing required field "Solution.rag_source"`)}
	}
	if v, ok := _c.mutation.RagSource(); ok {
		if err := solution.RagSourceValidator(v); err != nil {
			return &ValidationError{Name: "rag_source", err: fmt.Errorf(`ent: validator failed for field "Solution.rag_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Owner(); !ok {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required field "Solution.owner"`)}
	}
	if _, ok := _c.mutation.Assignee(); !ok {
		return &ValidationError{Name: "assignee", err: errors.New(`ent: missing required field "Solution.assignee"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Solution.project"`)}
	}
	return nil
}

func (_c *SolutionCreate) sqlSave(ctx context.Context) (*Solution, error) {
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
			return nil, fmt.Errorf("unexpected Solution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SolutionCreate) createSpec() (*Solution, *sqlgraph.CreateSpec) {
	var (
		_node = &Solution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solution.Table, sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(solution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(solution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(solution.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(solution.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(solution.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(solution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(solution.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(solution.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(solution.FieldCurrentPhase, field.TypeString, value)
		_node.CurrentPhase = &value
	}
	if value, ok := _c.mutation.RagStatus(); ok {
		_spec.SetField(solution.FieldRagStatus, field.TypeEnum, value)
		_node.RagStatus = value
	}
	if value, ok := _c.mutation.RagSource(); ok {
		_spec.SetField(solution.FieldRagSource, field.TypeEnum, value)
		_node.RagSource = value
	}
	if value, ok := _c.mutation.RagReason(); ok {
		_spec.SetField(solution.FieldRagReason, field.TypeString, value)
		_node.RagReason = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(solution.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SuccessCriteria(); ok {
		_spec.SetField(solution.FieldSuccessCriteria, field.TypeString, value)
		_node.SuccessCriteria = value
	}
	if value, ok := _c.mutation.Owner(); ok {
		_spec.SetField(solution.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(solution.FieldAssignee, field.TypeString, value)
		_node.Assignee = value
	}
	if value, ok := _c.mutation.Approver(); ok {
		_spec.SetField(solution.FieldApprover, field.TypeString, value)
		_node.Approver = value
	}
	if value, ok := _c.mutation.KeyStakeholder(); ok {
		_spec.SetField(solution.FieldKeyStakeholder, field.TypeString, value)
		_node.KeyStakeholder = value
	}
	if value, ok := _c.mutation.Blockers(); ok {
		_spec.SetField(solution.FieldBlockers, field.TypeString, value)
		_node.Blockers = value
	}
	if value, ok := _c.mutation.Risks(); ok {
		_spec.SetField(solution.FieldRisks, field.TypeString, value)
		_node.Risks = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(solution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(solution.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solution.ProjectTable,
			Columns: []string{solution.ProjectColumn},
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
	if nodes := _c.mutation.SolutionPhasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubcomponentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SolutionCreateBulk is the builder for creating many Solution entities in bulk.
type SolutionCreateBulk struct {
	config
	err      error
	builders []*SolutionCreate
}

// Save creates the Solution entities in the database.
func (_c *SolutionCreateBulk) Save(ctx context.Context) ([]*Solution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Solution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolutionMutation)
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
func (_c *SolutionCreateBulk) SaveX(ctx context.Context) []*Solution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
