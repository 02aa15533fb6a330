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
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/subcomponent"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdate) SetUpdatedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdate) SetDeletedAt(v time.Time) *ProjectUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDeletedAt(v *time.Time) *ProjectUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdate) ClearDeletedAt() *ProjectUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameAbbreviation sets the "name_abbreviation" field.
func (_u *ProjectUpdate) SetNameAbbreviation(v string) *ProjectUpdate {
	_u.mutation.SetNameAbbreviation(v)
	return _u
}

// SetNillableNameAbbreviation sets the "name_abbreviation" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableNameAbbreviation(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetNameAbbreviation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdate) SetStatus(v project.Status) *ProjectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableStatus(v *project.Status) *ProjectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdate) SetDescription(v string) *ProjectUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableDescription(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectUpdate) ClearDescription() *ProjectUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *ProjectUpdate) SetSuccessCriteria(v string) *ProjectUpdate {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSuccessCriteria(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *ProjectUpdate) ClearSuccessCriteria() *ProjectUpdate {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetSponsor sets the "sponsor" field.
func (_u *ProjectUpdate) SetSponsor(v string) *ProjectUpdate {
	_u.mutation.SetSponsor(v)
	return _u
}

// SetNillableSponsor sets the "sponsor" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSponsor(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetSponsor(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProjectUpdate) SetCreatedBy(v string) *ProjectUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableCreatedBy(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ProjectUpdate) ClearCreatedBy() *ProjectUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *ProjectUpdate) AddSolutionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *ProjectUpdate) AddSolutions(v ...*Solution) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by IDs.
func (_u *ProjectUpdate) AddSubcomponentIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSubcomponentIDs(ids...)
	return _u
}

// AddSubcomponents adds the "subcomponents" edges to the Subcomponent entity.
func (_u *ProjectUpdate) AddSubcomponents(v ...*Subcomponent) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubcomponentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *ProjectUpdate) ClearSolutions() *ProjectUpdate {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *ProjectUpdate) RemoveSolutionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *ProjectUpdate) RemoveSolutions(v ...*Solution) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearSubcomponents clears all "subcomponents" edges to the Subcomponent entity.
func (_u *ProjectUpdate) ClearSubcomponents() *ProjectUpdate {
	_u.mutation.ClearSubcomponents()
	return _u
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to Subcomponent entities by IDs.
func (_u *ProjectUpdate) RemoveSubcomponentIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSubcomponentIDs(ids...)
	return _u
}

// RemoveSubcomponents removes "subcomponents" edges to Subcomponent entities.
func (_u *ProjectUpdate) RemoveSubcomponents(v ...*Subcomponent) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubcomponentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAbbreviation(); ok {
		if err := project.NameAbbreviationValidator(v); err != nil {
			return &ValidationError{Name: "name_abbreviation", err: fmt.Errorf(`ent: validator failed for field "Project.name_abbreviation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAbbreviation(); ok {
		_spec.SetField(project.FieldNameAbbreviation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(project.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(project.FieldSuccessCriteria, field.TypeString, value)
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(project.FieldSuccessCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Sponsor(); ok {
		_spec.SetField(project.FieldSponsor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(project.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(project.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubcomponentsIDs(); len(nodes) > 0 && !_u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcomponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProjectUpdateOne) SetUpdatedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ProjectUpdateOne) SetDeletedAt(v time.Time) *ProjectUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDeletedAt(v *time.Time) *ProjectUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ProjectUpdateOne) ClearDeletedAt() *ProjectUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNameAbbreviation sets the "name_abbreviation" field.
func (_u *ProjectUpdateOne) SetNameAbbreviation(v string) *ProjectUpdateOne {
	_u.mutation.SetNameAbbreviation(v)
	return _u
}

// SetNillableNameAbbreviation sets the "name_abbreviation" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableNameAbbreviation(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetNameAbbreviation(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProjectUpdateOne) SetStatus(v project.Status) *ProjectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableStatus(v *project.Status) *ProjectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProjectUpdateOne) SetDescription(v string) *ProjectUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableDescription(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ProjectUpdateOne) ClearDescription() *ProjectUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSuccessCriteria sets the "success_criteria" field.
func (_u *ProjectUpdateOne) SetSuccessCriteria(v string) *ProjectUpdateOne {
	_u.mutation.SetSuccessCriteria(v)
	return _u
}

// SetNillableSuccessCriteria sets the "success_criteria" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSuccessCriteria(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetSuccessCriteria(*v)
	}
	return _u
}

// ClearSuccessCriteria clears the value of the "success_criteria" field.
func (_u *ProjectUpdateOne) ClearSuccessCriteria() *ProjectUpdateOne {
	_u.mutation.ClearSuccessCriteria()
	return _u
}

// SetSponsor sets the "sponsor" field.
func (_u *ProjectUpdateOne) SetSponsor(v string) *ProjectUpdateOne {
	_u.mutation.SetSponsor(v)
	return _u
}

// SetNillableSponsor sets the "sponsor" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSponsor(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetSponsor(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ProjectUpdateOne) SetCreatedBy(v string) *ProjectUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableCreatedBy(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *ProjectUpdateOne) ClearCreatedBy() *ProjectUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *ProjectUpdateOne) AddSolutionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *ProjectUpdateOne) AddSolutions(v ...*Solution) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddSubcomponentIDs adds the "subcomponents" edge to the Subcomponent entity by IDs.
func (_u *ProjectUpdateOne) AddSubcomponentIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSubcomponentIDs(ids...)
	return _u
}

// AddSubcomponents adds the "subcomponents" edges to the Subcomponent entity.
func (_u *ProjectUpdateOne) AddSubcomponents(v ...*Subcomponent) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubcomponentIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *ProjectUpdateOne) ClearSolutions() *ProjectUpdateOne {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *ProjectUpdateOne) RemoveSolutionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *ProjectUpdateOne) RemoveSolutions(v ...*Solution) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearSubcomponents clears all "subcomponents" edges to the Subcomponent entity.
func (_u *ProjectUpdateOne) ClearSubcomponents() *ProjectUpdateOne {
	_u.mutation.ClearSubcomponents()
	return _u
}

// RemoveSubcomponentIDs removes the "subcomponents" edge to Subcomponent entities by IDs.
func (_u *ProjectUpdateOne) RemoveSubcomponentIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSubcomponentIDs(ids...)
	return _u
}

// RemoveSubcomponents removes "subcomponents" edges to Subcomponent entities.
func (_u *ProjectUpdateOne) RemoveSubcomponents(v ...*Subcomponent) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubcomponentIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProjectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := project.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := project.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Project.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameAbbreviation(); ok {
		if err := project.NameAbbreviationValidator(v); err != nil {
			return &ValidationError{Name: "name_abbreviation", err: fmt.Errorf(`ent: validator failed for field "Project.name_abbreviation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := project.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Project.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
		_spec.SetField(project.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(project.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(project.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NameAbbreviation(); ok {
		_spec.SetField(project.FieldNameAbbreviation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(project.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(project.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(project.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SuccessCriteria(); ok {
		_spec.SetField(project.FieldSuccessCriteria, field.TypeString, value)
	}
	if _u.mutation.SuccessCriteriaCleared() {
		_spec.ClearField(project.FieldSuccessCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Sponsor(); ok {
		_spec.SetField(project.FieldSponsor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(project.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(project.FieldCreatedBy, field.TypeString)
	}
	if _u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SolutionsTable,
			Columns: []string{project.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubcomponentsIDs(); len(nodes) > 0 && !_u.mutation.SubcomponentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubcomponentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SubcomponentsTable,
			Columns: []string{project.SubcomponentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subcomponent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
