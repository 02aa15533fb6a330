// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"tracklite.io/tracklite/ent/predicate"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentPhaseStatusDelete is the builder for deleting a SubcomponentPhaseStatus entity.
type SubcomponentPhaseStatusDelete struct {
	config
	hooks    []Hook
	mutation *SubcomponentPhaseStatusMutation
}

// Where appends a list predicates to the SubcomponentPhaseStatusDelete builder.
func (_d *SubcomponentPhaseStatusDelete) Where(ps ...predicate.SubcomponentPhaseStatus) *SubcomponentPhaseStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SubcomponentPhaseStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubcomponentPhaseStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SubcomponentPhaseStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(subcomponentphasestatus.Table, sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SubcomponentPhaseStatusDeleteOne is the builder for deleting a single SubcomponentPhaseStatus entity.
type SubcomponentPhaseStatusDeleteOne struct {
	_d *SubcomponentPhaseStatusDelete
}

// Where appends a list predicates to the SubcomponentPhaseStatusDelete builder.
func (_d *SubcomponentPhaseStatusDeleteOne) Where(ps ...predicate.SubcomponentPhaseStatus) *SubcomponentPhaseStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SubcomponentPhaseStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{subcomponentphasestatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubcomponentPhaseStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
