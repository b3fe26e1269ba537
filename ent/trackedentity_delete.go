// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
)

// TrackedEntityDelete is the builder for deleting a TrackedEntity entity.
type TrackedEntityDelete struct {
	config
	hooks    []Hook
	mutation *TrackedEntityMutation
}

// Where appends a list predicates to the TrackedEntityDelete builder.
func (ted *TrackedEntityDelete) Where(ps ...predicate.TrackedEntity) *TrackedEntityDelete {
	ted.mutation.Where(ps...)
	return ted
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ted *TrackedEntityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ted.sqlExec, ted.mutation, ted.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ted *TrackedEntityDelete) ExecX(ctx context.Context) int {
	n, err := ted.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ted *TrackedEntityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(trackedentity.Table, sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint))
	if ps := ted.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ted.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ted.mutation.done = true
	return affected, err
}

// TrackedEntityDeleteOne is the builder for deleting a single TrackedEntity entity.
type TrackedEntityDeleteOne struct {
	ted *TrackedEntityDelete
}

// Where appends a list predicates to the TrackedEntityDelete builder.
func (tedo *TrackedEntityDeleteOne) Where(ps ...predicate.TrackedEntity) *TrackedEntityDeleteOne {
	tedo.ted.mutation.Where(ps...)
	return tedo
}

// Exec executes the deletion query.
func (tedo *TrackedEntityDeleteOne) Exec(ctx context.Context) error {
	n, err := tedo.ted.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{trackedentity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tedo *TrackedEntityDeleteOne) ExecX(ctx context.Context) {
	if err := tedo.Exec(ctx); err != nil {
		panic(err)
	}
}
