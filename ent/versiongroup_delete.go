// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// VersionGroupDelete is the builder for deleting a VersionGroup entity.
type VersionGroupDelete struct {
	config
	hooks    []Hook
	mutation *VersionGroupMutation
}

// Where appends a list predicates to the VersionGroupDelete builder.
func (vgd *VersionGroupDelete) Where(ps ...predicate.VersionGroup) *VersionGroupDelete {
	vgd.mutation.Where(ps...)
	return vgd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (vgd *VersionGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, vgd.sqlExec, vgd.mutation, vgd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (vgd *VersionGroupDelete) ExecX(ctx context.Context) int {
	n, err := vgd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (vgd *VersionGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(versiongroup.Table, sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint))
	if ps := vgd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, vgd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	vgd.mutation.done = true
	return affected, err
}

// VersionGroupDeleteOne is the builder for deleting a single VersionGroup entity.
type VersionGroupDeleteOne struct {
	vgd *VersionGroupDelete
}

// Where appends a list predicates to the VersionGroupDelete builder.
func (vgdo *VersionGroupDeleteOne) Where(ps ...predicate.VersionGroup) *VersionGroupDeleteOne {
	vgdo.vgd.mutation.Where(ps...)
	return vgdo
}

// Exec executes the deletion query.
func (vgdo *VersionGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := vgdo.vgd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{versiongroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (vgdo *VersionGroupDeleteOne) ExecX(ctx context.Context) {
	if err := vgdo.Exec(ctx); err != nil {
		panic(err)
	}
}
