// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// WorkBasketDelete is the builder for deleting a WorkBasket entity.
type WorkBasketDelete struct {
	config
	hooks    []Hook
	mutation *WorkBasketMutation
}

// Where appends a list predicates to the WorkBasketDelete builder.
func (wbd *WorkBasketDelete) Where(ps ...predicate.WorkBasket) *WorkBasketDelete {
	wbd.mutation.Where(ps...)
	return wbd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wbd *WorkBasketDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wbd.sqlExec, wbd.mutation, wbd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wbd *WorkBasketDelete) ExecX(ctx context.Context) int {
	n, err := wbd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wbd *WorkBasketDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workbasket.Table, sqlgraph.NewFieldSpec(workbasket.FieldID, field.TypeUint))
	if ps := wbd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wbd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wbd.mutation.done = true
	return affected, err
}

// WorkBasketDeleteOne is the builder for deleting a single WorkBasket entity.
type WorkBasketDeleteOne struct {
	wbd *WorkBasketDelete
}

// Where appends a list predicates to the WorkBasketDelete builder.
func (wbdo *WorkBasketDeleteOne) Where(ps ...predicate.WorkBasket) *WorkBasketDeleteOne {
	wbdo.wbd.mutation.Where(ps...)
	return wbdo
}

// Exec executes the deletion query.
func (wbdo *WorkBasketDeleteOne) Exec(ctx context.Context) error {
	n, err := wbdo.wbd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workbasket.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wbdo *WorkBasketDeleteOne) ExecX(ctx context.Context) {
	if err := wbdo.Exec(ctx); err != nil {
		panic(err)
	}
}
