// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// EnvelopeDelete is the builder for deleting a Envelope entity.
type EnvelopeDelete struct {
	config
	hooks    []Hook
	mutation *EnvelopeMutation
}

// Where appends a list predicates to the EnvelopeDelete builder.
func (ed *EnvelopeDelete) Where(ps ...predicate.Envelope) *EnvelopeDelete {
	ed.mutation.Where(ps...)
	return ed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ed *EnvelopeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ed.sqlExec, ed.mutation, ed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ed *EnvelopeDelete) ExecX(ctx context.Context) int {
	n, err := ed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ed *EnvelopeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(envelope.Table, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeUint))
	if ps := ed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ed.mutation.done = true
	return affected, err
}

// EnvelopeDeleteOne is the builder for deleting a single Envelope entity.
type EnvelopeDeleteOne struct {
	ed *EnvelopeDelete
}

// Where appends a list predicates to the EnvelopeDelete builder.
func (edo *EnvelopeDeleteOne) Where(ps ...predicate.Envelope) *EnvelopeDeleteOne {
	edo.ed.mutation.Where(ps...)
	return edo
}

// Exec executes the deletion query.
func (edo *EnvelopeDeleteOne) Exec(ctx context.Context) error {
	n, err := edo.ed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{envelope.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (edo *EnvelopeDeleteOne) ExecX(ctx context.Context) {
	if err := edo.Exec(ctx); err != nil {
		panic(err)
	}
}
