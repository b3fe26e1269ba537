// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
)

// EnvelopeUpdate is the builder for updating Envelope entities.
type EnvelopeUpdate struct {
	config
	hooks    []Hook
	mutation *EnvelopeMutation
}

// Where appends a list predicates to the EnvelopeUpdate builder.
func (eu *EnvelopeUpdate) Where(ps ...predicate.Envelope) *EnvelopeUpdate {
	eu.mutation.Where(ps...)
	return eu
}

// SetXMLFile sets the "xml_file" field.
func (eu *EnvelopeUpdate) SetXMLFile(s string) *EnvelopeUpdate {
	eu.mutation.SetXMLFile(s)
	return eu
}

// SetNillableXMLFile sets the "xml_file" field if the given value is not nil.
func (eu *EnvelopeUpdate) SetNillableXMLFile(s *string) *EnvelopeUpdate {
	if s != nil {
		eu.SetXMLFile(*s)
	}
	return eu
}

// SetDeleted sets the "deleted" field.
func (eu *EnvelopeUpdate) SetDeleted(b bool) *EnvelopeUpdate {
	eu.mutation.SetDeleted(b)
	return eu
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (eu *EnvelopeUpdate) SetNillableDeleted(b *bool) *EnvelopeUpdate {
	if b != nil {
		eu.SetDeleted(*b)
	}
	return eu
}

// Mutation returns the EnvelopeMutation object of the builder.
func (eu *EnvelopeUpdate) Mutation() *EnvelopeMutation {
	return eu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (eu *EnvelopeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, eu.sqlSave, eu.mutation, eu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (eu *EnvelopeUpdate) SaveX(ctx context.Context) int {
	affected, err := eu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (eu *EnvelopeUpdate) Exec(ctx context.Context) error {
	_, err := eu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (eu *EnvelopeUpdate) ExecX(ctx context.Context) {
	if err := eu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (eu *EnvelopeUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(envelope.Table, envelope.Columns, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeUint))
	if ps := eu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := eu.mutation.XMLFile(); ok {
		_spec.SetField(envelope.FieldXMLFile, field.TypeString, value)
	}
	if value, ok := eu.mutation.Deleted(); ok {
		_spec.SetField(envelope.FieldDeleted, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, eu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	eu.mutation.done = true
	return n, nil
}

// EnvelopeUpdateOne is the builder for updating a single Envelope entity.
type EnvelopeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnvelopeMutation
}

// SetXMLFile sets the "xml_file" field.
func (euo *EnvelopeUpdateOne) SetXMLFile(s string) *EnvelopeUpdateOne {
	euo.mutation.SetXMLFile(s)
	return euo
}

// SetNillableXMLFile sets the "xml_file" field if the given value is not nil.
func (euo *EnvelopeUpdateOne) SetNillableXMLFile(s *string) *EnvelopeUpdateOne {
	if s != nil {
		euo.SetXMLFile(*s)
	}
	return euo
}

// SetDeleted sets the "deleted" field.
func (euo *EnvelopeUpdateOne) SetDeleted(b bool) *EnvelopeUpdateOne {
	euo.mutation.SetDeleted(b)
	return euo
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (euo *EnvelopeUpdateOne) SetNillableDeleted(b *bool) *EnvelopeUpdateOne {
	if b != nil {
		euo.SetDeleted(*b)
	}
	return euo
}

// Mutation returns the EnvelopeMutation object of the builder.
func (euo *EnvelopeUpdateOne) Mutation() *EnvelopeMutation {
	return euo.mutation
}

// Where appends a list predicates to the EnvelopeUpdate builder.
func (euo *EnvelopeUpdateOne) Where(ps ...predicate.Envelope) *EnvelopeUpdateOne {
	euo.mutation.Where(ps...)
	return euo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (euo *EnvelopeUpdateOne) Select(field string, fields ...string) *EnvelopeUpdateOne {
	euo.fields = append([]string{field}, fields...)
	return euo
}

// Save executes the query and returns the updated Envelope entity.
func (euo *EnvelopeUpdateOne) Save(ctx context.Context) (*Envelope, error) {
	return withHooks(ctx, euo.sqlSave, euo.mutation, euo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (euo *EnvelopeUpdateOne) SaveX(ctx context.Context) *Envelope {
	node, err := euo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (euo *EnvelopeUpdateOne) Exec(ctx context.Context) error {
	_, err := euo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (euo *EnvelopeUpdateOne) ExecX(ctx context.Context) {
	if err := euo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (euo *EnvelopeUpdateOne) sqlSave(ctx context.Context) (_node *Envelope, err error) {
	_spec := sqlgraph.NewUpdateSpec(envelope.Table, envelope.Columns, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeUint))
	id, ok := euo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Envelope.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := euo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, envelope.FieldID)
		for _, f := range fields {
			if !envelope.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != envelope.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := euo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := euo.mutation.XMLFile(); ok {
		_spec.SetField(envelope.FieldXMLFile, field.TypeString, value)
	}
	if value, ok := euo.mutation.Deleted(); ok {
		_spec.SetField(envelope.FieldDeleted, field.TypeBool, value)
	}
	_node = &Envelope{config: euo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, euo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{envelope.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	euo.mutation.done = true
	return _node, nil
}
