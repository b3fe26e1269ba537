// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
)

// EnvelopeCreate is the builder for creating a Envelope entity.
type EnvelopeCreate struct {
	config
	mutation *EnvelopeMutation
	hooks    []Hook
}

// SetEnvelopeID sets the "envelope_id" field.
func (ec *EnvelopeCreate) SetEnvelopeID(s string) *EnvelopeCreate {
	ec.mutation.SetEnvelopeID(s)
	return ec
}

// SetXMLFile sets the "xml_file" field.
func (ec *EnvelopeCreate) SetXMLFile(s string) *EnvelopeCreate {
	ec.mutation.SetXMLFile(s)
	return ec
}

// SetNillableXMLFile sets the "xml_file" field if the given value is not nil.
func (ec *EnvelopeCreate) SetNillableXMLFile(s *string) *EnvelopeCreate {
	if s != nil {
		ec.SetXMLFile(*s)
	}
	return ec
}

// SetDeleted sets the "deleted" field.
func (ec *EnvelopeCreate) SetDeleted(b bool) *EnvelopeCreate {
	ec.mutation.SetDeleted(b)
	return ec
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (ec *EnvelopeCreate) SetNillableDeleted(b *bool) *EnvelopeCreate {
	if b != nil {
		ec.SetDeleted(*b)
	}
	return ec
}

// SetCreatedAt sets the "created_at" field.
func (ec *EnvelopeCreate) SetCreatedAt(t time.Time) *EnvelopeCreate {
	ec.mutation.SetCreatedAt(t)
	return ec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ec *EnvelopeCreate) SetNillableCreatedAt(t *time.Time) *EnvelopeCreate {
	if t != nil {
		ec.SetCreatedAt(*t)
	}
	return ec
}

// SetID sets the "id" field.
func (ec *EnvelopeCreate) SetID(u uint) *EnvelopeCreate {
	ec.mutation.SetID(u)
	return ec
}

// Mutation returns the EnvelopeMutation object of the builder.
func (ec *EnvelopeCreate) Mutation() *EnvelopeMutation {
	return ec.mutation
}

// Save creates the Envelope in the database.
func (ec *EnvelopeCreate) Save(ctx context.Context) (*Envelope, error) {
	ec.defaults()
	return withHooks(ctx, ec.sqlSave, ec.mutation, ec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ec *EnvelopeCreate) SaveX(ctx context.Context) *Envelope {
	v, err := ec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ec *EnvelopeCreate) Exec(ctx context.Context) error {
	_, err := ec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ec *EnvelopeCreate) ExecX(ctx context.Context) {
	if err := ec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ec *EnvelopeCreate) defaults() {
	if _, ok := ec.mutation.XMLFile(); !ok {
		v := envelope.DefaultXMLFile
		ec.mutation.SetXMLFile(v)
	}
	if _, ok := ec.mutation.Deleted(); !ok {
		v := envelope.DefaultDeleted
		ec.mutation.SetDeleted(v)
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		v := envelope.DefaultCreatedAt()
		ec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ec *EnvelopeCreate) check() error {
	if _, ok := ec.mutation.EnvelopeID(); !ok {
		return &ValidationError{Name: "envelope_id", err: errors.New(`ent: missing required field "Envelope.envelope_id"`)}
	}
	if v, ok := ec.mutation.EnvelopeID(); ok {
		if err := envelope.EnvelopeIDValidator(v); err != nil {
			return &ValidationError{Name: "envelope_id", err: fmt.Errorf(`ent: validator failed for field "Envelope.envelope_id": %w`, err)}
		}
	}
	if _, ok := ec.mutation.XMLFile(); !ok {
		return &ValidationError{Name: "xml_file", err: errors.New(`ent: missing required field "Envelope.xml_file"`)}
	}
	if _, ok := ec.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "Envelope.deleted"`)}
	}
	if _, ok := ec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Envelope.created_at"`)}
	}
	return nil
}

func (ec *EnvelopeCreate) sqlSave(ctx context.Context) (*Envelope, error) {
	if err := ec.check(); err != nil {
		return nil, err
	}
	_node, _spec := ec.createSpec()
	if err := sqlgraph.CreateNode(ctx, ec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	ec.mutation.id = &_node.ID
	ec.mutation.done = true
	return _node, nil
}

func (ec *EnvelopeCreate) createSpec() (*Envelope, *sqlgraph.CreateSpec) {
	var (
		_node = &Envelope{config: ec.config}
		_spec = sqlgraph.NewCreateSpec(envelope.Table, sqlgraph.NewFieldSpec(envelope.FieldID, field.TypeUint))
	)
	if id, ok := ec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ec.mutation.EnvelopeID(); ok {
		_spec.SetField(envelope.FieldEnvelopeID, field.TypeString, value)
		_node.EnvelopeID = value
	}
	if value, ok := ec.mutation.XMLFile(); ok {
		_spec.SetField(envelope.FieldXMLFile, field.TypeString, value)
		_node.XMLFile = value
	}
	if value, ok := ec.mutation.Deleted(); ok {
		_spec.SetField(envelope.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	if value, ok := ec.mutation.CreatedAt(); ok {
		_spec.SetField(envelope.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EnvelopeCreateBulk is the builder for creating many Envelope entities in bulk.
type EnvelopeCreateBulk struct {
	config
	err      error
	builders []*EnvelopeCreate
}

// Save creates the Envelope entities in the database.
func (ecb *EnvelopeCreateBulk) Save(ctx context.Context) ([]*Envelope, error) {
	if ecb.err != nil {
		return nil, ecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ecb.builders))
	nodes := make([]*Envelope, len(ecb.builders))
	mutators := make([]Mutator, len(ecb.builders))
	for i := range ecb.builders {
		func(i int, root context.Context) {
			builder := ecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnvelopeMutation)
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
					_, err = mutators[i+1].Mutate(root, ecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = uint(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, ecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ecb *EnvelopeCreateBulk) SaveX(ctx context.Context) []*Envelope {
	v, err := ecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ecb *EnvelopeCreateBulk) Exec(ctx context.Context) error {
	_, err := ecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ecb *EnvelopeCreateBulk) ExecX(ctx context.Context) {
	if err := ecb.Exec(ctx); err != nil {
		panic(err)
	}
}
