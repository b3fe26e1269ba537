// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// TrackedEntityCreate is the builder for creating a TrackedEntity entity.
type TrackedEntityCreate struct {
	config
	mutation *TrackedEntityMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (tec *TrackedEntityCreate) SetKind(s string) *TrackedEntityCreate {
	tec.mutation.SetKind(s)
	return tec
}

// SetVersionGroupID sets the "version_group_id" field.
func (tec *TrackedEntityCreate) SetVersionGroupID(u uint) *TrackedEntityCreate {
	tec.mutation.SetVersionGroupID(u)
	return tec
}

// SetTransactionID sets the "transaction_id" field.
func (tec *TrackedEntityCreate) SetTransactionID(u uint) *TrackedEntityCreate {
	tec.mutation.SetTransactionID(u)
	return tec
}

// SetUpdateType sets the "update_type" field.
func (tec *TrackedEntityCreate) SetUpdateType(tt trackedentity.UpdateType) *TrackedEntityCreate {
	tec.mutation.SetUpdateType(tt)
	return tec
}

// SetSid sets the "sid" field.
func (tec *TrackedEntityCreate) SetSid(i int) *TrackedEntityCreate {
	tec.mutation.SetSid(i)
	return tec
}

// SetNillableSid sets the "sid" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableSid(i *int) *TrackedEntityCreate {
	if i != nil {
		tec.SetSid(*i)
	}
	return tec
}

// SetTypeCode sets the "type_code" field.
func (tec *TrackedEntityCreate) SetTypeCode(s string) *TrackedEntityCreate {
	tec.mutation.SetTypeCode(s)
	return tec
}

// SetNillableTypeCode sets the "type_code" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableTypeCode(s *string) *TrackedEntityCreate {
	if s != nil {
		tec.SetTypeCode(*s)
	}
	return tec
}

// SetCode sets the "code" field.
func (tec *TrackedEntityCreate) SetCode(s string) *TrackedEntityCreate {
	tec.mutation.SetCode(s)
	return tec
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableCode(s *string) *TrackedEntityCreate {
	if s != nil {
		tec.SetCode(*s)
	}
	return tec
}

// SetValidityStart sets the "validity_start" field.
func (tec *TrackedEntityCreate) SetValidityStart(t time.Time) *TrackedEntityCreate {
	tec.mutation.SetValidityStart(t)
	return tec
}

// SetValidityEnd sets the "validity_end" field.
func (tec *TrackedEntityCreate) SetValidityEnd(t time.Time) *TrackedEntityCreate {
	tec.mutation.SetValidityEnd(t)
	return tec
}

// SetNillableValidityEnd sets the "validity_end" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableValidityEnd(t *time.Time) *TrackedEntityCreate {
	if t != nil {
		tec.SetValidityEnd(*t)
	}
	return tec
}

// SetPayload sets the "payload" field.
func (tec *TrackedEntityCreate) SetPayload(m map[string]interface{}) *TrackedEntityCreate {
	tec.mutation.SetPayload(m)
	return tec
}

// SetParentGroupID sets the "parent_group_id" field.
func (tec *TrackedEntityCreate) SetParentGroupID(u uint) *TrackedEntityCreate {
	tec.mutation.SetParentGroupID(u)
	return tec
}

// SetNillableParentGroupID sets the "parent_group_id" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableParentGroupID(u *uint) *TrackedEntityCreate {
	if u != nil {
		tec.SetParentGroupID(*u)
	}
	return tec
}

// SetCreatedAt sets the "created_at" field.
func (tec *TrackedEntityCreate) SetCreatedAt(t time.Time) *TrackedEntityCreate {
	tec.mutation.SetCreatedAt(t)
	return tec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tec *TrackedEntityCreate) SetNillableCreatedAt(t *time.Time) *TrackedEntityCreate {
	if t != nil {
		tec.SetCreatedAt(*t)
	}
	return tec
}

// SetID sets the "id" field.
func (tec *TrackedEntityCreate) SetID(u uint) *TrackedEntityCreate {
	tec.mutation.SetID(u)
	return tec
}

// SetGroupID sets the "group" edge to the VersionGroup entity by ID.
func (tec *TrackedEntityCreate) SetGroupID(id uint) *TrackedEntityCreate {
	tec.mutation.SetGroupID(id)
	return tec
}

// SetGroup sets the "group" edge to the VersionGroup entity.
func (tec *TrackedEntityCreate) SetGroup(v *VersionGroup) *TrackedEntityCreate {
	return tec.SetGroupID(v.ID)
}

// SetTransaction sets the "transaction" edge to the Transaction entity.
func (tec *TrackedEntityCreate) SetTransaction(t *Transaction) *TrackedEntityCreate {
	return tec.SetTransactionID(t.ID)
}

// Mutation returns the TrackedEntityMutation object of the builder.
func (tec *TrackedEntityCreate) Mutation() *TrackedEntityMutation {
	return tec.mutation
}

// Save creates the TrackedEntity in the database.
func (tec *TrackedEntityCreate) Save(ctx context.Context) (*TrackedEntity, error) {
	tec.defaults()
	return withHooks(ctx, tec.sqlSave, tec.mutation, tec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tec *TrackedEntityCreate) SaveX(ctx context.Context) *TrackedEntity {
	v, err := tec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tec *TrackedEntityCreate) Exec(ctx context.Context) error {
	_, err := tec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tec *TrackedEntityCreate) ExecX(ctx context.Context) {
	if err := tec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tec *TrackedEntityCreate) defaults() {
	if _, ok := tec.mutation.CreatedAt(); !ok {
		v := trackedentity.DefaultCreatedAt()
		tec.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tec *TrackedEntityCreate) check() error {
	if _, ok := tec.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TrackedEntity.kind"`)}
	}
	if v, ok := tec.mutation.Kind(); ok {
		if err := trackedentity.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TrackedEntity.kind": %w`, err)}
		}
	}
	if _, ok := tec.mutation.VersionGroupID(); !ok {
		return &ValidationError{Name: "version_group_id", err: errors.New(`ent: missing required field "TrackedEntity.version_group_id"`)}
	}
	if _, ok := tec.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "TrackedEntity.transaction_id"`)}
	}
	if _, ok := tec.mutation.UpdateType(); !ok {
		return &ValidationError{Name: "update_type", err: errors.New(`ent: missing required field "TrackedEntity.update_type"`)}
	}
	if v, ok := tec.mutation.UpdateType(); ok {
		if err := trackedentity.UpdateTypeValidator(v); err != nil {
			return &ValidationError{Name: "update_type", err: fmt.Errorf(`ent: validator failed for field "TrackedEntity.update_type": %w`, err)}
		}
	}
	if _, ok := tec.mutation.ValidityStart(); !ok {
		return &ValidationError{Name: "validity_start", err: errors.New(`ent: missing required field "TrackedEntity.validity_start"`)}
	}
	if _, ok := tec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrackedEntity.created_at"`)}
	}
	if len(tec.mutation.GroupIDs()) == 0 {
		return &ValidationError{Name: "group", err: errors.New(`ent: missing required edge "TrackedEntity.group"`)}
	}
	if len(tec.mutation.TransactionIDs()) == 0 {
		return &ValidationError{Name: "transaction", err: errors.New(`ent: missing required edge "TrackedEntity.transaction"`)}
	}
	return nil
}

func (tec *TrackedEntityCreate) sqlSave(ctx context.Context) (*TrackedEntity, error) {
	if err := tec.check(); err != nil {
		return nil, err
	}
	_node, _spec := tec.createSpec()
	if err := sqlgraph.CreateNode(ctx, tec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	tec.mutation.id = &_node.ID
	tec.mutation.done = true
	return _node, nil
}

func (tec *TrackedEntityCreate) createSpec() (*TrackedEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackedEntity{config: tec.config}
		_spec = sqlgraph.NewCreateSpec(trackedentity.Table, sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint))
	)
	if id, ok := tec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tec.mutation.Kind(); ok {
		_spec.SetField(trackedentity.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := tec.mutation.UpdateType(); ok {
		_spec.SetField(trackedentity.FieldUpdateType, field.TypeEnum, value)
		_node.UpdateType = value
	}
	if value, ok := tec.mutation.Sid(); ok {
		_spec.SetField(trackedentity.FieldSid, field.TypeInt, value)
		_node.Sid = value
	}
	if value, ok := tec.mutation.TypeCode(); ok {
		_spec.SetField(trackedentity.FieldTypeCode, field.TypeString, value)
		_node.TypeCode = value
	}
	if value, ok := tec.mutation.Code(); ok {
		_spec.SetField(trackedentity.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := tec.mutation.ValidityStart(); ok {
		_spec.SetField(trackedentity.FieldValidityStart, field.TypeTime, value)
		_node.ValidityStart = value
	}
	if value, ok := tec.mutation.ValidityEnd(); ok {
		_spec.SetField(trackedentity.FieldValidityEnd, field.TypeTime, value)
		_node.ValidityEnd = &value
	}
	if value, ok := tec.mutation.Payload(); ok {
		_spec.SetField(trackedentity.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := tec.mutation.ParentGroupID(); ok {
		_spec.SetField(trackedentity.FieldParentGroupID, field.TypeUint, value)
		_node.ParentGroupID = value
	}
	if value, ok := tec.mutation.CreatedAt(); ok {
		_spec.SetField(trackedentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := tec.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackedentity.GroupTable,
			Columns: []string{trackedentity.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VersionGroupID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tec.mutation.TransactionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trackedentity.TransactionTable,
			Columns: []string{trackedentity.TransactionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TransactionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TrackedEntityCreateBulk is the builder for creating many TrackedEntity entities in bulk.
type TrackedEntityCreateBulk struct {
	config
	err      error
	builders []*TrackedEntityCreate
}

// Save creates the TrackedEntity entities in the database.
func (tecb *TrackedEntityCreateBulk) Save(ctx context.Context) ([]*TrackedEntity, error) {
	if tecb.err != nil {
		return nil, tecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tecb.builders))
	nodes := make([]*TrackedEntity, len(tecb.builders))
	mutators := make([]Mutator, len(tecb.builders))
	for i := range tecb.builders {
		func(i int, root context.Context) {
			builder := tecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackedEntityMutation)
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
					_, err = mutators[i+1].Mutate(root, tecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tecb *TrackedEntityCreateBulk) SaveX(ctx context.Context) []*TrackedEntity {
	v, err := tecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tecb *TrackedEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := tecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tecb *TrackedEntityCreateBulk) ExecX(ctx context.Context) {
	if err := tecb.Exec(ctx); err != nil {
		panic(err)
	}
}
