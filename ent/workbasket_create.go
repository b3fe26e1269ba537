// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// WorkBasketCreate is the builder for creating a WorkBasket entity.
type WorkBasketCreate struct {
	config
	mutation *WorkBasketMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (wbc *WorkBasketCreate) SetTitle(s string) *WorkBasketCreate {
	wbc.mutation.SetTitle(s)
	return wbc
}

// SetReason sets the "reason" field.
func (wbc *WorkBasketCreate) SetReason(s string) *WorkBasketCreate {
	wbc.mutation.SetReason(s)
	return wbc
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (wbc *WorkBasketCreate) SetNillableReason(s *string) *WorkBasketCreate {
	if s != nil {
		wbc.SetReason(*s)
	}
	return wbc
}

// SetStatus sets the "status" field.
func (wbc *WorkBasketCreate) SetStatus(w workbasket.Status) *WorkBasketCreate {
	wbc.mutation.SetStatus(w)
	return wbc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wbc *WorkBasketCreate) SetNillableStatus(w *workbasket.Status) *WorkBasketCreate {
	if w != nil {
		wbc.SetStatus(*w)
	}
	return wbc
}

// SetAuthor sets the "author" field.
func (wbc *WorkBasketCreate) SetAuthor(s string) *WorkBasketCreate {
	wbc.mutation.SetAuthor(s)
	return wbc
}

// SetApprover sets the "approver" field.
func (wbc *WorkBasketCreate) SetApprover(s string) *WorkBasketCreate {
	wbc.mutation.SetApprover(s)
	return wbc
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (wbc *WorkBasketCreate) SetNillableApprover(s *string) *WorkBasketCreate {
	if s != nil {
		wbc.SetApprover(*s)
	}
	return wbc
}

// SetCreatedAt sets the "created_at" field.
func (wbc *WorkBasketCreate) SetCreatedAt(t time.Time) *WorkBasketCreate {
	wbc.mutation.SetCreatedAt(t)
	return wbc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wbc *WorkBasketCreate) SetNillableCreatedAt(t *time.Time) *WorkBasketCreate {
	if t != nil {
		wbc.SetCreatedAt(*t)
	}
	return wbc
}

// SetUpdatedAt sets the "updated_at" field.
func (wbc *WorkBasketCreate) SetUpdatedAt(t time.Time) *WorkBasketCreate {
	wbc.mutation.SetUpdatedAt(t)
	return wbc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wbc *WorkBasketCreate) SetNillableUpdatedAt(t *time.Time) *WorkBasketCreate {
	if t != nil {
		wbc.SetUpdatedAt(*t)
	}
	return wbc
}

// SetID sets the "id" field.
func (wbc *WorkBasketCreate) SetID(u uint) *WorkBasketCreate {
	wbc.mutation.SetID(u)
	return wbc
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (wbc *WorkBasketCreate) AddTransactionIDs(ids ...uint) *WorkBasketCreate {
	wbc.mutation.AddTransactionIDs(ids...)
	return wbc
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (wbc *WorkBasketCreate) AddTransactions(t ...*Transaction) *WorkBasketCreate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wbc.AddTransactionIDs(ids...)
}

// Mutation returns the WorkBasketMutation object of the builder.
func (wbc *WorkBasketCreate) Mutation() *WorkBasketMutation {
	return wbc.mutation
}

// Save creates the WorkBasket in the database.
func (wbc *WorkBasketCreate) Save(ctx context.Context) (*WorkBasket, error) {
	wbc.defaults()
	return withHooks(ctx, wbc.sqlSave, wbc.mutation, wbc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wbc *WorkBasketCreate) SaveX(ctx context.Context) *WorkBasket {
	v, err := wbc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wbc *WorkBasketCreate) Exec(ctx context.Context) error {
	_, err := wbc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbc *WorkBasketCreate) ExecX(ctx context.Context) {
	if err := wbc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbc *WorkBasketCreate) defaults() {
	if _, ok := wbc.mutation.Status(); !ok {
		v := workbasket.DefaultStatus
		wbc.mutation.SetStatus(v)
	}
	if _, ok := wbc.mutation.CreatedAt(); !ok {
		v := workbasket.DefaultCreatedAt()
		wbc.mutation.SetCreatedAt(v)
	}
	if _, ok := wbc.mutation.UpdatedAt(); !ok {
		v := workbasket.DefaultUpdatedAt()
		wbc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbc *WorkBasketCreate) check() error {
	if _, ok := wbc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "WorkBasket.title"`)}
	}
	if v, ok := wbc.mutation.Title(); ok {
		if err := workbasket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.title": %w`, err)}
		}
	}
	if _, ok := wbc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkBasket.status"`)}
	}
	if v, ok := wbc.mutation.Status(); ok {
		if err := workbasket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.status": %w`, err)}
		}
	}
	if _, ok := wbc.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "WorkBasket.author"`)}
	}
	if v, ok := wbc.mutation.Author(); ok {
		if err := workbasket.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.author": %w`, err)}
		}
	}
	if _, ok := wbc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkBasket.created_at"`)}
	}
	if _, ok := wbc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkBasket.updated_at"`)}
	}
	return nil
}

func (wbc *WorkBasketCreate) sqlSave(ctx context.Context) (*WorkBasket, error) {
	if err := wbc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wbc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wbc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	wbc.mutation.id = &_node.ID
	wbc.mutation.done = true
	return _node, nil
}

func (wbc *WorkBasketCreate) createSpec() (*WorkBasket, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkBasket{config: wbc.config}
		_spec = sqlgraph.NewCreateSpec(workbasket.Table, sqlgraph.NewFieldSpec(workbasket.FieldID, field.TypeUint))
	)
	if id, ok := wbc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := wbc.mutation.Title(); ok {
		_spec.SetField(workbasket.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := wbc.mutation.Reason(); ok {
		_spec.SetField(workbasket.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := wbc.mutation.Status(); ok {
		_spec.SetField(workbasket.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wbc.mutation.Author(); ok {
		_spec.SetField(workbasket.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := wbc.mutation.Approver(); ok {
		_spec.SetField(workbasket.FieldApprover, field.TypeString, value)
		_node.Approver = value
	}
	if value, ok := wbc.mutation.CreatedAt(); ok {
		_spec.SetField(workbasket.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wbc.mutation.UpdatedAt(); ok {
		_spec.SetField(workbasket.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := wbc.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workbasket.TransactionsTable,
			Columns: []string{workbasket.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkBasketCreateBulk is the builder for creating many WorkBasket entities in bulk.
type WorkBasketCreateBulk struct {
	config
	err      error
	builders []*WorkBasketCreate
}

// Save creates the WorkBasket entities in the database.
func (wbcb *WorkBasketCreateBulk) Save(ctx context.Context) ([]*WorkBasket, error) {
	if wbcb.err != nil {
		return nil, wbcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wbcb.builders))
	nodes := make([]*WorkBasket, len(wbcb.builders))
	mutators := make([]Mutator, len(wbcb.builders))
	for i := range wbcb.builders {
		func(i int, root context.Context) {
			builder := wbcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkBasketMutation)
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
					_, err = mutators[i+1].Mutate(root, wbcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wbcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wbcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wbcb *WorkBasketCreateBulk) SaveX(ctx context.Context) []*WorkBasket {
	v, err := wbcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wbcb *WorkBasketCreateBulk) Exec(ctx context.Context) error {
	_, err := wbcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbcb *WorkBasketCreateBulk) ExecX(ctx context.Context) {
	if err := wbcb.Exec(ctx); err != nil {
		panic(err)
	}
}
