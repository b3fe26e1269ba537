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
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// WorkBasketUpdate is the builder for updating WorkBasket entities.
type WorkBasketUpdate struct {
	config
	hooks    []Hook
	mutation *WorkBasketMutation
}

// Where appends a list predicates to the WorkBasketUpdate builder.
func (wbu *WorkBasketUpdate) Where(ps ...predicate.WorkBasket) *WorkBasketUpdate {
	wbu.mutation.Where(ps...)
	return wbu
}

// SetTitle sets the "title" field.
func (wbu *WorkBasketUpdate) SetTitle(s string) *WorkBasketUpdate {
	wbu.mutation.SetTitle(s)
	return wbu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wbu *WorkBasketUpdate) SetNillableTitle(s *string) *WorkBasketUpdate {
	if s != nil {
		wbu.SetTitle(*s)
	}
	return wbu
}

// SetReason sets the "reason" field.
func (wbu *WorkBasketUpdate) SetReason(s string) *WorkBasketUpdate {
	wbu.mutation.SetReason(s)
	return wbu
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (wbu *WorkBasketUpdate) SetNillableReason(s *string) *WorkBasketUpdate {
	if s != nil {
		wbu.SetReason(*s)
	}
	return wbu
}

// ClearReason clears the value of the "reason" field.
func (wbu *WorkBasketUpdate) ClearReason() *WorkBasketUpdate {
	wbu.mutation.ClearReason()
	return wbu
}

// SetStatus sets the "status" field.
func (wbu *WorkBasketUpdate) SetStatus(w workbasket.Status) *WorkBasketUpdate {
	wbu.mutation.SetStatus(w)
	return wbu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wbu *WorkBasketUpdate) SetNillableStatus(w *workbasket.Status) *WorkBasketUpdate {
	if w != nil {
		wbu.SetStatus(*w)
	}
	return wbu
}

// SetApprover sets the "approver" field.
func (wbu *WorkBasketUpdate) SetApprover(s string) *WorkBasketUpdate {
	wbu.mutation.SetApprover(s)
	return wbu
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (wbu *WorkBasketUpdate) SetNillableApprover(s *string) *WorkBasketUpdate {
	if s != nil {
		wbu.SetApprover(*s)
	}
	return wbu
}

// ClearApprover clears the value of the "approver" field.
func (wbu *WorkBasketUpdate) ClearApprover() *WorkBasketUpdate {
	wbu.mutation.ClearApprover()
	return wbu
}

// SetUpdatedAt sets the "updated_at" field.
func (wbu *WorkBasketUpdate) SetUpdatedAt(t time.Time) *WorkBasketUpdate {
	wbu.mutation.SetUpdatedAt(t)
	return wbu
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (wbu *WorkBasketUpdate) AddTransactionIDs(ids ...uint) *WorkBasketUpdate {
	wbu.mutation.AddTransactionIDs(ids...)
	return wbu
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (wbu *WorkBasketUpdate) AddTransactions(t ...*Transaction) *WorkBasketUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wbu.AddTransactionIDs(ids...)
}

// Mutation returns the WorkBasketMutation object of the builder.
func (wbu *WorkBasketUpdate) Mutation() *WorkBasketMutation {
	return wbu.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (wbu *WorkBasketUpdate) ClearTransactions() *WorkBasketUpdate {
	wbu.mutation.ClearTransactions()
	return wbu
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (wbu *WorkBasketUpdate) RemoveTransactionIDs(ids ...uint) *WorkBasketUpdate {
	wbu.mutation.RemoveTransactionIDs(ids...)
	return wbu
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (wbu *WorkBasketUpdate) RemoveTransactions(t ...*Transaction) *WorkBasketUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wbu.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wbu *WorkBasketUpdate) Save(ctx context.Context) (int, error) {
	wbu.defaults()
	return withHooks(ctx, wbu.sqlSave, wbu.mutation, wbu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wbu *WorkBasketUpdate) SaveX(ctx context.Context) int {
	affected, err := wbu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wbu *WorkBasketUpdate) Exec(ctx context.Context) error {
	_, err := wbu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbu *WorkBasketUpdate) ExecX(ctx context.Context) {
	if err := wbu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbu *WorkBasketUpdate) defaults() {
	if _, ok := wbu.mutation.UpdatedAt(); !ok {
		v := workbasket.UpdateDefaultUpdatedAt()
		wbu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbu *WorkBasketUpdate) check() error {
	if v, ok := wbu.mutation.Title(); ok {
		if err := workbasket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.title": %w`, err)}
		}
	}
	if v, ok := wbu.mutation.Status(); ok {
		if err := workbasket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.status": %w`, err)}
		}
	}
	return nil
}

func (wbu *WorkBasketUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wbu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workbasket.Table, workbasket.Columns, sqlgraph.NewFieldSpec(workbasket.FieldID, field.TypeUint))
	if ps := wbu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wbu.mutation.Title(); ok {
		_spec.SetField(workbasket.FieldTitle, field.TypeString, value)
	}
	if value, ok := wbu.mutation.Reason(); ok {
		_spec.SetField(workbasket.FieldReason, field.TypeString, value)
	}
	if wbu.mutation.ReasonCleared() {
		_spec.ClearField(workbasket.FieldReason, field.TypeString)
	}
	if value, ok := wbu.mutation.Status(); ok {
		_spec.SetField(workbasket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wbu.mutation.Approver(); ok {
		_spec.SetField(workbasket.FieldApprover, field.TypeString, value)
	}
	if wbu.mutation.ApproverCleared() {
		_spec.ClearField(workbasket.FieldApprover, field.TypeString)
	}
	if value, ok := wbu.mutation.UpdatedAt(); ok {
		_spec.SetField(workbasket.FieldUpdatedAt, field.TypeTime, value)
	}
	if wbu.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wbu.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !wbu.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wbu.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wbu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workbasket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wbu.mutation.done = true
	return n, nil
}

// WorkBasketUpdateOne is the builder for updating a single WorkBasket entity.
type WorkBasketUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkBasketMutation
}

// SetTitle sets the "title" field.
func (wbuo *WorkBasketUpdateOne) SetTitle(s string) *WorkBasketUpdateOne {
	wbuo.mutation.SetTitle(s)
	return wbuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (wbuo *WorkBasketUpdateOne) SetNillableTitle(s *string) *WorkBasketUpdateOne {
	if s != nil {
		wbuo.SetTitle(*s)
	}
	return wbuo
}

// SetReason sets the "reason" field.
func (wbuo *WorkBasketUpdateOne) SetReason(s string) *WorkBasketUpdateOne {
	wbuo.mutation.SetReason(s)
	return wbuo
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (wbuo *WorkBasketUpdateOne) SetNillableReason(s *string) *WorkBasketUpdateOne {
	if s != nil {
		wbuo.SetReason(*s)
	}
	return wbuo
}

// ClearReason clears the value of the "reason" field.
func (wbuo *WorkBasketUpdateOne) ClearReason() *WorkBasketUpdateOne {
	wbuo.mutation.ClearReason()
	return wbuo
}

// SetStatus sets the "status" field.
func (wbuo *WorkBasketUpdateOne) SetStatus(w workbasket.Status) *WorkBasketUpdateOne {
	wbuo.mutation.SetStatus(w)
	return wbuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wbuo *WorkBasketUpdateOne) SetNillableStatus(w *workbasket.Status) *WorkBasketUpdateOne {
	if w != nil {
		wbuo.SetStatus(*w)
	}
	return wbuo
}

// SetApprover sets the "approver" field.
func (wbuo *WorkBasketUpdateOne) SetApprover(s string) *WorkBasketUpdateOne {
	wbuo.mutation.SetApprover(s)
	return wbuo
}

// SetNillableApprover sets the "approver" field if the given value is not nil.
func (wbuo *WorkBasketUpdateOne) SetNillableApprover(s *string) *WorkBasketUpdateOne {
	if s != nil {
		wbuo.SetApprover(*s)
	}
	return wbuo
}

// ClearApprover clears the value of the "approver" field.
func (wbuo *WorkBasketUpdateOne) ClearApprover() *WorkBasketUpdateOne {
	wbuo.mutation.ClearApprover()
	return wbuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wbuo *WorkBasketUpdateOne) SetUpdatedAt(t time.Time) *WorkBasketUpdateOne {
	wbuo.mutation.SetUpdatedAt(t)
	return wbuo
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (wbuo *WorkBasketUpdateOne) AddTransactionIDs(ids ...uint) *WorkBasketUpdateOne {
	wbuo.mutation.AddTransactionIDs(ids...)
	return wbuo
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (wbuo *WorkBasketUpdateOne) AddTransactions(t ...*Transaction) *WorkBasketUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wbuo.AddTransactionIDs(ids...)
}

// Mutation returns the WorkBasketMutation object of the builder.
func (wbuo *WorkBasketUpdateOne) Mutation() *WorkBasketMutation {
	return wbuo.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (wbuo *WorkBasketUpdateOne) ClearTransactions() *WorkBasketUpdateOne {
	wbuo.mutation.ClearTransactions()
	return wbuo
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (wbuo *WorkBasketUpdateOne) RemoveTransactionIDs(ids ...uint) *WorkBasketUpdateOne {
	wbuo.mutation.RemoveTransactionIDs(ids...)
	return wbuo
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (wbuo *WorkBasketUpdateOne) RemoveTransactions(t ...*Transaction) *WorkBasketUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return wbuo.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the WorkBasketUpdate builder.
func (wbuo *WorkBasketUpdateOne) Where(ps ...predicate.WorkBasket) *WorkBasketUpdateOne {
	wbuo.mutation.Where(ps...)
	return wbuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wbuo *WorkBasketUpdateOne) Select(field string, fields ...string) *WorkBasketUpdateOne {
	wbuo.fields = append([]string{field}, fields...)
	return wbuo
}

// Save executes the query and returns the updated WorkBasket entity.
func (wbuo *WorkBasketUpdateOne) Save(ctx context.Context) (*WorkBasket, error) {
	wbuo.defaults()
	return withHooks(ctx, wbuo.sqlSave, wbuo.mutation, wbuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wbuo *WorkBasketUpdateOne) SaveX(ctx context.Context) *WorkBasket {
	node, err := wbuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wbuo *WorkBasketUpdateOne) Exec(ctx context.Context) error {
	_, err := wbuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wbuo *WorkBasketUpdateOne) ExecX(ctx context.Context) {
	if err := wbuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wbuo *WorkBasketUpdateOne) defaults() {
	if _, ok := wbuo.mutation.UpdatedAt(); !ok {
		v := workbasket.UpdateDefaultUpdatedAt()
		wbuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wbuo *WorkBasketUpdateOne) check() error {
	if v, ok := wbuo.mutation.Title(); ok {
		if err := workbasket.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.title": %w`, err)}
		}
	}
	if v, ok := wbuo.mutation.Status(); ok {
		if err := workbasket.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkBasket.status": %w`, err)}
		}
	}
	return nil
}

func (wbuo *WorkBasketUpdateOne) sqlSave(ctx context.Context) (_node *WorkBasket, err error) {
	if err := wbuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workbasket.Table, workbasket.Columns, sqlgraph.NewFieldSpec(workbasket.FieldID, field.TypeUint))
	id, ok := wbuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkBasket.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wbuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workbasket.FieldID)
		for _, f := range fields {
			if !workbasket.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workbasket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wbuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wbuo.mutation.Title(); ok {
		_spec.SetField(workbasket.FieldTitle, field.TypeString, value)
	}
	if value, ok := wbuo.mutation.Reason(); ok {
		_spec.SetField(workbasket.FieldReason, field.TypeString, value)
	}
	if wbuo.mutation.ReasonCleared() {
		_spec.ClearField(workbasket.FieldReason, field.TypeString)
	}
	if value, ok := wbuo.mutation.Status(); ok {
		_spec.SetField(workbasket.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wbuo.mutation.Approver(); ok {
		_spec.SetField(workbasket.FieldApprover, field.TypeString, value)
	}
	if wbuo.mutation.ApproverCleared() {
		_spec.ClearField(workbasket.FieldApprover, field.TypeString)
	}
	if value, ok := wbuo.mutation.UpdatedAt(); ok {
		_spec.SetField(workbasket.FieldUpdatedAt, field.TypeTime, value)
	}
	if wbuo.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wbuo.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !wbuo.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wbuo.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkBasket{config: wbuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wbuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workbasket.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wbuo.mutation.done = true
	return _node, nil
}
