// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (tu *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetPartition sets the "partition" field.
func (tu *TransactionUpdate) SetPartition(i int) *TransactionUpdate {
	tu.mutation.ResetPartition()
	tu.mutation.SetPartition(i)
	return tu
}

// SetNillablePartition sets the "partition" field if the given value is not nil.
func (tu *TransactionUpdate) SetNillablePartition(i *int) *TransactionUpdate {
	if i != nil {
		tu.SetPartition(*i)
	}
	return tu
}

// AddPartition adds i to the "partition" field.
func (tu *TransactionUpdate) AddPartition(i int) *TransactionUpdate {
	tu.mutation.AddPartition(i)
	return tu
}

// SetOrder sets the "order" field.
func (tu *TransactionUpdate) SetOrder(i int) *TransactionUpdate {
	tu.mutation.ResetOrder()
	tu.mutation.SetOrder(i)
	return tu
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (tu *TransactionUpdate) SetNillableOrder(i *int) *TransactionUpdate {
	if i != nil {
		tu.SetOrder(*i)
	}
	return tu
}

// AddOrder adds i to the "order" field.
func (tu *TransactionUpdate) AddOrder(i int) *TransactionUpdate {
	tu.mutation.AddOrder(i)
	return tu
}

// SetCompositeKey sets the "composite_key" field.
func (tu *TransactionUpdate) SetCompositeKey(s string) *TransactionUpdate {
	tu.mutation.SetCompositeKey(s)
	return tu
}

// SetNillableCompositeKey sets the "composite_key" field if the given value is not nil.
func (tu *TransactionUpdate) SetNillableCompositeKey(s *string) *TransactionUpdate {
	if s != nil {
		tu.SetCompositeKey(*s)
	}
	return tu
}

// AddEntityIDs adds the "entities" edge to the TrackedEntity entity by IDs.
func (tu *TransactionUpdate) AddEntityIDs(ids ...uint) *TransactionUpdate {
	tu.mutation.AddEntityIDs(ids...)
	return tu
}

// AddEntities adds the "entities" edges to the TrackedEntity entity.
func (tu *TransactionUpdate) AddEntities(t ...*TrackedEntity) *TransactionUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.AddEntityIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (tu *TransactionUpdate) Mutation() *TransactionMutation {
	return tu.mutation
}

// ClearEntities clears all "entities" edges to the TrackedEntity entity.
func (tu *TransactionUpdate) ClearEntities() *TransactionUpdate {
	tu.mutation.ClearEntities()
	return tu
}

// RemoveEntityIDs removes the "entities" edge to TrackedEntity entities by IDs.
func (tu *TransactionUpdate) RemoveEntityIDs(ids ...uint) *TransactionUpdate {
	tu.mutation.RemoveEntityIDs(ids...)
	return tu
}

// RemoveEntities removes "entities" edges to TrackedEntity entities.
func (tu *TransactionUpdate) RemoveEntities(t ...*TrackedEntity) *TransactionUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tu.RemoveEntityIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TransactionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TransactionUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TransactionUpdate) check() error {
	if tu.mutation.WorkbasketCleared() && len(tu.mutation.WorkbasketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.workbasket"`)
	}
	return nil
}

func (tu *TransactionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUint))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.Partition(); ok {
		_spec.SetField(transaction.FieldPartition, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedPartition(); ok {
		_spec.AddField(transaction.FieldPartition, field.TypeInt, value)
	}
	if value, ok := tu.mutation.Order(); ok {
		_spec.SetField(transaction.FieldOrder, field.TypeInt, value)
	}
	if value, ok := tu.mutation.AddedOrder(); ok {
		_spec.AddField(transaction.FieldOrder, field.TypeInt, value)
	}
	if value, ok := tu.mutation.CompositeKey(); ok {
		_spec.SetField(transaction.FieldCompositeKey, field.TypeString, value)
	}
	if tu.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !tu.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tu.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetPartition sets the "partition" field.
func (tuo *TransactionUpdateOne) SetPartition(i int) *TransactionUpdateOne {
	tuo.mutation.ResetPartition()
	tuo.mutation.SetPartition(i)
	return tuo
}

// SetNillablePartition sets the "partition" field if the given value is not nil.
func (tuo *TransactionUpdateOne) SetNillablePartition(i *int) *TransactionUpdateOne {
	if i != nil {
		tuo.SetPartition(*i)
	}
	return tuo
}

// AddPartition adds i to the "partition" field.
func (tuo *TransactionUpdateOne) AddPartition(i int) *TransactionUpdateOne {
	tuo.mutation.AddPartition(i)
	return tuo
}

// SetOrder sets the "order" field.
func (tuo *TransactionUpdateOne) SetOrder(i int) *TransactionUpdateOne {
	tuo.mutation.ResetOrder()
	tuo.mutation.SetOrder(i)
	return tuo
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (tuo *TransactionUpdateOne) SetNillableOrder(i *int) *TransactionUpdateOne {
	if i != nil {
		tuo.SetOrder(*i)
	}
	return tuo
}

// AddOrder adds i to the "order" field.
func (tuo *TransactionUpdateOne) AddOrder(i int) *TransactionUpdateOne {
	tuo.mutation.AddOrder(i)
	return tuo
}

// SetCompositeKey sets the "composite_key" field.
func (tuo *TransactionUpdateOne) SetCompositeKey(s string) *TransactionUpdateOne {
	tuo.mutation.SetCompositeKey(s)
	return tuo
}

// SetNillableCompositeKey sets the "composite_key" field if the given value is not nil.
func (tuo *TransactionUpdateOne) SetNillableCompositeKey(s *string) *TransactionUpdateOne {
	if s != nil {
		tuo.SetCompositeKey(*s)
	}
	return tuo
}

// AddEntityIDs adds the "entities" edge to the TrackedEntity entity by IDs.
func (tuo *TransactionUpdateOne) AddEntityIDs(ids ...uint) *TransactionUpdateOne {
	tuo.mutation.AddEntityIDs(ids...)
	return tuo
}

// AddEntities adds the "entities" edges to the TrackedEntity entity.
func (tuo *TransactionUpdateOne) AddEntities(t ...*TrackedEntity) *TransactionUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.AddEntityIDs(ids...)
}

// Mutation returns the TransactionMutation object of the builder.
func (tuo *TransactionUpdateOne) Mutation() *TransactionMutation {
	return tuo.mutation
}

// ClearEntities clears all "entities" edges to the TrackedEntity entity.
func (tuo *TransactionUpdateOne) ClearEntities() *TransactionUpdateOne {
	tuo.mutation.ClearEntities()
	return tuo
}

// RemoveEntityIDs removes the "entities" edge to TrackedEntity entities by IDs.
func (tuo *TransactionUpdateOne) RemoveEntityIDs(ids ...uint) *TransactionUpdateOne {
	tuo.mutation.RemoveEntityIDs(ids...)
	return tuo
}

// RemoveEntities removes "entities" edges to TrackedEntity entities.
func (tuo *TransactionUpdateOne) RemoveEntities(t ...*TrackedEntity) *TransactionUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return tuo.RemoveEntityIDs(ids...)
}

// Where appends a list predicates to the TransactionUpdate builder.
func (tuo *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Transaction entity.
func (tuo *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TransactionUpdateOne) check() error {
	if tuo.mutation.WorkbasketCleared() && len(tuo.mutation.WorkbasketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.workbasket"`)
	}
	return nil
}

func (tuo *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUint))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.Partition(); ok {
		_spec.SetField(transaction.FieldPartition, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedPartition(); ok {
		_spec.AddField(transaction.FieldPartition, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.Order(); ok {
		_spec.SetField(transaction.FieldOrder, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.AddedOrder(); ok {
		_spec.AddField(transaction.FieldOrder, field.TypeInt, value)
	}
	if value, ok := tuo.mutation.CompositeKey(); ok {
		_spec.SetField(transaction.FieldCompositeKey, field.TypeString, value)
	}
	if tuo.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.RemovedEntitiesIDs(); len(nodes) > 0 && !tuo.mutation.EntitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := tuo.mutation.EntitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transaction.EntitiesTable,
			Columns: []string{transaction.EntitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
