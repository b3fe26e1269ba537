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
)

// TrackedEntityUpdate is the builder for updating TrackedEntity entities.
type TrackedEntityUpdate struct {
	config
	hooks    []Hook
	mutation *TrackedEntityMutation
}

// Where appends a list predicates to the TrackedEntityUpdate builder.
func (teu *TrackedEntityUpdate) Where(ps ...predicate.TrackedEntity) *TrackedEntityUpdate {
	teu.mutation.Where(ps...)
	return teu
}

// Mutation returns the TrackedEntityMutation object of the builder.
func (teu *TrackedEntityUpdate) Mutation() *TrackedEntityMutation {
	return teu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (teu *TrackedEntityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, teu.sqlSave, teu.mutation, teu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teu *TrackedEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := teu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (teu *TrackedEntityUpdate) Exec(ctx context.Context) error {
	_, err := teu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teu *TrackedEntityUpdate) ExecX(ctx context.Context) {
	if err := teu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teu *TrackedEntityUpdate) check() error {
	if teu.mutation.GroupCleared() && len(teu.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedEntity.group"`)
	}
	if teu.mutation.TransactionCleared() && len(teu.mutation.TransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedEntity.transaction"`)
	}
	return nil
}

func (teu *TrackedEntityUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := teu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackedentity.Table, trackedentity.Columns, sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint))
	if ps := teu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if teu.mutation.SidCleared() {
		_spec.ClearField(trackedentity.FieldSid, field.TypeInt)
	}
	if teu.mutation.TypeCodeCleared() {
		_spec.ClearField(trackedentity.FieldTypeCode, field.TypeString)
	}
	if teu.mutation.CodeCleared() {
		_spec.ClearField(trackedentity.FieldCode, field.TypeString)
	}
	if teu.mutation.ValidityEndCleared() {
		_spec.ClearField(trackedentity.FieldValidityEnd, field.TypeTime)
	}
	if teu.mutation.PayloadCleared() {
		_spec.ClearField(trackedentity.FieldPayload, field.TypeJSON)
	}
	if teu.mutation.ParentGroupIDCleared() {
		_spec.ClearField(trackedentity.FieldParentGroupID, field.TypeUint)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, teu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	teu.mutation.done = true
	return n, nil
}

// TrackedEntityUpdateOne is the builder for updating a single TrackedEntity entity.
type TrackedEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackedEntityMutation
}

// Mutation returns the TrackedEntityMutation object of the builder.
func (teuo *TrackedEntityUpdateOne) Mutation() *TrackedEntityMutation {
	return teuo.mutation
}

// Where appends a list predicates to the TrackedEntityUpdate builder.
func (teuo *TrackedEntityUpdateOne) Where(ps ...predicate.TrackedEntity) *TrackedEntityUpdateOne {
	teuo.mutation.Where(ps...)
	return teuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (teuo *TrackedEntityUpdateOne) Select(field string, fields ...string) *TrackedEntityUpdateOne {
	teuo.fields = append([]string{field}, fields...)
	return teuo
}

// Save executes the query and returns the updated TrackedEntity entity.
func (teuo *TrackedEntityUpdateOne) Save(ctx context.Context) (*TrackedEntity, error) {
	return withHooks(ctx, teuo.sqlSave, teuo.mutation, teuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teuo *TrackedEntityUpdateOne) SaveX(ctx context.Context) *TrackedEntity {
	node, err := teuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (teuo *TrackedEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := teuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teuo *TrackedEntityUpdateOne) ExecX(ctx context.Context) {
	if err := teuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teuo *TrackedEntityUpdateOne) check() error {
	if teuo.mutation.GroupCleared() && len(teuo.mutation.GroupIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedEntity.group"`)
	}
	if teuo.mutation.TransactionCleared() && len(teuo.mutation.TransactionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrackedEntity.transaction"`)
	}
	return nil
}

func (teuo *TrackedEntityUpdateOne) sqlSave(ctx context.Context) (_node *TrackedEntity, err error) {
	if err := teuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackedentity.Table, trackedentity.Columns, sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint))
	id, ok := teuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackedEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := teuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackedentity.FieldID)
		for _, f := range fields {
			if !trackedentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackedentity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := teuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if teuo.mutation.SidCleared() {
		_spec.ClearField(trackedentity.FieldSid, field.TypeInt)
	}
	if teuo.mutation.TypeCodeCleared() {
		_spec.ClearField(trackedentity.FieldTypeCode, field.TypeString)
	}
	if teuo.mutation.CodeCleared() {
		_spec.ClearField(trackedentity.FieldCode, field.TypeString)
	}
	if teuo.mutation.ValidityEndCleared() {
		_spec.ClearField(trackedentity.FieldValidityEnd, field.TypeTime)
	}
	if teuo.mutation.PayloadCleared() {
		_spec.ClearField(trackedentity.FieldPayload, field.TypeJSON)
	}
	if teuo.mutation.ParentGroupIDCleared() {
		_spec.ClearField(trackedentity.FieldParentGroupID, field.TypeUint)
	}
	_node = &TrackedEntity{config: teuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, teuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	teuo.mutation.done = true
	return _node, nil
}
