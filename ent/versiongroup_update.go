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
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// VersionGroupUpdate is the builder for updating VersionGroup entities.
type VersionGroupUpdate struct {
	config
	hooks    []Hook
	mutation *VersionGroupMutation
}

// Where appends a list predicates to the VersionGroupUpdate builder.
func (vgu *VersionGroupUpdate) Where(ps ...predicate.VersionGroup) *VersionGroupUpdate {
	vgu.mutation.Where(ps...)
	return vgu
}

// SetCurrentVersionID sets the "current_version_id" field.
func (vgu *VersionGroupUpdate) SetCurrentVersionID(u uint) *VersionGroupUpdate {
	vgu.mutation.SetCurrentVersionID(u)
	return vgu
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (vgu *VersionGroupUpdate) SetNillableCurrentVersionID(u *uint) *VersionGroupUpdate {
	if u != nil {
		vgu.SetCurrentVersionID(*u)
	}
	return vgu
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (vgu *VersionGroupUpdate) ClearCurrentVersionID() *VersionGroupUpdate {
	vgu.mutation.ClearCurrentVersionID()
	return vgu
}

// AddVersionIDs adds the "versions" edge to the TrackedEntity entity by IDs.
func (vgu *VersionGroupUpdate) AddVersionIDs(ids ...uint) *VersionGroupUpdate {
	vgu.mutation.AddVersionIDs(ids...)
	return vgu
}

// AddVersions adds the "versions" edges to the TrackedEntity entity.
func (vgu *VersionGroupUpdate) AddVersions(t ...*TrackedEntity) *VersionGroupUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return vgu.AddVersionIDs(ids...)
}

// SetCurrentVersion sets the "current_version" edge to the TrackedEntity entity.
func (vgu *VersionGroupUpdate) SetCurrentVersion(t *TrackedEntity) *VersionGroupUpdate {
	return vgu.SetCurrentVersionID(t.ID)
}

// Mutation returns the VersionGroupMutation object of the builder.
func (vgu *VersionGroupUpdate) Mutation() *VersionGroupMutation {
	return vgu.mutation
}

// ClearVersions clears all "versions" edges to the TrackedEntity entity.
func (vgu *VersionGroupUpdate) ClearVersions() *VersionGroupUpdate {
	vgu.mutation.ClearVersions()
	return vgu
}

// RemoveVersionIDs removes the "versions" edge to TrackedEntity entities by IDs.
func (vgu *VersionGroupUpdate) RemoveVersionIDs(ids ...uint) *VersionGroupUpdate {
	vgu.mutation.RemoveVersionIDs(ids...)
	return vgu
}

// RemoveVersions removes "versions" edges to TrackedEntity entities.
func (vgu *VersionGroupUpdate) RemoveVersions(t ...*TrackedEntity) *VersionGroupUpdate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return vgu.RemoveVersionIDs(ids...)
}

// ClearCurrentVersion clears the "current_version" edge to the TrackedEntity entity.
func (vgu *VersionGroupUpdate) ClearCurrentVersion() *VersionGroupUpdate {
	vgu.mutation.ClearCurrentVersion()
	return vgu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vgu *VersionGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, vgu.sqlSave, vgu.mutation, vgu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vgu *VersionGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := vgu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vgu *VersionGroupUpdate) Exec(ctx context.Context) error {
	_, err := vgu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vgu *VersionGroupUpdate) ExecX(ctx context.Context) {
	if err := vgu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (vgu *VersionGroupUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(versiongroup.Table, versiongroup.Columns, sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint))
	if ps := vgu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if vgu.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vgu.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !vgu.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
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
	if nodes := vgu.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
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
	if vgu.mutation.CurrentVersionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   versiongroup.CurrentVersionTable,
			Columns: []string{versiongroup.CurrentVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vgu.mutation.CurrentVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   versiongroup.CurrentVersionTable,
			Columns: []string{versiongroup.CurrentVersionColumn},
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
	if n, err = sqlgraph.UpdateNodes(ctx, vgu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versiongroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vgu.mutation.done = true
	return n, nil
}

// VersionGroupUpdateOne is the builder for updating a single VersionGroup entity.
type VersionGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VersionGroupMutation
}

// SetCurrentVersionID sets the "current_version_id" field.
func (vguo *VersionGroupUpdateOne) SetCurrentVersionID(u uint) *VersionGroupUpdateOne {
	vguo.mutation.SetCurrentVersionID(u)
	return vguo
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (vguo *VersionGroupUpdateOne) SetNillableCurrentVersionID(u *uint) *VersionGroupUpdateOne {
	if u != nil {
		vguo.SetCurrentVersionID(*u)
	}
	return vguo
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (vguo *VersionGroupUpdateOne) ClearCurrentVersionID() *VersionGroupUpdateOne {
	vguo.mutation.ClearCurrentVersionID()
	return vguo
}

// AddVersionIDs adds the "versions" edge to the TrackedEntity entity by IDs.
func (vguo *VersionGroupUpdateOne) AddVersionIDs(ids ...uint) *VersionGroupUpdateOne {
	vguo.mutation.AddVersionIDs(ids...)
	return vguo
}

// AddVersions adds the "versions" edges to the TrackedEntity entity.
func (vguo *VersionGroupUpdateOne) AddVersions(t ...*TrackedEntity) *VersionGroupUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return vguo.AddVersionIDs(ids...)
}

// SetCurrentVersion sets the "current_version" edge to the TrackedEntity entity.
func (vguo *VersionGroupUpdateOne) SetCurrentVersion(t *TrackedEntity) *VersionGroupUpdateOne {
	return vguo.SetCurrentVersionID(t.ID)
}

// Mutation returns the VersionGroupMutation object of the builder.
func (vguo *VersionGroupUpdateOne) Mutation() *VersionGroupMutation {
	return vguo.mutation
}

// ClearVersions clears all "versions" edges to the TrackedEntity entity.
func (vguo *VersionGroupUpdateOne) ClearVersions() *VersionGroupUpdateOne {
	vguo.mutation.ClearVersions()
	return vguo
}

// RemoveVersionIDs removes the "versions" edge to TrackedEntity entities by IDs.
func (vguo *VersionGroupUpdateOne) RemoveVersionIDs(ids ...uint) *VersionGroupUpdateOne {
	vguo.mutation.RemoveVersionIDs(ids...)
	return vguo
}

// RemoveVersions removes "versions" edges to TrackedEntity entities.
func (vguo *VersionGroupUpdateOne) RemoveVersions(t ...*TrackedEntity) *VersionGroupUpdateOne {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return vguo.RemoveVersionIDs(ids...)
}

// ClearCurrentVersion clears the "current_version" edge to the TrackedEntity entity.
func (vguo *VersionGroupUpdateOne) ClearCurrentVersion() *VersionGroupUpdateOne {
	vguo.mutation.ClearCurrentVersion()
	return vguo
}

// Where appends a list predicates to the VersionGroupUpdate builder.
func (vguo *VersionGroupUpdateOne) Where(ps ...predicate.VersionGroup) *VersionGroupUpdateOne {
	vguo.mutation.Where(ps...)
	return vguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vguo *VersionGroupUpdateOne) Select(field string, fields ...string) *VersionGroupUpdateOne {
	vguo.fields = append([]string{field}, fields...)
	return vguo
}

// Save executes the query and returns the updated VersionGroup entity.
func (vguo *VersionGroupUpdateOne) Save(ctx context.Context) (*VersionGroup, error) {
	return withHooks(ctx, vguo.sqlSave, vguo.mutation, vguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vguo *VersionGroupUpdateOne) SaveX(ctx context.Context) *VersionGroup {
	node, err := vguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vguo *VersionGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := vguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vguo *VersionGroupUpdateOne) ExecX(ctx context.Context) {
	if err := vguo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (vguo *VersionGroupUpdateOne) sqlSave(ctx context.Context) (_node *VersionGroup, err error) {
	_spec := sqlgraph.NewUpdateSpec(versiongroup.Table, versiongroup.Columns, sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint))
	id, ok := vguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VersionGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, versiongroup.FieldID)
		for _, f := range fields {
			if !versiongroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != versiongroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if vguo.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vguo.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !vguo.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
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
	if nodes := vguo.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   versiongroup.VersionsTable,
			Columns: []string{versiongroup.VersionsColumn},
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
	if vguo.mutation.CurrentVersionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   versiongroup.CurrentVersionTable,
			Columns: []string{versiongroup.CurrentVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vguo.mutation.CurrentVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   versiongroup.CurrentVersionTable,
			Columns: []string{versiongroup.CurrentVersionColumn},
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
	_node = &VersionGroup{config: vguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{versiongroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vguo.mutation.done = true
	return _node, nil
}
