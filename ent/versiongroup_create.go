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
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// VersionGroupCreate is the builder for creating a VersionGroup entity.
type VersionGroupCreate struct {
	config
	mutation *VersionGroupMutation
	hooks    []Hook
}

// SetCurrentVersionID sets the "current_version_id" field.
func (vgc *VersionGroupCreate) SetCurrentVersionID(u uint) *VersionGroupCreate {
	vgc.mutation.SetCurrentVersionID(u)
	return vgc
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (vgc *VersionGroupCreate) SetNillableCurrentVersionID(u *uint) *VersionGroupCreate {
	if u != nil {
		vgc.SetCurrentVersionID(*u)
	}
	return vgc
}

// SetCreatedAt sets the "created_at" field.
func (vgc *VersionGroupCreate) SetCreatedAt(t time.Time) *VersionGroupCreate {
	vgc.mutation.SetCreatedAt(t)
	return vgc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vgc *VersionGroupCreate) SetNillableCreatedAt(t *time.Time) *VersionGroupCreate {
	if t != nil {
		vgc.SetCreatedAt(*t)
	}
	return vgc
}

// SetID sets the "id" field.
func (vgc *VersionGroupCreate) SetID(u uint) *VersionGroupCreate {
	vgc.mutation.SetID(u)
	return vgc
}

// AddVersionIDs adds the "versions" edge to the TrackedEntity entity by IDs.
func (vgc *VersionGroupCreate) AddVersionIDs(ids ...uint) *VersionGroupCreate {
	vgc.mutation.AddVersionIDs(ids...)
	return vgc
}

// AddVersions adds the "versions" edges to the TrackedEntity entity.
func (vgc *VersionGroupCreate) AddVersions(t ...*TrackedEntity) *VersionGroupCreate {
	ids := make([]uint, len(t))
	for i := range t {
		ids[i] = t[i].ID
	}
	return vgc.AddVersionIDs(ids...)
}

// SetCurrentVersion sets the "current_version" edge to the TrackedEntity entity.
func (vgc *VersionGroupCreate) SetCurrentVersion(t *TrackedEntity) *VersionGroupCreate {
	return vgc.SetCurrentVersionID(t.ID)
}

// Mutation returns the VersionGroupMutation object of the builder.
func (vgc *VersionGroupCreate) Mutation() *VersionGroupMutation {
	return vgc.mutation
}

// Save creates the VersionGroup in the database.
func (vgc *VersionGroupCreate) Save(ctx context.Context) (*VersionGroup, error) {
	vgc.defaults()
	return withHooks(ctx, vgc.sqlSave, vgc.mutation, vgc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vgc *VersionGroupCreate) SaveX(ctx context.Context) *VersionGroup {
	v, err := vgc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vgc *VersionGroupCreate) Exec(ctx context.Context) error {
	_, err := vgc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vgc *VersionGroupCreate) ExecX(ctx context.Context) {
	if err := vgc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vgc *VersionGroupCreate) defaults() {
	if _, ok := vgc.mutation.CreatedAt(); !ok {
		v := versiongroup.DefaultCreatedAt()
		vgc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vgc *VersionGroupCreate) check() error {
	if _, ok := vgc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VersionGroup.created_at"`)}
	}
	return nil
}

func (vgc *VersionGroupCreate) sqlSave(ctx context.Context) (*VersionGroup, error) {
	if err := vgc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vgc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vgc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = uint(id)
	}
	vgc.mutation.id = &_node.ID
	vgc.mutation.done = true
	return _node, nil
}

func (vgc *VersionGroupCreate) createSpec() (*VersionGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &VersionGroup{config: vgc.config}
		_spec = sqlgraph.NewCreateSpec(versiongroup.Table, sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint))
	)
	if id, ok := vgc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := vgc.mutation.CreatedAt(); ok {
		_spec.SetField(versiongroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := vgc.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := vgc.mutation.CurrentVersionIDs(); len(nodes) > 0 {
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
		_node.CurrentVersionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VersionGroupCreateBulk is the builder for creating many VersionGroup entities in bulk.
type VersionGroupCreateBulk struct {
	config
	err      error
	builders []*VersionGroupCreate
}

// Save creates the VersionGroup entities in the database.
func (vgcb *VersionGroupCreateBulk) Save(ctx context.Context) ([]*VersionGroup, error) {
	if vgcb.err != nil {
		return nil, vgcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vgcb.builders))
	nodes := make([]*VersionGroup, len(vgcb.builders))
	mutators := make([]Mutator, len(vgcb.builders))
	for i := range vgcb.builders {
		func(i int, root context.Context) {
			builder := vgcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VersionGroupMutation)
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
					_, err = mutators[i+1].Mutate(root, vgcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vgcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vgcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vgcb *VersionGroupCreateBulk) SaveX(ctx context.Context) []*VersionGroup {
	v, err := vgcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vgcb *VersionGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := vgcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vgcb *VersionGroupCreateBulk) ExecX(ctx context.Context) {
	if err := vgcb.Exec(ctx); err != nil {
		panic(err)
	}
}
