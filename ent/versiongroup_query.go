// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// VersionGroupQuery is the builder for querying VersionGroup entities.
type VersionGroupQuery struct {
	config
	ctx                *QueryContext
	order              []versiongroup.OrderOption
	inters             []Interceptor
	predicates         []predicate.VersionGroup
	withVersions       *TrackedEntityQuery
	withCurrentVersion *TrackedEntityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VersionGroupQuery builder.
func (vgq *VersionGroupQuery) Where(ps ...predicate.VersionGroup) *VersionGroupQuery {
	vgq.predicates = append(vgq.predicates, ps...)
	return vgq
}

// Limit the number of records to be returned by this query.
func (vgq *VersionGroupQuery) Limit(limit int) *VersionGroupQuery {
	vgq.ctx.Limit = &limit
	return vgq
}

// Offset to start from.
func (vgq *VersionGroupQuery) Offset(offset int) *VersionGroupQuery {
	vgq.ctx.Offset = &offset
	return vgq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (vgq *VersionGroupQuery) Unique(unique bool) *VersionGroupQuery {
	vgq.ctx.Unique = &unique
	return vgq
}

// Order specifies how the records should be ordered.
func (vgq *VersionGroupQuery) Order(o ...versiongroup.OrderOption) *VersionGroupQuery {
	vgq.order = append(vgq.order, o...)
	return vgq
}

// QueryVersions chains the current query on the "versions" edge.
func (vgq *VersionGroupQuery) QueryVersions() *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: vgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := vgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := vgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(versiongroup.Table, versiongroup.FieldID, selector),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, versiongroup.VersionsTable, versiongroup.VersionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(vgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryCurrentVersion chains the current query on the "current_version" edge.
func (vgq *VersionGroupQuery) QueryCurrentVersion() *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: vgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := vgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := vgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(versiongroup.Table, versiongroup.FieldID, selector),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, versiongroup.CurrentVersionTable, versiongroup.CurrentVersionColumn),
		)
		fromU = sqlgraph.SetNeighbors(vgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VersionGroup entity from the query.
// Returns a *NotFoundError when no VersionGroup was found.
func (vgq *VersionGroupQuery) First(ctx context.Context) (*VersionGroup, error) {
	nodes, err := vgq.Limit(1).All(setContextOp(ctx, vgq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{versiongroup.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (vgq *VersionGroupQuery) FirstX(ctx context.Context) *VersionGroup {
	node, err := vgq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VersionGroup ID from the query.
// Returns a *NotFoundError when no VersionGroup ID was found.
func (vgq *VersionGroupQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = vgq.Limit(1).IDs(setContextOp(ctx, vgq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{versiongroup.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (vgq *VersionGroupQuery) FirstIDX(ctx context.Context) uint {
	id, err := vgq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VersionGroup entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VersionGroup entity is found.
// Returns a *NotFoundError when no VersionGroup entities are found.
func (vgq *VersionGroupQuery) Only(ctx context.Context) (*VersionGroup, error) {
	nodes, err := vgq.Limit(2).All(setContextOp(ctx, vgq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{versiongroup.Label}
	default:
		return nil, &NotSingularError{versiongroup.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (vgq *VersionGroupQuery) OnlyX(ctx context.Context) *VersionGroup {
	node, err := vgq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VersionGroup ID in the query.
// Returns a *NotSingularError when more than one VersionGroup ID is found.
// Returns a *NotFoundError when no entities are found.
func (vgq *VersionGroupQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = vgq.Limit(2).IDs(setContextOp(ctx, vgq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{versiongroup.Label}
	default:
		err = &NotSingularError{versiongroup.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (vgq *VersionGroupQuery) OnlyIDX(ctx context.Context) uint {
	id, err := vgq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VersionGroups.
func (vgq *VersionGroupQuery) All(ctx context.Context) ([]*VersionGroup, error) {
	ctx = setContextOp(ctx, vgq.ctx, ent.OpQueryAll)
	if err := vgq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VersionGroup, *VersionGroupQuery]()
	return withInterceptors[[]*VersionGroup](ctx, vgq, qr, vgq.inters)
}

// AllX is like All, but panics if an error occurs.
func (vgq *VersionGroupQuery) AllX(ctx context.Context) []*VersionGroup {
	nodes, err := vgq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VersionGroup IDs.
func (vgq *VersionGroupQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if vgq.ctx.Unique == nil && vgq.path != nil {
		vgq.Unique(true)
	}
	ctx = setContextOp(ctx, vgq.ctx, ent.OpQueryIDs)
	if err = vgq.Select(versiongroup.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (vgq *VersionGroupQuery) IDsX(ctx context.Context) []uint {
	ids, err := vgq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (vgq *VersionGroupQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, vgq.ctx, ent.OpQueryCount)
	if err := vgq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, vgq, querierCount[*VersionGroupQuery](), vgq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (vgq *VersionGroupQuery) CountX(ctx context.Context) int {
	count, err := vgq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (vgq *VersionGroupQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, vgq.ctx, ent.OpQueryExist)
	switch _, err := vgq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (vgq *VersionGroupQuery) ExistX(ctx context.Context) bool {
	exist, err := vgq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VersionGroupQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (vgq *VersionGroupQuery) Clone() *VersionGroupQuery {
	if vgq == nil {
		return nil
	}
	return &VersionGroupQuery{
		config:             vgq.config,
		ctx:                vgq.ctx.Clone(),
		order:              append([]versiongroup.OrderOption{}, vgq.order...),
		inters:             append([]Interceptor{}, vgq.inters...),
		predicates:         append([]predicate.VersionGroup{}, vgq.predicates...),
		withVersions:       vgq.withVersions.Clone(),
		withCurrentVersion: vgq.withCurrentVersion.Clone(),
		// clone intermediate query.
		sql:  vgq.sql.Clone(),
		path: vgq.path,
	}
}

// WithVersions tells the query-builder to eager-load the nodes that are connected to
// the "versions" edge. The optional arguments are used to configure the query builder of the edge.
func (vgq *VersionGroupQuery) WithVersions(opts ...func(*TrackedEntityQuery)) *VersionGroupQuery {
	query := (&TrackedEntityClient{config: vgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	vgq.withVersions = query
	return vgq
}

// WithCurrentVersion tells the query-builder to eager-load the nodes that are connected to
// the "current_version" edge. The optional arguments are used to configure the query builder of the edge.
func (vgq *VersionGroupQuery) WithCurrentVersion(opts ...func(*TrackedEntityQuery)) *VersionGroupQuery {
	query := (&TrackedEntityClient{config: vgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	vgq.withCurrentVersion = query
	return vgq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CurrentVersionID uint `json:"current_version_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VersionGroup.Query().
//		GroupBy(versiongroup.FieldCurrentVersionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (vgq *VersionGroupQuery) GroupBy(field string, fields ...string) *VersionGroupGroupBy {
	vgq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VersionGroupGroupBy{build: vgq}
	grbuild.flds = &vgq.ctx.Fields
	grbuild.label = versiongroup.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CurrentVersionID uint `json:"current_version_id,omitempty"`
//	}
//
//	client.VersionGroup.Query().
//		Select(versiongroup.FieldCurrentVersionID).
//		Scan(ctx, &v)
func (vgq *VersionGroupQuery) Select(fields ...string) *VersionGroupSelect {
	vgq.ctx.Fields = append(vgq.ctx.Fields, fields...)
	sbuild := &VersionGroupSelect{VersionGroupQuery: vgq}
	sbuild.label = versiongroup.Label
	sbuild.flds, sbuild.scan = &vgq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VersionGroupSelect configured with the given aggregations.
func (vgq *VersionGroupQuery) Aggregate(fns ...AggregateFunc) *VersionGroupSelect {
	return vgq.Select().Aggregate(fns...)
}

func (vgq *VersionGroupQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range vgq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, vgq); err != nil {
				return err
			}
		}
	}
	for _, f := range vgq.ctx.Fields {
		if !versiongroup.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if vgq.path != nil {
		prev, err := vgq.path(ctx)
		if err != nil {
			return err
		}
		vgq.sql = prev
	}
	return nil
}

func (vgq *VersionGroupQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VersionGroup, error) {
	var (
		nodes       = []*VersionGroup{}
		_spec       = vgq.querySpec()
		loadedTypes = [2]bool{
			vgq.withVersions != nil,
			vgq.withCurrentVersion != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VersionGroup).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VersionGroup{config: vgq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, vgq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := vgq.withVersions; query != nil {
		if err := vgq.loadVersions(ctx, query, nodes,
			func(n *VersionGroup) { n.Edges.Versions = []*TrackedEntity{} },
			func(n *VersionGroup, e *TrackedEntity) { n.Edges.Versions = append(n.Edges.Versions, e) }); err != nil {
			return nil, err
		}
	}
	if query := vgq.withCurrentVersion; query != nil {
		if err := vgq.loadCurrentVersion(ctx, query, nodes, nil,
			func(n *VersionGroup, e *TrackedEntity) { n.Edges.CurrentVersion = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (vgq *VersionGroupQuery) loadVersions(ctx context.Context, query *TrackedEntityQuery, nodes []*VersionGroup, init func(*VersionGroup), assign func(*VersionGroup, *TrackedEntity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*VersionGroup)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(trackedentity.FieldVersionGroupID)
	}
	query.Where(predicate.TrackedEntity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(versiongroup.VersionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.VersionGroupID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "version_group_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (vgq *VersionGroupQuery) loadCurrentVersion(ctx context.Context, query *TrackedEntityQuery, nodes []*VersionGroup, init func(*VersionGroup), assign func(*VersionGroup, *TrackedEntity)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*VersionGroup)
	for i := range nodes {
		if nodes[i].CurrentVersionID == nil {
			continue
		}
		fk := *nodes[i].CurrentVersionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(trackedentity.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "current_version_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (vgq *VersionGroupQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := vgq.querySpec()
	_spec.Node.Columns = vgq.ctx.Fields
	if len(vgq.ctx.Fields) > 0 {
		_spec.Unique = vgq.ctx.Unique != nil && *vgq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, vgq.driver, _spec)
}

func (vgq *VersionGroupQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(versiongroup.Table, versiongroup.Columns, sqlgraph.NewFieldSpec(versiongroup.FieldID, field.TypeUint))
	_spec.From = vgq.sql
	if unique := vgq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if vgq.path != nil {
		_spec.Unique = true
	}
	if fields := vgq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, versiongroup.FieldID)
		for i := range fields {
			if fields[i] != versiongroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if vgq.withCurrentVersion != nil {
			_spec.Node.AddColumnOnce(versiongroup.FieldCurrentVersionID)
		}
	}
	if ps := vgq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := vgq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := vgq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := vgq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (vgq *VersionGroupQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(vgq.driver.Dialect())
	t1 := builder.Table(versiongroup.Table)
	columns := vgq.ctx.Fields
	if len(columns) == 0 {
		columns = versiongroup.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if vgq.sql != nil {
		selector = vgq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if vgq.ctx.Unique != nil && *vgq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range vgq.predicates {
		p(selector)
	}
	for _, p := range vgq.order {
		p(selector)
	}
	if offset := vgq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := vgq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VersionGroupGroupBy is the group-by builder for VersionGroup entities.
type VersionGroupGroupBy struct {
	selector
	build *VersionGroupQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (vggb *VersionGroupGroupBy) Aggregate(fns ...AggregateFunc) *VersionGroupGroupBy {
	vggb.fns = append(vggb.fns, fns...)
	return vggb
}

// Scan applies the selector query and scans the result into the given value.
func (vggb *VersionGroupGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vggb.build.ctx, ent.OpQueryGroupBy)
	if err := vggb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VersionGroupQuery, *VersionGroupGroupBy](ctx, vggb.build, vggb, vggb.build.inters, v)
}

func (vggb *VersionGroupGroupBy) sqlScan(ctx context.Context, root *VersionGroupQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(vggb.fns))
	for _, fn := range vggb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*vggb.flds)+len(vggb.fns))
		for _, f := range *vggb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*vggb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vggb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VersionGroupSelect is the builder for selecting fields of VersionGroup entities.
type VersionGroupSelect struct {
	*VersionGroupQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (vgs *VersionGroupSelect) Aggregate(fns ...AggregateFunc) *VersionGroupSelect {
	vgs.fns = append(vgs.fns, fns...)
	return vgs
}

// Scan applies the selector query and scans the result into the given value.
func (vgs *VersionGroupSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, vgs.ctx, ent.OpQuerySelect)
	if err := vgs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VersionGroupQuery, *VersionGroupSelect](ctx, vgs.VersionGroupQuery, vgs, vgs.inters, v)
}

func (vgs *VersionGroupSelect) sqlScan(ctx context.Context, root *VersionGroupQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(vgs.fns))
	for _, fn := range vgs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*vgs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := vgs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
