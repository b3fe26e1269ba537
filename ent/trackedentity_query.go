// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/anzhiyu-c/tariff-app/ent/predicate"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
)

// TrackedEntityQuery is the builder for querying TrackedEntity entities.
type TrackedEntityQuery struct {
	config
	ctx             *QueryContext
	order           []trackedentity.OrderOption
	inters          []Interceptor
	predicates      []predicate.TrackedEntity
	withGroup       *VersionGroupQuery
	withTransaction *TransactionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TrackedEntityQuery builder.
func (teq *TrackedEntityQuery) Where(ps ...predicate.TrackedEntity) *TrackedEntityQuery {
	teq.predicates = append(teq.predicates, ps...)
	return teq
}

// Limit the number of records to be returned by this query.
func (teq *TrackedEntityQuery) Limit(limit int) *TrackedEntityQuery {
	teq.ctx.Limit = &limit
	return teq
}

// Offset to start from.
func (teq *TrackedEntityQuery) Offset(offset int) *TrackedEntityQuery {
	teq.ctx.Offset = &offset
	return teq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (teq *TrackedEntityQuery) Unique(unique bool) *TrackedEntityQuery {
	teq.ctx.Unique = &unique
	return teq
}

// Order specifies how the records should be ordered.
func (teq *TrackedEntityQuery) Order(o ...trackedentity.OrderOption) *TrackedEntityQuery {
	teq.order = append(teq.order, o...)
	return teq
}

// QueryGroup chains the current query on the "group" edge.
func (teq *TrackedEntityQuery) QueryGroup() *VersionGroupQuery {
	query := (&VersionGroupClient{config: teq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := teq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := teq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trackedentity.Table, trackedentity.FieldID, selector),
			sqlgraph.To(versiongroup.Table, versiongroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackedentity.GroupTable, trackedentity.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(teq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTransaction chains the current query on the "transaction" edge.
func (teq *TrackedEntityQuery) QueryTransaction() *TransactionQuery {
	query := (&TransactionClient{config: teq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := teq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := teq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trackedentity.Table, trackedentity.FieldID, selector),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackedentity.TransactionTable, trackedentity.TransactionColumn),
		)
		fromU = sqlgraph.SetNeighbors(teq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TrackedEntity entity from the query.
// Returns a *NotFoundError when no TrackedEntity was found.
func (teq *TrackedEntityQuery) First(ctx context.Context) (*TrackedEntity, error) {
	nodes, err := teq.Limit(1).All(setContextOp(ctx, teq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{trackedentity.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (teq *TrackedEntityQuery) FirstX(ctx context.Context) *TrackedEntity {
	node, err := teq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TrackedEntity ID from the query.
// Returns a *NotFoundError when no TrackedEntity ID was found.
func (teq *TrackedEntityQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = teq.Limit(1).IDs(setContextOp(ctx, teq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{trackedentity.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (teq *TrackedEntityQuery) FirstIDX(ctx context.Context) uint {
	id, err := teq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TrackedEntity entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TrackedEntity entity is found.
// Returns a *NotFoundError when no TrackedEntity entities are found.
func (teq *TrackedEntityQuery) Only(ctx context.Context) (*TrackedEntity, error) {
	nodes, err := teq.Limit(2).All(setContextOp(ctx, teq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{trackedentity.Label}
	default:
		return nil, &NotSingularError{trackedentity.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (teq *TrackedEntityQuery) OnlyX(ctx context.Context) *TrackedEntity {
	node, err := teq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TrackedEntity ID in the query.
// Returns a *NotSingularError when more than one TrackedEntity ID is found.
// Returns a *NotFoundError when no entities are found.
func (teq *TrackedEntityQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = teq.Limit(2).IDs(setContextOp(ctx, teq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{trackedentity.Label}
	default:
		err = &NotSingularError{trackedentity.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (teq *TrackedEntityQuery) OnlyIDX(ctx context.Context) uint {
	id, err := teq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TrackedEntities.
func (teq *TrackedEntityQuery) All(ctx context.Context) ([]*TrackedEntity, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryAll)
	if err := teq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TrackedEntity, *TrackedEntityQuery]()
	return withInterceptors[[]*TrackedEntity](ctx, teq, qr, teq.inters)
}

// AllX is like All, but panics if an error occurs.
func (teq *TrackedEntityQuery) AllX(ctx context.Context) []*TrackedEntity {
	nodes, err := teq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TrackedEntity IDs.
func (teq *TrackedEntityQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if teq.ctx.Unique == nil && teq.path != nil {
		teq.Unique(true)
	}
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryIDs)
	if err = teq.Select(trackedentity.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (teq *TrackedEntityQuery) IDsX(ctx context.Context) []uint {
	ids, err := teq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (teq *TrackedEntityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryCount)
	if err := teq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, teq, querierCount[*TrackedEntityQuery](), teq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (teq *TrackedEntityQuery) CountX(ctx context.Context) int {
	count, err := teq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (teq *TrackedEntityQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryExist)
	switch _, err := teq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (teq *TrackedEntityQuery) ExistX(ctx context.Context) bool {
	exist, err := teq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TrackedEntityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (teq *TrackedEntityQuery) Clone() *TrackedEntityQuery {
	if teq == nil {
		return nil
	}
	return &TrackedEntityQuery{
		config:          teq.config,
		ctx:             teq.ctx.Clone(),
		order:           append([]trackedentity.OrderOption{}, teq.order...),
		inters:          append([]Interceptor{}, teq.inters...),
		predicates:      append([]predicate.TrackedEntity{}, teq.predicates...),
		withGroup:       teq.withGroup.Clone(),
		withTransaction: teq.withTransaction.Clone(),
		// clone intermediate query.
		sql:  teq.sql.Clone(),
		path: teq.path,
	}
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (teq *TrackedEntityQuery) WithGroup(opts ...func(*VersionGroupQuery)) *TrackedEntityQuery {
	query := (&VersionGroupClient{config: teq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	teq.withGroup = query
	return teq
}

// WithTransaction tells the query-builder to eager-load the nodes that are connected to
// the "transaction" edge. The optional arguments are used to configure the query builder of the edge.
func (teq *TrackedEntityQuery) WithTransaction(opts ...func(*TransactionQuery)) *TrackedEntityQuery {
	query := (&TransactionClient{config: teq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	teq.withTransaction = query
	return teq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Kind string `json:"kind,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TrackedEntity.Query().
//		GroupBy(trackedentity.FieldKind).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (teq *TrackedEntityQuery) GroupBy(field string, fields ...string) *TrackedEntityGroupBy {
	teq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TrackedEntityGroupBy{build: teq}
	grbuild.flds = &teq.ctx.Fields
	grbuild.label = trackedentity.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Kind string `json:"kind,omitempty"`
//	}
//
//	client.TrackedEntity.Query().
//		Select(trackedentity.FieldKind).
//		Scan(ctx, &v)
func (teq *TrackedEntityQuery) Select(fields ...string) *TrackedEntitySelect {
	teq.ctx.Fields = append(teq.ctx.Fields, fields...)
	sbuild := &TrackedEntitySelect{TrackedEntityQuery: teq}
	sbuild.label = trackedentity.Label
	sbuild.flds, sbuild.scan = &teq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TrackedEntitySelect configured with the given aggregations.
func (teq *TrackedEntityQuery) Aggregate(fns ...AggregateFunc) *TrackedEntitySelect {
	return teq.Select().Aggregate(fns...)
}

func (teq *TrackedEntityQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range teq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, teq); err != nil {
				return err
			}
		}
	}
	for _, f := range teq.ctx.Fields {
		if !trackedentity.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if teq.path != nil {
		prev, err := teq.path(ctx)
		if err != nil {
			return err
		}
		teq.sql = prev
	}
	return nil
}

func (teq *TrackedEntityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TrackedEntity, error) {
	var (
		nodes       = []*TrackedEntity{}
		_spec       = teq.querySpec()
		loadedTypes = [2]bool{
			teq.withGroup != nil,
			teq.withTransaction != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TrackedEntity).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TrackedEntity{config: teq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, teq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := teq.withGroup; query != nil {
		if err := teq.loadGroup(ctx, query, nodes, nil,
			func(n *TrackedEntity, e *VersionGroup) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	if query := teq.withTransaction; query != nil {
		if err := teq.loadTransaction(ctx, query, nodes, nil,
			func(n *TrackedEntity, e *Transaction) { n.Edges.Transaction = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (teq *TrackedEntityQuery) loadGroup(ctx context.Context, query *VersionGroupQuery, nodes []*TrackedEntity, init func(*TrackedEntity), assign func(*TrackedEntity, *VersionGroup)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*TrackedEntity)
	for i := range nodes {
		fk := nodes[i].VersionGroupID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(versiongroup.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "version_group_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (teq *TrackedEntityQuery) loadTransaction(ctx context.Context, query *TransactionQuery, nodes []*TrackedEntity, init func(*TrackedEntity), assign func(*TrackedEntity, *Transaction)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*TrackedEntity)
	for i := range nodes {
		fk := nodes[i].TransactionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(transaction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "transaction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (teq *TrackedEntityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := teq.querySpec()
	_spec.Node.Columns = teq.ctx.Fields
	if len(teq.ctx.Fields) > 0 {
		_spec.Unique = teq.ctx.Unique != nil && *teq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, teq.driver, _spec)
}

func (teq *TrackedEntityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(trackedentity.Table, trackedentity.Columns, sqlgraph.NewFieldSpec(trackedentity.FieldID, field.TypeUint))
	_spec.From = teq.sql
	if unique := teq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if teq.path != nil {
		_spec.Unique = true
	}
	if fields := teq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackedentity.FieldID)
		for i := range fields {
			if fields[i] != trackedentity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if teq.withGroup != nil {
			_spec.Node.AddColumnOnce(trackedentity.FieldVersionGroupID)
		}
		if teq.withTransaction != nil {
			_spec.Node.AddColumnOnce(trackedentity.FieldTransactionID)
		}
	}
	if ps := teq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := teq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := teq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := teq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (teq *TrackedEntityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(teq.driver.Dialect())
	t1 := builder.Table(trackedentity.Table)
	columns := teq.ctx.Fields
	if len(columns) == 0 {
		columns = trackedentity.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if teq.sql != nil {
		selector = teq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if teq.ctx.Unique != nil && *teq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range teq.predicates {
		p(selector)
	}
	for _, p := range teq.order {
		p(selector)
	}
	if offset := teq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := teq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TrackedEntityGroupBy is the group-by builder for TrackedEntity entities.
type TrackedEntityGroupBy struct {
	selector
	build *TrackedEntityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tegb *TrackedEntityGroupBy) Aggregate(fns ...AggregateFunc) *TrackedEntityGroupBy {
	tegb.fns = append(tegb.fns, fns...)
	return tegb
}

// Scan applies the selector query and scans the result into the given value.
func (tegb *TrackedEntityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tegb.build.ctx, ent.OpQueryGroupBy)
	if err := tegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrackedEntityQuery, *TrackedEntityGroupBy](ctx, tegb.build, tegb, tegb.build.inters, v)
}

func (tegb *TrackedEntityGroupBy) sqlScan(ctx context.Context, root *TrackedEntityQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tegb.fns))
	for _, fn := range tegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tegb.flds)+len(tegb.fns))
		for _, f := range *tegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TrackedEntitySelect is the builder for selecting fields of TrackedEntity entities.
type TrackedEntitySelect struct {
	*TrackedEntityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tes *TrackedEntitySelect) Aggregate(fns ...AggregateFunc) *TrackedEntitySelect {
	tes.fns = append(tes.fns, fns...)
	return tes
}

// Scan applies the selector query and scans the result into the given value.
func (tes *TrackedEntitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tes.ctx, ent.OpQuerySelect)
	if err := tes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TrackedEntityQuery, *TrackedEntitySelect](ctx, tes.TrackedEntityQuery, tes, tes.inters, v)
}

func (tes *TrackedEntitySelect) sqlScan(ctx context.Context, root *TrackedEntityQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tes.fns))
	for _, fn := range tes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
