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
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// TransactionQuery is the builder for querying Transaction entities.
type TransactionQuery struct {
	config
	ctx            *QueryContext
	order          []transaction.OrderOption
	inters         []Interceptor
	predicates     []predicate.Transaction
	withWorkbasket *WorkBasketQuery
	withEntities   *TrackedEntityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TransactionQuery builder.
func (tq *TransactionQuery) Where(ps ...predicate.Transaction) *TransactionQuery {
	tq.predicates = append(tq.predicates, ps...)
	return tq
}

// Limit the number of records to be returned by this query.
func (tq *TransactionQuery) Limit(limit int) *TransactionQuery {
	tq.ctx.Limit = &limit
	return tq
}

// Offset to start from.
func (tq *TransactionQuery) Offset(offset int) *TransactionQuery {
	tq.ctx.Offset = &offset
	return tq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tq *TransactionQuery) Unique(unique bool) *TransactionQuery {
	tq.ctx.Unique = &unique
	return tq
}

// Order specifies how the records should be ordered.
func (tq *TransactionQuery) Order(o ...transaction.OrderOption) *TransactionQuery {
	tq.order = append(tq.order, o...)
	return tq
}

// QueryWorkbasket chains the current query on the "workbasket" edge.
func (tq *TransactionQuery) QueryWorkbasket() *WorkBasketQuery {
	query := (&WorkBasketClient{config: tq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, selector),
			sqlgraph.To(workbasket.Table, workbasket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transaction.WorkbasketTable, transaction.WorkbasketColumn),
		)
		fromU = sqlgraph.SetNeighbors(tq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntities chains the current query on the "entities" edge.
func (tq *TransactionQuery) QueryEntities() *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: tq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, selector),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transaction.EntitiesTable, transaction.EntitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(tq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Transaction entity from the query.
// Returns a *NotFoundError when no Transaction was found.
func (tq *TransactionQuery) First(ctx context.Context) (*Transaction, error) {
	nodes, err := tq.Limit(1).All(setContextOp(ctx, tq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{transaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tq *TransactionQuery) FirstX(ctx context.Context) *Transaction {
	node, err := tq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Transaction ID from the query.
// Returns a *NotFoundError when no Transaction ID was found.
func (tq *TransactionQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tq.Limit(1).IDs(setContextOp(ctx, tq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{transaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tq *TransactionQuery) FirstIDX(ctx context.Context) uint {
	id, err := tq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Transaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Transaction entity is found.
// Returns a *NotFoundError when no Transaction entities are found.
func (tq *TransactionQuery) Only(ctx context.Context) (*Transaction, error) {
	nodes, err := tq.Limit(2).All(setContextOp(ctx, tq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{transaction.Label}
	default:
		return nil, &NotSingularError{transaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tq *TransactionQuery) OnlyX(ctx context.Context) *Transaction {
	node, err := tq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Transaction ID in the query.
// Returns a *NotSingularError when more than one Transaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (tq *TransactionQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tq.Limit(2).IDs(setContextOp(ctx, tq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{transaction.Label}
	default:
		err = &NotSingularError{transaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tq *TransactionQuery) OnlyIDX(ctx context.Context) uint {
	id, err := tq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Transactions.
func (tq *TransactionQuery) All(ctx context.Context) ([]*Transaction, error) {
	ctx = setContextOp(ctx, tq.ctx, ent.OpQueryAll)
	if err := tq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Transaction, *TransactionQuery]()
	return withInterceptors[[]*Transaction](ctx, tq, qr, tq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tq *TransactionQuery) AllX(ctx context.Context) []*Transaction {
	nodes, err := tq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Transaction IDs.
func (tq *TransactionQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if tq.ctx.Unique == nil && tq.path != nil {
		tq.Unique(true)
	}
	ctx = setContextOp(ctx, tq.ctx, ent.OpQueryIDs)
	if err = tq.Select(transaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tq *TransactionQuery) IDsX(ctx context.Context) []uint {
	ids, err := tq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tq *TransactionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tq.ctx, ent.OpQueryCount)
	if err := tq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tq, querierCount[*TransactionQuery](), tq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tq *TransactionQuery) CountX(ctx context.Context) int {
	count, err := tq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tq *TransactionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tq.ctx, ent.OpQueryExist)
	switch _, err := tq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tq *TransactionQuery) ExistX(ctx context.Context) bool {
	exist, err := tq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TransactionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tq *TransactionQuery) Clone() *TransactionQuery {
	if tq == nil {
		return nil
	}
	return &TransactionQuery{
		config:         tq.config,
		ctx:            tq.ctx.Clone(),
		order:          append([]transaction.OrderOption{}, tq.order...),
		inters:         append([]Interceptor{}, tq.inters...),
		predicates:     append([]predicate.Transaction{}, tq.predicates...),
		withWorkbasket: tq.withWorkbasket.Clone(),
		withEntities:   tq.withEntities.Clone(),
		// clone intermediate query.
		sql:  tq.sql.Clone(),
		path: tq.path,
	}
}

// WithWorkbasket tells the query-builder to eager-load the nodes that are connected to
// the "workbasket" edge. The optional arguments are used to configure the query builder of the edge.
func (tq *TransactionQuery) WithWorkbasket(opts ...func(*WorkBasketQuery)) *TransactionQuery {
	query := (&WorkBasketClient{config: tq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tq.withWorkbasket = query
	return tq
}

// WithEntities tells the query-builder to eager-load the nodes that are connected to
// the "entities" edge. The optional arguments are used to configure the query builder of the edge.
func (tq *TransactionQuery) WithEntities(opts ...func(*TrackedEntityQuery)) *TransactionQuery {
	query := (&TrackedEntityClient{config: tq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tq.withEntities = query
	return tq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Partition int `json:"partition,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Transaction.Query().
//		GroupBy(transaction.FieldPartition).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tq *TransactionQuery) GroupBy(field string, fields ...string) *TransactionGroupBy {
	tq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TransactionGroupBy{build: tq}
	grbuild.flds = &tq.ctx.Fields
	grbuild.label = transaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Partition int `json:"partition,omitempty"`
//	}
//
//	client.Transaction.Query().
//		Select(transaction.FieldPartition).
//		Scan(ctx, &v)
func (tq *TransactionQuery) Select(fields ...string) *TransactionSelect {
	tq.ctx.Fields = append(tq.ctx.Fields, fields...)
	sbuild := &TransactionSelect{TransactionQuery: tq}
	sbuild.label = transaction.Label
	sbuild.flds, sbuild.scan = &tq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TransactionSelect configured with the given aggregations.
func (tq *TransactionQuery) Aggregate(fns ...AggregateFunc) *TransactionSelect {
	return tq.Select().Aggregate(fns...)
}

func (tq *TransactionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tq); err != nil {
				return err
			}
		}
	}
	for _, f := range tq.ctx.Fields {
		if !transaction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tq.path != nil {
		prev, err := tq.path(ctx)
		if err != nil {
			return err
		}
		tq.sql = prev
	}
	return nil
}

func (tq *TransactionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Transaction, error) {
	var (
		nodes       = []*Transaction{}
		_spec       = tq.querySpec()
		loadedTypes = [2]bool{
			tq.withWorkbasket != nil,
			tq.withEntities != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Transaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Transaction{config: tq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := tq.withWorkbasket; query != nil {
		if err := tq.loadWorkbasket(ctx, query, nodes, nil,
			func(n *Transaction, e *WorkBasket) { n.Edges.Workbasket = e }); err != nil {
			return nil, err
		}
	}
	if query := tq.withEntities; query != nil {
		if err := tq.loadEntities(ctx, query, nodes,
			func(n *Transaction) { n.Edges.Entities = []*TrackedEntity{} },
			func(n *Transaction, e *TrackedEntity) { n.Edges.Entities = append(n.Edges.Entities, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (tq *TransactionQuery) loadWorkbasket(ctx context.Context, query *WorkBasketQuery, nodes []*Transaction, init func(*Transaction), assign func(*Transaction, *WorkBasket)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*Transaction)
	for i := range nodes {
		fk := nodes[i].WorkbasketID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(workbasket.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "workbasket_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (tq *TransactionQuery) loadEntities(ctx context.Context, query *TrackedEntityQuery, nodes []*Transaction, init func(*Transaction), assign func(*Transaction, *TrackedEntity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*Transaction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(trackedentity.FieldTransactionID)
	}
	query.Where(predicate.TrackedEntity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transaction.EntitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TransactionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "transaction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (tq *TransactionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tq.querySpec()
	_spec.Node.Columns = tq.ctx.Fields
	if len(tq.ctx.Fields) > 0 {
		_spec.Unique = tq.ctx.Unique != nil && *tq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tq.driver, _spec)
}

func (tq *TransactionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUint))
	_spec.From = tq.sql
	if unique := tq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tq.path != nil {
		_spec.Unique = true
	}
	if fields := tq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for i := range fields {
			if fields[i] != transaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if tq.withWorkbasket != nil {
			_spec.Node.AddColumnOnce(transaction.FieldWorkbasketID)
		}
	}
	if ps := tq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tq *TransactionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tq.driver.Dialect())
	t1 := builder.Table(transaction.Table)
	columns := tq.ctx.Fields
	if len(columns) == 0 {
		columns = transaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tq.sql != nil {
		selector = tq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tq.ctx.Unique != nil && *tq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tq.predicates {
		p(selector)
	}
	for _, p := range tq.order {
		p(selector)
	}
	if offset := tq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TransactionGroupBy is the group-by builder for Transaction entities.
type TransactionGroupBy struct {
	selector
	build *TransactionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tgb *TransactionGroupBy) Aggregate(fns ...AggregateFunc) *TransactionGroupBy {
	tgb.fns = append(tgb.fns, fns...)
	return tgb
}

// Scan applies the selector query and scans the result into the given value.
func (tgb *TransactionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tgb.build.ctx, ent.OpQueryGroupBy)
	if err := tgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TransactionQuery, *TransactionGroupBy](ctx, tgb.build, tgb, tgb.build.inters, v)
}

func (tgb *TransactionGroupBy) sqlScan(ctx context.Context, root *TransactionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tgb.fns))
	for _, fn := range tgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tgb.flds)+len(tgb.fns))
		for _, f := range *tgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TransactionSelect is the builder for selecting fields of Transaction entities.
type TransactionSelect struct {
	*TransactionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ts *TransactionSelect) Aggregate(fns ...AggregateFunc) *TransactionSelect {
	ts.fns = append(ts.fns, fns...)
	return ts
}

// Scan applies the selector query and scans the result into the given value.
func (ts *TransactionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ts.ctx, ent.OpQuerySelect)
	if err := ts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TransactionQuery, *TransactionSelect](ctx, ts.TransactionQuery, ts, ts.inters, v)
}

func (ts *TransactionSelect) sqlScan(ctx context.Context, root *TransactionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ts.fns))
	for _, fn := range ts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
