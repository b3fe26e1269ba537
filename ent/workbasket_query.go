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
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// WorkBasketQuery is the builder for querying WorkBasket entities.
type WorkBasketQuery struct {
	config
	ctx              *QueryContext
	order            []workbasket.OrderOption
	inters           []Interceptor
	predicates       []predicate.WorkBasket
	withTransactions *TransactionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkBasketQuery builder.
func (wbq *WorkBasketQuery) Where(ps ...predicate.WorkBasket) *WorkBasketQuery {
	wbq.predicates = append(wbq.predicates, ps...)
	return wbq
}

// Limit the number of records to be returned by this query.
func (wbq *WorkBasketQuery) Limit(limit int) *WorkBasketQuery {
	wbq.ctx.Limit = &limit
	return wbq
}

// Offset to start from.
func (wbq *WorkBasketQuery) Offset(offset int) *WorkBasketQuery {
	wbq.ctx.Offset = &offset
	return wbq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (wbq *WorkBasketQuery) Unique(unique bool) *WorkBasketQuery {
	wbq.ctx.Unique = &unique
	return wbq
}

// Order specifies how the records should be ordered.
func (wbq *WorkBasketQuery) Order(o ...workbasket.OrderOption) *WorkBasketQuery {
	wbq.order = append(wbq.order, o...)
	return wbq
}

// QueryTransactions chains the current query on the "transactions" edge.
func (wbq *WorkBasketQuery) QueryTransactions() *TransactionQuery {
	query := (&TransactionClient{config: wbq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := wbq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := wbq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workbasket.Table, workbasket.FieldID, selector),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workbasket.TransactionsTable, workbasket.TransactionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(wbq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkBasket entity from the query.
// Returns a *NotFoundError when no WorkBasket was found.
func (wbq *WorkBasketQuery) First(ctx context.Context) (*WorkBasket, error) {
	nodes, err := wbq.Limit(1).All(setContextOp(ctx, wbq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workbasket.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (wbq *WorkBasketQuery) FirstX(ctx context.Context) *WorkBasket {
	node, err := wbq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkBasket ID from the query.
// Returns a *NotFoundError when no WorkBasket ID was found.
func (wbq *WorkBasketQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wbq.Limit(1).IDs(setContextOp(ctx, wbq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workbasket.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (wbq *WorkBasketQuery) FirstIDX(ctx context.Context) uint {
	id, err := wbq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkBasket entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkBasket entity is found.
// Returns a *NotFoundError when no WorkBasket entities are found.
func (wbq *WorkBasketQuery) Only(ctx context.Context) (*WorkBasket, error) {
	nodes, err := wbq.Limit(2).All(setContextOp(ctx, wbq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workbasket.Label}
	default:
		return nil, &NotSingularError{workbasket.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (wbq *WorkBasketQuery) OnlyX(ctx context.Context) *WorkBasket {
	node, err := wbq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkBasket ID in the query.
// Returns a *NotSingularError when more than one WorkBasket ID is found.
// Returns a *NotFoundError when no entities are found.
func (wbq *WorkBasketQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = wbq.Limit(2).IDs(setContextOp(ctx, wbq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workbasket.Label}
	default:
		err = &NotSingularError{workbasket.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (wbq *WorkBasketQuery) OnlyIDX(ctx context.Context) uint {
	id, err := wbq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkBaskets.
func (wbq *WorkBasketQuery) All(ctx context.Context) ([]*WorkBasket, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryAll)
	if err := wbq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkBasket, *WorkBasketQuery]()
	return withInterceptors[[]*WorkBasket](ctx, wbq, qr, wbq.inters)
}

// AllX is like All, but panics if an error occurs.
func (wbq *WorkBasketQuery) AllX(ctx context.Context) []*WorkBasket {
	nodes, err := wbq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkBasket IDs.
func (wbq *WorkBasketQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if wbq.ctx.Unique == nil && wbq.path != nil {
		wbq.Unique(true)
	}
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryIDs)
	if err = wbq.Select(workbasket.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (wbq *WorkBasketQuery) IDsX(ctx context.Context) []uint {
	ids, err := wbq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (wbq *WorkBasketQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryCount)
	if err := wbq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, wbq, querierCount[*WorkBasketQuery](), wbq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (wbq *WorkBasketQuery) CountX(ctx context.Context) int {
	count, err := wbq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (wbq *WorkBasketQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, wbq.ctx, ent.OpQueryExist)
	switch _, err := wbq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (wbq *WorkBasketQuery) ExistX(ctx context.Context) bool {
	exist, err := wbq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkBasketQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (wbq *WorkBasketQuery) Clone() *WorkBasketQuery {
	if wbq == nil {
		return nil
	}
	return &WorkBasketQuery{
		config:           wbq.config,
		ctx:              wbq.ctx.Clone(),
		order:            append([]workbasket.OrderOption{}, wbq.order...),
		inters:           append([]Interceptor{}, wbq.inters...),
		predicates:       append([]predicate.WorkBasket{}, wbq.predicates...),
		withTransactions: wbq.withTransactions.Clone(),
		// clone intermediate query.
		sql:  wbq.sql.Clone(),
		path: wbq.path,
	}
}

// WithTransactions tells the query-builder to eager-load the nodes that are connected to
// the "transactions" edge. The optional arguments are used to configure the query builder of the edge.
func (wbq *WorkBasketQuery) WithTransactions(opts ...func(*TransactionQuery)) *WorkBasketQuery {
	query := (&TransactionClient{config: wbq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	wbq.withTransactions = query
	return wbq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WorkBasket.Query().
//		GroupBy(workbasket.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (wbq *WorkBasketQuery) GroupBy(field string, fields ...string) *WorkBasketGroupBy {
	wbq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkBasketGroupBy{build: wbq}
	grbuild.flds = &wbq.ctx.Fields
	grbuild.label = workbasket.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.WorkBasket.Query().
//		Select(workbasket.FieldTitle).
//		Scan(ctx, &v)
func (wbq *WorkBasketQuery) Select(fields ...string) *WorkBasketSelect {
	wbq.ctx.Fields = append(wbq.ctx.Fields, fields...)
	sbuild := &WorkBasketSelect{WorkBasketQuery: wbq}
	sbuild.label = workbasket.Label
	sbuild.flds, sbuild.scan = &wbq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkBasketSelect configured with the given aggregations.
func (wbq *WorkBasketQuery) Aggregate(fns ...AggregateFunc) *WorkBasketSelect {
	return wbq.Select().Aggregate(fns...)
}

func (wbq *WorkBasketQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range wbq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, wbq); err != nil {
				return err
			}
		}
	}
	for _, f := range wbq.ctx.Fields {
		if !workbasket.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if wbq.path != nil {
		prev, err := wbq.path(ctx)
		if err != nil {
			return err
		}
		wbq.sql = prev
	}
	return nil
}

func (wbq *WorkBasketQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkBasket, error) {
	var (
		nodes       = []*WorkBasket{}
		_spec       = wbq.querySpec()
		loadedTypes = [1]bool{
			wbq.withTransactions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkBasket).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkBasket{config: wbq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, wbq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := wbq.withTransactions; query != nil {
		if err := wbq.loadTransactions(ctx, query, nodes,
			func(n *WorkBasket) { n.Edges.Transactions = []*Transaction{} },
			func(n *WorkBasket, e *Transaction) { n.Edges.Transactions = append(n.Edges.Transactions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (wbq *WorkBasketQuery) loadTransactions(ctx context.Context, query *TransactionQuery, nodes []*WorkBasket, init func(*WorkBasket), assign func(*WorkBasket, *Transaction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*WorkBasket)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(transaction.FieldWorkbasketID)
	}
	query.Where(predicate.Transaction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workbasket.TransactionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WorkbasketID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "workbasket_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (wbq *WorkBasketQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := wbq.querySpec()
	_spec.Node.Columns = wbq.ctx.Fields
	if len(wbq.ctx.Fields) > 0 {
		_spec.Unique = wbq.ctx.Unique != nil && *wbq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, wbq.driver, _spec)
}

func (wbq *WorkBasketQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workbasket.Table, workbasket.Columns, sqlgraph.NewFieldSpec(workbasket.FieldID, field.TypeUint))
	_spec.From = wbq.sql
	if unique := wbq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if wbq.path != nil {
		_spec.Unique = true
	}
	if fields := wbq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workbasket.FieldID)
		for i := range fields {
			if fields[i] != workbasket.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := wbq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := wbq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := wbq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := wbq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (wbq *WorkBasketQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(wbq.driver.Dialect())
	t1 := builder.Table(workbasket.Table)
	columns := wbq.ctx.Fields
	if len(columns) == 0 {
		columns = workbasket.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if wbq.sql != nil {
		selector = wbq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if wbq.ctx.Unique != nil && *wbq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range wbq.predicates {
		p(selector)
	}
	for _, p := range wbq.order {
		p(selector)
	}
	if offset := wbq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := wbq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// WorkBasketGroupBy is the group-by builder for WorkBasket entities.
type WorkBasketGroupBy struct {
	selector
	build *WorkBasketQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (wbgb *WorkBasketGroupBy) Aggregate(fns ...AggregateFunc) *WorkBasketGroupBy {
	wbgb.fns = append(wbgb.fns, fns...)
	return wbgb
}

// Scan applies the selector query and scans the result into the given value.
func (wbgb *WorkBasketGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wbgb.build.ctx, ent.OpQueryGroupBy)
	if err := wbgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkBasketQuery, *WorkBasketGroupBy](ctx, wbgb.build, wbgb, wbgb.build.inters, v)
}

func (wbgb *WorkBasketGroupBy) sqlScan(ctx context.Context, root *WorkBasketQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(wbgb.fns))
	for _, fn := range wbgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*wbgb.flds)+len(wbgb.fns))
		for _, f := range *wbgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*wbgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wbgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkBasketSelect is the builder for selecting fields of WorkBasket entities.
type WorkBasketSelect struct {
	*WorkBasketQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (wbs *WorkBasketSelect) Aggregate(fns ...AggregateFunc) *WorkBasketSelect {
	wbs.fns = append(wbs.fns, fns...)
	return wbs
}

// Scan applies the selector query and scans the result into the given value.
func (wbs *WorkBasketSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, wbs.ctx, ent.OpQuerySelect)
	if err := wbs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkBasketQuery, *WorkBasketSelect](ctx, wbs.WorkBasketQuery, wbs, wbs.inters, v)
}

func (wbs *WorkBasketSelect) sqlScan(ctx context.Context, root *WorkBasketQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(wbs.fns))
	for _, fn := range wbs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*wbs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := wbs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
