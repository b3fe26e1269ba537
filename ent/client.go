// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anzhiyu-c/tariff-app/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/tariff-app/ent/envelope"
	"github.com/anzhiyu-c/tariff-app/ent/setting"
	"github.com/anzhiyu-c/tariff-app/ent/trackedentity"
	"github.com/anzhiyu-c/tariff-app/ent/transaction"
	"github.com/anzhiyu-c/tariff-app/ent/versiongroup"
	"github.com/anzhiyu-c/tariff-app/ent/workbasket"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Envelope is the client for interacting with the Envelope builders.
	Envelope *EnvelopeClient
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// TrackedEntity is the client for interacting with the TrackedEntity builders.
	TrackedEntity *TrackedEntityClient
	// Transaction is the client for interacting with the Transaction builders.
	Transaction *TransactionClient
	// VersionGroup is the client for interacting with the VersionGroup builders.
	VersionGroup *VersionGroupClient
	// WorkBasket is the client for interacting with the WorkBasket builders.
	WorkBasket *WorkBasketClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Envelope = NewEnvelopeClient(c.config)
	c.Setting = NewSettingClient(c.config)
	c.TrackedEntity = NewTrackedEntityClient(c.config)
	c.Transaction = NewTransactionClient(c.config)
	c.VersionGroup = NewVersionGroupClient(c.config)
	c.WorkBasket = NewWorkBasketClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Envelope:      NewEnvelopeClient(cfg),
		Setting:       NewSettingClient(cfg),
		TrackedEntity: NewTrackedEntityClient(cfg),
		Transaction:   NewTransactionClient(cfg),
		VersionGroup:  NewVersionGroupClient(cfg),
		WorkBasket:    NewWorkBasketClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Envelope:      NewEnvelopeClient(cfg),
		Setting:       NewSettingClient(cfg),
		TrackedEntity: NewTrackedEntityClient(cfg),
		Transaction:   NewTransactionClient(cfg),
		VersionGroup:  NewVersionGroupClient(cfg),
		WorkBasket:    NewWorkBasketClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Envelope.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Envelope, c.Setting, c.TrackedEntity, c.Transaction, c.VersionGroup,
		c.WorkBasket,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Envelope, c.Setting, c.TrackedEntity, c.Transaction, c.VersionGroup,
		c.WorkBasket,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EnvelopeMutation:
		return c.Envelope.mutate(ctx, m)
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *TrackedEntityMutation:
		return c.TrackedEntity.mutate(ctx, m)
	case *TransactionMutation:
		return c.Transaction.mutate(ctx, m)
	case *VersionGroupMutation:
		return c.VersionGroup.mutate(ctx, m)
	case *WorkBasketMutation:
		return c.WorkBasket.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EnvelopeClient is a client for the Envelope schema.
type EnvelopeClient struct {
	config
}

// NewEnvelopeClient returns a client for the Envelope from the given config.
func NewEnvelopeClient(c config) *EnvelopeClient {
	return &EnvelopeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `envelope.Hooks(f(g(h())))`.
func (c *EnvelopeClient) Use(hooks ...Hook) {
	c.hooks.Envelope = append(c.hooks.Envelope, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `envelope.Intercept(f(g(h())))`.
func (c *EnvelopeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Envelope = append(c.inters.Envelope, interceptors...)
}

// Create returns a builder for creating a Envelope entity.
func (c *EnvelopeClient) Create() *EnvelopeCreate {
	mutation := newEnvelopeMutation(c.config, OpCreate)
	return &EnvelopeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Envelope entities.
func (c *EnvelopeClient) CreateBulk(builders ...*EnvelopeCreate) *EnvelopeCreateBulk {
	return &EnvelopeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnvelopeClient) MapCreateBulk(slice any, setFunc func(*EnvelopeCreate, int)) *EnvelopeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnvelopeCreateBulk{err: fmt.Errorf("calling to EnvelopeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnvelopeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnvelopeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Envelope.
func (c *EnvelopeClient) Update() *EnvelopeUpdate {
	mutation := newEnvelopeMutation(c.config, OpUpdate)
	return &EnvelopeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnvelopeClient) UpdateOne(e *Envelope) *EnvelopeUpdateOne {
	mutation := newEnvelopeMutation(c.config, OpUpdateOne, withEnvelope(e))
	return &EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnvelopeClient) UpdateOneID(id uint) *EnvelopeUpdateOne {
	mutation := newEnvelopeMutation(c.config, OpUpdateOne, withEnvelopeID(id))
	return &EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Envelope.
func (c *EnvelopeClient) Delete() *EnvelopeDelete {
	mutation := newEnvelopeMutation(c.config, OpDelete)
	return &EnvelopeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnvelopeClient) DeleteOne(e *Envelope) *EnvelopeDeleteOne {
	return c.DeleteOneID(e.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnvelopeClient) DeleteOneID(id uint) *EnvelopeDeleteOne {
	builder := c.Delete().Where(envelope.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnvelopeDeleteOne{builder}
}

// Query returns a query builder for Envelope.
func (c *EnvelopeClient) Query() *EnvelopeQuery {
	return &EnvelopeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnvelope},
		inters: c.Interceptors(),
	}
}

// Get returns a Envelope entity by its id.
func (c *EnvelopeClient) Get(ctx context.Context, id uint) (*Envelope, error) {
	return c.Query().Where(envelope.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnvelopeClient) GetX(ctx context.Context, id uint) *Envelope {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnvelopeClient) Hooks() []Hook {
	return c.hooks.Envelope
}

// Interceptors returns the client interceptors.
func (c *EnvelopeClient) Interceptors() []Interceptor {
	return c.inters.Envelope
}

func (c *EnvelopeClient) mutate(ctx context.Context, m *EnvelopeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnvelopeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnvelopeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnvelopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnvelopeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Envelope mutation op: %q", m.Op())
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(s *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(s))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(s *Setting) *SettingDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	hooks := c.hooks.Setting
	return append(hooks[:len(hooks):len(hooks)], setting.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// TrackedEntityClient is a client for the TrackedEntity schema.
type TrackedEntityClient struct {
	config
}

// NewTrackedEntityClient returns a client for the TrackedEntity from the given config.
func NewTrackedEntityClient(c config) *TrackedEntityClient {
	return &TrackedEntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trackedentity.Hooks(f(g(h())))`.
func (c *TrackedEntityClient) Use(hooks ...Hook) {
	c.hooks.TrackedEntity = append(c.hooks.TrackedEntity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trackedentity.Intercept(f(g(h())))`.
func (c *TrackedEntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrackedEntity = append(c.inters.TrackedEntity, interceptors...)
}

// Create returns a builder for creating a TrackedEntity entity.
func (c *TrackedEntityClient) Create() *TrackedEntityCreate {
	mutation := newTrackedEntityMutation(c.config, OpCreate)
	return &TrackedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrackedEntity entities.
func (c *TrackedEntityClient) CreateBulk(builders ...*TrackedEntityCreate) *TrackedEntityCreateBulk {
	return &TrackedEntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrackedEntityClient) MapCreateBulk(slice any, setFunc func(*TrackedEntityCreate, int)) *TrackedEntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrackedEntityCreateBulk{err: fmt.Errorf("calling to TrackedEntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrackedEntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrackedEntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrackedEntity.
func (c *TrackedEntityClient) Update() *TrackedEntityUpdate {
	mutation := newTrackedEntityMutation(c.config, OpUpdate)
	return &TrackedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrackedEntityClient) UpdateOne(te *TrackedEntity) *TrackedEntityUpdateOne {
	mutation := newTrackedEntityMutation(c.config, OpUpdateOne, withTrackedEntity(te))
	return &TrackedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrackedEntityClient) UpdateOneID(id uint) *TrackedEntityUpdateOne {
	mutation := newTrackedEntityMutation(c.config, OpUpdateOne, withTrackedEntityID(id))
	return &TrackedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrackedEntity.
func (c *TrackedEntityClient) Delete() *TrackedEntityDelete {
	mutation := newTrackedEntityMutation(c.config, OpDelete)
	return &TrackedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrackedEntityClient) DeleteOne(te *TrackedEntity) *TrackedEntityDeleteOne {
	return c.DeleteOneID(te.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrackedEntityClient) DeleteOneID(id uint) *TrackedEntityDeleteOne {
	builder := c.Delete().Where(trackedentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrackedEntityDeleteOne{builder}
}

// Query returns a query builder for TrackedEntity.
func (c *TrackedEntityClient) Query() *TrackedEntityQuery {
	return &TrackedEntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrackedEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a TrackedEntity entity by its id.
func (c *TrackedEntityClient) Get(ctx context.Context, id uint) (*TrackedEntity, error) {
	return c.Query().Where(trackedentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrackedEntityClient) GetX(ctx context.Context, id uint) *TrackedEntity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a TrackedEntity.
func (c *TrackedEntityClient) QueryGroup(te *TrackedEntity) *VersionGroupQuery {
	query := (&VersionGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := te.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackedentity.Table, trackedentity.FieldID, id),
			sqlgraph.To(versiongroup.Table, versiongroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackedentity.GroupTable, trackedentity.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(te.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransaction queries the transaction edge of a TrackedEntity.
func (c *TrackedEntityClient) QueryTransaction(te *TrackedEntity) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := te.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trackedentity.Table, trackedentity.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trackedentity.TransactionTable, trackedentity.TransactionColumn),
		)
		fromV = sqlgraph.Neighbors(te.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TrackedEntityClient) Hooks() []Hook {
	return c.hooks.TrackedEntity
}

// Interceptors returns the client interceptors.
func (c *TrackedEntityClient) Interceptors() []Interceptor {
	return c.inters.TrackedEntity
}

func (c *TrackedEntityClient) mutate(ctx context.Context, m *TrackedEntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrackedEntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrackedEntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrackedEntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrackedEntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrackedEntity mutation op: %q", m.Op())
	}
}

// TransactionClient is a client for the Transaction schema.
type TransactionClient struct {
	config
}

// NewTransactionClient returns a client for the Transaction from the given config.
func NewTransactionClient(c config) *TransactionClient {
	return &TransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transaction.Hooks(f(g(h())))`.
func (c *TransactionClient) Use(hooks ...Hook) {
	c.hooks.Transaction = append(c.hooks.Transaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transaction.Intercept(f(g(h())))`.
func (c *TransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transaction = append(c.inters.Transaction, interceptors...)
}

// Create returns a builder for creating a Transaction entity.
func (c *TransactionClient) Create() *TransactionCreate {
	mutation := newTransactionMutation(c.config, OpCreate)
	return &TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transaction entities.
func (c *TransactionClient) CreateBulk(builders ...*TransactionCreate) *TransactionCreateBulk {
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionClient) MapCreateBulk(slice any, setFunc func(*TransactionCreate, int)) *TransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionCreateBulk{err: fmt.Errorf("calling to TransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transaction.
func (c *TransactionClient) Update() *TransactionUpdate {
	mutation := newTransactionMutation(c.config, OpUpdate)
	return &TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionClient) UpdateOne(t *Transaction) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransaction(t))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionClient) UpdateOneID(id uint) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransactionID(id))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transaction.
func (c *TransactionClient) Delete() *TransactionDelete {
	mutation := newTransactionMutation(c.config, OpDelete)
	return &TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionClient) DeleteOne(t *Transaction) *TransactionDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionClient) DeleteOneID(id uint) *TransactionDeleteOne {
	builder := c.Delete().Where(transaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionDeleteOne{builder}
}

// Query returns a query builder for Transaction.
func (c *TransactionClient) Query() *TransactionQuery {
	return &TransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Transaction entity by its id.
func (c *TransactionClient) Get(ctx context.Context, id uint) (*Transaction, error) {
	return c.Query().Where(transaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionClient) GetX(ctx context.Context, id uint) *Transaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkbasket queries the workbasket edge of a Transaction.
func (c *TransactionClient) QueryWorkbasket(t *Transaction) *WorkBasketQuery {
	query := (&WorkBasketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(workbasket.Table, workbasket.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transaction.WorkbasketTable, transaction.WorkbasketColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntities queries the entities edge of a Transaction.
func (c *TransactionClient) QueryEntities(t *Transaction) *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := t.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transaction.EntitiesTable, transaction.EntitiesColumn),
		)
		fromV = sqlgraph.Neighbors(t.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TransactionClient) Hooks() []Hook {
	return c.hooks.Transaction
}

// Interceptors returns the client interceptors.
func (c *TransactionClient) Interceptors() []Interceptor {
	return c.inters.Transaction
}

func (c *TransactionClient) mutate(ctx context.Context, m *TransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transaction mutation op: %q", m.Op())
	}
}

// VersionGroupClient is a client for the VersionGroup schema.
type VersionGroupClient struct {
	config
}

// NewVersionGroupClient returns a client for the VersionGroup from the given config.
func NewVersionGroupClient(c config) *VersionGroupClient {
	return &VersionGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `versiongroup.Hooks(f(g(h())))`.
func (c *VersionGroupClient) Use(hooks ...Hook) {
	c.hooks.VersionGroup = append(c.hooks.VersionGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `versiongroup.Intercept(f(g(h())))`.
func (c *VersionGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.VersionGroup = append(c.inters.VersionGroup, interceptors...)
}

// Create returns a builder for creating a VersionGroup entity.
func (c *VersionGroupClient) Create() *VersionGroupCreate {
	mutation := newVersionGroupMutation(c.config, OpCreate)
	return &VersionGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VersionGroup entities.
func (c *VersionGroupClient) CreateBulk(builders ...*VersionGroupCreate) *VersionGroupCreateBulk {
	return &VersionGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VersionGroupClient) MapCreateBulk(slice any, setFunc func(*VersionGroupCreate, int)) *VersionGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VersionGroupCreateBulk{err: fmt.Errorf("calling to VersionGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VersionGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VersionGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VersionGroup.
func (c *VersionGroupClient) Update() *VersionGroupUpdate {
	mutation := newVersionGroupMutation(c.config, OpUpdate)
	return &VersionGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VersionGroupClient) UpdateOne(vg *VersionGroup) *VersionGroupUpdateOne {
	mutation := newVersionGroupMutation(c.config, OpUpdateOne, withVersionGroup(vg))
	return &VersionGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VersionGroupClient) UpdateOneID(id uint) *VersionGroupUpdateOne {
	mutation := newVersionGroupMutation(c.config, OpUpdateOne, withVersionGroupID(id))
	return &VersionGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VersionGroup.
func (c *VersionGroupClient) Delete() *VersionGroupDelete {
	mutation := newVersionGroupMutation(c.config, OpDelete)
	return &VersionGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VersionGroupClient) DeleteOne(vg *VersionGroup) *VersionGroupDeleteOne {
	return c.DeleteOneID(vg.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VersionGroupClient) DeleteOneID(id uint) *VersionGroupDeleteOne {
	builder := c.Delete().Where(versiongroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VersionGroupDeleteOne{builder}
}

// Query returns a query builder for VersionGroup.
func (c *VersionGroupClient) Query() *VersionGroupQuery {
	return &VersionGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVersionGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a VersionGroup entity by its id.
func (c *VersionGroupClient) Get(ctx context.Context, id uint) (*VersionGroup, error) {
	return c.Query().Where(versiongroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VersionGroupClient) GetX(ctx context.Context, id uint) *VersionGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVersions queries the versions edge of a VersionGroup.
func (c *VersionGroupClient) QueryVersions(vg *VersionGroup) *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := vg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(versiongroup.Table, versiongroup.FieldID, id),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, versiongroup.VersionsTable, versiongroup.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(vg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCurrentVersion queries the current_version edge of a VersionGroup.
func (c *VersionGroupClient) QueryCurrentVersion(vg *VersionGroup) *TrackedEntityQuery {
	query := (&TrackedEntityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := vg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(versiongroup.Table, versiongroup.FieldID, id),
			sqlgraph.To(trackedentity.Table, trackedentity.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, versiongroup.CurrentVersionTable, versiongroup.CurrentVersionColumn),
		)
		fromV = sqlgraph.Neighbors(vg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VersionGroupClient) Hooks() []Hook {
	return c.hooks.VersionGroup
}

// Interceptors returns the client interceptors.
func (c *VersionGroupClient) Interceptors() []Interceptor {
	return c.inters.VersionGroup
}

func (c *VersionGroupClient) mutate(ctx context.Context, m *VersionGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VersionGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VersionGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VersionGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VersionGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VersionGroup mutation op: %q", m.Op())
	}
}

// WorkBasketClient is a client for the WorkBasket schema.
type WorkBasketClient struct {
	config
}

// NewWorkBasketClient returns a client for the WorkBasket from the given config.
func NewWorkBasketClient(c config) *WorkBasketClient {
	return &WorkBasketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workbasket.Hooks(f(g(h())))`.
func (c *WorkBasketClient) Use(hooks ...Hook) {
	c.hooks.WorkBasket = append(c.hooks.WorkBasket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workbasket.Intercept(f(g(h())))`.
func (c *WorkBasketClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkBasket = append(c.inters.WorkBasket, interceptors...)
}

// Create returns a builder for creating a WorkBasket entity.
func (c *WorkBasketClient) Create() *WorkBasketCreate {
	mutation := newWorkBasketMutation(c.config, OpCreate)
	return &WorkBasketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkBasket entities.
func (c *WorkBasketClient) CreateBulk(builders ...*WorkBasketCreate) *WorkBasketCreateBulk {
	return &WorkBasketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkBasketClient) MapCreateBulk(slice any, setFunc func(*WorkBasketCreate, int)) *WorkBasketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkBasketCreateBulk{err: fmt.Errorf("calling to WorkBasketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkBasketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkBasketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkBasket.
func (c *WorkBasketClient) Update() *WorkBasketUpdate {
	mutation := newWorkBasketMutation(c.config, OpUpdate)
	return &WorkBasketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkBasketClient) UpdateOne(wb *WorkBasket) *WorkBasketUpdateOne {
	mutation := newWorkBasketMutation(c.config, OpUpdateOne, withWorkBasket(wb))
	return &WorkBasketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkBasketClient) UpdateOneID(id uint) *WorkBasketUpdateOne {
	mutation := newWorkBasketMutation(c.config, OpUpdateOne, withWorkBasketID(id))
	return &WorkBasketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkBasket.
func (c *WorkBasketClient) Delete() *WorkBasketDelete {
	mutation := newWorkBasketMutation(c.config, OpDelete)
	return &WorkBasketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkBasketClient) DeleteOne(wb *WorkBasket) *WorkBasketDeleteOne {
	return c.DeleteOneID(wb.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkBasketClient) DeleteOneID(id uint) *WorkBasketDeleteOne {
	builder := c.Delete().Where(workbasket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkBasketDeleteOne{builder}
}

// Query returns a query builder for WorkBasket.
func (c *WorkBasketClient) Query() *WorkBasketQuery {
	return &WorkBasketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkBasket},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkBasket entity by its id.
func (c *WorkBasketClient) Get(ctx context.Context, id uint) (*WorkBasket, error) {
	return c.Query().Where(workbasket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkBasketClient) GetX(ctx context.Context, id uint) *WorkBasket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransactions queries the transactions edge of a WorkBasket.
func (c *WorkBasketClient) QueryTransactions(wb *WorkBasket) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := wb.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workbasket.Table, workbasket.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workbasket.TransactionsTable, workbasket.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(wb.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkBasketClient) Hooks() []Hook {
	return c.hooks.WorkBasket
}

// Interceptors returns the client interceptors.
func (c *WorkBasketClient) Interceptors() []Interceptor {
	return c.inters.WorkBasket
}

func (c *WorkBasketClient) mutate(ctx context.Context, m *WorkBasketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkBasketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkBasketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkBasketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkBasketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkBasket mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Envelope, Setting, TrackedEntity, Transaction, VersionGroup,
		WorkBasket []ent.Hook
	}
	inters struct {
		Envelope, Setting, TrackedEntity, Transaction, VersionGroup,
		WorkBasket []ent.Interceptor
	}
)
