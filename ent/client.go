// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ankitray/sensei/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/ankitray/sensei/ent/episodeevent"
	"github.com/ankitray/sensei/ent/inferenceevent"
	"github.com/ankitray/sensei/ent/llmrequestevent"
	"github.com/ankitray/sensei/ent/planevent"
	"github.com/ankitray/sensei/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EpisodeEvent is the client for interacting with the EpisodeEvent builders.
	EpisodeEvent *EpisodeEventClient
	// InferenceEvent is the client for interacting with the InferenceEvent builders.
	InferenceEvent *InferenceEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// PlanEvent is the client for interacting with the PlanEvent builders.
	PlanEvent *PlanEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EpisodeEvent = NewEpisodeEventClient(c.config)
	c.InferenceEvent = NewInferenceEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.PlanEvent = NewPlanEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		EpisodeEvent:    NewEpisodeEventClient(cfg),
		InferenceEvent:  NewInferenceEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		EpisodeEvent:    NewEpisodeEventClient(cfg),
		InferenceEvent:  NewInferenceEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		PlanEvent:       NewPlanEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EpisodeEvent.
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
	c.EpisodeEvent.Use(hooks...)
	c.InferenceEvent.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.PlanEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EpisodeEvent.Intercept(interceptors...)
	c.InferenceEvent.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.PlanEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EpisodeEventMutation:
		return c.EpisodeEvent.mutate(ctx, m)
	case *InferenceEventMutation:
		return c.InferenceEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *PlanEventMutation:
		return c.PlanEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EpisodeEventClient is a client for the EpisodeEvent schema.
type EpisodeEventClient struct {
	config
}

// NewEpisodeEventClient returns a client for the EpisodeEvent from the given config.
func NewEpisodeEventClient(c config) *EpisodeEventClient {
	return &EpisodeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `episodeevent.Hooks(f(g(h())))`.
func (c *EpisodeEventClient) Use(hooks ...Hook) {
	c.hooks.EpisodeEvent = append(c.hooks.EpisodeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `episodeevent.Intercept(f(g(h())))`.
func (c *EpisodeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EpisodeEvent = append(c.inters.EpisodeEvent, interceptors...)
}

// Create returns a builder for creating a EpisodeEvent entity.
func (c *EpisodeEventClient) Create() *EpisodeEventCreate {
	mutation := newEpisodeEventMutation(c.config, OpCreate)
	return &EpisodeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EpisodeEvent entities.
func (c *EpisodeEventClient) CreateBulk(builders ...*EpisodeEventCreate) *EpisodeEventCreateBulk {
	return &EpisodeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EpisodeEventClient) MapCreateBulk(slice any, setFunc func(*EpisodeEventCreate, int)) *EpisodeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EpisodeEventCreateBulk{err: fmt.Errorf("calling to EpisodeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EpisodeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EpisodeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EpisodeEvent.
func (c *EpisodeEventClient) Update() *EpisodeEventUpdate {
	mutation := newEpisodeEventMutation(c.config, OpUpdate)
	return &EpisodeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EpisodeEventClient) UpdateOne(_m *EpisodeEvent) *EpisodeEventUpdateOne {
	mutation := newEpisodeEventMutation(c.config, OpUpdateOne, withEpisodeEvent(_m))
	return &EpisodeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EpisodeEventClient) UpdateOneID(id int) *EpisodeEventUpdateOne {
	mutation := newEpisodeEventMutation(c.config, OpUpdateOne, withEpisodeEventID(id))
	return &EpisodeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EpisodeEvent.
func (c *EpisodeEventClient) Delete() *EpisodeEventDelete {
	mutation := newEpisodeEventMutation(c.config, OpDelete)
	return &EpisodeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EpisodeEventClient) DeleteOne(_m *EpisodeEvent) *EpisodeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EpisodeEventClient) DeleteOneID(id int) *EpisodeEventDeleteOne {
	builder := c.Delete().Where(episodeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EpisodeEventDeleteOne{builder}
}

// Query returns a query builder for EpisodeEvent.
func (c *EpisodeEventClient) Query() *EpisodeEventQuery {
	return &EpisodeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEpisodeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EpisodeEvent entity by its id.
func (c *EpisodeEventClient) Get(ctx context.Context, id int) (*EpisodeEvent, error) {
	return c.Query().Where(episodeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EpisodeEventClient) GetX(ctx context.Context, id int) *EpisodeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EpisodeEventClient) Hooks() []Hook {
	return c.hooks.EpisodeEvent
}

// Interceptors returns the client interceptors.
func (c *EpisodeEventClient) Interceptors() []Interceptor {
	return c.inters.EpisodeEvent
}

func (c *EpisodeEventClient) mutate(ctx context.Context, m *EpisodeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EpisodeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EpisodeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EpisodeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EpisodeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EpisodeEvent mutation op: %q", m.Op())
	}
}

// InferenceEventClient is a client for the InferenceEvent schema.
type InferenceEventClient struct {
	config
}

// NewInferenceEventClient returns a client for the InferenceEvent from the given config.
func NewInferenceEventClient(c config) *InferenceEventClient {
	return &InferenceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inferenceevent.Hooks(f(g(h())))`.
func (c *InferenceEventClient) Use(hooks ...Hook) {
	c.hooks.InferenceEvent = append(c.hooks.InferenceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inferenceevent.Intercept(f(g(h())))`.
func (c *InferenceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InferenceEvent = append(c.inters.InferenceEvent, interceptors...)
}

// Create returns a builder for creating a InferenceEvent entity.
func (c *InferenceEventClient) Create() *InferenceEventCreate {
	mutation := newInferenceEventMutation(c.config, OpCreate)
	return &InferenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InferenceEvent entities.
func (c *InferenceEventClient) CreateBulk(builders ...*InferenceEventCreate) *InferenceEventCreateBulk {
	return &InferenceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InferenceEventClient) MapCreateBulk(slice any, setFunc func(*InferenceEventCreate, int)) *InferenceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InferenceEventCreateBulk{err: fmt.Errorf("calling to InferenceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InferenceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InferenceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InferenceEvent.
func (c *InferenceEventClient) Update() *InferenceEventUpdate {
	mutation := newInferenceEventMutation(c.config, OpUpdate)
	return &InferenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InferenceEventClient) UpdateOne(_m *InferenceEvent) *InferenceEventUpdateOne {
	mutation := newInferenceEventMutation(c.config, OpUpdateOne, withInferenceEvent(_m))
	return &InferenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InferenceEventClient) UpdateOneID(id int) *InferenceEventUpdateOne {
	mutation := newInferenceEventMutation(c.config, OpUpdateOne, withInferenceEventID(id))
	return &InferenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InferenceEvent.
func (c *InferenceEventClient) Delete() *InferenceEventDelete {
	mutation := newInferenceEventMutation(c.config, OpDelete)
	return &InferenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InferenceEventClient) DeleteOne(_m *InferenceEvent) *InferenceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InferenceEventClient) DeleteOneID(id int) *InferenceEventDeleteOne {
	builder := c.Delete().Where(inferenceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InferenceEventDeleteOne{builder}
}

// Query returns a query builder for InferenceEvent.
func (c *InferenceEventClient) Query() *InferenceEventQuery {
	return &InferenceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInferenceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InferenceEvent entity by its id.
func (c *InferenceEventClient) Get(ctx context.Context, id int) (*InferenceEvent, error) {
	return c.Query().Where(inferenceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InferenceEventClient) GetX(ctx context.Context, id int) *InferenceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InferenceEventClient) Hooks() []Hook {
	return c.hooks.InferenceEvent
}

// Interceptors returns the client interceptors.
func (c *InferenceEventClient) Interceptors() []Interceptor {
	return c.inters.InferenceEvent
}

func (c *InferenceEventClient) mutate(ctx context.Context, m *InferenceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InferenceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InferenceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InferenceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InferenceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InferenceEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// PlanEventClient is a client for the PlanEvent schema.
type PlanEventClient struct {
	config
}

// NewPlanEventClient returns a client for the PlanEvent from the given config.
func NewPlanEventClient(c config) *PlanEventClient {
	return &PlanEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `planevent.Hooks(f(g(h())))`.
func (c *PlanEventClient) Use(hooks ...Hook) {
	c.hooks.PlanEvent = append(c.hooks.PlanEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `planevent.Intercept(f(g(h())))`.
func (c *PlanEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlanEvent = append(c.inters.PlanEvent, interceptors...)
}

// Create returns a builder for creating a PlanEvent entity.
func (c *PlanEventClient) Create() *PlanEventCreate {
	mutation := newPlanEventMutation(c.config, OpCreate)
	return &PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlanEvent entities.
func (c *PlanEventClient) CreateBulk(builders ...*PlanEventCreate) *PlanEventCreateBulk {
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlanEventClient) MapCreateBulk(slice any, setFunc func(*PlanEventCreate, int)) *PlanEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlanEventCreateBulk{err: fmt.Errorf("calling to PlanEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlanEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlanEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlanEvent.
func (c *PlanEventClient) Update() *PlanEventUpdate {
	mutation := newPlanEventMutation(c.config, OpUpdate)
	return &PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlanEventClient) UpdateOne(_m *PlanEvent) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEvent(_m))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlanEventClient) UpdateOneID(id int) *PlanEventUpdateOne {
	mutation := newPlanEventMutation(c.config, OpUpdateOne, withPlanEventID(id))
	return &PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlanEvent.
func (c *PlanEventClient) Delete() *PlanEventDelete {
	mutation := newPlanEventMutation(c.config, OpDelete)
	return &PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlanEventClient) DeleteOne(_m *PlanEvent) *PlanEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlanEventClient) DeleteOneID(id int) *PlanEventDeleteOne {
	builder := c.Delete().Where(planevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlanEventDeleteOne{builder}
}

// Query returns a query builder for PlanEvent.
func (c *PlanEventClient) Query() *PlanEventQuery {
	return &PlanEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlanEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PlanEvent entity by its id.
func (c *PlanEventClient) Get(ctx context.Context, id int) (*PlanEvent, error) {
	return c.Query().Where(planevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlanEventClient) GetX(ctx context.Context, id int) *PlanEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlanEventClient) Hooks() []Hook {
	return c.hooks.PlanEvent
}

// Interceptors returns the client interceptors.
func (c *PlanEventClient) Interceptors() []Interceptor {
	return c.inters.PlanEvent
}

func (c *PlanEventClient) mutate(ctx context.Context, m *PlanEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlanEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlanEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlanEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlanEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlanEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EpisodeEvent, InferenceEvent, LLMRequestEvent, PlanEvent, Snapshot []ent.Hook
	}
	inters struct {
		EpisodeEvent, InferenceEvent, LLMRequestEvent, PlanEvent,
		Snapshot []ent.Interceptor
	}
)
