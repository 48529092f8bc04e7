// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/nexaai/nexa-backend/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/ent/tokengrant"
	"github.com/nexaai/nexa-backend/ent/tokentransaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// TokenGrant is the client for interacting with the TokenGrant builders.
	TokenGrant *TokenGrantClient
	// TokenTransaction is the client for interacting with the TokenTransaction builders.
	TokenTransaction *TokenTransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.TokenGrant = NewTokenGrantClient(c.config)
	c.TokenTransaction = NewTokenTransactionClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Account:          NewAccountClient(cfg),
		TokenGrant:       NewTokenGrantClient(cfg),
		TokenTransaction: NewTokenTransactionClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Account:          NewAccountClient(cfg),
		TokenGrant:       NewTokenGrantClient(cfg),
		TokenTransaction: NewTokenTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
	c.Account.Use(hooks...)
	c.TokenGrant.Use(hooks...)
	c.TokenTransaction.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Account.Intercept(interceptors...)
	c.TokenGrant.Intercept(interceptors...)
	c.TokenTransaction.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *TokenGrantMutation:
		return c.TokenGrant.mutate(ctx, m)
	case *TokenTransactionMutation:
		return c.TokenTransaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id int) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id int) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id int) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id int) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransactions queries the transactions edge of a Account.
func (c *AccountClient) QueryTransactions(_m *Account) *TokenTransactionQuery {
	query := (&TokenTransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(tokentransaction.Table, tokentransaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.TransactionsTable, account.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrants queries the grants edge of a Account.
func (c *AccountClient) QueryGrants(_m *Account) *TokenGrantQuery {
	query := (&TokenGrantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(account.Table, account.FieldID, id),
			sqlgraph.To(tokengrant.Table, tokengrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, account.GrantsTable, account.GrantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// TokenGrantClient is a client for the TokenGrant schema.
type TokenGrantClient struct {
	config
}

// NewTokenGrantClient returns a client for the TokenGrant from the given config.
func NewTokenGrantClient(c config) *TokenGrantClient {
	return &TokenGrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokengrant.Hooks(f(g(h())))`.
func (c *TokenGrantClient) Use(hooks ...Hook) {
	c.hooks.TokenGrant = append(c.hooks.TokenGrant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokengrant.Intercept(f(g(h())))`.
func (c *TokenGrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenGrant = append(c.inters.TokenGrant, interceptors...)
}

// Create returns a builder for creating a TokenGrant entity.
func (c *TokenGrantClient) Create() *TokenGrantCreate {
	mutation := newTokenGrantMutation(c.config, OpCreate)
	return &TokenGrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenGrant entities.
func (c *TokenGrantClient) CreateBulk(builders ...*TokenGrantCreate) *TokenGrantCreateBulk {
	return &TokenGrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenGrantClient) MapCreateBulk(slice any, setFunc func(*TokenGrantCreate, int)) *TokenGrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenGrantCreateBulk{err: fmt.Errorf("calling to TokenGrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenGrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenGrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenGrant.
func (c *TokenGrantClient) Update() *TokenGrantUpdate {
	mutation := newTokenGrantMutation(c.config, OpUpdate)
	return &TokenGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenGrantClient) UpdateOne(_m *TokenGrant) *TokenGrantUpdateOne {
	mutation := newTokenGrantMutation(c.config, OpUpdateOne, withTokenGrant(_m))
	return &TokenGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenGrantClient) UpdateOneID(id int) *TokenGrantUpdateOne {
	mutation := newTokenGrantMutation(c.config, OpUpdateOne, withTokenGrantID(id))
	return &TokenGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenGrant.
func (c *TokenGrantClient) Delete() *TokenGrantDelete {
	mutation := newTokenGrantMutation(c.config, OpDelete)
	return &TokenGrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenGrantClient) DeleteOne(_m *TokenGrant) *TokenGrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenGrantClient) DeleteOneID(id int) *TokenGrantDeleteOne {
	builder := c.Delete().Where(tokengrant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenGrantDeleteOne{builder}
}

// Query returns a query builder for TokenGrant.
func (c *TokenGrantClient) Query() *TokenGrantQuery {
	return &TokenGrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenGrant entity by its id.
func (c *TokenGrantClient) Get(ctx context.Context, id int) (*TokenGrant, error) {
	return c.Query().Where(tokengrant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenGrantClient) GetX(ctx context.Context, id int) *TokenGrant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a TokenGrant.
func (c *TokenGrantClient) QueryAccount(_m *TokenGrant) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tokengrant.Table, tokengrant.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tokengrant.AccountTable, tokengrant.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TokenGrantClient) Hooks() []Hook {
	return c.hooks.TokenGrant
}

// Interceptors returns the client interceptors.
func (c *TokenGrantClient) Interceptors() []Interceptor {
	return c.inters.TokenGrant
}

func (c *TokenGrantClient) mutate(ctx context.Context, m *TokenGrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenGrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenGrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenGrant mutation op: %q", m.Op())
	}
}

// TokenTransactionClient is a client for the TokenTransaction schema.
type TokenTransactionClient struct {
	config
}

// NewTokenTransactionClient returns a client for the TokenTransaction from the given config.
func NewTokenTransactionClient(c config) *TokenTransactionClient {
	return &TokenTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tokentransaction.Hooks(f(g(h())))`.
func (c *TokenTransactionClient) Use(hooks ...Hook) {
	c.hooks.TokenTransaction = append(c.hooks.TokenTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tokentransaction.Intercept(f(g(h())))`.
func (c *TokenTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TokenTransaction = append(c.inters.TokenTransaction, interceptors...)
}

// Create returns a builder for creating a TokenTransaction entity.
func (c *TokenTransactionClient) Create() *TokenTransactionCreate {
	mutation := newTokenTransactionMutation(c.config, OpCreate)
	return &TokenTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TokenTransaction entities.
func (c *TokenTransactionClient) CreateBulk(builders ...*TokenTransactionCreate) *TokenTransactionCreateBulk {
	return &TokenTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TokenTransactionClient) MapCreateBulk(slice any, setFunc func(*TokenTransactionCreate, int)) *TokenTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TokenTransactionCreateBulk{err: fmt.Errorf("calling to TokenTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TokenTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TokenTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TokenTransaction.
func (c *TokenTransactionClient) Update() *TokenTransactionUpdate {
	mutation := newTokenTransactionMutation(c.config, OpUpdate)
	return &TokenTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TokenTransactionClient) UpdateOne(_m *TokenTransaction) *TokenTransactionUpdateOne {
	mutation := newTokenTransactionMutation(c.config, OpUpdateOne, withTokenTransaction(_m))
	return &TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TokenTransactionClient) UpdateOneID(id int) *TokenTransactionUpdateOne {
	mutation := newTokenTransactionMutation(c.config, OpUpdateOne, withTokenTransactionID(id))
	return &TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TokenTransaction.
func (c *TokenTransactionClient) Delete() *TokenTransactionDelete {
	mutation := newTokenTransactionMutation(c.config, OpDelete)
	return &TokenTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TokenTransactionClient) DeleteOne(_m *TokenTransaction) *TokenTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TokenTransactionClient) DeleteOneID(id int) *TokenTransactionDeleteOne {
	builder := c.Delete().Where(tokentransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TokenTransactionDeleteOne{builder}
}

// Query returns a query builder for TokenTransaction.
func (c *TokenTransactionClient) Query() *TokenTransactionQuery {
	return &TokenTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTokenTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a TokenTransaction entity by its id.
func (c *TokenTransactionClient) Get(ctx context.Context, id int) (*TokenTransaction, error) {
	return c.Query().Where(tokentransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TokenTransactionClient) GetX(ctx context.Context, id int) *TokenTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAccount queries the account edge of a TokenTransaction.
func (c *TokenTransactionClient) QueryAccount(_m *TokenTransaction) *AccountQuery {
	query := (&AccountClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tokentransaction.Table, tokentransaction.FieldID, id),
			sqlgraph.To(account.Table, account.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tokentransaction.AccountTable, tokentransaction.AccountColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TokenTransactionClient) Hooks() []Hook {
	return c.hooks.TokenTransaction
}

// Interceptors returns the client interceptors.
func (c *TokenTransactionClient) Interceptors() []Interceptor {
	return c.inters.TokenTransaction
}

func (c *TokenTransactionClient) mutate(ctx context.Context, m *TokenTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TokenTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TokenTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TokenTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TokenTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TokenTransaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, TokenGrant, TokenTransaction []ent.Hook
	}
	inters struct {
		Account, TokenGrant, TokenTransaction []ent.Interceptor
	}
)
