// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/shu-assistant/shu/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shu-assistant/shu/ent/chatmessage"
	"github.com/shu-assistant/shu/ent/conversation"
	"github.com/shu-assistant/shu/ent/plugindefinition"
	"github.com/shu-assistant/shu/ent/pluginexecution"
	"github.com/shu-assistant/shu/ent/pluginfeed"
	"github.com/shu-assistant/shu/ent/provider"
	"github.com/shu-assistant/shu/ent/provideridentity"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChatMessage is the client for interacting with the ChatMessage builders.
	ChatMessage *ChatMessageClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// PluginDefinition is the client for interacting with the PluginDefinition builders.
	PluginDefinition *PluginDefinitionClient
	// PluginExecution is the client for interacting with the PluginExecution builders.
	PluginExecution *PluginExecutionClient
	// PluginFeed is the client for interacting with the PluginFeed builders.
	PluginFeed *PluginFeedClient
	// Provider is the client for interacting with the Provider builders.
	Provider *ProviderClient
	// ProviderIdentity is the client for interacting with the ProviderIdentity builders.
	ProviderIdentity *ProviderIdentityClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChatMessage = NewChatMessageClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.PluginDefinition = NewPluginDefinitionClient(c.config)
	c.PluginExecution = NewPluginExecutionClient(c.config)
	c.PluginFeed = NewPluginFeedClient(c.config)
	c.Provider = NewProviderClient(c.config)
	c.ProviderIdentity = NewProviderIdentityClient(c.config)
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
		ChatMessage:      NewChatMessageClient(cfg),
		Conversation:     NewConversationClient(cfg),
		PluginDefinition: NewPluginDefinitionClient(cfg),
		PluginExecution:  NewPluginExecutionClient(cfg),
		PluginFeed:       NewPluginFeedClient(cfg),
		Provider:         NewProviderClient(cfg),
		ProviderIdentity: NewProviderIdentityClient(cfg),
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
		ChatMessage:      NewChatMessageClient(cfg),
		Conversation:     NewConversationClient(cfg),
		PluginDefinition: NewPluginDefinitionClient(cfg),
		PluginExecution:  NewPluginExecutionClient(cfg),
		PluginFeed:       NewPluginFeedClient(cfg),
		Provider:         NewProviderClient(cfg),
		ProviderIdentity: NewProviderIdentityClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChatMessage.
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
		c.ChatMessage, c.Conversation, c.PluginDefinition, c.PluginExecution,
		c.PluginFeed, c.Provider, c.ProviderIdentity,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChatMessage, c.Conversation, c.PluginDefinition, c.PluginExecution,
		c.PluginFeed, c.Provider, c.ProviderIdentity,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChatMessageMutation:
		return c.ChatMessage.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *PluginDefinitionMutation:
		return c.PluginDefinition.mutate(ctx, m)
	case *PluginExecutionMutation:
		return c.PluginExecution.mutate(ctx, m)
	case *PluginFeedMutation:
		return c.PluginFeed.mutate(ctx, m)
	case *ProviderMutation:
		return c.Provider.mutate(ctx, m)
	case *ProviderIdentityMutation:
		return c.ProviderIdentity.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChatMessageClient is a client for the ChatMessage schema.
type ChatMessageClient struct {
	config
}

// NewChatMessageClient returns a client for the ChatMessage from the given config.
func NewChatMessageClient(c config) *ChatMessageClient {
	return &ChatMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatmessage.Hooks(f(g(h())))`.
func (c *ChatMessageClient) Use(hooks ...Hook) {
	c.hooks.ChatMessage = append(c.hooks.ChatMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatmessage.Intercept(f(g(h())))`.
func (c *ChatMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatMessage = append(c.inters.ChatMessage, interceptors...)
}

// Create returns a builder for creating a ChatMessage entity.
func (c *ChatMessageClient) Create() *ChatMessageCreate {
	mutation := newChatMessageMutation(c.config, OpCreate)
	return &ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatMessage entities.
func (c *ChatMessageClient) CreateBulk(builders ...*ChatMessageCreate) *ChatMessageCreateBulk {
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatMessageClient) MapCreateBulk(slice any, setFunc func(*ChatMessageCreate, int)) *ChatMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatMessageCreateBulk{err: fmt.Errorf("calling to ChatMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatMessage.
func (c *ChatMessageClient) Update() *ChatMessageUpdate {
	mutation := newChatMessageMutation(c.config, OpUpdate)
	return &ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatMessageClient) UpdateOne(_m *ChatMessage) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessage(_m))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatMessageClient) UpdateOneID(id string) *ChatMessageUpdateOne {
	mutation := newChatMessageMutation(c.config, OpUpdateOne, withChatMessageID(id))
	return &ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatMessage.
func (c *ChatMessageClient) Delete() *ChatMessageDelete {
	mutation := newChatMessageMutation(c.config, OpDelete)
	return &ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatMessageClient) DeleteOne(_m *ChatMessage) *ChatMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatMessageClient) DeleteOneID(id string) *ChatMessageDeleteOne {
	builder := c.Delete().Where(chatmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatMessageDeleteOne{builder}
}

// Query returns a query builder for ChatMessage.
func (c *ChatMessageClient) Query() *ChatMessageQuery {
	return &ChatMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatMessage entity by its id.
func (c *ChatMessageClient) Get(ctx context.Context, id string) (*ChatMessage, error) {
	return c.Query().Where(chatmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatMessageClient) GetX(ctx context.Context, id string) *ChatMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ChatMessage.
func (c *ChatMessageClient) QueryConversation(_m *ChatMessage) *ConversationQuery {
	query := (&ConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chatmessage.Table, chatmessage.FieldID, id),
			sqlgraph.To(conversation.Table, conversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, chatmessage.ConversationTable, chatmessage.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChatMessageClient) Hooks() []Hook {
	return c.hooks.ChatMessage
}

// Interceptors returns the client interceptors.
func (c *ChatMessageClient) Interceptors() []Interceptor {
	return c.inters.ChatMessage
}

func (c *ChatMessageClient) mutate(ctx context.Context, m *ChatMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatMessage mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a Conversation.
func (c *ConversationClient) QueryMessages(_m *Conversation) *ChatMessageQuery {
	query := (&ChatMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversation.Table, conversation.FieldID, id),
			sqlgraph.To(chatmessage.Table, chatmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, conversation.MessagesTable, conversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// PluginDefinitionClient is a client for the PluginDefinition schema.
type PluginDefinitionClient struct {
	config
}

// NewPluginDefinitionClient returns a client for the PluginDefinition from the given config.
func NewPluginDefinitionClient(c config) *PluginDefinitionClient {
	return &PluginDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `plugindefinition.Hooks(f(g(h())))`.
func (c *PluginDefinitionClient) Use(hooks ...Hook) {
	c.hooks.PluginDefinition = append(c.hooks.PluginDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `plugindefinition.Intercept(f(g(h())))`.
func (c *PluginDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginDefinition = append(c.inters.PluginDefinition, interceptors...)
}

// Create returns a builder for creating a PluginDefinition entity.
func (c *PluginDefinitionClient) Create() *PluginDefinitionCreate {
	mutation := newPluginDefinitionMutation(c.config, OpCreate)
	return &PluginDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginDefinition entities.
func (c *PluginDefinitionClient) CreateBulk(builders ...*PluginDefinitionCreate) *PluginDefinitionCreateBulk {
	return &PluginDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginDefinitionClient) MapCreateBulk(slice any, setFunc func(*PluginDefinitionCreate, int)) *PluginDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginDefinitionCreateBulk{err: fmt.Errorf("calling to PluginDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginDefinition.
func (c *PluginDefinitionClient) Update() *PluginDefinitionUpdate {
	mutation := newPluginDefinitionMutation(c.config, OpUpdate)
	return &PluginDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginDefinitionClient) UpdateOne(_m *PluginDefinition) *PluginDefinitionUpdateOne {
	mutation := newPluginDefinitionMutation(c.config, OpUpdateOne, withPluginDefinition(_m))
	return &PluginDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginDefinitionClient) UpdateOneID(id string) *PluginDefinitionUpdateOne {
	mutation := newPluginDefinitionMutation(c.config, OpUpdateOne, withPluginDefinitionID(id))
	return &PluginDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginDefinition.
func (c *PluginDefinitionClient) Delete() *PluginDefinitionDelete {
	mutation := newPluginDefinitionMutation(c.config, OpDelete)
	return &PluginDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginDefinitionClient) DeleteOne(_m *PluginDefinition) *PluginDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginDefinitionClient) DeleteOneID(id string) *PluginDefinitionDeleteOne {
	builder := c.Delete().Where(plugindefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginDefinitionDeleteOne{builder}
}

// Query returns a query builder for PluginDefinition.
func (c *PluginDefinitionClient) Query() *PluginDefinitionQuery {
	return &PluginDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginDefinition entity by its id.
func (c *PluginDefinitionClient) Get(ctx context.Context, id string) (*PluginDefinition, error) {
	return c.Query().Where(plugindefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginDefinitionClient) GetX(ctx context.Context, id string) *PluginDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginDefinitionClient) Hooks() []Hook {
	return c.hooks.PluginDefinition
}

// Interceptors returns the client interceptors.
func (c *PluginDefinitionClient) Interceptors() []Interceptor {
	return c.inters.PluginDefinition
}

func (c *PluginDefinitionClient) mutate(ctx context.Context, m *PluginDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginDefinition mutation op: %q", m.Op())
	}
}

// PluginExecutionClient is a client for the PluginExecution schema.
type PluginExecutionClient struct {
	config
}

// NewPluginExecutionClient returns a client for the PluginExecution from the given config.
func NewPluginExecutionClient(c config) *PluginExecutionClient {
	return &PluginExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pluginexecution.Hooks(f(g(h())))`.
func (c *PluginExecutionClient) Use(hooks ...Hook) {
	c.hooks.PluginExecution = append(c.hooks.PluginExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pluginexecution.Intercept(f(g(h())))`.
func (c *PluginExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginExecution = append(c.inters.PluginExecution, interceptors...)
}

// Create returns a builder for creating a PluginExecution entity.
func (c *PluginExecutionClient) Create() *PluginExecutionCreate {
	mutation := newPluginExecutionMutation(c.config, OpCreate)
	return &PluginExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginExecution entities.
func (c *PluginExecutionClient) CreateBulk(builders ...*PluginExecutionCreate) *PluginExecutionCreateBulk {
	return &PluginExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginExecutionClient) MapCreateBulk(slice any, setFunc func(*PluginExecutionCreate, int)) *PluginExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginExecutionCreateBulk{err: fmt.Errorf("calling to PluginExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginExecution.
func (c *PluginExecutionClient) Update() *PluginExecutionUpdate {
	mutation := newPluginExecutionMutation(c.config, OpUpdate)
	return &PluginExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginExecutionClient) UpdateOne(_m *PluginExecution) *PluginExecutionUpdateOne {
	mutation := newPluginExecutionMutation(c.config, OpUpdateOne, withPluginExecution(_m))
	return &PluginExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginExecutionClient) UpdateOneID(id string) *PluginExecutionUpdateOne {
	mutation := newPluginExecutionMutation(c.config, OpUpdateOne, withPluginExecutionID(id))
	return &PluginExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginExecution.
func (c *PluginExecutionClient) Delete() *PluginExecutionDelete {
	mutation := newPluginExecutionMutation(c.config, OpDelete)
	return &PluginExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginExecutionClient) DeleteOne(_m *PluginExecution) *PluginExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginExecutionClient) DeleteOneID(id string) *PluginExecutionDeleteOne {
	builder := c.Delete().Where(pluginexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginExecutionDeleteOne{builder}
}

// Query returns a query builder for PluginExecution.
func (c *PluginExecutionClient) Query() *PluginExecutionQuery {
	return &PluginExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginExecution entity by its id.
func (c *PluginExecutionClient) Get(ctx context.Context, id string) (*PluginExecution, error) {
	return c.Query().Where(pluginexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginExecutionClient) GetX(ctx context.Context, id string) *PluginExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginExecutionClient) Hooks() []Hook {
	return c.hooks.PluginExecution
}

// Interceptors returns the client interceptors.
func (c *PluginExecutionClient) Interceptors() []Interceptor {
	return c.inters.PluginExecution
}

func (c *PluginExecutionClient) mutate(ctx context.Context, m *PluginExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginExecution mutation op: %q", m.Op())
	}
}

// PluginFeedClient is a client for the PluginFeed schema.
type PluginFeedClient struct {
	config
}

// NewPluginFeedClient returns a client for the PluginFeed from the given config.
func NewPluginFeedClient(c config) *PluginFeedClient {
	return &PluginFeedClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pluginfeed.Hooks(f(g(h())))`.
func (c *PluginFeedClient) Use(hooks ...Hook) {
	c.hooks.PluginFeed = append(c.hooks.PluginFeed, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pluginfeed.Intercept(f(g(h())))`.
func (c *PluginFeedClient) Intercept(interceptors ...Interceptor) {
	c.inters.PluginFeed = append(c.inters.PluginFeed, interceptors...)
}

// Create returns a builder for creating a PluginFeed entity.
func (c *PluginFeedClient) Create() *PluginFeedCreate {
	mutation := newPluginFeedMutation(c.config, OpCreate)
	return &PluginFeedCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PluginFeed entities.
func (c *PluginFeedClient) CreateBulk(builders ...*PluginFeedCreate) *PluginFeedCreateBulk {
	return &PluginFeedCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PluginFeedClient) MapCreateBulk(slice any, setFunc func(*PluginFeedCreate, int)) *PluginFeedCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PluginFeedCreateBulk{err: fmt.Errorf("calling to PluginFeedClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PluginFeedCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PluginFeedCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PluginFeed.
func (c *PluginFeedClient) Update() *PluginFeedUpdate {
	mutation := newPluginFeedMutation(c.config, OpUpdate)
	return &PluginFeedUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PluginFeedClient) UpdateOne(_m *PluginFeed) *PluginFeedUpdateOne {
	mutation := newPluginFeedMutation(c.config, OpUpdateOne, withPluginFeed(_m))
	return &PluginFeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PluginFeedClient) UpdateOneID(id string) *PluginFeedUpdateOne {
	mutation := newPluginFeedMutation(c.config, OpUpdateOne, withPluginFeedID(id))
	return &PluginFeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PluginFeed.
func (c *PluginFeedClient) Delete() *PluginFeedDelete {
	mutation := newPluginFeedMutation(c.config, OpDelete)
	return &PluginFeedDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PluginFeedClient) DeleteOne(_m *PluginFeed) *PluginFeedDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PluginFeedClient) DeleteOneID(id string) *PluginFeedDeleteOne {
	builder := c.Delete().Where(pluginfeed.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PluginFeedDeleteOne{builder}
}

// Query returns a query builder for PluginFeed.
func (c *PluginFeedClient) Query() *PluginFeedQuery {
	return &PluginFeedQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePluginFeed},
		inters: c.Interceptors(),
	}
}

// Get returns a PluginFeed entity by its id.
func (c *PluginFeedClient) Get(ctx context.Context, id string) (*PluginFeed, error) {
	return c.Query().Where(pluginfeed.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PluginFeedClient) GetX(ctx context.Context, id string) *PluginFeed {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PluginFeedClient) Hooks() []Hook {
	return c.hooks.PluginFeed
}

// Interceptors returns the client interceptors.
func (c *PluginFeedClient) Interceptors() []Interceptor {
	return c.inters.PluginFeed
}

func (c *PluginFeedClient) mutate(ctx context.Context, m *PluginFeedMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PluginFeedCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PluginFeedUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PluginFeedUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PluginFeedDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PluginFeed mutation op: %q", m.Op())
	}
}

// ProviderClient is a client for the Provider schema.
type ProviderClient struct {
	config
}

// NewProviderClient returns a client for the Provider from the given config.
func NewProviderClient(c config) *ProviderClient {
	return &ProviderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provider.Hooks(f(g(h())))`.
func (c *ProviderClient) Use(hooks ...Hook) {
	c.hooks.Provider = append(c.hooks.Provider, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provider.Intercept(f(g(h())))`.
func (c *ProviderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Provider = append(c.inters.Provider, interceptors...)
}

// Create returns a builder for creating a Provider entity.
func (c *ProviderClient) Create() *ProviderCreate {
	mutation := newProviderMutation(c.config, OpCreate)
	return &ProviderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Provider entities.
func (c *ProviderClient) CreateBulk(builders ...*ProviderCreate) *ProviderCreateBulk {
	return &ProviderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderClient) MapCreateBulk(slice any, setFunc func(*ProviderCreate, int)) *ProviderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderCreateBulk{err: fmt.Errorf("calling to ProviderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Provider.
func (c *ProviderClient) Update() *ProviderUpdate {
	mutation := newProviderMutation(c.config, OpUpdate)
	return &ProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderClient) UpdateOne(_m *Provider) *ProviderUpdateOne {
	mutation := newProviderMutation(c.config, OpUpdateOne, withProvider(_m))
	return &ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderClient) UpdateOneID(id string) *ProviderUpdateOne {
	mutation := newProviderMutation(c.config, OpUpdateOne, withProviderID(id))
	return &ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Provider.
func (c *ProviderClient) Delete() *ProviderDelete {
	mutation := newProviderMutation(c.config, OpDelete)
	return &ProviderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderClient) DeleteOne(_m *Provider) *ProviderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderClient) DeleteOneID(id string) *ProviderDeleteOne {
	builder := c.Delete().Where(provider.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderDeleteOne{builder}
}

// Query returns a query builder for Provider.
func (c *ProviderClient) Query() *ProviderQuery {
	return &ProviderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProvider},
		inters: c.Interceptors(),
	}
}

// Get returns a Provider entity by its id.
func (c *ProviderClient) Get(ctx context.Context, id string) (*Provider, error) {
	return c.Query().Where(provider.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderClient) GetX(ctx context.Context, id string) *Provider {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderClient) Hooks() []Hook {
	return c.hooks.Provider
}

// Interceptors returns the client interceptors.
func (c *ProviderClient) Interceptors() []Interceptor {
	return c.inters.Provider
}

func (c *ProviderClient) mutate(ctx context.Context, m *ProviderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Provider mutation op: %q", m.Op())
	}
}

// ProviderIdentityClient is a client for the ProviderIdentity schema.
type ProviderIdentityClient struct {
	config
}

// NewProviderIdentityClient returns a client for the ProviderIdentity from the given config.
func NewProviderIdentityClient(c config) *ProviderIdentityClient {
	return &ProviderIdentityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `provideridentity.Hooks(f(g(h())))`.
func (c *ProviderIdentityClient) Use(hooks ...Hook) {
	c.hooks.ProviderIdentity = append(c.hooks.ProviderIdentity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `provideridentity.Intercept(f(g(h())))`.
func (c *ProviderIdentityClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProviderIdentity = append(c.inters.ProviderIdentity, interceptors...)
}

// Create returns a builder for creating a ProviderIdentity entity.
func (c *ProviderIdentityClient) Create() *ProviderIdentityCreate {
	mutation := newProviderIdentityMutation(c.config, OpCreate)
	return &ProviderIdentityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProviderIdentity entities.
func (c *ProviderIdentityClient) CreateBulk(builders ...*ProviderIdentityCreate) *ProviderIdentityCreateBulk {
	return &ProviderIdentityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProviderIdentityClient) MapCreateBulk(slice any, setFunc func(*ProviderIdentityCreate, int)) *ProviderIdentityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProviderIdentityCreateBulk{err: fmt.Errorf("calling to ProviderIdentityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProviderIdentityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProviderIdentityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProviderIdentity.
func (c *ProviderIdentityClient) Update() *ProviderIdentityUpdate {
	mutation := newProviderIdentityMutation(c.config, OpUpdate)
	return &ProviderIdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProviderIdentityClient) UpdateOne(_m *ProviderIdentity) *ProviderIdentityUpdateOne {
	mutation := newProviderIdentityMutation(c.config, OpUpdateOne, withProviderIdentity(_m))
	return &ProviderIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProviderIdentityClient) UpdateOneID(id string) *ProviderIdentityUpdateOne {
	mutation := newProviderIdentityMutation(c.config, OpUpdateOne, withProviderIdentityID(id))
	return &ProviderIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProviderIdentity.
func (c *ProviderIdentityClient) Delete() *ProviderIdentityDelete {
	mutation := newProviderIdentityMutation(c.config, OpDelete)
	return &ProviderIdentityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProviderIdentityClient) DeleteOne(_m *ProviderIdentity) *ProviderIdentityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProviderIdentityClient) DeleteOneID(id string) *ProviderIdentityDeleteOne {
	builder := c.Delete().Where(provideridentity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProviderIdentityDeleteOne{builder}
}

// Query returns a query builder for ProviderIdentity.
func (c *ProviderIdentityClient) Query() *ProviderIdentityQuery {
	return &ProviderIdentityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProviderIdentity},
		inters: c.Interceptors(),
	}
}

// Get returns a ProviderIdentity entity by its id.
func (c *ProviderIdentityClient) Get(ctx context.Context, id string) (*ProviderIdentity, error) {
	return c.Query().Where(provideridentity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProviderIdentityClient) GetX(ctx context.Context, id string) *ProviderIdentity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProviderIdentityClient) Hooks() []Hook {
	return c.hooks.ProviderIdentity
}

// Interceptors returns the client interceptors.
func (c *ProviderIdentityClient) Interceptors() []Interceptor {
	return c.inters.ProviderIdentity
}

func (c *ProviderIdentityClient) mutate(ctx context.Context, m *ProviderIdentityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProviderIdentityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProviderIdentityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProviderIdentityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProviderIdentityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProviderIdentity mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChatMessage, Conversation, PluginDefinition, PluginExecution, PluginFeed,
		Provider, ProviderIdentity []ent.Hook
	}
	inters struct {
		ChatMessage, Conversation, PluginDefinition, PluginExecution, PluginFeed,
		Provider, ProviderIdentity []ent.Interceptor
	}
)
