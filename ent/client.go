// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"tracklite.io/tracklite/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/changelog"
	"tracklite.io/tracklite/ent/phase"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/session"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
	"tracklite.io/tracklite/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChangeLog is the client for interacting with the ChangeLog builders.
	ChangeLog *ChangeLogClient
	// Phase is the client for interacting with the Phase builders.
	Phase *PhaseClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// Solution is the client for interacting with the Solution builders.
	Solution *SolutionClient
	// SolutionPhase is the client for interacting with the SolutionPhase builders.
	SolutionPhase *SolutionPhaseClient
	// Subcomponent is the client for interacting with the Subcomponent builders.
	Subcomponent *SubcomponentClient
	// SubcomponentPhaseStatus is the client for interacting with the SubcomponentPhaseStatus builders.
	SubcomponentPhaseStatus *SubcomponentPhaseStatusClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChangeLog = NewChangeLogClient(c.config)
	c.Phase = NewPhaseClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.Solution = NewSolutionClient(c.config)
	c.SolutionPhase = NewSolutionPhaseClient(c.config)
	c.Subcomponent = NewSubcomponentClient(c.config)
	c.SubcomponentPhaseStatus = NewSubcomponentPhaseStatusClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:                     ctx,
		config:                  cfg,
		ChangeLog:               NewChangeLogClient(cfg),
		Phase:                   NewPhaseClient(cfg),
		Project:                 NewProjectClient(cfg),
		Session:                 NewSessionClient(cfg),
		Solution:                NewSolutionClient(cfg),
		SolutionPhase:           NewSolutionPhaseClient(cfg),
		Subcomponent:            NewSubcomponentClient(cfg),
		SubcomponentPhaseStatus: NewSubcomponentPhaseStatusClient(cfg),
		User:                    NewUserClient(cfg),
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
		ctx:                     ctx,
		config:                  cfg,
		ChangeLog:               NewChangeLogClient(cfg),
		Phase:                   NewPhaseClient(cfg),
		Project:                 NewProjectClient(cfg),
		Session:                 NewSessionClient(cfg),
		Solution:                NewSolutionClient(cfg),
		SolutionPhase:           NewSolutionPhaseClient(cfg),
		Subcomponent:            NewSubcomponentClient(cfg),
		SubcomponentPhaseStatus: NewSubcomponentPhaseStatusClient(cfg),
		User:                    NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChangeLog.
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
		c.ChangeLog, c.Phase, c.Project, c.Session, c.Solution, c.SolutionPhase,
		c.Subcomponent, c.SubcomponentPhaseStatus, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChangeLog, c.Phase, c.Project, c.Session, c.Solution, c.SolutionPhase,
		c.Subcomponent, c.SubcomponentPhaseStatus, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChangeLogMutation:
		return c.ChangeLog.mutate(ctx, m)
	case *PhaseMutation:
		return c.Phase.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *SolutionMutation:
		return c.Solution.mutate(ctx, m)
	case *SolutionPhaseMutation:
		return c.SolutionPhase.mutate(ctx, m)
	case *SubcomponentMutation:
		return c.Subcomponent.mutate(ctx, m)
	case *SubcomponentPhaseStatusMutation:
		return c.SubcomponentPhaseStatus.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChangeLogClient is a client for the ChangeLog schema.
type ChangeLogClient struct {
	config
}

// NewChangeLogClient returns a client for the ChangeLog from the given config.
func NewChangeLogClient(c config) *ChangeLogClient {
	return &ChangeLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `changelog.Hooks(f(g(h())))`.
func (c *ChangeLogClient) Use(hooks ...Hook) {
	c.hooks.ChangeLog = append(c.hooks.ChangeLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `changelog.Intercept(f(g(h())))`.
func (c *ChangeLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChangeLog = append(c.inters.ChangeLog, interceptors...)
}

// Create returns a builder for creating a ChangeLog entity.
func (c *ChangeLogClient) Create() *ChangeLogCreate {
	mutation := newChangeLogMutation(c.config, OpCreate)
	return &ChangeLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChangeLog entities.
func (c *ChangeLogClient) CreateBulk(builders ...*ChangeLogCreate) *ChangeLogCreateBulk {
	return &ChangeLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChangeLogClient) MapCreateBulk(slice any, setFunc func(*ChangeLogCreate, int)) *ChangeLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChangeLogCreateBulk{err: fmt.Errorf("calling to ChangeLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChangeLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChangeLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChangeLog.
func (c *ChangeLogClient) Update() *ChangeLogUpdate {
	mutation := newChangeLogMutation(c.config, OpUpdate)
	return &ChangeLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChangeLogClient) UpdateOne(_m *ChangeLog) *ChangeLogUpdateOne {
	mutation := newChangeLogMutation(c.config, OpUpdateOne, withChangeLog(_m))
	return &ChangeLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChangeLogClient) UpdateOneID(id string) *ChangeLogUpdateOne {
	mutation := newChangeLogMutation(c.config, OpUpdateOne, withChangeLogID(id))
	return &ChangeLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChangeLog.
func (c *ChangeLogClient) Delete() *ChangeLogDelete {
	mutation := newChangeLogMutation(c.config, OpDelete)
	return &ChangeLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChangeLogClient) DeleteOne(_m *ChangeLog) *ChangeLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChangeLogClient) DeleteOneID(id string) *ChangeLogDeleteOne {
	builder := c.Delete().Where(changelog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChangeLogDeleteOne{builder}
}

// Query returns a query builder for ChangeLog.
func (c *ChangeLogClient) Query() *ChangeLogQuery {
	return &ChangeLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChangeLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ChangeLog entity by its id.
func (c *ChangeLogClient) Get(ctx context.Context, id string) (*ChangeLog, error) {
	return c.Query().Where(changelog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChangeLogClient) GetX(ctx context.Context, id string) *ChangeLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChangeLogClient) Hooks() []Hook {
	return c.hooks.ChangeLog
}

// Interceptors returns the client interceptors.
func (c *ChangeLogClient) Interceptors() []Interceptor {
	return c.inters.ChangeLog
}

func (c *ChangeLogClient) mutate(ctx context.Context, m *ChangeLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChangeLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChangeLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChangeLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChangeLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChangeLog mutation op: %q", m.Op())
	}
}

// PhaseClient is a client for the Phase schema.
type PhaseClient struct {
	config
}

// NewPhaseClient returns a client for the Phase from the given config.
func NewPhaseClient(c config) *PhaseClient {
	return &PhaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phase.Hooks(f(g(h())))`.
func (c *PhaseClient) Use(hooks ...Hook) {
	c.hooks.Phase = append(c.hooks.Phase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phase.Intercept(f(g(h())))`.
func (c *PhaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Phase = append(c.inters.Phase, interceptors...)
}

// Create returns a builder for creating a Phase entity.
func (c *PhaseClient) Create() *PhaseCreate {
	mutation := newPhaseMutation(c.config, OpCreate)
	return &PhaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Phase entities.
func (c *PhaseClient) CreateBulk(builders ...*PhaseCreate) *PhaseCreateBulk {
	return &PhaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseClient) MapCreateBulk(slice any, setFunc func(*PhaseCreate, int)) *PhaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseCreateBulk{err: fmt.Errorf("calling to PhaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Phase.
func (c *PhaseClient) Update() *PhaseUpdate {
	mutation := newPhaseMutation(c.config, OpUpdate)
	return &PhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseClient) UpdateOne(_m *Phase) *PhaseUpdateOne {
	mutation := newPhaseMutation(c.config, OpUpdateOne, withPhase(_m))
	return &PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseClient) UpdateOneID(id string) *PhaseUpdateOne {
	mutation := newPhaseMutation(c.config, OpUpdateOne, withPhaseID(id))
	return &PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Phase.
func (c *PhaseClient) Delete() *PhaseDelete {
	mutation := newPhaseMutation(c.config, OpDelete)
	return &PhaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseClient) DeleteOne(_m *Phase) *PhaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseClient) DeleteOneID(id string) *PhaseDeleteOne {
	builder := c.Delete().Where(phase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseDeleteOne{builder}
}

// Query returns a query builder for Phase.
func (c *PhaseClient) Query() *PhaseQuery {
	return &PhaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhase},
		inters: c.Interceptors(),
	}
}

// Get returns a Phase entity by its id.
func (c *PhaseClient) Get(ctx context.Context, id string) (*Phase, error) {
	return c.Query().Where(phase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseClient) GetX(ctx context.Context, id string) *Phase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PhaseClient) Hooks() []Hook {
	return c.hooks.Phase
}

// Interceptors returns the client interceptors.
func (c *PhaseClient) Interceptors() []Interceptor {
	return c.inters.Phase
}

func (c *PhaseClient) mutate(ctx context.Context, m *PhaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Phase mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySolutions queries the solutions edge of a Project.
func (c *ProjectClient) QuerySolutions(_m *Project) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SolutionsTable, project.SolutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubcomponents queries the subcomponents edge of a Project.
func (c *ProjectClient) QuerySubcomponents(_m *Project) *SubcomponentQuery {
	query := (&SubcomponentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(subcomponent.Table, subcomponent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SubcomponentsTable, project.SubcomponentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Session.
func (c *SessionClient) QueryUser(_m *Session) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, session.UserTable, session.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// SolutionClient is a client for the Solution schema.
type SolutionClient struct {
	config
}

// NewSolutionClient returns a client for the Solution from the given config.
func NewSolutionClient(c config) *SolutionClient {
	return &SolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `solution.Hooks(f(g(h())))`.
func (c *SolutionClient) Use(hooks ...Hook) {
	c.hooks.Solution = append(c.hooks.Solution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `solution.Intercept(f(g(h())))`.
func (c *SolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Solution = append(c.inters.Solution, interceptors...)
}

// Create returns a builder for creating a Solution entity.
func (c *SolutionClient) Create() *SolutionCreate {
	mutation := newSolutionMutation(c.config, OpCreate)
	return &SolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Solution entities.
func (c *SolutionClient) CreateBulk(builders ...*SolutionCreate) *SolutionCreateBulk {
	return &SolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SolutionClient) MapCreateBulk(slice any, setFunc func(*SolutionCreate, int)) *SolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SolutionCreateBulk{err: fmt.Errorf("calling to SolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Solution.
func (c *SolutionClient) Update() *SolutionUpdate {
	mutation := newSolutionMutation(c.config, OpUpdate)
	return &SolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SolutionClient) UpdateOne(_m *Solution) *SolutionUpdateOne {
	mutation := newSolutionMutation(c.config, OpUpdateOne, withSolution(_m))
	return &SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SolutionClient) UpdateOneID(id string) *SolutionUpdateOne {
	mutation := newSolutionMutation(c.config, OpUpdateOne, withSolutionID(id))
	return &SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Solution.
func (c *SolutionClient) Delete() *SolutionDelete {
	mutation := newSolutionMutation(c.config, OpDelete)
	return &SolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SolutionClient) DeleteOne(_m *Solution) *SolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SolutionClient) DeleteOneID(id string) *SolutionDeleteOne {
	builder := c.Delete().Where(solution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SolutionDeleteOne{builder}
}

// Query returns a query builder for Solution.
func (c *SolutionClient) Query() *SolutionQuery {
	return &SolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSolution},
		inters: c.Interceptors(),
	}
}

// Get returns a Solution entity by its id.
func (c *SolutionClient) Get(ctx context.Context, id string) (*Solution, error) {
	return c.Query().Where(solution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SolutionClient) GetX(ctx context.Context, id string) *Solution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Solution.
func (c *SolutionClient) QueryProject(_m *Solution) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solution.ProjectTable, solution.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolutionPhases queries the solution_phases edge of a Solution.
func (c *SolutionClient) QuerySolutionPhases(_m *Solution) *SolutionPhaseQuery {
	query := (&SolutionPhaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(solutionphase.Table, solutionphase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solution.SolutionPhasesTable, solution.SolutionPhasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubcomponents queries the subcomponents edge of a Solution.
func (c *SolutionClient) QuerySubcomponents(_m *Solution) *SubcomponentQuery {
	query := (&SubcomponentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solution.Table, solution.FieldID, id),
			sqlgraph.To(subcomponent.Table, subcomponent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solution.SubcomponentsTable, solution.SubcomponentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SolutionClient) Hooks() []Hook {
	return c.hooks.Solution
}

// Interceptors returns the client interceptors.
func (c *SolutionClient) Interceptors() []Interceptor {
	return c.inters.Solution
}

func (c *SolutionClient) mutate(ctx context.Context, m *SolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Solution mutation op: %q", m.Op())
	}
}

// SolutionPhaseClient is a client for the SolutionPhase schema.
type SolutionPhaseClient struct {
	config
}

// NewSolutionPhaseClient returns a client for the SolutionPhase from the given config.
func NewSolutionPhaseClient(c config) *SolutionPhaseClient {
	return &SolutionPhaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `solutionphase.Hooks(f(g(h())))`.
func (c *SolutionPhaseClient) Use(hooks ...Hook) {
	c.hooks.SolutionPhase = append(c.hooks.SolutionPhase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `solutionphase.Intercept(f(g(h())))`.
func (c *SolutionPhaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.SolutionPhase = append(c.inters.SolutionPhase, interceptors...)
}

// Create returns a builder for creating a SolutionPhase entity.
func (c *SolutionPhaseClient) Create() *SolutionPhaseCreate {
	mutation := newSolutionPhaseMutation(c.config, OpCreate)
	return &SolutionPhaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SolutionPhase entities.
func (c *SolutionPhaseClient) CreateBulk(builders ...*SolutionPhaseCreate) *SolutionPhaseCreateBulk {
	return &SolutionPhaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SolutionPhaseClient) MapCreateBulk(slice any, setFunc func(*SolutionPhaseCreate, int)) *SolutionPhaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SolutionPhaseCreateBulk{err: fmt.Errorf("calling to SolutionPhaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SolutionPhaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SolutionPhaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SolutionPhase.
func (c *SolutionPhaseClient) Update() *SolutionPhaseUpdate {
	mutation := newSolutionPhaseMutation(c.config, OpUpdate)
	return &SolutionPhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SolutionPhaseClient) UpdateOne(_m *SolutionPhase) *SolutionPhaseUpdateOne {
	mutation := newSolutionPhaseMutation(c.config, OpUpdateOne, withSolutionPhase(_m))
	return &SolutionPhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SolutionPhaseClient) UpdateOneID(id string) *SolutionPhaseUpdateOne {
	mutation := newSolutionPhaseMutation(c.config, OpUpdateOne, withSolutionPhaseID(id))
	return &SolutionPhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SolutionPhase.
func (c *SolutionPhaseClient) Delete() *SolutionPhaseDelete {
	mutation := newSolutionPhaseMutation(c.config, OpDelete)
	return &SolutionPhaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SolutionPhaseClient) DeleteOne(_m *SolutionPhase) *SolutionPhaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SolutionPhaseClient) DeleteOneID(id string) *SolutionPhaseDeleteOne {
	builder := c.Delete().Where(solutionphase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SolutionPhaseDeleteOne{builder}
}

// Query returns a query builder for SolutionPhase.
func (c *SolutionPhaseClient) Query() *SolutionPhaseQuery {
	return &SolutionPhaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSolutionPhase},
		inters: c.Interceptors(),
	}
}

// Get returns a SolutionPhase entity by its id.
func (c *SolutionPhaseClient) Get(ctx context.Context, id string) (*SolutionPhase, error) {
	return c.Query().Where(solutionphase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SolutionPhaseClient) GetX(ctx context.Context, id string) *SolutionPhase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySolution queries the solution edge of a SolutionPhase.
func (c *SolutionPhaseClient) QuerySolution(_m *SolutionPhase) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionphase.Table, solutionphase.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solutionphase.SolutionTable, solutionphase.SolutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhaseStatuses queries the phase_statuses edge of a SolutionPhase.
func (c *SolutionPhaseClient) QueryPhaseStatuses(_m *SolutionPhase) *SubcomponentPhaseStatusQuery {
	query := (&SubcomponentPhaseStatusClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionphase.Table, solutionphase.FieldID, id),
			sqlgraph.To(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solutionphase.PhaseStatusesTable, solutionphase.PhaseStatusesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SolutionPhaseClient) Hooks() []Hook {
	return c.hooks.SolutionPhase
}

// Interceptors returns the client interceptors.
func (c *SolutionPhaseClient) Interceptors() []Interceptor {
	return c.inters.SolutionPhase
}

func (c *SolutionPhaseClient) mutate(ctx context.Context, m *SolutionPhaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SolutionPhaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SolutionPhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SolutionPhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SolutionPhaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SolutionPhase mutation op: %q", m.Op())
	}
}

// SubcomponentClient is a client for the Subcomponent schema.
type SubcomponentClient struct {
	config
}

// NewSubcomponentClient returns a client for the Subcomponent from the given config.
func NewSubcomponentClient(c config) *SubcomponentClient {
	return &SubcomponentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subcomponent.Hooks(f(g(h())))`.
func (c *SubcomponentClient) Use(hooks ...Hook) {
	c.hooks.Subcomponent = append(c.hooks.Subcomponent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subcomponent.Intercept(f(g(h())))`.
func (c *SubcomponentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subcomponent = append(c.inters.Subcomponent, interceptors...)
}

// Create returns a builder for creating a Subcomponent entity.
func (c *SubcomponentClient) Create() *SubcomponentCreate {
	mutation := newSubcomponentMutation(c.config, OpCreate)
	return &SubcomponentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subcomponent entities.
func (c *SubcomponentClient) CreateBulk(builders ...*SubcomponentCreate) *SubcomponentCreateBulk {
	return &SubcomponentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubcomponentClient) MapCreateBulk(slice any, setFunc func(*SubcomponentCreate, int)) *SubcomponentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubcomponentCreateBulk{err: fmt.Errorf("calling to SubcomponentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubcomponentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubcomponentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subcomponent.
func (c *SubcomponentClient) Update() *SubcomponentUpdate {
	mutation := newSubcomponentMutation(c.config, OpUpdate)
	return &SubcomponentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubcomponentClient) UpdateOne(_m *Subcomponent) *SubcomponentUpdateOne {
	mutation := newSubcomponentMutation(c.config, OpUpdateOne, withSubcomponent(_m))
	return &SubcomponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubcomponentClient) UpdateOneID(id string) *SubcomponentUpdateOne {
	mutation := newSubcomponentMutation(c.config, OpUpdateOne, withSubcomponentID(id))
	return &SubcomponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subcomponent.
func (c *SubcomponentClient) Delete() *SubcomponentDelete {
	mutation := newSubcomponentMutation(c.config, OpDelete)
	return &SubcomponentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubcomponentClient) DeleteOne(_m *Subcomponent) *SubcomponentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubcomponentClient) DeleteOneID(id string) *SubcomponentDeleteOne {
	builder := c.Delete().Where(subcomponent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubcomponentDeleteOne{builder}
}

// Query returns a query builder for Subcomponent.
func (c *SubcomponentClient) Query() *SubcomponentQuery {
	return &SubcomponentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubcomponent},
		inters: c.Interceptors(),
	}
}

// Get returns a Subcomponent entity by its id.
func (c *SubcomponentClient) Get(ctx context.Context, id string) (*Subcomponent, error) {
	return c.Query().Where(subcomponent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubcomponentClient) GetX(ctx context.Context, id string) *Subcomponent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Subcomponent.
func (c *SubcomponentClient) QueryProject(_m *Subcomponent) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponent.Table, subcomponent.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponent.ProjectTable, subcomponent.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolution queries the solution edge of a Subcomponent.
func (c *SubcomponentClient) QuerySolution(_m *Subcomponent) *SolutionQuery {
	query := (&SolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponent.Table, subcomponent.FieldID, id),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponent.SolutionTable, subcomponent.SolutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPhaseStatuses queries the phase_statuses edge of a Subcomponent.
func (c *SubcomponentClient) QueryPhaseStatuses(_m *Subcomponent) *SubcomponentPhaseStatusQuery {
	query := (&SubcomponentPhaseStatusClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponent.Table, subcomponent.FieldID, id),
			sqlgraph.To(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, subcomponent.PhaseStatusesTable, subcomponent.PhaseStatusesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubcomponentClient) Hooks() []Hook {
	return c.hooks.Subcomponent
}

// Interceptors returns the client interceptors.
func (c *SubcomponentClient) Interceptors() []Interceptor {
	return c.inters.Subcomponent
}

func (c *SubcomponentClient) mutate(ctx context.Context, m *SubcomponentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubcomponentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubcomponentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubcomponentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubcomponentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subcomponent mutation op: %q", m.Op())
	}
}

// SubcomponentPhaseStatusClient is a client for the SubcomponentPhaseStatus schema.
type SubcomponentPhaseStatusClient struct {
	config
}

// NewSubcomponentPhaseStatusClient returns a client for the SubcomponentPhaseStatus from the given config.
func NewSubcomponentPhaseStatusClient(c config) *SubcomponentPhaseStatusClient {
	return &SubcomponentPhaseStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subcomponentphasestatus.Hooks(f(g(h())))`.
func (c *SubcomponentPhaseStatusClient) Use(hooks ...Hook) {
	c.hooks.SubcomponentPhaseStatus = append(c.hooks.SubcomponentPhaseStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subcomponentphasestatus.Intercept(f(g(h())))`.
func (c *SubcomponentPhaseStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubcomponentPhaseStatus = append(c.inters.SubcomponentPhaseStatus, interceptors...)
}

// Create returns a builder for creating a SubcomponentPhaseStatus entity.
func (c *SubcomponentPhaseStatusClient) Create() *SubcomponentPhaseStatusCreate {
	mutation := newSubcomponentPhaseStatusMutation(c.config, OpCreate)
	return &SubcomponentPhaseStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubcomponentPhaseStatus entities.
func (c *SubcomponentPhaseStatusClient) CreateBulk(builders ...*SubcomponentPhaseStatusCreate) *SubcomponentPhaseStatusCreateBulk {
	return &SubcomponentPhaseStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubcomponentPhaseStatusClient) MapCreateBulk(slice any, setFunc func(*SubcomponentPhaseStatusCreate, int)) *SubcomponentPhaseStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubcomponentPhaseStatusCreateBulk{err: fmt.Errorf("calling to SubcomponentPhaseStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubcomponentPhaseStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubcomponentPhaseStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubcomponentPhaseStatus.
func (c *SubcomponentPhaseStatusClient) Update() *SubcomponentPhaseStatusUpdate {
	mutation := newSubcomponentPhaseStatusMutation(c.config, OpUpdate)
	return &SubcomponentPhaseStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubcomponentPhaseStatusClient) UpdateOne(_m *SubcomponentPhaseStatus) *SubcomponentPhaseStatusUpdateOne {
	mutation := newSubcomponentPhaseStatusMutation(c.config, OpUpdateOne, withSubcomponentPhaseStatus(_m))
	return &SubcomponentPhaseStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubcomponentPhaseStatusClient) UpdateOneID(id string) *SubcomponentPhaseStatusUpdateOne {
	mutation := newSubcomponentPhaseStatusMutation(c.config, OpUpdateOne, withSubcomponentPhaseStatusID(id))
	return &SubcomponentPhaseStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubcomponentPhaseStatus.
func (c *SubcomponentPhaseStatusClient) Delete() *SubcomponentPhaseStatusDelete {
	mutation := newSubcomponentPhaseStatusMutation(c.config, OpDelete)
	return &SubcomponentPhaseStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubcomponentPhaseStatusClient) DeleteOne(_m *SubcomponentPhaseStatus) *SubcomponentPhaseStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubcomponentPhaseStatusClient) DeleteOneID(id string) *SubcomponentPhaseStatusDeleteOne {
	builder := c.Delete().Where(subcomponentphasestatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubcomponentPhaseStatusDeleteOne{builder}
}

// Query returns a query builder for SubcomponentPhaseStatus.
func (c *SubcomponentPhaseStatusClient) Query() *SubcomponentPhaseStatusQuery {
	return &SubcomponentPhaseStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubcomponentPhaseStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a SubcomponentPhaseStatus entity by its id.
func (c *SubcomponentPhaseStatusClient) Get(ctx context.Context, id string) (*SubcomponentPhaseStatus, error) {
	return c.Query().Where(subcomponentphasestatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubcomponentPhaseStatusClient) GetX(ctx context.Context, id string) *SubcomponentPhaseStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubcomponent queries the subcomponent edge of a SubcomponentPhaseStatus.
func (c *SubcomponentPhaseStatusClient) QuerySubcomponent(_m *SubcomponentPhaseStatus) *SubcomponentQuery {
	query := (&SubcomponentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID, id),
			sqlgraph.To(subcomponent.Table, subcomponent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponentphasestatus.SubcomponentTable, subcomponentphasestatus.SubcomponentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolutionPhase queries the solution_phase edge of a SubcomponentPhaseStatus.
func (c *SubcomponentPhaseStatusClient) QuerySolutionPhase(_m *SubcomponentPhaseStatus) *SolutionPhaseQuery {
	query := (&SolutionPhaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID, id),
			sqlgraph.To(solutionphase.Table, solutionphase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponentphasestatus.SolutionPhaseTable, subcomponentphasestatus.SolutionPhaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubcomponentPhaseStatusClient) Hooks() []Hook {
	return c.hooks.SubcomponentPhaseStatus
}

// Interceptors returns the client interceptors.
func (c *SubcomponentPhaseStatusClient) Interceptors() []Interceptor {
	return c.inters.SubcomponentPhaseStatus
}

func (c *SubcomponentPhaseStatusClient) mutate(ctx context.Context, m *SubcomponentPhaseStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubcomponentPhaseStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubcomponentPhaseStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubcomponentPhaseStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubcomponentPhaseStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubcomponentPhaseStatus mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySessions queries the sessions edge of a User.
func (c *UserClient) QuerySessions(_m *User) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.SessionsTable, user.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChangeLog, Phase, Project, Session, Solution, SolutionPhase, Subcomponent,
		SubcomponentPhaseStatus, User []ent.Hook
	}
	inters struct {
		ChangeLog, Phase, Project, Session, Solution, SolutionPhase, Subcomponent,
		SubcomponentPhaseStatus, User []ent.Interceptor
	}
)
