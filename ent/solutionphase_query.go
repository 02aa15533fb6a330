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
	"tracklite.io/tracklite/ent/predicate"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SolutionPhaseQuery is the builder for querying SolutionPhase entities.
type SolutionPhaseQuery struct {
	config
	ctx               *QueryContext
	order             []solutionphase.OrderOption
	inters            []Interceptor
	predicates        []predicate.SolutionPhase
	withSolution      *SolutionQuery
	withPhaseStatuses *SubcomponentPhaseStatusQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SolutionPhaseQuery builder.
func (_q *SolutionPhaseQuery) Where(ps ...predicate.SolutionPhase) *SolutionPhaseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SolutionPhaseQuery) Limit(limit int) *SolutionPhaseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SolutionPhaseQuery) Offset(offset int) *SolutionPhaseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SolutionPhaseQuery) Unique(unique bool) *SolutionPhaseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SolutionPhaseQuery) Order(o ...solutionphase.OrderOption) *SolutionPhaseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySolution chains the current query on the "solution" edge.
func (_q *SolutionPhaseQuery) QuerySolution() *SolutionQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionphase.Table, solutionphase.FieldID, selector),
			sqlgraph.To(solution.Table, solution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, solutionphase.SolutionTable, solutionphase.SolutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPhaseStatuses chains the current query on the "phase_statuses" edge.
func (_q *SolutionPhaseQuery) QueryPhaseStatuses() *SubcomponentPhaseStatusQuery {
	query := (&SubcomponentPhaseStatusClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(solutionphase.Table, solutionphase.FieldID, selector),
			sqlgraph.To(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, solutionphase.PhaseStatusesTable, solutionphase.PhaseStatusesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SolutionPhase entity from the query.
// Returns a *NotFoundError when no SolutionPhase was found.
func (_q *SolutionPhaseQuery) First(ctx context.Context) (*SolutionPhase, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{solutionphase.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SolutionPhaseQuery) FirstX(ctx context.Context) *SolutionPhase {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SolutionPhase ID from the query.
// Returns a *NotFoundError when no SolutionPhase ID was found.
func (_q *SolutionPhaseQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{solutionphase.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SolutionPhaseQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SolutionPhase entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SolutionPhase entity is found.
// Returns a *NotFoundError when no SolutionPhase entities are found.
func (_q *SolutionPhaseQuery) Only(ctx context.Context) (*SolutionPhase, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{solutionphase.Label}
	default:
		return nil, &NotSingularError{solutionphase.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SolutionPhaseQuery) OnlyX(ctx context.Context) *SolutionPhase {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SolutionPhase ID in the query.
// Returns a *NotSingularError when more than one SolutionPhase ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SolutionPhaseQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{solutionphase.Label}
	default:
		err = &NotSingularError{solutionphase.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SolutionPhaseQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SolutionPhases.
func (_q *SolutionPhaseQuery) All(ctx context.Context) ([]*SolutionPhase, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SolutionPhase, *SolutionPhaseQuery]()
	return withInterceptors[[]*SolutionPhase](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SolutionPhaseQuery) AllX(ctx context.Context) []*SolutionPhase {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SolutionPhase IDs.
func (_q *SolutionPhaseQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(solutionphase.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SolutionPhaseQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SolutionPhaseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SolutionPhaseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SolutionPhaseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SolutionPhaseQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SolutionPhaseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SolutionPhaseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SolutionPhaseQuery) Clone() *SolutionPhaseQuery {
	if _q == nil {
		return nil
	}
	return &SolutionPhaseQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]solutionphase.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.SolutionPhase{}, _q.predicates...),
		withSolution:      _q.withSolution.Clone(),
		withPhaseStatuses: _q.withPhaseStatuses.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSolution tells the query-builder to eager-load the nodes that are connected to
// the "solution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SolutionPhaseQuery) WithSolution(opts ...func(*SolutionQuery)) *SolutionPhaseQuery {
	query := (&SolutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSolution = query
	return _q
}

// WithPhaseStatuses tells the query-builder to eager-load the nodes that are connected to
// the "phase_statuses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SolutionPhaseQuery) WithPhaseStatuses(opts ...func(*SubcomponentPhaseStatusQuery)) *SolutionPhaseQuery {
	query := (&SubcomponentPhaseStatusClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPhaseStatuses = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SolutionPhase.Query().
//		GroupBy(solutionphase.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SolutionPhaseQuery) GroupBy(field string, fields ...string) *SolutionPhaseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SolutionPhaseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = solutionphase.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.SolutionPhase.Query().
//		Select(solutionphase.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *SolutionPhaseQuery) Select(fields ...string) *SolutionPhaseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SolutionPhaseSelect{SolutionPhaseQuery: _q}
	sbuild.label = solutionphase.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SolutionPhaseSelect configured with the given aggregations.
func (_q *SolutionPhaseQuery) Aggregate(fns ...AggregateFunc) *SolutionPhaseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SolutionPhaseQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !solutionphase.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SolutionPhaseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SolutionPhase, error) {
	var (
		nodes       = []*SolutionPhase{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSolution != nil,
			_q.withPhaseStatuses != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SolutionPhase).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SolutionPhase{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSolution; query != nil {
		if err := _q.loadSolution(ctx, query, nodes, nil,
			func(n *SolutionPhase, e *Solution) { n.Edges.Solution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPhaseStatuses; query != nil {
		if err := _q.loadPhaseStatuses(ctx, query, nodes,
			func(n *SolutionPhase) { n.Edges.PhaseStatuses = []*SubcomponentPhaseStatus{} },
			func(n *SolutionPhase, e *SubcomponentPhaseStatus) {
				n.Edges.PhaseStatuses = append(n.Edges.PhaseStatuses, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SolutionPhaseQuery) loadSolution(ctx context.Context, query *SolutionQuery, nodes []*SolutionPhase, init func(*SolutionPhase), assign func(*SolutionPhase, *Solution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SolutionPhase)
	for i := range nodes {
		fk := nodes[i].SolutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(solution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "solution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SolutionPhaseQuery) loadPhaseStatuses(ctx context.Context, query *SubcomponentPhaseStatusQuery, nodes []*SolutionPhase, init func(*SolutionPhase), assign func(*SolutionPhase, *SubcomponentPhaseStatus)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*SolutionPhase)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(subcomponentphasestatus.FieldSolutionPhaseID)
	}
	query.Where(predicate.SubcomponentPhaseStatus(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(solutionphase.PhaseStatusesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.SolutionPhaseID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "solution_phase_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *SolutionPhaseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SolutionPhaseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(solutionphase.Table, solutionphase.Columns, sqlgraph.NewFieldSpec(solutionphase.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, solutionphase.FieldID)
		for i := range fields {
			if fields[i] != solutionphase.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSolution != nil {
			_spec.Node.AddColumnOnce(solutionphase.FieldSolutionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SolutionPhaseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(solutionphase.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = solutionphase.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SolutionPhaseGroupBy is the group-by builder for SolutionPhase entities.
type SolutionPhaseGroupBy struct {
	selector
	build *SolutionPhaseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SolutionPhaseGroupBy) Aggregate(fns ...AggregateFunc) *SolutionPhaseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SolutionPhaseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SolutionPhaseQuery, *SolutionPhaseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SolutionPhaseGroupBy) sqlScan(ctx context.Context, root *SolutionPhaseQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SolutionPhaseSelect is the builder for selecting fields of SolutionPhase entities.
type SolutionPhaseSelect struct {
	*SolutionPhaseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SolutionPhaseSelect) Aggregate(fns ...AggregateFunc) *SolutionPhaseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SolutionPhaseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SolutionPhaseQuery, *SolutionPhaseSelect](ctx, _s.SolutionPhaseQuery, _s, _s.inters, v)
}

func (_s *SolutionPhaseSelect) sqlScan(ctx context.Context, root *SolutionPhaseQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
