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
	"tracklite.io/tracklite/ent/predicate"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentPhaseStatusQuery is the builder for querying SubcomponentPhaseStatus entities.
type SubcomponentPhaseStatusQuery struct {
	config
	ctx               *QueryContext
	order             []subcomponentphasestatus.OrderOption
	inters            []Interceptor
	predicates        []predicate.SubcomponentPhaseStatus
	withSubcomponent  *SubcomponentQuery
	withSolutionPhase *SolutionPhaseQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SubcomponentPhaseStatusQuery builder.
func (_q *SubcomponentPhaseStatusQuery) Where(ps ...predicate.SubcomponentPhaseStatus) *SubcomponentPhaseStatusQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SubcomponentPhaseStatusQuery) Limit(limit int) *SubcomponentPhaseStatusQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SubcomponentPhaseStatusQuery) Offset(offset int) *SubcomponentPhaseStatusQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SubcomponentPhaseStatusQuery) Unique(unique bool) *SubcomponentPhaseStatusQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SubcomponentPhaseStatusQuery) Order(o ...subcomponentphasestatus.OrderOption) *SubcomponentPhaseStatusQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySubcomponent chains the current query on the "subcomponent" edge.
func (_q *SubcomponentPhaseStatusQuery) QuerySubcomponent() *SubcomponentQuery {
	query := (&SubcomponentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID, selector),
			sqlgraph.To(subcomponent.Table, subcomponent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponentphasestatus.SubcomponentTable, subcomponentphasestatus.SubcomponentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySolutionPhase chains the current query on the "solution_phase" edge.
func (_q *SubcomponentPhaseStatusQuery) QuerySolutionPhase() *SolutionPhaseQuery {
	query := (&SolutionPhaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(subcomponentphasestatus.Table, subcomponentphasestatus.FieldID, selector),
			sqlgraph.To(solutionphase.Table, solutionphase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subcomponentphasestatus.SolutionPhaseTable, subcomponentphasestatus.SolutionPhaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SubcomponentPhaseStatus entity from the query.
// Returns a *NotFoundError when no SubcomponentPhaseStatus was found.
func (_q *SubcomponentPhaseStatusQuery) First(ctx context.Context) (*SubcomponentPhaseStatus, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{subcomponentphasestatus.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) FirstX(ctx context.Context) *SubcomponentPhaseStatus {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SubcomponentPhaseStatus ID from the query.
// Returns a *NotFoundError when no SubcomponentPhaseStatus ID was found.
func (_q *SubcomponentPhaseStatusQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{subcomponentphasestatus.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SubcomponentPhaseStatus entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SubcomponentPhaseStatus entity is found.
// Returns a *NotFoundError when no SubcomponentPhaseStatus entities are found.
func (_q *SubcomponentPhaseStatusQuery) Only(ctx context.Context) (*SubcomponentPhaseStatus, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{subcomponentphasestatus.Label}
	default:
		return nil, &NotSingularError{subcomponentphasestatus.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) OnlyX(ctx context.Context) *SubcomponentPhaseStatus {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SubcomponentPhaseStatus ID in the query.
// Returns a *NotSingularError when more than one SubcomponentPhaseStatus ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SubcomponentPhaseStatusQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{subcomponentphasestatus.Label}
	default:
		err = &NotSingularError{subcomponentphasestatus.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SubcomponentPhaseStatusSlice.
func (_q *SubcomponentPhaseStatusQuery) All(ctx context.Context) ([]*SubcomponentPhaseStatus, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SubcomponentPhaseStatus, *SubcomponentPhaseStatusQuery]()
	return withInterceptors[[]*SubcomponentPhaseStatus](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) AllX(ctx context.Context) []*SubcomponentPhaseStatus {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SubcomponentPhaseStatus IDs.
func (_q *SubcomponentPhaseStatusQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(subcomponentphasestatus.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SubcomponentPhaseStatusQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SubcomponentPhaseStatusQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SubcomponentPhaseStatusQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SubcomponentPhaseStatusQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *SubcomponentPhaseStatusQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SubcomponentPhaseStatusQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SubcomponentPhaseStatusQuery) Clone() *SubcomponentPhaseStatusQuery {
	if _q == nil {
		return nil
	}
	return &SubcomponentPhaseStatusQuery{
		config:            _q.config,
		ctx:               _q.ctx.Clone(),
		order:             append([]subcomponentphasestatus.OrderOption{}, _q.order...),
		inters:            append([]Interceptor{}, _q.inters...),
		predicates:        append([]predicate.SubcomponentPhaseStatus{}, _q.predicates...),
		withSubcomponent:  _q.withSubcomponent.Clone(),
		withSolutionPhase: _q.withSolutionPhase.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSubcomponent tells the query-builder to eager-load the nodes that are connected to
// the "subcomponent" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubcomponentPhaseStatusQuery) WithSubcomponent(opts ...func(*SubcomponentQuery)) *SubcomponentPhaseStatusQuery {
	query := (&SubcomponentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubcomponent = query
	return _q
}

// WithSolutionPhase tells the query-builder to eager-load the nodes that are connected to
// the "solution_phase" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SubcomponentPhaseStatusQuery) WithSolutionPhase(opts ...func(*SolutionPhaseQuery)) *SubcomponentPhaseStatusQuery {
	query := (&SolutionPhaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSolutionPhase = query
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
//	client.SubcomponentPhaseStatus.Query().
//		GroupBy(subcomponentphasestatus.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SubcomponentPhaseStatusQuery) GroupBy(field string, fields ...string) *SubcomponentPhaseStatusGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SubcomponentPhaseStatusGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = subcomponentphasestatus.Label
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
//	client.SubcomponentPhaseStatus.Query().
//		Select(subcomponentphasestatus.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *SubcomponentPhaseStatusQuery) Select(fields ...string) *SubcomponentPhaseStatusSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SubcomponentPhaseStatusSelect{SubcomponentPhaseStatusQuery: _q}
	sbuild.label = subcomponentphasestatus.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SubcomponentPhaseStatusSelect configured with the given aggregations.
func (_q *SubcomponentPhaseStatusQuery) Aggregate(fns ...AggregateFunc) *SubcomponentPhaseStatusSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SubcomponentPhaseStatusQuery) prepareQuery(ctx context.Context) error {
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
		if !subcomponentphasestatus.ValidColumn(f) {
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

func (_q *SubcomponentPhaseStatusQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SubcomponentPhaseStatus, error) {
	var (
		nodes       = []*SubcomponentPhaseStatus{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withSubcomponent != nil,
			_q.withSolutionPhase != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SubcomponentPhaseStatus).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SubcomponentPhaseStatus{config: _q.config}
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
	if query := _q.withSubcomponent; query != nil {
		if err := _q.loadSubcomponent(ctx, query, nodes, nil,
			func(n *SubcomponentPhaseStatus, e *Subcomponent) { n.Edges.Subcomponent = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSolutionPhase; query != nil {
		if err := _q.loadSolutionPhase(ctx, query, nodes, nil,
			func(n *SubcomponentPhaseStatus, e *SolutionPhase) { n.Edges.SolutionPhase = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SubcomponentPhaseStatusQuery) loadSubcomponent(ctx context.Context, query *SubcomponentQuery, nodes []*SubcomponentPhaseStatus, init func(*SubcomponentPhaseStatus), assign func(*SubcomponentPhaseStatus, *Subcomponent)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SubcomponentPhaseStatus)
	for i := range nodes {
		fk := nodes[i].SubcomponentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subcomponent.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subcomponent_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *SubcomponentPhaseStatusQuery) loadSolutionPhase(ctx context.Context, query *SolutionPhaseQuery, nodes []*SubcomponentPhaseStatus, init func(*SubcomponentPhaseStatus), assign func(*SubcomponentPhaseStatus, *SolutionPhase)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*SubcomponentPhaseStatus)
	for i := range nodes {
		fk := nodes[i].SolutionPhaseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(solutionphase.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "solution_phase_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SubcomponentPhaseStatusQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SubcomponentPhaseStatusQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(subcomponentphasestatus.Table, subcomponentphasestatus.Columns, sqlgraph.NewFieldSpec(subcomponentphasestatus.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subcomponentphasestatus.FieldID)
		for i := range fields {
			if fields[i] != subcomponentphasestatus.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSubcomponent != nil {
			_spec.Node.AddColumnOnce(subcomponentphasestatus.FieldSubcomponentID)
		}
		if _q.withSolutionPhase != nil {
			_spec.Node.AddColumnOnce(subcomponentphasestatus.FieldSolutionPhaseID)
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

func (_q *SubcomponentPhaseStatusQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(subcomponentphasestatus.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = subcomponentphasestatus.Columns
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

// SubcomponentPhaseStatusGroupBy is the group-by builder for SubcomponentPhaseStatus entities.
type SubcomponentPhaseStatusGroupBy struct {
	selector
	build *SubcomponentPhaseStatusQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SubcomponentPhaseStatusGroupBy) Aggregate(fns ...AggregateFunc) *SubcomponentPhaseStatusGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SubcomponentPhaseStatusGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubcomponentPhaseStatusQuery, *SubcomponentPhaseStatusGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SubcomponentPhaseStatusGroupBy) sqlScan(ctx context.Context, root *SubcomponentPhaseStatusQuery, v any) error {
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

// SubcomponentPhaseStatusSelect is the builder for selecting fields of SubcomponentPhaseStatus entities.
type SubcomponentPhaseStatusSelect struct {
	*SubcomponentPhaseStatusQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SubcomponentPhaseStatusSelect) Aggregate(fns ...AggregateFunc) *SubcomponentPhaseStatusSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SubcomponentPhaseStatusSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubcomponentPhaseStatusQuery, *SubcomponentPhaseStatusSelect](ctx, _s.SubcomponentPhaseStatusQuery, _s, _s.inters, v)
}

func (_s *SubcomponentPhaseStatusSelect) sqlScan(ctx context.Context, root *SubcomponentPhaseStatusQuery, v any) error {
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
