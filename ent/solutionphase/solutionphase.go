// Code generated by ent, DO NOT EDIT.

package solutionphase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the solutionphase type in the database.
	Label = "solution_phase"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSolutionID holds the string denoting the solution_id field in the database.
	FieldSolutionID = "solution_id"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldIsEnabled holds the string denoting the is_enabled field in the database.
	FieldIsEnabled = "is_enabled"
	// FieldSequenceOverride holds the string denoting the sequence_override field in the database.
	FieldSequenceOverride = "sequence_override"
	// EdgeSolution holds the string denoting the solution edge name in mutations.
	EdgeSolution = "solution"
	// EdgePhaseStatuses holds the string denoting the phase_statuses edge name in mutations.
	EdgePhaseStatuses = "phase_statuses"
	// Table holds the table name of the solutionphase in the database.
	Table = "solution_phases"
	// SolutionTable is the table that holds the solution relation/edge.
	SolutionTable = "solution_phases"
	// SolutionInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionInverseTable = "solutions"
	// SolutionColumn is the table column denoting the solution relation/edge.
	SolutionColumn = "solution_id"
	// PhaseStatusesTable is the table that holds the phase_statuses relation/edge.
	PhaseStatusesTable = "subcomponent_phase_status"
	// PhaseStatusesInverseTable is the table name for the SubcomponentPhaseStatus entity.
	// It exists in this package in order to avoid circular dependency with the "subcomponentphasestatus" package.
	PhaseStatusesInverseTable = "subcomponent_phase_status"
	// PhaseStatusesColumn is the table column denoting the phase_statuses relation/edge.
	PhaseStatusesColumn = "solution_phase_id"
)

// Columns holds all SQL columns for solutionphase fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSolutionID,
	FieldPhaseID,
	FieldIsEnabled,
	FieldSequenceOverride,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SolutionIDValidator is a validator for the "solution_id" field. It is called by the builders before save.
	SolutionIDValidator func(string) error
	// PhaseIDValidator is a validator for the "phase_id" field. It is called by the builders before save.
	PhaseIDValidator func(string) error
	// DefaultIsEnabled holds the default value on creation for the "is_enabled" field.
	DefaultIsEnabled bool
)

// OrderOption defines the ordering options for the SolutionPhase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySolutionID orders the results by the solution_id field.
func BySolutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionID, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByIsEnabled orders the results by the is_enabled field.
func ByIsEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsEnabled, opts...).ToFunc()
}

// BySequenceOverride orders the results by the sequence_override field.
func BySequenceOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceOverride, opts...).ToFunc()
}

// BySolutionField orders the results by solution field.
func BySolutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByPhaseStatusesCount orders the results by phase_statuses count.
func ByPhaseStatusesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhaseStatusesStep(), opts...)
	}
}

// ByPhaseStatuses orders the results by phase_statuses terms.
func ByPhaseStatuses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhaseStatusesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSolutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
	)
}
func newPhaseStatusesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhaseStatusesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhaseStatusesTable, PhaseStatusesColumn),
	)
}
