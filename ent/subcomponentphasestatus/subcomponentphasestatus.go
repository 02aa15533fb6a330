// Code generated by ent, DO NOT EDIT.

package subcomponentphasestatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subcomponentphasestatus type in the database.
	Label = "subcomponent_phase_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSubcomponentID holds the string denoting the subcomponent_id field in the database.
	FieldSubcomponentID = "subcomponent_id"
	// FieldSolutionPhaseID holds the string denoting the solution_phase_id field in the database.
	FieldSolutionPhaseID = "solution_phase_id"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldIsComplete holds the string denoting the is_complete field in the database.
	FieldIsComplete = "is_complete"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSubcomponent holds the string denoting the subcomponent edge name in mutations.
	EdgeSubcomponent = "subcomponent"
	// EdgeSolutionPhase holds the string denoting the solution_phase edge name in mutations.
	EdgeSolutionPhase = "solution_phase"
	// Table holds the table name of the subcomponentphasestatus in the database.
	Table = "subcomponent_phase_status"
	// SubcomponentTable is the table that holds the subcomponent relation/edge.
	SubcomponentTable = "subcomponent_phase_status"
	// SubcomponentInverseTable is the table name for the Subcomponent entity.
	// It exists in this package in order to avoid circular dependency with the "subcomponent" package.
	SubcomponentInverseTable = "subcomponents"
	// SubcomponentColumn is the table column denoting the subcomponent relation/edge.
	SubcomponentColumn = "subcomponent_id"
	// SolutionPhaseTable is the table that holds the solution_phase relation/edge.
	SolutionPhaseTable = "subcomponent_phase_status"
	// SolutionPhaseInverseTable is the table name for the SolutionPhase entity.
	// It exists in this package in order to avoid circular dependency with the "solutionphase" package.
	SolutionPhaseInverseTable = "solution_phases"
	// SolutionPhaseColumn is the table column denoting the solution_phase relation/edge.
	SolutionPhaseColumn = "solution_phase_id"
)

// Columns holds all SQL columns for subcomponentphasestatus fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSubcomponentID,
	FieldSolutionPhaseID,
	FieldPhaseID,
	FieldIsComplete,
	FieldCompletedAt,
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
	// SubcomponentIDValidator is a validator for the "subcomponent_id" field. It is called by the builders before save.
	SubcomponentIDValidator func(string) error
	// SolutionPhaseIDValidator is a validator for the "solution_phase_id" field. It is called by the builders before save.
	SolutionPhaseIDValidator func(string) error
	// PhaseIDValidator is a validator for the "phase_id" field. It is called by the builders before save.
	PhaseIDValidator func(string) error
	// DefaultIsComplete holds the default value on creation for the "is_complete" field.
	DefaultIsComplete bool
)

// OrderOption defines the ordering options for the SubcomponentPhaseStatus queries.
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

// BySubcomponentID orders the results by the subcomponent_id field.
func BySubcomponentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubcomponentID, opts...).ToFunc()
}

// BySolutionPhaseID orders the results by the solution_phase_id field.
func BySolutionPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionPhaseID, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByIsComplete orders the results by the is_complete field.
func ByIsComplete(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsComplete, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// BySubcomponentField orders the results by subcomponent field.
func BySubcomponentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubcomponentStep(), sql.OrderByField(field, opts...))
	}
}

// BySolutionPhaseField orders the results by solution_phase field.
func BySolutionPhaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionPhaseStep(), sql.OrderByField(field, opts...))
	}
}
func newSubcomponentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubcomponentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SubcomponentTable, SubcomponentColumn),
	)
}
func newSolutionPhaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionPhaseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SolutionPhaseTable, SolutionPhaseColumn),
	)
}
