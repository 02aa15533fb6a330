// Code generated by ent, DO NOT EDIT.

package project

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the project type in the database.
	Label = "project"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldNameAbbreviation holds the string denoting the name_abbreviation field in the database.
	FieldNameAbbreviation = "name_abbreviation"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSuccessCriteria holds the string denoting the success_criteria field in the database.
	FieldSuccessCriteria = "success_criteria"
	// FieldSponsor holds the string denoting the sponsor field in the database.
	FieldSponsor = "sponsor"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeSolutions holds the string denoting the solutions edge name in mutations.
	EdgeSolutions = "solutions"
	// EdgeSubcomponents holds the string denoting the subcomponents edge name in mutations.
	EdgeSubcomponents = "subcomponents"
	// Table holds the table name of the project in the database.
	Table = "projects"
	// SolutionsTable is the table that holds the solutions relation/edge.
	SolutionsTable = "solutions"
	// SolutionsInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionsInverseTable = "solutions"
	// SolutionsColumn is the table column denoting the solutions relation/edge.
	SolutionsColumn = "project_id"
	// SubcomponentsTable is the table that holds the subcomponents relation/edge.
	SubcomponentsTable = "subcomponents"
	// SubcomponentsInverseTable is the table name for the Subcomponent entity.
	// It exists in this package in order to avoid circular dependency with the "subcomponent" package.
	SubcomponentsInverseTable = "subcomponents"
	// SubcomponentsColumn is the table column denoting the subcomponents relation/edge.
	SubcomponentsColumn = "project_id"
)

// Columns holds all SQL columns for project fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldNameAbbreviation,
	FieldStatus,
	FieldDescription,
	FieldSuccessCriteria,
	FieldSponsor,
	FieldCreatedBy,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// NameAbbreviationValidator is a validator for the "name_abbreviation" field. It is called by the builders before save.
	NameAbbreviationValidator func(string) error
	// DefaultSponsor holds the default value on creation for the "sponsor" field.
	DefaultSponsor string
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNotStarted is the default value of the Status enum.
const DefaultStatus = StatusNotStarted

// Status values.
const (
	StatusNotStarted Status = "not_started"
	StatusActive     Status = "active"
	StatusOnHold     Status = "on_hold"
	StatusComplete   Status = "complete"
	StatusAbandoned  Status = "abandoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNotStarted, StatusActive, StatusOnHold, StatusComplete, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("project: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Project queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByNameAbbreviation orders the results by the name_abbreviation field.
func ByNameAbbreviation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameAbbreviation, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySuccessCriteria orders the results by the success_criteria field.
func BySuccessCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCriteria, opts...).ToFunc()
}

// BySponsor orders the results by the sponsor field.
func BySponsor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSponsor, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// BySolutionsCount orders the results by solutions count.
func BySolutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSolutionsStep(), opts...)
	}
}

// BySolutions orders the results by solutions terms.
func BySolutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySubcomponentsCount orders the results by subcomponents count.
func BySubcomponentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubcomponentsStep(), opts...)
	}
}

// BySubcomponents orders the results by subcomponents terms.
func BySubcomponents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubcomponentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSolutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
	)
}
func newSubcomponentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubcomponentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubcomponentsTable, SubcomponentsColumn),
	)
}
