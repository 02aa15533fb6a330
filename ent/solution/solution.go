// Code generated by ent, DO NOT EDIT.

package solution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the solution type in the database.
	Label = "solution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldRagStatus holds the string denoting the rag_status field in the database.
	FieldRagStatus = "rag_status"
	// FieldRagSource holds the string denoting the rag_source field in the database.
	FieldRagSource = "rag_source"
	// FieldRagReason holds the string denoting the rag_reason field in the database.
	FieldRagReason = "rag_reason"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSuccessCriteria holds the string denoting the success_criteria field in the database.
	FieldSuccessCriteria = "success_criteria"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldAssignee holds the string denoting the assignee field in the database.
	FieldAssignee = "assignee"
	// FieldApprover holds the string denoting the approver field in the database.
	FieldApprover = "approver"
	// FieldKeyStakeholder holds the string denoting the key_stakeholder field in the database.
	FieldKeyStakeholder = "key_stakeholder"
	// FieldBlockers holds the string denoting the blockers field in the database.
	FieldBlockers = "blockers"
	// FieldRisks holds the string denoting the risks field in the database.
	FieldRisks = "risks"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeSolutionPhases holds the string denoting the solution_phases edge name in mutations.
	EdgeSolutionPhases = "solution_phases"
	// EdgeSubcomponents holds the string denoting the subcomponents edge name in mutations.
	EdgeSubcomponents = "subcomponents"
	// Table holds the table name of the solution in the database.
	Table = "solutions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "solutions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// SolutionPhasesTable is the table that holds the solution_phases relation/edge.
	SolutionPhasesTable = "solution_phases"
	// SolutionPhasesInverseTable is the table name for the SolutionPhase entity.
	// It exists in this package in order to avoid circular dependency with the "solutionphase" package.
	SolutionPhasesInverseTable = "solution_phases"
	// SolutionPhasesColumn is the table column denoting the solution_phases relation/edge.
	SolutionPhasesColumn = "solution_id"
	// SubcomponentsTable is the table that holds the subcomponents relation/edge.
	SubcomponentsTable = "subcomponents"
	// SubcomponentsInverseTable is the table name for the Subcomponent entity.
	// It exists in this package in order to avoid circular dependency with the "subcomponent" package.
	SubcomponentsInverseTable = "subcomponents"
	// SubcomponentsColumn is the table column denoting the subcomponents relation/edge.
	SubcomponentsColumn = "solution_id"
)

// Columns holds all SQL columns for solution fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldProjectID,
	FieldName,
	FieldVersion,
	FieldStatus,
	FieldPriority,
	FieldDueDate,
	FieldCurrentPhase,
	FieldRagStatus,
	FieldRagSource,
	FieldRagReason,
	FieldDescription,
	FieldSuccessCriteria,
	FieldOwner,
	FieldAssignee,
	FieldApprover,
	FieldKeyStakeholder,
	FieldBlockers,
	FieldRisks,
	FieldCompletedAt,
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
	// ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	ProjectIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultOwner holds the default value on creation for the "owner" field.
	DefaultOwner string
	// DefaultAssignee holds the default value on creation for the "assignee" field.
	DefaultAssignee string
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
		return fmt.Errorf("solution: invalid enum value for status field: %q", s)
	}
}

// RagStatus defines the type for the "rag_status" enum field.
type RagStatus string

// RagStatusAmber is the default value of the RagStatus enum.
const DefaultRagStatus = RagStatusAmber

// RagStatus values.
const (
	RagStatusRed   RagStatus = "red"
	RagStatusAmber RagStatus = "amber"
	RagStatusGreen RagStatus = "green"
)

func (rs RagStatus) String() string {
	return string(rs)
}

// RagStatusValidator is a validator for the "rag_status" field enum values. It is called by the builders before save.
func RagStatusValidator(rs RagStatus) error {
	switch rs {
	case RagStatusRed, RagStatusAmber, RagStatusGreen:
		return nil
	default:
		return fmt.Errorf("solution: invalid enum value for rag_status field: %q", rs)
	}
}

// RagSource defines the type for the "rag_source" enum field.
type RagSource string

// RagSourceAuto is the default value of the RagSource enum.
const DefaultRagSource = RagSourceAuto

// RagSource values.
const (
	RagSourceAuto   RagSource = "auto"
	RagSourceManual RagSource = "manual"
)

func (rs RagSource) String() string {
	return string(rs)
}

// RagSourceValidator is a validator for the "rag_source" field enum values. It is called by the builders before save.
func RagSourceValidator(rs RagSource) error {
	switch rs {
	case RagSourceAuto, RagSourceManual:
		return nil
	default:
		return fmt.Errorf("solution: invalid enum value for rag_source field: %q", rs)
	}
}

// OrderOption defines the ordering options for the Solution queries.
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

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByRagStatus orders the results by the rag_status field.
func ByRagStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRagStatus, opts...).ToFunc()
}

// ByRagSource orders the results by the rag_source field.
func ByRagSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRagSource, opts...).ToFunc()
}

// ByRagReason orders the results by the rag_reason field.
func ByRagReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRagReason, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// BySuccessCriteria orders the results by the success_criteria field.
func BySuccessCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessCriteria, opts...).ToFunc()
}

// ByOwner orders the results by the owner field.
func ByOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwner, opts...).ToFunc()
}

// ByAssignee orders the results by the assignee field.
func ByAssignee(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignee, opts...).ToFunc()
}

// ByApprover orders the results by the approver field.
func ByApprover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprover, opts...).ToFunc()
}

// ByKeyStakeholder orders the results by the key_stakeholder field.
func ByKeyStakeholder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyStakeholder, opts...).ToFunc()
}

// ByBlockers orders the results by the blockers field.
func ByBlockers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockers, opts...).ToFunc()
}

// ByRisks orders the results by the risks field.
func ByRisks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRisks, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// BySolutionPhasesCount orders the results by solution_phases count.
func BySolutionPhasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSolutionPhasesStep(), opts...)
	}
}

// BySolutionPhases orders the results by solution_phases terms.
func BySolutionPhases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionPhasesStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newSolutionPhasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionPhasesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SolutionPhasesTable, SolutionPhasesColumn),
	)
}
func newSubcomponentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubcomponentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubcomponentsTable, SubcomponentsColumn),
	)
}
