// Code generated by ent, DO NOT EDIT.

package subcomponent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the subcomponent type in the database.
	Label = "subcomponent"
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
	// FieldSolutionID holds the string denoting the solution_id field in the database.
	FieldSolutionID = "solution_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldSubPhase holds the string denoting the sub_phase field in the database.
	FieldSubPhase = "sub_phase"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldWorkEstimate holds the string denoting the work_estimate field in the database.
	FieldWorkEstimate = "work_estimate"
	// FieldOwner holds the string denoting the owner field in the database.
	FieldOwner = "owner"
	// FieldAssignee holds the string denoting the assignee field in the database.
	FieldAssignee = "assignee"
	// FieldApprover holds the string denoting the approver field in the database.
	FieldApprover = "approver"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeSolution holds the string denoting the solution edge name in mutations.
	EdgeSolution = "solution"
	// EdgePhaseStatuses holds the string denoting the phase_statuses edge name in mutations.
	EdgePhaseStatuses = "phase_statuses"
	// Table holds the table name of the subcomponent in the database.
	Table = "subcomponents"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "subcomponents"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// SolutionTable is the table that holds the solution relation/edge.
	SolutionTable = "subcomponents"
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
	PhaseStatusesColumn = "subcomponent_id"
)

// Columns holds all SQL columns for subcomponent fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldProjectID,
	FieldSolutionID,
	FieldName,
	FieldStatus,
	FieldPriority,
	FieldDueDate,
	FieldSubPhase,
	FieldDescription,
	FieldNotes,
	FieldCategory,
	FieldDependencies,
	FieldWorkEstimate,
	FieldOwner,
	FieldAssignee,
	FieldApprover,
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
	// SolutionIDValidator is a validator for the "solution_id" field. It is called by the builders before save.
	SolutionIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultOwner holds the default value on creation for the "owner" field.
	DefaultOwner string
	// DefaultAssignee holds the default value on creation for the "assignee" field.
	DefaultAssignee string
)

// Status defines the type for the "status" enum field.
type Status string

// StatusToDo is the default value of the Status enum.
const DefaultStatus = StatusToDo

// Status values.
const (
	StatusToDo       Status = "to_do"
	StatusInProgress Status = "in_progress"
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
	case StatusToDo, StatusInProgress, StatusOnHold, StatusComplete, StatusAbandoned:
		return nil
	default:
		return fmt.Errorf("subcomponent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Subcomponent queries.
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

// BySolutionID orders the results by the solution_id field.
func BySolutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
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

// BySubPhase orders the results by the sub_phase field.
func BySubPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubPhase, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDependencies orders the results by the dependencies field.
func ByDependencies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependencies, opts...).ToFunc()
}

// ByWorkEstimate orders the results by the work_estimate field.
func ByWorkEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkEstimate, opts...).ToFunc()
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
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
