// Code generated by ent, DO NOT EDIT.

package phase

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the phase type in the database.
	Label = "phase"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPhaseGroup holds the string denoting the phase_group field in the database.
	FieldPhaseGroup = "phase_group"
	// FieldPhaseName holds the string denoting the phase_name field in the database.
	FieldPhaseName = "phase_name"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// Table holds the table name of the phase in the database.
	Table = "phases"
)

// Columns holds all SQL columns for phase fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPhaseGroup,
	FieldPhaseName,
	FieldSequence,
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
	// PhaseGroupValidator is a validator for the "phase_group" field. It is called by the builders before save.
	PhaseGroupValidator func(string) error
	// PhaseNameValidator is a validator for the "phase_name" field. It is called by the builders before save.
	PhaseNameValidator func(string) error
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int) error
)

// OrderOption defines the ordering options for the Phase queries.
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

// ByPhaseGroup orders the results by the phase_group field.
func ByPhaseGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseGroup, opts...).ToFunc()
}

// ByPhaseName orders the results by the phase_name field.
func ByPhaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseName, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}
