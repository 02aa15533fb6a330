// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/phase"
)

// Phase is the model entity for the Phase schema.
type Phase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PhaseGroup holds the value of the "phase_group" field.
	PhaseGroup string `json:"phase_group,omitempty"`
	// PhaseName holds the value of the "phase_name" field.
	PhaseName string `json:"phase_name,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence     int `json:"sequence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Phase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case phase.FieldSequence:
			values[i] = new(sql.NullInt64)
		case phase.FieldID, phase.FieldPhaseGroup, phase.FieldPhaseName:
			values[i] = new(sql.NullString)
		case phase.FieldCreatedAt, phase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Phase fields.
func (_m *Phase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case phase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case phase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case phase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case phase.FieldPhaseGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_group", values[i])
			} else if value.Valid {
				_m.PhaseGroup = value.String
			}
		case phase.FieldPhaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_name", values[i])
			} else if value.Valid {
				_m.PhaseName = value.String
			}
		case phase.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Phase.
// This includes values selected through modifiers, order, etc.
func (_m *Phase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Phase.
// Note that you need to call Phase.Unwrap() before calling this method if this Phase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Phase) Update() *PhaseUpdateOne {
	return NewPhaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Phase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Phase) Unwrap() *Phase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Phase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Phase) String() string {
	var builder strings.Builder
	builder.WriteString("Phase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("phase_group=")
	builder.WriteString(_m.PhaseGroup)
	builder.WriteString(", ")
	builder.WriteString("phase_name=")
	builder.WriteString(_m.PhaseName)
	builder.WriteString(", ")
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteByte(')')
	return builder.String()
}

// Phases is a parsable slice of Phase.
type Phases []*Phase
