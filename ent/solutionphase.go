// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/solutionphase"
)

// SolutionPhase is the model entity for the SolutionPhase schema.
type SolutionPhase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SolutionID holds the value of the "solution_id" field.
	SolutionID string `json:"solution_id,omitempty"`
	// PhaseID holds the value of the "phase_id" field.
	PhaseID string `json:"phase_id,omitempty"`
	// IsEnabled holds the value of the "is_enabled" field.
	IsEnabled bool `json:"is_enabled,omitempty"`
	// SequenceOverride holds the value of the "sequence_override" field.
	SequenceOverride *int `json:"sequence_override,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SolutionPhaseQuery when eager-loading is set.
	Edges        SolutionPhaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SolutionPhaseEdges holds the relations/edges for other nodes in the graph.
type SolutionPhaseEdges struct {
	// Solution holds the value of the solution edge.
	Solution *Solution `json:"solution,omitempty"`
	// PhaseStatuses holds the value of the phase_statuses edge.
	PhaseStatuses []*SubcomponentPhaseStatus `json:"phase_statuses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SolutionOrErr returns the Solution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionPhaseEdges) SolutionOrErr() (*Solution, error) {
	if e.Solution != nil {
		return e.Solution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: solution.Label}
	}
	return nil, &NotLoadedError{edge: "solution"}
}

// PhaseStatusesOrErr returns the PhaseStatuses value or an error if the edge
// was not loaded in eager-loading.
func (e SolutionPhaseEdges) PhaseStatusesOrErr() ([]*SubcomponentPhaseStatus, error) {
	if e.loadedTypes[1] {
		return e.PhaseStatuses, nil
	}
	return nil, &NotLoadedError{edge: "phase_statuses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolutionPhase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solutionphase.FieldIsEnabled:
			values[i] = new(sql.NullBool)
		case solutionphase.FieldSequenceOverride:
			values[i] = new(sql.NullInt64)
		case solutionphase.FieldID, solutionphase.FieldSolutionID, solutionphase.FieldPhaseID:
			values[i] = new(sql.NullString)
		case solutionphase.FieldCreatedAt, solutionphase.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolutionPhase fields.
func (_m *SolutionPhase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solutionphase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case solutionphase.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case solutionphase.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case solutionphase.FieldSolutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_id", values[i])
			} else if value.Valid {
				_m.SolutionID = value.String
			}
		case solutionphase.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = value.String
			}
		case solutionphase.FieldIsEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_enabled", values[i])
			} else if value.Valid {
				_m.IsEnabled = value.Bool
			}
		case solutionphase.FieldSequenceOverride:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_override", values[i])
			} else if value.Valid {
				_m.SequenceOverride = new(int)
				*_m.SequenceOverride = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolutionPhase.
// This includes values selected through modifiers, order, etc.
func (_m *SolutionPhase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySolution queries the "solution" edge of the SolutionPhase entity.
func (_m *SolutionPhase) QuerySolution() *SolutionQuery {
	return NewSolutionPhaseClient(_m.config).QuerySolution(_m)
}

// QueryPhaseStatuses queries the "phase_statuses" edge of the SolutionPhase entity.
func (_m *SolutionPhase) QueryPhaseStatuses() *SubcomponentPhaseStatusQuery {
	return NewSolutionPhaseClient(_m.config).QueryPhaseStatuses(_m)
}

// Update returns a builder for updating this SolutionPhase.
// Note that you need to call SolutionPhase.Unwrap() before calling this method if this SolutionPhase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolutionPhase) Update() *SolutionPhaseUpdateOne {
	return NewSolutionPhaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolutionPhase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolutionPhase) Unwrap() *SolutionPhase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolutionPhase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolutionPhase) String() string {
	var builder strings.Builder
	builder.WriteString("SolutionPhase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("solution_id=")
	builder.WriteString(_m.SolutionID)
	builder.WriteString(", ")
	builder.WriteString("phase_id=")
	builder.WriteString(_m.PhaseID)
	builder.WriteString(", ")
	builder.WriteString("is_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsEnabled))
	builder.WriteString(", ")
	if v := _m.SequenceOverride; v != nil {
		builder.WriteString("sequence_override=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SolutionPhases is a parsable slice of SolutionPhase.
type SolutionPhases []*SolutionPhase
