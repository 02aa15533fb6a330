// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/solutionphase"
	"tracklite.io/tracklite/ent/subcomponent"
	"tracklite.io/tracklite/ent/subcomponentphasestatus"
)

// SubcomponentPhaseStatus is the model entity for the SubcomponentPhaseStatus schema.
type SubcomponentPhaseStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SubcomponentID holds the value of the "subcomponent_id" field.
	SubcomponentID string `json:"subcomponent_id,omitempty"`
	// SolutionPhaseID holds the value of the "solution_phase_id" field.
	SolutionPhaseID string `json:"solution_phase_id,omitempty"`
	// PhaseID holds the value of the "phase_id" field.
	PhaseID string `json:"phase_id,omitempty"`
	// IsComplete holds the value of the "is_complete" field.
	IsComplete bool `json:"is_complete,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubcomponentPhaseStatusQuery when eager-loading is set.
	Edges        SubcomponentPhaseStatusEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubcomponentPhaseStatusEdges holds the relations/edges for other nodes in the graph.
type SubcomponentPhaseStatusEdges struct {
	// Subcomponent holds the value of the subcomponent edge.
	Subcomponent *Subcomponent `json:"subcomponent,omitempty"`
	// SolutionPhase holds the value of the solution_phase edge.
	SolutionPhase *SolutionPhase `json:"solution_phase,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubcomponentOrErr returns the Subcomponent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubcomponentPhaseStatusEdges) SubcomponentOrErr() (*Subcomponent, error) {
	if e.Subcomponent != nil {
		return e.Subcomponent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subcomponent.Label}
	}
	return nil, &NotLoadedError{edge: "subcomponent"}
}

// SolutionPhaseOrErr returns the SolutionPhase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubcomponentPhaseStatusEdges) SolutionPhaseOrErr() (*SolutionPhase, error) {
	if e.SolutionPhase != nil {
		return e.SolutionPhase, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: solutionphase.Label}
	}
	return nil, &NotLoadedError{edge: "solution_phase"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubcomponentPhaseStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subcomponentphasestatus.FieldIsComplete:
			values[i] = new(sql.NullBool)
		case subcomponentphasestatus.FieldID, subcomponentphasestatus.FieldSubcomponentID, subcomponentphasestatus.FieldSolutionPhaseID, subcomponentphasestatus.FieldPhaseID:
			values[i] = new(sql.NullString)
		case subcomponentphasestatus.FieldCreatedAt, subcomponentphasestatus.FieldUpdatedAt, subcomponentphasestatus.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubcomponentPhaseStatus fields.
func (_m *SubcomponentPhaseStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subcomponentphasestatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subcomponentphasestatus.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subcomponentphasestatus.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case subcomponentphasestatus.FieldSubcomponentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subcomponent_id", values[i])
			} else if value.Valid {
				_m.SubcomponentID = value.String
			}
		case subcomponentphasestatus.FieldSolutionPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_phase_id", values[i])
			} else if value.Valid {
				_m.SolutionPhaseID = value.String
			}
		case subcomponentphasestatus.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = value.String
			}
		case subcomponentphasestatus.FieldIsComplete:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_complete", values[i])
			} else if value.Valid {
				_m.IsComplete = value.Bool
			}
		case subcomponentphasestatus.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubcomponentPhaseStatus.
// This includes values selected through modifiers, order, etc.
func (_m *SubcomponentPhaseStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubcomponent queries the "subcomponent" edge of the SubcomponentPhaseStatus entity.
func (_m *SubcomponentPhaseStatus) QuerySubcomponent() *SubcomponentQuery {
	return NewSubcomponentPhaseStatusClient(_m.config).QuerySubcomponent(_m)
}

// QuerySolutionPhase queries the "solution_phase" edge of the SubcomponentPhaseStatus entity.
func (_m *SubcomponentPhaseStatus) QuerySolutionPhase() *SolutionPhaseQuery {
	return NewSubcomponentPhaseStatusClient(_m.config).QuerySolutionPhase(_m)
}

// Update returns a builder for updating this SubcomponentPhaseStatus.
// Note that you need to call SubcomponentPhaseStatus.Unwrap() before calling this method if this SubcomponentPhaseStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubcomponentPhaseStatus) Update() *SubcomponentPhaseStatusUpdateOne {
	return NewSubcomponentPhaseStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubcomponentPhaseStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubcomponentPhaseStatus) Unwrap() *SubcomponentPhaseStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubcomponentPhaseStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubcomponentPhaseStatus) String() string {
	var builder strings.Builder
	builder.WriteString("SubcomponentPhaseStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subcomponent_id=")
	builder.WriteString(_m.SubcomponentID)
	builder.WriteString(", ")
	builder.WriteString("solution_phase_id=")
	builder.WriteString(_m.SolutionPhaseID)
	builder.WriteString(", ")
	builder.WriteString("phase_id=")
	builder.WriteString(_m.PhaseID)
	builder.WriteString(", ")
	builder.WriteString("is_complete=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsComplete))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SubcomponentPhaseStatusSlice is a parsable slice of SubcomponentPhaseStatus.
type SubcomponentPhaseStatusSlice []*SubcomponentPhaseStatus
