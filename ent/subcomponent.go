// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/project"
	"tracklite.io/tracklite/ent/solution"
	"tracklite.io/tracklite/ent/subcomponent"
)

// Subcomponent is the model entity for the Subcomponent schema.
type Subcomponent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// SolutionID holds the value of the "solution_id" field.
	SolutionID string `json:"solution_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status subcomponent.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// SubPhase holds the value of the "sub_phase" field.
	SubPhase *string `json:"sub_phase,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Dependencies holds the value of the "dependencies" field.
	Dependencies string `json:"dependencies,omitempty"`
	// WorkEstimate holds the value of the "work_estimate" field.
	WorkEstimate float64 `json:"work_estimate,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Assignee holds the value of the "assignee" field.
	Assignee string `json:"assignee,omitempty"`
	// Approver holds the value of the "approver" field.
	Approver string `json:"approver,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubcomponentQuery when eager-loading is set.
	Edges        SubcomponentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubcomponentEdges holds the relations/edges for other nodes in the graph.
type SubcomponentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Solution holds the value of the solution edge.
	Solution *Solution `json:"solution,omitempty"`
	// PhaseStatuses holds the value of the phase_statuses edge.
	PhaseStatuses []*SubcomponentPhaseStatus `json:"phase_statuses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubcomponentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SolutionOrErr returns the Solution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubcomponentEdges) SolutionOrErr() (*Solution, error) {
	if e.Solution != nil {
		return e.Solution, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: solution.Label}
	}
	return nil, &NotLoadedError{edge: "solution"}
}

// PhaseStatusesOrErr returns the PhaseStatuses value or an error if the edge
// was not loaded in eager-loading.
func (e SubcomponentEdges) PhaseStatusesOrErr() ([]*SubcomponentPhaseStatus, error) {
	if e.loadedTypes[2] {
		return e.PhaseStatuses, nil
	}
	return nil, &NotLoadedError{edge: "phase_statuses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subcomponent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subcomponent.FieldWorkEstimate:
			values[i] = new(sql.NullFloat64)
		case subcomponent.FieldPriority:
			values[i] = new(sql.NullInt64)
		case subcomponent.FieldID, subcomponent.FieldProjectID, subcomponent.FieldSolutionID, subcomponent.FieldName, subcomponent.FieldStatus, subcomponent.FieldSubPhase, subcomponent.FieldDescription, subcomponent.FieldNotes, subcomponent.FieldCategory, subcomponent.FieldDependencies, subcomponent.FieldOwner, subcomponent.FieldAssignee, subcomponent.FieldApprover, subcomponent.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case subcomponent.FieldCreatedAt, subcomponent.FieldUpdatedAt, subcomponent.FieldDeletedAt, subcomponent.FieldDueDate, subcomponent.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subcomponent fields.
func (_m *Subcomponent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subcomponent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case subcomponent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case subcomponent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case subcomponent.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case subcomponent.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case subcomponent.FieldSolutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field solution_id", values[i])
			} else if value.Valid {
				_m.SolutionID = value.String
			}
		case subcomponent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case subcomponent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = subcomponent.Status(value.String)
			}
		case subcomponent.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case subcomponent.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case subcomponent.FieldSubPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_phase", values[i])
			} else if value.Valid {
				_m.SubPhase = new(string)
				*_m.SubPhase = value.String
			}
		case subcomponent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case subcomponent.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case subcomponent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case subcomponent.FieldDependencies:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value.Valid {
				_m.Dependencies = value.String
			}
		case subcomponent.FieldWorkEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field work_estimate", values[i])
			} else if value.Valid {
				_m.WorkEstimate = value.Float64
			}
		case subcomponent.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case subcomponent.FieldAssignee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee", values[i])
			} else if value.Valid {
				_m.Assignee = value.String
			}
		case subcomponent.FieldApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver", values[i])
			} else if value.Valid {
				_m.Approver = value.String
			}
		case subcomponent.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case subcomponent.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subcomponent.
// This includes values selected through modifiers, order, etc.
func (_m *Subcomponent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Subcomponent entity.
func (_m *Subcomponent) QueryProject() *ProjectQuery {
	return NewSubcomponentClient(_m.config).QueryProject(_m)
}

// QuerySolution queries the "solution" edge of the Subcomponent entity.
func (_m *Subcomponent) QuerySolution() *SolutionQuery {
	return NewSubcomponentClient(_m.config).QuerySolution(_m)
}

// QueryPhaseStatuses queries the "phase_statuses" edge of the Subcomponent entity.
func (_m *Subcomponent) QueryPhaseStatuses() *SubcomponentPhaseStatusQuery {
	return NewSubcomponentClient(_m.config).QueryPhaseStatuses(_m)
}

// Update returns a builder for updating this Subcomponent.
// Note that you need to call Subcomponent.Unwrap() before calling this method if this Subcomponent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subcomponent) Update() *SubcomponentUpdateOne {
	return NewSubcomponentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subcomponent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subcomponent) Unwrap() *Subcomponent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subcomponent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subcomponent) String() string {
	var builder strings.Builder
	builder.WriteString("Subcomponent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("solution_id=")
	builder.WriteString(_m.SolutionID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SubPhase; v != nil {
		builder.WriteString("sub_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(_m.Dependencies)
	builder.WriteString(", ")
	builder.WriteString("work_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.WorkEstimate))
	builder.WriteString(", ")
	builder.WriteString("owner=")
	builder.WriteString(_m.Owner)
	builder.WriteString(", ")
	builder.WriteString("assignee=")
	builder.WriteString(_m.Assignee)
	builder.WriteString(", ")
	builder.WriteString("approver=")
	builder.WriteString(_m.Approver)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(_m.CreatedBy)
	builder.WriteByte(')')
	return builder.String()
}

// Subcomponents is a parsable slice of Subcomponent.
type Subcomponents []*Subcomponent
