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
)

// Solution is the model entity for the Solution schema.
type Solution struct {
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
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status solution.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority int `json:"priority,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// CurrentPhase holds the value of the "current_phase" field.
	CurrentPhase *string `json:"current_phase,omitempty"`
	// RagStatus holds the value of the "rag_status" field.
	RagStatus solution.RagStatus `json:"rag_status,omitempty"`
	// RagSource holds the value of the "rag_source" field.
	RagSource solution.RagSource `json:"rag_source,omitempty"`
	// RagReason holds the value of the "rag_reason" field.
	RagReason *string `json:"rag_reason,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SuccessCriteria holds the value of the "success_criteria" field.
	SuccessCriteria string `json:"success_criteria,omitempty"`
	// Owner holds the value of the "owner" field.
	Owner string `json:"owner,omitempty"`
	// Assignee holds the value of the "assignee" field.
	Assignee string `json:"assignee,omitempty"`
	// Approver holds the value of the "approver" field.
	Approver string `json:"approver,omitempty"`
	// KeyStakeholder holds the value of the "key_stakeholder" field.
	KeyStakeholder string `json:"key_stakeholder,omitempty"`
	// Blockers holds the value of the "blockers" field.
	Blockers string `json:"blockers,omitempty"`
	// Risks holds the value of the "risks" field.
	Risks string `json:"risks,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SolutionQuery when eager-loading is set.
	Edges        SolutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SolutionEdges holds the relations/edges for other nodes in the graph.
type SolutionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// SolutionPhases holds the value of the solution_phases edge.
	SolutionPhases []*SolutionPhase `json:"solution_phases,omitempty"`
	// Subcomponents holds the value of the subcomponents edge.
	Subcomponents []*Subcomponent `json:"subcomponents,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SolutionPhasesOrErr returns the SolutionPhases value or an error if the edge
// was not loaded in eager-loading.
func (e SolutionEdges) SolutionPhasesOrErr() ([]*SolutionPhase, error) {
	if e.loadedTypes[1] {
		return e.SolutionPhases, nil
	}
	return nil, &NotLoadedError{edge: "solution_phases"}
}

// SubcomponentsOrErr returns the Subcomponents value or an error if the edge
// was not loaded in eager-loading.
func (e SolutionEdges) SubcomponentsOrErr() ([]*Subcomponent, error) {
	if e.loadedTypes[2] {
		return e.Subcomponents, nil
	}
	return nil, &NotLoadedError{edge: "subcomponents"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Solution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solution.FieldPriority:
			values[i] = new(sql.NullInt64)
		case solution.FieldID, solution.FieldProjectID, solution.FieldName, solution.FieldVersion, solution.FieldStatus, solution.FieldCurrentPhase, solution.FieldRagStatus, solution.FieldRagSource, solution.FieldRagReason, solution.FieldDescription, solution.FieldSuccessCriteria, solution.FieldOwner, solution.FieldAssignee, solution.FieldApprover, solution.FieldKeyStakeholder, solution.FieldBlockers, solution.FieldRisks, solution.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case solution.FieldCreatedAt, solution.FieldUpdatedAt, solution.FieldDeletedAt, solution.FieldDueDate, solution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Solution fields.
func (_m *Solution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case solution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case solution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case solution.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case solution.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case solution.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case solution.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case solution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = solution.Status(value.String)
			}
		case solution.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case solution.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case solution.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = new(string)
				*_m.CurrentPhase = value.String
			}
		case solution.FieldRagStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rag_status", values[i])
			} else if value.Valid {
				_m.RagStatus = solution.RagStatus(value.String)
			}
		case solution.FieldRagSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rag_source", values[i])
			} else if value.Valid {
				_m.RagSource = solution.RagSource(value.String)
			}
		case solution.FieldRagReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rag_reason", values[i])
			} else if value.Valid {
				_m.RagReason = new(string)
				*_m.RagReason = value.String
			}
		case solution.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case solution.FieldSuccessCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field success_criteria", values[i])
			} else if value.Valid {
				_m.SuccessCriteria = value.String
			}
		case solution.FieldOwner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner", values[i])
			} else if value.Valid {
				_m.Owner = value.String
			}
		case solution.FieldAssignee:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignee", values[i])
			} else if value.Valid {
				_m.Assignee = value.String
			}
		case solution.FieldApprover:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field approver", values[i])
			} else if value.Valid {
				_m.Approver = value.String
			}
		case solution.FieldKeyStakeholder:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_stakeholder", values[i])
			} else if value.Valid {
				_m.KeyStakeholder = value.String
			}
		case solution.FieldBlockers:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blockers", values[i])
			} else if value.Valid {
				_m.Blockers = value.String
			}
		case solution.FieldRisks:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risks", values[i])
			} else if value.Valid {
				_m.Risks = value.String
			}
		case solution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case solution.FieldCreatedBy:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Solution.
// This includes values selected through modifiers, order, etc.
func (_m *Solution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Solution entity.
func (_m *Solution) QueryProject() *ProjectQuery {
	return NewSolutionClient(_m.config).QueryProject(_m)
}

// QuerySolutionPhases queries the "solution_phases" edge of the Solution entity.
func (_m *Solution) QuerySolutionPhases() *SolutionPhaseQuery {
	return NewSolutionClient(_m.config).QuerySolutionPhases(_m)
}

// QuerySubcomponents queries the "subcomponents" edge of the Solution entity.
func (_m *Solution) QuerySubcomponents() *SubcomponentQuery {
	return NewSolutionClient(_m.config).QuerySubcomponents(_m)
}

// Update returns a builder for updating this Solution.
// Note that you need to call Solution.Unwrap() before calling this method if this Solution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Solution) Update() *SolutionUpdateOne {
	return NewSolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Solution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Solution) Unwrap() *Solution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Solution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Solution) String() string {
	var builder strings.Builder
	builder.WriteString("Solution(")
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
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
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
	if v := _m.CurrentPhase; v != nil {
		builder.WriteString("current_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rag_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.RagStatus))
	builder.WriteString(", ")
	builder.WriteString("rag_source=")
	builder.WriteString(fmt.Sprintf("%v", _m.RagSource))
	builder.WriteString(", ")
	if v := _m.RagReason; v != nil {
		builder.WriteString("rag_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("success_criteria=")
	builder.WriteString(_m.SuccessCriteria)
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
	builder.WriteString("key_stakeholder=")
	builder.WriteString(_m.KeyStakeholder)
	builder.WriteString(", ")
	builder.WriteString("blockers=")
	builder.WriteString(_m.Blockers)
	builder.WriteString(", ")
	builder.WriteString("risks=")
	builder.WriteString(_m.Risks)
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

// Solutions is a parsable slice of Solution.
type Solutions []*Solution
