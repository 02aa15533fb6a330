// Code generated by ent, DO NOT EDIT.

package subcomponent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDeletedAt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldProjectID, v))
}

// SolutionID applies equality check predicate on the "solution_id" field. It's identical to SolutionIDEQ.
func SolutionID(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldSolutionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldName, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldPriority, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDueDate, v))
}

// SubPhase applies equality check predicate on the "sub_phase" field. It's identical to SubPhaseEQ.
func SubPhase(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldSubPhase, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDescription, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldNotes, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCategory, v))
}

// Dependencies applies equality check predicate on the "dependencies" field. It's identical to DependenciesEQ.
func Dependencies(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDependencies, v))
}

// WorkEstimate applies equality check predicate on the "work_estimate" field. It's identical to WorkEstimateEQ.
func WorkEstimate(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldWorkEstimate, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldOwner, v))
}

// Assignee applies equality check predicate on the "assignee" field. It's identical to AssigneeEQ.
func Assignee(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldAssignee, v))
}

// Approver applies equality check predicate on the "approver" field. It's identical to ApproverEQ.
func Approver(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldApprover, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldDeletedAt))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldProjectID, v))
}

// SolutionIDEQ applies the EQ predicate on the "solution_id" field.
func SolutionIDEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldSolutionID, v))
}

// SolutionIDNEQ applies the NEQ predicate on the "solution_id" field.
func SolutionIDNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldSolutionID, v))
}

// SolutionIDIn applies the In predicate on the "solution_id" field.
func SolutionIDIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldSolutionID, vs...))
}

// SolutionIDNotIn applies the NotIn predicate on the "solution_id" field.
func SolutionIDNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldSolutionID, vs...))
}

// SolutionIDGT applies the GT predicate on the "solution_id" field.
func SolutionIDGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldSolutionID, v))
}

// SolutionIDGTE applies the GTE predicate on the "solution_id" field.
func SolutionIDGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldSolutionID, v))
}

// SolutionIDLT applies the LT predicate on the "solution_id" field.
func SolutionIDLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldSolutionID, v))
}

// SolutionIDLTE applies the LTE predicate on the "solution_id" field.
func SolutionIDLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldSolutionID, v))
}

// SolutionIDContains applies the Contains predicate on the "solution_id" field.
func SolutionIDContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldSolutionID, v))
}

// SolutionIDHasPrefix applies the HasPrefix predicate on the "solution_id" field.
func SolutionIDHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldSolutionID, v))
}

// SolutionIDHasSuffix applies the HasSuffix predicate on the "solution_id" field.
func SolutionIDHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldSolutionID, v))
}

// SolutionIDEqualFold applies the EqualFold predicate on the "solution_id" field.
func SolutionIDEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldSolutionID, v))
}

// SolutionIDContainsFold applies the ContainsFold predicate on the "solution_id" field.
func SolutionIDContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldSolutionID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldPriority, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldDueDate))
}

// SubPhaseEQ applies the EQ predicate on the "sub_phase" field.
func SubPhaseEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldSubPhase, v))
}

// SubPhaseNEQ applies the NEQ predicate on the "sub_phase" field.
func SubPhaseNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldSubPhase, v))
}

// SubPhaseIn applies the In predicate on the "sub_phase" field.
func SubPhaseIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldSubPhase, vs...))
}

// SubPhaseNotIn applies the NotIn predicate on the "sub_phase" field.
func SubPhaseNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldSubPhase, vs...))
}

// SubPhaseGT applies the GT predicate on the "sub_phase" field.
func SubPhaseGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldSubPhase, v))
}

// SubPhaseGTE applies the GTE predicate on the "sub_phase" field.
func SubPhaseGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldSubPhase, v))
}

// SubPhaseLT applies the LT predicate on the "sub_phase" field.
func SubPhaseLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldSubPhase, v))
}

// SubPhaseLTE applies the LTE predicate on the "sub_phase" field.
func SubPhaseLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldSubPhase, v))
}

// SubPhaseContains applies the Contains predicate on the "sub_phase" field.
func SubPhaseContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldSubPhase, v))
}

// SubPhaseHasPrefix applies the HasPrefix predicate on the "sub_phase" field.
func SubPhaseHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldSubPhase, v))
}

// SubPhaseHasSuffix applies the HasSuffix predicate on the "sub_phase" field.
func SubPhaseHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldSubPhase, v))
}

// SubPhaseIsNil applies the IsNil predicate on the "sub_phase" field.
func SubPhaseIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldSubPhase))
}

// SubPhaseNotNil applies the NotNil predicate on the "sub_phase" field.
func SubPhaseNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldSubPhase))
}

// SubPhaseEqualFold applies the EqualFold predicate on the "sub_phase" field.
func SubPhaseEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldSubPhase, v))
}

// SubPhaseContainsFold applies the ContainsFold predicate on the "sub_phase" field.
func SubPhaseContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldSubPhase, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldDescription, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldNotes, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldCategory, v))
}

// DependenciesEQ applies the EQ predicate on the "dependencies" field.
func DependenciesEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldDependencies, v))
}

// DependenciesNEQ applies the NEQ predicate on the "dependencies" field.
func DependenciesNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldDependencies, v))
}

// DependenciesIn applies the In predicate on the "dependencies" field.
func DependenciesIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldDependencies, vs...))
}

// DependenciesNotIn applies the NotIn predicate on the "dependencies" field.
func DependenciesNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldDependencies, vs...))
}

// DependenciesGT applies the GT predicate on the "dependencies" field.
func DependenciesGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldDependencies, v))
}

// DependenciesGTE applies the GTE predicate on the "dependencies" field.
func DependenciesGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldDependencies, v))
}

// DependenciesLT applies the LT predicate on the "dependencies" field.
func DependenciesLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldDependencies, v))
}

// DependenciesLTE applies the LTE predicate on the "dependencies" field.
func DependenciesLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldDependencies, v))
}

// DependenciesContains applies the Contains predicate on the "dependencies" field.
func DependenciesContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldDependencies, v))
}

// DependenciesHasPrefix applies the HasPrefix predicate on the "dependencies" field.
func DependenciesHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldDependencies, v))
}

// DependenciesHasSuffix applies the HasSuffix predicate on the "dependencies" field.
func DependenciesHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldDependencies, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldDependencies))
}

// DependenciesEqualFold applies the EqualFold predicate on the "dependencies" field.
func DependenciesEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldDependencies, v))
}

// DependenciesContainsFold applies the ContainsFold predicate on the "dependencies" field.
func DependenciesContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldDependencies, v))
}

// WorkEstimateEQ applies the EQ predicate on the "work_estimate" field.
func WorkEstimateEQ(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldWorkEstimate, v))
}

// WorkEstimateNEQ applies the NEQ predicate on the "work_estimate" field.
func WorkEstimateNEQ(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldWorkEstimate, v))
}

// WorkEstimateIn applies the In predicate on the "work_estimate" field.
func WorkEstimateIn(vs ...float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldWorkEstimate, vs...))
}

// WorkEstimateNotIn applies the NotIn predicate on the "work_estimate" field.
func WorkEstimateNotIn(vs ...float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldWorkEstimate, vs...))
}

// WorkEstimateGT applies the GT predicate on the "work_estimate" field.
func WorkEstimateGT(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldWorkEstimate, v))
}

// WorkEstimateGTE applies the GTE predicate on the "work_estimate" field.
func WorkEstimateGTE(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldWorkEstimate, v))
}

// WorkEstimateLT applies the LT predicate on the "work_estimate" field.
func WorkEstimateLT(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldWorkEstimate, v))
}

// WorkEstimateLTE applies the LTE predicate on the "work_estimate" field.
func WorkEstimateLTE(v float64) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldWorkEstimate, v))
}

// WorkEstimateIsNil applies the IsNil predicate on the "work_estimate" field.
func WorkEstimateIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldWorkEstimate))
}

// WorkEstimateNotNil applies the NotNil predicate on the "work_estimate" field.
func WorkEstimateNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldWorkEstimate))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldOwner, v))
}

// AssigneeEQ applies the EQ predicate on the "assignee" field.
func AssigneeEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldAssignee, v))
}

// AssigneeNEQ applies the NEQ predicate on the "assignee" field.
func AssigneeNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldAssignee, v))
}

// AssigneeIn applies the In predicate on the "assignee" field.
func AssigneeIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldAssignee, vs...))
}

// AssigneeNotIn applies the NotIn predicate on the "assignee" field.
func AssigneeNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldAssignee, vs...))
}

// AssigneeGT applies the GT predicate on the "assignee" field.
func AssigneeGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldAssignee, v))
}

// AssigneeGTE applies the GTE predicate on the "assignee" field.
func AssigneeGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldAssignee, v))
}

// AssigneeLT applies the LT predicate on the "assignee" field.
func AssigneeLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldAssignee, v))
}

// AssigneeLTE applies the LTE predicate on the "assignee" field.
func AssigneeLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldAssignee, v))
}

// AssigneeContains applies the Contains predicate on the "assignee" field.
func AssigneeContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldAssignee, v))
}

// AssigneeHasPrefix applies the HasPrefix predicate on the "assignee" field.
func AssigneeHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldAssignee, v))
}

// AssigneeHasSuffix applies the HasSuffix predicate on the "assignee" field.
func AssigneeHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldAssignee, v))
}

// AssigneeEqualFold applies the EqualFold predicate on the "assignee" field.
func AssigneeEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldAssignee, v))
}

// AssigneeContainsFold applies the ContainsFold predicate on the "assignee" field.
func AssigneeContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldAssignee, v))
}

// ApproverEQ applies the EQ predicate on the "approver" field.
func ApproverEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldApprover, v))
}

// ApproverNEQ applies the NEQ predicate on the "approver" field.
func ApproverNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldApprover, v))
}

// ApproverIn applies the In predicate on the "approver" field.
func ApproverIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldApprover, vs...))
}

// ApproverNotIn applies the NotIn predicate on the "approver" field.
func ApproverNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldApprover, vs...))
}

// ApproverGT applies the GT predicate on the "approver" field.
func ApproverGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldApprover, v))
}

// ApproverGTE applies the GTE predicate on the "approver" field.
func ApproverGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldApprover, v))
}

// ApproverLT applies the LT predicate on the "approver" field.
func ApproverLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldApprover, v))
}

// ApproverLTE applies the LTE predicate on the "approver" field.
func ApproverLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldApprover, v))
}

// ApproverContains applies the Contains predicate on the "approver" field.
func ApproverContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldApprover, v))
}

// ApproverHasPrefix applies the HasPrefix predicate on the "approver" field.
func ApproverHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldApprover, v))
}

// ApproverHasSuffix applies the HasSuffix predicate on the "approver" field.
func ApproverHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldApprover, v))
}

// ApproverIsNil applies the IsNil predicate on the "approver" field.
func ApproverIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldApprover))
}

// ApproverNotNil applies the NotNil predicate on the "approver" field.
func ApproverNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldApprover))
}

// ApproverEqualFold applies the EqualFold predicate on the "approver" field.
func ApproverEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldApprover, v))
}

// ApproverContainsFold applies the ContainsFold predicate on the "approver" field.
func ApproverContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldApprover, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Subcomponent {
	return predicate.Subcomponent(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolution applies the HasEdge predicate on the "solution" edge.
func HasSolution() predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionWith applies the HasEdge predicate on the "solution" edge with a given conditions (other predicates).
func HasSolutionWith(preds ...predicate.Solution) predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := newSolutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhaseStatuses applies the HasEdge predicate on the "phase_statuses" edge.
func HasPhaseStatuses() predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhaseStatusesTable, PhaseStatusesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhaseStatusesWith applies the HasEdge predicate on the "phase_statuses" edge with a given conditions (other predicates).
func HasPhaseStatusesWith(preds ...predicate.SubcomponentPhaseStatus) predicate.Subcomponent {
	return predicate.Subcomponent(func(s *sql.Selector) {
		step := newPhaseStatusesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subcomponent) predicate.Subcomponent {
	return predicate.Subcomponent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subcomponent) predicate.Subcomponent {
	return predicate.Subcomponent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subcomponent) predicate.Subcomponent {
	return predicate.Subcomponent(sql.NotPredicates(p))
}
