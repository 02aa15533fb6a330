// Code generated by ent, DO NOT EDIT.

package solution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDeletedAt, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldName, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldVersion, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldPriority, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDueDate, v))
}

// CurrentPhase applies equality check predicate on the "current_phase" field. It's identical to CurrentPhaseEQ.
func CurrentPhase(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCurrentPhase, v))
}

// RagReason applies equality check predicate on the "rag_reason" field. It's identical to RagReasonEQ.
func RagReason(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRagReason, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDescription, v))
}

// SuccessCriteria applies equality check predicate on the "success_criteria" field. It's identical to SuccessCriteriaEQ.
func SuccessCriteria(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSuccessCriteria, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldOwner, v))
}

// Assignee applies equality check predicate on the "assignee" field. It's identical to AssigneeEQ.
func Assignee(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldAssignee, v))
}

// Approver applies equality check predicate on the "approver" field. It's identical to ApproverEQ.
func Approver(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldApprover, v))
}

// KeyStakeholder applies equality check predicate on the "key_stakeholder" field. It's identical to KeyStakeholderEQ.
func KeyStakeholder(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldKeyStakeholder, v))
}

// Blockers applies equality check predicate on the "blockers" field. It's identical to BlockersEQ.
func Blockers(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldBlockers, v))
}

// Risks applies equality check predicate on the "risks" field. It's identical to RisksEQ.
func Risks(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRisks, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldDeletedAt))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldName, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldPriority, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldDueDate))
}

// CurrentPhaseEQ applies the EQ predicate on the "current_phase" field.
func CurrentPhaseEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCurrentPhase, v))
}

// CurrentPhaseNEQ applies the NEQ predicate on the "current_phase" field.
func CurrentPhaseNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCurrentPhase, v))
}

// CurrentPhaseIn applies the In predicate on the "current_phase" field.
func CurrentPhaseIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseNotIn applies the NotIn predicate on the "current_phase" field.
func CurrentPhaseNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCurrentPhase, vs...))
}

// CurrentPhaseGT applies the GT predicate on the "current_phase" field.
func CurrentPhaseGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCurrentPhase, v))
}

// CurrentPhaseGTE applies the GTE predicate on the "current_phase" field.
func CurrentPhaseGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCurrentPhase, v))
}

// CurrentPhaseLT applies the LT predicate on the "current_phase" field.
func CurrentPhaseLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCurrentPhase, v))
}

// CurrentPhaseLTE applies the LTE predicate on the "current_phase" field.
func CurrentPhaseLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCurrentPhase, v))
}

// CurrentPhaseContains applies the Contains predicate on the "current_phase" field.
func CurrentPhaseContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldCurrentPhase, v))
}

// CurrentPhaseHasPrefix applies the HasPrefix predicate on the "current_phase" field.
func CurrentPhaseHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldCurrentPhase, v))
}

// CurrentPhaseHasSuffix applies the HasSuffix predicate on the "current_phase" field.
func CurrentPhaseHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldCurrentPhase, v))
}

// CurrentPhaseIsNil applies the IsNil predicate on the "current_phase" field.
func CurrentPhaseIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldCurrentPhase))
}

// CurrentPhaseNotNil applies the NotNil predicate on the "current_phase" field.
func CurrentPhaseNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldCurrentPhase))
}

// CurrentPhaseEqualFold applies the EqualFold predicate on the "current_phase" field.
func CurrentPhaseEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldCurrentPhase, v))
}

// CurrentPhaseContainsFold applies the ContainsFold predicate on the "current_phase" field.
func CurrentPhaseContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldCurrentPhase, v))
}

// RagStatusEQ applies the EQ predicate on the "rag_status" field.
func RagStatusEQ(v RagStatus) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRagStatus, v))
}

// RagStatusNEQ applies the NEQ predicate on the "rag_status" field.
func RagStatusNEQ(v RagStatus) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldRagStatus, v))
}

// RagStatusIn applies the In predicate on the "rag_status" field.
func RagStatusIn(vs ...RagStatus) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldRagStatus, vs...))
}

// RagStatusNotIn applies the NotIn predicate on the "rag_status" field.
func RagStatusNotIn(vs ...RagStatus) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldRagStatus, vs...))
}

// RagSourceEQ applies the EQ predicate on the "rag_source" field.
func RagSourceEQ(v RagSource) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRagSource, v))
}

// RagSourceNEQ applies the NEQ predicate on the "rag_source" field.
func RagSourceNEQ(v RagSource) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldRagSource, v))
}

// RagSourceIn applies the In predicate on the "rag_source" field.
func RagSourceIn(vs ...RagSource) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldRagSource, vs...))
}

// RagSourceNotIn applies the NotIn predicate on the "rag_source" field.
func RagSourceNotIn(vs ...RagSource) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldRagSource, vs...))
}

// RagReasonEQ applies the EQ predicate on the "rag_reason" field.
func RagReasonEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRagReason, v))
}

// RagReasonNEQ applies the NEQ predicate on the "rag_reason" field.
func RagReasonNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldRagReason, v))
}

// RagReasonIn applies the In predicate on the "rag_reason" field.
func RagReasonIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldRagReason, vs...))
}

// RagReasonNotIn applies the NotIn predicate on the "rag_reason" field.
func RagReasonNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldRagReason, vs...))
}

// RagReasonGT applies the GT predicate on the "rag_reason" field.
func RagReasonGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldRagReason, v))
}

// RagReasonGTE applies the GTE predicate on the "rag_reason" field.
func RagReasonGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldRagReason, v))
}

// RagReasonLT applies the LT predicate on the "rag_reason" field.
func RagReasonLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldRagReason, v))
}

// RagReasonLTE applies the LTE predicate on the "rag_reason" field.
func RagReasonLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldRagReason, v))
}

// RagReasonContains applies the Contains predicate on the "rag_reason" field.
func RagReasonContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldRagReason, v))
}

// RagReasonHasPrefix applies the HasPrefix predicate on the "rag_reason" field.
func RagReasonHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldRagReason, v))
}

// RagReasonHasSuffix applies the HasSuffix predicate on the "rag_reason" field.
func RagReasonHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldRagReason, v))
}

// RagReasonIsNil applies the IsNil predicate on the "rag_reason" field.
func RagReasonIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldRagReason))
}

// RagReasonNotNil applies the NotNil predicate on the "rag_reason" field.
func RagReasonNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldRagReason))
}

// RagReasonEqualFold applies the EqualFold predicate on the "rag_reason" field.
func RagReasonEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldRagReason, v))
}

// RagReasonContainsFold applies the ContainsFold predicate on the "rag_reason" field.
func RagReasonContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldRagReason, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldDescription, v))
}

// SuccessCriteriaEQ applies the EQ predicate on the "success_criteria" field.
func SuccessCriteriaEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaNEQ applies the NEQ predicate on the "success_criteria" field.
func SuccessCriteriaNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldSuccessCriteria, v))
}

// SuccessCriteriaIn applies the In predicate on the "success_criteria" field.
func SuccessCriteriaIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaNotIn applies the NotIn predicate on the "success_criteria" field.
func SuccessCriteriaNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldSuccessCriteria, vs...))
}

// SuccessCriteriaGT applies the GT predicate on the "success_criteria" field.
func SuccessCriteriaGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldSuccessCriteria, v))
}

// SuccessCriteriaGTE applies the GTE predicate on the "success_criteria" field.
func SuccessCriteriaGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaLT applies the LT predicate on the "success_criteria" field.
func SuccessCriteriaLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldSuccessCriteria, v))
}

// SuccessCriteriaLTE applies the LTE predicate on the "success_criteria" field.
func SuccessCriteriaLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldSuccessCriteria, v))
}

// SuccessCriteriaContains applies the Contains predicate on the "success_criteria" field.
func SuccessCriteriaContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasPrefix applies the HasPrefix predicate on the "success_criteria" field.
func SuccessCriteriaHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldSuccessCriteria, v))
}

// SuccessCriteriaHasSuffix applies the HasSuffix predicate on the "success_criteria" field.
func SuccessCriteriaHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldSuccessCriteria, v))
}

// SuccessCriteriaIsNil applies the IsNil predicate on the "success_criteria" field.
func SuccessCriteriaIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldSuccessCriteria))
}

// SuccessCriteriaNotNil applies the NotNil predicate on the "success_criteria" field.
func SuccessCriteriaNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldSuccessCriteria))
}

// SuccessCriteriaEqualFold applies the EqualFold predicate on the "success_criteria" field.
func SuccessCriteriaEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldSuccessCriteria, v))
}

// SuccessCriteriaContainsFold applies the ContainsFold predicate on the "success_criteria" field.
func SuccessCriteriaContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldSuccessCriteria, v))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldOwner, v))
}

// AssigneeEQ applies the EQ predicate on the "assignee" field.
func AssigneeEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldAssignee, v))
}

// AssigneeNEQ applies the NEQ predicate on the "assignee" field.
func AssigneeNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldAssignee, v))
}

// AssigneeIn applies the In predicate on the "assignee" field.
func AssigneeIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldAssignee, vs...))
}

// AssigneeNotIn applies the NotIn predicate on the "assignee" field.
func AssigneeNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldAssignee, vs...))
}

// AssigneeGT applies the GT predicate on the "assignee" field.
func AssigneeGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldAssignee, v))
}

// AssigneeGTE applies the GTE predicate on the "assignee" field.
func AssigneeGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldAssignee, v))
}

// AssigneeLT applies the LT predicate on the "assignee" field.
func AssigneeLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldAssignee, v))
}

// AssigneeLTE applies the LTE predicate on the "assignee" field.
func AssigneeLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldAssignee, v))
}

// AssigneeContains applies the Contains predicate on the "assignee" field.
func AssigneeContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldAssignee, v))
}

// AssigneeHasPrefix applies the HasPrefix predicate on the "assignee" field.
func AssigneeHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldAssignee, v))
}

// AssigneeHasSuffix applies the HasSuffix predicate on the "assignee" field.
func AssigneeHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldAssignee, v))
}

// AssigneeEqualFold applies the EqualFold predicate on the "assignee" field.
func AssigneeEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldAssignee, v))
}

// AssigneeContainsFold applies the ContainsFold predicate on the "assignee" field.
func AssigneeContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldAssignee, v))
}

// ApproverEQ applies the EQ predicate on the "approver" field.
func ApproverEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldApprover, v))
}

// ApproverNEQ applies the NEQ predicate on the "approver" field.
func ApproverNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldApprover, v))
}

// ApproverIn applies the In predicate on the "approver" field.
func ApproverIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldApprover, vs...))
}

// ApproverNotIn applies the NotIn predicate on the "approver" field.
func ApproverNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldApprover, vs...))
}

// ApproverGT applies the GT predicate on the "approver" field.
func ApproverGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldApprover, v))
}

// ApproverGTE applies the GTE predicate on the "approver" field.
func ApproverGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldApprover, v))
}

// ApproverLT applies the LT predicate on the "approver" field.
func ApproverLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldApprover, v))
}

// ApproverLTE applies the LTE predicate on the "approver" field.
func ApproverLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldApprover, v))
}

// ApproverContains applies the Contains predicate on the "approver" field.
func ApproverContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldApprover, v))
}

// ApproverHasPrefix applies the HasPrefix predicate on the "approver" field.
func ApproverHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldApprover, v))
}

// ApproverHasSuffix applies the HasSuffix predicate on the "approver" field.
func ApproverHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldApprover, v))
}

// ApproverIsNil applies the IsNil predicate on the "approver" field.
func ApproverIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldApprover))
}

// ApproverNotNil applies the NotNil predicate on the "approver" field.
func ApproverNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldApprover))
}

// ApproverEqualFold applies the EqualFold predicate on the "approver" field.
func ApproverEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldApprover, v))
}

// ApproverContainsFold applies the ContainsFold predicate on the "approver" field.
func ApproverContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldApprover, v))
}

// KeyStakeholderEQ applies the EQ predicate on the "key_stakeholder" field.
func KeyStakeholderEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldKeyStakeholder, v))
}

// KeyStakeholderNEQ applies the NEQ predicate on the "key_stakeholder" field.
func KeyStakeholderNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldKeyStakeholder, v))
}

// KeyStakeholderIn applies the In predicate on the "key_stakeholder" field.
func KeyStakeholderIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldKeyStakeholder, vs...))
}

// KeyStakeholderNotIn applies the NotIn predicate on the "key_stakeholder" field.
func KeyStakeholderNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldKeyStakeholder, vs...))
}

// KeyStakeholderGT applies the GT predicate on the "key_stakeholder" field.
func KeyStakeholderGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldKeyStakeholder, v))
}

// KeyStakeholderGTE applies the GTE predicate on the "key_stakeholder" field.
func KeyStakeholderGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldKeyStakeholder, v))
}

// KeyStakeholderLT applies the LT predicate on the "key_stakeholder" field.
func KeyStakeholderLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldKeyStakeholder, v))
}

// KeyStakeholderLTE applies the LTE predicate on the "key_stakeholder" field.
func KeyStakeholderLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldKeyStakeholder, v))
}

// KeyStakeholderContains applies the Contains predicate on the "key_stakeholder" field.
func KeyStakeholderContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldKeyStakeholder, v))
}

// KeyStakeholderHasPrefix applies the HasPrefix predicate on the "key_stakeholder" field.
func KeyStakeholderHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldKeyStakeholder, v))
}

// KeyStakeholderHasSuffix applies the HasSuffix predicate on the "key_stakeholder" field.
func KeyStakeholderHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldKeyStakeholder, v))
}

// KeyStakeholderIsNil applies the IsNil predicate on the "key_stakeholder" field.
func KeyStakeholderIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldKeyStakeholder))
}

// KeyStakeholderNotNil applies the NotNil predicate on the "key_stakeholder" field.
func KeyStakeholderNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldKeyStakeholder))
}

// KeyStakeholderEqualFold applies the EqualFold predicate on the "key_stakeholder" field.
func KeyStakeholderEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldKeyStakeholder, v))
}

// KeyStakeholderContainsFold applies the ContainsFold predicate on the "key_stakeholder" field.
func KeyStakeholderContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldKeyStakeholder, v))
}

// BlockersEQ applies the EQ predicate on the "blockers" field.
func BlockersEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldBlockers, v))
}

// BlockersNEQ applies the NEQ predicate on the "blockers" field.
func BlockersNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldBlockers, v))
}

// BlockersIn applies the In predicate on the "blockers" field.
func BlockersIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldBlockers, vs...))
}

// BlockersNotIn applies the NotIn predicate on the "blockers" field.
func BlockersNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldBlockers, vs...))
}

// BlockersGT applies the GT predicate on the "blockers" field.
func BlockersGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldBlockers, v))
}

// BlockersGTE applies the GTE predicate on the "blockers" field.
func BlockersGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldBlockers, v))
}

// BlockersLT applies the LT predicate on the "blockers" field.
func BlockersLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldBlockers, v))
}

// BlockersLTE applies the LTE predicate on the "blockers" field.
func BlockersLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldBlockers, v))
}

// BlockersContains applies the Contains predicate on the "blockers" field.
func BlockersContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldBlockers, v))
}

// BlockersHasPrefix applies the HasPrefix predicate on the "blockers" field.
func BlockersHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldBlockers, v))
}

// BlockersHasSuffix applies the HasSuffix predicate on the "blockers" field.
func BlockersHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldBlockers, v))
}

// BlockersIsNil applies the IsNil predicate on the "blockers" field.
func BlockersIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldBlockers))
}

// BlockersNotNil applies the NotNil predicate on the "blockers" field.
func BlockersNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldBlockers))
}

// BlockersEqualFold applies the EqualFold predicate on the "blockers" field.
func BlockersEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldBlockers, v))
}

// BlockersContainsFold applies the ContainsFold predicate on the "blockers" field.
func BlockersContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldBlockers, v))
}

// RisksEQ applies the EQ predicate on the "risks" field.
func RisksEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRisks, v))
}

// RisksNEQ applies the NEQ predicate on the "risks" field.
func RisksNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldRisks, v))
}

// RisksIn applies the In predicate on the "risks" field.
func RisksIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldRisks, vs...))
}

// RisksNotIn applies the NotIn predicate on the "risks" field.
func RisksNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldRisks, vs...))
}

// RisksGT applies the GT predicate on the "risks" field.
func RisksGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldRisks, v))
}

// RisksGTE applies the GTE predicate on the "risks" field.
func RisksGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldRisks, v))
}

// RisksLT applies the LT predicate on the "risks" field.
func RisksLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldRisks, v))
}

// RisksLTE applies the LTE predicate on the "risks" field.
func RisksLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldRisks, v))
}

// RisksContains applies the Contains predicate on the "risks" field.
func RisksContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldRisks, v))
}

// RisksHasPrefix applies the HasPrefix predicate on the "risks" field.
func RisksHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldRisks, v))
}

// RisksHasSuffix applies the HasSuffix predicate on the "risks" field.
func RisksHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldRisks, v))
}

// RisksIsNil applies the IsNil predicate on the "risks" field.
func RisksIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldRisks))
}

// RisksNotNil applies the NotNil predicate on the "risks" field.
func RisksNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldRisks))
}

// RisksEqualFold applies the EqualFold predicate on the "risks" field.
func RisksEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldRisks, v))
}

// RisksContainsFold applies the ContainsFold predicate on the "risks" field.
func RisksContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldRisks, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldCreatedBy, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolutionPhases applies the HasEdge predicate on the "solution_phases" edge.
func HasSolutionPhases() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SolutionPhasesTable, SolutionPhasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionPhasesWith applies the HasEdge predicate on the "solution_phases" edge with a given conditions (other predicates).
func HasSolutionPhasesWith(preds ...predicate.SolutionPhase) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newSolutionPhasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubcomponents applies the HasEdge predicate on the "subcomponents" edge.
func HasSubcomponents() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubcomponentsTable, SubcomponentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubcomponentsWith applies the HasEdge predicate on the "subcomponents" edge with a given conditions (other predicates).
func HasSubcomponentsWith(preds ...predicate.Subcomponent) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newSubcomponentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.NotPredicates(p))
}
