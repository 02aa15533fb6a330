// Code generated by ent, DO NOT EDIT.

package phase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldUpdatedAt, v))
}

// PhaseGroup applies equality check predicate on the "phase_group" field. It's identical to PhaseGroupEQ.
func PhaseGroup(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldPhaseGroup, v))
}

// PhaseName applies equality check predicate on the "phase_name" field. It's identical to PhaseNameEQ.
func PhaseName(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldPhaseName, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldSequence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldUpdatedAt, v))
}

// PhaseGroupEQ applies the EQ predicate on the "phase_group" field.
func PhaseGroupEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldPhaseGroup, v))
}

// PhaseGroupNEQ applies the NEQ predicate on the "phase_group" field.
func PhaseGroupNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldPhaseGroup, v))
}

// PhaseGroupIn applies the In predicate on the "phase_group" field.
func PhaseGroupIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldPhaseGroup, vs...))
}

// PhaseGroupNotIn applies the NotIn predicate on the "phase_group" field.
func PhaseGroupNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldPhaseGroup, vs...))
}

// PhaseGroupGT applies the GT predicate on the "phase_group" field.
func PhaseGroupGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldPhaseGroup, v))
}

// PhaseGroupGTE applies the GTE predicate on the "phase_group" field.
func PhaseGroupGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldPhaseGroup, v))
}

// PhaseGroupLT applies the LT predicate on the "phase_group" field.
func PhaseGroupLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldPhaseGroup, v))
}

// PhaseGroupLTE applies the LTE predicate on the "phase_group" field.
func PhaseGroupLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldPhaseGroup, v))
}

// PhaseGroupContains applies the Contains predicate on the "phase_group" field.
func PhaseGroupContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldPhaseGroup, v))
}

// PhaseGroupHasPrefix applies the HasPrefix predicate on the "phase_group" field.
func PhaseGroupHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldPhaseGroup, v))
}

// PhaseGroupHasSuffix applies the HasSuffix predicate on the "phase_group" field.
func PhaseGroupHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldPhaseGroup, v))
}

// PhaseGroupEqualFold applies the EqualFold predicate on the "phase_group" field.
func PhaseGroupEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldPhaseGroup, v))
}

// PhaseGroupContainsFold applies the ContainsFold predicate on the "phase_group" field.
func PhaseGroupContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldPhaseGroup, v))
}

// PhaseNameEQ applies the EQ predicate on the "phase_name" field.
func PhaseNameEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldPhaseName, v))
}

// PhaseNameNEQ applies the NEQ predicate on the "phase_name" field.
func PhaseNameNEQ(v string) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldPhaseName, v))
}

// PhaseNameIn applies the In predicate on the "phase_name" field.
func PhaseNameIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldPhaseName, vs...))
}

// PhaseNameNotIn applies the NotIn predicate on the "phase_name" field.
func PhaseNameNotIn(vs ...string) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldPhaseName, vs...))
}

// PhaseNameGT applies the GT predicate on the "phase_name" field.
func PhaseNameGT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldPhaseName, v))
}

// PhaseNameGTE applies the GTE predicate on the "phase_name" field.
func PhaseNameGTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldPhaseName, v))
}

// PhaseNameLT applies the LT predicate on the "phase_name" field.
func PhaseNameLT(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldPhaseName, v))
}

// PhaseNameLTE applies the LTE predicate on the "phase_name" field.
func PhaseNameLTE(v string) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldPhaseName, v))
}

// PhaseNameContains applies the Contains predicate on the "phase_name" field.
func PhaseNameContains(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContains(FieldPhaseName, v))
}

// PhaseNameHasPrefix applies the HasPrefix predicate on the "phase_name" field.
func PhaseNameHasPrefix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasPrefix(FieldPhaseName, v))
}

// PhaseNameHasSuffix applies the HasSuffix predicate on the "phase_name" field.
func PhaseNameHasSuffix(v string) predicate.Phase {
	return predicate.Phase(sql.FieldHasSuffix(FieldPhaseName, v))
}

// PhaseNameEqualFold applies the EqualFold predicate on the "phase_name" field.
func PhaseNameEqualFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldEqualFold(FieldPhaseName, v))
}

// PhaseNameContainsFold applies the ContainsFold predicate on the "phase_name" field.
func PhaseNameContainsFold(v string) predicate.Phase {
	return predicate.Phase(sql.FieldContainsFold(FieldPhaseName, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.Phase {
	return predicate.Phase(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.Phase {
	return predicate.Phase(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.Phase {
	return predicate.Phase(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.Phase {
	return predicate.Phase(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.Phase {
	return predicate.Phase(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.Phase {
	return predicate.Phase(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.Phase {
	return predicate.Phase(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.Phase {
	return predicate.Phase(sql.FieldLTE(FieldSequence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Phase) predicate.Phase {
	return predicate.Phase(sql.NotPredicates(p))
}
