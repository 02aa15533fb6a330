// Code generated by ent, DO NOT EDIT.

package solutionphase

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldUpdatedAt, v))
}

// SolutionID applies equality check predicate on the "solution_id" field. It's identical to SolutionIDEQ.
func SolutionID(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldSolutionID, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldPhaseID, v))
}

// IsEnabled applies equality check predicate on the "is_enabled" field. It's identical to IsEnabledEQ.
func IsEnabled(v bool) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldIsEnabled, v))
}

// SequenceOverride applies equality check predicate on the "sequence_override" field. It's identical to SequenceOverrideEQ.
func SequenceOverride(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldSequenceOverride, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldUpdatedAt, v))
}

// SolutionIDEQ applies the EQ predicate on the "solution_id" field.
func SolutionIDEQ(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldSolutionID, v))
}

// SolutionIDNEQ applies the NEQ predicate on the "solution_id" field.
func SolutionIDNEQ(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldSolutionID, v))
}

// SolutionIDIn applies the In predicate on the "solution_id" field.
func SolutionIDIn(vs ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldSolutionID, vs...))
}

// SolutionIDNotIn applies the NotIn predicate on the "solution_id" field.
func SolutionIDNotIn(vs ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldSolutionID, vs...))
}

// SolutionIDGT applies the GT predicate on the "solution_id" field.
func SolutionIDGT(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldSolutionID, v))
}

// SolutionIDGTE applies the GTE predicate on the "solution_id" field.
func SolutionIDGTE(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldSolutionID, v))
}

// SolutionIDLT applies the LT predicate on the "solution_id" field.
func SolutionIDLT(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldSolutionID, v))
}

// SolutionIDLTE applies the LTE predicate on the "solution_id" field.
func SolutionIDLTE(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldSolutionID, v))
}

// SolutionIDContains applies the Contains predicate on the "solution_id" field.
func SolutionIDContains(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldContains(FieldSolutionID, v))
}

// SolutionIDHasPrefix applies the HasPrefix predicate on the "solution_id" field.
func SolutionIDHasPrefix(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldHasPrefix(FieldSolutionID, v))
}

// SolutionIDHasSuffix applies the HasSuffix predicate on the "solution_id" field.
func SolutionIDHasSuffix(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldHasSuffix(FieldSolutionID, v))
}

// SolutionIDEqualFold applies the EqualFold predicate on the "solution_id" field.
func SolutionIDEqualFold(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEqualFold(FieldSolutionID, v))
}

// SolutionIDContainsFold applies the ContainsFold predicate on the "solution_id" field.
func SolutionIDContainsFold(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldContainsFold(FieldSolutionID, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldContainsFold(FieldPhaseID, v))
}

// IsEnabledEQ applies the EQ predicate on the "is_enabled" field.
func IsEnabledEQ(v bool) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldIsEnabled, v))
}

// IsEnabledNEQ applies the NEQ predicate on the "is_enabled" field.
func IsEnabledNEQ(v bool) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldIsEnabled, v))
}

// SequenceOverrideEQ applies the EQ predicate on the "sequence_override" field.
func SequenceOverrideEQ(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldEQ(FieldSequenceOverride, v))
}

// SequenceOverrideNEQ applies the NEQ predicate on the "sequence_override" field.
func SequenceOverrideNEQ(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNEQ(FieldSequenceOverride, v))
}

// SequenceOverrideIn applies the In predicate on the "sequence_override" field.
func SequenceOverrideIn(vs ...int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIn(FieldSequenceOverride, vs...))
}

// SequenceOverrideNotIn applies the NotIn predicate on the "sequence_override" field.
func SequenceOverrideNotIn(vs ...int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotIn(FieldSequenceOverride, vs...))
}

// SequenceOverrideGT applies the GT predicate on the "sequence_override" field.
func SequenceOverrideGT(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGT(FieldSequenceOverride, v))
}

// SequenceOverrideGTE applies the GTE predicate on the "sequence_override" field.
func SequenceOverrideGTE(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldGTE(FieldSequenceOverride, v))
}

// SequenceOverrideLT applies the LT predicate on the "sequence_override" field.
func SequenceOverrideLT(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLT(FieldSequenceOverride, v))
}

// SequenceOverrideLTE applies the LTE predicate on the "sequence_override" field.
func SequenceOverrideLTE(v int) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldLTE(FieldSequenceOverride, v))
}

// SequenceOverrideIsNil applies the IsNil predicate on the "sequence_override" field.
func SequenceOverrideIsNil() predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldIsNull(FieldSequenceOverride))
}

// SequenceOverrideNotNil applies the NotNil predicate on the "sequence_override" field.
func SequenceOverrideNotNil() predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.FieldNotNull(FieldSequenceOverride))
}

// HasSolution applies the HasEdge predicate on the "solution" edge.
func HasSolution() predicate.SolutionPhase {
	return predicate.SolutionPhase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionWith applies the HasEdge predicate on the "solution" edge with a given conditions (other predicates).
func HasSolutionWith(preds ...predicate.Solution) predicate.SolutionPhase {
	return predicate.SolutionPhase(func(s *sql.Selector) {
		step := newSolutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhaseStatuses applies the HasEdge predicate on the "phase_statuses" edge.
func HasPhaseStatuses() predicate.SolutionPhase {
	return predicate.SolutionPhase(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhaseStatusesTable, PhaseStatusesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhaseStatusesWith applies the HasEdge predicate on the "phase_statuses" edge with a given conditions (other predicates).
func HasPhaseStatusesWith(preds ...predicate.SubcomponentPhaseStatus) predicate.SolutionPhase {
	return predicate.SolutionPhase(func(s *sql.Selector) {
		step := newPhaseStatusesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolutionPhase) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolutionPhase) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolutionPhase) predicate.SolutionPhase {
	return predicate.SolutionPhase(sql.NotPredicates(p))
}
