// Code generated by ent, DO NOT EDIT.

package subcomponentphasestatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"tracklite.io/tracklite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// SubcomponentID applies equality check predicate on the "subcomponent_id" field. It's identical to SubcomponentIDEQ.
func SubcomponentID(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldSubcomponentID, v))
}

// SolutionPhaseID applies equality check predicate on the "solution_phase_id" field. It's identical to SolutionPhaseIDEQ.
func SolutionPhaseID(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldSolutionPhaseID, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldPhaseID, v))
}

// IsComplete applies equality check predicate on the "is_complete" field. It's identical to IsCompleteEQ.
func IsComplete(v bool) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldIsComplete, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// SubcomponentIDEQ applies the EQ predicate on the "subcomponent_id" field.
func SubcomponentIDEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldSubcomponentID, v))
}

// SubcomponentIDNEQ applies the NEQ predicate on the "subcomponent_id" field.
func SubcomponentIDNEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldSubcomponentID, v))
}

// SubcomponentIDIn applies the In predicate on the "subcomponent_id" field.
func SubcomponentIDIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldSubcomponentID, vs...))
}

// SubcomponentIDNotIn applies the NotIn predicate on the "subcomponent_id" field.
func SubcomponentIDNotIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldSubcomponentID, vs...))
}

// SubcomponentIDGT applies the GT predicate on the "subcomponent_id" field.
func SubcomponentIDGT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldSubcomponentID, v))
}

// SubcomponentIDGTE applies the GTE predicate on the "subcomponent_id" field.
func SubcomponentIDGTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldSubcomponentID, v))
}

// SubcomponentIDLT applies the LT predicate on the "subcomponent_id" field.
func SubcomponentIDLT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldSubcomponentID, v))
}

// SubcomponentIDLTE applies the LTE predicate on the "subcomponent_id" field.
func SubcomponentIDLTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldSubcomponentID, v))
}

// SubcomponentIDContains applies the Contains predicate on the "subcomponent_id" field.
func SubcomponentIDContains(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContains(FieldSubcomponentID, v))
}

// SubcomponentIDHasPrefix applies the HasPrefix predicate on the "subcomponent_id" field.
func SubcomponentIDHasPrefix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasPrefix(FieldSubcomponentID, v))
}

// SubcomponentIDHasSuffix applies the HasSuffix predicate on the "subcomponent_id" field.
func SubcomponentIDHasSuffix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasSuffix(FieldSubcomponentID, v))
}

// SubcomponentIDEqualFold applies the EqualFold predicate on the "subcomponent_id" field.
func SubcomponentIDEqualFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEqualFold(FieldSubcomponentID, v))
}

// SubcomponentIDContainsFold applies the ContainsFold predicate on the "subcomponent_id" field.
func SubcomponentIDContainsFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContainsFold(FieldSubcomponentID, v))
}

// SolutionPhaseIDEQ applies the EQ predicate on the "solution_phase_id" field.
func SolutionPhaseIDEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDNEQ applies the NEQ predicate on the "solution_phase_id" field.
func SolutionPhaseIDNEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDIn applies the In predicate on the "solution_phase_id" field.
func SolutionPhaseIDIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldSolutionPhaseID, vs...))
}

// SolutionPhaseIDNotIn applies the NotIn predicate on the "solution_phase_id" field.
func SolutionPhaseIDNotIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldSolutionPhaseID, vs...))
}

// SolutionPhaseIDGT applies the GT predicate on the "solution_phase_id" field.
func SolutionPhaseIDGT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDGTE applies the GTE predicate on the "solution_phase_id" field.
func SolutionPhaseIDGTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDLT applies the LT predicate on the "solution_phase_id" field.
func SolutionPhaseIDLT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDLTE applies the LTE predicate on the "solution_phase_id" field.
func SolutionPhaseIDLTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDContains applies the Contains predicate on the "solution_phase_id" field.
func SolutionPhaseIDContains(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContains(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDHasPrefix applies the HasPrefix predicate on the "solution_phase_id" field.
func SolutionPhaseIDHasPrefix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasPrefix(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDHasSuffix applies the HasSuffix predicate on the "solution_phase_id" field.
func SolutionPhaseIDHasSuffix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasSuffix(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDEqualFold applies the EqualFold predicate on the "solution_phase_id" field.
func SolutionPhaseIDEqualFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEqualFold(FieldSolutionPhaseID, v))
}

// SolutionPhaseIDContainsFold applies the ContainsFold predicate on the "solution_phase_id" field.
func SolutionPhaseIDContainsFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContainsFold(FieldSolutionPhaseID, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldContainsFold(FieldPhaseID, v))
}

// IsCompleteEQ applies the EQ predicate on the "is_complete" field.
func IsCompleteEQ(v bool) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldIsComplete, v))
}

// IsCompleteNEQ applies the NEQ predicate on the "is_complete" field.
func IsCompleteNEQ(v bool) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldIsComplete, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.FieldNotNull(FieldCompletedAt))
}

// HasSubcomponent applies the HasEdge predicate on the "subcomponent" edge.
func HasSubcomponent() predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubcomponentTable, SubcomponentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubcomponentWith applies the HasEdge predicate on the "subcomponent" edge with a given conditions (other predicates).
func HasSubcomponentWith(preds ...predicate.Subcomponent) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(func(s *sql.Selector) {
		step := newSubcomponentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolutionPhase applies the HasEdge predicate on the "solution_phase" edge.
func HasSolutionPhase() predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SolutionPhaseTable, SolutionPhaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionPhaseWith applies the HasEdge predicate on the "solution_phase" edge with a given conditions (other predicates).
func HasSolutionPhaseWith(preds ...predicate.SolutionPhase) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(func(s *sql.Selector) {
		step := newSolutionPhaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubcomponentPhaseStatus) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubcomponentPhaseStatus) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubcomponentPhaseStatus) predicate.SubcomponentPhaseStatus {
	return predicate.SubcomponentPhaseStatus(sql.NotPredicates(p))
}
