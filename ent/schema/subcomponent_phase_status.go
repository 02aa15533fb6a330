package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubcomponentPhaseStatus holds the schema definition for the
// SubcomponentPhaseStatus entity: one checklist row per subcomponent per
// enabled solution phase. The row set is a lazily refreshed materialization of
// "enabled phases of the parent solution": the checklist synchronizer creates
// and deletes rows on every read, and the (subcomponent_id, solution_phase_id)
// unique index makes concurrent reconciliation safe.
type SubcomponentPhaseStatus struct {
	ent.Schema
}

// Mixin of the SubcomponentPhaseStatus.
func (SubcomponentPhaseStatus) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SubcomponentPhaseStatus.
func (SubcomponentPhaseStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("subcomponent_id").
			NotEmpty().
			Immutable(),
		field.String("solution_phase_id").
			NotEmpty().
			Immutable(),
		field.String("phase_id").
			NotEmpty().
			Immutable(), // Denormalized from SolutionPhase for fast lookup
		field.Bool("is_complete").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable(), // Set iff is_complete
	}
}

// Edges of the SubcomponentPhaseStatus.
func (SubcomponentPhaseStatus) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subcomponent", Subcomponent.Type).
			Ref("phase_statuses").
			Field("subcomponent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("solution_phase", SolutionPhase.Type).
			Ref("phase_statuses").
			Field("solution_phase_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SubcomponentPhaseStatus.
func (SubcomponentPhaseStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subcomponent_id", "solution_phase_id").Unique(),
		index.Fields("subcomponent_id"),
	}
}
