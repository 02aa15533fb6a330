package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolutionPhase holds the schema definition for the SolutionPhase entity.
// Join row projecting the global phase catalog onto one solution: enable flag
// plus an optional per-solution ordering override. At most one row exists per
// (solution_id, phase_id); concurrent creators race on the unique index and
// the loser surfaces as a conflict.
type SolutionPhase struct {
	ent.Schema
}

// Mixin of the SolutionPhase.
func (SolutionPhase) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SolutionPhase.
func (SolutionPhase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("solution_id").
			NotEmpty().
			Immutable(),
		field.String("phase_id").
			NotEmpty().
			Immutable(),
		field.Bool("is_enabled").
			Default(true),
		field.Int("sequence_override").
			Optional().
			Nillable(), // Takes precedence over Phase.sequence when present
	}
}

// Edges of the SolutionPhase.
func (SolutionPhase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("solution", Solution.Type).
			Ref("solution_phases").
			Field("solution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("phase_statuses", SubcomponentPhaseStatus.Type),
	}
}

// Indexes of the SolutionPhase.
func (SolutionPhase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("solution_id", "phase_id").Unique(),
		index.Fields("solution_id", "is_enabled"),
	}
}
