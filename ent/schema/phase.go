package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Phase holds the schema definition for the Phase entity.
// The phase catalog is a fixed, globally ordered list seeded once at startup
// (cmd/seed, internal/service.SeedPhases). Rows are never mutated or deleted
// by user action.
type Phase struct {
	ent.Schema
}

// Mixin of the Phase.
func (Phase) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Phase.
func (Phase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(), // Stable slug, e.g. "requirements", "uat_deploy"
		field.String("phase_group").
			NotEmpty(),
		field.String("phase_name").
			NotEmpty(),
		field.Int("sequence").
			Positive().
			Unique(), // Global default order, ascending from 1
	}
}

// Indexes of the Phase.
func (Phase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
	}
}
