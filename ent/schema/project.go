package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// Top of the Project → Solution → Subcomponent hierarchy.
type Project struct {
	ent.Schema
}

// Mixin of the Project.
func (Project) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("name_abbreviation").
			MinLen(4).
			MaxLen(4),
		field.Enum("status").
			Values("not_started", "active", "on_hold", "complete", "abandoned").
			Default("not_started"),
		field.String("description").
			Optional(),
		field.String("success_criteria").
			Optional(),
		field.String("sponsor").
			Default(""),
		field.String("created_by").
			Optional(),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("solutions", Solution.Type),
		edge.To("subcomponents", Subcomponent.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("status"),
		index.Fields("deleted_at"),
	}
}
