package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Solution holds the schema definition for the Solution entity.
//
// RAG field group invariant: rag_source=auto means rag_status is
// system-computed and rag_reason is null; rag_source=manual means rag_status
// was asserted by a user and rag_reason is mandatory. The invariant is
// enforced by the RAG deriver (internal/service/rag.go), not by the schema.
type Solution struct {
	ent.Schema
}

// Mixin of the Solution.
func (Solution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Solution.
func (Solution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("version").
			NotEmpty(),
		field.Enum("status").
			Values("not_started", "active", "on_hold", "complete", "abandoned").
			Default("not_started"),
		field.Int("priority").
			Default(3),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("current_phase").
			Optional().
			Nillable(), // Must be one of the solution's enabled phase ids, or null
		field.Enum("rag_status").
			Values("red", "amber", "green").
			Default("amber"),
		field.Enum("rag_source").
			Values("auto", "manual").
			Default("auto"),
		field.String("rag_reason").
			Optional().
			Nillable(),
		field.String("description").
			Optional(),
		field.String("success_criteria").
			Optional(),
		field.String("owner").
			Default(""),
		field.String("assignee").
			Default(""),
		field.String("approver").
			Optional(),
		field.String("key_stakeholder").
			Optional(),
		field.String("blockers").
			Optional(),
		field.String("risks").
			Optional(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional(),
	}
}

// Edges of the Solution.
func (Solution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("solutions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("solution_phases", SolutionPhase.Type),
		edge.To("subcomponents", Subcomponent.Type),
	}
}

// Indexes of the Solution.
func (Solution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name", "version").Unique(),
		index.Fields("status"),
		index.Fields("due_date"),
		index.Fields("assignee"),
		index.Fields("deleted_at"),
	}
}
