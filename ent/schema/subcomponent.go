package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subcomponent holds the schema definition for the Subcomponent entity.
type Subcomponent struct {
	ent.Schema
}

// Mixin of the Subcomponent.
func (Subcomponent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
		SoftDeleteMixin{},
	}
}

// Fields of the Subcomponent.
func (Subcomponent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			NotEmpty().
			Immutable(),
		field.String("solution_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Enum("status").
			Values("to_do", "in_progress", "on_hold", "complete", "abandoned").
			Default("to_do"),
		field.Int("priority").
			Default(3),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.String("sub_phase").
			Optional().
			Nillable(), // Must be an enabled phase id of the parent solution, or null
		field.String("description").
			Optional(),
		field.String("notes").
			Optional(),
		field.String("category").
			Optional(),
		field.String("dependencies").
			Optional(),
		field.Float("work_estimate").
			Optional(),
		field.String("owner").
			Default(""),
		field.String("assignee").
			Default(""),
		field.String("approver").
			Optional(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional(),
	}
}

// Edges of the Subcomponent.
func (Subcomponent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("subcomponents").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("solution", Solution.Type).
			Ref("subcomponents").
			Field("solution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("phase_statuses", SubcomponentPhaseStatus.Type),
	}
}

// Indexes of the Subcomponent.
func (Subcomponent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("solution_id", "name").Unique(),
		index.Fields("status"),
		index.Fields("assignee"),
		index.Fields("deleted_at"),
	}
}
