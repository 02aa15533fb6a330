package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChangeLog holds the schema definition for the ChangeLog entity.
// Append-only audit records. Hard-delete is NOT allowed; there is no edit or
// redaction path.
type ChangeLog struct {
	ent.Schema
}

// Mixin of the ChangeLog.
func (ChangeLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // Append-only: created_at only
	}
}

// Fields of the ChangeLog.
func (ChangeLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("entity_type").
			NotEmpty().
			Immutable(), // e.g. "solution", "subcomponent", "solution_phase"
		field.String("entity_id").
			NotEmpty().
			Immutable(),
		field.Enum("action").
			Values("create", "update", "delete", "restore").
			Immutable(),
		field.String("field").
			Optional().
			Nillable().
			Immutable(), // Null for whole-entity actions with no itemized diff
		field.String("old_value").
			Optional().
			Nillable().
			Immutable(),
		field.String("new_value").
			Optional().
			Nillable().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("request_id").
			Optional().
			Nillable().
			Immutable(), // Groups rows from one multi-entity operation (e.g. CSV import)
	}
}

// Indexes of the ChangeLog.
func (ChangeLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id", "created_at"),
		index.Fields("user_id", "created_at"),
		index.Fields("request_id"),
		index.Fields("created_at"),
	}
}
