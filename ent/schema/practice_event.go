package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one completed practice round. Append-only:
// events feed the stats view and are never read back into the
// progress snapshot.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the round"),
		field.String("skill").
			NotEmpty().
			Comment("Skill practiced"),
		field.Int("table_number").
			Default(0).
			Comment("Multiplication table drilled, 0 when not table-specific"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers in the round"),
		field.Int("total").
			Default(0).
			Comment("Questions in the round"),
		field.Int("duration_secs").
			Default(0).
			Comment("Round duration in seconds"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the round finished"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill"),
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
