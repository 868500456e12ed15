package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProgressRecord stores one learner's progress snapshot as a single
// keyed JSON document, replaced wholesale on every mutation. There are
// no delta writes; the row under a key always holds the complete
// current state.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed storage key identifying the document"),
		field.JSON("data", map[string]any{}).
			Comment("Complete progress snapshot as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the document was last replaced"),
	}
}
