package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationLog is the append-only ledger: one row per batch invocation,
// written in the same transaction as the batch's questions and never
// updated afterwards.
type GenerationLog struct {
	ent.Schema
}

func (GenerationLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("batch_id").
			Unique().
			Immutable().
			Comment("UUID assigned when the batch starts"),
		field.String("generated_date").
			Comment("Batch target date, YYYY-MM-DD"),
		field.Int("difficulty").
			Min(1).Max(3),
		field.Int("requested").
			Comment("Vocabulary items handed to the batch"),
		field.Int("succeeded").
			Comment("Questions generated, validated and persisted"),
		field.Int("failed").
			Comment("Items whose generation or parsing failed"),
		field.String("model").
			Comment("Model ID that served the batch"),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Float("total_cost").
			Default(0).
			Comment("Estimated USD cost for the batch"),
		field.String("status").
			Comment("SUCCESS, PARTIAL or FAILED"),
		field.String("error_message").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (GenerationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generated_date", "difficulty"),
		index.Fields("status"),
	}
}
