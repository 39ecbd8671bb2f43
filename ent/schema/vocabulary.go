package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Vocabulary is a single word or idiom in the learning inventory.
// Rows are created by ingestion and never mutated afterwards.
type Vocabulary struct {
	ent.Schema
}

func (Vocabulary) Fields() []ent.Field {
	return []ent.Field{
		field.String("word").
			Comment("The literal word or idiom text"),
		field.String("kind").
			Comment("WORD or IDIOM"),
		field.Int("difficulty").
			Min(1).Max(3).
			Comment("Difficulty tier: 1 basic, 2 advanced, 3 expert"),
		field.String("meaning").
			Comment("Japanese meaning"),
		field.String("part_of_speech").
			Default("").
			Comment("Optional part of speech, e.g. noun, verb"),
		field.String("example").
			Default("").
			Comment("Optional example sentence"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Ingestion time; drives the freshly-added priority tier"),
	}
}

func (Vocabulary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
	}
}

func (Vocabulary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "difficulty"),
		index.Fields("created_at"),
	}
}
