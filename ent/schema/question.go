package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a generated multiple-choice question. The choices slice
// order is meaningful: correct_index points at the choice containing the
// source vocabulary word, after the post-generation shuffle.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("vocabulary_id").
			Comment("Source vocabulary row"),
		field.String("kind").
			Comment("WORD or IDIOM, copied from the vocabulary at creation"),
		field.Int("difficulty").
			Min(1).Max(3).
			Comment("Difficulty tier, copied at creation and never re-derived"),
		field.String("question_text").
			Comment("English sentence with the blank as _____"),
		field.String("question_translation").
			Default("").
			Comment("Japanese translation of the question sentence"),
		field.JSON("choices", []string{}).
			Comment("Exactly 4 answer choices in display order"),
		field.Int("correct_index").
			Min(0).Max(3).
			Comment("Index of the correct choice after shuffling"),
		field.String("explanation").
			Comment("Explanation text; first line names the correct letter"),
		field.String("generated_date").
			Comment("Batch target date, YYYY-MM-DD"),
		field.Bool("is_active").
			Default(true),
		field.Int("usage_count").
			Default(0).
			Comment("Incremented each time a learner answers this question"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("vocabulary", Vocabulary.Type).
			Ref("questions").
			Field("vocabulary_id").
			Unique().
			Required(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generated_date", "difficulty"),
		index.Fields("difficulty", "is_active"),
		index.Fields("vocabulary_id"),
	}
}
