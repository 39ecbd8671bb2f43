// Code generated by ent, DO NOT EDIT.

package vocabulary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/example/vocaquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldID, id))
}

// Word applies equality check predicate on the "word" field. It's identical to WordEQ.
func Word(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldWord, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldKind, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldDifficulty, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldMeaning, v))
}

// PartOfSpeech applies equality check predicate on the "part_of_speech" field. It's identical to PartOfSpeechEQ.
func PartOfSpeech(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldPartOfSpeech, v))
}

// Example applies equality check predicate on the "example" field. It's identical to ExampleEQ.
func Example(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldExample, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldCreatedAt, v))
}

// WordEQ applies the EQ predicate on the "word" field.
func WordEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldWord, v))
}

// WordNEQ applies the NEQ predicate on the "word" field.
func WordNEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldWord, v))
}

// WordIn applies the In predicate on the "word" field.
func WordIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldWord, vs...))
}

// WordNotIn applies the NotIn predicate on the "word" field.
func WordNotIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldWord, vs...))
}

// WordGT applies the GT predicate on the "word" field.
func WordGT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldWord, v))
}

// WordGTE applies the GTE predicate on the "word" field.
func WordGTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldWord, v))
}

// WordLT applies the LT predicate on the "word" field.
func WordLT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldWord, v))
}

// WordLTE applies the LTE predicate on the "word" field.
func WordLTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldWord, v))
}

// WordContains applies the Contains predicate on the "word" field.
func WordContains(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContains(FieldWord, v))
}

// WordHasPrefix applies the HasPrefix predicate on the "word" field.
func WordHasPrefix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasPrefix(FieldWord, v))
}

// WordHasSuffix applies the HasSuffix predicate on the "word" field.
func WordHasSuffix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasSuffix(FieldWord, v))
}

// WordEqualFold applies the EqualFold predicate on the "word" field.
func WordEqualFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEqualFold(FieldWord, v))
}

// WordContainsFold applies the ContainsFold predicate on the "word" field.
func WordContainsFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContainsFold(FieldWord, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContainsFold(FieldKind, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldDifficulty, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContainsFold(FieldMeaning, v))
}

// PartOfSpeechEQ applies the EQ predicate on the "part_of_speech" field.
func PartOfSpeechEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechNEQ applies the NEQ predicate on the "part_of_speech" field.
func PartOfSpeechNEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldPartOfSpeech, v))
}

// PartOfSpeechIn applies the In predicate on the "part_of_speech" field.
func PartOfSpeechIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechNotIn applies the NotIn predicate on the "part_of_speech" field.
func PartOfSpeechNotIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldPartOfSpeech, vs...))
}

// PartOfSpeechGT applies the GT predicate on the "part_of_speech" field.
func PartOfSpeechGT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldPartOfSpeech, v))
}

// PartOfSpeechGTE applies the GTE predicate on the "part_of_speech" field.
func PartOfSpeechGTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldPartOfSpeech, v))
}

// PartOfSpeechLT applies the LT predicate on the "part_of_speech" field.
func PartOfSpeechLT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldPartOfSpeech, v))
}

// PartOfSpeechLTE applies the LTE predicate on the "part_of_speech" field.
func PartOfSpeechLTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldPartOfSpeech, v))
}

// PartOfSpeechContains applies the Contains predicate on the "part_of_speech" field.
func PartOfSpeechContains(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContains(FieldPartOfSpeech, v))
}

// PartOfSpeechHasPrefix applies the HasPrefix predicate on the "part_of_speech" field.
func PartOfSpeechHasPrefix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasPrefix(FieldPartOfSpeech, v))
}

// PartOfSpeechHasSuffix applies the HasSuffix predicate on the "part_of_speech" field.
func PartOfSpeechHasSuffix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasSuffix(FieldPartOfSpeech, v))
}

// PartOfSpeechEqualFold applies the EqualFold predicate on the "part_of_speech" field.
func PartOfSpeechEqualFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEqualFold(FieldPartOfSpeech, v))
}

// PartOfSpeechContainsFold applies the ContainsFold predicate on the "part_of_speech" field.
func PartOfSpeechContainsFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContainsFold(FieldPartOfSpeech, v))
}

// ExampleEQ applies the EQ predicate on the "example" field.
func ExampleEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldExample, v))
}

// ExampleNEQ applies the NEQ predicate on the "example" field.
func ExampleNEQ(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldExample, v))
}

// ExampleIn applies the In predicate on the "example" field.
func ExampleIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldExample, vs...))
}

// ExampleNotIn applies the NotIn predicate on the "example" field.
func ExampleNotIn(vs ...string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldExample, vs...))
}

// ExampleGT applies the GT predicate on the "example" field.
func ExampleGT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldExample, v))
}

// ExampleGTE applies the GTE predicate on the "example" field.
func ExampleGTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldExample, v))
}

// ExampleLT applies the LT predicate on the "example" field.
func ExampleLT(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldExample, v))
}

// ExampleLTE applies the LTE predicate on the "example" field.
func ExampleLTE(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldExample, v))
}

// ExampleContains applies the Contains predicate on the "example" field.
func ExampleContains(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContains(FieldExample, v))
}

// ExampleHasPrefix applies the HasPrefix predicate on the "example" field.
func ExampleHasPrefix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasPrefix(FieldExample, v))
}

// ExampleHasSuffix applies the HasSuffix predicate on the "example" field.
func ExampleHasSuffix(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldHasSuffix(FieldExample, v))
}

// ExampleEqualFold applies the EqualFold predicate on the "example" field.
func ExampleEqualFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEqualFold(FieldExample, v))
}

// ExampleContainsFold applies the ContainsFold predicate on the "example" field.
func ExampleContainsFold(v string) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldContainsFold(FieldExample, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vocabulary {
	return predicate.Vocabulary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Vocabulary {
	return predicate.Vocabulary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Vocabulary {
	return predicate.Vocabulary(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vocabulary) predicate.Vocabulary {
	return predicate.Vocabulary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vocabulary) predicate.Vocabulary {
	return predicate.Vocabulary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vocabulary) predicate.Vocabulary {
	return predicate.Vocabulary(sql.NotPredicates(p))
}
