// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/example/vocaquiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// VocabularyID applies equality check predicate on the "vocabulary_id" field. It's identical to VocabularyIDEQ.
func VocabularyID(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldVocabularyID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKind, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTranslation applies equality check predicate on the "question_translation" field. It's identical to QuestionTranslationEQ.
func QuestionTranslation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionTranslation, v))
}

// CorrectIndex applies equality check predicate on the "correct_index" field. It's identical to CorrectIndexEQ.
func CorrectIndex(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectIndex, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// GeneratedDate applies equality check predicate on the "generated_date" field. It's identical to GeneratedDateEQ.
func GeneratedDate(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGeneratedDate, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUsageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// VocabularyIDEQ applies the EQ predicate on the "vocabulary_id" field.
func VocabularyIDEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldVocabularyID, v))
}

// VocabularyIDNEQ applies the NEQ predicate on the "vocabulary_id" field.
func VocabularyIDNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldVocabularyID, v))
}

// VocabularyIDIn applies the In predicate on the "vocabulary_id" field.
func VocabularyIDIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldVocabularyID, vs...))
}

// VocabularyIDNotIn applies the NotIn predicate on the "vocabulary_id" field.
func VocabularyIDNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldVocabularyID, vs...))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldKind, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionText, v))
}

// QuestionTranslationEQ applies the EQ predicate on the "question_translation" field.
func QuestionTranslationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionTranslation, v))
}

// QuestionTranslationNEQ applies the NEQ predicate on the "question_translation" field.
func QuestionTranslationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionTranslation, v))
}

// QuestionTranslationIn applies the In predicate on the "question_translation" field.
func QuestionTranslationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionTranslation, vs...))
}

// QuestionTranslationNotIn applies the NotIn predicate on the "question_translation" field.
func QuestionTranslationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionTranslation, vs...))
}

// QuestionTranslationGT applies the GT predicate on the "question_translation" field.
func QuestionTranslationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionTranslation, v))
}

// QuestionTranslationGTE applies the GTE predicate on the "question_translation" field.
func QuestionTranslationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionTranslation, v))
}

// QuestionTranslationLT applies the LT predicate on the "question_translation" field.
func QuestionTranslationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionTranslation, v))
}

// QuestionTranslationLTE applies the LTE predicate on the "question_translation" field.
func QuestionTranslationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionTranslation, v))
}

// QuestionTranslationContains applies the Contains predicate on the "question_translation" field.
func QuestionTranslationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionTranslation, v))
}

// QuestionTranslationHasPrefix applies the HasPrefix predicate on the "question_translation" field.
func QuestionTranslationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionTranslation, v))
}

// QuestionTranslationHasSuffix applies the HasSuffix predicate on the "question_translation" field.
func QuestionTranslationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionTranslation, v))
}

// QuestionTranslationEqualFold applies the EqualFold predicate on the "question_translation" field.
func QuestionTranslationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionTranslation, v))
}

// QuestionTranslationContainsFold applies the ContainsFold predicate on the "question_translation" field.
func QuestionTranslationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionTranslation, v))
}

// CorrectIndexEQ applies the EQ predicate on the "correct_index" field.
func CorrectIndexEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectIndex, v))
}

// CorrectIndexNEQ applies the NEQ predicate on the "correct_index" field.
func CorrectIndexNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectIndex, v))
}

// CorrectIndexIn applies the In predicate on the "correct_index" field.
func CorrectIndexIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectIndex, vs...))
}

// CorrectIndexNotIn applies the NotIn predicate on the "correct_index" field.
func CorrectIndexNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectIndex, vs...))
}

// CorrectIndexGT applies the GT predicate on the "correct_index" field.
func CorrectIndexGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectIndex, v))
}

// CorrectIndexGTE applies the GTE predicate on the "correct_index" field.
func CorrectIndexGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectIndex, v))
}

// CorrectIndexLT applies the LT predicate on the "correct_index" field.
func CorrectIndexLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectIndex, v))
}

// CorrectIndexLTE applies the LTE predicate on the "correct_index" field.
func CorrectIndexLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectIndex, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// GeneratedDateEQ applies the EQ predicate on the "generated_date" field.
func GeneratedDateEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldGeneratedDate, v))
}

// GeneratedDateNEQ applies the NEQ predicate on the "generated_date" field.
func GeneratedDateNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldGeneratedDate, v))
}

// GeneratedDateIn applies the In predicate on the "generated_date" field.
func GeneratedDateIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldGeneratedDate, vs...))
}

// GeneratedDateNotIn applies the NotIn predicate on the "generated_date" field.
func GeneratedDateNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldGeneratedDate, vs...))
}

// GeneratedDateGT applies the GT predicate on the "generated_date" field.
func GeneratedDateGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldGeneratedDate, v))
}

// GeneratedDateGTE applies the GTE predicate on the "generated_date" field.
func GeneratedDateGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldGeneratedDate, v))
}

// GeneratedDateLT applies the LT predicate on the "generated_date" field.
func GeneratedDateLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldGeneratedDate, v))
}

// GeneratedDateLTE applies the LTE predicate on the "generated_date" field.
func GeneratedDateLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldGeneratedDate, v))
}

// GeneratedDateContains applies the Contains predicate on the "generated_date" field.
func GeneratedDateContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldGeneratedDate, v))
}

// GeneratedDateHasPrefix applies the HasPrefix predicate on the "generated_date" field.
func GeneratedDateHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldGeneratedDate, v))
}

// GeneratedDateHasSuffix applies the HasSuffix predicate on the "generated_date" field.
func GeneratedDateHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldGeneratedDate, v))
}

// GeneratedDateEqualFold applies the EqualFold predicate on the "generated_date" field.
func GeneratedDateEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldGeneratedDate, v))
}

// GeneratedDateContainsFold applies the ContainsFold predicate on the "generated_date" field.
func GeneratedDateContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldGeneratedDate, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsActive, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldUsageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVocabulary applies the HasEdge predicate on the "vocabulary" edge.
func HasVocabulary() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VocabularyTable, VocabularyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVocabularyWith applies the HasEdge predicate on the "vocabulary" edge with a given conditions (other predicates).
func HasVocabularyWith(preds ...predicate.Vocabulary) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newVocabularyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
