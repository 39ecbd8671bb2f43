// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVocabularyID holds the string denoting the vocabulary_id field in the database.
	FieldVocabularyID = "vocabulary_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldQuestionTranslation holds the string denoting the question_translation field in the database.
	FieldQuestionTranslation = "question_translation"
	// FieldChoices holds the string denoting the choices field in the database.
	FieldChoices = "choices"
	// FieldCorrectIndex holds the string denoting the correct_index field in the database.
	FieldCorrectIndex = "correct_index"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldGeneratedDate holds the string denoting the generated_date field in the database.
	FieldGeneratedDate = "generated_date"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVocabulary holds the string denoting the vocabulary edge name in mutations.
	EdgeVocabulary = "vocabulary"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// VocabularyTable is the table that holds the vocabulary relation/edge.
	VocabularyTable = "questions"
	// VocabularyInverseTable is the table name for the Vocabulary entity.
	// It exists in this package in order to avoid circular dependency with the "vocabulary" package.
	VocabularyInverseTable = "vocabularies"
	// VocabularyColumn is the table column denoting the vocabulary relation/edge.
	VocabularyColumn = "vocabulary_id"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldVocabularyID,
	FieldKind,
	FieldDifficulty,
	FieldQuestionText,
	FieldQuestionTranslation,
	FieldChoices,
	FieldCorrectIndex,
	FieldExplanation,
	FieldGeneratedDate,
	FieldIsActive,
	FieldUsageCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(int) error
	// DefaultQuestionTranslation holds the default value on creation for the "question_translation" field.
	DefaultQuestionTranslation string
	// CorrectIndexValidator is a validator for the "correct_index" field. It is called by the builders before save.
	CorrectIndexValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVocabularyID orders the results by the vocabulary_id field.
func ByVocabularyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVocabularyID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByQuestionTranslation orders the results by the question_translation field.
func ByQuestionTranslation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionTranslation, opts...).ToFunc()
}

// ByCorrectIndex orders the results by the correct_index field.
func ByCorrectIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectIndex, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByGeneratedDate orders the results by the generated_date field.
func ByGeneratedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedDate, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVocabularyField orders the results by vocabulary field.
func ByVocabularyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVocabularyStep(), sql.OrderByField(field, opts...))
	}
}
func newVocabularyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VocabularyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VocabularyTable, VocabularyColumn),
	)
}
