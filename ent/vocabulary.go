// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/example/vocaquiz/ent/vocabulary"
)

// Vocabulary is the model entity for the Vocabulary schema.
type Vocabulary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The literal word or idiom text
	Word string `json:"word,omitempty"`
	// WORD or IDIOM
	Kind string `json:"kind,omitempty"`
	// Difficulty tier: 1 basic, 2 advanced, 3 expert
	Difficulty int `json:"difficulty,omitempty"`
	// Japanese meaning
	Meaning string `json:"meaning,omitempty"`
	// Optional part of speech, e.g. noun, verb
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	// Optional example sentence
	Example string `json:"example,omitempty"`
	// Ingestion time; drives the freshly-added priority tier
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VocabularyQuery when eager-loading is set.
	Edges        VocabularyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VocabularyEdges holds the relations/edges for other nodes in the graph.
type VocabularyEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e VocabularyEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Vocabulary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case vocabulary.FieldID, vocabulary.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case vocabulary.FieldWord, vocabulary.FieldKind, vocabulary.FieldMeaning, vocabulary.FieldPartOfSpeech, vocabulary.FieldExample:
			values[i] = new(sql.NullString)
		case vocabulary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Vocabulary fields.
func (_m *Vocabulary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case vocabulary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case vocabulary.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case vocabulary.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case vocabulary.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case vocabulary.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case vocabulary.FieldPartOfSpeech:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field part_of_speech", values[i])
			} else if value.Valid {
				_m.PartOfSpeech = value.String
			}
		case vocabulary.FieldExample:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field example", values[i])
			} else if value.Valid {
				_m.Example = value.String
			}
		case vocabulary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Vocabulary.
// This includes values selected through modifiers, order, etc.
func (_m *Vocabulary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the Vocabulary entity.
func (_m *Vocabulary) QueryQuestions() *QuestionQuery {
	return NewVocabularyClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Vocabulary.
// Note that you need to call Vocabulary.Unwrap() before calling this method if this Vocabulary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Vocabulary) Update() *VocabularyUpdateOne {
	return NewVocabularyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Vocabulary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Vocabulary) Unwrap() *Vocabulary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Vocabulary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Vocabulary) String() string {
	var builder strings.Builder
	builder.WriteString("Vocabulary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("part_of_speech=")
	builder.WriteString(_m.PartOfSpeech)
	builder.WriteString(", ")
	builder.WriteString("example=")
	builder.WriteString(_m.Example)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Vocabularies is a parsable slice of Vocabulary.
type Vocabularies []*Vocabulary
