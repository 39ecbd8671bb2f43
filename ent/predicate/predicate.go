// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GenerationLog is the predicate function for generationlog builders.
type GenerationLog func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Vocabulary is the predicate function for vocabulary builders.
type Vocabulary func(*sql.Selector)
