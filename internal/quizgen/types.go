package quizgen

import (
	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/vocab"
)

// Draft is a fully validated, shuffle-consistent question ready for
// persistence. The choice at CorrectIndex contains the source word
// whenever the model produced any choice containing it.
type Draft struct {
	// VocabularyID is the source vocabulary row.
	VocabularyID int

	// Kind and Difficulty are copied from the vocabulary item at
	// generation time and never re-derived.
	Kind       vocab.Kind
	Difficulty int

	// QuestionText is the English sentence with the blank as _____.
	QuestionText string

	// Translation is the Japanese translation of the full sentence.
	Translation string

	// Choices holds exactly 4 options in display order.
	Choices []string

	// CorrectIndex is the position of the correct choice after shuffling.
	CorrectIndex int

	// Explanation names the correct letter on its first line, resynced
	// to the post-shuffle position.
	Explanation string

	// Repair records whether the model-declared index had to be
	// overridden before shuffling.
	Repair Repair

	// Usage is the token consumption of the generating request.
	Usage llm.Usage
}

// Repair is the tagged outcome of the correct-index cross-check, kept
// observable so repair frequency can be monitored.
type Repair struct {
	// Repaired is true when the declared index disagreed with the choice
	// that actually contains the target word.
	Repaired bool

	// OriginalIndex is the model-declared index.
	OriginalIndex int

	// FinalIndex is the index used going into the shuffle.
	FinalIndex int
}
