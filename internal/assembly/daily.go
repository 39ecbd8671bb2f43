// Package assembly builds the deterministic daily question set. The same
// date and difficulty always produce the same set in the same order, with
// no state beyond the question store itself.
package assembly

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/example/vocaquiz/internal/vocab"
)

// SetSize is the number of questions in a daily set.
const SetSize = 10

// DateFormat is the calendar-day encoding used for seeds and storage.
const DateFormat = "2006-01-02"

// ErrNoQuestions is returned when neither the requested day nor the
// backfill pool has any usable question at the requested difficulty.
var ErrNoQuestions = errors.New("no questions available")

// Question is a stored, ready-to-serve question.
type Question struct {
	ID            int
	VocabularyID  int
	Kind          vocab.Kind
	Difficulty    int
	QuestionText  string
	Translation   string
	Choices       []string
	CorrectIndex  int
	Explanation   string
	GeneratedDate string
}

// Source is the read-only question store view that assembly needs.
type Source interface {
	// QuestionsOn returns the active questions generated on day at the
	// given difficulty, ordered by id ascending.
	QuestionsOn(ctx context.Context, day string, difficulty int) ([]Question, error)

	// Candidates returns the active backfill pool at the given
	// difficulty: questions generated on any other day that carry a
	// non-empty translation, ordered by id ascending.
	Candidates(ctx context.Context, day string, difficulty int) ([]Question, error)
}

// Assembler produces daily sets from a Source.
type Assembler struct {
	source Source
	size   int
}

// New creates an Assembler with the default set size.
func New(source Source) *Assembler {
	return &Assembler{source: source, size: SetSize}
}

// WithSize overrides the set size. Useful for tests and previews.
func (a *Assembler) WithSize(size int) *Assembler {
	a.size = size
	return a
}

// Seed derives the deterministic shuffle seed for a day and difficulty.
// The seed is a CRC-32 (IEEE) of "YYYY-MM-DD_difficulty", so every
// process that assembles the same set draws the same permutations.
func Seed(day time.Time, difficulty int) uint32 {
	key := day.Format(DateFormat) + "_" + strconv.Itoa(difficulty)
	return crc32.ChecksumIEEE([]byte(key))
}

// Daily assembles the question set for a day and difficulty.
//
// Questions generated on the day itself come first in the pool, capped
// at the set size in id order. When they number fewer than the set
// size, the shortfall is filled from the backfill pool: a seeded
// shuffle of the candidates, taking the first k. The combined set is
// then shuffled once more with a generator re-seeded from the same
// seed, so the final order does not depend on how many questions
// needed backfilling that day.
func (a *Assembler) Daily(ctx context.Context, day time.Time, difficulty int) ([]Question, error) {
	dayKey := day.Format(DateFormat)

	set, err := a.source.QuestionsOn(ctx, dayKey, difficulty)
	if err != nil {
		return nil, fmt.Errorf("load questions for %s: %w", dayKey, err)
	}
	// Membership is decided here by the stable id order, never by the
	// shuffle below: an over-full day keeps its earliest questions.
	if len(set) > a.size {
		set = set[:a.size]
	}

	seed := Seed(day, difficulty)

	if shortfall := a.size - len(set); shortfall > 0 {
		candidates, err := a.source.Candidates(ctx, dayKey, difficulty)
		if err != nil {
			return nil, fmt.Errorf("load backfill candidates for %s: %w", dayKey, err)
		}

		rng := rand.New(rand.NewPCG(uint64(seed), 0))
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		if len(candidates) > shortfall {
			candidates = candidates[:shortfall]
		}
		set = append(set, candidates...)
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("%w: %s difficulty %d", ErrNoQuestions, dayKey, difficulty)
	}

	// Fresh generator from the same seed: the final order is a pure
	// function of (day, difficulty, set membership).
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})

	return set, nil
}
