package store

import (
	"context"
	"fmt"

	"github.com/example/vocaquiz/ent"
	entq "github.com/example/vocaquiz/ent/question"
	"github.com/example/vocaquiz/internal/assembly"
	"github.com/example/vocaquiz/internal/vocab"
)

// QuestionRepo is the ent-backed question repository. It implements
// assembly.Source.
type QuestionRepo struct {
	client *ent.Client
}

var _ assembly.Source = (*QuestionRepo)(nil)

// QuestionsOn returns the active questions generated on day at the given
// difficulty, ordered by id ascending.
func (r *QuestionRepo) QuestionsOn(ctx context.Context, day string, difficulty int) ([]assembly.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			entq.GeneratedDateEQ(day),
			entq.DifficultyEQ(difficulty),
			entq.IsActive(true),
		).
		Order(ent.Asc(entq.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions for %s: %w", day, err)
	}
	return assemblyQuestions(rows), nil
}

// Candidates returns active questions from any other day at the given
// difficulty that carry a non-empty translation, ordered by id
// ascending. The stable order matters: the assembler's seeded shuffle is
// only reproducible over a deterministic input sequence.
func (r *QuestionRepo) Candidates(ctx context.Context, day string, difficulty int) ([]assembly.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			entq.GeneratedDateNEQ(day),
			entq.DifficultyEQ(difficulty),
			entq.IsActive(true),
			entq.QuestionTranslationNEQ(""),
		).
		Order(ent.Asc(entq.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query backfill candidates for %s: %w", day, err)
	}
	return assemblyQuestions(rows), nil
}

// CountOn returns the number of questions (active or not) generated on
// day at the given difficulty.
func (r *QuestionRepo) CountOn(ctx context.Context, day string, difficulty int) (int, error) {
	n, err := r.client.Question.Query().
		Where(
			entq.GeneratedDateEQ(day),
			entq.DifficultyEQ(difficulty),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions for %s: %w", day, err)
	}
	return n, nil
}

// IncrementUsage bumps usage_count for the given question ids.
func (r *QuestionRepo) IncrementUsage(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.client.Question.Update().
		Where(entq.IDIn(ids...)).
		AddUsageCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment usage for %d questions: %w", len(ids), err)
	}
	return nil
}

// Deactivate removes a question from circulation without deleting it.
func (r *QuestionRepo) Deactivate(ctx context.Context, id int) error {
	err := r.client.Question.UpdateOneID(id).
		SetIsActive(false).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("question %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("deactivate question %d: %w", id, err)
	}
	return nil
}

func assemblyQuestions(rows []*ent.Question) []assembly.Question {
	out := make([]assembly.Question, len(rows))
	for i, row := range rows {
		out[i] = assembly.Question{
			ID:            row.ID,
			VocabularyID:  row.VocabularyID,
			Kind:          vocab.Kind(row.Kind),
			Difficulty:    row.Difficulty,
			QuestionText:  row.QuestionText,
			Translation:   row.QuestionTranslation,
			Choices:       row.Choices,
			CorrectIndex:  row.CorrectIndex,
			Explanation:   row.Explanation,
			GeneratedDate: row.GeneratedDate,
		}
	}
	return out
}
