package store

import (
	"context"
	"fmt"
)

// CommitBatch persists a generation batch atomically: all questions plus
// the ledger row land in one transaction, or none of them do. A crashed
// run therefore never leaves questions without an audit trail.
func (s *Store) CommitBatch(ctx context.Context, rec BatchRecord, questions []QuestionData) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin batch transaction: %w", err)
	}

	for _, q := range questions {
		_, err := tx.Question.Create().
			SetVocabularyID(q.VocabularyID).
			SetKind(q.Kind).
			SetDifficulty(q.Difficulty).
			SetQuestionText(q.QuestionText).
			SetQuestionTranslation(q.Translation).
			SetChoices(q.Choices).
			SetCorrectIndex(q.CorrectIndex).
			SetExplanation(q.Explanation).
			SetGeneratedDate(rec.Date).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("save question for vocabulary %d: %w", q.VocabularyID, err))
		}
	}

	_, err = tx.GenerationLog.Create().
		SetBatchID(rec.BatchID).
		SetGeneratedDate(rec.Date).
		SetDifficulty(rec.Difficulty).
		SetRequested(rec.Requested).
		SetSucceeded(rec.Succeeded).
		SetFailed(rec.Failed).
		SetModel(rec.Model).
		SetPromptTokens(rec.PromptTokens).
		SetCompletionTokens(rec.CompletionTokens).
		SetTotalCost(rec.TotalCost).
		SetStatus(rec.Status).
		SetErrorMessage(rec.ErrorMessage).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("save ledger entry %s: %w", rec.BatchID, err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch %s: %w", rec.BatchID, err)
	}
	return nil
}

func rollback(tx interface{ Rollback() error }, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
