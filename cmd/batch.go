package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/example/vocaquiz/internal/assembly"
	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/quizgen"
	"github.com/example/vocaquiz/internal/store"
	"github.com/example/vocaquiz/internal/vocab"
)

// batchOutcome is what a generation run leaves behind, for reporting.
type batchOutcome struct {
	BatchID string
	Model   string
	Result  *quizgen.BatchResult
	Cost    float64
}

// runGenerationBatch is the single generation entrypoint shared by the
// generate command and the scheduler: select vocabulary, generate
// questions, commit questions plus ledger row in one transaction.
func runGenerationBatch(ctx context.Context, st *store.Store, difficulty, count int, day time.Time) (*batchOutcome, error) {
	selector := vocab.NewSelector(st.VocabRepo())
	items, err := selector.Select(ctx, difficulty, count, day)
	if err != nil {
		return nil, fmt.Errorf("select vocabulary: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no vocabulary available for difficulty %d", difficulty)
	}
	if len(items) < count {
		fmt.Fprintf(os.Stderr, "warning: inventory exhausted, generating %d of %d requested questions\n",
			len(items), count)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	cfg := quizgen.DefaultConfig()
	var pacer quizgen.Pacer
	if len(items) > 1 {
		pacer = quizgen.NewIntervalPacer(cfg.PaceInterval)
	}

	batch := quizgen.NewBatch(quizgen.New(provider, cfg), pacer)
	result, err := batch.Run(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("run generation batch: %w", err)
	}

	cost := llm.EstimateCost(provider.ModelID(), result.Usage)

	rec := store.BatchRecord{
		BatchID:          uuid.NewString(),
		Date:             day.Format(assembly.DateFormat),
		Difficulty:       difficulty,
		Requested:        result.Requested,
		Succeeded:        result.Succeeded,
		Failed:           result.Failed,
		Model:            provider.ModelID(),
		PromptTokens:     result.Usage.InputTokens,
		CompletionTokens: result.Usage.OutputTokens,
		TotalCost:        cost,
		Status:           result.Status(),
	}
	if result.Failed > 0 {
		if first := result.FirstError(); first != nil {
			rec.ErrorMessage = first.Error()
		}
	}

	questions := make([]store.QuestionData, 0, result.Succeeded)
	for _, draft := range result.Drafts() {
		questions = append(questions, store.QuestionData{
			VocabularyID: draft.VocabularyID,
			Kind:         string(draft.Kind),
			Difficulty:   draft.Difficulty,
			QuestionText: draft.QuestionText,
			Translation:  draft.Translation,
			Choices:      draft.Choices,
			CorrectIndex: draft.CorrectIndex,
			Explanation:  draft.Explanation,
		})
	}

	// A fully failed run still gets its ledger row; the audit trail
	// covers every invocation, not just productive ones.
	if err := st.CommitBatch(ctx, rec, questions); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &batchOutcome{
		BatchID: rec.BatchID,
		Model:   rec.Model,
		Result:  result,
		Cost:    cost,
	}, nil
}
