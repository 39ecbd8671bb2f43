package quizgen

import (
	"context"
	"time"

	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/vocab"
)

// Batch statuses recorded in the generation ledger.
const (
	StatusSuccess = "SUCCESS"
	StatusPartial = "PARTIAL"
	StatusFailed  = "FAILED"
)

// Pacer spaces out consecutive provider calls within a batch.
type Pacer interface {
	Wait(ctx context.Context) error
}

type intervalPacer struct {
	interval time.Duration
}

// NewIntervalPacer returns a Pacer that sleeps for the given interval,
// or returns early with the context error if the context is canceled.
func NewIntervalPacer(interval time.Duration) Pacer {
	return &intervalPacer{interval: interval}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	if p.interval <= 0 {
		return nil
	}
	timer := time.NewTimer(p.interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type nopPacer struct{}

func (nopPacer) Wait(context.Context) error { return nil }

// NopPacer returns a Pacer that never waits. Used in tests and for
// single-item batches.
func NopPacer() Pacer { return nopPacer{} }

// ItemResult is the outcome of generating one question.
type ItemResult struct {
	VocabularyID int
	Word         string
	Draft        *Draft
	Err          error
}

// BatchResult aggregates a generation run over a set of vocabulary items.
type BatchResult struct {
	Items     []ItemResult
	Usage     llm.Usage
	Requested int
	Succeeded int
	Failed    int
}

// Status maps the success/failure counts to a ledger status.
// All failed means FAILED, all succeeded means SUCCESS, anything
// in between is PARTIAL.
func (r *BatchResult) Status() string {
	switch {
	case r.Succeeded == 0:
		return StatusFailed
	case r.Failed == 0:
		return StatusSuccess
	default:
		return StatusPartial
	}
}

// Drafts returns the successfully generated drafts in item order.
func (r *BatchResult) Drafts() []*Draft {
	drafts := make([]*Draft, 0, r.Succeeded)
	for _, item := range r.Items {
		if item.Draft != nil {
			drafts = append(drafts, item.Draft)
		}
	}
	return drafts
}

// FirstError returns the first item-level error, or nil if every
// item succeeded. Used as the ledger error message for failed runs.
func (r *BatchResult) FirstError() error {
	for _, item := range r.Items {
		if item.Err != nil {
			return item.Err
		}
	}
	return nil
}

// Batch generates questions for a list of vocabulary items sequentially.
type Batch struct {
	generator Generator
	pacer     Pacer
}

// NewBatch creates a Batch. A nil pacer disables pacing.
func NewBatch(generator Generator, pacer Pacer) *Batch {
	if pacer == nil {
		pacer = NopPacer()
	}
	return &Batch{generator: generator, pacer: pacer}
}

// Run generates one question per item. Item-level failures are recorded
// and the batch continues to the next item; only context cancellation
// aborts the run. Token usage is summed over successful items.
func (b *Batch) Run(ctx context.Context, items []vocab.Item) (*BatchResult, error) {
	result := &BatchResult{
		Items:     make([]ItemResult, 0, len(items)),
		Requested: len(items),
	}

	for i, item := range items {
		if i > 0 && len(items) > 1 {
			if err := b.pacer.Wait(ctx); err != nil {
				return result, err
			}
		}

		draft, err := b.generator.Generate(ctx, item)
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		ir := ItemResult{VocabularyID: item.ID, Word: item.Word}
		if err != nil {
			ir.Err = err
			result.Failed++
		} else {
			ir.Draft = draft
			result.Succeeded++
			result.Usage.Add(draft.Usage)
		}
		result.Items = append(result.Items, ir)
	}

	return result, nil
}
