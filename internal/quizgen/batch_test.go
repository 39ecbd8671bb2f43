package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/vocab"
)

func batchItems(n int) []vocab.Item {
	items := make([]vocab.Item, n)
	for i := range items {
		items[i] = vocab.Item{
			ID:         100 + i,
			Word:       fmt.Sprintf("word%d", i),
			Kind:       vocab.KindWord,
			Difficulty: vocab.DifficultyBasic,
			Meaning:    "意味",
		}
	}
	return items
}

// questionFor builds a canned response whose correct choice contains
// the item's word so the index repair step stays quiet.
func questionFor(word string) llm.MockResponse {
	raw := fmt.Sprintf(`{
		"questionText": "Choose the word meaning of %s: ______.",
		"questionTranslation": "訳文",
		"choices": [%q, "filler1", "filler2", "filler3"],
		"correctIndex": 0,
		"explanation": "正解は (A) %s です。"
	}`, word, word, word)
	return llm.MockResponse{
		Content: json.RawMessage(raw),
		Usage:   llm.Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(context.Context) error {
	p.waits++
	return nil
}

func TestBatchRunAllSucceed(t *testing.T) {
	items := batchItems(3)
	mock := llm.NewMockProvider()
	for _, item := range items {
		mock.AddResponse(questionFor(item.Word))
	}
	pacer := &countingPacer{}
	batch := NewBatch(New(mock, fixedConfig()), pacer)

	result, err := batch.Run(context.Background(), items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Requested != 3 || result.Succeeded != 3 || result.Failed != 0 {
		t.Errorf("counts = %d/%d/%d", result.Requested, result.Succeeded, result.Failed)
	}
	if result.Status() != StatusSuccess {
		t.Errorf("Status = %q, want %q", result.Status(), StatusSuccess)
	}
	if result.Usage.TotalTokens != 450 {
		t.Errorf("TotalTokens = %d, want 450", result.Usage.TotalTokens)
	}
	// Pacing happens between calls, not before the first one.
	if pacer.waits != 2 {
		t.Errorf("pacer waits = %d, want 2", pacer.waits)
	}
	if len(result.Drafts()) != 3 {
		t.Errorf("len(Drafts) = %d, want 3", len(result.Drafts()))
	}
}

func TestBatchRunPartialFailure(t *testing.T) {
	items := batchItems(5)
	mock := llm.NewMockProvider()
	for i, item := range items {
		if i == 2 {
			mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`no json here`)})
			continue
		}
		mock.AddResponse(questionFor(item.Word))
	}
	batch := NewBatch(New(mock, fixedConfig()), nil)

	result, err := batch.Run(context.Background(), items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Succeeded != 4 || result.Failed != 1 {
		t.Errorf("succeeded/failed = %d/%d, want 4/1", result.Succeeded, result.Failed)
	}
	if result.Status() != StatusPartial {
		t.Errorf("Status = %q, want %q", result.Status(), StatusPartial)
	}
	if result.Items[2].Err == nil {
		t.Error("Items[2].Err = nil, want parse error")
	}
	if result.Items[2].VocabularyID != 102 {
		t.Errorf("Items[2].VocabularyID = %d, want 102", result.Items[2].VocabularyID)
	}
	// Failed items contribute no usage.
	if result.Usage.TotalTokens != 600 {
		t.Errorf("TotalTokens = %d, want 600", result.Usage.TotalTokens)
	}
	if result.FirstError() == nil {
		t.Error("FirstError = nil")
	}
}

func TestBatchRunAllFail(t *testing.T) {
	items := batchItems(2)
	// Empty mock queue: every call returns ErrEmptyResponse.
	mock := llm.NewMockProvider()
	batch := NewBatch(New(mock, fixedConfig()), nil)

	result, err := batch.Run(context.Background(), items)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status() != StatusFailed {
		t.Errorf("Status = %q, want %q", result.Status(), StatusFailed)
	}
	if result.Succeeded != 0 || result.Failed != 2 {
		t.Errorf("succeeded/failed = %d/%d", result.Succeeded, result.Failed)
	}
}

func TestBatchRunSingleItemNoPacing(t *testing.T) {
	items := batchItems(1)
	mock := llm.NewMockProvider(questionFor(items[0].Word))
	pacer := &countingPacer{}
	batch := NewBatch(New(mock, fixedConfig()), pacer)

	if _, err := batch.Run(context.Background(), items); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pacer.waits != 0 {
		t.Errorf("pacer waits = %d, want 0", pacer.waits)
	}
}

func TestBatchRunCanceledContext(t *testing.T) {
	items := batchItems(3)
	mock := llm.NewMockProvider()
	for _, item := range items {
		mock.AddResponse(questionFor(item.Word))
	}
	batch := NewBatch(New(mock, fixedConfig()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := batch.Run(ctx, items)
	if err == nil {
		t.Fatal("Run with canceled context: err = nil")
	}
}
