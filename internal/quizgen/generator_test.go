package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/vocab"
)

func testItem() vocab.Item {
	return vocab.Item{
		ID:           42,
		Word:         "postpone",
		Kind:         vocab.KindWord,
		Difficulty:   vocab.DifficultyAdvanced,
		Meaning:      "延期する",
		PartOfSpeech: "動詞",
	}
}

func fixedConfig() Config {
	cfg := DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(1, 0))
	return cfg
}

func TestGenerateHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(validQuestionJSON),
		Usage:   llm.Usage{InputTokens: 300, OutputTokens: 150, TotalTokens: 450},
	})
	gen := New(mock, fixedConfig())

	draft, err := gen.Generate(context.Background(), testItem())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if draft.VocabularyID != 42 {
		t.Errorf("VocabularyID = %d, want 42", draft.VocabularyID)
	}
	if draft.Kind != vocab.KindWord || draft.Difficulty != vocab.DifficultyAdvanced {
		t.Errorf("kind/difficulty = %v/%d", draft.Kind, draft.Difficulty)
	}
	if draft.Choices[draft.CorrectIndex] != "postpone" {
		t.Errorf("correct choice = %q, want %q", draft.Choices[draft.CorrectIndex], "postpone")
	}
	if draft.Usage.TotalTokens != 450 {
		t.Errorf("TotalTokens = %d, want 450", draft.Usage.TotalTokens)
	}

	// The explanation letter must name the post-shuffle slot.
	wantLetter := "(" + string(rune('A'+draft.CorrectIndex)) + ")"
	if !strings.Contains(draft.Explanation, wantLetter) {
		t.Errorf("explanation %q does not contain %q", draft.Explanation, wantLetter)
	}
}

func TestGenerateSendsGenerationParameters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuestionJSON)})
	gen := New(mock, fixedConfig())

	if _, err := gen.Generate(context.Background(), testItem()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "toeic-question" {
		t.Errorf("Schema = %+v", req.Schema)
	}
	if req.MaxTokens != 2048 || req.Temperature != 0.7 || req.TopP != 0.95 || req.TopK != 40 {
		t.Errorf("sampling params = %d/%v/%v/%d", req.MaxTokens, req.Temperature, req.TopP, req.TopK)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "postpone") {
		t.Errorf("user message = %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "上級レベル") {
		t.Errorf("user message missing difficulty label: %q", req.Messages[0].Content)
	}
}

func TestGenerateRepairsDisagreedIndex(t *testing.T) {
	// Model puts the target word at 1 but declares 0.
	raw := `{
		"questionText": "Please ______ the meeting.",
		"questionTranslation": "会議を延期してください。",
		"choices": ["promote", "postpone", "purchase", "persuade"],
		"correctIndex": 0,
		"explanation": "正解は (A) postpone です。"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	gen := New(mock, fixedConfig())

	draft, err := gen.Generate(context.Background(), testItem())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !draft.Repair.Repaired {
		t.Error("Repair.Repaired = false, want true")
	}
	if draft.Choices[draft.CorrectIndex] != "postpone" {
		t.Errorf("correct choice = %q after repair+shuffle", draft.Choices[draft.CorrectIndex])
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrTransport{Status: 429, Err: errors.New("rate limited")},
	})
	gen := New(mock, fixedConfig())

	_, err := gen.Generate(context.Background(), testItem())
	var terr *llm.ErrTransport
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want *llm.ErrTransport", err)
	}
}

func TestGenerateParseFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"just a string, no object"`),
	})
	gen := New(mock, fixedConfig())

	_, err := gen.Generate(context.Background(), testItem())
	var perr *ErrParse
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ErrParse", err)
	}
}
