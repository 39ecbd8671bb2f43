package quizgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/example/vocaquiz/internal/llm"
	"github.com/example/vocaquiz/internal/vocab"
)

// Generator produces a validated question draft for one vocabulary item.
type Generator interface {
	// Generate returns a shuffle-consistent Draft or a typed error
	// (llm.ErrTransport, llm.ErrEmptyResponse, ErrParse, ErrSchema).
	// All errors are item-level; batch policy lives in Batch.
	Generate(ctx context.Context, item vocab.Item) (*Draft, error)
}

// LLMGenerator implements Generator using a text-generation provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	rng      *rand.Rand
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LLMGenerator{provider: provider, config: cfg, rng: rng}
}

// Generate runs the full per-item pipeline: provider call, JSON
// extraction and validation, correct-index repair, choice shuffle,
// explanation letter resync.
func (g *LLMGenerator) Generate(ctx context.Context, item vocab.Item) (*Draft, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(item)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
		TopP:        g.config.TopP,
		TopK:        g.config.TopK,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate question for %q: %w", item.Word, err)
	}

	payload, err := parseQuestion(string(resp.Content))
	if err != nil {
		return nil, fmt.Errorf("parse question for %q: %w", item.Word, err)
	}

	repair := repairIndex(payload.Choices, payload.CorrectIndex, item.Word)
	if repair.Repaired {
		fmt.Fprintf(os.Stderr, "warning: corrected answer index for %q: model declared %d, literal match at %d\n",
			item.Word, repair.OriginalIndex, repair.FinalIndex)
	}

	correctIndex := shuffleChoices(payload.Choices, repair.FinalIndex, g.rng)
	explanation := resyncExplanation(payload.Explanation, correctIndex)

	return &Draft{
		VocabularyID: item.ID,
		Kind:         item.Kind,
		Difficulty:   item.Difficulty,
		QuestionText: payload.QuestionText,
		Translation:  payload.QuestionTranslation,
		Choices:      payload.Choices,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
		Repair:       repair,
		Usage:        resp.Usage,
	}, nil
}
