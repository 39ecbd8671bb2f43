package quizgen

import (
	"math/rand/v2"
	"time"
)

// Config controls generation parameters and batch pacing.
type Config struct {
	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature, TopP and TopK are the sampling parameters sent with
	// every generation request.
	Temperature float64
	TopP        float64
	TopK        int

	// Timeout bounds a single generation request.
	Timeout time.Duration

	// PaceInterval is the fixed delay inserted between consecutive
	// generation calls in a batch, to stay inside provider rate limits.
	PaceInterval time.Duration

	// Rand drives the answer-choice shuffle. When nil, a fresh
	// generator is constructed per LLMGenerator. Tests inject a seeded
	// instance; production code leaves it nil. Never a process global.
	Rand *rand.Rand
}

// DefaultConfig returns the generation parameters the question inventory
// was built with.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    2048,
		Temperature:  0.7,
		TopP:         0.95,
		TopK:         40,
		Timeout:      30 * time.Second,
		PaceInterval: 250 * time.Millisecond,
	}
}
