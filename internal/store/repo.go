package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // filter by purpose label ("" = all)
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID int
	LLMRequestEventData
	Timestamp time.Time
}

// PurposeUsage aggregates token usage per purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token usage per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, honoring opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// QuestionData is the persistable form of a generated question.
type QuestionData struct {
	VocabularyID int
	Kind         string
	Difficulty   int
	QuestionText string
	Translation  string
	Choices      []string
	CorrectIndex int
	Explanation  string
}

// BatchRecord is one generation ledger row. It is written in the same
// transaction as the batch's questions and never updated afterwards.
type BatchRecord struct {
	BatchID          string
	Date             string
	Difficulty       int
	Requested        int
	Succeeded        int
	Failed           int
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalCost        float64
	Status           string
	ErrorMessage     string
}

// LedgerEntry is a stored generation ledger row.
type LedgerEntry struct {
	ID int
	BatchRecord
	CreatedAt time.Time
}
