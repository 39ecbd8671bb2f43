package store

import (
	"context"
	"testing"

	"github.com/example/vocaquiz/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustVocab(t *testing.T, s *Store, word string) int {
	t.Helper()
	item, err := s.VocabRepo().Create(context.Background(), vocab.Item{
		Word: word, Kind: vocab.KindWord, Difficulty: 1, Meaning: "意味",
	})
	if err != nil {
		t.Fatalf("create vocabulary %q: %v", word, err)
	}
	return item.ID
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestVocabCreateAndExists(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()
	ctx := context.Background()

	item, err := repo.Create(ctx, vocab.Item{
		Word:       "postpone",
		Kind:       vocab.KindWord,
		Difficulty: 2,
		Meaning:    "延期する",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == 0 {
		t.Error("expected assigned id")
	}

	// Case-insensitive duplicate detection.
	found, err := repo.Exists(ctx, "POSTPONE", vocab.KindWord)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !found {
		t.Error("expected case-insensitive match")
	}

	// Same word as an idiom is a different entry.
	found, err = repo.Exists(ctx, "postpone", vocab.KindIdiom)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if found {
		t.Error("kind must be part of the identity")
	}
}

func TestVocabByDifficultyExcludes(t *testing.T) {
	s := openTestStore(t)
	repo := s.VocabRepo()
	ctx := context.Background()

	var first int
	for _, w := range []string{"alpha", "beta", "gamma"} {
		item, err := repo.Create(ctx, vocab.Item{
			Word: w, Kind: vocab.KindWord, Difficulty: 1, Meaning: "意味",
		})
		if err != nil {
			t.Fatalf("create %s: %v", w, err)
		}
		if first == 0 {
			first = item.ID
		}
	}

	items, err := repo.ByDifficulty(ctx, 1, vocab.KindWord, 10, []int{first})
	if err != nil {
		t.Fatalf("by difficulty: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.ID == first {
			t.Errorf("excluded id %d returned", first)
		}
	}
}

func TestCommitBatchAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	v1 := mustVocab(t, s, "postpone")
	v2 := mustVocab(t, s, "promote")

	rec := BatchRecord{
		BatchID:          "batch-1",
		Date:             "2024-05-01",
		Difficulty:       1,
		Requested:        2,
		Succeeded:        2,
		Failed:           0,
		Model:            "gemini-2.0-flash",
		PromptTokens:     600,
		CompletionTokens: 300,
		TotalCost:        0.000165,
		Status:           "SUCCESS",
	}
	questions := []QuestionData{
		{
			VocabularyID: v1, Kind: "WORD", Difficulty: 1,
			QuestionText: "q1 _____", Translation: "訳1",
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0, Explanation: "正解は (A) です。",
		},
		{
			VocabularyID: v2, Kind: "WORD", Difficulty: 1,
			QuestionText: "q2 _____", Translation: "訳2",
			Choices:      []string{"e", "f", "g", "h"},
			CorrectIndex: 2, Explanation: "正解は (C) です。",
		},
	}

	if err := s.CommitBatch(ctx, rec, questions); err != nil {
		t.Fatalf("commit batch: %v", err)
	}

	got, err := s.QuestionRepo().QuestionsOn(ctx, "2024-05-01", 1)
	if err != nil {
		t.Fatalf("questions on: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if got[0].Choices[got[0].CorrectIndex] != "a" {
		t.Errorf("choices round-trip broken: %+v", got[0])
	}

	entry, err := s.LedgerRepo().GetByBatch(ctx, "batch-1")
	if err != nil {
		t.Fatalf("get ledger: %v", err)
	}
	if entry == nil {
		t.Fatal("ledger entry missing")
	}
	if entry.Status != "SUCCESS" || entry.Succeeded != 2 {
		t.Errorf("ledger entry = %+v", entry)
	}
}

func TestCommitBatchDuplicateBatchIDRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	vid := mustVocab(t, s, "persuade")

	rec := BatchRecord{
		BatchID: "dup", Date: "2024-05-01", Difficulty: 1,
		Requested: 1, Succeeded: 1, Model: "m", Status: "SUCCESS",
	}
	q := []QuestionData{{
		VocabularyID: vid, Kind: "WORD", Difficulty: 1,
		QuestionText: "q _____", Choices: []string{"a", "b", "c", "d"},
		CorrectIndex: 0, Explanation: "e",
	}}

	if err := s.CommitBatch(ctx, rec, q); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	if err := s.CommitBatch(ctx, rec, q); err == nil {
		t.Fatal("duplicate batch id: expected error")
	}

	// The second batch's question must not have been persisted.
	n, err := s.QuestionRepo().CountOn(ctx, "2024-05-01", 1)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("question count = %d, want 1 after rollback", n)
	}
}

func TestCandidatesFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	vid := mustVocab(t, s, "purchase")

	commit := func(batch, date, translation string, active bool) {
		t.Helper()
		rec := BatchRecord{
			BatchID: batch, Date: date, Difficulty: 1,
			Requested: 1, Succeeded: 1, Model: "m", Status: "SUCCESS",
		}
		q := []QuestionData{{
			VocabularyID: vid, Kind: "WORD", Difficulty: 1,
			QuestionText: "q _____", Translation: translation,
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0, Explanation: "e",
		}}
		if err := s.CommitBatch(ctx, rec, q); err != nil {
			t.Fatalf("commit %s: %v", batch, err)
		}
		if !active {
			qs, err := s.QuestionRepo().QuestionsOn(ctx, date, 1)
			if err != nil || len(qs) == 0 {
				t.Fatalf("load %s: %v", batch, err)
			}
			if err := s.QuestionRepo().Deactivate(ctx, qs[len(qs)-1].ID); err != nil {
				t.Fatalf("deactivate: %v", err)
			}
		}
	}

	commit("b1", "2024-04-29", "訳あり", true)   // eligible
	commit("b2", "2024-04-30", "", true)       // no translation
	commit("b3", "2024-04-28", "訳あり", false)  // inactive
	commit("b4", "2024-05-01", "訳あり", true)   // today, not a candidate

	got, err := s.QuestionRepo().Candidates(ctx, "2024-05-01", 1)
	if err != nil {
		t.Fatalf("candidates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].GeneratedDate != "2024-04-29" {
		t.Errorf("candidate date = %s", got[0].GeneratedDate)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen",
			InputTokens: 300, OutputTokens: 150, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen",
			InputTokens: 280, OutputTokens: 0, LatencyMs: 400, Success: false,
			ErrorMessage: "transport error (status 429)"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("got %d purpose rows, want 1", len(byPurpose))
	}
	if byPurpose[0].Calls != 2 || byPurpose[0].InputTokens != 580 {
		t.Errorf("purpose usage = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].OutputTokens != 150 {
		t.Errorf("model usage = %+v", byModel)
	}
}
