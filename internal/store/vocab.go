package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/example/vocaquiz/ent"
	entvocab "github.com/example/vocaquiz/ent/vocabulary"
	"github.com/example/vocaquiz/internal/vocab"
)

// VocabRepo is the ent-backed vocabulary repository. It implements both
// vocab.Inventory (selection side) and vocab.Writer (ingestion side).
type VocabRepo struct {
	client *ent.Client
}

var (
	_ vocab.Inventory = (*VocabRepo)(nil)
	_ vocab.Writer    = (*VocabRepo)(nil)
)

// CreatedOn returns all items at the given difficulty whose created_at
// falls on the given calendar day (local time).
func (r *VocabRepo) CreatedOn(ctx context.Context, day time.Time, difficulty int) ([]vocab.Item, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rows, err := r.client.Vocabulary.Query().
		Where(
			entvocab.DifficultyEQ(difficulty),
			entvocab.CreatedAtGTE(start),
			entvocab.CreatedAtLT(end),
		).
		Order(ent.Asc(entvocab.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary created on %s: %w", start.Format("2006-01-02"), err)
	}
	return vocabItems(rows), nil
}

// ByDifficulty returns up to limit items of one kind at the given
// difficulty, excluding the given ids, in random order. The draw is
// shuffled in Go rather than with ORDER BY RANDOM() so the query plan
// stays index-backed.
func (r *VocabRepo) ByDifficulty(ctx context.Context, difficulty int, kind vocab.Kind, limit int, exclude []int) ([]vocab.Item, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.client.Vocabulary.Query().
		Where(
			entvocab.DifficultyEQ(difficulty),
			entvocab.KindEQ(string(kind)),
			entvocab.IDNotIn(exclude...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s vocabulary at difficulty %d: %w", kind, difficulty, err)
	}
	return drawRandom(rows, limit), nil
}

// AnyDifficulty returns up to limit items of any kind and difficulty,
// excluding the given ids, in random order.
func (r *VocabRepo) AnyDifficulty(ctx context.Context, limit int, exclude []int) ([]vocab.Item, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.client.Vocabulary.Query().
		Where(entvocab.IDNotIn(exclude...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query fallback vocabulary: %w", err)
	}
	return drawRandom(rows, limit), nil
}

// Exists reports whether an item with the same word (case-insensitive)
// and kind is already in the inventory.
func (r *VocabRepo) Exists(ctx context.Context, word string, kind vocab.Kind) (bool, error) {
	found, err := r.client.Vocabulary.Query().
		Where(
			entvocab.WordEqualFold(word),
			entvocab.KindEQ(string(kind)),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check vocabulary %q: %w", word, err)
	}
	return found, nil
}

// Create persists a new item and returns it with its assigned id.
func (r *VocabRepo) Create(ctx context.Context, item vocab.Item) (vocab.Item, error) {
	row, err := r.client.Vocabulary.Create().
		SetWord(item.Word).
		SetKind(string(item.Kind)).
		SetDifficulty(item.Difficulty).
		SetMeaning(item.Meaning).
		SetPartOfSpeech(item.PartOfSpeech).
		SetExample(item.Example).
		Save(ctx)
	if err != nil {
		return vocab.Item{}, fmt.Errorf("create vocabulary %q: %w", item.Word, err)
	}
	return vocabItem(row), nil
}

// Get returns one item by id, or nil if not found.
func (r *VocabRepo) Get(ctx context.Context, id int) (*vocab.Item, error) {
	row, err := r.client.Vocabulary.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vocabulary %d: %w", id, err)
	}
	item := vocabItem(row)
	return &item, nil
}

// List returns items filtered by difficulty and kind (zero values mean
// no filter), newest first, up to limit (0 = unlimited).
func (r *VocabRepo) List(ctx context.Context, difficulty int, kind vocab.Kind, limit int) ([]vocab.Item, error) {
	q := r.client.Vocabulary.Query()
	if difficulty != 0 {
		q = q.Where(entvocab.DifficultyEQ(difficulty))
	}
	if kind != "" {
		q = q.Where(entvocab.KindEQ(string(kind)))
	}
	q = q.Order(ent.Desc(entvocab.FieldCreatedAt), ent.Desc(entvocab.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}
	return vocabItems(rows), nil
}

// Count returns the number of items at the given difficulty (0 = all).
func (r *VocabRepo) Count(ctx context.Context, difficulty int) (int, error) {
	q := r.client.Vocabulary.Query()
	if difficulty != 0 {
		q = q.Where(entvocab.DifficultyEQ(difficulty))
	}
	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count vocabulary: %w", err)
	}
	return n, nil
}

func drawRandom(rows []*ent.Vocabulary, limit int) []vocab.Item {
	items := vocabItems(rows)
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func vocabItems(rows []*ent.Vocabulary) []vocab.Item {
	items := make([]vocab.Item, len(rows))
	for i, row := range rows {
		items[i] = vocabItem(row)
	}
	return items
}

func vocabItem(row *ent.Vocabulary) vocab.Item {
	return vocab.Item{
		ID:           row.ID,
		Word:         row.Word,
		Kind:         vocab.Kind(row.Kind),
		Difficulty:   row.Difficulty,
		Meaning:      row.Meaning,
		PartOfSpeech: row.PartOfSpeech,
		Example:      row.Example,
		CreatedAt:    row.CreatedAt,
	}
}
