package vocab

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Inventory is the read-only view of the vocabulary store that selection
// needs. Implementations return items in random order for the ByDifficulty
// and AnyDifficulty draws; CreatedOn order does not matter because tier 1
// is always taken in full.
type Inventory interface {
	// CreatedOn returns all items of both kinds created on the given
	// calendar day at the given difficulty.
	CreatedOn(ctx context.Context, day time.Time, difficulty int) ([]Item, error)

	// ByDifficulty returns up to limit items of one kind at the given
	// difficulty, excluding the given ids, in random order.
	ByDifficulty(ctx context.Context, difficulty int, kind Kind, limit int, exclude []int) ([]Item, error)

	// AnyDifficulty returns up to limit items of any kind and difficulty,
	// excluding the given ids, in random order.
	AnyDifficulty(ctx context.Context, limit int, exclude []int) ([]Item, error)
}

// Selector picks the working set for a generation batch.
type Selector struct {
	inv Inventory
}

// NewSelector creates a Selector over the given inventory.
func NewSelector(inv Inventory) *Selector {
	return &Selector{inv: inv}
}

// Select returns up to count items for the given difficulty with no
// duplicates, in three priority tiers:
//
//  1. items created on day at the requested difficulty, in full;
//  2. older items at the requested difficulty, split as evenly as
//     possible between words (ceil) and idioms (floor);
//  3. items of any difficulty, so a batch is never starved while the
//     inventory has anything left.
//
// The union is shuffled and truncated to count. Returning fewer than
// count items means the inventory is globally exhausted; callers should
// treat that as degradation, not an error.
func (s *Selector) Select(ctx context.Context, difficulty, count int, day time.Time) ([]Item, error) {
	picked, err := s.inv.CreatedOn(ctx, day, difficulty)
	if err != nil {
		return nil, fmt.Errorf("select today's vocabulary: %w", err)
	}

	if remaining := count - len(picked); remaining > 0 {
		wordCount := (remaining + 1) / 2
		idiomCount := remaining - wordCount

		words, err := s.inv.ByDifficulty(ctx, difficulty, KindWord, wordCount, ids(picked))
		if err != nil {
			return nil, fmt.Errorf("select words at difficulty %d: %w", difficulty, err)
		}
		picked = append(picked, words...)

		idioms, err := s.inv.ByDifficulty(ctx, difficulty, KindIdiom, idiomCount, ids(picked))
		if err != nil {
			return nil, fmt.Errorf("select idioms at difficulty %d: %w", difficulty, err)
		}
		picked = append(picked, idioms...)
	}

	if remaining := count - len(picked); remaining > 0 {
		fallback, err := s.inv.AnyDifficulty(ctx, remaining, ids(picked))
		if err != nil {
			return nil, fmt.Errorf("select fallback vocabulary: %w", err)
		}
		picked = append(picked, fallback...)
	}

	// Mix words and idioms. This order feeds generation only; the daily
	// set gets its own deterministic ordering at assembly time.
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	if len(picked) > count {
		picked = picked[:count]
	}
	return picked, nil
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
