package vocab

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInventory serves canned items per tier and records exclusions.
type fakeInventory struct {
	today      []Item
	words      []Item
	idioms     []Item
	fallback   []Item
	wordLimit  int
	idiomLimit int
}

func (f *fakeInventory) CreatedOn(_ context.Context, _ time.Time, _ int) ([]Item, error) {
	return append([]Item(nil), f.today...), nil
}

func (f *fakeInventory) ByDifficulty(_ context.Context, _ int, kind Kind, limit int, exclude []int) ([]Item, error) {
	pool := f.words
	if kind == KindIdiom {
		pool = f.idioms
		f.idiomLimit = limit
	} else {
		f.wordLimit = limit
	}
	return takeExcluding(pool, limit, exclude), nil
}

func (f *fakeInventory) AnyDifficulty(_ context.Context, limit int, exclude []int) ([]Item, error) {
	return takeExcluding(f.fallback, limit, exclude), nil
}

func takeExcluding(pool []Item, limit int, exclude []int) []Item {
	excluded := make(map[int]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []Item
	for _, it := range pool {
		if len(out) == limit {
			break
		}
		if !excluded[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

func items(kind Kind, startID, n int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{ID: startID + i, Word: "w", Kind: kind, Difficulty: 1, Meaning: "m"}
	}
	return out
}

func TestSelect_TodayItemsIncludedInFull(t *testing.T) {
	inv := &fakeInventory{
		today: items(KindWord, 1, 3),
		words: items(KindWord, 100, 10),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 1, 5, time.Now())
	require.NoError(t, err)
	require.Len(t, got, 5)

	byID := make(map[int]bool)
	for _, it := range got {
		byID[it.ID] = true
	}
	for id := 1; id <= 3; id++ {
		assert.True(t, byID[id], "today's item %d must be selected", id)
	}
}

func TestSelect_CeilFloorSplit(t *testing.T) {
	inv := &fakeInventory{
		words:  items(KindWord, 1, 10),
		idioms: items(KindIdiom, 100, 10),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 1, 5, time.Now())
	require.NoError(t, err)
	require.Len(t, got, 5)

	// 5 remaining splits as 3 words / 2 idioms.
	assert.Equal(t, 3, inv.wordLimit)
	assert.Equal(t, 2, inv.idiomLimit)
}

func TestSelect_NoDuplicates(t *testing.T) {
	shared := items(KindWord, 1, 4)
	inv := &fakeInventory{
		today:    shared[:2],
		words:    shared, // overlaps today's picks
		fallback: items(KindIdiom, 200, 10),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 1, 6, time.Now())
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, it := range got {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestSelect_FallbackAcrossDifficulties(t *testing.T) {
	inv := &fakeInventory{
		words:    items(KindWord, 1, 1),
		fallback: items(KindWord, 50, 10),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 3, 4, time.Now())
	require.NoError(t, err)
	assert.Len(t, got, 4, "fallback tier should fill the batch")
}

func TestSelect_GlobalExhaustionIsSoft(t *testing.T) {
	inv := &fakeInventory{
		words: items(KindWord, 1, 2),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 1, 10, time.Now())
	require.NoError(t, err)
	assert.Len(t, got, 2, "an exhausted inventory returns what it has")
}

func TestSelect_TruncatesToCount(t *testing.T) {
	inv := &fakeInventory{
		today: items(KindWord, 1, 8),
	}
	sel := NewSelector(inv)

	got, err := sel.Select(context.Background(), 1, 5, time.Now())
	require.NoError(t, err)
	assert.Len(t, got, 5)
}
