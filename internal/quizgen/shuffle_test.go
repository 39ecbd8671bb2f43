package quizgen

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"
)

func TestShuffleChoicesTracksCorrect(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		choices := []string{"postpone", "promote", "purchase", "persuade"}
		idx := shuffleChoices(choices, 0, rng)
		if choices[idx] != "postpone" {
			t.Errorf("seed %d: choices[%d] = %q, want %q", seed, idx, choices[idx], "postpone")
		}
	}
}

func TestShuffleChoicesPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	choices := []string{"a", "b", "c", "d"}
	shuffleChoices(choices, 2, rng)

	sorted := append([]string(nil), choices...)
	sort.Strings(sorted)
	if strings.Join(sorted, ",") != "a,b,c,d" {
		t.Errorf("choices after shuffle = %v", choices)
	}
}

func TestShuffleChoicesDuplicateTexts(t *testing.T) {
	// Positional tracking: with duplicate texts the correct slot must
	// still follow the element that started at the correct index.
	for seed := uint64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		choices := []string{"same", "same", "same", "other"}
		idx := shuffleChoices(choices, 3, rng)
		if choices[idx] != "other" {
			t.Errorf("seed %d: choices[%d] = %q, want %q", seed, idx, choices[idx], "other")
		}
	}
}

func TestShuffleChoicesDeterministic(t *testing.T) {
	a := []string{"w", "x", "y", "z"}
	b := []string{"w", "x", "y", "z"}
	ia := shuffleChoices(a, 1, rand.New(rand.NewPCG(42, 0)))
	ib := shuffleChoices(b, 1, rand.New(rand.NewPCG(42, 0)))
	if ia != ib {
		t.Errorf("indexes differ: %d vs %d", ia, ib)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("orders differ at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestResyncExplanation(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		index int
		want  string
	}{
		{
			"standard marker",
			"正解は (A) postpone です。延期するという意味です。",
			2,
			"正解は (C) postpone です。延期するという意味です。",
		},
		{
			"marker without space",
			"正解は(B)です。",
			0,
			"正解は(A)です。",
		},
		{
			"first occurrence only",
			"正解は (A) です。(B) promote は「昇進させる」です。",
			3,
			"正解は (D) です。(B) promote は「昇進させる」です。",
		},
		{
			"fallback bare letter",
			"答えは (B) です。",
			2,
			"答えは (C) です。",
		},
		{
			"no letter marker",
			"postponeは「延期する」という意味です。",
			1,
			"postponeは「延期する」という意味です。",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resyncExplanation(tc.in, tc.index)
			if got != tc.want {
				t.Errorf("resyncExplanation = %q, want %q", got, tc.want)
			}
		})
	}
}
