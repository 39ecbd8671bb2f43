package quizgen

import (
	"math/rand/v2"
	"regexp"
)

// shuffleChoices applies a Fisher-Yates permutation to choices in place
// using rng and returns the new position of the choice previously at
// correctIndex. Tracking is by position, not by value, so duplicate
// choice texts cannot misplace the correct answer. The shuffle exists to
// decorrelate the model's positional bias from the stored answer.
func shuffleChoices(choices []string, correctIndex int, rng *rand.Rand) int {
	idx := correctIndex
	for i := len(choices) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		choices[i], choices[j] = choices[j], choices[i]
		switch idx {
		case i:
			idx = j
		case j:
			idx = i
		}
	}
	return idx
}

var (
	answerLetter   = regexp.MustCompile(`正解は\s*\(([A-D])\)`)
	fallbackLetter = regexp.MustCompile(`\(([A-D])\)`)
)

// resyncExplanation rewrites the letter reference in the explanation to
// match the post-shuffle correct index (0→A … 3→D). Only the first
// occurrence is rewritten; this is a narrow textual substitution against
// the 正解は (X) convention, with a bare (X) token as fallback.
func resyncExplanation(explanation string, correctIndex int) string {
	letter := string(rune('A' + correctIndex))

	if out, ok := replaceLetterOnce(answerLetter, explanation, letter); ok {
		return out
	}
	out, _ := replaceLetterOnce(fallbackLetter, explanation, letter)
	return out
}

// replaceLetterOnce substitutes capture group 1 of the first match with
// letter. Reports whether a match was found.
func replaceLetterOnce(re *regexp.Regexp, s, letter string) (string, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false
	}
	start, end := loc[2], loc[3]
	return s[:start] + letter + s[end:], true
}
