package quizgen

import "strings"

// repairIndex cross-checks the model-declared correct index against the
// choice that literally contains the target word (case-insensitive
// substring). The literal match is ground truth: models misreport their
// own answer position often enough that the declared index cannot be
// trusted when the two disagree. When the target appears in more than
// one choice, the first matching index wins. When it appears in none,
// the declared index stands (nothing to repair against).
func repairIndex(choices []string, declared int, target string) Repair {
	needle := strings.ToLower(target)

	found := -1
	for i, c := range choices {
		if strings.Contains(strings.ToLower(c), needle) {
			found = i
			break
		}
	}

	if found < 0 || found == declared {
		return Repair{OriginalIndex: declared, FinalIndex: declared}
	}
	return Repair{Repaired: true, OriginalIndex: declared, FinalIndex: found}
}
