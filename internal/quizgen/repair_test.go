package quizgen

import "testing"

func TestRepairIndexAgreement(t *testing.T) {
	choices := []string{"postpone", "promote", "purchase", "persuade"}
	r := repairIndex(choices, 0, "postpone")
	if r.Repaired {
		t.Errorf("Repaired = true, want false")
	}
	if r.FinalIndex != 0 {
		t.Errorf("FinalIndex = %d, want 0", r.FinalIndex)
	}
}

func TestRepairIndexMismatch(t *testing.T) {
	choices := []string{"promote", "postpone", "purchase", "persuade"}
	r := repairIndex(choices, 0, "postpone")
	if !r.Repaired {
		t.Fatal("Repaired = false, want true")
	}
	if r.OriginalIndex != 0 || r.FinalIndex != 1 {
		t.Errorf("indexes = (%d, %d), want (0, 1)", r.OriginalIndex, r.FinalIndex)
	}
}

func TestRepairIndexCaseInsensitive(t *testing.T) {
	choices := []string{"alpha", "Postpone", "gamma", "delta"}
	r := repairIndex(choices, 3, "POSTPONE")
	if !r.Repaired || r.FinalIndex != 1 {
		t.Errorf("got %+v, want repair to index 1", r)
	}
}

func TestRepairIndexSubstring(t *testing.T) {
	// Inflected choices still contain the base form.
	choices := []string{"running", "postponed", "taken", "given"}
	r := repairIndex(choices, 2, "postpone")
	if !r.Repaired || r.FinalIndex != 1 {
		t.Errorf("got %+v, want repair to index 1", r)
	}
}

func TestRepairIndexFirstMatchWins(t *testing.T) {
	choices := []string{"x", "postpone", "postponed", "y"}
	r := repairIndex(choices, 3, "postpone")
	if r.FinalIndex != 1 {
		t.Errorf("FinalIndex = %d, want first match 1", r.FinalIndex)
	}
}

func TestRepairIndexNoMatch(t *testing.T) {
	// Target absent from every choice: trust the declared index.
	choices := []string{"a", "b", "c", "d"}
	r := repairIndex(choices, 2, "postpone")
	if r.Repaired {
		t.Error("Repaired = true, want false")
	}
	if r.FinalIndex != 2 {
		t.Errorf("FinalIndex = %d, want 2", r.FinalIndex)
	}
}
