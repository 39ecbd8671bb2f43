package quizgen

import (
	"strings"
	"testing"

	"github.com/example/vocaquiz/internal/vocab"
)

func TestBuildUserMessageWord(t *testing.T) {
	msg := buildUserMessage(vocab.Item{
		Word:         "postpone",
		Kind:         vocab.KindWord,
		Difficulty:   vocab.DifficultyBasic,
		Meaning:      "延期する",
		PartOfSpeech: "動詞",
	})

	for _, want := range []string{"postpone", "延期する", "動詞", "基礎レベル"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessageIdiomWithoutPOS(t *testing.T) {
	msg := buildUserMessage(vocab.Item{
		Word:       "come up with",
		Kind:       vocab.KindIdiom,
		Difficulty: vocab.DifficultyExpert,
		Meaning:    "思いつく",
	})

	if !strings.Contains(msg, "イディオム") {
		t.Errorf("message missing idiom marker:\n%s", msg)
	}
	if strings.Contains(msg, "品詞") {
		t.Errorf("message should omit part of speech when empty:\n%s", msg)
	}
}
