package quizgen

import (
	"errors"
	"testing"
)

const validQuestionJSON = `{
	"questionText": "The committee decided to ______ the proposal until next quarter.",
	"questionTranslation": "委員会はその提案を来四半期まで延期することを決定した。",
	"choices": ["postpone", "promote", "purchase", "persuade"],
	"correctIndex": 0,
	"explanation": "正解は (A) postpone です。postponeは「延期する」という意味です。"
}`

func TestParseQuestionBareJSON(t *testing.T) {
	p, err := parseQuestion(validQuestionJSON)
	if err != nil {
		t.Fatalf("parseQuestion: %v", err)
	}
	if p.CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want 0", p.CorrectIndex)
	}
	if len(p.Choices) != 4 {
		t.Errorf("len(Choices) = %d, want 4", len(p.Choices))
	}
	if p.Choices[0] != "postpone" {
		t.Errorf("Choices[0] = %q, want %q", p.Choices[0], "postpone")
	}
}

func TestParseQuestionFencedBlock(t *testing.T) {
	raw := "Here is your question:\n```json\n" + validQuestionJSON + "\n```\nGood luck!"
	p, err := parseQuestion(raw)
	if err != nil {
		t.Fatalf("parseQuestion: %v", err)
	}
	if p.QuestionText == "" {
		t.Error("QuestionText is empty")
	}
}

func TestParseQuestionSurroundingProse(t *testing.T) {
	raw := "以下の問題を作成しました。\n" + validQuestionJSON + "\nご確認ください。"
	if _, err := parseQuestion(raw); err != nil {
		t.Fatalf("parseQuestion: %v", err)
	}
}

func TestParseQuestionBracesInsideStrings(t *testing.T) {
	raw := `{
		"questionText": "He said \"{wait}\" before leaving ______.",
		"questionTranslation": "訳",
		"choices": ["promptly", "prompt", "prompting", "prompted"],
		"correctIndex": 0,
		"explanation": "正解は (A) です。"
	}`
	p, err := parseQuestion(raw)
	if err != nil {
		t.Fatalf("parseQuestion: %v", err)
	}
	if p.Choices[0] != "promptly" {
		t.Errorf("Choices[0] = %q", p.Choices[0])
	}
}

func TestParseQuestionNoJSON(t *testing.T) {
	_, err := parseQuestion("I cannot generate a question for this word.")
	var perr *ErrParse
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ErrParse", err)
	}
}

func TestParseQuestionMalformedJSON(t *testing.T) {
	_, err := parseQuestion(`{"questionText": "incomplete`)
	var perr *ErrParse
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ErrParse", err)
	}
}

func TestParseQuestionWrongTypes(t *testing.T) {
	raw := `{"questionText": "q", "questionTranslation": "t", "choices": "not-an-array", "correctIndex": 0, "explanation": "e"}`
	_, err := parseQuestion(raw)
	var serr *ErrSchema
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *ErrSchema", err)
	}
}

func TestParseQuestionContractViolations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"three choices", `{"questionText": "q", "questionTranslation": "t", "choices": ["a", "b", "c"], "correctIndex": 0, "explanation": "e"}`},
		{"empty choice", `{"questionText": "q", "questionTranslation": "t", "choices": ["a", "", "c", "d"], "correctIndex": 0, "explanation": "e"}`},
		{"index out of range", `{"questionText": "q", "questionTranslation": "t", "choices": ["a", "b", "c", "d"], "correctIndex": 4, "explanation": "e"}`},
		{"negative index", `{"questionText": "q", "questionTranslation": "t", "choices": ["a", "b", "c", "d"], "correctIndex": -1, "explanation": "e"}`},
		{"empty question", `{"questionText": "", "questionTranslation": "t", "choices": ["a", "b", "c", "d"], "correctIndex": 0, "explanation": "e"}`},
		{"missing translation", `{"questionText": "q", "choices": ["a", "b", "c", "d"], "correctIndex": 0, "explanation": "e"}`},
		{"empty explanation", `{"questionText": "q", "questionTranslation": "t", "choices": ["a", "b", "c", "d"], "correctIndex": 0, "explanation": ""}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseQuestion(tc.raw)
			var serr *ErrSchema
			if !errors.As(err, &serr) {
				t.Fatalf("err = %v, want *ErrSchema", err)
			}
		})
	}
}
