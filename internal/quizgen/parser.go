package quizgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// questionPayload is the decoded model response before repair and shuffle.
type questionPayload struct {
	QuestionText        string   `json:"questionText"`
	QuestionTranslation string   `json:"questionTranslation"`
	Choices             []string `json:"choices"`
	CorrectIndex        int      `json:"correctIndex"`
	Explanation         string   `json:"explanation"`
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// parseQuestion extracts and validates the question JSON from free-form
// response text. Models wrap the object in fenced code blocks or prose
// often enough that extraction must tolerate both.
func parseQuestion(raw string) (*questionPayload, error) {
	jsonText, ok := extractJSON(raw)
	if !ok {
		return nil, &ErrParse{Raw: raw}
	}

	var p questionPayload
	if err := json.Unmarshal([]byte(jsonText), &p); err != nil {
		if !json.Valid([]byte(jsonText)) {
			return nil, &ErrParse{Raw: raw, Err: err}
		}
		// Valid JSON that doesn't fit the field types is a contract
		// violation, not a parse failure.
		return nil, &ErrSchema{Reason: err.Error()}
	}

	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// extractJSON returns the first JSON object in text: a fenced ```json
// block when present, otherwise the first balanced top-level object.
func extractJSON(text string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return balancedObject(text)
}

// balancedObject scans for the first '{' and returns the substring up to
// its matching '}', honoring string literals and escapes.
func balancedObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

func checkPayload(p *questionPayload) error {
	if p.QuestionText == "" {
		return &ErrSchema{Reason: "questionText is empty"}
	}
	if p.QuestionTranslation == "" {
		return &ErrSchema{Reason: "questionTranslation is empty"}
	}
	if len(p.Choices) != 4 {
		return &ErrSchema{Reason: fmt.Sprintf("expected 4 choices, got %d", len(p.Choices))}
	}
	for i, c := range p.Choices {
		if c == "" {
			return &ErrSchema{Reason: fmt.Sprintf("choice %d is empty", i)}
		}
	}
	if p.CorrectIndex < 0 || p.CorrectIndex > 3 {
		return &ErrSchema{Reason: fmt.Sprintf("correctIndex %d out of range", p.CorrectIndex)}
	}
	if p.Explanation == "" {
		return &ErrSchema{Reason: "explanation is empty"}
	}
	return nil
}
