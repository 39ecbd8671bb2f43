package quizgen

import "fmt"

// ErrParse indicates the response text contained no JSON-shaped substring,
// or the extracted substring did not deserialize.
type ErrParse struct {
	Raw string // the response text, for diagnostics
	Err error
}

func (e *ErrParse) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no parsable question JSON in response: %v", e.Err)
	}
	return "no parsable question JSON in response"
}

func (e *ErrParse) Unwrap() error { return e.Err }

// ErrSchema indicates well-formed JSON that violates the question
// contract: missing fields, wrong choice count, index out of range.
type ErrSchema struct {
	Reason string
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("question payload rejected: %s", e.Reason)
}
