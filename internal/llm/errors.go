package llm

import (
	"encoding/json"
	"fmt"
)

// ErrTransport indicates the request never produced a usable envelope:
// timeout, connection failure, non-2xx status (including rate limits),
// or a response body that could not be decoded.
type ErrTransport struct {
	Status int // HTTP status when known, 0 otherwise
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provider transport error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("provider transport error: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates a well-formed envelope with no text payload,
// e.g. a Gemini candidate with no parts or an OpenAI response with no
// choices.
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "provider returned no text payload"
}

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
