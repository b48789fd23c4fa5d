package huggingface

import (
	"errors"
	"fmt"
)

// ErrMalformedResult marks a simplification response that does not have the
// expected [{"generated_text": "..."}] shape.
var ErrMalformedResult = errors.New("malformed simplification result")

// StatusError is a non-2xx answer from the inference API.
type StatusError struct {
	Model      string
	StatusCode int
	Body       string
}

// Error reports the model, the status and up to 256 bytes of the body.
func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("huggingface %s: status %d: %s", e.Model, e.StatusCode, body)
}
