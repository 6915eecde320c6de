package client

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse means a 2xx answer did not carry the expected fields.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrEmptyDocument means the PDF endpoint answered with zero bytes.
	ErrEmptyDocument = errors.New("empty document")
)

// StatusError is a non-success HTTP answer. Body holds the (truncated)
// response text for diagnostics.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: server responded with status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: server responded with status %d: %s", e.Op, e.Status, e.Body)
}
