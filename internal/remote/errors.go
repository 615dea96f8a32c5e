package remote

import (
	"errors"
	"fmt"
)

// ErrDocumentTooLarge indicates a document over the store's size cap.
var ErrDocumentTooLarge = errors.New("remote: document exceeds size limit")

// ErrInvalidDocument indicates a document missing its required sections.
var ErrInvalidDocument = errors.New("remote: document missing required sections")

// StatusError is a non-2xx response from the store.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("store returned %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("store returned %s", e.Status)
}
