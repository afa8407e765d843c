package deck

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by Parse. Use errors.Is to match them.
var (
	// ErrEmptyDeck means the document has no header lines.
	ErrEmptyDeck = errors.New("document contains no slides")

	// ErrMalformedMetadata means an opening "---" has no closing delimiter.
	ErrMalformedMetadata = errors.New("metadata block is not terminated")
)

// ParseError attaches the document path to a compile failure.
type ParseError struct {
	Path string // Path to the document that failed to compile
	Err  error  // Underlying error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("compiling deck: %v", e.Err)
	}
	return fmt.Sprintf("compiling deck %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
