package parser

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel matched by every *ParseError via errors.Is.
var ErrParse = errors.New("parse error")

// ErrorKind classifies a parse failure.
type ErrorKind string

const (
	// KindUnterminatedFence is an opening fence with no closing fence
	// before the end of input, or one whose closer is missing because a
	// heading and then a new tagged fence follow it.
	KindUnterminatedFence ErrorKind = "unterminated-fence"

	// KindMalformedHeading is a heading marker with no text.
	KindMalformedHeading ErrorKind = "malformed-heading"
)

// ParseError reports why a document could not be parsed.
type ParseError struct {
	// Document is the identifier passed to Parse.
	Document string

	// Line is the 1-based line the error is attributed to.
	Line int

	// Kind classifies the failure.
	Kind ErrorKind

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", e.Document, e.Line, e.Message)
}

// Is lets errors.Is(err, ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
