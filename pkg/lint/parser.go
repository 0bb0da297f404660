package lint

import (
	"context"

	"github.com/yaklabco/docstyle/pkg/doc"
)

// Parser parses raw topic documents into the doc model.
//
// The lint package defines this interface in the consumer package.
// Implementations (e.g., pkg/parser) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (id, content) pair,
//   - safe for concurrent use by multiple goroutines,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw document bytes into a Document.
	//
	// On failure it returns nil and an error; a *parser.ParseError marks a
	// structural problem in the document itself.
	Parse(ctx context.Context, id string, content []byte) (*doc.Document, error)
}
