package prose

import "regexp"

// callPattern matches an identifier, optionally dotted, written with empty
// call parentheses.
var callPattern = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*(?:\.[A-Za-z_$][A-Za-z0-9_$]*)*\(\)`)

// Reference is a name written with trailing parentheses.
type Reference struct {
	// Line and Column locate the start of the match (1-based).
	Line   int
	Column int

	// Name is the match without the parentheses.
	Name string

	// InCode is set when the match lies inside an inline code span.
	InCode bool
}

// CallReferences returns every identifier() occurrence in source order.
func (t *Text) CallReferences() []Reference {
	var refs []Reference
	for _, m := range callPattern.FindAllIndex(t.source, -1) {
		line, column := t.Position(m[0])
		refs = append(refs, Reference{
			Line:   line,
			Column: column,
			Name:   string(t.source[m[0] : m[1]-2]),
			InCode: t.inCodeOffset(m[0]),
		})
	}
	return refs
}

func (t *Text) inCodeOffset(pos int) bool {
	for _, s := range t.code {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}
