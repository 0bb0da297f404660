// Package prose analyzes the inline structure of prose blocks: where the
// inline code spans are, what the text reads like with code removed, how
// many sentences it holds, and how wide each line is.
package prose

import (
	"bytes"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/docstyle/pkg/doc"
)

// codePlaceholder stands in for an inline code span when counting sentences.
const codePlaceholder = "code"

// markdown is shared; goldmark parsers keep per-call state in the parser context.
var markdown = goldmark.New()

// span is a half-open byte range into the joined source.
type span struct {
	start int
	end   int
}

// Text is a prose block parsed for inline structure.
type Text struct {
	lines  []doc.Line
	source []byte
	starts []int
	code   []span
	plain  string
}

// Analyze parses lines as one Markdown block.
func Analyze(lines []doc.Line) *Text {
	t := &Text{lines: lines}

	var buf bytes.Buffer
	for i, l := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		t.starts = append(t.starts, buf.Len())
		buf.WriteString(l.Text)
	}
	t.source = buf.Bytes()

	root := markdown.Parser().Parse(text.NewReader(t.source))
	t.walk(root)

	return t
}

// walk collects code span ranges and the plain text of the block.
func (t *Text) walk(root ast.Node) {
	var plain strings.Builder

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && plain.Len() > 0 {
				plain.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.CodeSpan:
			if s, ok := codeSpanRange(node, t.source); ok {
				t.code = append(t.code, s)
			}
			plain.WriteString(codePlaceholder)
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			plain.Write(node.Segment.Value(t.source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				plain.WriteByte(' ')
			}
		case *ast.String:
			plain.Write(node.Value)
		case *ast.AutoLink:
			plain.Write(node.Label(t.source))
		}
		return ast.WalkContinue, nil
	})

	t.plain = strings.Join(strings.Fields(plain.String()), " ")
}

// codeSpanRange returns the byte range of a code span including its
// backtick delimiters.
func codeSpanRange(node *ast.CodeSpan, source []byte) (span, bool) {
	s := span{start: -1, end: -1}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		t, ok := child.(*ast.Text)
		if !ok {
			continue
		}
		if s.start == -1 || t.Segment.Start < s.start {
			s.start = t.Segment.Start
		}
		if t.Segment.Stop > s.end {
			s.end = t.Segment.Stop
		}
	}
	if s.start == -1 {
		return span{}, false
	}

	for s.start > 0 && source[s.start-1] == '`' {
		s.start--
	}
	for s.end < len(source) && source[s.end] == '`' {
		s.end++
	}
	return s, true
}

// Sentences returns the number of sentences in the block.
func (t *Text) Sentences() int {
	return CountSentences(t.plain)
}

// Position converts a byte offset into the joined block into a line
// number and 1-based rune column.
func (t *Text) Position(offset int) (line, column int) {
	i := sort.Search(len(t.starts), func(k int) bool { return t.starts[k] > offset }) - 1
	if i < 0 {
		return 0, 0
	}
	l := t.lines[i]
	within := offset - t.starts[i]
	if within > len(l.Text) {
		within = len(l.Text)
	}
	return l.Number, utf8.RuneCountInString(l.Text[:within]) + 1
}
