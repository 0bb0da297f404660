// Package parser converts raw topic documents into the doc model.
//
// The parser is line-oriented and permissive: it only fails on an
// unterminated code fence or a malformed heading. Everything else
// (empty sections, back-to-back fences, missing titles) is left for the
// rules to judge.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/docstyle/pkg/doc"
)

// maxHeadingLevel is the deepest ATX heading level.
const maxHeadingLevel = 6

// maxIndent is the most leading spaces a heading or fence may carry.
const maxIndent = 3

// fenceChar opens and closes code blocks.
const fenceChar = '`'

// minFenceLength is the shortest valid fence.
const minFenceLength = 3

// untitled is the title used when neither a heading nor a file stem exists.
const untitled = "untitled"

// Parser implements lint.Parser for topic documents.
// It holds no state and is safe for concurrent use.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw document bytes into a Document.
//
// Returns a *ParseError when a fence is never closed or a heading is
// malformed; no partial document is returned in that case.
func (p *Parser) Parse(ctx context.Context, id string, content []byte) (*doc.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}
	return Parse(id, content)
}

// Parse is the context-free form of Parser.Parse.
func Parse(id string, content []byte) (*doc.Document, error) {
	b := newBuilder(id)
	lines := splitLines(content)

	for _, line := range lines {
		if err := b.feed(line); err != nil {
			return nil, err
		}
	}

	return b.finish(len(lines))
}

// splitLines splits content into numbered lines, accepting \n and \r\n.
func splitLines(content []byte) []doc.Line {
	if len(content) == 0 {
		return nil
	}

	raw := bytes.Split(content, []byte("\n"))
	// A trailing newline does not start another line.
	if len(raw[len(raw)-1]) == 0 {
		raw = raw[:len(raw)-1]
	}

	lines := make([]doc.Line, 0, len(raw))
	for i, r := range raw {
		lines = append(lines, doc.Line{
			Number: i + 1,
			Text:   string(bytes.TrimSuffix(r, []byte("\r"))),
		})
	}
	return lines
}

// heading is a recognized ATX heading line.
type heading struct {
	level  int
	text   string
	column int
}

// parseHeading recognizes an ATX heading. ok is false for non-heading lines,
// including a marker run glued to text such as "#1 tip", which is prose.
// A marker with no text yields a non-empty problem.
func parseHeading(text string) (h heading, problem string, ok bool) {
	indent := leadingSpaces(text)
	if indent > maxIndent {
		return heading{}, "", false
	}

	rest := text[indent:]
	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return heading{}, "", false
	}

	after := rest[level:]
	if after != "" && after[0] != ' ' && after[0] != '\t' {
		return heading{}, "", false
	}

	body := strings.TrimLeft(after, " \t")
	column := indent + level + (len(after) - len(body)) + 1
	body = stripClosingSequence(strings.TrimRight(body, " \t"))
	if body == "" {
		return heading{level: level}, "heading has no text", true
	}

	return heading{level: level, text: body, column: column}, "", true
}

// stripClosingSequence removes an optional closing run of '#' characters.
func stripClosingSequence(body string) string {
	trimmed := strings.TrimRight(body, "#")
	if trimmed == body {
		return body
	}
	if trimmed == "" {
		return ""
	}
	if last := trimmed[len(trimmed)-1]; last == ' ' || last == '\t' {
		return strings.TrimRight(trimmed, " \t")
	}
	return body
}

// fence is a recognized opening fence.
type fence struct {
	length int
	info   string
}

// parseOpeningFence recognizes an opening code fence.
func parseOpeningFence(text string) (fence, bool) {
	indent := leadingSpaces(text)
	if indent > maxIndent {
		return fence{}, false
	}

	rest := text[indent:]
	n := 0
	for n < len(rest) && rest[n] == fenceChar {
		n++
	}
	if n < minFenceLength {
		return fence{}, false
	}

	info := strings.TrimSpace(rest[n:])
	if strings.ContainsRune(info, fenceChar) {
		return fence{}, false
	}

	return fence{length: n, info: info}, true
}

// isClosingFence reports whether text closes a fence of the given length.
func isClosingFence(text string, length int) bool {
	indent := leadingSpaces(text)
	if indent > maxIndent {
		return false
	}

	rest := strings.TrimRight(text[indent:], " \t")
	if len(rest) < length {
		return false
	}
	return strings.Trim(rest, string(fenceChar)) == ""
}

func leadingSpaces(text string) int {
	n := 0
	for n < len(text) && text[n] == ' ' {
		n++
	}
	return n
}

// titleFromID derives a title from a document identifier.
func titleFromID(id string) string {
	base := filepath.Base(id)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return untitled
	}
	return stem
}
