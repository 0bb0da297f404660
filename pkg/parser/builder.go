package parser

import (
	"fmt"

	"github.com/yaklabco/docstyle/pkg/doc"
)

// target names where the next prose line belongs.
type target int

const (
	targetIntro target = iota
	targetSummary
	targetExplanation
)

// builder accumulates a Document one line at a time.
type builder struct {
	doc *doc.Document

	target target

	// open is the example being read while inside a fence.
	open      *doc.CodeExample
	openFence fence
	// headingInFence is the first heading-like line seen inside the open
	// fence, or zero.
	headingInFence int
	sawHeading     bool
}

func newBuilder(id string) *builder {
	return &builder{
		doc:    &doc.Document{ID: id},
		target: targetIntro,
	}
}

// feed consumes one line.
func (b *builder) feed(line doc.Line) error {
	if b.open != nil {
		return b.feedFenced(line)
	}

	if h, problem, ok := parseHeading(line.Text); ok {
		if problem != "" {
			return b.errorf(line.Number, KindMalformedHeading, "%s", problem)
		}
		b.startHeading(h, line.Number)
		return nil
	}

	if f, ok := parseOpeningFence(line.Text); ok {
		b.openExample(f, line.Number)
		return nil
	}

	b.appendProse(line)
	return nil
}

// feedFenced consumes a line while a fence is open.
func (b *builder) feedFenced(line doc.Line) error {
	if isClosingFence(line.Text, b.openFence.length) {
		b.open.CloseLine = line.Number
		b.closeExample()
		return nil
	}

	// A "# comment" line is ordinary source in shell, YAML, or properties
	// examples. It only ends the fence when a new tagged fence opens after
	// it before any closing fence, which means the closer was forgotten.
	if h, _, ok := parseHeading(line.Text); ok && h.text != "" && b.headingInFence == 0 {
		b.headingInFence = line.Number
	}
	if f, ok := parseOpeningFence(line.Text); ok && f.info != "" && b.headingInFence != 0 {
		return b.unterminated()
	}

	b.open.Source = append(b.open.Source, line)
	return nil
}

// startHeading records the title or opens a new section.
func (b *builder) startHeading(h heading, lineNum int) {
	first := !b.sawHeading
	b.sawHeading = true

	if first && h.level == 1 {
		b.doc.Title = h.text
		b.doc.TitleLine = lineNum
		b.doc.TitleColumn = h.column
		b.target = targetIntro
		return
	}

	b.doc.Sections = append(b.doc.Sections, doc.Section{
		Index:         len(b.doc.Sections),
		Heading:       h.text,
		Level:         h.level,
		Line:          lineNum,
		HeadingColumn: h.column,
	})
	b.target = targetSummary
}

// openExample starts a new code example.
func (b *builder) openExample(f fence, lineNum int) {
	language := f.info
	for i, r := range language {
		if r == ' ' || r == '\t' {
			language = language[:i]
			break
		}
	}

	b.headingInFence = 0
	b.open = &doc.CodeExample{
		Language: language,
		Info:     f.info,
		OpenLine: lineNum,
	}
	b.openFence = f
}

// closeExample attaches the open example to its owner.
func (b *builder) closeExample() {
	ex := *b.open
	b.open = nil

	if section := b.currentSection(); section != nil {
		ex.Index = len(section.Examples)
		section.Examples = append(section.Examples, ex)
	} else {
		ex.Index = len(b.doc.IntroExamples)
		b.doc.IntroExamples = append(b.doc.IntroExamples, ex)
	}
	b.target = targetExplanation
}

// appendProse adds a prose line to the current target.
func (b *builder) appendProse(line doc.Line) {
	section := b.currentSection()

	switch {
	case b.target == targetExplanation && section != nil:
		last := &section.Examples[len(section.Examples)-1]
		last.Explanation = append(last.Explanation, line)
	case b.target == targetExplanation:
		last := &b.doc.IntroExamples[len(b.doc.IntroExamples)-1]
		last.Explanation = append(last.Explanation, line)
	case b.target == targetSummary && section != nil:
		section.Summary = append(section.Summary, line)
	default:
		b.doc.Intro = append(b.doc.Intro, line)
	}
}

func (b *builder) currentSection() *doc.Section {
	if len(b.doc.Sections) == 0 {
		return nil
	}
	return &b.doc.Sections[len(b.doc.Sections)-1]
}

// finish validates end-of-input state and returns the document.
func (b *builder) finish(lineCount int) (*doc.Document, error) {
	if b.open != nil {
		return nil, b.unterminated()
	}

	if b.doc.Title == "" {
		b.doc.Title = titleFromID(b.doc.ID)
	}
	b.doc.LineCount = lineCount

	return b.doc, nil
}

func (b *builder) unterminated() error {
	if b.headingInFence != 0 {
		return b.errorf(b.open.OpenLine, KindUnterminatedFence,
			"code fence opened on line %d is interrupted by the heading on line %d",
			b.open.OpenLine, b.headingInFence)
	}
	return b.errorf(b.open.OpenLine, KindUnterminatedFence,
		"code fence opened on line %d is never closed", b.open.OpenLine)
}

func (b *builder) errorf(line int, kind ErrorKind, format string, args ...any) error {
	return &ParseError{
		Document: b.doc.ID,
		Line:     line,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}
