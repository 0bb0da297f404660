// Package doc defines the structural model of a topic document: a title, an
// optional introduction, and ordered sections holding fenced code examples.
//
// Values are built by the parser and treated as read-only afterwards.
package doc

import "strings"

// NoSection is the section index used for locations outside any section.
const NoSection = -1

// Line is one source line without its terminator.
type Line struct {
	// Number is the 1-based line number in the source.
	Number int

	// Text is the raw line content.
	Text string
}

// IsBlank reports whether the line holds only whitespace.
func (l Line) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Document is one parsed topic file.
type Document struct {
	// ID identifies the document (usually its path).
	ID string

	// Title is the level-1 heading text, or the file stem if there is none.
	Title string

	// TitleLine is the line of the title heading (0 when derived from ID).
	TitleLine int

	// TitleColumn is the 1-based column where the title text starts.
	TitleColumn int

	// Intro holds the lines between the title and the first section.
	Intro []Line

	// IntroExamples are fenced blocks that appear before the first section.
	IntroExamples []CodeExample

	// Sections are in source order.
	Sections []Section

	// LineCount is the number of source lines.
	LineCount int
}

// Headings returns the section heading texts in source order.
func (d *Document) Headings() []string {
	headings := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		headings = append(headings, s.Heading)
	}
	return headings
}

// ExampleCount returns the number of code examples in the document.
func (d *Document) ExampleCount() int {
	count := len(d.IntroExamples)
	for _, s := range d.Sections {
		count += len(s.Examples)
	}
	return count
}

// ExampleRef points at one code example and the section that owns it.
type ExampleRef struct {
	// Section is the owning section index, or NoSection for intro examples.
	Section int

	// Example is the referenced example.
	Example *CodeExample
}

// Examples returns every code example in traversal order.
func (d *Document) Examples() []ExampleRef {
	refs := make([]ExampleRef, 0, d.ExampleCount())
	for i := range d.IntroExamples {
		refs = append(refs, ExampleRef{Section: NoSection, Example: &d.IntroExamples[i]})
	}
	for si := range d.Sections {
		for ei := range d.Sections[si].Examples {
			refs = append(refs, ExampleRef{Section: si, Example: &d.Sections[si].Examples[ei]})
		}
	}
	return refs
}

// ProseBlock is a run of prose lines with the section that owns it.
type ProseBlock struct {
	// Section is the owning section index, or NoSection for the intro.
	Section int

	// Lines are the prose lines, blank lines included.
	Lines []Line
}

// Prose returns every prose block in traversal order: the intro, intro
// example explanations, then each section's summary and explanations.
func (d *Document) Prose() []ProseBlock {
	var blocks []ProseBlock
	add := func(section int, lines []Line) {
		if len(lines) > 0 {
			blocks = append(blocks, ProseBlock{Section: section, Lines: lines})
		}
	}

	add(NoSection, d.Intro)
	for _, ex := range d.IntroExamples {
		add(NoSection, ex.Explanation)
	}
	for _, s := range d.Sections {
		add(s.Index, s.Summary)
		for _, ex := range s.Examples {
			add(s.Index, ex.Explanation)
		}
	}

	return blocks
}

// Section is one headed subsection of a document.
type Section struct {
	// Index is the 0-based position of the section in the document.
	Index int

	// Heading is the heading text without the marker.
	Heading string

	// Level is the number of '#' characters in the heading marker.
	Level int

	// Line is the line number of the heading.
	Line int

	// HeadingColumn is the 1-based column where Heading starts.
	HeadingColumn int

	// Summary holds the lines between the heading and the first fence.
	Summary []Line

	// Examples are the fenced code blocks of the section, in order.
	Examples []CodeExample
}

// CodeExample is one fenced code block and the prose that follows it.
type CodeExample struct {
	// Index is the 0-based position of the example within its section.
	Index int

	// Language is the first word of the fence info string.
	Language string

	// Info is the full fence info string.
	Info string

	// OpenLine and CloseLine are the line numbers of the fences.
	OpenLine  int
	CloseLine int

	// Source holds the lines between the fences.
	Source []Line

	// Explanation holds the lines after the closing fence up to the next
	// heading or fence.
	Explanation []Line
}

// SourceText returns the example source joined with newlines.
func (e *CodeExample) SourceText() string {
	return JoinLines(e.Source)
}

// NonBlankSourceLines counts source lines holding something other than whitespace.
func (e *CodeExample) NonBlankSourceLines() int {
	count := 0
	for _, l := range e.Source {
		if !l.IsBlank() {
			count++
		}
	}
	return count
}

// JoinLines joins line texts with newlines, trimming leading and trailing blank lines.
func JoinLines(lines []Line) string {
	start, end := 0, len(lines)
	for start < end && lines[start].IsBlank() {
		start++
	}
	for end > start && lines[end-1].IsBlank() {
		end--
	}

	texts := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		texts = append(texts, l.Text)
	}
	return strings.Join(texts, "\n")
}

// Paragraphs splits lines into runs of consecutive non-blank lines.
func Paragraphs(lines []Line) [][]Line {
	var paragraphs [][]Line
	var current []Line

	for _, l := range lines {
		if l.IsBlank() {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, l)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
