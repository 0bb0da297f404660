package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes all rules with their documentation.
	Full bool

	// Pack names the rule pack the template is based on (optional).
	Pack string

	// Rules overrides enabled and severity per rule ID. A non-empty map
	// implies Full.
	Rules map[string]RuleConfig
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

const templateHeader = `# docstyle configuration
#
# Settings below mirror the corpus style guide. CLI flags override this file,
# and DOCSTYLE_* environment variables override both files and defaults.

# Maximum characters per prose line, trailing marker included
max_line_width: 80

# Sentences required after an example longer than complex_example_lines
min_explanation_sentences: 2
complex_example_lines: 8

# Language every fenced code block must declare
language_tag: java

# Paragraph lines end with two spaces; set true to require it on the last line too
trailing_marker_on_last_line: false

# Number of parallel workers (0 = auto)
# jobs: 0

# Documents to skip (doublestar glob patterns)
# ignore:
#   - "drafts/**"
`

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(templateHeader)

	if !opts.Full && len(opts.Rules) == 0 {
		buf.WriteString(`
# Rule-specific configuration
# rules:
#   TRAILING_MARKER:
#     enabled: false
#   LINE_WIDTH:
#     severity: warning
#     options:
#       max: 100
`)
		return buf.Bytes(), nil
	}

	rules := getRuleInfos()
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules available for template")
	}

	buf.WriteString("\n# Rule-specific configuration\n")
	if opts.Pack != "" {
		fmt.Fprintf(&buf, "# Based on the %q pack\n", opts.Pack)
	}
	buf.WriteString("rules:\n")
	for _, rule := range rules {
		enabled, severity := rule.Enabled, rule.Severity
		if override, ok := opts.Rules[rule.ID]; ok {
			if override.Enabled != nil {
				enabled = *override.Enabled
			}
			if override.Severity != nil {
				severity = Severity(*override.Severity)
			}
		}

		fmt.Fprintf(&buf, "\n  # %s: %s\n", rule.ID, rule.Name)
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(&buf, "  # Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
		fmt.Fprintf(&buf, "  %s:\n", rule.ID)
		fmt.Fprintf(&buf, "    enabled: %t\n", enabled)
		fmt.Fprintf(&buf, "    severity: %s\n", severity)
	}

	return buf.Bytes(), nil
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}
