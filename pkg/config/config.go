// Package config defines core configuration types for docstyle.
// These types are pure data structures with no dependency on how they are loaded.
package config

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "line-width"
	RuleFormatID       RuleFormat = "id"       // "LINE_WIDTH"
	RuleFormatCombined RuleFormat = "combined" // "LINE_WIDTH/line-width"
)

// Defaults taken from the corpus style guide.
const (
	DefaultMaxLineWidth            = 80
	DefaultMinExplanationSentences = 2
	DefaultComplexExampleLines     = 8
	DefaultLanguageTag             = "java"
	DefaultTrailingMarker          = "  "
)

// Config is the root configuration structure for docstyle.
type Config struct {
	// MaxLineWidth is the maximum character count of a prose line.
	MaxLineWidth int `yaml:"max_line_width,omitempty"`

	// MinExplanationSentences is the sentence count required after a complex example.
	MinExplanationSentences int `yaml:"min_explanation_sentences,omitempty"`

	// ComplexExampleLines is the source line count above which an example is complex.
	ComplexExampleLines int `yaml:"complex_example_lines,omitempty"`

	// LanguageTag is the language every fenced block must declare.
	LanguageTag string `yaml:"language_tag,omitempty"`

	// TrailingMarker is the text every non-final paragraph line must end with.
	TrailingMarker string `yaml:"trailing_marker,omitempty"`

	// TrailingMarkerOnLastLine requires the marker on the last line of a paragraph too.
	TrailingMarkerOnLastLine bool `yaml:"trailing_marker_on_last_line,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID.
	Rules map[string]RuleConfig `yaml:"rules,omitempty"`

	// Ignore contains glob patterns for documents to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// OnlyRules restricts the run to these rule IDs (empty means all).
	OnlyRules []string `yaml:"-"`

	// Strict makes warnings fail the run.
	Strict bool `yaml:"-"`
}

// NewConfig returns a Config with the style guide defaults.
func NewConfig() *Config {
	return &Config{
		MaxLineWidth:            DefaultMaxLineWidth,
		MinExplanationSentences: DefaultMinExplanationSentences,
		ComplexExampleLines:     DefaultComplexExampleLines,
		LanguageTag:             DefaultLanguageTag,
		TrailingMarker:          DefaultTrailingMarker,
		Rules:                   make(map[string]RuleConfig),
		Format:                  FormatText,
		RuleFormat:              RuleFormatID,
		Jobs:                    0, // 0 means use GOMAXPROCS
	}
}
