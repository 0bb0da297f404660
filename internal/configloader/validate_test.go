package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
)

func strPtr(s string) *string { return &s }

func TestValidate_DefaultsAreValid(t *testing.T) {
	t.Parallel()

	result := Validate(config.NewConfig())
	assert.True(t, result.Valid())
	assert.Empty(t, result.Warnings)
}

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	assert.True(t, Validate(nil).Valid())
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"negative width", func(c *config.Config) { c.MaxLineWidth = -1 }, "max_line_width"},
		{"negative sentences", func(c *config.Config) { c.MinExplanationSentences = -2 }, "min_explanation_sentences"},
		{"negative complexity", func(c *config.Config) { c.ComplexExampleLines = -8 }, "complex_example_lines"},
		{"tag with space", func(c *config.Config) { c.LanguageTag = "java 17" }, "language_tag"},
		{"unknown format", func(c *config.Config) { c.Format = "sarif" }, "format"},
		{"unknown rule format", func(c *config.Config) { c.RuleFormat = "short" }, "rule_format"},
		{"negative jobs", func(c *config.Config) { c.Jobs = -1 }, "jobs"},
		{"bad glob", func(c *config.Config) { c.Ignore = []string{"a/[b"} }, "ignore[0]"},
		{"empty glob", func(c *config.Config) { c.Ignore = []string{""} }, "ignore[0]"},
		{
			"bad severity",
			func(c *config.Config) { c.Rules["LINE_WIDTH"] = config.RuleConfig{Severity: strPtr("info")} },
			"rules.LINE_WIDTH.severity",
		},
		{
			"string where int expected",
			func(c *config.Config) {
				c.Rules["EXPLANATION_MIN_LENGTH"] = config.RuleConfig{Options: map[string]any{"min": "two"}}
			},
			"rules.EXPLANATION_MIN_LENGTH.options.min",
		},
		{
			"fractional int",
			func(c *config.Config) {
				c.Rules["LINE_WIDTH"] = config.RuleConfig{Options: map[string]any{"max": 80.5}}
			},
			"rules.LINE_WIDTH.options.max",
		},
		{
			"non-bool flag option",
			func(c *config.Config) {
				c.Rules["TRAILING_MARKER"] = config.RuleConfig{Options: map[string]any{"on_last_line": "yes"}}
			},
			"rules.TRAILING_MARKER.options.on_last_line",
		},
		{
			"non-string tag",
			func(c *config.Config) {
				c.Rules["CODE_FENCE_LANGUAGE_TAG"] = config.RuleConfig{Options: map[string]any{"tag": 17}}
			},
			"rules.CODE_FENCE_LANGUAGE_TAG.options.tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg)
			require.False(t, result.Valid())
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.field, result.Errors[0].Field)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Rules["SPELLING"] = config.RuleConfig{}
	cfg.Rules["LINE_WIDTH"] = config.RuleConfig{Options: map[string]any{"maximum": 100}}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, "rules.LINE_WIDTH.options.maximum", result.Warnings[0].Field)
	assert.Equal(t, "rules.SPELLING", result.Warnings[1].Field)
}

func TestValidate_AcceptsRuleNames(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Rules["line-width"] = config.RuleConfig{Options: map[string]any{"max": 100}}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	assert.Empty(t, result.Warnings)
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Jobs = -3

	result := ValidateWithFile(cfg, ".docstyle.yml")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ".docstyle.yml: jobs: jobs must be >= 0 (0 means auto)", result.Errors[0].Error())
}

func TestValidationError_Format(t *testing.T) {
	t.Parallel()

	err := &ValidationError{FilePath: "a.yml", Line: 4, Field: "format", Message: "bad"}
	assert.Equal(t, "a.yml:4: format: bad", err.Error())

	err = &ValidationError{Message: "bad"}
	assert.Equal(t, "bad", err.Error())
}
