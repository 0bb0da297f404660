package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies Rules map", func(t *testing.T) {
		enabled := true
		severity := "error"
		original := &config.Config{
			Rules: map[string]config.RuleConfig{
				"LINE_WIDTH": {
					Enabled:  &enabled,
					Severity: &severity,
					Options:  map[string]any{"max": 100},
				},
			},
		}

		clone := original.Clone()
		require.NotNil(t, clone)
		require.Contains(t, clone.Rules, "LINE_WIDTH")
		assert.True(t, *clone.Rules["LINE_WIDTH"].Enabled)
		assert.Equal(t, "error", *clone.Rules["LINE_WIDTH"].Severity)

		newSeverity := "warning"
		clone.Rules["LINE_WIDTH"] = config.RuleConfig{Severity: &newSeverity}
		assert.Equal(t, "error", *original.Rules["LINE_WIDTH"].Severity)
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := &config.Config{
			Ignore:    []string{"drafts/**"},
			OnlyRules: []string{"LINE_WIDTH"},
		}

		clone := original.Clone()
		clone.Ignore[0] = "changed"
		clone.OnlyRules[0] = "changed"

		assert.Equal(t, "drafts/**", original.Ignore[0])
		assert.Equal(t, "LINE_WIDTH", original.OnlyRules[0])
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
max_line_width: 100
min_explanation_sentences: 3
language_tag: kotlin
trailing_marker_on_last_line: true
ignore:
  - "drafts/**"
rules:
  TRAILING_MARKER:
    enabled: false
  LINE_WIDTH:
    severity: warning
    options:
      max: 72
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.MaxLineWidth)
	assert.Equal(t, 3, cfg.MinExplanationSentences)
	assert.Equal(t, "kotlin", cfg.LanguageTag)
	assert.True(t, cfg.TrailingMarkerOnLastLine)
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)

	require.Contains(t, cfg.Rules, "TRAILING_MARKER")
	assert.False(t, *cfg.Rules["TRAILING_MARKER"].Enabled)
	assert.Equal(t, "warning", *cfg.Rules["LINE_WIDTH"].Severity)
	assert.Equal(t, 72, cfg.Rules["LINE_WIDTH"].Options["max"])

	// Unset fields stay zero so they do not override defaults when merged.
	assert.Zero(t, cfg.ComplexExampleLines)
	assert.Empty(t, cfg.TrailingMarker)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("max_line_width: [oops"))
	require.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"vendor/**"}
	cfg.Format = config.FormatJSON

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_line_width: 80")
	assert.NotContains(t, string(data), "format")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxLineWidth, parsed.MaxLineWidth)
	assert.Equal(t, cfg.LanguageTag, parsed.LanguageTag)
	assert.Equal(t, cfg.TrailingMarker, parsed.TrailingMarker)
	assert.Equal(t, cfg.Ignore, parsed.Ignore)
}
