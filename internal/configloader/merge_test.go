package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
)

func boolPtr(b bool) *bool { return &b }

func TestMerge_Scalars(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	override := &config.Config{
		MaxLineWidth: 100,
		LanguageTag:  "kotlin",
		Strict:       true,
	}

	got := merge(base, override)
	assert.Equal(t, 100, got.MaxLineWidth)
	assert.Equal(t, "kotlin", got.LanguageTag)
	assert.True(t, got.Strict)
	assert.Equal(t, config.DefaultComplexExampleLines, got.ComplexExampleLines)
	assert.Equal(t, config.DefaultTrailingMarker, got.TrailingMarker)

	// base is untouched
	assert.Equal(t, config.DefaultMaxLineWidth, base.MaxLineWidth)
}

func TestMerge_NilSides(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(nil, cfg))
	assert.Same(t, cfg, merge(cfg, nil))
}

func TestMerge_SlicesReplace(t *testing.T) {
	t.Parallel()

	base := &config.Config{Ignore: []string{"drafts/**"}}

	assert.Equal(t, []string{"drafts/**"}, merge(base, &config.Config{}).Ignore)
	assert.Equal(t, []string{"*.tmp.md"}, merge(base, &config.Config{Ignore: []string{"*.tmp.md"}}).Ignore)
}

func TestMergeRules_DeepMerge(t *testing.T) {
	t.Parallel()

	baseOptions := map[string]any{"max": 100}
	base := map[string]config.RuleConfig{
		"LINE_WIDTH":      {Severity: strPtr("warning"), Options: baseOptions},
		"TRAILING_MARKER": {Enabled: boolPtr(false)},
	}
	override := map[string]config.RuleConfig{
		"LINE_WIDTH":             {Enabled: boolPtr(true), Options: map[string]any{"max": 120}},
		"EXPLANATION_MIN_LENGTH": {Severity: strPtr("warning")},
	}

	got := mergeRules(base, override)
	require.Len(t, got, 3)

	lw := got["LINE_WIDTH"]
	require.NotNil(t, lw.Severity)
	assert.Equal(t, "warning", *lw.Severity)
	require.NotNil(t, lw.Enabled)
	assert.True(t, *lw.Enabled)
	assert.Equal(t, 120, lw.Options["max"])
	assert.Equal(t, 100, baseOptions["max"], "base options must not be modified")

	assert.False(t, *got["TRAILING_MARKER"].Enabled)
	assert.Equal(t, "warning", *got["EXPLANATION_MIN_LENGTH"].Severity)
}

func TestClearShadowedOptions(t *testing.T) {
	t.Parallel()

	fileOptions := map[string]any{"marker": "\\", "on_last_line": true}
	cfg := &config.Config{
		Rules: map[string]config.RuleConfig{
			"LINE_WIDTH":      {Options: map[string]any{"max": 120}},
			"TRAILING_MARKER": {Options: fileOptions},
		},
	}

	clearShadowedOptions(cfg, &config.Config{MaxLineWidth: 90, TrailingMarker: "  "})

	assert.NotContains(t, cfg.Rules["LINE_WIDTH"].Options, "max")
	assert.NotContains(t, cfg.Rules["TRAILING_MARKER"].Options, "marker")
	assert.Equal(t, true, cfg.Rules["TRAILING_MARKER"].Options["on_last_line"])
	assert.Contains(t, fileOptions, "marker", "source options must not be modified")
}
