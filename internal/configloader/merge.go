package configloader

import (
	"maps"

	"github.com/yaklabco/docstyle/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MaxLineWidth != 0 {
		result.MaxLineWidth = override.MaxLineWidth
	}
	if override.MinExplanationSentences != 0 {
		result.MinExplanationSentences = override.MinExplanationSentences
	}
	if override.ComplexExampleLines != 0 {
		result.ComplexExampleLines = override.ComplexExampleLines
	}
	if override.LanguageTag != "" {
		result.LanguageTag = override.LanguageTag
	}
	if override.TrailingMarker != "" {
		result.TrailingMarker = override.TrailingMarker
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// false is the zero value, so a later source can switch these on but not off.
	if override.TrailingMarkerOnLastLine {
		result.TrailingMarkerOnLastLine = true
	}
	if override.Strict {
		result.Strict = true
	}

	result.Rules = mergeRules(base.Rules, override.Rules)

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.OnlyRules != nil {
		result.OnlyRules = override.OnlyRules
	}

	return &result
}

// mergeRules performs deep merge of rule configurations.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))
	maps.Copy(result, base)

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
// The options map is copied so neither input is modified.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	if override.Options != nil {
		options := make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(options, base.Options)
		maps.Copy(options, override.Options)
		result.Options = options
	}

	return result
}

// shadowedOption names the rule option a top-level setting feeds.
type shadowedOption struct {
	ruleID string
	option string
	isSet  func(*config.Config) bool
}

// shadowedOptions pairs top-level settings with the rule options that would
// otherwise take precedence over them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var shadowedOptions = []shadowedOption{
	{"LINE_WIDTH", "max", func(c *config.Config) bool { return c.MaxLineWidth != 0 }},
	{"EXPLANATION_MIN_LENGTH", "min", func(c *config.Config) bool { return c.MinExplanationSentences != 0 }},
	{"EXPLANATION_MIN_LENGTH", "complex_lines", func(c *config.Config) bool { return c.ComplexExampleLines != 0 }},
	{"CODE_FENCE_LANGUAGE_TAG", "tag", func(c *config.Config) bool { return c.LanguageTag != "" }},
	{"TRAILING_MARKER", "marker", func(c *config.Config) bool { return c.TrailingMarker != "" }},
	{"TRAILING_MARKER", "on_last_line", func(c *config.Config) bool { return c.TrailingMarkerOnLastLine }},
}

// clearShadowedOptions drops rule options in cfg whose top-level setting
// was supplied by override, so environment and flag values reach the rules.
// cfg.Rules keys must already be canonical IDs.
func clearShadowedOptions(cfg, override *config.Config) {
	if cfg == nil || override == nil {
		return
	}

	for _, so := range shadowedOptions {
		if !so.isSet(override) {
			continue
		}
		ruleCfg, ok := cfg.Rules[so.ruleID]
		if !ok {
			continue
		}
		if _, has := ruleCfg.Options[so.option]; !has {
			continue
		}
		options := maps.Clone(ruleCfg.Options)
		delete(options, so.option)
		ruleCfg.Options = options
		cfg.Rules[so.ruleID] = ruleCfg
	}
}
