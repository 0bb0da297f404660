package configloader

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.LINE_WIDTH.severity").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownFormats lists valid output format values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownFormats = map[config.OutputFormat]bool{
	config.FormatText:    true,
	config.FormatJSON:    true,
	config.FormatSummary: true,
}

// knownRuleFormats lists valid rule identifier styles.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleFormats = map[config.RuleFormat]bool{
	config.RuleFormatID:       true,
	config.RuleFormatName:     true,
	config.RuleFormatCombined: true,
}

type optionKind int

const (
	optionPositiveInt optionKind = iota
	optionString
	optionBool
)

// knownRuleOptions lists the options each built-in rule reads.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownRuleOptions = map[string]map[string]optionKind{
	"LINE_WIDTH": {
		"max": optionPositiveInt,
	},
	"TRAILING_MARKER": {
		"marker":       optionString,
		"on_last_line": optionBool,
	},
	"SECTION_TITLE_NO_NUMBERING": {},
	"EXPLANATION_MIN_LENGTH": {
		"min":           optionPositiveInt,
		"complex_lines": optionPositiveInt,
	},
	"CODE_FENCE_LANGUAGE_TAG": {
		"tag": optionString,
	},
	"TERMINOLOGY_NO_PARENS_ON_NAMES": {
		"include_inline_code": optionBool,
	},
}

// Validate checks a configuration for errors and warnings.
// Zero numeric fields mean "unset" and pass.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	checkPositive(result, "max_line_width", cfg.MaxLineWidth)
	checkPositive(result, "min_explanation_sentences", cfg.MinExplanationSentences)
	checkPositive(result, "complex_example_lines", cfg.ComplexExampleLines)

	if strings.ContainsAny(cfg.LanguageTag, " \t\r\n") {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "language_tag",
			Value:   cfg.LanguageTag,
			Message: fmt.Sprintf("invalid language tag %q; must be a single word", cfg.LanguageTag),
		})
	}

	if cfg.Format != "" && !knownFormats[cfg.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, summary", cfg.Format),
		})
	}

	if cfg.RuleFormat != "" && !knownRuleFormats[cfg.RuleFormat] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "rule_format",
			Value:   cfg.RuleFormat,
			Message: fmt.Sprintf("invalid rule format %q; must be one of: id, name, combined", cfg.RuleFormat),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	validateRules(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

func checkPositive(result *ValidationResult, field string, value int) {
	if value < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("%s must be a positive integer", field),
		})
	}
}

// validateRules checks rule configurations for errors and warnings.
// Keys are visited in sorted order so messages are stable.
func validateRules(cfg *config.Config, result *ValidationResult) {
	registry := lint.DefaultRegistry

	for _, key := range sortedRuleKeys(cfg.Rules) {
		ruleCfg := cfg.Rules[key]
		field := "rules." + key

		ruleID, _, exists := registry.Resolve(key)
		if !exists {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}

		if ruleCfg.Severity != nil && !config.Severity(*ruleCfg.Severity).IsValid() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".severity",
				Value:   *ruleCfg.Severity,
				Message: fmt.Sprintf("invalid severity %q; must be one of: error, warning", *ruleCfg.Severity),
			})
		}

		if exists {
			validateRuleOptions(ruleID, field, ruleCfg.Options, result)
		}
	}
}

// sortedRuleKeys returns the keys of rules in sorted order.
func sortedRuleKeys(rules map[string]config.RuleConfig) []string {
	return slices.Sorted(maps.Keys(rules))
}

// validateRuleOptions type-checks the options of a known rule.
func validateRuleOptions(ruleID, field string, options map[string]any, result *ValidationResult) {
	known := knownRuleOptions[ruleID]

	for _, name := range slices.Sorted(maps.Keys(options)) {
		value := options[name]
		optField := field + ".options." + name

		kind, ok := known[name]
		if !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   optField,
				Value:   value,
				Message: fmt.Sprintf("unknown option %q for %s; it will be ignored", name, ruleID),
			})
			continue
		}

		var msg string
		switch kind {
		case optionPositiveInt:
			if n, isInt := asInt(value); !isInt || n <= 0 {
				msg = "must be a positive integer"
			}
		case optionString:
			if _, isString := value.(string); !isString {
				msg = "must be a string"
			}
		case optionBool:
			if _, isBool := value.(bool); !isBool {
				msg = "must be true or false"
			}
		}

		if msg != "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   optField,
				Value:   value,
				Message: fmt.Sprintf("invalid value %v; %s", value, msg),
			})
		}
	}
}

// asInt converts the numeric types YAML and JSON decoding produce.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if pattern == "" || !doublestar.ValidatePattern(pattern) {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern %q", pattern),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
