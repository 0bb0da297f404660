package configloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/docstyle/pkg/config"
)

// envVarPrefix is the prefix for all docstyle environment variables.
const envVarPrefix = "DOCSTYLE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MAX_LINE_WIDTH": {
		field: "max_line_width", typ: envTypeInt,
		description: "Maximum characters per prose line",
	},
	"MIN_EXPLANATION_SENTENCES": {
		field: "min_explanation_sentences", typ: envTypeInt,
		description: "Sentences required after a complex example",
	},
	"COMPLEX_EXAMPLE_LINES": {
		field: "complex_example_lines", typ: envTypeInt,
		description: "Source lines above which an example is complex",
	},
	"LANGUAGE_TAG": {
		field: "language_tag", typ: envTypeString,
		description: "Language tag every code fence must declare",
	},
	"TRAILING_MARKER": {
		field: "trailing_marker", typ: envTypeString,
		description: "Text every non-final paragraph line must end with",
	},
	"FORMAT": {
		field: "format", typ: envTypeString,
		description: "Output format: text, json, or summary",
	},
	"RULE_FORMAT": {
		field: "rule_format", typ: envTypeString,
		description: "Rule identifier style in output: id, name, or combined",
	},
	"STRICT": {
		field: "strict", typ: envTypeBool,
		description: "Treat warnings as failures: true or false",
	},
	"JOBS": {
		field: "jobs", typ: envTypeInt,
		description: "Number of parallel workers (0 = auto)",
	},
	"IGNORE": {
		field: "ignore", typ: envTypeSlice,
		description: "Comma-separated list of ignore patterns",
	},
	"RULES": {
		field: "only_rules", typ: envTypeSlice,
		description: "Comma-separated list of rule IDs or names to run",
	},
}

// loadFromLookup applies overrides read through lookup.
func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "language_tag":
		cfg.LanguageTag = value
	case "trailing_marker":
		cfg.TrailingMarker = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "max_line_width":
		cfg.MaxLineWidth = value
	case "min_explanation_sentences":
		cfg.MinExplanationSentences = value
	case "complex_example_lines":
		cfg.ComplexExampleLines = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "only_rules":
		cfg.OnlyRules = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
