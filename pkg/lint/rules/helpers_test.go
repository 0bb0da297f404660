package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
	"github.com/yaklabco/docstyle/pkg/parser"
)

// runRule parses input and applies a single rule to it.
// A nil cfg means the default configuration.
func runRule(t *testing.T, rule lint.Rule, input string, opts map[string]any, cfg *config.Config) []lint.Finding {
	t.Helper()

	d, err := parser.Parse("topic.md", []byte(input))
	require.NoError(t, err)

	if cfg == nil {
		cfg = config.NewConfig()
	}
	var ruleCfg *config.RuleConfig
	if opts != nil {
		ruleCfg = &config.RuleConfig{Options: opts}
	}

	findings, err := rule.Apply(lint.NewRuleContext(context.Background(), d, cfg, ruleCfg))
	require.NoError(t, err)
	return findings
}

func findingLines(findings []lint.Finding) []int {
	lines := make([]int, 0, len(findings))
	for _, f := range findings {
		lines = append(lines, f.Location.Line)
	}
	return lines
}

func fence(lang string, body ...string) string {
	out := "```" + lang + "\n"
	for _, b := range body {
		out += b + "\n"
	}
	return out + "```\n"
}
