package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
)

func TestLineWidthRule(t *testing.T) {
	long := strings.Repeat("x", 95)

	doc := "# Strings\n\n## Creating strings\n\n" +
		fence("java", `String s = "`+strings.Repeat("y", 120)+`";`) +
		"\n" + long + "  \nSecond line.\n"

	tests := []struct {
		name      string
		input     string
		opts      map[string]any
		cfg       func(*config.Config)
		wantLines []int
	}{
		{
			name:      "one long explanation line",
			input:     doc,
			wantLines: []int{9},
		},
		{
			name:      "rule option raises the limit",
			input:     doc,
			opts:      map[string]any{"max": 100},
			wantLines: []int{},
		},
		{
			name:      "config raises the limit",
			input:     doc,
			cfg:       func(c *config.Config) { c.MaxLineWidth = 97 },
			wantLines: []int{},
		},
		{
			name:      "rule option from YAML is a float",
			input:     doc,
			opts:      map[string]any{"max": 96.0},
			wantLines: []int{9},
		},
		{
			name:      "marker pushes the line over",
			input:     doc,
			cfg:       func(c *config.Config) { c.MaxLineWidth = 96 },
			wantLines: []int{9},
		},
		{
			name:      "exactly at the limit",
			input:     "# T\n\n" + strings.Repeat("a", 80) + "\n",
			wantLines: []int{},
		},
		{
			name:      "trailing marker counts",
			input:     "# T\n\n" + strings.Repeat("a", 80) + "  \n" + "end\n",
			wantLines: []int{3},
		},
		{
			name:      "text and marker at the limit",
			input:     "# T\n\n" + strings.Repeat("a", 78) + "  \n" + "end\n",
			wantLines: []int{},
		},
		{
			name:      "decomposed characters count once",
			input:     "# T\n\n" + strings.Repeat("e\u0301", 80) + "\n",
			wantLines: []int{},
		},
		{
			name:      "intro and summary are checked",
			input:     "# T\n\n" + long + "\n\n## S\n\n" + long + "\n",
			wantLines: []int{3, 7},
		},
		{
			name:      "headings are not prose",
			input:     "# " + long + "\n\n## " + long + "\n",
			wantLines: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			findings := runRule(t, NewLineWidthRule(), tt.input, tt.opts, cfg)
			assert.Equal(t, tt.wantLines, findingLines(findings))
		})
	}
}

func TestLineWidthRule_FindingDetails(t *testing.T) {
	input := "# T\n\n## S\n\n" + fence("java", "int x = 1;") + "\n" + strings.Repeat("w", 95) + "\n"

	findings := runRule(t, NewLineWidthRule(), input, nil, nil)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, IDLineWidth, f.RuleID)
	assert.Equal(t, "topic.md", f.Location.Document)
	assert.Equal(t, 0, f.Location.Section)
	assert.Equal(t, 9, f.Location.Line)
	assert.Equal(t, 81, f.Location.Column)
	assert.Equal(t, "Line is 95 characters, maximum is 80", f.Message)
	assert.NotEmpty(t, f.Suggestion)
}
