package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/doc"
)

func TestFenceLanguageTagRule(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		opts      map[string]any
		cfg       func(*config.Config)
		wantLines []int
	}{
		{
			name:      "java tag",
			input:     "## S\n\n" + fence("java", "int x;") + "\nOk.\n",
			wantLines: []int{},
		},
		{
			name:      "tags compare case-insensitively",
			input:     "## S\n\n" + fence("Java", "int x;") + "\nOk.\n",
			wantLines: []int{},
		},
		{
			name:      "info string after the tag",
			input:     "## S\n\n" + fence(`java title="Demo.java"`, "int x;") + "\nOk.\n",
			wantLines: []int{},
		},
		{
			name:      "missing tag",
			input:     "## S\n\n" + fence("", "int x;") + "\nOk.\n",
			wantLines: []int{3},
		},
		{
			name:      "other language",
			input:     "## S\n\n" + fence("python", "print(1)") + "\nOk.\n",
			wantLines: []int{3},
		},
		{
			name:      "rule option",
			input:     "## S\n\n" + fence("kotlin", "val x = 1") + "\nOk.\n",
			opts:      map[string]any{"tag": "kotlin"},
			wantLines: []int{},
		},
		{
			name:      "config setting",
			input:     "## S\n\n" + fence("java", "int x;") + "\nOk.\n",
			cfg:       func(c *config.Config) { c.LanguageTag = "kotlin" },
			wantLines: []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			findings := runRule(t, NewFenceLanguageTagRule(), tt.input, tt.opts, cfg)
			assert.Equal(t, tt.wantLines, findingLines(findings))
		})
	}
}

func TestFenceLanguageTagRule_Messages(t *testing.T) {
	input := "# T\n\n" +
		fence("", "fun main() {", "    println(\"Hi\")", "}") + "\nKotlin.\n\n" +
		"## S\n\n" +
		fence("", "int[] numbers = new int[5];") + "\nJava.\n\n" +
		fence("py", "print(1)") + "\nPython.\n"

	findings := runRule(t, NewFenceLanguageTagRule(), input, nil, nil)
	require.Len(t, findings, 3)

	assert.Equal(t, doc.NoSection, findings[0].Location.Section)
	assert.Equal(t, `Code fence has no language tag, expected "java"`, findings[0].Message)
	assert.Equal(t, `Add "java" after the opening backticks (the content looks like kotlin)`, findings[0].Suggestion)

	assert.Equal(t, 0, findings[1].Location.Section)
	assert.Equal(t, `Add "java" after the opening backticks`, findings[1].Suggestion)

	assert.Equal(t, `Code fence is tagged "py", expected "java"`, findings[2].Message)
	assert.Empty(t, findings[2].Suggestion)
}
