package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docstyle/internal/cli"
	"github.com/yaklabco/docstyle/pkg/analysis"
	cfgpkg "github.com/yaklabco/docstyle/pkg/config"
)

const (
	cleanDoc = "# Java Strings\n\nStrings hold text.  \nThey never change.\n\n" +
		"## Basic string creation\n\nUse a literal.\n\n```java\nString greeting = \"Hello\";\n```\n\n" +
		"The literal is stored once.  \nEvery use shares it.\n"
	numberedDoc = "# Java Strings\n\n## 1. Basic string creation\n\nUse a literal.\n"
	brokenDoc   = "# Arrays\n\n## Creating arrays\n\n```java\nint[] a = new int[3];\n"
	markerDoc   = "# Loops\n\nFirst line\nsecond line.\n"
)

// wideDoc has one 95-character prose line carrying its marker, followed by
// a short last line.
var wideDoc = "# Java Strings\n\n" + strings.Repeat("word ", 18) + "done.  \nShort.\n"

type runResult struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return runResult{code: cli.ExitCode(err), stdout: stdout.String(), stderr: stderr.String()}
}

// corpus writes docs into a fresh directory next to an empty config file,
// so the run never picks up configuration from the surroundings.
func corpus(t *testing.T, config string, docs map[string]string) (dir, configPath string) {
	t.Helper()

	root := t.TempDir()
	dir = filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range docs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	configPath = filepath.Join(root, ".docstyle.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	return dir, configPath
}

func validateJSON(t *testing.T, configPath string, extra ...string) (runResult, analysis.Report) {
	t.Helper()

	args := append([]string{"validate", "--config", configPath, "--color", "never", "--format", "json"}, extra...)
	res := execute(t, args...)

	var report analysis.Report
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &report), res.stdout)

	return res, report
}

func ruleIDs(report analysis.Report) []string {
	ids := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		ids = append(ids, f.RuleID)
	}
	return ids
}

func TestValidate_NumberedHeading(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{"strings.md": numberedDoc})

	res, report := validateJSON(t, configPath, dir)

	assert.Equal(t, cli.ExitFindings, res.code)
	require.Len(t, report.Findings, 1)
	finding := report.Findings[0]
	assert.Equal(t, "SECTION_TITLE_NO_NUMBERING", finding.RuleID)
	assert.Equal(t, "error", finding.Severity)
	assert.Equal(t, 3, finding.Line)
	assert.Equal(t, "strings.md", filepath.Base(finding.Document))
}

func TestValidate_LineWidth(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{"wide.md": wideDoc})

	res, report := validateJSON(t, configPath, "--max-line-width", "80", dir)

	assert.Equal(t, cli.ExitFindings, res.code)
	assert.Equal(t, []string{"LINE_WIDTH"}, ruleIDs(report))
	assert.Equal(t, 3, report.Findings[0].Line)
}

func TestValidate_FlagOverridesRuleOption(t *testing.T) {
	t.Parallel()

	config := "rules:\n  LINE_WIDTH:\n    options:\n      max: 200\n"
	dir, configPath := corpus(t, config, map[string]string{"wide.md": wideDoc})

	res, report := validateJSON(t, configPath, dir)
	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Empty(t, report.Findings)

	res, report = validateJSON(t, configPath, "--max-line-width", "80", dir)
	assert.Equal(t, cli.ExitFindings, res.code)
	assert.Equal(t, []string{"LINE_WIDTH"}, ruleIDs(report))
}

func TestValidate_UnclosedFenceDoesNotStopCorpus(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{
		"arrays.md":  brokenDoc,
		"clean.md":   cleanDoc,
		"strings.md": numberedDoc,
	})

	res, report := validateJSON(t, configPath, dir)

	assert.Equal(t, cli.ExitFindings, res.code)
	assert.Equal(t, []string{"PARSE", "SECTION_TITLE_NO_NUMBERING"}, ruleIDs(report))
	assert.Equal(t, 3, report.Totals.Documents)
	assert.Equal(t, 1, report.Totals.DocumentsFailed)
	assert.Equal(t, 2, report.Totals.Errors)
}

func TestValidate_CleanCorpus(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{
		"a.md": cleanDoc,
		"b.md": cleanDoc,
		"c.md": cleanDoc,
	})

	res := execute(t, "validate", "--config", configPath, "--color", "never", dir)

	assert.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	assert.Contains(t, res.stdout, "0 findings (0 errors, 0 warnings) in 3 documents")
}

func TestValidate_Strict(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{"loops.md": markerDoc})

	res, report := validateJSON(t, configPath, dir)
	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Equal(t, []string{"TRAILING_MARKER"}, ruleIDs(report))
	assert.Equal(t, "warning", report.Findings[0].Severity)

	res, _ = validateJSON(t, configPath, "--strict", dir)
	assert.Equal(t, cli.ExitFindings, res.code)
}

func TestValidate_OnlyRules(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{
		"loops.md":   markerDoc,
		"strings.md": numberedDoc,
	})

	res, report := validateJSON(t, configPath, "--rules", "numbered-headings", dir)

	assert.Equal(t, cli.ExitFindings, res.code)
	assert.Equal(t, []string{"SECTION_TITLE_NO_NUMBERING"}, ruleIDs(report))
}

func TestValidate_Ignore(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{
		"clean.md":   cleanDoc,
		"strings.md": numberedDoc,
	})

	res, report := validateJSON(t, configPath, "--ignore", "strings.md", dir)

	assert.Equal(t, cli.ExitSuccess, res.code)
	assert.Equal(t, 1, report.Totals.Documents)
}

func TestValidate_PrintConfig(t *testing.T) {
	t.Parallel()

	config := "max_line_width: 100\nignore:\n  - drafts/**\nrules:\n  line-width:\n    severity: warning\n"
	dir, configPath := corpus(t, config, map[string]string{"strings.md": numberedDoc})

	res := execute(t, "validate", "--config", configPath, "--min-explanation-sentences", "3", "--print-config", dir)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	printed, err := cfgpkg.FromYAML([]byte(res.stdout))
	require.NoError(t, err)
	assert.Equal(t, 100, printed.MaxLineWidth)
	assert.Equal(t, 3, printed.MinExplanationSentences)
	assert.Equal(t, "java", printed.LanguageTag)
	assert.Equal(t, []string{"drafts/**"}, printed.Ignore)
	require.Contains(t, printed.Rules, "LINE_WIDTH")
	require.NotNil(t, printed.Rules["LINE_WIDTH"].Severity)
	assert.Equal(t, "warning", *printed.Rules["LINE_WIDTH"].Severity)
	assert.NotContains(t, res.stdout, "SECTION_TITLE_NO_NUMBERING", "no document is checked")
}

func TestValidate_ConfigErrors(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "", map[string]string{"clean.md": cleanDoc})

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown rule", args: []string{"--rules", "no-such-rule"}, wantErr: "unknown rule"},
		{name: "zero width", args: []string{"--max-line-width", "0"}, wantErr: "must be a positive integer"},
		{name: "negative sentences", args: []string{"--min-explanation-sentences", "-1"}, wantErr: "must be a positive integer"},
		{name: "empty tag", args: []string{"--language-tag", " "}, wantErr: "must not be empty"},
		{name: "bad format", args: []string{"--format", "xml"}, wantErr: "invalid --format"},
		{name: "bad sort", args: []string{"--sort", "random"}, wantErr: "invalid --sort"},
		{name: "bad color", args: []string{"--color", "sometimes"}, wantErr: "invalid --color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"validate", "--config", configPath}, tt.args...)
			args = append(args, dir)

			var stdout, stderr bytes.Buffer
			cmd := cli.NewRootCommand(testInfo())
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, cli.ExitFatal, cli.ExitCode(err))
		})
	}
}

func TestValidate_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	dir, configPath := corpus(t, "max_line_width: -5\n", map[string]string{"clean.md": cleanDoc})

	res := execute(t, "validate", "--config", configPath, dir)

	assert.Equal(t, cli.ExitFatal, res.code)
}

func TestRulesCommand_JSON(t *testing.T) {
	t.Parallel()

	res := execute(t, "rules", "--format", "json")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)

	var infos []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Severity string `json:"severity"`
		Enabled  bool   `json:"enabled"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &infos))

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
		assert.True(t, info.Enabled, info.ID)
		assert.NotEmpty(t, info.Name, info.ID)
	}
	assert.ElementsMatch(t, []string{
		"LINE_WIDTH",
		"TRAILING_MARKER",
		"SECTION_TITLE_NO_NUMBERING",
		"EXPLANATION_MIN_LENGTH",
		"CODE_FENCE_LANGUAGE_TAG",
		"TERMINOLOGY_NO_PARENS_ON_NAMES",
	}, ids)
}

func TestRulesCommand_BadFormat(t *testing.T) {
	t.Parallel()

	res := execute(t, "rules", "--format", "yaml")
	assert.Equal(t, cli.ExitFatal, res.code)
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".docstyle.yml")

	res := execute(t, "init", "--output", out)
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "max_line_width")

	res = execute(t, "init", "--output", out)
	assert.Equal(t, cli.ExitFatal, res.code)

	res = execute(t, "init", "--output", out, "--force", "--pack", "strict")
	require.Equal(t, cli.ExitSuccess, res.code, res.stderr)
	content, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"strict" pack`)
	assert.Contains(t, string(content), "TRAILING_MARKER")
}

func TestInitCommand_UnknownPack(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".docstyle.yml")

	res := execute(t, "init", "--output", out, "--pack", "nope")

	assert.Equal(t, cli.ExitFatal, res.code)
	assert.NoFileExists(t, out)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	res := execute(t, "version")

	require.Equal(t, cli.ExitSuccess, res.code)
	assert.Contains(t, res.stdout, "docstyle")
	assert.Contains(t, res.stdout, "test")
	assert.Contains(t, res.stdout, "abc123")
}
