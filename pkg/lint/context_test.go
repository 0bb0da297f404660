package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/doc"
	"github.com/yaklabco/docstyle/pkg/lint"
)

func TestNewRuleContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := &doc.Document{ID: "a.md", Title: "A"}
	cfg := config.NewConfig()
	ruleCfg := &config.RuleConfig{Options: map[string]any{"key": "value"}}

	rc := lint.NewRuleContext(ctx, d, cfg, ruleCfg)

	assert.Equal(t, ctx, rc.Ctx)
	assert.Same(t, d, rc.Doc)
	assert.Same(t, cfg, rc.Config)
	assert.Same(t, ruleCfg, rc.RuleConfig)
	assert.Equal(t, "a.md", rc.DocumentID())
}

func TestNewRuleContext_NilConfig(t *testing.T) {
	t.Parallel()

	rc := lint.NewRuleContext(context.Background(), nil, nil, nil)

	assert.NotNil(t, rc.Config, "a default config is supplied")
	assert.Equal(t, config.DefaultMaxLineWidth, rc.Config.MaxLineWidth)
	assert.Empty(t, rc.DocumentID())
}

func TestRuleContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rc := lint.NewRuleContext(ctx, nil, nil, nil)
	assert.False(t, rc.Cancelled())

	cancel()
	assert.True(t, rc.Cancelled())
}

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	ruleCfg := &config.RuleConfig{Options: map[string]any{
		"int":        7,
		"int64":      int64(9),
		"float":      12.0,
		"string":     "java",
		"bool":       true,
		"wrong-type": "not a number",
	}}
	rc := lint.NewRuleContext(context.Background(), nil, nil, ruleCfg)

	assert.Equal(t, 7, rc.OptionInt("int", 0))
	assert.Equal(t, 9, rc.OptionInt("int64", 0))
	assert.Equal(t, 12, rc.OptionInt("float", 0))
	assert.Equal(t, 3, rc.OptionInt("wrong-type", 3))
	assert.Equal(t, 5, rc.OptionInt("missing", 5))

	assert.Equal(t, "java", rc.OptionString("string", "x"))
	assert.Equal(t, "x", rc.OptionString("int", "x"))

	assert.True(t, rc.OptionBool("bool", false))
	assert.False(t, rc.OptionBool("missing", false))
}

func TestRuleContext_OptionsWithoutRuleConfig(t *testing.T) {
	t.Parallel()

	rc := lint.NewRuleContext(context.Background(), nil, nil, nil)
	assert.Equal(t, 80, rc.OptionInt("max", 80))
	assert.Equal(t, "default", rc.Option("anything", "default"))
}
