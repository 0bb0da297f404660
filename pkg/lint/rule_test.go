package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/docstyle/pkg/config"
)

func TestBaseRule_Defaults(t *testing.T) {
	r := NewBaseRule("X", "x-rule", "desc", []string{"prose"}, "")
	assert.Equal(t, "X", r.ID())
	assert.Equal(t, "x-rule", r.Name())
	assert.Equal(t, "desc", r.Description())
	assert.True(t, r.DefaultEnabled())
	assert.Equal(t, config.SeverityWarning, r.DefaultSeverity())
	assert.Equal(t, []string{"prose"}, r.Tags())

	findings, err := r.Apply(nil)
	assert.NoError(t, err)
	assert.Empty(t, findings)

	r = NewBaseRule("Y", "y-rule", "", nil, config.SeverityError)
	assert.Equal(t, config.SeverityError, r.DefaultSeverity())
}
