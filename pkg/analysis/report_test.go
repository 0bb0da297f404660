package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotals_Failing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		totals Totals
		strict bool
		want   bool
	}{
		{name: "clean", totals: Totals{}, want: false},
		{name: "warnings only", totals: Totals{Findings: 2, Warnings: 2}, want: false},
		{name: "warnings only strict", totals: Totals{Findings: 2, Warnings: 2}, strict: true, want: true},
		{name: "errors", totals: Totals{Findings: 1, Errors: 1}, want: true},
		{name: "errors strict", totals: Totals{Findings: 1, Errors: 1}, strict: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.totals.Failing(tt.strict))
		})
	}
}

func TestTotals_Has(t *testing.T) {
	t.Parallel()

	assert.False(t, Totals{}.HasFindings())
	assert.False(t, Totals{}.HasErrors())
	assert.True(t, Totals{Findings: 1, Warnings: 1}.HasFindings())
	assert.False(t, Totals{Findings: 1, Warnings: 1}.HasErrors())
	assert.True(t, Totals{Findings: 1, Errors: 1}.HasErrors())
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.True(t, opts.IncludeFindings)
	assert.Equal(t, SortByCount, opts.RuleSort)
}

func TestSortField_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("random").IsValid())
	assert.False(t, SortField("").IsValid())
}
