package analysis

// SortField specifies how ByRule is sorted.
type SortField string

const (
	// SortByCount sorts by finding count, highest first, then by rule ID.
	SortByCount SortField = "count"
	// SortByAlpha sorts by rule ID.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts errors first, then warnings, then by rule ID.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures Build.
type Options struct {
	// IncludeFindings includes the flat, ordered finding list.
	IncludeFindings bool

	// RuleSort specifies how ByRule is sorted. Empty means SortByCount.
	RuleSort SortField
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeFindings: true,
		RuleSort:        SortByCount,
	}
}
