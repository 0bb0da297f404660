package rules

import "github.com/yaklabco/docstyle/pkg/lint"

// Rule identifiers.
const (
	IDLineWidth         = "LINE_WIDTH"
	IDTrailingMarker    = "TRAILING_MARKER"
	IDSectionNumbering  = "SECTION_TITLE_NO_NUMBERING"
	IDExplanationLength = "EXPLANATION_MIN_LENGTH"
	IDFenceLanguageTag  = "CODE_FENCE_LANGUAGE_TAG"
	IDNoParensOnNames   = "TERMINOLOGY_NO_PARENS_ON_NAMES"
)

// RegisterAll registers all built-in rules with the given registry in
// canonical order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewLineWidthRule())
	registry.Register(NewTrailingMarkerRule())
	registry.Register(NewSectionNumberingRule())
	registry.Register(NewExplanationLengthRule())
	registry.Register(NewFenceLanguageTagRule())
	registry.Register(NewNoParensOnNamesRule())
}

// RegisterAliases registers short alternate names accepted by --rules and
// config files.
func RegisterAliases(registry *lint.Registry) {
	registry.RegisterAlias("max-line-width", IDLineWidth)
	registry.RegisterAlias("trailing-spaces", IDTrailingMarker)
	registry.RegisterAlias("numbered-headings", IDSectionNumbering)
	registry.RegisterAlias("min-explanation-sentences", IDExplanationLength)
	registry.RegisterAlias("language-tag", IDFenceLanguageTag)
	registry.RegisterAlias("no-parens", IDNoParensOnNames)
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	RegisterAliases(lint.DefaultRegistry)
}
