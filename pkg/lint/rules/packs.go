package rules

import "github.com/yaklabco/docstyle/pkg/config"

// Pack describes a named group of rule defaults for a particular use case.
// Packs are configuration fragments that can be used as starting points
// for .docstyle.yml files.
type Pack struct {
	// Name is the short identifier for the pack (e.g., "guide", "strict").
	Name string

	// Description explains the purpose and characteristics of the pack.
	Description string

	// Rules contains rule configurations keyed by rule ID.
	Rules map[string]config.RuleConfig
}

// GuidePack returns the rules exactly as the style guide states them.
func GuidePack() Pack {
	return Pack{
		Name:        "guide",
		Description: "The style guide as written: layout warnings, everything else errors",
		Rules: map[string]config.RuleConfig{
			IDLineWidth:         enabled("error"),
			IDTrailingMarker:    enabled("warning"),
			IDSectionNumbering:  enabled("error"),
			IDExplanationLength: enabled("error"),
			IDFenceLanguageTag:  enabled("error"),
			IDNoParensOnNames:   enabled("warning"),
		},
	}
}

// StrictPack returns every rule at error severity.
func StrictPack() Pack {
	return Pack{
		Name:        "strict",
		Description: "Strict pack: every rule is an error",
		Rules: map[string]config.RuleConfig{
			IDLineWidth:         enabled("error"),
			IDTrailingMarker:    enabled("error"),
			IDSectionNumbering:  enabled("error"),
			IDExplanationLength: enabled("error"),
			IDFenceLanguageTag:  enabled("error"),
			IDNoParensOnNames:   enabled("error"),
		},
	}
}

// RelaxedPack returns a pack for drafts: structure is still checked but
// layout and wording only warn, and the trailing marker is not required.
func RelaxedPack() Pack {
	return Pack{
		Name:        "relaxed",
		Description: "Relaxed pack for drafts: layout and wording only warn",
		Rules: map[string]config.RuleConfig{
			IDLineWidth:         enabled("warning"),
			IDTrailingMarker:    disabled(),
			IDSectionNumbering:  enabled("warning"),
			IDExplanationLength: enabled("warning"),
			IDFenceLanguageTag:  enabled("error"),
			IDNoParensOnNames:   enabled("warning"),
		},
	}
}

// Packs returns all built-in rule packs.
func Packs() []Pack {
	return []Pack{
		GuidePack(),
		StrictPack(),
		RelaxedPack(),
	}
}

// PackByName returns a pack by name, or nil if not found.
func PackByName(name string) *Pack {
	for _, p := range Packs() {
		if p.Name == name {
			return &p
		}
	}
	return nil
}

// PackNames returns the names of all available packs.
func PackNames() []string {
	packs := Packs()
	names := make([]string, len(packs))
	for i, p := range packs {
		names[i] = p.Name
	}
	return names
}

// enabled creates a RuleConfig with the rule enabled and the given severity.
func enabled(sev string) config.RuleConfig {
	on := true
	return config.RuleConfig{
		Enabled:  &on,
		Severity: &sev,
	}
}

// disabled creates a RuleConfig that turns the rule off.
func disabled() config.RuleConfig {
	off := false
	return config.RuleConfig{Enabled: &off}
}
