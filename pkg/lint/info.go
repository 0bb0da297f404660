package lint

import "github.com/yaklabco/docstyle/pkg/config"

func init() {
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return RuleInfos(DefaultRegistry)
	}
}

// RuleInfos describes every rule in reg for templates and listings.
func RuleInfos(reg *Registry) []config.RuleInfo {
	rules := reg.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          r.ID(),
			Name:        r.Name(),
			Description: r.Description(),
			Enabled:     r.DefaultEnabled(),
			Severity:    r.DefaultSeverity(),
			Tags:        r.Tags(),
		})
	}
	return infos
}
