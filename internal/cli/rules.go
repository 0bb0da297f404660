package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
	_ "github.com/yaklabco/docstyle/pkg/lint/rules" // Register built-in rules
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the style rules",
		Long: `List every style rule in the order findings are reported, with its ID,
name, default severity, and description. IDs and names are both accepted by
--rules and in the rules section of .docstyle.yml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := lint.RuleInfos(lint.DefaultRegistry)

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), infos)
			case "text":
			default:
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}

			logger := logging.NewInteractive()
			logger.SetOutput(cmd.OutOrStdout())

			if len(infos) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			ruleFormat := config.RuleFormat(flags.ruleFormat)
			for _, info := range infos {
				logger.Info(config.FormatRuleID(ruleFormat, info.ID, info.Name),
					logging.FieldSeverity, info.Severity,
					logging.FieldDescription, info.Description,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "combined",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesJSON writes rules as a JSON array.
func outputRulesJSON(w io.Writer, infos []config.RuleInfo) error {
	out := make([]ruleInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, ruleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
			Enabled:     info.Enabled,
			Tags:        info.Tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// ruleKeysHelp lists accepted --rules keys for error messages.
func ruleKeysHelp(reg *lint.Registry) string {
	ids := reg.IDs()
	return strings.Join(ids, ", ")
}
