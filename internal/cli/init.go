package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/fsutil"
	"github.com/yaklabco/docstyle/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the file init writes when --output is not given.
const defaultConfigFile = ".docstyle.yml"

type initFlags struct {
	force  bool
	full   bool
	pack   string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .docstyle.yml configuration file",
		Long: `Create a .docstyle.yml configuration file in the current directory with
the style guide defaults.

Examples:
  docstyle init                      Create a minimal .docstyle.yml
  docstyle init --full               List every rule with its severity
  docstyle init --pack relaxed       Start from the relaxed rule pack
  docstyle init --output style.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "list every rule with its default severity")
	cmd.Flags().StringVar(&flags.pack, "pack", "", fmt.Sprintf("rule pack to start from: %v", rules.PackNames()))
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	opts := config.TemplateOptions{Full: flags.full}
	if flags.pack != "" {
		pack := rules.PackByName(flags.pack)
		if pack == nil {
			return fmt.Errorf("unknown pack %q: must be one of %v", flags.pack, rules.PackNames())
		}
		opts.Pack = pack.Name
		opts.Rules = pack.Rules
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	content, err := config.GenerateTemplate(opts)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	replaced, err := fsutil.WriteFile(ctx, outputPath, content, fsutil.WriteOptions{
		Mode:      configFilePermissions,
		Overwrite: flags.force,
	})
	if errors.Is(err, fsutil.ErrExists) {
		return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
	}
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if replaced {
		logger.Warn("overwrote existing file", logging.FieldPath, outputPath)
	}
	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if opts.Pack != "" {
		logger.Info("rules taken from pack", logging.FieldPack, opts.Pack)
	}
	logger.Info("run 'docstyle rules' to see all available rules")

	return nil
}
