package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/docstyle/internal/configloader"
	"github.com/yaklabco/docstyle/internal/logging"
	"github.com/yaklabco/docstyle/internal/watch"
	"github.com/yaklabco/docstyle/pkg/analysis"
	"github.com/yaklabco/docstyle/pkg/config"
	"github.com/yaklabco/docstyle/pkg/lint"
	_ "github.com/yaklabco/docstyle/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/docstyle/pkg/parser"
	"github.com/yaklabco/docstyle/pkg/reporter"
	"github.com/yaklabco/docstyle/pkg/runner"
)

type validateFlags struct {
	maxLineWidth            int
	minExplanationSentences int
	complexExampleLines     int
	languageTag             string
	rules                   []string
	ignore                  []string
	jobs                    int
	format                  string
	ruleFormat              string
	sort                    string
	strict                  bool
	flat                    bool
	compact                 bool
	followSymlinks          bool
	watch                   bool
	printConfig             bool
}

func newValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Check Markdown topics against the style guide",
		Long:  validateLongDescription,
		Args:  cobra.ArbitraryArgs,
		Annotations: map[string]string{
			annotationEnvironment: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, flags)
		},
	}

	addValidateFlags(cmd, flags)

	return cmd
}

const validateLongDescription = `Check Markdown topics against the style guide.

By default, checks all .md and .markdown files in the current directory and
its subdirectories. A document that cannot be parsed is reported with a PARSE
finding and the rest of the corpus is still checked.

Exit codes:
  0  no error findings
  1  error findings (or warnings with --strict)
  2  configuration error, unreadable document, or other failure

Examples:
  docstyle validate                          # Check the current directory
  docstyle validate tutorials/ intro.md      # Check specific paths
  docstyle validate --max-line-width 100     # Allow wider prose lines
  docstyle validate --rules line-width,CODE_FENCE_LANGUAGE_TAG
  docstyle validate --format json            # Machine-readable report
  docstyle validate --watch                  # Re-check on every save
  docstyle validate --print-config           # Show the merged configuration`

func addValidateFlags(cmd *cobra.Command, flags *validateFlags) {
	f := cmd.Flags()
	f.IntVar(&flags.maxLineWidth, "max-line-width", config.DefaultMaxLineWidth,
		"maximum characters per prose line")
	f.IntVar(&flags.minExplanationSentences, "min-explanation-sentences", config.DefaultMinExplanationSentences,
		"sentences required after a complex example")
	f.IntVar(&flags.complexExampleLines, "complex-example-lines", config.DefaultComplexExampleLines,
		"source lines above which an example is complex")
	f.StringVar(&flags.languageTag, "language-tag", config.DefaultLanguageTag,
		"language tag every code fence must declare")
	f.StringSliceVar(&flags.rules, "rules", nil, "rule IDs or names to run (default all)")
	f.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns for documents to skip")
	f.IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	f.StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	f.StringVar(&flags.ruleFormat, "rule-format", "id", "rule identifier format in output: id, name, or combined")
	f.StringVar(&flags.sort, "sort", "count", "rule table order in summary output: count, alpha, severity")
	f.BoolVar(&flags.strict, "strict", false, "treat warnings as failures for the exit code")
	f.BoolVar(&flags.flat, "flat", false, "print one self-contained line per finding")
	f.BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	f.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow directory symlinks")
	f.BoolVar(&flags.watch, "watch", false, "re-check whenever a document changes")
	f.BoolVar(&flags.printConfig, "print-config", false, "print the resolved configuration as YAML and exit")
}

// cliConfig builds the CLI layer of the configuration from the flags the
// user actually set, rejecting values that can never be valid.
func (flags *validateFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	positive := []struct {
		name  string
		value int
		dst   *int
	}{
		{"max-line-width", flags.maxLineWidth, &cfg.MaxLineWidth},
		{"min-explanation-sentences", flags.minExplanationSentences, &cfg.MinExplanationSentences},
		{"complex-example-lines", flags.complexExampleLines, &cfg.ComplexExampleLines},
	}
	for _, p := range positive {
		if !changed(p.name) {
			continue
		}
		if p.value <= 0 {
			return nil, fmt.Errorf("invalid --%s %d: must be a positive integer", p.name, p.value)
		}
		*p.dst = p.value
	}

	if changed("language-tag") {
		tag := strings.TrimSpace(flags.languageTag)
		if tag == "" {
			return nil, errors.New("invalid --language-tag: must not be empty")
		}
		cfg.LanguageTag = tag
	}

	if changed("jobs") {
		if flags.jobs < 0 {
			return nil, fmt.Errorf("invalid --jobs %d: must be >= 0", flags.jobs)
		}
		cfg.Jobs = flags.jobs
	}

	if changed("format") {
		format, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return nil, fmt.Errorf("invalid --format: %w", err)
		}
		cfg.Format = config.OutputFormat(format)
	}

	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}

	if changed("rules") {
		if len(flags.rules) == 0 {
			return nil, errors.New("invalid --rules: no rules given")
		}
		cfg.OnlyRules = flags.rules
	}

	cfg.Strict = flags.strict

	return cfg, nil
}

func runValidate(cmd *cobra.Command, args []string, flags *validateFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	sortField := analysis.SortField(flags.sort)
	if !sortField.IsValid() {
		return fmt.Errorf("invalid --sort %q: must be count, alpha, or severity", flags.sort)
	}

	if extra := configloader.Validate(&config.Config{Ignore: flags.ignore}); !extra.Valid() {
		return fmt.Errorf("invalid --ignore: %w", &extra.Errors[0])
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		if errors.Is(err, lint.ErrUnknownRule) {
			return fmt.Errorf("load configuration: %w (known rules: %s)", err, ruleKeysHelp(lint.DefaultRegistry))
		}
		return fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		"max_line_width", cfg.MaxLineWidth,
		"min_explanation_sentences", cfg.MinExplanationSentences,
		"complex_example_lines", cfg.ComplexExampleLines,
		"language_tag", cfg.LanguageTag,
		logging.FieldRules, cfg.OnlyRules,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, cfg.Format,
		logging.FieldStrict, cfg.Strict,
	)

	if flags.printConfig {
		return printConfig(cmd.OutOrStdout(), cfg)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	check := &corpusCheck{
		runner: runner.New(lint.NewValidator(parser.New(), lint.DefaultRegistry)),
		runOpts: runner.Options{
			Paths:          args,
			WorkingDir:     workDir,
			Extensions:     runner.DefaultExtensions(),
			IgnoreGlobs:    append(slices.Clone(cfg.Ignore), flags.ignore...),
			FollowSymlinks: flags.followSymlinks,
			Jobs:           cfg.Jobs,
			Config:         cfg,
		},
		reportOpts: reporter.Options{
			Writer:          cmd.OutOrStdout(),
			Format:          format,
			Color:           colorMode,
			ShowSummary:     true,
			GroupByDocument: !flags.flat,
			Compact:         flags.compact,
			RuleFormat:      cfg.RuleFormat,
			RuleSort:        sortField,
		},
		strict: cfg.Strict,
		logger: logger,
	}

	if !flags.watch {
		return check.run(ctx)
	}
	return check.watch(ctx, cmd.ErrOrStderr())
}

// corpusCheck runs one validate pass and reports it.
type corpusCheck struct {
	runner     *runner.Runner
	runOpts    runner.Options
	reportOpts reporter.Options
	strict     bool
	logger     *log.Logger
}

func (c *corpusCheck) run(ctx context.Context) error {
	c.logger.Debug("starting validate run",
		logging.FieldPaths, c.runOpts.Paths,
		logging.FieldWorkingDir, c.runOpts.WorkingDir,
		logging.FieldJobs, c.runOpts.Jobs,
	)

	result, err := c.runner.Run(ctx, c.runOpts)
	if err != nil {
		return fmt.Errorf("validate run failed: %w", err)
	}

	rep, err := reporter.New(c.reportOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	report, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	c.logger.Debug("validate run finished",
		logging.FieldDocumentsValidated, result.Stats.DocumentsValidated,
		logging.FieldFindingsTotal, report.Totals.Findings,
		logging.FieldErrors, report.Totals.Errors,
		logging.FieldWarnings, report.Totals.Warnings,
	)

	if ioErrs := result.IOErrors(); len(ioErrs) > 0 {
		for _, ioErr := range ioErrs {
			c.logger.Error("cannot read document", logging.FieldError, ioErr)
		}
		return fmt.Errorf("%d document(s) could not be read: %w", len(ioErrs), errors.Join(ioErrs...))
	}

	if report.Totals.Failing(c.strict) {
		return ErrFindings
	}
	return nil
}

// watch runs once, then again after every batch of document changes until
// ctx is cancelled. Findings never stop the loop; fatal errors are logged.
func (c *corpusCheck) watch(ctx context.Context, status io.Writer) error {
	c.report(c.run(ctx))

	roots := c.runOpts.Paths
	if len(roots) == 0 {
		roots = []string{c.runOpts.WorkingDir}
	}

	watcher, err := watch.New(watch.Options{
		Roots:      roots,
		Extensions: c.runOpts.Extensions,
		SkipDir:    c.ignoredDir,
	})
	if err != nil {
		return fmt.Errorf("start watch: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	c.logger.Debug("watching directories", logging.FieldPaths, watcher.WatchedDirs())
	_, _ = fmt.Fprintln(status, "Watching for changes. Press Ctrl+C to stop.")

	err = watcher.Run(ctx, func(ctx context.Context, changed []string) error {
		c.logger.Info("documents changed", logging.FieldFiles, len(changed))
		c.report(c.run(ctx))
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

func (c *corpusCheck) report(err error) {
	if err != nil && !errors.Is(err, ErrFindings) && !errors.Is(err, context.Canceled) {
		c.logger.Error("validate run failed", logging.FieldError, err)
	}
}

// ignoredDir reports whether an --ignore or config pattern excludes dir.
func (c *corpusCheck) ignoredDir(dir string) bool {
	return runner.Ignored(c.runOpts.WorkingDir, c.runOpts.IgnoreGlobs, dir)
}

// printConfig writes the resolved configuration in config-file form, so it
// can be saved as a .docstyle.yml.
func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := cfg.ToYAML()
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}
