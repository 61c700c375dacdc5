package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/asmfmt/internal/configloader"
	"github.com/yaklabco/asmfmt/internal/logging"
	"github.com/yaklabco/asmfmt/pkg/config"
	"github.com/yaklabco/asmfmt/pkg/formatter"
	"github.com/yaklabco/asmfmt/pkg/pipeline"
	"github.com/yaklabco/asmfmt/pkg/reporter"
	"github.com/yaklabco/asmfmt/pkg/runner"
)

// runFlags holds the flags shared by format and lint.
type runFlags struct {
	extensions     []string
	exclude        []string
	ignore         []string
	skipVendored   bool
	lintSuffix     string
	indentWidth    int
	commentOffset  int
	minIndentation int
	mnemonicWidth  int
	indentLabels   bool
	indentMacros   bool
	formatComments bool
	jobs           int
	timeout        time.Duration
	format         string
	verbose        bool
	stats          bool
	compact        bool

	// format only.
	suffix string
	lint   bool
	dryRun bool
	diff   bool
	backup bool
}

func newFormatCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     "format [paths...]",
		Aliases: []string{"fmt"},
		Short:   "Format assembler sources",
		Long:    formatLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags, false)
		},
	}

	addRunFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.suffix, "suffix", "", "write output to <file><suffix> instead of in place")
	cmd.Flags().BoolVar(&flags.lint, "lint", false, "check formatting without writing (same as the lint command)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "report files that would change without writing")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "print unified diffs instead of writing (implies --dry-run)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "back up files before overwriting them")
	setFlagGroup(cmd, groupOutput, "suffix", "lint", "dry-run", "diff", "backup")

	return cmd
}

const formatLongDescription = `Format assembler sources in place.

By default, formats every .asm and .inc file below the current directory,
skipping the build, tools and Silabs directories. Specify paths to format
specific files or directories.

Examples:
  asmfmt format                      # Format the current directory
  asmfmt format src/ main.asm        # Format selected paths
  asmfmt format --suffix .fmt        # Write main.asm.fmt next to main.asm
  asmfmt format --diff               # Show changes without writing
  asmfmt format --indent-labels      # Indent the lines following labels
  asmfmt format --format json        # Output as JSON for CI`

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	defaults := config.NewConfig()

	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", defaults.Extensions, "file extensions to format")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", defaults.Exclude, "directory names to skip")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.skipVendored, "skip-vendored", false, "skip vendored third-party files")
	cmd.Flags().StringVar(&flags.lintSuffix, "lint-suffix", defaults.LintSuffix, "scratch-file suffix used by lint mode")
	cmd.Flags().IntVar(&flags.indentWidth, "indent-width", defaults.IndentWidth, "spaces per indentation level")
	cmd.Flags().IntVar(&flags.commentOffset, "comment-offset", defaults.CommentOffset, "column of inline comments")
	cmd.Flags().IntVar(&flags.minIndentation, "min-indentation", defaults.MinIndentation,
		"indentation level of ordinary instructions")
	cmd.Flags().IntVar(&flags.mnemonicWidth, "mnemonic-width", defaults.MnemonicWidth,
		"minimum width of the mnemonic column")
	cmd.Flags().BoolVar(&flags.indentLabels, "indent-labels", false, "indent the lines following a label")
	cmd.Flags().BoolVar(&flags.indentMacros, "indent-macros", false, "indent macro bodies")
	cmd.Flags().BoolVar(&flags.formatComments, "format-comments", false,
		"re-indent comment runs to match the code that follows them")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "abort the run after this duration (0 = no limit)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "also list unchanged files")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print a summary block instead of a one-line summary")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")

	setFlagGroup(cmd, groupSelection, "extensions", "exclude", "ignore", "skip-vendored")
	setFlagGroup(cmd, groupLayout, "indent-width", "comment-offset", "min-indentation", "mnemonic-width",
		"indent-labels", "indent-macros", "format-comments")
	setFlagGroup(cmd, groupOutput, "lint-suffix", "format", "verbose", "stats", "compact")
}

// overrides collects the flags that were set on the command line.
func (f *runFlags) overrides(cmd *cobra.Command) (*configloader.Overrides, error) {
	o := &configloader.Overrides{
		SkipVendored:   changed(cmd, "skip-vendored", f.skipVendored),
		Suffix:         changed(cmd, "suffix", f.suffix),
		LintSuffix:     changed(cmd, "lint-suffix", f.lintSuffix),
		IndentWidth:    changed(cmd, "indent-width", f.indentWidth),
		CommentOffset:  changed(cmd, "comment-offset", f.commentOffset),
		MinIndentation: changed(cmd, "min-indentation", f.minIndentation),
		MnemonicWidth:  changed(cmd, "mnemonic-width", f.mnemonicWidth),
		IndentLabels:   changed(cmd, "indent-labels", f.indentLabels),
		IndentMacros:   changed(cmd, "indent-macros", f.indentMacros),
		FormatComments: changed(cmd, "format-comments", f.formatComments),
		Lint:           changed(cmd, "lint", f.lint),
		DryRun:         changed(cmd, "dry-run", f.dryRun),
		Jobs:           changed(cmd, "jobs", f.jobs),
		BackupEnabled:  changed(cmd, "backup", f.backup),
	}

	if cmd.Flags().Changed("extensions") {
		o.Extensions = f.extensions
	}
	if cmd.Flags().Changed("exclude") {
		o.Exclude = f.exclude
	}
	if cmd.Flags().Changed("ignore") {
		o.Ignore = f.ignore
	}

	if cmd.Flags().Changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		outputFormat := config.OutputFormat(format)
		o.Format = &outputFormat
	}

	if f.diff {
		dryRun := true
		o.DryRun = &dryRun
		if o.Format == nil {
			diffFormat := config.FormatDiff
			o.Format = &diffFormat
		}
	}

	return o, nil
}

// changed returns a pointer to value when the named flag was set.
func changed[T any](cmd *cobra.Command, name string, value T) *T {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func runFormat(cmd *cobra.Command, args []string, flags *runFlags, forceLint bool) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	overrides, err := flags.overrides(cmd)
	if err != nil {
		return err
	}
	if forceLint {
		lint := true
		overrides.Lint = &lint
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Overrides:    overrides,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}
	ctx = logging.WithLogger(ctx, logger)

	fileRunner := runner.New(pipeline.New(formatter.New(formatter.OptionsFromConfig(cfg))))

	runOpts := runner.OptionsFromConfig(cfg, args)
	runOpts.WorkingDir = workDir

	logger.Debug("starting run",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldLint, cfg.Lint,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldSuffix, cfg.OutputSuffix(),
		logging.FieldJobs, cfg.Jobs,
		logging.FieldTimeout, flags.timeout,
	)

	result, runErr := fileRunner.Run(ctx, runOpts)
	if result == nil {
		return fmt.Errorf("run failed: %w", runErr)
	}
	logSummary(logger, result.Stats)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		Verbose:     flags.verbose,
		Stats:       flags.stats,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if runErr != nil {
		return runErr
	}
	return resultError(result)
}

func logSummary(logger *log.Logger, stats runner.Stats) {
	logger.Debug("run complete",
		logging.FieldFilesDiscovered, stats.FilesDiscovered,
		logging.FieldFilesFormatted, stats.FilesFormatted,
		logging.FieldFilesUnchanged, stats.FilesUnchanged,
		logging.FieldFilesLintFailed, stats.FilesLintFailed,
		logging.FieldFilesErrored, stats.FilesErrored,
	)
}

// resultError turns failed files into a command error.
func resultError(result *runner.Result) error {
	var errs []error
	if n := result.Stats.FilesLintFailed; n > 0 {
		errs = append(errs, fmt.Errorf("%w: %d file(s) not formatted", ErrLintFailed, n))
	}
	if n := result.Stats.FilesErrored; n > 0 {
		errs = append(errs, fmt.Errorf("%w: %d file(s) could not be processed", ErrFilesFailed, n))
	}
	return errors.Join(errs...)
}
