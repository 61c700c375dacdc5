// Package cli provides the Cobra command structure for asmfmt.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/asmfmt/internal/configloader"
	"github.com/yaklabco/asmfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root asmfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "asmfmt",
		Short: "A deterministic formatter and linter for 8051 assembler sources",
		Long:  rootLongDescription(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q for %q", ErrInvalidUsage, args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newFormatCommand())
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newKeywordsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter().ApplyToCommand(rootCmd)

	return rootCmd
}

const rootLongIntro = `asmfmt rewrites line-oriented assembler sources into a canonical layout.

Labels get their own lines, mnemonics and operands are aligned into columns,
conditional and macro blocks are indented, and inline comments move to a
fixed column. Formatting is idempotent, so the lint command can verify that
a tree is already formatted without touching any file.`

// rootLongDescription appends the supported environment variables to the
// root help text.
func rootLongDescription() string {
	vars := configloader.ListEnvVars()

	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	var b strings.Builder
	b.WriteString(rootLongIntro)
	b.WriteString("\n\nEnvironment:\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, v.Name, v.Description)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
