package cli

import (
	"github.com/spf13/cobra"
)

func newLintCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     "lint [paths...]",
		Aliases: []string{"check"},
		Short:   "Check that assembler sources are formatted",
		Long:    lintLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags, true)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

const lintLongDescription = `Check that assembler sources are already formatted.

Each file is formatted into a scratch file next to it (<file>.asmb by
default), compared byte for byte with the source, and the scratch file is
removed again. Sources are never modified. Every file that would change is
reported as "Failed linting <path>" and the command exits with status 1.

Examples:
  asmfmt lint                        # Check the current directory
  asmfmt lint src/                   # Check the src directory
  asmfmt lint --format diff          # Show what formatting would change
  asmfmt lint --lint-suffix .tmp     # Use a different scratch suffix`
