package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSections(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Bool("plain", false, "ungrouped")
	cmd.Flags().Int("width", 4, "layout flag")
	cmd.Flags().String("format", "text", "output flag")
	cmd.Flags().StringSlice("extensions", nil, "selection flag")
	cmd.Flags().Bool("secret", false, "hidden")
	require.NoError(t, cmd.Flags().MarkHidden("secret"))

	setFlagGroup(cmd, groupOutput, "format")
	setFlagGroup(cmd, groupLayout, "width", "missing")
	setFlagGroup(cmd, groupSelection, "extensions")

	sections := flagSections(cmd.Flags())
	require.Len(t, sections, 4)

	headings := make([]string, 0, len(sections))
	for _, s := range sections {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"File Selection Flags:",
		"Layout Flags:",
		"Output Flags:",
		"Flags:",
	}, headings)

	assert.NotNil(t, sections[1].Flags.Lookup("width"))
	assert.NotNil(t, sections[3].Flags.Lookup("plain"))
	assert.Nil(t, sections[3].Flags.Lookup("secret"))
}

func TestHelpRenderer_FlagsPlain(t *testing.T) {
	t.Parallel()

	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	set.IntP("jobs", "j", 0, "number of workers")
	set.Bool("lint", false, "check only")

	r := &helpRenderer{styles: NewHelpStyles(false)}
	got := r.flags(set)

	assert.Contains(t, got, "  -j, --jobs int   number of workers")
	assert.Contains(t, got, "      --lint       check only")
	assert.NotContains(t, got, "\x1b[")
}

func TestHelpFormatter_RendersSubcommandHelp(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "tool", Short: "Root"}
	root.PersistentFlags().String("color", "never", "")
	child := &cobra.Command{
		Use:     "run [paths...]",
		Aliases: []string{"r"},
		Short:   "Run things  ",
		RunE:    func(*cobra.Command, []string) error { return nil },
	}
	child.Flags().Int("width", 4, "column width")
	setFlagGroup(child, groupLayout, "width")
	root.AddCommand(child)

	NewHelpFormatter().ApplyToCommand(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--help"})
	require.NoError(t, root.Execute())

	help := out.String()
	assert.Contains(t, help, "tool run\n\nRun things\n\nUsage:\n  tool run [paths...]")
	assert.Contains(t, help, "Aliases:\n  r")
	assert.Contains(t, help, "Layout Flags:\n      --width int   column width (default 4)")
	assert.Contains(t, help, "Global Flags:")
}

func TestTrimLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", trimLines("a  \nb\t\n"))
}
