package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/asmfmt/internal/configloader"
	"github.com/yaklabco/asmfmt/internal/ui/pretty"
	"github.com/yaklabco/asmfmt/pkg/config"
)

// keywordEntry is one keyword list of the active vocabulary.
type keywordEntry struct {
	Key         string   `json:"key"`
	Values      []string `json:"values"`
	Description string   `json:"description"`
}

// keywordEntries flattens kw in configuration file order.
func keywordEntries(kw config.Keywords) []keywordEntry {
	one := func(s string) []string {
		if s == "" {
			return []string{}
		}
		return []string{s}
	}

	lists := []struct {
		key    string
		values []string
	}{
		{"comment", one(kw.Comment)},
		{"banner", one(kw.Banner)},
		{"no_indent", kw.NoIndent},
		{"indent_in_if", kw.IndentInIf},
		{"label_no_break", kw.LabelNoBreak},
		{"increase", kw.Increase},
		{"decrease", kw.Decrease},
		{"temporary_decrease", kw.TemporaryDecrease},
		{"nested_same_depth", kw.NestedSameDepth},
		{"reset_label", kw.ResetLabel},
		{"conditional_open", one(kw.ConditionalOpen)},
		{"conditional_close", one(kw.ConditionalClose)},
		{"macro_open", one(kw.MacroOpen)},
		{"macro_close", one(kw.MacroClose)},
		{"space_after", kw.SpaceAfter},
	}

	entries := make([]keywordEntry, 0, len(lists))
	for _, list := range lists {
		values := list.values
		if values == nil {
			values = []string{}
		}
		entries = append(entries, keywordEntry{
			Key:         list.key,
			Values:      values,
			Description: config.KeywordDoc(list.key),
		})
	}
	return entries
}

func newKeywordsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keywords used to classify lines",
		Long: `List the active keyword vocabulary after all configuration files and
ASMFMT_* environment variables have been applied.

Examples:
  asmfmt keywords                    # Aligned text listing
  asmfmt keywords --format json      # JSON for scripting`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("%w: invalid format %q: must be text or json", ErrInvalidUsage, format)
			}

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("get config flag: %w", err)
			}
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
				WorkingDir:   workDir,
				ExplicitPath: configPath,
			})
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			entries := keywordEntries(loadResult.Config.Keywords)
			if format == "json" {
				return writeKeywordsJSON(cmd.OutOrStdout(), entries)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
			return writeKeywordsText(cmd.OutOrStdout(), styles, entries)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func writeKeywordsText(w io.Writer, styles *pretty.Styles, entries []keywordEntry) error {
	width := 0
	for _, entry := range entries {
		width = max(width, len(entry.Key))
	}

	var builder strings.Builder
	for _, entry := range entries {
		values := styles.Dim.Render("(none)")
		if len(entry.Values) > 0 {
			values = strings.Join(entry.Values, " ")
		}
		builder.WriteString(styles.Bold.Render(fmt.Sprintf("%-*s", width, entry.Key)))
		builder.WriteString("  ")
		builder.WriteString(values)
		builder.WriteString("\n")
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("write keywords: %w", err)
	}
	return nil
}

func writeKeywordsJSON(w io.Writer, entries []keywordEntry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}
	return nil
}
