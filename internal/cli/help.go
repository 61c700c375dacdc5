package cli

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/asmfmt/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command    lipgloss.Style
	Heading    lipgloss.Style
	Subcommand lipgloss.Style
	Flag       lipgloss.Style

	// Dim covers aliases, examples and flag value types.
	Dim lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{Command: plain, Heading: plain, Subcommand: plain, Flag: plain, Dim: plain}
	}
	color := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return &HelpStyles{
		Command:    color("14").Bold(true),
		Heading:    color("11").Bold(true),
		Subcommand: color("10"),
		Flag:       color("12"),
		Dim:        color("8"),
	}
}

// HelpFormatter renders cobra help and usage with Lipgloss styles.
// Colors are resolved per invocation from the command's --color flag.
type HelpFormatter struct {
	usage *template.Template
	help  *template.Template
}

// NewHelpFormatter parses the help templates.
func NewHelpFormatter() *HelpFormatter {
	// Placeholder funcs so the templates parse; real ones are bound per call.
	funcs := (&helpRenderer{styles: NewHelpStyles(false)}).funcs()
	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.Must(usage.Clone()).New("help").Parse(helpTemplate))
	return &HelpFormatter{usage: usage, help: help}
}

// ApplyToCommand installs the styled help and usage functions on cmd. Cobra
// inherits them for every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return h.render(h.usage, command)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.render(h.help, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) render(tmpl *template.Template, cmd *cobra.Command) error {
	mode := "auto"
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	r := &helpRenderer{styles: NewHelpStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))}

	bound, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("clone %s template: %w", tmpl.Name(), err)
	}
	if err := bound.Funcs(r.funcs()).Execute(cmd.OutOrStdout(), cmd); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return nil
}

const usageTemplate = `{{ heading "Usage:" }}
  {{if .Runnable}}{{ command .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ command .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (pad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}{{range flagSections .LocalFlags}}

{{ heading .Heading }}
{{ flags .Flags }}{{end}}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{ command .CommandPath }}

{{with (or .Long .Short)}}{{ . | trimLines }}

{{end}}{{ template "usage" . }}`

// helpRenderer binds one set of styles to the template functions.
type helpRenderer struct {
	styles *HelpStyles
}

func (r *helpRenderer) funcs() template.FuncMap {
	return template.FuncMap{
		"command":      r.styles.Command.Render,
		"heading":      r.styles.Heading.Render,
		"subcommand":   r.styles.Subcommand.Render,
		"dim":          r.styles.Dim.Render,
		"flags":        r.flags,
		"flagSections": flagSections,
		"join":         strings.Join,
		"pad":          func(s string, width int) string { return runewidth.FillRight(s, width) },
		"trimLines":    trimLines,
	}
}

// flagLinePattern splits a pflag usage line into indent, names, the padding
// gap of two or more spaces, and the description.
//
//nolint:gochecknoglobals // Compiled once.
var flagLinePattern = regexp.MustCompile(`^(\s*)(\S.*?)(\s{2,})(\S.*)$`)

// flags renders pflag usages with flag names and value types styled.
func (r *helpRenderer) flags(set *pflag.FlagSet) string {
	lines := strings.Split(strings.TrimSuffix(set.FlagUsages(), "\n"), "\n")
	for i, line := range lines {
		m := flagLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		names := strings.Fields(m[2])
		for j, token := range names {
			if name, ok := strings.CutSuffix(token, ","); ok {
				names[j] = r.styles.Flag.Render(name) + ","
			} else if strings.HasPrefix(token, "-") {
				names[j] = r.styles.Flag.Render(token)
			} else {
				names[j] = r.styles.Dim.Render(token)
			}
		}
		lines[i] = m[1] + strings.Join(names, " ") + m[3] + m[4]
	}
	return strings.Join(lines, "\n")
}

// flagGroupAnnotation is the pflag annotation naming a flag's help section.
const flagGroupAnnotation = "asmfmt_help_group"

// Help sections for the format and lint flags, in display order.
const (
	groupSelection = "File Selection"
	groupLayout    = "Layout"
	groupOutput    = "Output"
)

//nolint:gochecknoglobals // Read-only display order.
var flagGroupOrder = []string{groupSelection, groupLayout, groupOutput}

// setFlagGroup files the named flags under a help section.
func setFlagGroup(cmd *cobra.Command, group string, names ...string) {
	for _, name := range names {
		if cmd.Flags().Lookup(name) == nil {
			continue
		}
		_ = cmd.Flags().SetAnnotation(name, flagGroupAnnotation, []string{group})
	}
}

// flagSection is one headed block of flags in help output.
type flagSection struct {
	Heading string
	Flags   *pflag.FlagSet
}

// flagSections splits flags by their help group. Ungrouped flags come last
// under a plain "Flags:" heading.
func flagSections(flags *pflag.FlagSet) []flagSection {
	sets := make(map[string]*pflag.FlagSet)
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		group := ""
		if values := flag.Annotations[flagGroupAnnotation]; len(values) > 0 {
			group = values[0]
		}
		set, ok := sets[group]
		if !ok {
			set = pflag.NewFlagSet(group, pflag.ContinueOnError)
			sets[group] = set
		}
		set.AddFlag(flag)
	})

	sections := make([]flagSection, 0, len(sets))
	for _, group := range flagGroupOrder {
		if set, ok := sets[group]; ok {
			sections = append(sections, flagSection{Heading: group + " Flags:", Flags: set})
		}
	}
	if set, ok := sets[""]; ok {
		sections = append(sections, flagSection{Heading: "Flags:", Flags: set})
	}
	return sections
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
