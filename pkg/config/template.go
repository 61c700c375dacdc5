package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes the keyword vocabulary. A minimal template lists only
	// layout and file selection settings.
	Full bool

	// Format is the output format: "yaml" (default) or "toml".
	Format string
}

// fieldDocs are the comments written above each top-level key.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fieldDocs = map[string]string{
	"extensions":      "File extensions to format, with or without a leading dot",
	"exclude":         "Directory names skipped wherever they occur",
	"ignore":          "Glob patterns, relative to the working directory, to skip",
	"skip_vendored":   "Skip vendored third-party files (vendor/, third_party/, ...)",
	"suffix":          "Write output to <file><suffix> instead of overwriting the file",
	"lint_suffix":     "Scratch-file suffix used by lint mode",
	"indent_width":    "Spaces per indentation level",
	"comment_offset":  "Column of inline comments",
	"min_indentation": "Indentation level of ordinary instructions",
	"mnemonic_width":  "Minimum width of the mnemonic column",
	"indent_labels":   "Indent the lines following a label",
	"indent_macros":   "Indent macro bodies",
	"format_comments": "Re-indent comment runs to match the code that follows them",
	"keywords":        "Line classification vocabulary (exact, case-sensitive tokens)",
	"backups":         "Back up files before overwriting them (mode: sidecar or none)",
}

// keywordDocs are the comments written above each keyword key.
//
//nolint:gochecknoglobals // Read-only lookup table.
var keywordDocs = map[string]string{
	"comment":            "Comment marker, whole-line and inline",
	"banner":             "Banner comment prefix; banner blocks stay at column zero",
	"no_indent":          "Directives never aligned and never given the minimum indentation",
	"indent_in_if":       "Directives indented when they appear inside a conditional",
	"label_no_break":     "Tokens that keep a label and its content on one line",
	"increase":           "Tokens that open a block after their own line",
	"decrease":           "Tokens that close a block before their own line",
	"temporary_decrease": "Tokens printed one level out, for their own line only",
	"nested_same_depth":  "Tokens that sit at their parent's level inside nested conditionals",
	"reset_label":        "Tokens that end label indentation",
	"conditional_open":   "Conditional open token; nested conditionals share one level",
	"conditional_close":  "Conditional close token",
	"macro_open":         "Macro open token, used when indent_macros is on",
	"macro_close":        "Macro close token",
	"space_after":        "Directives that get a space before an immediately following \"(\"",
}

// KeywordDoc returns the description of a keyword list by its config key.
func KeywordDoc(key string) string {
	return keywordDocs[key]
}

// GenerateTemplate creates a documented configuration file holding the
// built-in defaults.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := NewConfig()

	switch opts.Format {
	case "", "yaml":
		return yamlTemplate(cfg, opts.Full)
	case "toml":
		return tomlTemplate(cfg)
	default:
		return nil, fmt.Errorf("unsupported template format %q; valid formats: yaml, toml", opts.Format)
	}
}

func yamlTemplate(cfg *Config, full bool) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	kept := make([]*yaml.Node, 0, len(root.Content))
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Value == "keywords" {
			if !full {
				continue
			}
			annotate(value, keywordDocs)
		}
		if doc, ok := fieldDocs[key.Value]; ok {
			key.HeadComment = "# " + doc
		}
		kept = append(kept, key, value)
	}
	root.Content = kept

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())
	if err := encoder.Encode(root); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

func annotate(mapping *yaml.Node, docs map[string]string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if doc, ok := docs[key.Value]; ok {
			key.HeadComment = "# " + doc
		}
	}
}

// tomlTemplate always lists every key; the encoder cannot attach comments.
func tomlTemplate(cfg *Config) ([]byte, error) {
	body, err := cfg.ToTOML()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# asmfmt configuration
# CLI flags and ASMFMT_* environment variables override these values.`
}
