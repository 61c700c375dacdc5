package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/asmfmt/pkg/config"
)

// envVarPrefix is the prefix for all asmfmt environment variables.
const envVarPrefix = "ASMFMT_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping binds an environment variable to a config field setter.
type envMapping struct {
	typ         envFieldType
	description string
	setString   func(cfg *config.Config, v string)
	setBool     func(cfg *config.Config, v bool)
	setInt      func(cfg *config.Config, v int)
	setSlice    func(cfg *config.Config, v []string)
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"EXTENSIONS": {
		typ: envTypeSlice, description: "Comma-separated file extensions to format",
		setSlice: func(c *config.Config, v []string) { c.Extensions = v },
	},
	"EXCLUDE": {
		typ: envTypeSlice, description: "Comma-separated directory names to skip",
		setSlice: func(c *config.Config, v []string) { c.Exclude = v },
	},
	"IGNORE": {
		typ: envTypeSlice, description: "Comma-separated glob patterns to skip",
		setSlice: func(c *config.Config, v []string) { c.Ignore = v },
	},
	"SUFFIX": {
		typ: envTypeString, description: "Write output to <file><suffix> instead of in place",
		setString: func(c *config.Config, v string) { c.Suffix = v },
	},
	"LINT_SUFFIX": {
		typ: envTypeString, description: "Scratch-file suffix used by lint mode",
		setString: func(c *config.Config, v string) { c.LintSuffix = v },
	},
	"INDENT_WIDTH": {
		typ: envTypeInt, description: "Spaces per indentation level",
		setInt: func(c *config.Config, v int) { c.IndentWidth = v },
	},
	"COMMENT_OFFSET": {
		typ: envTypeInt, description: "Column of inline comments",
		setInt: func(c *config.Config, v int) { c.CommentOffset = v },
	},
	"MIN_INDENTATION": {
		typ: envTypeInt, description: "Indentation level of ordinary instructions",
		setInt: func(c *config.Config, v int) { c.MinIndentation = v },
	},
	"MNEMONIC_WIDTH": {
		typ: envTypeInt, description: "Minimum mnemonic column width",
		setInt: func(c *config.Config, v int) { c.MnemonicWidth = v },
	},
	"INDENT_LABELS": {
		typ: envTypeBool, description: "Indent the lines following a label: true or false",
		setBool: func(c *config.Config, v bool) { c.IndentLabels = v },
	},
	"INDENT_MACROS": {
		typ: envTypeBool, description: "Indent macro bodies: true or false",
		setBool: func(c *config.Config, v bool) { c.IndentMacros = v },
	},
	"FORMAT_COMMENTS": {
		typ: envTypeBool, description: "Re-indent comment runs: true or false",
		setBool: func(c *config.Config, v bool) { c.FormatComments = v },
	},
	"SKIP_VENDORED": {
		typ: envTypeBool, description: "Skip vendored third-party files: true or false",
		setBool: func(c *config.Config, v bool) { c.SkipVendored = v },
	},
	"LINT": {
		typ: envTypeBool, description: "Check formatting instead of writing: true or false",
		setBool: func(c *config.Config, v bool) { c.Lint = v },
	},
	"JOBS": {
		typ: envTypeInt, description: "Number of parallel workers (0 = auto)",
		setInt: func(c *config.Config, v int) { c.Jobs = v },
	},
	"FORMAT": {
		typ: envTypeString, description: "Output format: text, json, or diff",
		setString: func(c *config.Config, v string) { c.Format = config.OutputFormat(v) },
	},
	"BACKUPS_ENABLED": {
		typ: envTypeBool, description: "Back up files before overwriting: true or false",
		setBool: func(c *config.Config, v bool) { c.Backups.Enabled = v },
	},
	"BACKUPS_MODE": {
		typ: envTypeString, description: "Backup mode: sidecar or none",
		setString: func(c *config.Config, v string) { c.Backups.Mode = v },
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ASMFMT_ (e.g., ASMFMT_INDENT_WIDTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		mapping.setString(cfg, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		mapping.setBool(cfg, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		mapping.setInt(cfg, i)
	case envTypeSlice:
		mapping.setSlice(cfg, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
