package config

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// DecodeYAMLInto decodes YAML onto an existing configuration.
// Keys absent from data leave the corresponding fields untouched.
func DecodeYAMLInto(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}

// Clone creates a deep copy of the keyword vocabulary.
func (k Keywords) Clone() Keywords {
	clone := k
	clone.NoIndent = slices.Clone(k.NoIndent)
	clone.IndentInIf = slices.Clone(k.IndentInIf)
	clone.LabelNoBreak = slices.Clone(k.LabelNoBreak)
	clone.Increase = slices.Clone(k.Increase)
	clone.Decrease = slices.Clone(k.Decrease)
	clone.TemporaryDecrease = slices.Clone(k.TemporaryDecrease)
	clone.NestedSameDepth = slices.Clone(k.NestedSameDepth)
	clone.ResetLabel = slices.Clone(k.ResetLabel)
	clone.SpaceAfter = slices.Clone(k.SpaceAfter)
	return clone
}

// YAMLIndent returns the default YAML indentation.
func YAMLIndent() int {
	return 2
}
