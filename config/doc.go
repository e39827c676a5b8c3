// Package config decodes model.Settings from YAML using gopkg.in/yaml.v3:
// defaults first, then overridden field by field by whatever the document
// sets.
package config
