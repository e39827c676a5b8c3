package config

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/sybilscope/sybilscope/model"
)

// DecodeSettingsYAML decodes a YAML document into model.Settings, starting
// from model.DefaultSettings so a document only has to state the fields it
// wants to override — defaults first, then overridden field by field,
// without a filesystem layer since Settings never persists on its own.
func DecodeSettingsYAML(r io.Reader) (model.Settings, error) {
	settings := model.DefaultSettings()
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Settings{}, err
	}
	if len(data) == 0 {
		return settings, nil
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
