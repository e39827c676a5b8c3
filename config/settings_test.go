package config_test

import (
	"strings"
	"testing"

	"github.com/sybilscope/sybilscope/config"
	"github.com/sybilscope/sybilscope/model"
)

func TestDecodeSettingsYAML_OverridesOnlyNamedFields(t *testing.T) {
	doc := `
threshold: 0.8
burstMinCount: 10
`
	settings, err := config.DecodeSettingsYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeSettingsYAML: %v", err)
	}

	want := model.DefaultSettings()
	want.Threshold = 0.8
	want.BurstMinCount = 10

	if settings.Threshold != want.Threshold {
		t.Errorf("Threshold = %v; want %v", settings.Threshold, want.Threshold)
	}
	if settings.BurstMinCount != want.BurstMinCount {
		t.Errorf("BurstMinCount = %v; want %v", settings.BurstMinCount, want.BurstMinCount)
	}
	if settings.MinClusterSize != want.MinClusterSize {
		t.Errorf("MinClusterSize = %v; want default %v", settings.MinClusterSize, want.MinClusterSize)
	}
}

func TestDecodeSettingsYAML_EmptyDocumentIsDefaults(t *testing.T) {
	settings, err := config.DecodeSettingsYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeSettingsYAML: %v", err)
	}
	if settings.Threshold != model.DefaultSettings().Threshold {
		t.Errorf("Threshold = %v; want default", settings.Threshold)
	}
}
