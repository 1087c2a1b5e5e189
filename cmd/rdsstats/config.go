package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// appConfig holds the settings an optional rds.yaml in the working
// directory can override. A missing file is not an error; every field
// falls back to defaultConfig.
type appConfig struct {
	AdvancedPSDecoding bool `yaml:"advanced_ps_decoding"`
	EnableODA          bool `yaml:"enable_oda"`
}

func defaultConfig() appConfig {
	return appConfig{AdvancedPSDecoding: true, EnableODA: true}
}

// loadConfig reads path if it exists, overlaying its fields onto
// defaultConfig; if it doesn't exist, it returns the defaults
// unmodified.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return appConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return appConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
