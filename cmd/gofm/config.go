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
	DefaultChannel     float64 `yaml:"default_channel"`
	I2CAddr            uint16  `yaml:"i2c_addr"`
	BigFont            string  `yaml:"big_font"`
	MediumFont         string  `yaml:"medium_font"`
	AdvancedPSDecoding bool    `yaml:"advanced_ps_decoding"`
}

func defaultConfig() appConfig {
	return appConfig{
		DefaultChannel:     88.5,
		I2CAddr:            0x10,
		BigFont:            "univers.flf",
		MediumFont:         "nancyj-improved.flf",
		AdvancedPSDecoding: true,
	}
}

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
