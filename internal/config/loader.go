package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "survivor.yaml"

// LoadSurvivor loads the game configuration and validates it.
// Search order: customPath -> ~/.survivor/configs/survivor.yaml ->
// ./configs/survivor.yaml -> embedded default.
func LoadSurvivor(customPath string) (SurvivorConfig, error) {
	cfg, err := readSurvivor(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readSurvivor(customPath string) (SurvivorConfig, error) {
	// A custom path must exist and parse; the other locations are optional.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurvivorConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultSurvivorYAML)
	if err != nil {
		return DefaultSurvivorConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they set.
func Parse(data []byte) (SurvivorConfig, error) {
	cfg := DefaultSurvivorConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "configs", filename)
}
