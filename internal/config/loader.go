package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClimber loads the configuration for a climber variant and validates it.
// Search order: customPath -> ~/.hypnos/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
func LoadClimber(variant, customPath string) (ClimberConfig, error) {
	cfg, err := load(variant, customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", variant, err)
	}
	return cfg, nil
}

func load(variant, customPath string) (ClimberConfig, error) {
	var cfg ClimberConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	embedded := GetDefaultYAML(variant)
	if embedded == nil {
		return cfg, fmt.Errorf("config: unknown variant %q", variant)
	}
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hypnos", "configs", filename)
}
