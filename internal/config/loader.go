package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBricks loads Bricks configuration.
// Search order: customPath -> ~/.arcade/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default
func LoadBricks(customPath string) (BricksConfig, error) {
	var cfg BricksConfig
	if err := load("bricks.yaml", customPath, defaultBricksYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadInvaders loads Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	var cfg InvadersConfig
	if err := load("invaders.yaml", customPath, defaultInvadersYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDrift loads Drift configuration.
// Search order: customPath -> ~/.arcade/configs/drift.yaml -> ./configs/drift.yaml -> embedded default
func LoadDrift(customPath string) (DriftConfig, error) {
	var cfg DriftConfig
	if err := load("drift.yaml", customPath, defaultDriftYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves the config search order shared by every game. A custom
// path is authoritative: read or parse failures there are reported, while
// the fallback locations fail silently through to the embedded default.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
