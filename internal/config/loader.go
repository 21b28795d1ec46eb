package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadArkanoid loads Arkanoid configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadArkanoid(customPath string) (ArkanoidConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArkanoidConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseArkanoid(data)
		if err != nil {
			return ArkanoidConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseArkanoid(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "arkanoid.yaml")); err == nil {
		if cfg, err := parseArkanoid(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseArkanoid(defaultArkanoidYAML)
	if err != nil {
		return DefaultArkanoidConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseArkanoid decodes YAML on top of the built-in defaults.
func parseArkanoid(data []byte) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ArkanoidConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}
