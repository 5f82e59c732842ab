package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadClimb loads the climb configuration.
// Search order: customPath -> ~/.climb/configs/climb.yaml -> ./configs/climb.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadClimb(customPath string) (ClimbConfig, error) {
	// A custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultClimbConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseClimb(data)
		if err != nil {
			return DefaultClimbConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Search locations are best-effort: a broken file falls through
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseClimb(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseClimb(defaultClimbYAML)
	if err != nil {
		return DefaultClimbConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseClimb decodes YAML on top of the defaults and validates the result.
func ParseClimb(data []byte) (ClimbConfig, error) {
	cfg := DefaultClimbConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolvePath returns the file LoadClimb would read, or "" when the embedded
// default is used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath("climb.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "climb.yaml"))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".climb", "configs", filename)
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg ClimbConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return data, nil
}
