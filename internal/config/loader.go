package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the world configuration.
// Search order: customPath -> ~/.yardwalk/configs/world.yaml ->
// ./configs/world.yaml -> embedded default.
// The result is always validated; a malformed file aborts with an error
// rather than producing undefined collision behavior.
func Load(customPath string) (WorldConfig, error) {
	var cfg WorldConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("worldcfg: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userPath := userConfigPath("world.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(data, userPath)
		}
	}

	if data, err := os.ReadFile("configs/world.yaml"); err == nil {
		return parse(data, "configs/world.yaml")
	}

	cfg, err := parse(defaultWorldYAML, "embedded default")
	if err != nil {
		// Fallback to the hardcoded default if the embedded YAML is broken.
		return DefaultWorldConfig(), nil
	}
	return cfg, nil
}

func parse(data []byte, source string) (WorldConfig, error) {
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("worldcfg: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (from %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".yardwalk", "configs", filename)
}
