package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "axion.yaml"

// Load reads the game configuration.
// Search order: customPath -> ~/.axion/configs/axion.yaml ->
// ./configs/axion.yaml -> embedded default -> DefaultConfig.
// Keys missing from a file keep their default values.
func Load(customPath string) (AxionConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AxionConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return AxionConfig{}, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	if cfg, err := parse(defaultAxionYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// parse overlays YAML on top of the hard-coded defaults.
func parse(data []byte) (AxionConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AxionConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".axion", "configs", filename)
}

// Marshal encodes a configuration as YAML, e.g. for `axion config dump`.
func Marshal(cfg AxionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
