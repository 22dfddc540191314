package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "snakebird.yaml"

// LoadSnakeBird loads the game configuration.
// Search order: customPath -> ~/.snakebird/configs/snakebird.yaml -> ./configs/snakebird.yaml -> embedded default.
// Files are applied on top of the defaults, so a partial file only overrides what it names.
func LoadSnakeBird(customPath string) (SnakeBirdConfig, error) {
	// Try custom path first; failures here are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeBirdConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeBirdConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeBirdYAML)
	if err != nil {
		return DefaultSnakeBirdConfig(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (SnakeBirdConfig, error) {
	cfg := DefaultSnakeBirdConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeBirdConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeBirdConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakebird", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *SnakeBirdConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Easy and hard also tune the bonus world
	switch preset {
	case DifficultyEasy:
		cfg.Bonus.Duration += 5
		cfg.Invincibility.ExitGrace += 1
	case DifficultyHard:
		cfg.Obstacles.PortalChance /= 2
		cfg.Scoring.AdversePenalty += 5
	}
}
