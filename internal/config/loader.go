package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and sanitizes it.
// Search order: customPath -> ~/.neonpulse/configs/neonpulse.yaml -> ./configs/neonpulse.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("neonpulse.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "neonpulse.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so partial files only override
// what they name, then sanitizes the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg.Sanitize(), nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonpulse", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The level/speed formula is never changed by a preset; only the
// tunables around it are.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Obstacles.Barrier.GapSize += 2
		cfg.Obstacles.SpawnInterval += 0.4
		cfg.Pulse.Cooldown *= 0.7
		cfg.PowerUps.SpawnMin *= 0.7
		cfg.PowerUps.SpawnMax *= 0.7
	case PresetHard:
		cfg.Obstacles.Barrier.GapSize -= 1.5
		cfg.Obstacles.SpawnInterval -= 0.4
		cfg.Obstacles.MoveSpeed *= 1.2
		cfg.Pulse.Cooldown *= 1.4
		cfg.Obstacles.Weights.LaserUnlockLevel = 1
		cfg.Obstacles.Weights.PlatformUnlockLevel = 1
	}
	*cfg = cfg.Sanitize()
}
