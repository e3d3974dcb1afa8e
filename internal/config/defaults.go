package config

import (
	_ "embed"
)

//go:embed defaults/neonpulse.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// Kept in sync with defaults/neonpulse.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			Gravity:        60,
			JumpImpulse:    -18,
			MaxFallSpeed:   28,
			RotationFactor: 0.05,
			MaxRotation:    1.0,
		},
		Body: BodyConfig{
			Width:  2,
			Height: 1,
			StartX: 0.2,
		},
		Obstacles: ObstacleConfig{
			MoveSpeed:         18,
			SpawnInterval:     2.2,
			MinSpawnInterval:  1.0,
			SpawnIntervalStep: 0.1,
			Weights: ArchetypeWeights{
				Barrier:             5,
				Laser:               3,
				Platform:            2,
				LaserUnlockLevel:    2,
				PlatformUnlockLevel: 3,
			},
			Barrier: BarrierConfig{
				Width:      4,
				GapSize:    7,
				MinGapSize: 4,
				Margin:     2,
			},
			Laser: LaserConfig{
				Width:     3,
				Strips:    3,
				Spacing:   5,
				Thickness: 0.5,
				Margin:    2,
			},
			Platform: PlatformConfig{
				Width:        6,
				Height:       1,
				Amplitude:    3,
				AngularSpeed: 2.0,
				SpeedJitter:  0.5,
			},
		},
		Pulse: PulseConfig{
			Cooldown:        5.0,
			Radius:          14,
			BlastDuration:   0.5,
			DisableDuration: 2.0,
		},
		PowerUps: PowerUpConfig{
			Enabled:          true,
			Speed:            14,
			Width:            2,
			Height:           1,
			SpawnMin:         6,
			SpawnMax:         12,
			ExpiryWarning:    0.25,
			ScoreMultiplier:  2.0,
			SlowMotionFactor: 0.5,
			Durations: PowerUpDurations{
				Shield:          5,
				ScoreMultiplier: 10,
				SlowMotion:      6,
			},
			Weights: PowerUpWeights{
				Shield:          1,
				ScoreMultiplier: 1,
				SlowMotion:      1,
			},
		},
		Difficulty: DifficultyConfig{
			GapShrinkPerLevel: 0.03,
			MinGapMultiplier:  0.6,
		},
		Engine: EngineConfig{
			MaxFrameDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
