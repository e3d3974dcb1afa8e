// Package config provides YAML-based game configuration loading and
// difficulty management for Neon Pulse.
//
// All distances are world units (one terminal cell) and all durations
// and rates are in seconds.
package config

// GameConfig contains all tunables for the simulation core.
type GameConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Body       BodyConfig       `yaml:"body"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Pulse      PulseConfig      `yaml:"pulse"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Engine     EngineConfig     `yaml:"engine"`
}

// PhysicsConfig defines the bird's vertical physics.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration, units/s²
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Velocity set on jump (negative = up)
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`  // Terminal velocity
	RotationFactor float64 `yaml:"rotation_factor"` // Radians per unit of vertical velocity
	MaxRotation    float64 `yaml:"max_rotation"`    // Rotation bound in radians (both directions)
}

// BodyConfig defines the bird's hitbox and start position.
type BodyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"` // Fraction of world width
}

// ObstacleConfig defines hazard spawning and movement.
type ObstacleConfig struct {
	MoveSpeed         float64          `yaml:"move_speed"`          // Base leftward speed, units/s
	SpawnInterval     float64          `yaml:"spawn_interval"`      // Seconds between spawns at level 1
	MinSpawnInterval  float64          `yaml:"min_spawn_interval"`  // Floor for the spawn interval
	SpawnIntervalStep float64          `yaml:"spawn_interval_step"` // Reduction per level
	Weights           ArchetypeWeights `yaml:"weights"`
	Barrier           BarrierConfig    `yaml:"barrier"`
	Laser             LaserConfig      `yaml:"laser"`
	Platform          PlatformConfig   `yaml:"platform"`
}

// ArchetypeWeights controls which hazard archetypes spawn and how often.
type ArchetypeWeights struct {
	Barrier             int `yaml:"barrier"`
	Laser               int `yaml:"laser"`
	Platform            int `yaml:"platform"`
	LaserUnlockLevel    int `yaml:"laser_unlock_level"`
	PlatformUnlockLevel int `yaml:"platform_unlock_level"`
}

// BarrierConfig defines the two-strip barrier with a gap.
type BarrierConfig struct {
	Width      float64 `yaml:"width"`
	GapSize    float64 `yaml:"gap_size"`
	MinGapSize float64 `yaml:"min_gap_size"`
	Margin     float64 `yaml:"margin"` // Minimum strip height at top and bottom
}

// LaserConfig defines the field of thin horizontal strips.
type LaserConfig struct {
	Width     float64 `yaml:"width"`
	Strips    int     `yaml:"strips"`
	Spacing   float64 `yaml:"spacing"`
	Thickness float64 `yaml:"thickness"`
	Margin    float64 `yaml:"margin"`
}

// PlatformConfig defines the oscillating platform pair.
type PlatformConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Amplitude    float64 `yaml:"amplitude"`     // Vertical excursion from base height
	AngularSpeed float64 `yaml:"angular_speed"` // Radians per second
	SpeedJitter  float64 `yaml:"speed_jitter"`  // Max random deviation of the angular speed
}

// PulseConfig defines the pulse ability.
type PulseConfig struct {
	Cooldown        float64 `yaml:"cooldown"`
	Radius          float64 `yaml:"radius"`
	BlastDuration   float64 `yaml:"blast_duration"`
	DisableDuration float64 `yaml:"disable_duration"`
}

// PowerUpConfig defines pickups and their timed effects.
type PowerUpConfig struct {
	Enabled          bool             `yaml:"enabled"`
	Speed            float64          `yaml:"speed"`
	Width            float64          `yaml:"width"`
	Height           float64          `yaml:"height"`
	SpawnMin         float64          `yaml:"spawn_min"`
	SpawnMax         float64          `yaml:"spawn_max"`
	ExpiryWarning    float64          `yaml:"expiry_warning"` // Fraction of duration
	ScoreMultiplier  float64          `yaml:"score_multiplier"`
	SlowMotionFactor float64          `yaml:"slow_motion_factor"`
	Durations        PowerUpDurations `yaml:"durations"`
	Weights          PowerUpWeights   `yaml:"weights"`
}

// PowerUpDurations holds effect durations in seconds.
type PowerUpDurations struct {
	Shield          float64 `yaml:"shield"`
	ScoreMultiplier float64 `yaml:"score_multiplier"`
	SlowMotion      float64 `yaml:"slow_motion"`
}

// PowerUpWeights holds relative spawn weights.
type PowerUpWeights struct {
	Shield          int `yaml:"shield"`
	ScoreMultiplier int `yaml:"score_multiplier"`
	SlowMotion      int `yaml:"slow_motion"`
}

// DifficultyConfig tunes how barrier gaps shrink with level. The level and
// speed formulas themselves are fixed (see PointsPerLevel and SpeedStep).
type DifficultyConfig struct {
	GapShrinkPerLevel float64 `yaml:"gap_shrink_per_level"`
	MinGapMultiplier  float64 `yaml:"min_gap_multiplier"`
}

// EngineConfig defines frame driver limits.
type EngineConfig struct {
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Clamp for a stalled frame
}

// Preset represents a named difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ParsePreset converts a CLI string to a Preset. Unknown values return "".
func ParsePreset(s string) Preset {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard:
		return Preset(s)
	default:
		return ""
	}
}
