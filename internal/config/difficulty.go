package config

import "math"

// The level and speed progression is fixed: one level per PointsPerLevel
// points, SpeedStep more speed per level above the first.
const (
	PointsPerLevel = 10
	SpeedStep      = 0.05
)

// DifficultyManager derives the discrete difficulty level and the continuous
// parameters fed back into hazard spawning from the current score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Level returns floor(score / PointsPerLevel) + 1. Negative scores count as 0.
func (d *DifficultyManager) Level(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// Speed returns 1.0 + (level - 1) * SpeedStep.
func (d *DifficultyManager) Speed(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1.0 + float64(level-1)*SpeedStep
}

// GapMultiplier returns the barrier gap scale for a level. Larger is easier.
func (d *DifficultyManager) GapMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	floor := clampF(d.cfg.MinGapMultiplier, 0.1, 1.0)
	return clampF(1.0-float64(level-1)*d.cfg.GapShrinkPerLevel, floor, 1.0)
}

// SpawnInterval returns the hazard spawn interval for a level. It shrinks
// monotonically with level and never drops below minInterval.
func SpawnInterval(base, minInterval, step float64, level int) float64 {
	if level < 1 {
		level = 1
	}
	if step < 0 {
		step = 0
	}
	return math.Max(minInterval, base-float64(level-1)*step)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
