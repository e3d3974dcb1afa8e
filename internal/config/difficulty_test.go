package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelAndSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	tests := []struct {
		score int
		level int
		speed float64
	}{
		{0, 1, 1.0},
		{9, 1, 1.0},
		{10, 2, 1.05},
		{19, 2, 1.05},
		{100, 11, 1.5},
		{-5, 1, 1.0},
	}

	for _, tc := range tests {
		level := d.Level(tc.score)
		if level != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, level, tc.level)
		}
		if speed := d.Speed(level); math.Abs(speed-tc.speed) > 1e-9 {
			t.Errorf("Speed(%d) = %f, expected %f", level, speed, tc.speed)
		}
	}
}

func TestDifficultyFormulaIgnoresYAML(t *testing.T) {
	cfg, err := Parse([]byte("difficulty:\n  points_per_level: 3\n  speed_step: 0.5\n  max_level: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := NewDifficultyManager(cfg.Difficulty)

	if got := d.Level(100); got != 11 {
		t.Errorf("Level(100) = %d, expected 11", got)
	}
	if got := d.Speed(11); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Speed(11) = %f, expected 1.5", got)
	}
}

func TestGapMultiplierFloor(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	if got := d.GapMultiplier(1); got != 1.0 {
		t.Errorf("GapMultiplier(1) = %f, expected 1.0", got)
	}
	prev := d.GapMultiplier(1)
	for level := 2; level < 100; level++ {
		got := d.GapMultiplier(level)
		if got > prev {
			t.Fatalf("GapMultiplier must not grow with level: %d -> %f", level, got)
		}
		prev = got
	}
	if prev < 0.6 {
		t.Errorf("GapMultiplier fell below floor: %f", prev)
	}
}

func TestSpawnIntervalMonotonic(t *testing.T) {
	prev := SpawnInterval(2.2, 1.0, 0.1, 1)
	if prev != 2.2 {
		t.Fatalf("SpawnInterval at level 1 = %f, expected 2.2", prev)
	}
	for level := 2; level < 50; level++ {
		got := SpawnInterval(2.2, 1.0, 0.1, level)
		if got > prev {
			t.Fatalf("SpawnInterval grew at level %d: %f > %f", level, got, prev)
		}
		if got < 1.0 {
			t.Fatalf("SpawnInterval below floor at level %d: %f", level, got)
		}
		prev = got
	}
}
