package config

// Sanitize clamps every field into its designed range so the simulation can
// never reach an undefined region (negative cooldowns, zero-sized bodies,
// inverted spawn windows). Non-finite values fall back to the defaults.
func (c GameConfig) Sanitize() GameConfig {
	d := DefaultGameConfig()

	p := &c.Physics
	p.Gravity = bound(p.Gravity, 1, 1000, d.Physics.Gravity)
	p.JumpImpulse = bound(p.JumpImpulse, -500, -0.1, d.Physics.JumpImpulse)
	p.MaxFallSpeed = bound(p.MaxFallSpeed, 0.1, 1000, d.Physics.MaxFallSpeed)
	p.RotationFactor = bound(p.RotationFactor, 0, 1, d.Physics.RotationFactor)
	p.MaxRotation = bound(p.MaxRotation, 0, 3.14159, d.Physics.MaxRotation)

	b := &c.Body
	b.Width = bound(b.Width, 0.5, 10, d.Body.Width)
	b.Height = bound(b.Height, 0.5, 10, d.Body.Height)
	b.StartX = bound(b.StartX, 0.05, 0.9, d.Body.StartX)

	o := &c.Obstacles
	o.MoveSpeed = bound(o.MoveSpeed, 0.1, 500, d.Obstacles.MoveSpeed)
	o.SpawnInterval = bound(o.SpawnInterval, 0.1, 60, d.Obstacles.SpawnInterval)
	o.MinSpawnInterval = bound(o.MinSpawnInterval, 0.1, o.SpawnInterval, d.Obstacles.MinSpawnInterval)
	o.SpawnIntervalStep = bound(o.SpawnIntervalStep, 0, 10, d.Obstacles.SpawnIntervalStep)
	o.Weights.Barrier = boundInt(o.Weights.Barrier, 0, 1000)
	o.Weights.Laser = boundInt(o.Weights.Laser, 0, 1000)
	o.Weights.Platform = boundInt(o.Weights.Platform, 0, 1000)
	if o.Weights.Barrier+o.Weights.Laser+o.Weights.Platform == 0 {
		o.Weights.Barrier = 1
	}
	o.Weights.LaserUnlockLevel = boundInt(o.Weights.LaserUnlockLevel, 1, 1000)
	o.Weights.PlatformUnlockLevel = boundInt(o.Weights.PlatformUnlockLevel, 1, 1000)

	o.Barrier.Width = bound(o.Barrier.Width, 1, 50, d.Obstacles.Barrier.Width)
	o.Barrier.MinGapSize = bound(o.Barrier.MinGapSize, b.Height+0.5, 100, d.Obstacles.Barrier.MinGapSize)
	o.Barrier.GapSize = bound(o.Barrier.GapSize, o.Barrier.MinGapSize, 100, d.Obstacles.Barrier.GapSize)
	o.Barrier.Margin = bound(o.Barrier.Margin, 0, 50, d.Obstacles.Barrier.Margin)

	o.Laser.Width = bound(o.Laser.Width, 0.5, 50, d.Obstacles.Laser.Width)
	o.Laser.Strips = boundInt(o.Laser.Strips, 3, 12)
	o.Laser.Thickness = bound(o.Laser.Thickness, 0.1, 5, d.Obstacles.Laser.Thickness)
	o.Laser.Spacing = bound(o.Laser.Spacing, o.Laser.Thickness+b.Height+0.5, 100, d.Obstacles.Laser.Spacing)
	o.Laser.Margin = bound(o.Laser.Margin, 0, 50, d.Obstacles.Laser.Margin)

	o.Platform.Width = bound(o.Platform.Width, 0.5, 50, d.Obstacles.Platform.Width)
	o.Platform.Height = bound(o.Platform.Height, 0.5, 20, d.Obstacles.Platform.Height)
	o.Platform.Amplitude = bound(o.Platform.Amplitude, 0, 50, d.Obstacles.Platform.Amplitude)
	o.Platform.AngularSpeed = bound(o.Platform.AngularSpeed, 0, 50, d.Obstacles.Platform.AngularSpeed)
	o.Platform.SpeedJitter = bound(o.Platform.SpeedJitter, 0, o.Platform.AngularSpeed, d.Obstacles.Platform.SpeedJitter)

	pu := &c.Pulse
	pu.Cooldown = bound(pu.Cooldown, MinPulseCooldown, MaxPulseCooldown, d.Pulse.Cooldown)
	pu.Radius = bound(pu.Radius, 1, 200, d.Pulse.Radius)
	pu.BlastDuration = bound(pu.BlastDuration, 0.05, 10, d.Pulse.BlastDuration)
	pu.DisableDuration = bound(pu.DisableDuration, 0, 60, d.Pulse.DisableDuration)

	pw := &c.PowerUps
	pw.Speed = bound(pw.Speed, 0.1, 500, d.PowerUps.Speed)
	pw.Width = bound(pw.Width, 0.5, 10, d.PowerUps.Width)
	pw.Height = bound(pw.Height, 0.5, 10, d.PowerUps.Height)
	pw.SpawnMin = bound(pw.SpawnMin, 0.5, 600, d.PowerUps.SpawnMin)
	pw.SpawnMax = bound(pw.SpawnMax, pw.SpawnMin, 600, d.PowerUps.SpawnMax)
	pw.ExpiryWarning = bound(pw.ExpiryWarning, 0, 1, d.PowerUps.ExpiryWarning)
	pw.ScoreMultiplier = bound(pw.ScoreMultiplier, 1, 10, d.PowerUps.ScoreMultiplier)
	pw.SlowMotionFactor = bound(pw.SlowMotionFactor, 0.1, 1, d.PowerUps.SlowMotionFactor)
	pw.Durations.Shield = bound(pw.Durations.Shield, 0.1, 120, d.PowerUps.Durations.Shield)
	pw.Durations.ScoreMultiplier = bound(pw.Durations.ScoreMultiplier, 0.1, 120, d.PowerUps.Durations.ScoreMultiplier)
	pw.Durations.SlowMotion = bound(pw.Durations.SlowMotion, 0.1, 120, d.PowerUps.Durations.SlowMotion)
	pw.Weights.Shield = boundInt(pw.Weights.Shield, 0, 1000)
	pw.Weights.ScoreMultiplier = boundInt(pw.Weights.ScoreMultiplier, 0, 1000)
	pw.Weights.SlowMotion = boundInt(pw.Weights.SlowMotion, 0, 1000)

	df := &c.Difficulty
	df.GapShrinkPerLevel = bound(df.GapShrinkPerLevel, 0, 1, d.Difficulty.GapShrinkPerLevel)
	df.MinGapMultiplier = bound(df.MinGapMultiplier, 0.1, 1, d.Difficulty.MinGapMultiplier)

	c.Engine.MaxFrameDelta = bound(c.Engine.MaxFrameDelta, 0.001, 1, d.Engine.MaxFrameDelta)

	return c
}

// Bounds for the pulse cooldown, shared with the runtime setter.
const (
	MinPulseCooldown = 0.5
	MaxPulseCooldown = 60.0
)

func bound(val, min, max, fallback float64) float64 {
	if !isFinite(val) {
		val = fallback
	}
	return clampF(val, min, max)
}

func boundInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
