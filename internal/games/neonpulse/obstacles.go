package neonpulse

import (
	"math/rand"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// gapClearance is the extra room a barrier gap keeps above the body height.
const gapClearance = 1.0

// trackedHazard pairs a hazard with its pass-through flag.
type trackedHazard struct {
	hazard Hazard
	passed bool
}

// ObstacleManager spawns, scrolls, scores and removes hazards.
type ObstacleManager struct {
	hazards []*trackedHazard
	rng     *rand.Rand
	cfg     config.ObstacleConfig

	worldW, worldH float64
	bodyHeight     float64

	speedMultiplier float64
	level           int
	gapMultiplier   float64
	spawnTimer      float64
	passedCount     int
	spawned         int
}

// NewObstacleManager creates a manager with the given RNG seed.
func NewObstacleManager(seed int64, worldW, worldH float64, cfg config.ObstacleConfig, bodyHeight float64) *ObstacleManager {
	om := &ObstacleManager{
		hazards:    make([]*trackedHazard, 0, 8),
		cfg:        cfg,
		worldW:     worldW,
		worldH:     worldH,
		bodyHeight: bodyHeight,
	}
	om.Reset(seed)
	return om
}

// Reset clears all hazards, reseeds the RNG and restores level 1.
// The first hazard spawns on the next update.
func (om *ObstacleManager) Reset(seed int64) {
	om.ClearAllObstacles()
	om.rng = rand.New(rand.NewSource(seed))
	om.speedMultiplier = 1
	om.level = 1
	om.gapMultiplier = 1
	om.spawnTimer = 0
	om.spawned = 0
}

// UpdateDifficulty sets the speed multiplier and level used for movement
// and spawning. Invalid values fall back to 1.0 and level 1.
func (om *ObstacleManager) UpdateDifficulty(speedMultiplier float64, level int) {
	if !core.Finite(speedMultiplier) || speedMultiplier <= 0 {
		speedMultiplier = 1
	}
	if level < 1 {
		level = 1
	}
	om.speedMultiplier = speedMultiplier
	om.level = level
}

// SetGapMultiplier scales barrier gaps for future spawns.
func (om *ObstacleManager) SetGapMultiplier(m float64) {
	if !core.Finite(m) || m <= 0 {
		m = 1
	}
	om.gapMultiplier = core.ClampF(m, 0.1, 2)
}

// Update spawns due hazards, moves every hazard and drops the ones that
// left the screen.
func (om *ObstacleManager) Update(dt float64) {
	if dt <= 0 || !core.Finite(dt) {
		return
	}

	om.spawnTimer -= dt
	if om.spawnTimer <= 0 {
		om.spawn()
		om.spawnTimer = om.SpawnInterval()
	}

	speed := om.cfg.MoveSpeed * om.speedMultiplier
	for _, t := range om.hazards {
		t.hazard.Update(dt, speed)
	}

	// Collect survivors first, then swap the slice
	valid := om.hazards[:0]
	for _, t := range om.hazards {
		if !t.hazard.IsOffscreen() {
			valid = append(valid, t)
		}
	}
	for i := len(valid); i < len(om.hazards); i++ {
		om.hazards[i] = nil
	}
	om.hazards = valid
}

// SpawnInterval returns the current seconds between spawns.
func (om *ObstacleManager) SpawnInterval() float64 {
	return config.SpawnInterval(om.cfg.SpawnInterval, om.cfg.MinSpawnInterval, om.cfg.SpawnIntervalStep, om.level)
}

// chooseKind picks an archetype using the weights unlocked at the current level.
func (om *ObstacleManager) chooseKind() HazardKind {
	w := om.cfg.Weights
	weights := [hazardKindCount]int{HazardBarrier: w.Barrier}
	if om.level >= w.LaserUnlockLevel {
		weights[HazardLaser] = w.Laser
	}
	if om.level >= w.PlatformUnlockLevel {
		weights[HazardPlatforms] = w.Platform
	}

	total := 0
	for _, v := range weights {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return HazardBarrier
	}

	roll := om.rng.Intn(total)
	for kind, v := range weights {
		if v <= 0 {
			continue
		}
		if roll < v {
			return HazardKind(kind)
		}
		roll -= v
	}
	return HazardBarrier
}

// spawn creates one hazard at the right edge of the world.
func (om *ObstacleManager) spawn() {
	var h Hazard
	switch om.chooseKind() {
	case HazardLaser:
		h = om.newLaser()
	case HazardPlatforms:
		h = om.newPlatforms()
	default:
		h = om.newBarrier()
	}
	om.add(h)
	om.spawned++
}

func (om *ObstacleManager) add(h Hazard) {
	om.hazards = append(om.hazards, &trackedHazard{hazard: h})
}

// randRange returns a value in [lo, hi], or the midpoint clamped at 0 when
// the range is empty.
func (om *ObstacleManager) randRange(lo, hi float64) float64 {
	if hi < lo {
		return core.ClampF((lo+hi)/2, 0, om.worldH)
	}
	return lo + om.rng.Float64()*(hi-lo)
}

func (om *ObstacleManager) newBarrier() Hazard {
	c := om.cfg.Barrier
	gap := c.GapSize * om.gapMultiplier
	if gap < c.MinGapSize {
		gap = c.MinGapSize
	}
	if floor := om.bodyHeight + gapClearance; gap < floor {
		gap = floor
	}
	if gap > om.worldH {
		gap = om.worldH
	}

	gapY := om.randRange(c.Margin, om.worldH-c.Margin-gap)
	return NewBarrier(om.worldW, om.worldH, c.Width, gapY, gap)
}

func (om *ObstacleManager) newLaser() Hazard {
	c := om.cfg.Laser
	strips := c.Strips
	if strips < MinLaserStrips {
		strips = MinLaserStrips
	}
	span := float64(strips-1)*c.Spacing + c.Thickness
	firstY := om.randRange(c.Margin, om.worldH-c.Margin-span)
	return NewLaserField(om.worldW, om.worldH, c.Width, firstY, c.Spacing, c.Thickness, strips)
}

func (om *ObstacleManager) newPlatforms() Hazard {
	c := om.cfg.Platform
	jitter := func() float64 {
		return c.AngularSpeed + c.SpeedJitter*(2*om.rng.Float64()-1)
	}
	upper := om.worldH * 0.3
	lower := om.worldH * 0.7
	return NewFloatingPlatformPair(om.worldW, om.worldH, c.Width, c.Height, c.Amplitude, upper, lower, jitter(), jitter())
}

// CheckCollisions reports whether body overlaps any enabled hazard.
func (om *ObstacleManager) CheckCollisions(body core.Box) bool {
	for _, t := range om.hazards {
		if t.hazard.CollidesWith(body) {
			return true
		}
	}
	return false
}

// CheckPassedObstacles marks and returns the hazards whose trailing edge
// is now behind leadingX. Each hazard is reported at most once.
func (om *ObstacleManager) CheckPassedObstacles(leadingX float64) []Hazard {
	var passed []Hazard
	for _, t := range om.hazards {
		if !t.passed && t.hazard.TrailingX() < leadingX {
			t.passed = true
			om.passedCount++
			passed = append(passed, t.hazard)
		}
	}
	return passed
}

// DisableObstaclesInRange disables every hazard whose center lies within
// radius of center for at least d seconds. Returns how many were hit.
func (om *ObstacleManager) DisableObstaclesInRange(center core.Vec, radius, d float64) int {
	if !core.Finite(radius) || radius < 0 || !core.Finite(d) || d <= 0 {
		return 0
	}
	n := 0
	for _, t := range om.hazards {
		if t.hazard.Center().Dist(center) <= radius {
			t.hazard.Disable(d)
			n++
		}
	}
	return n
}

// ClearAllObstacles removes every hazard and zeroes the passed count.
func (om *ObstacleManager) ClearAllObstacles() {
	for i := range om.hazards {
		om.hazards[i] = nil
	}
	om.hazards = om.hazards[:0]
	om.passedCount = 0
}

// Hazards returns the live hazards in spawn order.
func (om *ObstacleManager) Hazards() []Hazard {
	out := make([]Hazard, len(om.hazards))
	for i, t := range om.hazards {
		out[i] = t.hazard
	}
	return out
}

// Count returns the number of live hazards.
func (om *ObstacleManager) Count() int { return len(om.hazards) }

// PassedCount returns how many hazards were passed since the last clear.
func (om *ObstacleManager) PassedCount() int { return om.passedCount }

// Spawned returns how many hazards were spawned since the last reset.
func (om *ObstacleManager) Spawned() int { return om.spawned }

// SpeedMultiplier returns the current movement multiplier.
func (om *ObstacleManager) SpeedMultiplier() float64 { return om.speedMultiplier }

// Level returns the difficulty level used for spawning.
func (om *ObstacleManager) Level() int { return om.level }
