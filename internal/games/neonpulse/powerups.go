package neonpulse

import (
	"math/rand"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// PowerUpManager handles pickups in the world and the effects they grant.
// At most one effect per kind is active; collecting a kind again restarts it.
type PowerUpManager struct {
	cfg config.PowerUpConfig
	rng *rand.Rand

	worldW, worldH float64

	pickups    []*PowerUp
	effects    []*ActivePowerUpEffect
	spawnTimer float64
	collected  int

	// Overlays recomputed from the active effects
	invulnerable    bool
	scoreMultiplier float64
	speedMultiplier float64
}

// NewPowerUpManager creates a manager with the given RNG seed.
func NewPowerUpManager(seed int64, worldW, worldH float64, cfg config.PowerUpConfig) *PowerUpManager {
	pm := &PowerUpManager{
		cfg:    cfg,
		worldW: worldW,
		worldH: worldH,
	}
	pm.Reset(seed)
	return pm
}

// Reset clears pickups and effects and reseeds the spawn RNG.
func (pm *PowerUpManager) Reset(seed int64) {
	pm.rng = rand.New(rand.NewSource(seed))
	pm.ClearAll()
	pm.collected = 0
	pm.spawnTimer = pm.nextSpawnDelay()
}

// Update spawns and moves pickups, ticks effects and recomputes the overlays.
// Returns the kinds whose effects expired during this update.
func (pm *PowerUpManager) Update(dt float64) []PowerUpKind {
	if dt <= 0 || !core.Finite(dt) {
		return nil
	}

	if pm.cfg.Enabled {
		pm.spawnTimer -= dt
		if pm.spawnTimer <= 0 {
			pm.spawn()
			pm.spawnTimer = pm.nextSpawnDelay()
		}
	}

	for _, p := range pm.pickups {
		p.move(dt, pm.cfg.Speed)
	}
	live := pm.pickups[:0]
	for _, p := range pm.pickups {
		if !p.Collected() && !p.IsOffscreen() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(pm.pickups); i++ {
		pm.pickups[i] = nil
	}
	pm.pickups = live

	var expired []PowerUpKind
	active := pm.effects[:0]
	for _, e := range pm.effects {
		e.Tick(dt)
		if e.Expired() {
			expired = append(expired, e.Kind)
			continue
		}
		active = append(active, e)
	}
	for i := len(active); i < len(pm.effects); i++ {
		pm.effects[i] = nil
	}
	pm.effects = active

	pm.recompute()
	return expired
}

// nextSpawnDelay draws a delay in [SpawnMin, SpawnMax].
func (pm *PowerUpManager) nextSpawnDelay() float64 {
	lo, hi := pm.cfg.SpawnMin, pm.cfg.SpawnMax
	if hi <= lo {
		return lo
	}
	return lo + pm.rng.Float64()*(hi-lo)
}

// chooseKind picks a kind by spawn weight.
func (pm *PowerUpManager) chooseKind() PowerUpKind {
	w := pm.cfg.Weights
	weights := [powerUpKindCount]int{
		PowerUpShield:          w.Shield,
		PowerUpScoreMultiplier: w.ScoreMultiplier,
		PowerUpSlowMotion:      w.SlowMotion,
	}
	total := 0
	for _, v := range weights {
		if v > 0 {
			total += v
		}
	}
	if total == 0 {
		return PowerUpKind(pm.rng.Intn(int(powerUpKindCount)))
	}
	roll := pm.rng.Intn(total)
	for kind, v := range weights {
		if v <= 0 {
			continue
		}
		if roll < v {
			return PowerUpKind(kind)
		}
		roll -= v
	}
	return PowerUpShield
}

func (pm *PowerUpManager) spawn() {
	kind := pm.chooseKind()
	lo := 1.0
	hi := pm.worldH - pm.cfg.Height - 1
	y := lo
	if hi > lo {
		y = lo + pm.rng.Float64()*(hi-lo)
	}
	pm.spawnPickup(kind, core.V(pm.worldW, y))
}

// spawnPickup places a pickup of kind at pos.
func (pm *PowerUpManager) spawnPickup(kind PowerUpKind, pos core.Vec) *PowerUp {
	p := &PowerUp{
		Kind:     kind,
		Pos:      pos,
		W:        pm.cfg.Width,
		H:        pm.cfg.Height,
		Duration: kind.Duration(pm.cfg),
	}
	pm.pickups = append(pm.pickups, p)
	return p
}

// CheckCollection collects every pickup overlapping body and activates
// its effect. Returns the collected kinds in pickup order.
func (pm *PowerUpManager) CheckCollection(body core.Box) []PowerUpKind {
	var kinds []PowerUpKind
	for _, p := range pm.pickups {
		if p.Collected() || !p.Rect().Intersects(body) {
			continue
		}
		if p.Collect() {
			pm.activate(p.Kind, p.Duration)
			pm.collected++
			kinds = append(kinds, p.Kind)
		}
	}
	if len(kinds) > 0 {
		pm.recompute()
	}
	return kinds
}

// Activate starts the effect of kind with its configured duration,
// replacing any running effect of the same kind.
func (pm *PowerUpManager) Activate(kind PowerUpKind) {
	if !kind.Valid() {
		return
	}
	pm.activate(kind, kind.Duration(pm.cfg))
	pm.recompute()
}

func (pm *PowerUpManager) activate(kind PowerUpKind, duration float64) {
	kept := pm.effects[:0]
	for _, e := range pm.effects {
		if e.Kind != kind {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(pm.effects); i++ {
		pm.effects[i] = nil
	}
	pm.effects = append(kept, NewActiveEffect(kind, duration, pm.cfg.ExpiryWarning))
}

// recompute derives the overlays from the active effects.
func (pm *PowerUpManager) recompute() {
	pm.invulnerable = false
	pm.scoreMultiplier = 1
	pm.speedMultiplier = 1
	for _, e := range pm.effects {
		switch e.Kind {
		case PowerUpShield:
			pm.invulnerable = true
		case PowerUpScoreMultiplier:
			pm.scoreMultiplier = pm.cfg.ScoreMultiplier
		case PowerUpSlowMotion:
			pm.speedMultiplier = pm.cfg.SlowMotionFactor
		}
	}
}

// ClearAll removes every pickup and effect and resets the overlays.
func (pm *PowerUpManager) ClearAll() {
	for i := range pm.pickups {
		pm.pickups[i] = nil
	}
	for i := range pm.effects {
		pm.effects[i] = nil
	}
	pm.pickups = pm.pickups[:0]
	pm.effects = pm.effects[:0]
	pm.recompute()
}

// ActiveEffects returns copies of the running effects in activation order.
func (pm *PowerUpManager) ActiveEffects() []ActivePowerUpEffect {
	out := make([]ActivePowerUpEffect, len(pm.effects))
	for i, e := range pm.effects {
		out[i] = *e
	}
	return out
}

// Effect returns the running effect of kind, if any.
func (pm *PowerUpManager) Effect(kind PowerUpKind) (ActivePowerUpEffect, bool) {
	for _, e := range pm.effects {
		if e.Kind == kind {
			return *e, true
		}
	}
	return ActivePowerUpEffect{}, false
}

// Pickups returns copies of the pickups still in the world.
func (pm *PowerUpManager) Pickups() []PowerUp {
	out := make([]PowerUp, len(pm.pickups))
	for i, p := range pm.pickups {
		out[i] = *p
	}
	return out
}

// IsInvulnerable reports whether a shield is active.
func (pm *PowerUpManager) IsInvulnerable() bool { return pm.invulnerable }

// ScoreMultiplier returns the points multiplier overlay.
func (pm *PowerUpManager) ScoreMultiplier() float64 { return pm.scoreMultiplier }

// GameSpeedMultiplier returns the hazard speed overlay.
func (pm *PowerUpManager) GameSpeedMultiplier() float64 { return pm.speedMultiplier }

// CollectedCount returns pickups collected since the last reset.
func (pm *PowerUpManager) CollectedCount() int { return pm.collected }
