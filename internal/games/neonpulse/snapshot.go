package neonpulse

import (
	"fmt"
	"hash/fnv"
)

// HazardSnapshot is the observable state of one hazard.
type HazardSnapshot struct {
	Kind     string
	X        float64
	Disabled float64
	Rects    int
}

// EffectSnapshot is the observable state of one active effect.
type EffectSnapshot struct {
	Kind          string
	Remaining     float64
	Progress      float64
	AboutToExpire bool
}

// Snapshot contains the complete observable engine state for replay
// checks and the HUD. Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick    uint64
	Elapsed float64
	Status  string

	Score     int
	HighScore int
	Level     int
	GameSpeed float64

	BodyX, BodyY float64
	BodyVY       float64
	Rotation     float64
	Alive        bool

	PulseReady    bool
	PulseProgress float64
	PulseStatus   string
	PulseCount    int

	Invulnerable    bool
	ScoreMultiplier float64
	SpeedMultiplier float64

	Hazards     []HazardSnapshot
	Effects     []EffectSnapshot
	Pickups     int
	Collected   int
	PassedCount int
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	pos := e.body.Position()
	snap := Snapshot{
		Tick:    e.tick,
		Elapsed: e.elapsed,
		Status:  e.state.Status().String(),

		Score:     e.state.Score(),
		HighScore: e.state.HighScore(),
		Level:     e.state.DifficultyLevel(),
		GameSpeed: e.state.GameSpeed(),

		BodyX:    pos.X,
		BodyY:    pos.Y,
		BodyVY:   e.body.Velocity().Y,
		Rotation: e.body.Rotation(),
		Alive:    e.body.Alive(),

		PulseReady:    e.pulse.IsReady(),
		PulseProgress: e.pulse.CooldownProgress(),
		PulseStatus:   e.pulse.StatusText(),
		PulseCount:    e.pulse.Activations(),

		Invulnerable:    e.state.IsInvulnerable(),
		ScoreMultiplier: e.state.ScoreMultiplier(),
		SpeedMultiplier: e.state.GameSpeedMultiplier(),

		Pickups:     len(e.powerups.pickups),
		Collected:   e.powerups.CollectedCount(),
		PassedCount: e.obstacles.PassedCount(),
	}

	for _, h := range e.obstacles.Hazards() {
		snap.Hazards = append(snap.Hazards, HazardSnapshot{
			Kind:     h.Kind().String(),
			X:        h.X(),
			Disabled: h.DisableRemaining(),
			Rects:    len(h.Rects()),
		})
	}
	for _, eff := range e.powerups.ActiveEffects() {
		snap.Effects = append(snap.Effects, EffectSnapshot{
			Kind:          eff.Kind.String(),
			Remaining:     eff.Remaining,
			Progress:      eff.Progress(),
			AboutToExpire: eff.IsAboutToExpire(),
		})
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}
