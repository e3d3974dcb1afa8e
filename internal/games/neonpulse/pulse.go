package neonpulse

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Pulse tunable bounds enforced by the setters.
const (
	MinBlastRadius     = 1.0
	MaxBlastRadius     = 200.0
	MaxDisableDuration = 60.0

	pulseGlowHz     = 1.5  // Ready glow oscillation frequency
	cooldownEpsilon = 1e-9 // Absorbs float drift from summing frame deltas
)

// HazardDisabler disables hazards around a point. ObstacleManager implements it.
type HazardDisabler interface {
	DisableObstaclesInRange(center core.Vec, radius, duration float64) int
}

// PulseState is the pulse ability's cooldown state.
type PulseState int

const (
	PulseReady PulseState = iota
	PulseCooling
)

// String returns the state name.
func (s PulseState) String() string {
	if s == PulseReady {
		return "ready"
	}
	return "cooling"
}

// Blast is the visual shock ring of one activation.
type Blast struct {
	Center   core.Vec
	Radius   float64
	Duration float64
	Elapsed  float64
}

// Progress returns how far the blast animation is, in [0, 1].
func (b Blast) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return core.ClampF(b.Elapsed/b.Duration, 0, 1)
}

// CurrentRadius returns the ring radius, expanding to Radius.
func (b Blast) CurrentRadius() float64 {
	return b.Radius * b.Progress()
}

// ChargeSignal drives the pulse indicator.
type ChargeSignal struct {
	Color     core.Color
	Intensity float64 // 0..1
}

// PulseManager runs the pulse ability: Ready -> Cooling -> Ready.
type PulseManager struct {
	cooldown        float64
	radius          float64
	blastDuration   float64
	disableDuration float64

	remaining float64
	ready     bool
	blast     *Blast
	clock     float64
	disabler  HazardDisabler

	activations  int
	lastDisabled int
}

// NewPulseManager creates a ready pulse. disabler may be nil.
func NewPulseManager(cfg config.PulseConfig, disabler HazardDisabler) *PulseManager {
	pm := &PulseManager{
		blastDuration: math.Max(cfg.BlastDuration, 0),
		disabler:      disabler,
	}
	pm.SetCooldownDuration(cfg.Cooldown)
	pm.SetBlastRadius(cfg.Radius)
	pm.SetDisableDuration(cfg.DisableDuration)
	pm.Reset()
	return pm
}

// Reset forces the Ready state and drops any blast.
func (pm *PulseManager) Reset() {
	pm.ready = true
	pm.remaining = 0
	pm.blast = nil
	pm.clock = 0
	pm.activations = 0
	pm.lastDisabled = 0
}

// TryActivatePulse fires the pulse at center. It returns false while cooling.
func (pm *PulseManager) TryActivatePulse(center core.Vec) bool {
	if !pm.ready {
		return false
	}
	pm.ready = false
	pm.remaining = pm.cooldown
	pm.blast = &Blast{Center: center, Radius: pm.radius, Duration: pm.blastDuration}
	pm.lastDisabled = 0
	if pm.disabler != nil {
		pm.lastDisabled = pm.disabler.DisableObstaclesInRange(center, pm.radius, pm.disableDuration)
	}
	pm.activations++
	return true
}

// Update counts down the cooldown and advances the blast.
func (pm *PulseManager) Update(dt float64) {
	if dt <= 0 || !core.Finite(dt) {
		return
	}
	pm.clock += dt

	if pm.blast != nil {
		pm.blast.Elapsed += dt
		if pm.blast.Elapsed >= pm.blast.Duration {
			pm.blast = nil
		}
	}

	if !pm.ready {
		pm.remaining -= dt
		if pm.remaining <= cooldownEpsilon {
			pm.remaining = 0
			pm.ready = true
		}
	}
}

// CooldownProgress returns 0 right after activation and 1 when ready.
func (pm *PulseManager) CooldownProgress() float64 {
	if pm.ready || pm.cooldown <= 0 {
		return 1
	}
	return core.ClampF(1-pm.remaining/pm.cooldown, 0, 1)
}

// ChargeSignal returns the indicator color and intensity. A ready pulse
// glows near full intensity, a cooling one is dim and brightens with charge.
func (pm *PulseManager) ChargeSignal() ChargeSignal {
	if pm.ready {
		glow := 0.85 + 0.15*math.Sin(pm.clock*2*math.Pi*pulseGlowHz)
		return ChargeSignal{Color: core.ColorBrightCyan, Intensity: glow}
	}
	return ChargeSignal{Color: core.ColorGray, Intensity: 0.2 + 0.4*pm.CooldownProgress()}
}

// StatusText returns the HUD label.
func (pm *PulseManager) StatusText() string {
	if pm.ready {
		return "PULSE READY"
	}
	return fmt.Sprintf("CHARGING %.1fs", pm.remaining)
}

// SetCooldownDuration clamps d into the allowed range. A running cooldown
// is shortened if it now exceeds d.
func (pm *PulseManager) SetCooldownDuration(d float64) {
	if !core.Finite(d) {
		d = config.DefaultGameConfig().Pulse.Cooldown
	}
	pm.cooldown = core.ClampF(d, config.MinPulseCooldown, config.MaxPulseCooldown)
	if pm.remaining > pm.cooldown {
		pm.remaining = pm.cooldown
	}
}

// SetBlastRadius clamps r into [MinBlastRadius, MaxBlastRadius].
func (pm *PulseManager) SetBlastRadius(r float64) {
	if !core.Finite(r) {
		r = config.DefaultGameConfig().Pulse.Radius
	}
	pm.radius = core.ClampF(r, MinBlastRadius, MaxBlastRadius)
}

// SetDisableDuration clamps d into [0, MaxDisableDuration].
func (pm *PulseManager) SetDisableDuration(d float64) {
	if !core.Finite(d) {
		d = config.DefaultGameConfig().Pulse.DisableDuration
	}
	pm.disableDuration = core.ClampF(d, 0, MaxDisableDuration)
}

// IsReady reports whether the pulse can fire.
func (pm *PulseManager) IsReady() bool { return pm.ready }

// State returns the cooldown state.
func (pm *PulseManager) State() PulseState {
	if pm.ready {
		return PulseReady
	}
	return PulseCooling
}

// RemainingCooldown returns seconds until ready.
func (pm *PulseManager) RemainingCooldown() float64 { return pm.remaining }

// CooldownDuration returns the full cooldown in seconds.
func (pm *PulseManager) CooldownDuration() float64 { return pm.cooldown }

// Radius returns the blast radius.
func (pm *PulseManager) Radius() float64 { return pm.radius }

// DisableDuration returns how long hit hazards stay disabled.
func (pm *PulseManager) DisableDuration() float64 { return pm.disableDuration }

// Blast returns the active blast, if any.
func (pm *PulseManager) Blast() (Blast, bool) {
	if pm.blast == nil {
		return Blast{}, false
	}
	return *pm.blast, true
}

// Activations returns how many times the pulse fired since the last reset.
func (pm *PulseManager) Activations() int { return pm.activations }

// LastDisabled returns how many hazards the latest activation disabled.
func (pm *PulseManager) LastDisabled() int { return pm.lastDisabled }
