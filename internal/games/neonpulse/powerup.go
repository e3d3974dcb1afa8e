package neonpulse

import (
	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// PowerUpKind represents the types of collectible power-ups.
type PowerUpKind int

const (
	PowerUpShield          PowerUpKind = iota // Ignore hazard collisions
	PowerUpScoreMultiplier                    // Double points per pass
	PowerUpSlowMotion                         // Slow hazard scrolling
	powerUpKindCount
)

type powerUpInfo struct {
	name        string
	description string
	glyph       rune
	color       core.Color
}

var powerUpTable = [powerUpKindCount]powerUpInfo{
	PowerUpShield:          {"Shield", "Hazards pass through you", '◈', core.ColorBrightCyan},
	PowerUpScoreMultiplier: {"x2 Score", "Every pass scores double", '✦', core.ColorBrightYellow},
	PowerUpSlowMotion:      {"Slow-Mo", "Hazards crawl", '◷', core.ColorBrightMagenta},
}

// Valid reports whether k is a known kind.
func (k PowerUpKind) Valid() bool {
	return k >= 0 && k < powerUpKindCount
}

// String returns the display name.
func (k PowerUpKind) String() string {
	if !k.Valid() {
		return "?"
	}
	return powerUpTable[k].name
}

// Description returns a one-line effect description.
func (k PowerUpKind) Description() string {
	if !k.Valid() {
		return ""
	}
	return powerUpTable[k].description
}

// Glyph returns the pickup's display character.
func (k PowerUpKind) Glyph() rune {
	if !k.Valid() {
		return '?'
	}
	return powerUpTable[k].glyph
}

// Color returns the pickup's color.
func (k PowerUpKind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return powerUpTable[k].color
}

// Duration returns the effect duration for k in seconds.
func (k PowerUpKind) Duration(cfg config.PowerUpConfig) float64 {
	switch k {
	case PowerUpShield:
		return cfg.Durations.Shield
	case PowerUpScoreMultiplier:
		return cfg.Durations.ScoreMultiplier
	case PowerUpSlowMotion:
		return cfg.Durations.SlowMotion
	default:
		return 0
	}
}

// PowerUp is a pickup scrolling through the world.
type PowerUp struct {
	Kind      PowerUpKind
	Pos       core.Vec // Top-left
	W, H      float64
	Duration  float64 // Effect duration granted on collection
	collected bool
}

// Rect returns the pickup's collision box.
func (p *PowerUp) Rect() core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Collect marks the pickup collected. Only the first call returns true.
func (p *PowerUp) Collect() bool {
	if p.collected {
		return false
	}
	p.collected = true
	return true
}

// Collected reports whether the pickup was collected.
func (p *PowerUp) Collected() bool { return p.collected }

// IsOffscreen reports whether the pickup left the world on the left.
func (p *PowerUp) IsOffscreen() bool { return p.Pos.X+p.W < 0 }

func (p *PowerUp) move(dt, speed float64) {
	p.Pos.X -= speed * dt
}

// ActivePowerUpEffect is a running timed effect.
type ActivePowerUpEffect struct {
	Kind      PowerUpKind
	Duration  float64
	Remaining float64 // Always in [0, Duration]
	warning   float64 // Fraction of Duration that counts as about to expire
}

// NewActiveEffect returns an effect with its full duration remaining.
func NewActiveEffect(kind PowerUpKind, duration, warning float64) *ActivePowerUpEffect {
	if duration < 0 || !core.Finite(duration) {
		duration = 0
	}
	return &ActivePowerUpEffect{Kind: kind, Duration: duration, Remaining: duration, warning: warning}
}

// Progress returns the remaining fraction, 1 when fresh and 0 when expired.
func (e *ActivePowerUpEffect) Progress() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return core.ClampF(e.Remaining/e.Duration, 0, 1)
}

// IsAboutToExpire reports whether the effect is in its final warning window.
func (e *ActivePowerUpEffect) IsAboutToExpire() bool {
	return e.Remaining < e.warning*e.Duration
}

// Tick counts down by dt, clamped at zero.
func (e *ActivePowerUpEffect) Tick(dt float64) {
	if dt <= 0 || !core.Finite(dt) {
		return
	}
	e.Remaining -= dt
	if e.Remaining < 0 {
		e.Remaining = 0
	}
}

// Expired reports whether no time is left.
func (e *ActivePowerUpEffect) Expired() bool { return e.Remaining <= 0 }

// Refresh restores the full duration.
func (e *ActivePowerUpEffect) Refresh() { e.Remaining = e.Duration }
