package neonpulse

import (
	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Body is the player-controlled bird: continuous vertical physics inside a
// fixed world, with lethal world edges.
type Body struct {
	pos      core.Vec // Top-left of the hitbox
	vel      core.Vec
	rotation float64 // Presentation only, derived from vel.Y
	alive    bool

	worldW, worldH float64
	width, height  float64
	startX         float64 // Fraction of world width
	physics        config.PhysicsConfig
}

// NewBody creates a body placed at its start position.
func NewBody(worldW, worldH float64, bodyCfg config.BodyConfig, physics config.PhysicsConfig) *Body {
	b := &Body{
		worldW:  worldW,
		worldH:  worldH,
		width:   bodyCfg.Width,
		height:  bodyCfg.Height,
		startX:  bodyCfg.StartX,
		physics: physics,
	}
	b.Reset()
	return b
}

// Reset restores the start position (vertically centered), zero velocity,
// zero rotation and alive=true.
func (b *Body) Reset() {
	b.pos = core.V(b.worldW*b.startX, (b.worldH-b.height)/2)
	b.vel = core.Vec{}
	b.rotation = 0
	b.alive = true
}

// Update integrates gravity and velocity over dt seconds, then resolves the
// world boundaries. A non-positive dt is a no-op.
func (b *Body) Update(dt float64) {
	if dt <= 0 || !core.Finite(dt) {
		return
	}

	b.vel.Y += b.physics.Gravity * dt
	if b.vel.Y > b.physics.MaxFallSpeed {
		b.vel.Y = b.physics.MaxFallSpeed
	}
	b.pos = b.pos.Add(b.vel.Scale(dt))

	// Positive velocity tilts the nose down, negative tilts it up
	maxRot := b.physics.MaxRotation
	b.rotation = core.ClampF(b.vel.Y*b.physics.RotationFactor, -maxRot, maxRot)

	b.checkBounds()
}

// checkBounds clamps the body into the world. Crossing any edge kills it and
// zeroes the velocity component along that axis.
func (b *Body) checkBounds() {
	maxY := b.worldH - b.height
	if b.pos.Y < 0 {
		b.pos.Y = 0
		b.vel.Y = 0
		b.alive = false
	} else if b.pos.Y > maxY {
		b.pos.Y = maxY
		b.vel.Y = 0
		b.alive = false
	}

	maxX := b.worldW - b.width
	if b.pos.X < 0 {
		b.pos.X = 0
		b.vel.X = 0
		b.alive = false
	} else if b.pos.X > maxX {
		b.pos.X = maxX
		b.vel.X = 0
		b.alive = false
	}
}

// Jump sets the vertical velocity to the jump impulse.
// A dead body ignores the request and Jump returns false.
func (b *Body) Jump() bool {
	if !b.alive {
		return false
	}
	b.vel.Y = b.physics.JumpImpulse
	return true
}

// Kill marks the body dead (hazard collision).
func (b *Body) Kill() {
	b.alive = false
}

// IsWithinSafeBounds reports false only when the body touches a world edge.
func (b *Body) IsWithinSafeBounds() bool {
	return b.pos.Y > 0 && b.pos.Y < b.worldH-b.height &&
		b.pos.X > 0 && b.pos.X < b.worldW-b.width
}

// Rect returns the body's collision box.
func (b *Body) Rect() core.Box {
	return core.NewBox(b.pos.X, b.pos.Y, b.width, b.height)
}

// Center returns the center of the collision box.
func (b *Body) Center() core.Vec {
	return b.Rect().Center()
}

// LeadingX returns the x of the body's front (right) edge.
func (b *Body) LeadingX() float64 {
	return b.pos.X + b.width
}

// Position returns the top-left of the hitbox.
func (b *Body) Position() core.Vec { return b.pos }

// Velocity returns the current velocity.
func (b *Body) Velocity() core.Vec { return b.vel }

// Rotation returns the presentation rotation in radians.
func (b *Body) Rotation() float64 { return b.rotation }

// Alive reports whether the body is alive.
func (b *Body) Alive() bool { return b.alive }
