package neonpulse

import "github.com/vovakirdan/neon-pulse/internal/core"

// HazardKind identifies a hazard archetype.
type HazardKind int

const (
	HazardBarrier   HazardKind = iota // Two strips with a gap
	HazardLaser                       // Field of thin horizontal strips
	HazardPlatforms                   // Oscillating platform pair
	hazardKindCount
)

// String returns the name of the archetype.
func (k HazardKind) String() string {
	switch k {
	case HazardBarrier:
		return "barrier"
	case HazardLaser:
		return "laser"
	case HazardPlatforms:
		return "platforms"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for an active hazard of this kind.
func (k HazardKind) Glyph() rune {
	switch k {
	case HazardBarrier:
		return '█'
	case HazardLaser:
		return '═'
	case HazardPlatforms:
		return '▬'
	default:
		return '?'
	}
}

// Color returns the neon color of an active hazard of this kind.
func (k HazardKind) Color() core.Color {
	switch k {
	case HazardBarrier:
		return core.ColorNeonPink
	case HazardLaser:
		return core.ColorBrightRed
	case HazardPlatforms:
		return core.ColorNeonGreen
	default:
		return core.ColorDefault
	}
}

// Hazard is an obstacle that scrolls left and can be temporarily
// disabled by a pulse. A disabled hazard never collides.
type Hazard interface {
	Kind() HazardKind
	X() float64
	Width() float64
	// TrailingX is the right edge, used for pass-through detection.
	TrailingX() float64
	// Center is the center of the hazard's current bounding box.
	Center() core.Vec
	// Rects returns the current collision sub-rectangles.
	Rects() []core.Box
	CollidesWith(body core.Box) bool
	// Update moves the hazard left by speed*dt, counts down the disable
	// timer and advances its animation.
	Update(dt, speed float64)
	// Disable makes the hazard harmless for at least d seconds.
	// An existing longer timer is never shortened.
	Disable(d float64)
	DisableRemaining() float64
	IsDisabled() bool
	IsOffscreen() bool
}

// hazardBase holds the state shared by every archetype.
type hazardBase struct {
	x        float64
	width    float64
	worldH   float64
	disabled float64 // Seconds of disable time left
	anim     float64 // Seconds of animation time
}

func (h *hazardBase) X() float64                { return h.x }
func (h *hazardBase) Width() float64            { return h.width }
func (h *hazardBase) TrailingX() float64        { return h.x + h.width }
func (h *hazardBase) DisableRemaining() float64 { return h.disabled }
func (h *hazardBase) IsDisabled() bool          { return h.disabled > 0 }
func (h *hazardBase) IsOffscreen() bool         { return h.x+h.width < 0 }

func (h *hazardBase) Disable(d float64) {
	if d <= 0 || !core.Finite(d) {
		return
	}
	if d > h.disabled {
		h.disabled = d
	}
}

// advance applies the shared part of Update.
func (h *hazardBase) advance(dt, speed float64) {
	if dt <= 0 || !core.Finite(dt) {
		return
	}
	if core.Finite(speed) && speed > 0 {
		h.x -= speed * dt
	}
	h.disabled -= dt
	if h.disabled < 0 {
		h.disabled = 0
	}
	h.anim += dt
}

// collides tests the body against rects unless the hazard is disabled.
func (h *hazardBase) collides(rects []core.Box, body core.Box) bool {
	if h.IsDisabled() {
		return false
	}
	for _, r := range rects {
		if r.Intersects(body) {
			return true
		}
	}
	return false
}

// boundsOf returns the bounding box of rects.
func boundsOf(rects []core.Box) core.Box {
	if len(rects) == 0 {
		return core.Box{}
	}
	minX, minY := rects[0].X, rects[0].Y
	maxX, maxY := rects[0].Right(), rects[0].Bottom()
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Right() > maxX {
			maxX = r.Right()
		}
		if r.Bottom() > maxY {
			maxY = r.Bottom()
		}
	}
	return core.NewBox(minX, minY, maxX-minX, maxY-minY)
}
