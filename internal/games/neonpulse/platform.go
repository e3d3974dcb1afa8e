package neonpulse

import (
	"math"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// floatingPlatform is one half of a FloatingPlatformPair.
type floatingPlatform struct {
	baseY float64 // Center line of the oscillation
	phase float64
	omega float64 // Radians per second
}

// FloatingPlatformPair is two platforms oscillating vertically out of phase.
type FloatingPlatformPair struct {
	hazardBase
	platforms [2]floatingPlatform
	height    float64
	amplitude float64
}

// NewFloatingPlatformPair creates a pair around upperBase and lowerBase.
// The second platform starts half a period behind the first.
func NewFloatingPlatformPair(x, worldH, width, height, amplitude, upperBase, lowerBase, omegaUpper, omegaLower float64) *FloatingPlatformPair {
	return &FloatingPlatformPair{
		hazardBase: hazardBase{x: x, width: width, worldH: worldH},
		platforms: [2]floatingPlatform{
			{baseY: upperBase, phase: 0, omega: omegaUpper},
			{baseY: lowerBase, phase: math.Pi, omega: omegaLower},
		},
		height:    height,
		amplitude: amplitude,
	}
}

// Kind returns HazardPlatforms.
func (p *FloatingPlatformPair) Kind() HazardKind { return HazardPlatforms }

// CenterY returns the current vertical center of platform i (0 or 1).
// The value stays within the platform's oscillation band and the world.
func (p *FloatingPlatformPair) CenterY(i int) float64 {
	pl := p.platforms[i]
	y := pl.baseY + p.amplitude*math.Sin(p.anim*pl.omega+pl.phase)
	y = core.ClampF(y, pl.baseY-p.amplitude, pl.baseY+p.amplitude)
	return core.ClampF(y, p.height/2, p.worldH-p.height/2)
}

// Rects returns the two platform boxes.
func (p *FloatingPlatformPair) Rects() []core.Box {
	rects := make([]core.Box, len(p.platforms))
	for i := range p.platforms {
		rects[i] = core.NewBox(p.x, p.CenterY(i)-p.height/2, p.width, p.height)
	}
	return rects
}

// Center returns the center of the pair's bounding box.
func (p *FloatingPlatformPair) Center() core.Vec {
	return boundsOf(p.Rects()).Center()
}

// CollidesWith reports whether body overlaps either platform.
func (p *FloatingPlatformPair) CollidesWith(body core.Box) bool {
	return p.collides(p.Rects(), body)
}

// Update moves the pair and advances its oscillation.
func (p *FloatingPlatformPair) Update(dt, speed float64) {
	p.advance(dt, speed)
}
