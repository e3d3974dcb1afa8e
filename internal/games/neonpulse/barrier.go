package neonpulse

import "github.com/vovakirdan/neon-pulse/internal/core"

// Barrier is a full-height column with a single gap the body must fly through.
type Barrier struct {
	hazardBase
	gapY float64 // Top of the gap
	gap  float64 // Gap height
}

// NewBarrier creates a barrier with its gap starting at gapY.
func NewBarrier(x, worldH, width, gapY, gap float64) *Barrier {
	return &Barrier{
		hazardBase: hazardBase{x: x, width: width, worldH: worldH},
		gapY:       gapY,
		gap:        gap,
	}
}

// Kind returns HazardBarrier.
func (b *Barrier) Kind() HazardKind { return HazardBarrier }

// GapY returns the top of the gap.
func (b *Barrier) GapY() float64 { return b.gapY }

// GapSize returns the gap height.
func (b *Barrier) GapSize() float64 { return b.gap }

// Rects returns the top strip [0, gapY) and the bottom strip below the gap.
func (b *Barrier) Rects() []core.Box {
	bottomY := b.gapY + b.gap
	return []core.Box{
		core.NewBox(b.x, 0, b.width, b.gapY),
		core.NewBox(b.x, bottomY, b.width, b.worldH-bottomY),
	}
}

// Center returns the center of the column.
func (b *Barrier) Center() core.Vec {
	return boundsOf(b.Rects()).Center()
}

// CollidesWith reports whether body overlaps either strip.
func (b *Barrier) CollidesWith(body core.Box) bool {
	return b.collides(b.Rects(), body)
}

// Update moves the barrier.
func (b *Barrier) Update(dt, speed float64) {
	b.advance(dt, speed)
}
