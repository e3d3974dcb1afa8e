package neonpulse

import "github.com/vovakirdan/neon-pulse/internal/core"

// MinLaserStrips is the smallest strip count a laser field is built with.
const MinLaserStrips = 3

// LaserField is a column of thin horizontal beams at fixed spacing.
// Disabling the field switches off every beam at once.
type LaserField struct {
	hazardBase
	strips    []float64 // Top y of each beam
	thickness float64
}

// NewLaserField creates a field whose first beam starts at firstY.
// count is raised to MinLaserStrips when smaller.
func NewLaserField(x, worldH, width, firstY, spacing, thickness float64, count int) *LaserField {
	if count < MinLaserStrips {
		count = MinLaserStrips
	}
	strips := make([]float64, count)
	for i := range strips {
		strips[i] = firstY + float64(i)*spacing
	}
	return &LaserField{
		hazardBase: hazardBase{x: x, width: width, worldH: worldH},
		strips:     strips,
		thickness:  thickness,
	}
}

// Kind returns HazardLaser.
func (l *LaserField) Kind() HazardKind { return HazardLaser }

// StripCount returns the number of beams.
func (l *LaserField) StripCount() int { return len(l.strips) }

// Rects returns one box per beam.
func (l *LaserField) Rects() []core.Box {
	rects := make([]core.Box, len(l.strips))
	for i, y := range l.strips {
		rects[i] = core.NewBox(l.x, y, l.width, l.thickness)
	}
	return rects
}

// Center returns the center of the span covered by the beams.
func (l *LaserField) Center() core.Vec {
	return boundsOf(l.Rects()).Center()
}

// CollidesWith reports whether body touches any beam.
func (l *LaserField) CollidesWith(body core.Box) bool {
	return l.collides(l.Rects(), body)
}

// Update moves the field.
func (l *LaserField) Update(dt, speed float64) {
	l.advance(dt, speed)
}
