package neonpulse

import (
	"math"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Autopilot is a scripted player used by the headless simulator and tests.
// It steers toward the opening of the nearest hazard ahead and fires the
// pulse when a hazard is about to reach the body.
type Autopilot struct {
	UsePulse bool
	// Slack is how far below the target the body may sink before jumping.
	Slack float64
}

// Input returns the actions for the engine's next frame.
func (a Autopilot) Input(e *Engine) core.InputFrame {
	in := core.NewInputFrame()
	switch e.Status() {
	case StatusMenu:
		in.Set(core.ActionConfirm)
		return in
	case StatusPlaying:
	default:
		return in
	}

	body := e.Body()
	_, worldH := e.World()
	target := worldH / 2

	next := nearestAhead(e.Obstacles().Hazards(), body.Position().X)
	if next != nil {
		target = openingCenter(next, body.Center().Y, worldH)
		if a.UsePulse && e.Pulse().IsReady() && !next.IsDisabled() &&
			next.X()-body.LeadingX() < 4 && next.Center().Dist(body.Center()) <= e.Pulse().Radius() {
			in.Set(core.ActionPulse)
		}
	}

	slack := a.Slack
	if slack <= 0 {
		slack = 1.2
	}
	if body.Center().Y > target+slack && body.Velocity().Y >= 0 {
		in.Set(core.ActionJump)
	}
	return in
}

// nearestAhead returns the first hazard whose trailing edge is not yet
// behind x.
func nearestAhead(hazards []Hazard, x float64) Hazard {
	var best Hazard
	for _, h := range hazards {
		if h.TrailingX() < x {
			continue
		}
		if best == nil || h.X() < best.X() {
			best = h
		}
	}
	return best
}

// openingCenter returns the y to aim for when crossing h.
func openingCenter(h Hazard, currentY, worldH float64) float64 {
	switch v := h.(type) {
	case *Barrier:
		return v.GapY() + v.GapSize()/2
	case *FloatingPlatformPair:
		upper, lower := v.CenterY(0), v.CenterY(1)
		return (upper + lower) / 2
	}

	// Pick the free band closest to the current height
	rects := h.Rects()
	edges := []float64{0}
	for _, r := range rects {
		edges = append(edges, r.Y, r.Bottom())
	}
	edges = append(edges, worldH)

	best, bestDist := worldH/2, math.Inf(1)
	for i := 0; i+1 < len(edges); i += 2 {
		mid := (edges[i] + edges[i+1]) / 2
		if d := math.Abs(mid - currentY); d < bestDist {
			best, bestDist = mid, d
		}
	}
	return best
}
