package neonpulse

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

func TestHazardDisabledNeverCollides(t *testing.T) {
	body := core.NewBox(10, 1, 2, 1)

	hazards := []Hazard{
		NewBarrier(10, 20, 4, 5, 5),
		NewLaserField(10, 20, 4, 1, 4, 0.5, 3),
		NewFloatingPlatformPair(10, 20, 4, 1, 0, 1.5, 14, 2, 2),
	}

	for _, h := range hazards {
		t.Run(h.Kind().String(), func(t *testing.T) {
			if !h.CollidesWith(body) {
				t.Fatal("expected collision while enabled")
			}
			h.Disable(2)
			if h.CollidesWith(body) {
				t.Error("disabled hazard must not collide")
			}
			h.Update(2, 0)
			if h.IsDisabled() {
				t.Errorf("disable timer should expire, remaining %f", h.DisableRemaining())
			}
			if !h.CollidesWith(body) {
				t.Error("expected collision after the disable timer expired")
			}
		})
	}
}

func TestHazardDisableNeverShortens(t *testing.T) {
	b := NewBarrier(10, 20, 4, 5, 5)

	tests := []struct {
		d    float64
		want float64
	}{
		{3, 3},
		{1, 3},
		{5, 5},
		{-1, 5},
		{math.NaN(), 5},
	}
	for _, tc := range tests {
		b.Disable(tc.d)
		if got := b.DisableRemaining(); got != tc.want {
			t.Errorf("after Disable(%v) remaining = %f, expected %f", tc.d, got, tc.want)
		}
	}
}

func TestHazardDisableTimerClampsAtZero(t *testing.T) {
	b := NewBarrier(10, 20, 4, 5, 5)
	b.Disable(0.5)
	b.Update(2, 0)
	if b.DisableRemaining() != 0 {
		t.Errorf("remaining = %f, expected 0", b.DisableRemaining())
	}
}

func TestBarrierGap(t *testing.T) {
	b := NewBarrier(10, 20, 4, 5, 5)

	if b.CollidesWith(core.NewBox(10, 6, 2, 1)) {
		t.Error("body inside the gap should not collide")
	}
	if !b.CollidesWith(core.NewBox(10, 4, 2, 2)) {
		t.Error("body overlapping the top strip should collide")
	}
	if !b.CollidesWith(core.NewBox(10, 10, 2, 1)) {
		t.Error("body overlapping the bottom strip should collide")
	}
}

func TestHazardMovementAndOffscreen(t *testing.T) {
	b := NewBarrier(10, 20, 4, 5, 5)
	b.Update(0.5, 4)
	if b.X() != 8 {
		t.Errorf("x = %f, expected 8", b.X())
	}
	if b.TrailingX() != 12 {
		t.Errorf("trailing x = %f, expected 12", b.TrailingX())
	}
	if b.IsOffscreen() {
		t.Error("barrier should still be on screen")
	}

	b.Update(3, 4)
	if !b.IsOffscreen() {
		t.Errorf("barrier at x=%f should be off screen", b.X())
	}
}

func TestLaserFieldMinimumStrips(t *testing.T) {
	l := NewLaserField(10, 20, 3, 2, 4, 0.5, 1)
	if l.StripCount() != MinLaserStrips {
		t.Errorf("strip count = %d, expected %d", l.StripCount(), MinLaserStrips)
	}
	if len(l.Rects()) != MinLaserStrips {
		t.Errorf("rect count = %d, expected %d", len(l.Rects()), MinLaserStrips)
	}
}

func TestPlatformsOscillateOutOfPhase(t *testing.T) {
	const amp = 3.0
	p := NewFloatingPlatformPair(10, 20, 4, 1, amp, 6, 14, 2, 2)

	for i := 0; i < 600; i++ {
		p.Update(frame, 0)
		up, low := p.CenterY(0)-6, p.CenterY(1)-14
		if math.Abs(up) > amp+1e-9 || math.Abs(low) > amp+1e-9 {
			t.Fatalf("tick %d: offsets %f/%f outside amplitude", i, up, low)
		}
		if math.Abs(up+low) > 1e-9 {
			t.Fatalf("tick %d: platforms not in opposite phase (%f, %f)", i, up, low)
		}
	}
}

func TestPlatformsClampedToWorld(t *testing.T) {
	p := NewFloatingPlatformPair(10, 10, 4, 2, 5, 1, 9, 3, 3)
	for i := 0; i < 300; i++ {
		p.Update(frame, 0)
		for _, r := range p.Rects() {
			if r.Y < -1e-9 || r.Bottom() > 10+1e-9 {
				t.Fatalf("tick %d: platform %+v outside world", i, r)
			}
		}
	}
}
