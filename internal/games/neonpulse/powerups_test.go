package neonpulse

import (
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

func newTestPowerUps(seed int64) *PowerUpManager {
	return NewPowerUpManager(seed, 80, 22, config.DefaultGameConfig().PowerUps)
}

func TestPowerUpCollectIsIdempotent(t *testing.T) {
	p := &PowerUp{Kind: PowerUpShield}
	if !p.Collect() {
		t.Fatal("first Collect should succeed")
	}
	if p.Collect() {
		t.Error("second Collect should report false")
	}
	if !p.Collected() {
		t.Error("pickup should be marked collected")
	}
}

func TestPowerUpRefreshRule(t *testing.T) {
	pm := newTestPowerUps(1)
	pm.Activate(PowerUpShield)
	pm.Update(2)

	eff, ok := pm.Effect(PowerUpShield)
	if !ok || !approx(eff.Remaining, 3) {
		t.Fatalf("shield after 2s: ok=%v remaining=%f", ok, eff.Remaining)
	}

	pm.Activate(PowerUpShield)
	if n := len(pm.ActiveEffects()); n != 1 {
		t.Fatalf("expected one shield effect, got %d", n)
	}
	eff, _ = pm.Effect(PowerUpShield)
	if eff.Remaining != eff.Duration || eff.Duration != 5 {
		t.Errorf("refreshed shield remaining=%f duration=%f", eff.Remaining, eff.Duration)
	}
}

func TestPowerUpOverlays(t *testing.T) {
	pm := newTestPowerUps(1)

	if pm.IsInvulnerable() || pm.ScoreMultiplier() != 1 || pm.GameSpeedMultiplier() != 1 {
		t.Fatal("fresh manager should have neutral overlays")
	}

	pm.Activate(PowerUpShield)
	pm.Activate(PowerUpScoreMultiplier)
	pm.Activate(PowerUpSlowMotion)

	if !pm.IsInvulnerable() {
		t.Error("shield should make the body invulnerable")
	}
	if pm.ScoreMultiplier() != 2 {
		t.Errorf("score multiplier = %f, expected 2", pm.ScoreMultiplier())
	}
	if pm.GameSpeedMultiplier() != 0.5 {
		t.Errorf("speed multiplier = %f, expected 0.5", pm.GameSpeedMultiplier())
	}

	pm.ClearAll()
	if pm.IsInvulnerable() || pm.ScoreMultiplier() != 1 || pm.GameSpeedMultiplier() != 1 {
		t.Error("ClearAll should reset overlays")
	}
}

func TestPowerUpExpiry(t *testing.T) {
	pm := newTestPowerUps(1)
	pm.Activate(PowerUpSlowMotion)

	if expired := pm.Update(5.9); len(expired) != 0 {
		t.Fatalf("expired too early: %v", expired)
	}
	expired := pm.Update(0.2)
	if len(expired) != 1 || expired[0] != PowerUpSlowMotion {
		t.Fatalf("expected slow motion to expire, got %v", expired)
	}
	if len(pm.ActiveEffects()) != 0 {
		t.Error("expired effect still active")
	}
	if pm.GameSpeedMultiplier() != 1 {
		t.Errorf("speed multiplier after expiry = %f", pm.GameSpeedMultiplier())
	}
}

func TestPowerUpCheckCollection(t *testing.T) {
	pm := newTestPowerUps(1)
	pm.spawnPickup(PowerUpScoreMultiplier, core.V(10, 5))
	pm.spawnPickup(PowerUpShield, core.V(50, 5))

	body := core.NewBox(10, 5, 2, 1)
	kinds := pm.CheckCollection(body)
	if len(kinds) != 1 || kinds[0] != PowerUpScoreMultiplier {
		t.Fatalf("collected %v", kinds)
	}
	if again := pm.CheckCollection(body); len(again) != 0 {
		t.Errorf("pickup collected twice: %v", again)
	}
	if pm.ScoreMultiplier() != 2 {
		t.Errorf("collection should activate the effect immediately")
	}
	if pm.CollectedCount() != 1 {
		t.Errorf("collected count = %d", pm.CollectedCount())
	}

	pm.Update(frame)
	if n := len(pm.Pickups()); n != 1 {
		t.Errorf("collected pickup should be removed, %d left", n)
	}
}

func TestPowerUpPickupsLeaveWorld(t *testing.T) {
	pm := newTestPowerUps(1)
	pm.spawnTimer = 1000
	pm.spawnPickup(PowerUpShield, core.V(1, 5))

	pm.Update(0.5) // Moves 7 units left
	if n := len(pm.Pickups()); n != 0 {
		t.Errorf("offscreen pickup not removed, %d left", n)
	}
}

func TestPowerUpSpawningDisabled(t *testing.T) {
	cfg := config.DefaultGameConfig().PowerUps
	cfg.Enabled = false
	pm := NewPowerUpManager(1, 80, 22, cfg)

	for i := 0; i < 60; i++ {
		pm.Update(1)
	}
	if n := len(pm.Pickups()); n != 0 {
		t.Errorf("disabled manager spawned %d pickups", n)
	}
}

func TestPowerUpSpawnsWithinWindow(t *testing.T) {
	pm := newTestPowerUps(5)
	spawned := false
	for i := 0; i < 12*60; i++ {
		pm.Update(frame)
		if len(pm.Pickups()) > 0 {
			spawned = true
			p := pm.Pickups()[0]
			if p.Pos.Y < 1 || p.Pos.Y+p.H > 21 {
				t.Errorf("pickup y %f outside spawn band", p.Pos.Y)
			}
			break
		}
	}
	if !spawned {
		t.Error("expected a pickup within the maximum spawn interval")
	}
}

func TestActiveEffectTiming(t *testing.T) {
	e := NewActiveEffect(PowerUpScoreMultiplier, 10, 0.25)

	tests := []struct {
		tick          float64
		remaining     float64
		progress      float64
		aboutToExpire bool
	}{
		{0, 10, 1, false},
		{7, 3, 0.3, false},
		{1, 2, 0.2, true},
		{5, 0, 0, true},
	}
	for _, tc := range tests {
		e.Tick(tc.tick)
		if !approx(e.Remaining, tc.remaining) || !approx(e.Progress(), tc.progress) || e.IsAboutToExpire() != tc.aboutToExpire {
			t.Errorf("after Tick(%v): remaining=%f progress=%f expiring=%v",
				tc.tick, e.Remaining, e.Progress(), e.IsAboutToExpire())
		}
	}
	if !e.Expired() {
		t.Error("effect should be expired")
	}
	e.Refresh()
	if e.Remaining != 10 {
		t.Errorf("Refresh remaining = %f", e.Remaining)
	}
}

func TestPowerUpKindTable(t *testing.T) {
	for k := PowerUpShield; k < powerUpKindCount; k++ {
		if k.String() == "?" || k.Description() == "" || k.Glyph() == '?' {
			t.Errorf("kind %d missing table entry", k)
		}
		if k.Duration(config.DefaultGameConfig().PowerUps) <= 0 {
			t.Errorf("kind %s has no duration", k)
		}
	}
	if PowerUpKind(99).Valid() {
		t.Error("unknown kind reported valid")
	}
}
