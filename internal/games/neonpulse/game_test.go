package neonpulse

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeNeon.ID, ModeClassic.ID} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q) returned game with ID %q", id, g.ID())
		}
	}
}

func TestClassicModeConfig(t *testing.T) {
	cfg := LoadConfig(ModeClassic)
	if cfg.PowerUps.Enabled {
		t.Error("classic mode should disable power-ups")
	}
	if cfg.Obstacles.Weights.Laser != 0 || cfg.Obstacles.Weights.Platform != 0 {
		t.Errorf("classic mode should only spawn barriers, weights %+v", cfg.Obstacles.Weights)
	}
}

func TestGameStepFlow(t *testing.T) {
	g := New(ModeNeon)
	g.Reset(testRuntime(1))

	if s := g.State(); s.Status != "menu" {
		t.Fatalf("initial status %q", s.Status)
	}

	steps := []struct {
		in     core.InputFrame
		status string
	}{
		{input(), "menu"},
		{input(core.ActionConfirm), "playing"},
		{input(core.ActionPause), "paused"},
		{input(core.ActionJump), "paused"},
		{input(core.ActionPause), "playing"},
	}
	for i, s := range steps {
		if got := g.Step(s.in).State.Status; got != s.status {
			t.Errorf("step %d: status %q, expected %q", i, got, s.status)
		}
	}
}

func TestGameRunsToGameOverAndRestarts(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testRuntime(3))
	g.Step(input(core.ActionConfirm))

	// Without flapping the body falls to the ground
	var state core.GameState
	for i := 0; i < 600 && !state.GameOver; i++ {
		state = g.Step(input()).State
	}
	if !state.GameOver {
		t.Fatal("expected the run to end")
	}

	stats := g.RunStats()
	if stats.EndReason != "boundary" || stats.Ticks == 0 {
		t.Errorf("run stats %+v", stats)
	}

	state = g.Step(input(core.ActionRestart)).State
	if state.GameOver || state.Status != "playing" || state.Score != 0 {
		t.Errorf("restart state %+v", state)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New(ModeNeon)
		g.Reset(testRuntime(12345))
		pilot := Autopilot{UsePulse: true}
		for i := 0; i < 900; i++ {
			g.Step(pilot.Input(g.Engine()))
		}
		return g.Engine().Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("determinism failed: %x != %x", a, b)
	}
}

func TestGameSeedHighScore(t *testing.T) {
	g := New(ModeNeon)
	g.Reset(testRuntime(1))
	g.SeedHighScore(42)

	if hs := g.State().HighScore; hs != 42 {
		t.Errorf("high score = %d, expected 42", hs)
	}
	if hs := g.HUD().HighScore; hs != 42 {
		t.Errorf("HUD high score = %d, expected 42", hs)
	}
}

func TestGameRender(t *testing.T) {
	g := New(ModeNeon)
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "NEON PULSE") {
		t.Error("title screen should show the game title")
	}

	g.Step(input(core.ActionConfirm))
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "PULSE READY") {
		t.Errorf("HUD should show the pulse status, got %q", screen.Row(0))
	}
	if screen.Get(0, 23) != GroundChar {
		t.Errorf("ground row starts with %q", screen.Get(0, 23))
	}
	if !strings.ContainsRune(screen.String(), BodyCharLevel) &&
		!strings.ContainsRune(screen.String(), BodyCharDown) &&
		!strings.ContainsRune(screen.String(), BodyCharUp) {
		t.Error("body not drawn")
	}
}

func TestGameHUD(t *testing.T) {
	g := New(ModeNeon)
	g.Reset(testRuntime(1))
	g.Step(input(core.ActionConfirm))
	g.Engine().PowerUps().Activate(PowerUpShield)
	g.Step(input(core.ActionPulse))

	hud := g.HUD()
	if hud.PulseReady || hud.PulseProgress >= 1 {
		t.Errorf("pulse should be cooling: %+v", hud)
	}
	if !hud.Shielded || len(hud.Effects) != 1 || hud.Effects[0].Name != "Shield" {
		t.Errorf("shield not reported: %+v", hud)
	}
}
