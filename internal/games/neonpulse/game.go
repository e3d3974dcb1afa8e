// Package neonpulse implements the Neon Pulse simulation: a flappy-style
// body threading scrolling hazards, a cooldown-gated pulse that disables
// nearby hazards, and timed power-ups.
//
// Engine is the composition root; Game adapts it to the platform's
// registry.Game interface and renders it into a core.Screen.
package neonpulse

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/registry"
)

// Screen rows reserved outside the world: HUD on top, ground line below.
const (
	hudRows    = 1
	groundRows = 1
)

// Mode describes a registered variant of the game.
type Mode struct {
	ID      string
	Title   string
	Classic bool // Barriers only, no power-ups
}

var (
	ModeNeon    = Mode{ID: "neonpulse", Title: "Neon Pulse"}
	ModeClassic = Mode{ID: "neonpulse_classic", Title: "Neon Pulse Classic", Classic: true}
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.Preset

// logger receives engine logs; discards unless set
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by engines created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// LoadConfig loads the config for mode, applying the CLI preset.
func LoadConfig(mode Mode) config.GameConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultGameConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if mode.Classic {
		cfg.PowerUps.Enabled = false
		cfg.Obstacles.Weights.Laser = 0
		cfg.Obstacles.Weights.Platform = 0
	}
	return cfg
}

// Game adapts Engine to registry.Game.
type Game struct {
	mode      Mode
	engine    *Engine
	runtime   core.RuntimeConfig
	highScore int
}

// New creates a game for mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string { return g.mode.ID }

// Title returns the display name for this mode.
func (g *Game) Title() string { return g.mode.Title }

// Engine returns the underlying engine, nil before the first Reset.
func (g *Game) Engine() *Engine { return g.engine }

// SeedHighScore sets the best score shown before any run beats it.
func (g *Game) SeedHighScore(score int) {
	g.highScore = score
	if g.engine != nil && g.engine.Status() == StatusMenu && score > g.engine.State().HighScore() {
		g.Reset(g.runtime)
	}
}

// Reset builds a fresh engine sized to the screen. The game starts in the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.engine != nil {
		if hs := g.engine.State().HighScore(); hs > g.highScore {
			g.highScore = hs
		}
	}

	worldW, worldH := WorldSize(runtime.ScreenW, runtime.ScreenH)
	g.engine = NewEngine(LoadConfig(g.mode), worldW, worldH, runtime.Seed,
		WithHighScore(g.highScore),
		WithLogger(logger.With("mode", g.mode.ID)),
	)
}

// WorldSize converts a screen size to world size.
func WorldSize(screenW, screenH int) (w, h float64) {
	return float64(screenW), float64(screenH - hudRows - groundRows)
}

// Step applies input and advances the engine by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		g.Reset(g.runtime)
	}
	e := g.engine

	switch e.Status() {
	case StatusMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			e.StartGame()
		}
	case StatusGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			e.Restart()
		}
	default:
		if in.Has(core.ActionPause) {
			e.TogglePause()
		}
		if in.Has(core.ActionRestart) {
			e.Reset()
		}
	}

	if e.Status() == StatusPlaying {
		if in.Has(core.ActionJump) {
			e.Jump()
		}
		if in.Has(core.ActionPulse) {
			e.TryActivatePulse()
		}
		e.Update(g.runtime.FrameDelta())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1, Status: StatusMenu.String(), HighScore: g.highScore}
	}
	s := g.engine.State()
	return core.GameState{
		Score:     s.Score(),
		HighScore: s.HighScore(),
		Level:     s.DifficultyLevel(),
		Status:    s.Status().String(),
		GameOver:  s.IsGameOver(),
		Paused:    s.Status() == StatusPaused,
	}
}

// HUD returns the data the platform shows around the playfield.
func (g *Game) HUD() core.HUDInfo {
	if g.engine == nil {
		return core.HUDInfo{Level: 1, HighScore: g.highScore, PulseReady: true, PulseProgress: 1}
	}
	e := g.engine
	sig := e.Pulse().ChargeSignal()
	info := core.HUDInfo{
		Score:          e.State().Score(),
		HighScore:      e.State().HighScore(),
		Level:          e.State().DifficultyLevel(),
		PulseReady:     e.Pulse().IsReady(),
		PulseProgress:  e.Pulse().CooldownProgress(),
		PulseIntensity: sig.Intensity,
		PulseColor:     sig.Color,
		PulseStatus:    e.Pulse().StatusText(),
		Shielded:       e.State().IsInvulnerable(),
	}
	for _, eff := range e.PowerUps().ActiveEffects() {
		info.Effects = append(info.Effects, core.HUDEffect{
			Name:          eff.Kind.String(),
			Glyph:         eff.Kind.Glyph(),
			Color:         eff.Kind.Color(),
			Progress:      eff.Progress(),
			AboutToExpire: eff.IsAboutToExpire(),
		})
	}
	return info
}

// RunStats summarizes the current run.
func (g *Game) RunStats() core.RunStats {
	if g.engine == nil {
		return core.RunStats{Level: 1}
	}
	e := g.engine
	return core.RunStats{
		Score:     e.State().Score(),
		Level:     e.State().DifficultyLevel(),
		Pulses:    e.Pulse().Activations(),
		PowerUps:  e.PowerUps().CollectedCount(),
		Passed:    e.Obstacles().PassedCount(),
		Ticks:     e.Tick(),
		Seed:      e.Seed(),
		EndReason: e.GameOverCause(),
	}
}

// Register both modes with the registry
func init() {
	registry.Register(ModeNeon.ID, func() registry.Game {
		return New(ModeNeon)
	})
	registry.Register(ModeClassic.ID, func() registry.Game {
		return New(ModeClassic)
	})
}
