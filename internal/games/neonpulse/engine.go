package neonpulse

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Minimum world size the engine accepts.
const (
	MinWorldW = 20.0
	MinWorldH = 10.0
)

// DifficultySource supplies the difficulty fed to the obstacle manager
// each frame. GameState implements it.
type DifficultySource interface {
	GameSpeed() float64
	DifficultyLevel() int
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier routes engine events to n.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDifficultySource overrides where difficulty is read from.
func WithDifficultySource(s DifficultySource) Option {
	return func(e *Engine) {
		e.source = s
	}
}

// WithHighScore seeds the persisted high score.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		e.highScore = score
	}
}

// Engine composes the simulation and runs one ordered pipeline per frame.
type Engine struct {
	cfg            config.GameConfig
	worldW, worldH float64
	seed           int64

	body       *Body
	obstacles  *ObstacleManager
	powerups   *PowerUpManager
	pulse      *PulseManager
	state      *GameState
	difficulty *config.DifficultyManager
	source     DifficultySource
	override   *difficultyOverride

	notifier  Notifier
	logger    *log.Logger
	highScore int

	tick    uint64
	elapsed float64
	cause   string
}

// NewEngine builds an engine in the menu status. cfg is sanitized and the
// world is raised to the minimum size.
func NewEngine(cfg config.GameConfig, worldW, worldH float64, seed int64, opts ...Option) *Engine {
	cfg = cfg.Sanitize()
	if !core.Finite(worldW) || worldW < MinWorldW {
		worldW = MinWorldW
	}
	if !core.Finite(worldH) || worldH < MinWorldH {
		worldH = MinWorldH
	}

	e := &Engine{
		cfg:      cfg,
		worldW:   worldW,
		worldH:   worldH,
		seed:     seed,
		notifier: nopNotifier{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	e.state = NewGameState(e.highScore, e.difficulty)
	if e.source == nil {
		e.source = e.state
	}
	e.body = NewBody(worldW, worldH, cfg.Body, cfg.Physics)
	e.obstacles = NewObstacleManager(seed, worldW, worldH, cfg.Obstacles, cfg.Body.Height)
	e.powerups = NewPowerUpManager(powerUpSeed(seed), worldW, worldH, cfg.PowerUps)
	e.pulse = NewPulseManager(cfg.Pulse, e.obstacles)
	return e
}

// powerUpSeed derives an independent stream for the power-up RNG.
func powerUpSeed(seed int64) int64 {
	return seed ^ 0x5DEECE66D
}

// Update advances the simulation by dt seconds. Nothing happens unless
// the status is playing; dt is clamped to the configured maximum.
func (e *Engine) Update(dt float64) {
	if e.state.Status() != StatusPlaying {
		return
	}
	if !core.Finite(dt) || dt <= 0 {
		return
	}
	if dt > e.cfg.Engine.MaxFrameDelta {
		dt = e.cfg.Engine.MaxFrameDelta
	}

	e.body.Update(dt)
	e.feedDifficulty()
	e.obstacles.Update(dt)
	for _, kind := range e.powerups.Update(dt) {
		e.notifier.Notify(PowerUpExpiredEvent{Kind: kind})
	}
	e.syncOverlays()

	if e.resolveCollisions() {
		e.advanceClock(dt)
		return
	}

	e.scorePasses()

	for _, kind := range e.powerups.CheckCollection(e.body.Rect()) {
		e.notifier.Notify(PowerUpCollectedEvent{Kind: kind})
		e.logger.Debug("power-up collected", "kind", kind.String())
	}
	e.syncOverlays()

	e.pulse.Update(dt)
	e.advanceClock(dt)
}

func (e *Engine) advanceClock(dt float64) {
	e.tick++
	e.elapsed += dt
}

// difficultyOverride is a difficulty pinned from outside the engine.
type difficultyOverride struct {
	speed float64
	level int
}

// feedDifficulty pushes the current difficulty, scaled by the slow motion
// overlay, into the obstacle manager. A pinned override wins over the source.
func (e *Engine) feedDifficulty() {
	level := e.source.DifficultyLevel()
	speed := e.source.GameSpeed()
	if e.override != nil {
		level, speed = e.override.level, e.override.speed
	}
	e.applyDifficulty(speed*e.state.GameSpeedMultiplier(), level)
}

func (e *Engine) applyDifficulty(speedMultiplier float64, level int) {
	e.obstacles.UpdateDifficulty(speedMultiplier, level)
	e.obstacles.SetGapMultiplier(e.difficulty.GapMultiplier(e.obstacles.Level()))
}

// UpdateDifficulty pins the obstacle speed multiplier and level. The pin
// holds across frames and restarts until ClearDifficulty is called; the slow
// motion overlay still scales the pinned speed.
func (e *Engine) UpdateDifficulty(speedMultiplier float64, level int) {
	e.override = &difficultyOverride{speed: speedMultiplier, level: level}
	e.feedDifficulty()
}

// ClearDifficulty drops a pinned difficulty so the source drives it again.
func (e *Engine) ClearDifficulty() {
	e.override = nil
	e.feedDifficulty()
}

func (e *Engine) syncOverlays() {
	e.state.SetOverlays(e.powerups.IsInvulnerable(), e.powerups.ScoreMultiplier(), e.powerups.GameSpeedMultiplier())
}

// resolveCollisions ends the run on a boundary hit or an unshielded hazard
// hit. Returns true if the run ended.
func (e *Engine) resolveCollisions() bool {
	if !e.body.Alive() {
		e.endGame("boundary")
		return true
	}
	if !e.state.IsInvulnerable() && e.obstacles.CheckCollisions(e.body.Rect()) {
		e.body.Kill()
		e.endGame("hazard")
		return true
	}
	return false
}

func (e *Engine) scorePasses() {
	for _, h := range e.obstacles.CheckPassedObstacles(e.body.LeadingX()) {
		before := e.state.DifficultyLevel()
		points := e.state.IncrementScore()
		e.notifier.Notify(ScoreEvent{Points: points, Total: e.state.Score(), Hazard: h.Kind()})
		if lvl := e.state.DifficultyLevel(); lvl > before {
			e.notifier.Notify(LevelUpEvent{Level: lvl})
			e.logger.Debug("level up", "level", lvl)
		}
	}
}

func (e *Engine) endGame(cause string) {
	if !e.state.EndGame() {
		return
	}
	e.cause = cause
	e.notifier.Notify(GameOverEvent{
		Score:        e.state.Score(),
		HighScore:    e.state.HighScore(),
		NewHighScore: e.state.IsNewHighScore(),
		Cause:        cause,
	})
	e.logger.Info("game over", "score", e.state.Score(), "cause", cause, "tick", e.tick)
}

// Jump makes the body jump. Ignored unless playing.
func (e *Engine) Jump() bool {
	if e.state.Status() != StatusPlaying {
		return false
	}
	return e.body.Jump()
}

// TryActivatePulse fires the pulse from the body's center.
func (e *Engine) TryActivatePulse() bool {
	if e.state.Status() != StatusPlaying {
		return false
	}
	center := e.body.Center()
	if !e.pulse.TryActivatePulse(center) {
		return false
	}
	n := e.pulse.LastDisabled()
	e.notifier.Notify(PulseEvent{Center: center, Disabled: n})
	e.logger.Debug("pulse", "disabled", n)
	return true
}

// Pause suspends the simulation.
func (e *Engine) Pause() bool {
	ok := e.state.Pause()
	if ok {
		e.logger.Debug("paused", "tick", e.tick)
	}
	return ok
}

// Resume continues a paused simulation.
func (e *Engine) Resume() bool {
	ok := e.state.Resume()
	if ok {
		e.logger.Debug("resumed", "tick", e.tick)
	}
	return ok
}

// TogglePause pauses or resumes.
func (e *Engine) TogglePause() bool {
	if e.state.Status() == StatusPaused {
		return e.Resume()
	}
	return e.Pause()
}

// StartGame leaves the menu and starts a fresh run.
func (e *Engine) StartGame() bool {
	if !e.state.StartGame() {
		return false
	}
	e.resetWorld()
	e.logger.Debug("game started", "seed", e.seed)
	return true
}

// Restart starts a fresh run after game over.
func (e *Engine) Restart() bool {
	if !e.state.Restart() {
		return false
	}
	e.resetWorld()
	e.logger.Debug("game restarted", "seed", e.seed)
	return true
}

// Reset starts a fresh run from any status.
func (e *Engine) Reset() {
	e.state.Reset()
	e.resetWorld()
}

// Reseed changes the seed used by subsequent resets.
func (e *Engine) Reseed(seed int64) {
	e.seed = seed
}

func (e *Engine) resetWorld() {
	e.body.Reset()
	e.obstacles.Reset(e.seed)
	e.powerups.Reset(powerUpSeed(e.seed))
	e.pulse.Reset()
	e.syncOverlays()
	e.feedDifficulty()
	e.tick = 0
	e.elapsed = 0
	e.cause = ""
}

// Read-only accessors.

func (e *Engine) Status() Status              { return e.state.Status() }
func (e *Engine) State() *GameState           { return e.state }
func (e *Engine) Body() *Body                 { return e.body }
func (e *Engine) Obstacles() *ObstacleManager { return e.obstacles }
func (e *Engine) PowerUps() *PowerUpManager   { return e.powerups }
func (e *Engine) Pulse() *PulseManager        { return e.pulse }
func (e *Engine) Config() config.GameConfig   { return e.cfg }
func (e *Engine) World() (w, h float64)       { return e.worldW, e.worldH }
func (e *Engine) Tick() uint64                { return e.tick }
func (e *Engine) Elapsed() float64            { return e.elapsed }
func (e *Engine) GameOverCause() string       { return e.cause }
func (e *Engine) Seed() int64                 { return e.seed }
