package neonpulse

import (
	"math"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Status is the session status.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns the status name used by the platform layer.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState holds the score, difficulty and session status.
// Invalid transitions are rejected and reported with a false return.
type GameState struct {
	score        int
	highScore    int
	newHighScore bool
	level        int
	speed        float64
	status       Status

	// Overlays copied from the power-up manager each frame
	invulnerable    bool
	scoreMultiplier float64
	speedMultiplier float64

	difficulty *config.DifficultyManager
}

// NewGameState returns a state in the menu with the given persisted high score.
func NewGameState(highScore int, difficulty *config.DifficultyManager) *GameState {
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(config.DefaultGameConfig().Difficulty)
	}
	if highScore < 0 {
		highScore = 0
	}
	gs := &GameState{highScore: highScore, difficulty: difficulty}
	gs.reset()
	gs.status = StatusMenu
	return gs
}

func (gs *GameState) reset() {
	gs.score = 0
	gs.newHighScore = false
	gs.invulnerable = false
	gs.scoreMultiplier = 1
	gs.speedMultiplier = 1
	gs.RecomputeDifficulty()
}

// Reset starts a fresh run from any status. The high score is kept.
func (gs *GameState) Reset() {
	gs.reset()
	gs.status = StatusPlaying
}

// StartGame leaves the menu.
func (gs *GameState) StartGame() bool {
	if gs.status != StatusMenu {
		return false
	}
	gs.Reset()
	return true
}

// Pause suspends a running game.
func (gs *GameState) Pause() bool {
	if gs.status != StatusPlaying {
		return false
	}
	gs.status = StatusPaused
	return true
}

// Resume continues a paused game.
func (gs *GameState) Resume() bool {
	if gs.status != StatusPaused {
		return false
	}
	gs.status = StatusPlaying
	return true
}

// Restart begins a new run after game over.
func (gs *GameState) Restart() bool {
	if gs.status != StatusGameOver {
		return false
	}
	gs.Reset()
	return true
}

// EndGame finishes the run and updates the high score. Only a playing
// run can end.
func (gs *GameState) EndGame() bool {
	if gs.status != StatusPlaying {
		return false
	}
	gs.status = StatusGameOver
	gs.UpdateHighScore()
	return true
}

// UpdateHighScore raises the high score to the current score if higher.
func (gs *GameState) UpdateHighScore() bool {
	if gs.score <= gs.highScore {
		return false
	}
	gs.highScore = gs.score
	gs.newHighScore = true
	return true
}

// IncrementScore awards one pass, scaled by the score multiplier.
// Returns the points added.
func (gs *GameState) IncrementScore() int {
	return gs.AddScore(int(math.Round(gs.scoreMultiplier)))
}

// AddScore adds points and recomputes the difficulty. Non-positive
// values are ignored so the score never decreases.
func (gs *GameState) AddScore(points int) int {
	if points <= 0 {
		return 0
	}
	gs.score += points
	gs.RecomputeDifficulty()
	return points
}

// RecomputeDifficulty derives level and speed from the current score.
func (gs *GameState) RecomputeDifficulty() {
	gs.level = gs.difficulty.Level(gs.score)
	gs.speed = gs.difficulty.Speed(gs.level)
}

// SetOverlays copies the power-up overlays. Multipliers that are not
// finite or not positive read as 1.
func (gs *GameState) SetOverlays(invulnerable bool, scoreMultiplier, speedMultiplier float64) {
	if !core.Finite(scoreMultiplier) || scoreMultiplier <= 0 {
		scoreMultiplier = 1
	}
	if !core.Finite(speedMultiplier) || speedMultiplier <= 0 {
		speedMultiplier = 1
	}
	gs.invulnerable = invulnerable
	gs.scoreMultiplier = scoreMultiplier
	gs.speedMultiplier = speedMultiplier
}

func (gs *GameState) Score() int                   { return gs.score }
func (gs *GameState) HighScore() int               { return gs.highScore }
func (gs *GameState) IsNewHighScore() bool         { return gs.newHighScore }
func (gs *GameState) DifficultyLevel() int         { return gs.level }
func (gs *GameState) GameSpeed() float64           { return gs.speed }
func (gs *GameState) Status() Status               { return gs.status }
func (gs *GameState) IsGameOver() bool             { return gs.status == StatusGameOver }
func (gs *GameState) IsInvulnerable() bool         { return gs.invulnerable }
func (gs *GameState) ScoreMultiplier() float64     { return gs.scoreMultiplier }
func (gs *GameState) GameSpeedMultiplier() float64 { return gs.speedMultiplier }
