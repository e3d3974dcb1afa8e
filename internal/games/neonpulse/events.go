package neonpulse

import "github.com/vovakirdan/neon-pulse/internal/core"

// Event is something observable that happened during a frame.
type Event interface {
	neonEvent()
}

// ScoreEvent is emitted for each passed hazard.
type ScoreEvent struct {
	Points int
	Total  int
	Hazard HazardKind
}

// LevelUpEvent is emitted when the difficulty level rises.
type LevelUpEvent struct {
	Level int
}

// PowerUpCollectedEvent is emitted when a pickup is collected.
type PowerUpCollectedEvent struct {
	Kind PowerUpKind
}

// PowerUpExpiredEvent is emitted when an effect runs out.
type PowerUpExpiredEvent struct {
	Kind PowerUpKind
}

// PulseEvent is emitted when the pulse fires.
type PulseEvent struct {
	Center   core.Vec
	Disabled int
}

// GameOverEvent is emitted once per run.
type GameOverEvent struct {
	Score        int
	HighScore    int
	NewHighScore bool
	Cause        string
}

func (ScoreEvent) neonEvent()            {}
func (LevelUpEvent) neonEvent()          {}
func (PowerUpCollectedEvent) neonEvent() {}
func (PowerUpExpiredEvent) neonEvent()   {}
func (PulseEvent) neonEvent()            {}
func (GameOverEvent) neonEvent()         {}

// Notifier receives engine events. Implementations must not call back
// into the engine.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}
