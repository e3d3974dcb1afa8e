package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
	"github.com/vovakirdan/neon-pulse/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 11}
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg{Time: time.Now(), Loop: m.loop})
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelReservesFooterRows(t *testing.T) {
	m := NewModel(neonpulse.New(neonpulse.ModeNeon), nil, testConfig())

	if m.screen.Height() != 26-footerRows {
		t.Errorf("playfield height %d, expected %d", m.screen.Height(), 26-footerRows)
	}
	view := m.View()
	if got := strings.Count(view, "\n") + 1; got != 26 {
		t.Errorf("view has %d rows, expected 26", got)
	}
}

func TestModelStartsAndPauses(t *testing.T) {
	m := NewModel(neonpulse.New(neonpulse.ModeNeon), nil, testConfig())
	if m.State().Status != "menu" {
		t.Fatalf("initial status %q", m.State().Status)
	}

	m = tick(press(m, tea.KeyMsg{Type: tea.KeyEnter}))
	if m.State().Status != "playing" {
		t.Fatalf("status after enter %q", m.State().Status)
	}

	// Back while playing pauses instead of leaving
	m = tick(press(m, runeKey('b')))
	if m.WentBack() || m.State().Status != "paused" {
		t.Errorf("back while playing: wentBack=%v status=%q", m.WentBack(), m.State().Status)
	}

	m = press(m, runeKey('b'))
	if !m.WentBack() {
		t.Error("back while paused should leave the game")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel(neonpulse.New(neonpulse.ModeNeon), nil, testConfig())
	m = tick(press(m, tea.KeyMsg{Type: tea.KeyEnter}))
	before := m.game.(*neonpulse.Game).Engine().Tick()

	next, cmd := m.Update(TickMsg{Time: time.Now(), Loop: m.loop + 1000})
	m = next.(Model)
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if got := m.game.(*neonpulse.Game).Engine().Tick(); got != before {
		t.Errorf("stale tick advanced the engine: %d -> %d", before, got)
	}
}

func TestModelPersistsRunOnce(t *testing.T) {
	store := testStore(t)
	game := neonpulse.New(neonpulse.ModeNeon)
	m := NewModel(game, store, testConfig(), WithSessionID("session-1"))

	m.gameState = core.GameState{GameOver: true, Score: 4}
	m.persistRun()
	m.persistRun()

	runs, err := store.RecentRuns(game.ID(), 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 stored run, got %d", len(runs))
	}
	if runs[0].SessionID != "session-1" || runs[0].RunID != m.LastRunID() {
		t.Errorf("stored run %+v, last id %q", runs[0], m.LastRunID())
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store := testStore(t)
	game := neonpulse.New(neonpulse.ModeNeon)
	m := NewModel(game, store, testConfig())

	m.gameState = core.GameState{GameOver: true, Score: 0}
	m.persistRun()

	runs, err := store.RecentRuns(game.ID(), 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("zero-score run should not be stored, got %d", len(runs))
	}
}

func TestModelSeedsHighScore(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveScore(neonpulse.ModeNeon.ID, 42); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	m := NewModel(neonpulse.New(neonpulse.ModeNeon), store, testConfig())
	if got := m.State().HighScore; got != 42 {
		t.Errorf("high score %d, expected 42 from the store", got)
	}
}
