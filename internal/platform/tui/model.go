package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/registry"
	"github.com/vovakirdan/neon-pulse/internal/storage"
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	footer     HUDFooter
	keys       *KeyMapper
	logger     *log.Logger
	sessionID  string
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	loop       uint64
	quitting   bool
	back       bool
	scoreSaved bool // Whether the current game over has been persisted
	lastRunID  string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSessionID tags stored runs with id instead of a fresh one.
func WithSessionID(id string) ModelOption {
	return func(m *Model) {
		if id != "" {
			m.sessionID = id
		}
	}
}

// NewModel creates a model for game. cfg.ScreenH is the whole terminal;
// the footer rows are taken from it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	width := cfg.ScreenW
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		footer:     NewHUDFooter(width),
		keys:       NewKeyMapper(),
		logger:     log.New(io.Discard),
		sessionID:  uuid.NewString(),
		inputFrame: core.NewInputFrame(),
		width:      width,
		loop:       nextLoop(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if seeder, ok := game.(registry.HighScoreSeeder); ok && store != nil {
		if hs, err := store.HighScore(game.ID()); err == nil {
			seeder.SeedHighScore(hs)
		} else {
			m.logger.Warn("high score lookup failed", "game", game.ID(), "err", err)
		}
	}
	game.Reset(m.config)
	m.gameState = game.State()
	return m
}

func playfieldHeight(termH int) int {
	return max(termH-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.persistRun()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && !m.gameState.GameOver && m.gameState.Status == "playing":
		// Back mid-run pauses first so a stray key never ends the run.
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionBack:
		m.persistRun()
		m.back = true
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize rebuilds the world only while no run is in progress.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playfieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.footer.SetWidth(msg.Width)

	if m.gameState.Status == "menu" {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver {
		m.persistRun()
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

// persistRun stores the finished run once. Runs that never scored are skipped.
func (m *Model) persistRun() {
	if m.scoreSaved || m.store == nil || !m.gameState.GameOver || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	if p, ok := m.game.(registry.RunStatsProvider); ok {
		id, err := m.store.SaveRun(m.game.ID(), m.sessionID, p.RunStats())
		if err != nil {
			m.logger.Error("save run failed", "game", m.game.ID(), "err", err)
			return
		}
		m.lastRunID = id
		m.logger.Info("run saved", "game", m.game.ID(), "run", id, "score", m.gameState.Score)
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Error("save score failed", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current playfield as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".neonpulse", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the playfield and, when the game provides one, the HUD footer.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if hp, ok := m.game.(registry.HUDProvider); ok {
		out += "\n" + m.footer.View(hp.HUD())
	}
	return out
}

// State returns the last observed game state.
func (m Model) State() core.GameState { return m.gameState }

// WentBack reports whether the user left the game for the menu.
func (m Model) WentBack() bool { return m.back }

// LastRunID returns the id of the most recently stored run, if any.
func (m Model) LastRunID() string { return m.lastRunID }

// Run starts the Bubble Tea program with the given model.
// Returns true when the user asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (bool, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.WentBack(), nil
	}
	return false, nil
}
