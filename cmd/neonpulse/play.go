package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
	"github.com/vovakirdan/neon-pulse/internal/platform/tui"
	"github.com/vovakirdan/neon-pulse/internal/registry"
	"github.com/vovakirdan/neon-pulse/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (neonpulse by default).

Controls:
  Space/Up/W  - Flap
  E/F         - Fire the pulse
  Enter       - Start
  P/Esc       - Pause
  R           - Restart
  B           - Back (pauses first while playing)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Examples:
  neonpulse play
  neonpulse play neonpulse_classic
  neonpulse play --difficulty easy
  neonpulse play --config ./my-neonpulse.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := resolveMode(args)
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	neonpulse.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
