// neonpulse is a flappy-style terminal game with a hazard-disabling pulse
// and timed power-ups.
//
// Usage:
//
//	neonpulse list              - List available modes
//	neonpulse play [mode]       - Play a mode (default: neonpulse)
//	neonpulse menu              - Pick a mode interactively
//	neonpulse serve             - Start SSH server for remote play
//	neonpulse scores [mode]     - Show high scores and recent runs
//	neonpulse sim               - Run a headless autopilot simulation
//	neonpulse config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.neonpulse/scores.db)
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--verbose             - Write debug logs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/core"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpulse",
	Short: "Neon Pulse - thread the hazards, pulse your way through",
	Long: `Neon Pulse is a flappy-style game for the terminal. Flap through
barriers, laser fields and moving platforms, fire a pulse to disable
hazards around you, and grab power-ups for shields, double score and
slow motion.

Examples:
  neonpulse play
  neonpulse play neonpulse_classic --difficulty hard
  neonpulse menu
  neonpulse sim --seed 42 --runs 10
  neonpulse serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		neonpulse.SetConfigPath(flagConfig)
		neonpulse.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.neonpulse/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger returns a logger writing to w, or a discarding one unless --verbose.
func newLogger(w io.Writer, prefix string) *log.Logger {
	if !flagVerbose {
		return log.New(io.Discard)
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	l.SetLevel(log.DebugLevel)
	return l
}

// fileLogger logs to ~/.neonpulse/neonpulse.log so the TUI stays clean.
// The returned closer is never nil.
func fileLogger() (*log.Logger, func()) {
	nop := func() {}
	if !flagVerbose {
		return log.New(io.Discard), nop
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(os.Stderr, "neonpulse"), nop
	}
	dir := filepath.Join(home, ".neonpulse")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(os.Stderr, "neonpulse"), nop
	}
	f, err := os.OpenFile(filepath.Join(dir, "neonpulse.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(os.Stderr, "neonpulse"), nop
	}
	return newLogger(f, "neonpulse"), func() { f.Close() }
}

// resolveMode returns args[0] or the default mode, checking it is registered.
func resolveMode(args []string) (string, error) {
	id := neonpulse.ModeNeon.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registryExists(id) {
		return "", fmt.Errorf("unknown mode %q, run 'neonpulse list' to see available modes", id)
	}
	return id, nil
}
