package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pulse/internal/config"
	"github.com/vovakirdan/neon-pulse/internal/games/neonpulse"
)

var flagConfigClassic bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use after the config file,
the difficulty preset and sanitization are applied. The output is a
valid config file.

Examples:
  neonpulse config > ~/.neonpulse/configs/neonpulse.yaml
  neonpulse config --difficulty hard --classic`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		mode := neonpulse.ModeNeon
		if flagConfigClassic {
			mode = neonpulse.ModeClassic
		}
		data, err := config.Marshal(neonpulse.LoadConfig(mode))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigClassic, "classic", false, "Show the classic mode configuration")
}
