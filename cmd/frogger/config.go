package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate game configs",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective game config as YAML",
	Long: `Print the config the game would run with, after the search order
(--config, ~/.frogger/configs/frogger.yaml, ./configs/frogger.yaml,
built-in default) and --difficulty are applied.

Examples:
  frogger config dump > ~/.frogger/configs/frogger.yaml
  frogger config dump --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a game config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read config: %w", err)
		}
		cfg, err := config.Parse(data)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d lanes, %d landing zones)\n", args[0], len(cfg.Lanes), len(cfg.LandingZones.Xs))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}
