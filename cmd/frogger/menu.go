package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start Frogger in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a difficulty.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Tab          - Scoreboard
  Q            - Quit

Examples:
  frogger menu
  frogger menu --fps 30
  frogger menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the score ledger (default $USER)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	player := playerName(flagPlayer)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		gameCfg := base
		config.ApplyPreset(&gameCfg, menuResult.Preset)

		game, err := registry.Create("frogger", gameCfg)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		logger.Info("game started", "preset", menuResult.Preset, "player", player)
		if err := tui.Run(game, store, cfg, tui.GameOptions{Player: player, Logger: logger}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}
