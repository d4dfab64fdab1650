package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
)

var (
	flagRecord string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Frogger.

Controls:
  Arrows/WASD  - Hop
  P/Space      - Pause
  R            - Restart the run
  Ctrl+S       - Screenshot
  Esc/Q        - Quit

Difficulty options:
  easy   - Slow traffic, gentle speed-up per round
  normal - Default speeds
  hard   - Fast lanes from the first round

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --record run.yaml
  frogger play --config ./my-frogger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the played events to this replay script")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name for the score ledger (default $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logging to the terminal would corrupt the alt screen
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	game := frogger.New(gameCfg)
	if flagRecord != "" {
		game.Record(true)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runErr := tui.Run(game, store, runtimeConfig(), tui.GameOptions{
		Player: playerName(flagPlayer),
		Logger: logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	if flagRecord == "" {
		return nil
	}
	data, err := frogger.RecordScript("recorded game", game.Journal())
	if err != nil {
		return err
	}
	if err := os.WriteFile(flagRecord, data, 0o644); err != nil {
		return fmt.Errorf("cannot write replay script: %w", err)
	}
	logger.Info("replay script written", "path", flagRecord, "events", len(game.Journal()))
	return nil
}
