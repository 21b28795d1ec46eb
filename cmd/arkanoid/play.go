package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to arkanoid.

Controls:
  Mouse        - Move the paddle
  A/D, arrows  - Nudge the paddle
  Enter/Space  - Dismiss the end-of-round message
  P            - Pause
  R            - Restart the round
  Esc/B        - Leave (while paused)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  arkanoid play
  arkanoid play --seed 42
  arkanoid play --pace 10ms
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "arkanoid"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available games.")
		os.Exit(1)
	}

	gameCfg, src := loadGameConfig()
	cfg := runtimeConfig(gameCfg)

	logger, closeLog := newFileLogger()
	defer closeLog()
	logger.Info("starting game", "game", gameID, "config", src, "seed", cfg.Seed, "pace", cfg.Pace)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
