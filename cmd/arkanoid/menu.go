package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode. This is also what running arkanoid
without a command does.

After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Round log
  Q            - Quit

Examples:
  arkanoid menu
  arkanoid menu --pace 8ms
  arkanoid menu --db ./rounds.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, src := loadGameConfig()

	logger, closeLog := newFileLogger()
	defer closeLog()
	logger.Info("menu started", "config", src)

	store := openStore()

	cfg := runtimeConfig(gameCfg)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the round log
		if menuResult.WantsRounds {
			goBack, rErr := tui.RunRounds(store, cfg.ScreenW, cfg.ScreenH)
			if rErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", rErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the round log
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Run the game
		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Only the first game replays --seed
		cfg.Seed = time.Now().UnixNano()
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
