package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the mouse.

Images listed under "images" in the config are drawn over the ball,
paddle and blocks; missing files are replaced by generated ones.

Controls:
  Mouse        - Move the paddle
  Click/Enter  - Dismiss the end-of-round message
  P            - Pause
  R            - Restart the round
  Esc/Q        - Quit

Examples:
  arkanoid window
  arkanoid window --seed 42 --pace 8ms`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, src := loadGameConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid-window",
	})
	logger.Info("config loaded", "source", src)

	store := openStore()

	runErr := gui.Run(gameCfg, gui.Options{
		Seed:   seed(),
		Pace:   pace(gameCfg),
		Store:  store,
		Logger: logger,
		Player: "local",
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
