// arkanoid is a single-screen breakout game for the terminal, a desktop
// window, or SSH.
//
// Usage:
//
//	arkanoid                 - Title menu (play or browse the round log)
//	arkanoid play            - Play in the terminal
//	arkanoid window          - Play in a desktop window
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid rounds          - Show the round log
//	arkanoid list            - List available games
//	arkanoid config          - Print the default configuration
//
// Global flags:
//
//	--seed <value>  - RNG seed of the first round (default: time based)
//	--pace <dur>    - Tick interval (default: from config)
//	--db <path>     - Round log path (default: ~/.arkanoid/rounds.db)
//	--config <path> - Custom config YAML
//	--log <path>    - Log file for terminal play (default: ~/.arkanoid/arkanoid.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagPace    time.Duration
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break every block without dropping the ball",
	Long: `Arkanoid is a single-screen breakout game. Steer the paddle with the
mouse to keep the ball in play; clear every block to win.

Running without a command opens the title menu.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  rounds   - View the round log
  list     - Show all available games
  config   - Print the default configuration

Examples:
  arkanoid
  arkanoid play --seed 42
  arkanoid window --pace 8ms
  arkanoid serve --ssh :2222
  arkanoid rounds --csv > rounds.csv`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed of the first round (0 = random based on time)")
	rootCmd.PersistentFlags().DurationVar(&flagPace, "pace", 0, "Tick interval, e.g. 5ms (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/rounds.db", "Path to round log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arkanoid/arkanoid.log", "Log file for terminal play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig applies --config and validates the result.
// An invalid configuration ends the program.
func loadGameConfig() (config.ArkanoidConfig, config.Source) {
	arkanoid.SetConfigPath(flagConfig)
	cfg, src, err := arkanoid.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	arkanoid.SetConfig(cfg)
	return cfg, src
}

// pace resolves --pace against the configured pace.
func pace(cfg config.ArkanoidConfig) time.Duration {
	if flagPace > 0 {
		return flagPace
	}
	return cfg.Pace()
}

// seed resolves --seed, choosing a time based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cfg config.ArkanoidConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Pace:    pace(cfg),
		Seed:    seed(),
	}
}

// openStore opens the round log. Failure is reported and play continues
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round log: %v\n", err)
		return nil
	}
	return store
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// newFileLogger returns a logger writing to --log. The terminal belongs to
// the UI while a game runs, so nothing is logged to it. The returned
// closer must be called when done.
func newFileLogger() (*log.Logger, func()) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
	}

	path := expandHome(flagLogPath)
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.NewWithOptions(io.Discard, opts), func() {}
	}

	//nolint:errcheck // Best-effort close on exit
	return log.NewWithOptions(f, opts), func() { f.Close() }
}
