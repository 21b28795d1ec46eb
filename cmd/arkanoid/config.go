package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.arkanoid/configs/arkanoid.yaml or ./configs/arkanoid.yaml to override
settings, or pass it with --config.

With --check, the configuration that would be used is loaded, validated
and summarised instead.

Examples:
  arkanoid config > ~/.arkanoid/configs/arkanoid.yaml
  arkanoid config --check --config ./my-arkanoid.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Validate the active configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigCheck {
		if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, src := loadGameConfig()
	fmt.Printf("Config source: %s\n", src)
	fmt.Printf("Board:  %d x %d cells of %d units (arena %d)\n",
		cfg.Board.Size, cfg.Board.Size, cfg.Board.CellSize, cfg.ArenaSize())
	fmt.Printf("Ball:   %d units per tick\n", cfg.Ball.Speed)
	fmt.Printf("Pace:   %s\n", pace(cfg))
	fmt.Println("OK")
}
