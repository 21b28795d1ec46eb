package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagRoundsCSV   bool
	flagRoundsPlain bool
	flagRoundsLimit int
	flagRoundsClear bool
)

var roundsCmd = &cobra.Command{
	Use:   "rounds [game]",
	Short: "Show the round log",
	Long: `Display finished rounds: outcome, ticks played, blocks cleared and
the seed each grid was generated from. Replay a round with --seed.

On a terminal the log opens in an interactive table. Use --plain for
text output or --csv to export every round.

Examples:
  arkanoid rounds
  arkanoid rounds --plain --limit 5
  arkanoid rounds --csv > rounds.csv
  arkanoid rounds --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRounds,
}

func init() {
	roundsCmd.Flags().BoolVar(&flagRoundsCSV, "csv", false, "Write every round as CSV to stdout")
	roundsCmd.Flags().BoolVar(&flagRoundsPlain, "plain", false, "Print as plain text instead of the interactive table")
	roundsCmd.Flags().IntVar(&flagRoundsLimit, "limit", 20, "Number of recent rounds to print")
	roundsCmd.Flags().BoolVar(&flagRoundsClear, "clear", false, "Delete every logged round of the game")
}

func runRounds(_ *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagRoundsClear:
		err = store.ClearRounds(gameID)
		if err == nil {
			fmt.Printf("Round log of %s cleared.\n", gameID)
		}
	case flagRoundsCSV:
		err = exportRounds(store, gameID)
	case flagRoundsPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printRounds(store, gameID)
	default:
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width, height = w, h
		}
		_, err = tui.RunRounds(store, width, height)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// exportRounds writes every round of gameID as CSV.
func exportRounds(store *storage.Store, gameID string) error {
	rounds, err := store.AllRounds(gameID)
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, rounds)
}

// printRounds prints recent rounds and the aggregate as text.
func printRounds(store *storage.Store, gameID string) error {
	rounds, err := store.RecentRounds(gameID, flagRoundsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Round log - %s\n", gameID)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to log the first round!")
		return nil
	}

	// Print header
	fmt.Printf("  %-6s  %-7s  %-8s  %-7s  %-20s  %-10s  %s\n", "#", "Outcome", "Ticks", "Cleared", "Seed", "Player", "Date")
	fmt.Printf("  %-6s  %-7s  %-8s  %-7s  %-20s  %-10s  %s\n", "-", "-------", "-----", "-------", "----", "------", "----")

	for _, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-7s  %-8d  %-7d  %-20d  %-10s  %s\n",
			r.ID, r.Outcome, r.Ticks, r.Cleared, r.Seed, r.Player, dateStr)
	}

	stats, err := store.Summary(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Lost: %d", stats.Rounds, stats.Won, stats.Lost)
	if stats.FastestWin > 0 {
		fmt.Printf("  Fastest win: %d ticks", stats.FastestWin)
	}
	fmt.Println()
	return nil
}
