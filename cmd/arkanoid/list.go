package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and how many rounds of it are logged.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Round counts are optional
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rounds")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, g := range games {
		rounds := "-"
		if store != nil {
			if stats, statErr := store.Summary(g.ID); statErr == nil {
				rounds = fmt.Sprintf("%d (%d won)", stats.Rounds, stats.Won)
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, rounds)
	}

	if store != nil {
		store.Close()
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play <id>' to play a game.")
}
