package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkarpov/arcadium/internal/registry"
	"github.com/dkarpov/arcadium/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game-id>",
	Short: "Show high scores for a game",
	Long: `Show the top high scores recorded for a game.

Examples:
  arcade scores bricks
  arcade scores drift --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n\n", gameID)
		fmt.Fprintln(os.Stderr, "Use 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High scores: %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet. Go play!")
		return
	}

	for i, entry := range scores {
		fmt.Printf("%2d. %6d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	high, err := store.HighScore(gameID)
	if err == nil && high > 0 {
		fmt.Printf("\nBest: %d\n", high)
	}
}
