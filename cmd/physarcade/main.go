// physarcade is a desktop arcade platform for small physics games.
//
// Usage:
//
//	physarcade list              - List available games
//	physarcade play <game>       - Play a game in a native window
//	physarcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set physics tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.physarcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/phys-arcade/internal/games/boxdrop"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "physarcade",
	Short: "Phys Arcade - Small physics games in a native window",
	Long: `Phys Arcade is a desktop gaming platform for small 2D physics games.

Available commands:
  list     - Show all available games
  play     - Play a specific game
  scores   - View high scores

Examples:
  physarcade list
  physarcade play boxdrop
  physarcade play boxdrop --seed 42
  physarcade scores boxdrop`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Physics tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.physarcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
