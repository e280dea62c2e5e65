package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/phys-arcade/internal/core"
	"github.com/vovakirdan/phys-arcade/internal/games/boxdrop"
	"github.com/vovakirdan/phys-arcade/internal/platform/window"
	"github.com/vovakirdan/phys-arcade/internal/registry"
	"github.com/vovakirdan/phys-arcade/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagPPM    float64
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in a native window.

Controls:
  A/D, Left/Right - Push left/right
  Space/W/Up      - Jump (when grounded)
  E               - Particle burst
  R               - Reset player
  P/Esc           - Pause
  Q               - Quit

Examples:
  physarcade play boxdrop
  physarcade play boxdrop --seed 42
  physarcade play boxdrop --config ./my-boxdrop.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	playCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
	playCmd.Flags().Float64Var(&flagPPM, "ppm", 50, "Pixels per simulation meter")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'physarcade list' to see available games.")
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:       flagWidth,
		ScreenH:       flagHeight,
		PixelsPerUnit: flagPPM,
		TickRate:      flagFPS,
		Seed:          seed,
	}

	// Set config path for games before creation
	if gameID == "boxdrop" {
		boxdrop.SetConfigPath(flagConfig)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, scores will not be saved", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := window.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
