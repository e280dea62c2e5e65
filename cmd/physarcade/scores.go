package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/phys-arcade/internal/registry"
	"github.com/vovakirdan/phys-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  physarcade scores boxdrop`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var (
	scoresTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	scoresBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoresHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("252"))

	scoresBestStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	scoresEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)
)

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'physarcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Center output when terminal width is known
	width := 0
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	printCentered(scoresTitleStyle.Render("HIGH SCORES - "+title), width)
	fmt.Println()

	if len(scores) == 0 {
		printCentered(scoresEmptyStyle.Render("No scores recorded yet."), width)
		fmt.Println()
		printCentered(fmt.Sprintf("Play 'physarcade play %s' to set the first high score!", gameID), width)
		return
	}

	var b strings.Builder
	b.WriteString(scoresHeaderStyle.Render(fmt.Sprintf("%-6s %-10s %s", "Rank", "Score", "Date")))
	b.WriteString("\n")
	for i, entry := range scores {
		b.WriteString(fmt.Sprintf("#%-5d %-10d %s", i+1, entry.Score, entry.CreatedAt.Format("Jan 02 15:04")))
		if i < len(scores)-1 {
			b.WriteString("\n")
		}
	}

	printCentered(scoresBoxStyle.Render(b.String()), width)

	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Println()
		printCentered(scoresBestStyle.Render(fmt.Sprintf("Best: %d", highScore)), width)
	}
}

// printCentered prints a possibly multi-line block centered in the given
// terminal width. Width 0 prints flush left.
func printCentered(block string, width int) {
	if width <= 0 {
		fmt.Println(block)
		return
	}

	blockWidth := lipgloss.Width(block)
	pad := (width - blockWidth) / 2
	if pad < 0 {
		pad = 0
	}

	prefix := strings.Repeat(" ", pad)
	for _, line := range strings.Split(block, "\n") {
		fmt.Println(prefix + line)
	}
}
