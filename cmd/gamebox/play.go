package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamebox/internal/core"
	"github.com/vovakirdan/gamebox/internal/games/g2048"
	"github.com/vovakirdan/gamebox/internal/games/rps"
	"github.com/vovakirdan/gamebox/internal/games/tictactoe"
	"github.com/vovakirdan/gamebox/internal/platform/tui"
	"github.com/vovakirdan/gamebox/internal/registry"
	"github.com/vovakirdan/gamebox/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move / slide / aim
  Enter/Space - Confirm
  U           - Undo (2048)
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  gamebox play 2048
  gamebox play tictactoe
  gamebox play rps
  gamebox play 2048 --config ./my-2048.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gamebox list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the side selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path for games before creation
	switch gameID {
	case "2048":
		g2048.SetConfigPath(flagConfig)

	case "rps":
		rps.SetConfigPath(flagConfig)

	case "tictactoe":
		tictactoe.SetConfigPath(flagConfig)

		// Show the X/O side selector
		selection, selErr := tui.RunSideSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		tictactoe.SetHumanMark(tictactoe.MarkFromString(selection.HumanMark))
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
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
