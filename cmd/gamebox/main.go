// gamebox is a TUI platform for playing turn-based games in the terminal.
//
// Usage:
//
//	gamebox list              - List available games
//	gamebox play <game>       - Play a game
//	gamebox menu              - Start menu to pick games interactively
//	gamebox serve             - Start SSH server for remote play
//	gamebox scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gamebox/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gamebox/internal/games/g2048"
	_ "github.com/vovakirdan/gamebox/internal/games/rps"
	_ "github.com/vovakirdan/gamebox/internal/games/tictactoe"
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
	Use:   "gamebox",
	Short: "Gamebox - Play turn-based games in your terminal",
	Long: `Gamebox is a terminal-based gaming platform with classic turn-based
games: 2048, Tic-Tac-Toe against an unbeatable computer opponent, and
Rock-Paper-Scissors.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gamebox list
  gamebox play 2048
  gamebox menu
  gamebox serve --ssh :2222
  gamebox scores 2048`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gamebox/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
