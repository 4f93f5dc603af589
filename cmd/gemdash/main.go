// gemdash is a terminal arcade collector game: guide your character
// through gem-filled arenas, dodge hazards, and race the clock.
//
// Usage:
//
//	gemdash list              - List available game modes
//	gemdash play <mode>       - Play a mode (maze or survival)
//	gemdash menu              - Start menu to pick a mode interactively
//	gemdash serve             - Start SSH server for remote play
//	gemdash scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.gemdash/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/gemdash/gemdash/internal/games/collector"
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
	Use:   "gemdash",
	Short: "Gem Dash - Collect gems, dodge hazards, beat the clock",
	Long: `Gem Dash is a terminal arcade game with two modes:

  maze      - Hand-built levels: collect every gem, then reach the exit
  survival  - Randomized arenas: clear all gems before time runs out

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  gemdash list
  gemdash play maze
  gemdash play survival --difficulty hard
  gemdash menu
  gemdash serve --ssh :2222
  gemdash scores survival`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemdash/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
