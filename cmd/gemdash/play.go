package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gemdash/gemdash/internal/core"
	"github.com/gemdash/gemdash/internal/games/collector"
	"github.com/gemdash/gemdash/internal/platform/tui"
	"github.com/gemdash/gemdash/internal/registry"
	"github.com/gemdash/gemdash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD  - Move
  Enter        - Start / next level
  P/Esc        - Pause
  R            - Restart (after the run ends)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More healing, gentler hazards, longer countdown
  normal - Default tuning
  hard   - Less healing, harsher hazards, shorter countdown

Examples:
  gemdash play maze
  gemdash play survival --difficulty hard
  gemdash play maze --levels ./my-levels.yaml
  gemdash play survival --config ./my-tuning.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to custom maze level pack YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemdash list' to see available modes.")
		os.Exit(1)
	}

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

	// Apply settings before the game is created
	collector.SetConfigPath(flagConfig)
	collector.SetDifficultyPreset(flagDifficulty)
	collector.SetLevelsPath(flagLevels)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
