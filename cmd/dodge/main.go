// dodge is a terminal survival game: steer your block and avoid whatever
// the weather throws at you.
//
// Usage:
//
//	dodge play               - Start the game
//	dodge list               - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - Survive the falling weather in your terminal",
	Long: `Dodge is a terminal survival game. Obstacles rain down from the top
of the screen and their shape and speed depend on the current weather.

Available commands:
  list     - Show all available games
  play     - Start the game

Examples:
  dodge play
  dodge play --weather rain
  dodge play --seed 42 --fps 30`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
