package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/weather"
)

var (
	flagConfig  string
	flagWeather string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without arguments this launches dodge.

Controls:
  WASD/Arrows  - Move
  Space/Enter  - Start
  R            - Restart (after game over)
  Esc          - Back to menu (after game over)
  1/2/3        - Force weather: clear, overcast, precipitation
  Q/Ctrl+C     - Quit

Weather presets:
  clear          - Small fast squares
  overcast       - Wide slow cloud banks
  precipitation  - Thin quick raindrops

Examples:
  dodge play
  dodge play --weather precipitation
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagWeather, "weather", "", "Starting weather: clear, overcast, precipitation")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "dodge"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		log.Error("unknown game", "id", gameID)
		log.Info("run 'dodge list' to see available games")
		os.Exit(1)
	}

	// Apply the starting weather before the game samples it
	if flagWeather != "" {
		kind, ok := weather.Parse(flagWeather)
		if !ok {
			log.Error("unknown weather preset", "weather", flagWeather)
			os.Exit(1)
		}
		weather.Set(kind)
	}

	// Get terminal size for the runtime config
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

	// Set config path before creation so Reset picks it up
	if gameID == "dodge" {
		dodge.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		log.Error("creating game", "err", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg); runErr != nil {
		log.Error("running game", "err", runErr)
		os.Exit(1)
	}
}
