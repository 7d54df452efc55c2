// Package dodge implements a weather-driven dodge game: the player steers a
// square away from falling obstacles whose shape and speed follow the
// process-wide weather signal.
package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/weather"
)

// scoreRate is how many points accrue per second of survival.
const scoreRate = 60.0

// Game implements the dodge game logic: a three-state machine (menu,
// playing, game over) around a per-frame simulation step.
type Game struct {
	mode    core.Mode
	player  Player
	field   *Field
	score   float64 // current run score; frozen during game over
	best    int     // process-lifetime best, survives resets and menu trips
	cfg     config.DodgeConfig
	runtime core.RuntimeConfig
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new dodge game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Weather"
}

// Reset initializes the game. The game starts at the menu; a run begins on
// the start action. Best score is deliberately not cleared here so it
// survives returning to the menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	g.cfg = cfg

	if g.field == nil || len(g.field.slots) != cfg.Obstacles.Count {
		g.field = NewField(rt.Seed, cfg.Obstacles, cfg.World)
	} else {
		g.field.cfg = cfg.Obstacles
		g.field.world = cfg.World
	}

	g.mode = core.ModeMenu
	g.resetRun()
}

// resetRun prepares a fresh run: player centered above the bottom, every
// obstacle slot respawned with the weather kind sampled right now, score
// zeroed.
func (g *Game) resetRun() {
	g.player = newPlayer(g.cfg.Player, g.cfg.World)
	g.field.Respawn(weather.Current())
	g.score = 0
}

// Step advances the game by one frame. dt is real elapsed seconds since the
// previous frame; negative values are clamped to zero. Inputs that are not
// valid in the active mode are ignored.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if dt < 0 {
		dt = 0
	}

	switch g.mode {
	case core.ModeMenu:
		if in.Has(core.ActionStart) {
			g.resetRun()
			g.mode = core.ModePlaying
		}

	case core.ModePlaying:
		g.stepPlaying(in, dt)

	case core.ModeGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.resetRun()
			g.mode = core.ModePlaying
		case in.Has(core.ActionBack):
			// Back to menu without a reset; the frozen score stays around
			// until the next run starts.
			g.mode = core.ModeMenu
		}
	}

	return core.StepResult{State: g.State()}
}

// stepPlaying runs one simulation frame: movement, weather overrides,
// obstacle advance/recycle, collision, score accrual.
func (g *Game) stepPlaying(in core.InputFrame, dt float64) {
	var dir core.Vec2
	if in.Has(core.ActionRight) {
		dir.X++
	}
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionDown) {
		dir.Y++
	}
	if in.Has(core.ActionUp) {
		dir.Y--
	}
	g.player.Move(dir, dt, g.cfg.World)

	// Debug affordance: force the weather signal directly.
	switch {
	case in.Has(core.ActionWeatherClear):
		weather.Set(weather.Clear)
	case in.Has(core.ActionWeatherOvercast):
		weather.Set(weather.Overcast)
	case in.Has(core.ActionWeatherPrecipitation):
		weather.Set(weather.Precipitation)
	}

	g.field.Advance(dt)

	if g.field.CheckCollision(g.player.Rect) {
		g.mode = core.ModeGameOver
		if int(g.score) > g.best {
			g.best = int(g.score)
		}
		return // score freezes at the value it had on impact
	}

	g.score += scoreRate * dt
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:    g.mode,
		Score:   int(g.score),
		Best:    g.best,
		Weather: weather.Current().String(),
	}
}

// Register the game with the registry.
func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}
