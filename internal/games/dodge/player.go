package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Player is the controllable square. Position is in world pixels.
type Player struct {
	Rect  core.RectF
	Speed float64 // pixels per second
}

// newPlayer spawns the player centered horizontally, a fixed offset above
// the bottom edge.
func newPlayer(cfg config.PlayerConfig, world config.WorldConfig) Player {
	return Player{
		Rect: core.NewRectF(
			world.Width/2-cfg.Width/2,
			world.Height-cfg.BottomOffset,
			cfg.Width,
			cfg.Height,
		),
		Speed: cfg.Speed,
	}
}

// Move displaces the player along dir for dt seconds, then clamps the
// bounding box to stay fully inside the world. dir is normalized so
// diagonal movement is not faster than straight movement. Non-positive dt
// produces zero displacement.
func (p *Player) Move(dir core.Vec2, dt float64, world config.WorldConfig) {
	if dt > 0 {
		dir = dir.Normalized()
		p.Rect.X += dir.X * p.Speed * dt
		p.Rect.Y += dir.Y * p.Speed * dt
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, world.Width-p.Rect.W)
	p.Rect.Y = core.ClampF(p.Rect.Y, 0, world.Height-p.Rect.H)
}
