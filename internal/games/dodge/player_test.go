package dodge

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

func testWorld() config.WorldConfig {
	return config.DefaultDodgeConfig().World
}

func TestNewPlayerSpawnPosition(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	p := newPlayer(cfg.Player, cfg.World)

	wantX := cfg.World.Width/2 - cfg.Player.Width/2
	wantY := cfg.World.Height - cfg.Player.BottomOffset

	if p.Rect.X != wantX || p.Rect.Y != wantY {
		t.Errorf("spawn position = (%f, %f), expected (%f, %f)", p.Rect.X, p.Rect.Y, wantX, wantY)
	}
	if p.Speed != cfg.Player.Speed {
		t.Errorf("speed = %f, expected %f", p.Speed, cfg.Player.Speed)
	}
}

func TestMoveZeroInputKeepsPosition(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	p := newPlayer(cfg.Player, cfg.World)
	start := p.Rect

	for i := 0; i < 100; i++ {
		p.Move(core.Vec2{}, 1.0/60.0, cfg.World)
	}

	if p.Rect != start {
		t.Errorf("player moved without input: %+v -> %+v", start, p.Rect)
	}
}

func TestMoveDiagonalIsNormalized(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vec2
	}{
		{"right", core.Vec2{X: 1}},
		{"up", core.Vec2{Y: -1}},
		{"right+down", core.Vec2{X: 1, Y: 1}},
		{"left+up", core.Vec2{X: -1, Y: -1}},
	}

	cfg := config.DefaultDodgeConfig()
	const dt = 0.1

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(cfg.Player, cfg.World)
			start := p.Rect
			p.Move(tc.dir, dt, cfg.World)

			dx := p.Rect.X - start.X
			dy := p.Rect.Y - start.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			want := p.Speed * dt

			// Diagonal movement must cover speed*dt, not speed*dt*sqrt(2).
			if math.Abs(dist-want) > 1e-9 {
				t.Errorf("displacement = %f, expected %f", dist, want)
			}
		})
	}
}

func TestMoveNonPositiveDtIsNoOp(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	p := newPlayer(cfg.Player, cfg.World)
	start := p.Rect

	p.Move(core.Vec2{X: 1, Y: 1}, 0, cfg.World)
	if p.Rect != start {
		t.Errorf("dt=0 moved the player: %+v -> %+v", start, p.Rect)
	}

	p.Move(core.Vec2{X: 1, Y: 1}, -0.5, cfg.World)
	if p.Rect != start {
		t.Errorf("negative dt moved the player: %+v -> %+v", start, p.Rect)
	}
}

func TestMoveClampsToWorld(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vec2
	}{
		{"left wall", core.Vec2{X: -1}},
		{"right wall", core.Vec2{X: 1}},
		{"top wall", core.Vec2{Y: -1}},
		{"bottom wall", core.Vec2{Y: 1}},
		{"corner", core.Vec2{X: 1, Y: 1}},
	}

	cfg := config.DefaultDodgeConfig()
	world := cfg.World

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer(cfg.Player, world)

			// Push hard against the wall for several seconds.
			for i := 0; i < 600; i++ {
				p.Move(tc.dir, 1.0/60.0, world)

				if p.Rect.X < 0 || p.Rect.X > world.Width-p.Rect.W {
					t.Fatalf("x out of bounds: %f", p.Rect.X)
				}
				if p.Rect.Y < 0 || p.Rect.Y > world.Height-p.Rect.H {
					t.Fatalf("y out of bounds: %f", p.Rect.Y)
				}
			}
		})
	}
}
