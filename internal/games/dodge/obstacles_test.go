package dodge

import (
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/weather"
)

func newTestField(seed int64) *Field {
	cfg := config.DefaultDodgeConfig()
	return NewField(seed, cfg.Obstacles, cfg.World)
}

func TestRespawnRangesPerKind(t *testing.T) {
	cfg := config.DefaultDodgeConfig()

	tests := []struct {
		name string
		kind weather.Kind
		r    config.KindRange
	}{
		{"clear", weather.Clear, cfg.Obstacles.Clear},
		{"overcast", weather.Overcast, cfg.Obstacles.Overcast},
		{"precipitation", weather.Precipitation, cfg.Obstacles.Precipitation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(7)
			f.Respawn(tc.kind)

			if len(f.Obstacles()) != cfg.Obstacles.Count {
				t.Fatalf("obstacle count = %d, expected %d", len(f.Obstacles()), cfg.Obstacles.Count)
			}

			for i, o := range f.Obstacles() {
				if o.Kind != tc.kind {
					t.Errorf("slot %d kind = %v, expected %v", i, o.Kind, tc.kind)
				}
				if o.Rect.W < float64(tc.r.MinWidth) || o.Rect.W > float64(tc.r.MaxWidth) {
					t.Errorf("slot %d width = %f outside [%d, %d]", i, o.Rect.W, tc.r.MinWidth, tc.r.MaxWidth)
				}
				if tc.r.Square() {
					if o.Rect.H != o.Rect.W {
						t.Errorf("slot %d not square: %fx%f", i, o.Rect.W, o.Rect.H)
					}
				} else if o.Rect.H < float64(tc.r.MinHeight) || o.Rect.H > float64(tc.r.MaxHeight) {
					t.Errorf("slot %d height = %f outside [%d, %d]", i, o.Rect.H, tc.r.MinHeight, tc.r.MaxHeight)
				}
				if o.SpeedY < float64(tc.r.MinSpeed) || o.SpeedY > float64(tc.r.MaxSpeed) {
					t.Errorf("slot %d speed = %f outside [%d, %d]", i, o.SpeedY, tc.r.MinSpeed, tc.r.MaxSpeed)
				}
				if o.Rect.X < 0 || o.Rect.X > cfg.World.Width-o.Rect.W {
					t.Errorf("slot %d x = %f outside [0, %f]", i, o.Rect.X, cfg.World.Width-o.Rect.W)
				}
				if o.Rect.Y < -cfg.World.Height || o.Rect.Y > -20 {
					t.Errorf("slot %d y = %f outside [%f, -20]", i, o.Rect.Y, -cfg.World.Height)
				}
			}
		})
	}
}

func TestAdvanceMovesBySpeed(t *testing.T) {
	f := newTestField(3)
	f.Respawn(weather.Overcast)

	before := make([]float64, len(f.Obstacles()))
	for i, o := range f.Obstacles() {
		before[i] = o.Rect.Y
	}

	const dt = 0.25
	f.Advance(dt)

	for i, o := range f.Obstacles() {
		want := before[i] + o.SpeedY*dt
		if o.Rect.Y != want {
			t.Errorf("slot %d y = %f, expected %f", i, o.Rect.Y, want)
		}
	}
}

func TestAdvanceNonPositiveDtIsNoOp(t *testing.T) {
	f := newTestField(3)
	f.Respawn(weather.Clear)

	snapshot := make([]Obstacle, len(f.slots))
	copy(snapshot, f.slots)

	f.Advance(0)
	f.Advance(-1)

	for i := range f.slots {
		if f.slots[i] != snapshot[i] {
			t.Errorf("slot %d changed on non-positive dt: %+v -> %+v", i, snapshot[i], f.slots[i])
		}
	}
}

func TestRecyclePreservesKindAndSlotCount(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	f := newTestField(11)
	f.Respawn(weather.Precipitation)

	// Push one slot past the bottom margin and give the rest no movement.
	for i := range f.slots {
		f.slots[i].SpeedY = 0
	}
	f.slots[0].Rect.Y = cfg.World.Height + cfg.Obstacles.RecycleMargin + 5
	f.slots[0].SpeedY = 100

	f.Advance(0.01)

	if len(f.slots) != cfg.Obstacles.Count {
		t.Fatalf("slot count changed on recycle: %d", len(f.slots))
	}

	o := f.slots[0]
	r := cfg.Obstacles.Precipitation
	if o.Kind != weather.Precipitation {
		t.Errorf("recycle changed kind to %v", o.Kind)
	}
	if o.Rect.Y < cfg.Obstacles.RespawnMinY || o.Rect.Y > -20 {
		t.Errorf("recycled y = %f outside [%f, -20]", o.Rect.Y, cfg.Obstacles.RespawnMinY)
	}
	if o.Rect.X < 0 || o.Rect.X > cfg.World.Width-o.Rect.W {
		t.Errorf("recycled x = %f outside [0, %f]", o.Rect.X, cfg.World.Width-o.Rect.W)
	}
	if o.SpeedY < float64(r.MinSpeed) || o.SpeedY > float64(r.MaxSpeed) {
		t.Errorf("recycled speed = %f outside [%d, %d]", o.SpeedY, r.MinSpeed, r.MaxSpeed)
	}
}

func TestRecycleIgnoresCurrentWeather(t *testing.T) {
	t.Cleanup(func() { weather.Set(weather.Clear) })

	weather.Set(weather.Overcast)
	f := newTestField(5)
	f.Respawn(weather.Overcast)

	// Weather flips mid-flight; recycled slots must keep their spawn kind.
	weather.Set(weather.Precipitation)

	f.slots[0].Rect.Y = f.world.Height + f.cfg.RecycleMargin + 1
	f.Advance(0.001)

	if f.slots[0].Kind != weather.Overcast {
		t.Errorf("recycle resampled kind: got %v, expected Overcast", f.slots[0].Kind)
	}
}

func TestCheckCollisionEdgeTouching(t *testing.T) {
	f := newTestField(1)
	f.Respawn(weather.Clear)

	player := newPlayer(config.DefaultDodgeConfig().Player, testWorld()).Rect

	// Park every slot far away, then position slot 0 relative to the player.
	for i := range f.slots {
		f.slots[i].Rect.Y = -5000
		f.slots[i].SpeedY = 0
	}

	// Bottom edge exactly touching the player's top: not a collision.
	f.slots[0].Rect = core.NewRectF(player.X, player.Y-20, 20, 20)
	if f.CheckCollision(player) {
		t.Error("edge-touching rectangles should not collide")
	}

	// Overlapping by a fraction of a pixel: collision.
	f.slots[0].Rect.Y += 0.25
	if !f.CheckCollision(player) {
		t.Error("overlapping rectangles should collide")
	}
}
