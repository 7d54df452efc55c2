package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/weather"
)

// Obstacle is one falling block. Kind mirrors the weather signal at the
// moment the slot was last respawned; it is never updated mid-flight.
type Obstacle struct {
	Rect   core.RectF
	SpeedY float64 // pixels per second, positive = downward
	Kind   weather.Kind
}

// Field is the fixed arena of obstacle slots for a run. Slots are recycled
// in place when they leave the visible area; the slice length never changes
// after construction.
type Field struct {
	slots []Obstacle
	rng   *rand.Rand
	cfg   config.ObstaclesConfig
	world config.WorldConfig
}

// NewField creates an obstacle field with the given RNG seed.
// Respawn must be called before the first frame.
func NewField(seed int64, cfg config.ObstaclesConfig, world config.WorldConfig) *Field {
	return &Field{
		slots: make([]Obstacle, cfg.Count),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		world: world,
	}
}

// Respawn refreshes every slot for a new run. All slots share the given
// kind; the weather signal is sampled once per reset, not per obstacle.
// Vertical positions are staggered across a full screen height above the
// visible area.
func (f *Field) Respawn(kind weather.Kind) {
	for i := range f.slots {
		f.spawn(i, kind, -f.world.Height)
	}
}

// Advance moves every obstacle down by its speed for dt seconds and
// recycles the ones that fell past the bottom margin. Recycled slots keep
// their kind and redraw position and speed from that kind's ranges.
func (f *Field) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range f.slots {
		f.slots[i].Rect.Y += f.slots[i].SpeedY * dt
		if f.slots[i].Rect.Y > f.world.Height+f.cfg.RecycleMargin {
			f.recycle(i)
		}
	}
}

// CheckCollision reports whether any obstacle overlaps the given box.
// Iteration order does not matter; overlap is not ordering-dependent.
func (f *Field) CheckCollision(box core.RectF) bool {
	for i := range f.slots {
		if box.Intersects(f.slots[i].Rect) {
			return true
		}
	}
	return false
}

// Obstacles returns the live slots for rendering. Callers must not mutate.
func (f *Field) Obstacles() []Obstacle {
	return f.slots
}

// spawn fills slot i with fresh geometry and speed for the given kind.
// minY is the top of the vertical band the obstacle may appear in.
func (f *Field) spawn(i int, kind weather.Kind, minY float64) {
	r := f.rangeFor(kind)

	w := float64(f.randRange(r.MinWidth, r.MaxWidth))
	h := w
	if !r.Square() {
		h = float64(f.randRange(r.MinHeight, r.MaxHeight))
	}

	x := float64(f.randRange(0, int(f.world.Width-w)))
	y := float64(f.randRange(int(minY), -20))

	f.slots[i] = Obstacle{
		Rect:   core.NewRectF(x, y, w, h),
		SpeedY: float64(f.randRange(r.MinSpeed, r.MaxSpeed)),
		Kind:   kind,
	}
}

// recycle relocates slot i above the screen with a new x and a new speed
// from its existing kind's range. The kind itself is only resampled on a
// full Respawn.
func (f *Field) recycle(i int) {
	o := &f.slots[i]
	r := f.rangeFor(o.Kind)

	o.Rect.Y = float64(f.randRange(int(f.cfg.RespawnMinY), -20))
	o.Rect.X = float64(f.randRange(0, int(f.world.Width-o.Rect.W)))
	o.SpeedY = float64(f.randRange(r.MinSpeed, r.MaxSpeed))
}

// rangeFor returns the generation ranges for a kind.
func (f *Field) rangeFor(kind weather.Kind) config.KindRange {
	switch kind {
	case weather.Overcast:
		return f.cfg.Overcast
	case weather.Precipitation:
		return f.cfg.Precipitation
	default:
		return f.cfg.Clear
	}
}

// randRange returns a uniform integer in [min, max], inclusive.
func (f *Field) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + f.rng.Intn(max-min+1)
}
