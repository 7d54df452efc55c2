// Package config provides YAML-based game configuration loading for the
// dodge game.
package config

import "fmt"

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// WorldConfig defines the logical playfield, in pixels. The renderer scales
// it to whatever terminal it is given; the simulation never sees cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player geometry and movement speed.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // pixels per second
	BottomOffset float64 `yaml:"bottom_offset"` // spawn distance above the bottom edge
}

// ObstaclesConfig defines the obstacle field and the per-kind generation
// ranges. Kinds mirror the weather signal: clear, overcast, precipitation.
type ObstaclesConfig struct {
	Count         int       `yaml:"count"`
	RecycleMargin float64   `yaml:"recycle_margin"` // pixels below the bottom edge before recycling
	RespawnMinY   float64   `yaml:"respawn_min_y"`  // top of the recycle band (negative, above screen)
	Clear         KindRange `yaml:"clear"`
	Overcast      KindRange `yaml:"overcast"`
	Precipitation KindRange `yaml:"precipitation"`
}

// KindRange holds the uniform sampling ranges for one obstacle kind.
// All bounds are inclusive. Square kinds set min_height == 0 to reuse the
// sampled width for height.
type KindRange struct {
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
	MinSpeed  int `yaml:"min_speed"` // pixels per second
	MaxSpeed  int `yaml:"max_speed"`
}

// Square reports whether this kind reuses width for height.
func (k KindRange) Square() bool {
	return k.MinHeight == 0 && k.MaxHeight == 0
}

// Validate checks a loaded config for values the simulation cannot work with.
func (c DodgeConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive")
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive")
	}
	if c.Obstacles.Count <= 0 {
		return fmt.Errorf("config: obstacle count must be positive, got %d", c.Obstacles.Count)
	}
	for _, kr := range []struct {
		name string
		r    KindRange
	}{
		{"clear", c.Obstacles.Clear},
		{"overcast", c.Obstacles.Overcast},
		{"precipitation", c.Obstacles.Precipitation},
	} {
		if kr.r.MaxWidth < kr.r.MinWidth {
			return fmt.Errorf("config: %s width range is inverted", kr.name)
		}
		if kr.r.MaxHeight < kr.r.MinHeight {
			return fmt.Errorf("config: %s height range is inverted", kr.name)
		}
		if kr.r.MaxSpeed < kr.r.MinSpeed {
			return fmt.Errorf("config: %s speed range is inverted", kr.name)
		}
		if kr.r.MinWidth <= 0 {
			return fmt.Errorf("config: %s min width must be positive", kr.name)
		}
	}
	return nil
}
