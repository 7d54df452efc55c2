package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
// Kept in sync with defaults/dodge.yaml as the fallback of last resort.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		World: WorldConfig{
			Width:  800,
			Height: 450,
		},
		Player: PlayerConfig{
			Width:        36,
			Height:       36,
			Speed:        260,
			BottomOffset: 70,
		},
		Obstacles: ObstaclesConfig{
			Count:         10,
			RecycleMargin: 10,
			RespawnMinY:   -200,
			Clear: KindRange{
				MinWidth: 18, MaxWidth: 30,
				MinSpeed: 160, MaxSpeed: 260,
			},
			Overcast: KindRange{
				MinWidth: 40, MaxWidth: 72,
				MinHeight: 24, MaxHeight: 40,
				MinSpeed: 120, MaxSpeed: 180,
			},
			Precipitation: KindRange{
				MinWidth: 3, MaxWidth: 6,
				MinHeight: 14, MaxHeight: 24,
				MinSpeed: 220, MaxSpeed: 360,
			},
		},
	}
}
