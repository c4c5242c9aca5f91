package config

import (
	_ "embed"
)

//go:embed defaults/colony.yaml
var defaultColonyYAML []byte

// DefaultColonyConfig returns the default colony configuration.
func DefaultColonyConfig() ColonyConfig {
	return ColonyConfig{
		World: WorldConfig{
			Width:    640,
			Height:   480,
			NestX:    320,
			NestY:    240,
			NestSize: 100,
		},
		AntCount: 20,
		Spawn: SpawnConfig{
			LeafOneIn:    10,
			SpiderOneIn:  100,
			SpiderMargin: 50,
		},
		Ant: AntConfig{
			SightRange:     100,
			WanderOneIn:    20,
			ExploreSpeed:   120,
			ExploreJitter:  30,
			SeekSpeed:      160,
			SeekJitter:     20,
			PickupRange:    5,
			DeliverSpeed:   60,
			DeliverScatter: 20,
			DropOneIn:      10,
			HuntSpeed:      160,
			HuntJitter:     50,
			BiteRange:      15,
			BiteOneIn:      5,
			HuntLeash:      3,
		},
		Spider: SpiderConfig{
			Health:        25,
			Speed:         50,
			SpeedJitter:   20,
			BittenSpeed:   140,
			DespawnMargin: 2,
		},
		Sprites: SpritesConfig{
			Ant:    SpriteConfig{Glyph: "a", Color: "red"},
			Leaf:   SpriteConfig{Glyph: "♣", Color: "bright_green"},
			Spider: SpriteConfig{Glyph: "ж", Color: "magenta"},
		},
	}
}
