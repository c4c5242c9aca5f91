// Package config provides YAML-based colony configuration loading and
// preset management for the simulator.
package config

// ColonyConfig contains all tunables of the ant colony simulation.
type ColonyConfig struct {
	World    WorldConfig   `yaml:"world"`
	AntCount int           `yaml:"ant_count"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	Ant      AntConfig     `yaml:"ant"`
	Spider   SpiderConfig  `yaml:"spider"`
	Sprites  SpritesConfig `yaml:"sprites"`
}

// WorldConfig defines the world rectangle and the nest.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	NestX    float64 `yaml:"nest_x"`
	NestY    float64 `yaml:"nest_y"`
	NestSize float64 `yaml:"nest_size"` // Nest radius
}

// SpawnConfig defines the per-tick spawn odds. A value of n means 1 in n.
type SpawnConfig struct {
	LeafOneIn    int     `yaml:"leaf_one_in"`
	SpiderOneIn  int     `yaml:"spider_one_in"`
	SpiderMargin float64 `yaml:"spider_margin"` // How far off-screen spiders enter and leave
}

// AntConfig defines ant behavior for each state.
type AntConfig struct {
	SightRange float64 `yaml:"sight_range"` // Leaf and spider detection range

	// Exploring
	WanderOneIn   int     `yaml:"wander_one_in"` // Chance per tick of a new random destination
	ExploreSpeed  float64 `yaml:"explore_speed"`
	ExploreJitter int     `yaml:"explore_jitter"`

	// Seeking
	SeekSpeed   float64 `yaml:"seek_speed"`
	SeekJitter  int     `yaml:"seek_jitter"`
	PickupRange float64 `yaml:"pickup_range"`

	// Delivering
	DeliverSpeed   float64 `yaml:"deliver_speed"`
	DeliverScatter int     `yaml:"deliver_scatter"` // Max offset from the nest center
	DropOneIn      int     `yaml:"drop_one_in"`

	// Hunting
	HuntSpeed  float64 `yaml:"hunt_speed"`
	HuntJitter int     `yaml:"hunt_jitter"` // Added on top of HuntSpeed, never subtracted
	BiteRange  float64 `yaml:"bite_range"`
	BiteOneIn  int     `yaml:"bite_one_in"`
	HuntLeash  float64 `yaml:"hunt_leash"` // Give up once the spider is this many nest radii away
}

// SpiderConfig defines spider parameters.
type SpiderConfig struct {
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	SpeedJitter   int     `yaml:"speed_jitter"`
	BittenSpeed   float64 `yaml:"bitten_speed"` // Speed after every bite, dead or alive
	DespawnMargin float64 `yaml:"despawn_margin"`
}

// SpritesConfig defines how each entity kind is drawn.
type SpritesConfig struct {
	Ant    SpriteConfig `yaml:"ant"`
	Leaf   SpriteConfig `yaml:"leaf"`
	Spider SpriteConfig `yaml:"spider"`
}

// SpriteConfig is a glyph and a color name.
type SpriteConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}
