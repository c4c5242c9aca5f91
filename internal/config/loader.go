package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid colony config")

// LoadColony loads the colony configuration.
// Search order: customPath -> ~/.antfarm/configs/colony.yaml -> ./configs/colony.yaml -> embedded default
func LoadColony(customPath string) (ColonyConfig, error) {
	// Fields missing from a file keep their defaults
	cfg := DefaultColonyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("colony.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "colony.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultColonyConfig()
	if err := yaml.Unmarshal(defaultColonyYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultColonyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (ColonyConfig, bool) {
	cfg := DefaultColonyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".antfarm", "configs", filename)
}

// Validate checks the config for values the simulation cannot run with.
func (c ColonyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	w := c.World
	check(w.Width > 0 && w.Height > 0, "world size must be positive, got %gx%g", w.Width, w.Height)
	check(w.NestSize > 0, "nest_size must be positive, got %g", w.NestSize)
	check(c.AntCount >= 0, "ant_count must not be negative, got %d", c.AntCount)

	check(c.Spawn.LeafOneIn > 0, "spawn.leaf_one_in must be positive, got %d", c.Spawn.LeafOneIn)
	check(c.Spawn.SpiderOneIn > 0, "spawn.spider_one_in must be positive, got %d", c.Spawn.SpiderOneIn)

	a := c.Ant
	check(a.WanderOneIn > 0, "ant.wander_one_in must be positive, got %d", a.WanderOneIn)
	check(a.DropOneIn > 0, "ant.drop_one_in must be positive, got %d", a.DropOneIn)
	check(a.BiteOneIn > 0, "ant.bite_one_in must be positive, got %d", a.BiteOneIn)
	check(a.ExploreSpeed-float64(a.ExploreJitter) >= 0, "ant.explore_speed minus jitter must not be negative")
	check(a.SeekSpeed-float64(a.SeekJitter) >= 0, "ant.seek_speed minus jitter must not be negative")
	check(a.DeliverSpeed >= 0, "ant.deliver_speed must not be negative")
	check(a.HuntSpeed >= 0 && a.HuntJitter >= 0, "ant.hunt_speed and hunt_jitter must not be negative")
	check(a.ExploreJitter >= 0 && a.SeekJitter >= 0 && a.DeliverScatter >= 0, "ant jitter values must not be negative")

	s := c.Spider
	check(s.Health > 0, "spider.health must be positive, got %d", s.Health)
	check(s.Speed-float64(s.SpeedJitter) >= 0, "spider.speed minus jitter must not be negative")
	check(s.SpeedJitter >= 0, "spider.speed_jitter must not be negative")
	check(s.BittenSpeed >= 0, "spider.bitten_speed must not be negative")

	sprites := []struct {
		name string
		sp   SpriteConfig
	}{
		{"ant", c.Sprites.Ant},
		{"leaf", c.Sprites.Leaf},
		{"spider", c.Sprites.Spider},
	}
	for _, spr := range sprites {
		check(utf8.RuneCountInString(spr.sp.Glyph) == 1, "sprites.%s.glyph must be a single character, got %q", spr.name, spr.sp.Glyph)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
