package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded := ColonyConfig{}
	if err := yaml.Unmarshal(defaultColonyYAML, &embedded); err != nil {
		t.Fatalf("embedded colony.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(embedded, DefaultColonyConfig()) {
		t.Errorf("embedded defaults drifted from DefaultColonyConfig():\n%+v\n%+v", embedded, DefaultColonyConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults are invalid: %v", err)
	}
}

func TestLoadColonyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.yaml")
	data := []byte("ant_count: 3\nspawn:\n  spider_one_in: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadColony(path)
	if err != nil {
		t.Fatalf("LoadColony() failed: %v", err)
	}
	if cfg.AntCount != 3 {
		t.Errorf("AntCount = %d, expected 3", cfg.AntCount)
	}
	if cfg.Spawn.SpiderOneIn != 7 {
		t.Errorf("SpiderOneIn = %d, expected 7", cfg.Spawn.SpiderOneIn)
	}
	// Unset fields keep their defaults
	if cfg.Spawn.LeafOneIn != 10 || cfg.World.Width != 640 {
		t.Errorf("defaults not preserved: leaf_one_in=%d width=%g", cfg.Spawn.LeafOneIn, cfg.World.Width)
	}
}

func TestLoadColonyMissingCustomPath(t *testing.T) {
	_, err := LoadColony(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadColony() with a missing custom path should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadColonyInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  leaf_one_in: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadColony(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadColony() = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ColonyConfig)
	}{
		{"zero width", func(c *ColonyConfig) { c.World.Width = 0 }},
		{"zero nest", func(c *ColonyConfig) { c.World.NestSize = 0 }},
		{"negative ants", func(c *ColonyConfig) { c.AntCount = -1 }},
		{"zero spider odds", func(c *ColonyConfig) { c.Spawn.SpiderOneIn = 0 }},
		{"jitter below zero speed", func(c *ColonyConfig) { c.Ant.ExploreJitter = 200 }},
		{"dead spiders", func(c *ColonyConfig) { c.Spider.Health = 0 }},
		{"multi-rune glyph", func(c *ColonyConfig) { c.Sprites.Leaf.Glyph = "ll" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultColonyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateErrorOrder(t *testing.T) {
	cfg := DefaultColonyConfig()
	cfg.Sprites.Ant.Glyph = ""
	cfg.Sprites.Leaf.Glyph = "ll"
	cfg.Sprites.Spider.Glyph = "ss"

	first := cfg.Validate()
	if first == nil {
		t.Fatal("Validate() = nil, expected an error")
	}
	msg := first.Error()
	ant := strings.Index(msg, "sprites.ant")
	leaf := strings.Index(msg, "sprites.leaf")
	spider := strings.Index(msg, "sprites.spider")
	if ant < 0 || !(ant < leaf && leaf < spider) {
		t.Errorf("Validate() = %q, expected ant, leaf, spider in order", msg)
	}

	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != msg {
			t.Fatalf("Validate() = %q, expected a stable %q", got, msg)
		}
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}

	normal := DefaultColonyConfig()
	ApplyPreset(&normal, PresetNormal)
	if !reflect.DeepEqual(normal, DefaultColonyConfig()) {
		t.Error("normal preset should not change the config")
	}

	siege := DefaultColonyConfig()
	ApplyPreset(&siege, PresetSiege)
	if siege.Spawn.SpiderOneIn >= normal.Spawn.SpiderOneIn {
		t.Errorf("siege spider odds 1/%d should exceed normal 1/%d", siege.Spawn.SpiderOneIn, normal.Spawn.SpiderOneIn)
	}
	if siege.AntCount != 30 {
		t.Errorf("siege AntCount = %d, expected 30", siege.AntCount)
	}

	for _, p := range Presets() {
		cfg := DefaultColonyConfig()
		ApplyPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s produces an invalid config: %v", p, err)
		}
	}
}
