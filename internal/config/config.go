package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/glimmer/internal/rng"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth    = 50
	DefaultHeight   = 20
	DefaultInterval = 50 * time.Millisecond
)

// Config carries the render geometry and seeding for a run. Seed is a hex
// string of up to 32 bytes; empty means draw one from system entropy at
// startup.
type Config struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Interval time.Duration `yaml:"interval"`
	Seed     string        `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Interval: DefaultInterval,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveSeed decodes the configured seed, or draws a fresh one from
// entropy when none is set.
func (c *Config) ResolveSeed() (rng.Seed, error) {
	if c.Seed == "" {
		return rng.EntropySeed(), nil
	}
	return ParseSeed(c.Seed)
}

// ParseSeed decodes a hex seed of at most rng.SeedSize bytes; shorter
// values are zero-padded.
func ParseSeed(s string) (rng.Seed, error) {
	var seed rng.Seed
	raw, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("seed is not valid hex: %w", err)
	}
	if len(raw) > rng.SeedSize {
		return seed, fmt.Errorf("seed is %d bytes, max %d", len(raw), rng.SeedSize)
	}
	copy(seed[:], raw)
	return seed, nil
}

// FormatSeed renders a seed the way ParseSeed reads it.
func FormatSeed(seed rng.Seed) string {
	return hex.EncodeToString(seed[:])
}
