package timeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the geometry of the rendered day track.
type Config struct {
	// PixelsPerHour is the vertical scale: one hour of the day maps to
	// this many pixels.
	PixelsPerHour float64 `yaml:"pixels_per_hour"`
	// TrackLeft and TrackRight bound the horizontal band event blocks
	// are laid out in; the gutter to the left holds the hour labels.
	TrackLeft  float64 `yaml:"track_left"`
	TrackRight float64 `yaml:"track_right"`
	// MinBlockHeight is the smallest rendered block height in pixels.
	MinBlockHeight float64 `yaml:"min_block_height"`
}

// DefaultConfig returns the geometry the original day widget used.
func DefaultConfig() Config {
	return Config{
		PixelsPerHour:  60,
		TrackLeft:      90,
		TrackRight:     790,
		MinBlockHeight: 18,
	}
}

// LoadConfig reads geometry overrides from a YAML file on top of the
// defaults. Fields omitted from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse timeline config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("timeline config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports impossible geometry.
func (c Config) Validate() error {
	if c.PixelsPerHour <= 0 {
		return fmt.Errorf("pixels_per_hour must be positive, got %v", c.PixelsPerHour)
	}
	if c.TrackRight <= c.TrackLeft {
		return fmt.Errorf("track_right (%v) must exceed track_left (%v)", c.TrackRight, c.TrackLeft)
	}
	if c.MinBlockHeight < 0 {
		return fmt.Errorf("min_block_height must not be negative, got %v", c.MinBlockHeight)
	}
	return nil
}
