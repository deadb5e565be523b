package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultConfigPath = ".geoframe/config.json"

	// Interval bounds in seconds; values outside are clamped.
	MinInterval = 1
	MaxInterval = 60

	defaultInterval = 5
)

// Ordering mode names accepted in the config file.
const (
	ModeSequential = "sequential"
	ModeShuffle    = "shuffle"
	ModeRandom     = "random"
)

// Config represents the JSON config structure.
type Config struct {
	Albums          []string `json:"albums"`
	Interval        int      `json:"interval"` // Seconds per slide
	Mode            string   `json:"mode"`     // sequential | shuffle | random
	DateOverlay     bool     `json:"dateOverlay"`
	LocationOverlay bool     `json:"locationOverlay"`

	Geocode struct {
		Enabled   bool   `json:"enabled"`
		Endpoint  string `json:"endpoint"`  // defaults to Nominatim
		UserAgent string `json:"userAgent"` // required by Nominatim's usage policy
	} `json:"geocode"`

	CEC struct {
		PowerOnAtStart bool `json:"powerOnAtStart"`
		PowerOffOnExit bool `json:"powerOffOnExit"`
		HdmiInput      int  `json:"hdmiInput"`
	} `json:"cec"`
}

// Read retrieves and parses the JSON config from ~/.geoframe/config.json.
func Read() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to get user home directory: %w", err)
	}
	configPath := filepath.Join(homeDir, DefaultConfigPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file at %s: %w", configPath, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Interval == 0 {
		c.Interval = defaultInterval
	}
	if c.Interval < MinInterval {
		c.Interval = MinInterval
	}
	if c.Interval > MaxInterval {
		c.Interval = MaxInterval
	}
	switch c.Mode {
	case ModeSequential, ModeShuffle, ModeRandom:
	default:
		c.Mode = ModeSequential
	}
}

// IntervalDuration returns the per-slide display interval.
func (c Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}
