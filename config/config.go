// Package config provides configuration loading for the aquarium demo.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all demo configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Assets     AssetsConfig     `yaml:"assets"`
	Theme      ThemeConfig      `yaml:"theme"`
	Sound      SoundConfig      `yaml:"sound"`
	Log        LogConfig        `yaml:"log"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// GridConfig holds the cell grid size.
type GridConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	FitTerminal bool `yaml:"fit_terminal"` // Track terminal size on resize
}

// SimulationConfig holds frame pacing and initial population.
type SimulationConfig struct {
	FrameMS int    `yaml:"frame_ms"` // Milliseconds per tick
	Fish    int    `yaml:"fish"`     // Normal fish seeded at start
	Seed    uint64 `yaml:"seed"`     // Seed for initial fish placement
	Castle  bool   `yaml:"castle"`
}

// AssetsConfig points at optional art packs.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// ThemeConfig holds hex colours per scene layer.
type ThemeConfig struct {
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Water      string  `yaml:"water"`
	Seaweed    string  `yaml:"seaweed"`
	Castle     string  `yaml:"castle"`
	Creature   string  `yaml:"creature"`
	Fish       string  `yaml:"fish"`
	Bubble     string  `yaml:"bubble"`
	Shimmer    float64 `yaml:"shimmer"` // Water brightness modulation depth in [0,1]
}

// SoundConfig holds audio cue settings.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain in [0,1]
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// TelemetryConfig holds census recording settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Dir         string `yaml:"dir"`
	WindowTicks int    `yaml:"window_ticks"` // Ticks aggregated per CSV row
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks ranges and colour formats
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width < 0 || c.Grid.Height < 0:
		return fmt.Errorf("%w: grid %dx%d is negative", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Simulation.FrameMS <= 0:
		return fmt.Errorf("%w: frame_ms must be positive, got %d", ErrInvalid, c.Simulation.FrameMS)
	case c.Simulation.Fish < 0:
		return fmt.Errorf("%w: fish must not be negative, got %d", ErrInvalid, c.Simulation.Fish)
	case c.Theme.Shimmer < 0 || c.Theme.Shimmer > 1:
		return fmt.Errorf("%w: shimmer %v outside [0,1]", ErrInvalid, c.Theme.Shimmer)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Sound.Volume)
	case c.Telemetry.Enabled && c.Telemetry.WindowTicks <= 0:
		return fmt.Errorf("%w: window_ticks must be positive, got %d", ErrInvalid, c.Telemetry.WindowTicks)
	}

	colors := map[string]string{
		"foreground": c.Theme.Foreground,
		"background": c.Theme.Background,
		"water":      c.Theme.Water,
		"seaweed":    c.Theme.Seaweed,
		"castle":     c.Theme.Castle,
		"creature":   c.Theme.Creature,
		"fish":       c.Theme.Fish,
		"bubble":     c.Theme.Bubble,
	}
	for name, v := range colors {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%w: theme.%s %q is not #rrggbb", ErrInvalid, name, v)
		}
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
