package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRate     = 250
	DefaultSeekStep = 5
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
	MinRate         = 100
	MaxRate         = 1000
)

var (
	ErrUnknownPreset = errors.New("config: unknown rate preset")
	ErrInvalidRate   = errors.New("config: rate out of range")
	ErrInvalidSeek   = errors.New("config: seek step must be positive")
)

type Config struct {
	Rate     int            `yaml:"rate"`
	SeekStep int            `yaml:"seek_step"`
	Theme    string         `yaml:"theme"`
	Presets  map[string]int `yaml:"presets,omitempty"`
	Log      LogConfig      `yaml:"log"`
}

type LogConfig struct {
	File   string `yaml:"file"`
	Level  string `yaml:"level"`
	Stderr bool   `yaml:"stderr"`
}

func DefaultConfig() *Config {
	return &Config{
		Rate:     DefaultRate,
		SeekStep: DefaultSeekStep,
		Theme:    DefaultTheme,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate rejects values a user wrote by hand. The playback core clamps
// silently; a config file is checked so typos surface.
func (c *Config) Validate() error {
	if c.Rate < MinRate || c.Rate > MaxRate {
		return fmt.Errorf("%w: rate %d not in [%d, %d]", ErrInvalidRate, c.Rate, MinRate, MaxRate)
	}
	if c.SeekStep <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSeek, c.SeekStep)
	}
	for name, wpm := range c.Presets {
		if wpm < MinRate || wpm > MaxRate {
			return fmt.Errorf("%w: preset %q = %d", ErrInvalidRate, name, wpm)
		}
	}
	return nil
}

// PresetRate resolves a preset name against user presets first, then the
// built-in ones.
func (c *Config) PresetRate(name string) (int, error) {
	if wpm, ok := c.Presets[name]; ok {
		return wpm, nil
	}
	if wpm, ok := GetPreset(name); ok {
		return wpm, nil
	}
	return 0, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, c.PresetNames())
}

// PresetNames lists built-in and user presets ordered by rate.
func (c *Config) PresetNames() []string {
	merged := make(map[string]int, len(Presets)+len(c.Presets))
	for name, wpm := range Presets {
		merged[name] = wpm
	}
	for name, wpm := range c.Presets {
		merged[name] = wpm
	}
	return sortedByRate(merged)
}

// CurrentRate is the name under which Rates lists the configured rate.
const CurrentRate = "current"

// Rates resolves every preset and appends the configured rate under
// CurrentRate. The returned order is slowest preset first.
func (c *Config) Rates() ([]string, map[string]int) {
	names := c.PresetNames()
	order := make([]string, 0, len(names)+1)
	rates := make(map[string]int, len(names)+1)
	for _, name := range names {
		wpm, err := c.PresetRate(name)
		if err != nil {
			continue
		}
		order = append(order, name)
		rates[name] = wpm
	}
	order = append(order, CurrentRate)
	rates[CurrentRate] = c.Rate
	return order, rates
}
