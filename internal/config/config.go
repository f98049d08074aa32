// Package config loads weatherdeck settings from defaults, a YAML file and
// WEATHERDECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"weatherdeck/internal/clock"
	"weatherdeck/internal/header"
	"weatherdeck/internal/refresh"
	"weatherdeck/internal/weather"

	"github.com/spf13/viper"
)

const (
	SourceStatic = "static"
	SourceFile   = "file"

	EnvPrefix = "WEATHERDECK"
)

// Config contains the tunable parameters of the screen.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Timing
	ClockInterval time.Duration `mapstructure:"clock-interval"` // Clock refresh (default: 6s)
	RefreshDelay  time.Duration `mapstructure:"refresh-delay"`  // Pull-to-refresh duration (default: 2s)
	SettleDelay   time.Duration `mapstructure:"settle-delay"`   // Quiet time that ends a scroll gesture (default: 150ms)

	// Scrolling
	ScrollStep      float64 `mapstructure:"scroll-step"`      // Layout units per key press or wheel notch (default: 10)
	SpringFrequency float64 `mapstructure:"spring-frequency"` // Snap spring angular frequency (default: 12)
	SpringDamping   float64 `mapstructure:"spring-damping"`   // Snap spring damping ratio (default: 1)

	// Readings
	Source       string  `mapstructure:"source"`        // "static" or "file"
	ReadingsFile string  `mapstructure:"readings-file"` // YAML file used by the file source
	Location     string  `mapstructure:"location"`
	Temperature  float64 `mapstructure:"temperature"`
	Low          float64 `mapstructure:"low"`
	High         float64 `mapstructure:"high"`
	Unit         string  `mapstructure:"unit"`

	// Debug log destination; empty discards log output.
	LogFile string `mapstructure:"log-file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	p := weather.Placeholder()
	return Config{
		ClockInterval: clock.DefaultInterval,
		RefreshDelay:  refresh.DefaultDelay,
		SettleDelay:   150 * time.Millisecond,

		ScrollStep:      10,
		SpringFrequency: header.DefaultFrequency,
		SpringDamping:   header.DefaultDamping,

		Source:      SourceStatic,
		Location:    p.Location,
		Temperature: p.Temperature,
		Low:         p.Low,
		High:        p.High,
		Unit:        p.Unit,
	}
}

// WithReadingsFile returns a copy of the config reading from path.
func (c Config) WithReadingsFile(path string) Config {
	c.Source = SourceFile
	c.ReadingsFile = path
	return c
}

// WithRefreshDelay returns a copy of the config with a modified refresh delay.
func (c Config) WithRefreshDelay(d time.Duration) Config {
	c.RefreshDelay = d
	return c
}

// WithClockInterval returns a copy of the config with a modified clock interval.
func (c Config) WithClockInterval(d time.Duration) Config {
	c.ClockInterval = d
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.ClockInterval <= 0 {
		return &ConfigError{Field: "ClockInterval", Message: "must be positive"}
	}
	if c.RefreshDelay <= 0 {
		return &ConfigError{Field: "RefreshDelay", Message: "must be positive"}
	}
	if c.SettleDelay <= 0 {
		return &ConfigError{Field: "SettleDelay", Message: "must be positive"}
	}
	if c.ScrollStep <= 0 {
		return &ConfigError{Field: "ScrollStep", Message: "must be positive"}
	}
	if c.SpringFrequency <= 0 || c.SpringDamping <= 0 {
		return &ConfigError{Field: "Spring", Message: "frequency and damping must be positive"}
	}
	switch c.Source {
	case SourceStatic:
		if c.Location == "" {
			return &ConfigError{Field: "Location", Message: "must not be empty"}
		}
	case SourceFile:
		if c.ReadingsFile == "" {
			return &ConfigError{Field: "ReadingsFile", Message: "required for the file source"}
		}
	default:
		return &ConfigError{Field: "Source", Message: fmt.Sprintf("unknown source %q", c.Source)}
	}
	return nil
}

// Reading returns the static reading described by the config.
func (c Config) Reading() weather.Reading {
	return weather.Reading{
		Location:    c.Location,
		Temperature: c.Temperature,
		Low:         c.Low,
		High:        c.High,
		Unit:        c.Unit,
	}
}

// NewSource builds the reading source selected by the config.
func (c Config) NewSource() (weather.Source, error) {
	switch c.Source {
	case SourceStatic:
		return weather.NewStaticSource(c.Reading()), nil
	case SourceFile:
		return weather.NewFileSource(c.ReadingsFile), nil
	}
	return nil, &ConfigError{Field: "Source", Message: fmt.Sprintf("unknown source %q", c.Source)}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "weatherdeck", "config.yml"), nil
}

// Load reads the config file at path (or DefaultPath when empty) on top of
// the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("clock-interval", def.ClockInterval)
	v.SetDefault("refresh-delay", def.RefreshDelay)
	v.SetDefault("settle-delay", def.SettleDelay)
	v.SetDefault("scroll-step", def.ScrollStep)
	v.SetDefault("spring-frequency", def.SpringFrequency)
	v.SetDefault("spring-damping", def.SpringDamping)
	v.SetDefault("source", def.Source)
	v.SetDefault("readings-file", def.ReadingsFile)
	v.SetDefault("location", def.Location)
	v.SetDefault("temperature", def.Temperature)
	v.SetDefault("low", def.Low)
	v.SetDefault("high", def.High)
	v.SetDefault("unit", def.Unit)
	v.SetDefault("log-file", def.LogFile)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
