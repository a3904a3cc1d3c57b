// Package config holds the runtime configuration of the pwinspect tool.
package config

import (
	"fmt"

	"github.com/npillmayer/pointwise"
	"github.com/npillmayer/pointwise/satellite"
	"github.com/spf13/viper"
)

// ExtremesConfig holds the styling of end nodes of open subpaths.
type ExtremesConfig struct {
	Active bool    `mapstructure:"active"`
	Hidden bool    `mapstructure:"hidden"`
	Amount float64 `mapstructure:"amount"`
	Angle  float64 `mapstructure:"angle"`
}

// Config holds all runtime configuration for pwinspect.
// Values are populated from .pwinspect.toml, PWINSPECT_* env vars, and CLI flags.
type Config struct {
	Type          string         `mapstructure:"type"`
	Amount        float64        `mapstructure:"amount"`
	IsTime        bool           `mapstructure:"is_time"`
	Mirror        bool           `mapstructure:"mirror"`
	Extremes      ExtremesConfig `mapstructure:"extremes"`
	Format        string         `mapstructure:"format"`
	TraceLevel    string         `mapstructure:"trace_level"`
	OffsetSamples int            `mapstructure:"offset_samples"`
}

// Output formats
const (
	FormatText = "text"
	FormatTOML = "toml"
)

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("type", "F")
	viper.SetDefault("amount", 0.0)
	viper.SetDefault("is_time", false)
	viper.SetDefault("mirror", true)
	viper.SetDefault("extremes.active", false)
	viper.SetDefault("extremes.hidden", false)
	viper.SetDefault("extremes.amount", 0.0)
	viper.SetDefault("extremes.angle", 0.0)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("trace_level", "Error")
	viper.SetDefault("offset_samples", 64)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := satellite.ParseType(cfg.Type); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Format != FormatText && cfg.Format != FormatTOML {
		return Config{}, fmt.Errorf("config: unknown output format %q", cfg.Format)
	}
	if cfg.OffsetSamples < 1 {
		return Config{}, fmt.Errorf("config: offset_samples must be positive, is %d", cfg.OffsetSamples)
	}
	return cfg, nil
}

// Prototype returns the satellite new tables are generated from.
func (cfg Config) Prototype() satellite.Satellite {
	typ, _ := satellite.ParseType(cfg.Type)
	sat := satellite.New(typ)
	sat.Amount = cfg.Amount
	sat.IsTime = cfg.IsTime
	sat.HasMirror = cfg.Mirror
	return sat
}

// ExtremesStyle returns the configured styling for end nodes of open subpaths.
func (cfg Config) ExtremesStyle() pointwise.Extremes {
	return pointwise.Extremes{
		Active: cfg.Extremes.Active,
		Hidden: cfg.Extremes.Hidden,
		Amount: cfg.Extremes.Amount,
		Angle:  cfg.Extremes.Angle,
	}
}
