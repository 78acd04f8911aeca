// Package config loads odometer settings through viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"odometer/internal/numfmt"

	"github.com/spf13/viper"
)

// Config is the complete odometer configuration.
type Config struct {
	Format    numfmt.Config   `mapstructure:"format"`
	Animation AnimationConfig `mapstructure:"animation"`
	Log       LogConfig       `mapstructure:"log"`
	Demo      DemoConfig      `mapstructure:"demo"`
	Debug     bool            `mapstructure:"debug"`
}

// AnimationConfig controls the two animation phases.
type AnimationConfig struct {
	// SpinningDuration is how long tracks take to scroll to their digit.
	SpinningDuration time.Duration `mapstructure:"spinning_duration"`
	// AlignmentDuration is how long the row takes to resize.
	AlignmentDuration time.Duration `mapstructure:"alignment_duration"`
	// FPS is the frame rate of the TUI animation.
	FPS int `mapstructure:"fps"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty disables logging
}

// DemoConfig controls the demo screen.
type DemoConfig struct {
	Value float64 `mapstructure:"value"` // initial value
	Step  float64 `mapstructure:"step"`  // +/- increment
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: numfmt.DefaultConfig(),
		Animation: AnimationConfig{
			SpinningDuration:  500 * time.Millisecond,
			AlignmentDuration: 250 * time.Millisecond,
			FPS:               60,
		},
		Log: LogConfig{
			Level: "INFO",
		},
		Demo: DemoConfig{
			Step: 1,
		},
	}
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("format.style", string(defaults.Format.Style))
	v.SetDefault("format.locale", defaults.Format.Locale)
	v.SetDefault("format.min_fraction_digits", defaults.Format.MinFractionDigits)
	v.SetDefault("format.max_fraction_digits", defaults.Format.MaxFractionDigits)
	v.SetDefault("format.grouping", defaults.Format.Grouping)
	v.SetDefault("format.currency", "USD")

	v.SetDefault("animation.spinning_duration", defaults.Animation.SpinningDuration)
	v.SetDefault("animation.alignment_duration", defaults.Animation.AlignmentDuration)
	v.SetDefault("animation.fps", defaults.Animation.FPS)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)

	v.SetDefault("demo.value", defaults.Demo.Value)
	v.SetDefault("demo.step", defaults.Demo.Step)

	v.SetDefault("debug", defaults.Debug)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "odometer")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "odometer")
	}
	return filepath.Join(home, ".config", "odometer")
}
