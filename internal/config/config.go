// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the piechart CLI configuration.
// It supports YAML config files with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/piechart"
	"github.com/gogpu/piechart/internal/colorspec"
)

// EnvPrefix is the prefix of environment overrides, e.g. PIECHART_CHART_DIMENSION.
const EnvPrefix = "PIECHART"

// Config represents the complete CLI configuration.
type Config struct {
	Chart   ChartConfig   `mapstructure:"chart"   yaml:"chart"`
	Output  string        `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ChartConfig describes one chart.
type ChartConfig struct {
	Dimension   float64       `mapstructure:"dimension"    yaml:"dimension"`
	AngleOffset float64       `mapstructure:"angle_offset" yaml:"angle_offset"`
	Colors      ColorsConfig  `mapstructure:"colors"       yaml:"colors"`
	Entries     []EntryConfig `mapstructure:"entries"      yaml:"entries"`
}

// ColorsConfig holds the three chart colors as hex triplets or color names.
type ColorsConfig struct {
	Box        string `mapstructure:"box"        yaml:"box"`
	Background string `mapstructure:"background" yaml:"background"`
	Intensity  string `mapstructure:"intensity"  yaml:"intensity"`
}

// EntryConfig is one chart entry.
type EntryConfig struct {
	Radius    float64 `mapstructure:"radius"    yaml:"radius"`
	Angle     float64 `mapstructure:"angle"     yaml:"angle"`
	Intensity float64 `mapstructure:"intensity" yaml:"intensity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration.
//
// If path is empty, "piechart.yaml" is searched in the working directory and
// a missing file is not an error. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("piechart")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets the defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.dimension", 400.0)
	v.SetDefault("chart.angle_offset", 0.0)
	v.SetDefault("chart.colors.box", "white")
	v.SetDefault("chart.colors.background", "white")
	v.SetDefault("chart.colors.intensity", "black")

	v.SetDefault("output", "piechart.png")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// Build creates a chart from the configuration.
func (c ChartConfig) Build() (*piechart.Chart, error) {
	box, err := colorspec.Parse(c.Colors.Box)
	if err != nil {
		return nil, fmt.Errorf("box color: %w", err)
	}
	background, err := colorspec.Parse(c.Colors.Background)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}
	intensity, err := colorspec.Parse(c.Colors.Intensity)
	if err != nil {
		return nil, fmt.Errorf("intensity color: %w", err)
	}

	entries := make([]*piechart.Entry, 0, len(c.Entries))
	for i, ec := range c.Entries {
		e, err := piechart.NewEntry(ec.Radius, ec.Angle, ec.Intensity)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}

	return piechart.New(c.Dimension,
		piechart.WithBoxColor(box),
		piechart.WithBackgroundColor(background),
		piechart.WithBaseIntensityColor(intensity),
		piechart.WithAngleOffset(c.AngleOffset),
		piechart.WithEntries(entries...),
	)
}

// NewLogger creates a slog logger writing to w.
func (l LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return nil, fmt.Errorf("logging level %q: %w", l.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(l.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging format %q: want text or json", l.Format)
	}
}
