package config

import (
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/ylogo/internal/turtle"
	"github.com/oarkflow/errors"
	"github.com/oarkflow/log"
	"gopkg.in/yaml.v3"
)

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Canvas        Canvas `yaml:"canvas"`
	Bounds        string `yaml:"bounds"`
	MaxIterations int    `yaml:"max_iterations"`
	PenColor      int    `yaml:"pen_color"`
	LogLevel      string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Canvas:   Canvas{Width: 800, Height: 600},
		Bounds:   turtle.BoundsNone.String(),
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of Default, so keys left out of the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

var levels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
	"panic": true,
}

func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New("Config: canvas width and height must be positive")
	}
	if _, err := turtle.ParseBoundsPolicy(c.Bounds); err != nil {
		return errors.New("Config: bounds must be one of none, clamp or error")
	}
	if c.MaxIterations < 0 {
		return errors.New("Config: max_iterations must not be negative")
	}
	if c.PenColor < 0 || c.PenColor >= len(turtle.Palette) {
		return errors.New("Config: pen_color must be a palette index")
	}
	if !levels[c.LogLevel] {
		return errors.New("Config: unknown log_level " + c.LogLevel)
	}

	return nil
}

// BoundsPolicy and PenColorValue assume a validated config.
func (c Config) BoundsPolicy() turtle.BoundsPolicy {
	policy, _ := turtle.ParseBoundsPolicy(c.Bounds)
	return policy
}

func (c Config) PenColorValue() turtle.Color {
	return turtle.Palette[c.PenColor]
}

func (c Config) TurtleCanvas() turtle.Canvas {
	return turtle.Canvas{
		Width:  float64(c.Canvas.Width),
		Height: float64(c.Canvas.Height),
	}
}

func (c Config) Logger(w io.Writer) *log.Logger {
	return &log.Logger{
		Level:      log.ParseLevel(c.LogLevel),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer: w,
		},
	}
}
