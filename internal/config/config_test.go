package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kievzenit/ylogo/internal/turtle"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ylogo.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() returned error: %v", err)
	}
	if cfg.BoundsPolicy() != turtle.BoundsNone || cfg.PenColorValue().Name != "black" {
		t.Fatalf("Default() = %+v, expected no bounds and a black pen", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 400
  height: 300
bounds: clamp
max_iterations: 1000
pen_color: 4
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Canvas.Width != 400 || cfg.Canvas.Height != 300 {
		t.Fatalf("canvas = %+v, expected 400x300", cfg.Canvas)
	}
	if cfg.TurtleCanvas() != (turtle.Canvas{Width: 400, Height: 300}) {
		t.Fatalf("TurtleCanvas() = %+v", cfg.TurtleCanvas())
	}
	if cfg.BoundsPolicy() != turtle.BoundsClamp {
		t.Fatalf("bounds = %s, expected clamp", cfg.BoundsPolicy())
	}
	if cfg.MaxIterations != 1000 || cfg.PenColorValue().Name != "red" || cfg.LogLevel != "debug" {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "bounds: error\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	def := Default()
	if cfg.Canvas != def.Canvas || cfg.LogLevel != def.LogLevel {
		t.Fatalf("config = %+v, expected defaults besides bounds", cfg)
	}
	if cfg.BoundsPolicy() != turtle.BoundsError {
		t.Fatalf("bounds = %s, expected error", cfg.BoundsPolicy())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"bad yaml", "canvas: [", "parse config"},
		{"bad bounds", "bounds: wrap\n", "bounds"},
		{"bad canvas", "canvas: {width: 0, height: 10}\n", "canvas"},
		{"bad iterations", "max_iterations: -1\n", "max_iterations"},
		{"bad colour", "pen_color: 16\n", "pen_color"},
		{"bad level", "log_level: loud\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("Load expected an error")
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("error %q does not mention %q", err, tt.message)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load of a missing file expected an error")
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	cfg := Default()
	cfg.LogLevel = "warn"
	logger := cfg.Logger(&buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("log output = %q, expected only the warning", out)
	}
}
