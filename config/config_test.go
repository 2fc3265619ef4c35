package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultsValid(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults should validate, got %v", err)
	}
	if cfg.Terminal.HoldWindow != 150*time.Millisecond {
		t.Errorf("Expected 150ms hold window, got %v", cfg.Terminal.HoldWindow)
	}
	if cfg.Game.Seed != 0 {
		t.Errorf("Expected entropy seed by default, got %d", cfg.Game.Seed)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Window.Width != Defaults().Window.Width {
		t.Errorf("Expected defaults for empty path")
	}
}

func TestLoadTOMLOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "game.toml", `
[game]
seed = 42

[render]
collision_probes = true

[terminal]
hold_window = "200ms"

[logging]
level = "debug"

[keys]
fire = ["Enter", "Space"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Game.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Game.Seed)
	}
	if !cfg.Render.CollisionProbes {
		t.Error("Expected collision probes enabled")
	}
	if cfg.Terminal.HoldWindow != 200*time.Millisecond {
		t.Errorf("Expected 200ms hold window, got %v", cfg.Terminal.HoldWindow)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Logging.Level)
	}
	if got := cfg.Keys["fire"]; len(got) != 2 || got[0] != "Enter" {
		t.Errorf("Expected fire keys [Enter Space], got %v", got)
	}

	// Untouched sections keep defaults
	if cfg.Window.Width != 1280 || cfg.Audio.Volume != 0.5 {
		t.Errorf("Expected defaults preserved, got window %d volume %v", cfg.Window.Width, cfg.Audio.Volume)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
window:
  width: 800
  height: 600
  fullscreen: true
audio:
  enabled: false
terminal:
  hold_window: 90ms
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || !cfg.Window.Fullscreen {
		t.Errorf("Unexpected window config %+v", cfg.Window)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Terminal.HoldWindow != 90*time.Millisecond {
		t.Errorf("Expected 90ms hold window, got %v", cfg.Terminal.HoldWindow)
	}
	if cfg.Window.Title != "Asteroids" {
		t.Errorf("Expected default title preserved, got %q", cfg.Window.Title)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad toml", "bad.toml", "[game\nseed = 1", "parse config"},
		{"bad yaml", "bad.yml", "window: [", "parse config"},
		{"unknown extension", "game.ini", "seed=1", "unknown config format"},
		{"negative width", "w.toml", "[window]\nwidth = -1", "window size"},
		{"loud volume", "v.toml", "[audio]\nvolume = 1.5", "audio volume"},
		{"bad log format", "l.toml", "[logging]\nformat = \"xml\"", "logging format"},
		{"zero hold window", "h.yaml", "terminal:\n  hold_window: 0s", "hold window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped ErrNotExist, got %v", err)
	}
}

func TestWriteThenLoad(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			cfg.Game.Seed = 7
			cfg.Terminal.HoldWindow = 250 * time.Millisecond
			cfg.Keys = map[string][]string{"thrust": {"W"}}

			path := filepath.Join(t.TempDir(), name)
			if err := Write(path, cfg); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Game.Seed != 7 || got.Terminal.HoldWindow != 250*time.Millisecond {
				t.Errorf("Values lost in round trip: %+v %+v", got.Game, got.Terminal)
			}
			if k := got.Keys["thrust"]; len(k) != 1 || k[0] != "W" {
				t.Errorf("Keys lost in round trip: %v", got.Keys)
			}
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.json"), Defaults())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}
