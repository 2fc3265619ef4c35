package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Game     GameConfig          `toml:"game" yaml:"game"`
	Window   WindowConfig        `toml:"window" yaml:"window"`
	Render   RenderConfig        `toml:"render" yaml:"render"`
	Audio    AudioConfig         `toml:"audio" yaml:"audio"`
	Terminal TerminalConfig      `toml:"terminal" yaml:"terminal"`
	Logging  LoggingConfig       `toml:"logging" yaml:"logging"`
	Keys     map[string][]string `toml:"keys" yaml:"keys"` // action name -> key names, replaces the default binding
}

type GameConfig struct {
	Seed uint64 `toml:"seed" yaml:"seed"` // 0 = seed from entropy
}

type WindowConfig struct {
	Width      int    `toml:"width" yaml:"width"`
	Height     int    `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	Title      string `toml:"title" yaml:"title"`
}

type RenderConfig struct {
	CollisionProbes bool    `toml:"collision_probes" yaml:"collision_probes"`
	ShowStats       bool    `toml:"show_stats" yaml:"show_stats"`
	FontPath        string  `toml:"font_path" yaml:"font_path"` // empty = built-in debug font
	FontSize        float64 `toml:"font_size" yaml:"font_size"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"` // master volume 0.0-1.0
}

type TerminalConfig struct {
	HoldWindow time.Duration `toml:"hold_window" yaml:"hold_window"` // key counts as held this long after its last repeat
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty = stderr
}

var ErrUnknownFormat = errors.New("unknown config format")

// Load reads path onto the defaults, the format follows the file extension
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves cfg to path in the format its extension names
func Write(path string, cfg *Config) error {
	var buf bytes.Buffer
	switch format(path) {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	default:
		return fmt.Errorf("config %s: %w", path, ErrUnknownFormat)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// Validate rejects values the frontends cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Render.FontSize <= 0 {
		return fmt.Errorf("font size %v must be positive", c.Render.FontSize)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Terminal.HoldWindow <= 0 {
		return fmt.Errorf("terminal hold window %v must be positive", c.Terminal.HoldWindow)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging format %q must be console or json", c.Logging.Format)
	}
	return nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			Seed: 0,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Asteroids",
		},
		Render: RenderConfig{
			CollisionProbes: false,
			ShowStats:       true,
			FontSize:        16,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Terminal: TerminalConfig{
			HoldWindow: 150 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
